package nbfix

import (
	"fmt"
	"os"

	"github.com/tidwall/sjson"

	"github.com/nbfix/nbfix-go/pkg/nbfix/models"
)

// Repair loads the notebook at path, removes malformed metadata.widgets
// entries at notebook level and per cell, and, when anything was removed,
// backs up the original file and writes the corrected document in place.
// All keys the repair does not touch survive unchanged, in their original
// order, modulo global re-indentation.
//
// The returned Report lists the removals and the backup path. A nil error
// means either nothing needed repair or the full backup-and-write cycle
// succeeded. A failed write triggers a best-effort restore from the backup
// just created; the restore outcome is logged and the write error returned.
func Repair(path string, opts Options) (*models.Report, error) {
	log := opts.LogWriter()

	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, NewIOError("read", path, err)
	}
	mode := fi.Mode().Perm()

	original, err := os.ReadFile(path)
	if err != nil {
		return nil, NewIOError("read", path, err)
	}

	if err := parseCheck(original); err != nil {
		return nil, err
	}

	report := &models.Report{
		Path:     path,
		Removals: Scan(original),
		DryRun:   opts.DryRun,
	}
	if !report.Changed() {
		fmt.Fprintf(log, "No malformed widget metadata found in: %s\n", path)
		return report, nil
	}

	doc := original
	for _, rm := range report.Removals {
		if rm.CellIndex < 0 {
			fmt.Fprintln(log, "Removing malformed widgets metadata at notebook level")
		} else {
			fmt.Fprintf(log, "Removing malformed widgets metadata from cell %d\n", rm.CellIndex)
		}
		doc, err = sjson.DeleteBytes(doc, rm.Path)
		if err != nil {
			return report, fmt.Errorf("removing %s: %w", rm.Path, err)
		}
	}

	if opts.DryRun {
		fmt.Fprintf(log, "Dry run: %d removal(s) identified, no changes written\n", len(report.Removals))
		return report, nil
	}

	backupPath, err := writeBackup(path, original, mode, opts.Timestamp())
	if err != nil {
		return report, err
	}
	report.BackupPath = backupPath
	fmt.Fprintf(log, "Created backup: %s\n", backupPath)

	fixed, err := formatNotebook(doc)
	if err != nil {
		return report, err
	}
	if err := os.WriteFile(path, fixed, mode); err != nil {
		werr := NewIOError("write", path, err)
		if rerr := restoreBackup(path, backupPath, mode); rerr != nil {
			fmt.Fprintf(log, "Error restoring backup: %v\n", rerr)
		} else {
			fmt.Fprintln(log, "Restored from backup due to write error")
		}
		return report, werr
	}

	fmt.Fprintf(log, "Successfully fixed: %s\n", path)
	return report, nil
}
