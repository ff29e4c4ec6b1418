// Package models defines data structures for notebook repair reports.
package models

import "strconv"

// Removal identifies one malformed metadata.widgets entry in a notebook.
type Removal struct {
	// CellIndex is the zero-based index of the owning cell, or -1 when the
	// entry lives in the notebook-level metadata block.
	CellIndex int `json:"cell_index"`
	// Path is the JSON path of the removed entry.
	Path string `json:"path"`
}

// Location describes where the entry was found, either "notebook level" or
// "cell <index>".
func (r Removal) Location() string {
	if r.CellIndex < 0 {
		return "notebook level"
	}
	return "cell " + strconv.Itoa(r.CellIndex)
}

// Report summarizes one repair invocation.
type Report struct {
	// Path is the notebook file the repair ran against.
	Path string `json:"path"`
	// Removals lists the malformed entries found, in document order.
	Removals []Removal `json:"removals,omitempty"`
	// BackupPath is the timestamped copy of the original. Empty when no
	// backup was written.
	BackupPath string `json:"backup_path,omitempty"`
	// DryRun records that the file was deliberately left untouched.
	DryRun bool `json:"dry_run,omitempty"`
}

// Changed reports whether any malformed entry was found.
func (r *Report) Changed() bool {
	return len(r.Removals) > 0
}
