package nbfix

import (
	"os"
	"time"
)

// backupTimeFormat gives whole-second precision. Two runs against the same
// path within one second produce the same backup name; the later run
// overwrites the earlier backup. Known, accepted limitation.
const backupTimeFormat = "20060102_150405"

// BackupPath returns the backup file name for path at time t:
// <path>.bak-YYYYMMDD_HHMMSS.
func BackupPath(path string, t time.Time) string {
	return path + ".bak-" + t.Format(backupTimeFormat)
}

// writeBackup copies the original notebook bytes verbatim to the timestamped
// backup path and returns that path.
func writeBackup(path string, original []byte, mode os.FileMode, t time.Time) (string, error) {
	backupPath := BackupPath(path, t)
	if err := os.WriteFile(backupPath, original, mode); err != nil {
		return "", NewIOError("backup", backupPath, err)
	}
	return backupPath, nil
}

// restoreBackup copies the backup back over the original after a failed
// write.
func restoreBackup(path, backupPath string, mode os.FileMode) error {
	data, err := os.ReadFile(backupPath)
	if err != nil {
		return NewIOError("restore", backupPath, err)
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return NewIOError("restore", path, err)
	}
	return nil
}
