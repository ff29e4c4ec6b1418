// Package nbfix repairs malformed widget metadata in Jupyter notebooks.
package nbfix

import (
	"io"
	"os"
	"time"
)

// Options configures repair behavior.
type Options struct {
	// DryRun reports removals without creating a backup or writing the
	// corrected file.
	DryRun bool
	// Log receives progress and diagnostic messages.
	// If nil, messages go to os.Stdout.
	Log io.Writer
	// Now supplies the timestamp used in backup file names.
	// If nil, time.Now is used.
	Now func() time.Time
}

// DefaultOptions returns default repair options.
func DefaultOptions() Options {
	return Options{}
}

// LogWriter returns the destination for progress messages.
func (o Options) LogWriter() io.Writer {
	if o.Log != nil {
		return o.Log
	}
	return os.Stdout
}

// Timestamp returns the time used to name the backup file.
func (o Options) Timestamp() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}
