package nbfix

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the notebook file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidJSON indicates the notebook is not valid JSON.
var ErrInvalidJSON = errors.New("invalid JSON in notebook")

// IOError represents a failed file operation during repair.
type IOError struct {
	Op   string // "read", "backup", "write", "restore"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s error on %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError.
func NewIOError(op, path string, err error) *IOError {
	return &IOError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}
