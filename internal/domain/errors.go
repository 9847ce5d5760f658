package domain

import (
	"errors"
	"fmt"
)

// Domain errors. Every failure is fatal; the wrapper performs no retries.
var (
	ErrUnsupportedPlatform = errors.New("this tool supports only macOS and Linux")
	ErrSourceNotFound      = errors.New("source directory does not exist")
	ErrToolNotFound        = errors.New("rsync not found")
	ErrVersionParse        = errors.New("couldn't detect rsync version")
	ErrVersionTooOld       = errors.New("rsync version too old")
	ErrInterrupted         = errors.New("interrupted by user")
)

// ExecError reports a non-zero rsync exit. rsync uses specific nonzero
// codes (e.g. partial transfer), so the code is preserved and propagated
// verbatim as the wrapper's own exit status.
type ExecError struct {
	Code int
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("rsync exited with code %d", e.Code)
}

// PersistError reports a failed summary-log write. The transfer has already
// completed by the time the log is written, so this must never be swallowed.
type PersistError struct {
	Err  error
	Path string
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("write summary log %s: %v", e.Path, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
