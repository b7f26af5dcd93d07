package cmdutil

import (
	"errors"
	"fmt"
)

// FlagError is a usage mistake: a bad flag value, a wrong argument count, an
// unknown shell. Main prints it together with the command's usage and exits 2.
type FlagError struct {
	err error
}

func (e *FlagError) Error() string { return e.err.Error() }
func (e *FlagError) Unwrap() error { return e.err }

// FlagErrorf builds a FlagError from a format string.
func FlagErrorf(format string, args ...any) error {
	return &FlagError{err: fmt.Errorf(format, args...)}
}

// FlagErrorWrap marks err, typically from cobra's flag parsing, as a usage
// mistake.
func FlagErrorWrap(err error) error {
	return &FlagError{err: err}
}

// SilentError is returned by commands that have already written their own
// failure report, e.g. the list of config validation errors. Main exits 1
// without printing anything else.
var SilentError = errors.New("SilentError")
