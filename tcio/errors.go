package tcio

import (
	"fmt"
	"strings"

	"github.com/rmera/tcint"
)

// Error is the error type of this package.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	critical bool
	cause    error
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("tcio error: %s (in %s)", err.message, strings.Join(err.deco, " < "))
	}
	return fmt.Sprintf("tcio file %s error: %s (in %s)", err.filename, err.message, strings.Join(err.deco, " < "))
}

// Decorate Adds new information to the error
func (E Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// FileName returns the file to which the error was associated, if any.
func (err Error) FileName() string { return err.filename }

// Unwrap returns the error from another package that err wraps, if any.
func (err Error) Unwrap() error { return err.cause }

// Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

// errDecorate decorates the error with the caller, and sets the file name if the
// error is an Error without one.
func errDecorate(err error, caller, filename string) error {
	if e, ok := err.(Error); ok {
		if e.filename == "" {
			e.filename = filename
		}
		e.deco = e.Decorate(caller)
		return e
	}
	crit := true
	if e, ok := err.(tcint.CriticalError); ok {
		crit = e.Critical()
	}
	return Error{err.Error(), filename, []string{caller}, crit, err}
}

// Error messages
const (
	ErrHeader    = "Not a tensor file, or damaged header"
	ErrTruncated = "Unexpected end of data"
)
