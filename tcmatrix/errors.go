package tcmatrix

import (
	"fmt"
	"strings"

	"github.com/rmera/tcint"
)

// Error is the error type of this package. Errors from other packages,
// such as a context cancellation, are kept and returned by Unwrap.
type Error struct {
	message  string
	deco     []string
	critical bool
	cause    error
}

func (err Error) Error() string {
	return fmt.Sprintf("tcint/tcmatrix: %s (in %s)", err.message, strings.Join(err.deco, " < "))
}

// Decorate adds dec to the list of functions the error went through, and returns the list.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

// Unwrap returns the error that caused err, if any.
func (err Error) Unwrap() error { return err.cause }

// errDecorate adds caller to the decorations of err. Decorate has a value
// receiver, so an Error from another package can't keep the new entry; those
// are wrapped in an Error of this package, and can be recovered with errors.As.
func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.deco = e.Decorate(caller)
		return e
	}
	crit := true
	if e, ok := err.(tcint.CriticalError); ok {
		crit = e.Critical()
	}
	return Error{err.Error(), []string{caller}, crit, err}
}

// Error messages
const (
	ErrDimensions = "Dimension mismatch"
	ErrEigen      = "Eigendecomposition of the metric failed"
)
