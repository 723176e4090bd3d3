package basis

import (
	"fmt"
	"strings"

	"github.com/rmera/tcint"
)

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

// Error is the general structure for errors in this package. It fulfills tcint.Error.
type Error struct {
	message  string
	deco     []string
	critical bool
	cause    error
}

func (err Error) Error() string {
	return fmt.Sprintf("tcint/basis: %s (in %s)", err.message, strings.Join(err.deco, " < "))
}

// Decorate Adds new information to the error
func (E Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// Unwrap returns the error from another package that err wraps, if any.
func (err Error) Unwrap() error { return err.cause }

// Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }
