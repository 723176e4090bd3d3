package v3

import "fmt"

// Error is the error type of this package. It fulfills tcint.Error.
// (the interface is not referenced here to avoid a circular import)
type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err Error) Error() string {
	return fmt.Sprintf("tcint/v3: %s", err.message)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("tcint/v3: A Matrix should have 3 columns")
	ErrShape           = PanicMsg("tcint/v3: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("tcint/v3: index out of range")
)
