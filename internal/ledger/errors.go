package ledger

import (
	"errors"
	"fmt"
)

// Domain errors. All of them are recoverable at the command boundary: they
// are reported to the user and the session continues.
var (
	// ErrAccountNotFound is returned by any operation whose account id
	// lookup misses. A miss is an expected outcome, not a fault.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientFunds rejects a withdrawal or transfer that would
	// drive the source balance negative. No state is changed.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount rejects negative amounts.
	ErrInvalidAmount = errors.New("amount must be a non-negative number")

	// ErrSameAccount rejects a transfer whose source and destination are
	// the same account.
	ErrSameAccount = errors.New("source and destination accounts are the same")

	// ErrInvalidOwner rejects owner names that are empty or would collide
	// with the reserved characters of the data file format.
	ErrInvalidOwner = errors.New("invalid owner name")
)

// FormatError describes a malformed data file encountered during decoding.
// Loading stops at the first one; the ledger is never built from partial or
// corrupted data.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}
