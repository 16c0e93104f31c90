package ledger

import "errors"

// Validation errors. They are returned before any write happens.
var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidReference = errors.New("invalid reference")
	ErrInvalidTransfer  = errors.New("invalid transfer")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidType      = errors.New("invalid type")
	ErrMissingField     = errors.New("missing required field")
)

// Gateway errors.
var (
	ErrGoalNotFound       = errors.New("savings goal not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrDuplicate          = errors.New("duplicate entry")
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// ErrPartialContribution means a contribution record may have been written without its
// goal update. Callers must run reconciliation instead of retrying, a retry would apply
// the amount twice.
var ErrPartialContribution = errors.New("partial contribution failure")

// IsValidation reports whether err is one of the input validation errors.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidReference) ||
		errors.Is(err, ErrInvalidTransfer) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidType) ||
		errors.Is(err, ErrMissingField)
}
