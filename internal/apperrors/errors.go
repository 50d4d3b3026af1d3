package apperrors

import "errors"

// Engine error taxonomy. Services wrap these with fmt.Errorf("...: %w", ...)
// and handlers map them to HTTP status codes with errors.Is.
var (
	// ErrNotFound means the requested entity id has no matching document
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument means a caller-supplied value is invalid
	// (unknown role name, mismatched ids, duplicate email)
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConfigurationMissing means a required seed document is absent
	// (sentinel user, offer status, role). This is fatal for the enclosing
	// operation and must never be swallowed.
	ErrConfigurationMissing = errors.New("configuration missing")

	// ErrConflict means a concurrent writer won a race we cannot resolve,
	// or an offer was moved between terminal states
	ErrConflict = errors.New("conflict")
)

// IsFatal reports whether err aborts the enclosing cascade or startup
func IsFatal(err error) bool {
	return errors.Is(err, ErrConfigurationMissing)
}
