package combat

import "errors"

var (
	ErrInvalidSize    = errors.New("fighter count must be even and at least 2")
	ErrNotInitialized = errors.New("tournament not initialized")
)

// IsValidation reports whether err is one of the tournament validation errors.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidSize) || errors.Is(err, ErrNotInitialized)
}
