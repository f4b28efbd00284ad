package common

import (
	"github.com/cockroachdb/errors"
)

// Error taxonomy for kMOSAIC, per the error handling design in spec.md §7.
//
// DecapsulationFailed is deliberately absent: decapsulation never reports
// the kind of failure, it returns implicit-rejection pseudorandomness
// instead (see kmosaic.Decapsulate). VerificationFailed is
// reported as a boolean return, not an error. SizeMismatch is a panic,
// raised by internal arithmetic helpers, never returned as an error.
var (
	// ErrInvalidParams is raised when a parameter set fails dimension or
	// modulus consistency checks.
	ErrInvalidParams = errors.New("kmosaic: invalid parameters")

	// ErrInsufficientEntropy is raised when a supplied seed is shorter
	// than 32 bytes or fails the entropy heuristic in internal/sample.
	ErrInsufficientEntropy = errors.New("kmosaic: insufficient seed entropy")

	// ErrSerialization is raised on a malformed length prefix, a
	// truncated field, or an invalid SL(2, Z_p) element encoding.
	ErrSerialization = errors.New("kmosaic: malformed serialized data")

	// ErrSigningExhausted is raised when rejection sampling during Sign
	// exceeds the configured retry budget.
	ErrSigningExhausted = errors.New("kmosaic: signing exhausted retry budget")
)

// Wrap annotates err with the given operation name using cockroachdb/errors,
// preserving a stack trace and the underlying sentinel for errors.Is.
func Wrap(err error, operation string) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "kmosaic: %s", operation)
}
