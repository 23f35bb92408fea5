// Package apperrors defines the error taxonomy the engine reports to its
// callers. Sparse profile data never lands here: scorers degrade to their
// neutral defaults instead of failing.
package apperrors

import "github.com/pkg/errors"

var (
	// ErrValidation marks malformed input, such as an unknown triage
	// decision or a non-positive limit.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a missing profile, job or application, or a
	// submission against an inactive job.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized marks a reviewer acting on a job they do not own.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict marks duplicate applications and triage attempts on
	// applications that already left the applied state, including the
	// loser of a concurrent triage race.
	ErrConflict = errors.New("conflict")
)

func Validationf(format string, args ...any) error {
	return errors.Wrapf(ErrValidation, format, args...)
}

func NotFoundf(format string, args ...any) error {
	return errors.Wrapf(ErrNotFound, format, args...)
}

func Unauthorizedf(format string, args ...any) error {
	return errors.Wrapf(ErrUnauthorized, format, args...)
}

func Conflictf(format string, args ...any) error {
	return errors.Wrapf(ErrConflict, format, args...)
}
