package errors

import (
	"errors"
	"fmt"
)

// Pipeline error taxonomy. Handlers map these to HTTP statuses; anything
// that doesn't match falls through to a generic internal error.

var (
	// ErrThrottled indicates the client exceeded its submission rate
	ErrThrottled = errors.New("too many requests")

	// ErrMalformed indicates the payload could not be parsed
	ErrMalformed = errors.New("malformed request")

	// ErrUnknownFormType indicates an absent or unrecognized form type
	ErrUnknownFormType = errors.New("unknown form type")

	// ErrValidationFailed indicates one or more fields violate their contract
	ErrValidationFailed = errors.New("validation failed")

	// ErrVerificationMissing indicates a captcha token was required but absent
	ErrVerificationMissing = errors.New("verification token missing")

	// ErrVerificationFailed indicates the captcha could not be verified
	ErrVerificationFailed = errors.New("verification failed")

	// ErrVerificationSuspicious indicates the captcha score fell below the reject threshold
	ErrVerificationSuspicious = errors.New("verification score too low")

	// ErrInternal indicates an unexpected internal fault
	ErrInternal = errors.New("internal error")
)

// FieldErrors carries a per-field validation error map. It wraps
// ErrValidationFailed so callers can match with errors.Is.
type FieldErrors struct {
	Fields map[string]string
}

func (e *FieldErrors) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

func (e *FieldErrors) Unwrap() error {
	return ErrValidationFailed
}

// UnknownFormTypeError creates an unknown form type error with context
func UnknownFormTypeError(got string) error {
	if got == "" {
		return fmt.Errorf("form type missing: %w", ErrUnknownFormType)
	}
	return fmt.Errorf("form type %q: %w", got, ErrUnknownFormType)
}

// InternalError creates an internal error with context
func InternalError(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInternal)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}
