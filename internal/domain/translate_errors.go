package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a translation failure. It is set where the failure
// happens and drives retry decisions and user-facing handling.
type ErrorKind string

const (
	ErrorKindAuth            ErrorKind = "auth_error"
	ErrorKindRateLimited     ErrorKind = "rate_limited"
	ErrorKindRequestFailed   ErrorKind = "request_failed"
	ErrorKindInvalidResponse ErrorKind = "invalid_response_format"
	ErrorKindJSONParse       ErrorKind = "json_parse_error"
	ErrorKindNetwork         ErrorKind = "network_error"
	ErrorKindValidation      ErrorKind = "validation_error"
)

func (k ErrorKind) String() string { return string(k) }

// TranslationError is a classified failure of a translation call.
// Status carries the upstream HTTP status when there was one.
type TranslationError struct {
	Kind   ErrorKind
	Status int
	Err    error
}

// NewTranslationError builds a TranslationError.
func NewTranslationError(kind ErrorKind, status int, err error) *TranslationError {
	return &TranslationError{Kind: kind, Status: status, Err: err}
}

func (e *TranslationError) Error() string {
	msg := string(e.Kind)
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TranslationError) Unwrap() error { return e.Err }

// Retryable reports whether another attempt may change the outcome.
func (e *TranslationError) Retryable() bool {
	return e.Kind == ErrorKindNetwork || e.Kind == ErrorKindRateLimited
}

// KindOf extracts the ErrorKind carried by err.
// Validation errors report ErrorKindValidation.
func KindOf(err error) (ErrorKind, bool) {
	var te *TranslationError
	if errors.As(err, &te) {
		return te.Kind, true
	}
	if errors.Is(err, ErrValidation) {
		return ErrorKindValidation, true
	}
	return "", false
}

// StatusOf returns the upstream HTTP status attached to err, or 0.
func StatusOf(err error) int {
	var te *TranslationError
	if errors.As(err, &te) {
		return te.Status
	}
	return 0
}
