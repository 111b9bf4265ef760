package service

import (
	"errors"
	"fmt"
)

// Sentinel errors for the contact flow
var (
	ErrSpamDetected     = errors.New("spam detected (honeypot)")
	ErrCaptchaInvalid   = errors.New("captcha invalid")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrValidation       = errors.New("validation error")
)

// FieldError describes one rejected submission field
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

// ValidationError carries the per-field failures of a submission
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %d invalid field(s)", len(e.Fields))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// CaptchaServiceError is returned when the verification service could not be reached
// or answered with something unreadable. It is not a verdict on the token.
type CaptchaServiceError struct {
	Err error
}

func (e *CaptchaServiceError) Error() string {
	return e.Err.Error()
}

func (e *CaptchaServiceError) Unwrap() error {
	return e.Err
}

// EmailServiceError wraps a failure of the mail provider. Error returns the
// provider's own message so it can be passed to the caller unchanged.
type EmailServiceError struct {
	Provider string
	Err      error
}

func (e *EmailServiceError) Error() string {
	return e.Err.Error()
}

func (e *EmailServiceError) Unwrap() error {
	return e.Err
}
