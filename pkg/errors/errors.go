// Package errors provides coded errors for coloring-tee. Every error the
// core reports at startup or while writing carries a stable ErrorCode so the
// CLI can decide whether to abort, warn, or shut down cleanly.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors, fatal before any input is read
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Sink errors
	ErrSinkOpen   ErrorCode = "SINK_OPEN"
	ErrSinkWrite  ErrorCode = "SINK_WRITE"
	ErrSinkClosed ErrorCode = "SINK_CLOSED"

	// Input and shutdown
	ErrInputRead   ErrorCode = "INPUT_READ"
	ErrInterrupted ErrorCode = "INTERRUPTED"
)

// TeeError represents a structured error with code and details
type TeeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TeeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TeeError) Unwrap() error {
	return e.Wrapped
}

// Is matches any TeeError carrying the same code
func (e *TeeError) Is(target error) bool {
	var targetErr *TeeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TeeError with the given code and message
func New(code ErrorCode, message string) *TeeError {
	return &TeeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TeeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TeeError {
	return &TeeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TeeError
func Wrap(err error, code ErrorCode, message string) *TeeError {
	if err == nil {
		return nil
	}
	return &TeeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TeeError {
	if err == nil {
		return nil
	}
	return &TeeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TeeError) WithDetail(key string, value interface{}) *TeeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *TeeError) WithDetails(details map[string]interface{}) *TeeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var teeErr *TeeError
	if errors.As(err, &teeErr) {
		return teeErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TeeError
func GetErrorCode(err error) ErrorCode {
	var teeErr *TeeError
	if errors.As(err, &teeErr) {
		return teeErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TeeError
func GetErrorDetails(err error) map[string]interface{} {
	var teeErr *TeeError
	if errors.As(err, &teeErr) {
		return teeErr.Details
	}
	return nil
}

// IsConfigError reports whether err belongs to the configuration family,
// the errors that must stop the program before input is read
func IsConfigError(err error) bool {
	switch GetErrorCode(err) {
	case ErrConfigLoad, ErrConfigParse, ErrConfigInvalid:
		return true
	}
	return false
}
