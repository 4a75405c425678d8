package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Parse errors
	ErrMalformedAddress ErrorCode = "MALFORMED_ADDRESS"
	ErrMalformedPattern ErrorCode = "MALFORMED_PATTERN"

	// Manifest errors
	ErrManifestLoad  ErrorCode = "MANIFEST_LOAD"
	ErrManifestParse ErrorCode = "MANIFEST_PARSE"
)

// OscError represents a structured error with code and details
type OscError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *OscError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *OscError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *OscError) Is(target error) bool {
	var targetErr *OscError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new OscError with the given code and message
func New(code ErrorCode, message string) *OscError {
	return &OscError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new OscError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *OscError {
	return &OscError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an OscError
func Wrap(err error, code ErrorCode, message string) *OscError {
	if err == nil {
		return nil
	}
	return &OscError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *OscError {
	if err == nil {
		return nil
	}
	return &OscError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *OscError) WithDetail(key string, value interface{}) *OscError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var oscErr *OscError
	if errors.As(err, &oscErr) {
		return oscErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an OscError
func GetErrorCode(err error) ErrorCode {
	var oscErr *OscError
	if errors.As(err, &oscErr) {
		return oscErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an OscError
func GetErrorDetails(err error) map[string]interface{} {
	var oscErr *OscError
	if errors.As(err, &oscErr) {
		return oscErr.Details
	}
	return nil
}
