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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Layout document errors
	ErrLayoutRead    ErrorCode = "LAYOUT_READ"
	ErrLayoutParse   ErrorCode = "LAYOUT_PARSE"
	ErrLayoutEncode  ErrorCode = "LAYOUT_ENCODE"
	ErrLayoutWrite   ErrorCode = "LAYOUT_WRITE"
	ErrLayoutMissing ErrorCode = "LAYOUT_MISSING"

	// Storage errors
	ErrLockAcquire ErrorCode = "LOCK_ACQUIRE"
	ErrBackup      ErrorCode = "BACKUP"
	ErrFileAccess  ErrorCode = "FILE_ACCESS"

	// Notification errors
	ErrNotify ErrorCode = "NOTIFY"
)

// SpringcleanError represents a structured error with code and details
type SpringcleanError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SpringcleanError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SpringcleanError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SpringcleanError) Is(target error) bool {
	var targetErr *SpringcleanError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SpringcleanError with the given code and message
func New(code ErrorCode, message string) *SpringcleanError {
	return &SpringcleanError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SpringcleanError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SpringcleanError {
	return &SpringcleanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SpringcleanError
func Wrap(err error, code ErrorCode, message string) *SpringcleanError {
	if err == nil {
		return nil
	}
	return &SpringcleanError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SpringcleanError {
	if err == nil {
		return nil
	}
	return &SpringcleanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SpringcleanError) WithDetail(key string, value interface{}) *SpringcleanError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var scErr *SpringcleanError
	if errors.As(err, &scErr) {
		return scErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SpringcleanError
func GetErrorCode(err error) ErrorCode {
	var scErr *SpringcleanError
	if errors.As(err, &scErr) {
		return scErr.Code
	}
	return ErrUnknown
}
