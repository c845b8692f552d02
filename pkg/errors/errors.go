package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes. The set is closed: callers branch on codes, never on messages.
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	// ErrConfigInvalid marks a malformed bundle declaration or session setup
	// (missing name, duplicate name).
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Resolution errors
	ErrCircularDependency ErrorCode = "CIRCULAR_DEPENDENCY"

	// Transform errors
	ErrHookFailed     ErrorCode = "HOOK_FAILED"
	ErrPluginRequired ErrorCode = "PLUGIN_REQUIRED"
	ErrLFSPlaceholder ErrorCode = "LFS_PLACEHOLDER"
)

// PlugchainError represents a structured error with code and details
type PlugchainError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PlugchainError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PlugchainError) Unwrap() error {
	return e.Wrapped
}

// Is matches any PlugchainError carrying the same code
func (e *PlugchainError) Is(target error) bool {
	var targetErr *PlugchainError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PlugchainError with the given code and message
func New(code ErrorCode, message string) *PlugchainError {
	return &PlugchainError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PlugchainError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PlugchainError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. Returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *PlugchainError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PlugchainError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *PlugchainError) WithDetail(key string, value interface{}) *PlugchainError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *PlugchainError) WithDetails(details map[string]interface{}) *PlugchainError {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pcErr *PlugchainError
	if errors.As(err, &pcErr) {
		return pcErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PlugchainError
func GetErrorCode(err error) ErrorCode {
	var pcErr *PlugchainError
	if errors.As(err, &pcErr) {
		return pcErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PlugchainError
func GetErrorDetails(err error) map[string]interface{} {
	var pcErr *PlugchainError
	if errors.As(err, &pcErr) {
		return pcErr.Details
	}
	return nil
}

// IsSetupError reports whether err was raised while building a session
// (declaration or ordering problems) rather than while transforming data.
func IsSetupError(err error) bool {
	switch GetErrorCode(err) {
	case ErrConfigInvalid, ErrConfigLoad, ErrConfigParse, ErrCircularDependency, ErrNotFound:
		return true
	}
	return false
}
