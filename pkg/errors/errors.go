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

	// Destination errors
	ErrDestinationExists ErrorCode = "DESTINATION_EXISTS"

	// Naming errors
	ErrNameResolution ErrorCode = "NAME_RESOLUTION"
	ErrInvalidName    ErrorCode = "INVALID_NAME"

	// Source survey errors
	ErrAmbiguousBinary  ErrorCode = "AMBIGUOUS_BINARY"
	ErrDuplicateLibrary ErrorCode = "DUPLICATE_LIBRARY"

	// Version control errors
	ErrAmbiguousVcs ErrorCode = "AMBIGUOUS_VCS"
	ErrVcsInit      ErrorCode = "VCS_INIT"

	// Manifest errors
	ErrAuthorResolution ErrorCode = "AUTHOR_RESOLUTION"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// KilnError represents a structured error with code and details
type KilnError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *KilnError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *KilnError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *KilnError) Is(target error) bool {
	var targetErr *KilnError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new KilnError with the given code and message
func New(code ErrorCode, message string) *KilnError {
	return &KilnError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new KilnError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *KilnError {
	return &KilnError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a KilnError
func Wrap(err error, code ErrorCode, message string) *KilnError {
	if err == nil {
		return nil
	}
	return &KilnError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *KilnError {
	if err == nil {
		return nil
	}
	return &KilnError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *KilnError) WithDetail(key string, value interface{}) *KilnError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *KilnError) WithDetails(details map[string]interface{}) *KilnError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error, or any KilnError it wraps, has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		var kilnErr *KilnError
		if !errors.As(err, &kilnErr) {
			return false
		}
		if kilnErr.Code == code {
			return true
		}
		err = kilnErr.Wrapped
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a KilnError
func GetErrorCode(err error) ErrorCode {
	var kilnErr *KilnError
	if errors.As(err, &kilnErr) {
		return kilnErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a KilnError
func GetErrorDetails(err error) map[string]interface{} {
	var kilnErr *KilnError
	if errors.As(err, &kilnErr) {
		return kilnErr.Details
	}
	return nil
}

// Causes returns the message of err followed by the messages of every error
// in its chain. A KilnError contributes its Message; the first plain error
// found ends the chain with its full text.
func Causes(err error) []string {
	var causes []string
	for err != nil {
		var kilnErr *KilnError
		if !errors.As(err, &kilnErr) {
			causes = append(causes, err.Error())
			break
		}
		causes = append(causes, kilnErr.Message)
		err = kilnErr.Wrapped
	}
	return causes
}
