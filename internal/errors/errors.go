package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// ParseFailure indicates the source text could not be parsed even with error recovery
	ParseFailure ErrorCode = "PARSE_FAILURE"
	// UnsupportedFramework indicates the file uses neither WebdriverIO nor Playwright signatures
	UnsupportedFramework ErrorCode = "UNSUPPORTED_FRAMEWORK"
	// InvalidParameter indicates a malformed tool or CLI parameter
	InvalidParameter ErrorCode = "INVALID_PARAMETER"
	// HistoryUnavailable indicates the migration history store could not be opened
	HistoryUnavailable ErrorCode = "HISTORY_UNAVAILABLE"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// MigrationError represents a testmig error with code, message, and optional details
type MigrationError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	cause   error       // Underlying error (not exported to JSON)
}

// New creates a new MigrationError
func New(code ErrorCode, message string, cause error) *MigrationError {
	return &MigrationError{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// NewParseFailure creates a ParseFailure error for a single file
func NewParseFailure(file string, cause error) *MigrationError {
	msg := "source could not be parsed"
	if file != "" {
		msg = fmt.Sprintf("source could not be parsed: %s", file)
	}
	return New(ParseFailure, msg, cause)
}

// NewInvalidParameter creates an InvalidParameter error
func NewInvalidParameter(name, reason string) *MigrationError {
	return New(InvalidParameter, fmt.Sprintf("invalid parameter %q: %s", name, reason), nil)
}

// Error implements the error interface
func (e *MigrationError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *MigrationError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *MigrationError) WithDetails(details interface{}) *MigrationError {
	e.Details = details
	return e
}

// As wraps the standard library errors.As so callers don't need a second import
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Is wraps the standard library errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// CodeOf extracts the stable code from an error chain, or InternalError if none
func CodeOf(err error) ErrorCode {
	var me *MigrationError
	if As(err, &me) {
		return me.Code
	}
	return InternalError
}
