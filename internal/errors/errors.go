package errors

import (
	"errors"
	"fmt"
)

// Exit codes for rampctl
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitRampNotFound = 2
	ExitKeyNotFound  = 3
	ExitCapacity     = 4
	ExitParseError   = 5
	ExitConfigError  = 6
	ExitStoreError   = 7
)

// RampError is the base error type for rampctl
type RampError struct {
	Code    int
	Message string
	Cause   error
}

func (e *RampError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *RampError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *RampError) ExitCode() int {
	return e.Code
}

// New creates a new RampError
func New(code int, message string) *RampError {
	return &RampError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a RampError
func Wrap(code int, message string, cause error) *RampError {
	return &RampError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// RampNotFound returns an error for a missing ramp document
func RampNotFound(name string) *RampError {
	return New(ExitRampNotFound, fmt.Sprintf("ramp not found: %s", name))
}

// KeyNotFound returns an error for a missing key index
func KeyNotFound(index int) *RampError {
	return New(ExitKeyNotFound, fmt.Sprintf("no key at index %d", index))
}

// CapacityExceeded returns an error when the key index space is exhausted
func CapacityExceeded() *RampError {
	return New(ExitCapacity, "key capacity exhausted: all interior indices are in use")
}

// ParseError returns an error for an unparsable parameter name.
// Malformed names are a data-integrity fault; operations must reject
// rather than guess an index.
func ParseError(name string) *RampError {
	return New(ExitParseError, fmt.Sprintf("malformed parameter name: %q", name))
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *RampError {
	return Wrap(ExitConfigError, message, cause)
}

// StoreError returns an error for parameter store operations
func StoreError(op string, cause error) *RampError {
	return Wrap(ExitStoreError, fmt.Sprintf("store %s failed", op), cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *RampError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var rampErr *RampError
	if errors.As(err, &rampErr) {
		return rampErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
