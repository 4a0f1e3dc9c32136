package errors

import (
	"errors"
	"fmt"
	"syscall"
)

// Common error types used across the atomicdbg library

var (
	// ErrClosed indicates that an operation was attempted on a closed resource
	ErrClosed = errors.New("resource is closed")

	// ErrFormat indicates that a message could not be rendered or written
	// to its destination
	ErrFormat = errors.New("formatting error")

	// ErrEncodingSwitched indicates that the destination changed between the
	// byte and console encodings while data was still buffered
	ErrEncodingSwitched = errors.New("destination encoding switched mid-write")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// ValidationError describes a configuration value that failed validation.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// NewValidationError creates a ValidationError without a hint.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches a hint and returns the same error for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap returns ErrInvalidConfiguration.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// OperationError records the module and operation that failed along with
// the underlying cause.
type OperationError struct {
	Module    string
	Operation string
	Cause     error
	Context   string
}

// NewOperationError creates an OperationError wrapping cause.
func NewOperationError(module, operation string, cause error) *OperationError {
	return &OperationError{
		Module:    module,
		Operation: operation,
		Cause:     cause,
	}
}

// WithContext attaches context and returns the same error for chaining.
func (e *OperationError) WithContext(context string) *OperationError {
	e.Context = context
	return e
}

func (e *OperationError) Error() string {
	msg := fmt.Sprintf("%s.%s failed: %v", e.Module, e.Operation, e.Cause)
	if e.Context != "" {
		msg += " (" + e.Context + ")"
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *OperationError) Unwrap() error {
	return e.Cause
}

// NewFormatError wraps a destination failure so that it matches both
// ErrFormat and the original cause.
func NewFormatError(module, operation string, cause error) *OperationError {
	if errors.Is(cause, ErrFormat) {
		return NewOperationError(module, operation, cause)
	}
	return NewOperationError(module, operation, fmt.Errorf("%w: %w", ErrFormat, cause))
}

// IsInterrupted returns true if the error is an interrupted system call
// (EINTR). Such writes are retried without losing data.
func IsInterrupted(err error) bool {
	return errors.Is(err, syscall.EINTR)
}

// IsRetryable returns true if the error indicates a condition that might
// be resolved by retrying the operation
func IsRetryable(err error) bool {
	return IsInterrupted(err)
}

// IsFormatError returns true if the error is a formatting failure,
// including an encoding switch.
func IsFormatError(err error) bool {
	return errors.Is(err, ErrFormat) || errors.Is(err, ErrEncodingSwitched)
}

// IsValidationError returns true if the error is a ValidationError
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
