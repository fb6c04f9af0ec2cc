// Package hpcbench structured error types for better error handling
package hpcbench

import (
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Configuration errors (bad size string, unknown kernel)
	ErrTypeConfig ErrorType = iota
	// Allocation errors (working set exceeds available memory)
	ErrTypeAlloc
	// Validation errors (checksum vs. analytic expectation mismatch)
	ErrTypeValidation
	// I/O errors (report writing)
	ErrTypeIO
)

// BenchError represents a structured error with context
type BenchError struct {
	Type    ErrorType
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error if any
}

// Error implements the error interface
func (e *BenchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("hpcbench %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("hpcbench %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *BenchError) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeConfig:
		return "Config"
	case ErrTypeAlloc:
		return "Allocation"
	case ErrTypeValidation:
		return "Validation"
	case ErrTypeIO:
		return "IO"
	default:
		return "Unknown"
	}
}

// NewConfigError creates a configuration-related error
func NewConfigError(op string, message string, err error) error {
	return &BenchError{
		Type:    ErrTypeConfig,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// NewAllocError creates an allocation-related error
func NewAllocError(op string, message string, err error) error {
	return &BenchError{
		Type:    ErrTypeAlloc,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// NewValidationError creates a validation-related error
func NewValidationError(op string, message string) error {
	return &BenchError{
		Type:    ErrTypeValidation,
		Op:      op,
		Message: message,
	}
}

// NewIOError creates an I/O-related error
func NewIOError(op string, message string, err error) error {
	return &BenchError{
		Type:    ErrTypeIO,
		Op:      op,
		Message: message,
		Err:     err,
	}
}
