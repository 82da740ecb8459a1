package bwsort

import (
	"fmt"
)

// ComparisonError represents an error that occurred during line comparison
type ComparisonError struct {
	// Cause is the original panic or error that occurred during comparison
	Cause interface{}
	// Context provides additional information about when the comparison failed
	Context string
}

func (e *ComparisonError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("comparison panic in %s: %v", e.Context, e.Cause)
	}
	return fmt.Sprintf("comparison panic: %v", e.Cause)
}

func (e *ComparisonError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// NewComparisonError creates a ComparisonError
func NewComparisonError(cause interface{}, context string) error {
	return &ComparisonError{Cause: cause, Context: context}
}

// DisorderError reports the first out of order line found by Check.
type DisorderError struct {
	// File is the name the input was read from
	File string
	// Line is the zero-based position of the offending line
	Line int
	// Message is the formatted disorder warning
	Message string
}

func (e *DisorderError) Error() string {
	return e.Message
}

// NewIOError wraps an error of the input or output stream
func NewIOError(err error, operation, name string) error {
	if name != "" {
		return fmt.Errorf("i/o error during %s on %s: %w", operation, name, err)
	}
	return fmt.Errorf("i/o error during %s: %w", operation, err)
}

// ConfigError represents an error in configuration parameters
type ConfigError struct {
	// Field is the name of the configuration field that's invalid
	Field string
	// Value is the invalid value provided
	Value interface{}
	// Reason explains why the value is invalid
	Reason string
	// Err is the underlying error, if any
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config error in field %s (value: %v): %s: %v", e.Field, e.Value, e.Reason, e.Err)
	}
	return fmt.Sprintf("config error in field %s (value: %v): %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
