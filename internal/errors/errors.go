// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInvalidDuration indicates a study duration with zero or negative months
	TypeInvalidDuration Type = "INVALID_DURATION"

	// TypeMissingRegion indicates a school referencing a region absent from the catalog
	TypeMissingRegion Type = "MISSING_REGION"

	// TypeMissingRate indicates a currency without a conversion rate
	TypeMissingRate Type = "MISSING_RATE"

	// TypeUnknownCategory indicates a cost or fee category outside the closed set
	TypeUnknownCategory Type = "UNKNOWN_COST_CATEGORY"

	// TypeInput indicates an input validation error
	TypeInput Type = "INPUT_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// InvalidDuration creates an invalid duration error
func InvalidDuration(message string) *Error {
	return New(TypeInvalidDuration, message)
}

// MissingRegion creates a missing region error
func MissingRegion(region string) *Error {
	return Newf(TypeMissingRegion, "region not found in catalog: %s", region)
}

// MissingRate creates a missing currency rate error
func MissingRate(currency string) *Error {
	return Newf(TypeMissingRate, "no conversion rate for currency: %s", currency)
}

// UnknownCategory creates an unknown cost category error
func UnknownCategory(kind, name string) *Error {
	return Newf(TypeUnknownCategory, "unknown %s category: %s", kind, name)
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
