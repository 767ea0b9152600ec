package config

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Use errors.Is to classify an error returned by this module.
var (
	// ErrResourceUnavailable is matched by errors caused by a missing, empty or
	// unreadable configuration source.
	ErrResourceUnavailable = errors.New("resource unavailable")
	// ErrInvalidParameter is matched by errors caused by an override value.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInvalidConfiguration is matched by errors caused by the shape of a base
	// configuration.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// ResourceError reports a configuration source that cannot be used.
type ResourceError struct {
	Path   string
	Reason string
	Err    error
}

// Error implements the error interface
func (re *ResourceError) Error() string {
	msg := fmt.Sprintf("config file %s: %s", re.Path, re.Reason)
	if re.Err != nil {
		msg += ": " + re.Err.Error()
	}
	return msg
}

// Is reports ErrResourceUnavailable as the kind of every ResourceError.
func (re *ResourceError) Is(target error) bool {
	return target == ErrResourceUnavailable
}

func (re *ResourceError) Unwrap() error {
	return re.Err
}

// ParameterError reports an override value that failed validation. Value holds the
// raw input exactly as the caller supplied it.
type ParameterError struct {
	Parameter string
	Value     string
	Message   string
}

// Error implements the error interface
func (pe *ParameterError) Error() string {
	if pe.Value == "" {
		return fmt.Sprintf("parameter %s: %s", pe.Parameter, pe.Message)
	}
	return fmt.Sprintf("parameter %s: %s: %q", pe.Parameter, pe.Message, pe.Value)
}

// Is reports ErrInvalidParameter as the kind of every ParameterError.
func (pe *ParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// NewParameterError creates a parameter validation error for the given raw value.
func NewParameterError(parameter, value, message string) *ParameterError {
	return &ParameterError{
		Parameter: parameter,
		Value:     value,
		Message:   message,
	}
}

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// Is reports ErrInvalidConfiguration as the kind of every ValidationError.
func (ve ValidationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	var messages []string
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// Is reports ErrInvalidConfiguration for a non-empty collection.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrInvalidConfiguration && len(ve) > 0
}

// HasErrors returns true if there are any validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add adds a new validation error
func (ve *ValidationErrors) Add(field, message string, value ...interface{}) {
	var val interface{}
	if len(value) > 0 {
		val = value[0]
	}
	*ve = append(*ve, ValidationError{
		Field:   field,
		Value:   val,
		Message: message,
	})
}
