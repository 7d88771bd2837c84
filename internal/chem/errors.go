package chem

import (
	"errors"
	"fmt"
)

// ConfigurationError represents misconfigured or unknown species data.
//
// Configuration errors are programmer/data errors, not user errors: the
// presentation shell must never let an unregistered name or an invalid
// catalog reach the engine. They should abort the measurement session.
type ConfigurationError struct {
	// Code identifies the error category.
	Code ConfigurationErrorCode

	// Message is a human-readable description.
	Message string

	// Name identifies the affected solution, if any.
	Name string
}

// ConfigurationErrorCode categorizes configuration errors.
type ConfigurationErrorCode string

const (
	// ErrCodeUnknownSolution indicates a lookup for a name not in the catalog.
	ErrCodeUnknownSolution ConfigurationErrorCode = "UNKNOWN_SOLUTION"

	// ErrCodeInvalidSpec indicates a spec whose fields don't satisfy its category.
	ErrCodeInvalidSpec ConfigurationErrorCode = "INVALID_SPEC"

	// ErrCodeDuplicateSolution indicates two catalog entries sharing a key.
	ErrCodeDuplicateSolution ConfigurationErrorCode = "DUPLICATE_SOLUTION"

	// ErrCodeCatalogLoad indicates the CUE catalog failed to load or validate.
	ErrCodeCatalogLoad ConfigurationErrorCode = "CATALOG_LOAD"
)

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %s (solution=%q)", e.Code, e.Message, e.Name)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsConfigurationError returns true if err is a ConfigurationError.
// Uses errors.As to handle wrapped errors.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// NewUnknownSolutionError creates a ConfigurationError for a failed lookup.
func NewUnknownSolutionError(name string) *ConfigurationError {
	return &ConfigurationError{
		Code:    ErrCodeUnknownSolution,
		Message: "solution is not registered in the catalog",
		Name:    name,
	}
}

// NewInvalidSpecError creates a ConfigurationError for a spec that fails
// per-category validation.
func NewInvalidSpecError(name, message string) *ConfigurationError {
	return &ConfigurationError{
		Code:    ErrCodeInvalidSpec,
		Message: message,
		Name:    name,
	}
}
