package equilibrium

import (
	"errors"
	"fmt"
)

// DomainError represents an input outside the physically or UI-valid range.
//
// Domain errors are recoverable: the shell should clamp the input or
// re-prompt. The slider is contracted to never emit an out-of-range
// concentration, but the solver defends against it anyway.
type DomainError struct {
	// Code identifies the error category.
	Code DomainErrorCode

	// Message is a human-readable description.
	Message string

	// Value is the offending input.
	Value float64
}

// DomainErrorCode categorizes domain errors.
type DomainErrorCode string

const (
	// ErrCodeConcentrationRange indicates a concentration outside
	// [chem.MinConcentration, chem.MaxConcentration].
	ErrCodeConcentrationRange DomainErrorCode = "CONCENTRATION_RANGE"

	// ErrCodeNonpositiveConcentration indicates a concentration <= 0.
	ErrCodeNonpositiveConcentration DomainErrorCode = "NONPOSITIVE_CONCENTRATION"

	// ErrCodeNoClosedForm indicates a category the single-species solver
	// does not cover (buffers go through the titration tracker).
	ErrCodeNoClosedForm DomainErrorCode = "NO_CLOSED_FORM"
)

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s (value=%g)", e.Code, e.Message, e.Value)
}

// IsDomainError returns true if err is a DomainError.
// Uses errors.As to handle wrapped errors.
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}
