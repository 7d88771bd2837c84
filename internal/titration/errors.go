package titration

import (
	"errors"
	"fmt"

	"github.com/probeworks/phmeter/internal/chem"
)

// UnsupportedOperationError represents an operation invoked on a session
// that cannot perform it, e.g. titrating a strong acid. Recoverable: the
// shell should disable the offending control.
type UnsupportedOperationError struct {
	// Code identifies the error category.
	Code UnsupportedOperationCode

	// Message is a human-readable description.
	Message string

	// Operation names the rejected operation.
	Operation string

	// Category is the active solution's category, if a session exists.
	Category chem.Category
}

// UnsupportedOperationCode categorizes unsupported-operation errors.
type UnsupportedOperationCode string

const (
	// ErrCodeNoSolution indicates no solution has been selected.
	ErrCodeNoSolution UnsupportedOperationCode = "NO_SOLUTION"

	// ErrCodeNotTitratable indicates the category does not accept drops.
	ErrCodeNotTitratable UnsupportedOperationCode = "NOT_TITRATABLE"

	// ErrCodeConcentrationFixed indicates the category has no adjustable
	// concentration (water, household, buffers via their own setter).
	ErrCodeConcentrationFixed UnsupportedOperationCode = "CONCENTRATION_FIXED"

	// ErrCodeProbeNotInserted indicates a drop was sent with no probe in
	// the solution.
	ErrCodeProbeNotInserted UnsupportedOperationCode = "PROBE_NOT_INSERTED"

	// ErrCodeInvalidReagent indicates a reagent outside acid|base.
	ErrCodeInvalidReagent UnsupportedOperationCode = "INVALID_REAGENT"
)

// Error implements the error interface.
func (e *UnsupportedOperationError) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("%s: %s (operation=%s, category=%s)", e.Code, e.Message, e.Operation, e.Category)
	}
	return fmt.Sprintf("%s: %s (operation=%s)", e.Code, e.Message, e.Operation)
}

// IsUnsupportedOperation returns true if err is an UnsupportedOperationError.
// Uses errors.As to handle wrapped errors.
func IsUnsupportedOperation(err error) bool {
	var ue *UnsupportedOperationError
	return errors.As(err, &ue)
}

func errNoSolution(operation string) *UnsupportedOperationError {
	return &UnsupportedOperationError{
		Code:      ErrCodeNoSolution,
		Message:   "no solution selected",
		Operation: operation,
	}
}
