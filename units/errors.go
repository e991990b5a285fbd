package units

import (
	"errors"
	"fmt"
)

var (
	// ErrUnitNotSupported is returned for abstract or unknown units and for
	// dimensions a lookup does not support.
	ErrUnitNotSupported = errors.New("unit not supported")
	// ErrUndefinedUnit is returned when a value carries no unit at all.
	ErrUndefinedUnit = errors.New("undefined unit")
	// ErrUnitMismatch is returned when a value of the wrong dimension is
	// used where a specific one is required.
	ErrUnitMismatch = errors.New("unit mismatch")
	// ErrUnlogicalOperation is matched by every *UnlogicalOperationError.
	ErrUnlogicalOperation = errors.New("cannot operate different physical properties")
	ErrDivisionByZero     = errors.New("division by zero")
)

// UnlogicalOperationError reports arithmetic between dimensions that have no
// defined combination.
type UnlogicalOperationError struct {
	Op string
	A  Dimension
	B  Dimension
}

func NewUnlogicalOperationError(op string, a, b Dimension) error {
	return &UnlogicalOperationError{Op: op, A: a, B: b}
}

func (e *UnlogicalOperationError) Error() string {
	return fmt.Sprintf("cannot %s different physical properties: %s and %s", e.Op, e.A, e.B)
}

func (e *UnlogicalOperationError) Is(target error) bool {
	return target == ErrUnlogicalOperation
}
