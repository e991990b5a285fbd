package units

import (
	"fmt"
)

// Quantity is an immutable physical value expressed in a named unit.
// The zero Quantity carries no unit and is rejected by every operation.
type Quantity struct {
	value float64
	unit  Unit
}

var _ Measure = Quantity{}

// New creates a quantity of value measured in unit.
func New(value float64, unit Unit) (Quantity, error) {
	if _, err := lookup(unit); err != nil {
		return Quantity{}, err
	}
	return Quantity{value: value, unit: unit}, nil
}

// Must is like New but panics on an unsupported unit.
func Must(value float64, unit Unit) Quantity {
	q, err := New(value, unit)
	if err != nil {
		panic(fmt.Sprintf("invalid quantity: %v", err))
	}
	return q
}

// Number returns a dimensionless scalar.
func Number(k float64) Quantity {
	return Quantity{value: k, unit: Scalar}
}

// From converts another measure of the same dimension into unit.
func From(m Measure, unit Unit) (Quantity, error) {
	if m == nil {
		return Quantity{}, ErrUndefinedUnit
	}
	return m.Quantity().In(unit)
}

func (q Quantity) Value() float64 {
	return q.value
}

func (q Quantity) Unit() Unit {
	return q.unit
}

func (q Quantity) Symbol() string {
	return q.unit.Symbol()
}

func (q Quantity) Dimension() Dimension {
	return q.unit.Dimension()
}

func (q Quantity) Quantity() Quantity {
	return q
}

// Defined reports whether q carries a unit.
func (q Quantity) Defined() bool {
	return q.unit != ""
}

// Base returns the magnitude in the pivot unit of the dimension.
func (q Quantity) Base() float64 {
	return unitTable[q.unit].toBase(q.value)
}

// Float64 returns the magnitude in q's own unit.
func (q Quantity) Float64() float64 {
	return q.value
}

// Int returns the magnitude in q's own unit truncated toward zero.
func (q Quantity) Int() int {
	return int(q.value)
}

// In converts q into another unit of the same dimension, pivoting through
// the base value.
func (q Quantity) In(unit Unit) (Quantity, error) {
	if !q.Defined() {
		return Quantity{}, ErrUndefinedUnit
	}
	def, err := lookup(unit)
	if err != nil {
		return Quantity{}, err
	}
	if unit == q.unit {
		return q, nil
	}
	if def.dimension != q.Dimension() {
		return Quantity{}, fmt.Errorf("%w: cannot express %s as %s", ErrUnitMismatch, q.Dimension(), unit)
	}
	return Quantity{value: def.fromBase(q.Base()), unit: unit}, nil
}

// MustIn is like In but panics on failure.
func (q Quantity) MustIn(unit Unit) Quantity {
	r, err := q.In(unit)
	if err != nil {
		panic(err)
	}
	return r
}

// Scale multiplies the magnitude by k keeping the unit.
func (q Quantity) Scale(k float64) Quantity {
	return Quantity{value: q.value * k, unit: q.unit}
}

// Add sums two quantities of the same dimension, the result keeping q's
// unit. A dimensionless operand is added as a bare number.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	if !q.Defined() || !o.Defined() {
		return Quantity{}, ErrUndefinedUnit
	}
	switch {
	case o.Dimension() == q.Dimension():
		c, err := o.In(q.unit)
		if err != nil {
			return Quantity{}, err
		}
		return Quantity{value: q.value + c.value, unit: q.unit}, nil
	case o.Dimension() == Dimensionless:
		return Quantity{value: q.value + o.value, unit: q.unit}, nil
	default:
		return Quantity{}, NewUnlogicalOperationError("add", q.Dimension(), o.Dimension())
	}
}

// Sub is Add of the negated operand.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	return q.Add(o.Scale(-1))
}

// Mul multiplies q by o. Dimension pairs with a registered rule produce a
// quantity of the rule's result dimension, every other operand scales q by
// its own magnitude.
func (q Quantity) Mul(o Quantity) (Quantity, error) {
	if !q.Defined() || !o.Defined() {
		return Quantity{}, ErrUndefinedUnit
	}
	if r, ok := findRule(q.Dimension(), o.Dimension(), opMul); ok {
		return r(q, o)
	}
	logFallback(q, o, opMul)
	return q.Scale(o.value), nil
}

// Div divides q by o, following the same rule selection as Mul.
func (q Quantity) Div(o Quantity) (Quantity, error) {
	if !q.Defined() || !o.Defined() {
		return Quantity{}, ErrUndefinedUnit
	}
	if r, ok := findRule(q.Dimension(), o.Dimension(), opDiv); ok {
		return r(q, o)
	}
	if o.value == 0 {
		return Quantity{}, ErrDivisionByZero
	}
	logFallback(q, o, opDiv)
	return Quantity{value: q.value / o.value, unit: q.unit}, nil
}

// Equal reports whether both quantities describe the same base magnitude of
// the same dimension within tolerance tol. Undefined quantities are never
// equal.
func (q Quantity) Equal(o Quantity, tol float64) bool {
	if !q.Defined() || !o.Defined() || q.Dimension() != o.Dimension() {
		return false
	}
	d := q.Base() - o.Base()
	return d <= tol && d >= -tol
}
