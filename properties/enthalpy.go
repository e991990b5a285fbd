// Package properties provides named thermodynamic properties built on top of
// raw quantities. Dividing an enthalpy by a mass raises it to a specific
// enthalpy, multiplying a specific enthalpy reduces it back to a raw
// quantity.
package properties

import (
	"fmt"

	"thermo/units"
)

// Enthalpy is the heat content of a system, measured as energy.
type Enthalpy struct {
	energy units.Quantity
}

var _ units.Measure = Enthalpy{}

// NewEnthalpy wraps an energy quantity.
func NewEnthalpy(energy units.Quantity) (Enthalpy, error) {
	if energy.Dimension() != units.Energy {
		return Enthalpy{}, fmt.Errorf("%w: energy quantity is needed, got %q", units.ErrUnitMismatch, energy.Dimension())
	}
	return Enthalpy{energy: energy}, nil
}

// MustEnthalpy is like NewEnthalpy but panics.
func MustEnthalpy(energy units.Quantity) Enthalpy {
	h, err := NewEnthalpy(energy)
	if err != nil {
		panic(err)
	}
	return h
}

func (h Enthalpy) Dimension() units.Dimension {
	return units.Enthalpy
}

func (h Enthalpy) Quantity() units.Quantity {
	return h.energy
}

func (h Enthalpy) Energy() units.Quantity {
	return h.energy
}

func (h Enthalpy) Float64() float64 {
	return h.energy.Float64()
}

func (h Enthalpy) Int() int {
	return h.energy.Int()
}

func (h Enthalpy) Scale(k float64) Enthalpy {
	return Enthalpy{energy: h.energy.Scale(k)}
}

// Add accepts another enthalpy, a raw energy quantity or a dimensionless
// number.
func (h Enthalpy) Add(o units.Measure) (Enthalpy, error) {
	q, err := operand(h, o, units.Energy)
	if err != nil {
		return Enthalpy{}, err
	}
	r, err := h.energy.Add(q)
	if err != nil {
		return Enthalpy{}, err
	}
	return Enthalpy{energy: r}, nil
}

func (h Enthalpy) Sub(o units.Measure) (Enthalpy, error) {
	q, err := operand(h, o, units.Energy)
	if err != nil {
		return Enthalpy{}, err
	}
	return h.Add(q.Scale(-1))
}

// Div divides the enthalpy by a mass yielding the specific enthalpy. Every
// other divisor, plain numbers included, is rejected; use Scale to divide by
// a number.
func (h Enthalpy) Div(mass units.Quantity) (SpecificEnthalpy, error) {
	if mass.Dimension() != units.Mass {
		return SpecificEnthalpy{}, units.NewUnlogicalOperationError("divide", units.Enthalpy, mass.Dimension())
	}
	se, err := h.energy.Div(mass)
	if err != nil {
		return SpecificEnthalpy{}, err
	}
	return NewSpecificEnthalpy(se)
}

// operand unwraps o for arithmetic with p. It accepts a wrapper of the same
// property, a raw quantity of the wrapped dimension or a dimensionless
// number.
func operand(p units.Measure, o units.Measure, raw units.Dimension) (units.Quantity, error) {
	if o == nil {
		return units.Quantity{}, units.ErrUndefinedUnit
	}
	switch o.Dimension() {
	case p.Dimension(), raw, units.Dimensionless:
		return o.Quantity(), nil
	}
	return units.Quantity{}, units.NewUnlogicalOperationError("add", p.Dimension(), o.Dimension())
}
