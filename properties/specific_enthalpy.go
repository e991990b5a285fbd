package properties

import (
	"fmt"

	"thermo/units"
)

// SpecificEnthalpy is the enthalpy per unit of mass of a substance.
type SpecificEnthalpy struct {
	specificEnergy units.Quantity
}

var _ units.Measure = SpecificEnthalpy{}

func NewSpecificEnthalpy(specificEnergy units.Quantity) (SpecificEnthalpy, error) {
	if specificEnergy.Dimension() != units.SpecificEnergy {
		return SpecificEnthalpy{}, fmt.Errorf("%w: specific energy quantity is needed, got %q", units.ErrUnitMismatch, specificEnergy.Dimension())
	}
	return SpecificEnthalpy{specificEnergy: specificEnergy}, nil
}

func MustSpecificEnthalpy(specificEnergy units.Quantity) SpecificEnthalpy {
	h, err := NewSpecificEnthalpy(specificEnergy)
	if err != nil {
		panic(err)
	}
	return h
}

func (h SpecificEnthalpy) Dimension() units.Dimension {
	return units.SpecificEnthalpy
}

func (h SpecificEnthalpy) Quantity() units.Quantity {
	return h.specificEnergy
}

func (h SpecificEnthalpy) SpecificEnergy() units.Quantity {
	return h.specificEnergy
}

func (h SpecificEnthalpy) Float64() float64 {
	return h.specificEnergy.Float64()
}

func (h SpecificEnthalpy) Int() int {
	return h.specificEnergy.Int()
}

func (h SpecificEnthalpy) Scale(k float64) SpecificEnthalpy {
	return SpecificEnthalpy{specificEnergy: h.specificEnergy.Scale(k)}
}

func (h SpecificEnthalpy) Add(o units.Measure) (SpecificEnthalpy, error) {
	q, err := operand(h, o, units.SpecificEnergy)
	if err != nil {
		return SpecificEnthalpy{}, err
	}
	r, err := h.specificEnergy.Add(q)
	if err != nil {
		return SpecificEnthalpy{}, err
	}
	return SpecificEnthalpy{specificEnergy: r}, nil
}

func (h SpecificEnthalpy) Sub(o units.Measure) (SpecificEnthalpy, error) {
	q, err := operand(h, o, units.SpecificEnergy)
	if err != nil {
		return SpecificEnthalpy{}, err
	}
	return h.Add(q.Scale(-1))
}

// Mul multiplies the wrapped specific energy by q and returns the raw
// result. Multiplying by a mass gives an energy quantity.
func (h SpecificEnthalpy) Mul(q units.Quantity) (units.Quantity, error) {
	return h.specificEnergy.Mul(q)
}
