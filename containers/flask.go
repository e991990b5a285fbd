// Package containers holds amounts of a substance and mixes them by
// conservation of enthalpy.
package containers

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"thermo/properties"
	"thermo/substances"
	"thermo/tables"
	"thermo/units"
)

var (
	// ErrUnsupportedOperation is returned when containers holding different
	// kinds of substance are combined.
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrNoSubstance          = errors.New("no substance given")
)

// Flask is a plain container filled with a single phase substance.
type Flask struct {
	ID        uuid.UUID
	substance substances.Phase
	mass      units.Quantity
	volume    units.Quantity
	energy    units.Quantity
	enthalpy  properties.Enthalpy
}

// Fill puts amount of s into a new flask. The amount is a mass or a volume;
// a volume is turned into mass through the specific volume of s. s must be
// a resolved model; a nil interface fails with ErrNoSubstance, a typed nil
// pointer is a programming error.
func Fill(s substances.Phase, amount units.Quantity) (*Flask, error) {
	if s == nil {
		return nil, ErrNoSubstance
	}
	var mass units.Quantity
	var err error
	switch amount.Dimension() {
	case units.Mass:
		mass = amount
	case units.Volume:
		mass, err = amount.Div(s.Volume())
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: cannot fill a flask with %q", units.ErrUnitNotSupported, amount.Dimension())
	}

	f := &Flask{ID: uuid.New(), substance: s, mass: mass}
	if f.volume, err = s.Volume().Mul(mass); err != nil {
		return nil, err
	}
	if f.energy, err = s.Energy().Mul(mass); err != nil {
		return nil, err
	}
	h, err := s.Enthalpy().Mul(mass)
	if err != nil {
		return nil, err
	}
	if f.enthalpy, err = properties.NewEnthalpy(h); err != nil {
		return nil, err
	}
	log.Debug("filled flask {{id}} with {{mass}} kg of {{substance}}", "id", f.ID, "mass", mass.MustIn(units.Kilogram).Value(), "substance", s.Name())
	return f, nil
}

func (f *Flask) Substance() substances.Phase   { return f.substance }
func (f *Flask) Mass() units.Quantity          { return f.mass }
func (f *Flask) Volume() units.Quantity        { return f.volume }
func (f *Flask) Energy() units.Quantity        { return f.energy }
func (f *Flask) Enthalpy() properties.Enthalpy { return f.enthalpy }

// Mixture is the result of combining the content of two flasks.
type Mixture struct {
	Mass             units.Quantity
	SpecificEnthalpy properties.SpecificEnthalpy
}

// Mix combines two flasks of the same substance kind. The mixed specific
// enthalpy is the mass weighted average (h1*m1 + h2*m2) / (m1+m2).
func Mix(a, b *Flask) (Mixture, error) {
	if a == nil || b == nil {
		return Mixture{}, ErrNoSubstance
	}
	if a.substance.Name() != b.substance.Name() {
		return Mixture{}, fmt.Errorf("%w: cannot mix %s with %s", ErrUnsupportedOperation, a.substance.Name(), b.substance.Name())
	}
	mass, err := a.mass.Add(b.mass)
	if err != nil {
		return Mixture{}, err
	}
	h, err := a.enthalpy.Add(b.enthalpy)
	if err != nil {
		return Mixture{}, err
	}
	sh, err := h.Div(mass)
	if err != nil {
		return Mixture{}, err
	}
	log.Debug("mixed flasks {{a}} and {{b}}", "a", a.ID, "b", b.ID, "specific_enthalpy", sh.Float64())
	return Mixture{Mass: mass, SpecificEnthalpy: sh}, nil
}

// MixWater mixes two flasks of saturated water and resolves the resulting
// saturated state from the mixed specific enthalpy.
func MixWater(t *tables.Table, a, b *Flask) (*Flask, error) {
	for _, f := range []*Flask{a, b} {
		if f == nil {
			return nil, ErrNoSubstance
		}
		if _, ok := f.substance.(*substances.SaturatedWater); !ok {
			return nil, fmt.Errorf("%w: %s is not saturated water", ErrUnsupportedOperation, f.substance.Name())
		}
	}
	m, err := Mix(a, b)
	if err != nil {
		return nil, err
	}
	w, err := substances.NewSaturatedWater(t, m.SpecificEnthalpy)
	if err != nil {
		return nil, err
	}
	return Fill(w, m.Mass)
}
