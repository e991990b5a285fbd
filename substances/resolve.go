// Package substances provides typed views of water states resolved from a
// state table. Every model is built from exactly one known property and is
// immutable afterwards.
package substances

import (
	"errors"
	"fmt"

	"thermo/properties"
	"thermo/tables"
	"thermo/units"
)

// ErrNoTable is returned when a model is constructed without a state table.
var ErrNoTable = errors.New("no state table given")

// State is implemented by every water model.
type State interface {
	Name() string
	Temperature() units.Quantity
	Pressure() units.Quantity
	Row() tables.Row
}

// Phase is a single phase state that can fill a container.
type Phase interface {
	State
	Volume() units.Quantity
	Energy() units.Quantity
	Enthalpy() properties.SpecificEnthalpy
	Entropy() units.Quantity
}

// lookup tells which table index resolves a dimension and in which unit
// the index is tabulated.
type lookup struct {
	key  tables.Key
	unit units.Unit
}

type lookups map[units.Dimension]lookup

var saturationLookups = lookups{
	units.Temperature: {tables.KeyTemperature, units.Celsius},
	units.Pressure:    {tables.KeyPressure, units.KiloPascal},
}

func (l lookups) with(d units.Dimension, e lookup) lookups {
	r := lookups{d: e}
	for k, v := range l {
		r[k] = v
	}
	return r
}

// findState resolves the table row described by known. Dimensions listed in
// ambiguous do not identify a single state.
func findState(name string, t *tables.Table, known units.Measure, l lookups, ambiguous ...units.Dimension) (tables.Row, error) {
	if t == nil {
		return tables.Row{}, ErrNoTable
	}
	if known == nil || !known.Quantity().Defined() {
		return tables.Row{}, fmt.Errorf("%w: unit instance is needed", units.ErrUndefinedUnit)
	}
	d := known.Dimension()
	for _, a := range ambiguous {
		if d == a {
			return tables.Row{}, fmt.Errorf("%w: %s has ambiguous %s", tables.ErrUnknownState, name, d)
		}
	}
	e, ok := l[d]
	if !ok {
		return tables.Row{}, fmt.Errorf("%w: %s is not supported for %s", units.ErrUnitNotSupported, d, name)
	}
	v, err := units.From(known, e.unit)
	if err != nil {
		return tables.Row{}, err
	}
	row, err := t.FindState(e.key, v.Value())
	if err != nil {
		return tables.Row{}, fmt.Errorf("%s: %w", name, err)
	}
	log.Debug("resolved {{substance}} by {{key}}={{value}}", "substance", name, "key", e.key, "value", v.Value())
	return row, nil
}

func celsius(v float64) units.Quantity {
	return units.Must(v, units.Celsius)
}

func kiloPascal(v float64) units.Quantity {
	return units.Must(v, units.KiloPascal)
}

func specificVolume(v float64) units.Quantity {
	return units.Must(v, units.CubicMeterPerKilogram)
}

func specificEnergy(v float64) units.Quantity {
	return units.Must(v, units.KiloJoulePerKilogram)
}

func specificEnthalpy(v float64) properties.SpecificEnthalpy {
	return properties.MustSpecificEnthalpy(specificEnergy(v))
}

func entropy(v float64) units.Quantity {
	return units.Must(v, units.KiloJoulePerKilogramKelvin)
}
