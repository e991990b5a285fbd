package units

import (
	"fmt"
	"sort"
)

// Unit names a concrete measurement scale. Every unit maps onto the pivot
// (base) unit of its dimension with base = value*scale + offset.
type Unit string

const (
	Scalar Unit = "scalar"

	Kelvin     Unit = "kelvin"
	Celsius    Unit = "celsius"
	Fahrenheit Unit = "fahrenheit"

	Pascal     Unit = "pascal"
	KiloPascal Unit = "kilopascal"
	Bar        Unit = "bar"
	Atmosphere Unit = "atmosphere"
	PSI        Unit = "psi"

	CubicMeter Unit = "cubic_meter"
	Liter      Unit = "liter"

	Kilogram Unit = "kilogram"
	Gram     Unit = "gram"

	Joule     Unit = "joule"
	KiloJoule Unit = "kilojoule"

	JoulePerKilogram     Unit = "joule_per_kilogram"
	KiloJoulePerKilogram Unit = "kilojoule_per_kilogram"

	CubicMeterPerKilogram Unit = "cubic_meter_per_kilogram"
	LiterPerKilogram      Unit = "liter_per_kilogram"

	KiloJoulePerKilogramKelvin Unit = "kilojoule_per_kilogram_kelvin"
)

// PoundSquareInch is the long name of PSI.
const PoundSquareInch = PSI

type unitDef struct {
	dimension Dimension
	symbol    string
	scale     float64 // base = value*scale + offset
	offset    float64
}

func (d unitDef) toBase(value float64) float64 {
	return value*d.scale + d.offset
}

func (d unitDef) fromBase(base float64) float64 {
	return (base - d.offset) / d.scale
}

var unitTable = map[Unit]unitDef{
	Scalar: {Dimensionless, "", 1, 0},

	Kelvin:     {Temperature, "K", 1, 0},
	Celsius:    {Temperature, "°C", 1, 273.15},
	Fahrenheit: {Temperature, "°F", 5.0 / 9.0, 459.67 * 5.0 / 9.0},

	Pascal:     {Pressure, "Pa", 1, 0},
	KiloPascal: {Pressure, "kPa", 1000, 0},
	Bar:        {Pressure, "bar", 100000, 0},
	Atmosphere: {Pressure, "atm", 101325, 0},
	PSI:        {Pressure, "psi", 6894.76, 0},

	CubicMeter: {Volume, "m³", 1, 0},
	Liter:      {Volume, "l", 0.001, 0},

	Kilogram: {Mass, "kg", 1, 0},
	Gram:     {Mass, "g", 0.001, 0},

	Joule:     {Energy, "J", 1, 0},
	KiloJoule: {Energy, "kJ", 1000, 0},

	JoulePerKilogram:     {SpecificEnergy, "J/kg", 1, 0},
	KiloJoulePerKilogram: {SpecificEnergy, "kJ/kg", 1000, 0},

	CubicMeterPerKilogram: {SpecificVolume, "m³/kg", 1, 0},
	LiterPerKilogram:      {SpecificVolume, "l/kg", 0.001, 0},

	KiloJoulePerKilogramKelvin: {SpecificEntropy, "kJ/(kg·K)", 1, 0},
}

// pivots holds the base unit of every dimension.
var pivots = map[Dimension]Unit{
	Dimensionless:   Scalar,
	Temperature:     Kelvin,
	Pressure:        Pascal,
	Volume:          CubicMeter,
	Mass:            Kilogram,
	Energy:          Joule,
	SpecificEnergy:  JoulePerKilogram,
	SpecificVolume:  CubicMeterPerKilogram,
	SpecificEntropy: KiloJoulePerKilogramKelvin,
}

func lookup(u Unit) (unitDef, error) {
	def, ok := unitTable[u]
	if !ok {
		if _, abstract := pivots[Dimension(u)]; abstract {
			return unitDef{}, fmt.Errorf("%w: cannot instance %s directly", ErrUnitNotSupported, u)
		}
		return unitDef{}, fmt.Errorf("%w: unknown unit %q", ErrUnitNotSupported, string(u))
	}
	return def, nil
}

// Known reports whether u is a concrete unit.
func (u Unit) Known() bool {
	_, ok := unitTable[u]
	return ok
}

// Dimension returns the dimension measured by u, or "" for unknown units.
func (u Unit) Dimension() Dimension {
	return unitTable[u].dimension
}

func (u Unit) Symbol() string {
	return unitTable[u].symbol
}

// BaseUnit returns the pivot unit of a dimension.
func BaseUnit(d Dimension) (Unit, error) {
	u, ok := pivots[d]
	if !ok {
		return "", fmt.Errorf("%w: dimension %q has no base unit", ErrUnitNotSupported, string(d))
	}
	return u, nil
}

// UnitsOf lists the concrete units of a dimension, sorted by name.
func UnitsOf(d Dimension) []Unit {
	var list []Unit
	for u, def := range unitTable {
		if def.dimension == d {
			list = append(list, u)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}
