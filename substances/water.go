package substances

import (
	"thermo/properties"
	"thermo/tables"
	"thermo/units"
)

const (
	SaturationLineWaterName = "Water on saturation line"
	SaturatedWaterName      = "Saturated water"
	SaturatedSteamName      = "Saturated steam"
)

// SaturationLineWater is water where liquid and vapor coexist. It exposes
// the liquid, vaporization and vapor columns of the resolved state.
type SaturationLineWater struct {
	row tables.Row

	temperature units.Quantity
	pressure    units.Quantity

	volumeLiquid units.Quantity
	volumeVapor  units.Quantity

	energyLiquid       units.Quantity
	energyVaporization units.Quantity
	energyVapor        units.Quantity

	enthalpyLiquid       properties.SpecificEnthalpy
	enthalpyVaporization properties.SpecificEnthalpy
	enthalpyVapor        properties.SpecificEnthalpy

	entropyLiquid       units.Quantity
	entropyVaporization units.Quantity
	entropyVapor        units.Quantity
}

var _ State = (*SaturationLineWater)(nil)

// NewSaturationLineWater resolves the saturation state from a temperature
// or a pressure. Enthalpies are ambiguous on the saturation line.
func NewSaturationLineWater(t *tables.Table, known units.Measure) (*SaturationLineWater, error) {
	row, err := findState(SaturationLineWaterName, t, known, saturationLookups, units.Enthalpy, units.SpecificEnthalpy)
	if err != nil {
		return nil, err
	}
	return &SaturationLineWater{
		row:                  row,
		temperature:          celsius(row[tables.Temperature]),
		pressure:             kiloPascal(row[tables.Pressure]),
		volumeLiquid:         specificVolume(row[tables.VolumeLiquid]),
		volumeVapor:          specificVolume(row[tables.VolumeVapor]),
		energyLiquid:         specificEnergy(row[tables.EnergyLiquid]),
		energyVaporization:   specificEnergy(row[tables.EnergyVaporization]),
		energyVapor:          specificEnergy(row[tables.EnergyVapor]),
		enthalpyLiquid:       specificEnthalpy(row[tables.EnthalpyLiquid]),
		enthalpyVaporization: specificEnthalpy(row[tables.EnthalpyVaporization]),
		enthalpyVapor:        specificEnthalpy(row[tables.EnthalpyVapor]),
		entropyLiquid:        entropy(row[tables.EntropyLiquid]),
		entropyVaporization:  entropy(row[tables.EntropyVaporization]),
		entropyVapor:         entropy(row[tables.EntropyVapor]),
	}, nil
}

func (w *SaturationLineWater) Name() string                { return SaturationLineWaterName }
func (w *SaturationLineWater) Row() tables.Row             { return w.row }
func (w *SaturationLineWater) Temperature() units.Quantity { return w.temperature }
func (w *SaturationLineWater) Pressure() units.Quantity    { return w.pressure }

func (w *SaturationLineWater) VolumeLiquid() units.Quantity { return w.volumeLiquid }
func (w *SaturationLineWater) VolumeVapor() units.Quantity  { return w.volumeVapor }

func (w *SaturationLineWater) EnergyLiquid() units.Quantity       { return w.energyLiquid }
func (w *SaturationLineWater) EnergyVaporization() units.Quantity { return w.energyVaporization }
func (w *SaturationLineWater) EnergyVapor() units.Quantity        { return w.energyVapor }

func (w *SaturationLineWater) EnthalpyLiquid() properties.SpecificEnthalpy { return w.enthalpyLiquid }
func (w *SaturationLineWater) EnthalpyVaporization() properties.SpecificEnthalpy {
	return w.enthalpyVaporization
}
func (w *SaturationLineWater) EnthalpyVapor() properties.SpecificEnthalpy { return w.enthalpyVapor }

func (w *SaturationLineWater) EntropyLiquid() units.Quantity       { return w.entropyLiquid }
func (w *SaturationLineWater) EntropyVaporization() units.Quantity { return w.entropyVaporization }
func (w *SaturationLineWater) EntropyVapor() units.Quantity        { return w.entropyVapor }

// phase holds the attributes shared by the single phase models.
type phase struct {
	row         tables.Row
	temperature units.Quantity
	pressure    units.Quantity
	volume      units.Quantity
	energy      units.Quantity
	enthalpy    properties.SpecificEnthalpy
	entropy     units.Quantity
}

func (p *phase) Row() tables.Row                       { return p.row }
func (p *phase) Temperature() units.Quantity           { return p.temperature }
func (p *phase) Pressure() units.Quantity              { return p.pressure }
func (p *phase) Volume() units.Quantity                { return p.volume }
func (p *phase) Energy() units.Quantity                { return p.energy }
func (p *phase) Enthalpy() properties.SpecificEnthalpy { return p.enthalpy }
func (p *phase) Entropy() units.Quantity               { return p.entropy }

// SaturatedWater is liquid water at saturation.
type SaturatedWater struct {
	phase
	enthalpyVaporization properties.SpecificEnthalpy
}

var _ Phase = (*SaturatedWater)(nil)

var waterLookups = saturationLookups.with(units.SpecificEnthalpy, lookup{tables.KeyEnthalpyLiquid, units.KiloJoulePerKilogram})

// NewSaturatedWater resolves saturated liquid water from a temperature, a
// pressure or its specific enthalpy.
func NewSaturatedWater(t *tables.Table, known units.Measure) (*SaturatedWater, error) {
	row, err := findState(SaturatedWaterName, t, known, waterLookups, units.Enthalpy)
	if err != nil {
		return nil, err
	}
	return &SaturatedWater{
		phase: phase{
			row:         row,
			temperature: celsius(row[tables.Temperature]),
			pressure:    kiloPascal(row[tables.Pressure]),
			volume:      specificVolume(row[tables.VolumeLiquid]),
			energy:      specificEnergy(row[tables.EnergyLiquid]),
			enthalpy:    specificEnthalpy(row[tables.EnthalpyLiquid]),
			entropy:     entropy(row[tables.EntropyLiquid]),
		},
		enthalpyVaporization: specificEnthalpy(row[tables.EnthalpyVaporization]),
	}, nil
}

func (w *SaturatedWater) Name() string { return SaturatedWaterName }

func (w *SaturatedWater) EnthalpyVaporization() properties.SpecificEnthalpy {
	return w.enthalpyVaporization
}

// SaturatedSteam is water vapor at saturation.
type SaturatedSteam struct {
	phase
	enthalpyCondensation properties.SpecificEnthalpy
}

var _ Phase = (*SaturatedSteam)(nil)

// NewSaturatedSteam resolves saturated steam from a temperature or a
// pressure.
func NewSaturatedSteam(t *tables.Table, known units.Measure) (*SaturatedSteam, error) {
	row, err := findState(SaturatedSteamName, t, known, saturationLookups, units.Enthalpy)
	if err != nil {
		return nil, err
	}
	return &SaturatedSteam{
		phase: phase{
			row:         row,
			temperature: celsius(row[tables.Temperature]),
			pressure:    kiloPascal(row[tables.Pressure]),
			volume:      specificVolume(row[tables.VolumeVapor]),
			energy:      specificEnergy(row[tables.EnergyVapor]),
			enthalpy:    specificEnthalpy(row[tables.EnthalpyVapor]),
			entropy:     entropy(row[tables.EntropyVapor]),
		},
		enthalpyCondensation: specificEnthalpy(row[tables.EnthalpyVaporization]).Scale(-1),
	}, nil
}

func (s *SaturatedSteam) Name() string { return SaturatedSteamName }

// EnthalpyCondensation is the heat released per kilogram when the steam
// condenses, the negated enthalpy of vaporization.
func (s *SaturatedSteam) EnthalpyCondensation() properties.SpecificEnthalpy {
	return s.enthalpyCondensation
}
