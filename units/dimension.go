package units

// Dimension is the physical category of a quantity. Only quantities of the
// same dimension may be added or subtracted.
type Dimension string

const (
	Dimensionless   Dimension = "dimensionless"
	Temperature     Dimension = "temperature"
	Pressure        Dimension = "pressure"
	Volume          Dimension = "volume"
	Mass            Dimension = "mass"
	Energy          Dimension = "energy"
	SpecificEnergy  Dimension = "specific_energy"
	SpecificVolume  Dimension = "specific_volume"
	SpecificEntropy Dimension = "specific_entropy"

	// Property dimensions, carried by the wrappers of package properties.
	Enthalpy         Dimension = "enthalpy"
	SpecificEnthalpy Dimension = "specific_enthalpy"
)

// Measure is anything that can be handed to a conversion or a state lookup:
// a raw Quantity or a property wrapper built on top of one.
type Measure interface {
	Dimension() Dimension
	Quantity() Quantity
}
