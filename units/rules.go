package units

type operator int

const (
	opMul operator = iota
	opDiv
)

func (o operator) String() string {
	if o == opDiv {
		return "/"
	}
	return "*"
}

// Rule computes the result of a cross dimension product or quotient.
type Rule func(a, b Quantity) (Quantity, error)

type ruleKey struct {
	a, b Dimension
	op   operator
}

// rules is filled once during package initialization and only read
// afterwards.
var rules = map[ruleKey]Rule{}

func addRule(a, b Dimension, op operator, r Rule) {
	rules[ruleKey{a, b, op}] = r
}

func findRule(a, b Dimension, op operator) (Rule, bool) {
	r, ok := rules[ruleKey{a, b, op}]
	return r, ok
}

// Energy units and their per kilogram counterparts.
var (
	specificEnergyOf = map[Unit]Unit{
		Joule:     JoulePerKilogram,
		KiloJoule: KiloJoulePerKilogram,
	}
	energyOf = map[Unit]Unit{
		JoulePerKilogram:     Joule,
		KiloJoulePerKilogram: KiloJoule,
	}
)

func init() {
	addRule(SpecificVolume, Mass, opMul, func(a, b Quantity) (Quantity, error) {
		kg := b.MustIn(Kilogram).value
		return Quantity{value: a.Base() * kg, unit: CubicMeter}, nil
	})
	addRule(Volume, SpecificVolume, opDiv, func(a, b Quantity) (Quantity, error) {
		v := b.Base()
		if v == 0 {
			return Quantity{}, ErrDivisionByZero
		}
		return Quantity{value: a.Base() / v, unit: Kilogram}, nil
	})
	addRule(Energy, Mass, opDiv, func(a, b Quantity) (Quantity, error) {
		kg := b.MustIn(Kilogram).value
		if kg == 0 {
			return Quantity{}, ErrDivisionByZero
		}
		return Quantity{value: a.value / kg, unit: specificEnergyOf[a.unit]}, nil
	})
	addRule(SpecificEnergy, Mass, opMul, func(a, b Quantity) (Quantity, error) {
		kg := b.MustIn(Kilogram).value
		return Quantity{value: a.value * kg, unit: energyOf[a.unit]}, nil
	})
}

// logFallback traces the scalar scaling applied to unrelated dimensions.
// The fallback keeps the historical behaviour of treating the other
// operand as a bare number.
func logFallback(a, b Quantity, op operator) {
	if b.Dimension() == Dimensionless {
		return
	}
	log.Debug("no rule for {{left}} {{op}} {{right}}, scaling by magnitude",
		"left", a.Dimension(), "op", op.String(), "right", b.Dimension())
}
