// Package thermomsgpack holds the msgpack wire form of quantities, table
// rows and resolved substance states.
package thermomsgpack

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"thermo/substances"
	"thermo/tables"
	"thermo/units"
)

var ErrUnknownSubstance = errors.New("unknown substance")

type Quantity struct {
	Dimension string  `msgpack:"dimension,omitempty"`
	Unit      string  `msgpack:"unit,omitempty"`
	Value     float64 `msgpack:"value"`
}

type State struct {
	Substance   string    `msgpack:"substance,omitempty"`
	Temperature Quantity  `msgpack:"temperature"`
	Pressure    Quantity  `msgpack:"pressure"`
	Row         []float64 `msgpack:"row,omitempty"`
}

func NewQuantity(q units.Quantity) Quantity {
	return Quantity{
		Dimension: string(q.Dimension()),
		Unit:      string(q.Unit()),
		Value:     q.Value(),
	}
}

// ToQuantity checks the transmitted dimension against the unit table
// before building the quantity.
func ToQuantity(q *Quantity) (units.Quantity, error) {
	r, err := units.New(q.Value, units.Unit(q.Unit))
	if err != nil {
		return units.Quantity{}, err
	}
	if q.Dimension != "" && units.Dimension(q.Dimension) != r.Dimension() {
		return units.Quantity{}, fmt.Errorf("%w: unit %s is not a %s", units.ErrUnitMismatch, q.Unit, q.Dimension)
	}
	return r, nil
}

func NewState(s substances.State) *State {
	row := s.Row()
	return &State{
		Substance:   s.Name(),
		Temperature: NewQuantity(s.Temperature()),
		Pressure:    NewQuantity(s.Pressure()),
		Row:         append([]float64(nil), row[:]...),
	}
}

// ToState resolves the transmitted state again against t. The receiver
// trusts its own table, so only the temperature is taken from the wire.
func ToState(t *tables.Table, s *State) (substances.State, error) {
	temp, err := ToQuantity(&s.Temperature)
	if err != nil {
		return nil, err
	}
	switch s.Substance {
	case substances.SaturationLineWaterName:
		return substances.NewSaturationLineWater(t, temp)
	case substances.SaturatedWaterName:
		return substances.NewSaturatedWater(t, temp)
	case substances.SaturatedSteamName:
		return substances.NewSaturatedSteam(t, temp)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSubstance, s.Substance)
}

// Encode writes the states back to back, the way StateBuffer reads them.
func Encode(states ...substances.State) ([]byte, error) {
	var data []byte
	for _, s := range states {
		b, err := msgpack.Marshal(NewState(s))
		if err != nil {
			return nil, err
		}
		data = append(data, b...)
	}
	return data, nil
}
