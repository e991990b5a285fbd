// Package tables resolves thermodynamic states from tabulated data. A table
// is indexed by one or more monotonic columns, a lookup either hits a row
// exactly or interpolates linearly between the two bracketing rows.
//
// Tables are never modified after New and may be shared by any number of
// concurrent readers.
package tables

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"

	"thermo/units"
)

var (
	// ErrUnknownState is returned for lookups outside the tabulated range
	// and for keys that do not identify a single state.
	ErrUnknownState = errors.New("unknown state")
	ErrNotMonotonic = errors.New("index column is not strictly monotonic")
	ErrEmptyTable   = errors.New("table has no rows")
)

// Column identifies a field of a Row.
type Column int

const (
	Temperature Column = iota // °C
	Pressure                  // kPa
	VolumeLiquid              // m³/kg
	VolumeVapor
	EnergyLiquid // kJ/kg
	EnergyVaporization
	EnergyVapor
	EnthalpyLiquid // kJ/kg
	EnthalpyVaporization
	EnthalpyVapor
	EntropyLiquid // kJ/(kg·K)
	EntropyVaporization
	EntropyVapor

	NumColumns
)

var columnNames = [NumColumns]string{
	"temperature",
	"pressure",
	"volume_liquid",
	"volume_vapor",
	"energy_liquid",
	"energy_vaporization",
	"energy_vapor",
	"enthalpy_liquid",
	"enthalpy_vaporization",
	"enthalpy_vapor",
	"entropy_liquid",
	"entropy_vaporization",
	"entropy_vapor",
}

func (c Column) String() string {
	if c < 0 || c >= NumColumns {
		return fmt.Sprintf("column(%d)", int(c))
	}
	return columnNames[c]
}

// Row is one thermodynamic state.
type Row [NumColumns]float64

// Key names an index of a table.
type Key string

const (
	KeyTemperature    Key = "temperature"
	KeyPressure       Key = "pressure"
	KeyEnthalpyLiquid Key = "enthalpy_liquid"
)

type index struct {
	column    Column
	ascending bool
}

// Table is an immutable collection of rows.
type Table struct {
	name    string
	rows    []Row
	indexes map[Key]*index
}

type Option func(t *Table)

// WithIndex makes column c available for lookups under key.
func WithIndex(key Key, c Column) Option {
	return func(t *Table) {
		t.indexes[key] = &index{column: c}
	}
}

// New creates a table from rows. The rows are copied; every indexed column
// must be strictly increasing or strictly decreasing.
func New(name string, rows []Row, opts ...Option) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("table %q: %w", name, ErrEmptyTable)
	}
	t := &Table{
		name:    name,
		rows:    slices.Clone(rows),
		indexes: map[Key]*index{},
	}
	for _, o := range opts {
		o(t)
	}
	for k, idx := range t.indexes {
		if idx.column < 0 || idx.column >= NumColumns {
			return nil, fmt.Errorf("table %q: index %q: invalid column %d", name, k, idx.column)
		}
		asc, err := monotonic(t.rows, idx.column)
		if err != nil {
			return nil, fmt.Errorf("table %q: index %q: %w", name, k, err)
		}
		idx.ascending = asc
	}
	log.Debug("created table {{table}} with {{rows}} rows", "table", name, "rows", len(rows), "indexes", len(t.indexes))
	return t, nil
}

func monotonic(rows []Row, c Column) (bool, error) {
	if len(rows) < 2 {
		return true, nil
	}
	asc := rows[1][c] > rows[0][c]
	for i := 1; i < len(rows); i++ {
		a, b := rows[i-1][c], rows[i][c]
		if (asc && !(b > a)) || (!asc && !(b < a)) {
			return false, fmt.Errorf("%w: %s at row %d", ErrNotMonotonic, c, i)
		}
	}
	return asc, nil
}

func (t *Table) Name() string {
	return t.name
}

// Rows returns a copy of all rows.
func (t *Table) Rows() []Row {
	return slices.Clone(t.rows)
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Keys lists the index keys sorted by name.
func (t *Table) Keys() []Key {
	keys := make([]Key, 0, len(t.indexes))
	for k := range t.indexes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Index returns the column behind key.
func (t *Table) Index(key Key) (Column, bool) {
	idx, ok := t.indexes[key]
	if !ok {
		return 0, false
	}
	return idx.column, true
}

// Range returns the smallest and largest tabulated value of an index.
func (t *Table) Range(key Key) (float64, float64, error) {
	idx, err := t.index(key)
	if err != nil {
		return 0, 0, err
	}
	first, last := t.rows[0][idx.column], t.rows[len(t.rows)-1][idx.column]
	if idx.ascending {
		return first, last, nil
	}
	return last, first, nil
}

func (t *Table) index(key Key) (*index, error) {
	idx, ok := t.indexes[key]
	if !ok {
		return nil, fmt.Errorf("%w: table %q has no index %q", units.ErrUnitNotSupported, t.name, key)
	}
	return idx, nil
}

// FindState returns the row whose key column equals value. Values between
// two rows are interpolated linearly in every column, values outside the
// table fail with ErrUnknownState.
func (t *Table) FindState(key Key, value float64) (Row, error) {
	idx, err := t.index(key)
	if err != nil {
		return Row{}, err
	}
	lo, hi, _ := t.Range(key)
	if math.IsNaN(value) || value < lo || value > hi {
		return Row{}, fmt.Errorf("%w: %s %g outside [%g, %g] of table %q", ErrUnknownState, key, value, lo, hi, t.name)
	}

	c := idx.column
	i := sort.Search(len(t.rows), func(i int) bool {
		if idx.ascending {
			return t.rows[i][c] >= value
		}
		return t.rows[i][c] <= value
	})
	if t.rows[i][c] == value {
		log.Trace("exact state for {{key}}={{value}}", "key", key, "value", value, "table", t.name)
		return t.rows[i], nil
	}

	a, b := &t.rows[i-1], &t.rows[i]
	frac := (value - a[c]) / (b[c] - a[c])
	var r Row
	for j := range r {
		r[j] = a[j] + frac*(b[j]-a[j])
	}
	r[c] = value
	log.Debug("interpolated state for {{key}}={{value}}", "key", key, "value", value, "table", t.name, "fraction", frac)
	return r, nil
}
