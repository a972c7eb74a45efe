// Package catalog maps (sector, formula name) pairs to the emission
// formulas and evaluates them from named inputs.
package catalog

import "github.com/rshade/ghgcalc/internal/emission"

// ParamKind distinguishes single values from positional series.
type ParamKind string

const (
	// KindScalar is a single number.
	KindScalar ParamKind = "scalar"

	// KindSeries is an ordered list of numbers paired by position with
	// another series of the same formula.
	KindSeries ParamKind = "series"
)

// Param describes one named input of a formula.
type Param struct {
	Name    string    `json:"name"`
	Kind    ParamKind `json:"kind"`
	Unit    string    `json:"unit,omitempty"`
	Summary string    `json:"summary"`
}

// Formula is one catalog entry.
type Formula struct {
	// ID is "<sector>/<name>", e.g. "mining/fuel-combustion".
	ID string `json:"id"`

	Sector emission.Sector `json:"sector"`
	Name   string          `json:"name"`

	// Summary is a one-line description including the computation.
	Summary string `json:"summary"`

	// Params lists the inputs in the order the formula takes them.
	Params []Param `json:"params"`

	// Output is the unit of the result.
	Output string `json:"output"`

	eval func(a args) (float64, error)
}

// Inputs holds named values for one evaluation.
type Inputs struct {
	Scalars map[string]float64   `json:"scalars,omitempty"`
	Series  map[string][]float64 `json:"series,omitempty"`
}

// NewInputs returns empty, ready-to-fill Inputs.
func NewInputs() Inputs {
	return Inputs{
		Scalars: make(map[string]float64),
		Series:  make(map[string][]float64),
	}
}

// SetScalar sets a scalar input and returns the receiver for chaining.
func (in Inputs) SetScalar(name string, v float64) Inputs {
	in.Scalars[name] = v
	return in
}

// SetSeries sets a series input and returns the receiver for chaining.
func (in Inputs) SetSeries(name string, v []float64) Inputs {
	in.Series[name] = v
	return in
}

// Merge copies every value of other into in, overwriting names present in
// both. A name moves kinds if other supplies it with the other kind.
func (in Inputs) Merge(other Inputs) Inputs {
	for k, v := range other.Scalars {
		delete(in.Series, k)
		in.Scalars[k] = v
	}
	for k, v := range other.Series {
		delete(in.Scalars, k)
		in.Series[k] = v
	}
	return in
}

// Result is the outcome of one evaluation.
type Result struct {
	FormulaID string          `json:"formula"`
	Sector    emission.Sector `json:"sector"`
	Value     float64         `json:"value"`
	Unit      string          `json:"unit"`
}

// args is a validated view of Inputs handed to a formula's eval func.
// Binding guarantees every declared parameter is present with its kind.
type args struct {
	scalars map[string]float64
	series  map[string][]float64
}

func (a args) s(name string) float64 {
	return a.scalars[name]
}

func (a args) v(name string) []float64 {
	return a.series[name]
}
