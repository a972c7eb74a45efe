package catalog

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rshade/ghgcalc/internal/emission"
)

// Catalog is an immutable registry of formulas keyed by ID.
// It is safe for concurrent use once built.
type Catalog struct {
	formulas map[string]Formula
	order    []string
	logger   zerolog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used for evaluation diagnostics.
// The default is a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// New builds a Catalog holding every built-in formula.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{
		formulas: make(map[string]Formula),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, f := range builtin() {
		if err := c.register(f); err != nil {
			return nil, err
		}
	}

	c.logger.Debug().Int("formulas", len(c.order)).Msg("formula catalog built")
	return c, nil
}

var (
	defaultCatalog *Catalog
	defaultErr     error
	defaultOnce    sync.Once
)

// Default returns the shared Catalog, building it on first use.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = New()
	})
	return defaultCatalog, defaultErr
}

func (c *Catalog) register(f Formula) error {
	f.ID = formulaID(f.Sector, f.Name)
	if _, exists := c.formulas[f.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateFormula, f.ID)
	}
	c.formulas[f.ID] = f
	c.order = append(c.order, f.ID)
	return nil
}

func formulaID(sector emission.Sector, name string) string {
	return string(sector) + "/" + name
}

// Lookup returns the formula registered under id.
func (c *Catalog) Lookup(id string) (Formula, error) {
	f, ok := c.formulas[id]
	if !ok {
		return Formula{}, fmt.Errorf("%w: %q", ErrUnknownFormula, id)
	}
	return f, nil
}

// List returns every formula in registration order.
func (c *Catalog) List() []Formula {
	out := make([]Formula, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.formulas[id])
	}
	return out
}

// BySector returns the formulas of one sector in registration order.
// An unrecognised sector yields an empty slice.
func (c *Catalog) BySector(sector emission.Sector) []Formula {
	var out []Formula
	for _, id := range c.order {
		if f := c.formulas[id]; f.Sector == sector {
			out = append(out, f)
		}
	}
	return out
}

// Sectors returns the sectors that have at least one formula, in
// guideline order.
func (c *Catalog) Sectors() []emission.Sector {
	present := make(map[emission.Sector]bool)
	for _, f := range c.formulas {
		present[f.Sector] = true
	}

	var out []emission.Sector
	for _, s := range emission.Sectors() {
		if present[s] {
			out = append(out, s)
		}
	}
	return out
}

// Evaluate binds in to the parameters of formula id and computes it.
//
// Binding reports every missing, unknown, mistyped or non-finite input in
// one error. Values are not range-checked; negative inputs are computed as
// given.
func (c *Catalog) Evaluate(id string, in Inputs) (Result, error) {
	f, err := c.Lookup(id)
	if err != nil {
		return Result{}, err
	}

	a, err := bind(f, in)
	if err != nil {
		c.logger.Warn().Err(err).Str("formula", id).Msg("input binding failed")
		return Result{}, fmt.Errorf("%s: %w", id, err)
	}

	value, err := f.eval(a)
	if err != nil {
		c.logger.Warn().Err(err).Str("formula", id).Msg("formula evaluation failed")
		return Result{}, fmt.Errorf("%s: %w", id, err)
	}

	c.logger.Debug().
		Str("formula", id).
		Str("inputs", Detail(f, in)).
		Float64("value", value).
		Msg("formula evaluated")

	return Result{
		FormulaID: id,
		Sector:    f.Sector,
		Value:     value,
		Unit:      f.Output,
	}, nil
}
