package catalog

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// bind checks in against the parameters of f and returns the validated
// arguments. All problems are collected into a single *multierror.Error.
func bind(f Formula, in Inputs) (args, error) {
	var result *multierror.Error

	a := args{
		scalars: make(map[string]float64),
		series:  make(map[string][]float64),
	}
	declared := make(map[string]bool, len(f.Params))

	for _, p := range f.Params {
		declared[p.Name] = true

		s, isScalar := in.Scalars[p.Name]
		v, isSeries := in.Series[p.Name]

		switch p.Kind {
		case KindScalar:
			switch {
			case isScalar:
				if !isFinite(s) {
					result = multierror.Append(result, fmt.Errorf("%w: %s = %v", ErrNonFiniteInput, p.Name, s))
					continue
				}
				a.scalars[p.Name] = s
			case isSeries:
				result = multierror.Append(result, fmt.Errorf("%w: %s expects a single value", ErrKindMismatch, p.Name))
			default:
				result = multierror.Append(result, fmt.Errorf("%w: %s", ErrMissingInput, p.Name))
			}
		case KindSeries:
			switch {
			case isSeries:
				if i := firstNonFinite(v); i >= 0 {
					result = multierror.Append(result, fmt.Errorf("%w: %s[%d] = %v", ErrNonFiniteInput, p.Name, i, v[i]))
					continue
				}
				a.series[p.Name] = v
			case isScalar:
				// A lone number is a one-element series.
				if !isFinite(s) {
					result = multierror.Append(result, fmt.Errorf("%w: %s = %v", ErrNonFiniteInput, p.Name, s))
					continue
				}
				a.series[p.Name] = []float64{s}
			default:
				result = multierror.Append(result, fmt.Errorf("%w: %s", ErrMissingInput, p.Name))
			}
		}
	}

	for _, name := range inputNames(in) {
		if !declared[name] {
			result = multierror.Append(result, fmt.Errorf("%w: %s", ErrUnknownInput, name))
		}
	}

	if result != nil {
		result.ErrorFormat = listFormat
		return args{}, result
	}
	return a, nil
}

// inputNames returns the sorted names of every supplied input.
func inputNames(in Inputs) []string {
	names := make([]string, 0, len(in.Scalars)+len(in.Series))
	for k := range in.Scalars {
		names = append(names, k)
	}
	for k := range in.Series {
		if _, dup := in.Scalars[k]; !dup {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func firstNonFinite(v []float64) int {
	for i, f := range v {
		if !isFinite(f) {
			return i
		}
	}
	return -1
}

// listFormat renders a multierror on one line, "a; b; c".
func listFormat(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}
