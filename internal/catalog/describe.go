package catalog

import (
	"fmt"
	"strings"
)

// formatFloat formats a float for display.
// Integral values print without decimals, others with up to 4 decimals.
func formatFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	s := fmt.Sprintf("%.4f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// Describe returns a one-line signature of f, e.g.
// "mining/fuel-combustion(fuel_consumption t, carbon_content tC/t, oxidation_rate) -> tCO2e".
func Describe(f Formula) string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		s := p.Name
		if p.Kind == KindSeries {
			s += "[]"
		}
		if p.Unit != "" {
			s += " " + p.Unit
		}
		params[i] = s
	}
	return f.ID + "(" + strings.Join(params, ", ") + ") -> " + f.Output
}

// Detail returns the inputs of one evaluation in parameter order, e.g.
// "fuel_consumption=10, carbon_content=0.027, oxidation_rate=0.98".
// Parameters missing from in are skipped.
func Detail(f Formula, in Inputs) string {
	parts := make([]string, 0, len(f.Params))
	for _, p := range f.Params {
		if v, ok := in.Series[p.Name]; ok && p.Kind == KindSeries {
			vals := make([]string, len(v))
			for i, x := range v {
				vals[i] = formatFloat(x)
			}
			parts = append(parts, p.Name+"=["+strings.Join(vals, ",")+"]")
			continue
		}
		if v, ok := in.Scalars[p.Name]; ok {
			parts = append(parts, p.Name+"="+formatFloat(v))
		}
	}
	return strings.Join(parts, ", ")
}
