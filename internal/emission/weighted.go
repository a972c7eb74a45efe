package emission

import "fmt"

// WeightedSum returns Σ activity[i] × factor[i].
//
// The two series are paired by position. Returns ErrLengthMismatch if their
// lengths differ; empty series sum to zero.
func WeightedSum(activity, factor []float64) (float64, error) {
	if len(activity) != len(factor) {
		return 0, fmt.Errorf("%w: %d activity values, %d factors",
			ErrLengthMismatch, len(activity), len(factor))
	}

	total := 0.0
	for i := range activity {
		total += activity[i] * factor[i]
	}
	return total, nil
}

// FuelMixEmission calculates combustion emissions for a mix of fuels, each
// with its own consumption (AD) and emission factor (EF):
//
//	E = Σ AD_i × EF_i
//
// Returns ErrLengthMismatch if the series differ in length.
func FuelMixEmission(activity, factor []float64) (float64, error) {
	e, err := WeightedSum(activity, factor)
	if err != nil {
		return 0, fmt.Errorf("fuel mix: %w", err)
	}
	return e, nil
}
