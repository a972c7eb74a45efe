package emission

import "fmt"

// CivilAviationEmission calculates the indirect emissions of a civil
// aviation enterprise from purchased electricity and heat, each reported as
// a series of (activity, factor) pairs:
//
//	E = Σ AD_elec,i × EF_elec,i + Σ AD_heat,j × EF_heat,j
//
// Returns ErrLengthMismatch if either pair of series differs in length.
func CivilAviationEmission(electricityAD, electricityEF, heatAD, heatEF []float64) (float64, error) {
	power, err := WeightedSum(electricityAD, electricityEF)
	if err != nil {
		return 0, fmt.Errorf("aviation electricity: %w", err)
	}

	steam, err := WeightedSum(heatAD, heatEF)
	if err != nil {
		return 0, fmt.Errorf("aviation heat: %w", err)
	}

	return power + steam, nil
}
