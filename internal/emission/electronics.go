package emission

import "fmt"

// ElectronicsEmission calculates total emissions for an electronic
// equipment manufacturer.
//
// The calculation follows the electronics manufacturing guideline:
//  1. Fuel = Σ AD_i × EF_i over every fossil fuel burned
//  2. Electricity = purchased electricity × regional grid factor
//  3. Heat = purchased heat × heat supply factor
//  4. Total = Fuel + process emission + Electricity + Heat
//
// process is the already-quantified process emission (e.g. fluorinated
// etch gases). Returns ErrLengthMismatch if fuelAD and fuelEF differ in
// length.
func ElectronicsEmission(
	fuelAD, fuelEF []float64,
	process float64,
	electricity, gridFactor float64,
	heat, heatFactor float64,
) (float64, error) {
	fuel, err := WeightedSum(fuelAD, fuelEF)
	if err != nil {
		return 0, fmt.Errorf("electronics fossil fuel: %w", err)
	}

	power := electricity * gridFactor
	steam := heat * heatFactor

	return fuel + process + power + steam, nil
}
