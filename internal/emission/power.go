package emission

// SF6Equipment describes one category of SF6-insulated switchgear handled
// during the reporting period.
type SF6Equipment struct {
	// Capacity is the rated SF6 charge per unit (t).
	Capacity float64

	// Recovery is the SF6 recovered per unit when it was opened (t).
	Recovery float64

	// Count is the number of units in this category.
	Count float64
}

// leakCO2e returns the CO2-equivalent of the SF6 lost from this category.
func (q SF6Equipment) leakCO2e() float64 {
	return (q.Capacity - q.Recovery) * GWPSF6 * q.Count
}

// SF6Emission calculates emissions from SF6 released while retiring and
// repairing electrical equipment (tCO2e).
//
// For each category the unrecovered charge is converted with the SF6 GWP
// and scaled by the number of units:
//
//	E = (C_retired − R_retired) × 23900 × N_retired
//	  + (C_repaired − R_repaired) × 23900 × N_repaired
func SF6Emission(retired, repaired SF6Equipment) float64 {
	return retired.leakCO2e() + repaired.leakCO2e()
}

// TransmissionLossEmission calculates the CO2 attributable to electricity lost
// in transmission and distribution:
//
//	E = (supplied − sold) × grid emission factor
//
// supplied and sold share a unit (MWh); gridFactor is tCO2/MWh.
func TransmissionLossEmission(supplied, sold, gridFactor float64) float64 {
	loss := supplied - sold
	return loss * gridFactor
}
