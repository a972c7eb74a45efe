package emission

// PetrochemicalFossilFuelEmission calculates fossil fuel combustion CO2 for
// a petrochemical enterprise: activity level × emission factor.
func PetrochemicalFossilFuelEmission(activity, factor float64) float64 {
	return activity * factor
}

// ChemicalFuelCombustionEmission calculates fuel combustion CO2 for a
// chemical producer: fuel activity level × emission factor.
func ChemicalFuelCombustionEmission(activity, factor float64) float64 {
	return activity * factor
}

// ChemicalProcessEmission calculates industrial process emissions:
// raw material activity level × process emission factor.
func ChemicalProcessEmission(rawMaterial, factor float64) float64 {
	return rawMaterial * factor
}

// ChemicalPurchasedPowerEmission calculates CO2 embodied in net purchased
// electricity and heat, reported under one activity value.
func ChemicalPurchasedPowerEmission(electricity, factor float64) float64 {
	return electricity * factor
}

// ChemicalTotalEmission sums the component emissions of a chemical
// enterprise.
func ChemicalTotalEmission(fuel, process, power float64) float64 {
	return fuel + process + power
}
