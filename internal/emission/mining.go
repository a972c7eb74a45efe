package emission

// MiningFuelCombustionEmission calculates fuel combustion CO2 at a mine:
//
//	E = consumption × carbon content × carbon oxidation rate × 44 / 12
//
// The carbon content is per unit of fuel, so the oxidised carbon mass is
// converted to CO2 by the molar mass ratio.
func MiningFuelCombustionEmission(consumption, carbonContent, oxidationRate float64) float64 {
	return consumption * carbonContent * oxidationRate * MolarMassCO2 / MolarMassCarbon
}

// MiningCarbonationAbsorption calculates the CO2 fixed by a carbonation
// process:
//
//	R = carbonated product weight × carbonate mass fraction × absorption factor
//
// The result is a positive quantity of CO2 absorbed; the caller subtracts it
// from the enterprise total.
func MiningCarbonationAbsorption(productWeight, carbonateFraction, absorptionFactor float64) float64 {
	return productWeight * carbonateFraction * absorptionFactor
}

// MiningCarbonateDecompositionEmission calculates process CO2 from carbonate
// ore decomposing during calcination or roasting:
//
//	E = ore calcined × decomposition rate × carbonate mass fraction × emission factor
func MiningCarbonateDecompositionEmission(amount, decompositionRate, carbonateFraction, factor float64) float64 {
	return amount * decompositionRate * carbonateFraction * factor
}

// MiningPurchasedPowerAndHeatEmission calculates CO2 embodied in net
// purchased electricity and heat.
func MiningPurchasedPowerAndHeatEmission(electricity, electricityFactor, heat, heatFactor float64) float64 {
	power := electricity * electricityFactor
	steam := heat * heatFactor
	return power + steam
}
