package emission

// NonFerrousFuelCombustionEmission calculates CO2 from fuel burned at a
// non-ferrous metal smelter: consumption × fuel emission factor.
func NonFerrousFuelCombustionEmission(consumption, factor float64) float64 {
	return consumption * factor
}

// NonFerrousRawMaterialEnergyEmission calculates CO2 from energy carriers
// consumed as raw material (reducing agents such as coke):
// reducing agent consumption × emission factor.
func NonFerrousRawMaterialEnergyEmission(reducingAgent, factor float64) float64 {
	return reducingAgent * factor
}

// NonFerrousProcessEmission calculates industrial process CO2:
// raw material consumption × process emission factor.
func NonFerrousProcessEmission(rawMaterial, factor float64) float64 {
	return rawMaterial * factor
}

// NonFerrousPurchasedElectricityEmission calculates CO2 embodied in net
// purchased electricity: electricity × local grid emission factor.
func NonFerrousPurchasedElectricityEmission(electricity, factor float64) float64 {
	return electricity * factor
}

// NonFerrousPurchasedHeatEmission calculates CO2 embodied in net purchased
// heat: heat × heat supply emission factor.
func NonFerrousPurchasedHeatEmission(heat, factor float64) float64 {
	return heat * factor
}

// NonFerrousTotalEmission sums the five component emissions of a
// non-ferrous metal enterprise. Components are taken as given, so a
// negative value reduces the total.
func NonFerrousTotalEmission(fuel, rawMaterialEnergy, process, electricity, heat float64) float64 {
	return fuel + rawMaterialEnergy + process + electricity + heat
}

// AluminumFuelCombustionEmission calculates CO2 from fossil fuel burned in
// aluminium smelting: consumption × fuel emission factor.
func AluminumFuelCombustionEmission(consumption, factor float64) float64 {
	return consumption * factor
}

// AluminumPurchasedElectricityEmission calculates CO2 embodied in the
// electricity an aluminium smelter consumes.
func AluminumPurchasedElectricityEmission(electricity, factor float64) float64 {
	return electricity * factor
}

// AluminumPurchasedHeatEmission calculates CO2 embodied in the heat an
// aluminium smelter consumes.
func AluminumPurchasedHeatEmission(heat, factor float64) float64 {
	return heat * factor
}
