package emission

// CeramicsFossilFuelEmission calculates kiln and dryer fuel CO2:
//
//	E = consumption × low heating value × CO2 emission factor per unit heat
func CeramicsFossilFuelEmission(consumption, lowHeatingValue, factor float64) float64 {
	return consumption * lowHeatingValue * factor
}

// CeramicsPurchasedElectricityEmission calculates CO2 embodied in net
// purchased production electricity.
func CeramicsPurchasedElectricityEmission(electricity, gridFactor float64) float64 {
	return electricity * gridFactor
}

// CeramicsTotalEmission sums fossil fuel, process and purchased electricity
// emissions of a ceramics producer.
func CeramicsTotalEmission(fuel, process, electricity float64) float64 {
	return fuel + process + electricity
}
