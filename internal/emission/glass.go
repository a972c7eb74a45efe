package emission

// GlassFossilFuelEmission calculates combustion emissions for a flat glass
// plant:
//
//	E = net consumption × average low heating value
//	    × carbon content per unit heat × carbon oxidation rate
//
// The guideline applies no carbon-to-CO2 conversion here; the carbon
// content factor is expected to already be expressed per CO2.
func GlassFossilFuelEmission(netConsumption, lowHeatingValue, carbonPerHeat, oxidationRate float64) float64 {
	return netConsumption * lowHeatingValue * carbonPerHeat * oxidationRate
}

// GlassCarbonPowderEmission calculates CO2 from carbon powder in the batch
// oxidising in the furnace: consumption × weighted average carbon content.
func GlassCarbonPowderEmission(consumption, carbonContent float64) float64 {
	return consumption * carbonContent
}

// GlassCarbonateDecompositionEmission calculates process CO2 from carbonate
// raw materials (limestone, dolomite, soda ash) decomposing in the melt:
//
//	E = carbonate consumed × carbonate emission factor × calcination ratio
func GlassCarbonateDecompositionEmission(carbonateWeight, factor, calcinationRatio float64) float64 {
	return carbonateWeight * factor * calcinationRatio
}

// GlassPurchasedPowerAndHeatEmission calculates CO2 embodied in net
// purchased electricity and heat:
//
//	E = electricity × grid factor + heat × heat factor
func GlassPurchasedPowerAndHeatEmission(electricity, gridFactor, heat, heatFactor float64) float64 {
	power := electricity * gridFactor
	steam := heat * heatFactor
	return power + steam
}
