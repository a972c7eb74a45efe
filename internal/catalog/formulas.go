package catalog

import "github.com/rshade/ghgcalc/internal/emission"

const unitCO2e = "tCO2e"

func scalar(name, unit, summary string) Param {
	return Param{Name: name, Kind: KindScalar, Unit: unit, Summary: summary}
}

func series(name, unit, summary string) Param {
	return Param{Name: name, Kind: KindSeries, Unit: unit, Summary: summary}
}

// product registers a two-input AD × EF formula.
func product(sector emission.Sector, name, summary string, ad, ef Param, f func(float64, float64) float64) Formula {
	return Formula{
		Sector:  sector,
		Name:    name,
		Summary: summary,
		Params:  []Param{ad, ef},
		Output:  unitCO2e,
		eval: func(a args) (float64, error) {
			return f(a.s(ad.Name), a.s(ef.Name)), nil
		},
	}
}

// builtin returns every formula in guideline order.
func builtin() []Formula {
	var out []Formula
	out = append(out, generalFormulas()...)
	out = append(out, powerFormulas()...)
	out = append(out, nonFerrousFormulas()...)
	out = append(out, aluminumFormulas()...)
	out = append(out, glassFormulas()...)
	out = append(out, electronicsFormulas()...)
	out = append(out, petrochemicalFormulas()...)
	out = append(out, chemicalFormulas()...)
	out = append(out, miningFormulas()...)
	out = append(out, ceramicsFormulas()...)
	out = append(out, aviationFormulas()...)
	return out
}

func generalFormulas() []Formula {
	return []Formula{
		{
			Sector:  emission.SectorGeneral,
			Name:    "fuel-mix",
			Summary: "Weighted fuel mix: Σ AD_i × EF_i",
			Params: []Param{
				series("fuel_activity", "", "consumption of each fuel"),
				series("fuel_factor", "", "emission factor of each fuel"),
			},
			Output: unitCO2e,
			eval: func(a args) (float64, error) {
				return emission.FuelMixEmission(a.v("fuel_activity"), a.v("fuel_factor"))
			},
		},
	}
}

func powerFormulas() []Formula {
	return []Formula{
		{
			Sector:  emission.SectorPower,
			Name:    "sf6-equipment",
			Summary: "SF6 released by retired and repaired equipment: Σ (capacity − recovery) × 23900 × count",
			Params: []Param{
				scalar("retired_capacity", "t", "rated SF6 charge per retired unit"),
				scalar("repaired_capacity", "t", "rated SF6 charge per repaired unit"),
				scalar("retired_recovery", "t", "SF6 recovered per retired unit"),
				scalar("repaired_recovery", "t", "SF6 recovered per repaired unit"),
				scalar("retired_count", "", "number of retired units"),
				scalar("repaired_count", "", "number of repaired units"),
			},
			Output: unitCO2e,
			eval: func(a args) (float64, error) {
				return emission.SF6Emission(
					emission.SF6Equipment{
						Capacity: a.s("retired_capacity"),
						Recovery: a.s("retired_recovery"),
						Count:    a.s("retired_count"),
					},
					emission.SF6Equipment{
						Capacity: a.s("repaired_capacity"),
						Recovery: a.s("repaired_recovery"),
						Count:    a.s("repaired_count"),
					},
				), nil
			},
		},
		{
			Sector:  emission.SectorPower,
			Name:    "transmission-loss",
			Summary: "Transmission and distribution loss: (supplied − sold) × grid factor",
			Params: []Param{
				scalar("supplied_electricity", "MWh", "electricity supplied to the grid"),
				scalar("sold_electricity", "MWh", "electricity sold to end users"),
				scalar("grid_factor", "tCO2/MWh", "regional grid emission factor"),
			},
			Output: unitCO2e,
			eval: func(a args) (float64, error) {
				return emission.TransmissionLossEmission(
					a.s("supplied_electricity"),
					a.s("sold_electricity"),
					a.s("grid_factor"),
				), nil
			},
		},
	}
}

func nonFerrousFormulas() []Formula {
	s := emission.SectorNonFerrous
	return []Formula{
		product(s, "fuel-combustion", "Fuel combustion: consumption × fuel factor",
			scalar("fuel_consumption", "", "fuel burned"),
			scalar("fuel_factor", "", "fuel emission factor"),
			emission.NonFerrousFuelCombustionEmission),
		product(s, "raw-material-energy", "Energy used as raw material: reducing agent × factor",
			scalar("reducing_agent_consumption", "t", "reducing agent consumed"),
			scalar("reducing_agent_factor", "tCO2/t", "reducing agent emission factor"),
			emission.NonFerrousRawMaterialEnergyEmission),
		product(s, "process", "Industrial process: raw material × process factor",
			scalar("raw_material_consumption", "t", "raw material consumed"),
			scalar("raw_material_factor", "tCO2/t", "process emission factor"),
			emission.NonFerrousProcessEmission),
		product(s, "purchased-electricity", "Net purchased electricity × local grid factor",
			scalar("purchased_electricity", "MWh", "net purchased electricity"),
			scalar("electricity_factor", "tCO2/MWh", "local grid emission factor"),
			emission.NonFerrousPurchasedElectricityEmission),
		product(s, "purchased-heat", "Net purchased heat × heat factor",
			scalar("purchased_heat", "GJ", "net purchased heat"),
			scalar("heat_factor", "tCO2/GJ", "heat supply emission factor"),
			emission.NonFerrousPurchasedHeatEmission),
		{
			Sector:  s,
			Name:    "total",
			Summary: "Enterprise total: fuel + raw material energy + process + electricity + heat",
			Params: []Param{
				scalar("fuel_emission", unitCO2e, "fuel combustion emission"),
				scalar("raw_material_energy_emission", unitCO2e, "energy-as-raw-material emission"),
				scalar("process_emission", unitCO2e, "process emission"),
				scalar("electricity_emission", unitCO2e, "purchased electricity emission"),
				scalar("heat_emission", unitCO2e, "purchased heat emission"),
			},
			Output: unitCO2e,
			eval: func(a args) (float64, error) {
				return emission.NonFerrousTotalEmission(
					a.s("fuel_emission"),
					a.s("raw_material_energy_emission"),
					a.s("process_emission"),
					a.s("electricity_emission"),
					a.s("heat_emission"),
				), nil
			},
		},
	}
}

func aluminumFormulas() []Formula {
	s := emission.SectorAluminum
	return []Formula{
		product(s, "fuel-combustion", "Fossil fuel combustion: consumption × fuel factor",
			scalar("fuel_consumption", "", "fuel burned"),
			scalar("fuel_factor", "", "fuel emission factor"),
			emission.AluminumFuelCombustionEmission),
		product(s, "purchased-electricity", "Purchased electricity × grid factor",
			scalar("purchased_electricity", "MWh", "electricity consumed"),
			scalar("electricity_factor", "tCO2/MWh", "grid emission factor"),
			emission.AluminumPurchasedElectricityEmission),
		product(s, "purchased-heat", "Purchased heat × heat factor",
			scalar("purchased_heat", "GJ", "heat consumed"),
			scalar("heat_factor", "tCO2/GJ", "heat supply emission factor"),
			emission.AluminumPurchasedHeatEmission),
	}
}

func glassFormulas() []Formula {
	s := emission.SectorGlass
	return []Formula{
		{
			Sector:  s,
			Name:    "fossil-fuel",
			Summary: "Fossil fuel combustion: net consumption × low heating value × carbon per heat × oxidation rate",
			Params: []Param{
				scalar("net_consumption", "t", "net fossil fuel consumed"),
				scalar("low_heating_value", "GJ/t", "average low heating value"),
				scalar("carbon_per_heat", "tC/GJ", "carbon content per unit heat"),
				scalar("oxidation_rate", "", "carbon oxidation rate"),
			},
			Output: unitCO2e,
			eval: func(a args) (float64, error) {
				return emission.GlassFossilFuelEmission(
					a.s("net_consumption"),
					a.s("low_heating_value"),
					a.s("carbon_per_heat"),
					a.s("oxidation_rate"),
				), nil
			},
		},
		product(s, "carbon-powder", "Carbon powder oxidation: consumption × carbon content",
			scalar("carbon_powder_consumption", "t", "carbon powder in the batch"),
			scalar("carbon_content", "", "weighted average carbon content"),
			emission.GlassCarbonPowderEmission),
		{
			Sector:  s,
			Name:    "carbonate-decomposition",
			Summary: "Raw material decomposition: carbonate consumed × carbonate factor × calcination ratio",
			Params: []Param{
				scalar("carbonate_weight", "t", "carbonate raw material consumed"),
				scalar("carbonate_factor", "tCO2/t", "carbonate specific emission factor"),
				scalar("calcination_ratio", "", "carbonate calcination ratio"),
			},
			Output: unitCO2e,
			eval: func(a args) (float64, error) {
				return emission.GlassCarbonateDecompositionEmission(
					a.s("carbonate_weight"),
					a.s("carbonate_factor"),
					a.s("calcination_ratio"),
				), nil
			},
		},
		powerAndHeat(s, emission.GlassPurchasedPowerAndHeatEmission),
	}
}

// powerAndHeat registers the shared electricity + heat formula shape.
func powerAndHeat(sector emission.Sector, f func(float64, float64, float64, float64) float64) Formula {
	return Formula{
		Sector:  sector,
		Name:    "purchased-power-and-heat",
		Summary: "Net purchased electricity × grid factor + heat × heat factor",
		Params: []Param{
			scalar("purchased_electricity", "MWh", "net purchased electricity"),
			scalar("electricity_factor", "tCO2/MWh", "grid emission factor"),
			scalar("purchased_heat", "GJ", "net purchased heat"),
			scalar("heat_factor", "tCO2/GJ", "heat supply emission factor"),
		},
		Output: unitCO2e,
		eval: func(a args) (float64, error) {
			return f(
				a.s("purchased_electricity"),
				a.s("electricity_factor"),
				a.s("purchased_heat"),
				a.s("heat_factor"),
			), nil
		},
	}
}

func electronicsFormulas() []Formula {
	return []Formula{
		{
			Sector:  emission.SectorElectronics,
			Name:    "enterprise",
			Summary: "Σ fuel AD × EF + process + electricity × grid factor + heat × heat factor",
			Params: []Param{
				series("fuel_activity", "", "consumption of each fossil fuel"),
				series("fuel_factor", "", "emission factor of each fossil fuel"),
				scalar("process_emission", unitCO2e, "quantified process emission"),
				scalar("purchased_electricity", "MWh", "net purchased electricity"),
				scalar("electricity_factor", "tCO2/MWh", "regional grid emission factor"),
				scalar("purchased_heat", "GJ", "net purchased heat"),
				scalar("heat_factor", "tCO2/GJ", "heat supply emission factor"),
			},
			Output: unitCO2e,
			eval: func(a args) (float64, error) {
				return emission.ElectronicsEmission(
					a.v("fuel_activity"),
					a.v("fuel_factor"),
					a.s("process_emission"),
					a.s("purchased_electricity"),
					a.s("electricity_factor"),
					a.s("purchased_heat"),
					a.s("heat_factor"),
				)
			},
		},
	}
}

func petrochemicalFormulas() []Formula {
	return []Formula{
		product(emission.SectorPetrochemical, "fossil-fuel", "Fossil fuel combustion: activity level × emission factor",
			scalar("fuel_activity", "GJ", "fossil fuel activity level"),
			scalar("fuel_factor", "tCO2/GJ", "fossil fuel emission factor"),
			emission.PetrochemicalFossilFuelEmission),
	}
}

func chemicalFormulas() []Formula {
	s := emission.SectorChemical
	return []Formula{
		product(s, "fuel-combustion", "Fuel combustion: activity level × emission factor",
			scalar("fuel_activity", "GJ", "fuel activity level"),
			scalar("fuel_factor", "tCO2/GJ", "fuel emission factor"),
			emission.ChemicalFuelCombustionEmission),
		product(s, "process", "Industrial process: raw material activity × process factor",
			scalar("raw_material_activity", "t", "raw material activity level"),
			scalar("process_factor", "tCO2/t", "production process emission factor"),
			emission.ChemicalProcessEmission),
		product(s, "purchased-power", "Net purchased electricity and heat × emission factor",
			scalar("purchased_electricity", "MWh", "net purchased electricity and heat"),
			scalar("electricity_factor", "tCO2/MWh", "emission factor"),
			emission.ChemicalPurchasedPowerEmission),
		{
			Sector:  s,
			Name:    "total",
			Summary: "Enterprise total: fuel + process + purchased power",
			Params: []Param{
				scalar("fuel_emission", unitCO2e, "fuel combustion emission"),
				scalar("process_emission", unitCO2e, "process emission"),
				scalar("power_emission", unitCO2e, "purchased power and heat emission"),
			},
			Output: unitCO2e,
			eval: func(a args) (float64, error) {
				return emission.ChemicalTotalEmission(
					a.s("fuel_emission"),
					a.s("process_emission"),
					a.s("power_emission"),
				), nil
			},
		},
	}
}

func miningFormulas() []Formula {
	s := emission.SectorMining
	return []Formula{
		{
			Sector:  s,
			Name:    "fuel-combustion",
			Summary: "Fuel combustion: consumption × carbon content × oxidation rate × 44/12",
			Params: []Param{
				scalar("fuel_consumption", "t", "fossil fuel consumed"),
				scalar("carbon_content", "tC/t", "fuel carbon content"),
				scalar("oxidation_rate", "", "carbon oxidation rate"),
			},
			Output: unitCO2e,
			eval: func(a args) (float64, error) {
				return emission.MiningFuelCombustionEmission(
					a.s("fuel_consumption"),
					a.s("carbon_content"),
					a.s("oxidation_rate"),
				), nil
			},
		},
		{
			Sector:  s,
			Name:    "carbonation-absorption",
			Summary: "CO2 absorbed by carbonation (negative emission): product weight × carbonate fraction × absorption factor",
			Params: []Param{
				scalar("product_weight", "t", "carbonated product produced"),
				scalar("carbonate_fraction", "", "carbonate mass fraction of the product"),
				scalar("absorption_factor", "tCO2/t", "carbonate absorption factor"),
			},
			Output: unitCO2e + " absorbed",
			eval: func(a args) (float64, error) {
				return emission.MiningCarbonationAbsorption(
					a.s("product_weight"),
					a.s("carbonate_fraction"),
					a.s("absorption_factor"),
				), nil
			},
		},
		{
			Sector:  s,
			Name:    "carbonate-decomposition",
			Summary: "Carbonate decomposition: ore calcined × decomposition rate × carbonate fraction × emission factor",
			Params: []Param{
				scalar("ore_amount", "t", "ore calcined or roasted"),
				scalar("decomposition_rate", "", "calcination or roasting decomposition rate"),
				scalar("carbonate_fraction", "", "carbonate mass fraction of the ore"),
				scalar("carbonate_factor", "tCO2/t", "carbonate emission factor"),
			},
			Output: unitCO2e,
			eval: func(a args) (float64, error) {
				return emission.MiningCarbonateDecompositionEmission(
					a.s("ore_amount"),
					a.s("decomposition_rate"),
					a.s("carbonate_fraction"),
					a.s("carbonate_factor"),
				), nil
			},
		},
		powerAndHeat(s, emission.MiningPurchasedPowerAndHeatEmission),
	}
}

func ceramicsFormulas() []Formula {
	s := emission.SectorCeramics
	return []Formula{
		{
			Sector:  s,
			Name:    "fossil-fuel",
			Summary: "Fossil fuel combustion: consumption × low heating value × CO2 factor",
			Params: []Param{
				scalar("fuel_consumption", "", "fossil fuel consumed"),
				scalar("low_heating_value", "", "low heating value per unit fuel"),
				scalar("co2_factor", "tCO2/GJ", "CO2 emission factor per unit heat"),
			},
			Output: unitCO2e,
			eval: func(a args) (float64, error) {
				return emission.CeramicsFossilFuelEmission(
					a.s("fuel_consumption"),
					a.s("low_heating_value"),
					a.s("co2_factor"),
				), nil
			},
		},
		product(s, "purchased-electricity", "Net purchased production electricity × grid factor",
			scalar("purchased_electricity", "MWh", "net purchased electricity"),
			scalar("electricity_factor", "tCO2/MWh", "regional grid emission factor"),
			emission.CeramicsPurchasedElectricityEmission),
		{
			Sector:  s,
			Name:    "total",
			Summary: "Enterprise total: fossil fuel + process + purchased electricity",
			Params: []Param{
				scalar("fuel_emission", unitCO2e, "fossil fuel emission"),
				scalar("process_emission", unitCO2e, "process emission"),
				scalar("electricity_emission", unitCO2e, "purchased electricity emission"),
			},
			Output: unitCO2e,
			eval: func(a args) (float64, error) {
				return emission.CeramicsTotalEmission(
					a.s("fuel_emission"),
					a.s("process_emission"),
					a.s("electricity_emission"),
				), nil
			},
		},
	}
}

func aviationFormulas() []Formula {
	return []Formula{
		{
			Sector:  emission.SectorAviation,
			Name:    "enterprise",
			Summary: "Σ electricity AD × EF + Σ heat AD × EF",
			Params: []Param{
				series("electricity_activity", "MWh", "electricity consumed per supplier"),
				series("electricity_factor", "tCO2/MWh", "emission factor per supplier"),
				series("heat_activity", "GJ", "heat consumed per supplier"),
				series("heat_factor", "tCO2/GJ", "emission factor per supplier"),
			},
			Output: unitCO2e,
			eval: func(a args) (float64, error) {
				return emission.CivilAviationEmission(
					a.v("electricity_activity"),
					a.v("electricity_factor"),
					a.v("heat_activity"),
					a.v("heat_factor"),
				)
			},
		},
	}
}
