// Package emission provides greenhouse-gas emission accounting formulas
// for industrial enterprises, grouped by sector.
//
// Every function is a pure arithmetic formula taken from a published
// national or industry accounting guideline. Inputs are activity data and
// emission factors supplied by the caller; units must match between each
// activity value and its factor. Results are in the mass unit of the
// factors, expressed as CO2-equivalent.
package emission

const (
	// GWPSF6 is the 100-year global warming potential of SF6 relative to CO2.
	// Source: IPCC Third Assessment Report, as adopted by the power-grid
	// accounting guideline.
	GWPSF6 = 23900

	// MolarMassCO2 is the molar mass of CO2 in g/mol, used with
	// MolarMassCarbon to convert a carbon mass to a CO2 mass (44/12).
	MolarMassCO2 = 44

	// MolarMassCarbon is the molar mass of carbon in g/mol.
	MolarMassCarbon = 12
)

// Sector identifies the industry guideline a formula belongs to.
type Sector string

const (
	// SectorGeneral holds formulas shared by every guideline.
	SectorGeneral       Sector = "general"
	SectorPower         Sector = "power"
	SectorNonFerrous    Sector = "nonferrous"
	SectorAluminum      Sector = "aluminum"
	SectorGlass         Sector = "glass"
	SectorElectronics   Sector = "electronics"
	SectorPetrochemical Sector = "petrochemical"
	SectorChemical      Sector = "chemical"
	SectorMining        Sector = "mining"
	SectorCeramics      Sector = "ceramics"
	SectorAviation      Sector = "aviation"
)

// Sectors returns every sector in guideline order.
func Sectors() []Sector {
	return []Sector{
		SectorGeneral,
		SectorPower,
		SectorNonFerrous,
		SectorAluminum,
		SectorGlass,
		SectorElectronics,
		SectorPetrochemical,
		SectorChemical,
		SectorMining,
		SectorCeramics,
		SectorAviation,
	}
}

// String returns the sector identifier.
func (s Sector) String() string {
	return string(s)
}
