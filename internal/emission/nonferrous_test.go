package emission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNonFerrousComponents verifies each single-pair formula is AD × EF.
func TestNonFerrousComponents(t *testing.T) {
	formulas := map[string]func(float64, float64) float64{
		"fuel combustion":       NonFerrousFuelCombustionEmission,
		"raw material energy":   NonFerrousRawMaterialEnergyEmission,
		"process":               NonFerrousProcessEmission,
		"purchased electricity": NonFerrousPurchasedElectricityEmission,
		"purchased heat":        NonFerrousPurchasedHeatEmission,
		"aluminum fuel":         AluminumFuelCombustionEmission,
		"aluminum electricity":  AluminumPurchasedElectricityEmission,
		"aluminum heat":         AluminumPurchasedHeatEmission,
		"petrochemical fuel":    PetrochemicalFossilFuelEmission,
		"chemical fuel":         ChemicalFuelCombustionEmission,
		"chemical process":      ChemicalProcessEmission,
		"chemical purchased":    ChemicalPurchasedPowerEmission,
		"ceramics electricity":  CeramicsPurchasedElectricityEmission,
		"glass carbon powder":   GlassCarbonPowderEmission,
	}

	for name, f := range formulas {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 39.25, f(50, 0.785), 1e-9)
			assert.Equal(t, 0.0, f(0, 0.785))
			assert.Equal(t, 0.0, f(50, 0))
			assert.InDelta(t, 2*39.25, f(100, 0.785), 1e-9, "linear in activity")
		})
	}
}

func TestNonFerrousTotalEmission(t *testing.T) {
	tests := []struct {
		name                                   string
		fuel, rawMaterial, process, elec, heat float64
	}{
		{name: "all positive", fuel: 120.5, rawMaterial: 30, process: 44.4, elec: 800, heat: 12},
		{name: "all zero"},
		{name: "negative component", fuel: 100, rawMaterial: -20, process: 5, elec: 1, heat: -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NonFerrousTotalEmission(tt.fuel, tt.rawMaterial, tt.process, tt.elec, tt.heat)
			assert.Equal(t, tt.fuel+tt.rawMaterial+tt.process+tt.elec+tt.heat, got)
		})
	}
}

// TestTotals_Additive verifies every total formula is the plain sum of its
// arguments regardless of order.
func TestTotals_Additive(t *testing.T) {
	a, b, c := 12.75, -3.5, 400.0

	assert.Equal(t, a+b+c, ChemicalTotalEmission(a, b, c))
	assert.Equal(t, a+b+c, CeramicsTotalEmission(a, b, c))
	assert.InDelta(t, ChemicalTotalEmission(a, b, c), ChemicalTotalEmission(c, a, b), 1e-9)
	assert.InDelta(t, CeramicsTotalEmission(a, b, c), CeramicsTotalEmission(b, c, a), 1e-9)
	assert.InDelta(t,
		NonFerrousTotalEmission(a, b, c, a, b),
		NonFerrousTotalEmission(b, b, a, a, c),
		1e-9)
}
