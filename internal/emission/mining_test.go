package emission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMiningFuelCombustionEmission(t *testing.T) {
	tests := []struct {
		name                           string
		consumption, carbon, oxidation float64
		want                           float64
	}{
		{name: "reference example", consumption: 10, carbon: 0.027, oxidation: 0.98, want: 0.9702},
		{name: "pure carbon fully oxidised", consumption: 12, carbon: 1, oxidation: 1, want: 44},
		{name: "no consumption", consumption: 0, carbon: 0.027, oxidation: 0.98, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MiningFuelCombustionEmission(tt.consumption, tt.carbon, tt.oxidation)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

// TestMiningFuelCombustionEmission_MolarRatio verifies the 44/12 conversion is
// applied after the carbon mass is computed.
func TestMiningFuelCombustionEmission_MolarRatio(t *testing.T) {
	got := MiningFuelCombustionEmission(3, 2, 0.5)
	assert.Equal(t, 3.0*2*0.5*44/12, got)
	assert.InDelta(t, 11.0, got, 1e-12)
}

func TestMiningCarbonationAbsorption(t *testing.T) {
	got := MiningCarbonationAbsorption(500, 0.6, 0.44)
	assert.InDelta(t, 132.0, got, 1e-9)
	assert.GreaterOrEqual(t, got, 0.0, "absorption is reported as a positive quantity")
}

func TestMiningCarbonateDecompositionEmission(t *testing.T) {
	tests := []struct {
		name                           string
		amount, rate, fraction, factor float64
		want                           float64
	}{
		{name: "calcined limestone ore", amount: 1000, rate: 0.95, fraction: 0.8, factor: 0.44, want: 334.4},
		{name: "no decomposition", amount: 1000, rate: 0, fraction: 0.8, factor: 0.44, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MiningCarbonateDecompositionEmission(tt.amount, tt.rate, tt.fraction, tt.factor)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestMiningPurchasedPowerAndHeatEmission(t *testing.T) {
	got := MiningPurchasedPowerAndHeatEmission(2000, 0.5703, 50, 0.11)
	assert.InDelta(t, 1140.6+5.5, got, 1e-9)
}
