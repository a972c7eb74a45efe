package emission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElectronicsEmission(t *testing.T) {
	tests := []struct {
		name        string
		fuelAD      []float64
		fuelEF      []float64
		process     float64
		electricity float64
		gridFactor  float64
		heat        float64
		heatFactor  float64
		want        float64
		wantErr     bool
	}{
		{
			name:        "fuel, process, electricity and heat",
			fuelAD:      []float64{10, 20},
			fuelEF:      []float64{2, 3},
			process:     15,
			electricity: 1000,
			gridFactor:  0.5,
			heat:        100,
			heatFactor:  0.11,
			want:        80 + 15 + 500 + 11,
		},
		{
			name:        "no fossil fuel",
			fuelAD:      nil,
			fuelEF:      nil,
			process:     0,
			electricity: 200,
			gridFactor:  0.6,
			want:        120,
		},
		{
			name:    "negative process credit",
			fuelAD:  []float64{1},
			fuelEF:  []float64{1},
			process: -0.5,
			want:    0.5,
		},
		{
			name:    "mismatched fuel series",
			fuelAD:  []float64{10, 20},
			fuelEF:  []float64{2},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ElectronicsEmission(tt.fuelAD, tt.fuelEF, tt.process,
				tt.electricity, tt.gridFactor, tt.heat, tt.heatFactor)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrLengthMismatch)
				assert.Contains(t, err.Error(), "electronics")
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
