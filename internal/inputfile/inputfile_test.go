package inputfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		format      Format
		wantFormula string
		wantScalars map[string]float64
		wantSeries  map[string][]float64
		wantErr     error
	}{
		{
			name: "yaml scalars",
			data: `
formula: mining/fuel-combustion
inputs:
  fuel_consumption: 10
  carbon_content: 0.027
  oxidation_rate: 0.98
`,
			format:      FormatYAML,
			wantFormula: "mining/fuel-combustion",
			wantScalars: map[string]float64{
				"fuel_consumption": 10,
				"carbon_content":   0.027,
				"oxidation_rate":   0.98,
			},
			wantSeries: map[string][]float64{},
		},
		{
			name: "yaml series with mixed int and float",
			data: `
inputs:
  fuel_activity: [10, 20.5]
  fuel_factor:
    - 2
    - 3
`,
			format:      FormatYAML,
			wantScalars: map[string]float64{},
			wantSeries: map[string][]float64{
				"fuel_activity": {10, 20.5},
				"fuel_factor":   {2, 3},
			},
		},
		{
			name:        "json document",
			data:        `{"formula": "general/fuel-mix", "inputs": {"fuel_activity": [10, 20], "fuel_factor": [2, 3], "scale": 1.5}}`,
			format:      FormatJSON,
			wantFormula: "general/fuel-mix",
			wantScalars: map[string]float64{"scale": 1.5},
			wantSeries: map[string][]float64{
				"fuel_activity": {10, 20},
				"fuel_factor":   {2, 3},
			},
		},
		{
			name:        "empty list stays a series",
			data:        `{"inputs": {"heat_activity": []}}`,
			format:      FormatJSON,
			wantScalars: map[string]float64{},
			wantSeries:  map[string][]float64{"heat_activity": {}},
		},
		{
			name:        "no inputs",
			data:        "formula: power/transmission-loss\n",
			format:      FormatYAML,
			wantFormula: "power/transmission-loss",
			wantScalars: map[string]float64{},
			wantSeries:  map[string][]float64{},
		},
		{
			name:    "string value",
			data:    "inputs:\n  grid_factor: high\n",
			format:  FormatYAML,
			wantErr: ErrNotNumeric,
		},
		{
			name:    "string inside list",
			data:    `{"inputs": {"fuel_factor": [1, "two"]}}`,
			format:  FormatJSON,
			wantErr: ErrNotNumeric,
		},
		{
			name:    "nested map",
			data:    "inputs:\n  grid:\n    factor: 1\n",
			format:  FormatYAML,
			wantErr: ErrNotNumeric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.data), tt.format)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFormula, doc.Formula)
			assert.Equal(t, tt.wantScalars, doc.Inputs.Scalars)
			assert.Equal(t, tt.wantSeries, doc.Inputs.Series)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte(`{"inputs": `), FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON")

	_, err = Parse([]byte("inputs: [unterminated"), FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YAML")
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFromPath("inputs.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("INPUTS.JSON"))
	assert.Equal(t, FormatYAML, FormatFromPath("inputs.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("inputs.yml"))
	assert.Equal(t, FormatYAML, FormatFromPath("inputs"))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transmission.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
formula: power/transmission-loss
inputs:
  supplied_electricity: 1000
  sold_electricity: 950
  grid_factor: 0.785
`), 0o600))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "power/transmission-loss", doc.Formula)
	assert.Equal(t, 0.785, doc.Inputs.Scalars["grid_factor"])

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
