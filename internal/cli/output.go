package cli

import (
	"io"
	"math"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// roundForDisplay rounds v half away from zero to places decimals.
// The computed value itself is never rounded.
func roundForDisplay(v float64, places int32) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return decimal.NewFromFloat(v).Round(places).String()
}
