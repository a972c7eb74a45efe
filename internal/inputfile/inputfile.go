// Package inputfile reads the named inputs of one formula evaluation from
// a YAML or JSON document.
//
// A document looks like:
//
//	formula: mining/fuel-combustion
//	inputs:
//	  fuel_consumption: 10
//	  carbon_content: 0.027
//	  oxidation_rate: 0.98
//
// Each input is a number or a list of numbers. The formula key is optional
// when the caller names the formula some other way.
package inputfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/rshade/ghgcalc/internal/catalog"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrNotNumeric indicates an input value that is neither a number nor a
// list of numbers.
const ErrNotNumeric = constError("input is not numeric")

// Format is the encoding of an input document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension. Anything other
// than .json is read as YAML, which also accepts JSON syntax.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Document is a decoded input file.
type Document struct {
	// Formula is the formula ID named in the file, if any.
	Formula string

	// Inputs holds the decoded values.
	Inputs catalog.Inputs
}

type rawDocument struct {
	Formula string         `json:"formula" yaml:"formula"`
	Inputs  map[string]any `json:"inputs" yaml:"inputs"`
}

// Load reads and decodes the document at path.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading input file: %w", err)
	}

	doc, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (Document, error) {
	var raw rawDocument

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return Document{}, fmt.Errorf("failed to parse JSON inputs: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Document{}, fmt.Errorf("failed to parse YAML inputs: %w", err)
		}
	}

	in, err := convert(raw.Inputs)
	if err != nil {
		return Document{}, err
	}

	return Document{
		Formula: strings.TrimSpace(raw.Formula),
		Inputs:  in,
	}, nil
}

// convert turns decoded values into catalog inputs, visiting keys in
// sorted order so the first reported error is stable.
func convert(values map[string]any) (catalog.Inputs, error) {
	in := catalog.NewInputs()

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := values[k].(type) {
		case []any:
			list := make([]float64, len(v))
			for i, item := range v {
				f, ok := toFloat(item)
				if !ok {
					return catalog.Inputs{}, fmt.Errorf("%w: %s[%d] = %v", ErrNotNumeric, k, i, item)
				}
				list[i] = f
			}
			in.SetSeries(k, list)
		default:
			f, ok := toFloat(v)
			if !ok {
				return catalog.Inputs{}, fmt.Errorf("%w: %s = %v", ErrNotNumeric, k, v)
			}
			in.SetScalar(k, f)
		}
	}
	return in, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
