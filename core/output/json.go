// Package output - JSON and YAML renderers
package output

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"abroad-cost/core/projection"
	"abroad-cost/core/types"
)

// JSONFormatter renders results as indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format { return FormatJSON }

// RenderBreakdown writes a breakdown as JSON
func (f *JSONFormatter) RenderBreakdown(w io.Writer, breakdown *types.CostBreakdown) error {
	return encodeJSON(w, breakdown)
}

// RenderComparison writes a comparison as JSON
func (f *JSONFormatter) RenderComparison(w io.Writer, comparison *types.RankedComparison) error {
	return encodeJSON(w, comparison)
}

// RenderProjection writes a projection as JSON
func (f *JSONFormatter) RenderProjection(w io.Writer, comparison *projection.PathComparison) error {
	return encodeJSON(w, comparison)
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAMLFormatter renders results as YAML
type YAMLFormatter struct{}

// Format returns the format type
func (f *YAMLFormatter) Format() Format { return FormatYAML }

// RenderBreakdown writes a breakdown as YAML
func (f *YAMLFormatter) RenderBreakdown(w io.Writer, breakdown *types.CostBreakdown) error {
	return encodeYAML(w, breakdown)
}

// RenderComparison writes a comparison as YAML
func (f *YAMLFormatter) RenderComparison(w io.Writer, comparison *types.RankedComparison) error {
	return encodeYAML(w, comparison)
}

// RenderProjection writes a projection as YAML
func (f *YAMLFormatter) RenderProjection(w io.Writer, comparison *projection.PathComparison) error {
	return encodeYAML(w, comparison)
}

func encodeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(v)
}
