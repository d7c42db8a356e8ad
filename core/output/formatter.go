// Package output provides output formatting for computed results.
// Result types stay plain structured data; every renderer consumes them
// uniformly.
package output

import (
	"fmt"
	"io"

	"abroad-cost/core/projection"
	"abroad-cost/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatTable is a human-readable terminal table
	FormatTable Format = "table"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatYAML is machine-readable YAML
	FormatYAML Format = "yaml"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// RenderBreakdown writes a single-school cost breakdown
	RenderBreakdown(w io.Writer, breakdown *types.CostBreakdown) error

	// RenderComparison writes a ranked multi-school comparison
	RenderComparison(w io.Writer, comparison *types.RankedComparison) error

	// RenderProjection writes a two-path projection comparison
	RenderProjection(w io.Writer, comparison *projection.PathComparison) error
}

// New returns the formatter for a format name
func New(format Format) (Formatter, error) {
	switch format {
	case FormatTable:
		return &TableFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}
