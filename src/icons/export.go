package icons

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a legend export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned for unsupported export formats.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat maps a user-supplied name (case-insensitive, "yml" allowed) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: json, yaml, toml)", ErrUnknownFormat, s)
	}
}

// Legend is the full catalog and both indexes, for hosts that draw a key.
type Legend struct {
	Icons      []IconDefinition  `json:"icons" yaml:"icons" toml:"icons"`
	TypeCodes  map[string]string `json:"typeCodes" yaml:"type_codes" toml:"type_codes"`
	Categories map[string]string `json:"categories" yaml:"categories" toml:"categories"`
}

// NewLegend snapshots the catalog with icons ordered by id.
func NewLegend() Legend {
	ids := IDs()
	defs := make([]IconDefinition, 0, len(ids))
	for _, id := range ids {
		defs = append(defs, catalog[id])
	}
	return Legend{
		Icons:      defs,
		TypeCodes:  TypeCodes(),
		Categories: Categories(),
	}
}

// Export writes the legend to w in the given format.
func Export(w io.Writer, format Format) error {
	legend := NewLegend()

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(legend); err != nil {
			return fmt.Errorf("encoding legend as json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(legend); err != nil {
			return fmt.Errorf("encoding legend as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding legend as yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(legend); err != nil {
			return fmt.Errorf("encoding legend as toml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return nil
}
