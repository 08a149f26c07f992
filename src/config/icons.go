package config

import (
	"path/filepath"

	"github.com/sofmeright/goaround-icons/src/icons"
)

// RenderConfig holds defaults applied to every rendered icon.
type RenderConfig struct {
	Color       string  `yaml:"color"`        // fill used when none is given (default: "#000000")
	Rotation    float64 `yaml:"rotation"`     // heading used when none is given
	StrictColor bool    `yaml:"strict_color"` // reject fills that aren't hex or SVG color keywords
	Escape      bool    `yaml:"escape"`       // XML-escape fills before embedding them
}

// DefaultRenderConfig returns the stock render settings.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Color: icons.DefaultColor,
	}
}

// Options converts the render settings to icons.Options.
func (r RenderConfig) Options() icons.Options {
	return icons.Options{
		DefaultColor: r.Color,
		StrictColor:  r.StrictColor,
		Escape:       r.Escape,
	}
}

// GenerateConfig describes icons written to disk by `goaround-icons generate`.
type GenerateConfig struct {
	OutputDir   string     `yaml:"output_dir"`  // default: ".goaround-icons/icons"
	Concurrency int        `yaml:"concurrency"` // 0 means one worker per CPU
	Items       []IconItem `yaml:"items"`
}

// DefaultGenerateConfig returns the stock generate settings.
func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{
		OutputDir: ".goaround-icons/icons",
	}
}

// IconItem is a single icon to generate.
type IconItem struct {
	Name     string   `yaml:"name"`     // unique identifier
	Type     string   `yaml:"type"`     // aircraft type designator, e.g. "B738"
	Category string   `yaml:"category"` // ICAO emitter category fallback, e.g. "A3"
	Color    string   `yaml:"color"`    // fill override
	Rotation *float64 `yaml:"rotation"` // heading override
	Output   string   `yaml:"output"`   // file path (default: <output_dir>/<name>.svg)
}

// OutputPath returns where the item is written.
func (i IconItem) OutputPath(outputDir string) string {
	if i.Output != "" {
		return i.Output
	}
	return filepath.Join(outputDir, i.Name+".svg")
}

// ResolvedColor returns the item's fill, falling back to the render default.
func (i IconItem) ResolvedColor(r RenderConfig) string {
	if i.Color != "" {
		return i.Color
	}
	return r.Color
}

// ResolvedRotation returns the item's heading, falling back to the render default.
func (i IconItem) ResolvedRotation(r RenderConfig) float64 {
	if i.Rotation != nil {
		return *i.Rotation
	}
	return r.Rotation
}
