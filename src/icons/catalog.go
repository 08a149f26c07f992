// Package icons resolves aircraft type designators and ICAO emitter categories
// to predrawn 32x32 SVG shapes and renders them with a fill color and heading.
//
// Shapes are derived from tar1090 (https://github.com/wiedehopf/tar1090), GPLv3.
package icons

import "sort"

// DefaultID is the catalog entry used whenever nothing else resolves.
const DefaultID = "default"

// IconDefinition is one predrawn icon shape.
type IconDefinition struct {
	ID       string  `json:"id" yaml:"id" toml:"id"`
	Path     string  `json:"path" yaml:"path" toml:"path"` // shape markup placed inside the fill group
	Width    int     `json:"width" yaml:"width" toml:"width"`
	Height   int     `json:"height" yaml:"height" toml:"height"`
	ViewBox  string  `json:"viewBox" yaml:"view_box" toml:"view_box"`
	Scale    float64 `json:"scale" yaml:"scale" toml:"scale"`             // display scale hint for the host map
	NoRotate bool    `json:"noRotate" yaml:"no_rotate" toml:"no_rotate"` // never rotated to heading
}

// All shapes are drawn on a 32x32 canvas centered at (16,16).
const (
	canvasSize    = 32
	canvasViewBox = "0 0 32 32"
)

func shape(id, path string, scale float64, noRotate bool) IconDefinition {
	return IconDefinition{
		ID:       id,
		Path:     path,
		Width:    canvasSize,
		Height:   canvasSize,
		ViewBox:  canvasViewBox,
		Scale:    scale,
		NoRotate: noRotate,
	}
}

var catalog = map[string]IconDefinition{
	"airliner": shape("airliner",
		`<path d="m 16,1 -1.5,1 -1,2 -2,3 v 6 l -5,2 v 1.5 l 5,-0.5 v 5.5 l -1.5,1.5 v 1 l 2,-0.5 0.5,-0.5 h 1 l 0.5,0.5 2,0.5 v -1 l -1.5,-1.5 v -5.5 l 5,0.5 v -1.5 l -5,-2 v -6 l -2,-3 -1,-2 z"/>`,
		1.0, false),
	"jet_nonmil": shape("jet_nonmil",
		`<path d="m 16,2 -0.7,0.5 -1.3,1.5 -2,3 v 7 l -4,1.5 v 2 l 4,-0.5 v 4.5 l -1.5,1.5 v 1.5 l 2,-0.5 0.5,-0.5 h 2 l 0.5,0.5 2,0.5 v -1.5 l -1.5,-1.5 v -4.5 l 4,0.5 v -2 l -4,-1.5 v -7 l -2,-3 -1.3,-1.5 z"/>`,
		0.9, false),
	"helicopter": shape("helicopter",
		`<path d="m 16,3 c -0.5,0 -1,0.5 -1,1 v 2 h -6 v 1 h 14 v -1 h -6 v -2 c 0,-0.5 -0.5,-1 -1,-1 z m -1,5 v 8 l -3,1 v 1.5 l 3,-0.5 v 4 h 2 v -4 l 3,0.5 v -1.5 l -3,-1 v -8 z m -7,16 v 1 h 16 v -1 z"/>`,
		1.0, true),
	"light_single": shape("light_single",
		`<path d="m 16,4 -0.5,1 -1.5,2 v 8 l -6,2 v 1 l 6,-1 v 5 l -2,1 v 1 l 2.5,-0.5 h 3 l 2.5,0.5 v -1 l -2,-1 v -5 l 6,1 v -1 l -6,-2 v -8 l -1.5,-2 z"/>`,
		0.8, false),
	"light_twin": shape("light_twin",
		`<path d="m 16,3 -1,1 -1,2 v 7 l -2,0.5 v 2 l -3,1 v 1 l 5,-1 v 5 l -2,1 v 1 l 2.5,-0.5 h 3 l 2.5,0.5 v -1 l -2,-1 v -5 l 5,1 v -1 l -3,-1 v -2 l -2,-0.5 v -7 l -1,-2 z"/>`,
		0.85, false),
	"heavy_4e": shape("heavy_4e",
		`<path d="m 16,2 -1,1 -2,2 -1,2 v 5 l -2,0.5 v 2 l -2,0.5 v 1 l -2,1 v 1 l 6,-1 v 5 l -2,1 v 1 l 3,-0.5 h 2 l 3,0.5 v -1 l -2,-1 v -5 l 6,1 v -1 l -2,-1 v -1 l -2,-0.5 v -2 l -2,-0.5 v -5 l -1,-2 -2,-2 z"/>`,
		1.1, false),
	"glider": shape("glider",
		`<path d="m 16,5 -0.5,0.5 -0.5,1.5 v 5 l -8,2 v 1 l 8,-1 v 6 l -2,1 v 1 l 2.5,-0.5 h 1 l 2.5,0.5 v -1 l -2,-1 v -6 l 8,1 v -1 l -8,-2 v -5 l -0.5,-1.5 z"/>`,
		0.9, false),
	"ground_vehicle": shape("ground_vehicle",
		`<rect x="12" y="10" width="8" height="12" rx="1" ry="1"/>`,
		0.7, true),
	"tower": shape("tower",
		`<path d="m 16,8 -4,4 v 2 h 2 v 8 h 4 v -8 h 2 v -2 z m -2,2 h 4 v 2 h -4 z"/>`,
		0.8, true),
	DefaultID: shape(DefaultID,
		`<circle cx="16" cy="16" r="4"/>`,
		0.6, true),
}

// Lookup returns the catalog entry with the given id.
func Lookup(id string) (IconDefinition, bool) {
	def, ok := catalog[id]
	return def, ok
}

// Default returns the filled-circle fallback icon.
func Default() IconDefinition {
	return catalog[DefaultID]
}

// Catalog returns a copy of the icon catalog keyed by id.
func Catalog() map[string]IconDefinition {
	out := make(map[string]IconDefinition, len(catalog))
	for id, def := range catalog {
		out[id] = def
	}
	return out
}

// IDs returns the catalog ids in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
