package icons

import (
	"strconv"
	"strings"
)

// DefaultColor is the fill used when the caller does not pick one.
const DefaultColor = "#000000"

// iconMarkup holds the named fields stamped into the SVG template.
// Fill and rotation are interpolated exactly as given.
type iconMarkup struct {
	Width    int
	Height   int
	ViewBox  string
	Rotate   bool
	Rotation string
	Fill     string
	Shape    string
}

func newIconMarkup(def IconDefinition, fill string, rotation float64) iconMarkup {
	return iconMarkup{
		Width:    def.Width,
		Height:   def.Height,
		ViewBox:  def.ViewBox,
		Rotate:   !def.NoRotate,
		Rotation: formatDegrees(rotation),
		Fill:     fill,
		Shape:    def.Path,
	}
}

// write produces:
//
//	<svg ...><g transform="rotate(R 16 16)"><g fill="C" stroke="none">SHAPE</g></g></svg>
func (m iconMarkup) write(s *strings.Builder) {
	s.WriteString(`<svg width="`)
	s.WriteString(strconv.Itoa(m.Width))
	s.WriteString(`" height="`)
	s.WriteString(strconv.Itoa(m.Height))
	s.WriteString(`" viewBox="`)
	s.WriteString(m.ViewBox)
	s.WriteString(`" xmlns="http://www.w3.org/2000/svg">`)

	if m.Rotate {
		s.WriteString(`<g transform="rotate(`)
		s.WriteString(m.Rotation)
		s.WriteString(` 16 16)">`)
	} else {
		s.WriteString(`<g>`)
	}

	s.WriteString(`<g fill="`)
	s.WriteString(m.Fill)
	s.WriteString(`" stroke="none">`)
	s.WriteString(m.Shape)
	s.WriteString(`</g></g></svg>`)
}

func (m iconMarkup) String() string {
	var s strings.Builder
	s.Grow(256 + len(m.Shape))
	m.write(&s)
	return s.String()
}

// Render resolves the icon for an aircraft and returns a standalone SVG
// document filled with color and rotated by rotation degrees about the
// canvas center. Rotation-exempt icons ignore rotation. Neither color nor
// rotation is validated; use a Renderer with StrictColor for untrusted input.
func Render(typeDesignator, category, color string, rotation float64) string {
	return newIconMarkup(Resolve(typeDesignator, category), color, rotation).String()
}

// RenderDefault renders with DefaultColor and no rotation.
func RenderDefault(typeDesignator, category string) string {
	return Render(typeDesignator, category, DefaultColor, 0)
}

// formatDegrees prints whole angles without a decimal point (45, not 45.0).
func formatDegrees(deg float64) string {
	return strconv.FormatFloat(deg, 'f', -1, 64)
}

// xmlEscape escapes special XML characters in attribute values.
func xmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}
