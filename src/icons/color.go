package icons

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

var (
	// ErrInvalidColor is returned by strict renderers for fills that are not
	// a hex color, an SVG color keyword, "none" or "currentColor".
	ErrInvalidColor = errors.New("invalid fill color")

	// ErrInvalidRotation is returned by strict renderers for NaN or infinite headings.
	ErrInvalidRotation = errors.New("invalid rotation")
)

// ValidateColor accepts #rgb, #rgba, #rrggbb, #rrggbbaa, SVG 1.1 color
// keywords (case-insensitive), "none" and "currentColor".
func ValidateColor(c string) error {
	switch {
	case c == "none" || c == "currentColor":
		return nil
	case strings.HasPrefix(c, "#"):
		hex := c[1:]
		switch len(hex) {
		case 3, 4, 6, 8:
		default:
			return fmt.Errorf("%w: %q", ErrInvalidColor, c)
		}
		for _, r := range hex {
			if !isHexDigit(r) {
				return fmt.Errorf("%w: %q", ErrInvalidColor, c)
			}
		}
		return nil
	}

	if _, ok := colornames.Map[strings.ToLower(c)]; ok {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidColor, c)
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// ValidateRotation rejects NaN and infinite headings. Out-of-range finite
// values are fine; SVG rotate() wraps them itself.
func ValidateRotation(deg float64) error {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidRotation, deg)
	}
	return nil
}

// NormalizeHeading folds a finite heading into [0, 360).
func NormalizeHeading(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg == 0 {
		return 0 // drop negative zero
	}
	return deg
}
