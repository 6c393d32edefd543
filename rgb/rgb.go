// Package rgb converts between color names, hex strings and packed
// 0xRRGGBB integers.
//
// Names are the SVG 1.1 keywords from golang.org/x/image/colornames, matched
// without regard to case, spaces, underscores or hyphens, so "Light Gray",
// "LIGHT_GRAY" and "lightgray" are the same color. Hex strings use the HTML
// forms "#rgb" and "#rrggbb".
package rgb

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// ErrUnknownColor is returned by Parse for a string that is neither a known
// name nor a hex color.
var ErrUnknownColor = errors.New("rgb: unknown color")

// Pack combines components into 0xRRGGBB.
func Pack(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unpack splits 0xRRGGBB into components. Bits above 24 are ignored.
func Unpack(v uint32) (r, g, b uint8) {
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// FromColor packs any color, dropping alpha.
func FromColor(c color.Color) uint32 {
	cf, _ := colorful.MakeColor(c)
	return Pack(cf.RGB255())
}

// RGBA returns v as an opaque color.RGBA.
func RGBA(v uint32) color.RGBA {
	r, g, b := Unpack(v)
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Parse converts a color name or hex string to 0xRRGGBB.
func Parse(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrUnknownColor, s, err)
		}
		return Pack(c.RGB255()), nil
	}
	if c, ok := colornames.Map[normalize(s)]; ok {
		return Pack(c.R, c.G, c.B), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// String formats v as "#rrggbb".
func String(v uint32) string {
	r, g, b := Unpack(v)
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hex()
}

// Name returns the first color name, in alphabetical order, for v, or the
// hex string if v has no name.
func Name(v uint32) string {
	r, g, b := Unpack(v)
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		if c.R == r && c.G == g && c.B == b {
			return name
		}
	}
	return String(v)
}

// normalize folds case and drops separators.
func normalize(s string) string {
	s = cases.Fold().String(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, s)
}
