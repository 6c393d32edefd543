package sg

import (
	"image/color"
	"math"
)

// LineStyle selects how outlines are stroked.
type LineStyle uint8

// Line style constants.
const (
	LineSolid LineStyle = iota
	LineDash
	LineDashDot
	LineDashDotDot
	LineDot
	LineNone
)

// String returns a human-readable name for the line style.
func (s LineStyle) String() string {
	switch s {
	case LineSolid:
		return "Solid"
	case LineDash:
		return "Dash"
	case LineDashDot:
		return "DashDot"
	case LineDashDotDot:
		return "DashDotDot"
	case LineDot:
		return "Dot"
	case LineNone:
		return "None"
	default:
		return "Unknown"
	}
}

// DashPattern returns alternating dash/gap lengths for the style, expressed
// in multiples of the line width, or nil for solid and invisible lines.
// The lengths match the usual desktop pen patterns (dash 4, gap 2, dot 1).
func (s LineStyle) DashPattern(lineWidth float64) []float64 {
	w := math.Max(lineWidth, 1)
	var units []float64
	switch s {
	case LineDash:
		units = []float64{4, 2}
	case LineDashDot:
		units = []float64{4, 2, 1, 2}
	case LineDashDotDot:
		units = []float64{4, 2, 1, 2, 1, 2}
	case LineDot:
		units = []float64{1, 2}
	default:
		return nil
	}
	out := make([]float64, len(units))
	for i, u := range units {
		out[i] = u * w
	}
	return out
}

// LineCap specifies the shape of line endpoints.
type LineCap uint8

// Line cap constants.
const (
	// LineCapButt ends the stroke exactly at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound adds a semicircle at the endpoint.
	LineCapRound
	// LineCapSquare extends the stroke by half the width.
	LineCapSquare
)

// LineJoin specifies the shape of corners between stroke segments.
type LineJoin uint8

// Line join constants.
const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// Style is the snapshot of paint state handed to a Surface with every
// primitive. Shapes build a fresh Style per draw call.
type Style struct {
	// Stroke is the outline color; HasStroke is false when no color was set,
	// in which case surfaces use black.
	Stroke    color.RGBA
	HasStroke bool

	LineWidth  float64
	LineStyle  LineStyle
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64

	// Fill is used only when Filled is true.
	Fill   color.RGBA
	Filled bool

	// Opacity multiplies every color alpha, in [0, 1].
	Opacity float64

	// Font is a font spec such as "SansSerif-Bold-16"; empty selects the default.
	Font string

	// Transform maps shape coordinates to surface coordinates.
	Transform Matrix

	// Aliased asks the surface to disable anti-aliasing for this primitive.
	Aliased bool
}

// DefaultStyle returns a Style with a 1-pixel solid black stroke, flat caps
// and miter joins, no fill, full opacity and the identity transform.
func DefaultStyle() Style {
	return Style{
		Stroke:     color.RGBA{A: 0xff},
		LineWidth:  1,
		LineStyle:  LineSolid,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 99,
		Opacity:    1,
		Transform:  Identity(),
	}
}

// StrokeColor returns the stroke color, defaulting to opaque black.
func (s *Style) StrokeColor() color.RGBA {
	if !s.HasStroke {
		return color.RGBA{A: 0xff}
	}
	return s.Stroke
}

// Strokes reports whether the outline should be painted at all.
func (s *Style) Strokes() bool {
	return s.LineStyle != LineNone && s.LineWidth >= 0
}
