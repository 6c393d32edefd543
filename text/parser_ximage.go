package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Metrics holds font metrics at a specific size, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the line (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the line (positive).
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64
}

// LineHeight returns the total line height (ascent + descent + line gap).
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// metrics reads the font's vertical metrics at size pixels per em.
func (s *FontSource) metrics(size float64) Metrics {
	var buf sfnt.Buffer
	m, err := s.ot.Metrics(&buf, floatToFixed(size), font.HintingNone)
	if err != nil {
		return Metrics{}
	}
	out := Metrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
	}
	out.LineGap = max(fixedToFloat(m.Height)-out.Ascent-out.Descent, 0)
	return out
}

// newFace creates a drawable face at size pixels per em.
func (s *FontSource) newFace(size float64) (font.Face, error) {
	f, err := opentype.NewFace(s.ot, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}
	return f, nil
}

// floatToFixed converts a float64 to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// measureString is the x/image advance of s, used when shaping fails.
func measureString(f font.Face, s string) fixed.Int26_6 {
	return font.MeasureString(f, s)
}
