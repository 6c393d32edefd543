package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// shaperPool holds HarfbuzzShaper instances, which are not safe for
// concurrent use.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// advance returns the width of str shaped left to right at size pixels
// per em. It returns false if shaping produced no glyphs.
func (s *FontSource) advance(str string, size float64) (float64, bool) {
	if str == "" {
		return 0, true
	}
	runes := []rune(str)

	// font.Face is not safe for concurrent use; font.Font is.
	face := gotext.NewFace(s.shaped)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	shaperPool.Put(hb)

	if len(output.Glyphs) == 0 {
		return 0, false
	}
	var w float64
	for _, g := range output.Glyphs {
		w += fixedToFloat(g.Advance)
	}
	return w, true
}

// detectScript returns the script of the first rune that has one.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
