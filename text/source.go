package text

import (
	"bytes"
	"fmt"
	"os"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file, parsed once for metrics and
// glyph drawing (x/image) and once for shaping (go-text).
// FontSource is safe for concurrent use and must not be copied after
// creation.
type FontSource struct {
	// addr points to the FontSource itself; see copyCheck.
	addr *FontSource

	name   string
	ot     *opentype.Font
	shaped *gotext.Font
}

// NewFontSource parses TTF or OTF data. The data is not retained.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	ot, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}
	s := &FontSource{ot: ot, shaped: face.Font}
	s.addr = s
	if name, err := ot.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// Name returns the font family name recorded in the file.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}
