package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrBadSpec is returned when a font spec cannot be parsed.
	ErrBadSpec = errors.New("text: malformed font spec")
)
