package text

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Style selects the weight and slant within a family.
type Style int

const (
	Plain  Style = 0
	Bold   Style = 1
	Italic Style = 2

	BoldItalic = Bold | Italic
)

// String returns the style name as it appears in specs.
func (s Style) String() string {
	switch s {
	case Plain:
		return "Plain"
	case Bold:
		return "Bold"
	case Italic:
		return "Italic"
	case BoldItalic:
		return "BoldItalic"
	default:
		return "Unknown"
	}
}

const (
	// DefaultFamily is used when a spec names no family.
	DefaultFamily = "Dialog"

	// DefaultSize is used when a spec names no size, in pixels.
	DefaultSize = 12
)

// Spec is a parsed font spec.
type Spec struct {
	Family string
	Style  Style
	Size   float64
}

// foldName case-folds a family or style name. Casers keep state, so each
// call gets its own.
func foldName(s string) string { return cases.Fold().String(s) }

// ParseSpec parses "Family-Style-Size". Omitted parts and parts given as
// "*" take the defaults; an empty string is the default font.
func ParseSpec(s string) (Spec, error) {
	spec := Spec{Family: DefaultFamily, Style: Plain, Size: DefaultSize}
	s = strings.TrimSpace(s)
	if s == "" {
		return spec, nil
	}

	parts := strings.Split(s, "-")
	if n := len(parts); n > 1 {
		last := parts[n-1]
		if last == "*" {
			parts = parts[:n-1]
		} else if size, err := strconv.ParseFloat(last, 64); err == nil {
			if size <= 0 {
				return Spec{}, fmt.Errorf("%w: size %q in %q", ErrBadSpec, last, s)
			}
			spec.Size = size
			parts = parts[:n-1]
		}
	}
	if n := len(parts); n > 1 {
		if last := parts[n-1]; last == "*" {
			parts = parts[:n-1]
		} else if st, ok := parseStyle(last); ok {
			spec.Style = st
			parts = parts[:n-1]
		}
	}

	family := strings.TrimSpace(strings.Join(parts, "-"))
	switch family {
	case "":
		return Spec{}, fmt.Errorf("%w: no family in %q", ErrBadSpec, s)
	case "*":
	default:
		spec.Family = family
	}
	return spec, nil
}

func parseStyle(s string) (Style, bool) {
	switch foldName(s) {
	case "plain", "regular":
		return Plain, true
	case "bold":
		return Bold, true
	case "italic":
		return Italic, true
	case "bolditalic", "italicbold":
		return BoldItalic, true
	}
	return Plain, false
}

// String formats the spec so that ParseSpec(s.String()) == s.
func (s Spec) String() string {
	return s.Family + "-" + s.Style.String() + "-" + strconv.FormatFloat(s.Size, 'g', -1, 64)
}

// key identifies the family and style for source lookup.
func (s Spec) key() string {
	return foldName(s.Family) + "/" + s.Style.String()
}
