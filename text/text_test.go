package text

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		in   string
		want Spec
	}{
		{"", Spec{Family: "Dialog", Style: Plain, Size: 12}},
		{"Dialog-13", Spec{Family: "Dialog", Style: Plain, Size: 13}},
		{"Serif-Bold-18", Spec{Family: "Serif", Style: Bold, Size: 18}},
		{"Monospaced-bolditalic-9.5", Spec{Family: "Monospaced", Style: BoldItalic, Size: 9.5}},
		{"SansSerif-Italic", Spec{Family: "SansSerif", Style: Italic, Size: 12}},
		{"*-*-20", Spec{Family: "Dialog", Style: Plain, Size: 20}},
		{"Go Mono", Spec{Family: "Go Mono", Style: Plain, Size: 12}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSpec(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSpecErrors(t *testing.T) {
	for _, in := range []string{"-13", "Dialog-0", "-Bold-13"} {
		_, err := ParseSpec(in)
		assert.Truef(t, errors.Is(err, ErrBadSpec), "ParseSpec(%q) err = %v", in, err)
	}
}

func TestSpecStringRoundTrip(t *testing.T) {
	spec := Spec{Family: "Serif", Style: BoldItalic, Size: 14}
	got, err := ParseSpec(spec.String())
	require.NoError(t, err)
	assert.Equal(t, spec, got)
}

func TestNewFontSource(t *testing.T) {
	_, err := NewFontSource(nil)
	assert.ErrorIs(t, err, ErrEmptyFontData)

	_, err = NewFontSource([]byte("not a font"))
	assert.Error(t, err)

	src, err := NewFontSource(goregular.TTF)
	require.NoError(t, err)
	assert.Equal(t, "Go", src.Name())
}

func TestDefaultMetrics(t *testing.T) {
	r := Default()

	m := r.Metrics("Dialog-20")
	assert.Greater(t, m.Ascent, 0.0)
	assert.Greater(t, m.Descent, 0.0)
	assert.GreaterOrEqual(t, r.LineHeight("Dialog-20"), m.Ascent+m.Descent)

	// Metrics scale with size.
	assert.InDelta(t, 2*r.Ascent("Dialog-10"), r.Ascent("Dialog-20"), 0.1)
}

func TestWidth(t *testing.T) {
	r := Default()

	assert.Equal(t, 0.0, r.Width("Dialog-13", ""))

	short := r.Width("Dialog-13", "Hi")
	long := r.Width("Dialog-13", "Hi there")
	assert.Greater(t, short, 0.0)
	assert.Greater(t, long, short)

	// Every Go Mono glyph has the same advance.
	assert.InDelta(t, 2*r.Width("Monospaced-12", "ab"), r.Width("Monospaced-12", "abcd"), 0.01)
}

func TestFallbacks(t *testing.T) {
	r := Default()

	// Unknown family and malformed spec both use the default family.
	assert.Equal(t, r.Width("Dialog-13", "abc"), r.Width("NoSuchFamily-13", "abc"))
	assert.Equal(t, r.Ascent("Dialog-12"), r.Ascent("-bad-"))
}

func TestFace(t *testing.T) {
	r := Default()
	f, err := r.Face("Serif-Bold-16")
	require.NoError(t, err)
	assert.NotNil(t, f)

	again, err := r.Face("Serif-Bold-16")
	require.NoError(t, err)
	assert.Same(t, f, again)
}

func TestEmptyRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, 0.0, r.Width("Dialog-12", "x"))
	_, err := r.Face("Dialog-12")
	assert.Error(t, err)
}

func TestRegisterReplacesCachedFaces(t *testing.T) {
	regular, err := NewFontSource(goregular.TTF)
	require.NoError(t, err)
	mono, err := NewFontSource(gomono.TTF)
	require.NoError(t, err)

	r := NewRegistry()
	r.Register(DefaultFamily, Plain, regular)
	before, err := r.Face("Dialog-12")
	require.NoError(t, err)
	narrow := r.Width("Dialog-12", "iii")

	r.Register(DefaultFamily, Plain, mono)
	after, err := r.Face("Dialog-12")
	require.NoError(t, err)
	assert.NotSame(t, before, after)
	assert.Greater(t, r.Width("Dialog-12", "iii"), narrow, "monospaced i is wider")
}
