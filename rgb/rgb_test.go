package rgb

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpack(t *testing.T) {
	v := Pack(0x12, 0x34, 0x56)
	assert.Equal(t, uint32(0x123456), v)

	r, g, b := Unpack(0xff123456)
	assert.Equal(t, []uint8{0x12, 0x34, 0x56}, []uint8{r, g, b})
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"red", 0xff0000},
		{"RED", 0xff0000},
		{"Light Gray", 0xd3d3d3},
		{"light_gray", 0xd3d3d3},
		{"dark-green", 0x006400},
		{"#ff8000", 0xff8000},
		{"#F80", 0xff8800},
		{"  blue  ", 0x0000ff},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUnknown(t *testing.T) {
	for _, in := range []string{"", "notacolor", "#zzzzzz", "#12"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrUnknownColor, in)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "#ff8000", String(0xff8000))
	assert.Equal(t, "#000000", String(0))
}

func TestName(t *testing.T) {
	assert.Equal(t, "red", Name(0xff0000))
	// aqua and cyan share a value; the alphabetically first wins.
	assert.Equal(t, "aqua", Name(0x00ffff))
	assert.Equal(t, "#123456", Name(0x123456))
}

func TestFromColor(t *testing.T) {
	assert.Equal(t, uint32(0x102030), FromColor(color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}))
	assert.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 0xff}, RGBA(0x010203))
}
