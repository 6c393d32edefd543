// Package imagecodec loads, resamples and saves the pixel buffers behind
// image shapes.
//
// Files are identified by content, not by extension. PNG, JPEG, GIF, BMP,
// TIFF and WebP are supported; everything is returned as an *image.RGBA
// whose bounds start at the origin.
package imagecodec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	// Decoders registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
	"github.com/h2non/filetype/types"
)

// ErrUnsupported is returned for data that is not an image in a supported
// format.
var ErrUnsupported = errors.New("imagecodec: unsupported image format")

var supported = map[types.Type]bool{
	matchers.TypePng:  true,
	matchers.TypeJpeg: true,
	matchers.TypeGif:  true,
	matchers.TypeBmp:  true,
	matchers.TypeTiff: true,
	matchers.TypeWebp: true,
}

// Load reads and decodes the image file at path.
func Load(path string) (*image.RGBA, error) {
	// #nosec G304 -- Image file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("imagecodec: failed to read %s: %w", path, err)
	}
	img, err := DecodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("imagecodec: %s: %w", path, err)
	}
	return img, nil
}

// Decode reads an image from r.
func Decode(r io.Reader) (*image.RGBA, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("imagecodec: failed to read: %w", err)
	}
	return DecodeBytes(data)
}

// DecodeBytes decodes an image held in memory.
func DecodeBytes(data []byte) (*image.RGBA, error) {
	kind, err := filetype.Match(data)
	if err != nil || !supported[kind] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, describe(kind))
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imagecodec: failed to decode %s: %w", kind.Extension, err)
	}
	return ToRGBA(img), nil
}

// Resize resamples img to w by h pixels with a linear filter. A zero size
// yields an empty image.
func Resize(img image.Image, w, h int) *image.RGBA {
	return transform.Resize(img, w, h, transform.Linear)
}

// SavePNG writes img to path as a PNG file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imagecodec: failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("imagecodec: failed to encode %s: %w", path, err)
	}
	return f.Close()
}

// ToRGBA copies img into an RGBA buffer whose bounds start at the origin.
func ToRGBA(img image.Image) *image.RGBA {
	out := clone.AsRGBA(img)
	out.Rect = out.Rect.Sub(out.Rect.Min)
	return out
}

func describe(kind types.Type) string {
	if kind == filetype.Unknown {
		return "unknown content"
	}
	return kind.MIME.Value
}
