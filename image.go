package sg

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/gogpu/sg/imagecodec"
)

// ImageShape displays a pixel buffer with its top-left corner at the
// shape's location.
type ImageShape struct {
	object
	buf      *image.RGBA
	filename string
}

// NewImage creates a transparent w by h image.
func NewImage(w, h int) (*ImageShape, error) {
	if w < 0 || h < 0 {
		return nil, violation("NewImage", image.Pt(w, h), ErrNegative)
	}
	return newImageShape(image.NewRGBA(image.Rect(0, 0, w, h)), ""), nil
}

// NewImageFromFile loads the image file at path.
func NewImageFromFile(path string) (*ImageShape, error) {
	buf, err := imagecodec.Load(path)
	if err != nil {
		return nil, violation("NewImageFromFile", path, fmt.Errorf("%w: %w", ErrImageLoad, err))
	}
	return newImageShape(buf, path), nil
}

// NewImageFromBuffer creates an image shape from a copy of img.
func NewImageFromBuffer(img image.Image) (*ImageShape, error) {
	if img == nil {
		return nil, violation("NewImageFromBuffer", nil, ErrImageLoad)
	}
	return newImageShape(imagecodec.ToRGBA(img), ""), nil
}

func newImageShape(buf *image.RGBA, filename string) *ImageShape {
	b := buf.Bounds()
	im := &ImageShape{
		object:   newObject(0, 0, float64(b.Dx()), float64(b.Dy())),
		buf:      buf,
		filename: filename,
	}
	im.resize = im.resample
	return im
}

// Type returns "Image".
func (im *ImageShape) Type() string { return "Image" }

func (im *ImageShape) String() string {
	if im.filename == "" {
		return im.describe(im.Type(), "")
	}
	return im.describe(im.Type(), "filename="+strconv.Quote(im.filename))
}

// FileName returns the path the image was loaded from, or "".
func (im *ImageShape) FileName() string { return im.filename }

// Image returns the pixel buffer. Changes to it show on the next repaint.
// It is nil after Dispose.
func (im *ImageShape) Image() *image.RGBA { return im.buf }

// Pixel returns the color at (x, y).
func (im *ImageShape) Pixel(x, y int) (color.RGBA, error) {
	if !im.inRange(x, y) {
		return color.RGBA{}, violation("Pixel", image.Pt(x, y), ErrPixelRange)
	}
	return im.buf.RGBAAt(x, y), nil
}

// SetPixel changes the color at (x, y).
func (im *ImageShape) SetPixel(x, y int, c color.RGBA) error {
	if !im.inRange(x, y) {
		return violation("SetPixel", image.Pt(x, y), ErrPixelRange)
	}
	im.buf.SetRGBA(x, y, c)
	im.repaint()
	return nil
}

func (im *ImageShape) inRange(x, y int) bool {
	return im.buf != nil && image.Pt(x, y).In(im.buf.Bounds())
}

// resample scales the buffer to the new size.
func (im *ImageShape) resample(w, h float64) error {
	if im.buf != nil {
		im.buf = imagecodec.Resize(im.buf, int(math.Round(w)), int(math.Round(h)))
	}
	im.width, im.height = w, h
	return nil
}

// Dispose releases the pixel buffer. The shape stays in place but paints
// nothing.
func (im *ImageShape) Dispose() {
	im.buf = nil
	im.repaint()
}

// Bounds returns the image box, or its envelope when transformed.
func (im *ImageShape) Bounds() Rect { return im.envelope(im.box()) }

// Contains reports whether (x, y) lies in the image box.
func (im *ImageShape) Contains(x, y float64) bool { return im.boxContains(x, y) }

func (im *ImageShape) Draw(s Surface) {
	if im.buf == nil {
		return
	}
	st := im.style()
	s.DrawImage(&st, im.x, im.y, im.buf)
}
