// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/sg"
	"github.com/gogpu/sg/internal/stroke"
	"github.com/gogpu/sg/text"
)

// ImageSurface is a CPU surface that paints into an *image.RGBA.
//
// It is not safe for concurrent use; a canvas paints from its UI thread.
type ImageSurface struct {
	img       *image.RGBA
	clip      image.Rectangle
	antiAlias bool
	fonts     *text.Registry
	ras       *vector.Rasterizer
}

var _ sg.Surface = (*ImageSurface)(nil)

// NewImageSurface creates a transparent surface. Sizes below one pixel are
// raised to one.
func NewImageSurface(width, height int, opts ...Option) *ImageSurface {
	return NewImageSurfaceFromImage(image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1))), opts...)
}

// NewImageSurfaceFromImage creates a surface that paints directly into img.
func NewImageSurfaceFromImage(img *image.RGBA, opts ...Option) *ImageSurface {
	s := &ImageSurface{
		img:       img,
		clip:      img.Bounds(),
		antiAlias: true,
		fonts:     text.Default(),
		ras:       vector.NewRasterizer(0, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Width returns the surface width.
func (s *ImageSurface) Width() int { return s.img.Bounds().Dx() }

// Height returns the surface height.
func (s *ImageSurface) Height() int { return s.img.Bounds().Dy() }

// Image returns the backing image. It is painted in place.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Snapshot returns a copy of the current contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

// SetClip restricts painting to r. An empty intersection with the surface
// suppresses all painting until the clip is reset.
func (s *ImageSurface) SetClip(r image.Rectangle) {
	s.clip = r.Intersect(s.img.Bounds())
}

// ResetClip removes the clip.
func (s *ImageSurface) ResetClip() { s.clip = s.img.Bounds() }

// Clip returns the current clip rectangle.
func (s *ImageSurface) Clip() image.Rectangle { return s.clip }

// Clear fills the clip rectangle with c, replacing what was there.
func (s *ImageSurface) Clear(c color.Color) {
	draw.Draw(s.img, s.clip, image.NewUniform(c), image.Point{}, draw.Src)
}

// DrawRect paints an axis-aligned box.
func (s *ImageSurface) DrawRect(st *sg.Style, x, y, w, h float64) {
	s.shape(st, rectangle(x, y, w, h), true)
}

// DrawRoundRect paints a box whose corners are quarter ellipses corner
// pixels across.
func (s *ImageSurface) DrawRoundRect(st *sg.Style, x, y, w, h, corner float64) {
	s.shape(st, roundRect(x, y, w, h, corner, st.Transform.MaxScale()), true)
}

// DrawEllipse paints the ellipse inscribed in the box.
func (s *ImageSurface) DrawEllipse(st *sg.Style, x, y, w, h float64) {
	s.shape(st, ellipse(x, y, w, h, st.Transform.MaxScale()), true)
}

// DrawArc paints part of the ellipse inscribed in the box. A filled arc
// is a pie slice; the outline follows the curve only.
func (s *ImageSurface) DrawArc(st *sg.Style, x, y, w, h, start, sweep float64) {
	scale := st.Transform.MaxScale()
	if st.Filled {
		s.fill(st, [][]sg.Point{transformAll(st.Transform, pie(x, y, w, h, start, sweep, scale))}, st.Fill, false)
	}
	full := math.Abs(sweep) >= 360
	s.stroke(st, transformAll(st.Transform, arcPoints(x, y, w, h, start, sweep, scale, !full)), full)
}

// DrawLine strokes a segment.
func (s *ImageSurface) DrawLine(st *sg.Style, x0, y0, x1, y1 float64) {
	pts := []sg.Point{{X: x0, Y: y0}, {X: x1, Y: y1}}
	s.stroke(st, transformAll(st.Transform, pts), false)
}

// DrawPolygon paints a closed polygon. Its interior follows the even-odd
// rule.
func (s *ImageSurface) DrawPolygon(st *sg.Style, pts []sg.Point) {
	if len(pts) == 0 {
		return
	}
	dev := transformAll(st.Transform, append([]sg.Point(nil), pts...))
	if st.Filled {
		s.fill(st, [][]sg.Point{dev}, st.Fill, true)
	}
	s.stroke(st, dev, true)
}

// shape fills and strokes a closed outline given in shape coordinates.
func (s *ImageSurface) shape(st *sg.Style, pts []sg.Point, closed bool) {
	dev := transformAll(st.Transform, pts)
	if st.Filled {
		s.fill(st, [][]sg.Point{dev}, st.Fill, false)
	}
	s.stroke(st, dev, closed)
}

// stroke outlines a device-space polyline with the style's pen.
func (s *ImageSurface) stroke(st *sg.Style, pts []sg.Point, closed bool) {
	if !st.Strokes() || len(pts) == 0 {
		return
	}
	scale := st.Transform.MaxScale()
	// A zero width is the thinnest visible line.
	width := max(st.LineWidth*scale, 1)

	line := make([]stroke.Point, len(pts))
	for i, p := range pts {
		line[i] = stroke.Point{X: p.X, Y: p.Y}
	}
	runs := [][]stroke.Point{line}
	if pattern := st.LineStyle.DashPattern(st.LineWidth); pattern != nil {
		for i := range pattern {
			pattern[i] *= scale
		}
		runs = stroke.NewDash(pattern...).Apply(line, closed)
		closed = false
	}

	pen := stroke.Style{
		Width:      width,
		Cap:        stroke.LineCap(st.Cap),
		Join:       stroke.LineJoin(st.Join),
		MiterLimit: st.MiterLimit,
	}
	var polys [][]sg.Point
	for _, run := range runs {
		for _, piece := range stroke.Outline(run, closed, pen) {
			poly := make([]sg.Point, len(piece))
			for i, p := range piece {
				poly[i] = sg.Point{X: p.X, Y: p.Y}
			}
			polys = append(polys, poly)
		}
	}
	s.fill(st, polys, st.StrokeColor(), false)
}

// fill covers device-space polygons with c. Outlines use the nonzero rule
// unless evenOdd is set.
func (s *ImageSurface) fill(st *sg.Style, polys [][]sg.Point, c color.RGBA, evenOdd bool) {
	if len(polys) == 0 || st.Opacity <= 0 {
		return
	}
	b := extent(polys).Pixels().Intersect(s.clip)
	if b.Empty() {
		return
	}

	mask := image.NewAlpha(b)
	if evenOdd {
		scanEvenOdd(mask, polys)
	} else {
		s.ras.Reset(b.Dx(), b.Dy())
		ox, oy := float64(b.Min.X), float64(b.Min.Y)
		for _, poly := range polys {
			if len(poly) < 3 {
				continue
			}
			s.ras.MoveTo(float32(poly[0].X-ox), float32(poly[0].Y-oy))
			for _, p := range poly[1:] {
				s.ras.LineTo(float32(p.X-ox), float32(p.Y-oy))
			}
			s.ras.ClosePath()
		}
		s.ras.Draw(mask, b, image.Opaque, image.Point{})
	}
	if st.Aliased || !s.antiAlias {
		threshold(mask.Pix)
	}
	draw.DrawMask(s.img, b, image.NewUniform(paint(c, st.Opacity)), image.Point{}, mask, b.Min, draw.Over)
}

// DrawText paints s with its baseline starting at (x, y).
func (s *ImageSurface) DrawText(st *sg.Style, x, y float64, str string) {
	if str == "" || st.Opacity <= 0 {
		return
	}
	face, err := s.fonts.Face(st.Font)
	if err != nil {
		sg.Logger().Warn("surface: no face for text", "font", st.Font, "err", err)
		return
	}
	src := image.NewUniform(paint(st.StrokeColor(), st.Opacity))

	m := st.Transform
	if m.IsTranslation() {
		d := font.Drawer{
			Dst:  s.target(),
			Src:  src,
			Face: face,
			Dot:  fixed.Point26_6{X: toFixed(x + m.C), Y: toFixed(y + m.F)},
		}
		d.DrawString(str)
		return
	}

	// Rotated or scaled text is rendered upright and then resampled.
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	h := ascent + metrics.Descent.Ceil()
	w := font.MeasureString(face, str).Ceil()
	if w <= 0 || h <= 0 {
		return
	}
	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{Dst: tmp, Src: src, Face: face, Dot: fixed.P(0, ascent)}
	d.DrawString(str)
	s.transformed(st, m.Multiply(sg.Translate(x, y-float64(ascent))), tmp, nil)
}

// DrawImage paints img with its top-left corner at (x, y).
func (s *ImageSurface) DrawImage(st *sg.Style, x, y float64, img image.Image) {
	if img == nil || st.Opacity <= 0 {
		return
	}
	var mask image.Image
	if st.Opacity < 1 {
		mask = image.NewUniform(color.Alpha{A: uint8(math.Round(st.Opacity * 255))})
	}

	m := st.Transform.Multiply(sg.Translate(x, y))
	if m.IsTranslation() && m.C == math.Trunc(m.C) && m.F == math.Trunc(m.F) {
		sb := img.Bounds()
		r := image.Rectangle{Max: sb.Size()}.Add(image.Pt(int(m.C), int(m.F)))
		clipped := r.Intersect(s.clip)
		if clipped.Empty() {
			return
		}
		draw.DrawMask(s.img, clipped, img, sb.Min.Add(clipped.Min.Sub(r.Min)), mask, image.Point{}, draw.Over)
		return
	}
	s.transformed(st, m, img, mask)
}

// transformed resamples src into the surface, mapping src's top-left
// corner through m.
func (s *ImageSurface) transformed(st *sg.Style, m sg.Matrix, src image.Image, mask image.Image) {
	sb := src.Bounds()
	m = m.Multiply(sg.Translate(-float64(sb.Min.X), -float64(sb.Min.Y)))
	var interp draw.Interpolator = draw.BiLinear
	if st.Aliased || !s.antiAlias {
		interp = draw.NearestNeighbor
	}
	var opts *draw.Options
	if mask != nil {
		opts = &draw.Options{SrcMask: mask}
	}
	interp.Transform(s.target(), f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}, src, sb, draw.Over, opts)
}

// target returns the clipped view of the backing image.
func (s *ImageSurface) target() *image.RGBA {
	return s.img.SubImage(s.clip).(*image.RGBA)
}

// paint returns c with its alpha multiplied by opacity.
func paint(c color.RGBA, opacity float64) color.NRGBA {
	opacity = math.Min(math.Max(opacity, 0), 1)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(float64(c.A) * opacity))}
}

// threshold turns partial coverage into all or nothing.
func threshold(pix []uint8) {
	for i, v := range pix {
		if v >= 0x80 {
			pix[i] = 0xff
		} else {
			pix[i] = 0
		}
	}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
