// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"slices"

	"github.com/gogpu/sg"
)

// subsamples is the number of sample rows per pixel row used by the
// even-odd filler. Horizontal coverage is computed exactly.
const subsamples = 4

// scanEvenOdd writes the even-odd coverage of polys into mask. Polygon
// coordinates are in the same space as the mask bounds.
func scanEvenOdd(mask *image.Alpha, polys [][]sg.Point) {
	b := mask.Bounds()
	acc := make([]float64, b.Dx())
	var xs []float64
	for py := b.Min.Y; py < b.Max.Y; py++ {
		clear(acc)
		for s := range subsamples {
			y := float64(py) + (float64(s)+0.5)/subsamples
			xs = crossings(xs[:0], polys, y)
			slices.Sort(xs)
			for i := 0; i+1 < len(xs); i += 2 {
				addSpan(acc, xs[i]-float64(b.Min.X), xs[i+1]-float64(b.Min.X))
			}
		}
		row := mask.Pix[mask.PixOffset(b.Min.X, py):]
		for x, v := range acc {
			row[x] = uint8(min(v/subsamples, 1)*255 + 0.5)
		}
	}
}

// crossings appends the x coordinates where the sample row y crosses a
// polygon edge. Edges are half-open in y so shared vertices count once.
func crossings(xs []float64, polys [][]sg.Point, y float64) []float64 {
	for _, poly := range polys {
		n := len(poly)
		for i := range n {
			a, c := poly[i], poly[(i+1)%n]
			if (a.Y <= y) == (c.Y <= y) {
				continue
			}
			xs = append(xs, a.X+(y-a.Y)*(c.X-a.X)/(c.Y-a.Y))
		}
	}
	return xs
}

// addSpan adds the horizontal coverage of [x0, x1) to acc.
func addSpan(acc []float64, x0, x1 float64) {
	x0 = max(x0, 0)
	x1 = min(x1, float64(len(acc)))
	if x1 <= x0 {
		return
	}
	i0, i1 := int(x0), int(x1)
	if i0 == i1 {
		acc[i0] += x1 - x0
		return
	}
	acc[i0] += float64(i0+1) - x0
	for i := i0 + 1; i < i1; i++ {
		acc[i]++
	}
	if i1 < len(acc) {
		acc[i1] += x1 - float64(i1)
	}
}
