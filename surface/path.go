// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"math"

	"github.com/gogpu/sg"
)

// tolerance is the maximum distance in pixels between a flattened curve
// and the true curve.
const tolerance = 0.2

// segmentsFor returns how many chords approximate an arc of the given
// radius and sweep (radians) within tolerance.
func segmentsFor(radius, sweep float64) int {
	sweep = math.Abs(sweep)
	if radius <= tolerance || sweep == 0 {
		return 1
	}
	step := 2 * math.Acos(1-tolerance/radius)
	n := int(math.Ceil(sweep / step))
	return max(n, 4)
}

// rectangle returns the corners of the box, clockwise on screen.
func rectangle(x, y, w, h float64) []sg.Point {
	return []sg.Point{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}
}

// ellipse flattens the ellipse inscribed in the box. scale is the factor
// the result will be magnified by on screen.
func ellipse(x, y, w, h, scale float64) []sg.Point {
	return arcPoints(x, y, w, h, 0, 360, scale, false)
}

// arcPoints flattens the part of the inscribed ellipse from start sweeping
// by sweep degrees. Angles grow counter-clockwise on screen. Unless open is
// set, the endpoint repeating the start of a full turn is dropped.
func arcPoints(x, y, w, h, start, sweep, scale float64, open bool) []sg.Point {
	rx, ry := w/2, h/2
	cx, cy := x+rx, y+ry
	rad := sweep * math.Pi / 180
	n := segmentsFor(max(rx, ry)*scale, rad)
	a0 := start * math.Pi / 180
	count := n + 1
	if !open && math.Abs(sweep) >= 360 {
		count = n
	}
	pts := make([]sg.Point, 0, count)
	for i := range count {
		a := a0 + rad*float64(i)/float64(n)
		pts = append(pts, sg.Point{X: cx + rx*math.Cos(a), Y: cy - ry*math.Sin(a)})
	}
	return pts
}

// pie closes the arc through the center of its ellipse.
func pie(x, y, w, h, start, sweep, scale float64) []sg.Point {
	pts := arcPoints(x, y, w, h, start, sweep, scale, false)
	if math.Abs(sweep) >= 360 {
		return pts
	}
	return append(pts, sg.Point{X: x + w/2, Y: y + h/2})
}

// roundRect flattens a box whose corners are quarter ellipses of the given
// diameter, clamped to the box.
func roundRect(x, y, w, h, corner, scale float64) []sg.Point {
	dw, dh := math.Min(corner, w), math.Min(corner, h)
	if dw <= 0 || dh <= 0 {
		return rectangle(x, y, w, h)
	}
	var pts []sg.Point
	// top-right, top-left, bottom-left, bottom-right, counter-clockwise
	pts = append(pts, arcPoints(x+w-dw, y, dw, dh, 0, 90, scale, true)...)
	pts = append(pts, arcPoints(x, y, dw, dh, 90, 90, scale, true)...)
	pts = append(pts, arcPoints(x, y+h-dh, dw, dh, 180, 90, scale, true)...)
	pts = append(pts, arcPoints(x+w-dw, y+h-dh, dw, dh, 270, 90, scale, true)...)
	return pts
}

// transformAll maps pts through m in place and returns them.
func transformAll(m sg.Matrix, pts []sg.Point) []sg.Point {
	if m.IsIdentity() {
		return pts
	}
	for i, p := range pts {
		pts[i] = m.TransformPoint(p)
	}
	return pts
}

// extent returns the bounding box of the polygons.
func extent(polys [][]sg.Point) sg.Rect {
	first := true
	var r sg.Rect
	for _, poly := range polys {
		for _, p := range poly {
			if first {
				r = sg.Rect{X: p.X, Y: p.Y}
				first = false
				continue
			}
			r = r.UnionPoint(p)
		}
	}
	return r
}
