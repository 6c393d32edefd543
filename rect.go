package sg

import (
	"fmt"
	"image"
	"math"
)

// Rect is an axis-aligned rectangle given by its top-left corner and size.
// A Rect with zero width or height is degenerate but still has a location,
// which matters for the bounds of lines and empty compounds.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// R is a convenience function to create a Rect.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// rectFromPoints returns the smallest Rect containing both points.
func rectFromPoints(a, b Point) Rect {
	x0, x1 := math.Min(a.X, b.X), math.Max(a.X, b.X)
	y0, y1 := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Location returns the top-left corner.
func (r Rect) Location() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the width and height.
func (r Rect) Size() Dimension { return Dimension{Width: r.Width, Height: r.Height} }

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point (x, y) lies inside the rectangle.
// All four edges are inclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && y >= r.Y && x <= r.X+r.Width && y <= r.Y+r.Height
}

// Union returns the smallest rectangle containing both rectangles.
// Degenerate rectangles still contribute their corners.
func (r Rect) Union(o Rect) Rect {
	x0 := math.Min(r.X, o.X)
	y0 := math.Min(r.Y, o.Y)
	x1 := math.Max(r.MaxX(), o.MaxX())
	y1 := math.Max(r.MaxY(), o.MaxY())
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// UnionPoint expands the rectangle to include the given point.
func (r Rect) UnionPoint(p Point) Rect {
	return r.Union(Rect{X: p.X, Y: p.Y})
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Enlarge returns the rectangle grown by d on every side.
func (r Rect) Enlarge(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

// Corners returns the four corners in clockwise order from the top-left.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.MaxX(), Y: r.Y},
		{X: r.MaxX(), Y: r.MaxY()},
		{X: r.X, Y: r.MaxY()},
	}
}

// Pixels returns the integer rectangle covering r, rounding outwards.
func (r Rect) Pixels() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.MaxX())), int(math.Ceil(r.MaxY())),
	)
}

// String returns the rectangle as "Rect(x, y, w, h)".
func (r Rect) String() string {
	return fmt.Sprintf("Rect(%s, %s, %s, %s)",
		formatFloat(r.X), formatFloat(r.Y), formatFloat(r.Width), formatFloat(r.Height))
}
