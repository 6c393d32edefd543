package stroke

import "math"

// Point is a 2D point or vector.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p * s.
func (p Point) Scale(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }

// Dot returns the dot product.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z component of the cross product.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Length returns the vector length.
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

// Perp returns p rotated 90 degrees.
func (p Point) Perp() Point { return Point{X: -p.Y, Y: p.X} }

// LineCap specifies the shape of open stroke ends.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin specifies the shape of stroke corners.
type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// Style defines the stroke geometry.
type Style struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// DefaultStyle returns a one pixel butt-capped, miter-joined stroke.
func DefaultStyle() Style {
	return Style{
		Width:      1.0,
		Cap:        CapButt,
		Join:       JoinMiter,
		MiterLimit: 4.0,
	}
}

// tolerance is the maximum distance between a flattened arc and the circle.
const tolerance = 0.25

// Outline returns polygons whose union is the stroke of the polyline pts.
// A closed polyline also strokes the edge from the last point back to the
// first and has no caps. All returned polygons have positive signed area.
func Outline(pts []Point, closed bool, st Style) [][]Point {
	pts = clean(pts, closed)
	if st.Width <= 0 || len(pts) == 0 {
		return nil
	}
	hw := st.Width / 2

	if len(pts) == 1 {
		switch st.Cap {
		case CapRound:
			return [][]Point{Disk(pts[0], hw)}
		case CapSquare:
			c := pts[0]
			return [][]Point{orient([]Point{
				{X: c.X - hw, Y: c.Y - hw}, {X: c.X + hw, Y: c.Y - hw},
				{X: c.X + hw, Y: c.Y + hw}, {X: c.X - hw, Y: c.Y + hw},
			})}
		}
		return nil
	}

	n := len(pts)
	segs := n - 1
	if closed {
		if n < 3 {
			closed = false
		} else {
			segs = n
		}
	}

	out := make([][]Point, 0, 2*segs+2)
	for i := 0; i < segs; i++ {
		a, b := pts[i], pts[(i+1)%n]
		tan := b.Sub(a)
		norm := tan.Perp().Scale(hw / tan.Length())
		if !closed && st.Cap == CapSquare {
			ext := tan.Scale(hw / tan.Length())
			if i == 0 {
				a = a.Sub(ext)
			}
			if i == segs-1 {
				b = b.Add(ext)
			}
		}
		out = append(out, orient([]Point{a.Add(norm), b.Add(norm), b.Sub(norm), a.Sub(norm)}))
	}

	first, last := 1, n-1
	if closed {
		first, last = 0, n
	}
	for i := first; i < last; i++ {
		prev, v, next := pts[(i-1+n)%n], pts[i], pts[(i+1)%n]
		if j := join(prev, v, next, hw, st); j != nil {
			out = append(out, j)
		}
	}

	if !closed && st.Cap == CapRound {
		out = append(out, Disk(pts[0], hw), Disk(pts[n-1], hw))
	}
	return out
}

// join returns the corner piece at v between the segments prev->v and v->next.
func join(prev, v, next Point, hw float64, st Style) []Point {
	ab := v.Sub(prev)
	cd := next.Sub(v)
	cross := ab.Cross(cd)
	dot := ab.Dot(cd)
	if cross == 0 && dot > 0 {
		return nil
	}
	if st.Join == JoinRound {
		return Disk(v, hw)
	}
	if cross == 0 {
		return nil
	}

	// The outer side of the turn is opposite to the direction of rotation.
	side := 1.0
	if cross > 0 {
		side = -1
	}
	n0 := ab.Perp().Scale(side * hw / ab.Length())
	n1 := cd.Perp().Scale(side * hw / cd.Length())
	o0, o1 := v.Add(n0), v.Add(n1)

	hypot := math.Hypot(cross, dot)
	if st.Join == JoinMiter && 2*hypot < (hypot+dot)*st.MiterLimit*st.MiterLimit {
		k := hw * hw / (hw*hw + n0.Dot(n1))
		miter := v.Add(n0.Add(n1).Scale(k))
		return orient([]Point{v, o0, miter, o1})
	}
	return orient([]Point{v, o0, o1})
}

// Disk returns a polygon approximating the circle of radius r around c.
func Disk(c Point, r float64) []Point {
	steps := 8
	if r > tolerance {
		steps = max(steps, int(math.Ceil(math.Pi/math.Acos(1-tolerance/r))))
	}
	steps = min(steps, 256)
	poly := make([]Point, steps)
	for i := range poly {
		a := 2 * math.Pi * float64(i) / float64(steps)
		poly[i] = Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return orient(poly)
}

// clean drops repeated points, and the closing point of a closed ring.
func clean(pts []Point, closed bool) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if len(out) == 0 || out[len(out)-1] != p {
			out = append(out, p)
		}
	}
	if closed && len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

// orient reverses poly in place if its signed area is negative.
func orient(poly []Point) []Point {
	if SignedArea(poly) < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	return poly
}

// SignedArea returns the shoelace area of poly. It is positive for polygons
// wound clockwise on a y-down screen.
func SignedArea(poly []Point) float64 {
	var a float64
	for i := range poly {
		p, q := poly[i], poly[(i+1)%len(poly)]
		a += p.Cross(q)
	}
	return a / 2
}
