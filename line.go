package sg

import "math"

// lineTolerance is how far, in pixels, a point may be from a line and still
// hit it.
const lineTolerance = 1.5

// LineShape is a segment from its location to (X+dx, Y+dy).
type LineShape struct {
	object
	dx, dy float64
}

// NewLine creates a segment from (x0, y0) to (x1, y1).
func NewLine(x0, y0, x1, y1 float64) *LineShape {
	l := &LineShape{object: newObject(x0, y0, 0, 0), dx: x1 - x0, dy: y1 - y0}
	l.derived = func() Dimension { return Dimension{Width: math.Abs(l.dx), Height: math.Abs(l.dy)} }
	l.resize = func(w, h float64) error {
		l.dx = math.Copysign(w, l.dx)
		l.dy = math.Copysign(h, l.dy)
		return nil
	}
	return l
}

// Type returns "Line".
func (l *LineShape) Type() string { return "Line" }

func (l *LineShape) String() string {
	end := l.EndPoint()
	return l.describe(l.Type(), "x2="+formatFloat(end.X)+",y2="+formatFloat(end.Y))
}

// StartPoint returns the first endpoint, which is the shape's location.
func (l *LineShape) StartPoint() Point { return Point{X: l.x, Y: l.y} }

// EndPoint returns the second endpoint.
func (l *LineShape) EndPoint() Point { return Point{X: l.x + l.dx, Y: l.y + l.dy} }

// SetStartPoint moves the first endpoint, leaving the second where it is.
func (l *LineShape) SetStartPoint(x, y float64) {
	end := l.EndPoint()
	l.x, l.y = x, y
	l.dx, l.dy = end.X-x, end.Y-y
	l.repaint()
}

// SetEndPoint moves the second endpoint.
func (l *LineShape) SetEndPoint(x, y float64) {
	l.dx, l.dy = x-l.x, y-l.y
	l.repaint()
}

// Bounds returns the box spanning both endpoints. A horizontal or vertical
// line has a zero-size side.
func (l *LineShape) Bounds() Rect {
	return l.envelope(rectFromPoints(l.StartPoint(), l.EndPoint()))
}

// Contains reports whether (x, y) is within 1.5 pixels of the segment.
// A zero-length line contains nothing.
func (l *LineShape) Contains(x, y float64) bool {
	p, ok := l.toLocal(x, y)
	if !ok {
		return false
	}
	p0, p1 := l.StartPoint(), l.EndPoint()
	d := p1.Sub(p0)
	length2 := d.Dot(d)
	if floatEqual(length2, 0) {
		return false
	}
	const tol2 = lineTolerance * lineTolerance
	if p.DistanceSquared(p0) < tol2 || p.DistanceSquared(p1) < tol2 {
		return true
	}
	if !rectFromPoints(p0, p1).Enlarge(lineTolerance).Contains(p.X, p.Y) {
		return false
	}
	u := p.Sub(p0).Dot(d) / length2
	return p.DistanceSquared(p0.Add(d.Mul(u))) < tol2
}

func (l *LineShape) Draw(s Surface) {
	st := l.style()
	end := l.EndPoint()
	s.DrawLine(&st, l.x, l.y, end.X, end.Y)
}
