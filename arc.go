package sg

import "math"

// arcTolerance is the hit band, in pixels, around the curve of an unfilled arc.
const arcTolerance = 2.5

// ArcShape is part of the ellipse inscribed in its box, running from start
// degrees through sweep degrees counter-clockwise. Zero degrees points to
// the right; a negative sweep runs clockwise. Filled arcs are pie slices.
type ArcShape struct {
	object
	start, sweep float64
}

// NewArc creates an arc of the ellipse inscribed in (x, y, w, h).
func NewArc(x, y, w, h, start, sweep float64) *ArcShape {
	return &ArcShape{object: newObject(x, y, w, h), start: start, sweep: sweep}
}

// Type returns "Arc".
func (a *ArcShape) Type() string { return "Arc" }

func (a *ArcShape) String() string {
	return a.describe(a.Type(), "start="+formatFloat(a.start)+",sweep="+formatFloat(a.sweep))
}

// StartAngle returns the start angle in degrees.
func (a *ArcShape) StartAngle() float64 { return a.start }

// SweepAngle returns the sweep in degrees.
func (a *ArcShape) SweepAngle() float64 { return a.sweep }

// SetStartAngle changes the start angle.
func (a *ArcShape) SetStartAngle(start float64) {
	a.start = start
	a.repaint()
}

// SetSweepAngle changes the sweep.
func (a *ArcShape) SetSweepAngle(sweep float64) {
	a.sweep = sweep
	a.repaint()
}

// StartPoint returns the point where the arc begins.
func (a *ArcShape) StartPoint() Point { return a.ArcPoint(a.start) }

// EndPoint returns the point where the arc ends.
func (a *ArcShape) EndPoint() Point { return a.ArcPoint(a.start + a.sweep) }

// ArcPoint returns the point on the ellipse at theta degrees.
func (a *ArcShape) ArcPoint(theta float64) Point {
	rx, ry := a.width/2, a.height/2
	rad := theta * math.Pi / 180
	return Point{X: a.x + rx + rx*math.Cos(rad), Y: a.y + ry - ry*math.Sin(rad)}
}

// FrameRectangle returns the box of the full ellipse.
func (a *ArcShape) FrameRectangle() Rect { return a.box() }

// SetFrameRectangle changes the box of the full ellipse, with the same
// failure conditions as SetBounds.
func (a *ArcShape) SetFrameRectangle(x, y, w, h float64) error {
	if err := a.checkResize("SetFrameRectangle", w, h); err != nil {
		return err
	}
	a.x, a.y = x, y
	a.width, a.height = w, h
	a.repaint()
	return nil
}

// Bounds returns the box of the two endpoints, widened to every axis
// extreme the arc passes through. Filled arcs also cover the center.
func (a *ArcShape) Bounds() Rect {
	rx, ry := a.width/2, a.height/2
	cx, cy := a.x+rx, a.y+ry
	r := rectFromPoints(a.StartPoint(), a.EndPoint())
	if a.containsAngle(0) {
		r = r.UnionPoint(Point{X: cx + rx, Y: cy})
	}
	if a.containsAngle(90) {
		r = r.UnionPoint(Point{X: cx, Y: cy - ry})
	}
	if a.containsAngle(180) {
		r = r.UnionPoint(Point{X: cx - rx, Y: cy})
	}
	if a.containsAngle(270) {
		r = r.UnionPoint(Point{X: cx, Y: cy + ry})
	}
	if a.filled {
		r = r.UnionPoint(Point{X: cx, Y: cy})
	}
	return a.envelope(r)
}

// Contains reports whether (x, y) hits the arc. A filled arc is hit
// anywhere inside its slice; an unfilled one only within 2.5 pixels
// (relative to the mean radius) of the curve.
func (a *ArcShape) Contains(x, y float64) bool {
	p, ok := a.toLocal(x, y)
	if !ok {
		return false
	}
	rx, ry := a.width/2, a.height/2
	if rx <= 0 || ry <= 0 {
		return false
	}
	nx := (p.X - (a.x + rx)) / rx
	ny := (p.Y - (a.y + ry)) / ry
	r := nx*nx + ny*ny
	if a.filled {
		if r > 1 {
			return false
		}
	} else {
		t := arcTolerance / ((rx + ry) / 2)
		if math.Abs(1-r) > t {
			return false
		}
	}
	return a.containsAngle(math.Atan2(-ny, nx) * 180 / math.Pi)
}

// containsAngle reports whether theta degrees lies within the arc's span.
func (a *ArcShape) containsAngle(theta float64) bool {
	start := min(a.start, a.start+a.sweep)
	sweep := math.Abs(a.sweep)
	if sweep >= 360 {
		return true
	}
	theta = normalizeDegrees(theta)
	start = normalizeDegrees(start)
	if start+sweep > 360 {
		return theta >= start || theta <= start+sweep-360
	}
	return theta >= start && theta <= start+sweep
}

// normalizeDegrees maps theta into [0, 360).
func normalizeDegrees(theta float64) float64 {
	theta = math.Mod(theta, 360)
	if theta < 0 {
		theta += 360
	}
	return theta
}

func (a *ArcShape) Draw(s Surface) {
	st := a.style()
	s.DrawArc(&st, a.x, a.y, a.width, a.height, a.start, a.sweep)
}
