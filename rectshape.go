package sg

// DefaultCorner is the corner diameter of a RoundRectShape created without one.
const DefaultCorner = 10

// RectShape is an axis-aligned rectangle.
type RectShape struct {
	object
}

// NewRect creates a rectangle with its top-left corner at (x, y).
func NewRect(x, y, w, h float64) *RectShape {
	return &RectShape{object: newObject(x, y, w, h)}
}

// Type returns "Rect".
func (r *RectShape) Type() string { return "Rect" }

func (r *RectShape) String() string { return r.describe(r.Type(), "") }

// Bounds returns the rectangle itself, or its envelope when transformed.
func (r *RectShape) Bounds() Rect { return r.envelope(r.box()) }

// Contains reports whether (x, y) is inside the rectangle, edges included.
func (r *RectShape) Contains(x, y float64) bool { return r.boxContains(x, y) }

// Draw paints the rectangle. Outlines are drawn without anti-aliasing so
// one-pixel edges stay crisp.
func (r *RectShape) Draw(s Surface) {
	st := r.style()
	st.Aliased = true
	s.DrawRect(&st, r.x, r.y, r.width, r.height)
}

// RoundRectShape is a rectangle whose corners are quarter ellipses.
type RoundRectShape struct {
	object
	corner float64
}

// NewRoundRect creates a rounded rectangle with corners of the given
// diameter. A negative corner is rejected.
func NewRoundRect(x, y, w, h, corner float64) (*RoundRectShape, error) {
	if corner < 0 {
		return nil, violation("NewRoundRect", corner, ErrNegative)
	}
	return &RoundRectShape{object: newObject(x, y, w, h), corner: corner}, nil
}

// Type returns "RoundRect".
func (r *RoundRectShape) Type() string { return "RoundRect" }

func (r *RoundRectShape) String() string {
	return r.describe(r.Type(), "corner="+formatFloat(r.corner))
}

// Corner returns the corner diameter.
func (r *RoundRectShape) Corner() float64 { return r.corner }

// SetCorner changes the corner diameter. A negative corner is rejected.
func (r *RoundRectShape) SetCorner(corner float64) error {
	if corner < 0 {
		return violation("SetCorner", corner, ErrNegative)
	}
	r.corner = corner
	r.repaint()
	return nil
}

// Bounds returns the rectangle box, or its envelope when transformed.
func (r *RoundRectShape) Bounds() Rect { return r.envelope(r.box()) }

// Contains reports whether (x, y) is inside the rounded rectangle. Points in
// the box but outside the central cross are tested against the corner ellipse.
func (r *RoundRectShape) Contains(x, y float64) bool {
	p, ok := r.toLocal(x, y)
	if !ok || !r.box().Contains(p.X, p.Y) {
		return false
	}
	a := min(r.corner, r.width) / 2
	b := min(r.corner, r.height) / 2
	if a <= 0 || b <= 0 {
		return true
	}
	dx := min(p.X-r.x, r.x+r.width-p.X)
	dy := min(p.Y-r.y, r.y+r.height-p.Y)
	if dx > a || dy > b {
		return true
	}
	return insideEllipse(dx-a, dy-b, a, b)
}

func (r *RoundRectShape) Draw(s Surface) {
	st := r.style()
	s.DrawRoundRect(&st, r.x, r.y, r.width, r.height, r.corner)
}

// insideEllipse reports whether the offset (dx, dy) from an ellipse center
// lies within radii (rx, ry). A zero radius contains nothing.
func insideEllipse(dx, dy, rx, ry float64) bool {
	if rx <= 0 || ry <= 0 {
		return false
	}
	nx, ny := dx/rx, dy/ry
	return nx*nx+ny*ny <= 1
}
