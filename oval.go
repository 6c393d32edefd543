package sg

// OvalShape is the ellipse inscribed in its box.
type OvalShape struct {
	object
}

// NewOval creates an ellipse inscribed in the box (x, y, w, h).
func NewOval(x, y, w, h float64) *OvalShape {
	return &OvalShape{object: newObject(x, y, w, h)}
}

// Type returns "Oval".
func (o *OvalShape) Type() string { return "Oval" }

func (o *OvalShape) String() string { return o.describe(o.Type(), "") }

// Bounds returns the box, or its envelope when transformed.
func (o *OvalShape) Bounds() Rect { return o.envelope(o.box()) }

// Contains reports whether (x, y) lies in the ellipse, boundary included.
// A degenerate ellipse contains nothing.
func (o *OvalShape) Contains(x, y float64) bool {
	p, ok := o.toLocal(x, y)
	if !ok {
		return false
	}
	rx, ry := o.width/2, o.height/2
	return insideEllipse(p.X-(o.x+rx), p.Y-(o.y+ry), rx, ry)
}

func (o *OvalShape) Draw(s Surface) {
	st := o.style()
	s.DrawEllipse(&st, o.x, o.y, o.width, o.height)
}
