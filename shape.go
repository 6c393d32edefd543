package sg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/sg/rgb"
)

// Shape is implemented by every drawable kind: ArcShape, LineShape,
// OvalShape, PolygonShape, RectShape, RoundRectShape, TextShape,
// ImageShape and Compound. The set is closed; the common state lives in an
// embedded object reachable only inside this package.
type Shape interface {
	// Bounds returns the axis-aligned box enclosing the shape, in the
	// coordinate space of its parent.
	Bounds() Rect

	// Contains reports whether (x, y) lies inside the shape.
	Contains(x, y float64) bool

	// Draw paints the shape onto s.
	Draw(s Surface)

	// Type returns the kind name, e.g. "Rect".
	Type() string

	// String returns a description such as "Rect(x=0,y=0,w=10,h=10)".
	String() string

	Location() Point
	Size() Dimension
	LineWidth() float64
	IsVisible() bool
	Parent() *Compound
	SetLocation(x, y float64)

	base() *object
}

// object holds the state shared by all shapes. Kinds embed it and override
// Bounds/Contains/Draw with their own geometry.
type object struct {
	x, y          float64
	width, height float64

	lineWidth float64
	lineStyle LineStyle
	opacity   float64

	color    string
	colorRGB uint32

	fillColor string
	fillRGB   uint32
	filled    bool

	font    string
	visible bool

	transform   Matrix
	transformed bool

	parent *Compound

	// self is set for compounds so a root compound can repaint itself.
	self *Compound

	// derived reports a computed size for kinds whose width and height
	// follow from their content (lines, polygons, compounds).
	derived func() Dimension

	// resize replaces the default size update; it may reject the call.
	resize func(w, h float64) error
}

func newObject(x, y, w, h float64) object {
	return object{
		x:         x,
		y:         y,
		width:     w,
		height:    h,
		lineWidth: 1,
		lineStyle: LineSolid,
		opacity:   1,
		visible:   true,
		transform: Identity(),
	}
}

func (o *object) base() *object { return o }

// X returns the x coordinate of the shape's location.
func (o *object) X() float64 { return o.x }

// Y returns the y coordinate of the shape's location.
func (o *object) Y() float64 { return o.y }

// Location returns the shape's location.
func (o *object) Location() Point { return Point{X: o.x, Y: o.y} }

// Width returns the untransformed width.
func (o *object) Width() float64 { return o.Size().Width }

// Height returns the untransformed height.
func (o *object) Height() float64 { return o.Size().Height }

// Size returns the untransformed width and height.
func (o *object) Size() Dimension {
	if o.derived != nil {
		return o.derived()
	}
	return Dimension{Width: o.width, Height: o.height}
}

// CenterX returns the x coordinate of the center of the shape's box.
func (o *object) CenterX() float64 { return o.x + o.Width()/2 }

// CenterY returns the y coordinate of the center of the shape's box.
func (o *object) CenterY() float64 { return o.y + o.Height()/2 }

// CenterLocation returns the center of the shape's box.
func (o *object) CenterLocation() Point { return Point{X: o.CenterX(), Y: o.CenterY()} }

// RightX returns the x coordinate of the right edge.
func (o *object) RightX() float64 { return o.x + o.Width() }

// BottomY returns the y coordinate of the bottom edge.
func (o *object) BottomY() float64 { return o.y + o.Height() }

// BottomRightLocation returns the bottom-right corner.
func (o *object) BottomRightLocation() Point { return Point{X: o.RightX(), Y: o.BottomY()} }

// Color returns the stroke color as "#rrggbb", or "" if none was set.
func (o *object) Color() string { return o.color }

// ColorRGB returns the stroke color packed as 0xRRGGBB.
func (o *object) ColorRGB() uint32 { return o.colorRGB }

// FillColor returns the fill color as "#rrggbb", or "" if none was set.
func (o *object) FillColor() string { return o.fillColor }

// FillColorRGB returns the fill color packed as 0xRRGGBB.
func (o *object) FillColorRGB() uint32 { return o.fillRGB }

// IsFilled reports whether the interior is painted.
func (o *object) IsFilled() bool { return o.filled }

// LineWidth returns the stroke width.
func (o *object) LineWidth() float64 { return o.lineWidth }

// LineStyle returns the stroke pattern.
func (o *object) LineStyle() LineStyle { return o.lineStyle }

// Opacity returns the opacity in [0, 1].
func (o *object) Opacity() float64 { return o.opacity }

// Font returns the font spec, or "" for the default.
func (o *object) Font() string { return o.font }

// IsVisible reports whether the shape is painted.
func (o *object) IsVisible() bool { return o.visible }

// IsTransformed reports whether Rotate or Scale has been applied since
// creation or the last ResetTransform.
func (o *object) IsTransformed() bool { return o.transformed }

// Transform returns the accumulated rotation/scale, relative to the
// shape's location.
func (o *object) Transform() Matrix { return o.transform }

// Parent returns the compound that owns the shape, or nil.
func (o *object) Parent() *Compound { return o.parent }

// SetLocation moves the shape so its location is (x, y).
func (o *object) SetLocation(x, y float64) {
	o.x = x
	o.y = y
	o.repaint()
}

// SetX sets the x coordinate of the location.
func (o *object) SetX(x float64) { o.SetLocation(x, o.y) }

// SetY sets the y coordinate of the location.
func (o *object) SetY(y float64) { o.SetLocation(o.x, y) }

// Move moves the shape by (dx, dy).
func (o *object) Move(dx, dy float64) { o.SetLocation(o.x+dx, o.y+dy) }

// SetCenterLocation moves the shape so its box is centered on (x, y).
func (o *object) SetCenterLocation(x, y float64) {
	o.SetLocation(x-o.Width()/2, y-o.Height()/2)
}

// SetCenterX moves the shape horizontally so its center is at x.
func (o *object) SetCenterX(x float64) { o.SetCenterLocation(x, o.CenterY()) }

// SetCenterY moves the shape vertically so its center is at y.
func (o *object) SetCenterY(y float64) { o.SetCenterLocation(o.CenterX(), y) }

// SetBottomRightLocation moves the shape so its bottom-right corner is at (x, y).
func (o *object) SetBottomRightLocation(x, y float64) {
	o.SetLocation(x-o.Width(), y-o.Height())
}

// SetRightX moves the shape so its right edge is at x.
func (o *object) SetRightX(x float64) { o.SetBottomRightLocation(x, o.BottomY()) }

// SetBottomY moves the shape so its bottom edge is at y.
func (o *object) SetBottomY(y float64) { o.SetBottomRightLocation(o.RightX(), y) }

// SetSize changes the width and height. It fails without changing anything
// if the shape has been transformed, if either value is negative, or if the
// shape's size is derived from its content.
func (o *object) SetSize(w, h float64) error {
	if err := o.checkResize("SetSize", w, h); err != nil {
		return err
	}
	if err := o.applySize(w, h); err != nil {
		return err
	}
	o.repaint()
	return nil
}

// SetWidth changes the width, keeping the height.
func (o *object) SetWidth(w float64) error { return o.SetSize(w, o.Height()) }

// SetHeight changes the height, keeping the width.
func (o *object) SetHeight(h float64) error { return o.SetSize(o.Width(), h) }

// SetBounds sets location and size in one step, with the same failure
// conditions as SetSize.
func (o *object) SetBounds(x, y, w, h float64) error {
	if err := o.checkResize("SetBounds", w, h); err != nil {
		return err
	}
	if err := o.applySize(w, h); err != nil {
		return err
	}
	o.x = x
	o.y = y
	o.repaint()
	return nil
}

func (o *object) checkResize(op string, w, h float64) error {
	if o.transformed {
		return violation(op, Dim(w, h), ErrTransformed)
	}
	if w < 0 || h < 0 {
		return violation(op, Dim(w, h), ErrNegative)
	}
	return nil
}

func (o *object) applySize(w, h float64) error {
	if o.resize != nil {
		return o.resize(w, h)
	}
	o.width = w
	o.height = h
	return nil
}

// SetColor sets the stroke color from a name ("red", "light gray") or a
// hex string ("#ff8000").
func (o *object) SetColor(name string) error {
	v, err := rgb.Parse(name)
	if err != nil {
		return violation("SetColor", name, err)
	}
	o.SetColorInt(v)
	return nil
}

// SetColorRGB sets the stroke color from components in [0, 255].
func (o *object) SetColorRGB(r, g, b uint8) { o.SetColorInt(rgb.Pack(r, g, b)) }

// SetColorInt sets the stroke color from a packed 0xRRGGBB value.
func (o *object) SetColorInt(v uint32) {
	o.colorRGB = v & 0xffffff
	o.color = rgb.String(o.colorRGB)
	o.repaint()
}

// SetFillColor sets the fill color from a name or hex string and turns
// filling on. An empty string clears the fill color and turns filling off.
func (o *object) SetFillColor(name string) error {
	if name == "" {
		o.fillColor = ""
		o.fillRGB = 0
		o.filled = false
		o.repaint()
		return nil
	}
	v, err := rgb.Parse(name)
	if err != nil {
		return violation("SetFillColor", name, err)
	}
	o.SetFillColorInt(v)
	return nil
}

// SetFillColorRGB sets the fill color from components and turns filling on.
func (o *object) SetFillColorRGB(r, g, b uint8) { o.SetFillColorInt(rgb.Pack(r, g, b)) }

// SetFillColorInt sets the fill color from a packed value and turns filling on.
func (o *object) SetFillColorInt(v uint32) {
	o.fillRGB = v & 0xffffff
	o.fillColor = rgb.String(o.fillRGB)
	o.filled = true
	o.repaint()
}

// SetFilled turns interior painting on or off without touching the color.
func (o *object) SetFilled(filled bool) {
	o.filled = filled
	o.repaint()
}

// SetOpacity sets the opacity. Values outside [0, 1] are rejected.
func (o *object) SetOpacity(opacity float64) error {
	if !(opacity >= 0 && opacity <= 1) {
		return violation("SetOpacity", opacity, ErrOpacityRange)
	}
	o.opacity = opacity
	o.repaint()
	return nil
}

// SetLineWidth sets the stroke width. Negative widths are rejected.
func (o *object) SetLineWidth(w float64) error {
	if w < 0 {
		return violation("SetLineWidth", w, ErrNegative)
	}
	o.lineWidth = w
	o.repaint()
	return nil
}

// SetLineStyle sets the stroke pattern.
func (o *object) SetLineStyle(s LineStyle) {
	o.lineStyle = s
	o.repaint()
}

// SetFont sets the font spec used when painting text.
func (o *object) SetFont(font string) {
	o.font = font
	o.repaint()
}

// SetVisible shows or hides the shape.
func (o *object) SetVisible(visible bool) {
	o.visible = visible
	o.repaint()
}

// Rotate rotates the shape theta degrees counter-clockwise about its location.
// Afterwards the shape no longer accepts size changes until ResetTransform.
func (o *object) Rotate(theta float64) {
	o.transform = o.transform.Multiply(RotateDegrees(theta))
	o.transformed = true
	o.repaint()
}

// Scale scales the shape by (sx, sy) about its location.
// Afterwards the shape no longer accepts size changes until ResetTransform.
func (o *object) Scale(sx, sy float64) {
	o.transform = o.transform.Multiply(Scale(sx, sy))
	o.transformed = true
	o.repaint()
}

// ScaleUniform scales the shape by s in both directions.
func (o *object) ScaleUniform(s float64) { o.Scale(s, s) }

// ResetTransform discards all rotation and scaling.
func (o *object) ResetTransform() {
	o.transform = Identity()
	o.transformed = false
	o.repaint()
}

// SendToFront moves the shape to the top of its parent's stacking order.
// It does nothing for a shape without a parent.
func (o *object) SendToFront() {
	if o.parent != nil {
		o.parent.move(o, moveFront)
	}
}

// SendToBack moves the shape to the bottom of its parent's stacking order.
func (o *object) SendToBack() {
	if o.parent != nil {
		o.parent.move(o, moveBack)
	}
}

// SendForward moves the shape one step towards the front.
func (o *object) SendForward() {
	if o.parent != nil {
		o.parent.move(o, moveForward)
	}
}

// SendBackward moves the shape one step towards the back.
func (o *object) SendBackward() {
	if o.parent != nil {
		o.parent.move(o, moveBackward)
	}
}

// placement is the matrix from shape space to parent space.
func (o *object) placement() Matrix {
	if !o.transformed {
		return Identity()
	}
	return o.transform.About(o.x, o.y)
}

// envelope maps an untransformed box into parent space.
func (o *object) envelope(local Rect) Rect {
	if !o.transformed {
		return local
	}
	return o.placement().TransformRect(local)
}

// toLocal maps a parent-space point into untransformed shape space.
// It fails for degenerate transforms such as a zero scale.
func (o *object) toLocal(x, y float64) (Point, bool) {
	if !o.transformed {
		return Point{X: x, Y: y}, true
	}
	inv, ok := o.placement().Invert()
	if !ok {
		return Point{}, false
	}
	return inv.TransformPoint(Point{X: x, Y: y}), true
}

// box is the untransformed (x, y, width, height) box.
func (o *object) box() Rect {
	s := o.Size()
	return Rect{X: o.x, Y: o.y, Width: s.Width, Height: s.Height}
}

// boxContains is the default containment test: the point, mapped into
// shape space, lies in the untransformed box.
func (o *object) boxContains(x, y float64) bool {
	p, ok := o.toLocal(x, y)
	return ok && o.box().Contains(p.X, p.Y)
}

// style snapshots the paint state for a draw call.
func (o *object) style() Style {
	st := DefaultStyle()
	if o.color != "" {
		st.Stroke = rgb.RGBA(o.colorRGB)
		st.HasStroke = true
	}
	st.LineWidth = o.lineWidth
	st.LineStyle = o.lineStyle
	if o.filled {
		st.Filled = true
		switch {
		case o.fillColor != "":
			st.Fill = rgb.RGBA(o.fillRGB)
		default:
			// An object filled without a fill color uses its outline color.
			st.Fill = st.StrokeColor()
		}
	}
	st.Opacity = o.opacity
	st.Font = o.font
	st.Transform = o.placement()
	return st
}

// describe formats the common String form with kind-specific extras.
func (o *object) describe(kind, extra string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s(x=%s,y=%s,w=%s,h=%s", kind,
		formatFloat(o.x), formatFloat(o.y), formatFloat(o.Width()), formatFloat(o.Height()))
	if o.lineWidth > 1 {
		b.WriteString(",lineWidth=" + formatFloat(o.lineWidth))
	}
	if o.color != "" {
		b.WriteString(",color=" + o.color)
	}
	if o.fillColor != "" {
		b.WriteString(",fillColor=" + o.fillColor)
	}
	if o.font != "" {
		b.WriteString(",font=" + o.font)
	}
	if !o.visible {
		b.WriteString(",visible=false")
	}
	if extra != "" {
		b.WriteString("," + extra)
	}
	b.WriteString(")")
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
