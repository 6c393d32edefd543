package sg

import (
	"image"
	"reflect"
	"slices"
	"strconv"
)

// Compound is a shape that owns an ordered list of child shapes. Index 0
// paints first (back); the last element paints last (front). Children are
// positioned relative to the compound's location, and the compound's
// rotation and scale apply to all of them.
//
// The compound at the top of a tree may be attached to a Canvas, which it
// asks to repaint whenever anything in the tree changes.
type Compound struct {
	object

	children    []Shape
	autoRepaint bool
	canvas      Canvas
	dispatcher  Dispatcher
}

// NewCompound creates an empty compound at the origin.
func NewCompound() *Compound {
	c := &Compound{
		object:      newObject(0, 0, 0, 0),
		autoRepaint: true,
	}
	c.self = c
	c.derived = func() Dimension { return c.childBounds().Size() }
	c.resize = func(w, h float64) error {
		return violation("SetSize", Dim(w, h), ErrDerivedSize)
	}
	return c
}

// Type returns "Compound".
func (c *Compound) Type() string { return "Compound" }

func (c *Compound) String() string {
	return c.describe(c.Type(), "elements="+strconv.Itoa(len(c.children)))
}

// Add appends s to the front of the stacking order. A shape owned by
// another compound is removed from it first.
func (c *Compound) Add(s Shape) error {
	if isNil(s) {
		return violation("Add", nil, ErrNilShape)
	}
	o := s.base()
	if c.hasAncestor(o) {
		return violation("Add", s, ErrCycle)
	}
	if o.parent == c {
		return nil
	}
	if o.parent != nil {
		o.parent.Remove(s)
	}
	c.children = append(c.children, s)
	o.parent = c
	Logger().Debug("sg: add", "shape", s.Type(), "count", len(c.children))
	c.repaintChild(s)
	return nil
}

// AddAt moves s to (x, y) and then adds it.
func (c *Compound) AddAt(s Shape, x, y float64) error {
	if isNil(s) {
		return violation("AddAt", nil, ErrNilShape)
	}
	if c.hasAncestor(s.base()) {
		return violation("AddAt", s, ErrCycle)
	}
	s.SetLocation(x, y)
	return c.Add(s)
}

// Remove detaches s. Removing a shape that is not an element does nothing.
func (c *Compound) Remove(s Shape) {
	if isNil(s) {
		return
	}
	if i := c.indexOf(s.base()); i >= 0 {
		c.removeAt(i)
	}
}

// RemoveAt detaches the element at index i.
func (c *Compound) RemoveAt(i int) error {
	if i < 0 || i >= len(c.children) {
		return violation("RemoveAt", i, ErrIndexRange)
	}
	c.removeAt(i)
	return nil
}

func (c *Compound) removeAt(i int) {
	s := c.children[i]
	c.children = slices.Delete(c.children, i, i+1)
	s.base().parent = nil
	Logger().Debug("sg: remove", "shape", s.Type(), "count", len(c.children))
	c.repaintChild(s)
}

// RemoveAll detaches every element. The canvas is repainted once, and only
// if there was something to remove.
func (c *Compound) RemoveAll() {
	if len(c.children) == 0 {
		return
	}
	for _, s := range c.children {
		s.base().parent = nil
	}
	c.children = nil
	c.repaint()
}

// Clear is an alias for RemoveAll.
func (c *Compound) Clear() { c.RemoveAll() }

// Dispose detaches the compound from its parent, then detaches and disposes
// every element. Images release their pixel buffers.
func (c *Compound) Dispose() {
	if c.parent != nil {
		c.parent.Remove(c)
	}
	children := c.children
	c.RemoveAll()
	for _, s := range children {
		if d, ok := s.(interface{ Dispose() }); ok {
			d.Dispose()
		}
	}
}

// SendElementToFront moves s to the end of the list so it paints on top.
// It does nothing if s is not an element or is already in front.
func (c *Compound) SendElementToFront(s Shape) { c.moveShape(s, moveFront) }

// SendElementToBack moves s to index 0 so it paints beneath everything.
func (c *Compound) SendElementToBack(s Shape) { c.moveShape(s, moveBack) }

// SendElementForward moves s one position towards the front.
func (c *Compound) SendElementForward(s Shape) { c.moveShape(s, moveForward) }

// SendElementBackward moves s one position towards the back.
func (c *Compound) SendElementBackward(s Shape) { c.moveShape(s, moveBackward) }

type moveKind int

const (
	moveFront moveKind = iota
	moveBack
	moveForward
	moveBackward
)

func (c *Compound) moveShape(s Shape, k moveKind) {
	if !isNil(s) {
		c.move(s.base(), k)
	}
}

func (c *Compound) move(o *object, k moveKind) {
	i := c.indexOf(o)
	if i < 0 {
		return
	}
	last := len(c.children) - 1
	var j int
	switch k {
	case moveFront:
		j = last
	case moveBack:
		j = 0
	case moveForward:
		j = min(i+1, last)
	case moveBackward:
		j = max(i-1, 0)
	}
	if i == j {
		return
	}
	s := c.children[i]
	c.children = slices.Delete(c.children, i, i+1)
	c.children = slices.Insert(c.children, j, s)
	c.repaintChild(s)
}

// Element returns the element at index i.
func (c *Compound) Element(i int) (Shape, error) {
	if i < 0 || i >= len(c.children) {
		return nil, violation("Element", i, ErrIndexRange)
	}
	return c.children[i], nil
}

// ElementCount returns the number of elements.
func (c *Compound) ElementCount() int { return len(c.children) }

// IsEmpty reports whether the compound has no elements.
func (c *Compound) IsEmpty() bool { return len(c.children) == 0 }

// Elements returns a copy of the elements in stacking order, back first.
func (c *Compound) Elements() []Shape { return slices.Clone(c.children) }

// IndexOf returns the stacking index of s, or -1 if s is not an element.
func (c *Compound) IndexOf(s Shape) int {
	if isNil(s) {
		return -1
	}
	return c.indexOf(s.base())
}

func (c *Compound) indexOf(o *object) int {
	return slices.IndexFunc(c.children, func(s Shape) bool { return s.base() == o })
}

// hasAncestor reports whether o is c or encloses c.
func (c *Compound) hasAncestor(o *object) bool {
	for p := c; p != nil; p = p.parent {
		if &p.object == o {
			return true
		}
	}
	return false
}

// childMatrix maps child coordinates to the compound's parent space.
func (c *Compound) childMatrix() Matrix {
	return Translate(c.x, c.y).Multiply(c.transform)
}

// childBounds is the union of the element bounds in child space. With no
// elements it is the zero box at the child-space origin.
func (c *Compound) childBounds() Rect {
	if len(c.children) == 0 {
		return Rect{}
	}
	r := c.children[0].Bounds()
	for _, s := range c.children[1:] {
		r = r.Union(s.Bounds())
	}
	return r
}

// Bounds returns the union of the element bounds in the compound's parent
// space. An empty compound has a zero-size box at its location.
func (c *Compound) Bounds() Rect {
	return c.childMatrix().TransformRect(c.childBounds())
}

// Contains reports whether any element contains (x, y), given in the
// compound's parent space.
func (c *Compound) Contains(x, y float64) bool {
	p, ok := c.toChild(x, y)
	if !ok {
		return false
	}
	for _, s := range c.children {
		if s.Contains(p.X, p.Y) {
			return true
		}
	}
	return false
}

// ElementAt returns the first element in stacking order, back first, that
// contains (x, y), or nil. When elements overlap this is the one painted
// underneath; use TopElementAt for the one a user sees.
func (c *Compound) ElementAt(x, y float64) Shape {
	p, ok := c.toChild(x, y)
	if !ok {
		return nil
	}
	for _, s := range c.children {
		if s.Contains(p.X, p.Y) {
			return s
		}
	}
	return nil
}

// TopElementAt returns the front-most element containing (x, y), or nil.
func (c *Compound) TopElementAt(x, y float64) Shape {
	p, ok := c.toChild(x, y)
	if !ok {
		return nil
	}
	for i := len(c.children) - 1; i >= 0; i-- {
		if c.children[i].Contains(p.X, p.Y) {
			return c.children[i]
		}
	}
	return nil
}

func (c *Compound) toChild(x, y float64) (Point, bool) {
	inv, ok := c.childMatrix().Invert()
	if !ok {
		return Point{}, false
	}
	return inv.TransformPoint(Point{X: x, Y: y}), true
}

// Draw paints the visible elements back to front.
func (c *Compound) Draw(s Surface) {
	inner := &placedSurface{Surface: s, m: c.childMatrix()}
	for _, child := range c.children {
		if child.IsVisible() {
			child.Draw(inner)
		}
	}
}

// SetAutoRepaint turns automatic repainting on or off. With it off,
// changes are only shown after an explicit Repaint.
func (c *Compound) SetAutoRepaint(on bool) { c.autoRepaint = on }

// IsAutoRepaint reports whether changes repaint automatically.
func (c *Compound) IsAutoRepaint() bool { return c.autoRepaint }

// SetCanvas attaches the compound to the canvas it paints into. Repaint
// requests reach the canvas through d; a nil d runs them synchronously.
func (c *Compound) SetCanvas(canvas Canvas, d Dispatcher) {
	c.canvas = canvas
	c.dispatcher = d
}

// Canvas returns the attached canvas, or nil.
func (c *Compound) Canvas() Canvas { return c.canvas }

// Repaint asks the root canvas to redraw everything, even when
// auto-repaint is off.
func (c *Compound) Repaint() {
	if r := c.root(); r != nil {
		r.request(nil)
	}
}

// RepaintRegion asks the root canvas to redraw r, given in the compound's
// child space, even when auto-repaint is off.
func (c *Compound) RepaintRegion(r Rect) {
	box, root := c.toCanvas(r)
	px := box.Pixels()
	root.request(&px)
}

// placedSurface prepends a compound's placement to every style transform.
type placedSurface struct {
	Surface
	m Matrix
}

func (p *placedSurface) place(st *Style) *Style {
	placed := *st
	placed.Transform = p.m.Multiply(st.Transform)
	return &placed
}

func (p *placedSurface) DrawArc(st *Style, x, y, w, h, start, sweep float64) {
	p.Surface.DrawArc(p.place(st), x, y, w, h, start, sweep)
}

func (p *placedSurface) DrawLine(st *Style, x0, y0, x1, y1 float64) {
	p.Surface.DrawLine(p.place(st), x0, y0, x1, y1)
}

func (p *placedSurface) DrawEllipse(st *Style, x, y, w, h float64) {
	p.Surface.DrawEllipse(p.place(st), x, y, w, h)
}

func (p *placedSurface) DrawPolygon(st *Style, pts []Point) {
	p.Surface.DrawPolygon(p.place(st), pts)
}

func (p *placedSurface) DrawRect(st *Style, x, y, w, h float64) {
	p.Surface.DrawRect(p.place(st), x, y, w, h)
}

func (p *placedSurface) DrawRoundRect(st *Style, x, y, w, h, corner float64) {
	p.Surface.DrawRoundRect(p.place(st), x, y, w, h, corner)
}

func (p *placedSurface) DrawText(st *Style, x, y float64, s string) {
	p.Surface.DrawText(p.place(st), x, y, s)
}

func (p *placedSurface) DrawImage(st *Style, x, y float64, img image.Image) {
	p.Surface.DrawImage(p.place(st), x, y, img)
}

// isNil reports whether s is nil or a typed nil pointer.
func isNil(s Shape) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
