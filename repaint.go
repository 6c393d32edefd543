package sg

import "image"

// root returns the top-most compound above o. A parentless compound is its
// own root; any other parentless shape has none.
func (o *object) root() *Compound {
	c := o.parent
	if c == nil {
		return o.self
	}
	for c.parent != nil {
		c = c.parent
	}
	return c
}

// repaint asks the root compound to redraw its whole canvas.
func (o *object) repaint() {
	if r := o.root(); r != nil {
		r.conditionalRepaint()
	}
}

// conditionalRepaint repaints the whole canvas if auto-repaint is on.
func (c *Compound) conditionalRepaint() {
	if c.autoRepaint {
		c.request(nil)
	}
}

// conditionalRepaintRegion repaints part of the canvas if auto-repaint is on.
func (c *Compound) conditionalRepaintRegion(r Rect) {
	if c.autoRepaint {
		px := r.Pixels()
		c.request(&px)
	}
}

// request hands a repaint to the canvas on the UI thread. A nil region
// means the whole canvas.
func (c *Compound) request(region *image.Rectangle) {
	canvas := c.canvas
	if canvas == nil {
		return
	}
	if region == nil {
		Logger().Debug("sg: repaint", "region", "all")
		dispatch(c.dispatcher, canvas.Repaint)
		return
	}
	r := *region
	Logger().Debug("sg: repaint", "region", r)
	dispatch(c.dispatcher, func() { canvas.RepaintRegion(r) })
}

// repaintChild repaints the area covered by child, which is or was an
// element of c, padded for its stroke.
func (c *Compound) repaintChild(child Shape) {
	pad := (child.LineWidth() + 1) / 2
	r, root := c.toCanvas(child.Bounds().Enlarge(pad))
	root.conditionalRepaintRegion(r)
}

// toCanvas maps a box in c's child space to the space of the root canvas
// and returns the root.
func (c *Compound) toCanvas(r Rect) (Rect, *Compound) {
	p := c
	for {
		r = p.childMatrix().TransformRect(r)
		if p.parent == nil {
			return r, p
		}
		p = p.parent
	}
}
