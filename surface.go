package sg

import "image"

// Surface is the paint backend shapes draw into. Each call receives the
// full style snapshot of the shape being painted; the surface applies
// st.Transform to all coordinates.
//
// The surface package provides a software implementation on *image.RGBA.
type Surface interface {
	// DrawArc paints the elliptical arc inscribed in the box (x, y, w, h),
	// starting at start degrees and sweeping sweep degrees counter-clockwise.
	// Filled arcs are filled as pie slices.
	DrawArc(st *Style, x, y, w, h, start, sweep float64)

	// DrawLine strokes the segment from (x0, y0) to (x1, y1).
	DrawLine(st *Style, x0, y0, x1, y1 float64)

	// DrawEllipse paints the ellipse inscribed in the box (x, y, w, h).
	DrawEllipse(st *Style, x, y, w, h float64)

	// DrawPolygon paints the closed polygon through pts.
	DrawPolygon(st *Style, pts []Point)

	// DrawRect paints the rectangle (x, y, w, h).
	DrawRect(st *Style, x, y, w, h float64)

	// DrawRoundRect paints a rectangle whose corners are quarter ellipses
	// of the given diameter.
	DrawRoundRect(st *Style, x, y, w, h, corner float64)

	// DrawText paints s with its baseline starting at (x, y).
	DrawText(st *Style, x, y float64, s string)

	// DrawImage blits img with its top-left corner at (x, y).
	DrawImage(st *Style, x, y float64, img image.Image)
}

// FontMetrics answers size questions about font specs.
// The text package provides an implementation backed by OpenType fonts.
type FontMetrics interface {
	Ascent(font string) float64
	Descent(font string) float64
	Width(font, text string) float64
	LineHeight(font string) float64
}

// Dispatcher runs closures on the single UI thread.
// RunOnUIThread must not block the caller; it queues when the caller is not
// already on the UI thread.
type Dispatcher interface {
	IsOnUIThread() bool
	RunOnUIThread(f func())
}

// Canvas is the drawable widget a root Compound paints into.
// Both methods are invoked on the UI thread.
type Canvas interface {
	Repaint()
	RepaintRegion(r image.Rectangle)
}

// Immediate is a Dispatcher for headless use and tests: every caller is
// considered to be on the UI thread, so closures run synchronously.
type Immediate struct{}

// IsOnUIThread always returns true.
func (Immediate) IsOnUIThread() bool { return true }

// RunOnUIThread runs f immediately.
func (Immediate) RunOnUIThread(f func()) { f() }

// dispatch runs f on the UI thread owned by d: synchronously if the caller
// is already there, queued otherwise.
func dispatch(d Dispatcher, f func()) {
	if d == nil || d.IsOnUIThread() {
		f()
		return
	}
	d.RunOnUIThread(f)
}
