package sg

import (
	"fmt"
	"image"
	"math"
	"unicode/utf8"
)

// drawCall is one call recorded by recordingSurface.
type drawCall struct {
	op    string
	args  []float64
	text  string
	style Style
}

// recordingSurface remembers every draw call instead of painting.
type recordingSurface struct {
	calls []drawCall
}

func (r *recordingSurface) add(op string, st *Style, text string, args ...float64) {
	r.calls = append(r.calls, drawCall{op: op, args: args, text: text, style: *st})
}

func (r *recordingSurface) DrawArc(st *Style, x, y, w, h, start, sweep float64) {
	r.add("Arc", st, "", x, y, w, h, start, sweep)
}

func (r *recordingSurface) DrawLine(st *Style, x0, y0, x1, y1 float64) {
	r.add("Line", st, "", x0, y0, x1, y1)
}

func (r *recordingSurface) DrawEllipse(st *Style, x, y, w, h float64) {
	r.add("Ellipse", st, "", x, y, w, h)
}

func (r *recordingSurface) DrawPolygon(st *Style, pts []Point) {
	args := make([]float64, 0, 2*len(pts))
	for _, p := range pts {
		args = append(args, p.X, p.Y)
	}
	r.add("Polygon", st, "", args...)
}

func (r *recordingSurface) DrawRect(st *Style, x, y, w, h float64) {
	r.add("Rect", st, "", x, y, w, h)
}

func (r *recordingSurface) DrawRoundRect(st *Style, x, y, w, h, corner float64) {
	r.add("RoundRect", st, "", x, y, w, h, corner)
}

func (r *recordingSurface) DrawText(st *Style, x, y float64, s string) {
	r.add("Text", st, s, x, y)
}

func (r *recordingSurface) DrawImage(st *Style, x, y float64, img image.Image) {
	b := img.Bounds()
	r.add("Image", st, "", x, y, float64(b.Dx()), float64(b.Dy()))
}

func (r *recordingSurface) ops() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.op
	}
	return out
}

// fixedMetrics measures every font alike: 7 pixels per rune, ascent 10,
// descent 3, line height 15.
type fixedMetrics struct{}

func (fixedMetrics) Ascent(string) float64     { return 10 }
func (fixedMetrics) Descent(string) float64    { return 3 }
func (fixedMetrics) LineHeight(string) float64 { return 15 }
func (fixedMetrics) Width(_, s string) float64 { return 7 * float64(utf8.RuneCountInString(s)) }

// recordingCanvas counts repaint requests.
type recordingCanvas struct {
	full    int
	regions []image.Rectangle
}

func (c *recordingCanvas) Repaint() { c.full++ }

func (c *recordingCanvas) RepaintRegion(r image.Rectangle) { c.regions = append(c.regions, r) }

func (c *recordingCanvas) requests() int { return c.full + len(c.regions) }

// queueDispatcher queues closures until run is called. While onUI is set,
// callers are treated as being on the UI thread.
type queueDispatcher struct {
	onUI   bool
	queued []func()
}

func (d *queueDispatcher) IsOnUIThread() bool { return d.onUI }

func (d *queueDispatcher) RunOnUIThread(f func()) { d.queued = append(d.queued, f) }

func (d *queueDispatcher) run() {
	q := d.queued
	d.queued = nil
	for _, f := range q {
		f()
	}
}

// attach makes c the root of a tree painted on a fresh recordingCanvas.
func attach(c *Compound) *recordingCanvas {
	cv := &recordingCanvas{}
	c.SetCanvas(cv, Immediate{})
	return cv
}

func rectNear(a, b Rect) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.Width-b.Width) < eps && math.Abs(a.Height-b.Height) < eps
}

func mustRoundRect(x, y, w, h, corner float64) *RoundRectShape {
	r, err := NewRoundRect(x, y, w, h, corner)
	if err != nil {
		panic(fmt.Sprintf("NewRoundRect: %v", err))
	}
	return r
}
