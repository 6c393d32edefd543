// Package canvas hosts a scene graph in an off-screen pixel buffer.
//
// A Canvas owns a root compound and an image surface. Changes to shapes in
// the tree repaint the canvas through the environment's dispatcher; the
// current picture can be read with Snapshot or written with SavePNG.
//
//	env := sg.NewEnv()
//	cv := canvas.New(env, 200, 100)
//	cv.Root().Add(sg.NewOval(10, 10, 80, 80))
//	err := cv.SavePNG("oval.png")
package canvas

import (
	"image"
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/gogpu/sg"
	"github.com/gogpu/sg/imagecodec"
	"github.com/gogpu/sg/surface"
	"github.com/gogpu/sg/text"
)

// Canvas is an sg.Canvas that paints into an *image.RGBA.
//
// Repaint and RepaintRegion run on the UI thread; Snapshot and SavePNG may
// be called from any goroutine.
type Canvas struct {
	env        *sg.Env
	root       *sg.Compound
	background color.Color

	// mu guards the surface pixels between painting and reading.
	mu      sync.Mutex
	surface *surface.ImageSurface

	frames  atomic.Int64
	regions atomic.Int64
}

var _ sg.Canvas = (*Canvas)(nil)

// Option configures a Canvas during creation.
type Option func(*Canvas)

// WithBackground sets the color the canvas is cleared to before painting
// (default white).
func WithBackground(c color.Color) Option {
	return func(cv *Canvas) {
		if c != nil {
			cv.background = c
		}
	}
}

// New creates a w by h canvas with an empty root compound attached to it.
// A nil env means sg.NewEnv().
func New(env *sg.Env, w, h int, opts ...Option) *Canvas {
	if env == nil {
		env = sg.NewEnv()
	}
	cv := &Canvas{
		env:        env,
		root:       sg.NewCompound(),
		background: color.White,
	}
	for _, opt := range opts {
		opt(cv)
	}

	sopts := []surface.Option{surface.WithAntiAlias(env.AntiAlias())}
	if fonts, ok := env.Metrics().(*text.Registry); ok {
		sopts = append(sopts, surface.WithFonts(fonts))
	}
	cv.surface = surface.NewImageSurface(w, h, sopts...)
	cv.surface.Clear(cv.background)

	cv.root.SetCanvas(cv, env.Dispatcher())
	sg.Logger().Debug("canvas: created", "width", cv.surface.Width(), "height", cv.surface.Height())
	return cv
}

// Root returns the compound holding the scene.
func (cv *Canvas) Root() *sg.Compound { return cv.root }

// Env returns the environment the canvas was created with.
func (cv *Canvas) Env() *sg.Env { return cv.env }

// Width returns the canvas width in pixels.
func (cv *Canvas) Width() int { return cv.surface.Width() }

// Height returns the canvas height in pixels.
func (cv *Canvas) Height() int { return cv.surface.Height() }

// Background returns the clear color.
func (cv *Canvas) Background() color.Color { return cv.background }

// SetBackground changes the clear color and repaints.
func (cv *Canvas) SetBackground(c color.Color) {
	if c == nil {
		return
	}
	cv.background = c
	cv.root.Repaint()
}

// Repaint clears the canvas and draws the whole tree.
func (cv *Canvas) Repaint() {
	cv.mu.Lock()
	defer cv.mu.Unlock()

	cv.surface.ResetClip()
	cv.surface.Clear(cv.background)
	cv.root.Draw(cv.surface)
	cv.frames.Add(1)
}

// RepaintRegion clears r and redraws the tree clipped to it.
func (cv *Canvas) RepaintRegion(r image.Rectangle) {
	cv.mu.Lock()
	defer cv.mu.Unlock()

	cv.surface.SetClip(r)
	defer cv.surface.ResetClip()
	if cv.surface.Clip().Empty() {
		return
	}
	cv.surface.Clear(cv.background)
	cv.root.Draw(cv.surface)
	cv.regions.Add(1)
}

// Frames returns how many full repaints have run.
func (cv *Canvas) Frames() int64 { return cv.frames.Load() }

// RegionRepaints returns how many partial repaints have run.
func (cv *Canvas) RegionRepaints() int64 { return cv.regions.Load() }

// Snapshot returns a copy of the current picture.
func (cv *Canvas) Snapshot() *image.RGBA {
	cv.mu.Lock()
	defer cv.mu.Unlock()
	return cv.surface.Snapshot()
}

// SavePNG writes the current picture to path.
func (cv *Canvas) SavePNG(path string) error {
	img := cv.Snapshot()
	if err := imagecodec.SavePNG(path, img); err != nil {
		return err
	}
	sg.Logger().Info("canvas: saved", "path", path)
	return nil
}
