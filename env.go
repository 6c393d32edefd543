package sg

import "github.com/gogpu/sg/text"

// DefaultFont is the font spec text shapes use unless told otherwise.
const DefaultFont = "Dialog-13"

// Env carries the rendering context that would otherwise be process-wide
// state: font metrics, the default font, the anti-aliasing preference and
// the UI-thread dispatcher. Shapes that need metrics (text) and root
// compounds that repaint hold an *Env.
type Env struct {
	metrics     FontMetrics
	defaultFont string
	antiAlias   bool
	dispatcher  Dispatcher
}

// Option configures an Env during creation.
//
// Example:
//
//	env := sg.NewEnv(sg.WithAntiAlias(false), sg.WithDispatcher(loop))
type Option func(*Env)

// WithFontMetrics sets the font metrics provider.
// The default is text.Default().
func WithFontMetrics(m FontMetrics) Option {
	return func(e *Env) {
		e.metrics = m
	}
}

// WithDefaultFont sets the font spec new text shapes start with.
func WithDefaultFont(font string) Option {
	return func(e *Env) {
		if font != "" {
			e.defaultFont = font
		}
	}
}

// WithAntiAlias enables or disables anti-aliased painting (default true).
func WithAntiAlias(on bool) Option {
	return func(e *Env) {
		e.antiAlias = on
	}
}

// WithDispatcher sets the UI-thread dispatcher used for repaints.
// The default is Immediate.
func WithDispatcher(d Dispatcher) Option {
	return func(e *Env) {
		e.dispatcher = d
	}
}

// NewEnv creates an Env with the given options applied over the defaults.
func NewEnv(opts ...Option) *Env {
	e := &Env{
		defaultFont: DefaultFont,
		antiAlias:   true,
		dispatcher:  Immediate{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.metrics == nil {
		e.metrics = text.Default()
	}
	if e.dispatcher == nil {
		e.dispatcher = Immediate{}
	}
	return e
}

// Metrics returns the font metrics provider.
func (e *Env) Metrics() FontMetrics { return e.metrics }

// DefaultFont returns the default font spec.
func (e *Env) DefaultFont() string { return e.defaultFont }

// AntiAlias reports whether anti-aliasing is enabled.
func (e *Env) AntiAlias() bool { return e.antiAlias }

// Dispatcher returns the UI-thread dispatcher.
func (e *Env) Dispatcher() Dispatcher { return e.dispatcher }
