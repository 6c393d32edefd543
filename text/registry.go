package text

import (
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/sg/internal/cache"
)

// Cache sizes. Scenes rarely use more than a handful of fonts; the limits
// only matter for programs that generate specs, e.g. animating a size.
const (
	maxFaces   = 64
	maxMetrics = 256
)

// Registry maps font specs to font sources and caches the faces and
// metrics derived from them. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	sources map[string]*FontSource
	faces   *cache.Cache[Spec, font.Face]
	metrics *cache.Cache[Spec, Metrics]
	logger  *slog.Logger
}

// NewRegistry creates a Registry with no fonts. Specs whose family is not
// registered fall back to DefaultFamily, so register at least that.
func NewRegistry() *Registry {
	return &Registry{
		sources: make(map[string]*FontSource),
		faces:   cache.New[Spec, font.Face](maxFaces),
		metrics: cache.New[Spec, Metrics](maxMetrics),
		logger:  slog.New(slog.DiscardHandler),
	}
}

// SetLogger sets the logger used to report unparsable specs.
// A nil logger discards.
func (r *Registry) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	r.mu.Lock()
	r.logger = l
	r.mu.Unlock()
}

// Register makes src available under family in the given style.
func (r *Registry) Register(family string, style Style, src *FontSource) {
	key := Spec{Family: family, Style: style}.key()
	r.mu.Lock()
	r.sources[key] = src
	r.mu.Unlock()

	stale := func(spec Spec) bool { return spec.key() == key }
	r.faces.DeleteFunc(stale)
	r.metrics.DeleteFunc(stale)
}

// source returns the font for spec, falling back to the plain style of the
// family and then to the default family.
func (r *Registry) source(spec Spec) (*FontSource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	candidates := []Spec{
		spec,
		{Family: spec.Family, Style: Plain},
		{Family: DefaultFamily, Style: spec.Style},
		{Family: DefaultFamily, Style: Plain},
	}
	for _, c := range candidates {
		if src, ok := r.sources[c.key()]; ok {
			return src, nil
		}
	}
	return nil, fmt.Errorf("text: no font for %q", spec.String())
}

// resolve parses font, falling back to the default spec when it is malformed.
func (r *Registry) resolve(font string) Spec {
	spec, err := ParseSpec(font)
	if err != nil {
		r.mu.RLock()
		l := r.logger
		r.mu.RUnlock()
		l.Warn("text: using default font", "spec", font, "err", err)
		spec, _ = ParseSpec("")
	}
	return spec
}

// Metrics returns the vertical metrics of font.
func (r *Registry) Metrics(font string) Metrics {
	spec := r.resolve(font)
	m, err := r.metrics.GetOrCreate(spec, func() (Metrics, error) {
		src, err := r.source(spec)
		if err != nil {
			return Metrics{}, err
		}
		return src.metrics(spec.Size), nil
	})
	if err != nil {
		return Metrics{}
	}
	return m
}

// Ascent returns the distance from the baseline to the top of a line.
func (r *Registry) Ascent(font string) float64 { return r.Metrics(font).Ascent }

// Descent returns the distance from the baseline to the bottom of a line.
func (r *Registry) Descent(font string) float64 { return r.Metrics(font).Descent }

// LineHeight returns the distance between consecutive baselines.
func (r *Registry) LineHeight(font string) float64 { return r.Metrics(font).LineHeight() }

// Width returns the advance width of s set in font.
func (r *Registry) Width(font, s string) float64 {
	spec := r.resolve(font)
	src, err := r.source(spec)
	if err != nil {
		return 0
	}
	if w, ok := src.advance(s, spec.Size); ok {
		return w
	}
	face, err := r.face(spec)
	if err != nil {
		return 0
	}
	return fixedToFloat(measureString(face, s))
}

// Face returns a drawable face for font. Faces are cached and shared; a
// font.Face must only be used by one goroutine at a time.
func (r *Registry) Face(font string) (font.Face, error) {
	return r.face(r.resolve(font))
}

func (r *Registry) face(spec Spec) (font.Face, error) {
	return r.faces.GetOrCreate(spec, func() (font.Face, error) {
		src, err := r.source(spec)
		if err != nil {
			return nil, err
		}
		return src.newFace(spec.Size)
	})
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the shared Registry holding the Go fonts under the
// built-in family names.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		registerGoFonts(defaultRegistry)
	})
	return defaultRegistry
}

func registerGoFonts(r *Registry) {
	proportional := map[Style][]byte{
		Plain:      goregular.TTF,
		Bold:       gobold.TTF,
		Italic:     goitalic.TTF,
		BoldItalic: gobolditalic.TTF,
	}
	mono := map[Style][]byte{
		Plain:      gomono.TTF,
		Bold:       gomonobold.TTF,
		Italic:     gomonoitalic.TTF,
		BoldItalic: gomonobolditalic.TTF,
	}
	families := []struct {
		names []string
		data  map[Style][]byte
	}{
		{[]string{"Dialog", "SansSerif", "Serif", "Default", "Go"}, proportional},
		{[]string{"Monospaced", "DialogInput", "Mono", "Go Mono"}, mono},
	}
	for _, fam := range families {
		for style, data := range fam.data {
			src, err := NewFontSource(data)
			if err != nil {
				// The embedded Go fonts always parse.
				panic(err)
			}
			for _, name := range fam.names {
				r.Register(name, style, src)
			}
		}
	}
}
