package sg

import "strconv"

// TextShape is a single line of text. Its location is the left end of the
// baseline; its size is measured through the Env's font metrics whenever
// the text or font changes.
type TextShape struct {
	object
	env  *Env
	text string
}

// NewText creates a text shape with its baseline starting at (x, y), using
// the default font of env. A nil env means NewEnv().
func NewText(env *Env, text string, x, y float64) *TextShape {
	if env == nil {
		env = NewEnv()
	}
	t := &TextShape{object: newObject(x, y, 0, 0), env: env, text: text}
	t.font = env.DefaultFont()
	t.resize = func(w, h float64) error {
		return violation("SetSize", Dim(w, h), ErrDerivedSize)
	}
	t.measure()
	return t
}

// Type returns "Text".
func (t *TextShape) Type() string { return "Text" }

func (t *TextShape) String() string {
	return t.describe(t.Type(), "text="+strconv.Quote(t.text))
}

// Text returns the string.
func (t *TextShape) Text() string { return t.text }

// SetText replaces the string and remeasures.
func (t *TextShape) SetText(text string) {
	t.text = text
	t.measure()
	t.repaint()
}

// SetLabel is an alias for SetText.
func (t *TextShape) SetLabel(text string) { t.SetText(text) }

// SetFont changes the font and remeasures. An empty spec selects the
// Env's default font.
func (t *TextShape) SetFont(font string) {
	if font == "" {
		font = t.env.DefaultFont()
	}
	t.font = font
	t.measure()
	t.repaint()
}

// FontAscent returns the distance from the baseline to the top of the line.
func (t *TextShape) FontAscent() float64 { return t.env.Metrics().Ascent(t.font) }

// FontDescent returns the distance from the baseline to the bottom of the line.
func (t *TextShape) FontDescent() float64 { return t.env.Metrics().Descent(t.font) }

func (t *TextShape) measure() {
	m := t.env.Metrics()
	t.width = m.Width(t.font, t.text)
	t.height = m.LineHeight(t.font)
}

// Bounds returns the line box: it starts one ascent above the baseline.
func (t *TextShape) Bounds() Rect { return t.envelope(t.lineBox()) }

// Contains reports whether (x, y) lies in the line box.
func (t *TextShape) Contains(x, y float64) bool {
	p, ok := t.toLocal(x, y)
	return ok && t.lineBox().Contains(p.X, p.Y)
}

func (t *TextShape) lineBox() Rect {
	return Rect{X: t.x, Y: t.y - t.FontAscent(), Width: t.width, Height: t.height}
}

func (t *TextShape) Draw(s Surface) {
	st := t.style()
	s.DrawText(&st, t.x, t.y, t.text)
}
