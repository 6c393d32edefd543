// Package text provides the fonts shapes are measured and painted with.
//
// Fonts are named by spec strings of the form "Family-Style-Size", for
// example "Dialog-13", "Serif-Bold-18" or "Monospaced-BoldItalic-12". Any
// part may be omitted or given as "*" to keep the default.
//
// The built-in families are backed by the Go fonts:
//
//	Dialog, SansSerif, Serif, Default -> Go
//	Monospaced, DialogInput, Mono     -> Go Mono
//
// Other font files can be added with Registry.Register.
//
// A Registry answers metric questions for the scene graph (ascent, descent,
// line height and the advance width of a string) and hands out
// golang.org/x/image/font faces for painting. Widths are measured by shaping
// the string with HarfBuzz through github.com/go-text/typesetting, so
// kerning is taken into account.
//
// # Usage
//
//	r := text.Default()
//	w := r.Width("Serif-Bold-18", "Hello")
//	face, err := r.Face("Serif-Bold-18")
package text
