package main

import (
	"context"
	"fmt"
	"image/color"

	"github.com/gogpu/sg"
	"github.com/gogpu/sg/canvas"
	"github.com/gogpu/sg/rgb"
	"github.com/gogpu/sg/uithread"
)

const (
	defaultWidth  = 400
	defaultHeight = 300
)

func ptr[T any](v T) *T { return &v }

// demoScene is rendered when no scene file is given.
func demoScene() *Scene {
	return &Scene{
		Width:      defaultWidth,
		Height:     defaultHeight,
		Background: "white smoke",
		Shapes: []ShapeSpec{
			{Kind: "rect", X: 20, Y: 20, Width: 120, Height: 80, Fill: "light blue", Color: "navy", LineWidth: ptr(2.0)},
			{Kind: "roundrect", X: 160, Y: 20, Width: 120, Height: 80, Corner: ptr(24.0), Fill: "gold"},
			{Kind: "oval", X: 300, Y: 20, Width: 80, Height: 80, Fill: "tomato", Opacity: ptr(0.8)},
			{Kind: "arc", X: 20, Y: 120, Width: 100, Height: 100, Start: 30, Sweep: 300, Fill: "yellow", Color: "black"},
			{Kind: "line", X: 140, Y: 130, X2: 260, Y2: 210, Color: "dark green", LineWidth: ptr(4.0), LineStyle: "dash"},
			{Kind: "polygon", X: 320, Y: 170, Fill: "medium purple", Points: star(50)},
			{Kind: "rect", X: 150, Y: 230, Width: 100, Height: 40, Fill: "light coral", Rotate: 15},
			{Kind: "group", X: 20, Y: 240, Children: []ShapeSpec{
				{Kind: "oval", Width: 20, Height: 20, Fill: "red"},
				{Kind: "oval", X: 25, Width: 20, Height: 20, Fill: "orange"},
				{Kind: "oval", X: 50, Width: 20, Height: 20, Fill: "green"},
			}},
			{Kind: "text", X: 260, Y: 280, Text: "sg scene graph", Font: "SansSerif-Bold-14", Color: "dim gray"},
		},
	}
}

// star returns the vertices of a five-pointed star centered on the
// origin, in the order that makes its outline self-intersect.
func star(outer float64) [][2]float64 {
	p := sg.NewPolygon()
	p.AddVertex(0, -outer)
	edge := 2 * outer * 0.9510565162951535 // chord spanning 144 degrees
	for k := range 4 {
		p.AddPolarEdge(edge, -72-144*float64(k))
	}
	out := make([][2]float64, 0, p.VertexCount())
	for _, v := range p.Vertices() {
		out = append(out, [2]float64{v.X, v.Y})
	}
	return out
}

func (sc *Scene) size() (int, int) {
	w, h := sc.Width, sc.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

func (sc *Scene) background() (color.Color, error) {
	if sc.Background == "" {
		return color.White, nil
	}
	v, err := rgb.Parse(sc.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	return rgb.RGBA(v), nil
}

// buildCanvas lays the scene out on a canvas that repaints on loop and
// waits for the first full paint.
func buildCanvas(ctx context.Context, sc *Scene, loop *uithread.Loop) (*canvas.Canvas, error) {
	bg, err := sc.background()
	if err != nil {
		return nil, err
	}
	opts := []sg.Option{sg.WithDispatcher(loop), sg.WithDefaultFont(sc.Font)}
	if sc.AntiAlias != nil {
		opts = append(opts, sg.WithAntiAlias(*sc.AntiAlias))
	}
	env := sg.NewEnv(opts...)

	w, h := sc.size()
	cv := canvas.New(env, w, h, canvas.WithBackground(bg))
	root := cv.Root()
	root.SetAutoRepaint(false)
	if err := sc.Populate(env, root); err != nil {
		return nil, err
	}
	root.SetAutoRepaint(true)
	root.Repaint()
	if err := loop.Flush(ctx); err != nil {
		return nil, err
	}
	return cv, nil
}
