package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/sg"
)

// Scene describes a canvas and the shapes on it. It is read from TOML or
// YAML scene files.
type Scene struct {
	Width      int         `toml:"width" yaml:"width"`
	Height     int         `toml:"height" yaml:"height"`
	Background string      `toml:"background" yaml:"background"`
	Font       string      `toml:"font" yaml:"font"`
	AntiAlias  *bool       `toml:"antialias" yaml:"antialias"`
	Shapes     []ShapeSpec `toml:"shapes" yaml:"shapes"`
}

// ShapeSpec describes one shape. Which fields apply depends on Kind.
type ShapeSpec struct {
	Kind   string  `toml:"kind" yaml:"kind"`
	Name   string  `toml:"name" yaml:"name"`
	X      float64 `toml:"x" yaml:"x"`
	Y      float64 `toml:"y" yaml:"y"`
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`

	// line
	X2 float64 `toml:"x2" yaml:"x2"`
	Y2 float64 `toml:"y2" yaml:"y2"`

	// roundrect
	Corner *float64 `toml:"corner" yaml:"corner"`

	// arc
	Start float64 `toml:"start" yaml:"start"`
	Sweep float64 `toml:"sweep" yaml:"sweep"`

	// polygon, relative to (X, Y)
	Points [][2]float64 `toml:"points" yaml:"points"`

	// text
	Text string `toml:"text" yaml:"text"`
	Font string `toml:"font" yaml:"font"`

	// image
	File string `toml:"file" yaml:"file"`

	Color     string   `toml:"color" yaml:"color"`
	Fill      string   `toml:"fill" yaml:"fill"`
	LineWidth *float64 `toml:"line_width" yaml:"line_width"`
	LineStyle string   `toml:"line_style" yaml:"line_style"`
	Opacity   *float64 `toml:"opacity" yaml:"opacity"`
	Rotate    float64  `toml:"rotate" yaml:"rotate"`
	Scale     float64  `toml:"scale" yaml:"scale"`
	Hidden    bool     `toml:"hidden" yaml:"hidden"`

	// compound
	Children []ShapeSpec `toml:"children" yaml:"children"`
}

var errUnknownKind = errors.New("unknown shape kind")

// styled is the paint state every shape kind shares.
type styled interface {
	sg.Shape
	SetColor(name string) error
	SetFillColor(name string) error
	SetLineWidth(w float64) error
	SetLineStyle(s sg.LineStyle)
	SetOpacity(opacity float64) error
	SetVisible(visible bool)
	Rotate(theta float64)
	Scale(sx, sy float64)
}

// Populate adds the scene's shapes to root.
func (sc *Scene) Populate(env *sg.Env, root *sg.Compound) error {
	for i := range sc.Shapes {
		s, err := sc.Shapes[i].Build(env)
		if err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
		if err := root.Add(s); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}
	return nil
}

// Build creates the shape described by sp.
func (sp *ShapeSpec) Build(env *sg.Env) (sg.Shape, error) {
	s, err := sp.construct(env)
	if err != nil {
		return nil, err
	}
	if err := sp.decorate(s); err != nil {
		return nil, fmt.Errorf("%s: %w", sp.Kind, err)
	}
	return s, nil
}

func (sp *ShapeSpec) construct(env *sg.Env) (styled, error) {
	switch strings.ToLower(sp.Kind) {
	case "rect":
		return sg.NewRect(sp.X, sp.Y, sp.Width, sp.Height), nil
	case "roundrect":
		corner := float64(sg.DefaultCorner)
		if sp.Corner != nil {
			corner = *sp.Corner
		}
		return sg.NewRoundRect(sp.X, sp.Y, sp.Width, sp.Height, corner)
	case "oval":
		return sg.NewOval(sp.X, sp.Y, sp.Width, sp.Height), nil
	case "arc":
		return sg.NewArc(sp.X, sp.Y, sp.Width, sp.Height, sp.Start, sp.Sweep), nil
	case "line":
		return sg.NewLine(sp.X, sp.Y, sp.X2, sp.Y2), nil
	case "polygon":
		p := sg.NewPolygon()
		for _, v := range sp.Points {
			p.AddVertex(v[0], v[1])
		}
		p.SetLocation(sp.X, sp.Y)
		return p, nil
	case "text", "label":
		t := sg.NewText(env, sp.Text, sp.X, sp.Y)
		if sp.Font != "" {
			t.SetFont(sp.Font)
		}
		return t, nil
	case "image":
		im, err := sg.NewImageFromFile(sp.File)
		if err != nil {
			return nil, err
		}
		im.SetLocation(sp.X, sp.Y)
		if sp.Width > 0 && sp.Height > 0 {
			if err := im.SetSize(sp.Width, sp.Height); err != nil {
				return nil, err
			}
		}
		return im, nil
	case "compound", "group":
		c := sg.NewCompound()
		c.SetLocation(sp.X, sp.Y)
		for i := range sp.Children {
			child, err := sp.Children[i].Build(env)
			if err != nil {
				return nil, fmt.Errorf("child %d: %w", i, err)
			}
			if err := c.Add(child); err != nil {
				return nil, err
			}
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w %q", errUnknownKind, sp.Kind)
	}
}

func (sp *ShapeSpec) decorate(s styled) error {
	if sp.Color != "" {
		if err := s.SetColor(sp.Color); err != nil {
			return err
		}
	}
	if sp.Fill != "" {
		if err := s.SetFillColor(sp.Fill); err != nil {
			return err
		}
	}
	if sp.LineWidth != nil {
		if err := s.SetLineWidth(*sp.LineWidth); err != nil {
			return err
		}
	}
	if sp.LineStyle != "" {
		ls, err := parseLineStyle(sp.LineStyle)
		if err != nil {
			return err
		}
		s.SetLineStyle(ls)
	}
	if sp.Opacity != nil {
		if err := s.SetOpacity(*sp.Opacity); err != nil {
			return err
		}
	}
	if sp.Scale != 0 {
		s.Scale(sp.Scale, sp.Scale)
	}
	if sp.Rotate != 0 {
		s.Rotate(sp.Rotate)
	}
	if sp.Hidden {
		s.SetVisible(false)
	}
	return nil
}

func parseLineStyle(name string) (sg.LineStyle, error) {
	for ls := sg.LineSolid; ls <= sg.LineNone; ls++ {
		if strings.EqualFold(ls.String(), strings.ReplaceAll(name, "-", "")) {
			return ls, nil
		}
	}
	return 0, fmt.Errorf("unknown line style %q", name)
}
