package sg

import (
	"image/color"
	"testing"
)

func TestLineStyleString(t *testing.T) {
	tests := []struct {
		s    LineStyle
		want string
	}{
		{LineSolid, "Solid"},
		{LineDash, "Dash"},
		{LineDashDot, "DashDot"},
		{LineDashDotDot, "DashDotDot"},
		{LineDot, "Dot"},
		{LineNone, "None"},
		{LineStyle(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("LineStyle(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestDashPattern(t *testing.T) {
	if p := LineSolid.DashPattern(3); p != nil {
		t.Errorf("solid pattern = %v, want nil", p)
	}
	if p := LineNone.DashPattern(3); p != nil {
		t.Errorf("none pattern = %v, want nil", p)
	}
	p := LineDash.DashPattern(3)
	if len(p) != 2 || p[0] != 12 || p[1] != 6 {
		t.Errorf("dash pattern at width 3 = %v, want [12 6]", p)
	}
	// Hairlines use unit lengths.
	p = LineDot.DashPattern(0)
	if len(p) != 2 || p[0] != 1 || p[1] != 2 {
		t.Errorf("dot pattern at width 0 = %v, want [1 2]", p)
	}
	if n := len(LineDashDotDot.DashPattern(1)); n != 6 {
		t.Errorf("dash-dot-dot pattern has %d entries, want 6", n)
	}
}

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	if s.StrokeColor() != (color.RGBA{A: 0xff}) {
		t.Errorf("default stroke = %v, want opaque black", s.StrokeColor())
	}
	if s.Filled || s.Opacity != 1 || !s.Transform.IsIdentity() {
		t.Errorf("unexpected default style %+v", s)
	}
	if !s.Strokes() {
		t.Error("default style should stroke")
	}
	s.LineStyle = LineNone
	if s.Strokes() {
		t.Error("LineNone should not stroke")
	}
}
