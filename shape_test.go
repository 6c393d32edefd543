package sg

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestSetOpacity(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"half", 0.5, false},
		{"one", 1, false},
		{"negative", -0.01, true},
		{"above one", 1.01, true},
		{"NaN", math.NaN(), true},
		{"infinity", math.Inf(1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRect(0, 0, 10, 10)
			if err := r.SetOpacity(0.25); err != nil {
				t.Fatalf("SetOpacity(0.25) = %v", err)
			}
			err := r.SetOpacity(tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrOpacityRange) {
					t.Fatalf("SetOpacity(%v) error = %v, want ErrOpacityRange", tt.value, err)
				}
				if r.Opacity() != 0.25 {
					t.Errorf("Opacity() = %v after rejected call, want 0.25", r.Opacity())
				}
				return
			}
			if err != nil {
				t.Fatalf("SetOpacity(%v) = %v", tt.value, err)
			}
			if r.Opacity() != tt.value {
				t.Errorf("Opacity() = %v, want %v", r.Opacity(), tt.value)
			}
		})
	}
}

func TestContractError(t *testing.T) {
	err := NewRect(0, 0, 1, 1).SetLineWidth(-2)
	var ce *ContractError
	if !errors.As(err, &ce) {
		t.Fatalf("SetLineWidth(-2) error = %T, want *ContractError", err)
	}
	if ce.Op != "SetLineWidth" || ce.Value != -2.0 {
		t.Errorf("ContractError = {%q, %v}, want {SetLineWidth, -2}", ce.Op, ce.Value)
	}
	if !errors.Is(err, ErrNegative) {
		t.Errorf("error %v does not wrap ErrNegative", err)
	}
}

func TestSetSizeRejected(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(r *RectShape)
		w, h    float64
		want    error
	}{
		{"rotated", func(r *RectShape) { r.Rotate(30) }, 20, 20, ErrTransformed},
		{"scaled", func(r *RectShape) { r.Scale(2, 1) }, 20, 20, ErrTransformed},
		{"negative width", func(*RectShape) {}, -1, 20, ErrNegative},
		{"negative height", func(*RectShape) {}, 20, -1, ErrNegative},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRect(5, 5, 10, 10)
			tt.prepare(r)
			for _, call := range []func() error{
				func() error { return r.SetSize(tt.w, tt.h) },
				func() error { return r.SetBounds(0, 0, tt.w, tt.h) },
			} {
				if err := call(); !errors.Is(err, tt.want) {
					t.Fatalf("error = %v, want %v", err, tt.want)
				}
				if got := r.Size(); got != Dim(10, 10) {
					t.Errorf("Size() = %v after rejected call, want 10x10", got)
				}
				if got := r.Location(); got != Pt(5, 5) {
					t.Errorf("Location() = %v after rejected call, want (5, 5)", got)
				}
			}
		})
	}
}

func TestResetTransformAllowsResize(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	r.Rotate(45)
	if !r.IsTransformed() {
		t.Fatal("IsTransformed() = false after Rotate")
	}
	r.ResetTransform()
	if r.IsTransformed() {
		t.Fatal("IsTransformed() = true after ResetTransform")
	}
	if err := r.SetSize(20, 30); err != nil {
		t.Fatalf("SetSize after ResetTransform = %v", err)
	}
	if r.Width() != 20 || r.Height() != 30 {
		t.Errorf("size = %vx%v, want 20x30", r.Width(), r.Height())
	}
}

func TestLocationHelpers(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	if got := r.CenterLocation(); got != Pt(25, 40) {
		t.Errorf("CenterLocation() = %v, want (25, 40)", got)
	}
	if got := r.BottomRightLocation(); got != Pt(40, 60) {
		t.Errorf("BottomRightLocation() = %v, want (40, 60)", got)
	}

	r.SetCenterLocation(0, 0)
	if got := r.Location(); got != Pt(-15, -20) {
		t.Errorf("after SetCenterLocation(0, 0) Location() = %v, want (-15, -20)", got)
	}
	r.SetBottomRightLocation(100, 100)
	if got := r.Location(); got != Pt(70, 60) {
		t.Errorf("after SetBottomRightLocation Location() = %v, want (70, 60)", got)
	}
	r.Move(-70, -60)
	if got := r.Location(); got != Pt(0, 0) {
		t.Errorf("after Move Location() = %v, want origin", got)
	}
	r.SetRightX(50)
	r.SetBottomY(50)
	if got := r.Location(); got != Pt(20, 10) {
		t.Errorf("after SetRightX/SetBottomY Location() = %v, want (20, 10)", got)
	}
}

func TestColors(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if r.Color() != "" || r.IsFilled() {
		t.Fatalf("new rect: Color() = %q, IsFilled() = %v", r.Color(), r.IsFilled())
	}
	if err := r.SetColor("Red"); err != nil {
		t.Fatalf("SetColor(Red) = %v", err)
	}
	if r.Color() != "#ff0000" || r.ColorRGB() != 0xff0000 {
		t.Errorf("Color() = %q (%06x), want #ff0000", r.Color(), r.ColorRGB())
	}
	if err := r.SetColor("no such color"); err == nil {
		t.Error("SetColor(no such color) succeeded")
	}
	if r.Color() != "#ff0000" {
		t.Errorf("Color() = %q after rejected call", r.Color())
	}

	if err := r.SetFillColor("#00ff80"); err != nil {
		t.Fatalf("SetFillColor = %v", err)
	}
	if !r.IsFilled() || r.FillColorRGB() != 0x00ff80 {
		t.Errorf("IsFilled() = %v, FillColorRGB() = %06x", r.IsFilled(), r.FillColorRGB())
	}
	if err := r.SetFillColor(""); err != nil {
		t.Fatalf(`SetFillColor("") = %v`, err)
	}
	if r.IsFilled() || r.FillColor() != "" {
		t.Errorf(`after SetFillColor("") IsFilled() = %v, FillColor() = %q`, r.IsFilled(), r.FillColor())
	}
}

func TestStyleSnapshot(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	st := r.style()
	if st.HasStroke || st.Filled || st.StrokeColor() != (color.RGBA{A: 0xff}) {
		t.Errorf("default style = %+v", st)
	}

	r.SetColorRGB(0, 0, 255)
	r.SetFilled(true)
	st = r.style()
	if !st.Filled || st.Fill != st.Stroke || st.Fill.B != 255 {
		t.Errorf("filled without fill color: Fill = %v, Stroke = %v", st.Fill, st.Stroke)
	}

	r.SetFillColorRGB(1, 2, 3)
	r.SetLineStyle(LineDot)
	r.SetFont("Serif-10")
	st = r.style()
	if st.Fill.R != 1 || st.Fill.G != 2 || st.Fill.B != 3 {
		t.Errorf("Fill = %v, want (1, 2, 3)", st.Fill)
	}
	if st.LineStyle != LineDot || st.Font != "Serif-10" {
		t.Errorf("LineStyle = %v, Font = %q", st.LineStyle, st.Font)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		shape func() Shape
		want  string
	}{
		{"rect", func() Shape { return NewRect(1, 2, 3, 4) }, "Rect(x=1,y=2,w=3,h=4)"},
		{"styled", func() Shape {
			r := NewRect(0, 0, 10, 10)
			_ = r.SetLineWidth(2)
			_ = r.SetColor("red")
			_ = r.SetFillColor("blue")
			r.SetVisible(false)
			return r
		}, "Rect(x=0,y=0,w=10,h=10,lineWidth=2,color=#ff0000,fillColor=#0000ff,visible=false)"},
		{"oval", func() Shape { return NewOval(0.5, 0, 2, 2) }, "Oval(x=0.5,y=0,w=2,h=2)"},
		{"line", func() Shape { return NewLine(0, 0, 10, -5) }, "Line(x=0,y=0,w=10,h=5,x2=10,y2=-5)"},
		{"arc", func() Shape { return NewArc(0, 0, 10, 10, 45, 90) }, "Arc(x=0,y=0,w=10,h=10,start=45,sweep=90)"},
		{"roundrect", func() Shape { return mustRoundRect(0, 0, 10, 10, 4) }, "RoundRect(x=0,y=0,w=10,h=10,corner=4)"},
		{"polygon", func() Shape { return NewPolygon(Pt(0, 0), Pt(4, 0), Pt(0, 3)) }, "Polygon(x=0,y=0,w=4,h=3,vertices=3)"},
		{"compound", func() Shape {
			c := NewCompound()
			_ = c.Add(NewRect(0, 0, 5, 5))
			return c
		}, "Compound(x=0,y=0,w=5,h=5,elements=1)"},
		{"text", func() Shape {
			return NewText(NewEnv(WithFontMetrics(fixedMetrics{})), "hi", 0, 0)
		}, `Text(x=0,y=0,w=14,h=15,font=Dialog-13,text="hi")`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape().String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypeNames(t *testing.T) {
	img, err := NewImage(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	shapes := map[string]Shape{
		"Arc":       NewArc(0, 0, 1, 1, 0, 90),
		"Compound":  NewCompound(),
		"Image":     img,
		"Line":      NewLine(0, 0, 1, 1),
		"Oval":      NewOval(0, 0, 1, 1),
		"Polygon":   NewPolygon(),
		"Rect":      NewRect(0, 0, 1, 1),
		"RoundRect": mustRoundRect(0, 0, 1, 1, 0),
		"Text":      NewText(NewEnv(WithFontMetrics(fixedMetrics{})), "", 0, 0),
	}
	for want, s := range shapes {
		if got := s.Type(); got != want {
			t.Errorf("Type() = %q, want %q", got, want)
		}
	}
}

func TestVisibility(t *testing.T) {
	c := NewCompound()
	a := NewRect(0, 0, 10, 10)
	b := NewOval(0, 0, 10, 10)
	_ = c.Add(a)
	_ = c.Add(b)
	a.SetVisible(false)

	var rs recordingSurface
	c.Draw(&rs)
	if got := rs.ops(); len(got) != 1 || got[0] != "Ellipse" {
		t.Errorf("drawn = %v, want only the visible oval", got)
	}
	if !a.Contains(5, 5) {
		t.Error("hidden shapes still answer Contains")
	}
}
