package sg

import (
	"errors"
	"slices"
	"testing"
)

// newStack returns a compound holding n 10x10 rects.
func newStack(n int) (*Compound, []Shape) {
	c := NewCompound()
	shapes := make([]Shape, n)
	for i := range shapes {
		shapes[i] = NewRect(float64(i), 0, 10, 10)
		_ = c.Add(shapes[i])
	}
	return c, shapes
}

func TestAddRejects(t *testing.T) {
	c := NewCompound()
	var typedNil *RectShape
	tests := []struct {
		name  string
		shape Shape
		want  error
	}{
		{"nil", nil, ErrNilShape},
		{"typed nil", typedNil, ErrNilShape},
		{"self", c, ErrCycle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.Add(tt.shape); !errors.Is(err, tt.want) {
				t.Errorf("Add error = %v, want %v", err, tt.want)
			}
			if err := c.AddAt(tt.shape, 1, 1); !errors.Is(err, tt.want) {
				t.Errorf("AddAt error = %v, want %v", err, tt.want)
			}
			if !c.IsEmpty() {
				t.Errorf("ElementCount() = %d, want 0", c.ElementCount())
			}
		})
	}
}

func TestAddAncestor(t *testing.T) {
	outer := NewCompound()
	inner := NewCompound()
	if err := outer.Add(inner); err != nil {
		t.Fatal(err)
	}
	if err := inner.Add(outer); !errors.Is(err, ErrCycle) {
		t.Errorf("adding an ancestor: error = %v, want ErrCycle", err)
	}
	if outer.Parent() != nil {
		t.Error("rejected Add changed the parent")
	}
}

func TestAddTwiceIsNoop(t *testing.T) {
	c := NewCompound()
	r := NewRect(0, 0, 1, 1)
	_ = c.Add(r)
	if err := c.Add(r); err != nil {
		t.Fatalf("second Add = %v", err)
	}
	if c.ElementCount() != 1 {
		t.Errorf("ElementCount() = %d, want 1", c.ElementCount())
	}
}

func TestAddMovesBetweenParents(t *testing.T) {
	a, b := NewCompound(), NewCompound()
	r := NewRect(0, 0, 1, 1)
	_ = a.Add(r)
	if err := b.Add(r); err != nil {
		t.Fatal(err)
	}
	if a.ElementCount() != 0 || b.ElementCount() != 1 {
		t.Errorf("counts = %d, %d; want 0, 1", a.ElementCount(), b.ElementCount())
	}
	if r.Parent() != b {
		t.Error("Parent() is not the new compound")
	}
}

func TestAddAt(t *testing.T) {
	c := NewCompound()
	r := NewRect(0, 0, 4, 4)
	if err := c.AddAt(r, 7, 8); err != nil {
		t.Fatal(err)
	}
	if r.Location() != Pt(7, 8) || c.IndexOf(r) != 0 {
		t.Errorf("Location() = %v, IndexOf = %d", r.Location(), c.IndexOf(r))
	}
}

func TestRemove(t *testing.T) {
	c, s := newStack(3)
	stranger := NewOval(0, 0, 1, 1)

	c.Remove(stranger)
	c.Remove(nil)
	if c.ElementCount() != 3 {
		t.Fatalf("removing a non-member changed the count to %d", c.ElementCount())
	}

	c.Remove(s[1])
	if got := c.Elements(); !slices.Equal(got, []Shape{s[0], s[2]}) {
		t.Errorf("Elements() = %v", got)
	}
	if s[1].Parent() != nil {
		t.Error("removed shape still has a parent")
	}

	if err := c.RemoveAt(2); !errors.Is(err, ErrIndexRange) {
		t.Errorf("RemoveAt(2) = %v, want ErrIndexRange", err)
	}
	if err := c.RemoveAt(-1); !errors.Is(err, ErrIndexRange) {
		t.Errorf("RemoveAt(-1) = %v, want ErrIndexRange", err)
	}
	if err := c.RemoveAt(0); err != nil {
		t.Fatal(err)
	}
	if e, _ := c.Element(0); e != s[2] {
		t.Errorf("Element(0) = %v, want the last rect", e)
	}
}

func TestRemoveAllRepaintsOnce(t *testing.T) {
	c, s := newStack(3)
	cv := attach(c)

	c.RemoveAll()
	if cv.full != 1 || len(cv.regions) != 0 {
		t.Errorf("repaints = %d full, %d regions; want exactly one full", cv.full, len(cv.regions))
	}
	for _, shape := range s {
		if shape.Parent() != nil {
			t.Errorf("%v still has a parent", shape)
		}
	}

	c.Clear()
	if cv.requests() != 1 {
		t.Errorf("clearing an empty compound requested %d repaints", cv.requests()-1)
	}
}

func TestDispose(t *testing.T) {
	outer := NewCompound()
	inner := NewCompound()
	img, _ := NewImage(2, 2)
	_ = inner.Add(img)
	_ = outer.Add(inner)

	inner.Dispose()
	if outer.ElementCount() != 0 || inner.Parent() != nil {
		t.Error("Dispose did not detach the compound")
	}
	if !inner.IsEmpty() || img.Parent() != nil {
		t.Error("Dispose did not detach the elements")
	}
	if img.Image() != nil {
		t.Error("Dispose did not release the image buffer")
	}
}

func TestElement(t *testing.T) {
	c, s := newStack(2)
	for i, want := range s {
		got, err := c.Element(i)
		if err != nil || got != want {
			t.Errorf("Element(%d) = %v, %v", i, got, err)
		}
	}
	for _, i := range []int{-1, 2} {
		if _, err := c.Element(i); !errors.Is(err, ErrIndexRange) {
			t.Errorf("Element(%d) error = %v, want ErrIndexRange", i, err)
		}
	}
	if c.IndexOf(NewRect(0, 0, 1, 1)) != -1 || c.IndexOf(nil) != -1 {
		t.Error("IndexOf a non-member is not -1")
	}

	// Elements returns a copy.
	els := c.Elements()
	els[0] = nil
	if e, _ := c.Element(0); e != s[0] {
		t.Error("modifying Elements() changed the compound")
	}
}

func TestStackingOrder(t *testing.T) {
	tests := []struct {
		name  string
		move  func(c *Compound, s []Shape)
		order []int
	}{
		{"front", func(_ *Compound, s []Shape) { s[0].(*RectShape).SendToFront() }, []int{1, 2, 3, 0}},
		{"front twice", func(_ *Compound, s []Shape) {
			s[1].(*RectShape).SendToFront()
			s[1].(*RectShape).SendToFront()
		}, []int{0, 2, 3, 1}},
		{"back", func(_ *Compound, s []Shape) { s[3].(*RectShape).SendToBack() }, []int{3, 0, 1, 2}},
		{"back of back", func(_ *Compound, s []Shape) { s[0].(*RectShape).SendToBack() }, []int{0, 1, 2, 3}},
		{"forward", func(_ *Compound, s []Shape) { s[1].(*RectShape).SendForward() }, []int{0, 2, 1, 3}},
		{"forward at front", func(_ *Compound, s []Shape) { s[3].(*RectShape).SendForward() }, []int{0, 1, 2, 3}},
		{"backward", func(_ *Compound, s []Shape) { s[2].(*RectShape).SendBackward() }, []int{0, 2, 1, 3}},
		{"backward at back", func(_ *Compound, s []Shape) { s[0].(*RectShape).SendBackward() }, []int{0, 1, 2, 3}},
		{"element to front", func(c *Compound, s []Shape) { c.SendElementToFront(s[2]) }, []int{0, 1, 3, 2}},
		{"element to back", func(c *Compound, s []Shape) { c.SendElementToBack(s[2]) }, []int{2, 0, 1, 3}},
		{"element forward", func(c *Compound, s []Shape) { c.SendElementForward(s[0]) }, []int{1, 0, 2, 3}},
		{"element backward", func(c *Compound, s []Shape) { c.SendElementBackward(s[3]) }, []int{0, 1, 3, 2}},
		{"stranger", func(c *Compound, _ []Shape) { c.SendElementToFront(NewRect(0, 0, 1, 1)) }, []int{0, 1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, s := newStack(4)
			tt.move(c, s)
			want := make([]Shape, len(tt.order))
			for i, j := range tt.order {
				want[i] = s[j]
			}
			if got := c.Elements(); !slices.Equal(got, want) {
				t.Errorf("order = %v, want %v", got, want)
			}
		})
	}
}

func TestSendToFrontWithoutParent(t *testing.T) {
	r := NewRect(0, 0, 1, 1)
	r.SendToFront()
	r.SendToBack()
	r.SendForward()
	r.SendBackward()
	if r.Parent() != nil {
		t.Error("z-order calls on a parentless shape gave it a parent")
	}
}

func TestElementAtOverlap(t *testing.T) {
	c := NewCompound()
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)
	_ = c.Add(a)
	_ = c.Add(b)

	if got := c.ElementAt(7, 7); got != a {
		t.Errorf("ElementAt(7, 7) = %v, want the back-most rect", got)
	}
	if got := c.TopElementAt(7, 7); got != b {
		t.Errorf("TopElementAt(7, 7) = %v, want the front-most rect", got)
	}
	if got := c.ElementAt(12, 12); got != b {
		t.Errorf("ElementAt(12, 12) = %v, want b", got)
	}
	if got := c.ElementAt(20, 20); got != nil {
		t.Errorf("ElementAt(20, 20) = %v, want nil", got)
	}
	if got := c.TopElementAt(20, 20); got != nil {
		t.Errorf("TopElementAt(20, 20) = %v, want nil", got)
	}
}

func TestCompoundBounds(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		shapes []Shape
		want   Rect
	}{
		{"empty at origin", 0, 0, nil, R(0, 0, 0, 0)},
		{"empty at location", 30, 40, nil, R(30, 40, 0, 0)},
		{"single", 0, 0, []Shape{NewRect(5, 5, 10, 10)}, R(5, 5, 10, 10)},
		{"union translated", 100, 50, []Shape{NewRect(0, 0, 10, 10), NewRect(20, 5, 10, 10)}, R(100, 50, 30, 15)},
		{"line and oval", 0, 0, []Shape{NewLine(-5, 0, 5, 0), NewOval(0, 0, 4, 8)}, R(-5, 0, 10, 8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCompound()
			c.SetLocation(tt.x, tt.y)
			for _, s := range tt.shapes {
				_ = c.Add(s)
			}
			if got := c.Bounds(); !rectNear(got, tt.want) {
				t.Errorf("Bounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompoundContains(t *testing.T) {
	c := NewCompound()
	c.SetLocation(100, 100)
	_ = c.Add(NewRect(0, 0, 10, 10))
	_ = c.Add(NewOval(20, 0, 10, 10))

	tests := []struct {
		x, y float64
		want bool
	}{
		{105, 105, true},
		{125, 105, true},
		{115, 105, false}, // gap between the elements
		{5, 5, false},     // child space coordinates are not parent space
	}
	for _, tt := range tests {
		if got := c.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if got := c.TopElementAt(125, 105); got == nil || got.Type() != "Oval" {
		t.Errorf("TopElementAt(125, 105) = %v, want the oval", got)
	}
	if got := c.ElementAt(105, 105); got == nil || got.Type() != "Rect" {
		t.Errorf("ElementAt(105, 105) = %v, want the rect", got)
	}
	if c.ElementAt(5, 5) != nil || c.TopElementAt(5, 5) != nil {
		t.Error("an element was found at child space coordinates")
	}
}

func TestCompoundSetSize(t *testing.T) {
	c, _ := newStack(1)
	if err := c.SetSize(50, 50); !errors.Is(err, ErrDerivedSize) {
		t.Errorf("SetSize error = %v, want ErrDerivedSize", err)
	}
	if c.Width() != 10 {
		t.Errorf("Width() = %v, want 10", c.Width())
	}
}

func TestCompoundDraw(t *testing.T) {
	outer := NewCompound()
	outer.SetLocation(10, 20)
	inner := NewCompound()
	inner.SetLocation(1, 1)
	_ = outer.Add(NewRect(0, 0, 5, 5))
	_ = outer.Add(inner)
	_ = inner.Add(NewLine(0, 0, 3, 3))

	var rs recordingSurface
	outer.Draw(&rs)
	if got := rs.ops(); !slices.Equal(got, []string{"Rect", "Line"}) {
		t.Fatalf("drawn = %v, want [Rect Line]", got)
	}
	if got := rs.calls[0].style.Transform; got != Translate(10, 20) {
		t.Errorf("rect transform = %v, want translate(10, 20)", got)
	}
	if got := rs.calls[1].style.Transform; got != Translate(11, 21) {
		t.Errorf("line transform = %v, want translate(11, 21)", got)
	}
	if !rs.calls[0].style.Aliased {
		t.Error("rects are drawn aliased")
	}
}

func TestTransformedCompound(t *testing.T) {
	c := NewCompound()
	c.SetLocation(50, 50)
	_ = c.Add(NewRect(0, 0, 10, 20))
	c.Scale(2, 2)

	if got, want := c.Bounds(), R(50, 50, 20, 40); !rectNear(got, want) {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if !c.Contains(65, 85) {
		t.Error("Contains(65, 85) = false inside the scaled rect")
	}
	if c.Contains(75, 50) {
		t.Error("Contains(75, 50) = true outside the scaled rect")
	}
	if err := c.SetSize(1, 1); !errors.Is(err, ErrTransformed) {
		t.Errorf("SetSize error = %v, want ErrTransformed", err)
	}
}
