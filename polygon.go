package sg

import (
	"math"
	"slices"
	"strconv"
)

// PolygonShape is a closed polygon. Its vertices are stored relative to its
// location, so moving the shape moves every vertex.
type PolygonShape struct {
	object
	vertices []Point
	cursor   Point
}

// NewPolygon creates a polygon at the origin with the given vertices.
func NewPolygon(vertices ...Point) *PolygonShape {
	p := &PolygonShape{object: newObject(0, 0, 0, 0)}
	p.derived = func() Dimension { return p.vertexBounds().Size() }
	p.resize = func(w, h float64) error {
		return violation("SetSize", Dim(w, h), ErrDerivedSize)
	}
	p.AddVertices(vertices...)
	return p
}

// Type returns "Polygon".
func (p *PolygonShape) Type() string { return "Polygon" }

func (p *PolygonShape) String() string {
	return p.describe(p.Type(), "vertices="+strconv.Itoa(len(p.vertices)))
}

// AddVertex appends a vertex at (x, y) relative to the location and makes
// it the current point.
func (p *PolygonShape) AddVertex(x, y float64) {
	p.cursor = Point{X: x, Y: y}
	p.vertices = append(p.vertices, p.cursor)
	p.repaint()
}

// AddVertices appends several vertices.
func (p *PolygonShape) AddVertices(pts ...Point) {
	if len(pts) == 0 {
		return
	}
	p.vertices = append(p.vertices, pts...)
	p.cursor = pts[len(pts)-1]
	p.repaint()
}

// AddEdge appends a vertex offset by (dx, dy) from the current point.
func (p *PolygonShape) AddEdge(dx, dy float64) {
	p.AddVertex(p.cursor.X+dx, p.cursor.Y+dy)
}

// AddEdges appends one vertex per offset, each relative to the one before.
func (p *PolygonShape) AddEdges(deltas ...Point) {
	for _, d := range deltas {
		p.cursor = p.cursor.Add(d)
		p.vertices = append(p.vertices, p.cursor)
	}
	if len(deltas) > 0 {
		p.repaint()
	}
}

// AddPolarEdge appends a vertex r pixels from the current point in the
// direction theta degrees counter-clockwise from the +x axis.
func (p *PolygonShape) AddPolarEdge(r, theta float64) {
	rad := theta * math.Pi / 180
	p.AddEdge(r*math.Cos(rad), -r*math.Sin(rad))
}

// Vertex returns the vertex at index i.
func (p *PolygonShape) Vertex(i int) (Point, error) {
	if i < 0 || i >= len(p.vertices) {
		return Point{}, violation("Vertex", i, ErrIndexRange)
	}
	return p.vertices[i], nil
}

// SetVertex replaces the vertex at index i.
func (p *PolygonShape) SetVertex(i int, v Point) error {
	if i < 0 || i >= len(p.vertices) {
		return violation("SetVertex", i, ErrIndexRange)
	}
	p.vertices[i] = v
	p.repaint()
	return nil
}

// Vertices returns a copy of the vertices, relative to the location.
func (p *PolygonShape) Vertices() []Point { return slices.Clone(p.vertices) }

// VertexCount returns the number of vertices.
func (p *PolygonShape) VertexCount() int { return len(p.vertices) }

// ClearVertices removes every vertex and resets the current point.
func (p *PolygonShape) ClearVertices() {
	p.vertices = nil
	p.cursor = Point{}
	p.repaint()
}

// vertexBounds is the box of the vertices relative to the location.
func (p *PolygonShape) vertexBounds() Rect {
	if len(p.vertices) == 0 {
		return Rect{}
	}
	r := Rect{X: p.vertices[0].X, Y: p.vertices[0].Y}
	for _, v := range p.vertices[1:] {
		r = r.UnionPoint(v)
	}
	return r
}

// Bounds returns the box of the vertices, translated by the location.
func (p *PolygonShape) Bounds() Rect {
	return p.envelope(p.vertexBounds().Translate(p.x, p.y))
}

// Contains applies the even-odd rule. A closing vertex equal to the first
// is ignored.
func (p *PolygonShape) Contains(x, y float64) bool {
	q, ok := p.toLocal(x, y)
	if !ok {
		return false
	}
	return evenOdd(p.vertices, q.X-p.x, q.Y-p.y)
}

func evenOdd(ring []Point, x, y float64) bool {
	n := len(ring)
	if n > 1 && ring[0] == ring[n-1] {
		n--
	}
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[j], ring[i]
		if (a.Y > y) != (b.Y > y) && x-a.X < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y) {
			inside = !inside
		}
	}
	return inside
}

func (p *PolygonShape) Draw(s Surface) {
	st := p.style()
	pts := make([]Point, len(p.vertices))
	for i, v := range p.vertices {
		pts[i] = Point{X: v.X + p.x, Y: v.Y + p.y}
	}
	s.DrawPolygon(&st, pts)
}
