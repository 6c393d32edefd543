package sg

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
// With y pointing down, positive angles turn clockwise on screen.
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// RotateDegrees creates a rotation of theta degrees counter-clockwise
// as seen on screen, matching the angle convention of arcs.
func RotateDegrees(theta float64) Matrix {
	return Rotate(-theta * math.Pi / 180)
}

// Multiply multiplies two matrices (m * other).
// The result applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// About returns m applied around the pivot (px, py) instead of the origin.
func (m Matrix) About(px, py float64) Matrix {
	return Translate(px, py).Multiply(m).Multiply(Translate(-px, -py))
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformRect returns the axis-aligned envelope of the transformed corners of r.
func (m Matrix) TransformRect(r Rect) Rect {
	if m.IsIdentity() {
		return r
	}
	c := r.Corners()
	p := m.TransformPoint(c[0])
	out := Rect{X: p.X, Y: p.Y}
	for _, q := range c[1:] {
		out = out.UnionPoint(m.TransformPoint(q))
	}
	return out
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse matrix.
// The second result is false, and the identity is returned,
// if the matrix is not invertible.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if math.Abs(det) < 1e-10 {
		return Identity(), false
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, true
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// MaxScale returns the largest factor by which the matrix stretches a
// unit vector. Stroke widths and dash lengths scale by this factor.
func (m Matrix) MaxScale() float64 {
	// Singular values of the 2x2 linear part.
	a := m.A*m.A + m.D*m.D
	b := m.A*m.B + m.D*m.E
	c := m.B*m.B + m.E*m.E
	t := (a + c) / 2
	d := math.Sqrt(((a-c)/2)*((a-c)/2) + b*b)
	return math.Sqrt(t + d)
}
