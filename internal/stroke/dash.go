package stroke

import "math"

// Dash defines a dash pattern for stroking.
// A dash pattern consists of alternating dash and gap lengths.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	// An odd-length array is logically repeated ([5] becomes [5, 5]).
	Array []float64

	// Offset is the distance into the pattern at which the stroke begins.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Negative lengths are taken as their absolute value.
//
// Returns nil if no lengths are provided or all lengths are zero.
func NewDash(lengths ...float64) *Dash {
	normalized := make([]float64, len(lengths))
	positive := false
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
		if l != 0 {
			positive = true
		}
	}
	if !positive {
		return nil
	}
	return &Dash{Array: normalized}
}

// PatternLength returns the total length of one complete pattern cycle.
func (d *Dash) PatternLength() float64 {
	var total float64
	for _, l := range d.effectiveArray() {
		total += l
	}
	return total
}

// IsDashed reports whether d describes a broken line rather than a solid one.
func (d *Dash) IsDashed() bool {
	return d != nil && d.PatternLength() > 0
}

// effectiveArray returns the array with odd-length arrays duplicated.
func (d *Dash) effectiveArray() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}

// Apply splits the polyline pts into the runs the pattern leaves visible.
// A closed polyline includes the edge back to its first point. A nil or
// solid pattern returns the whole polyline as one run.
func (d *Dash) Apply(pts []Point, closed bool) [][]Point {
	if closed && len(pts) > 1 && pts[0] != pts[len(pts)-1] {
		pts = append(append([]Point(nil), pts...), pts[0])
	}
	if !d.IsDashed() || len(pts) < 2 {
		return [][]Point{pts}
	}
	arr := d.effectiveArray()
	period := d.PatternLength()

	// Find the pattern entry the offset falls into.
	idx := 0
	left := math.Mod(d.Offset, period)
	if left < 0 {
		left += period
	}
	for left >= arr[idx] {
		left -= arr[idx]
		idx = (idx + 1) % len(arr)
	}
	left = arr[idx] - left
	on := idx%2 == 0

	var runs [][]Point
	var cur []Point
	if on {
		cur = []Point{pts[0]}
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		seg := b.Sub(a)
		segLen := seg.Length()
		pos := 0.0
		for segLen-pos > left {
			pos += left
			p := a.Add(seg.Scale(pos / segLen))
			if on {
				cur = append(cur, p)
				runs = append(runs, cur)
				cur = nil
			} else {
				cur = []Point{p}
			}
			on = !on
			idx = (idx + 1) % len(arr)
			left = arr[idx]
		}
		left -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		runs = append(runs, cur)
	}
	return runs
}
