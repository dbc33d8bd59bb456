package quad

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate in the pixel space of a specific image.
type Point struct {
	X float64 `json:"x"` // Horizontal position (0 = leftmost)
	Y float64 `json:"y"` // Vertical position (0 = topmost)
}

// Dist returns the Euclidean distance to another point.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Quad is four corners of a simple quadrilateral, in no particular order.
type Quad [4]Point

// Order returns the corners in canonical order: top-left, top-right,
// bottom-right, bottom-left.
//
// The corner with the smallest coordinate sum (x+y) is the top-left and
// the largest sum is the bottom-right; of the remaining two, the smaller
// difference (y-x) picks the top-right and the larger picks the
// bottom-left. Any of the 24 input permutations produces the same
// assignment.
func (q Quad) Order() Quad {
	var out Quad

	sumMin, sumMax := 0, 0
	for i := 1; i < 4; i++ {
		if q[i].X+q[i].Y < q[sumMin].X+q[sumMin].Y {
			sumMin = i
		}
		if q[i].X+q[i].Y > q[sumMax].X+q[sumMax].Y {
			sumMax = i
		}
	}
	out[0] = q[sumMin] // top-left
	out[2] = q[sumMax] // bottom-right

	diffMin, diffMax := -1, -1
	for i := 0; i < 4; i++ {
		if i == sumMin || i == sumMax {
			continue
		}
		if diffMin == -1 || q[i].Y-q[i].X < q[diffMin].Y-q[diffMin].X {
			diffMin = i
		}
		if diffMax == -1 || q[i].Y-q[i].X > q[diffMax].Y-q[diffMax].X {
			diffMax = i
		}
	}
	out[1] = q[diffMin] // top-right: smallest y-x
	out[3] = q[diffMax] // bottom-left: largest y-x

	return out
}

// Scale returns the quad with every coordinate multiplied by s.
// Used to map corners found in a downscaled image back to full resolution.
func (q Quad) Scale(s float64) Quad {
	var out Quad
	for i, p := range q {
		out[i] = Point{X: p.X * s, Y: p.Y * s}
	}
	return out
}

// Area returns the enclosed area of the quad via the shoelace formula.
// The result is independent of corner order up to sign; the absolute
// value is returned.
func (q Quad) Area() float64 {
	o := q.Order()
	var sum float64
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		sum += o[i].X*o[j].Y - o[j].X*o[i].Y
	}
	return math.Abs(sum) / 2
}

func (q Quad) String() string {
	o := q.Order()
	return fmt.Sprintf("tl(%.1f,%.1f) tr(%.1f,%.1f) br(%.1f,%.1f) bl(%.1f,%.1f)",
		o[0].X, o[0].Y, o[1].X, o[1].Y, o[2].X, o[2].Y, o[3].X, o[3].Y)
}
