package warp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/abhi3114-glitch/SnapNote/internal/quad"
)

// projective is a 3x3 homography in row-major order with h[8] fixed to 1.
type projective [9]float64

// apply maps a point through the homography, dividing out the
// projective scale.
func (h projective) apply(x, y float64) (float64, float64) {
	w := h[6]*x + h[7]*y + h[8]
	return (h[0]*x + h[1]*y + h[2]) / w,
		(h[3]*x + h[4]*y + h[5]) / w
}

// homography computes the unique projective mapping sending the four
// src points to the four dst points, using the standard 8x8 linear
// system (the ninth coefficient is normalized to 1).
//
// Each correspondence (x,y) -> (u,v) contributes two rows:
//
//	u = (h0*x + h1*y + h2) / (h6*x + h7*y + 1)
//	v = (h3*x + h4*y + h5) / (h6*x + h7*y + 1)
//
// The system is solved with gonum's dense LU solver; a singular matrix
// (collinear points) is reported as an error.
func homography(src, dst quad.Quad) (projective, error) {
	a := mat.NewDense(8, 8, nil)
	b := mat.NewVecDense(8, nil)

	for i := 0; i < 4; i++ {
		x, y := src[i].X, src[i].Y
		u, v := dst[i].X, dst[i].Y

		a.SetRow(2*i, []float64{x, y, 1, 0, 0, 0, -x * u, -y * u})
		a.SetRow(2*i+1, []float64{0, 0, 0, x, y, 1, -x * v, -y * v})
		b.SetVec(2*i, u)
		b.SetVec(2*i+1, v)
	}

	var h mat.VecDense
	if err := h.SolveVec(a, b); err != nil {
		return projective{}, fmt.Errorf("projective system is singular: %w", err)
	}

	var p projective
	for i := 0; i < 8; i++ {
		p[i] = h.AtVec(i)
	}
	p[8] = 1
	return p, nil
}
