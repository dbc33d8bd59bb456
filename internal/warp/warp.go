package warp

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/abhi3114-glitch/SnapNote/internal/quad"
)

// DegenerateQuadError reports a quadrilateral whose geometry cannot be
// rectified: a computed output dimension of zero or a singular
// projective mapping. Processing of the current image stops; the caller
// should suggest retrying with auto-crop disabled.
type DegenerateQuadError struct {
	Width  int
	Height int
	Quad   quad.Quad
}

func (e *DegenerateQuadError) Error() string {
	return fmt.Sprintf("degenerate quadrilateral: %dx%d output from %v", e.Width, e.Height, e.Quad)
}

// Rectify produces a perspective-corrected, top-down view of the region
// of img bounded by q.
//
// The corners of q may be in any order; they are canonicalized with the
// sum/difference rule (quad.Order) before the mapping is computed, so
// the output orientation is deterministic. Sample positions that fall
// outside the source bounds produce black border fill.
//
// Rectify is deterministic: the same image and quadrilateral always
// produce byte-identical output.
func Rectify(img image.Image, q quad.Quad) (*image.NRGBA, error) {
	o := q.Order()
	tl, tr, br, bl := o[0], o[1], o[2], o[3]

	width := int(maxf(br.Dist(bl), tr.Dist(tl)))
	height := int(maxf(tr.Dist(br), tl.Dist(bl)))
	if width <= 0 || height <= 0 {
		return nil, &DegenerateQuadError{Width: width, Height: height, Quad: q}
	}

	dst := quad.Quad{
		{X: 0, Y: 0},
		{X: float64(width - 1), Y: 0},
		{X: float64(width - 1), Y: float64(height - 1)},
		{X: 0, Y: float64(height - 1)},
	}

	// Mapping from output pixels back to source positions, so every
	// output pixel gets exactly one sample.
	h, err := homography(dst, o)
	if err != nil {
		return nil, &DegenerateQuadError{Width: width, Height: height, Quad: q}
	}

	// Clone normalizes any source representation to NRGBA so sampling
	// can read the pixel buffer directly.
	src := imaging.Clone(img)
	srcW := src.Bounds().Dx()
	srcH := src.Bounds().Dy()

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sx, sy := h.apply(float64(x), float64(y))
			r, g, b, a := sampleBilinear(src, srcW, srcH, sx, sy)
			i := out.PixOffset(x, y)
			out.Pix[i+0] = r
			out.Pix[i+1] = g
			out.Pix[i+2] = b
			out.Pix[i+3] = a
		}
	}

	return out, nil
}

// sampleBilinear reads an interpolated pixel at a fractional source
// position. Positions outside the image contribute black, so samples
// near the border fade rather than fault.
func sampleBilinear(src *image.NRGBA, srcW, srcH int, x, y float64) (r, g, b, a uint8) {
	x0 := int(floor(x))
	y0 := int(floor(y))
	fx := x - float64(x0)
	fy := y - float64(y0)

	var acc [4]float64
	for dy := 0; dy <= 1; dy++ {
		for dx := 0; dx <= 1; dx++ {
			px := x0 + dx
			py := y0 + dy
			if px < 0 || px >= srcW || py < 0 || py >= srcH {
				continue // border fill: contributes zero
			}
			wx := 1 - fx
			if dx == 1 {
				wx = fx
			}
			wy := 1 - fy
			if dy == 1 {
				wy = fy
			}
			w := wx * wy
			i := src.PixOffset(px, py)
			acc[0] += w * float64(src.Pix[i+0])
			acc[1] += w * float64(src.Pix[i+1])
			acc[2] += w * float64(src.Pix[i+2])
			acc[3] += w * float64(src.Pix[i+3])
		}
	}

	return uint8(acc[0] + 0.5), uint8(acc[1] + 0.5), uint8(acc[2] + 0.5), uint8(acc[3] + 0.5)
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func floor(v float64) float64 {
	f := float64(int(v))
	if v < 0 && f != v {
		f--
	}
	return f
}
