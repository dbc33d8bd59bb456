package enhance

import (
	"image"
	"math"
)

const (
	bilateralDiameter   = 9
	bilateralSigmaColor = 75.0
	bilateralSigmaSpace = 75.0
)

// bilateralFilter smooths a grayscale image while preserving edges.
// Each output pixel is a weighted average over a diameter-wide window
// where the weight combines spatial distance and intensity difference:
// neighbors on the far side of a strong edge contribute almost
// nothing, so glyph boundaries survive while flat regions denoise.
func bilateralFilter(src *image.Gray, diameter int, sigmaColor, sigmaSpace float64) *image.Gray {
	b := src.Bounds()
	width, height := b.Dx(), b.Dy()
	out := image.NewGray(image.Rect(0, 0, width, height))
	radius := diameter / 2

	// Precompute the spatial kernel and an intensity-difference LUT;
	// both depend only on offsets, not pixel position.
	spatial := make([]float64, diameter*diameter)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d2 := float64(dx*dx + dy*dy)
			spatial[(dy+radius)*diameter+(dx+radius)] =
				math.Exp(-d2 / (2 * sigmaSpace * sigmaSpace))
		}
	}
	var rangeLUT [256]float64
	for d := 0; d < 256; d++ {
		rangeLUT[d] = math.Exp(-float64(d*d) / (2 * sigmaColor * sigmaColor))
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			center := src.Pix[y*src.Stride+x]
			var sum, weight float64
			for dy := -radius; dy <= radius; dy++ {
				ny := y + dy
				if ny < 0 || ny >= height {
					continue
				}
				for dx := -radius; dx <= radius; dx++ {
					nx := x + dx
					if nx < 0 || nx >= width {
						continue
					}
					v := src.Pix[ny*src.Stride+nx]
					diff := int(v) - int(center)
					if diff < 0 {
						diff = -diff
					}
					w := spatial[(dy+radius)*diameter+(dx+radius)] * rangeLUT[diff]
					sum += w * float64(v)
					weight += w
				}
			}
			out.Pix[y*out.Stride+x] = uint8(sum/weight + 0.5)
		}
	}
	return out
}
