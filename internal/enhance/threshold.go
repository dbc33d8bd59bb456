package enhance

import (
	"image"
	"math"
)

const (
	thresholdBlock = 11
	thresholdC     = 2.0
)

// adaptiveThreshold binarizes a grayscale image against a local
// Gaussian-weighted mean. A pixel becomes white when it exceeds the
// weighted mean of its block x block neighborhood minus the constant
// c, and black otherwise. Thresholding locally rather than globally
// keeps text legible under uneven lighting, where one side of a page
// photographs darker than the other.
func adaptiveThreshold(src *image.Gray, block int, c float64) *image.Gray {
	b := src.Bounds()
	width, height := b.Dx(), b.Dy()
	out := image.NewGray(image.Rect(0, 0, width, height))
	radius := block / 2

	kernel := gaussianKernel(block)

	// Separable Gaussian mean: horizontal pass into a float buffer,
	// vertical pass during thresholding. Borders replicate the edge
	// pixel so the weights always sum to one.
	tmp := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float64
			for k := -radius; k <= radius; k++ {
				sx := x + k
				if sx < 0 {
					sx = 0
				} else if sx >= width {
					sx = width - 1
				}
				sum += kernel[k+radius] * float64(src.Pix[y*src.Stride+sx])
			}
			tmp[y*width+x] = sum
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var mean float64
			for k := -radius; k <= radius; k++ {
				sy := y + k
				if sy < 0 {
					sy = 0
				} else if sy >= height {
					sy = height - 1
				}
				mean += kernel[k+radius] * tmp[sy*width+x]
			}
			if float64(src.Pix[y*src.Stride+x]) > mean-c {
				out.Pix[y*out.Stride+x] = 255
			}
		}
	}
	return out
}

// gaussianKernel returns a normalized 1D Gaussian of the given odd
// size, with sigma derived from the size the same way OpenCV derives
// it for getGaussianKernel: 0.3*((size-1)*0.5 - 1) + 0.8.
func gaussianKernel(size int) []float64 {
	sigma := 0.3*(float64(size-1)*0.5-1) + 0.8
	radius := size / 2
	kernel := make([]float64, size)
	var sum float64
	for i := -radius; i <= radius; i++ {
		v := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		kernel[i+radius] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}
