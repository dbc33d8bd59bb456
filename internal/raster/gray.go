package raster

import (
	"image"
	"image/color"
)

// IsGray reports whether the image is already a single-channel raster.
func IsGray(img image.Image) bool {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return true
	}
	return false
}

// ToGray converts an image to a single-channel luminance raster using
// ITU-R BT.601 weights (0.299*R + 0.587*G + 0.114*B).
//
// If the input is already an *image.Gray it is returned unchanged; the
// conversion never aliases pixels of a color input.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}

	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			lum := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			gray.SetGray(x, y, color.Gray{Y: uint8(lum + 0.5)})
		}
	}
	return gray
}

// GrayAt samples the luminance of a pixel from any image type.
func GrayAt(img image.Image, x, y int) uint8 {
	if g, ok := img.(*image.Gray); ok {
		return g.GrayAt(x, y).Y
	}
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8))
}
