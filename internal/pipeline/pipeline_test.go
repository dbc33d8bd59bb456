package pipeline

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/abhi3114-glitch/SnapNote/internal/enhance"
	"github.com/abhi3114-glitch/SnapNote/internal/raster"
)

func TestProcessRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
	}{
		{"nil image", nil},
		{"zero width", image.NewRGBA(image.Rect(0, 0, 0, 100))},
		{"zero height", image.NewRGBA(image.Rect(0, 0, 100, 0))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Process(tt.img, Options{})
			if !errors.Is(err, ErrUnsupportedInput) {
				t.Errorf("error = %v, want ErrUnsupportedInput", err)
			}
		})
	}
}

func TestProcessWithoutAutoCrop(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			img.SetRGBA(x, y, color.RGBA{120, 130, 140, 255})
		}
	}
	res, err := Process(img, Options{Mode: enhance.Grayscale})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if res.Cropped {
		t.Error("Cropped = true without auto-crop")
	}
	if !raster.IsGray(res.Image) {
		t.Errorf("output type %T, want grayscale", res.Image)
	}
}

func TestProcessAutoCropFallback(t *testing.T) {
	// Uniform frame: detection finds nothing, pipeline must fall back
	// to enhancing the full image rather than failing.
	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			img.SetRGBA(x, y, color.RGBA{90, 90, 90, 255})
		}
	}
	withCrop, err := Process(img, Options{AutoCrop: true, Mode: enhance.Grayscale})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if withCrop.Cropped {
		t.Error("Cropped = true on a frame with no document")
	}
	withoutCrop, err := Process(img, Options{Mode: enhance.Grayscale})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	a := withCrop.Image.(*image.Gray)
	b := withoutCrop.Image.(*image.Gray)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("fallback output differs from plain enhancement")
	}
}

// documentPhoto builds a synthetic photo: a dark table with a bright
// page rotated by the given angle around the frame center.
func documentPhoto(frameW, frameH, pageW, pageH int, angle float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frameW, frameH))
	for y := 0; y < frameH; y++ {
		for x := 0; x < frameW; x++ {
			img.SetRGBA(x, y, color.RGBA{45, 40, 38, 255})
		}
	}
	cx, cy := float64(frameW)/2, float64(frameH)/2
	sin, cos := math.Sin(-angle), math.Cos(-angle)
	halfW, halfH := float64(pageW)/2, float64(pageH)/2
	for y := 0; y < frameH; y++ {
		for x := 0; x < frameW; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			rx := dx*cos - dy*sin
			ry := dx*sin + dy*cos
			if rx >= -halfW && rx <= halfW && ry >= -halfH && ry <= halfH {
				img.SetRGBA(x, y, color.RGBA{245, 242, 235, 255})
			}
		}
	}
	return img
}

func TestProcessEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full pipeline run in short mode")
	}
	img := documentPhoto(1200, 1600, 1000, 1400, 5*math.Pi/180)
	res, err := Process(img, Options{AutoCrop: true, Mode: enhance.Scan})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if !res.Cropped {
		t.Fatal("document was not detected")
	}
	out, ok := res.Image.(*image.Gray)
	if !ok {
		t.Fatalf("output type %T, want *image.Gray", res.Image)
	}
	b := out.Bounds()
	if abs(b.Dx()-1000) > 12 || abs(b.Dy()-1400) > 12 {
		t.Errorf("rectified size %dx%d, want close to 1000x1400", b.Dx(), b.Dy())
	}
	white := 0
	for _, p := range out.Pix {
		if p == 255 {
			white++
		}
	}
	if frac := float64(white) / float64(len(out.Pix)); frac < 0.95 {
		t.Errorf("white fraction %.3f, want >= 0.95 for a blank page", frac)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
