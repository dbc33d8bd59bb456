package warp

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/abhi3114-glitch/SnapNote/internal/quad"
)

// fillImage creates a uniformly colored RGBA image.
func fillImage(width, height int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestRectifyOutputDimensions(t *testing.T) {
	tests := []struct {
		name       string
		q          quad.Quad
		wantWidth  int
		wantHeight int
	}{
		{
			name: "axis aligned rectangle",
			q: quad.Quad{
				{X: 10, Y: 20}, {X: 210, Y: 20},
				{X: 210, Y: 320}, {X: 10, Y: 320},
			},
			wantWidth:  200,
			wantHeight: 300,
		},
		{
			name: "trapezoid takes longer opposing edge",
			q: quad.Quad{
				{X: 50, Y: 0}, {X: 150, Y: 0},
				{X: 200, Y: 100}, {X: 0, Y: 100},
			},
			wantWidth:  200,
			wantHeight: 111, // hypot(50, 100) truncated
		},
	}

	img := fillImage(400, 400, color.RGBA{200, 200, 200, 255})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Rectify(img, tt.q)
			if err != nil {
				t.Fatalf("Rectify returned error: %v", err)
			}
			if got := out.Bounds().Dx(); got != tt.wantWidth {
				t.Errorf("width = %d, want %d", got, tt.wantWidth)
			}
			if got := out.Bounds().Dy(); got != tt.wantHeight {
				t.Errorf("height = %d, want %d", got, tt.wantHeight)
			}
		})
	}
}

func TestRectifyIdentityOnAxisAlignedCrop(t *testing.T) {
	// A solid inner rectangle on a dark background: rectifying its
	// exact corners should yield an output that is entirely the fill
	// color, since no background pixels fall inside the quad.
	img := fillImage(300, 300, color.RGBA{10, 10, 10, 255})
	fill := color.RGBA{230, 220, 200, 255}
	for y := 50; y < 250; y++ {
		for x := 80; x < 220; x++ {
			img.SetRGBA(x, y, fill)
		}
	}

	q := quad.Quad{
		{X: 80, Y: 50}, {X: 219, Y: 50},
		{X: 219, Y: 249}, {X: 80, Y: 249},
	}
	out, err := Rectify(img, q)
	if err != nil {
		t.Fatalf("Rectify returned error: %v", err)
	}

	// Sample the interior; edge pixels may blend with the border.
	b := out.Bounds()
	for _, pt := range []image.Point{
		{b.Dx() / 2, b.Dy() / 2},
		{2, 2},
		{b.Dx() - 3, b.Dy() - 3},
		{2, b.Dy() - 3},
	} {
		r, g, bl, _ := out.At(pt.X, pt.Y).RGBA()
		if r>>8 < 200 || g>>8 < 190 || bl>>8 < 170 {
			t.Errorf("pixel (%d,%d) = (%d,%d,%d), expected fill color",
				pt.X, pt.Y, r>>8, g>>8, bl>>8)
		}
	}
}

func TestRectifyCornerMapping(t *testing.T) {
	// Mark each source corner region with a distinct color and check
	// the rectified corners pick up the right one.
	img := fillImage(400, 400, color.RGBA{128, 128, 128, 255})
	marks := []struct {
		at image.Point
		c  color.RGBA
	}{
		{image.Point{60, 40}, color.RGBA{255, 0, 0, 255}},   // top-left
		{image.Point{340, 60}, color.RGBA{0, 255, 0, 255}},  // top-right
		{image.Point{360, 350}, color.RGBA{0, 0, 255, 255}}, // bottom-right
		{image.Point{40, 330}, color.RGBA{255, 255, 0, 255}},
	}
	for _, m := range marks {
		for dy := -6; dy <= 6; dy++ {
			for dx := -6; dx <= 6; dx++ {
				img.SetRGBA(m.at.X+dx, m.at.Y+dy, m.c)
			}
		}
	}

	q := quad.Quad{
		{X: 60, Y: 40}, {X: 340, Y: 60},
		{X: 360, Y: 350}, {X: 40, Y: 330},
	}
	out, err := Rectify(img, q)
	if err != nil {
		t.Fatalf("Rectify returned error: %v", err)
	}

	b := out.Bounds()
	corners := []image.Point{
		{1, 1},
		{b.Dx() - 2, 1},
		{b.Dx() - 2, b.Dy() - 2},
		{1, b.Dy() - 2},
	}
	for i, pt := range corners {
		r, g, bl, _ := out.At(pt.X, pt.Y).RGBA()
		got := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8), 255}
		want := marks[i].c
		if !closeChannel(got.R, want.R) || !closeChannel(got.G, want.G) || !closeChannel(got.B, want.B) {
			t.Errorf("corner %d = %v, want approximately %v", i, got, want)
		}
	}
}

func closeChannel(got, want uint8) bool {
	d := int(got) - int(want)
	if d < 0 {
		d = -d
	}
	return d <= 40
}

func TestRectifyDeterministic(t *testing.T) {
	img := fillImage(200, 200, color.RGBA{60, 90, 120, 255})
	for y := 30; y < 170; y += 7 {
		for x := 20; x < 180; x += 5 {
			img.SetRGBA(x, y, color.RGBA{250, 240, 230, 255})
		}
	}
	q := quad.Quad{
		{X: 20, Y: 30}, {X: 180, Y: 35},
		{X: 175, Y: 170}, {X: 25, Y: 165},
	}

	first, err := Rectify(img, q)
	if err != nil {
		t.Fatalf("Rectify returned error: %v", err)
	}
	second, err := Rectify(img, q)
	if err != nil {
		t.Fatalf("Rectify returned error on repeat: %v", err)
	}
	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("repeated rectification produced different pixel data")
	}
}

func TestRectifyDegenerateQuad(t *testing.T) {
	img := fillImage(100, 100, color.RGBA{255, 255, 255, 255})
	tests := []struct {
		name string
		q    quad.Quad
	}{
		{
			name: "all corners coincident",
			q: quad.Quad{
				{X: 50, Y: 50}, {X: 50, Y: 50},
				{X: 50, Y: 50}, {X: 50, Y: 50},
			},
		},
		{
			name: "collinear corners",
			q: quad.Quad{
				{X: 10, Y: 10}, {X: 40, Y: 40},
				{X: 70, Y: 70}, {X: 90, Y: 90},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Rectify(img, tt.q)
			if err == nil {
				t.Fatal("expected error for degenerate quadrilateral")
			}
			var degErr *DegenerateQuadError
			if !errors.As(err, &degErr) {
				t.Errorf("error type = %T, want *DegenerateQuadError", err)
			}
		})
	}
}

func TestHomographyRoundTrip(t *testing.T) {
	src := quad.Quad{
		{X: 0, Y: 0}, {X: 199, Y: 0},
		{X: 199, Y: 299}, {X: 0, Y: 299},
	}
	dst := quad.Quad{
		{X: 30, Y: 20}, {X: 410, Y: 55},
		{X: 395, Y: 520}, {X: 15, Y: 490},
	}
	h, err := homography(src, dst)
	if err != nil {
		t.Fatalf("homography returned error: %v", err)
	}
	for i := 0; i < 4; i++ {
		gx, gy := h.apply(src[i].X, src[i].Y)
		if math.Abs(gx-dst[i].X) > 1e-6 || math.Abs(gy-dst[i].Y) > 1e-6 {
			t.Errorf("corner %d maps to (%.4f, %.4f), want (%.1f, %.1f)",
				i, gx, gy, dst[i].X, dst[i].Y)
		}
	}
}
