package detection

import (
	"image"
	"image/color"
	"image/draw"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/abhi3114-glitch/SnapNote/internal/quad"
)

// Overlay renders a detected quadrilateral onto a copy of the photo for
// visual inspection: the boundary is drawn in green and each corner gets
// a distinctly-hued marker in canonical order (top-left, top-right,
// bottom-right, bottom-left), so orientation mistakes are visible at a
// glance.
func Overlay(img image.Image, q quad.Quad) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)

	o := q.Order()

	edgeColor := color.RGBA{R: 0, G: 255, B: 0, A: 255}
	for i := 0; i < 4; i++ {
		a := o[i]
		b := o[(i+1)%4]
		drawLine(out,
			bounds.Min.X+int(a.X+0.5), bounds.Min.Y+int(a.Y+0.5),
			bounds.Min.X+int(b.X+0.5), bounds.Min.Y+int(b.Y+0.5),
			edgeColor)
	}

	// Evenly spaced hues; the marker size scales with the image so it
	// stays visible on large photos.
	radius := max(3, bounds.Dx()/200)
	for i, p := range o {
		hue := float64(i) * 90.0
		c := colorful.Hsv(hue, 0.9, 0.9)
		r8, g8, b8 := c.RGB255()
		drawMarker(out,
			bounds.Min.X+int(p.X+0.5), bounds.Min.Y+int(p.Y+0.5),
			radius, color.RGBA{R: r8, G: g8, B: b8, A: 255})
	}

	return out
}

// drawLine draws a 1px line segment using Bresenham's algorithm.
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, c color.RGBA) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	x, y := x1, y1
	for {
		if image.Pt(x, y).In(img.Bounds()) {
			img.SetRGBA(x, y, c)
		}
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// drawMarker fills a small disc centered at (cx, cy).
func drawMarker(img *image.RGBA, cx, cy, radius int, c color.RGBA) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			p := image.Pt(cx+dx, cy+dy)
			if p.In(img.Bounds()) {
				img.SetRGBA(p.X, p.Y, c)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
