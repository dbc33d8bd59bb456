package enhance

import "image"

const (
	claheClipLimit = 3.0
	claheTiles     = 8
)

// equalizeAdaptive performs contrast-limited adaptive histogram
// equalization on a grayscale image.
//
// # Algorithm
//
// The image is divided into a tiles x tiles grid. Each tile gets its
// own 256-bin histogram, clipped at limit = max(1, clip*tileArea/256);
// the clipped excess is redistributed evenly across all bins so the
// tile's mass is preserved. The clipped histogram's CDF becomes the
// tile's tone-mapping LUT. Output pixels are then computed by
// bilinearly interpolating between the LUTs of the four surrounding
// tile centers, which removes the blocking artifacts a per-tile
// mapping would produce. Border pixels outside the outermost tile
// centers clamp to the nearest tile.
func equalizeAdaptive(src *image.Gray, clip float64, tiles int) *image.Gray {
	b := src.Bounds()
	width, height := b.Dx(), b.Dy()
	out := image.NewGray(image.Rect(0, 0, width, height))
	if width == 0 || height == 0 {
		return out
	}
	if tiles < 1 {
		tiles = 1
	}

	tileW := (width + tiles - 1) / tiles
	tileH := (height + tiles - 1) / tiles

	// Per-tile clipped-histogram LUTs.
	luts := make([][256]uint8, tiles*tiles)
	for ty := 0; ty < tiles; ty++ {
		for tx := 0; tx < tiles; tx++ {
			x0, y0 := tx*tileW, ty*tileH
			x1, y1 := min(x0+tileW, width), min(y0+tileH, height)
			luts[ty*tiles+tx] = tileLUT(src, b, x0, y0, x1, y1, clip)
		}
	}

	for y := 0; y < height; y++ {
		// Position within the tile-center grid.
		fy := float64(y)/float64(tileH) - 0.5
		ty0 := int(fy)
		if fy < 0 {
			fy, ty0 = 0, 0
		}
		wy := fy - float64(ty0)
		ty1 := min(ty0+1, tiles-1)

		for x := 0; x < width; x++ {
			fx := float64(x)/float64(tileW) - 0.5
			tx0 := int(fx)
			if fx < 0 {
				fx, tx0 = 0, 0
			}
			wx := fx - float64(tx0)
			tx1 := min(tx0+1, tiles-1)

			v := src.GrayAt(b.Min.X+x, b.Min.Y+y).Y
			tl := float64(luts[ty0*tiles+tx0][v])
			tr := float64(luts[ty0*tiles+tx1][v])
			bl := float64(luts[ty1*tiles+tx0][v])
			br := float64(luts[ty1*tiles+tx1][v])

			top := tl + (tr-tl)*wx
			bot := bl + (br-bl)*wx
			out.Pix[y*out.Stride+x] = uint8(top + (bot-top)*wy + 0.5)
		}
	}
	return out
}

// tileLUT builds the clipped-histogram equalization LUT for one tile.
func tileLUT(src *image.Gray, b image.Rectangle, x0, y0, x1, y1 int, clip float64) [256]uint8 {
	var hist [256]int
	area := (x1 - x0) * (y1 - y0)
	var lut [256]uint8
	if area == 0 {
		for i := range lut {
			lut[i] = uint8(i)
		}
		return lut
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			hist[src.GrayAt(b.Min.X+x, b.Min.Y+y).Y]++
		}
	}

	limit := int(clip * float64(area) / 256)
	if limit < 1 {
		limit = 1
	}
	excess := 0
	for i, c := range hist {
		if c > limit {
			excess += c - limit
			hist[i] = limit
		}
	}
	// Redistribute clipped mass evenly; the remainder goes to the
	// low bins one count each.
	share := excess / 256
	rem := excess % 256
	for i := range hist {
		hist[i] += share
		if i < rem {
			hist[i]++
		}
	}

	scale := 255.0 / float64(area)
	cum := 0
	for i, c := range hist {
		cum += c
		lut[i] = uint8(float64(cum)*scale + 0.5)
	}
	return lut
}
