package detection

import (
	"errors"
	"image"
	"sort"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"

	"github.com/abhi3114-glitch/SnapNote/internal/quad"
)

// ErrNoQuadrilateral reports that no acceptable document boundary was
// found. It is an expected outcome, not a fault; callers fall back to
// the unmodified photo.
var ErrNoQuadrilateral = errors.New("no document quadrilateral found")

const (
	// maxDetectHeight bounds detection cost: taller photos are
	// downscaled to this height and accepted corners rescaled back.
	maxDetectHeight = 1000

	// minAreaFraction is the smallest share of the full image a
	// quadrilateral may cover and still count as the document.
	minAreaFraction = 0.20

	// maxCandidates caps how many of the largest contours are inspected
	// per threshold pass. The document boundary is expected to be among
	// the largest; searching deeper mostly finds background clutter.
	maxCandidates = 10

	// approxTolerance scales polygon simplification with contour size:
	// epsilon is this fraction of the contour's closed arc length.
	approxTolerance = 0.02
)

// cannyThresholds are the low/high hysteresis pairs tried per photo,
// loosest first. Overexposed documents need the loose pair, low-contrast
// clutter is rejected by the strict ones.
var cannyThresholds = [][2]int{
	{30, 100},
	{50, 150},
	{75, 200},
}

// Locate finds the quadrilateral boundary of a document in a photo.
//
// The returned corners are unordered and expressed in the coordinate
// space of the full-resolution input. When no contour passes the
// acceptance policy under any edge threshold, ErrNoQuadrilateral is
// returned.
//
// See the package documentation for the full algorithm.
func Locate(img image.Image) (quad.Quad, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width < 2 || height < 2 {
		return quad.Quad{}, ErrNoQuadrilateral
	}

	minArea := minAreaFraction * float64(width) * float64(height)

	scale := 1.0
	proc := img
	if height > maxDetectHeight {
		scale = float64(maxDetectHeight) / float64(height)
		proc = imaging.Resize(img, int(float64(width)*scale), maxDetectHeight, imaging.Lanczos)
	}

	// 5x5 smoothing before edge detection; fragmented edges from sensor
	// noise are worse than slightly softer corners.
	smoothed := blur.Gaussian(proc, 2)
	gray, procW, procH := grayMatrix(smoothed)

	for _, th := range cannyThresholds {
		edges := cannyEdges(gray, procW, procH, th[0], th[1])

		// One dilation step with a 3x3 structuring element bridges small
		// breaks so the boundary forms a single connected contour.
		dilated := effect.Dilate(edges, 1)
		grid := edgeGrid(dilated, procW, procH)

		contours := traceContours(grid, procW, procH)
		sort.Slice(contours, func(i, j int) bool {
			return polygonArea(contours[i]) > polygonArea(contours[j])
		})
		if len(contours) > maxCandidates {
			contours = contours[:maxCandidates]
		}

		for _, contour := range contours {
			peri := arcLength(contour)
			approx := approxPolygon(contour, approxTolerance*peri)
			if len(approx) != 4 {
				continue
			}

			q := quad.Quad{
				{X: float64(approx[0].X), Y: float64(approx[0].Y)},
				{X: float64(approx[1].X), Y: float64(approx[1].Y)},
				{X: float64(approx[2].X), Y: float64(approx[2].Y)},
				{X: float64(approx[3].X), Y: float64(approx[3].Y)},
			}

			// Area is measured in the downscaled space, so the policy
			// threshold is shrunk by scale squared.
			if q.Area() >= minArea*scale*scale {
				return q.Scale(1 / scale), nil
			}
		}
	}

	return quad.Quad{}, ErrNoQuadrilateral
}

// edgeGrid converts a dilated edge image back to a boolean grid.
// Dilation runs through bild and returns RGBA; any channel past half
// intensity counts as an edge pixel.
func edgeGrid(img image.Image, width, height int) [][]bool {
	grid := make([][]bool, height)
	for y := 0; y < height; y++ {
		grid[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			grid[y][x] = r>>8 >= 128
		}
	}
	return grid
}
