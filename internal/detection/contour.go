package detection

import (
	"image"
	"math"
)

// moore is the 8-connected Moore neighborhood in clockwise order
// starting from the west neighbor (image coordinates, Y down).
var moore = [8]image.Point{
	{-1, 0},  // W
	{-1, -1}, // NW
	{0, -1},  // N
	{1, -1},  // NE
	{1, 0},   // E
	{1, 1},   // SE
	{0, 1},   // S
	{-1, 1},  // SW
}

// mooreIndex maps a neighbor offset back to its position in the ring.
var mooreIndex = map[image.Point]int{
	{-1, 0}: 0, {-1, -1}: 1, {0, -1}: 2, {1, -1}: 3,
	{1, 0}: 4, {1, 1}: 5, {0, 1}: 6, {-1, 1}: 7,
}

// traceContours finds the connected components of a binary edge map and
// returns the outer boundary of each as an ordered, closed pixel
// polygon.
//
// Components are gathered with an iterative 8-connected flood fill; each
// one is then walked with Moore-neighbor boundary tracing from its
// topmost-leftmost pixel, so the returned points follow the component's
// outline in a consistent rotational order. Components smaller than 10
// pixels are discarded as noise.
func traceContours(edges [][]bool, width, height int) [][]image.Point {
	labels := make([][]int, height)
	for y := 0; y < height; y++ {
		labels[y] = make([]int, width)
	}

	var contours [][]image.Point
	next := 1

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !edges[y][x] || labels[y][x] != 0 {
				continue
			}
			size := floodLabel(edges, labels, x, y, width, height, next)
			if size >= 10 {
				// (x, y) is the topmost-leftmost pixel of this
				// component by scan order.
				contours = append(contours, traceBoundary(labels, next, x, y, width, height))
			}
			next++
		}
	}

	return contours
}

// floodLabel marks the 8-connected component containing (startX, startY)
// with the given label and returns its pixel count. Stack-based to avoid
// recursion depth limits on large contours.
func floodLabel(edges [][]bool, labels [][]int, startX, startY, width, height, label int) int {
	stack := []image.Point{{X: startX, Y: startY}}
	size := 0

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		if labels[p.Y][p.X] != 0 || !edges[p.Y][p.X] {
			continue
		}

		labels[p.Y][p.X] = label
		size++

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, image.Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}

	return size
}

// traceBoundary walks the outer boundary of a labeled component using
// Moore-neighbor tracing with a backtracking scan.
//
// The start pixel must be the component's topmost-leftmost pixel so the
// west neighbor is guaranteed background. The walk stops when it
// re-enters the start pixel from the initial backtrack direction
// (Jacob's stopping criterion), which prevents premature termination on
// boundaries that pass through the start pixel more than once.
func traceBoundary(labels [][]int, label, startX, startY, width, height int) []image.Point {
	inComp := func(x, y int) bool {
		return x >= 0 && x < width && y >= 0 && y < height && labels[y][x] == label
	}

	start := image.Point{X: startX, Y: startY}
	boundary := []image.Point{start}

	cur := start
	backIdx := 0 // backtrack is the west neighbor of the start pixel

	// Guards against a bookkeeping bug becoming an infinite loop.
	maxSteps := 4 * width * height

	for step := 0; step < maxSteps; step++ {
		found := -1
		for i := 1; i <= 8; i++ {
			idx := (backIdx + i) % 8
			n := cur.Add(moore[idx])
			if inComp(n.X, n.Y) {
				found = idx
				break
			}
		}
		if found == -1 {
			// Isolated pixel; closed trivially.
			return boundary
		}

		// New backtrack is the neighbor examined immediately before the
		// found pixel, expressed relative to the new current pixel.
		beforeIdx := (found + 7) % 8
		before := cur.Add(moore[beforeIdx])
		cur = cur.Add(moore[found])
		backIdx = mooreIndex[before.Sub(cur)]

		if cur == start && backIdx == 0 {
			return boundary
		}
		boundary = append(boundary, cur)
	}

	return boundary
}

// arcLength returns the perimeter of a closed pixel polygon.
func arcLength(pts []image.Point) float64 {
	if len(pts) < 2 {
		return 0
	}
	var length float64
	for i := range pts {
		j := (i + 1) % len(pts)
		dx := float64(pts[j].X - pts[i].X)
		dy := float64(pts[j].Y - pts[i].Y)
		length += math.Hypot(dx, dy)
	}
	return length
}

// polygonArea returns the enclosed area of a closed pixel polygon via
// the shoelace formula.
func polygonArea(pts []image.Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += float64(pts[i].X)*float64(pts[j].Y) - float64(pts[j].X)*float64(pts[i].Y)
	}
	return math.Abs(sum) / 2
}
