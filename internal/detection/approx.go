package detection

import (
	"image"
	"math"
)

// approxPolygon simplifies a closed pixel polygon with the
// Ramer-Douglas-Peucker algorithm.
//
// The tolerance epsilon is an absolute distance in pixels; callers
// derive it from the contour's arc length so simplification scales with
// contour size. The closed curve is split at its two most distant
// points and each open arc is simplified independently, then the halves
// are rejoined.
func approxPolygon(pts []image.Point, epsilon float64) []image.Point {
	if len(pts) < 3 {
		return pts
	}

	// Split the ring at the two points farthest apart so RDP sees two
	// open arcs with stable anchor points.
	far := farthestFrom(pts, 0)

	arcA := pts[:far+1]
	arcB := append(append([]image.Point{}, pts[far:]...), pts[0])

	simpleA := rdp(arcA, epsilon)
	simpleB := rdp(arcB, epsilon)

	// Join, dropping the duplicated split points.
	out := append([]image.Point{}, simpleA...)
	if len(simpleB) > 2 {
		out = append(out, simpleB[1:len(simpleB)-1]...)
	}
	return out
}

// farthestFrom returns the index of the point with maximum Euclidean
// distance from pts[from].
func farthestFrom(pts []image.Point, from int) int {
	best, bestDist := from, 0.0
	for i, p := range pts {
		dx := float64(p.X - pts[from].X)
		dy := float64(p.Y - pts[from].Y)
		if d := dx*dx + dy*dy; d > bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// rdp simplifies an open polyline, keeping both endpoints.
func rdp(pts []image.Point, epsilon float64) []image.Point {
	if len(pts) < 3 {
		return pts
	}

	first, last := pts[0], pts[len(pts)-1]
	maxDist, maxIdx := 0.0, 0
	for i := 1; i < len(pts)-1; i++ {
		if d := lineDistance(pts[i], first, last); d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}

	if maxDist <= epsilon {
		return []image.Point{first, last}
	}

	left := rdp(pts[:maxIdx+1], epsilon)
	right := rdp(pts[maxIdx:], epsilon)
	return append(left[:len(left)-1], right...)
}

// lineDistance returns the perpendicular distance from p to the line
// through a and b. Falls back to point distance when a == b.
func lineDistance(p, a, b image.Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return math.Hypot(float64(p.X-a.X), float64(p.Y-a.Y))
	}
	return math.Abs(dy*float64(p.X-a.X)-dx*float64(p.Y-a.Y)) / length
}
