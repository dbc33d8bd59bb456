// Package detection locates the quadrilateral boundary of a paper
// document in a photograph.
//
// The entry point is Locate, which returns the four corners of the most
// plausible document boundary, or ErrNoQuadrilateral when the photo does
// not contain one it is willing to accept.
//
// # Algorithm Overview
//
// Detection follows a contour-analysis pipeline:
//
//  1. Downscale: photos taller than 1000 px are resized so detection
//     cost is bounded; accepted corners are rescaled afterwards.
//  2. Grayscale + blur: luminance conversion and a 5x5 Gaussian smooth
//     to suppress sensor noise that would fragment edges.
//  3. Edge detection: Canny (Sobel gradients, non-maximum suppression,
//     hysteresis) followed by a one-step 3x3 dilation that bridges small
//     gaps so a boundary broken by texture or shadow still forms one
//     connected contour.
//  4. Contour extraction: connected edge components are traced into
//     ordered boundary polygons and ranked by enclosed area; only the
//     ten largest are inspected.
//  5. Polygon approximation: each candidate boundary is simplified with
//     a tolerance of 2% of its closed arc length, so small and large
//     documents are approximated equally robustly.
//  6. Acceptance: the first simplified polygon with exactly four
//     vertices covering at least 20% of the full-resolution image area
//     wins. Smaller rectangles (windows, tiles, cards) are rejected.
//
// A single fixed edge threshold is not robust across lighting
// conditions, so steps 3-6 are retried over three Canny threshold pairs
// from loose to strict. Only when every pass fails is
// ErrNoQuadrilateral returned.
//
// # Failure Semantics
//
// ErrNoQuadrilateral is an expected, common outcome (cluttered
// background, no contrasting edges), not a fault. Callers fall back to
// the unmodified photo.
package detection
