// Package quad defines the quadrilateral geometry shared by the document
// locator and the perspective rectifier.
//
// A Quad is a set of four floating-point corners in the pixel space of a
// specific image. Corners arrive from detection in arbitrary order; Order
// assigns them a canonical top-left, top-right, bottom-right, bottom-left
// orientation using the coordinate sum/difference rule:
//
//   - top-left: minimum x+y
//   - bottom-right: maximum x+y
//   - top-right: minimum y-x
//   - bottom-left: maximum y-x
//
// The rule is invariant under any permutation of the input corners and
// determines the orientation of the rectified output, so it must not be
// replaced by a different corner-sorting scheme.
//
// # Coordinate System
//
// Points use the standard image convention: origin at top-left, X
// increases rightward, Y increases downward. Coordinates are only
// meaningful relative to the image they were measured in; scale with
// Quad.Scale when moving between resolutions of the same image.
package quad
