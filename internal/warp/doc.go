// Package warp rectifies a photographed document to a flat, top-down
// view.
//
// Rectify takes the original photo and the four detected corners,
// orders the corners canonically, derives the output size from the
// measured edge lengths, and resamples the photo through the unique
// projective mapping that sends the corners to the output rectangle.
//
// # Output Dimensions
//
// Width is the larger of the two horizontal edge lengths (top and
// bottom), height the larger of the two vertical ones, both rounded
// down. Taking the maximum of the opposing edges compensates for
// residual skew in the detected quadrilateral so the result is not
// sheared.
//
// # Degenerate Geometry
//
// A collinear or near-collinear quadrilateral yields a zero output
// dimension or a singular mapping. Rectify rejects both cases with a
// *DegenerateQuadError instead of producing an invalid raster; the
// locator's area policy makes this rare in practice.
package warp
