// Package raster provides the raster plumbing shared by the document
// scan pipeline: file loading with a decode cache, saving, and grayscale
// conversion.
//
// All operations work with standard Go image.Image types and use a
// coordinate system where (0,0) is at the top-left corner, X increases
// rightward, and Y increases downward.
//
// # Channel Conventions
//
// Color images are handled through the image.Image interface regardless
// of their decoded representation (RGBA, NRGBA, YCbCr, ...). Grayscale
// rasters are always *image.Gray; IsGray reports whether an image is
// already single-channel so later pipeline stages never have to assume a
// channel count.
//
// # Thread Safety
//
// The Cache type is safe for concurrent use. The remaining functions are
// pure with respect to their inputs and can be called concurrently on
// independent images.
package raster
