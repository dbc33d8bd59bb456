// Package enhance applies tonal post-processing to rectified document
// images. Four modes are supported: Original passes the image through
// untouched, Grayscale converts to single-channel luminance, Scan
// produces a binarized photocopy look (contrast-limited histogram
// equalization, edge-preserving smoothing, then adaptive thresholding),
// and HighContrast applies a linear stretch per channel.
//
// Scan and Grayscale always yield single-channel output; Original and
// HighContrast preserve the channel structure of their input.
package enhance
