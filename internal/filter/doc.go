// Package filter provides the fixed spatial filters applied to camera frames.
//
// Filters are non-separable integer convolutions:
//   - Gaussian 3x3 and 5x5 smoothing (binomial kernels, normalised)
//   - Sobel and Prewitt gradient magnitude
//
// Image edges are handled by clamping kernel taps to the nearest valid
// pixel, so no padded copy is allocated. Every filter reads from a pooled
// snapshot of the source and writes the buffer in place.
package filter
