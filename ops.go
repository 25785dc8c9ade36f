package camfx

import (
	"github.com/k38-suzuki/camfx/frame"
	"github.com/k38-suzuki/camfx/internal/color"
	"github.com/k38-suzuki/camfx/internal/filter"
	"github.com/k38-suzuki/camfx/internal/noise"
	"github.com/k38-suzuki/camfx/internal/warp"
)

// Source is the random stream consumed by the stochastic operators.
// *rand.Rand from math/rand/v2 satisfies it.
type Source = noise.Source

// The operators below work in place on buf, never change its shape and
// clamp every sample to [0,255]. Each is a no-op at its documented no-op
// arguments and on nil or empty buffers.

// ApplyRGBOffset shifts R, G and B by 255*r, 255*g and 255*b levels.
func ApplyRGBOffset(buf *frame.Buffer, r, g, b float64) { color.ApplyRGBOffset(buf, r, g, b) }

// ApplyHSVOffset shifts hue by h*360 degrees and saturation and value by
// s*255 and v*255 levels.
func ApplyHSVOffset(buf *frame.Buffer, h, s, v float64) { color.ApplyHSVOffset(buf, h, s, v) }

// FlipHorizontal mirrors the frame left to right.
func FlipHorizontal(buf *frame.Buffer) { warp.FlipHorizontal(buf) }

// Mosaic pixelates the frame with kernel x kernel block means.
func Mosaic(buf *frame.Buffer, kernel int) { warp.Mosaic(buf, kernel) }

// BarrelDistortion warps the frame radially by inverse mapping.
func BarrelDistortion(buf *frame.Buffer, coefB, coefD float64) { warp.Barrel(buf, coefB, coefD) }

// ResampleBilinear rescales the content about the image midpoint.
func ResampleBilinear(buf *frame.Buffer, scaleX, scaleY float64) {
	warp.ResampleBilinear(buf, scaleX, scaleY)
}

// GaussianNoise adds per-pixel normal noise with amplitude stdDev*255.
func GaussianNoise(buf *frame.Buffer, stdDev float64, src Source) { noise.Gaussian(buf, stdDev, src) }

// SaltPepperNoise whitens pixels at rate salt, then blackens at rate pepper.
func SaltPepperNoise(buf *frame.Buffer, salt, pepper float64, src Source) {
	noise.SaltPepper(buf, salt, pepper, src)
}

// RandomSalt salts the whole frame at rate amount with probability chance.
func RandomSalt(buf *frame.Buffer, amount, chance float64, src Source) bool {
	return noise.RandomSalt(buf, amount, chance, src)
}

// RandomPepper peppers the whole frame at rate amount with probability chance.
// No orchestration mode runs it; ModeRandomSalt gates salt only.
func RandomPepper(buf *frame.Buffer, amount, chance float64, src Source) bool {
	return noise.RandomPepper(buf, amount, chance, src)
}

// RandomMosaic pixelates the whole frame with probability chance.
func RandomMosaic(buf *frame.Buffer, chance float64, kernel int, src Source) bool {
	return warp.RandomMosaic(buf, chance, kernel, src)
}

// ApplyFilter runs the selected spatial filter.
func ApplyFilter(buf *frame.Buffer, kind FilterKind) { filter.Apply(buf, kind.kind()) }
