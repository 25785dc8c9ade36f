package camfx

import (
	"math"

	"github.com/k38-suzuki/camfx/internal/noise"
	"github.com/k38-suzuki/camfx/internal/warp"
)

// DefaultMosaicKernel is the block size used when a parameter set leaves
// MosaicKernel unset.
const DefaultMosaicKernel = 8

// Params is the bundle of effect knobs applied to one camera on one tick.
//
// Every field is independent. The zero value of each field is its no-op
// value, except CoefD whose identity is 1 (0 is clamped up to 1). Params is
// a plain value: resolution copies it and nothing mutates a stored set.
type Params struct {
	// Hue, Saturation and Value shift the HSV representation by
	// Hue*360 degrees and Saturation*255, Value*255 levels.
	Hue        float64 `yaml:"hue"`
	Saturation float64 `yaml:"saturation"`
	Value      float64 `yaml:"value"`

	// Red, Green and Blue shift each channel by offset*255 levels.
	Red   float64 `yaml:"red"`
	Green float64 `yaml:"green"`
	Blue  float64 `yaml:"blue"`

	// CoefB in [-1,0] and CoefD in [1,32] are the barrel distortion
	// polynomial coefficients. CoefB = 0, CoefD = 1 is the identity.
	CoefB float64 `yaml:"coef_b"`
	CoefD float64 `yaml:"coef_d"`

	// StdDev in [0,1] is the Gaussian noise amplitude as a fraction of 255.
	StdDev float64 `yaml:"std_dev"`

	// Salt and Pepper in [0,1] are impulsive noise rates.
	Salt   float64 `yaml:"salt"`
	Pepper float64 `yaml:"pepper"`

	// Flipped mirrors the frame horizontally.
	Flipped bool `yaml:"flipped"`

	// Filter selects at most one spatial filter.
	Filter FilterKind `yaml:"filter"`

	// MosaicChance in [0,1] is the probability that the frame is pixelated
	// this tick; MosaicKernel is the block size in pixels.
	MosaicChance float64 `yaml:"mosaic_chance"`
	MosaicKernel int     `yaml:"mosaic_kernel"`
}

// DefaultParams returns the all-no-op parameter set.
func DefaultParams() Params {
	return Params{
		CoefD:        1,
		MosaicKernel: DefaultMosaicKernel,
	}
}

// Clamp returns a copy with every field forced into its declared range.
// NaN fields fall back to their no-op value.
func (p Params) Clamp() Params {
	p.Hue = clampRange(p.Hue, -1, 1, 0)
	p.Saturation = clampRange(p.Saturation, -1, 1, 0)
	p.Value = clampRange(p.Value, -1, 1, 0)
	p.Red = clampRange(p.Red, -1, 1, 0)
	p.Green = clampRange(p.Green, -1, 1, 0)
	p.Blue = clampRange(p.Blue, -1, 1, 0)
	p.CoefB = clampRange(p.CoefB, warp.MinCoefB, warp.MaxCoefB, 0)
	p.CoefD = clampRange(p.CoefD, warp.MinCoefD, warp.MaxCoefD, 1)
	p.StdDev = noise.Clamp01(p.StdDev)
	p.Salt = noise.Clamp01(p.Salt)
	p.Pepper = noise.Clamp01(p.Pepper)
	p.MosaicChance = noise.Clamp01(p.MosaicChance)
	if p.MosaicKernel < 1 {
		p.MosaicKernel = DefaultMosaicKernel
	}
	if !p.Filter.IsValid() {
		p.Filter = FilterNone
	}
	return p
}

// HasHSV reports whether the HSV shift is active.
func (p Params) HasHSV() bool { return p.Hue != 0 || p.Saturation != 0 || p.Value != 0 }

// HasRGB reports whether the RGB shift is active.
func (p Params) HasRGB() bool { return p.Red != 0 || p.Green != 0 || p.Blue != 0 }

// HasDistortion reports whether the barrel distortion differs from identity.
func (p Params) HasDistortion() bool {
	c := p.Clamp()
	return c.CoefB != 0 || c.CoefD != 1
}

// HasGaussianNoise reports whether Gaussian noise is active.
func (p Params) HasGaussianNoise() bool { return p.StdDev > 0 }

// HasSaltPepper reports whether impulsive noise is active.
func (p Params) HasSaltPepper() bool { return p.Salt > 0 || p.Pepper > 0 }

// HasMosaic reports whether the mosaic step can fire.
func (p Params) HasMosaic() bool { return p.MosaicChance > 0 && p.MosaicKernel > 1 }

// IsNoOp reports whether applying p leaves every frame unchanged.
func (p Params) IsNoOp() bool {
	return !p.HasHSV() && !p.HasRGB() && !p.Flipped && !p.HasGaussianNoise() &&
		!p.HasSaltPepper() && p.Filter == FilterNone && !p.HasDistortion() && !p.HasMosaic()
}

func clampRange(v, lo, hi, fallback float64) float64 {
	switch {
	case math.IsNaN(v):
		return fallback
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
