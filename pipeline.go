package camfx

import (
	"github.com/k38-suzuki/camfx/frame"
)

// DefaultNoiseChance is the per-tick probability used by the gated salt
// step in ModeRandomSalt.
const DefaultNoiseChance = 0.5

// Step names, in pipeline order.
const (
	StepHSV          = "hsv"
	StepRGB          = "rgb"
	StepFlip         = "flip"
	StepGaussian     = "gaussian-noise"
	StepSaltPepper   = "salt-pepper"
	StepRandomSalt   = "random-salt"
	StepFilter       = "filter"
	StepBarrel       = "barrel"
	StepRandomMosaic = "random-mosaic"
)

// Step is one operator bound to its parameters.
type Step struct {
	Name string
	Run  func(buf *frame.Buffer, src Source)
}

// Pipeline assembles the ordered operator list for a parameter set.
type Pipeline struct {
	// Mode selects the full or a reduced random pipeline.
	Mode Mode

	// NoiseChance gates the whole-frame salt step of ModeRandomSalt.
	NoiseChance float64
}

// Steps returns the operators p activates, in application order.
//
// In ModeFull the order is HSV, RGB, flip, Gaussian noise, salt/pepper,
// filter, barrel distortion, mosaic: noise is added in undistorted image
// space and filters see the unwarped image. Steps whose parameters are at
// their no-op values are omitted. The reduced modes contain at most their
// single gated step. p is clamped first.
func (pl Pipeline) Steps(p Params) []Step {
	p = p.Clamp()

	switch pl.Mode {
	case ModeRandomSalt:
		if p.Salt == 0 {
			return nil
		}
		chance := pl.NoiseChance
		return []Step{{StepRandomSalt, func(buf *frame.Buffer, src Source) {
			RandomSalt(buf, p.Salt, chance, src)
		}}}

	case ModeRandomMosaic:
		if !p.HasMosaic() {
			return nil
		}
		return []Step{{StepRandomMosaic, func(buf *frame.Buffer, src Source) {
			RandomMosaic(buf, p.MosaicChance, p.MosaicKernel, src)
		}}}
	}

	var steps []Step
	if p.HasHSV() {
		steps = append(steps, Step{StepHSV, func(buf *frame.Buffer, _ Source) {
			ApplyHSVOffset(buf, p.Hue, p.Saturation, p.Value)
		}})
	}
	if p.HasRGB() {
		steps = append(steps, Step{StepRGB, func(buf *frame.Buffer, _ Source) {
			ApplyRGBOffset(buf, p.Red, p.Green, p.Blue)
		}})
	}
	if p.Flipped {
		steps = append(steps, Step{StepFlip, func(buf *frame.Buffer, _ Source) {
			FlipHorizontal(buf)
		}})
	}
	if p.HasGaussianNoise() {
		steps = append(steps, Step{StepGaussian, func(buf *frame.Buffer, src Source) {
			GaussianNoise(buf, p.StdDev, src)
		}})
	}
	if p.HasSaltPepper() {
		steps = append(steps, Step{StepSaltPepper, func(buf *frame.Buffer, src Source) {
			SaltPepperNoise(buf, p.Salt, p.Pepper, src)
		}})
	}
	if p.Filter != FilterNone {
		steps = append(steps, Step{StepFilter, func(buf *frame.Buffer, _ Source) {
			ApplyFilter(buf, p.Filter)
		}})
	}
	if p.HasDistortion() {
		steps = append(steps, Step{StepBarrel, func(buf *frame.Buffer, _ Source) {
			BarrelDistortion(buf, p.CoefB, p.CoefD)
		}})
	}
	if p.HasMosaic() {
		steps = append(steps, Step{StepRandomMosaic, func(buf *frame.Buffer, src Source) {
			RandomMosaic(buf, p.MosaicChance, p.MosaicKernel, src)
		}})
	}
	return steps
}

// Apply runs the steps for p over buf in place and returns the names of the
// steps that ran.
func (pl Pipeline) Apply(buf *frame.Buffer, p Params, src Source) []string {
	steps := pl.Steps(p)
	names := make([]string, 0, len(steps))
	for _, s := range steps {
		s.Run(buf, src)
		names = append(names, s.Name)
	}
	return names
}
