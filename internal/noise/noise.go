// Package noise implements the stochastic sensor degradations: additive
// Gaussian noise, salt/pepper impulses and the whole-frame probability gates.
//
// Every operator draws from an explicitly passed Source, so a seeded source
// reproduces the same frame sequence.
package noise

import (
	"math"

	"github.com/k38-suzuki/camfx/frame"
	"github.com/k38-suzuki/camfx/internal/color"
)

// Source is the random stream consumed by the operators.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// Float64 returns a uniform value in [0,1).
	Float64() float64
	// NormFloat64 returns a standard normal value.
	NormFloat64() float64
}

// Gaussian adds round(n * stdDev * 255) to every channel of each pixel, where
// n ~ Normal(0,1) is drawn once per pixel and shared by its channels.
// stdDev is clamped to [0,1]; no-op at 0.
func Gaussian(buf *frame.Buffer, stdDev float64, src Source) {
	stdDev = Clamp01(stdDev)
	if buf.IsEmpty() || stdDev == 0 || src == nil {
		return
	}

	ch := buf.Channels()
	data := buf.Data()
	scale := stdDev * 255
	for i := 0; i+ch <= len(data); i += ch {
		delta := int(math.Round(src.NormFloat64() * scale))
		if delta == 0 {
			continue
		}
		for c := range ch {
			data[i+c] = color.ClampAdd(data[i+c], delta)
		}
	}
}

// SaltPepper draws u1, u2 ~ Uniform[0,1) for each pixel. The pixel turns
// white when u1 < salt, then black when u2 < pepper, so pepper wins when both
// fire. Rates are clamped to [0,1]; no-op when both are 0.
func SaltPepper(buf *frame.Buffer, salt, pepper float64, src Source) {
	salt, pepper = Clamp01(salt), Clamp01(pepper)
	if buf.IsEmpty() || (salt == 0 && pepper == 0) || src == nil {
		return
	}

	ch := buf.Channels()
	data := buf.Data()
	for i := 0; i+ch <= len(data); i += ch {
		u1 := src.Float64()
		u2 := src.Float64()
		if u1 < salt {
			setPixel(data[i:i+ch], 255)
		}
		if u2 < pepper {
			setPixel(data[i:i+ch], 0)
		}
	}
}

// RandomSalt applies SaltPepper(buf, amount, 0) to the whole frame with
// probability chance. One trial per call, not per pixel.
func RandomSalt(buf *frame.Buffer, amount, chance float64, src Source) bool {
	if !Chance(chance, src) {
		return false
	}
	SaltPepper(buf, amount, 0, src)
	return true
}

// RandomPepper applies SaltPepper(buf, 0, amount) to the whole frame with
// probability chance. One trial per call, not per pixel.
func RandomPepper(buf *frame.Buffer, amount, chance float64, src Source) bool {
	if !Chance(chance, src) {
		return false
	}
	SaltPepper(buf, 0, amount, src)
	return true
}

// Chance runs one Bernoulli trial with probability p (clamped to [0,1]).
// p = 0 never fires and p = 1 always fires; neither consumes a draw.
func Chance(p float64, src Source) bool {
	p = Clamp01(p)
	switch {
	case p == 0 || src == nil:
		return false
	case p == 1:
		return true
	default:
		return src.Float64() < p
	}
}

// Clamp01 clamps v to [0,1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	if v > 0 && v <= 1 {
		return v
	}
	if v > 1 {
		return 1
	}
	return 0
}

func setPixel(px []byte, v byte) {
	for i := range px {
		px[i] = v
	}
}
