// Package color implements the colour-space operators: RGB channel offsets
// and HSV shifts over 8-bit frames.
package color

import "math"

// HSV is a colour in the full-range hue/saturation/value space used by the
// colour-shift operators: H in [0,360), S and V in [0,255].
type HSV struct {
	H, S, V float64
}

// RGBToHSV converts an 8-bit RGB triple to HSV.
// Achromatic colours (max == min) have hue 0.
func RGBToHSV(r, g, b uint8) HSV {
	rf, gf, bf := float64(r), float64(g), float64(b)
	maxC := math.Max(rf, math.Max(gf, bf))
	minC := math.Min(rf, math.Min(gf, bf))
	delta := maxC - minC

	hsv := HSV{V: maxC}
	if maxC > 0 {
		hsv.S = delta / maxC * 255
	}
	if delta == 0 {
		return hsv
	}

	switch maxC {
	case rf:
		hsv.H = 60 * (gf - bf) / delta
	case gf:
		hsv.H = 120 + 60*(bf-rf)/delta
	default:
		hsv.H = 240 + 60*(rf-gf)/delta
	}
	hsv.H = WrapHue(hsv.H)
	return hsv
}

// ToRGB converts back to 8-bit RGB, rounding to nearest and clamping.
// Out-of-range S and V are clamped and H is wrapped first.
func (c HSV) ToRGB() (r, g, b uint8) {
	h := WrapHue(c.H)
	s := clampFloat(c.S, 0, 255) / 255
	v := clampFloat(c.V, 0, 255)

	if s == 0 {
		gray := roundByte(v)
		return gray, gray, gray
	}

	sector := h / 60
	i := math.Floor(sector)
	f := sector - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var rf, gf, bf float64
	switch int(i) % 6 {
	case 0:
		rf, gf, bf = v, t, p
	case 1:
		rf, gf, bf = q, v, p
	case 2:
		rf, gf, bf = p, v, t
	case 3:
		rf, gf, bf = p, q, v
	case 4:
		rf, gf, bf = t, p, v
	default:
		rf, gf, bf = v, p, q
	}
	return roundByte(rf), roundByte(gf), roundByte(bf)
}

// WrapHue wraps a hue in degrees into [0,360).
func WrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo || math.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// roundByte rounds to nearest and clamps to [0,255].
func roundByte(v float64) uint8 {
	return uint8(clampFloat(math.Round(v), 0, 255))
}

// ClampAdd adds delta to v and clamps the result to [0,255].
func ClampAdd(v uint8, delta int) uint8 {
	n := int(v) + delta
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

// ScaleOffset turns a fractional offset into an integer sample delta
// (offset * 255, rounded). Non-finite offsets yield 0; the result is bounded
// to [-255,255] so additions cannot overflow.
func ScaleOffset(offset float64) int {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return 0
	}
	return int(clampFloat(math.Round(offset*255), -255, 255))
}
