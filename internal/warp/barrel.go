package warp

import (
	"math"

	"github.com/k38-suzuki/camfx/frame"
)

// Distortion coefficient ranges. coefB = 0 with coefD = 1 is the identity.
const (
	MinCoefB = -1.0
	MaxCoefB = 0.0
	MinCoefD = 1.0
	MaxCoefD = 32.0
)

// Barrel applies radial lens distortion by inverse mapping.
//
// The optical centre is ((W-1)/2, (H-1)/2) and radii are normalised by
// d = min(W,H)/2. For each destination pixel at normalised radius r the
// source radius is
//
//	srcR = (a*r^3 + b*r^2 + c*r + (D - a - b - c)) * r,  a = c = 0
//
// and the pixel is fetched from the centre plus its offset scaled by
// |r/srcR|, truncated to integer indices. Destination pixels whose source
// falls outside the image are left black. coefB is clamped to [-1,0] and
// coefD to [1,32].
func Barrel(buf *frame.Buffer, coefB, coefD float64) {
	if buf.IsEmpty() {
		return
	}
	coefB = clampCoef(coefB, MinCoefB, MaxCoefB, 0)
	coefD = clampCoef(coefD, MinCoefD, MaxCoefD, 1)
	if coefB == 0 && coefD == 1 {
		return
	}

	src := frame.SnapshotOf(buf)
	defer frame.Release(src)
	buf.Clear()

	w, h, ch := buf.Width(), buf.Height(), buf.Channels()
	in, out := src.Data(), buf.Data()

	const coefA, coefC = 0.0, 0.0
	cx := float64(w-1) / 2
	cy := float64(h-1) / 2
	d := float64(min(w, h)) / 2
	fw, fh := float64(w), float64(h)

	for j := range h {
		offY := float64(j) - cy
		dely := offY / d
		for i := range w {
			offX := float64(i) - cx
			delx := offX / d
			dstR := math.Sqrt(delx*delx + dely*dely)

			factor := 1.0
			if dstR > 0 {
				srcR := (coefA*dstR*dstR*dstR + coefB*dstR*dstR + coefC*dstR + (coefD - coefA - coefB - coefC)) * dstR
				if srcR == 0 {
					continue
				}
				factor = math.Abs(dstR / srcR)
			}

			// cx + delx*factor*d, with delx*d folded back to the pixel offset
			sx := cx + offX*factor
			sy := cy + offY*factor
			if !(sx >= 0 && sx < fw && sy >= 0 && sy < fh) {
				continue
			}

			so := (int(sy)*w + int(sx)) * ch
			do := (j*w + i) * ch
			copy(out[do:do+ch], in[so:so+ch])
		}
	}
}

func clampCoef(v, lo, hi, fallback float64) float64 {
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
