package filter

import (
	"math"

	"github.com/k38-suzuki/camfx/frame"
)

// Kind selects one of the fixed spatial filters.
type Kind uint8

const (
	// None leaves the image untouched.
	None Kind = iota
	// Gaussian3x3 smooths with the 3x3 binomial kernel.
	Gaussian3x3
	// Gaussian5x5 smooths with the 5x5 binomial kernel.
	Gaussian5x5
	// Sobel computes the Sobel gradient magnitude.
	Sobel
	// Prewitt computes the Prewitt gradient magnitude.
	Prewitt
)

// Apply runs the filter selected by kind over buf in place.
// Unknown kinds behave as None.
func Apply(buf *frame.Buffer, kind Kind) {
	switch kind {
	case Gaussian3x3:
		Smooth(buf, Gaussian3)
	case Gaussian5x5:
		Smooth(buf, Gaussian5)
	case Sobel:
		Gradient(buf, SobelX, SobelY)
	case Prewitt:
		Gradient(buf, PrewittX, PrewittY)
	}
}

// Smooth convolves every channel with k and divides by k.Divisor, rounding
// half up. Taps that fall outside the image read the nearest edge pixel.
func Smooth(buf *frame.Buffer, k Kernel) {
	if buf.IsEmpty() || k.Size == 0 || k.Divisor == 0 {
		return
	}

	src := frame.SnapshotOf(buf)
	defer frame.Release(src)

	w, h, ch := buf.Width(), buf.Height(), buf.Channels()
	in, out := src.Data(), buf.Data()
	half := k.Divisor / 2

	for y := range h {
		for x := range w {
			for c := range ch {
				sum := convolveAt(in, w, h, ch, x, y, c, k)
				out[(y*w+x)*ch+c] = clampSample((sum + half) / k.Divisor)
			}
		}
	}
}

// Gradient replaces every channel with the gradient magnitude
// sqrt(gx^2 + gy^2) of the two kernels, rounded and clamped to [0,255].
// Taps that fall outside the image read the nearest edge pixel.
func Gradient(buf *frame.Buffer, kx, ky Kernel) {
	if buf.IsEmpty() || kx.Size == 0 || ky.Size == 0 {
		return
	}

	src := frame.SnapshotOf(buf)
	defer frame.Release(src)

	w, h, ch := buf.Width(), buf.Height(), buf.Channels()
	in, out := src.Data(), buf.Data()

	for y := range h {
		for x := range w {
			for c := range ch {
				gx := float64(convolveAt(in, w, h, ch, x, y, c, kx))
				gy := float64(convolveAt(in, w, h, ch, x, y, c, ky))
				mag := math.Round(math.Sqrt(gx*gx + gy*gy))
				out[(y*w+x)*ch+c] = clampSample(int(min(mag, 255)))
			}
		}
	}
}

// convolveAt returns the raw weighted sum of channel c around (x, y).
func convolveAt(in []byte, w, h, ch, x, y, c int, k Kernel) int {
	r := k.Radius()
	sum := 0
	for ky := range k.Size {
		sy := clampIndex(y+ky-r, h)
		row := sy * w
		for kx := range k.Size {
			wt := k.Weights[ky*k.Size+kx]
			if wt == 0 {
				continue
			}
			sx := clampIndex(x+kx-r, w)
			sum += wt * int(in[(row+sx)*ch+c])
		}
	}
	return sum
}

// clampIndex clamps i to [0, n).
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// clampSample clamps v to [0, 255] and converts to uint8.
func clampSample(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
