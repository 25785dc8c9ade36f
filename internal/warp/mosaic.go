package warp

import (
	"github.com/k38-suzuki/camfx/frame"
	"github.com/k38-suzuki/camfx/internal/noise"
)

// Mosaic pixelates the buffer: it is partitioned into kernel x kernel blocks
// and every pixel of a block takes the block's per-channel mean, computed
// from a snapshot of the pre-mosaic image. Blocks on the right and bottom
// edges may be smaller; their mean divides by the pixels actually covered.
// Means round half up. Kernels below 2 are a no-op.
func Mosaic(buf *frame.Buffer, kernel int) {
	if buf.IsEmpty() || kernel < 2 {
		return
	}

	src := frame.SnapshotOf(buf)
	defer frame.Release(src)

	w, h, ch := buf.Width(), buf.Height(), buf.Channels()
	in, out := src.Data(), buf.Data()
	var sum [3]int

	for by := 0; by < h; by += kernel {
		bh := min(kernel, h-by)
		for bx := 0; bx < w; bx += kernel {
			bw := min(kernel, w-bx)
			n := bw * bh

			sum = [3]int{}
			for y := by; y < by+bh; y++ {
				off := (y*w + bx) * ch
				for i := 0; i < bw*ch; i += ch {
					for c := range ch {
						sum[c] += int(in[off+i+c])
					}
				}
			}

			var mean [3]byte
			for c := range ch {
				mean[c] = byte((sum[c] + n/2) / n)
			}

			for y := by; y < by+bh; y++ {
				off := (y*w + bx) * ch
				for i := 0; i < bw*ch; i += ch {
					copy(out[off+i:off+i+ch], mean[:ch])
				}
			}
		}
	}
}

// RandomMosaic applies Mosaic to the whole frame with probability chance.
// One Bernoulli trial per call, not per block. Reports whether it fired.
func RandomMosaic(buf *frame.Buffer, chance float64, kernel int, src noise.Source) bool {
	if !noise.Chance(chance, src) {
		return false
	}
	Mosaic(buf, kernel)
	return true
}
