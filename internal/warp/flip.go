// Package warp implements the geometric operators: horizontal flip, block
// mosaic, radial lens distortion and bilinear rescaling.
//
// Operators that resample read from a snapshot of the source so that no
// read ever observes a partially written destination. None of them changes
// the buffer's width, height or channel count.
package warp

import "github.com/k38-suzuki/camfx/frame"

// FlipHorizontal mirrors the buffer in place: pixel(x,y) <-> pixel(W-1-x,y).
func FlipHorizontal(buf *frame.Buffer) {
	if buf.IsEmpty() {
		return
	}

	w, ch := buf.Width(), buf.Channels()
	data := buf.Data()
	stride := buf.Stride()
	var tmp [3]byte

	for y := range buf.Height() {
		row := data[y*stride : (y+1)*stride]
		for l, r := 0, w-1; l < r; l, r = l+1, r-1 {
			lo, ro := l*ch, r*ch
			copy(tmp[:ch], row[lo:lo+ch])
			copy(row[lo:lo+ch], row[ro:ro+ch])
			copy(row[ro:ro+ch], tmp[:ch])
		}
	}
}
