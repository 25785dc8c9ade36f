package warp

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/k38-suzuki/camfx/frame"
)

// ResampleBilinear rescales the image content about its midpoint by
// independent X and Y factors using bilinear interpolation. The buffer keeps
// its size: content scaled beyond the edges is cropped and destination pixels
// that map outside the source extent become 0. Non-positive or non-finite
// factors, and scale (1,1), are a no-op.
func ResampleBilinear(buf *frame.Buffer, scaleX, scaleY float64) {
	if buf.IsEmpty() || !validScale(scaleX) || !validScale(scaleY) {
		return
	}
	if scaleX == 1 && scaleY == 1 {
		return
	}

	w, h := buf.Width(), buf.Height()
	src := buf.ToImage()
	var dst draw.Image
	if buf.Channels() == 1 {
		dst = image.NewGray(image.Rect(0, 0, w, h))
	} else {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	}

	// source -> destination, anchored at the image midpoint
	cx, cy := float64(w)/2, float64(h)/2
	s2d := f64.Aff3{
		scaleX, 0, cx * (1 - scaleX),
		0, scaleY, cy * (1 - scaleY),
	}
	draw.BiLinear.Transform(dst, s2d, src, src.Bounds(), draw.Src, nil)

	// dimensions match by construction
	_ = buf.CopyFromImage(dst)
}

func validScale(s float64) bool {
	return s > 0 && !math.IsInf(s, 0)
}
