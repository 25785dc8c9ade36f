package color

import (
	"math"

	"github.com/k38-suzuki/camfx/frame"
)

// ApplyRGBOffset shifts every pixel by (255*r, 255*g, 255*b), clamping each
// channel to [0,255]. On grayscale buffers the BT.601 luminance of the offset
// is applied. No-op when r = g = b = 0.
func ApplyRGBOffset(buf *frame.Buffer, r, g, b float64) {
	if buf.IsEmpty() {
		return
	}
	dr, dg, db := ScaleOffset(r), ScaleOffset(g), ScaleOffset(b)
	if dr == 0 && dg == 0 && db == 0 {
		return
	}

	data := buf.Data()
	if buf.Channels() == 1 {
		dl := ScaleOffset(0.299*r + 0.587*g + 0.114*b)
		if dl == 0 {
			return
		}
		for i, v := range data {
			data[i] = ClampAdd(v, dl)
		}
		return
	}

	for i := 0; i+2 < len(data); i += 3 {
		data[i] = ClampAdd(data[i], dr)
		data[i+1] = ClampAdd(data[i+1], dg)
		data[i+2] = ClampAdd(data[i+2], db)
	}
}

// ApplyHSVOffset converts each pixel to HSV, adds h*360 to the hue (wrapped
// into [0,360)) and s*255, v*255 to saturation and value (clamped to
// [0,255]), then converts back. Grayscale buffers carry no hue or saturation,
// so only the value term applies. No-op when h = s = v = 0.
func ApplyHSVOffset(buf *frame.Buffer, h, s, v float64) {
	if buf.IsEmpty() || (h == 0 && s == 0 && v == 0) {
		return
	}
	dh := finite(h) * 360
	ds := finite(s) * 255
	dv := finite(v) * 255

	data := buf.Data()
	if buf.Channels() == 1 {
		for i, px := range data {
			data[i] = roundByte(float64(px) + dv)
		}
		return
	}

	for i := 0; i+2 < len(data); i += 3 {
		c := RGBToHSV(data[i], data[i+1], data[i+2])
		c.H = WrapHue(c.H + dh)
		c.S = clampFloat(c.S+ds, 0, 255)
		c.V = clampFloat(c.V+dv, 0, 255)
		data[i], data[i+1], data[i+2] = c.ToRGB()
	}
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
