package color

import (
	"bytes"
	"testing"

	"github.com/k38-suzuki/camfx/frame"
)

func gradientBuffer(w, h, channels int) *frame.Buffer {
	buf := frame.MustNew(w, h, channels)
	data := buf.Data()
	for i := range data {
		data[i] = byte(i * 37 % 256)
	}
	return buf
}

func TestApplyRGBOffsetNoOp(t *testing.T) {
	for _, ch := range []int{1, 3} {
		buf := gradientBuffer(7, 5, ch)
		want := buf.Clone()
		ApplyRGBOffset(buf, 0, 0, 0)
		if !buf.Equal(want) {
			t.Errorf("channels=%d: zero offset changed the image", ch)
		}
	}
}

func TestApplyRGBOffset(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		r, g, b float64
		want    []byte
	}{
		{"positive", []byte{100, 100, 100}, 0.1, 0, 0, []byte{126, 100, 100}},
		{"negative", []byte{100, 100, 100}, 0, -0.2, 0, []byte{100, 49, 100}},
		{"saturate high", []byte{200, 10, 0}, 1, 1, 1, []byte{255, 255, 255}},
		{"saturate low", []byte{200, 10, 0}, -1, -1, -1, []byte{0, 0, 0}},
		{"out of range clamps", []byte{0, 128, 255}, 42, -42, 0, []byte{255, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := frame.MustNew(1, 1, 3)
			buf.SetPixel(0, 0, tt.in)
			ApplyRGBOffset(buf, tt.r, tt.g, tt.b)
			if got := buf.PixelAt(0, 0); !bytes.Equal(got, tt.want) {
				t.Errorf("pixel = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyRGBOffsetGray(t *testing.T) {
	buf := frame.MustNew(2, 1, 1)
	buf.Fill(100)
	ApplyRGBOffset(buf, 0.2, 0.2, 0.2)
	// luminance weights sum to 1, so an equal offset shifts by 0.2*255
	if got := buf.PixelAt(1, 0)[0]; got != 151 {
		t.Errorf("gray pixel = %d, want 151", got)
	}
}

func TestApplyHSVOffsetNoOp(t *testing.T) {
	for _, ch := range []int{1, 3} {
		buf := gradientBuffer(6, 6, ch)
		want := buf.Clone()
		ApplyHSVOffset(buf, 0, 0, 0)
		if !buf.Equal(want) {
			t.Errorf("channels=%d: zero offset changed the image", ch)
		}
	}
}

func TestApplyHSVOffset(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		h, s, v float64
		want    []byte
	}{
		{"hue third turn", []byte{255, 0, 0}, 1.0 / 3.0, 0, 0, []byte{0, 255, 0}},
		{"hue two thirds", []byte{255, 0, 0}, 2.0 / 3.0, 0, 0, []byte{0, 0, 255}},
		{"hue negative wraps", []byte{255, 0, 0}, -1.0 / 3.0, 0, 0, []byte{0, 0, 255}},
		{"value to black", []byte{10, 200, 30}, 0, 0, -1, []byte{0, 0, 0}},
		{"desaturate", []byte{255, 0, 0}, 0, -1, 0, []byte{255, 255, 255}},
		{"gray gains no hue", []byte{128, 128, 128}, 0.5, 0, 0, []byte{128, 128, 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := frame.MustNew(1, 1, 3)
			buf.SetPixel(0, 0, tt.in)
			ApplyHSVOffset(buf, tt.h, tt.s, tt.v)
			if got := buf.PixelAt(0, 0); !bytes.Equal(got, tt.want) {
				t.Errorf("pixel = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyHSVOffsetGrayValueOnly(t *testing.T) {
	buf := frame.MustNew(3, 3, 1)
	buf.Fill(50)
	ApplyHSVOffset(buf, 0.25, 0.5, 0.1)
	for i, v := range buf.Data() {
		if v != 76 { // 50 + 25.5 rounds to 76
			t.Fatalf("sample %d = %d, want 76", i, v)
		}
	}
}

func TestColorOperatorsPreserveShape(t *testing.T) {
	buf := gradientBuffer(9, 4, 3)
	ApplyHSVOffset(buf, 0.7, -0.3, 0.4)
	ApplyRGBOffset(buf, -0.5, 0.9, 3)
	if buf.Width() != 9 || buf.Height() != 4 || buf.Channels() != 3 {
		t.Errorf("shape changed to %dx%dx%d", buf.Width(), buf.Height(), buf.Channels())
	}

	// empty buffers are ignored
	ApplyRGBOffset(nil, 1, 1, 1)
	ApplyHSVOffset(nil, 1, 1, 1)
}
