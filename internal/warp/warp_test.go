package warp

import (
	"bytes"
	"math"
	"testing"

	"github.com/k38-suzuki/camfx/frame"
)

type fixedSource float64

func (f fixedSource) Float64() float64     { return float64(f) }
func (f fixedSource) NormFloat64() float64 { return 0 }

// patternBuffer gives every sample a distinct-ish value.
func patternBuffer(w, h, channels int) *frame.Buffer {
	buf := frame.MustNew(w, h, channels)
	data := buf.Data()
	for i := range data {
		data[i] = byte((i*53 + 11) % 256)
	}
	return buf
}

func uniformBuffer(w, h, channels int, v byte) *frame.Buffer {
	buf := frame.MustNew(w, h, channels)
	buf.Fill(v)
	return buf
}

func TestFlipHorizontal(t *testing.T) {
	buf := frame.MustNew(3, 2, 3)
	buf.SetPixel(0, 0, []byte{1, 2, 3})
	buf.SetPixel(2, 0, []byte{7, 8, 9})
	buf.SetPixel(1, 1, []byte{4, 5, 6})
	orig := buf.Clone()

	FlipHorizontal(buf)

	for y := range 2 {
		for x := range 3 {
			if got, want := buf.PixelAt(x, y), orig.PixelAt(2-x, y); !bytes.Equal(got, want) {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}

	FlipHorizontal(buf)
	if !buf.Equal(orig) {
		t.Error("flipping twice should restore the image")
	}
}

func TestFlipHorizontalGrayOddWidth(t *testing.T) {
	buf := frame.MustNew(5, 1, 1)
	copy(buf.Data(), []byte{1, 2, 3, 4, 5})
	FlipHorizontal(buf)
	if !bytes.Equal(buf.Data(), []byte{5, 4, 3, 2, 1}) {
		t.Errorf("flipped row = %v, want [5 4 3 2 1]", buf.Data())
	}
}

func TestMosaicUniformUnchanged(t *testing.T) {
	for _, k := range []int{1, 2, 3, 4, 7, 100} {
		buf := uniformBuffer(9, 7, 3, 140)
		Mosaic(buf, k)
		if !buf.Equal(uniformBuffer(9, 7, 3, 140)) {
			t.Errorf("kernel %d changed a uniform image", k)
		}
	}
}

func TestMosaicBlockMeans(t *testing.T) {
	// 3x3 gray image, kernel 2: blocks 2x2, 1x2, 2x1, 1x1
	buf := frame.MustNew(3, 3, 1)
	copy(buf.Data(), []byte{
		10, 20, 31,
		30, 41, 50,
		60, 71, 90,
	})

	Mosaic(buf, 2)

	want := []byte{
		// (10+20+30+41)/4 = 25.25 -> 25; (31+50)/2 = 40.5 -> 41 (half up)
		25, 25, 41,
		25, 25, 41,
		// (60+71)/2 = 65.5 -> 66; 90 alone
		66, 66, 90,
	}
	if !bytes.Equal(buf.Data(), want) {
		t.Errorf("mosaic = %v, want %v", buf.Data(), want)
	}
}

func TestMosaicRGBChannelsIndependent(t *testing.T) {
	buf := frame.MustNew(2, 1, 3)
	buf.SetPixel(0, 0, []byte{0, 100, 255})
	buf.SetPixel(1, 0, []byte{10, 200, 255})
	Mosaic(buf, 2)
	for x := range 2 {
		if got := buf.PixelAt(x, 0); !bytes.Equal(got, []byte{5, 150, 255}) {
			t.Errorf("pixel %d = %v, want [5 150 255]", x, got)
		}
	}
}

func TestMosaicNoOpKernels(t *testing.T) {
	for _, k := range []int{-3, 0, 1} {
		buf := patternBuffer(6, 4, 3)
		Mosaic(buf, k)
		if !buf.Equal(patternBuffer(6, 4, 3)) {
			t.Errorf("kernel %d should be a no-op", k)
		}
	}
}

func TestRandomMosaic(t *testing.T) {
	buf := patternBuffer(4, 4, 1)
	if RandomMosaic(buf, 0.5, 4, fixedSource(0.9)) {
		t.Error("RandomMosaic fired on a missed gate")
	}
	if !buf.Equal(patternBuffer(4, 4, 1)) {
		t.Error("missed gate changed the frame")
	}

	if !RandomMosaic(buf, 0.5, 4, fixedSource(0.1)) {
		t.Fatal("RandomMosaic did not fire")
	}
	first := buf.Data()[0]
	for i, v := range buf.Data() {
		if v != first {
			t.Fatalf("sample %d = %d, whole-frame block should be uniform %d", i, v, first)
		}
	}

	buf = patternBuffer(4, 4, 1)
	if RandomMosaic(buf, 0, 2, fixedSource(0)) {
		t.Error("chance 0 should never fire")
	}
}

func TestBarrelIdentity(t *testing.T) {
	for _, ch := range []int{1, 3} {
		for _, size := range [][2]int{{1, 1}, {4, 4}, {7, 5}, {16, 9}} {
			buf := patternBuffer(size[0], size[1], ch)
			Barrel(buf, 0, 1)
			if !buf.Equal(patternBuffer(size[0], size[1], ch)) {
				t.Errorf("%dx%dx%d: identity coefficients changed the image", size[0], size[1], ch)
			}
		}
	}
}

func TestBarrelCentreFixed(t *testing.T) {
	// 4x4 mid-gray: centre pixels keep the input regardless of coefficients
	buf := uniformBuffer(4, 4, 3, 128)
	Barrel(buf, -0.2, 2.0)

	for _, p := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		if got := buf.PixelAt(p[0], p[1]); !bytes.Equal(got, []byte{128, 128, 128}) {
			t.Errorf("centre pixel %v = %v, want [128 128 128]", p, got)
		}
	}
	if buf.Width() != 4 || buf.Height() != 4 || buf.Channels() != 3 {
		t.Error("Barrel changed buffer shape")
	}
}

func TestBarrelOddCentreExact(t *testing.T) {
	buf := patternBuffer(5, 5, 3)
	centre := append([]byte(nil), buf.PixelAt(2, 2)...)
	Barrel(buf, -1, 32)
	if got := buf.PixelAt(2, 2); !bytes.Equal(got, centre) {
		t.Errorf("optical centre = %v, want %v", got, centre)
	}
}

func TestBarrelZoomsTowardCentre(t *testing.T) {
	// coefD = 2, coefB = 0: every destination samples at half its offset
	buf := frame.MustNew(9, 9, 1)
	for y := range 9 {
		for x := range 9 {
			buf.SetPixel(x, y, []byte{byte(x*10 + y)})
		}
	}
	Barrel(buf, 0, 2)

	// (8,4): offset 4 from centre -> source x = 4 + 4*0.5 = 6
	if got := buf.PixelAt(8, 4)[0]; got != 64 {
		t.Errorf("pixel (8,4) = %d, want 64", got)
	}
	// (0,4): source x = 4 - 2 = 2
	if got := buf.PixelAt(0, 4)[0]; got != 24 {
		t.Errorf("pixel (0,4) = %d, want 24", got)
	}
}

func TestBarrelOutOfRangeCoefficientsClamp(t *testing.T) {
	buf := patternBuffer(6, 6, 3)
	Barrel(buf, math.NaN(), math.NaN()) // falls back to identity
	if !buf.Equal(patternBuffer(6, 6, 3)) {
		t.Error("NaN coefficients should behave as identity")
	}

	clamped := patternBuffer(6, 6, 3)
	Barrel(clamped, -1, 32)
	wild := patternBuffer(6, 6, 3)
	Barrel(wild, -50, 900)
	if !wild.Equal(clamped) {
		t.Error("out-of-range coefficients should clamp to [-1,0] and [1,32]")
	}
}

func TestBarrelBoundaryDoesNotPanic(t *testing.T) {
	coefs := [][2]float64{{-1, 1}, {-0.2, 2}, {-1, 32}, {0, 32}, {-0.5, 1}}
	for _, c := range coefs {
		for _, size := range [][2]int{{1, 1}, {2, 1}, {1, 7}, {4, 4}, {31, 17}} {
			buf := patternBuffer(size[0], size[1], 3)
			Barrel(buf, c[0], c[1])
		}
	}
}

func TestResampleBilinearNoOp(t *testing.T) {
	for _, s := range [][2]float64{{1, 1}, {0, 2}, {-1, 1}, {math.NaN(), 1}, {math.Inf(1), 1}} {
		buf := patternBuffer(8, 6, 3)
		ResampleBilinear(buf, s[0], s[1])
		if !buf.Equal(patternBuffer(8, 6, 3)) {
			t.Errorf("scale %v should be a no-op", s)
		}
	}
}

func TestResampleBilinearShrinkBlackBorder(t *testing.T) {
	buf := uniformBuffer(10, 10, 3, 200)
	ResampleBilinear(buf, 0.5, 0.5)

	if buf.Width() != 10 || buf.Height() != 10 || buf.Channels() != 3 {
		t.Fatal("ResampleBilinear changed buffer shape")
	}
	if got := buf.PixelAt(0, 0); !bytes.Equal(got, []byte{0, 0, 0}) {
		t.Errorf("corner outside the scaled source = %v, want black", got)
	}
	if got := buf.PixelAt(5, 5); !bytes.Equal(got, []byte{200, 200, 200}) {
		t.Errorf("centre = %v, want [200 200 200]", got)
	}
}

func TestResampleBilinearEnlargeUniform(t *testing.T) {
	buf := uniformBuffer(8, 8, 1, 90)
	ResampleBilinear(buf, 2, 1.5)
	for i, v := range buf.Data() {
		if v != 90 {
			t.Fatalf("sample %d = %d, enlarging a uniform image should keep 90", i, v)
		}
	}
}
