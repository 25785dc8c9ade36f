package frame

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// FromImage copies a standard library image into a new Buffer.
// *image.Gray sources produce a 1-channel buffer, everything else RGB.
// Alpha is discarded.
func FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if gray, ok := img.(*image.Gray); ok {
		buf, err := New(width, height, 1)
		if err != nil {
			return nil, err
		}
		for y := range height {
			srcStart := gray.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.data[y*width:(y+1)*width], gray.Pix[srcStart:srcStart+width])
		}
		return buf, nil
	}

	buf, err := New(width, height, 3)
	if err != nil {
		return nil, err
	}

	// Fast path for non-premultiplied sources
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			for x := range width {
				src := nrgba.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
				dst := (y*width + x) * 3
				copy(buf.data[dst:dst+3], nrgba.Pix[src:src+3])
			}
		}
		return buf, nil
	}

	for y := range height {
		for x := range width {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			dst := (y*width + x) * 3
			// RGBA() returns 16-bit values
			buf.data[dst] = byte(r >> 8)
			buf.data[dst+1] = byte(g >> 8)
			buf.data[dst+2] = byte(b >> 8)
		}
	}
	return buf, nil
}

// ToImage converts the buffer to a standard library image.
// Returns *image.Gray for grayscale and an opaque *image.RGBA for RGB.
func (b *Buffer) ToImage() image.Image {
	rect := image.Rect(0, 0, b.width, b.height)

	if b.format == FormatGray8 {
		gray := image.NewGray(rect)
		copy(gray.Pix, b.data)
		return gray
	}

	rgba := image.NewRGBA(rect)
	for i, j := 0, 0; i+2 < len(b.data); i, j = i+3, j+4 {
		rgba.Pix[j] = b.data[i]
		rgba.Pix[j+1] = b.data[i+1]
		rgba.Pix[j+2] = b.data[i+2]
		rgba.Pix[j+3] = 255
	}
	return rgba
}

// CopyFromImage overwrites b with img, which must have b's dimensions.
// Colour images written into a grayscale buffer are reduced to luminance.
func (b *Buffer) CopyFromImage(img image.Image) error {
	bounds := img.Bounds()
	if bounds.Dx() != b.width || bounds.Dy() != b.height {
		return fmt.Errorf("%w: image %dx%d, buffer %dx%d",
			ErrShapeMismatch, bounds.Dx(), bounds.Dy(), b.width, b.height)
	}

	if gray, ok := img.(*image.Gray); ok && b.format == FormatGray8 {
		for y := range b.height {
			start := gray.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(b.data[y*b.width:(y+1)*b.width], gray.Pix[start:start+b.width])
		}
		return nil
	}

	// Fast path for opaque RGBA produced by ToImage
	if rgba, ok := img.(*image.RGBA); ok && b.format == FormatRGB8 {
		for y := range b.height {
			src := rgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			dst := y * b.width * 3
			for x := range b.width {
				copy(b.data[dst+x*3:dst+x*3+3], rgba.Pix[src+x*4:src+x*4+3])
			}
		}
		return nil
	}

	for y := range b.height {
		for x := range b.width {
			r, g, bl, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			px := b.PixelAt(x, y)
			if b.format == FormatGray8 {
				px[0] = Luma(byte(r>>8), byte(g>>8), byte(bl>>8))
				continue
			}
			px[0], px[1], px[2] = byte(r>>8), byte(g>>8), byte(bl>>8)
		}
	}
	return nil
}

// EncodePNG encodes the buffer as PNG to the given writer.
func (b *Buffer) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToImage()); err != nil {
		return fmt.Errorf("frame: encode PNG: %w", err)
	}
	return nil
}

// EncodeBMP encodes the buffer as an uncompressed BMP to the given writer.
func (b *Buffer) EncodeBMP(w io.Writer) error {
	if err := bmp.Encode(w, b.ToImage()); err != nil {
		return fmt.Errorf("frame: encode BMP: %w", err)
	}
	return nil
}

// EncodeToBytes encodes the buffer to PNG format and returns the bytes.
func (b *Buffer) EncodeToBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the buffer to path, choosing BMP for a ".bmp" extension and
// PNG otherwise.
func (b *Buffer) Save(path string) error {
	return SaveImage(path, b.ToImage())
}

// SaveImage writes img to path, choosing BMP for a ".bmp" extension and PNG
// otherwise.
func SaveImage(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("frame: create file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		err = bmp.Encode(f, img)
	} else {
		err = png.Encode(f, img)
	}
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("frame: encode %s: %w", filepath.Base(path), err)
	}

	return f.Close()
}

// Load decodes a PNG or BMP file into a Buffer.
func Load(path string) (*Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("frame: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var img image.Image
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		img, err = bmp.Decode(f)
	} else {
		img, err = png.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("frame: decode %s: %w", filepath.Base(path), err)
	}
	return FromImage(img)
}
