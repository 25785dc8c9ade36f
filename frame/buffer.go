// Package frame provides the pixel buffer camera frames are published in.
//
// A Buffer is a fixed-size raster of 8-bit samples with one (gray) or three
// (RGB) channels per pixel, stored contiguously row by row without padding.
// Every effect operator reads and writes Buffers and none of them changes
// the width, height or channel count of the buffer it is given.
package frame

import (
	"errors"
	"fmt"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("frame: invalid dimensions")

	// ErrInvalidChannels is returned when the channel count is not 1 or 3.
	ErrInvalidChannels = errors.New("frame: channel count must be 1 or 3")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("frame: data buffer too small")

	// ErrShapeMismatch is returned when two buffers differ in width, height
	// or channel count.
	ErrShapeMismatch = errors.New("frame: shape mismatch")
)

// Buffer is a W x H raster of 8-bit samples.
//
// Thread safety: Buffer is safe for concurrent read access. Writes require
// external synchronization.
type Buffer struct {
	data   []byte
	width  int
	height int
	format Format
}

// New allocates a zeroed (black) buffer of the given size and channel count.
func New(width, height, channels int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	format, ok := FormatForChannels(channels)
	if !ok {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChannels, channels)
	}

	return &Buffer{
		data:   make([]byte, format.RowBytes(width)*height),
		width:  width,
		height: height,
		format: format,
	}, nil
}

// MustNew is like New but panics on invalid arguments.
// Intended for tests and fixed-size scratch buffers.
func MustNew(width, height, channels int) *Buffer {
	b, err := New(width, height, channels)
	if err != nil {
		panic(err)
	}
	return b
}

// FromRaw wraps existing data without copying.
// The caller must ensure data remains valid for the lifetime of the Buffer.
func FromRaw(data []byte, width, height, channels int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	format, ok := FormatForChannels(channels)
	if !ok {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChannels, channels)
	}

	required := format.RowBytes(width) * height
	if len(data) < required {
		return nil, ErrDataTooSmall
	}

	return &Buffer{
		data:   data[:required],
		width:  width,
		height: height,
		format: format,
	}, nil
}

// Clone creates a deep copy of the buffer.
// A nil buffer clones to nil.
func (b *Buffer) Clone() *Buffer {
	if b == nil {
		return nil
	}
	newData := make([]byte, len(b.data))
	copy(newData, b.data)

	return &Buffer{
		data:   newData,
		width:  b.width,
		height: b.height,
		format: b.format,
	}
}

// CopyFrom overwrites b with the samples of src.
// Returns ErrShapeMismatch if the two buffers differ in shape.
func (b *Buffer) CopyFrom(src *Buffer) error {
	if !b.SameShape(src) {
		return ErrShapeMismatch
	}
	copy(b.data, src.data)
	return nil
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Channels returns the number of samples per pixel (1 or 3).
func (b *Buffer) Channels() int {
	return b.format.Channels()
}

// Format returns the pixel format.
func (b *Buffer) Format() Format {
	return b.format
}

// Bounds returns the buffer dimensions as (width, height).
func (b *Buffer) Bounds() (int, int) {
	return b.width, b.height
}

// Stride returns the number of bytes per row.
func (b *Buffer) Stride() int {
	return b.format.RowBytes(b.width)
}

// Data returns the raw sample slice, row-major, channels interleaved.
func (b *Buffer) Data() []byte {
	return b.data
}

// SameShape reports whether o has the same width, height and channel count.
func (b *Buffer) SameShape(o *Buffer) bool {
	if b == nil || o == nil {
		return false
	}
	return b.width == o.width && b.height == o.height && b.format == o.format
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *Buffer) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return (y*b.width + x) * b.format.Channels()
}

// PixelAt returns the channel samples of pixel (x, y) as a slice aliasing
// the buffer. Returns nil if coordinates are out of bounds.
func (b *Buffer) PixelAt(x, y int) []byte {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return nil
	}
	return b.data[offset : offset+b.format.Channels()]
}

// SetPixel copies px into pixel (x, y). Coordinates out of bounds are
// ignored; extra or missing samples in px are ignored.
func (b *Buffer) SetPixel(x, y int, px []byte) {
	if dst := b.PixelAt(x, y); dst != nil {
		copy(dst, px)
	}
}

// Clear sets all samples to zero (black).
func (b *Buffer) Clear() {
	clear(b.data)
}

// Fill sets every sample to v.
func (b *Buffer) Fill(v byte) {
	for i := range b.data {
		b.data[i] = v
	}
}

// FillRGB sets every pixel to (r, g, bl). Grayscale buffers receive the
// BT.601 luminance of the colour.
func (b *Buffer) FillRGB(r, g, bl byte) {
	if b.format == FormatGray8 {
		b.Fill(Luma(r, g, bl))
		return
	}
	for i := 0; i+2 < len(b.data); i += 3 {
		b.data[i] = r
		b.data[i+1] = g
		b.data[i+2] = bl
	}
}

// Equal reports whether o has the same shape and identical samples.
func (b *Buffer) Equal(o *Buffer) bool {
	if !b.SameShape(o) {
		return false
	}
	for i := range b.data {
		if b.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// IsEmpty returns true if the buffer is nil or has zero dimensions.
func (b *Buffer) IsEmpty() bool {
	return b == nil || b.width == 0 || b.height == 0 || len(b.data) == 0
}

// ByteSize returns the total size of the sample data in bytes.
func (b *Buffer) ByteSize() int {
	return len(b.data)
}

// Luma returns the BT.601 luminance of an RGB triple:
// 0.299*R + 0.587*G + 0.114*B.
func Luma(r, g, b byte) byte {
	return byte((int(r)*299 + int(g)*587 + int(b)*114 + 500) / 1000)
}
