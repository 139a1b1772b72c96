// Package images - pixel buffer model plus the image I/O utilities that feed
// the sorting engine: codec, thumbnailing, and sample synthesis.
package images

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// ErrInvalidBuffer is returned when a pixel buffer cannot be processed
// (zero area, unsupported channel count, or truncated pixel data).
var ErrInvalidBuffer = errors.New("invalid pixel buffer")

// Channel counts supported by the engine.
const (
	// GrayChannels is a single-channel grayscale buffer.
	GrayChannels = 1
	// RGBChannels is a three-channel RGB buffer.
	RGBChannels = 3
)

// Buffer is a decoded raster image: a Width x Height grid of pixels with
// Channels values per pixel in [0,255], stored row-major in HWC order.
// It is the exchange type between the codec and the sorting engine.
type Buffer struct {
	// Width is the image width in pixels.
	Width int `json:"width" yaml:"width"`
	// Height is the image height in pixels.
	Height int `json:"height" yaml:"height"`
	// Channels is 1 for grayscale or 3 for RGB.
	Channels int `json:"channels" yaml:"channels"`
	// Pix holds Width*Height*Channels bytes.
	Pix []uint8 `json:"pix" yaml:"pix"`
}

// NewBuffer allocates a zeroed buffer of the given shape.
func NewBuffer(width, height, channels int) *Buffer {
	return &Buffer{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]uint8, width*height*channels),
	}
}

// FromImage converts any image.Image into a Buffer. A *image.Gray source
// maps to a single-channel buffer; everything else becomes three-channel
// RGB with the alpha channel discarded.
//
// Arguments:
// - img: The decoded source image.
//
// Returns:
// - A freshly allocated Buffer with no reference to the source.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()

	if gray, ok := img.(*image.Gray); ok {
		buf := NewBuffer(bounds.Dx(), bounds.Dy(), GrayChannels)
		Parallel(buf.Height, func(partStart, partEnd int) {
			for y := partStart; y < partEnd; y++ {
				row := gray.PixOffset(bounds.Min.X, bounds.Min.Y+y)
				copy(buf.Pix[y*buf.Width:(y+1)*buf.Width], gray.Pix[row:row+buf.Width])
			}
		})
		return buf
	}

	buf := NewBuffer(bounds.Dx(), bounds.Dy(), RGBChannels)
	Parallel(buf.Height, func(partStart, partEnd int) {
		for y := partStart; y < partEnd; y++ {
			for x := 0; x < buf.Width; x++ {
				r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				off := buf.PixOffset(x, y)
				// RGBA() returns 16-bit values, we store 8-bit.
				buf.Pix[off+0] = uint8(r >> 8)
				buf.Pix[off+1] = uint8(g >> 8)
				buf.Pix[off+2] = uint8(b >> 8)
			}
		}
	})
	return buf
}

// ToImage converts the buffer back into a standard library image: a
// *image.Gray for single-channel buffers, an opaque *image.RGBA otherwise.
func (b *Buffer) ToImage() image.Image {
	if b.Channels == GrayChannels {
		gray := image.NewGray(image.Rect(0, 0, b.Width, b.Height))
		for y := 0; y < b.Height; y++ {
			copy(gray.Pix[y*gray.Stride:y*gray.Stride+b.Width], b.Pix[y*b.Width:(y+1)*b.Width])
		}
		return gray
	}

	rgba := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	Parallel(b.Height, func(partStart, partEnd int) {
		for y := partStart; y < partEnd; y++ {
			for x := 0; x < b.Width; x++ {
				off := b.PixOffset(x, y)
				rgba.SetRGBA(x, y, color.RGBA{
					R: b.Pix[off+0],
					G: b.Pix[off+1],
					B: b.Pix[off+2],
					A: 255,
				})
			}
		}
	})
	return rgba
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{
		Width:    b.Width,
		Height:   b.Height,
		Channels: b.Channels,
		Pix:      make([]uint8, len(b.Pix)),
	}
	copy(out.Pix, b.Pix)
	return out
}

// PixOffset returns the index of the first channel of pixel (x, y) in Pix.
func (b *Buffer) PixOffset(x, y int) int {
	return (y*b.Width + x) * b.Channels
}

// Brightness returns the mean of the channel values at (x, y). This is the
// sort key and run-boundary signal used by the engine.
func (b *Buffer) Brightness(x, y int) float32 {
	off := b.PixOffset(x, y)
	if b.Channels == GrayChannels {
		return float32(b.Pix[off])
	}
	sum := int(b.Pix[off]) + int(b.Pix[off+1]) + int(b.Pix[off+2])
	return float32(sum) / 3
}

// Validate rejects buffers the engine cannot process. All failures wrap
// ErrInvalidBuffer.
func (b *Buffer) Validate() error {
	if b == nil {
		return errors.Wrap(ErrInvalidBuffer, "nil buffer")
	}
	if b.Width <= 0 || b.Height <= 0 {
		return errors.Wrapf(ErrInvalidBuffer, "zero-area image %dx%d", b.Width, b.Height)
	}
	if b.Channels != GrayChannels && b.Channels != RGBChannels {
		return errors.Wrapf(ErrInvalidBuffer, "unsupported channel count %d", b.Channels)
	}
	if len(b.Pix) != b.Width*b.Height*b.Channels {
		return errors.Wrapf(ErrInvalidBuffer, "pixel data length %d does not match %dx%dx%d",
			len(b.Pix), b.Width, b.Height, b.Channels)
	}
	return nil
}
