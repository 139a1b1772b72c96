package images

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromImageRGB(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	img.SetRGBA(1, 0, color.RGBA{R: 40, G: 50, B: 60, A: 255})
	img.SetRGBA(0, 1, color.RGBA{R: 70, G: 80, B: 90, A: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 100, G: 110, B: 120, A: 255})

	buf := FromImage(img)
	require.NoError(t, buf.Validate())
	assert.Equal(t, 2, buf.Width)
	assert.Equal(t, 2, buf.Height)
	assert.Equal(t, RGBChannels, buf.Channels)
	assert.Equal(t, []uint8{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120}, buf.Pix)
}

func TestFromImageGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 1))
	img.SetGray(0, 0, color.Gray{Y: 5})
	img.SetGray(1, 0, color.Gray{Y: 128})
	img.SetGray(2, 0, color.Gray{Y: 250})

	buf := FromImage(img)
	require.NoError(t, buf.Validate())
	assert.Equal(t, GrayChannels, buf.Channels, "grayscale source maps to one channel")
	assert.Equal(t, []uint8{5, 128, 250}, buf.Pix)
}

func TestToImageRoundTrip(t *testing.T) {
	buf := NewBuffer(4, 3, RGBChannels)
	for i := range buf.Pix {
		buf.Pix[i] = uint8(i * 7)
	}

	back := FromImage(buf.ToImage())
	assert.Equal(t, buf.Pix, back.Pix, "RGB buffer survives an image round trip")

	gray := NewBuffer(4, 3, GrayChannels)
	for i := range gray.Pix {
		gray.Pix[i] = uint8(i * 11)
	}
	grayBack := FromImage(gray.ToImage())
	assert.Equal(t, GrayChannels, grayBack.Channels)
	assert.Equal(t, gray.Pix, grayBack.Pix, "gray buffer survives an image round trip")
}

func TestBrightness(t *testing.T) {
	buf := NewBuffer(2, 1, RGBChannels)
	copy(buf.Pix, []uint8{30, 60, 90, 255, 255, 255})
	assert.InDelta(t, 60.0, buf.Brightness(0, 0), 0.001, "brightness is the channel mean")
	assert.InDelta(t, 255.0, buf.Brightness(1, 0), 0.001)

	gray := NewBuffer(1, 1, GrayChannels)
	gray.Pix[0] = 77
	assert.InDelta(t, 77.0, gray.Brightness(0, 0), 0.001)
}

func TestCloneIsIndependent(t *testing.T) {
	buf := NewBuffer(2, 2, GrayChannels)
	copy(buf.Pix, []uint8{1, 2, 3, 4})

	clone := buf.Clone()
	clone.Pix[0] = 99
	assert.Equal(t, uint8(1), buf.Pix[0], "mutating the clone must not touch the original")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		buf  *Buffer
		ok   bool
	}{
		{"valid RGB", NewBuffer(4, 4, RGBChannels), true},
		{"valid gray", NewBuffer(4, 4, GrayChannels), true},
		{"nil buffer", nil, false},
		{"zero width", &Buffer{Width: 0, Height: 4, Channels: 3}, false},
		{"zero height", &Buffer{Width: 4, Height: 0, Channels: 3}, false},
		{"two channels", &Buffer{Width: 2, Height: 2, Channels: 2, Pix: make([]uint8, 8)}, false},
		{"short pix", &Buffer{Width: 2, Height: 2, Channels: 3, Pix: make([]uint8, 3)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.buf.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidBuffer)
			}
		})
	}
}
