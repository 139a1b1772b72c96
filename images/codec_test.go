package images

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPattern(width, height int) *Buffer {
	buf := NewBuffer(width, height, RGBChannels)
	for i := range buf.Pix {
		buf.Pix[i] = uint8((i * 13) % 256)
	}
	return buf
}

func TestCodecPNGRoundTrip(t *testing.T) {
	codec := NewCodec(1920, 1080)
	path := filepath.Join(t.TempDir(), "out.png")

	src := testPattern(20, 10)
	require.NoError(t, codec.Save(path, src, DefaultQuality))

	loaded, err := codec.Load(path)
	require.NoError(t, err)
	assert.Equal(t, src.Width, loaded.Width)
	assert.Equal(t, src.Height, loaded.Height)
	assert.Equal(t, src.Pix, loaded.Pix, "PNG is lossless")
}

func TestCodecJPEGRoundTrip(t *testing.T) {
	codec := NewCodec(1920, 1080)
	path := filepath.Join(t.TempDir(), "out.jpg")

	src := testPattern(32, 16)
	require.NoError(t, codec.Save(path, src, DefaultQuality))

	loaded, err := codec.Load(path)
	require.NoError(t, err)
	assert.Equal(t, src.Width, loaded.Width, "JPEG keeps dimensions even though values are lossy")
	assert.Equal(t, src.Height, loaded.Height)
	assert.Equal(t, RGBChannels, loaded.Channels)
}

func TestCodecUnsupportedFormat(t *testing.T) {
	codec := NewCodec(1920, 1080)

	_, err := codec.Load("picture.xyz")
	assert.Error(t, err, "unknown extension must be rejected before touching the file")
}

func TestCodecMissingFile(t *testing.T) {
	codec := NewCodec(1920, 1080)

	_, err := codec.Load(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestCodecDownscalesOversized(t *testing.T) {
	unbounded := NewCodec(0, 0)
	path := filepath.Join(t.TempDir(), "big.png")
	require.NoError(t, unbounded.Save(path, testPattern(100, 40), DefaultQuality))

	bounded := NewCodec(50, 50)
	loaded, err := bounded.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, loaded.Width, "oversized image shrinks to the bound")
	assert.Equal(t, 20, loaded.Height, "aspect ratio is preserved")
}

func TestCodecSaveCreatesDirectories(t *testing.T) {
	codec := NewCodec(1920, 1080)
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.png")

	require.NoError(t, codec.Save(path, testPattern(8, 8), DefaultQuality))

	_, err := codec.Load(path)
	assert.NoError(t, err)
}

func TestCodecSaveInvalidBuffer(t *testing.T) {
	codec := NewCodec(1920, 1080)
	err := codec.Save(filepath.Join(t.TempDir(), "bad.png"), &Buffer{}, DefaultQuality)
	assert.ErrorIs(t, err, ErrInvalidBuffer)
}
