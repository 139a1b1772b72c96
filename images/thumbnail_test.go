package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitDisplayWideImage(t *testing.T) {
	// 2:1 image into a 4:3 area fits to width.
	src := testPattern(200, 100)

	out, err := FitDisplay(src, 120, 90)
	require.NoError(t, err)
	assert.Equal(t, 120, out.Width)
	assert.Equal(t, 60, out.Height)
}

func TestFitDisplayTallImage(t *testing.T) {
	// 1:2 image into a 4:3 area fits to height.
	src := testPattern(100, 200)

	out, err := FitDisplay(src, 120, 90)
	require.NoError(t, err)
	assert.Equal(t, 45, out.Width)
	assert.Equal(t, 90, out.Height)
}

func TestFitDisplayMatchingRatio(t *testing.T) {
	src := testPattern(400, 300)

	out, err := FitDisplay(src, 480, 360)
	require.NoError(t, err)
	assert.Equal(t, 480, out.Width, "matching ratio fills the display area exactly")
	assert.Equal(t, 360, out.Height)
}

func TestFitDisplayInvalidTarget(t *testing.T) {
	_, err := FitDisplay(testPattern(10, 10), 0, 100)
	assert.Error(t, err)
}

func TestThumbnailBounds(t *testing.T) {
	out, err := Thumbnail(testPattern(400, 300), 128)
	require.NoError(t, err)
	assert.Equal(t, 128, out.Width)
	assert.Equal(t, 96, out.Height)
}

func TestThumbnailSmallImagePassesThrough(t *testing.T) {
	src := testPattern(50, 40)

	out, err := Thumbnail(src, 128)
	require.NoError(t, err)
	assert.Equal(t, src.Pix, out.Pix, "images within the bound are copied unchanged")

	out.Pix[0]++
	assert.NotEqual(t, src.Pix[0], out.Pix[0], "pass-through is still a copy")
}
