package images

import (
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// FitDisplay scales the buffer to fill a display area of targetWidth x
// targetHeight while keeping the aspect ratio: a wider-than-target image is
// fitted to the width, a taller one to the height.
//
// Arguments:
// - buf: The source buffer (left untouched).
// - targetWidth, targetHeight: The display area in pixels.
//
// Returns:
// - A new Buffer no larger than the target in either dimension.
func FitDisplay(buf *Buffer, targetWidth, targetHeight int) (*Buffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if targetWidth <= 0 || targetHeight <= 0 {
		return nil, errors.Errorf("invalid display area %dx%d", targetWidth, targetHeight)
	}

	imgRatio := float64(buf.Width) / float64(buf.Height)
	targetRatio := float64(targetWidth) / float64(targetHeight)

	var newWidth, newHeight int
	if imgRatio > targetRatio {
		// Image is wider than the display area, fit to width.
		newWidth = targetWidth
		newHeight = int(float64(targetWidth) / imgRatio)
	} else {
		newHeight = targetHeight
		newWidth = int(float64(targetHeight) * imgRatio)
	}

	resized := resize.Resize(uint(newWidth), uint(newHeight), buf.ToImage(), resize.Lanczos3)
	return FromImage(resized), nil
}

// Thumbnail shrinks the buffer so neither side exceeds maxSide, keeping the
// aspect ratio. Buffers already within the bound are copied unchanged.
func Thumbnail(buf *Buffer, maxSide int) (*Buffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if maxSide <= 0 {
		return nil, errors.Errorf("invalid thumbnail size %d", maxSide)
	}
	if buf.Width <= maxSide && buf.Height <= maxSide {
		return buf.Clone(), nil
	}

	resized := resize.Thumbnail(uint(maxSide), uint(maxSide), buf.ToImage(), resize.Lanczos3)
	return FromImage(resized), nil
}
