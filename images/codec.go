package images

import (
	"image"
	_ "image/gif" // register GIF decoding
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"  // register BMP decoding
	_ "golang.org/x/image/tiff" // register TIFF decoding
)

// DefaultQuality is the JPEG/WebP quality used when the caller does not care.
const DefaultQuality = 95

// Codec owns file decode/encode for the application layer. Images larger
// than MaxWidth x MaxHeight are downscaled on load to bound memory use.
type Codec struct {
	// MaxWidth is the largest accepted width before downscaling kicks in.
	MaxWidth int
	// MaxHeight is the largest accepted height before downscaling kicks in.
	MaxHeight int
}

// NewCodec returns a codec with the given load-time size bound.
func NewCodec(maxWidth, maxHeight int) Codec {
	return Codec{MaxWidth: maxWidth, MaxHeight: maxHeight}
}

// supportedExt reports whether the file extension names a format the codec
// can decode.
func supportedExt(ext string) bool {
	switch ext {
	case ".jpg", ".jpeg", ".png", ".bmp", ".gif", ".tiff", ".webp":
		return true
	}
	return false
}

// Load decodes the image at path into a Buffer.
//
// The file extension selects the format. Oversized images are shrunk with
// Lanczos resampling to fit the codec's bound while keeping aspect ratio.
//
// Arguments:
// - path: Path to a jpg/jpeg/png/bmp/gif/tiff/webp file.
//
// Returns:
// - A Buffer owned by the caller, and an error if the file is missing,
//   the extension is unsupported, or decoding fails.
func (c Codec) Load(path string) (*Buffer, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExt(ext) {
		return nil, errors.Errorf("unsupported image format: %s", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open image %s", path)
	}
	defer f.Close()

	var img image.Image
	if ext == ".webp" {
		img, err = webp.Decode(f)
	} else {
		img, _, err = image.Decode(f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode image %s", path)
	}

	bounds := img.Bounds()
	if c.MaxWidth > 0 && c.MaxHeight > 0 &&
		(bounds.Dx() > c.MaxWidth || bounds.Dy() > c.MaxHeight) {
		img = resize.Thumbnail(uint(c.MaxWidth), uint(c.MaxHeight), img, resize.Lanczos3)
	}

	buf := FromImage(img)
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	return buf, nil
}

// Save encodes the buffer to path. JPEG and WebP honour quality (0-100);
// every other extension falls back to PNG encoding, matching the original
// kiosk behaviour of defaulting to a lossless format. Parent directories
// are created as needed.
func (c Codec) Save(path string, buf *Buffer, quality int) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create output directory %s", dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create image %s", path)
	}
	defer f.Close()

	img := buf.ToImage()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: quality})
	case ".webp":
		err = webp.Encode(f, img, &webp.Options{Quality: float32(quality)})
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return errors.Wrapf(err, "encode image %s", path)
	}
	return nil
}
