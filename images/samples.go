package images

import (
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// Sample image dimensions, matching the kiosk demo assets.
const (
	sampleWidth  = 400
	sampleHeight = 300
)

// noiseSeed keeps regenerated noise samples reproducible across runs.
const noiseSeed = 42

// GradientSample builds a three-way RGB gradient: red follows x, green
// follows y, blue follows x+y. Gradients give the sorter long smooth runs.
func GradientSample() *Buffer {
	buf := NewBuffer(sampleWidth, sampleHeight, RGBChannels)
	Parallel(sampleHeight, func(partStart, partEnd int) {
		for y := partStart; y < partEnd; y++ {
			for x := 0; x < sampleWidth; x++ {
				off := buf.PixOffset(x, y)
				buf.Pix[off+0] = uint8(255 * x / sampleWidth)
				buf.Pix[off+1] = uint8(255 * y / sampleHeight)
				buf.Pix[off+2] = uint8(255 * (x + y) / (sampleWidth + sampleHeight))
			}
		}
	})
	return buf
}

// NoiseSample builds uniform RGB noise with a brightened checker overlay
// every 20 pixels so the sorted output keeps visible structure. The same
// seed always produces the same image.
func NoiseSample(seed int64) *Buffer {
	rng := rand.New(rand.NewSource(seed))
	buf := NewBuffer(sampleWidth, sampleHeight, RGBChannels)
	for i := range buf.Pix {
		buf.Pix[i] = uint8(rng.Intn(256))
	}

	for y := 0; y < sampleHeight; y++ {
		for x := 0; x < sampleWidth; x++ {
			if (x/20+y/20)%2 != 0 {
				continue
			}
			off := buf.PixOffset(x, y)
			for c := 0; c < RGBChannels; c++ {
				v := int(buf.Pix[off+c]) + 50
				if v > 255 {
					v = 255
				}
				buf.Pix[off+c] = uint8(v)
			}
		}
	}
	return buf
}

// PatternSample draws a 40x30 checkerboard where light squares trend toward
// white-blue and dark squares carry a dim gradient. The gradient runs per
// pixel, so every square shades smoothly across its own area.
func PatternSample() *Buffer {
	const cellWidth, cellHeight = 40, 30

	dc := gg.NewContext(sampleWidth, sampleHeight)
	for y := 0; y < sampleHeight; y++ {
		for x := 0; x < sampleWidth; x++ {
			var r, g, b int
			if (x/cellWidth)%2 == (y/cellHeight)%2 {
				r = 150 + 105*x/sampleWidth
				g = 150 + 105*y/sampleHeight
				b = 200
			} else {
				r = 100 * x / sampleWidth
				g = 100 * y / sampleHeight
				b = 50
			}
			dc.SetRGB255(r, g, b)
			dc.SetPixel(x, y)
		}
	}
	return FromImage(dc.Image())
}

// WriteSamples materialises the demo images under dir, skipping any that
// already exist, and returns the sorted list of sample files found there.
func WriteSamples(codec Codec, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create sample directory %s", dir)
	}

	generators := []struct {
		name string
		gen  func() *Buffer
	}{
		{"gradient.png", GradientSample},
		{"noise.png", func() *Buffer { return NoiseSample(noiseSeed) }},
		{"pattern.png", PatternSample},
	}
	for _, g := range generators {
		path := filepath.Join(dir, g.name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := codec.Save(path, g.gen(), DefaultQuality); err != nil {
			return nil, err
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "list sample directory %s", dir)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if supportedExt(strings.ToLower(filepath.Ext(entry.Name()))) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
