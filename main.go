// Command pixelsort applies run-based pixel sorting effects to images.
//
// Typical use:
//
//	pixelsort -in photo.jpg -out sorted.png -algorithm diagonal -threshold 40
//
// With no -in flag it lists the available algorithms. The -samples flag
// generates the demo images used by the kiosk.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/glitchbooth/pixelsort/config"
	"github.com/glitchbooth/pixelsort/images"
	"github.com/glitchbooth/pixelsort/sorter"
)

func main() {
	settings := config.Default()

	var (
		inPath    string
		outPath   string
		algorithm string
		threshold float64
		interval  int
		preview   bool
		samples   bool
		thumbSide int
		timeout   time.Duration
	)
	flag.StringVar(&inPath, "in", "", "Input image (.jpg, .png, .bmp, .gif, .tiff, .webp)")
	flag.StringVar(&outPath, "out", "", "Output image path")
	flag.StringVar(&algorithm, "algorithm", sorter.Horizontal.String(), "Sorting geometry: horizontal, vertical, diagonal, radial")
	flag.Float64Var(&threshold, "threshold", float64(settings.DefaultThreshold), "Run-boundary brightness threshold [0-255]")
	flag.IntVar(&interval, "interval", settings.DefaultInterval, "Traversal sampling interval [1-50]")
	flag.BoolVar(&preview, "preview", false, "Fast preview (triples the interval)")
	flag.BoolVar(&samples, "samples", false, "Generate demo sample images and exit if no input given")
	flag.IntVar(&thumbSide, "thumbnail", 0, "Also write an N-pixel thumbnail next to the output (0 disables)")
	flag.DurationVar(&timeout, "timeout", 0, "Abort the sort after this duration (0 disables)")
	flag.Parse()

	codec := images.NewCodec(settings.MaxImageWidth, settings.MaxImageHeight)

	if samples {
		files, err := images.WriteSamples(codec, settings.SampleDir)
		if err != nil {
			log.Fatalf("Error generating samples: %v", err)
		}
		log.Printf("Sample images in %s:", settings.SampleDir)
		for _, f := range files {
			log.Printf("  %s", f)
		}
	}

	if inPath == "" {
		if !samples {
			names := make([]string, 0, len(sorter.Algorithms()))
			for _, a := range sorter.Algorithms() {
				names = append(names, a.String())
			}
			fmt.Printf("Available algorithms: %s\n", strings.Join(names, ", "))
			flag.Usage()
		}
		return
	}
	if outPath == "" {
		log.Fatal("Missing -out path")
	}

	if err := settings.Validate(float32(threshold), interval); err != nil {
		log.Fatalf("Invalid parameters: %v", err)
	}
	algo, err := sorter.ParseAlgorithm(algorithm)
	if err != nil {
		log.Fatalf("Invalid algorithm: %v", err)
	}

	buf, err := codec.Load(inPath)
	if err != nil {
		log.Fatalf("Error loading %s: %v", inPath, err)
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	params := sorter.Params{Threshold: float32(threshold), Interval: interval}
	start := time.Now()
	var result *images.Buffer
	if preview {
		result, err = sorter.Preview(ctx, buf, algo, params)
	} else {
		result, err = sorter.Sort(ctx, buf, algo, params)
	}
	if err != nil {
		log.Fatalf("Sort failed: %v", err)
	}
	log.Printf("Sorted %dx%d image with %s in %v", buf.Width, buf.Height, algo, time.Since(start))

	if err := codec.Save(outPath, result, images.DefaultQuality); err != nil {
		log.Fatalf("Error saving %s: %v", outPath, err)
	}
	log.Printf("Wrote %s", outPath)

	if thumbSide > 0 {
		thumb, err := images.Thumbnail(result, thumbSide)
		if err != nil {
			log.Fatalf("Error building thumbnail: %v", err)
		}
		thumbPath := thumbnailPath(outPath)
		if err := codec.Save(thumbPath, thumb, images.DefaultQuality); err != nil {
			log.Fatalf("Error saving %s: %v", thumbPath, err)
		}
		log.Printf("Wrote %s", thumbPath)
	}
}

// thumbnailPath derives "name_thumb.ext" from "name.ext".
func thumbnailPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_thumb" + ext
}
