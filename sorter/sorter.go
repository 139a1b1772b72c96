// Package sorter implements run-based pixel sorting: pixels along a
// traversal line are grouped into contiguous runs by brightness similarity
// and each run is reordered by ascending brightness. Four traversal
// geometries are supported: horizontal, vertical, diagonal, and radial.
//
// The engine is pure and stateless. It never mutates the input buffer and
// returns a freshly allocated output, so callers can keep the original
// around for display or undo.
package sorter

import (
	"context"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/glitchbooth/pixelsort/images"
)

// ErrUnknownAlgorithm is returned when the requested geometry is not one of
// the four supported traversals.
var ErrUnknownAlgorithm = errors.New("unknown sorting algorithm")

// Algorithm selects the traversal geometry used to slice the image into
// pixel sequences.
type Algorithm int

const (
	// Horizontal sorts runs within sampled rows.
	Horizontal Algorithm = iota
	// Vertical sorts runs within sampled columns.
	Vertical
	// Diagonal sorts runs along top-left to bottom-right diagonals.
	Diagonal
	// Radial sorts runs along rays cast outward from the image centre.
	Radial
)

// Algorithms returns the supported geometries in display order.
func Algorithms() []Algorithm {
	return []Algorithm{Horizontal, Vertical, Diagonal, Radial}
}

func (a Algorithm) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	case Radial:
		return "radial"
	}
	return "unknown"
}

// ParseAlgorithm maps a user-facing name back to its Algorithm value.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if a.String() == strings.ToLower(name) {
			return a, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

// Parameter domains. Out-of-range values are clamped rather than rejected;
// strict validation belongs to the caller (see the config package). The
// clamping policy keeps Preview total for every in-range interval.
const (
	MinThreshold float32 = 0
	MaxThreshold float32 = 255
	MinInterval          = 1
	MaxInterval          = 50
)

// previewIntervalFactor is the interval multiplier applied by Preview.
const previewIntervalFactor = 3

// Params controls run detection and traversal density.
type Params struct {
	// Threshold is the largest brightness delta between adjacent pixels
	// that still belong to the same run. Domain [0,255].
	Threshold float32
	// Interval is the traversal sampling stride: every Interval-th row,
	// column, or diagonal, and a coupled angular stride for Radial.
	// Domain [1,50].
	Interval int
}

// DefaultParams returns the kiosk defaults.
func DefaultParams() Params {
	return Params{Threshold: 50, Interval: 10}
}

func (p Params) clamped() Params {
	if p.Threshold < MinThreshold {
		p.Threshold = MinThreshold
	}
	if p.Threshold > MaxThreshold {
		p.Threshold = MaxThreshold
	}
	if p.Interval < MinInterval {
		p.Interval = MinInterval
	}
	if p.Interval > MaxInterval {
		p.Interval = MaxInterval
	}
	return p
}

// Sort applies the pixel sorting effect and returns a new buffer of the
// same shape. The input is never modified.
//
// Pixel values and brightness are always read from the input buffer; where
// radial rays overlap near the centre, the last ray in angle order wins,
// which keeps the output deterministic.
//
// Cancellation is checked between pixel sequences; a cancelled context
// returns ctx.Err() and no buffer.
func Sort(ctx context.Context, src *images.Buffer, algorithm Algorithm, p Params) (*images.Buffer, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	switch algorithm {
	case Horizontal, Vertical, Diagonal, Radial:
	default:
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%d", int(algorithm))
	}
	p = p.clamped()

	dst := src.Clone()
	seqs := sequences(algorithm, src.Width, src.Height, p.Interval)

	if algorithm == Radial {
		// Rays can revisit pixels at low radius, so they run sequentially
		// to preserve last-write-wins in generator order.
		for _, seq := range seqs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			sortSequence(src, dst, seq, p.Threshold)
		}
		return dst, nil
	}

	// The other geometries never share a pixel between sequences, so the
	// sequence list can be partitioned across goroutines.
	images.Parallel(len(seqs), func(partStart, partEnd int) {
		for i := partStart; i < partEnd; i++ {
			if ctx.Err() != nil {
				return
			}
			sortSequence(src, dst, seqs[i], p.Threshold)
		}
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return dst, nil
}

// Preview trades fidelity for speed by tripling the sampling interval
// before delegating to Sort. Preview(img, a, p) with interval i equals
// Sort(img, a, p) with interval 3i exactly.
func Preview(ctx context.Context, src *images.Buffer, algorithm Algorithm, p Params) (*images.Buffer, error) {
	p.Interval *= previewIntervalFactor
	return Sort(ctx, src, algorithm, p)
}

// sortSequence segments one traversal line into runs and writes each run
// back in ascending brightness order.
func sortSequence(src, dst *images.Buffer, seq []point, threshold float32) {
	brightness := make([]float32, len(seq))
	for i, pt := range seq {
		brightness[i] = src.Brightness(pt.x, pt.y)
	}
	for _, r := range segment(brightness, threshold) {
		reorder(src, dst, seq[r.start:r.end], brightness[r.start:r.end])
	}
}

// reorder writes the run's pixels back to their coordinates in ascending
// brightness order. Ties keep their original relative order so the
// transform stays reproducible.
func reorder(src, dst *images.Buffer, seq []point, brightness []float32) {
	order := make([]int, len(seq))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return brightness[order[i]] < brightness[order[j]]
	})

	ch := src.Channels
	for i, from := range order {
		srcOff := src.PixOffset(seq[from].x, seq[from].y)
		dstOff := dst.PixOffset(seq[i].x, seq[i].y)
		copy(dst.Pix[dstOff:dstOff+ch], src.Pix[srcOff:srcOff+ch])
	}
}
