package sorter

import "github.com/chewxy/math32"

// point is one image coordinate on a traversal line.
type point struct {
	x, y int
}

// rayCount is the number of evenly spaced radial rays; one every 10 degrees.
const rayCount = 36

// sequences enumerates the traversal lines for the given geometry, in a
// deterministic geometry-defined order. Every coordinate is in bounds.
// Horizontal and vertical sample every interval-th row or column; diagonal
// steps the diagonal offset by interval; radial couples the angular stride
// to interval (a ray runs only when its angle is a multiple of interval*10).
func sequences(algorithm Algorithm, width, height, interval int) [][]point {
	switch algorithm {
	case Horizontal:
		return rowSequences(width, height, interval)
	case Vertical:
		return columnSequences(width, height, interval)
	case Diagonal:
		return diagonalSequences(width, height, interval)
	case Radial:
		return radialSequences(width, height, interval)
	}
	return nil
}

func rowSequences(width, height, interval int) [][]point {
	var seqs [][]point
	for y := 0; y < height; y += interval {
		seq := make([]point, width)
		for x := 0; x < width; x++ {
			seq[x] = point{x, y}
		}
		seqs = append(seqs, seq)
	}
	return seqs
}

func columnSequences(width, height, interval int) [][]point {
	var seqs [][]point
	for x := 0; x < width; x += interval {
		seq := make([]point, height)
		for y := 0; y < height; y++ {
			seq[y] = point{x, y}
		}
		seqs = append(seqs, seq)
	}
	return seqs
}

// diagonalSequences walks top-left to bottom-right diagonals. Offset o >= 0
// follows (x, y) = (i+o, i); o < 0 follows (i, i-o). Offsets step by
// interval across -height .. width-1.
func diagonalSequences(width, height, interval int) [][]point {
	var seqs [][]point
	for offset := -height; offset < width; offset += interval {
		var n int
		if offset >= 0 {
			n = min(height, width-offset)
		} else {
			n = min(width, height+offset)
		}
		if n < 2 {
			continue
		}
		seq := make([]point, n)
		for i := 0; i < n; i++ {
			if offset >= 0 {
				seq[i] = point{i + offset, i}
			} else {
				seq[i] = point{i, i - offset}
			}
		}
		seqs = append(seqs, seq)
	}
	return seqs
}

// radialSequences casts rays from the integer image centre outward. The
// radius is bounded by the distance to the nearest edge and starts at 1, so
// the centre pixel itself is never visited. Coordinates use truncating
// float-to-int conversion of centre + r*(cos, sin).
func radialSequences(width, height, interval int) [][]point {
	cx, cy := width/2, height/2
	maxRadius := min(cx, cy, width-cx, height-cy)

	var seqs [][]point
	for angle := 0; angle < 360; angle += 360 / rayCount {
		if angle%(interval*10) != 0 {
			continue
		}
		radians := math32.Pi * float32(angle) / 180
		cos := math32.Cos(radians)
		sin := math32.Sin(radians)

		var seq []point
		for r := 1; r < maxRadius; r++ {
			x := int(float32(cx) + float32(r)*cos)
			y := int(float32(cy) + float32(r)*sin)
			if x >= 0 && x < width && y >= 0 && y < height {
				seq = append(seq, point{x, y})
			}
		}
		if len(seq) < 2 {
			continue
		}
		seqs = append(seqs, seq)
	}
	return seqs
}
