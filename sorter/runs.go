package sorter

import "github.com/chewxy/math32"

// span is a half-open [start, end) index range into a pixel sequence.
type span struct {
	start, end int
}

// segment partitions a brightness sequence into maximal runs whose
// adjacent deltas stay within threshold. A run boundary opens wherever the
// delta exceeds threshold; runs shorter than two pixels are dropped since
// there is nothing to reorder. Single linear pass, no look-ahead.
func segment(brightness []float32, threshold float32) []span {
	var runs []span
	start := 0
	for i := 1; i < len(brightness); i++ {
		if math32.Abs(brightness[i]-brightness[i-1]) > threshold {
			if i-start > 1 {
				runs = append(runs, span{start: start, end: i})
			}
			start = i
		}
	}
	if len(brightness)-start > 1 {
		runs = append(runs, span{start: start, end: len(brightness)})
	}
	return runs
}
