package images

import (
	"runtime"
	"sync"
)

// Parallel splits dataSize work items across one goroutine per CPU core and
// blocks until all partitions finish. Small workloads run serially since the
// goroutine overhead would dominate.
//
// Arguments:
// - dataSize: The number of items to process.
// - fn: Called once per partition with half-open [partStart, partEnd) indices.
//
// Example:
//
//	Parallel(height, func(start, end int) {
//	    for y := start; y < end; y++ {
//	        // process row y
//	    }
//	})
func Parallel(dataSize int, fn func(partStart, partEnd int)) {
	workers := runtime.NumCPU()
	if dataSize < workers*2 {
		fn(0, dataSize)
		return
	}

	partSize := dataSize / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		partStart := i * partSize
		partEnd := partStart + partSize
		if i == workers-1 {
			// Last partition absorbs the remainder.
			partEnd = dataSize
		}
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(partStart, partEnd)
	}
	wg.Wait()
}
