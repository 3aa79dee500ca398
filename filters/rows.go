package filters

import (
	"runtime"
	"sync"
)

// minBandRows is the fewest rows handed to a single worker. Smaller images
// are processed on the calling goroutine.
const minBandRows = 64

// forRows calls fn over the half-open row range [start,end), splitting it
// into contiguous bands processed concurrently. fn must only write rows
// within its band.
func forRows(start, end int, fn func(y0, y1 int)) {
	n := end - start
	if n <= 0 {
		return
	}
	workers := min(runtime.GOMAXPROCS(0), n/minBandRows)
	if workers <= 1 {
		fn(start, end)
		return
	}
	band := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for y0 := start; y0 < end; y0 += band {
		y1 := min(y0+band, end)
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(y0, y1)
		}()
	}
	wg.Wait()
}
