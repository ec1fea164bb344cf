package engine

import (
	"sync"
	"sync/atomic"
)

// CoefficientsParallel computes the same result as Coefficients by splitting
// the outer loop across workers goroutines.
//
// Every output bin depends only on the shared read-only input, so the split
// needs no synchronization beyond the final join: each worker owns a
// contiguous range of k and writes only its own dst slots, which keeps the
// output in ascending frequency order by construction. The result is
// bit-identical to the sequential transform because each bin is accumulated
// by the same code in the same order.
//
// Transforms shorter than MinParallelSize, and workers <= 1, fall back to
// the sequential path. Progress reporting switches to completion counting:
// the callback fires whenever the number of finished bins crosses a multiple
// of every, serialized so implementations need not be goroutine-safe.
func CoefficientsParallel(dst, seq []complex128, workers int, progress ProgressFunc, every int) []complex128 {
	n := len(seq)
	if workers > n {
		workers = n
	}
	if workers <= 1 || n < MinParallelSize {
		return Coefficients(dst, seq, progress, every)
	}
	dst = ensureDst(dst, n)

	fn := float64(n)
	var notify *progressNotifier
	if progress != nil {
		notify = &progressNotifier{fn: progress, every: int64(every), total: n}
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for k := start; k < end; k++ {
				dst[k] = coefficient(seq, k, fn)
				if notify != nil {
					notify.complete()
				}
			}
		}(start, end)
	}
	wg.Wait()

	return dst
}

// progressNotifier counts completed bins across workers and forwards
// milestone crossings to a single callback.
type progressNotifier struct {
	done  atomic.Int64
	mu    sync.Mutex
	fn    ProgressFunc
	every int64
	total int
}

func (p *progressNotifier) complete() {
	done := p.done.Add(1)
	if done%p.every != 0 {
		return
	}
	p.mu.Lock()
	p.fn(int(done), p.total)
	p.mu.Unlock()
}
