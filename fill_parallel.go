package retouch

import "github.com/gogpu/retouch/internal/parallel"

// fillPool aliases the internal worker pool so fill.go stays free of
// internal imports.
type fillPool = parallel.Pool

func newFillPool(workers int) *fillPool {
	return parallel.NewPool(workers)
}

// minParallelWork is the working-set size below which splitting a pass
// across workers costs more than it saves.
const minParallelWork = 4096

// solvePassParallel runs one pass with the working set split into one
// contiguous stripe per worker. Each stripe collects its solved record
// indices privately; ExecuteAll is the barrier that guarantees every
// stripe finished before the caller commits the pass, preserving the
// per-pass mask snapshot.
func solvePassParallel(pool *fillPool, pixels *Pixmap, mask *Mask, work []damagedPixel, solved []int) []int {
	n := pool.Workers()
	stripe := (len(work) + n - 1) / n

	var (
		parts [][]int
		jobs  []func()
	)
	for lo := 0; lo < len(work); lo += stripe {
		lo := lo
		hi := lo + stripe
		if hi > len(work) {
			hi = len(work)
		}
		pi := len(parts)
		parts = append(parts, make([]int, 0, hi-lo))
		jobs = append(jobs, func() {
			parts[pi] = solveRange(pixels, mask, work, lo, hi, parts[pi])
		})
	}

	pool.ExecuteAll(jobs)

	for _, part := range parts {
		solved = append(solved, part...)
	}
	return solved
}
