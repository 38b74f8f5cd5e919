// Package parallel provides a small worker pool used to split one
// diffusion pass into per-worker stripes of the damaged working set.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines fed from a shared queue.
//
// Stripes of a diffusion pass are near-uniform in cost, so a single
// shared queue balances well without per-worker queues or stealing.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	// workers is the number of worker goroutines.
	workers int

	// jobs is the shared work queue.
	jobs chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewPool creates a pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// Workers start immediately and wait for work.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		jobs:    make(chan func(), workers*2),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.done:
			// Drain remaining work before exiting.
			for {
				select {
				case job := <-p.jobs:
					if job != nil {
						job()
					}
				default:
					return
				}
			}
		case job := <-p.jobs:
			if job != nil {
				job()
			}
		}
	}
}

// ExecuteAll runs every job on the pool and waits for all of them to
// complete. This is the per-pass barrier: no job of the next pass can
// start before every job of this one has returned.
// If the pool is closed, ExecuteAll is a no-op.
func (p *Pool) ExecuteAll(jobs []func()) {
	if len(jobs) == 0 || !p.running.Load() {
		return
	}

	var barrier sync.WaitGroup
	barrier.Add(len(jobs))

	for _, fn := range jobs {
		fn := fn
		wrapped := func() {
			defer barrier.Done()
			fn()
		}

		select {
		case p.jobs <- wrapped:
		case <-p.done:
			// Pool is closing; account for the job we never queued.
			barrier.Done()
		}
	}

	barrier.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}

// Close gracefully shuts down the pool: it stops accepting new work,
// lets queued work finish, and waits for all workers to exit.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}

	close(p.done)
	p.wg.Wait()
}
