// Package parallel runs independent render jobs on a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a fixed pool of goroutines draining a shared job queue.
//
// Jobs handed to one ExecuteAll call must not write to overlapping memory;
// the pool gives no ordering guarantees between them.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int

	// jobs is the shared queue. It is buffered so that ExecuteAll rarely
	// blocks while workers are still picking up earlier jobs.
	jobs chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		jobs:    make(chan func(), max(workers*4, 8)),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.done:
			return
		case job := <-p.jobs:
			job()
		}
	}
}

// ExecuteAll runs every job and waits for all of them to finish.
// On a closed pool the jobs run on the calling goroutine, so the call
// always completes the work it was given.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}

	var completion sync.WaitGroup
	completion.Add(len(work))

	for _, fn := range work {
		job := func() {
			defer completion.Done()
			if fn != nil {
				fn()
			}
		}

		if !p.running.Load() {
			job()
			continue
		}
		select {
		case p.jobs <- job:
		case <-p.done:
			job()
		}
	}

	completion.Wait()
}

// Close stops the workers after they finish their current job.
// ExecuteAll must not be running concurrently with Close.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
