// Package parallel runs per-camera frame jobs on a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a fixed pool of goroutines for per-camera frame jobs.
//
// Each worker owns a queue. ExecuteAll deals jobs round-robin over the
// queues, and an idle worker steals from its neighbours so that one slow
// camera does not hold back the rest of the batch.
//
// WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	// dispatchMu is held shared while ExecuteAll queues a batch and
	// exclusively by Close, so nothing is queued once done is closed.
	dispatchMu sync.RWMutex
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]

	for {
		select {
		case <-p.done:
			drain(own)
			return
		case job := <-own:
			job()
			continue
		default:
		}

		if job := p.steal(id); job != nil {
			job()
			continue
		}

		select {
		case <-p.done:
			drain(own)
			return
		case job := <-own:
			job()
		}
	}
}

func drain(q chan func()) {
	for {
		select {
		case job := <-q:
			job()
		default:
			return
		}
	}
}

func (p *WorkerPool) steal(id int) func() {
	for i := 1; i < p.workers; i++ {
		select {
		case job := <-p.queues[(id+i)%p.workers]:
			return job
		default:
		}
	}
	return nil
}

// ExecuteAll runs every job and returns when all of them have finished.
// Nil jobs are skipped. On a closed pool the jobs run on the calling
// goroutine, in order.
func (p *WorkerPool) ExecuteAll(jobs []func()) {
	if len(jobs) == 0 {
		return
	}

	p.dispatchMu.RLock()
	if !p.running.Load() {
		p.dispatchMu.RUnlock()
		for _, job := range jobs {
			if job != nil {
				job()
			}
		}
		return
	}

	var wg sync.WaitGroup
	for i, job := range jobs {
		if job == nil {
			continue
		}
		wg.Add(1)
		p.queues[i%p.workers] <- func() {
			defer wg.Done()
			job()
		}
	}
	p.dispatchMu.RUnlock()
	wg.Wait()
}

// Close stops the workers after the queued jobs have run. A batch that is
// being queued when Close is called is queued in full first.
// Close is safe to call more than once.
func (p *WorkerPool) Close() {
	p.dispatchMu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.dispatchMu.Unlock()
		return
	}
	close(p.done)
	p.dispatchMu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still dispatches to its workers.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
