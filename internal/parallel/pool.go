// Package parallel runs per-pixel render work across a fixed pool of
// goroutines. Output rows have no ordering dependency on one another, so
// a frame is sharded into row bands and the bands are distributed across
// workers.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a pool of goroutines for parallel per-row rendering.
//
// Each worker owns a queue and steals from its siblings when idle, which
// keeps cores busy when some bands (heavy glyph coverage, blur taps) run
// slower than others.
//
// Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool creates a pool with the given number of workers. Zero or
// negative means GOMAXPROCS. Workers start immediately.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	mine := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(mine)
			return
		case job := <-mine:
			if job != nil {
				job()
			}
		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drain(mine)
				return
			case job := <-mine:
				if job != nil {
					job()
				}
			}
		}
	}
}

func (p *Pool) drain(queue chan func()) {
	for {
		select {
		case job := <-queue:
			if job != nil {
				job()
			}
		default:
			return
		}
	}
}

func (p *Pool) steal(myID int) func() {
	for i := range p.queues {
		if i == myID {
			continue
		}
		select {
		case job := <-p.queues[i]:
			return job
		default:
		}
	}
	return nil
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int { return p.workers }

// ExecuteAll distributes the jobs round-robin across workers and blocks
// until every job has finished. If the pool is closed the call is a
// no-op.
func (p *Pool) ExecuteAll(jobs []func()) {
	if len(jobs) == 0 || !p.running.Load() {
		return
	}
	var wg sync.WaitGroup
	wg.Add(len(jobs))
	for i, job := range jobs {
		job := job
		wrapped := func() {
			defer wg.Done()
			job()
		}
		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			wg.Done()
		}
	}
	wg.Wait()
}

// Rows shards the half-open row range [0, height) into one band per
// worker and runs fn(y0, y1) for each band in parallel, blocking until
// all rows are rendered.
func (p *Pool) Rows(height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	bands := p.workers
	if bands > height {
		bands = height
	}
	jobs := make([]func(), 0, bands)
	step := (height + bands - 1) / bands
	for y := 0; y < height; y += step {
		y0, y1 := y, y+step
		if y1 > height {
			y1 = height
		}
		jobs = append(jobs, func() { fn(y0, y1) })
	}
	p.ExecuteAll(jobs)
}

// Close stops the pool after finishing queued work. Safe to call more
// than once.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}
