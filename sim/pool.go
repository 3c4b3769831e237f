package sim

import (
	"runtime"
	"sync"
)

// Pool is a fixed-size pool of persistent worker goroutines. Each
// Update phase dispatches one closure per chunk and blocks until the
// whole batch completes; phases are strict barriers, so the pool never
// interleaves work from two phases.
type Pool struct {
	workers int
	work    chan func()
	stop    chan struct{}
	wg      sync.WaitGroup
	running bool
	mu      sync.Mutex
}

// NewPool creates a pool. workers <= 0 uses GOMAXPROCS.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{workers: workers}
}

// Workers returns the worker count.
func (p *Pool) Workers() int { return p.workers }

// start launches the worker goroutines if they are not running.
func (p *Pool) start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return
	}
	p.work = make(chan func(), p.workers)
	p.stop = make(chan struct{})
	p.running = true

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.stop:
			return
		case f, ok := <-p.work:
			if !ok {
				return
			}
			f()
		}
	}
}

// Run executes all tasks and returns once every one has completed.
// A single task runs inline on the caller.
func (p *Pool) Run(tasks []func()) {
	if len(tasks) == 0 {
		return
	}
	if len(tasks) == 1 || p.workers == 1 {
		for _, t := range tasks {
			t()
		}
		return
	}
	p.start()

	var batch sync.WaitGroup
	batch.Add(len(tasks))
	for _, t := range tasks {
		t := t
		p.work <- func() {
			defer batch.Done()
			t()
		}
	}
	batch.Wait()
}

// Close signals all workers to exit and waits for them. The pool can
// be reused after Close; the next Run restarts the workers.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running {
		return
	}
	close(p.stop)
	p.wg.Wait()
	close(p.work)
	p.running = false
}
