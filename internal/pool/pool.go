// Package pool implements a fixed-size worker pool over an unbounded FIFO
// job queue.
package pool

import "sync"

// Job is a unit of work executed by a pool worker.
type Job func()

// Pool runs a fixed number of workers started at construction. Workers
// sleep while the queue is empty and run each dequeued job to completion
// before taking the next one. Jobs are executed in submission order, with
// no priorities and no per-job cancellation.
type Pool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	jobs    []Job
	stopped bool
}

// New creates a pool and starts size workers.
func New(size int) *Pool {
	p := &Pool{}
	p.cond = sync.NewCond(&p.mu)
	for i := 0; i < size; i++ {
		go p.worker()
	}
	return p
}

// Submit enqueues a job and wakes one sleeping worker. Submissions after
// Shutdown are dropped.
func (p *Pool) Submit(job Job) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return
	}
	p.jobs = append(p.jobs, job)
	p.cond.Signal()
}

// Shutdown stops every worker and wakes the sleeping ones. Jobs already
// executing are not interrupted; jobs still queued are drained before the
// workers exit.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopped = true
	p.cond.Broadcast()
}

func (p *Pool) worker() {
	for {
		p.mu.Lock()
		for len(p.jobs) == 0 && !p.stopped {
			p.cond.Wait()
		}
		if len(p.jobs) == 0 {
			// Stopped with nothing left to run.
			p.mu.Unlock()
			return
		}
		job := p.jobs[0]
		p.jobs = p.jobs[1:]
		p.mu.Unlock()

		job()
	}
}
