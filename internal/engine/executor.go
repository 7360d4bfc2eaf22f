package engine

import "sync"

// Executor runs chunk generation and mesh build jobs off the main thread.
type Executor interface {
	// Spawn schedules a job. It may block when the queue is full.
	Spawn(job func())
}

// Pool is a fixed-size worker pool over a buffered job queue.
type Pool struct {
	jobs chan func()
	wg   sync.WaitGroup
}

// NewPool starts `workers` goroutines pulling from a queue of the given depth.
func NewPool(workers, depth int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if depth < 1 {
		depth = 1
	}
	p := &Pool{jobs: make(chan func(), depth)}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				job()
			}
		}()
	}
	return p
}

// Spawn enqueues a job, blocking while the queue is full.
func (p *Pool) Spawn(job func()) {
	p.jobs <- job
}

// Close stops accepting jobs and waits for queued work to finish.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
}
