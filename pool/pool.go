// Package pool implements a fixed-size set of long-lived workers consuming jobs from a
// single shared FIFO queue.
package pool

import (
	"errors"
	"log"
	"sync"
)

var (
	ErrInvalidSize = errors.New("pool: size must be at least 1")
	ErrClosed      = errors.New("pool: closed")
	ErrOverloaded  = errors.New("pool: job queue is full")
)

// Job is a unit of deferred work. It receives the identity of the worker running it.
type Job func(worker int)

// Pool owns exactly Size() workers. Every submitted job is executed exactly once by
// exactly one of them, jobs are started in the order they were submitted, but may
// complete in any order.
type Pool struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  queue[Job]
	limit  int
	size   int
	closed bool
	wg     sync.WaitGroup
	log    *log.Logger
}

// New starts a pool of size workers with an unbounded queue.
func New(size int) (*Pool, error) {
	return NewBounded(size, 0, nil)
}

// NewBounded starts a pool of size workers, whose queue holds at most limit pending jobs.
// Zero limit means no limit. Panics of jobs are reported to the logger, log.Default()
// is used if nil is passed.
func NewBounded(size, limit int, logger *log.Logger) (*Pool, error) {
	if size < 1 {
		return nil, ErrInvalidSize
	}

	if logger == nil {
		logger = log.Default()
	}

	p := &Pool{
		queue: newQueue[Job](size),
		limit: max(limit, 0),
		size:  size,
		log:   logger,
	}
	p.cond = sync.NewCond(&p.mu)

	p.wg.Add(size)
	for id := range size {
		go p.worker(id)
	}

	return p, nil
}

// Execute enqueues the job for whichever worker becomes free first. It never waits for
// a worker. ErrOverloaded is returned if the queue limit is reached, ErrClosed after
// Close was called.
func (p *Pool) Execute(job Job) error {
	p.mu.Lock()

	switch {
	case p.closed:
		p.mu.Unlock()
		return ErrClosed
	case p.limit > 0 && p.queue.Len() >= p.limit:
		p.mu.Unlock()
		return ErrOverloaded
	}

	p.queue.Push(job)
	p.mu.Unlock()
	p.cond.Signal()

	return nil
}

// Close stops accepting new jobs and waits until the workers have drained the queue
// and exited. Calling it more than once is safe.
func (p *Pool) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.cond.Broadcast()
	p.wg.Wait()
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return p.size
}

// Pending returns the number of jobs waiting for a free worker.
func (p *Pool) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.queue.Len()
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		job, ok := p.next()
		if !ok {
			return
		}

		p.run(id, job)
	}
}

// next blocks until there is a job. False is returned if the pool is closed and
// nothing is left to do.
func (p *Pool) next() (Job, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for p.queue.Len() == 0 {
		if p.closed {
			return nil, false
		}

		p.cond.Wait()
	}

	return p.queue.Pop(), true
}

func (p *Pool) run(id int, job Job) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Printf("pool: worker %d: job panicked: %v", id, r)
		}
	}()

	job(id)
}
