// Package worker provides a worker pool for converting several game files
// concurrently.
package worker

import (
	"sync"
	"sync/atomic"
)

// Job is one file conversion: a source game record and the destination
// path for the produced artifact.
type Job struct {
	InputPath  string
	OutputPath string
	Index      int // Original argument position for stable reporting
}

// Result is the outcome of one conversion job.
type Result struct {
	Job Job
	Err error
}

// ConvertFunc runs a single conversion job.
type ConvertFunc func(job Job) Result

// Pool manages a pool of workers running conversion jobs.
type Pool struct {
	numWorkers  int
	bufferSize  int
	jobChan     chan Job
	resultChan  chan Result
	convertFunc ConvertFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. convertFunc is required; other settings
// have sensible defaults (1 worker, buffer size of 10).
func NewPool(convertFunc ConvertFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		convertFunc: convertFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.jobChan = make(chan Job, p.bufferSize)
	p.resultChan = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker runs jobs from the job channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.convertFunc(job)
	}
}

// Submit submits a job for processing.
// This may block if the job channel buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobChan <- job
}

// Stop signals workers to stop processing new jobs.
// Jobs already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the job channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers
// are done.
func (p *Pool) Close() {
	close(p.jobChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading conversion outcomes.
func (p *Pool) Results() <-chan Result {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
