package worker

import (
	"context"
	"fmt"
	"sync"

	"github.com/mt2web/mt2web/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a plain function to the Job interface
type JobFunc func(ctx context.Context) error

// Process calls f(ctx)
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Executor runs jobs off the caller's path. Submit never blocks; it reports
// whether the job was accepted.
type Executor interface {
	Submit(job Job) bool
}

// Pool represents a worker pool
type Pool struct {
	workers    int
	jobQueue   chan Job
	wg         sync.WaitGroup
	quit       chan struct{}
	stopOnce   sync.Once
	mu         sync.RWMutex
	stopped    bool
	jobTimeout timeoutFunc
}

type timeoutFunc func() (context.Context, context.CancelFunc)

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
		jobTimeout: func() (context.Context, context.CancelFunc) {
			return context.WithTimeout(context.Background(), DefaultJobTimeout)
		},
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker is the worker loop
func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.quit:
			// Finish whatever was accepted before Stop
			for {
				select {
				case job := <-p.jobQueue:
					p.run(job)
				default:
					return
				}
			}
		}
	}
}

func (p *Pool) run(job Job) {
	ctx, cancel := p.jobTimeout()
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error(LogMsgWorkerJobPanicked, "panic", fmt.Sprint(r))
		}
	}()

	if err := job.Process(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
	}
}

// Enqueue adds a job to the queue, blocking while the queue is full
func (p *Pool) Enqueue(job Job) {
	p.jobQueue <- job
}

// Submit adds a job to the queue without blocking
func (p *Pool) Submit(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		logger.Info(LogMsgWorkerPoolStopped)
		return false
	}

	select {
	case p.jobQueue <- job:
		return true
	default:
		logger.FromContext(context.Background()).Warn(LogMsgWorkerQueueFull, "queue_size", cap(p.jobQueue))
		return false
	}
}

// Stop stops the workers and waits for them to finish the queued jobs
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		p.stopped = true
		p.mu.Unlock()
		close(p.quit)
	})
	p.wg.Wait()
}

// Inline runs jobs synchronously on the caller's goroutine
type Inline struct{}

// Submit processes the job immediately and logs its error
func (Inline) Submit(job Job) bool {
	ctx := context.Background()
	if err := job.Process(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
	}
	return true
}

var (
	_ Executor = (*Pool)(nil)
	_ Executor = Inline{}
)
