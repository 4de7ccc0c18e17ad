package async

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Task func(ctx context.Context)

const taskTimeout = 2 * time.Second

// WorkerPool runs submitted tasks on a fixed number of goroutines. Tasks
// submitted after Shutdown are dropped.
type WorkerPool struct {
	tasks  chan Task
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
	log    *zap.Logger

	mu     sync.RWMutex
	closed bool
}

func NewWorkerPool(parent context.Context, size, queue int, log *zap.Logger) *WorkerPool {
	if size <= 0 {
		size = 1
	}
	if queue < 0 {
		queue = 0
	}

	ctx, cancel := context.WithCancel(parent)
	p := &WorkerPool{
		tasks:  make(chan Task, queue),
		ctx:    ctx,
		cancel: cancel,
		log:    log,
	}

	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	for task := range p.tasks {
		p.run(id, task)
	}
}

func (p *WorkerPool) run(id int, task Task) {
	ctx, cancel := context.WithTimeout(p.ctx, taskTimeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("task panicked", zap.Int("worker", id), zap.Any("panic", r))
		}
	}()
	task(ctx)
}

// Submit hands task to the pool. It reports false when the pool is shut
// down or ctx ends before a worker accepts the task.
func (p *WorkerPool) Submit(ctx context.Context, task Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return false
	}

	select {
	case <-ctx.Done():
		return false
	case <-p.ctx.Done():
		return false
	case p.tasks <- task:
		return true
	}
}

// Shutdown stops accepting tasks, drains the queue and waits for workers.
func (p *WorkerPool) Shutdown() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()

	p.wg.Wait()
	p.cancel()
}
