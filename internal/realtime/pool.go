package realtime

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type Task = func() error

var (
	ErrPoolClosed = errors.New("worker pool is closed")
	ErrQueueFull  = errors.New("worker pool queue is full")
)

// WorkerPool runs tasks on a fixed number of goroutines.
type WorkerPool struct {
	pool   chan Task
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

// NewWorkerPool starts workers goroutines fed by a queue holding up to
// queue pending tasks. A non-positive queue falls back to workers.
func NewWorkerPool(workers, queue int) *WorkerPool {
	if queue < 1 {
		queue = workers
	}
	wp := &WorkerPool{pool: make(chan Task, queue)}

	wp.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.pool {
		if err := wp.run(task); err != nil {
			zap.L().Warn("task execution failed", zap.Error(err))
		}
	}
}

func (wp *WorkerPool) run(task Task) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("task panicked: %v", p)
		}
	}()
	return task()
}

// TryAddTask queues task without waiting and fails with ErrQueueFull when
// every slot is taken.
func (wp *WorkerPool) TryAddTask(task Task) error {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.closed {
		return ErrPoolClosed
	}

	select {
	case wp.pool <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting tasks and waits for queued ones to finish.
func (wp *WorkerPool) Close() {
	wp.mu.Lock()
	if !wp.closed {
		wp.closed = true
		close(wp.pool)
	}
	wp.mu.Unlock()
	wp.wg.Wait()
}
