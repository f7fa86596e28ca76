package worker

import (
	"fmt"
	"log/slog"
	"sync"
)

// Task represents a unit of work executed by the pool.
type Task func()

// Pool runs best-effort background work off the request path.
type Pool interface {
	Submit(Task)
	Stop()
}

// queuePerWorker is how many tasks may wait per worker before Submit drops.
var queuePerWorker = 16

// NewPool creates a pool with n workers. n<=0 defaults to 1.
// A panicking task is logged and does not take its worker down.
func NewPool(n int, log *slog.Logger) Pool {
	if n <= 0 {
		n = 1
	}
	if log == nil {
		log = slog.Default()
	}
	p := &pool{jobs: make(chan Task, n*queuePerWorker), log: log}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.run(job)
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
	log  *slog.Logger

	mu      sync.RWMutex
	stopped bool
}

func (p *pool) run(job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("worker task panicked", slog.String("panic", fmt.Sprint(r)))
		}
	}()
	job()
}

// Submit queues the task without blocking. It drops the task when the queue
// is full or the pool has stopped.
func (p *pool) Submit(t Task) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		p.log.Warn("worker pool stopped, task dropped")
		return
	}
	select {
	case p.jobs <- t:
	default:
		p.log.Warn("worker queue full, task dropped", slog.Int("capacity", cap(p.jobs)))
	}
}

// Stop waits for queued tasks to finish. Safe to call more than once.
func (p *pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}
