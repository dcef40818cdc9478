package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/BrandishPet_Go/internal/worker"
)

// Ticker runs jobs at a fixed interval until cancelled
type Ticker interface {
	// Schedule registers job to run every interval. The returned cancel func
	// stops this registration only and is safe to call more than once.
	Schedule(interval time.Duration, job worker.Job) (cancel func())
	// Stop cancels every registration
	Stop()
}

// Scheduler feeds interval jobs into a worker pool
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) func() {
	done := make(chan struct{})
	var once sync.Once

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				// a full queue drops this tick; jobs that measure elapsed time make it up on the next one
				s.workerPool.TryEnqueue(job)
			case <-done:
				return
			case <-s.quit:
				return
			}
		}
	}()

	return func() { once.Do(func() { close(done) }) }
}

// Stop stops all scheduled jobs and waits for their goroutines
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
