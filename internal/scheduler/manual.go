package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/BrandishPet_Go/internal/worker"
)

// Manual is a Ticker driven by explicit Advance calls instead of wall time.
// Jobs that measure elapsed time need their clock moved alongside Advance.
type Manual struct {
	mu     sync.Mutex
	nextID int
	jobs   map[int]worker.Job
}

// NewManual creates a manual ticker
func NewManual() *Manual {
	return &Manual{jobs: make(map[int]worker.Job)}
}

// Schedule registers job; the interval is ignored
func (m *Manual) Schedule(_ time.Duration, job worker.Job) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.jobs[id] = job

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.jobs, id)
	}
}

// Stop drops every registration
func (m *Manual) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs = make(map[int]worker.Job)
}

// Registered returns how many registrations are live
func (m *Manual) Registered() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.jobs)
}

// Advance fires every live job n times synchronously and returns the first error
func (m *Manual) Advance(ctx context.Context, n int) error {
	m.mu.Lock()
	jobs := make([]worker.Job, 0, len(m.jobs))
	for _, j := range m.jobs {
		jobs = append(jobs, j)
	}
	m.mu.Unlock()

	var firstErr error
	for i := 0; i < n; i++ {
		for _, j := range jobs {
			if err := j.Process(ctx); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
