// Package sched provides a small delayed-task scheduler for fire-and-forget
// background work such as the swap progression simulation. Tasks carry no
// state of their own; callers are expected to re-fetch current state inside
// the task body before acting.
package sched

import (
	"sync"
	"time"
)

// Scheduler runs functions after fixed delays. Stopping the scheduler
// cancels all pending tasks; tasks already running are not interrupted.
type Scheduler struct {
	mu       sync.Mutex
	timers   map[uint64]*time.Timer
	nextID   uint64
	stopped  bool
	stopOnce sync.Once
}

// New creates a scheduler ready to accept tasks.
func New() *Scheduler {
	return &Scheduler{timers: make(map[uint64]*time.Timer)}
}

// After schedules fn to run once after the given delay. Scheduling on a
// stopped scheduler is a no-op.
func (s *Scheduler) After(delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}

	id := s.nextID
	s.nextID++

	s.timers[id] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, id)
		stopped := s.stopped
		s.mu.Unlock()
		if stopped {
			return
		}
		fn()
	})
}

// Pending returns the number of tasks waiting to fire.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop cancels all pending tasks. Safe to call multiple times.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.stopped = true
		for id, t := range s.timers {
			t.Stop()
			delete(s.timers, id)
		}
		s.mu.Unlock()
	})
}
