package engine

import (
	"sort"
	"sync"
	"time"
)

// deferredTask is a one-shot callback due at a point in game time.
// Generation is a monotonic token identifying the scheduling order;
// tasks are never cancelled, only run.
type deferredTask struct {
	generation uint64
	runAt      time.Time
	fn         func()
}

// Scheduler queues deferred callbacks (lit-key expiry, lesson completion
// delay) and fires them from the main loop tick. All callbacks execute on
// the caller of RunDue, so mutation stays serialized on the event loop.
type Scheduler struct {
	mu      sync.Mutex
	clock   TimeProvider
	nextGen uint64
	tasks   []deferredTask
}

// NewScheduler creates a scheduler on the given clock
func NewScheduler(clock TimeProvider) *Scheduler {
	return &Scheduler{
		clock: clock,
		tasks: make([]deferredTask, 0, 8),
	}
}

// Schedule queues fn to run once delay has elapsed, returning its generation token
func (s *Scheduler) Schedule(delay time.Duration, fn func()) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextGen++
	s.tasks = append(s.tasks, deferredTask{
		generation: s.nextGen,
		runAt:      s.clock.Now().Add(delay),
		fn:         fn,
	})
	return s.nextGen
}

// RunDue executes every task whose deadline has passed, in scheduling
// order, and returns how many ran. Tasks run outside the scheduler lock
// so a callback may schedule further tasks.
func (s *Scheduler) RunDue() int {
	now := s.clock.Now()

	s.mu.Lock()
	var due []deferredTask
	remaining := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.runAt.After(now) {
			due = append(due, t)
		} else {
			remaining = append(remaining, t)
		}
	}
	s.tasks = remaining
	s.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		return due[i].generation < due[j].generation
	})
	for _, t := range due {
		t.fn()
	}
	return len(due)
}

// Pending returns the number of queued tasks
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
