package engine

import (
	"container/heap"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/snake-monster/status"
)

// maxBehind bounds catch-up bursts when the run loop wakes late
const maxBehind = time.Second

// TickFunc runs one tick and returns the delay until its next run
// ok=false retires the task
type TickFunc func() (next time.Duration, ok bool)

// task is one armed activity
type task struct {
	name  string
	due   time.Time
	seq   uint64
	fn    TickFunc
	index int
}

// taskQueue is a min-heap ordered by due time, then arming order
type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq < q[j].seq
	}
	return q[i].due.Before(q[j].due)
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Scheduler owns re-arming tasks: each task reports its own next delay after running
// Not safe for concurrent use; the engine goroutine is the only caller
type Scheduler struct {
	clock TimeProvider
	queue taskQueue
	seq   uint64

	statTicks *atomic.Int64
}

// NewScheduler creates a scheduler that arms tasks relative to clock
func NewScheduler(clock TimeProvider, reg *status.Registry) *Scheduler {
	return &Scheduler{
		clock:     clock,
		statTicks: reg.Ints.Get("engine.ticks"),
	}
}

// Schedule arms fn to first run after delay
func (s *Scheduler) Schedule(name string, delay time.Duration, fn TickFunc) {
	s.arm(&task{name: name, fn: fn}, s.clock.Now().Add(delay))
}

func (s *Scheduler) arm(t *task, due time.Time) {
	s.seq++
	t.due = due
	t.seq = s.seq
	heap.Push(&s.queue, t)
}

// RunDue executes every task due at or before now in deadline order
// Re-armed deadlines are measured from the task's own deadline so mock time replays exactly
func (s *Scheduler) RunDue(now time.Time) int {
	ran := 0
	for len(s.queue) > 0 && !s.queue[0].due.After(now) {
		t := heap.Pop(&s.queue).(*task)
		next, ok := t.fn()
		ran++
		s.statTicks.Add(1)
		if !ok {
			continue
		}
		due := t.due.Add(next)
		if now.Sub(due) > maxBehind {
			due = now.Add(next)
		}
		s.arm(t, due)
	}
	return ran
}

// NextDue returns the earliest deadline
func (s *Scheduler) NextDue() (time.Time, bool) {
	if len(s.queue) == 0 {
		return time.Time{}, false
	}
	return s.queue[0].due, true
}

// Due returns the deadline of the named task
func (s *Scheduler) Due(name string) (time.Time, bool) {
	for _, t := range s.queue {
		if t.name == name {
			return t.due, true
		}
	}
	return time.Time{}, false
}

// Len returns the number of armed tasks
func (s *Scheduler) Len() int {
	return len(s.queue)
}

// Clear disarms every task
func (s *Scheduler) Clear() {
	s.queue = s.queue[:0]
}
