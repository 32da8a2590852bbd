package clock

import (
	"sort"
	"sync"
	"time"
)

// Manual is a Scheduler whose time only moves when Advance is called.
// Callbacks run synchronously on the goroutine calling Advance.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*manualTask
}

type manualTask struct {
	manual   *Manual
	deadline time.Duration
	seq      int
	fn       func()
}

// NewManual creates a Manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// AfterFunc schedules fn to run once Advance moves past now+delay.
func (manual *Manual) AfterFunc(delay time.Duration, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	manual.mu.Lock()
	defer manual.mu.Unlock()
	manual.seq++
	task := &manualTask{
		manual:   manual,
		deadline: manual.now + delay,
		seq:      manual.seq,
		fn:       fn,
	}
	manual.pending = append(manual.pending, task)
	return task
}

func (task *manualTask) Cancel() {
	task.manual.remove(task)
}

// Advance moves time forward by delta, running every callback that becomes
// due, including ones scheduled by callbacks during the advance.
func (manual *Manual) Advance(delta time.Duration) {
	manual.mu.Lock()
	target := manual.now + delta
	manual.mu.Unlock()

	for {
		task := manual.popDue(target)
		if task == nil {
			break
		}
		task.fn()
	}

	manual.mu.Lock()
	manual.now = target
	manual.mu.Unlock()
}

// Now returns the elapsed manual time.
func (manual *Manual) Now() time.Duration {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return manual.now
}

// Pending returns the number of callbacks waiting to run.
func (manual *Manual) Pending() int {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return len(manual.pending)
}

func (manual *Manual) popDue(target time.Duration) *manualTask {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	if len(manual.pending) == 0 {
		return nil
	}
	sort.SliceStable(manual.pending, func(i, j int) bool {
		if manual.pending[i].deadline != manual.pending[j].deadline {
			return manual.pending[i].deadline < manual.pending[j].deadline
		}
		return manual.pending[i].seq < manual.pending[j].seq
	})
	next := manual.pending[0]
	if next.deadline > target {
		return nil
	}
	manual.pending = manual.pending[1:]
	manual.now = next.deadline
	return next
}

func (manual *Manual) remove(task *manualTask) {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	for i, pending := range manual.pending {
		if pending == task {
			manual.pending = append(manual.pending[:i], manual.pending[i+1:]...)
			return
		}
	}
}
