package session

import (
	"sync"
	"time"
)

// SearchDelay is the quiet interval before a search is applied.
const SearchDelay = 300 * time.Millisecond

// Timer is a scheduled task that can be stopped.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealScheduler schedules tasks with time.AfterFunc.
type RealScheduler struct{}

func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

var _ Scheduler = RealScheduler{}

// Debouncer keeps at most one task scheduled. Each task is bound to a token;
// scheduling a new task cancels the outstanding token, and a task only runs
// if its token is still current when it fires. Firing consumes the token.
type Debouncer struct {
	mu        sync.Mutex
	scheduler Scheduler
	delay     time.Duration
	next      uint64
	active    uint64
	pending   Timer
}

// NewDebouncer returns a debouncer that delays tasks by delay.
func NewDebouncer(scheduler Scheduler, delay time.Duration) *Debouncer {
	if scheduler == nil {
		scheduler = RealScheduler{}
	}
	return &Debouncer{scheduler: scheduler, delay: delay}
}

// Schedule supersedes any pending task with task and returns its token.
func (d *Debouncer) Schedule(task func()) uint64 {
	d.mu.Lock()
	d.stopLocked()
	d.next++
	token := d.next
	d.active = token
	d.mu.Unlock()

	// The scheduler may run the task before AfterFunc returns
	timer := d.scheduler.AfterFunc(d.delay, func() {
		d.fire(token, task)
	})

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.active == token {
		d.pending = timer
	} else {
		// Fired, cancelled or superseded while being scheduled
		timer.Stop()
	}
	return token
}

// Cancel drops the pending task, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

// Pending reports whether a task is waiting to fire.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active != 0
}

func (d *Debouncer) stopLocked() {
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
	d.active = 0
}

func (d *Debouncer) fire(token uint64, task func()) {
	d.mu.Lock()
	if d.active != token {
		d.mu.Unlock()
		return
	}
	d.active = 0
	d.pending = nil
	d.mu.Unlock()

	task()
}
