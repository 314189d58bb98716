// Package schedule provides cancellable deferred callbacks that run on the
// caller's event loop rather than on a timer goroutine.
package schedule

import (
	"sync/atomic"
	"time"
)

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Task
}

// Task is a pending callback. Stop reports whether the call prevented the
// callback from running.
type Task interface {
	Stop() bool
}

// Fire is posted to the event loop when a Loop timer expires. The loop must
// call Run from the goroutine that owns the state the callback touches.
type Fire struct {
	task *loopTask
}

// Run executes the callback unless the task was stopped in the meantime.
func (f Fire) Run() {
	if f.task == nil {
		return
	}
	f.task.run()
}

// Loop is a Scheduler backed by time.AfterFunc whose expirations are handed
// to dispatch instead of being executed on the timer goroutine.
type Loop struct {
	dispatch func(Fire)
	now      func() time.Time
}

// NewLoop creates a Loop. dispatch must be safe to call from any goroutine,
// e.g. tea.Program.Send.
func NewLoop(dispatch func(Fire)) *Loop {
	return &Loop{dispatch: dispatch, now: time.Now}
}

// Now returns the wall clock.
func (l *Loop) Now() time.Time {
	return l.now()
}

// AfterFunc schedules fn to run on the event loop after d.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Task {
	task := &loopTask{fn: fn}
	task.timer = time.AfterFunc(d, func() {
		if task.stopped.Load() {
			return
		}
		l.dispatch(Fire{task: task})
	})
	return task
}

type loopTask struct {
	fn      func()
	timer   *time.Timer
	stopped atomic.Bool
	done    atomic.Bool
}

func (t *loopTask) Stop() bool {
	if t.done.Load() {
		return false
	}
	first := !t.stopped.Swap(true)
	t.timer.Stop()
	return first
}

func (t *loopTask) run() {
	if t.stopped.Load() || t.done.Swap(true) {
		return
	}
	t.fn()
}
