package schedule

import (
	"sort"
	"time"
)

// Manual is a deterministic Scheduler driven by Advance. It is not safe for
// concurrent use.
type Manual struct {
	now   time.Time
	seq   int
	tasks []*manualTask
}

// NewManual creates a Manual scheduler whose clock starts at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the simulated clock.
func (m *Manual) Now() time.Time {
	return m.now
}

// AfterFunc registers fn to run once the clock reaches Now()+d.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Task {
	m.seq++
	task := &manualTask{due: m.now.Add(d), fn: fn, seq: m.seq}
	m.tasks = append(m.tasks, task)
	return task
}

// Pending returns the number of tasks that are neither fired nor stopped.
func (m *Manual) Pending() int {
	count := 0
	for _, task := range m.tasks {
		if !task.stopped && !task.fired {
			count++
		}
	}
	return count
}

// Advance moves the clock forward by d and runs every task that became due,
// in due order.
func (m *Manual) Advance(d time.Duration) {
	target := m.now.Add(d)
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.due
		next.fired = true
		next.fn()
	}
	m.now = target
	m.compact()
}

func (m *Manual) nextDue(limit time.Time) *manualTask {
	var due []*manualTask
	for _, task := range m.tasks {
		if task.stopped || task.fired || task.due.After(limit) {
			continue
		}
		due = append(due, task)
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})
	return due[0]
}

func (m *Manual) compact() {
	kept := m.tasks[:0]
	for _, task := range m.tasks {
		if !task.stopped && !task.fired {
			kept = append(kept, task)
		}
	}
	m.tasks = kept
}

type manualTask struct {
	due     time.Time
	fn      func()
	seq     int
	stopped bool
	fired   bool
}

func (t *manualTask) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
