package clock

import "time"

// Manual is a deterministic Scheduler for tests. Time only moves when Advance
// is called, and due callbacks run inline in (deadline, scheduling) order.
type Manual struct {
	now   time.Duration
	seq   uint64
	tasks []manualTask
}

type manualTask struct {
	at  time.Duration
	seq uint64
	fn  func()
}

// NewManual creates a Manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// After schedules fn at Now()+d.
func (m *Manual) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	m.seq++
	m.tasks = append(m.tasks, manualTask{at: m.now + d, seq: m.seq, fn: fn})
}

// Post schedules fn to run on the next Advance, including Advance(0).
func (m *Manual) Post(fn func()) {
	m.After(0, fn)
}

// Advance moves time forward by d, running every callback that becomes due.
// Callbacks scheduled while advancing run too if they fall inside the window.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		idx := -1
		for i, t := range m.tasks {
			if t.at > target {
				continue
			}
			if idx < 0 || t.at < m.tasks[idx].at || (t.at == m.tasks[idx].at && t.seq < m.tasks[idx].seq) {
				idx = i
			}
		}
		if idx < 0 {
			break
		}
		task := m.tasks[idx]
		m.tasks = append(m.tasks[:idx], m.tasks[idx+1:]...)
		m.now = task.at
		task.fn()
	}
	m.now = target
}

// Now returns the elapsed virtual time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of callbacks not yet run.
func (m *Manual) Pending() int {
	return len(m.tasks)
}
