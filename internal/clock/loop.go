package clock

import (
	"sync"
	"time"
)

// Loop is the production Scheduler. Timers fire on their own goroutines but
// only enqueue the callback; the owner drains Next and runs callbacks on its
// event loop.
type Loop struct {
	due  chan func()
	done chan struct{}
	once sync.Once
}

// NewLoop creates a Loop whose queue holds up to buffer pending callbacks
// before timer goroutines start to block.
func NewLoop(buffer int) *Loop {
	if buffer < 1 {
		buffer = 1
	}
	return &Loop{
		due:  make(chan func(), buffer),
		done: make(chan struct{}),
	}
}

// After enqueues fn once d has elapsed.
func (l *Loop) After(d time.Duration, fn func()) {
	time.AfterFunc(d, func() { l.Post(fn) })
}

// Post enqueues fn to run on the event loop as soon as possible. It is safe to
// call from any goroutine. Callbacks posted after Close are discarded.
func (l *Loop) Post(fn func()) {
	select {
	case <-l.done:
		return
	default:
	}
	select {
	case l.due <- fn:
	case <-l.done:
	}
}

// Next blocks until a callback is due or the loop is closed.
// ok is false once the loop has been closed.
func (l *Loop) Next() (fn func(), ok bool) {
	select {
	case fn := <-l.due:
		return fn, true
	case <-l.done:
		return nil, false
	}
}

// Close stops delivery. Pending and future callbacks are dropped.
func (l *Loop) Close() {
	l.once.Do(func() { close(l.done) })
}
