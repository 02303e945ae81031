// Package clock provides the delay primitive behind every simulated wait in
// the app. Timers are cancellable so a torn-down session never receives
// callbacks.
package clock

import (
	"time"

	bclock "github.com/benbjohnson/clock"
)

type Timer interface {
	// Stop prevents the timer from firing. It reports false if the timer
	// already fired or was stopped.
	Stop() bool
}

type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type wrapped struct {
	c bclock.Clock
}

func Real() Clock { return wrapped{c: bclock.New()} }

func (w wrapped) Now() time.Time { return w.c.Now() }

func (w wrapped) AfterFunc(d time.Duration, f func()) Timer {
	return w.c.AfterFunc(d, f)
}

// Mock only moves when Add or Set is called. Due timers fire in deadline
// order on the caller's goroutine, including timers scheduled by a callback
// that fall due within the same Add.
type Mock struct {
	*bclock.Mock
}

func NewMock(start time.Time) *Mock {
	m := bclock.NewMock()
	m.Set(start)
	return &Mock{Mock: m}
}

func (m *Mock) AfterFunc(d time.Duration, f func()) Timer {
	return m.Mock.AfterFunc(d, f)
}
