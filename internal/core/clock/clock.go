// Package clock provides the "run this later" primitive the session
// controller is driven by. The real implementation hands fired callbacks to
// the UI event loop; Manual is a deterministic stand-in for tests.
package clock

import (
	"sync/atomic"
	"time"
)

// Handle identifies a scheduled callback.
type Handle interface {
	// Cancel prevents the callback from running. It is a no-op when the
	// callback already ran or was cancelled before.
	Cancel()
}

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	AfterFunc(delay time.Duration, fn func()) Handle
}

// Dispatcher is a Scheduler backed by time.AfterFunc. Fired callbacks are
// passed to dispatch, which must run them on the owner's event loop.
type Dispatcher struct {
	dispatch func(func())
}

// NewDispatcher creates a Dispatcher. A nil dispatch runs callbacks on the
// timer goroutine.
func NewDispatcher(dispatch func(func())) *Dispatcher {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Dispatcher{dispatch: dispatch}
}

type timerHandle struct {
	timer     *time.Timer
	cancelled atomic.Bool
}

func (handle *timerHandle) Cancel() {
	handle.cancelled.Store(true)
	handle.timer.Stop()
}

// AfterFunc schedules fn after delay.
func (dispatcher *Dispatcher) AfterFunc(delay time.Duration, fn func()) Handle {
	handle := &timerHandle{}
	handle.timer = time.AfterFunc(delay, func() {
		dispatcher.dispatch(func() {
			// The timer may fire while Cancel runs; the dispatched job is
			// then already queued on the loop.
			if handle.cancelled.Load() {
				return
			}
			fn()
		})
	})
	return handle
}
