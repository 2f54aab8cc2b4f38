// Package debounce delays a rapidly changing value until it has stayed
// unchanged for a quiet period.
package debounce

import (
	"sync"
	"time"
)

// Debouncer holds at most one pending timer. Every Observe supersedes the
// pending value and restarts the wait; only the latest value settles.
type Debouncer[T any] struct {
	// settleMu orders settle calls; it is always taken before mu.
	settleMu sync.Mutex

	mu     sync.Mutex
	delay  time.Duration
	settle func(T)
	timer  *time.Timer
	token  uint64
	value  T
	closed bool
}

// New returns a Debouncer that calls settle with a value once it has been
// stable for delay. Settle calls never overlap and arrive in observation
// order. settle must not call back into the Debouncer.
func New[T any](delay time.Duration, settle func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, settle: settle}
}

// Observe records v and restarts the quiet period. Observing after Close
// does nothing.
func (d *Debouncer[T]) Observe(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.stopLocked()
	d.token++
	d.value = v
	token := d.token
	d.timer = time.AfterFunc(d.delay, func() { d.fire(token) })
}

// Flush settles the pending value immediately. It reports whether a value
// was pending.
func (d *Debouncer[T]) Flush() bool {
	d.settleMu.Lock()
	defer d.settleMu.Unlock()

	d.mu.Lock()
	if d.closed || d.timer == nil {
		d.mu.Unlock()
		return false
	}
	d.stopLocked()
	v := d.value
	d.mu.Unlock()

	d.settle(v)
	return true
}

// Cancel drops the pending value, if any.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

// Pending reports whether a value is waiting to settle.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Close cancels the pending value and disables the Debouncer.
func (d *Debouncer[T]) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.closed = true
}

// stopLocked stops the timer and bumps the token so a callback that already
// started cannot settle.
func (d *Debouncer[T]) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.token++
}

func (d *Debouncer[T]) fire(token uint64) {
	d.settleMu.Lock()
	defer d.settleMu.Unlock()

	d.mu.Lock()
	if d.closed || token != d.token {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	v := d.value
	d.mu.Unlock()

	d.settle(v)
}
