package walletdex

import (
	"sync"
	"time"
)

// DefaultSearchDelay is the debounce window for search-input coalescing.
const DefaultSearchDelay = 300 * time.Millisecond

// Debouncer coalesces rapid calls into one: each Arm cancels the previously
// armed callback before scheduling the new one, so only the last write within
// the window fires. It is a policy of the caller layer; the Store itself
// stays correct when invoked once per keystroke.
type Debouncer struct {
	Delay time.Duration // zero means DefaultSearchDelay

	mu    sync.Mutex
	timer *time.Timer
}

// Arm schedules fn to run after the delay, cancelling any pending callback.
// The returned cancel function stops this arming; cancelling an already-fired
// arming is a no-op.
func (d *Debouncer) Arm(fn func()) (cancel func()) {
	delay := d.Delay
	if delay == 0 {
		delay = DefaultSearchDelay
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	t := time.AfterFunc(delay, fn)
	d.timer = t
	return func() { t.Stop() }
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
