// Package gesture turns raw terminal pointer events into dock intents:
// begin-drag, hover, drop, drag-out, cancel. It provides the press-and-hold
// disambiguation (tap vs. drag) the host framework would normally supply.
package gesture

import (
	"sync"
	"time"
)

// HoldTimer is a single-shot cancelable timer used to disambiguate a tap
// from a press-and-hold. Start arms it; Stop disarms it. A fire that races
// with Stop is suppressed, so a callback never runs after cancellation —
// callers must Stop on release, on a new press, and on teardown.
type HoldTimer struct {
	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// Start arms the timer to call fire after d. Any previously armed timer is
// stopped first; at most one callback is pending at a time.
func (h *HoldTimer) Start(d time.Duration, fire func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.stopLocked()
	h.gen++
	gen := h.gen
	h.timer = time.AfterFunc(d, func() {
		h.mu.Lock()
		live := h.gen == gen
		if live {
			h.timer = nil
		}
		h.mu.Unlock()
		if live {
			fire()
		}
	})
}

// Stop disarms the timer. Idempotent; safe to call with nothing armed.
func (h *HoldTimer) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopLocked()
}

// Armed reports whether a callback is currently pending.
func (h *HoldTimer) Armed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.timer != nil
}

func (h *HoldTimer) stopLocked() {
	// Bumping gen invalidates a callback that already fired off the timer
	// goroutine but has not taken the lock yet.
	h.gen++
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
}
