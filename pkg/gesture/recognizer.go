package gesture

import "time"

// Phase is the recognizer's input state.
type Phase int

const (
	// PhaseIdle: no button held.
	PhaseIdle Phase = iota

	// PhasePressed: button down over a slot, hold threshold not yet met.
	PhasePressed

	// PhaseDragging: an active drag; motion produces hover intents.
	PhaseDragging
)

// Intent is the controller-level operation a recognized event maps to.
type Intent int

const (
	// IntentNone: the event carries no controller operation.
	IntentNone Intent = iota

	// IntentBeginDrag: lift the item at Event.Slot.
	IntentBeginDrag

	// IntentHover: the drag pointer is over Event.Slot.
	IntentHover

	// IntentDrop: the drag released over Event.Slot.
	IntentDrop

	// IntentDragOut: the drag pointer left the dock.
	IntentDragOut

	// IntentCancel: the drag released outside any slot, or was aborted.
	IntentCancel
)

// Event is a recognized gesture: an intent plus the slot it targets.
// Slot is -1 for intents that carry no slot.
type Event struct {
	Intent Intent
	Slot   int
}

var none = Event{Intent: IntentNone, Slot: -1}

// Recognizer is the per-pointer state machine Idle -> Pressed -> Dragging.
// It is fed one call per raw input event (press, motion, release, hold
// fire) and returns at most one intent per event, so downstream state
// mutates exactly once per event.
//
// Slot arguments are dock slot indices resolved by the caller's hit
// testing, with -1 meaning "not over any slot".
type Recognizer struct {
	// HoldThreshold is the press duration before a press becomes a drag.
	// Zero begins the drag immediately on press.
	HoldThreshold time.Duration

	phase     Phase
	pressSlot int
	lastHover int
	outside   bool
}

// NewRecognizer creates a Recognizer with the given hold threshold.
func NewRecognizer(hold time.Duration) *Recognizer {
	return &Recognizer{HoldThreshold: hold, pressSlot: -1, lastHover: -1}
}

// Current returns the recognizer's phase.
func (r *Recognizer) Current() Phase { return r.phase }

// Press handles a button-down at the given slot. Over a slot it enters
// PhasePressed (the caller arms the hold timer), or begins the drag
// immediately when HoldThreshold is zero. Presses outside the dock, or
// while a gesture is already in flight, are ignored.
func (r *Recognizer) Press(slot int) Event {
	if r.phase != PhaseIdle || slot < 0 {
		return none
	}
	r.pressSlot = slot
	if r.HoldThreshold == 0 {
		r.phase = PhaseDragging
		r.lastHover = -1
		r.outside = false
		return Event{Intent: IntentBeginDrag, Slot: slot}
	}
	r.phase = PhasePressed
	return none
}

// HoldFired handles the hold timer elapsing. Stale fires (released or
// already dragging) are no-ops.
func (r *Recognizer) HoldFired() Event {
	if r.phase != PhasePressed {
		return none
	}
	r.phase = PhaseDragging
	r.lastHover = -1
	r.outside = false
	return Event{Intent: IntentBeginDrag, Slot: r.pressSlot}
}

// Move handles pointer motion. While pressed, leaving the press slot
// promotes the press to a drag without waiting for the hold timer (a fast
// flick is still a drag). While dragging it emits hover for the slot under
// the pointer, deduplicating repeats, or a single drag-out when the
// pointer leaves the dock.
func (r *Recognizer) Move(slot int) Event {
	switch r.phase {
	case PhasePressed:
		if slot == r.pressSlot {
			return none
		}
		r.phase = PhaseDragging
		r.lastHover = -1
		r.outside = false
		return Event{Intent: IntentBeginDrag, Slot: r.pressSlot}

	case PhaseDragging:
		if slot < 0 {
			if r.outside {
				return none
			}
			r.outside = true
			r.lastHover = -1
			return Event{Intent: IntentDragOut, Slot: -1}
		}
		r.outside = false
		if slot == r.lastHover {
			return none
		}
		r.lastHover = slot
		return Event{Intent: IntentHover, Slot: slot}
	}
	return none
}

// Release handles button-up. A release while merely pressed is a tap and
// produces nothing (the caller stops the hold timer). A release while
// dragging drops on the slot under the pointer, or cancels when outside
// the dock.
func (r *Recognizer) Release(slot int) Event {
	phase := r.phase
	r.reset()
	if phase != PhaseDragging {
		return none
	}
	if slot < 0 {
		return Event{Intent: IntentCancel, Slot: -1}
	}
	return Event{Intent: IntentDrop, Slot: slot}
}

// Cancel aborts any gesture in flight, for example on focus loss or
// teardown.
func (r *Recognizer) Cancel() Event {
	phase := r.phase
	r.reset()
	if phase == PhaseDragging {
		return Event{Intent: IntentCancel, Slot: -1}
	}
	return none
}

func (r *Recognizer) reset() {
	r.phase = PhaseIdle
	r.pressSlot = -1
	r.lastHover = -1
	r.outside = false
}
