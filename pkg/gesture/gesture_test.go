package gesture

import (
	"testing"
	"time"
)

func TestImmediateDragOnPress(t *testing.T) {
	r := NewRecognizer(0)

	ev := r.Press(2)
	if ev.Intent != IntentBeginDrag || ev.Slot != 2 {
		t.Fatalf("Press(2) = %+v, want begin-drag slot 2", ev)
	}
	if r.Current() != PhaseDragging {
		t.Errorf("phase = %v, want dragging", r.Current())
	}
}

func TestDelayedDragViaHold(t *testing.T) {
	r := NewRecognizer(250 * time.Millisecond)

	if ev := r.Press(1); ev.Intent != IntentNone {
		t.Fatalf("Press with threshold = %+v, want none", ev)
	}
	if r.Current() != PhasePressed {
		t.Fatalf("phase = %v, want pressed", r.Current())
	}

	ev := r.HoldFired()
	if ev.Intent != IntentBeginDrag || ev.Slot != 1 {
		t.Fatalf("HoldFired() = %+v, want begin-drag slot 1", ev)
	}
}

func TestTapDoesNotDrag(t *testing.T) {
	r := NewRecognizer(250 * time.Millisecond)

	r.Press(1)
	if ev := r.Release(1); ev.Intent != IntentNone {
		t.Errorf("release before hold = %+v, want none (tap)", ev)
	}
	// A hold fire arriving after the release is stale.
	if ev := r.HoldFired(); ev.Intent != IntentNone {
		t.Errorf("stale HoldFired() = %+v, want none", ev)
	}
}

func TestMotionPromotesPressToDrag(t *testing.T) {
	r := NewRecognizer(250 * time.Millisecond)

	r.Press(1)
	ev := r.Move(2)
	if ev.Intent != IntentBeginDrag || ev.Slot != 1 {
		t.Fatalf("Move off press slot = %+v, want begin-drag slot 1", ev)
	}
	// The next motion over slot 2 hovers it.
	ev = r.Move(2)
	if ev.Intent != IntentHover || ev.Slot != 2 {
		t.Fatalf("Move(2) = %+v, want hover slot 2", ev)
	}
}

func TestHoverDeduplicates(t *testing.T) {
	r := NewRecognizer(0)
	r.Press(0)

	if ev := r.Move(3); ev.Intent != IntentHover || ev.Slot != 3 {
		t.Fatalf("first Move(3) = %+v, want hover", ev)
	}
	if ev := r.Move(3); ev.Intent != IntentNone {
		t.Errorf("repeated Move(3) = %+v, want none", ev)
	}
	if ev := r.Move(1); ev.Intent != IntentHover || ev.Slot != 1 {
		t.Errorf("Move(1) = %+v, want hover slot 1", ev)
	}
}

func TestDragOutEmittedOnce(t *testing.T) {
	r := NewRecognizer(0)
	r.Press(0)
	r.Move(1)

	if ev := r.Move(-1); ev.Intent != IntentDragOut {
		t.Fatalf("Move(-1) = %+v, want drag-out", ev)
	}
	if ev := r.Move(-1); ev.Intent != IntentNone {
		t.Errorf("second Move(-1) = %+v, want none", ev)
	}
	// Re-entering the dock hovers again, even over the last-hovered slot.
	if ev := r.Move(1); ev.Intent != IntentHover || ev.Slot != 1 {
		t.Errorf("re-enter Move(1) = %+v, want hover slot 1", ev)
	}
}

func TestReleaseDropsOnSlot(t *testing.T) {
	r := NewRecognizer(0)
	r.Press(0)
	r.Move(2)

	ev := r.Release(2)
	if ev.Intent != IntentDrop || ev.Slot != 2 {
		t.Fatalf("Release(2) = %+v, want drop slot 2", ev)
	}
	if r.Current() != PhaseIdle {
		t.Errorf("phase = %v, want idle after release", r.Current())
	}
}

func TestReleaseOutsideCancels(t *testing.T) {
	r := NewRecognizer(0)
	r.Press(0)
	r.Move(-1)

	if ev := r.Release(-1); ev.Intent != IntentCancel {
		t.Errorf("Release(-1) = %+v, want cancel", ev)
	}
}

func TestCancelMidDrag(t *testing.T) {
	r := NewRecognizer(0)
	r.Press(0)

	if ev := r.Cancel(); ev.Intent != IntentCancel {
		t.Errorf("Cancel() = %+v, want cancel", ev)
	}
	if ev := r.Cancel(); ev.Intent != IntentNone {
		t.Errorf("idle Cancel() = %+v, want none", ev)
	}
}

func TestPressOutsideDockIgnored(t *testing.T) {
	r := NewRecognizer(0)
	if ev := r.Press(-1); ev.Intent != IntentNone {
		t.Errorf("Press(-1) = %+v, want none", ev)
	}
	if r.Current() != PhaseIdle {
		t.Errorf("phase = %v, want idle", r.Current())
	}
}

func TestHoldTimerFires(t *testing.T) {
	var h HoldTimer

	fired := make(chan struct{})
	h.Start(5*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}
	if h.Armed() {
		t.Error("Armed() = true after fire")
	}
}

func TestHoldTimerStopSuppressesFire(t *testing.T) {
	var h HoldTimer

	fired := make(chan struct{}, 1)
	h.Start(30*time.Millisecond, func() { fired <- struct{}{} })
	h.Stop()
	h.Stop() // idempotent

	select {
	case <-fired:
		t.Fatal("callback ran after Stop")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestHoldTimerRestartReplacesPending(t *testing.T) {
	var h HoldTimer

	firstFired := make(chan struct{}, 1)
	second := make(chan struct{})
	h.Start(30*time.Millisecond, func() { firstFired <- struct{}{} })
	h.Start(5*time.Millisecond, func() { close(second) })

	select {
	case <-second:
	case <-time.After(2 * time.Second):
		t.Fatal("replacement timer did not fire")
	}
	select {
	case <-firstFired:
		t.Fatal("replaced callback still ran")
	case <-time.After(100 * time.Millisecond):
	}
}
