// Package dock implements a horizontal dock of reorderable items: an
// ordered row plus the transient state of an in-progress drag. The
// Controller is the single owner of both; every mutation (begin, hover,
// accept, cancel) funnels through it so the rendered order is always
// consistent. Presenters are stateless projections of controller state.
package dock

import "fmt"

// Policy selects how the dock treats the dragged item while the drag is in
// flight.
type Policy int

const (
	// PolicyCollapse splices the dragged item out of the row when it is
	// lifted, so neighbors close around the gap, and each hover moves the
	// item live. This is the default.
	PolicyCollapse Policy = iota

	// PolicyFade keeps the dragged item at its slot, rendered faded; the
	// order only changes when the drop commits.
	PolicyFade
)

// String returns the config-file spelling of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyFade:
		return "fade"
	default:
		return "collapse"
	}
}

// ParsePolicy parses the config-file spelling of a policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "collapse":
		return PolicyCollapse, nil
	case "fade":
		return PolicyFade, nil
	default:
		return PolicyCollapse, fmt.Errorf("unknown dock policy %q", s)
	}
}

// Snapshot is the observable state published after every mutation.
// DraggingIndex and HoverIndex are -1 when unset.
type Snapshot[T comparable] struct {
	Items         []T
	Dragging      bool
	DraggingIndex int
	HoverIndex    int
}

// Controller owns the ordered items and the drag state machine
// (Idle -> Dragging -> Idle). Items are compared by value equality and
// must be unique within the order; the controller never inspects them
// beyond that.
//
// All index-taking operations treat out-of-range or conflicting input as a
// silent no-op: stale gesture events (a hover arriving after the drag
// ended, a second press mid-drag) are expected under real pointer input.
type Controller[T comparable] struct {
	policy Policy
	order  []T

	// Drag state. dragged and dragIndex are set and cleared together;
	// dragIndex records the lift position and is the restore point when a
	// drag aborts outside any target.
	dragging   bool
	dragged    T
	dragIndex  int
	hoverIndex int

	// removed is true while the dragged item is spliced out of order
	// (PolicyCollapse only).
	removed bool

	changes *Notifier[Snapshot[T]]
}

// New creates a Controller over a copy of the given items. Items must be
// unique by equality; duplicates make hover arithmetic ambiguous.
func New[T comparable](items []T, policy Policy) *Controller[T] {
	c := &Controller[T]{
		policy:     policy,
		order:      append([]T(nil), items...),
		dragIndex:  -1,
		hoverIndex: -1,
	}
	c.changes = NewNotifier(c.snapshot())
	return c
}

// Policy returns the reorder policy the controller was built with.
func (c *Controller[T]) Policy() Policy { return c.policy }

// Items returns a copy of the current order.
func (c *Controller[T]) Items() []T {
	return append([]T(nil), c.order...)
}

// Len returns the number of items currently in the order. While a
// PolicyCollapse drag holds the item out of the row this is one less than
// the resting count.
func (c *Controller[T]) Len() int { return len(c.order) }

// Dragging reports whether a drag is in progress.
func (c *Controller[T]) Dragging() bool { return c.dragging }

// DraggedItem returns the item being dragged, if any.
func (c *Controller[T]) DraggedItem() (T, bool) {
	return c.dragged, c.dragging
}

// DraggingIndex returns the index recorded at BeginDrag, or -1 when idle.
func (c *Controller[T]) DraggingIndex() int {
	if !c.dragging {
		return -1
	}
	return c.dragIndex
}

// HoverIndex returns the slot currently under the drag pointer, or -1.
func (c *Controller[T]) HoverIndex() int { return c.hoverIndex }

// Changes exposes the snapshot notifier. Renderers subscribe to re-render
// on every accepted mutation.
func (c *Controller[T]) Changes() *Notifier[Snapshot[T]] { return c.changes }

// BeginDrag starts a drag of the item at index. It is a no-op if a drag is
// already in progress (no nested drags) or index is out of range. Under
// PolicyCollapse the item is spliced out of the order immediately.
func (c *Controller[T]) BeginDrag(index int) {
	if c.dragging || index < 0 || index >= len(c.order) {
		return
	}
	c.dragging = true
	c.dragged = c.order[index]
	c.dragIndex = index
	c.hoverIndex = -1

	if c.policy == PolicyCollapse {
		c.order = append(c.order[:index], c.order[index+1:]...)
		c.removed = true
	}
	c.publish()
}

// Hover records that the drag pointer is over targetIndex. Under
// PolicyCollapse the dragged item is moved there live: removed from its
// current position (or reinserted, if it was spliced out) and inserted at
// targetIndex. Under PolicyFade only the hover highlight moves; the order
// changes on drop. Hovering the item's own slot is a no-op.
func (c *Controller[T]) Hover(targetIndex int) {
	if !c.dragging || targetIndex < 0 {
		return
	}

	if c.policy == PolicyFade {
		if targetIndex >= len(c.order) || targetIndex == c.hoverIndex {
			return
		}
		c.hoverIndex = targetIndex
		c.publish()
		return
	}

	if c.removed {
		// First hover after the lift (or after leaving the dock):
		// targetIndex is an insertion index into the collapsed row.
		if targetIndex > len(c.order) {
			return
		}
		c.order = insertAt(c.order, targetIndex, c.dragged)
		c.removed = false
		c.hoverIndex = targetIndex
		c.publish()
		return
	}

	if targetIndex >= len(c.order) {
		return
	}
	cur := indexOf(c.order, c.dragged)
	if cur == targetIndex {
		return
	}
	c.order = append(c.order[:cur], c.order[cur+1:]...)
	c.order = insertAt(c.order, targetIndex, c.dragged)
	c.hoverIndex = targetIndex
	c.publish()
}

// ClearHover clears the hover highlight without touching the order. Called
// when the drag leaves a slot without dropping.
func (c *Controller[T]) ClearHover() {
	if c.hoverIndex == -1 {
		return
	}
	c.hoverIndex = -1
	c.publish()
}

// DragOut records that the drag pointer left the dock entirely. Under
// PolicyCollapse the item is spliced back out of the order so the row
// collapses again; the item stays "in hand" and is restored by CancelDrag
// or re-placed by a later Hover/Accept.
func (c *Controller[T]) DragOut() {
	if !c.dragging {
		return
	}
	if c.policy == PolicyCollapse && !c.removed {
		if cur := indexOf(c.order, c.dragged); cur >= 0 {
			c.order = append(c.order[:cur], c.order[cur+1:]...)
			c.removed = true
		}
	}
	c.hoverIndex = -1
	c.publish()
}

// Accept is the authoritative drop commit: place item at targetIndex.
// Hover-driven reordering may have been skipped by a fast gesture, so
// Accept moves the item even when no hover preceded it. It is idempotent:
// if the item already rests at targetIndex nothing changes. Foreign items
// (not the current drag payload) are rejected.
func (c *Controller[T]) Accept(item T, targetIndex int) {
	if !c.dragging || item != c.dragged || targetIndex < 0 {
		return
	}

	cur := indexOf(c.order, item)
	if cur == targetIndex {
		return
	}
	if cur >= 0 {
		c.order = append(c.order[:cur], c.order[cur+1:]...)
	}
	if targetIndex > len(c.order) {
		targetIndex = len(c.order)
	}
	c.order = insertAt(c.order, targetIndex, item)
	c.removed = false
	c.publish()
}

// EndDrag finishes the drag and clears all drag state. If the item is
// still out of the order (released with no accepting slot) it is restored
// at the lift position so the item is never lost.
func (c *Controller[T]) EndDrag() {
	if !c.dragging {
		return
	}
	c.restoreIfRemoved()
	c.clearDragState()
	c.publish()
}

// CancelDrag aborts the drag: the order keeps any live reordering already
// applied, the item is restored at the lift position if it had been
// spliced out, and all drag state is cleared.
func (c *Controller[T]) CancelDrag() {
	if !c.dragging {
		return
	}
	c.restoreIfRemoved()
	c.clearDragState()
	c.publish()
}

// Reset replaces the order with a copy of items. Rejected while a drag is
// in flight: resetting under a live drag would strand the dragged item.
func (c *Controller[T]) Reset(items []T) {
	if c.dragging {
		return
	}
	c.order = append([]T(nil), items...)
	c.hoverIndex = -1
	c.publish()
}

// restoreIfRemoved reinserts the dragged item at the recorded lift
// position, clamped to the current bounds. This is the failure-safety
// invariant: no exit path from a drag may drop an item on the floor.
func (c *Controller[T]) restoreIfRemoved() {
	if !c.removed {
		return
	}
	idx := c.dragIndex
	if idx < 0 {
		idx = 0
	}
	if idx > len(c.order) {
		idx = len(c.order)
	}
	c.order = insertAt(c.order, idx, c.dragged)
	c.removed = false
}

func (c *Controller[T]) clearDragState() {
	var zero T
	c.dragging = false
	c.dragged = zero
	c.dragIndex = -1
	c.hoverIndex = -1
	c.removed = false
}

func (c *Controller[T]) snapshot() Snapshot[T] {
	return Snapshot[T]{
		Items:         c.Items(),
		Dragging:      c.dragging,
		DraggingIndex: c.DraggingIndex(),
		HoverIndex:    c.hoverIndex,
	}
}

func (c *Controller[T]) publish() {
	c.changes.Set(c.snapshot())
}

// indexOf returns the index of v in s, or -1.
func indexOf[T comparable](s []T, v T) int {
	for i, it := range s {
		if it == v {
			return i
		}
	}
	return -1
}

// insertAt inserts v into s at index i, which must be in [0, len(s)].
func insertAt[T any](s []T, i int, v T) []T {
	s = append(s, v)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}
