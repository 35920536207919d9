package dock

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
)

// Variant is the visual state a slot renders in.
type Variant int

const (
	// VariantNormal is a resting slot.
	VariantNormal Variant = iota

	// VariantDragged marks the slot holding the item currently in flight
	// (faded under PolicyFade, the live-moving item under PolicyCollapse).
	VariantDragged

	// VariantHovered marks the slot under the drag pointer.
	VariantHovered
)

// Builder maps an item to its rendered visual for a given variant. It is
// supplied by the caller; the presenter never inspects item content.
type Builder[T comparable] func(item T, v Variant) string

// Presenter projects controller state into rendered slots. It holds no
// state of its own beyond configuration: every call reads the controller
// fresh, so a re-render after any mutation is always consistent.
//
// Each slot is marked as a bubblezone zone so the application layer can
// map raw mouse coordinates back to a slot index.
type Presenter[T comparable] struct {
	ctrl  *Controller[T]
	build Builder[T]

	// ZonePrefix namespaces the slot zone IDs, letting several docks
	// coexist under one zone manager.
	ZonePrefix string

	// CellWidth pads or truncates every slot to a fixed display width.
	// Zero renders slots at their natural width.
	CellWidth int

	// Gap is the number of spaces between adjacent slots.
	Gap int
}

// NewPresenter creates a Presenter for the given controller and builder.
func NewPresenter[T comparable](ctrl *Controller[T], build Builder[T]) *Presenter[T] {
	return &Presenter[T]{
		ctrl:       ctrl,
		build:      build,
		ZonePrefix: "dock",
		Gap:        1,
	}
}

// SlotID returns the bubblezone ID for the slot at index i.
func (p *Presenter[T]) SlotID(i int) string {
	return fmt.Sprintf("%s-slot-%d", p.ZonePrefix, i)
}

// SlotCount returns the number of slots currently rendered. Under
// PolicyCollapse this shrinks by one while the dragged item is out of the
// row.
func (p *Presenter[T]) SlotCount() int { return p.ctrl.Len() }

// ViewSlot renders the slot at index i, wrapped in its zone marker.
// Out-of-range indices render as an empty string.
func (p *Presenter[T]) ViewSlot(i int) string {
	items := p.ctrl.Items()
	if i < 0 || i >= len(items) {
		return ""
	}
	v := p.variantFor(i, items[i])
	cell := p.build(items[i], v)
	if p.CellWidth > 0 {
		cell = fitWidth(cell, p.CellWidth)
	}
	return zone.Mark(p.SlotID(i), cell)
}

// View renders the full row of slots.
func (p *Presenter[T]) View() string {
	var out string
	n := p.ctrl.Len()
	for i := 0; i < n; i++ {
		if i > 0 && p.Gap > 0 {
			out += spaces(p.Gap)
		}
		out += p.ViewSlot(i)
	}
	return out
}

// variantFor decides the visual state for the slot at index i holding it.
// The dragged item is identified by equality, not index, so it stays
// faded while hover moves it through the row.
func (p *Presenter[T]) variantFor(i int, it T) Variant {
	if dragged, ok := p.ctrl.DraggedItem(); ok {
		if it == dragged {
			return VariantDragged
		}
		if i == p.ctrl.HoverIndex() {
			return VariantHovered
		}
	}
	return VariantNormal
}

// fitWidth pads or truncates s to exactly w display columns, measuring
// with ANSI escapes stripped.
func fitWidth(s string, w int) string {
	cur := ansi.StringWidth(s)
	switch {
	case cur < w:
		return s + spaces(w-cur)
	case cur > w:
		return ansi.Truncate(s, w, "")
	default:
		return s
	}
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
