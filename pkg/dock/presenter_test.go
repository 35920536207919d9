package dock

import (
	"strings"
	"testing"

	zone "github.com/lrstanley/bubblezone"
)

func init() {
	// Presenter marks slots through the global zone manager.
	zone.NewGlobal()
}

// plainBuilder tags the rendered cell with its variant so tests can assert
// which visual state each slot was given.
func plainBuilder(item string, v Variant) string {
	switch v {
	case VariantDragged:
		return "[" + item + "]"
	case VariantHovered:
		return "<" + item + ">"
	default:
		return " " + item + " "
	}
}

func TestPresenterRendersAllSlotsInOrder(t *testing.T) {
	c := New([]string{"A", "B", "C"}, PolicyCollapse)
	p := NewPresenter(c, plainBuilder)

	out := zone.Scan(p.View())
	for _, want := range []string{" A ", " B ", " C "} {
		if !strings.Contains(out, want) {
			t.Errorf("View() = %q, missing %q", out, want)
		}
	}
	if strings.Index(out, "A") > strings.Index(out, "B") {
		t.Errorf("View() = %q: slots out of order", out)
	}
}

func TestPresenterVariantsDuringDrag(t *testing.T) {
	c := New([]string{"A", "B", "C", "D"}, PolicyFade)
	p := NewPresenter(c, plainBuilder)

	c.BeginDrag(1)
	c.Hover(3)

	out := zone.Scan(p.View())
	if !strings.Contains(out, "[B]") {
		t.Errorf("View() = %q: dragged slot not rendered with drag variant", out)
	}
	if !strings.Contains(out, "<D>") {
		t.Errorf("View() = %q: hovered slot not highlighted", out)
	}
	if !strings.Contains(out, " A ") || !strings.Contains(out, " C ") {
		t.Errorf("View() = %q: resting slots should render normal", out)
	}
}

func TestPresenterDraggedFollowsItemNotIndex(t *testing.T) {
	c := New([]string{"A", "B", "C", "D"}, PolicyCollapse)
	p := NewPresenter(c, plainBuilder)

	c.BeginDrag(0)
	c.Hover(2) // A now lives at index 2

	out := zone.Scan(p.View())
	if !strings.Contains(out, "[A]") {
		t.Errorf("View() = %q: dragged variant must follow the item through the row", out)
	}
}

func TestPresenterSlotCountShrinksWhileRemoved(t *testing.T) {
	c := New([]string{"A", "B", "C"}, PolicyCollapse)
	p := NewPresenter(c, plainBuilder)

	c.BeginDrag(1)
	if p.SlotCount() != 2 {
		t.Errorf("SlotCount() = %d, want 2 while the item is out of the row", p.SlotCount())
	}
	c.CancelDrag()
	if p.SlotCount() != 3 {
		t.Errorf("SlotCount() = %d, want 3 after cancel", p.SlotCount())
	}
}

func TestPresenterCellWidth(t *testing.T) {
	c := New([]string{"A", "LONGNAME"}, PolicyCollapse)
	p := NewPresenter(c, func(item string, _ Variant) string { return item })
	p.CellWidth = 4
	p.Gap = 0

	out := zone.Scan(p.View())
	if out != "A   LONG" {
		t.Errorf("View() = %q, want %q", out, "A   LONG")
	}
}

func TestPresenterViewSlotOutOfRange(t *testing.T) {
	c := New([]string{"A"}, PolicyCollapse)
	p := NewPresenter(c, plainBuilder)

	if got := p.ViewSlot(5); got != "" {
		t.Errorf("ViewSlot(5) = %q, want empty", got)
	}
	if got := p.ViewSlot(-1); got != "" {
		t.Errorf("ViewSlot(-1) = %q, want empty", got)
	}
}

func TestSlotIDsAreStablePerIndex(t *testing.T) {
	c := New([]string{"A", "B"}, PolicyCollapse)
	p := NewPresenter(c, plainBuilder)

	if p.SlotID(0) == p.SlotID(1) {
		t.Error("distinct slots must have distinct zone IDs")
	}
	if p.SlotID(0) != p.SlotID(0) {
		t.Error("slot IDs must be stable across renders")
	}
}
