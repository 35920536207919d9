package theme

import (
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/dockline/pkg/dock"
)

// SlotStyle returns the lipgloss style for a slot in the given visual
// variant. The dragged variant fades the item; the hovered variant
// highlights the drop target.
func SlotStyle(t Theme, v dock.Variant) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1)
	switch v {
	case dock.VariantDragged:
		return base.
			Foreground(lipgloss.Color(t.DraggedText)).
			Background(lipgloss.Color(t.Dragged)).
			Faint(true)
	case dock.VariantHovered:
		return base.
			Foreground(lipgloss.Color(t.HoveredText)).
			Background(lipgloss.Color(t.Hovered)).
			Bold(true)
	default:
		return base.
			Foreground(lipgloss.Color(t.ItemText)).
			Background(lipgloss.Color(t.Item))
	}
}

// FrameStyle returns the bordered box style around the dock row. The
// border switches to the drag accent while a drag is in flight.
func FrameStyle(t Theme, dragging bool) lipgloss.Style {
	border := t.Border
	if dragging {
		border = t.BorderDrag
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1)
}

// TitleStyle returns the style for the dock title text.
func TitleStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Title)).
		Bold(true)
}

// StatusStyle returns the style for the status line. ok selects the
// confirmation color, otherwise the error color.
func StatusStyle(t Theme, ok bool) lipgloss.Style {
	color := t.StatusOK
	if !ok {
		color = t.StatusError
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// DimStyle returns the style for de-emphasized text.
func DimStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dim))
}
