package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/dockline/pkg/theme"
)

// View implements tea.Model. The full frame is passed through zone.Scan
// so every slot's on-screen rectangle is registered for mouse hit
// testing on the next event.
func (m Model) View() string {
	th := theme.Current

	title := theme.TitleStyle(th).Render("dockline")
	hint := theme.DimStyle(th).Render(" · " + th.Name)
	header := lipgloss.JoinHorizontal(lipgloss.Center, title, hint)

	row := m.pres.View()
	if !m.ctrl.Dragging() {
		row = m.overlaySelection(row)
	}
	frame := theme.FrameStyle(th, m.ctrl.Dragging()).Render(row)

	status := theme.StatusStyle(th, m.statusOK).Render(m.status)
	helpView := m.help.View(m.keys)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(frame)
	b.WriteString("\n")
	b.WriteString(status)
	b.WriteString("\n")
	b.WriteString(helpView)

	out := b.String()
	if m.width > 0 {
		out = lipgloss.NewStyle().MaxWidth(m.width).Render(out)
	}
	return zone.Scan(out)
}

// overlaySelection re-renders the keyboard-selected slot with an accent
// marker. The presenter renders resting state; selection is app chrome
// layered on top, so it stays out of the reorder model entirely.
func (m Model) overlaySelection(row string) string {
	n := m.pres.SlotCount()
	if n == 0 || m.selected < 0 || m.selected >= n {
		return row
	}

	th := theme.Current
	marker := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Accent)).Render("▾")

	// One marker line above the row, aligned to the selected slot's zone.
	// Zones are only known after a Scan, so alignment uses the rendered
	// slot widths directly.
	offset := 0
	for i := 0; i < m.selected; i++ {
		offset += lipgloss.Width(zone.Scan(m.pres.ViewSlot(i))) + m.pres.Gap
	}
	pad := strings.Repeat(" ", offset)
	return pad + marker + "\n" + row
}
