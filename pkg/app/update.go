package app

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/dockline/pkg/gesture"
	"gitlab.com/tinyland/lab/dockline/pkg/theme"
)

// Update implements tea.Model. Each incoming event mutates the dock at
// most once, so a render between any two events always sees a consistent
// order.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case HoldFiredEvent:
		m.apply(m.rec.HoldFired())

	case OrderChangedEvent:
		slog.Debug("dock order committed", "items", msg.Items)
	}

	return m, nil
}

// handleKey processes keyboard input: selection movement, keyboard
// reordering, theme cycling, reset, help, quit.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.teardown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.Right):
		if m.selected < m.ctrl.Len()-1 {
			m.selected++
		}

	case key.Matches(msg, m.keys.MoveLeft):
		m.moveSelected(-1)

	case key.Matches(msg, m.keys.MoveRight):
		m.moveSelected(+1)

	case key.Matches(msg, m.keys.Theme):
		m.cycleTheme()

	case key.Matches(msg, m.keys.Reset):
		m.resetOrder()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// moveSelected shifts the selected item one slot left or right through a
// complete drag cycle, so keyboard reordering exercises the same commit
// path as the mouse. Ignored while a mouse drag is in flight.
func (m *Model) moveSelected(delta int) {
	if m.ctrl.Dragging() {
		return
	}
	target := m.selected + delta
	if target < 0 || target >= m.ctrl.Len() {
		return
	}

	m.ctrl.BeginDrag(m.selected)
	item, ok := m.ctrl.DraggedItem()
	if !ok {
		return
	}
	m.ctrl.Accept(item, target)
	m.ctrl.EndDrag()

	m.selected = target
	m.setStatus(true, "moved %q to slot %d", item, target)
}

// handleMouse feeds raw mouse events through the recognizer and applies
// the resulting intent. Only the left button drags.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		slot := m.slotAt(msg)
		ev := m.rec.Press(slot)
		if m.rec.Current() == gesture.PhasePressed {
			out := m.out
			m.hold.Start(m.rec.HoldThreshold, func() {
				out.Send(HoldFiredEvent{})
			})
		}
		m.apply(ev)

	case tea.MouseActionMotion:
		m.apply(m.rec.Move(m.slotAt(msg)))

	case tea.MouseActionRelease:
		m.hold.Stop()
		m.apply(m.rec.Release(m.slotAt(msg)))
	}
}

// slotAt hit-tests a mouse event against the rendered slot zones,
// returning the slot index or -1 when the pointer is over none.
func (m *Model) slotAt(msg tea.MouseMsg) int {
	for i := 0; i < m.pres.SlotCount(); i++ {
		if zone.Get(m.pres.SlotID(i)).InBounds(msg) {
			return i
		}
	}
	return -1
}

// apply maps a recognized gesture onto the controller.
func (m *Model) apply(ev gesture.Event) {
	switch ev.Intent {
	case gesture.IntentBeginDrag:
		m.ctrl.BeginDrag(ev.Slot)
		if item, ok := m.ctrl.DraggedItem(); ok {
			m.setStatus(true, "dragging %q", item)
		}

	case gesture.IntentHover:
		m.ctrl.Hover(ev.Slot)

	case gesture.IntentDragOut:
		m.ctrl.DragOut()

	case gesture.IntentDrop:
		item, ok := m.ctrl.DraggedItem()
		if !ok {
			return
		}
		m.ctrl.Accept(item, ev.Slot)
		m.ctrl.EndDrag()
		m.setStatus(true, "placed %q at slot %d", item, ev.Slot)

	case gesture.IntentCancel:
		item, ok := m.ctrl.DraggedItem()
		m.ctrl.CancelDrag()
		if ok {
			m.setStatus(false, "drag of %q cancelled", item)
		}
	}
	m.clampSelection()
}

// cycleTheme advances to the next registered theme.
func (m *Model) cycleTheme() {
	names := theme.Names()
	for i, name := range names {
		if name == m.themeName {
			m.themeName = names[(i+1)%len(names)]
			break
		}
	}
	theme.SetCurrent(m.themeName)
	m.setStatus(true, "theme: %s", m.themeName)
}

// resetOrder restores the initial item order from the configuration.
// Ignored mid-drag; resetting under a live drag would strand the dragged
// item.
func (m *Model) resetOrder() {
	if m.ctrl.Dragging() {
		return
	}
	m.ctrl.Reset(m.initial)
	m.selected = 0
	m.setStatus(true, "order reset")
}
