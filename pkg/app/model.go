package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/dockline/pkg/config"
	"gitlab.com/tinyland/lab/dockline/pkg/dock"
	"gitlab.com/tinyland/lab/dockline/pkg/gesture"
	"gitlab.com/tinyland/lab/dockline/pkg/theme"
)

// Model is the root Bubbletea model: a dock controller, its presenter,
// and the gesture recognizer feeding it. All mutable state lives in the
// controller; the model only carries UI chrome (selection, status text,
// help visibility).
type Model struct {
	cfg  *config.Config
	ctrl *dock.Controller[string]
	pres *dock.Presenter[string]
	rec  *gesture.Recognizer
	hold *gesture.HoldTimer
	out  *sender

	keys KeyMap
	help help.Model

	width    int
	height   int
	selected int
	status   string
	statusOK bool

	themeName string
	initial   []string
	unsub     func()
}

// New builds the application model from a validated configuration.
func New(cfg *config.Config) (Model, error) {
	policy, err := dock.ParsePolicy(cfg.Dock.Policy)
	if err != nil {
		return Model{}, fmt.Errorf("app: %w", err)
	}

	ctrl := dock.New(cfg.Dock.Items, policy)
	pres := dock.NewPresenter(ctrl, themedBuilder())
	pres.CellWidth = cfg.Dock.CellWidth

	m := Model{
		cfg:       cfg,
		ctrl:      ctrl,
		pres:      pres,
		rec:       gesture.NewRecognizer(cfg.Dock.HoldThreshold.Duration),
		hold:      &gesture.HoldTimer{},
		out:       &sender{},
		keys:      DefaultKeyMap(),
		help:      help.New(),
		status:    "drag with the mouse, or hold shift and use the arrows",
		statusOK:  true,
		themeName: theme.Current.Name,
		initial:   append([]string(nil), cfg.Dock.Items...),
	}

	// Committed (idle) snapshots are forwarded to embedding hosts.
	out := m.out
	m.unsub = ctrl.Changes().Subscribe(func(s dock.Snapshot[string]) {
		if !s.Dragging {
			out.Send(OrderChangedEvent{Items: s.Items})
		}
	})

	return m, nil
}

// Wire connects the model to its running program so off-loop events (the
// hold timer) can be injected. Call after tea.NewProgram, before Run.
func (m Model) Wire(send func(tea.Msg)) {
	m.out.wire(send)
}

// Controller exposes the dock controller, mainly for tests and embedding.
func (m Model) Controller() *dock.Controller[string] { return m.ctrl }

// Selected returns the keyboard-selected slot index.
func (m Model) Selected() int { return m.selected }

// Status returns the current status line text.
func (m Model) Status() string { return m.status }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Close releases the model's off-loop resources: the hold timer and the
// change subscription. Safe to call after the program exits, and must be
// called if the program aborts without the quit key.
func (m Model) Close() {
	m.teardown()
}

// teardown releases everything that could outlive the event loop: the
// hold timer must never fire into a dead program.
func (m *Model) teardown() {
	m.hold.Stop()
	if m.unsub != nil {
		m.unsub()
	}
	m.out.close()
}

// clampSelection keeps the keyboard selection inside the current row,
// which shrinks while a collapse-policy drag is in flight.
func (m *Model) clampSelection() {
	if n := m.ctrl.Len(); m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *Model) setStatus(ok bool, format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusOK = ok
}
