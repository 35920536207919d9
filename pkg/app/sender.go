package app

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// sender delivers messages into the running program from outside the
// event loop (the hold timer fires on its own goroutine). The program
// handle only exists after the model has been handed to tea.NewProgram,
// so the send function is wired late and Send is a no-op until then and
// after Close.
type sender struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func (s *sender) wire(send func(tea.Msg)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.send = send
}

func (s *sender) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.send = nil
}

// Send forwards msg to the program, dropping it when unwired.
func (s *sender) Send(msg tea.Msg) {
	s.mu.Lock()
	send := s.send
	s.mu.Unlock()
	if send != nil {
		send(msg)
	}
}
