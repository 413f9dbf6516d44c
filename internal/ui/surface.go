package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/chainview/internal/chain"
)

// Sender delivers messages into a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Surface forwards the sync controller's draw calls into the Bubble Tea
// program as messages, so the model is only ever touched from Update.
type Surface struct {
	mu     sync.Mutex
	sender Sender
}

// NewSurface returns a detached surface. Calls before Attach are dropped.
func NewSurface() *Surface {
	return &Surface{}
}

// Attach connects the surface to a program.
func (s *Surface) Attach(sender Sender) {
	s.mu.Lock()
	s.sender = sender
	s.mu.Unlock()
}

// Render replaces the displayed chain.
func (s *Surface) Render(c chain.Chain) {
	s.send(chainMsg{chain: c.Clone()})
}

// ShowError replaces the diagram with the connection error panel.
func (s *Surface) ShowError(endpoint string, err error) {
	s.send(connErrorMsg{endpoint: endpoint, err: err})
}

func (s *Surface) send(msg tea.Msg) {
	s.mu.Lock()
	sender := s.sender
	s.mu.Unlock()
	if sender != nil {
		sender.Send(msg)
	}
}
