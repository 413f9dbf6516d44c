package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/chainview/internal/chain"
)

// Snapshot is a copy of the viewer's held state.
type Snapshot struct {
	Chain               chain.Chain
	Seq                 uint64 // request sequence of the last applied response
	LastUpdated         time.Time // last successful fetch
	LastError           error
	ConsecutiveFailures int
	ShowingError        bool // the error panel replaced the diagram
}

// IsOffline returns true when the node has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Outcome tells the caller what an Apply did to the display.
type Outcome int

const (
	// Unchanged means the response was accepted but nothing needs drawing.
	Unchanged Outcome = iota
	// Rerender means the held chain was replaced (or recovered) and must be drawn.
	Rerender
	// ShowError means the error panel should replace the diagram.
	ShowError
	// Stale means a newer response was already applied; this one was dropped.
	Stale
)

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Rerender:
		return "rerender"
	case ShowError:
		return "error"
	case Stale:
		return "stale"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Store coordinates concurrent updates to the held chain.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Apply records the result of the fetch issued with sequence seq.
//
// On error the held chain is kept and the error recorded. On success the held
// chain is replaced only when its length differs, or when the error panel is
// up and the diagram has to come back. Responses older than the last applied
// one are dropped.
func (s *Store) Apply(seq uint64, fetched chain.Chain, err error) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq < s.snapshot.Seq {
		return Stale
	}
	s.snapshot.Seq = seq

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		s.snapshot.ShowingError = true
		return ShowError
	}

	s.snapshot.LastUpdated = time.Now()
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0

	if len(fetched) != len(s.snapshot.Chain) {
		s.snapshot.Chain = fetched.Clone()
		s.snapshot.ShowingError = false
		return Rerender
	}
	if s.snapshot.ShowingError {
		s.snapshot.ShowingError = false
		return Rerender
	}
	return Unchanged
}

// Chain returns a copy of the held chain.
func (s *Store) Chain() chain.Chain {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Chain.Clone()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Chain = s.snapshot.Chain.Clone()
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
