package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/chainview/internal/chain"
)

func TestBlockIntervals(t *testing.T) {
	c := chain.Chain{{Timestamp: 100}, {Timestamp: 130}, {Timestamp: 190}}
	got := blockIntervals(c)
	if len(got) != 2 || got[0] != 30 || got[1] != 60 {
		t.Fatalf("blockIntervals = %v, want [30 60]", got)
	}
	if blockIntervals(c[:1]) != nil {
		t.Fatalf("single block should have no intervals")
	}
}

func TestRenderCadence(t *testing.T) {
	m := newTestModel(t, Options{ShowCadence: true})
	if !strings.Contains(m.renderCadence(), "at least two blocks") {
		t.Fatalf("cadence placeholder missing before any chain")
	}

	c := makeChain(4)
	c[2].Timestamp += 45
	m = step(t, m, chainMsg{chain: c})
	out := m.renderCadence()
	if !strings.Contains(out, cadenceCaption) {
		t.Fatalf("cadence plot missing caption:\n%s", out)
	}
	if got := len(strings.Split(out, "\n")); got > m.cadenceLines() {
		t.Fatalf("cadence pane is %d rows, want at most %d", got, m.cadenceLines())
	}
}

func TestCadencePaneShrinksCanvas(t *testing.T) {
	m := newTestModel(t, Options{})
	m = step(t, m, chainMsg{chain: makeChain(2)})
	m = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 20})
	if got := m.canvasGeometry().Height; got != 15 {
		t.Fatalf("canvas height = %d, want 15", got)
	}

	m = step(t, m, runes("c"))
	// 20 rows - 2 header - 8 cadence
	if got := m.canvasGeometry().Height; got != 10 {
		t.Fatalf("canvas height with cadence = %d, want 10", got)
	}
	if m.scene.Height != 10 {
		t.Fatalf("scene not re-laid out: height %d", m.scene.Height)
	}
}
