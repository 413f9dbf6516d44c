package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/chainview/internal/diagram"
)

// handleMouse tracks the pointer over the diagram. Entering a block shows
// its tooltip; leaving starts the fade.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.mode != displayChain || m.showHelp || m.showLog {
		return nil
	}

	i, over := m.scene.BlockAt(msg.X, msg.Y-headerLines)

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if over {
			m.selected = i
		} else {
			m.selected = diagram.NoBlock
		}
	}

	if over {
		m.hover.index = i
		m.hover.x = msg.X
		m.hover.y = msg.Y
		m.hover.visible = true
		if m.hover.fading {
			// Re-entered before the fade finished.
			m.hover.fading = false
			m.hover.seq++
		}
		return nil
	}

	if m.hover.visible && !m.hover.fading {
		m.hover.fading = true
		m.hover.seq++
		return fadeCmd(m.hover.seq)
	}
	return nil
}

// clearHover hides the tooltip and cancels any pending fade.
func (m *Model) clearHover() {
	m.hover = hoverState{index: diagram.NoBlock, seq: m.hover.seq + 1}
}
