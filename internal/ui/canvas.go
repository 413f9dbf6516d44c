package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/chainview/internal/diagram"
)

// Error panel text.
const (
	errorTitle   = "Connection Error"
	errorMessage = "Could not connect to the chain node. Is it running?"
)

// renderCanvasArea renders the region below the header: the chain diagram,
// the connection error panel, or a waiting message.
func (m Model) renderCanvasArea() string {
	g := m.canvasGeometry()
	switch m.mode {
	case displayError:
		return m.place(g.Height, m.renderErrorPanel())
	case displayChain:
		if len(m.scene.Blocks) == 0 {
			return m.place(g.Height, m.theme.Styles().MutedText.Render("The chain is empty."))
		}
		canvas := diagram.NewCanvas(m.width, g.Height)
		diagram.Draw(m.scene, canvas, m.activeBlock())
		return canvas.Render(m.theme.Palette())
	default:
		return m.place(g.Height, m.renderWaiting())
	}
}

// activeBlock is the block drawn with the highlighted border.
func (m Model) activeBlock() int {
	if m.hover.visible && !m.hover.fading {
		return m.hover.index
	}
	if m.selected >= 0 {
		return m.selected
	}
	return diagram.NoBlock
}

func (m Model) renderWaiting() string {
	styles := m.theme.Styles()
	if !m.snapshot.LastUpdated.IsZero() {
		// Reached the node, but there is nothing to draw yet.
		return styles.MutedText.Render("Waiting for the first block...")
	}
	return styles.WarningText.Render("Connecting to ") + styles.AccentText.Render(m.endpoint) +
		styles.WarningText.Render("...")
}

// renderErrorPanel renders the panel that replaces the diagram while the
// node is unreachable.
func (m Model) renderErrorPanel() string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)

	lines := []string{
		styles.DangerText.Render(errorTitle),
		"",
		styles.Text.Render(errorMessage),
		styles.AccentText.Render(m.endpoint),
	}
	if m.lastErr != nil {
		lines = append(lines, "", styles.FaintText.Render(truncate(m.lastErr.Error(), 72)))
	}
	if m.pollEvery > 0 {
		lines = append(lines, styles.MutedText.Render("Retrying every "+m.pollEvery.String()))
	}

	return styles.Panel.
		BorderForeground(lipgloss.Color(m.theme.Danger)).
		BorderBackground(lipgloss.Color(m.theme.Background)).
		Padding(1, 3).
		Render(strings.Join(lines, "\n"))
}

// place centers content in a full-width block of the given height on the
// theme background.
func (m Model) place(height int, content string) string {
	return lipgloss.Place(
		m.width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background)),
	)
}
