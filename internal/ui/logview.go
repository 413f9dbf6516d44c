package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/chainview/internal/logging"
)

// logTailLimit caps how many log lines are read for the overlay.
const logTailLimit = 200

func (m Model) logTailCmd() tea.Cmd {
	path := m.logPath
	return func() tea.Msg {
		if path == "" {
			return logTailMsg{}
		}
		lines, err := logging.Tail(path, logTailLimit)
		return logTailMsg{lines: lines, err: err}
	}
}

// renderLogOverlay shows the newest sync log lines that fit on screen.
func (m Model) renderLogOverlay() string {
	styles := m.theme.Styles()

	width := max(m.width-8, 20)
	rows := max(m.height-8, 3)

	var body []string
	switch {
	case m.logPath == "":
		body = []string{styles.MutedText.Render("Logging is disabled.")}
	case m.logErr != nil:
		body = []string{styles.DangerText.Render(truncate(m.logErr.Error(), width))}
	case len(m.logLines) == 0:
		body = []string{styles.MutedText.Render("No log entries yet.")}
	default:
		lines := m.logLines
		if len(lines) > rows {
			lines = lines[len(lines)-rows:]
		}
		for _, line := range lines {
			body = append(body, logLineStyle(line, styles).Render(truncate(line, width)))
		}
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Sync Log"))
	if m.logPath != "" {
		b.WriteString("  ")
		b.WriteString(styles.FaintText.Render(truncateMiddle(m.logPath, width-10)))
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", min(width, 60))))
	b.WriteString("\n")
	b.WriteString(strings.Join(body, "\n"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(0, 1)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// logLineStyle colors poll failures so they stand out.
func logLineStyle(line string, styles Styles) lipgloss.Style {
	switch {
	case strings.Contains(line, "poll failed"):
		return styles.DangerText.Bold(false)
	case strings.Contains(line, "stale"):
		return styles.WarningText
	case strings.Contains(line, "chain changed"):
		return styles.SuccessText.Bold(false)
	default:
		return styles.MutedText
	}
}
