package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/chainview/internal/chain"
)

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{bg.Render("chainview", styles.Logo)}
	parts = append(parts, m.connectionBadge(styles, bg))

	if m.refreshing {
		parts = append(parts, bg.Render("Refreshing...", styles.WarningText))
	}

	parts = append(parts, bg.Label("Blocks:", fmt.Sprintf("%d", len(m.chain)), styles.MutedText, styles.Text))
	if tip, ok := m.chain.Tip(); ok {
		parts = append(parts, bg.Label("Tip:", fmt.Sprintf("#%d", tip.Index), styles.MutedText, styles.AccentText))
	}

	if ts := m.formatTimestamp(); ts != "" {
		parts = append(parts, bg.Render(ts, styles.MutedText))
	}

	if !compact && m.endpoint != "" {
		parts = append(parts, bg.Render(truncateMiddle(m.endpoint, 48), styles.FaintText))
	}

	return styles.Header.Width(m.width).MaxHeight(1).Render(bg.Join(parts, 2))
}

// connectionBadge reports whether the node is answering.
func (m Model) connectionBadge(styles Styles, bg BgStyle) string {
	err := m.snapshot.LastError
	if err == nil && m.mode == displayError {
		err = m.lastErr
	}
	switch {
	case err != nil:
		label := "NODE " + classifyConnectionError(err)
		if m.snapshot.IsOffline() {
			label += fmt.Sprintf(" ×%d", m.snapshot.ConsecutiveFailures)
		}
		return bg.Render(label, styles.DangerText)
	case m.snapshot.LastUpdated.IsZero() && m.mode != displayChain:
		return bg.Render("Connecting...", styles.WarningText.Bold(true))
	default:
		return bg.Render("● LIVE", styles.SuccessText)
	}
}

// formatTimestamp formats the last successful update with a relative hint.
func (m Model) formatTimestamp() string {
	t := m.snapshot.LastUpdated
	if t.IsZero() {
		return ""
	}
	return t.Format("15:04:05") + " (" + formatSince(t, m.now()) + ")"
}

// classifyConnectionError returns a short description of the connection error.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, chain.ErrMalformedResponse) {
		return "BAD RESPONSE"
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	case strings.Contains(msg, "returned status"):
		return "HTTP ERROR"
	default:
		return "ERROR"
	}
}

// renderCommandBar renders the key hints bar.
func (m Model) renderCommandBar() string {
	// Command bar uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	hints := m.help.ShortHelpView(m.keys.ShortHelp())
	theme := bg.Render("T", styles.AccentText) + bg.Render(" "+m.theme.Name, styles.FaintText)

	gap := m.width - 2 - lipgloss.Width(hints) - lipgloss.Width(theme)
	content := hints + bg.Spaces(max(gap, 2)) + theme
	return styles.Header.Width(m.width).MaxHeight(1).Render(content)
}
