package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/chainview/internal/diagram"
)

// tooltipOverlay returns the detail box to draw and its top-left screen cell.
// The hovered block wins over the keyboard selection.
func (m Model) tooltipOverlay() (box string, x, y int, ok bool) {
	if m.mode != displayChain {
		return "", 0, 0, false
	}

	switch {
	case m.hover.visible && m.hover.index >= 0 && m.hover.index < len(m.scene.Blocks):
		b := m.scene.Blocks[m.hover.index]
		box = m.renderTooltip(diagram.NewTooltip(b.Block, m.loc), m.hover.fading)
		w, h := lipgloss.Size(box)
		x, y = placeNearPointer(m.hover.x, m.hover.y, w, h, m.width, m.height)
		return box, x, y, true

	case m.selected >= 0 && m.selected < len(m.scene.Blocks):
		b := m.scene.Blocks[m.selected]
		box = m.renderTooltip(diagram.NewTooltip(b.Block, m.loc), false)
		w, h := lipgloss.Size(box)
		x, y = placeBelowBlock(b, w, h, m.width, m.height)
		return box, x, y, true
	}
	return "", 0, 0, false
}

// placeNearPointer offsets the box right of and above the pointer, flipping
// to the left side when it would run off the right edge, then clamps it on
// screen.
func placeNearPointer(px, py, w, h, screenW, screenH int) (int, int) {
	x := px + tooltipOffsetX
	if x+w > screenW {
		x = px - tooltipOffsetX - w
	}
	y := py + tooltipOffsetY
	return clamp(x, 0, screenW-w), clamp(y, 0, screenH-h)
}

// placeBelowBlock anchors the box under a block's left edge.
func placeBelowBlock(b diagram.BlockBox, w, h, screenW, screenH int) (int, int) {
	x := b.X
	y := headerLines + b.Y + b.Height
	if y+h > screenH {
		y = headerLines + b.Y - h
	}
	return clamp(x, 0, screenW-w), clamp(y, 0, screenH-h)
}

// renderTooltip renders the block detail box. A fading box is drawn faint.
func (m Model) renderTooltip(t diagram.Tooltip, fading bool) string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	label := styles.MutedText
	value := styles.Text
	hash := styles.SuccessText.Bold(false)
	prev := styles.WarningText
	code := styles.InfoText
	title := styles.AccentText.Bold(true)
	if fading {
		label, value, hash, prev, code, title = styles.FaintText, styles.FaintText,
			styles.FaintText, styles.FaintText, styles.FaintText, styles.FaintText
	}

	lines := []string{
		bg.Render(fmt.Sprintf("Block #%d", t.Index), title),
		bg.Label("Timestamp:", t.Timestamp, label, value),
		bg.Label("Author:", t.Author, label, value),
		bg.Label("Hash:", t.Hash, label, hash),
		bg.Label("Prev Hash:", t.PreviousHash, label, prev),
		bg.Render(fmt.Sprintf("Proof (%s):", t.Language), label),
	}
	for _, line := range t.Code {
		lines = append(lines, bg.Space()+bg.Space()+bg.Render(line, code))
	}

	border := m.theme.BorderFocus
	if fading {
		border = m.theme.Border
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(m.theme.SurfaceAlt)).
		Background(lipgloss.Color(m.theme.SurfaceAlt)).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// overlay draws box over base with its top-left corner at (x, y). Both may
// contain ANSI styling; rows of box that fall outside base are dropped.
func overlay(base, box string, x, y int) string {
	lines := strings.Split(base, "\n")
	for i, row := range strings.Split(box, "\n") {
		ly := y + i
		if ly < 0 || ly >= len(lines) {
			continue
		}
		line := lines[ly]
		if w := ansi.StringWidth(line); w < x {
			line += strings.Repeat(" ", x-w)
		}
		left := ansi.Truncate(line, x, "")
		right := ansi.TruncateLeft(line, x+ansi.StringWidth(row), "")
		lines[ly] = left + row + right
	}
	return strings.Join(lines, "\n")
}
