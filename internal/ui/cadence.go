package ui

import (
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/five82/chainview/internal/chain"
)

const cadenceCaption = "seconds between blocks"

// blockIntervals returns the seconds between consecutive block timestamps.
func blockIntervals(c chain.Chain) []float64 {
	if len(c) < 2 {
		return nil
	}
	out := make([]float64, 0, len(c)-1)
	for i := 1; i < len(c); i++ {
		out = append(out, float64(c[i].Timestamp-c[i-1].Timestamp))
	}
	return out
}

// cadenceLines is the height the cadence pane occupies.
func (m Model) cadenceLines() int {
	// plot rows with one row of rounding slack, the axis row, caption
	return cadenceHeight + 3
}

// renderCadence plots block intervals under the diagram.
func (m Model) renderCadence() string {
	styles := m.theme.Styles()
	data := blockIntervals(m.chain)
	if m.mode != displayChain || len(data) == 0 {
		msg := styles.FaintText.Render("Block cadence needs at least two blocks.")
		return m.place(m.cadenceLines(), msg)
	}

	opts := []asciigraph.Option{
		asciigraph.Height(cadenceHeight),
		asciigraph.Precision(0),
		asciigraph.Caption(cadenceCaption),
		asciigraph.SeriesColors(asciigraph.Green),
	}
	if len(data) > 1 {
		// Axis labels take roughly ten columns.
		opts = append(opts, asciigraph.Width(max(m.width-12, 10)))
	}
	plot := asciigraph.Plot(data, opts...)

	lines := strings.Split(plot, "\n")
	if n := m.cadenceLines(); len(lines) > n {
		// Keep the caption.
		lines = append(lines[:n-1], lines[len(lines)-1])
	}
	return styles.MutedText.Height(m.cadenceLines()).Render(strings.Join(lines, "\n"))
}
