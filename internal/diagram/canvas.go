package diagram

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Ink names the role a cell plays so the palette can color it.
type Ink uint8

const (
	InkNone Ink = iota
	InkLink
	InkBorder
	InkBorderActive
	InkGenesis
	InkBlock
	InkLabel
	InkLanguage
	InkHash
)

// Palette maps inks to colors.
type Palette struct {
	Background   string
	Link         string
	Border       string
	BorderActive string
	Genesis      string
	Block        string
	Label        string
	Language     string
	Hash         string
}

func (p Palette) color(ink Ink) string {
	switch ink {
	case InkLink:
		return p.Link
	case InkBorder:
		return p.Border
	case InkBorderActive:
		return p.BorderActive
	case InkGenesis:
		return p.Genesis
	case InkBlock:
		return p.Block
	case InkLabel:
		return p.Label
	case InkLanguage:
		return p.Language
	case InkHash:
		return p.Hash
	default:
		return p.Background
	}
}

// cell holds one grapheme cluster. A double-width cluster sits in a lead
// cell followed by a cont cell that prints nothing.
type cell struct {
	g    string
	fg   Ink
	bg   Ink
	wide bool
	cont bool
}

var blank = cell{g: " "}

// Canvas is a fixed-size grid of cells. Writes outside the grid are dropped,
// which is how rows wider than the viewport get clipped.
type Canvas struct {
	width  int
	height int
	cells  []cell
}

// NewCanvas allocates a blank canvas.
func NewCanvas(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	c := &Canvas{width: width, height: height, cells: make([]cell, width*height)}
	c.Clear()
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = blank
	}
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

// at returns the cell at (x, y), or a zero cell outside the canvas.
func (c *Canvas) at(x, y int) cell {
	if !c.inside(x, y) {
		return cell{}
	}
	return c.cells[y*c.width+x]
}

// put stores cl at (x, y). Overwriting either half of a wide cluster blanks
// the other half so no row ever holds half a glyph.
func (c *Canvas) put(x, y int, cl cell) {
	if !c.inside(x, y) {
		return
	}
	i := y*c.width + x
	old := c.cells[i]
	if old.wide && x+1 < c.width {
		c.cells[i+1] = cell{g: " ", bg: c.cells[i+1].bg}
	}
	if old.cont && x > 0 {
		c.cells[i-1] = cell{g: " ", bg: c.cells[i-1].bg}
	}
	c.cells[i] = cl
}

func (c *Canvas) set(x, y int, r rune, fg, bg Ink) {
	c.put(x, y, cell{g: string(r), fg: fg, bg: bg})
}

// text writes s from (x, y). Zero-width clusters are dropped, and a wide
// cluster that would straddle the canvas edge is replaced by spaces.
func (c *Canvas) text(x, y int, s string, fg, bg Ink) {
	for s != "" {
		g, w := ansi.FirstGraphemeCluster(s, ansi.GraphemeWidth)
		s = s[len(g):]
		switch {
		case w <= 0:
			continue
		case w == 1:
			c.put(x, y, cell{g: g, fg: fg, bg: bg})
		default:
			if !c.inside(x, y) || !c.inside(x+1, y) {
				c.set(x, y, ' ', fg, bg)
				c.set(x+1, y, ' ', fg, bg)
			} else {
				c.put(x, y, cell{g: g, fg: fg, bg: bg, wide: true})
				c.put(x+1, y, cell{fg: fg, bg: bg, cont: true})
			}
			w = 2
		}
		x += w
	}
}

// String renders the canvas without colors, one line per row.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, cl := range c.cells[y*c.width : (y+1)*c.width] {
			b.WriteString(cl.g)
		}
	}
	return b.String()
}

// Render renders the canvas with palette colors. Consecutive cells that share
// colors are emitted as one styled run.
func (c *Canvas) Render(p Palette) string {
	lines := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		var line strings.Builder
		row := c.cells[y*c.width : (y+1)*c.width]
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && row[end].fg == row[start].fg && row[end].bg == row[start].bg {
				end++
			}
			var run strings.Builder
			for _, cl := range row[start:end] {
				run.WriteString(cl.g)
			}
			style := lipgloss.NewStyle().
				Background(lipgloss.Color(p.color(row[start].bg)))
			if row[start].fg != InkNone {
				style = style.Foreground(lipgloss.Color(p.color(row[start].fg)))
			}
			line.WriteString(style.Render(run.String()))
			start = end
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}
