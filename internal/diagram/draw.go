package diagram

// Box drawing glyphs, matching lipgloss.RoundedBorder.
const (
	glyphTopLeft     = '╭'
	glyphTopRight    = '╮'
	glyphBottomLeft  = '╰'
	glyphBottomRight = '╯'
	glyphHorizontal  = '─'
	glyphVertical    = '│'
	glyphLink        = '─'
	glyphLinkHead    = '▶'
)

// NoBlock is passed as the active index when no block is highlighted.
const NoBlock = -1

// Draw clears canvas and paints scene onto it. The block at index active, if
// any, gets a highlighted border. Boxes and links that lie wholly off the
// canvas are skipped.
func Draw(scene Scene, canvas *Canvas, active int) {
	canvas.Clear()

	w, h := canvas.Width(), canvas.Height()
	for _, l := range scene.Links {
		if l.X2 <= 0 || l.X1 >= w || l.Y1 < 0 || l.Y1 >= h {
			continue
		}
		for x := max(l.X1, 0); x < min(l.X2, w); x++ {
			glyph := glyphLink
			if x == l.X2-1 && l.X2-l.X1 > 1 {
				glyph = glyphLinkHead
			}
			canvas.set(x, l.Y1, glyph, InkLink, InkNone)
		}
	}

	for i, b := range scene.Blocks {
		if b.X+b.Width <= 0 || b.X >= w || b.Y+b.Height <= 0 || b.Y >= h {
			continue
		}
		drawBlock(canvas, b, i == active)
	}
}

func drawBlock(canvas *Canvas, b BlockBox, active bool) {
	fill := InkBlock
	if b.Genesis {
		fill = InkGenesis
	}
	border := InkBorder
	if active {
		border = InkBorderActive
	}

	right := b.X + b.Width - 1
	bottom := b.Y + b.Height - 1
	for y := b.Y; y <= bottom; y++ {
		for x := b.X; x <= right; x++ {
			var glyph rune
			switch {
			case y == b.Y && x == b.X:
				glyph = glyphTopLeft
			case y == b.Y && x == right:
				glyph = glyphTopRight
			case y == bottom && x == b.X:
				glyph = glyphBottomLeft
			case y == bottom && x == right:
				glyph = glyphBottomRight
			case y == b.Y || y == bottom:
				glyph = glyphHorizontal
			case x == b.X || x == right:
				glyph = glyphVertical
			default:
				canvas.set(x, y, ' ', InkNone, fill)
				continue
			}
			canvas.set(x, y, glyph, border, fill)
		}
	}

	inner := b.Width - 2
	lines := []struct {
		text string
		ink  Ink
	}{
		{b.Label, InkLabel},
		{b.Language, InkLanguage},
		{b.ShortHash, InkHash},
	}
	for i, line := range lines {
		y := b.Y + 1 + i
		if y >= bottom {
			break
		}
		text := fit(line.text, inner)
		canvas.text(b.X+1+centerOffset(text, inner), y, text, line.ink, fill)
	}
}
