package diagram

import (
	"fmt"

	"github.com/five82/chainview/internal/chain"
)

// Geometry holds the fixed sizes of the diagram, in terminal cells.
type Geometry struct {
	BlockWidth  int
	BlockHeight int
	Gap         int
	Height      int // canvas rows
}

// DefaultGeometry returns the standard block and canvas sizes.
func DefaultGeometry() Geometry {
	return Geometry{
		BlockWidth:  18,
		BlockHeight: 5,
		Gap:         4,
		Height:      15,
	}
}

// Stride is the horizontal distance between the left edges of two blocks.
func (g Geometry) Stride() int {
	return g.BlockWidth + g.Gap
}

// TotalWidth is the width of a row of n blocks.
func (g Geometry) TotalWidth(n int) int {
	return n*g.Stride() - g.Gap
}

// CenterY is the shared vertical center line of blocks and links.
func (g Geometry) CenterY() int {
	return g.Height / 2
}

// BlockBox is one positioned block.
type BlockBox struct {
	X, Y          int
	Width, Height int
	Genesis       bool
	Block         chain.Block
	Label         string // Block #n
	Language      string // Lang: x
	ShortHash     string
}

// Contains reports whether the cell (x, y) falls inside the box.
func (b BlockBox) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Link connects the right-center edge of one block to the left-center edge
// of the next.
type Link struct {
	X1, Y1 int
	X2, Y2 int
}

// Scene is the laid out diagram for one chain and viewport.
type Scene struct {
	Width      int
	Height     int
	StartX     int // left edge of the first block; negative when the row overflows
	TotalWidth int
	Blocks     []BlockBox
	Links      []Link
}

// Layout positions blocks in a horizontally centered row.
func Layout(c chain.Chain, viewportWidth int, g Geometry) Scene {
	n := len(c)
	total := g.TotalWidth(n)
	scene := Scene{
		Width:      viewportWidth,
		Height:     g.Height,
		StartX:     (viewportWidth - total) / 2,
		TotalWidth: total,
	}
	if n == 0 {
		return scene
	}

	top := g.CenterY() - g.BlockHeight/2
	scene.Blocks = make([]BlockBox, 0, n)
	for i, b := range c {
		scene.Blocks = append(scene.Blocks, BlockBox{
			X:         scene.StartX + i*g.Stride(),
			Y:         top,
			Width:     g.BlockWidth,
			Height:    g.BlockHeight,
			Genesis:   b.IsGenesis(),
			Block:     b,
			Label:     fmt.Sprintf("Block #%d", b.Index),
			Language:  "Lang: " + Printable(b.Proof.Language, false),
			ShortHash: ShortHash(Printable(b.Hash, false)),
		})
	}

	scene.Links = make([]Link, 0, n-1)
	for i := 0; i+1 < n; i++ {
		scene.Links = append(scene.Links, Link{
			X1: scene.StartX + i*g.Stride() + g.BlockWidth,
			Y1: g.CenterY(),
			X2: scene.StartX + (i+1)*g.Stride(),
			Y2: g.CenterY(),
		})
	}
	return scene
}

// BlockAt returns the index into Blocks of the box under (x, y).
func (s Scene) BlockAt(x, y int) (int, bool) {
	for i, b := range s.Blocks {
		if b.Contains(x, y) {
			return i, true
		}
	}
	return -1, false
}
