package diagram

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/five82/chainview/internal/chain"
)

func makeChain(n int) chain.Chain {
	out := make(chain.Chain, n)
	prev := chain.GenesisPreviousHash
	for i := range out {
		hash := fmt.Sprintf("%064x", 0xabc000+i)
		out[i] = chain.Block{
			Index:        uint64(i),
			Timestamp:    1700000000 + int64(i)*30,
			PreviousHash: prev,
			Hash:         hash,
			Proof:        chain.Proof{Language: "rust", Author: "alice", Code: "fn main() {}"},
		}
		prev = hash
	}
	return out
}

func TestLayout_BlockAndLinkCounts(t *testing.T) {
	g := DefaultGeometry()
	for n := 0; n <= 6; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			scene := Layout(makeChain(n), 120, g)
			if len(scene.Blocks) != n {
				t.Fatalf("blocks = %d, want %d", len(scene.Blocks), n)
			}
			wantLinks := max(n-1, 0)
			if len(scene.Links) != wantLinks {
				t.Fatalf("links = %d, want %d", len(scene.Links), wantLinks)
			}
		})
	}
}

func TestLayout_Centering(t *testing.T) {
	g := DefaultGeometry()
	tests := []struct {
		name  string
		n     int
		width int
	}{
		{"single block", 1, 100},
		{"three blocks", 3, 100},
		{"odd remainder", 2, 61},
		{"overflow", 10, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene := Layout(makeChain(tt.n), tt.width, g)
			total := tt.n*(g.BlockWidth+g.Gap) - g.Gap
			want := (tt.width - total) / 2
			if scene.TotalWidth != total {
				t.Fatalf("TotalWidth = %d, want %d", scene.TotalWidth, total)
			}
			if scene.Blocks[0].X != want || scene.StartX != want {
				t.Fatalf("first block X = %d (StartX %d), want %d", scene.Blocks[0].X, scene.StartX, want)
			}
		})
	}

	overflow := Layout(makeChain(10), 80, g)
	if overflow.StartX >= 0 {
		t.Fatalf("StartX = %d for an overflowing row, want negative", overflow.StartX)
	}
}

func TestLayout_SingleBlockCenteredAlone(t *testing.T) {
	g := DefaultGeometry()
	scene := Layout(makeChain(1), 100, g)
	b := scene.Blocks[0]
	left := b.X
	right := scene.Width - (b.X + b.Width)
	if left != right {
		t.Fatalf("margins = %d/%d, want equal", left, right)
	}
	if len(scene.Links) != 0 {
		t.Fatalf("links = %d, want 0", len(scene.Links))
	}
}

func TestLayout_PositionsAndLinks(t *testing.T) {
	g := Geometry{BlockWidth: 10, BlockHeight: 5, Gap: 4, Height: 15}
	scene := Layout(makeChain(3), 50, g)

	// total = 3*14 - 4 = 38, startX = (50-38)/2 = 6
	wantX := []int{6, 20, 34}
	for i, b := range scene.Blocks {
		if b.X != wantX[i] {
			t.Fatalf("block %d X = %d, want %d", i, b.X, wantX[i])
		}
		if b.Y != 5 || b.Width != 10 || b.Height != 5 {
			t.Fatalf("block %d geometry = %+v, want y=5 10x5", i, b)
		}
	}
	wantLinks := []Link{
		{X1: 16, Y1: 7, X2: 20, Y2: 7},
		{X1: 30, Y1: 7, X2: 34, Y2: 7},
	}
	if !reflect.DeepEqual(scene.Links, wantLinks) {
		t.Fatalf("links = %+v, want %+v", scene.Links, wantLinks)
	}
	for i, l := range scene.Links {
		if l.X1 != scene.Blocks[i].X+scene.Blocks[i].Width || l.X2 != scene.Blocks[i+1].X {
			t.Fatalf("link %d does not join block edges: %+v", i, l)
		}
		if l.Y1 != g.CenterY() || l.Y2 != g.CenterY() {
			t.Fatalf("link %d off the center line: %+v", i, l)
		}
	}
}

func TestLayout_BlockText(t *testing.T) {
	c := makeChain(2)
	c[1].Proof.Language = "python"
	scene := Layout(c, 80, DefaultGeometry())

	if !scene.Blocks[0].Genesis || scene.Blocks[1].Genesis {
		t.Fatalf("genesis flags = %v/%v, want true/false", scene.Blocks[0].Genesis, scene.Blocks[1].Genesis)
	}
	b := scene.Blocks[1]
	if b.Label != "Block #1" || b.Language != "Lang: python" {
		t.Fatalf("labels = %q/%q", b.Label, b.Language)
	}
	if b.ShortHash != c[1].Hash[:6]+"..." {
		t.Fatalf("ShortHash = %q, want %q", b.ShortHash, c[1].Hash[:6]+"...")
	}
}

func TestLayout_BlockTextDropsControls(t *testing.T) {
	c := makeChain(1)
	c[0].Proof.Language = "py\x1b]0;x\x07thon\r"
	c[0].Hash = "\x1b[2Jabcdef0123"
	b := Layout(c, 80, DefaultGeometry()).Blocks[0]

	if b.Language != "Lang: python" {
		t.Fatalf("Language = %q, want Lang: python", b.Language)
	}
	if b.ShortHash != "abcdef..." {
		t.Fatalf("ShortHash = %q, want abcdef...", b.ShortHash)
	}
}

func TestLayout_Idempotent(t *testing.T) {
	c := makeChain(4)
	first := Layout(c, 100, DefaultGeometry())
	second := Layout(c, 100, DefaultGeometry())
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Layout is not deterministic")
	}
}

func TestLayout_EmptyChain(t *testing.T) {
	scene := Layout(nil, 100, DefaultGeometry())
	if len(scene.Blocks) != 0 || len(scene.Links) != 0 {
		t.Fatalf("empty chain produced %d blocks and %d links", len(scene.Blocks), len(scene.Links))
	}
	if _, ok := scene.BlockAt(50, 7); ok {
		t.Fatalf("BlockAt on empty scene returned a block")
	}
}

func TestScene_BlockAt(t *testing.T) {
	g := Geometry{BlockWidth: 10, BlockHeight: 5, Gap: 4, Height: 15}
	scene := Layout(makeChain(3), 50, g)

	tests := []struct {
		x, y   int
		want   int
		wantOK bool
	}{
		{6, 5, 0, true},    // top-left corner of block 0
		{15, 9, 0, true},   // bottom-right corner of block 0
		{16, 7, -1, false}, // on the link
		{20, 7, 1, true},
		{43, 7, 2, true},
		{44, 7, -1, false},
		{25, 4, -1, false}, // above the row
		{25, 10, -1, false},
	}
	for _, tt := range tests {
		got, ok := scene.BlockAt(tt.x, tt.y)
		if got != tt.want || ok != tt.wantOK {
			t.Fatalf("BlockAt(%d,%d) = %d,%v; want %d,%v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
		}
	}
}
