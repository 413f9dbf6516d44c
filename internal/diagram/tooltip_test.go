package diagram

import (
	"strings"
	"testing"
	"time"

	"github.com/five82/chainview/internal/chain"
)

func TestNewTooltip_FormatsAndTruncates(t *testing.T) {
	loc := time.FixedZone("test", 2*60*60)
	b := chain.Block{
		Index:        7,
		Timestamp:    1700000000,
		PreviousHash: strings.Repeat("a", 64),
		Hash:         strings.Repeat("b", 64),
		Proof: chain.Proof{
			Language: "go",
			Author:   "alice",
			Code:     strings.Repeat("x", 60),
		},
	}

	tip := NewTooltip(b, loc)
	if tip.Index != 7 || tip.Author != "alice" || tip.Language != "go" {
		t.Fatalf("tooltip = %#v", tip)
	}
	if tip.Timestamp != "2023-11-15 00:13:20" {
		t.Fatalf("Timestamp = %q, want 2023-11-15 00:13:20", tip.Timestamp)
	}
	if tip.Hash != strings.Repeat("b", 20)+"..." {
		t.Fatalf("Hash = %q, want 20 chars + ellipsis", tip.Hash)
	}
	if tip.PreviousHash != strings.Repeat("a", 20)+"..." {
		t.Fatalf("PreviousHash = %q, want 20 chars + ellipsis", tip.PreviousHash)
	}
	if len(tip.Code) != 1 || tip.Code[0] != strings.Repeat("x", 50)+"..." {
		t.Fatalf("Code = %q, want 50 chars + ellipsis", tip.Code)
	}
}

func TestNewTooltip_ShortValuesUnmodified(t *testing.T) {
	b := chain.Block{
		Index:        0,
		PreviousHash: chain.GenesisPreviousHash,
		Hash:         "abc",
		Proof:        chain.Proof{Language: "genesis", Author: "system", Code: "fn main() {\n\tok()\n}"},
	}
	tip := NewTooltip(b, time.UTC)
	if tip.PreviousHash != "0" || tip.Hash != "abc" {
		t.Fatalf("hashes = %q/%q, want unmodified", tip.Hash, tip.PreviousHash)
	}
	want := []string{"fn main() {", "    ok()", "}"}
	if strings.Join(tip.Code, "|") != strings.Join(want, "|") {
		t.Fatalf("Code = %q, want %q", tip.Code, want)
	}
	if tip.Timestamp != "1970-01-01 00:00:00" {
		t.Fatalf("Timestamp = %q, want epoch", tip.Timestamp)
	}
}

func TestNewTooltip_NilLocationUsesLocal(t *testing.T) {
	b := chain.Block{Timestamp: 1700000000}
	want := time.Unix(1700000000, 0).In(time.Local).Format(TimestampLayout)
	if got := NewTooltip(b, nil).Timestamp; got != want {
		t.Fatalf("Timestamp = %q, want %q", got, want)
	}
}

func TestNewTooltip_DropsTerminalControls(t *testing.T) {
	tests := []struct {
		name  string
		block chain.Block
		check func(Tooltip) bool
	}{
		{
			name:  "author title sequence",
			block: chain.Block{Proof: chain.Proof{Author: "eve\x1b]0;owned\x07"}},
			check: func(tip Tooltip) bool { return tip.Author == "eve" },
		},
		{
			name:  "code carriage return and clear screen",
			block: chain.Block{Proof: chain.Proof{Code: "line1\rXX\x1b[2J\nline2"}},
			check: func(tip Tooltip) bool {
				return len(tip.Code) == 2 && tip.Code[0] == "line1XX" && tip.Code[1] == "line2"
			},
		},
		{
			name:  "hashes and language",
			block: chain.Block{Hash: "ab\x1b[31mcd", PreviousHash: "0\a", Proof: chain.Proof{Language: "go\n\x1b[1m"}},
			check: func(tip Tooltip) bool {
				return tip.Hash == "abcd" && tip.PreviousHash == "0" && tip.Language == "go"
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tip := NewTooltip(tt.block, time.UTC)
			if !tt.check(tip) {
				t.Fatalf("tooltip = %#v", tip)
			}
			all := strings.Join(append([]string{tip.Author, tip.Hash, tip.PreviousHash, tip.Language}, tip.Code...), "")
			if strings.ContainsAny(all, "\x1b\a\r") {
				t.Fatalf("tooltip keeps control characters: %q", all)
			}
		})
	}
}
