package diagram

import (
	"strings"
	"time"

	"github.com/five82/chainview/internal/chain"
)

// TimestampLayout formats block times in the detail overlay.
const TimestampLayout = "2006-01-02 15:04:05"

// Tooltip is the detail shown for a hovered or selected block.
type Tooltip struct {
	Index        uint64
	Timestamp    string
	Author       string
	Hash         string
	PreviousHash string
	Language     string
	Code         []string // preformatted lines
}

// NewTooltip formats b for display, converting its timestamp into loc.
// A nil loc uses the local time zone.
func NewTooltip(b chain.Block, loc *time.Location) Tooltip {
	if loc == nil {
		loc = time.Local
	}
	code := expandTabs(Clip(Printable(b.Proof.Code, true), codeLen))
	return Tooltip{
		Index:        b.Index,
		Timestamp:    time.Unix(b.Timestamp, 0).In(loc).Format(TimestampLayout),
		Author:       Printable(b.Proof.Author, false),
		Hash:         Clip(Printable(b.Hash, false), detailHashLen),
		PreviousHash: Clip(Printable(b.PreviousHash, false), detailHashLen),
		Language:     Printable(b.Proof.Language, false),
		Code:         strings.Split(code, "\n"),
	}
}
