package diagram

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks truncated text.
const Ellipsis = "..."

const (
	shortHashLen  = 6
	detailHashLen = 20
	codeLen       = 50
)

// Clip returns the first n runes of s followed by Ellipsis, or s unchanged
// when it already fits.
func Clip(s string, n int) string {
	runes := []rune(s)
	if n < 0 || len(runes) <= n {
		return s
	}
	return string(runes[:n]) + Ellipsis
}

// ShortHash is the hash form printed inside a block.
func ShortHash(hash string) string {
	return Clip(hash, shortHashLen)
}

// Printable removes escape sequences and control characters from text that
// came off the wire. With multiline set, newlines and tabs survive; otherwise
// a tab becomes a space and newlines are dropped.
func Printable(s string, multiline bool) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' && multiline:
			return r
		case r == '\t':
			if multiline {
				return r
			}
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, ansi.Strip(s))
}

// fit cuts s to width display columns, ending in Ellipsis when there is
// room for one.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	tail := Ellipsis
	if width <= len(Ellipsis) {
		tail = ""
	}
	return ansi.Truncate(s, width, tail)
}

// centerOffset is the column at which s starts when centered in width.
func centerOffset(s string, width int) int {
	n := ansi.StringWidth(s)
	if n >= width {
		return 0
	}
	return (width - n) / 2
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
