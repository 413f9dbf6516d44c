package ui

import (
	"testing"

	"github.com/five82/chainview/internal/diagram"
)

func TestPlaceNearPointer(t *testing.T) {
	cases := []struct {
		name         string
		px, py, w, h int
		wantX, wantY int
	}{
		{"right and above", 10, 10, 20, 5, 12, 9},
		{"flips left at right edge", 90, 10, 20, 5, 68, 9},
		{"clamped at top", 10, 0, 20, 5, 12, 0},
		{"clamped at bottom", 10, 28, 20, 5, 12, 25},
		{"wider than screen", 50, 10, 150, 5, 0, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, y := placeNearPointer(tc.px, tc.py, tc.w, tc.h, 100, 30)
			if x != tc.wantX || y != tc.wantY {
				t.Fatalf("placeNearPointer = (%d, %d), want (%d, %d)", x, y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestPlaceBelowBlock(t *testing.T) {
	b := diagram.BlockBox{X: 95, Y: 5, Width: 18, Height: 5}
	x, y := placeBelowBlock(b, 30, 8, 100, 30)
	if x != 70 || y != 12 {
		t.Fatalf("placeBelowBlock = (%d, %d), want (70, 12)", x, y)
	}

	// No room below: the box goes above the block.
	x, y = placeBelowBlock(b, 30, 8, 100, 16)
	if x != 70 || y != 0 {
		t.Fatalf("placeBelowBlock short screen = (%d, %d), want (70, 0)", x, y)
	}
}

func TestOverlay(t *testing.T) {
	cases := []struct {
		name string
		base string
		box  string
		x, y int
		want string
	}{
		{"inside", "aaaaa\nbbbbb", "XY", 1, 1, "aaaaa\nbXYbb"},
		{"pads short line", "aa\nbb", "XY", 4, 0, "aa  XY\nbb"},
		{"drops rows below base", "aaa", "X\nY", 0, 0, "Xaa"},
		{"multi row", "....\n....\n....", "AB\nCD", 2, 1, "....\n..AB\n..CD"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := overlay(tc.base, tc.box, tc.x, tc.y); got != tc.want {
				t.Fatalf("overlay = %q, want %q", got, tc.want)
			}
		})
	}
}
