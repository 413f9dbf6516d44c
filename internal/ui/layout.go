package ui

import "time"

// Screen layout.
const (
	// headerLines is the header plus command bar above the canvas.
	headerLines = 2

	// LayoutCompactWidth is the threshold below which the header drops
	// secondary fields.
	LayoutCompactWidth = 100

	// cadenceHeight is the plot height of the cadence pane, in rows.
	cadenceHeight = 5
)

// Hover tooltip placement, relative to the pointer.
const (
	tooltipOffsetX = 2
	tooltipOffsetY = -1
)

// Timing constants.
const (
	// FadeDuration is how long a tooltip lingers after the pointer leaves.
	FadeDuration = 500 * time.Millisecond

	// DefaultUIInterval is the default header refresh interval.
	DefaultUIInterval = time.Second
)
