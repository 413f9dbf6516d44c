// Package diagram lays out and draws a chain as a row of linked blocks.
//
// # Pipeline
//
//	Layout(chain, width, geometry) → Scene      pure geometry
//	Draw(scene, canvas, active)    → Canvas     cell grid, cleared first
//	canvas.Render(palette)         → string     lipgloss-styled rows
//
// Every step is a function of its inputs, so drawing the same chain into the
// same viewport twice yields identical output.
//
// # Geometry
//
// For n blocks of width w separated by gap g:
//
//	total  = n*(w+g) - g
//	startX = (viewport - total) / 2     may be negative; overflow is clipped
//	x_i    = startX + i*(w+g)
//
// All blocks and links share the vertical center line Height/2. Link i runs
// from the right edge of block i to the left edge of block i+1.
//
// # Text
//
// Each block shows "Block #<index>", "Lang: <language>" and the first six
// characters of its hash. The Tooltip carries the longer form: 20-character
// hashes and up to 50 characters of proof code, each followed by an ellipsis
// only when something was cut.
package diagram
