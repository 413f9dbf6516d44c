// Package ui renders chainview in the terminal with Bubble Tea.
//
// The screen is a two-line header (status and key hints) above a canvas
// area. The canvas shows one of three things:
//
//   - the chain diagram drawn by package diagram
//   - a waiting message before the first block arrives
//   - the connection error panel, which replaces the diagram until the
//     node answers again
//
// The sync controller never touches the Model. It draws through Surface,
// which turns Render and ShowError calls into messages delivered with
// tea.Program.Send, so all state changes happen inside Update.
//
// Hovering a block with the mouse shows its detail next to the pointer.
// When the pointer leaves, the detail fades for FadeDuration before it is
// removed. The keyboard selection shows the same detail under the block.
package ui
