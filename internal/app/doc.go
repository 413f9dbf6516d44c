// Package app wires chainview together and runs the sync loop.
//
// Run is the composition root:
//
//	config.Load()        read ~/.config/chainview/config.toml
//	logging.Setup()      route log output to a rotating file
//	chain.NewClient()    HTTP client for the node's chain endpoint
//	NewController()      poll, compare lengths, tell the surface what to draw
//	ui.NewProgram()      Bubble Tea program; blocks until quit
//
// # Sync loop
//
// Controller.Start refreshes once and then on every tick of a fixed
// interval (3s by default). A refresh fetches the whole chain and redraws
// only when its length differs from the held chain. Fetch failures put the
// connection error panel on screen and the loop carries on; the next
// successful fetch brings the diagram back.
//
// Responses are applied in request order. A response that arrives after a
// newer request's response was applied is dropped.
//
// Controller.ManualRefresh runs the same cycle on demand.
package app
