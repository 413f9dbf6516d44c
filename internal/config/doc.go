// Package config loads chainview's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/chainview/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing, empty or non-positive, use defaults
//
// # Default Values
//
//   - Endpoint: http://127.0.0.1:3000/api/chain
//   - Poll interval: 3000 ms
//   - Canvas height: 15 rows (minimum 7)
//   - Log file: ~/.local/state/chainview/chainview.log
//
// # TOML Format
//
//	endpoint = "http://127.0.0.1:3000/api/chain"
//	poll_interval_ms = 3000
//	canvas_height = 15
//	log_file = "~/.local/state/chainview/chainview.log"
//
// All fields are optional. Tilde expansion is performed on log_file.
// Command-line flags override whatever Load returns.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files and TOML
// parse errors. A missing file is not an error.
package config
