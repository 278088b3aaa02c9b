// Package config loads skyboard's optional TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/skyboard/config.toml (default)
//  3. If the config file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing, blank, or non-positive, use defaults
//
// # Default Values
//
//   - endpoint: https://opensky-network.org/api/states/all
//   - poll_seconds: 15
//   - max_flights: 50
//   - request_timeout_seconds: 10
//   - theme: Nightfox
//   - log_dir: ~/.local/state/skyboard (diagnostics go to <log_dir>/skyboard.log)
//
// Without a config file skyboard behaves exactly like the fixed dashboard:
// one public endpoint, a 15 second cadence, and a 50 flight cap.
//
// # TOML Format
//
//	endpoint = "https://opensky-network.org/api/states/all"
//	poll_seconds = 15
//	max_flights = 50
//	theme = "Kanagawa"
//	log_dir = "~/.local/state/skyboard"
//
// Tilde expansion is performed for the config path and log_dir.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors. A missing file is not an error.
package config
