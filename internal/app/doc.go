// Package app provides the orchestration layer for skyboard.
//
// # Overview
//
// This package wires configuration, the OpenSky client, the poller and the UI
// together. It is the composition root: every dependency is built here and
// handed to the piece that uses it.
//
// # Startup
//
//  1. Load ~/.config/skyboard/config.toml (or the -config path); missing is fine
//  2. Build the OpenSky client; an invalid endpoint is fatal
//  3. Redirect the standard logger to the diagnostics file
//  4. Create the Bubble Tea program around ui.Model
//  5. Start the poller and run the program until the user quits
//
// # Polling Behavior
//
// The poller fetches immediately and then on a fixed-rate ticker (default 15
// seconds). A slow request does not push back the next one, so requests may
// overlap and their results are delivered in completion order.
//
//	┌───────────────┐  OnFetch   ┌─────────────────────┐
//	│ Poller cycle  │──────────→ │ program.Send        │
//	│ FetchStates() │  OnResult  │   FetchStartedMsg   │
//	│               │──────────→ │   PollResultMsg     │
//	└───────────────┘            └─────────┬───────────┘
//	                                       ↓
//	                             ui.Model.Update → state.View
//
// Callbacks never mutate presentation state themselves; the UI event loop
// is the only writer of state.View.
//
// # Cancellation
//
// Handle.Cancel stops the ticker, aborts in-flight requests and waits for any
// running callback to return. After it returns no callback runs, including
// for a request that was already in flight. Run cancels the poller as soon as
// the program exits.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Config file present but unparsable
//   - Endpoint that is not an absolute http(s) URL
//
// Recoverable errors (logged, polling continues):
//   - Transport failures and timeouts
//   - Non-2xx responses
//   - Bodies that are not JSON
package app
