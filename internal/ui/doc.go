// Package ui provides the terminal user interface for skyboard.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea model. It owns a state.View and is the only
// goroutine that touches it: the poller never calls into the UI directly but
// sends FetchStartedMsg and PollResultMsg through the program, and the model
// applies them to the view in arrival order.
//
// # Package Structure
//
//   - app.go: Model, Options, messages, Init/Update/View
//   - input.go: key routing for the table, the filter input and the overlay
//   - render.go: body composition (loading, error banner, or table)
//   - table.go: column layout and row rendering
//   - format.go: cell formatting for flight records
//   - header.go, logo.go: title bar with the decorative banner and feed status
//   - diagnostics.go: overlay showing the tail of the diagnostics log
//   - keys.go, theme.go, layout.go: bindings, palettes, geometry
//
// # Rendering
//
// Exactly one of three bodies is shown. While any fetch is in flight the
// spinner replaces everything else. Otherwise a failed last poll shows the
// error banner, and a healthy view shows the filter count line, the column
// header and a scrollable viewport of rows. An empty result renders a single
// "No flights available" row.
//
// # Filtering
//
// "/" focuses the country filter. Every edit is pushed to the view, so the
// table narrows while typing. Enter or esc returns focus to the table and
// keeps the text; esc from the table clears it.
//
// # Themes
//
// The starting theme comes from prefs when a choice was saved, otherwise from
// config. "T" cycles themes and saves the new choice to prefs.
package ui
