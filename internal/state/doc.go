// Package state holds skyboard's presentation state.
//
// View is the reconciler between poll results and what the table shows. It
// keeps the latest snapshot, the filter text, an in-flight fetch count and
// the last error, and derives the visible records on demand.
//
// View is not synchronized. The UI event loop owns it and applies poller
// events to it as messages, so every transition happens on one goroutine.
//
// Transitions:
//
//	OnFetchStart        in-flight +1 (loading)
//	OnPollResult ok     in-flight -1, snapshot replaced, error cleared
//	OnPollResult err    in-flight -1, snapshot kept, error set
//	OnFilterTextChange  filter replaced verbatim
//
// Filtering is a Unicode case-folded substring match on the origin country.
// Records without a country never match a non-empty filter.
package state
