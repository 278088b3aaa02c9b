package state

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/five82/skyboard/internal/opensky"
)

// ErrorMessage is the user-facing text shown for any failed poll.
const ErrorMessage = "Failed to load flights. Please try again."

// offlineThreshold is how many consecutive failures mark the feed offline.
const offlineThreshold = 2

// PollResult is the outcome of one poll cycle.
type PollResult struct {
	Snapshot opensky.Snapshot
	Err      error
}

// View holds presentation state: the latest snapshot, the filter text, and
// the loading and error flags. It is owned by the UI event loop and is not
// safe for concurrent use.
type View struct {
	snapshot    opensky.Snapshot
	filterText  string
	inFlight    int
	lastError   string
	err         error
	lastUpdated time.Time
	failures    int
	cycles      int
}

// OnFetchStart marks a fetch as in flight.
func (v *View) OnFetchStart() {
	v.inFlight++
}

// OnPollResult applies a finished cycle. On failure the previous snapshot is
// kept and the error is recorded for display.
func (v *View) OnPollResult(r PollResult) {
	if v.inFlight > 0 {
		v.inFlight--
	}
	v.cycles++
	v.lastUpdated = time.Now()

	if r.Err != nil {
		v.lastError = ErrorMessage
		v.err = r.Err
		v.failures++
		return
	}

	v.snapshot = r.Snapshot
	v.lastError = ""
	v.err = nil
	v.failures = 0
}

// OnFilterTextChange replaces the filter text verbatim.
func (v *View) OnFilterTextChange(text string) {
	v.filterText = text
}

// VisibleRecords returns the snapshot filtered by origin country.
func (v *View) VisibleRecords() opensky.Snapshot {
	return FilterByCountry(v.snapshot, v.filterText)
}

// Snapshot returns the last successful snapshot.
func (v *View) Snapshot() opensky.Snapshot { return v.snapshot }

// FilterText returns the current filter text.
func (v *View) FilterText() string { return v.filterText }

// IsLoading reports whether any fetch is in flight.
func (v *View) IsLoading() bool { return v.inFlight > 0 }

// LastError returns the user-facing error message, or "" when the last cycle
// succeeded.
func (v *View) LastError() string { return v.lastError }

// Err returns the underlying error of the last failed cycle.
func (v *View) Err() error { return v.err }

// LastUpdated returns when the last cycle finished.
func (v *View) LastUpdated() time.Time { return v.lastUpdated }

// ConsecutiveFailures returns the number of failed cycles since the last success.
func (v *View) ConsecutiveFailures() int { return v.failures }

// Cycles returns the number of completed cycles.
func (v *View) Cycles() int { return v.cycles }

// Offline reports whether the feed has failed repeatedly.
func (v *View) Offline() bool { return v.failures >= offlineThreshold }

// FilterByCountry keeps the records whose origin country contains text,
// compared with Unicode case folding. An empty text returns records as is;
// records without a country never match a non-empty text.
func FilterByCountry(records opensky.Snapshot, text string) opensky.Snapshot {
	if text == "" {
		return records
	}
	fold := cases.Fold()
	needle := fold.String(text)
	out := make(opensky.Snapshot, 0, len(records))
	for _, rec := range records {
		if rec.OriginCountry == nil {
			continue
		}
		if strings.Contains(fold.String(*rec.OriginCountry), needle) {
			out = append(out, rec)
		}
	}
	return out
}
