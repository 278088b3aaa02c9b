package state

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/five82/skyboard/internal/opensky"
)

func mustSnapshot(t *testing.T, raw string) opensky.Snapshot {
	t.Helper()
	var snap opensky.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	return snap
}

func callsigns(snap opensky.Snapshot) []string {
	out := make([]string, 0, len(snap))
	for _, rec := range snap {
		if rec.Callsign == nil {
			out = append(out, "<nil>")
			continue
		}
		out = append(out, *rec.Callsign)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

const mixedStates = `[
	[null,"A1","Germany"],
	[null,"B2","United States"],
	[null,"C3"],
	[null,"D4","germany"],
	[null,"E5",null],
	[null,"F6","Türkiye"],
	[null,"G7",""]
]`

func TestView_Defaults(t *testing.T) {
	var v View
	if v.IsLoading() {
		t.Fatal("IsLoading() = true, want false before any fetch")
	}
	if v.LastError() != "" || v.Err() != nil {
		t.Fatalf("LastError = %q, Err = %v, want empty", v.LastError(), v.Err())
	}
	if len(v.Snapshot()) != 0 || len(v.VisibleRecords()) != 0 {
		t.Fatal("default snapshot should be empty")
	}
	if v.FilterText() != "" {
		t.Fatalf("FilterText = %q, want empty", v.FilterText())
	}
}

func TestView_EmptyFilterIsIdentity(t *testing.T) {
	var v View
	snap := mustSnapshot(t, mixedStates)
	v.OnPollResult(PollResult{Snapshot: snap})

	got := v.VisibleRecords()
	if !equalStrings(callsigns(got), callsigns(snap)) {
		t.Fatalf("VisibleRecords = %v, want %v", callsigns(got), callsigns(snap))
	}
	if len(got) > 0 && &got[0] != &snap[0] {
		t.Fatal("empty filter should return the snapshot unchanged")
	}
}

func TestView_FilterIsCaseInsensitiveSubstring(t *testing.T) {
	snap := mustSnapshot(t, mixedStates)

	tests := []struct {
		filter string
		want   []string
	}{
		{"germany", []string{"A1", "D4"}},
		{"GERM", []string{"A1", "D4"}},
		{"an", []string{"A1", "D4"}},
		{"states", []string{"B2"}},
		{" ", []string{"B2"}},
		{"TÜRK", []string{"F6"}},
		{"zz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			var v View
			v.OnPollResult(PollResult{Snapshot: snap})
			v.OnFilterTextChange(tt.filter)

			got := callsigns(v.VisibleRecords())
			if !equalStrings(got, tt.want) {
				t.Fatalf("VisibleRecords(%q) = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}

func TestView_FilterExcludesMissingCountry(t *testing.T) {
	snap := mustSnapshot(t, mixedStates)
	for _, filter := range []string{"a", "e", "n"} {
		for _, rec := range FilterByCountry(snap, filter) {
			if rec.OriginCountry == nil {
				t.Fatalf("filter %q kept record %v without country", filter, *rec.Callsign)
			}
		}
	}
}

func TestView_FilterPreservesOrderAsSubsequence(t *testing.T) {
	snap := mustSnapshot(t, mixedStates)
	all := callsigns(snap)
	for _, filter := range []string{"", "g", "E", "un", "ü", "x"} {
		got := callsigns(FilterByCountry(snap, filter))
		i := 0
		for _, cs := range all {
			if i < len(got) && got[i] == cs {
				i++
			}
		}
		if i != len(got) {
			t.Fatalf("filter %q result %v is not a subsequence of %v", filter, got, all)
		}
	}
}

func TestView_FilterTextIsVerbatim(t *testing.T) {
	var v View
	v.OnFilterTextChange("  Mexico ")
	if v.FilterText() != "  Mexico " {
		t.Fatalf("FilterText = %q, want untrimmed input", v.FilterText())
	}
}

func TestView_SuccessReplacesSnapshotAndClearsError(t *testing.T) {
	var v View
	v.OnFetchStart()
	v.OnPollResult(PollResult{Err: errors.New("boom")})
	if v.LastError() != ErrorMessage {
		t.Fatalf("LastError = %q, want %q", v.LastError(), ErrorMessage)
	}

	before := time.Now()
	next := mustSnapshot(t, `[[null,"NEW","Spain"]]`)
	v.OnFetchStart()
	v.OnPollResult(PollResult{Snapshot: next})

	if v.LastError() != "" || v.Err() != nil {
		t.Fatalf("LastError = %q, Err = %v, want cleared", v.LastError(), v.Err())
	}
	if got := callsigns(v.Snapshot()); !equalStrings(got, []string{"NEW"}) {
		t.Fatalf("Snapshot = %v, want [NEW]", got)
	}
	if v.LastUpdated().Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", v.LastUpdated(), before)
	}
	if v.ConsecutiveFailures() != 0 {
		t.Fatalf("ConsecutiveFailures = %d, want 0", v.ConsecutiveFailures())
	}
}

func TestView_FailureKeepsPreviousSnapshot(t *testing.T) {
	var v View
	prev := mustSnapshot(t, `[[null,"OLD","Chile"]]`)
	v.OnPollResult(PollResult{Snapshot: prev})

	origErr := errors.New("status 503")
	v.OnPollResult(PollResult{Err: origErr})

	if got := callsigns(v.Snapshot()); !equalStrings(got, []string{"OLD"}) {
		t.Fatalf("Snapshot = %v, want previous [OLD]", got)
	}
	if v.LastError() != ErrorMessage {
		t.Fatalf("LastError = %q, want %q", v.LastError(), ErrorMessage)
	}
	if !errors.Is(v.Err(), origErr) {
		t.Fatalf("Err = %v, want %v", v.Err(), origErr)
	}
}

func TestView_LoadingTracksInFlightFetches(t *testing.T) {
	var v View

	v.OnFetchStart()
	if !v.IsLoading() {
		t.Fatal("IsLoading() = false during fetch")
	}
	v.OnPollResult(PollResult{Err: errors.New("boom")})
	if v.IsLoading() {
		t.Fatal("IsLoading() = true after failed fetch")
	}

	v.OnFetchStart()
	v.OnFetchStart()
	v.OnPollResult(PollResult{})
	if !v.IsLoading() {
		t.Fatal("IsLoading() = false with one fetch still in flight")
	}
	v.OnPollResult(PollResult{})
	if v.IsLoading() {
		t.Fatal("IsLoading() = true after all fetches finished")
	}

	// A stray result never drives the counter negative.
	v.OnPollResult(PollResult{})
	v.OnFetchStart()
	if !v.IsLoading() {
		t.Fatal("IsLoading() = false after new fetch")
	}
}

func TestView_OfflineAfterConsecutiveFailures(t *testing.T) {
	var v View

	v.OnPollResult(PollResult{Err: errors.New("fail 1")})
	if v.Offline() {
		t.Fatal("Offline() = true after 1 failure")
	}
	v.OnPollResult(PollResult{Err: errors.New("fail 2")})
	if !v.Offline() || v.ConsecutiveFailures() != 2 {
		t.Fatalf("Offline() = %v, failures = %d, want offline after 2", v.Offline(), v.ConsecutiveFailures())
	}
	v.OnPollResult(PollResult{})
	if v.Offline() {
		t.Fatal("Offline() = true after success")
	}
	if v.Cycles() != 3 {
		t.Fatalf("Cycles = %d, want 3", v.Cycles())
	}
}
