package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"fits", "Germany", 10, "Germany"},
		{"ellipsis", "United Kingdom", 8, "Unite..."},
		{"tiny limit", "abcdef", 2, "ab"},
		{"no limit", "  padded  ", 0, "padded"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.limit); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("  ", 10); got != "" {
		t.Fatalf("truncateMiddle blank = %q, want empty", got)
	}
	if got := truncateMiddle("abcd", 2); got != "ab" {
		t.Fatalf("truncateMiddle tiny limit = %q, want ab", got)
	}
	got := truncateMiddle("/home/user/.local/state/skyboard/skyboard.log", 24)
	if len([]rune(got)) > 24 {
		t.Fatalf("got %q (%d runes), want <=24", got, len([]rune(got)))
	}
	if got[len(got)-4:] != ".log" {
		t.Fatalf("got %q, want extension kept", got)
	}
}

func TestPad(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Fatalf("padRight = %q", got)
	}
	if got := padLeft("ab", 4); got != "  ab" {
		t.Fatalf("padLeft = %q", got)
	}
	if got := padLeft("abcdef", 4); got != "abcdef" {
		t.Fatalf("padLeft overflow = %q", got)
	}
}
