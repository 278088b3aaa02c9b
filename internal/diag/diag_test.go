package diag

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func restoreLogger(t *testing.T) {
	t.Helper()
	flags, prefix, out := log.Flags(), log.Prefix(), log.Writer()
	t.Cleanup(func() {
		log.SetFlags(flags)
		log.SetPrefix(prefix)
		log.SetOutput(out)
	})
}

func TestTail(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "skyboard.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		if i == 5 {
			content.WriteString("\n")
		}
		expectedAll = append(expectedAll, line)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name       string
		maxEntries int
		expected   []string
	}{
		{name: "zero", maxEntries: 0, expected: nil},
		{name: "negative", maxEntries: -1, expected: nil},
		{name: "partial", maxEntries: 5, expected: expectedAll[5:]},
		{name: "exactly all", maxEntries: 10, expected: expectedAll},
		{name: "more than exists", maxEntries: 20, expected: expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tail(logPath, tt.maxEntries)
			if err != nil {
				t.Fatalf("Tail() error = %v", err)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("Tail() returned %d entries, want %d", len(got), len(tt.expected))
			}
			for i, entry := range got {
				if entry.Text != tt.expected[i] {
					t.Errorf("entry %d = %q, want %q", i, entry.Text, tt.expected[i])
				}
				if !entry.At.IsZero() {
					t.Errorf("entry %d has timestamp %v, want zero for unstamped line", i, entry.At)
				}
			}
		})
	}
}

func TestTail_MissingFile(t *testing.T) {
	got, err := Tail(filepath.Join(t.TempDir(), "nope.log"), 5)
	if err != nil || got != nil {
		t.Fatalf("Tail(missing) = %v, %v; want nil, nil", got, err)
	}
}

func TestSetup_WritesParsableEntries(t *testing.T) {
	restoreLogger(t)

	logPath := filepath.Join(t.TempDir(), "nested", "skyboard.log")
	closer, err := Setup(logPath)
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	log.Printf("poll failed: %v", "states endpoint returned status 503")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	entries, err := Tail(logPath, 10)
	if err != nil {
		t.Fatalf("Tail returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Tail returned %d entries, want 1", len(entries))
	}
	if entries[0].At.IsZero() {
		t.Fatalf("entry timestamp not parsed from %q", entries[0].Text)
	}
	if entries[0].Text != "poll failed: states endpoint returned status 503" {
		t.Fatalf("entry text = %q", entries[0].Text)
	}
}

func TestSetup_UnwritableDirDiscards(t *testing.T) {
	restoreLogger(t)

	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	closer, err := Setup(filepath.Join(blocker, "sub", "skyboard.log"))
	if err == nil {
		t.Fatal("Setup returned nil error for a path under a regular file")
	}
	if closer == nil {
		t.Fatal("Setup returned nil closer")
	}
	_ = closer.Close()
}

func TestParseLine(t *testing.T) {
	entry := parseLine("skyboard 2026/10/17 08:15:00 poll failed: boom")
	if entry.At.IsZero() || entry.At.Hour() != 8 || entry.At.Minute() != 15 {
		t.Fatalf("At = %v, want 08:15", entry.At)
	}
	if entry.Text != "poll failed: boom" {
		t.Fatalf("Text = %q", entry.Text)
	}

	raw := parseLine("panic: something")
	if !raw.At.IsZero() || raw.Text != "panic: something" {
		t.Fatalf("parseLine(raw) = %#v", raw)
	}
}
