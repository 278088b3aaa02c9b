// Package diag keeps skyboard's developer-facing diagnostics log.
//
// A full-screen TUI owns the terminal, so the standard logger is redirected to
// a file. Tail reads the newest entries back for the diagnostics overlay.
package diag

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	logPrefix    = "skyboard "
	stampLayout  = "2006/01/02 15:04:05"
	maxLineBytes = 1024 * 1024
)

// Entry is one line of the diagnostics log.
type Entry struct {
	At   time.Time // zero when the line carried no timestamp
	Text string
}

// Setup sends the standard logger to path, creating the directory as needed.
// On failure logging is discarded so nothing is written over the TUI.
func Setup(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, strings.TrimSpace(logPrefix))
	if err != nil {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), fmt.Errorf("open log: %w", err)
	}
	return f, nil
}

// Tail returns at most maxEntries entries from the end of the log at path.
// A missing file yields no entries.
func Tail(path string, maxEntries int) ([]Entry, error) {
	if maxEntries <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxEntries)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	count := 0
	idx := 0
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		ring[idx] = line
		idx = (idx + 1) % maxEntries
		if count < maxEntries {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	entries := make([]Entry, count)
	start := 0
	if count == maxEntries {
		start = idx
	}
	for i := 0; i < count; i++ {
		entries[i] = parseLine(ring[(start+i)%maxEntries])
	}
	return entries, nil
}

// parseLine splits "skyboard 2006/01/02 15:04:05 message" into its parts.
func parseLine(line string) Entry {
	rest := strings.TrimPrefix(line, logPrefix)
	if len(rest) > len(stampLayout) {
		if at, err := time.ParseInLocation(stampLayout, rest[:len(stampLayout)], time.Local); err == nil {
			return Entry{At: at, Text: strings.TrimSpace(rest[len(stampLayout):])}
		}
	}
	return Entry{Text: line}
}
