package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// EntryState is the lifecycle state of a day entry as seen by the client
type EntryState string

const (
	StateNoEntry EntryState = "none"
	StateRunning EntryState = "running"
	StateStopped EntryState = "stopped"
)

// DayEntry is one block of tracked time against a task, possibly still running.
// Instances are snapshots of remote state; the service holds the authoritative copy.
type DayEntry struct {
	EndedAt   string
	Hours     float64
	ID        string
	Notes     string // exactly as the service stores it
	Running   bool
	SpentAt   time.Time
	StartedAt string
	Task      Task
	UpdatedAt time.Time
}

// State returns the entry state; a nil entry is StateNoEntry.
func (e *DayEntry) State() EntryState {
	switch {
	case e == nil:
		return StateNoEntry
	case e.Running:
		return StateRunning
	default:
		return StateStopped
	}
}

// String renders the entry as "<task> (<H:MM>)".
func (e DayEntry) String() string {
	return fmt.Sprintf("%s (%s)", e.Task.DisplayName(), FormatHours(e.Hours))
}

// NoteLines returns the non-blank note lines, for display only
func (e DayEntry) NoteLines() []string {
	var lines []string
	for _, line := range strings.Split(e.Notes, "\n") {
		if trimmed := strings.TrimRight(line, "\r "); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// LastNote returns the most recent note line, or "" when there are none
func (e DayEntry) LastNote() string {
	lines := e.NoteLines()
	if len(lines) == 0 {
		return ""
	}
	return lines[len(lines)-1]
}

// WithNote returns a copy of the entry with text appended on a new line.
// The stored notes are kept byte for byte; empty text changes nothing.
func (e DayEntry) WithNote(text string) DayEntry {
	switch {
	case text == "":
	case e.Notes == "":
		e.Notes = text
	default:
		e.Notes = e.Notes + "\n" + text
	}
	return e
}

// NewEntry describes a timer to be created remotely.
type NewEntry struct {
	Hours     float64    // hours already elapsed when the timer starts
	Notes     string
	SpentAt   time.Time
	StartedAt *time.Time // clock time the block began; nil means now
	Task      Task
}

// FormatHours renders fractional hours as H:MM.
func FormatHours(hours float64) string {
	minutes := int(math.Round(hours * 60))
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// Date truncates t to midnight in its own location
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
