// Package memory provides an in-process stand-in for the remote time-tracking service.
package memory

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"tally/internal/domain"
	"tally/internal/ports"
)

// Calls counts the remote operations issued against an EntryAPI
type Calls struct {
	Create      int
	Delete      int
	FetchDaily  int
	FetchToday  int
	Toggle      int
	UpdateNotes int
}

// EntryAPI keeps entries in memory and enforces a single running timer,
// stopping any other running entry when one starts.
type EntryAPI struct {
	mu sync.Mutex

	Calls Calls
	Now   func() time.Time

	// RejectCreate, when set, is returned by CreateEntry instead of creating an entry
	RejectCreate error
	// RejectDelete, when set, is returned by DeleteEntry
	RejectDelete error

	entries      []domain.DayEntry
	nextID       int
	tasks        []domain.Task
	timerStarted map[string]time.Time
}

var _ ports.EntryAPI = (*EntryAPI)(nil)

// NewEntryAPI returns an empty service offering tasks
func NewEntryAPI(tasks ...domain.Task) *EntryAPI {
	return &EntryAPI{
		Now:          time.Now,
		nextID:       1,
		tasks:        tasks,
		timerStarted: make(map[string]time.Time),
	}
}

// Seed stores entry as-is, assigning an ID when it has none
func (a *EntryAPI) Seed(entry domain.DayEntry) domain.DayEntry {
	a.mu.Lock()
	defer a.mu.Unlock()

	if entry.ID == "" {
		entry.ID = a.newID()
	}
	if entry.UpdatedAt.IsZero() {
		entry.UpdatedAt = a.Now()
	}
	if entry.Running {
		a.timerStarted[entry.ID] = a.Now()
	}
	a.entries = append(a.entries, entry)
	return entry
}

// Entries returns a copy of every stored entry
func (a *EntryAPI) Entries() []domain.DayEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]domain.DayEntry(nil), a.entries...)
}

// RunningCount returns how many entries currently have a timer running
func (a *EntryAPI) RunningCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	count := 0
	for _, e := range a.entries {
		if e.Running {
			count++
		}
	}
	return count
}

func (a *EntryAPI) FetchToday(ctx context.Context) ([]domain.DayEntry, []domain.Task, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.Calls.FetchToday++
	return a.entriesOn(a.Now()), append([]domain.Task(nil), a.tasks...), nil
}

func (a *EntryAPI) FetchDaily(ctx context.Context, date time.Time) ([]domain.DayEntry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.Calls.FetchDaily++
	return a.entriesOn(date), nil
}

func (a *EntryAPI) CreateEntry(ctx context.Context, entry domain.NewEntry) (*domain.DayEntry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.Calls.Create++
	if a.RejectCreate != nil {
		return nil, a.RejectCreate
	}

	task, ok := a.findTask(entry.Task.ProjectID, entry.Task.TaskID)
	if !ok {
		return nil, &domain.RemoteError{Status: http.StatusNotFound, Message: "Task not found"}
	}

	now := a.Now()
	a.stopAll(now)

	created := domain.DayEntry{
		Hours:     entry.Hours,
		ID:        a.newID(),
		Notes:     entry.Notes,
		Running:   true,
		SpentAt:   domain.Date(entry.SpentAt),
		StartedAt: clockLabel(now),
		Task:      task,
		UpdatedAt: now,
	}
	if entry.StartedAt != nil {
		created.StartedAt = clockLabel(*entry.StartedAt)
	}
	a.entries = append(a.entries, created)
	a.timerStarted[created.ID] = now
	return &created, nil
}

func (a *EntryAPI) ToggleEntry(ctx context.Context, id string) (*domain.DayEntry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.Calls.Toggle++
	i := a.indexOf(id)
	if i < 0 {
		return nil, &domain.RemoteError{Status: http.StatusNotFound, Message: "Entry not found"}
	}

	now := a.Now()
	if a.entries[i].Running {
		a.stop(i, now)
	} else {
		a.stopAll(now)
		a.entries[i].Running = true
		a.entries[i].EndedAt = ""
		a.timerStarted[id] = now
	}
	a.entries[i].UpdatedAt = now

	toggled := a.entries[i]
	return &toggled, nil
}

func (a *EntryAPI) UpdateEntryNotes(ctx context.Context, id string, notes string) (*domain.DayEntry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.Calls.UpdateNotes++
	i := a.indexOf(id)
	if i < 0 {
		return nil, &domain.RemoteError{Status: http.StatusNotFound, Message: "Entry not found"}
	}

	a.entries[i].Notes = notes
	a.entries[i].UpdatedAt = a.Now()
	updated := a.entries[i]
	return &updated, nil
}

func (a *EntryAPI) DeleteEntry(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.Calls.Delete++
	if a.RejectDelete != nil {
		return a.RejectDelete
	}

	i := a.indexOf(id)
	if i < 0 {
		return &domain.RemoteError{Status: http.StatusNotFound, Message: "Entry not found"}
	}
	a.entries = append(a.entries[:i], a.entries[i+1:]...)
	delete(a.timerStarted, id)
	return nil
}

func (a *EntryAPI) entriesOn(date time.Time) []domain.DayEntry {
	day := domain.Date(date)
	var out []domain.DayEntry
	for _, e := range a.entries {
		if domain.Date(e.SpentAt).Equal(day) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (a *EntryAPI) findTask(projectID, taskID string) (domain.Task, bool) {
	for _, t := range a.tasks {
		if t.Matches(projectID, taskID) {
			return t, true
		}
	}
	return domain.Task{}, false
}

func (a *EntryAPI) indexOf(id string) int {
	for i, e := range a.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (a *EntryAPI) stopAll(now time.Time) {
	for i := range a.entries {
		if a.entries[i].Running {
			a.stop(i, now)
			a.entries[i].UpdatedAt = now
		}
	}
}

func (a *EntryAPI) stop(i int, now time.Time) {
	e := &a.entries[i]
	if started, ok := a.timerStarted[e.ID]; ok {
		e.Hours += now.Sub(started).Hours()
		delete(a.timerStarted, e.ID)
	}
	e.Running = false
	e.EndedAt = clockLabel(now)
}

func (a *EntryAPI) newID() string {
	id := fmt.Sprintf("%06d", a.nextID)
	a.nextID++
	return id
}

func clockLabel(t time.Time) string {
	return t.Format("3:04pm")
}
