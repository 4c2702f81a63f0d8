package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"tally/internal/domain"
	"tally/internal/logging"
	"tally/internal/ports"
)

// StartParams contains parameters for starting a timer
type StartParams struct {
	Hours     float64    // hours already elapsed, e.g. from "+0:15"
	Note      string
	StartedAt *time.Time // clock time the work began; nil means now
	Task      domain.Task
}

// EntryResult is the entry returned by the remote service after a transition,
// and the time the transition was acknowledged.
type EntryResult struct {
	At    time.Time
	Entry domain.DayEntry
}

// CancelResult reports the outcome of Cancel. Deleted is false when the user declined.
type CancelResult struct {
	Deleted bool
	Entry   domain.DayEntry
}

// EntryService drives day entries through their lifecycle against the remote service.
// Client-side checks are best effort; the remote service remains the arbiter of
// the single running timer and its rejections are returned unchanged.
type EntryService struct {
	api      ports.EntryAPI
	catalog  *TaskCatalog
	now      func() time.Time
	resolver *AliasResolver
}

// NewEntryService creates a new EntryService. catalog may be nil.
func NewEntryService(api ports.EntryAPI, resolver *AliasResolver, catalog *TaskCatalog) *EntryService {
	return &EntryService{
		api:      api,
		catalog:  catalog,
		now:      time.Now,
		resolver: resolver,
	}
}

// WithClock replaces the clock used for "today" and acknowledgement times
func (s *EntryService) WithClock(now func() time.Time) *EntryService {
	s.now = now
	return s
}

// Start creates a running entry for params.Task
func (s *EntryService) Start(ctx context.Context, params StartParams) (*EntryResult, error) {
	today := s.today()

	running, err := s.WithTimer(ctx, today)
	if err != nil {
		return nil, err
	}
	if running != nil {
		logging.Logger.Info("Refusing to start, timer already running", "entry_id", running.ID)
		return nil, domain.ErrAlreadyRunning
	}

	created, err := s.create(ctx, today, params)
	if err != nil {
		return nil, err
	}

	// The service may answer a create that carries hours with a stopped entry
	if created.State() != domain.StateRunning {
		logging.Logger.Debug("Created entry is stopped, starting its timer", "entry_id", created.ID)
		if created, err = s.toggle(ctx, created.ID); err != nil {
			return nil, err
		}
	}
	return &EntryResult{At: s.now(), Entry: *created}, nil
}

// Log records an already completed block: the entry is created and stopped at once
func (s *EntryService) Log(ctx context.Context, params StartParams) (*EntryResult, error) {
	today := s.today()

	running, err := s.WithTimer(ctx, today)
	if err != nil {
		return nil, err
	}
	if running != nil {
		return nil, domain.ErrAlreadyRunning
	}

	created, err := s.create(ctx, today, params)
	if err != nil {
		return nil, err
	}

	stopped := created
	if created.State() == domain.StateRunning {
		if stopped, err = s.toggle(ctx, created.ID); err != nil {
			return nil, err
		}
	}

	logging.Logger.Info("Entry logged", "entry_id", stopped.ID)
	return &EntryResult{At: s.now(), Entry: *stopped}, nil
}

// Stop stops today's running timer, or yesterday's when it spans midnight.
// A non-empty note is appended before stopping.
func (s *EntryService) Stop(ctx context.Context, note string) (*EntryResult, error) {
	today := s.today()

	entry, err := s.WithTimer(ctx, today)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		entry, err = s.WithTimer(ctx, today.AddDate(0, 0, -1))
		if err != nil {
			return nil, err
		}
	}
	if entry.State() == domain.StateNoEntry {
		return nil, domain.ErrNoRunningTimer
	}

	if note != "" {
		if _, err := s.api.UpdateEntryNotes(ctx, entry.ID, entry.WithNote(note).Notes); err != nil {
			return nil, err
		}
	}

	stopped, err := s.toggle(ctx, entry.ID)
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("Timer stopped", "entry_id", stopped.ID, "hours", stopped.Hours)
	return &EntryResult{At: s.now(), Entry: *stopped}, nil
}

// AppendNote adds text to the running entry, or to today's most recent entry when
// nothing is running. Empty text returns the entry unchanged.
func (s *EntryService) AppendNote(ctx context.Context, text string) (*EntryResult, error) {
	entries, err := s.Daily(ctx, s.today())
	if err != nil {
		return nil, err
	}

	entry := runningIn(entries)
	if entry == nil {
		entry = lastIn(entries)
	}
	if entry.State() == domain.StateNoEntry {
		return nil, domain.ErrNoRunningTimer
	}

	if text == "" {
		return &EntryResult{At: s.now(), Entry: *entry}, nil
	}

	updated, err := s.api.UpdateEntryNotes(ctx, entry.ID, entry.WithNote(text).Notes)
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("Note appended", "entry_id", updated.ID)
	return &EntryResult{At: s.now(), Entry: *updated}, nil
}

// Resume restarts the last entry for ref, or the last entry today when ref is nil
func (s *EntryService) Resume(ctx context.Context, ref domain.TaskReference) (*EntryResult, error) {
	today := s.today()

	entries, err := s.Daily(ctx, today)
	if err != nil {
		return nil, err
	}
	if running := runningIn(entries); running != nil {
		logging.Logger.Info("Refusing to resume, timer already running", "entry_id", running.ID)
		return nil, domain.ErrAlreadyRunning
	}

	var entry *domain.DayEntry
	if ref != nil {
		resolution, err := s.resolver.Resolve(ctx, ref)
		if err != nil {
			return nil, err
		}
		entry = lastByTaskIn(entries, resolution.Task.ProjectID, resolution.Task.TaskID)
	} else {
		entry = lastIn(entries)
	}
	if entry.State() == domain.StateNoEntry {
		return nil, domain.ErrNoMatchingTimer
	}

	resumed, err := s.toggle(ctx, entry.ID)
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("Timer resumed", "entry_id", resumed.ID)
	return &EntryResult{At: s.now(), Entry: *resumed}, nil
}

// Cancel deletes the running entry, or today's most recent one, after confirmation.
// A nil confirmer deletes without asking.
func (s *EntryService) Cancel(ctx context.Context, confirmer ports.Confirmer) (*CancelResult, error) {
	entries, err := s.Daily(ctx, s.today())
	if err != nil {
		return nil, err
	}

	entry := runningIn(entries)
	if entry == nil {
		entry = lastIn(entries)
	}
	if entry.State() == domain.StateNoEntry {
		return nil, domain.ErrNothingToCancel
	}

	if confirmer != nil {
		confirmed, err := confirmer.Confirm(fmt.Sprintf("%s\nDelete this entry?", entry))
		if err != nil {
			return nil, err
		}
		if !confirmed {
			logging.Logger.Info("Cancel declined", "entry_id", entry.ID)
			return &CancelResult{Deleted: false, Entry: *entry}, nil
		}
	}

	if err := s.api.DeleteEntry(ctx, entry.ID); err != nil {
		logging.Logger.Error("Failed to delete entry", "entry_id", entry.ID, "error", err)
		return nil, &domain.DeletionFailedError{Entry: entry.String(), Err: err}
	}

	logging.Logger.Info("Entry deleted", "entry_id", entry.ID)
	return &CancelResult{Deleted: true, Entry: *entry}, nil
}

// WithTimer returns the running entry on date, or nil
func (s *EntryService) WithTimer(ctx context.Context, date time.Time) (*domain.DayEntry, error) {
	entries, err := s.Daily(ctx, date)
	if err != nil {
		return nil, err
	}
	return runningIn(entries), nil
}

// Last returns the most recently updated entry on date, or nil
func (s *EntryService) Last(ctx context.Context, date time.Time) (*domain.DayEntry, error) {
	entries, err := s.Daily(ctx, date)
	if err != nil {
		return nil, err
	}
	return lastIn(entries), nil
}

// LastByTask returns the most recently updated entry on date for the given task, or nil
func (s *EntryService) LastByTask(ctx context.Context, date time.Time, projectID, taskID string) (*domain.DayEntry, error) {
	entries, err := s.Daily(ctx, date)
	if err != nil {
		return nil, err
	}
	return lastByTaskIn(entries, projectID, taskID), nil
}

func (s *EntryService) create(ctx context.Context, today time.Time, params StartParams) (*domain.DayEntry, error) {
	logging.Logger.Info("Starting timer",
		"project_id", params.Task.ProjectID,
		"task_id", params.Task.TaskID,
		"hours", params.Hours)

	created, err := s.api.CreateEntry(ctx, domain.NewEntry{
		Hours:     params.Hours,
		Notes:     params.Note,
		SpentAt:   today,
		StartedAt: params.StartedAt,
		Task:      params.Task,
	})
	if err != nil {
		logging.Logger.Error("Remote service rejected new entry", "error", err)
		return nil, err
	}
	return created, nil
}

// toggle flips an entry between running and stopped; an entry that vanished
// remotely reports ErrEntryNotFound alongside the remote error.
func (s *EntryService) toggle(ctx context.Context, id string) (*domain.DayEntry, error) {
	entry, err := s.api.ToggleEntry(ctx, id)
	if err != nil {
		if domain.IsRemoteStatus(err, http.StatusNotFound) {
			return nil, errors.Join(domain.ErrEntryNotFound, err)
		}
		return nil, err
	}
	return entry, nil
}

// Daily returns the entries on date. Today's listing also carries the task
// catalog, which is handed to the catalog cache.
func (s *EntryService) Daily(ctx context.Context, date time.Time) ([]domain.DayEntry, error) {
	if domain.Date(date).Equal(s.today()) {
		entries, tasks, err := s.api.FetchToday(ctx)
		if err != nil {
			return nil, err
		}
		if s.catalog != nil {
			s.catalog.Observe(ctx, tasks)
		}
		return entries, nil
	}
	return s.api.FetchDaily(ctx, date)
}

func (s *EntryService) today() time.Time {
	return domain.Date(s.now())
}

func runningIn(entries []domain.DayEntry) *domain.DayEntry {
	for i := range entries {
		if entries[i].Running {
			return &entries[i]
		}
	}
	return nil
}

func lastIn(entries []domain.DayEntry) *domain.DayEntry {
	var last *domain.DayEntry
	for i := range entries {
		if last == nil || !entries[i].UpdatedAt.Before(last.UpdatedAt) {
			last = &entries[i]
		}
	}
	return last
}

func lastByTaskIn(entries []domain.DayEntry, projectID, taskID string) *domain.DayEntry {
	var matching []domain.DayEntry
	for _, e := range entries {
		if e.Task.Matches(projectID, taskID) {
			matching = append(matching, e)
		}
	}
	return lastIn(matching)
}
