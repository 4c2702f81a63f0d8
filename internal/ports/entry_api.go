package ports

import (
	"context"
	"time"

	"tally/internal/domain"
)

// TaskSource fetches today's entries together with the task catalog
type TaskSource interface {
	FetchToday(ctx context.Context) ([]domain.DayEntry, []domain.Task, error)
}

// EntryReader reads day entries
type EntryReader interface {
	FetchDaily(ctx context.Context, date time.Time) ([]domain.DayEntry, error)
}

// EntryWriter mutates day entries
type EntryWriter interface {
	CreateEntry(ctx context.Context, entry domain.NewEntry) (*domain.DayEntry, error)
	DeleteEntry(ctx context.Context, id string) error
	ToggleEntry(ctx context.Context, id string) (*domain.DayEntry, error)
	UpdateEntryNotes(ctx context.Context, id string, notes string) (*domain.DayEntry, error)
}

// EntryAPI is the composite interface to the remote time-tracking service.
// Implementations hold their own credentials and fail with *domain.RemoteError.
type EntryAPI interface {
	TaskSource
	EntryReader
	EntryWriter
}
