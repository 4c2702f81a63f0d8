package ports

import (
	"context"

	"tally/internal/domain"
)

// TaskCacheRepository keeps a local copy of the task catalog between runs
type TaskCacheRepository interface {
	ClearTasks(ctx context.Context) error
	ListTasks(ctx context.Context) ([]domain.Task, error)
	ReplaceTasks(ctx context.Context, tasks []domain.Task) error
	Close() error
}
