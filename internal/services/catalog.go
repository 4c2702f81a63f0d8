package services

import (
	"context"

	"tally/internal/domain"
	"tally/internal/logging"
	"tally/internal/ports"
)

// TaskCatalog caches the tasks visible to the account.
// The catalog is refreshed as a whole by fetching today's entries, never incrementally.
type TaskCatalog struct {
	cache  ports.TaskCacheRepository // optional persisted copy
	loaded bool
	source ports.TaskSource
	tasks  []domain.Task
}

// NewTaskCatalog creates a catalog backed by source. cache may be nil.
func NewTaskCatalog(source ports.TaskSource, cache ports.TaskCacheRepository) *TaskCatalog {
	return &TaskCatalog{
		cache:  cache,
		source: source,
	}
}

// All returns the cached tasks, refreshing once from the remote service when
// the cache is empty or clearCache is set.
func (c *TaskCatalog) All(ctx context.Context, clearCache bool) ([]domain.Task, error) {
	if !c.loaded {
		c.loadPersisted(ctx)
	}

	if clearCache || len(c.tasks) == 0 {
		if err := c.refresh(ctx, clearCache); err != nil {
			return nil, err
		}
	}

	return append([]domain.Task(nil), c.tasks...), nil
}

// Find returns the task with the given IDs, or nil when the catalog has no such task
func (c *TaskCatalog) Find(ctx context.Context, projectID, taskID string) (*domain.Task, error) {
	tasks, err := c.All(ctx, false)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if t.Matches(projectID, taskID) {
			found := t
			return &found, nil
		}
	}
	return nil, nil
}

// List returns the catalog filtered by project code; an empty result is ErrNoMatchingTasks
func (c *TaskCatalog) List(ctx context.Context, clearCache bool, projectCode string) ([]domain.Task, error) {
	tasks, err := c.All(ctx, clearCache)
	if err != nil {
		return nil, err
	}

	tasks = SelectByProject(tasks, projectCode)
	if len(tasks) == 0 {
		return nil, domain.ErrNoMatchingTasks
	}
	return tasks, nil
}

// Observe replaces the catalog with tasks seen in a fetch made for another purpose
func (c *TaskCatalog) Observe(ctx context.Context, tasks []domain.Task) {
	if len(tasks) == 0 {
		return
	}
	c.tasks = append([]domain.Task(nil), tasks...)
	c.loaded = true
	c.persist(ctx)
}

// SelectByProject returns the tasks whose project code equals code.
// An empty code selects everything.
func SelectByProject(tasks []domain.Task, code string) []domain.Task {
	if code == "" {
		return tasks
	}
	var selected []domain.Task
	for _, t := range tasks {
		if t.ProjectCode == code {
			selected = append(selected, t)
		}
	}
	return selected
}

func (c *TaskCatalog) loadPersisted(ctx context.Context) {
	c.loaded = true
	if c.cache == nil {
		return
	}

	tasks, err := c.cache.ListTasks(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to read task cache, refreshing from remote", "error", err)
		return
	}
	c.tasks = tasks
	logging.Logger.Debug("Task cache loaded", "count", len(tasks))
}

func (c *TaskCatalog) refresh(ctx context.Context, clearCache bool) error {
	logging.Logger.Info("Refreshing task catalog", "clear_cache", clearCache)

	// An explicit clear drops the persisted copy even if the fetch below fails
	if clearCache && c.cache != nil {
		if err := c.cache.ClearTasks(ctx); err != nil {
			logging.Logger.Warn("Failed to clear task cache", "error", err)
		}
	}

	_, tasks, err := c.source.FetchToday(ctx)
	if err != nil {
		logging.Logger.Error("Failed to refresh task catalog", "error", err)
		return err
	}

	c.tasks = tasks
	c.persist(ctx)

	logging.Logger.Info("Task catalog refreshed", "count", len(tasks))
	return nil
}

func (c *TaskCatalog) persist(ctx context.Context) {
	if c.cache == nil {
		return
	}
	if err := c.cache.ReplaceTasks(ctx, c.tasks); err != nil {
		logging.Logger.Warn("Failed to persist task cache", "error", err)
	}
}
