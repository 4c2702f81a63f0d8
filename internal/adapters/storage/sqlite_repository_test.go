package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "cache", "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestListTasks_EmptyCache(t *testing.T) {
	repo := newTestRepository(t)

	tasks, err := repo.ListTasks(context.Background())

	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestReplaceTasks_KeepsCatalogOrder(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	tasks := []domain.Task{
		{ProjectID: "20", TaskID: "3", ProjectName: "Zeta", ProjectCode: "ZT", Name: "Build", ClientName: "Acme", Billable: true},
		{ProjectID: "10", TaskID: "1", ProjectName: "Alpha", ProjectCode: "AL", Name: "Admin"},
		{ProjectID: "10", TaskID: "2", ProjectName: "Alpha", ProjectCode: "AL", Name: "Design"},
	}
	require.NoError(t, repo.ReplaceTasks(ctx, tasks))

	loaded, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, tasks, loaded)
}

func TestReplaceTasks_DiscardsPreviousCatalog(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceTasks(ctx, []domain.Task{{ProjectID: "1", TaskID: "1", Name: "Old"}}))
	require.NoError(t, repo.ReplaceTasks(ctx, []domain.Task{{ProjectID: "2", TaskID: "2", Name: "New"}}))

	loaded, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "New", loaded[0].Name)
}

func TestReplaceTasks_IgnoresDuplicatePairs(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceTasks(ctx, []domain.Task{
		{ProjectID: "1", TaskID: "1", Name: "First"},
		{ProjectID: "1", TaskID: "1", Name: "Duplicate"},
	}))

	loaded, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "First", loaded[0].Name)
}

func TestClearTasks(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceTasks(ctx, []domain.Task{{ProjectID: "1", TaskID: "1"}}))
	require.NoError(t, repo.ClearTasks(ctx))

	loaded, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestCachePersistsAcrossConnections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	first, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	require.NoError(t, first.ReplaceTasks(ctx, []domain.Task{{ProjectID: "7", TaskID: "8", Name: "Kept"}}))
	require.NoError(t, first.Close())

	second, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	loaded, err := second.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Kept", loaded[0].Name)
}
