package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/domain"
)

func TestCreateAlias_ThenResolveReturnsCatalogTask(t *testing.T) {
	pairs := []domain.Task{designTask, buildTask, bugfixTask}

	for _, want := range pairs {
		t.Run(want.DisplayName(), func(t *testing.T) {
			f := newFixture(t, nil)
			ctx := context.Background()

			created, err := f.resolver.CreateAlias(ctx, "work", want.ProjectID, want.TaskID)
			require.NoError(t, err)
			assert.Equal(t, want, *created)

			found, err := f.catalog.Find(ctx, want.ProjectID, want.TaskID)
			require.NoError(t, err)

			resolution, rest, err := f.resolver.ResolveArgs(ctx, []string{"@work"})
			require.NoError(t, err)
			assert.Empty(t, rest)
			assert.Equal(t, *found, resolution.Task)
		})
	}
}

func TestCreateAlias_StoresPairUnderTaskKey(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.resolver.CreateAlias(context.Background(), "design", "10", "2")
	require.NoError(t, err)

	v, ok := f.settings.Get("task.design")
	assert.True(t, ok)
	assert.Equal(t, "10 2", v)
}

func TestCreateAlias_UnknownPair(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.resolver.CreateAlias(context.Background(), "nope", "99", "98")

	var unknown *domain.UnknownTaskError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "99", unknown.ProjectID)
	_, ok := f.settings.Get("task.nope")
	assert.False(t, ok)
}

func TestRemoveAlias_ThenResolveFails(t *testing.T) {
	f := newFixture(t, map[string]string{"task.dev": "10 2", "task.ops": "2 3"})
	ctx := context.Background()

	require.NoError(t, f.resolver.RemoveAlias("dev"))

	assert.Equal(t, []string{"@ops"}, f.resolver.ListAliases())
	_, _, err := f.resolver.ResolveArgs(ctx, []string{"@dev"})
	var unknown *domain.UnknownAliasError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "dev", unknown.Name)
}

func TestResolveArgs(t *testing.T) {
	f := newFixture(t, map[string]string{
		"task.dev":    "10 2",
		"task.triage": "2 3 looking at the queue",
		"task.broken": "10",
	})
	ctx := context.Background()

	t.Run("explicit pair leaves note tokens", func(t *testing.T) {
		resolution, rest, err := f.resolver.ResolveArgs(ctx, []string{"10", "3", "fixing", "stuff"})
		require.NoError(t, err)
		assert.Equal(t, buildTask, resolution.Task)
		assert.Equal(t, []string{"fixing", "stuff"}, rest)
		assert.Empty(t, resolution.DefaultNote)
	})

	t.Run("alias default note", func(t *testing.T) {
		resolution, _, err := f.resolver.ResolveArgs(ctx, []string{"@triage"})
		require.NoError(t, err)
		assert.Equal(t, bugfixTask, resolution.Task)
		assert.Equal(t, "looking at the queue", resolution.DefaultNote)
	})

	t.Run("unparseable lists aliases", func(t *testing.T) {
		_, rest, err := f.resolver.ResolveArgs(ctx, []string{"something", "else"})
		var ambiguous *domain.AmbiguousTaskError
		require.ErrorAs(t, err, &ambiguous)
		assert.Equal(t, []string{"@broken", "@dev", "@triage"}, ambiguous.Aliases)
		assert.Equal(t, "unknown task alias, try one of the following: @broken, @dev, @triage", err.Error())
		assert.Equal(t, []string{"something", "else"}, rest)
	})

	t.Run("malformed alias value", func(t *testing.T) {
		_, _, err := f.resolver.ResolveArgs(ctx, []string{"@broken"})
		var configErr *domain.ConfigError
		assert.ErrorAs(t, err, &configErr)
	})

	t.Run("explicit pair not in catalog", func(t *testing.T) {
		_, _, err := f.resolver.ResolveArgs(ctx, []string{"1", "1"})
		var unknown *domain.UnknownTaskError
		assert.ErrorAs(t, err, &unknown)
	})
}

func TestListAliases_SortedWithPrefix(t *testing.T) {
	f := newFixture(t, map[string]string{"task.b": "1 1", "task.a": "1 2", "harvest.login": "me"})

	assert.Equal(t, []string{"@a", "@b"}, f.resolver.ListAliases())
}
