package services

import (
	"maps"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tally/internal/adapters/memory"
	"tally/internal/domain"
	portsmocks "tally/internal/ports/mocks"
)

var (
	designTask = domain.Task{ClientName: "Acme", Name: "Design", ProjectCode: "WEB", ProjectID: "10", ProjectName: "Website", TaskID: "2"}
	buildTask  = domain.Task{ClientName: "Acme", Name: "Build", ProjectCode: "WEB", ProjectID: "10", ProjectName: "Website", TaskID: "3"}
	bugfixTask = domain.Task{ClientName: "Globex", Name: "Bugfix", ProjectCode: "OPS", ProjectID: "2", ProjectName: "Ops", TaskID: "3"}
)

// newTestSettings returns a SettingsService over a mock store seeded with initial.
// The latest saved mapping is readable through the returned pointer.
func newTestSettings(t *testing.T, initial map[string]string) (*SettingsService, *map[string]string) {
	t.Helper()

	saved := maps.Clone(initial)
	store := portsmocks.NewMockSettingsStore(t)
	store.EXPECT().Load().Return(maps.Clone(initial), nil)
	store.EXPECT().Save(mock.Anything).
		Run(func(values map[string]string) { saved = maps.Clone(values) }).
		Return(nil).
		Maybe()

	settings, err := NewSettingsService(store)
	require.NoError(t, err)
	return settings, &saved
}

type fixture struct {
	api      *memory.EntryAPI
	catalog  *TaskCatalog
	entries  *EntryService
	now      time.Time
	resolver *AliasResolver
	settings *SettingsService
	summary  *SummaryService
}

func newFixture(t *testing.T, initialSettings map[string]string) *fixture {
	t.Helper()

	f := &fixture{
		api: memory.NewEntryAPI(designTask, buildTask, bugfixTask),
		now: time.Date(2024, time.January, 15, 10, 0, 0, 0, time.Local),
	}
	clock := func() time.Time { return f.now }
	f.api.Now = clock

	f.settings, _ = newTestSettings(t, initialSettings)
	f.catalog = NewTaskCatalog(f.api, nil)
	f.resolver = NewAliasResolver(f.settings, f.catalog)
	f.entries = NewEntryService(f.api, f.resolver, f.catalog).WithClock(clock)
	f.summary = NewSummaryService(f.entries)
	return f
}

func (f *fixture) today() time.Time {
	return domain.Date(f.now)
}

func (f *fixture) seed(task domain.Task, running bool, spentAt time.Time, updatedAt time.Time, notes ...string) domain.DayEntry {
	return f.api.Seed(domain.DayEntry{
		Hours:     1,
		Notes:     strings.Join(notes, "\n"),
		Running:   running,
		SpentAt:   domain.Date(spentAt),
		Task:      task,
		UpdatedAt: updatedAt,
	})
}
