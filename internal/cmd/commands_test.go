package cmd

import (
	"bytes"
	"maps"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tally/internal/adapters/memory"
	"tally/internal/config"
	"tally/internal/domain"
	"tally/internal/ports"
	portsmocks "tally/internal/ports/mocks"
)

var (
	designTask = domain.Task{ClientName: "Acme", Name: "Design", ProjectCode: "WEB", ProjectID: "10", ProjectName: "Website", TaskID: "2"}
	bugfixTask = domain.Task{ClientName: "Globex", Name: "Bugfix", ProjectCode: "OPS", ProjectID: "2", ProjectName: "Ops", TaskID: "3"}
)

type harness struct {
	api   *memory.EntryAPI
	now   time.Time
	saved map[string]string
	t     *testing.T

	confirmer ports.Confirmer
	settings  map[string]string
}

func newHarness(t *testing.T, settings map[string]string) *harness {
	t.Helper()
	h := &harness{
		api:      memory.NewEntryAPI(designTask, bugfixTask),
		now:      time.Date(2024, time.January, 15, 10, 0, 0, 0, time.Local),
		settings: settings,
		t:        t,
	}
	h.api.Now = func() time.Time { return h.now }
	return h
}

// run parses args with a fresh CLI and executes the selected command
func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()

	store := portsmocks.NewMockSettingsStore(h.t)
	store.EXPECT().Load().Return(maps.Clone(h.settings), nil)
	store.EXPECT().Save(mock.Anything).
		Run(func(values map[string]string) { h.saved = maps.Clone(values) }).
		Return(nil).
		Maybe()

	cfg := &config.Config{Home: h.t.TempDir(), Subdomain: "acme", SSL: true, Login: "me", Password: "secret", Timeout: time.Minute}
	container, err := NewContainerWith(cfg, Dependencies{
		API:       h.api,
		Confirmer: h.confirmer,
		Now:       func() time.Time { return h.now },
		Settings:  store,
	})
	require.NoError(h.t, err)

	out := &bytes.Buffer{}
	cli := &CLI{Container: container, Stdin: strings.NewReader(""), Stdout: out}
	parser, err := kong.New(cli, kong.Name("tally"), kong.Exit(func(int) {}), kong.Bind(cli))
	require.NoError(h.t, err)

	kctx, err := parser.Parse(args)
	if err != nil {
		return out.String(), err
	}
	err = kctx.Run()
	return out.String(), err
}

func TestTasksCommand(t *testing.T) {
	h := newHarness(t, nil)

	out, err := h.run("tasks")

	require.NoError(t, err)
	assert.Equal(t, "10 2\tAcme - Website Design\n2 3\tGlobex - Ops Bugfix\n", out)
	assert.Equal(t, 1, h.api.Calls.FetchToday)
}

func TestTasksCommand_FilterAndNoMatch(t *testing.T) {
	h := newHarness(t, nil)

	out, err := h.run("tasks", "--clearcache", "OPS")
	require.NoError(t, err)
	assert.Equal(t, "2 3\tGlobex - Ops Bugfix\n", out)

	_, err = h.run("tasks", "NOPE")
	assert.ErrorIs(t, err, domain.ErrNoMatchingTasks)
}

func TestAliasCommands(t *testing.T) {
	h := newHarness(t, nil)

	out, err := h.run("alias", "dev", "10", "2")
	require.NoError(t, err)
	assert.Equal(t, "Added alias @dev for Acme - Website Design.\n", out)
	assert.Equal(t, "10 2", h.saved["task.dev"])

	h.settings = h.saved
	out, err = h.run("aliases")
	require.NoError(t, err)
	assert.Equal(t, "@dev\n", out)

	out, err = h.run("unalias", "dev")
	require.NoError(t, err)
	assert.Equal(t, "Removed task alias @dev.\n", out)
	assert.NotContains(t, h.saved, "task.dev")
}

func TestAliasCommand_UnknownPair(t *testing.T) {
	h := newHarness(t, nil)

	_, err := h.run("alias", "x", "99", "1")

	var unknown *domain.UnknownTaskError
	assert.ErrorAs(t, err, &unknown)
}

func TestSetAndUnsetCommands(t *testing.T) {
	h := newHarness(t, map[string]string{"task.dev": "10 2"})

	_, err := h.run("set", "harvest.subdomain", "acme", "corp")
	require.NoError(t, err)
	assert.Equal(t, "acme corp", h.saved["harvest.subdomain"])

	h.settings = h.saved
	out, err := h.run("set")
	require.NoError(t, err)
	assert.Equal(t, "harvest.subdomain: acme corp\ntask.dev: 10 2\n", out)

	_, err = h.run("unset", "harvest.subdomain")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"task.dev": "10 2"}, h.saved)
}

func TestStartCommand_WithAliasDefaultNote(t *testing.T) {
	h := newHarness(t, map[string]string{"task.dev": "10 2 daily standup"})

	out, err := h.run("start", "@dev")

	require.NoError(t, err)
	assert.Equal(t, "Started timer for Acme - Website Design (0:00) (at 10:00 am)\n", out)
	entries := h.api.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "daily standup", entries[0].Notes)
}

func TestStartCommand_ElapsedHoursAndNote(t *testing.T) {
	h := newHarness(t, nil)

	out, err := h.run("start", "+0:15", "10", "2", "pairing", "session")

	require.NoError(t, err)
	assert.Equal(t, "Started timer for Acme - Website Design (0:15) (at 10:00 am)\n", out)
	assert.Equal(t, "pairing session", h.api.Entries()[0].Notes)
}

func TestStartCommand_WhileRunning(t *testing.T) {
	h := newHarness(t, nil)
	h.api.Seed(domain.DayEntry{Running: true, SpentAt: domain.Date(h.now), Task: bugfixTask})

	_, err := h.run("start", "10", "2")

	assert.ErrorIs(t, err, domain.ErrAlreadyRunning)
	assert.Equal(t, 0, h.api.Calls.Create)
}

func TestStartCommand_UnknownReference(t *testing.T) {
	h := newHarness(t, map[string]string{"task.dev": "10 2"})

	_, err := h.run("start", "something")

	assert.EqualError(t, err, "unknown task alias, try one of the following: @dev")
}

func TestLogCommand(t *testing.T) {
	h := newHarness(t, nil)

	out, err := h.run("log", "9am", "2", "3", "fixed", "bug")

	require.NoError(t, err)
	assert.Equal(t, "Stopped Globex - Ops Bugfix (0:00) (at 10:00 am)\n", out)
	entries := h.api.Entries()
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Running)
	assert.Equal(t, "fixed bug", entries[0].Notes)
	assert.Equal(t, "9:00am", entries[0].StartedAt)
}

func TestStopCommand(t *testing.T) {
	h := newHarness(t, nil)
	h.api.Seed(domain.DayEntry{Hours: 1.5, Running: true, SpentAt: domain.Date(h.now), Task: designTask})
	h.now = h.now.Add(5 * time.Minute)

	out, err := h.run("stop", "wrapped", "up")

	require.NoError(t, err)
	assert.Equal(t, "Stopped Acme - Website Design (1:35) (at 10:05 am)\n", out)
	assert.Equal(t, "wrapped up", h.api.Entries()[0].Notes)

	_, err = h.run("stop")
	assert.ErrorIs(t, err, domain.ErrNoRunningTimer)
}

func TestNoteCommand(t *testing.T) {
	h := newHarness(t, nil)
	h.api.Seed(domain.DayEntry{Hours: 1, Running: true, SpentAt: domain.Date(h.now), Task: designTask, Notes: "first"})

	out, err := h.run("note", "second", "line")
	require.NoError(t, err)
	assert.Equal(t, "Added note to Acme - Website Design (1:00).\n", out)

	out, err = h.run("note")
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond line\n", out)
}

func TestCancelCommand(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		h := newHarness(t, nil)
		h.api.Seed(domain.DayEntry{Hours: 1, SpentAt: domain.Date(h.now), Task: designTask})
		confirmer := portsmocks.NewMockConfirmer(t)
		confirmer.EXPECT().Confirm(mock.Anything).Return(false, nil)
		h.confirmer = confirmer

		out, err := h.run("cancel")

		require.NoError(t, err)
		assert.Empty(t, out)
		assert.Len(t, h.api.Entries(), 1)
	})

	t.Run("alias with --yes", func(t *testing.T) {
		h := newHarness(t, nil)
		h.api.Seed(domain.DayEntry{Hours: 1, SpentAt: domain.Date(h.now), Task: designTask})

		out, err := h.run("oops", "--yes")

		require.NoError(t, err)
		assert.Equal(t, "Deleted entry Acme - Website Design (1:00).\n", out)
		assert.Empty(t, h.api.Entries())
	})

	t.Run("nothing to cancel", func(t *testing.T) {
		h := newHarness(t, nil)

		_, err := h.run("nvm", "-y")

		assert.ErrorIs(t, err, domain.ErrNothingToCancel)
	})
}

func TestResumeCommand(t *testing.T) {
	h := newHarness(t, map[string]string{"task.fix": "2 3"})
	h.api.Seed(domain.DayEntry{Hours: 0.5, SpentAt: domain.Date(h.now), Task: bugfixTask, UpdatedAt: h.now.Add(-2 * time.Hour)})
	h.api.Seed(domain.DayEntry{Hours: 1, SpentAt: domain.Date(h.now), Task: designTask, UpdatedAt: h.now.Add(-time.Hour)})

	out, err := h.run("resume", "@fix")

	require.NoError(t, err)
	assert.Equal(t, "Resumed Globex - Ops Bugfix (0:30) (at 10:00 am)\n", out)
	assert.Equal(t, 1, h.api.RunningCount())

	_, err = h.run("resume")
	assert.ErrorIs(t, err, domain.ErrAlreadyRunning)
}

func TestShowCommand(t *testing.T) {
	h := newHarness(t, nil)

	out, err := h.run("show", "--days", "3", "yesterday")
	require.NoError(t, err)
	assert.Equal(t, "\t-------------\n\t0:00\ttotal (as of 10:00 am)\n", out)

	h.api.Seed(domain.DayEntry{Hours: 2, Running: true, SpentAt: domain.Date(h.now), Task: designTask, Notes: "layout"})
	out, err = h.run("show")
	require.NoError(t, err)
	assert.Equal(t, "\t2:00\t(running) Acme - Website Design: layout\n\t-------------\n\t2:00\ttotal (as of 10:00 am)\n", out)
}

func TestConfigCommand_MasksSecrets(t *testing.T) {
	h := newHarness(t, nil)

	out, err := h.run("config")

	require.NoError(t, err)
	assert.Contains(t, out, "endpoint: https://acme.harvestapp.com\n")
	assert.Contains(t, out, "password: ***\n")
	assert.NotContains(t, out, "password: secret")
}

func TestVersionCommand(t *testing.T) {
	h := newHarness(t, nil)

	out, err := h.run("version")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "tally "))
}
