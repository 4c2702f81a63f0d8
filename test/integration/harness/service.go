package harness

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"tally/internal/adapters/memory"
	"tally/internal/domain"
)

// DefaultTasks is the catalog every fake service offers
var DefaultTasks = []domain.Task{
	{Billable: true, ClientName: "Acme", Name: "Design", ProjectCode: "WEB", ProjectID: "10", ProjectName: "Website", TaskID: "2"},
	{Billable: true, ClientName: "Acme", Name: "Build", ProjectCode: "WEB", ProjectID: "10", ProjectName: "Website", TaskID: "3"},
	{ClientName: "Globex", Name: "Bugfix", ProjectCode: "OPS", ProjectID: "2", ProjectName: "Ops", TaskID: "3"},
}

// FakeService serves the daily endpoints of the time-tracking service over HTTP,
// keeping its state in a memory.EntryAPI.
type FakeService struct {
	API    *memory.EntryAPI
	server *httptest.Server
}

// NewFakeService starts a fake service that requires TestLogin / TestPassword.
// It is shut down when the test completes.
func NewFakeService(tb testing.TB) *FakeService {
	tb.Helper()

	s := &FakeService{API: memory.NewEntryAPI(DefaultTasks...)}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /daily", s.handleToday)
	mux.HandleFunc("GET /daily/{yday}/{year}", s.handleDaily)
	mux.HandleFunc("POST /daily/add", s.handleCreate)
	mux.HandleFunc("GET /daily/timer/{id}", s.handleToggle)
	mux.HandleFunc("POST /daily/update/{id}", s.handleUpdate)
	mux.HandleFunc("DELETE /daily/delete/{id}", s.handleDelete)

	s.server = httptest.NewServer(s.authenticate(mux))
	tb.Cleanup(s.server.Close)
	return s
}

// URL returns the base URL of the fake service
func (s *FakeService) URL() string {
	return s.server.URL
}

func (s *FakeService) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		login, password, ok := r.BasicAuth()
		if !ok || login != TestLogin || password != TestPassword {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *FakeService) handleToday(w http.ResponseWriter, r *http.Request) {
	entries, tasks, err := s.API.FetchToday(r.Context())
	if err != nil {
		writeRemoteError(w, err)
		return
	}
	writeJSON(w, map[string]any{
		"day_entries": entryPayloads(entries),
		"for_day":     time.Now().Format(time.DateOnly),
		"projects":    projectPayloads(tasks),
	})
}

func (s *FakeService) handleDaily(w http.ResponseWriter, r *http.Request) {
	yday, errDay := strconv.Atoi(r.PathValue("yday"))
	year, errYear := strconv.Atoi(r.PathValue("year"))
	if errDay != nil || errYear != nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	date := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local).AddDate(0, 0, yday-1)
	entries, err := s.API.FetchDaily(r.Context(), date)
	if err != nil {
		writeRemoteError(w, err)
		return
	}
	writeJSON(w, map[string]any{
		"day_entries": entryPayloads(entries),
		"for_day":     date.Format(time.DateOnly),
		"projects":    []any{},
	})
}

func (s *FakeService) handleCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Hours     string `json:"hours"`
		Notes     string `json:"notes"`
		ProjectID any    `json:"project_id"`
		SpentAt   string `json:"spent_at"`
		StartedAt string `json:"started_at"`
		TaskID    any    `json:"task_id"`
	}
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry := domain.NewEntry{
		Notes: body.Notes,
		Task:  domain.Task{ProjectID: fmt.Sprint(body.ProjectID), TaskID: fmt.Sprint(body.TaskID)},
	}
	spentAt, err := time.ParseInLocation(time.DateOnly, body.SpentAt, time.Local)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid spent_at")
		return
	}
	entry.SpentAt = spentAt
	if body.Hours != "" {
		if entry.Hours, err = strconv.ParseFloat(body.Hours, 64); err != nil {
			writeError(w, http.StatusBadRequest, "invalid hours")
			return
		}
	}
	if body.StartedAt != "" {
		clock, err := time.ParseInLocation("3:04pm", body.StartedAt, time.Local)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid started_at")
			return
		}
		startedAt := time.Date(spentAt.Year(), spentAt.Month(), spentAt.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local)
		entry.StartedAt = &startedAt
	}

	created, err := s.API.CreateEntry(r.Context(), entry)
	if err != nil {
		writeRemoteError(w, err)
		return
	}
	writeJSON(w, entryPayload(*created))
}

func (s *FakeService) handleToggle(w http.ResponseWriter, r *http.Request) {
	s.writeEntry(w, r.Context(), func(ctx context.Context) (*domain.DayEntry, error) {
		return s.API.ToggleEntry(ctx, r.PathValue("id"))
	})
}

func (s *FakeService) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Notes string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeEntry(w, r.Context(), func(ctx context.Context) (*domain.DayEntry, error) {
		return s.API.UpdateEntryNotes(ctx, r.PathValue("id"), body.Notes)
	})
}

func (s *FakeService) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.API.DeleteEntry(r.Context(), r.PathValue("id")); err != nil {
		writeRemoteError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *FakeService) writeEntry(w http.ResponseWriter, ctx context.Context, op func(context.Context) (*domain.DayEntry, error)) {
	entry, err := op(ctx)
	if err != nil {
		writeRemoteError(w, err)
		return
	}
	writeJSON(w, entryPayload(*entry))
}

func entryPayloads(entries []domain.DayEntry) []map[string]any {
	payloads := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		payloads = append(payloads, entryPayload(e))
	}
	return payloads
}

func entryPayload(e domain.DayEntry) map[string]any {
	var timerStartedAt any
	if e.Running {
		timerStartedAt = e.UpdatedAt.Format(time.RFC3339)
	}
	return map[string]any{
		"client":           e.Task.ClientName,
		"ended_at":         e.EndedAt,
		"hours":            e.Hours,
		"id":               e.ID,
		"notes":            e.Notes,
		"project":          e.Task.ProjectName,
		"project_id":       e.Task.ProjectID,
		"spent_at":         e.SpentAt.Format(time.DateOnly),
		"started_at":       e.StartedAt,
		"task":             e.Task.Name,
		"task_id":          e.Task.TaskID,
		"timer_started_at": timerStartedAt,
		"updated_at":       e.UpdatedAt.Format(time.RFC3339),
	}
}

func projectPayloads(tasks []domain.Task) []map[string]any {
	var projects []map[string]any
	index := make(map[string]int)
	for _, t := range tasks {
		i, ok := index[t.ProjectID]
		if !ok {
			i = len(projects)
			index[t.ProjectID] = i
			projects = append(projects, map[string]any{
				"billable": t.Billable,
				"client":   t.ClientName,
				"code":     t.ProjectCode,
				"id":       t.ProjectID,
				"name":     t.ProjectName,
				"tasks":    []map[string]any{},
			})
		}
		projects[i]["tasks"] = append(projects[i]["tasks"].([]map[string]any), map[string]any{
			"billable": t.Billable,
			"id":       t.TaskID,
			"name":     t.Name,
		})
	}
	return projects
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}

func writeRemoteError(w http.ResponseWriter, err error) {
	var remoteErr *domain.RemoteError
	if errors.As(err, &remoteErr) && remoteErr.Status != 0 {
		writeError(w, remoteErr.Status, remoteErr.Message)
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
