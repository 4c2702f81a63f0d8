package harvest

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"tally/internal/domain"
)

const dateLayout = "2006-01-02"

// flexID accepts identifiers sent either as JSON numbers or strings
type flexID string

// UnmarshalJSON implements custom unmarshaling for flexID
func (id *flexID) UnmarshalJSON(data []byte) error {
	// Try number first
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = flexID(n.String())
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*id = flexID(s)
	return nil
}

// MarshalJSON writes numeric identifiers as numbers and anything else as a string
func (id flexID) MarshalJSON() ([]byte, error) {
	if domain.IsID(string(id)) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// dailyResponse is the payload of GET /daily and GET /daily/{yday}/{year}
type dailyResponse struct {
	DayEntries []entryRecord   `json:"day_entries"`
	ForDay     string          `json:"for_day"`
	Projects   []projectRecord `json:"projects"`
}

type projectRecord struct {
	Billable bool         `json:"billable"`
	Client   string       `json:"client"`
	Code     string       `json:"code"`
	ID       flexID       `json:"id"`
	Name     string       `json:"name"`
	Tasks    []taskRecord `json:"tasks"`
}

type taskRecord struct {
	Billable bool   `json:"billable"`
	ID       flexID `json:"id"`
	Name     string `json:"name"`
}

type entryRecord struct {
	Client         string  `json:"client"`
	EndedAt        string  `json:"ended_at"`
	Hours          float64 `json:"hours"`
	ID             flexID  `json:"id"`
	Notes          string  `json:"notes"`
	Project        string  `json:"project"`
	ProjectID      flexID  `json:"project_id"`
	SpentAt        string  `json:"spent_at"`
	StartedAt      string  `json:"started_at"`
	Task           string  `json:"task"`
	TaskID         flexID  `json:"task_id"`
	TimerStartedAt *string `json:"timer_started_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// createRequest is the body of POST /daily/add
type createRequest struct {
	Hours     string `json:"hours,omitempty"`
	Notes     string `json:"notes"`
	ProjectID flexID `json:"project_id"`
	SpentAt   string `json:"spent_at"`
	StartedAt string `json:"started_at,omitempty"`
	TaskID    flexID `json:"task_id"`
}

// notesRequest is the body of POST /daily/update/{id}
type notesRequest struct {
	Notes string `json:"notes"`
}

// errorResponse is the JSON error body some endpoints return
type errorResponse struct {
	Message string `json:"message"`
}

func (p projectRecord) toDomainTasks() []domain.Task {
	tasks := make([]domain.Task, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		tasks = append(tasks, domain.Task{
			Billable:    t.Billable,
			ClientName:  p.Client,
			Name:        t.Name,
			ProjectCode: p.Code,
			ProjectID:   string(p.ID),
			ProjectName: p.Name,
			TaskID:      string(t.ID),
		})
	}
	return tasks
}

func (r entryRecord) toDomain() domain.DayEntry {
	entry := domain.DayEntry{
		EndedAt:   r.EndedAt,
		Hours:     r.Hours,
		ID:        string(r.ID),
		Notes:     r.Notes,
		Running:   r.TimerStartedAt != nil && strings.TrimSpace(*r.TimerStartedAt) != "",
		StartedAt: r.StartedAt,
		Task: domain.Task{
			ClientName:  r.Client,
			Name:        r.Task,
			ProjectID:   string(r.ProjectID),
			ProjectName: r.Project,
			TaskID:      string(r.TaskID),
		},
	}
	if spentAt, err := time.ParseInLocation(dateLayout, r.SpentAt, time.Local); err == nil {
		entry.SpentAt = spentAt
	}
	if updatedAt, err := time.Parse(time.RFC3339, r.UpdatedAt); err == nil {
		entry.UpdatedAt = updatedAt
	}
	return entry
}

func toDomainEntries(records []entryRecord) []domain.DayEntry {
	entries := make([]domain.DayEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, r.toDomain())
	}
	return entries
}

func newCreateRequest(e domain.NewEntry) createRequest {
	req := createRequest{
		Notes:     e.Notes,
		ProjectID: flexID(e.Task.ProjectID),
		SpentAt:   e.SpentAt.Format(dateLayout),
		TaskID:    flexID(e.Task.TaskID),
	}
	if e.Hours > 0 {
		req.Hours = strconv.FormatFloat(e.Hours, 'f', 2, 64)
	}
	if e.StartedAt != nil {
		// The service expects a 12-hour clock label such as "9:00am"
		req.StartedAt = e.StartedAt.Format("3:04pm")
	}
	return req
}
