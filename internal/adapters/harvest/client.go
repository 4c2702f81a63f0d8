package harvest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"tally/internal/domain"
	"tally/internal/logging"
	"tally/internal/ports"
)

// HTTPClient abstracts HTTP calls for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures a Client
type Options struct {
	Endpoint  string // service root, e.g. https://acme.harvestapp.com
	Login     string
	Password  string
	Timeout   time.Duration
	Token     string // OAuth access token; takes precedence over Login/Password
	UserAgent string
}

// Client talks to the Harvest daily timesheet API.
type Client struct {
	endpoint   string
	httpClient HTTPClient
	login      string
	password   string
	token      string
	userAgent  string
}

// Verify interface compliance at compile time
var _ ports.EntryAPI = (*Client)(nil)

// NewClient creates a new API client. Missing connection details surface on first use.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	httpClient := &http.Client{Timeout: timeout}
	if opts.Token != "" {
		httpClient.Transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token, TokenType: "Bearer"}),
			Base:   http.DefaultTransport,
		}
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "tally"
	}

	return &Client{
		endpoint:   strings.TrimSuffix(opts.Endpoint, "/"),
		httpClient: httpClient,
		login:      opts.Login,
		password:   opts.Password,
		token:      opts.Token,
		userAgent:  userAgent,
	}
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(hc HTTPClient) {
	c.httpClient = hc
}

// FetchToday returns today's entries and the projects/tasks the user may track time against
func (c *Client) FetchToday(ctx context.Context) ([]domain.DayEntry, []domain.Task, error) {
	var resp dailyResponse
	if err := c.call(ctx, http.MethodGet, "/daily", nil, &resp); err != nil {
		return nil, nil, err
	}

	var tasks []domain.Task
	for _, p := range resp.Projects {
		tasks = append(tasks, p.toDomainTasks()...)
	}
	return toDomainEntries(resp.DayEntries), tasks, nil
}

// FetchDaily returns the entries recorded on date
func (c *Client) FetchDaily(ctx context.Context, date time.Time) ([]domain.DayEntry, error) {
	var resp dailyResponse
	path := fmt.Sprintf("/daily/%d/%d", date.YearDay(), date.Year())
	if err := c.call(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return toDomainEntries(resp.DayEntries), nil
}

// CreateEntry starts a new timer
func (c *Client) CreateEntry(ctx context.Context, entry domain.NewEntry) (*domain.DayEntry, error) {
	var record entryRecord
	if err := c.call(ctx, http.MethodPost, "/daily/add", newCreateRequest(entry), &record); err != nil {
		return nil, err
	}
	created := record.toDomain()
	return &created, nil
}

// ToggleEntry stops a running timer or restarts a stopped one
func (c *Client) ToggleEntry(ctx context.Context, id string) (*domain.DayEntry, error) {
	var record entryRecord
	if err := c.call(ctx, http.MethodGet, "/daily/timer/"+id, nil, &record); err != nil {
		return nil, err
	}
	toggled := record.toDomain()
	return &toggled, nil
}

// UpdateEntryNotes replaces the notes of an entry
func (c *Client) UpdateEntryNotes(ctx context.Context, id string, notes string) (*domain.DayEntry, error) {
	var record entryRecord
	if err := c.call(ctx, http.MethodPost, "/daily/update/"+id, notesRequest{Notes: notes}, &record); err != nil {
		return nil, err
	}
	updated := record.toDomain()
	return &updated, nil
}

// DeleteEntry removes an entry
func (c *Client) DeleteEntry(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/daily/delete/"+id, nil, nil)
}

// call executes an authenticated JSON request. Non-2xx responses become *domain.RemoteError.
func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	if c.endpoint == "" {
		return &domain.ConfigError{
			Path: "harvest.subdomain",
			Err:  errors.New("remote service not configured; set TALLY_SUBDOMAIN or run 'tally set harvest.subdomain <name>'"),
		}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token == "" && c.login != "" {
		req.SetBasicAuth(c.login, c.password)
	}

	logging.Logger.Debug("Remote request", "method", method, "path", path, "request_id", requestID)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Logger.Error("Remote request failed", "method", method, "path", path, "error", err)
		return &domain.RemoteError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.RemoteError{Status: resp.StatusCode, Message: err.Error(), Err: err}
	}

	logging.Logger.Debug("Remote response",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.RemoteError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, respBody)}
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &domain.RemoteError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("unexpected response body: %v", err),
			Err:     err,
		}
	}
	return nil
}

// errorMessage extracts the service's diagnostic text from an error response
func errorMessage(status int, body []byte) string {
	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return http.StatusText(status)
}
