package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/claude/liftlog/internal/catalog"
	"github.com/claude/liftlog/internal/eventlog"
	"github.com/claude/liftlog/internal/models"
)

// HTTPClient implements DataSource by calling the LiftLog REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

func (c *HTTPClient) WorkoutHistory(ctx context.Context, muscleGroup string) ([]models.WorkoutLogEntry, error) {
	params := url.Values{}
	if muscleGroup != "" {
		params.Set("muscle_group", muscleGroup)
	}

	body, err := c.get(ctx, "/api/v1/workouts", params)
	if err != nil {
		return nil, err
	}

	var entries []models.WorkoutLogEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("httpclient: decode workouts: %w", err)
	}
	return entries, nil
}

func (c *HTTPClient) ProgressData(ctx context.Context, exerciseID, timeRange string) ([]models.WorkoutLogEntry, error) {
	params := url.Values{}
	params.Set("exercise", exerciseID)
	if timeRange != "" {
		params.Set("range", timeRange)
	}

	body, err := c.get(ctx, "/api/v1/progress", params)
	if err != nil {
		return nil, err
	}

	var entries []models.WorkoutLogEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("httpclient: decode progress: %w", err)
	}
	return entries, nil
}

func (c *HTTPClient) SyncEvents(ctx context.Context) ([]eventlog.Event, error) {
	body, err := c.get(ctx, "/api/v1/sync/events", nil)
	if err != nil {
		return nil, err
	}

	var events []eventlog.Event
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("httpclient: decode sync events: %w", err)
	}
	return events, nil
}

func (c *HTTPClient) Exercises(ctx context.Context, muscleGroup, difficulty string) ([]catalog.Exercise, error) {
	params := url.Values{}
	if muscleGroup != "" {
		params.Set("muscle_group", muscleGroup)
	}
	if difficulty != "" {
		params.Set("difficulty", difficulty)
	}

	body, err := c.get(ctx, "/api/v1/exercises", params)
	if err != nil {
		return nil, err
	}

	var exercises []catalog.Exercise
	if err := json.Unmarshal(body, &exercises); err != nil {
		return nil, fmt.Errorf("httpclient: decode exercises: %w", err)
	}
	return exercises, nil
}
