// Package sheets talks to the spreadsheet-backed remote tabular store over
// its values API. The store is addressed by row/column ranges; reads accept a
// read-only API key or a bearer token, appends require a bearer token.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the production values API endpoint.
const DefaultBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

// ReadRange covers the eight workout log columns.
const ReadRange = "A:H"

// HeaderRow is the first row of the workout log sheet.
var HeaderRow = []string{
	"Date", "Exercise Name", "Muscle Group", "Set Number",
	"Reps", "Weight (kg)", "Difficulty Level", "Notes",
}

// Client reads and appends rows in one spreadsheet.
type Client struct {
	baseURL       string
	spreadsheetID string
	httpClient    *http.Client
}

// NewClient creates a client for the given spreadsheet. An empty baseURL
// selects the production endpoint.
func NewClient(baseURL, spreadsheetID string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:       baseURL,
		spreadsheetID: spreadsheetID,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
	}
}

// valueRange mirrors the values API payload for both reads and appends.
type valueRange struct {
	Values [][]string `json:"values"`
}

// ReadRows fetches all rows of sheet!A:H. A non-empty bearer token is sent
// in the Authorization header; otherwise apiKey is sent as a query parameter
// for an unauthenticated read-only fetch.
func (c *Client) ReadRows(ctx context.Context, sheet, apiKey, bearer string) ([][]string, error) {
	u := fmt.Sprintf("%s/%s/values/%s", c.baseURL, c.spreadsheetID,
		url.PathEscape(sheet+"!"+ReadRange))
	if bearer == "" && apiKey != "" {
		u += "?key=" + url.QueryEscape(apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("sheets: create read request: %w", err)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheets: read %s: %w", sheet, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("sheets: read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheets: read %s returned %d: %s", sheet, resp.StatusCode, body)
	}

	var vr valueRange
	if err := json.Unmarshal(body, &vr); err != nil {
		return nil, fmt.Errorf("sheets: decode values: %w", err)
	}
	return vr.Values, nil
}

// AppendRows appends rows to sheet!A:H. Appends are authenticated-only: a
// bearer token is required.
func (c *Client) AppendRows(ctx context.Context, sheet, bearer string, rows [][]string) error {
	if bearer == "" {
		return fmt.Errorf("sheets: append requires a bearer token")
	}

	data, err := json.Marshal(valueRange{Values: rows})
	if err != nil {
		return fmt.Errorf("sheets: marshal rows: %w", err)
	}

	u := fmt.Sprintf("%s/%s/values/%s:append?valueInputOption=USER_ENTERED",
		c.baseURL, c.spreadsheetID, url.PathEscape(sheet+"!"+ReadRange))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("sheets: create append request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sheets: append to %s: %w", sheet, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sheets: append to %s returned %d: %s", sheet, resp.StatusCode, body)
	}
	return nil
}
