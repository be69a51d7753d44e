// Package calendar publishes extracted events to Google Calendar.
//
// Publishing is idempotent: every event carries a deterministic iCalUID
// derived from the source message id, and a lookup by that UID runs
// before any insert.
package calendar

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

const defaultBaseURL = "https://www.googleapis.com/calendar/v3"

// Scope is the OAuth scope required for event publishing.
const Scope = "https://www.googleapis.com/auth/calendar.events"

// EventTime is the start or end of a calendar event: either a date (for
// all-day events) or a dateTime plus timezone.
type EventTime struct {
	Date     string `json:"date,omitempty"`
	DateTime string `json:"dateTime,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

// ReminderOverride is one explicit reminder on an event.
type ReminderOverride struct {
	Method  string `json:"method"`
	Minutes int    `json:"minutes"`
}

// Reminders replaces the user's default reminders with explicit ones.
type Reminders struct {
	UseDefault bool               `json:"useDefault"`
	Overrides  []ReminderOverride `json:"overrides,omitempty"`
}

// Event is the subset of the Calendar API event resource we use.
type Event struct {
	ID          string     `json:"id,omitempty"`
	Summary     string     `json:"summary,omitempty"`
	Description string     `json:"description,omitempty"`
	ICalUID     string     `json:"iCalUID,omitempty"`
	Start       *EventTime `json:"start,omitempty"`
	End         *EventTime `json:"end,omitempty"`
	Reminders   *Reminders `json:"reminders,omitempty"`
}

// APIError is a non-2xx Calendar API response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("calendar api error: status %d: %s", e.StatusCode, e.Body)
}

// Client calls the Calendar API for a single calendar.
type Client struct {
	httpClient *http.Client
	baseURL    string
	calendarID string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// NewClient creates a Calendar client over an authenticated HTTP client.
// calendarID is typically "primary".
func NewClient(httpClient *http.Client, calendarID string, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		calendarID: calendarID,
	}
	if c.calendarID == "" {
		c.calendarID = "primary"
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) eventsPath() string {
	return fmt.Sprintf("/calendars/%s/events", url.PathEscape(c.calendarID))
}

// FindByICalUID returns the event carrying the given iCalUID, or nil.
func (c *Client) FindByICalUID(ctx context.Context, uid string) (*Event, error) {
	q := url.Values{}
	q.Set("iCalUID", uid)
	q.Set("maxResults", "1")
	q.Set("singleEvents", "true")
	q.Set("showDeleted", "false")

	var resp struct {
		Items []Event `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, c.eventsPath(), q, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to look up calendar event by uid: %w", err)
	}
	if len(resp.Items) == 0 || resp.Items[0].ID == "" {
		return nil, nil
	}
	ev := resp.Items[0]
	return &ev, nil
}

// ListWindow calls fn for every event in [timeMin, timeMax), following
// pagination. Used to batch-refresh publish status for the upcoming view.
func (c *Client) ListWindow(ctx context.Context, timeMin, timeMax time.Time, fn func(Event)) error {
	pageToken := ""
	for {
		q := url.Values{}
		q.Set("timeMin", timeMin.UTC().Format(time.RFC3339))
		q.Set("timeMax", timeMax.UTC().Format(time.RFC3339))
		q.Set("singleEvents", "true")
		q.Set("showDeleted", "false")
		q.Set("maxResults", "2500")
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}

		var resp struct {
			Items         []Event `json:"items"`
			NextPageToken string  `json:"nextPageToken"`
		}
		if err := c.do(ctx, http.MethodGet, c.eventsPath(), q, nil, &resp); err != nil {
			return fmt.Errorf("failed to list calendar events: %w", err)
		}
		for _, ev := range resp.Items {
			fn(ev)
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			return nil
		}
	}
}

// Insert creates an event without notifying attendees.
func (c *Client) Insert(ctx context.Context, ev *Event) (*Event, error) {
	q := url.Values{}
	q.Set("sendUpdates", "none")

	var created Event
	if err := c.do(ctx, http.MethodPost, c.eventsPath(), q, ev, &created); err != nil {
		return nil, fmt.Errorf("failed to insert calendar event: %w", err)
	}
	if created.ID == "" {
		return nil, fmt.Errorf("calendar insert returned no event id")
	}
	return &created, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
