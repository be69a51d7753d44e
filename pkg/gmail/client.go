// Package gmail is a thin REST client for the Gmail API.
//
// Metadata ingestion uses users.messages.list (paged) plus
// users.messages.get with format=metadata; bodies are fetched only for
// representative samples and extraction. Archive semantics are "remove the
// INBOX label", not deletion.
package gmail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://gmail.googleapis.com/gmail/v1"

// Response size caps. List, metadata and label responses stay well under
// a megabyte; format=full payloads carry base64 message bodies and can
// legitimately run to tens of megabytes.
const (
	defaultResponseLimit = 1 << 20
	fullResponseLimit    = 64 << 20
)

// MetadataHeaders are the only headers requested during ingestion.
var MetadataHeaders = []string{"From", "To", "Cc", "Bcc", "Subject", "Date"}

// MessageMetadata is the ingestion view of a Gmail message.
type MessageMetadata struct {
	MessageID    string
	ThreadID     string
	Subject      string
	FromAddress  string
	ToAddresses  []string
	CcAddresses  []string
	BccAddresses []string
	IsUnread     bool
	InternalDate time.Time
	LabelIDs     []string
}

// Label is a Gmail label resource.
type Label struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// APIError is a non-2xx Gmail API response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gmail api error: status %d: %s", e.StatusCode, e.Body)
}

// Retryable reports whether the error is a transient provider failure
// (rate limit or server error) worth one inline retry.
func (e *APIError) Retryable() bool {
	switch e.StatusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// Client calls the Gmail API for a single user.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userID     string
	pageSize   int
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithPageSize sets the users.messages.list page size.
func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// NewClient creates a Gmail client over an authenticated HTTP client,
// typically from LoadCredentials().HTTPClient.
func NewClient(httpClient *http.Client, userID string, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		userID:     userID,
		pageSize:   500,
	}
	if c.userID == "" {
		c.userID = "me"
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListMessageIDs calls fn for every message id matching the query, in list
// order, following pagination. Spam and trash are included so trash sync
// sees TRASHED messages.
func (c *Client) ListMessageIDs(ctx context.Context, query string, fn func(id string) error) error {
	pageToken := ""
	for {
		q := url.Values{}
		q.Set("maxResults", strconv.Itoa(c.pageSize))
		q.Set("includeSpamTrash", "true")
		if query != "" {
			q.Set("q", query)
		}
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}

		var resp struct {
			Messages []struct {
				ID string `json:"id"`
			} `json:"messages"`
			NextPageToken string `json:"nextPageToken"`
		}
		if err := c.get(ctx, fmt.Sprintf("/users/%s/messages", url.PathEscape(c.userID)), q, &resp); err != nil {
			return fmt.Errorf("failed to list messages: %w", err)
		}

		for _, m := range resp.Messages {
			if m.ID == "" {
				continue
			}
			if err := fn(m.ID); err != nil {
				return err
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			return nil
		}
	}
}

// GetMessageMetadata fetches message metadata (format=metadata).
func (c *Client) GetMessageMetadata(ctx context.Context, messageID string) (*MessageMetadata, error) {
	q := url.Values{}
	q.Set("format", "metadata")
	for _, h := range MetadataHeaders {
		q.Add("metadataHeaders", h)
	}

	var raw rawMessage
	path := fmt.Sprintf("/users/%s/messages/%s", url.PathEscape(c.userID), url.PathEscape(messageID))
	if err := c.get(ctx, path, q, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch message %s: %w", messageID, err)
	}

	meta := &MessageMetadata{
		MessageID:    raw.ID,
		ThreadID:     raw.ThreadID,
		Subject:      raw.header("Subject"),
		FromAddress:  parseSingleAddress(raw.header("From")),
		ToAddresses:  parseAddressList(raw.header("To")),
		CcAddresses:  parseAddressList(raw.header("Cc")),
		BccAddresses: parseAddressList(raw.header("Bcc")),
		LabelIDs:     raw.LabelIDs,
	}
	for _, l := range raw.LabelIDs {
		if l == "UNREAD" {
			meta.IsUnread = true
			break
		}
	}
	if raw.InternalDate != "" {
		ms, err := strconv.ParseInt(raw.InternalDate, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("message %s has invalid internalDate %q: %w", messageID, raw.InternalDate, err)
		}
		meta.InternalDate = time.UnixMilli(ms).UTC()
	}
	return meta, nil
}

// ListLabels returns all labels on the account.
func (c *Client) ListLabels(ctx context.Context) ([]Label, error) {
	var resp struct {
		Labels []Label `json:"labels"`
	}
	if err := c.get(ctx, fmt.Sprintf("/users/%s/labels", url.PathEscape(c.userID)), nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}
	return resp.Labels, nil
}

// CreateLabel creates a user label with standard visibility.
func (c *Client) CreateLabel(ctx context.Context, name string) (*Label, error) {
	body := map[string]string{
		"name":                  name,
		"labelListVisibility":   "labelShow",
		"messageListVisibility": "show",
	}
	var label Label
	if err := c.post(ctx, fmt.Sprintf("/users/%s/labels", url.PathEscape(c.userID)), body, &label); err != nil {
		return nil, fmt.Errorf("failed to create label %q: %w", name, err)
	}
	return &label, nil
}

// UpdateLabel renames an existing label.
func (c *Client) UpdateLabel(ctx context.Context, labelID, name string) (*Label, error) {
	body := map[string]string{"id": labelID, "name": name}
	var label Label
	path := fmt.Sprintf("/users/%s/labels/%s", url.PathEscape(c.userID), url.PathEscape(labelID))
	if err := c.do(ctx, http.MethodPut, path, nil, body, &label, defaultResponseLimit); err != nil {
		return nil, fmt.Errorf("failed to update label %s: %w", labelID, err)
	}
	return &label, nil
}

// ModifyLabels adds/removes labels on a message. Passing "INBOX" in remove
// is the Gmail archive operation.
func (c *Client) ModifyLabels(ctx context.Context, messageID string, add, remove []string) error {
	body := map[string][]string{}
	if len(add) > 0 {
		body["addLabelIds"] = add
	}
	if len(remove) > 0 {
		body["removeLabelIds"] = remove
	}
	path := fmt.Sprintf("/users/%s/messages/%s/modify", url.PathEscape(c.userID), url.PathEscape(messageID))
	if err := c.post(ctx, path, body, nil); err != nil {
		return fmt.Errorf("failed to modify labels on %s: %w", messageID, err)
	}
	return nil
}

// TrashMessage moves a message to Trash.
func (c *Client) TrashMessage(ctx context.Context, messageID string) error {
	path := fmt.Sprintf("/users/%s/messages/%s/trash", url.PathEscape(c.userID), url.PathEscape(messageID))
	if err := c.post(ctx, path, nil, nil); err != nil {
		return fmt.Errorf("failed to trash %s: %w", messageID, err)
	}
	return nil
}

type rawMessage struct {
	ID           string   `json:"id"`
	ThreadID     string   `json:"threadId"`
	LabelIDs     []string `json:"labelIds"`
	InternalDate string   `json:"internalDate"`
	Snippet      string   `json:"snippet"`
	Payload      rawPart  `json:"payload"`
}

type rawPart struct {
	MimeType string `json:"mimeType"`
	Headers  []struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	} `json:"headers"`
	Body struct {
		Data string `json:"data"`
	} `json:"body"`
	Parts []rawPart `json:"parts"`
}

func (m *rawMessage) header(name string) string {
	for _, h := range m.Payload.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

func parseSingleAddress(value string) string {
	if value == "" {
		return ""
	}
	addr, err := mail.ParseAddress(value)
	if err != nil {
		// Keep the raw value; from_domain parsing copes with junk.
		return value
	}
	return addr.Address
}

func parseAddressList(value string) []string {
	if value == "" {
		return nil
	}
	addrs, err := mail.ParseAddressList(value)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		if a.Address != "" {
			out = append(out, a.Address)
		}
	}
	return out
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out, defaultResponseLimit)
}

// getFull is get with the large response cap, for format=full fetches.
func (c *Client) getFull(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out, fullResponseLimit)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out, defaultResponseLimit)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, maxResponse int64) error {
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

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponse))
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
