package gmail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMessageBodyLargePayload(t *testing.T) {
	// A format=full response bigger than the small list/metadata cap must
	// still decode; truncating it mid-JSON would fail extraction for the
	// message permanently.
	big := strings.Repeat("x", 2<<20)
	encoded := base64.URLEncoding.EncodeToString([]byte(big))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/me/messages/msg-big", r.URL.Path)
		require.Equal(t, "full", r.URL.Query().Get("format"))
		resp := map[string]any{
			"id": "msg-big",
			"payload": map[string]any{
				"mimeType": "text/plain",
				"body":     map[string]any{"data": encoded},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), "me", WithBaseURL(srv.URL))
	body, err := c.GetMessageBody(context.Background(), "msg-big", 0)
	require.NoError(t, err)
	assert.Len(t, body, DefaultBodyMaxChars)
	assert.Equal(t, strings.Repeat("x", DefaultBodyMaxChars), body)
}

func TestGetMessageMetadataHeaderFold(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"id":           "msg-1",
			"threadId":     "thr-1",
			"labelIds":     []string{"INBOX", "UNREAD"},
			"internalDate": "1756000000000",
			"payload": map[string]any{
				"headers": []map[string]string{
					{"name": "subject", "value": "Quarterly statement"},
					{"name": "FROM", "value": "Billing <billing@example.com>"},
				},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), "me", WithBaseURL(srv.URL))
	meta, err := c.GetMessageMetadata(context.Background(), "msg-1")
	require.NoError(t, err)
	assert.Equal(t, "Quarterly statement", meta.Subject)
	assert.Equal(t, "billing@example.com", meta.FromAddress)
	assert.True(t, meta.IsUnread)
}

func TestDoAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": "rate limit"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), "me", WithBaseURL(srv.URL))
	_, err := c.ListLabels(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.True(t, apiErr.Retryable())
}
