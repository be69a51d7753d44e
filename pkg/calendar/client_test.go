package calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByICalUID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/calendars/primary/events", r.URL.Path)
			assert.Equal(t, "mailscope-msg-1@mailscope.local", r.URL.Query().Get("iCalUID"))
			assert.Equal(t, "1", r.URL.Query().Get("maxResults"))
			_ = json.NewEncoder(w).Encode(map[string]any{
				"items": []map[string]any{
					{"id": "ev-1", "iCalUID": "mailscope-msg-1@mailscope.local"},
				},
			})
		}))
		defer srv.Close()

		c := NewClient(srv.Client(), "primary", WithBaseURL(srv.URL))
		ev, err := c.FindByICalUID(context.Background(), "mailscope-msg-1@mailscope.local")
		require.NoError(t, err)
		require.NotNil(t, ev)
		assert.Equal(t, "ev-1", ev.ID)
	})

	t.Run("absent", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"items": []map[string]any{}})
		}))
		defer srv.Close()

		c := NewClient(srv.Client(), "primary", WithBaseURL(srv.URL))
		ev, err := c.FindByICalUID(context.Background(), "missing")
		require.NoError(t, err)
		assert.Nil(t, ev)
	})

	t.Run("api error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error": "forbidden"}`, http.StatusForbidden)
		}))
		defer srv.Close()

		c := NewClient(srv.Client(), "primary", WithBaseURL(srv.URL))
		_, err := c.FindByICalUID(context.Background(), "uid")
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	})
}

func TestInsert(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "none", r.URL.Query().Get("sendUpdates"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body Event
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Hamlet", body.Summary)

		body.ID = "ev-created"
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), "primary", WithBaseURL(srv.URL))
	created, err := c.Insert(context.Background(), &Event{Summary: "Hamlet", ICalUID: "uid"})
	require.NoError(t, err)
	assert.Equal(t, "ev-created", created.ID)
}

func TestInsertMissingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"summary": "Hamlet"})
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), "primary", WithBaseURL(srv.URL))
	_, err := c.Insert(context.Background(), &Event{Summary: "Hamlet"})
	assert.Error(t, err)
}

func TestListWindowPaginates(t *testing.T) {
	var tokens []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("pageToken")
		tokens = append(tokens, token)
		if token == "" {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"items":         []map[string]any{{"id": "ev-1", "iCalUID": "uid-1"}},
				"nextPageToken": "page-2",
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{{"id": "ev-2", "iCalUID": "uid-2"}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), "primary", WithBaseURL(srv.URL))
	var seen []string
	err := c.ListWindow(context.Background(),
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		func(ev Event) { seen = append(seen, ev.ID) })
	require.NoError(t, err)
	assert.Equal(t, []string{"ev-1", "ev-2"}, seen)
	assert.Equal(t, []string{"", "page-2"}, tokens)
}

func TestCalendarIDEscaping(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.EscapedPath()
		_ = json.NewEncoder(w).Encode(map[string]any{"items": []map[string]any{}})
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), "team@example.com", WithBaseURL(srv.URL))
	_, err := c.FindByICalUID(context.Background(), "uid")
	require.NoError(t, err)
	assert.Equal(t, "/calendars/team@example.com/events", path)
}
