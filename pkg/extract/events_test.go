package extract

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEventType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"canonical passes through", "Theatre", "Theatre"},
		{"american spelling", "theater", "Theatre"},
		{"movie maps to cinema", "Movie", "Cinema"},
		{"film maps to cinema", "film", "Cinema"},
		{"legacy concert folds to other", "Concert", "Other"},
		{"legacy dinner folds to social", "dinner", "Social"},
		{"legacy travel folds to other", "Travel", "Other"},
		{"unmappable becomes other", "Quiz Night Extravaganza", "Other"},
		{"blank stays blank", "   ", ""},
		{"case-sensitive canonical only", "theatre", "Theatre"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeEventType(tt.input))
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		minutes int
		ok      bool
	}{
		{"19:30", 19*60 + 30, true},
		{"9:05", 9*60 + 5, true},
		{"00:00", 0, true},
		{"23:59", 23*60 + 59, true},
		{"19:30:45", 19*60 + 30, true},
		{" 12:00 ", 12 * 60, true},
		{"24:00", 0, false},
		{"19:60", 0, false},
		{"19", 0, false},
		{"7pm", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			min, ok := parseClock(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.minutes, min)
			}
		})
	}
}

func TestInferEndTime(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		start     string
		end       string
		ok        bool
	}{
		{"theatre runs 150 minutes", "Theatre", "19:30", "22:00", true},
		{"comedy runs 120 minutes", "comedy", "20:00", "22:00", true},
		{"opera runs 210 minutes", "Opera", "18:00", "21:30", true},
		{"unknown type uses default", "Quiz", "10:00", "12:00", true},
		{"empty type uses default", "", "10:00", "12:00", true},
		{"rolls past midnight", "Social", "23:30", "01:30", true},
		{"bad start time", "Theatre", "soon", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end, ok := InferEndTime(tt.eventType, tt.start)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestEventResultHasEvent(t *testing.T) {
	name := "Hamlet"
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	start := "19:30"

	assert.False(t, EventResult{}.HasEvent())
	assert.True(t, EventResult{EventName: &name}.HasEvent())
	assert.True(t, EventResult{EventDate: &date}.HasEvent())
	assert.True(t, EventResult{StartTime: &start}.HasEvent())

	conf := 0.1
	assert.False(t, EventResult{Confidence: &conf}.HasEvent())
}

func TestBuildEventPrompt(t *testing.T) {
	received := time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC)
	prompt := buildEventPrompt(EventInput{
		Subject:      "Your tickets for Hamlet",
		FromDomain:   "tickets.example.com",
		InternalDate: &received,
		Body:         "Doors open 19:00, curtain 19:30.",
	})

	assert.Contains(t, prompt, `subject="Your tickets for Hamlet"`)
	assert.Contains(t, prompt, `from_domain="tickets.example.com"`)
	assert.Contains(t, prompt, `received_at="2026-08-20T10:30:00Z"`)
	assert.Contains(t, prompt, "Doors open 19:00")
	assert.Contains(t, prompt, "Return ONLY valid JSON")
}

func TestBuildEventPromptTruncatesBody(t *testing.T) {
	prompt := buildEventPrompt(EventInput{Body: strings.Repeat("x", promptBodyMax+5000)})
	assert.Less(t, len(prompt), promptBodyMax+3000)
	assert.Equal(t, promptBodyMax, strings.Count(prompt, "x"))
}
