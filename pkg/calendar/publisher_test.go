package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailscope/mailscope/ent"
)

func TestICalUID(t *testing.T) {
	assert.Equal(t, "mailscope-abc123@mailscope.local", ICalUID("abc123"))
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
		ok       bool
	}{
		{"19:30", 19*time.Hour + 30*time.Minute, true},
		{"00:00", 0, true},
		{"9:05", 9*time.Hour + 5*time.Minute, true},
		{"19:30:00", 19*time.Hour + 30*time.Minute, true},
		{"24:00", 0, false},
		{"19:60", 0, false},
		{"19", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, ok := parseClock(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, d)
			}
		})
	}
}

func strPtr(s string) *string { return &s }

func testMessage() *ent.EmailMessage {
	return &ent.EmailMessage{
		ID:         "msg-1",
		Subject:    strPtr("Your tickets for Hamlet"),
		FromDomain: strPtr("tickets.example.com"),
	}
}

func TestBuildEventTimed(t *testing.T) {
	p := &Publisher{defaultTimezone: "UTC"}
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	rec := &ent.EventRecord{
		EventName: strPtr("Hamlet"),
		EventDate: &date,
		StartTime: strPtr("19:30"),
	}

	ev := p.buildEvent(rec, testMessage(), ICalUID("msg-1"))

	assert.Equal(t, "Hamlet", ev.Summary)
	assert.Equal(t, "mailscope-msg-1@mailscope.local", ev.ICalUID)
	assert.Equal(t,
		"Email subject: Your tickets for Hamlet\n"+
			"From domain: tickets.example.com\n"+
			"Mailscope message_id: msg-1",
		ev.Description)

	require.NotNil(t, ev.Start)
	require.NotNil(t, ev.End)
	assert.Equal(t, "2026-09-01T19:30:00Z", ev.Start.DateTime)
	assert.Equal(t, "UTC", ev.Start.TimeZone)
	// No end time: default two-hour duration.
	assert.Equal(t, "2026-09-01T21:30:00Z", ev.End.DateTime)

	require.NotNil(t, ev.Reminders)
	assert.False(t, ev.Reminders.UseDefault)
	require.Len(t, ev.Reminders.Overrides, 1)
	assert.Equal(t, "email", ev.Reminders.Overrides[0].Method)
	assert.Equal(t, 1440, ev.Reminders.Overrides[0].Minutes)
}

func TestBuildEventCrossesMidnight(t *testing.T) {
	p := &Publisher{defaultTimezone: "UTC"}
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	rec := &ent.EventRecord{
		EventName: strPtr("Late show"),
		EventDate: &date,
		StartTime: strPtr("23:30"),
		EndTime:   strPtr("01:00"),
	}

	ev := p.buildEvent(rec, testMessage(), ICalUID("msg-1"))

	require.NotNil(t, ev.End)
	assert.Equal(t, "2026-09-01T23:30:00Z", ev.Start.DateTime)
	assert.Equal(t, "2026-09-02T01:00:00Z", ev.End.DateTime)
}

func TestBuildEventAllDay(t *testing.T) {
	p := &Publisher{defaultTimezone: "UTC"}
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	rec := &ent.EventRecord{
		EventName: strPtr("Festival"),
		EventDate: &date,
	}

	ev := p.buildEvent(rec, testMessage(), ICalUID("msg-1"))

	require.NotNil(t, ev.Start)
	require.NotNil(t, ev.End)
	assert.Equal(t, "2026-09-01", ev.Start.Date)
	assert.Equal(t, "2026-09-02", ev.End.Date)
	assert.Empty(t, ev.Start.DateTime)
}

func TestBuildEventSummaryFallback(t *testing.T) {
	p := &Publisher{defaultTimezone: "UTC"}
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// No event name: subject is used.
	ev := p.buildEvent(&ent.EventRecord{EventDate: &date}, testMessage(), "uid")
	assert.Equal(t, "Your tickets for Hamlet", ev.Summary)

	// No name and no subject: generic title.
	ev = p.buildEvent(&ent.EventRecord{EventDate: &date}, &ent.EmailMessage{ID: "msg-2"}, "uid")
	assert.Equal(t, "Event", ev.Summary)
	assert.Equal(t, "Mailscope message_id: msg-2", ev.Description)
}

func TestBuildEventBadTimezoneFallsBack(t *testing.T) {
	p := &Publisher{defaultTimezone: "UTC"}
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	rec := &ent.EventRecord{
		EventDate: &date,
		StartTime: strPtr("10:00"),
		Timezone:  strPtr("Not/AZone"),
	}

	ev := p.buildEvent(rec, testMessage(), "uid")
	assert.Equal(t, "UTC", ev.Start.TimeZone)
	assert.Equal(t, "2026-09-01T10:00:00Z", ev.Start.DateTime)
}
