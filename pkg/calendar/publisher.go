package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/mailscope/mailscope/ent"
	"github.com/mailscope/mailscope/ent/eventrecord"
	"github.com/mailscope/mailscope/pkg/extract"
)

const (
	// checkTTL is how long a cached publish-status check stays fresh.
	checkTTL = 24 * time.Hour

	// defaultDuration is used when the extraction has a start but no end.
	defaultDuration = 2 * time.Hour

	// reminderMinutes is one day; defaults are disabled so the user's
	// 10-minute popup settings don't apply to these events.
	reminderMinutes = 1440

	// statusWindowHorizon clamps the batch status-check window so one
	// far-future event can't force a multi-year listing.
	statusWindowHorizon = 366 * 24 * time.Hour
)

// ErrNotFound means no event metadata exists for the message.
var ErrNotFound = errors.New("event not found")

// ErrNotPublishable means the event is missing what publishing needs
// (not in succeeded state, or no date).
var ErrNotPublishable = errors.New("event not publishable")

// ICalUID derives the stable publish identity for a message. The domain
// doesn't need to exist; the UID only needs to be globally unique.
func ICalUID(messageID string) string {
	return fmt.Sprintf("mailscope-%s@mailscope.local", messageID)
}

// PublishResult is the outcome of a publish request.
type PublishResult struct {
	MessageID       string
	ICalUID         string
	AlreadyExisted  bool
	CalendarEventID string
	PublishedAt     *time.Time
}

// CheckResult is the outcome of an existence check.
type CheckResult struct {
	MessageID       string
	ICalUID         string
	Exists          bool
	CalendarEventID string
	CheckedAt       time.Time
}

// Publisher turns succeeded event extractions into calendar events and
// keeps the cached publish status fresh.
type Publisher struct {
	store           *extract.Store
	client          *Client
	defaultTimezone string
}

// NewPublisher wires a publisher. defaultTimezone backs events whose
// extraction carried no usable timezone.
func NewPublisher(store *extract.Store, client *Client, defaultTimezone string) *Publisher {
	if defaultTimezone == "" {
		defaultTimezone = "UTC"
	}
	return &Publisher{
		store:           store,
		client:          client,
		defaultTimezone: defaultTimezone,
	}
}

// Publish creates the calendar event for a message's extraction, unless
// an event with its iCalUID already exists, in which case only the
// cached status is refreshed.
func (p *Publisher) Publish(ctx context.Context, messageID string) (PublishResult, error) {
	rec, msg, err := p.store.EventForMessage(ctx, messageID)
	if err != nil {
		return PublishResult{}, err
	}
	if rec == nil {
		return PublishResult{}, ErrNotFound
	}
	if rec.Status != eventrecord.StatusSucceeded {
		return PublishResult{}, fmt.Errorf("%w: status is %s", ErrNotPublishable, rec.Status)
	}
	if rec.EventDate == nil {
		return PublishResult{}, fmt.Errorf("%w: event has no date", ErrNotPublishable)
	}

	uid := p.uidFor(rec, messageID)
	res := PublishResult{MessageID: messageID, ICalUID: uid}

	existing, err := p.client.FindByICalUID(ctx, uid)
	if err != nil {
		return res, err
	}
	if existing != nil {
		res.AlreadyExisted = true
		res.CalendarEventID = existing.ID
		if err := p.store.SetCalendarStatus(ctx, messageID, existing.ID, uid, false); err != nil {
			return res, err
		}
		return res, nil
	}

	body := p.buildEvent(rec, msg, uid)
	created, err := p.client.Insert(ctx, body)
	if err != nil {
		return res, err
	}

	res.CalendarEventID = created.ID
	now := time.Now().UTC()
	res.PublishedAt = &now
	if err := p.store.SetCalendarStatus(ctx, messageID, created.ID, uid, true); err != nil {
		return res, err
	}
	return res, nil
}

// Check looks up whether the message's event exists on the calendar and
// refreshes the cached status.
func (p *Publisher) Check(ctx context.Context, messageID string) (CheckResult, error) {
	rec, _, err := p.store.EventForMessage(ctx, messageID)
	if err != nil {
		return CheckResult{}, err
	}
	if rec == nil {
		return CheckResult{}, ErrNotFound
	}

	uid := p.uidFor(rec, messageID)
	existing, err := p.client.FindByICalUID(ctx, uid)
	if err != nil {
		return CheckResult{}, err
	}

	res := CheckResult{
		MessageID: messageID,
		ICalUID:   uid,
		CheckedAt: time.Now().UTC(),
	}
	eventID := ""
	if existing != nil {
		res.Exists = true
		res.CalendarEventID = existing.ID
		eventID = existing.ID
	}
	if err := p.store.SetCalendarStatus(ctx, messageID, eventID, uid, false); err != nil {
		return res, err
	}
	return res, nil
}

// SyncStatuses refreshes the cached calendar status for rows whose last
// check is missing or older than the TTL, using one windowed listing
// instead of a lookup per event. Best-effort: failures are logged and
// the upcoming view is served from the cache.
func (p *Publisher) SyncStatuses(ctx context.Context, rows []extract.FutureEvent) {
	now := time.Now().UTC()

	var stale []extract.FutureEvent
	for _, r := range rows {
		if r.CalendarCheckedAt == nil || now.Sub(*r.CalendarCheckedAt) > checkTTL {
			stale = append(stale, r)
		}
	}
	if len(stale) == 0 {
		return
	}

	timeMin := rows[0].EventDate
	timeMax := rows[0].EventDate
	for _, r := range rows {
		if r.EventDate.Before(timeMin) {
			timeMin = r.EventDate
		}
		if r.EventDate.After(timeMax) {
			timeMax = r.EventDate
		}
	}
	if horizon := now.Add(statusWindowHorizon); timeMax.After(horizon) {
		timeMax = horizon
	}
	timeMax = timeMax.AddDate(0, 0, 1)

	uidToEventID := map[string]string{}
	err := p.client.ListWindow(ctx, timeMin, timeMax, func(ev Event) {
		uid := strings.TrimSpace(ev.ICalUID)
		if uid != "" && ev.ID != "" {
			uidToEventID[uid] = ev.ID
		}
	})
	if err != nil {
		slog.Warn("Calendar status sync skipped", "error", err)
		return
	}

	for _, r := range stale {
		uid := ICalUID(r.MessageID)
		if r.CalendarIcalUID != nil && strings.TrimSpace(*r.CalendarIcalUID) != "" {
			uid = *r.CalendarIcalUID
		}
		err := p.store.SetCalendarStatus(ctx, r.MessageID, uidToEventID[uid], uid, false)
		if err != nil {
			slog.Warn("Failed to cache calendar status",
				"message_id", r.MessageID,
				"error", err)
		}
	}
}

func (p *Publisher) uidFor(rec *ent.EventRecord, messageID string) string {
	if rec.CalendarIcalUID != nil && strings.TrimSpace(*rec.CalendarIcalUID) != "" {
		return *rec.CalendarIcalUID
	}
	return ICalUID(messageID)
}

func (p *Publisher) buildEvent(rec *ent.EventRecord, msg *ent.EmailMessage, uid string) *Event {
	summary := ""
	if rec.EventName != nil {
		summary = strings.TrimSpace(*rec.EventName)
	}
	if summary == "" && msg.Subject != nil {
		summary = strings.TrimSpace(*msg.Subject)
	}
	if summary == "" {
		summary = "Event"
	}

	var desc []string
	if msg.Subject != nil && *msg.Subject != "" {
		desc = append(desc, fmt.Sprintf("Email subject: %s", *msg.Subject))
	}
	if msg.FromDomain != nil && *msg.FromDomain != "" {
		desc = append(desc, fmt.Sprintf("From domain: %s", *msg.FromDomain))
	}
	desc = append(desc, fmt.Sprintf("Mailscope message_id: %s", msg.ID))

	ev := &Event{
		Summary:     summary,
		Description: strings.Join(desc, "\n"),
		ICalUID:     uid,
		Reminders: &Reminders{
			UseDefault: false,
			Overrides: []ReminderOverride{
				{Method: "email", Minutes: reminderMinutes},
			},
		},
	}

	eventDate := *rec.EventDate
	startClock, hasStart := time.Duration(0), false
	if rec.StartTime != nil {
		startClock, hasStart = parseClock(*rec.StartTime)
	}
	if !hasStart {
		// No start time: publish as an all-day event.
		ev.Start = &EventTime{Date: eventDate.Format("2006-01-02")}
		ev.End = &EventTime{Date: eventDate.AddDate(0, 0, 1).Format("2006-01-02")}
		return ev
	}

	tzName := p.defaultTimezone
	if rec.Timezone != nil && strings.TrimSpace(*rec.Timezone) != "" {
		tzName = strings.TrimSpace(*rec.Timezone)
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		tzName = p.defaultTimezone
		if loc, err = time.LoadLocation(tzName); err != nil {
			tzName = "UTC"
			loc = time.UTC
		}
	}

	start := time.Date(eventDate.Year(), eventDate.Month(), eventDate.Day(), 0, 0, 0, 0, loc).
		Add(startClock)

	var end time.Time
	if rec.EndTime != nil {
		if endClock, ok := parseClock(*rec.EndTime); ok {
			end = time.Date(eventDate.Year(), eventDate.Month(), eventDate.Day(), 0, 0, 0, 0, loc).
				Add(endClock)
			if !end.After(start) {
				// Crosses midnight.
				end = end.AddDate(0, 0, 1)
			}
		}
	}
	if end.IsZero() {
		end = start.Add(defaultDuration)
	}

	ev.Start = &EventTime{DateTime: start.Format(time.RFC3339), TimeZone: tzName}
	ev.End = &EventTime{DateTime: end.Format(time.RFC3339), TimeZone: tzName}
	return ev
}

// parseClock parses HH:MM or HH:MM:SS into an offset from midnight.
func parseClock(s string) (time.Duration, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, true
}
