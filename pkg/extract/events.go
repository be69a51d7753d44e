// Package extract runs LLM-backed metadata extraction over labelled
// messages: calendar events from ticket/booking mail and payments from
// receipts and invoices. Extraction is best-effort; per-message failures
// are recorded on the metadata row, never aborting a batch.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mailscope/mailscope/pkg/llm"
)

// EventPromptVersion is stamped on every extracted row so prompt changes
// can be re-run selectively.
const EventPromptVersion = "event-extract-v2"

// promptBodyMax bounds the body text embedded in a prompt. Callers trim
// earlier; this is the hard cap.
const promptBodyMax = 20000

// canonicalEventTypes is the closed set the prompt asks for. Anything
// else maps through the synonym table or falls back to Other.
var canonicalEventTypes = map[string]struct{}{
	"Theatre": {}, "Comedy": {}, "Opera": {}, "Ballet": {},
	"Cinema": {}, "Social": {}, "Other": {},
}

var eventTypeSynonyms = map[string]string{
	"theatre": "Theatre",
	"theater": "Theatre",
	"comedy":  "Comedy",
	"opera":   "Opera",
	"ballet":  "Ballet",
	"cinema":  "Cinema",
	"movie":   "Cinema",
	"film":    "Cinema",
	"social":  "Social",
	"other":   "Other",

	// Buckets from earlier prompt revisions, folded into the closest
	// current value.
	"concert":     "Other",
	"gig":         "Other",
	"music":       "Other",
	"sports":      "Other",
	"sport":       "Other",
	"travel":      "Other",
	"meeting":     "Other",
	"appointment": "Other",
	"dinner":      "Social",
	"restaurant":  "Social",
	"party":       "Social",
}

// eventDurationMinutes backs end-time inference when the email gives a
// start but no end. Theatre listings in particular tend to state doors
// or curtain time only.
var eventDurationMinutes = map[string]int{
	"theatre": 150,
	"comedy":  120,
	"opera":   210,
	"ballet":  180,
	"cinema":  130,
	"social":  120,
	"other":   120,
}

// NormalizeEventType maps a model-provided event type onto the canonical
// set. Unmappable values become "Other" rather than leaking free-form
// strings into the database; blank input returns "".
func NormalizeEventType(value string) string {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return ""
	}
	if _, ok := canonicalEventTypes[raw]; ok {
		return raw
	}
	if mapped, ok := eventTypeSynonyms[strings.ToLower(raw)]; ok {
		return mapped
	}
	return "Other"
}

// parseClock parses HH:MM or HH:MM:SS into minutes since midnight.
// Seconds are validated and dropped.
func parseClock(s string) (int, bool) {
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
	if len(parts) == 3 {
		sec, err := strconv.Atoi(parts[2])
		if err != nil || sec < 0 || sec > 59 {
			return 0, false
		}
	}
	return h*60 + m, true
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// InferEndTime guesses an end time from the start time and coarse event
// type. The result may roll past midnight; the stored date stays the
// event date. Returns ok=false when the start time is unparseable.
func InferEndTime(eventType, startTime string) (string, bool) {
	start, ok := parseClock(startTime)
	if !ok {
		return "", false
	}
	key := strings.ToLower(strings.TrimSpace(eventType))
	minutes, ok := eventDurationMinutes[key]
	if !ok {
		minutes = eventDurationMinutes["other"]
	}
	return formatClock((start + minutes) % (24 * 60)), true
}

// EventInput is the per-message context handed to the extractor.
type EventInput struct {
	Subject      string
	FromDomain   string
	InternalDate *time.Time
	Body         string
}

// EventResult is a normalized extraction ready for persistence. Nil
// pointers mean the model returned nothing usable for that field.
type EventResult struct {
	EventName       *string
	EventType       *string
	EventDate       *time.Time
	StartTime       *string
	EndTime         *string
	Timezone        *string
	EndTimeInferred bool
	Confidence      *float64
	Notes           *string
	RawJSON         string
	Model           string
	PromptVersion   string
}

// HasEvent reports whether the extraction found anything worth keeping.
func (r EventResult) HasEvent() bool {
	return r.EventName != nil || r.EventDate != nil || r.StartTime != nil
}

// EventExtractor turns email bodies into calendar event metadata via a
// single model call per message.
type EventExtractor struct {
	llm   *llm.Client
	Model string
}

// NewEventExtractor wires an event extractor for the given model.
func NewEventExtractor(client *llm.Client, model string) *EventExtractor {
	return &EventExtractor{llm: client, Model: model}
}

func buildEventPrompt(in EventInput) string {
	body := strings.TrimSpace(in.Body)
	if len(body) > promptBodyMax {
		body = body[:promptBodyMax]
	}
	receivedAt := ""
	if in.InternalDate != nil {
		receivedAt = in.InternalDate.UTC().Format(time.RFC3339)
	}

	var b strings.Builder
	b.WriteString("You are an assistant that extracts calendar event details from emails.\n")
	b.WriteString("Your job is to identify whether this email contains details for a single event (tickets, bookings, reservations, appointments).\n\n")
	b.WriteString("Return ONLY valid JSON. No markdown. No code fences. No commentary.\n")
	b.WriteString("If the email does not describe an event, return JSON with event_name/event_date/start_time/end_time all null and confidence <= 0.2.\n\n")
	b.WriteString("Extract these fields:\n")
	b.WriteString("- event_name: string|null (a concise human title)\n")
	b.WriteString("- event_date: string|null in ISO date format YYYY-MM-DD\n")
	b.WriteString("- start_time: string|null in 24h time HH:MM\n")
	b.WriteString("- end_time: string|null in 24h time HH:MM (if unknown, set null)\n")
	b.WriteString("- timezone: string|null (prefer IANA name like 'Europe/London'; else offset like '+01:00')\n")
	b.WriteString("- event_type: string|null chosen from {Theatre, Comedy, Opera, Ballet, Cinema, Social, Other}\n")
	b.WriteString("- confidence: number 0..1\n")
	b.WriteString("- notes: string|null (brief, only if ambiguous)\n\n")
	b.WriteString("Rules:\n")
	b.WriteString("- Use only information supported by the email content.\n")
	b.WriteString("- Do not invent an end_time. If not present, set end_time to null (it may be inferred later by the system).\n")
	b.WriteString("- If you choose an event_type, it MUST be exactly one of the allowed values (case-sensitive).\n")
	b.WriteString("- If multiple events are present, pick the most prominent one and mention that in notes.\n\n")
	fmt.Fprintf(&b, "Context hints (may be missing): subject=%q, from_domain=%q, received_at=%q.\n\n",
		strings.TrimSpace(in.Subject), strings.TrimSpace(in.FromDomain), receivedAt)
	b.WriteString("Email body:\n---\n")
	b.WriteString(body)
	b.WriteString("\n---\n")
	return b.String()
}

// Extract runs one model call and normalizes the response. End times are
// inferred (and flagged as such) only when the model gave a date and a
// start but no end.
func (x *EventExtractor) Extract(ctx context.Context, in EventInput) (EventResult, error) {
	raw, err := x.llm.Generate(ctx, x.Model, buildEventPrompt(in))
	if err != nil {
		return EventResult{}, fmt.Errorf("event extraction model call failed: %w", err)
	}
	obj, err := firstJSONObject(raw)
	if err != nil {
		return EventResult{}, err
	}
	rawJSON, err := json.Marshal(obj)
	if err != nil {
		return EventResult{}, fmt.Errorf("failed to re-encode model output: %w", err)
	}

	res := EventResult{
		RawJSON:       string(rawJSON),
		Model:         x.Model,
		PromptVersion: EventPromptVersion,
	}
	res.EventName = stringField(obj, "event_name")
	if t := stringField(obj, "event_type"); t != nil {
		if n := NormalizeEventType(*t); n != "" {
			res.EventType = &n
		}
	}
	if d := stringField(obj, "event_date"); d != nil {
		if ts, err := time.ParseInLocation("2006-01-02", *d, time.UTC); err == nil {
			res.EventDate = &ts
		}
	}
	if s := stringField(obj, "start_time"); s != nil {
		if min, ok := parseClock(*s); ok {
			v := formatClock(min)
			res.StartTime = &v
		}
	}
	if s := stringField(obj, "end_time"); s != nil {
		if min, ok := parseClock(*s); ok {
			v := formatClock(min)
			res.EndTime = &v
		}
	}
	res.Timezone = stringField(obj, "timezone")
	res.Confidence = floatField(obj, "confidence")
	res.Notes = stringField(obj, "notes")

	if res.EndTime == nil && res.EventDate != nil && res.StartTime != nil {
		eventType := ""
		if res.EventType != nil {
			eventType = *res.EventType
		}
		if end, ok := InferEndTime(eventType, *res.StartTime); ok {
			res.EndTime = &end
			res.EndTimeInferred = true
		}
	}
	return res, nil
}
