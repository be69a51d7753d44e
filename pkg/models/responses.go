// Package models contains API request/response models.
package models

import (
	"time"

	"github.com/mailscope/mailscope/pkg/extract"
)

// StatusResponse summarizes pipeline state for the dashboard.
type StatusResponse struct {
	Phase              string     `json:"phase"`
	Checkpoint         *time.Time `json:"checkpoint,omitempty"`
	LatestInternalDate *time.Time `json:"latest_internal_date,omitempty"`
	TotalMessages      int        `json:"total_messages"`
	LabelledMessages   int        `json:"labelled_messages"`
	UnlabelledMessages int        `json:"unlabelled_messages"`
	Clusters           int        `json:"clusters"`
	PendingArchive     int        `json:"pending_archive"`
}

// FutureEventResponse is one upcoming event row.
type FutureEventResponse struct {
	MessageID       string     `json:"message_id"`
	Subject         *string    `json:"subject,omitempty"`
	FromDomain      *string    `json:"from_domain,omitempty"`
	EventName       *string    `json:"event_name,omitempty"`
	EventType       *string    `json:"event_type,omitempty"`
	EventDate       string     `json:"event_date"`
	StartTime       *string    `json:"start_time,omitempty"`
	EndTime         *string    `json:"end_time,omitempty"`
	EndTimeInferred bool       `json:"end_time_inferred"`
	Timezone        *string    `json:"timezone,omitempty"`
	Confidence      *float64   `json:"confidence,omitempty"`
	Hidden          bool       `json:"hidden"`
	CalendarEventID *string    `json:"calendar_event_id,omitempty"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
}

// FutureEventFrom converts a store row into its response shape.
func FutureEventFrom(ev extract.FutureEvent) FutureEventResponse {
	return FutureEventResponse{
		MessageID:       ev.MessageID,
		Subject:         ev.Subject,
		FromDomain:      ev.FromDomain,
		EventName:       ev.EventName,
		EventType:       ev.EventType,
		EventDate:       ev.EventDate.Format("2006-01-02"),
		StartTime:       ev.StartTime,
		EndTime:         ev.EndTime,
		EndTimeInferred: ev.EndTimeInferred,
		Timezone:        ev.Timezone,
		Confidence:      ev.Confidence,
		Hidden:          ev.HiddenAt != nil,
		CalendarEventID: ev.CalendarEventID,
		PublishedAt:     ev.PublishedAt,
	}
}

// PaymentResponse is one recent payment row.
type PaymentResponse struct {
	MessageID    string     `json:"message_id"`
	Subject      *string    `json:"subject,omitempty"`
	FromDomain   *string    `json:"from_domain,omitempty"`
	VendorName   *string    `json:"vendor_name,omitempty"`
	ItemName     *string    `json:"item_name,omitempty"`
	Amount       string     `json:"amount"`
	Currency     *string    `json:"currency,omitempty"`
	PaymentDate  string     `json:"payment_date"`
	IsRecurring  *bool      `json:"is_recurring,omitempty"`
	Frequency    *string    `json:"frequency,omitempty"`
	Category     *string    `json:"category,omitempty"`
	InternalDate *time.Time `json:"internal_date,omitempty"`
}

// PaymentFrom converts a store row into its response shape.
func PaymentFrom(p extract.RecentPayment) PaymentResponse {
	return PaymentResponse{
		MessageID:    p.MessageID,
		Subject:      p.Subject,
		FromDomain:   p.FromDomain,
		VendorName:   p.VendorName,
		ItemName:     p.ItemName,
		Amount:       p.CostAmount.StringFixed(2),
		Currency:     p.CostCurrency,
		PaymentDate:  p.PaymentDate.Format("2006-01-02"),
		IsRecurring:  p.IsRecurring,
		Frequency:    p.Frequency,
		Category:     p.ItemCategory,
		InternalDate: p.InternalDate,
	}
}

// PaymentSummaryResponse bundles analytics with the recent payment list.
type PaymentSummaryResponse struct {
	Months          int                       `json:"months"`
	Currency        string                    `json:"currency"`
	OtherCurrencies []string                  `json:"other_currencies,omitempty"`
	Analytics       *extract.PaymentAnalytics `json:"analytics"`
	Payments        []PaymentResponse         `json:"payments"`
}

// PublishResponse reports a calendar publish or check outcome.
type PublishResponse struct {
	MessageID       string     `json:"message_id"`
	ICalUID         string     `json:"ical_uid"`
	CalendarEventID string     `json:"calendar_event_id,omitempty"`
	AlreadyExisted  bool       `json:"already_existed"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
}
