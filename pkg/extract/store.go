package extract

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mailscope/mailscope/ent"
	"github.com/mailscope/mailscope/ent/eventrecord"
	"github.com/mailscope/mailscope/ent/paymentrecord"
	"github.com/mailscope/mailscope/pkg/database"
)

// Store persists extraction metadata and answers the read queries built
// on it (future events, spend analytics). Candidate selection and the
// analytics joins are raw SQL; row-level writes go through ent.
type Store struct {
	db *database.Client
}

// NewStore creates an extraction metadata store.
func NewStore(db *database.Client) *Store {
	return &Store{db: db}
}

// Candidate is a message eligible for extraction.
type Candidate struct {
	MessageID    string
	Subject      *string
	FromDomain   *string
	InternalDate *time.Time
}

const maxCandidateLimit = 200000

func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > maxCandidateLimit {
		return maxCandidateLimit
	}
	return limit
}

// Candidate selection treats any existing metadata row as processed:
// failed rows are not retried until a re-run resets them, and no_event /
// no_payment outcomes are remembered so quiet messages aren't re-asked.

const eventCandidatesSQL = `
SELECT em.message_id, em.subject, em.from_domain, em.internal_date
FROM email_messages em
WHERE em.category = $1
  AND ($2 = '' OR em.subcategory = $2)
  AND em.internal_date >= $3
  AND em.lifecycle_state = 'active'
  AND NOT EXISTS (
    SELECT 1 FROM message_event_metadata meta
    WHERE meta.message_id = em.message_id
  )
ORDER BY em.internal_date ASC, em.message_id ASC
LIMIT $4`

// EventCandidates lists messages in a category (and subcategory, when
// non-empty) received since the given time that have no event metadata
// yet.
func (s *Store) EventCandidates(ctx context.Context, category, subcategory string, since time.Time, limit int) ([]Candidate, error) {
	rows, err := s.db.DB().QueryContext(ctx, eventCandidatesSQL, category, subcategory, since, clampLimit(limit, 500))
	if err != nil {
		return nil, fmt.Errorf("failed to list event extraction candidates: %w", err)
	}
	return scanCandidates(rows)
}

const paymentCandidatesInCategorySQL = `
SELECT em.message_id, em.subject, em.from_domain, em.internal_date
FROM email_messages em
WHERE em.category = $1
  AND em.lifecycle_state = 'active'
  AND NOT EXISTS (
    SELECT 1 FROM message_payment_metadata meta
    WHERE meta.message_id = em.message_id
  )
ORDER BY em.internal_date ASC, em.message_id ASC
LIMIT $2`

// PaymentCandidatesInCategory lists unprocessed messages in a category,
// any subcategory, regardless of age.
func (s *Store) PaymentCandidatesInCategory(ctx context.Context, category string, limit int) ([]Candidate, error) {
	rows, err := s.db.DB().QueryContext(ctx, paymentCandidatesInCategorySQL, category, clampLimit(limit, 500))
	if err != nil {
		return nil, fmt.Errorf("failed to list payment candidates by category: %w", err)
	}
	return scanCandidates(rows)
}

const paymentCandidatesSinceSQL = `
SELECT em.message_id, em.subject, em.from_domain, em.internal_date
FROM email_messages em
WHERE em.internal_date >= $1
  AND em.lifecycle_state = 'active'
  AND NOT EXISTS (
    SELECT 1 FROM message_payment_metadata meta
    WHERE meta.message_id = em.message_id
  )
ORDER BY em.internal_date ASC, em.message_id ASC
LIMIT $2`

// PaymentCandidatesSince lists unprocessed messages received since the
// given time, across all categories. Receipts often land outside the
// Financial bucket, so recency complements the category query.
func (s *Store) PaymentCandidatesSince(ctx context.Context, since time.Time, limit int) ([]Candidate, error) {
	rows, err := s.db.DB().QueryContext(ctx, paymentCandidatesSinceSQL, since, clampLimit(limit, 5000))
	if err != nil {
		return nil, fmt.Errorf("failed to list payment candidates by recency: %w", err)
	}
	return scanCandidates(rows)
}

func scanCandidates(rows *sql.Rows) ([]Candidate, error) {
	defer func() { _ = rows.Close() }()

	var out []Candidate
	for rows.Next() {
		var (
			c            Candidate
			subject      sql.NullString
			fromDomain   sql.NullString
			internalDate sql.NullTime
		)
		if err := rows.Scan(&c.MessageID, &subject, &fromDomain, &internalDate); err != nil {
			return nil, fmt.Errorf("failed to scan extraction candidate: %w", err)
		}
		if subject.Valid {
			c.Subject = &subject.String
		}
		if fromDomain.Valid {
			c.FromDomain = &fromDomain.String
		}
		if internalDate.Valid {
			t := internalDate.Time
			c.InternalDate = &t
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read extraction candidates: %w", err)
	}
	return out, nil
}

// UpsertEvent writes the outcome of one event extraction, keyed by
// message id so re-extraction replaces in place. Unset result fields
// overwrite to NULL, clearing stale values from earlier runs. Returns
// whether a new row was inserted.
func (s *Store) UpsertEvent(ctx context.Context, messageID string, status eventrecord.Status, res EventResult, errMsg *string) (bool, error) {
	existed, err := s.db.EventRecord.Query().
		Where(eventrecord.ID(messageID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check event metadata for %s: %w", messageID, err)
	}

	create := s.db.EventRecord.Create().
		SetID(messageID).
		SetStatus(status).
		SetEndTimeInferred(res.EndTimeInferred).
		SetExtractedAt(time.Now().UTC()).
		SetNillableError(errMsg).
		SetNillableEventName(res.EventName).
		SetNillableEventType(res.EventType).
		SetNillableEventDate(res.EventDate).
		SetNillableStartTime(res.StartTime).
		SetNillableEndTime(res.EndTime).
		SetNillableTimezone(res.Timezone).
		SetNillableConfidence(res.Confidence)
	if res.Model != "" {
		create.SetModel(res.Model)
	}
	if res.PromptVersion != "" {
		create.SetPromptVersion(res.PromptVersion)
	}
	if res.RawJSON != "" {
		create.SetRawJSON(res.RawJSON)
	}

	err = create.
		OnConflictColumns(eventrecord.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to upsert event metadata for %s: %w", messageID, err)
	}
	return !existed, nil
}

// UpsertPayment writes the outcome of one payment extraction, keyed by
// message id. Returns whether a new row was inserted.
func (s *Store) UpsertPayment(ctx context.Context, messageID string, status paymentrecord.Status, res PaymentResult, errMsg *string) (bool, error) {
	existed, err := s.db.PaymentRecord.Query().
		Where(paymentrecord.ID(messageID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check payment metadata for %s: %w", messageID, err)
	}

	create := s.db.PaymentRecord.Create().
		SetID(messageID).
		SetStatus(status).
		SetExtractedAt(time.Now().UTC()).
		SetNillableError(errMsg).
		SetNillableItemName(res.ItemName).
		SetNillableVendorName(res.VendorName).
		SetNillableItemCategory(res.ItemCategory).
		SetNillableCostAmount(res.CostAmount).
		SetNillableCostCurrency(res.CostCurrency).
		SetNillableIsRecurring(res.IsRecurring).
		SetNillableFrequency(res.Frequency).
		SetNillablePaymentDate(res.PaymentDate).
		SetNillablePaymentFingerprint(res.Fingerprint).
		SetNillableConfidence(res.Confidence)
	if res.Model != "" {
		create.SetModel(res.Model)
	}
	if res.PromptVersion != "" {
		create.SetPromptVersion(res.PromptVersion)
	}
	if res.RawJSON != "" {
		create.SetRawJSON(res.RawJSON)
	}

	err = create.
		OnConflictColumns(paymentrecord.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to upsert payment metadata for %s: %w", messageID, err)
	}
	return !existed, nil
}

// FutureEvent is one upcoming event joined with its source message.
type FutureEvent struct {
	MessageID         string
	EventName         *string
	EventType         *string
	EventDate         time.Time
	StartTime         *string
	EndTime           *string
	Timezone          *string
	EndTimeInferred   bool
	Confidence        *float64
	CalendarEventID   *string
	CalendarIcalUID   *string
	CalendarCheckedAt *time.Time
	PublishedAt       *time.Time
	HiddenAt          *time.Time
	Subject           *string
	FromDomain        *string
	InternalDate      *time.Time
}

const futureEventsSQL = `
SELECT
    meta.message_id,
    meta.event_name,
    meta.event_type,
    meta.event_date,
    meta.start_time,
    meta.end_time,
    meta.timezone,
    meta.end_time_inferred,
    meta.confidence,
    meta.calendar_event_id,
    meta.calendar_ical_uid,
    meta.calendar_checked_at,
    meta.published_at,
    meta.hidden_at,
    em.subject,
    em.from_domain,
    em.internal_date
FROM message_event_metadata meta
JOIN email_messages em ON em.message_id = meta.message_id
WHERE meta.status = 'succeeded'
  AND meta.event_date >= CURRENT_DATE
  AND em.lifecycle_state = 'active'
  AND ($1 OR meta.hidden_at IS NULL)
ORDER BY meta.event_date ASC, meta.start_time ASC NULLS LAST, em.internal_date ASC
LIMIT $2`

// ListFutureEvents returns upcoming extracted events, soonest first.
// Hidden events are excluded unless includeHidden is set.
func (s *Store) ListFutureEvents(ctx context.Context, includeHidden bool, limit int) ([]FutureEvent, error) {
	rows, err := s.db.DB().QueryContext(ctx, futureEventsSQL, includeHidden, clampLimit(limit, 200))
	if err != nil {
		return nil, fmt.Errorf("failed to list future events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []FutureEvent
	for rows.Next() {
		var (
			ev                FutureEvent
			eventName         sql.NullString
			eventType         sql.NullString
			startTime         sql.NullString
			endTime           sql.NullString
			timezone          sql.NullString
			confidence        sql.NullFloat64
			calendarEventID   sql.NullString
			calendarIcalUID   sql.NullString
			calendarCheckedAt sql.NullTime
			publishedAt       sql.NullTime
			hiddenAt          sql.NullTime
			subject           sql.NullString
			fromDomain        sql.NullString
			internalDate      sql.NullTime
		)
		err := rows.Scan(
			&ev.MessageID, &eventName, &eventType, &ev.EventDate,
			&startTime, &endTime, &timezone, &ev.EndTimeInferred,
			&confidence, &calendarEventID, &calendarIcalUID, &calendarCheckedAt,
			&publishedAt, &hiddenAt, &subject, &fromDomain, &internalDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan future event: %w", err)
		}
		ev.EventName = nullableString(eventName)
		ev.EventType = nullableString(eventType)
		ev.StartTime = nullableString(startTime)
		ev.EndTime = nullableString(endTime)
		ev.Timezone = nullableString(timezone)
		if confidence.Valid {
			ev.Confidence = &confidence.Float64
		}
		ev.CalendarEventID = nullableString(calendarEventID)
		ev.CalendarIcalUID = nullableString(calendarIcalUID)
		ev.CalendarCheckedAt = nullableTime(calendarCheckedAt)
		ev.PublishedAt = nullableTime(publishedAt)
		ev.HiddenAt = nullableTime(hiddenAt)
		ev.Subject = nullableString(subject)
		ev.FromDomain = nullableString(fromDomain)
		ev.InternalDate = nullableTime(internalDate)
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read future events: %w", err)
	}
	return out, nil
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullableTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}

// HideEvent marks an event hidden from the upcoming view. Rows written
// before the event_type set was tightened may carry legacy values; the
// update normalizes them so the (NOT VALID) check constraint cannot
// reject the hide.
func (s *Store) HideEvent(ctx context.Context, messageID string) error {
	return s.setHidden(ctx, messageID, true)
}

// UnhideEvent restores a hidden event to the upcoming view.
func (s *Store) UnhideEvent(ctx context.Context, messageID string) error {
	return s.setHidden(ctx, messageID, false)
}

func (s *Store) setHidden(ctx context.Context, messageID string, hidden bool) error {
	rec, err := s.db.EventRecord.Get(ctx, messageID)
	if err != nil {
		return fmt.Errorf("failed to load event metadata for %s: %w", messageID, err)
	}

	upd := s.db.EventRecord.UpdateOneID(messageID)
	if hidden {
		upd.SetHiddenAt(time.Now().UTC())
	} else {
		upd.ClearHiddenAt()
	}
	if rec.EventType != nil {
		if n := NormalizeEventType(*rec.EventType); n != "" && n != *rec.EventType {
			upd.SetEventType(n)
		}
	}
	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update hidden state for %s: %w", messageID, err)
	}
	return nil
}

// SetCalendarStatus records the outcome of a calendar publish check.
// The first observed iCalUID and publish time are preserved; later
// checks only refresh calendar_checked_at and the provider event id.
func (s *Store) SetCalendarStatus(ctx context.Context, messageID, calendarEventID, icalUID string, published bool) error {
	rec, err := s.db.EventRecord.Get(ctx, messageID)
	if err != nil {
		return fmt.Errorf("failed to load event metadata for %s: %w", messageID, err)
	}

	upd := s.db.EventRecord.UpdateOneID(messageID).
		SetCalendarCheckedAt(time.Now().UTC())
	if calendarEventID != "" {
		upd.SetCalendarEventID(calendarEventID)
	}
	if icalUID != "" && rec.CalendarIcalUID == nil {
		upd.SetCalendarIcalUID(icalUID)
	}
	if published && rec.PublishedAt == nil {
		upd.SetPublishedAt(time.Now().UTC())
	}
	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set calendar status for %s: %w", messageID, err)
	}
	return nil
}

// EventForMessage loads an event row and its source message. Returns
// (nil, nil, nil) when no event metadata exists for the message.
func (s *Store) EventForMessage(ctx context.Context, messageID string) (*ent.EventRecord, *ent.EmailMessage, error) {
	rec, err := s.db.EventRecord.Get(ctx, messageID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to load event metadata for %s: %w", messageID, err)
	}
	msg, err := s.db.EmailMessage.Get(ctx, messageID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load message %s: %w", messageID, err)
	}
	return rec, msg, nil
}

// RecentPayment is one deduplicated outgoing payment.
type RecentPayment struct {
	MessageID    string
	ItemName     *string
	VendorName   *string
	ItemCategory *string
	CostAmount   decimal.Decimal
	CostCurrency *string
	IsRecurring  *bool
	Frequency    *string
	PaymentDate  time.Time
	Fingerprint  *string
	Subject      *string
	FromDomain   *string
	InternalDate *time.Time
}

// paymentsDedupCTE collapses duplicate notifications of the same payment
// (renewal reminder + receipt, say) by fingerprint, keeping the most
// recent row. Rows without a fingerprint stand alone.
const paymentsDedupCTE = `
WITH deduped AS (
    SELECT DISTINCT ON (COALESCE(mem.payment_fingerprint, 'message-' || mem.message_id))
        mem.message_id,
        mem.item_name,
        mem.vendor_name,
        mem.item_category,
        mem.cost_amount,
        mem.cost_currency,
        mem.is_recurring,
        mem.frequency,
        mem.payment_date,
        mem.payment_fingerprint,
        em.subject,
        em.from_domain,
        em.internal_date
    FROM message_payment_metadata mem
    JOIN email_messages em ON em.message_id = mem.message_id
    WHERE mem.status = 'succeeded'
      AND mem.cost_amount IS NOT NULL
      AND mem.payment_date IS NOT NULL
      AND mem.payment_date BETWEEN $1 AND $2
      AND em.lifecycle_state = 'active'
      AND ($3 = '' OR mem.cost_currency = $3)
    ORDER BY COALESCE(mem.payment_fingerprint, 'message-' || mem.message_id),
             mem.payment_date DESC,
             mem.message_id DESC
)
`

func paymentWindow(months int) (time.Time, time.Time) {
	if months < 1 {
		months = 1
	}
	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -months*30)
	return start, end
}

// ListRecentPayments returns deduplicated payments in a trailing window,
// newest first. Currency filters when non-empty.
func (s *Store) ListRecentPayments(ctx context.Context, months, limit int, currency string) ([]RecentPayment, error) {
	start, end := paymentWindow(months)
	q := paymentsDedupCTE + `
SELECT * FROM deduped
ORDER BY payment_date DESC, message_id DESC
LIMIT $4`

	rows, err := s.db.DB().QueryContext(ctx, q, start, end, currency, clampLimit(limit, 250))
	if err != nil {
		return nil, fmt.Errorf("failed to list recent payments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []RecentPayment
	for rows.Next() {
		var (
			p            RecentPayment
			itemName     sql.NullString
			vendorName   sql.NullString
			itemCategory sql.NullString
			costCurrency sql.NullString
			isRecurring  sql.NullBool
			frequency    sql.NullString
			fingerprint  sql.NullString
			subject      sql.NullString
			fromDomain   sql.NullString
			internalDate sql.NullTime
		)
		err := rows.Scan(
			&p.MessageID, &itemName, &vendorName, &itemCategory,
			&p.CostAmount, &costCurrency, &isRecurring, &frequency,
			&p.PaymentDate, &fingerprint, &subject, &fromDomain, &internalDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recent payment: %w", err)
		}
		p.ItemName = nullableString(itemName)
		p.VendorName = nullableString(vendorName)
		p.ItemCategory = nullableString(itemCategory)
		p.CostCurrency = nullableString(costCurrency)
		if isRecurring.Valid {
			p.IsRecurring = &isRecurring.Bool
		}
		p.Frequency = nullableString(frequency)
		p.Fingerprint = nullableString(fingerprint)
		p.Subject = nullableString(subject)
		p.FromDomain = nullableString(fromDomain)
		p.InternalDate = nullableTime(internalDate)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recent payments: %w", err)
	}
	return out, nil
}

// PrimaryCurrency returns the currency with the highest total spend in
// the window, plus every currency seen, ordered by spend.
func (s *Store) PrimaryCurrency(ctx context.Context, months int) (string, []string, error) {
	start, end := paymentWindow(months)
	q := paymentsDedupCTE + `
SELECT cost_currency, SUM(cost_amount) AS total
FROM deduped
WHERE cost_currency IS NOT NULL
GROUP BY cost_currency
ORDER BY total DESC`

	rows, err := s.db.DB().QueryContext(ctx, q, start, end, "")
	if err != nil {
		return "", nil, fmt.Errorf("failed to rank payment currencies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var currencies []string
	for rows.Next() {
		var (
			code  string
			total decimal.Decimal
		)
		if err := rows.Scan(&code, &total); err != nil {
			return "", nil, fmt.Errorf("failed to scan currency total: %w", err)
		}
		currencies = append(currencies, code)
	}
	if err := rows.Err(); err != nil {
		return "", nil, fmt.Errorf("failed to read currency totals: %w", err)
	}
	primary := ""
	if len(currencies) > 0 {
		primary = currencies[0]
	}
	return primary, currencies, nil
}

// SpendBucket is total spend grouped by one dimension.
type SpendBucket struct {
	Key        string          `json:"key"`
	TotalSpend decimal.Decimal `json:"total_spend"`
}

// CountBucket is spend plus payment count grouped by one dimension.
type CountBucket struct {
	Key          string          `json:"key"`
	PaymentCount int             `json:"payment_count"`
	TotalSpend   decimal.Decimal `json:"total_spend"`
}

// MonthBucket is spend for one calendar month.
type MonthBucket struct {
	Month        time.Time       `json:"month"`
	TotalSpend   decimal.Decimal `json:"total_spend"`
	PaymentCount int             `json:"payment_count"`
}

// PaymentAnalytics is the spend breakdown for a trailing window.
type PaymentAnalytics struct {
	WindowStart  time.Time       `json:"window_start"`
	WindowEnd    time.Time       `json:"window_end"`
	PaymentCount int             `json:"payment_count"`
	TotalSpend   decimal.Decimal `json:"total_spend"`
	ByVendor     []SpendBucket   `json:"by_vendor"`
	ByCategory   []SpendBucket   `json:"by_category"`
	ByRecurring  []CountBucket   `json:"by_recurring"`
	ByFrequency  []CountBucket   `json:"by_frequency"`
	ByMonth      []MonthBucket   `json:"by_month"`
}

// Analytics computes the deduplicated spend breakdown for the window.
// Currency filters when non-empty; mixing currencies in one total is the
// caller's choice.
func (s *Store) Analytics(ctx context.Context, months int, currency string) (*PaymentAnalytics, error) {
	start, end := paymentWindow(months)
	out := &PaymentAnalytics{WindowStart: start, WindowEnd: end}
	args := []any{start, end, currency}

	totalsQ := paymentsDedupCTE + `
SELECT COUNT(*), COALESCE(SUM(cost_amount), 0)
FROM deduped`
	row := s.db.DB().QueryRowContext(ctx, totalsQ, args...)
	if err := row.Scan(&out.PaymentCount, &out.TotalSpend); err != nil {
		return nil, fmt.Errorf("failed to compute payment totals: %w", err)
	}

	var err error
	out.ByVendor, err = s.spendBuckets(ctx, paymentsDedupCTE+`
SELECT COALESCE(NULLIF(vendor_name, ''), 'Unknown') AS vendor,
       COALESCE(SUM(cost_amount), 0) AS total_spend
FROM deduped
GROUP BY 1
ORDER BY total_spend DESC
LIMIT 20`, args)
	if err != nil {
		return nil, err
	}

	out.ByCategory, err = s.spendBuckets(ctx, paymentsDedupCTE+`
SELECT COALESCE(NULLIF(item_category, ''), 'Other') AS category,
       COALESCE(SUM(cost_amount), 0) AS total_spend
FROM deduped
GROUP BY 1
ORDER BY total_spend DESC`, args)
	if err != nil {
		return nil, err
	}

	out.ByRecurring, err = s.countBuckets(ctx, paymentsDedupCTE+`
SELECT CASE WHEN COALESCE(is_recurring, false) THEN 'recurring' ELSE 'one_off' END AS kind,
       COUNT(*) AS payment_count,
       COALESCE(SUM(cost_amount), 0) AS total_spend
FROM deduped
GROUP BY 1
ORDER BY total_spend DESC`, args)
	if err != nil {
		return nil, err
	}

	out.ByFrequency, err = s.countBuckets(ctx, paymentsDedupCTE+`
SELECT COALESCE(NULLIF(frequency, ''), 'unspecified') AS frequency,
       COUNT(*) AS payment_count,
       COALESCE(SUM(cost_amount), 0) AS total_spend
FROM deduped
WHERE COALESCE(is_recurring, false)
GROUP BY 1
ORDER BY total_spend DESC`, args)
	if err != nil {
		return nil, err
	}

	monthlyQ := paymentsDedupCTE + `
SELECT date_trunc('month', payment_date)::date AS month,
       COALESCE(SUM(cost_amount), 0) AS total_spend,
       COUNT(*) AS payment_count
FROM deduped
GROUP BY 1
ORDER BY month ASC`
	rows, err := s.db.DB().QueryContext(ctx, monthlyQ, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly spend: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var b MonthBucket
		if err := rows.Scan(&b.Month, &b.TotalSpend, &b.PaymentCount); err != nil {
			return nil, fmt.Errorf("failed to scan monthly spend: %w", err)
		}
		out.ByMonth = append(out.ByMonth, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read monthly spend: %w", err)
	}
	return out, nil
}

func (s *Store) spendBuckets(ctx context.Context, query string, args []any) ([]SpendBucket, error) {
	rows, err := s.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to compute spend breakdown: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []SpendBucket
	for rows.Next() {
		var b SpendBucket
		if err := rows.Scan(&b.Key, &b.TotalSpend); err != nil {
			return nil, fmt.Errorf("failed to scan spend bucket: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read spend breakdown: %w", err)
	}
	return out, nil
}

func (s *Store) countBuckets(ctx context.Context, query string, args []any) ([]CountBucket, error) {
	rows, err := s.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to compute spend breakdown: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []CountBucket
	for rows.Next() {
		var b CountBucket
		if err := rows.Scan(&b.Key, &b.PaymentCount, &b.TotalSpend); err != nil {
			return nil, fmt.Errorf("failed to scan spend bucket: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read spend breakdown: %w", err)
	}
	return out, nil
}
