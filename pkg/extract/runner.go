package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mailscope/mailscope/ent/eventrecord"
	"github.com/mailscope/mailscope/ent/paymentrecord"
	"github.com/mailscope/mailscope/pkg/gmail"
)

// BodyMaxChars bounds the body fetched for extraction. Larger than the
// labeling fetch: receipts and itineraries bury the details deep.
const BodyMaxChars = 30000

const progressEvery = 25

// Progress is reported to the optional progress callback.
type Progress struct {
	Processed int
	Extracted int
	Empty     int
	Failed    int
	Total     int
	Message   string
}

// Options tunes an extraction run.
type Options struct {
	// Limit caps candidates per selection query; 0 uses the per-query
	// default.
	Limit      int
	OnProgress func(Progress)
}

// Summary is the outcome of an extraction run. Empty counts messages the
// model saw but found no event or payment in; those are remembered and
// not re-asked.
type Summary struct {
	Processed int
	Extracted int
	Empty     int
	Failed    int
}

// Runner drives batch extraction: candidate selection, body fetch, one
// model call per message, and the metadata upsert.
type Runner struct {
	store    *Store
	provider *gmail.Client
	events   *EventExtractor
	payments *PaymentExtractor
}

// NewRunner wires an extraction runner.
func NewRunner(store *Store, provider *gmail.Client, events *EventExtractor, payments *PaymentExtractor) *Runner {
	return &Runner{
		store:    store,
		provider: provider,
		events:   events,
		payments: payments,
	}
}

// RunEvents extracts events from unprocessed messages in the given
// category/subcategory slice received since the cutoff. Per-message
// failures are recorded as failed metadata rows; only storage errors
// abort the run.
func (r *Runner) RunEvents(ctx context.Context, category, subcategory string, since time.Time, opts Options) (Summary, error) {
	cands, err := r.store.EventCandidates(ctx, category, subcategory, since, opts.Limit)
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	report := func(msg string) {
		if opts.OnProgress != nil {
			opts.OnProgress(Progress{
				Processed: sum.Processed,
				Extracted: sum.Extracted,
				Empty:     sum.Empty,
				Failed:    sum.Failed,
				Total:     len(cands),
				Message:   msg,
			})
		}
	}
	report(fmt.Sprintf("Starting event extraction for %d message(s)", len(cands)))

	for _, c := range cands {
		if ctx.Err() != nil {
			return sum, ctx.Err()
		}
		sum.Processed++

		res, extractErr := r.extractEvent(ctx, c)
		status := eventrecord.StatusSucceeded
		var errMsg *string
		switch {
		case extractErr != nil:
			sum.Failed++
			status = eventrecord.StatusFailed
			msg := extractErr.Error()
			errMsg = &msg
			res = EventResult{Model: r.events.Model, PromptVersion: EventPromptVersion}
			slog.Warn("Event extraction failed",
				"message_id", c.MessageID,
				"error", extractErr)
		case res.HasEvent():
			sum.Extracted++
		default:
			sum.Empty++
			status = eventrecord.StatusNoEvent
		}

		if _, err := r.store.UpsertEvent(ctx, c.MessageID, status, res, errMsg); err != nil {
			return sum, err
		}
		if sum.Processed%progressEvery == 0 {
			report(fmt.Sprintf("Extracting events (%d/%d, found %d)", sum.Processed, len(cands), sum.Extracted))
		}
	}

	report(fmt.Sprintf("Finished event extraction: processed %d, found %d, empty %d, failed %d",
		sum.Processed, sum.Extracted, sum.Empty, sum.Failed))
	slog.Info("Event extraction done",
		"processed", sum.Processed,
		"extracted", sum.Extracted,
		"empty", sum.Empty,
		"failed", sum.Failed)
	return sum, nil
}

func (r *Runner) extractEvent(ctx context.Context, c Candidate) (EventResult, error) {
	body, err := r.provider.GetMessageBody(ctx, c.MessageID, BodyMaxChars)
	if err != nil {
		return EventResult{}, fmt.Errorf("body fetch failed: %w", err)
	}
	return r.events.Extract(ctx, EventInput{
		Subject:      derefOr(c.Subject),
		FromDomain:   derefOr(c.FromDomain),
		InternalDate: c.InternalDate,
		Body:         body,
	})
}

// RunPayments extracts payments from the union of unprocessed messages
// in the given category (any subcategory, any age) and messages received
// since the cutoff regardless of category. Receipts that were labelled
// elsewhere still get picked up by the recency half.
func (r *Runner) RunPayments(ctx context.Context, category string, since time.Time, opts Options) (Summary, error) {
	var (
		cands []Candidate
		seen  = map[string]struct{}{}
	)
	add := func(rows []Candidate) {
		for _, c := range rows {
			if _, ok := seen[c.MessageID]; ok {
				continue
			}
			seen[c.MessageID] = struct{}{}
			cands = append(cands, c)
		}
	}

	byCategory, err := r.store.PaymentCandidatesInCategory(ctx, category, opts.Limit)
	if err != nil {
		return Summary{}, err
	}
	add(byCategory)

	recent, err := r.store.PaymentCandidatesSince(ctx, since, opts.Limit)
	if err != nil {
		return Summary{}, err
	}
	add(recent)

	var sum Summary
	report := func(msg string) {
		if opts.OnProgress != nil {
			opts.OnProgress(Progress{
				Processed: sum.Processed,
				Extracted: sum.Extracted,
				Empty:     sum.Empty,
				Failed:    sum.Failed,
				Total:     len(cands),
				Message:   msg,
			})
		}
	}
	report(fmt.Sprintf("Starting payment extraction for %d message(s)", len(cands)))

	for _, c := range cands {
		if ctx.Err() != nil {
			return sum, ctx.Err()
		}
		sum.Processed++

		res, extractErr := r.extractPayment(ctx, c)
		status := paymentrecord.StatusSucceeded
		var errMsg *string
		switch {
		case extractErr != nil:
			sum.Failed++
			status = paymentrecord.StatusFailed
			msg := extractErr.Error()
			errMsg = &msg
			res = PaymentResult{Model: r.payments.Model, PromptVersion: PaymentPromptVersion}
			slog.Warn("Payment extraction failed",
				"message_id", c.MessageID,
				"error", extractErr)
		case res.HasPayment():
			sum.Extracted++
		default:
			sum.Empty++
			status = paymentrecord.StatusNoPayment
		}

		if _, err := r.store.UpsertPayment(ctx, c.MessageID, status, res, errMsg); err != nil {
			return sum, err
		}
		if sum.Processed%progressEvery == 0 {
			report(fmt.Sprintf("Extracting payments (%d/%d, found %d)", sum.Processed, len(cands), sum.Extracted))
		}
	}

	report(fmt.Sprintf("Finished payment extraction: processed %d, found %d, empty %d, failed %d",
		sum.Processed, sum.Extracted, sum.Empty, sum.Failed))
	slog.Info("Payment extraction done",
		"processed", sum.Processed,
		"extracted", sum.Extracted,
		"empty", sum.Empty,
		"failed", sum.Failed)
	return sum, nil
}

func (r *Runner) extractPayment(ctx context.Context, c Candidate) (PaymentResult, error) {
	body, err := r.provider.GetMessageBody(ctx, c.MessageID, BodyMaxChars)
	if err != nil {
		return PaymentResult{}, fmt.Errorf("body fetch failed: %w", err)
	}
	return r.payments.Extract(ctx, PaymentInput{
		Subject:      derefOr(c.Subject),
		FromDomain:   derefOr(c.FromDomain),
		InternalDate: c.InternalDate,
		Body:         body,
	})
}

func derefOr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
