package outbox

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"

	"github.com/mailscope/mailscope/ent"
	"github.com/mailscope/mailscope/ent/emailmessage"
	"github.com/mailscope/mailscope/ent/predicate"
)

// CleanupInbox removes the provider INBOX label from messages older than
// cutoff and stamps inbox_removed_at. Messages keep their taxonomy labels;
// this only ages them out of the inbox view.
func (w *Worker) CleanupInbox(ctx context.Context, cutoff time.Time, opts PushOptions) (PushSummary, error) {
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	var sum PushSummary
	report := func(msg string) {
		if opts.OnProgress != nil {
			opts.OnProgress(PushProgress{
				Processed: sum.Processed,
				Succeeded: sum.Succeeded,
				Failed:    sum.Failed,
				Message:   msg,
			})
		}
	}
	report("Starting inbox aging")

	hasInbox := predicate.EmailMessage(func(s *sql.Selector) {
		s.Where(sqljson.ValueContains(emailmessage.FieldLabelIds, "INBOX"))
	})

	// Failed rows keep inbox_removed_at unset, so they are re-fetched;
	// exclude them within this run to guarantee progress.
	failed := map[string]struct{}{}

	for {
		q := w.db.EmailMessage.Query().
			Where(
				emailmessage.InboxRemovedAtIsNil(),
				emailmessage.InternalDateLTE(cutoff),
				emailmessage.LifecycleStateEQ(emailmessage.LifecycleStateActive),
				hasInbox,
			).
			Order(ent.Asc(emailmessage.FieldInternalDate), ent.Asc(emailmessage.FieldID)).
			Limit(batchSize)
		if len(failed) > 0 {
			ids := make([]string, 0, len(failed))
			for id := range failed {
				ids = append(ids, id)
			}
			q = q.Where(emailmessage.IDNotIn(ids...))
		}
		rows, err := q.All(ctx)
		if err != nil {
			return sum, fmt.Errorf("failed to fetch inbox aging candidates: %w", err)
		}
		if len(rows) == 0 {
			break
		}

		for _, msg := range rows {
			if ctx.Err() != nil {
				return sum, ctx.Err()
			}
			sum.Processed++

			err := w.modifyWithRetry(ctx, msg.ID, nil, []string{"INBOX"})
			if err != nil {
				sum.Failed++
				failed[msg.ID] = struct{}{}
				slog.Warn("Inbox aging failed",
					"message_id", msg.ID,
					"error", err)
			} else {
				sum.Succeeded++
				w.recordInboxRemoval(ctx, msg)
			}

			if sum.Processed%50 == 0 {
				report(fmt.Sprintf("Inbox aging (ok %d, failed %d)", sum.Succeeded, sum.Failed))
			}
			time.Sleep(rowPace)
		}
	}

	report(fmt.Sprintf("Finished inbox aging: processed %d, ok %d, failed %d",
		sum.Processed, sum.Succeeded, sum.Failed))
	return sum, nil
}

func (w *Worker) recordInboxRemoval(ctx context.Context, msg *ent.EmailMessage) {
	labels := make([]string, 0, len(msg.LabelIds))
	for _, l := range msg.LabelIds {
		if l != "INBOX" {
			labels = append(labels, l)
		}
	}
	err := w.db.EmailMessage.UpdateOneID(msg.ID).
		SetInboxRemovedAt(time.Now().UTC()).
		SetLabelIds(labels).
		Exec(ctx)
	if err != nil {
		slog.Error("Failed to record inbox removal", "message_id", msg.ID, "error", err)
	}
}
