// Package outbox drains the provider-push outboxes and runs the retention
// planner. The database is the source of truth for what should be pushed;
// provider calls are deliberately separated into resumable workers so a
// crashed run picks up where it left off.
package outbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mailscope/mailscope/ent"
	"github.com/mailscope/mailscope/ent/archiveoutbox"
	"github.com/mailscope/mailscope/ent/labeloutbox"
	"github.com/mailscope/mailscope/pkg/database"
	"github.com/mailscope/mailscope/pkg/gmail"
	"github.com/mailscope/mailscope/pkg/taxonomy"
)

const (
	defaultBatchSize = 200
	// rowPace is the delay between provider calls; keeps a full drain
	// well inside Gmail's per-user rate limits.
	rowPace      = 50 * time.Millisecond
	retryBackoff = 250 * time.Millisecond

	maxErrorLen = 5000
)

// PushProgress is reported to the optional progress callback.
type PushProgress struct {
	Processed int
	Succeeded int
	Failed    int
	Total     int
	Message   string
}

// PushOptions tunes a worker run.
type PushOptions struct {
	// BatchSize is the fetch size per round; defaults to 200.
	BatchSize int
	// RetryFailed resets rows that previously failed so they are pushed
	// again. Routine (maintenance) runs leave failed rows recorded.
	RetryFailed bool
	OnProgress  func(PushProgress)
}

// PushSummary is the outcome of a worker run.
type PushSummary struct {
	Processed int
	Succeeded int
	Failed    int
}

// Worker drains the label-push and archive-push outboxes.
type Worker struct {
	db       *database.Client
	provider *gmail.Client
	taxo     *taxonomy.Service
	// ArchiveLabelName is the preferred provider marker name; candidates
	// are tried when it is taken or rejected.
	ArchiveLabelName string
}

// NewWorker wires an outbox worker.
func NewWorker(db *database.Client, provider *gmail.Client, taxo *taxonomy.Service, archiveLabelName string) *Worker {
	return &Worker{
		db:               db,
		provider:         provider,
		taxo:             taxo,
		ArchiveLabelName: archiveLabelName,
	}
}

// PushLabels drains the label outbox in FIFO order, applying the provider
// label for each message's current assignment. Rows are marked processed
// whether the push succeeded or failed; failures record the error.
func (w *Worker) PushLabels(ctx context.Context, opts PushOptions) (PushSummary, error) {
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	if opts.RetryFailed {
		n, err := w.db.LabelOutbox.Update().
			Where(labeloutbox.ErrorNotNil()).
			ClearProcessedAt().
			ClearError().
			Save(ctx)
		if err != nil {
			return PushSummary{}, fmt.Errorf("failed to reset failed label pushes: %w", err)
		}
		if n > 0 {
			slog.Info("Reset failed label pushes for retry", "rows", n)
		}
	}

	total, err := w.db.LabelOutbox.Query().
		Where(labeloutbox.ProcessedAtIsNil()).
		Count(ctx)
	if err != nil {
		return PushSummary{}, fmt.Errorf("failed to count pending label pushes: %w", err)
	}

	var sum PushSummary
	report := func(msg string) {
		if opts.OnProgress != nil {
			opts.OnProgress(PushProgress{
				Processed: sum.Processed,
				Succeeded: sum.Succeeded,
				Failed:    sum.Failed,
				Total:     total,
				Message:   msg,
			})
		}
	}
	report(fmt.Sprintf("Starting label outbox push (~%d message(s))", total))

	for {
		rows, err := w.db.LabelOutbox.Query().
			Where(labeloutbox.ProcessedAtIsNil()).
			Order(ent.Asc(labeloutbox.FieldCreatedAt), ent.Asc(labeloutbox.FieldID)).
			Limit(batchSize).
			All(ctx)
		if err != nil {
			return sum, fmt.Errorf("failed to fetch pending label pushes: %w", err)
		}
		if len(rows) == 0 {
			break
		}

		for _, row := range rows {
			if ctx.Err() != nil {
				return sum, ctx.Err()
			}
			sum.Processed++

			if err := w.pushOneLabel(ctx, row.MessageID); err != nil {
				sum.Failed++
				w.markLabelPush(ctx, row.ID, err)
				slog.Warn("Label push failed",
					"message_id", row.MessageID,
					"error", err)
			} else {
				sum.Succeeded++
				w.markLabelPush(ctx, row.ID, nil)
			}

			if sum.Processed%50 == 0 {
				report(fmt.Sprintf("Pushing label outbox (ok %d, failed %d)", sum.Succeeded, sum.Failed))
			}
			time.Sleep(rowPace)
		}
	}

	report(fmt.Sprintf("Finished label outbox push: processed %d, ok %d, failed %d",
		sum.Processed, sum.Succeeded, sum.Failed))
	return sum, nil
}

// pushOneLabel resolves the message's assignment to a provider label id
// and applies it.
func (w *Worker) pushOneLabel(ctx context.Context, messageID string) error {
	assignment, err := w.taxo.AssignmentFor(ctx, messageID)
	if err != nil {
		if errors.Is(err, taxonomy.ErrNotFound) {
			return errors.New("message has no taxonomy assignment")
		}
		return err
	}

	label := assignment.Edges.Label
	if label == nil || !label.IsActive || label.GmailLabelID == nil || *label.GmailLabelID == "" {
		return errors.New("missing provider label mapping for message")
	}

	return w.modifyWithRetry(ctx, messageID, []string{*label.GmailLabelID}, nil)
}

func (w *Worker) markLabelPush(ctx context.Context, outboxID int, pushErr error) {
	upd := w.db.LabelOutbox.UpdateOneID(outboxID).
		SetProcessedAt(time.Now().UTC())
	if pushErr != nil {
		upd.SetError(truncateError(pushErr))
	} else {
		upd.ClearError()
	}
	if err := upd.Exec(ctx); err != nil {
		slog.Error("Failed to mark label push outcome", "outbox_id", outboxID, "error", err)
	}
}

// PushArchive drains the archive outbox: ensures the provider archive
// marker label exists, applies it per message, and stamps archived_at.
func (w *Worker) PushArchive(ctx context.Context, opts PushOptions) (PushSummary, error) {
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	if opts.RetryFailed {
		n, err := w.db.ArchiveOutbox.Update().
			Where(archiveoutbox.ErrorNotNil()).
			ClearProcessedAt().
			ClearError().
			Save(ctx)
		if err != nil {
			return PushSummary{}, fmt.Errorf("failed to reset failed archive pushes: %w", err)
		}
		if n > 0 {
			slog.Info("Reset failed archive pushes for retry", "rows", n)
		}
	}

	total, err := w.db.ArchiveOutbox.Query().
		Where(archiveoutbox.ProcessedAtIsNil()).
		Count(ctx)
	if err != nil {
		return PushSummary{}, fmt.Errorf("failed to count pending archive pushes: %w", err)
	}

	var sum PushSummary
	report := func(msg string) {
		if opts.OnProgress != nil {
			opts.OnProgress(PushProgress{
				Processed: sum.Processed,
				Succeeded: sum.Succeeded,
				Failed:    sum.Failed,
				Total:     total,
				Message:   msg,
			})
		}
	}
	report(fmt.Sprintf("Starting archive push for %d message(s)", total))

	if total == 0 {
		return sum, nil
	}

	markerID, err := taxonomy.EnsureArchiveLabel(ctx, w.provider, w.ArchiveLabelName)
	if err != nil {
		return sum, err
	}

	for {
		rows, err := w.db.ArchiveOutbox.Query().
			Where(archiveoutbox.ProcessedAtIsNil()).
			Order(ent.Asc(archiveoutbox.FieldID)).
			Limit(batchSize).
			All(ctx)
		if err != nil {
			return sum, fmt.Errorf("failed to fetch pending archive pushes: %w", err)
		}
		if len(rows) == 0 {
			break
		}

		for _, row := range rows {
			if ctx.Err() != nil {
				return sum, ctx.Err()
			}
			sum.Processed++

			err := w.modifyWithRetry(ctx, row.MessageID, []string{markerID}, nil)
			if err != nil {
				sum.Failed++
				w.markArchivePush(ctx, row, err)
				slog.Warn("Archive push failed",
					"message_id", row.MessageID,
					"error", err)
			} else {
				sum.Succeeded++
				w.markArchivePush(ctx, row, nil)
			}

			if sum.Processed%50 == 0 {
				report(fmt.Sprintf("Applying archive label (ok %d, failed %d)", sum.Succeeded, sum.Failed))
			}
			time.Sleep(rowPace)
		}
	}

	report(fmt.Sprintf("Finished archive push: processed %d, ok %d, failed %d",
		sum.Processed, sum.Succeeded, sum.Failed))
	return sum, nil
}

func (w *Worker) markArchivePush(ctx context.Context, row *ent.ArchiveOutbox, pushErr error) {
	upd := w.db.ArchiveOutbox.UpdateOneID(row.ID).
		SetProcessedAt(time.Now().UTC())
	if pushErr != nil {
		upd.SetError(truncateError(pushErr))
	} else {
		upd.ClearError()
	}
	if err := upd.Exec(ctx); err != nil {
		slog.Error("Failed to mark archive push outcome", "outbox_id", row.ID, "error", err)
		return
	}
	if pushErr == nil {
		err := w.db.EmailMessage.UpdateOneID(row.MessageID).
			SetArchivedAt(time.Now().UTC()).
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to stamp archived_at", "message_id", row.MessageID, "error", err)
		}
	}
}

// modifyWithRetry applies a label change with one inline retry on a
// transient provider failure. Re-adding a label the message already
// carries is a provider no-op, so retries are safe.
func (w *Worker) modifyWithRetry(ctx context.Context, messageID string, add, remove []string) error {
	err := w.provider.ModifyLabels(ctx, messageID, add, remove)
	var apiErr *gmail.APIError
	if errors.As(err, &apiErr) && apiErr.Retryable() {
		time.Sleep(retryBackoff)
		return w.provider.ModifyLabels(ctx, messageID, add, remove)
	}
	return err
}

func truncateError(err error) string {
	s := err.Error()
	if len(s) > maxErrorLen {
		s = s[:maxErrorLen]
	}
	return s
}
