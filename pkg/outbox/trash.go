package outbox

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mailscope/mailscope/ent/emailmessage"
)

// TrashSummary is the outcome of a trash sync run.
type TrashSummary struct {
	Trashed   int
	Untrashed int
}

// SyncTrash mirrors the provider's Trash folder into lifecycle_state.
// Messages found in Trash are marked trashed; previously-trashed messages
// no longer in Trash are restored to active. Deletion itself stays a
// provider-side action; this keeps the local view honest.
func (w *Worker) SyncTrash(ctx context.Context) (TrashSummary, error) {
	var sum TrashSummary

	inTrash := map[string]struct{}{}
	err := w.provider.ListMessageIDs(ctx, "in:trash", func(id string) error {
		inTrash[id] = struct{}{}
		return nil
	})
	if err != nil {
		return sum, fmt.Errorf("failed to list trashed provider messages: %w", err)
	}

	// Mark known messages that turned up in Trash.
	if len(inTrash) > 0 {
		ids := make([]string, 0, len(inTrash))
		for id := range inTrash {
			ids = append(ids, id)
		}
		n, err := w.db.EmailMessage.Update().
			Where(
				emailmessage.IDIn(ids...),
				emailmessage.LifecycleStateNEQ(emailmessage.LifecycleStateTrashed),
			).
			SetLifecycleState(emailmessage.LifecycleStateTrashed).
			SetTrashedAt(time.Now().UTC()).
			Save(ctx)
		if err != nil {
			return sum, fmt.Errorf("failed to mark messages trashed: %w", err)
		}
		sum.Trashed = n
	}

	// Restore messages that were trashed locally but left Trash upstream.
	trashedRows, err := w.db.EmailMessage.Query().
		Where(emailmessage.LifecycleStateEQ(emailmessage.LifecycleStateTrashed)).
		Select(emailmessage.FieldID).
		Strings(ctx)
	if err != nil {
		return sum, fmt.Errorf("failed to list locally trashed messages: %w", err)
	}
	var restore []string
	for _, id := range trashedRows {
		if _, ok := inTrash[id]; !ok {
			restore = append(restore, id)
		}
	}
	if len(restore) > 0 {
		// A restore also clears policy provenance: the message is back in
		// circulation and its undo window no longer applies.
		n, err := w.db.EmailMessage.Update().
			Where(emailmessage.IDIn(restore...)).
			SetLifecycleState(emailmessage.LifecycleStateActive).
			ClearTrashedAt().
			ClearExpiryAt().
			ClearTrashedByPolicyID().
			Save(ctx)
		if err != nil {
			return sum, fmt.Errorf("failed to restore untrashed messages: %w", err)
		}
		sum.Untrashed = n
	}

	slog.Info("Trash sync done", "trashed", sum.Trashed, "untrashed", sum.Untrashed)
	return sum, nil
}
