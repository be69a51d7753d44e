package policy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mailscope/mailscope/ent"
	"github.com/mailscope/mailscope/ent/emailmessage"
	"github.com/mailscope/mailscope/ent/emailpolicy"
	"github.com/mailscope/mailscope/pkg/database"
	"github.com/mailscope/mailscope/pkg/gmail"
)

const (
	selectBatch = 200
	// rowPace keeps a bulk trash run inside provider rate limits.
	rowPace      = 50 * time.Millisecond
	retryBackoff = 250 * time.Millisecond
)

// ApplyProgress is reported to the optional progress callback.
type ApplyProgress struct {
	Policy  string
	Matched int
	Trashed int
	Failed  int
	Message string
}

// ApplyOptions tunes an apply run.
type ApplyOptions struct {
	// Force applies every enabled policy regardless of cadence; cadence
	// gating is for the maintenance sequence.
	Force      bool
	OnProgress func(ApplyProgress)
}

// ApplySummary is the outcome of an apply run.
type ApplySummary struct {
	Policies int
	Matched  int
	Trashed  int
	Failed   int
}

// Engine evaluates enabled scheduled policies against the mailbox and
// executes the trash action: provider-side move to Trash, then the local
// lifecycle mark with expiry and provenance.
type Engine struct {
	db       *database.Client
	store    *Store
	provider *gmail.Client
}

// NewEngine wires a policy engine.
func NewEngine(db *database.Client, store *Store, provider *gmail.Client) *Engine {
	return &Engine{db: db, store: store, provider: provider}
}

// Apply runs every enabled scheduled policy that is due. Matches are
// trashed oldest first; per-message failures are counted and never abort
// the run.
func (e *Engine) Apply(ctx context.Context, opts ApplyOptions) (ApplySummary, error) {
	var sum ApplySummary

	policies, err := e.store.List(ctx)
	if err != nil {
		return sum, err
	}

	now := time.Now().UTC()
	for _, p := range policies {
		if ctx.Err() != nil {
			return sum, ctx.Err()
		}
		if !p.Enabled || p.TriggerType != emailpolicy.TriggerTypeScheduled {
			continue
		}
		if !opts.Force && !due(p, now) {
			continue
		}

		sum.Policies++
		pSum, err := e.applyOne(ctx, p, now, opts.OnProgress)
		sum.Matched += pSum.Matched
		sum.Trashed += pSum.Trashed
		sum.Failed += pSum.Failed
		if err != nil {
			return sum, fmt.Errorf("policy %q failed: %w", p.Name, err)
		}
		e.store.MarkApplied(ctx, p.ID, now)
	}
	return sum, nil
}

func due(p *ent.EmailPolicy, now time.Time) bool {
	if p.LastAppliedAt == nil {
		return true
	}
	return now.Sub(*p.LastAppliedAt) >= CadenceInterval(string(p.Cadence))
}

func (e *Engine) applyOne(ctx context.Context, p *ent.EmailPolicy, now time.Time, onProgress func(ApplyProgress)) (ApplySummary, error) {
	var sum ApplySummary

	def, err := ParseDefinition(p.Definition)
	if err != nil {
		return sum, err
	}
	preds, err := def.Predicates(now)
	if err != nil {
		return sum, err
	}

	report := func(msg string) {
		if onProgress != nil {
			onProgress(ApplyProgress{
				Policy:  p.Name,
				Matched: sum.Matched,
				Trashed: sum.Trashed,
				Failed:  sum.Failed,
				Message: msg,
			})
		}
	}

	// Matches shrink as messages leave the ACTIVE state, so each round
	// re-queries from the front instead of paginating.
	for {
		ids, err := e.db.EmailMessage.Query().
			Where(preds...).
			Order(ent.Asc(emailmessage.FieldInternalDate), ent.Asc(emailmessage.FieldID)).
			Limit(selectBatch).
			Select(emailmessage.FieldID).
			Strings(ctx)
		if err != nil {
			return sum, fmt.Errorf("failed to select policy matches: %w", err)
		}
		if len(ids) == 0 {
			break
		}
		if sum.Matched == 0 {
			report(fmt.Sprintf("Policy %q matched message(s); trashing", p.Name))
		}

		progress := false
		for _, id := range ids {
			if ctx.Err() != nil {
				return sum, ctx.Err()
			}
			sum.Matched++

			if err := e.trashOne(ctx, id, p.ID, def.Action.RetentionDays, now); err != nil {
				sum.Failed++
				slog.Warn("Policy trash failed",
					"policy_id", p.ID,
					"message_id", id,
					"error", err)
			} else {
				sum.Trashed++
				progress = true
			}

			if sum.Matched%50 == 0 {
				report(fmt.Sprintf("Policy %q: trashed %d, failed %d", p.Name, sum.Trashed, sum.Failed))
			}
			time.Sleep(rowPace)
		}

		// Every row in the round failed; the matches would be reselected
		// forever, so stop here and leave them for the next run.
		if !progress {
			break
		}
	}

	report(fmt.Sprintf("Policy %q done: matched %d, trashed %d, failed %d",
		p.Name, sum.Matched, sum.Trashed, sum.Failed))
	return sum, nil
}

// trashOne moves the message to the provider Trash, then records the
// local lifecycle transition with expiry and provenance. Trashing an
// already-trashed provider message is a no-op, so the retry is safe.
func (e *Engine) trashOne(ctx context.Context, messageID, policyID string, retentionDays int, now time.Time) error {
	err := e.provider.TrashMessage(ctx, messageID)
	var apiErr *gmail.APIError
	if errors.As(err, &apiErr) && apiErr.Retryable() {
		time.Sleep(retryBackoff)
		err = e.provider.TrashMessage(ctx, messageID)
	}
	if err != nil {
		return err
	}

	return e.db.EmailMessage.UpdateOneID(messageID).
		SetLifecycleState(emailmessage.LifecycleStateTrashed).
		SetTrashedAt(now).
		SetExpiryAt(now.AddDate(0, 0, retentionDays)).
		SetTrashedByPolicyID(policyID).
		Exec(ctx)
}
