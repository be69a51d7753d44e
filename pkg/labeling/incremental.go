package labeling

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mailscope/mailscope/ent"
	"github.com/mailscope/mailscope/pkg/gmail"
)

// IncrementalPhaseName is recorded in pipeline_kv while per-message
// labeling runs.
const IncrementalPhaseName = "phase2_incremental_labeling"

// recentDomainActivityLimit bounds the context window for per-message
// frequency/unread analysis.
const recentDomainActivityLimit = 30

// IncrementalProgress is reported to the optional progress callback.
type IncrementalProgress struct {
	Processed int
	Labeled   int
	Failed    int
	Message   string
}

// IncrementalOptions tunes a per-message run.
type IncrementalOptions struct {
	// MaxEmails caps how many messages are processed; 0 means run until
	// every message is labelled.
	MaxEmails int
	// Since bounds the run to messages received at or after it; zero
	// means the whole backlog.
	Since      time.Time
	OnProgress func(IncrementalProgress)
}

// IncrementalSummary is the outcome of a per-message run.
type IncrementalSummary struct {
	Processed int
	Labeled   int
	Failed    int
}

// RunIncremental labels each unlabelled message individually. It is
// optimized for small daily deltas: one body fetch and one model call per
// message, with lightweight sender-domain context instead of clustering.
//
// It reuses the exact cluster id scheme and prompt contract of the bulk
// pipeline, so a later bulk run that picks the same seed converges on the
// same cluster. Per-message failures are counted and skipped, never
// aborting the run.
func (e *Engine) RunIncremental(ctx context.Context, opts IncrementalOptions) (IncrementalSummary, error) {
	if err := e.taxonomy.EnsureSeeded(ctx); err != nil {
		return IncrementalSummary{}, err
	}
	if err := e.setPhase(ctx, IncrementalPhaseName); err != nil {
		return IncrementalSummary{}, err
	}

	var sum IncrementalSummary
	report := func(msg string) {
		if opts.OnProgress != nil {
			opts.OnProgress(IncrementalProgress{
				Processed: sum.Processed,
				Labeled:   sum.Labeled,
				Failed:    sum.Failed,
				Message:   msg,
			})
		}
	}
	report("Starting")

	// Messages that failed once are excluded from the seed query so a
	// persistently broken message cannot stall the run.
	var failedIDs []string

	for {
		if opts.MaxEmails > 0 && sum.Processed >= opts.MaxEmails {
			break
		}
		if ctx.Err() != nil {
			return sum, ctx.Err()
		}

		msg, err := e.store.NextUnlabelled(ctx, opts.Since, failedIDs)
		if err != nil {
			return sum, err
		}
		if msg == nil {
			break
		}

		updated, err := e.labelOneMessage(ctx, msg)
		sum.Processed++
		if err != nil {
			sum.Failed++
			failedIDs = append(failedIDs, msg.ID)
			slog.Error("Per-message labeling failed",
				"message_id", msg.ID,
				"error", err)
			report(fmt.Sprintf("Failed label %s", msg.ID))
			continue
		}

		sum.Labeled += updated
		report(fmt.Sprintf("Labelled %s (%d updated)", msg.ID, updated))
	}

	slog.Info("Per-message labeling done",
		"processed", sum.Processed,
		"labeled", sum.Labeled,
		"failed", sum.Failed)
	return sum, nil
}

func (e *Engine) labelOneMessage(ctx context.Context, msg *ent.EmailMessage) (int, error) {
	clusterID := ClusterID(msg.ID, e.cfg.SimilarityThreshold, e.cfg.LabelVersion)

	displayName := subjectOf(msg)
	if displayName == "" {
		displayName = fmt.Sprintf("Email %s", msg.ID)
	}
	clusterID, err := e.store.InsertCluster(ctx, clusterID, msg, e.cfg.SimilarityThreshold, displayName)
	if err != nil {
		return 0, err
	}

	// Lightweight domain context; no bodies beyond the message itself.
	domain := derefString(msg.FromDomain)
	dates, flags, err := e.store.RecentDomainActivity(ctx, domain, recentDomainActivityLimit)
	if err != nil {
		return 0, err
	}
	if len(dates) == 0 {
		dates = append(dates, internalDateOf(msg))
	}
	if len(flags) == 0 {
		flags = append(flags, msg.IsUnread)
	}
	freq := FrequencyLabel(dates)
	unread := UnreadRatioLabel(flags)
	if err := e.store.UpdateClusterAnalysis(ctx, clusterID, freq, unread); err != nil {
		return 0, err
	}

	body, err := e.provider.GetMessageBody(ctx, msg.ID, gmail.DefaultBodyMaxChars)
	if err != nil {
		return 0, fmt.Errorf("body fetch failed: %w", err)
	}

	var subjects []string
	if s := subjectOf(msg); s != "" {
		subjects = append(subjects, s)
	}

	tier2, err := e.taxonomy.ListTier2Options(ctx)
	if err != nil {
		return 0, err
	}

	result, err := e.labeler.Label(ctx, PromptInput{
		SenderDomain:    domain,
		SubjectExamples: subjects,
		ClusterSize:     1,
		FrequencyLabel:  freq,
		UnreadLabel:     unread,
		Bodies:          []string{body},
		Tier2Options:    tier2,
	})
	if err != nil {
		return 0, err
	}

	if err := e.persistTier2(ctx, result, tier2); err != nil {
		return 0, err
	}

	updated, err := e.store.LabelMessages(ctx, []string{msg.ID}, clusterID, result.Category, result.Subcategory, e.cfg.LabelVersion)
	if err != nil {
		return 0, err
	}

	if err := e.taxonomy.AssignMessageLabel(ctx, msg.ID, result.Category, result.Subcategory, nil); err != nil {
		return updated, err
	}

	if err := e.store.UpdateClusterLabel(ctx, clusterID, result.Category, result.Subcategory, e.cfg.LabelVersion); err != nil {
		return updated, err
	}
	return updated, nil
}
