package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mailscope/mailscope/pkg/jobs"
)

// rowFailures accumulates per-stage row failures so the maintenance
// sequence runs to completion before the job is marked failed.
type rowFailures struct {
	failed    int
	processed int
}

// absorb consumes err when it only reports failed rows and returns true.
// Stage-fatal errors are left for the caller to propagate.
func (a *rowFailures) absorb(err error) bool {
	var rf *failedRowsError
	if errors.As(err, &rf) {
		a.failed += rf.failed
		a.processed += rf.processed
		return true
	}
	return false
}

func (a *rowFailures) err() error {
	return failedRows(a.failed, a.processed)
}

// Maintenance phase markers, recorded both on the job tracker and in
// pipeline_kv so the dashboard shows where a scheduled run is.
const (
	phaseMaintenanceIngest  = "maintenance_ingest"
	phaseMaintenanceLabel   = "maintenance_label"
	phaseRetentionPlan      = "maintenance_retention_plan"
	phaseArchivePush        = "maintenance_archive_push"
	phaseInboxCleanup       = "maintenance_inbox_cleanup"
	phasePolicyApply        = "maintenance_policy_apply"
	phaseEventExtract       = "maintenance_event_extract"
	phasePaymentExtract     = "maintenance_payment_extract"
	phaseMaintenanceLabelGo = "maintenance_label_push"
)

// RunMaintenance runs the whole daily sequence: ingest, label the recent
// window, push labels, plan and push archives, age the inbox, apply due
// hygiene policies, then extract events and payments.
//
// The cutoff that bounds labeling and extraction is the checkpoint as it
// stood before ingestion (seeded to the backfill window on first run), so
// a message is only considered "recent" on the run that ingested it.
func (p *PipelineService) RunMaintenance(ctx context.Context, t *jobs.Tracker) error {
	cutoff, err := p.maintenanceCutoff(ctx)
	if err != nil {
		return err
	}
	slog.Info("Maintenance starting", "cutoff", cutoff.Format(time.RFC3339))

	var tally rowFailures

	p.setPhase(ctx, t, phaseMaintenanceIngest)
	if err := p.RunIngest(ctx, t, false); err != nil && !tally.absorb(err) {
		return fmt.Errorf("maintenance ingest failed: %w", err)
	}

	p.setPhase(ctx, t, phaseMaintenanceLabel)
	unlabelled, err := p.messages.CountUnlabelledSince(ctx, cutoff)
	if err != nil {
		return err
	}
	switch {
	case unlabelled == 0:
		t.SetMessage("No unlabelled messages in the recent window")
	case unlabelled <= p.cfg.Pipeline.PerMessageThreshold:
		if err := p.RunIncrementalLabel(ctx, t, cutoff); err != nil && !tally.absorb(err) {
			return fmt.Errorf("maintenance labeling failed: %w", err)
		}
	default:
		// Large backlogs (first run, long downtime) go through the
		// cluster engine: one model call per cluster instead of per
		// message.
		if err := p.RunClusterLabel(ctx, t); err != nil {
			return fmt.Errorf("maintenance labeling failed: %w", err)
		}
	}

	p.setPhase(ctx, t, phaseMaintenanceLabelGo)
	if err := p.RunLabelPush(ctx, t, false); err != nil && !tally.absorb(err) {
		return fmt.Errorf("maintenance label push failed: %w", err)
	}

	p.setPhase(ctx, t, phaseRetentionPlan)
	defaultDays, err := p.checkpoints.RetentionDefaultDays(ctx, p.cfg.Pipeline.RetentionDefaultDays)
	if err != nil {
		return err
	}
	planned, err := p.planner.PlanArchive(ctx, defaultDays)
	if err != nil {
		return fmt.Errorf("maintenance retention planning failed: %w", err)
	}
	t.SetMessage(fmt.Sprintf("Planned %d message(s) for archive", planned))

	p.setPhase(ctx, t, phaseArchivePush)
	if err := p.RunArchivePush(ctx, t, false); err != nil && !tally.absorb(err) {
		return fmt.Errorf("maintenance archive push failed: %w", err)
	}

	p.setPhase(ctx, t, phaseInboxCleanup)
	if err := p.RunInboxCleanup(ctx, t); err != nil && !tally.absorb(err) {
		return fmt.Errorf("maintenance inbox cleanup failed: %w", err)
	}

	// Hygiene policies run cadence-gated here; the policy-apply job is
	// the forced variant.
	p.setPhase(ctx, t, phasePolicyApply)
	if err := p.runPolicyApply(ctx, t, false); err != nil && !tally.absorb(err) {
		return fmt.Errorf("maintenance policy apply failed: %w", err)
	}

	if err := p.runExtractEvents(ctx, t, cutoff); err != nil && !tally.absorb(err) {
		return fmt.Errorf("maintenance event extraction failed: %w", err)
	}
	if err := p.runExtractPayments(ctx, t, cutoff); err != nil && !tally.absorb(err) {
		return fmt.Errorf("maintenance payment extraction failed: %w", err)
	}

	if err := tally.err(); err != nil {
		slog.Warn("Maintenance finished with row failures", "error", err)
		return err
	}
	t.SetMessage("Maintenance complete")
	slog.Info("Maintenance done")
	return nil
}

// maintenanceCutoff returns the checkpoint before ingestion, seeding it
// to now minus the backfill window on first run so the initial pass does
// not try to label and extract the whole mailbox history.
func (p *PipelineService) maintenanceCutoff(ctx context.Context) (time.Time, error) {
	watermark, ok, err := p.checkpoints.Watermark(ctx)
	if err != nil {
		return time.Time{}, err
	}
	if ok {
		return watermark, nil
	}
	seeded := time.Now().UTC().AddDate(0, 0, -p.cfg.Pipeline.BackfillDays)
	if err := p.checkpoints.SetWatermark(ctx, seeded); err != nil {
		return time.Time{}, err
	}
	slog.Info("No ingest checkpoint; seeding backfill window",
		"backfill_days", p.cfg.Pipeline.BackfillDays,
		"checkpoint", seeded.Format(time.RFC3339))
	return seeded, nil
}

// setPhase records a maintenance phase on both the tracker and
// pipeline_kv. The kv write is best-effort: a failed marker must not
// abort the run. Sub-stages overwrite the kv phase with their own names
// (e.g. labeling writes its usual marker), which is fine: the kv value
// answers "what is the pipeline doing right now".
func (p *PipelineService) setPhase(ctx context.Context, t *jobs.Tracker, phase string) {
	t.SetPhase(phase)
	if err := p.checkpoints.SetCurrentPhase(ctx, phase); err != nil {
		slog.Warn("Failed to record pipeline phase", "phase", phase, "error", err)
	}
}
