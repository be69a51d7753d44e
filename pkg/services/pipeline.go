// Package services wires the pipeline stages into runnable jobs.
//
// PipelineService owns one method per job kind; each adapts the stage's
// progress callbacks onto a jobs.Tracker so the API can stream state.
// JobService binds kinds to those methods and enforces the configuration
// each kind needs before it is admitted to the registry.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mailscope/mailscope/pkg/calendar"
	"github.com/mailscope/mailscope/pkg/checkpoint"
	"github.com/mailscope/mailscope/pkg/config"
	"github.com/mailscope/mailscope/pkg/extract"
	"github.com/mailscope/mailscope/pkg/gmail"
	"github.com/mailscope/mailscope/pkg/ingest"
	"github.com/mailscope/mailscope/pkg/jobs"
	"github.com/mailscope/mailscope/pkg/labeling"
	"github.com/mailscope/mailscope/pkg/outbox"
	"github.com/mailscope/mailscope/pkg/policy"
	"github.com/mailscope/mailscope/pkg/taxonomy"
	"github.com/mailscope/mailscope/pkg/vector"
)

// Batch sizes for outbox drains. Label pushes are cheaper per call than
// archive modifications, so they run in larger rounds.
const (
	labelPushBatch   = 250
	archivePushBatch = 200
	inboxCleanBatch  = 200
)

// Event extraction is scoped to the ticketing slice of the taxonomy;
// payment extraction takes the whole financial category.
const (
	extractCategory         = "Financial"
	eventExtractSubcategory = "Tickets & Bookings"
)

// failedRowsError marks a run that finished but left failed rows
// behind. Jobs carrying one end in the failed state; progress already
// made (checkpoints, outbox marks, written records) stays committed.
type failedRowsError struct {
	failed    int
	processed int
}

func (e *failedRowsError) Error() string {
	return fmt.Sprintf("%d of %d row(s) failed", e.failed, e.processed)
}

// failedRows returns a terminal error when any rows failed, nil otherwise.
func failedRows(failed, processed int) error {
	if failed > 0 {
		return &failedRowsError{failed: failed, processed: processed}
	}
	return nil
}

// PipelineService exposes every pipeline stage as a tracker-driven run.
type PipelineService struct {
	cfg         *config.Config
	checkpoints *checkpoint.Store
	messages    *labeling.Store
	ingestor    *ingest.Ingestor
	engine      *labeling.Engine
	worker      *outbox.Worker
	planner     *outbox.Planner
	extracts    *extract.Store
	extractor   *extract.Runner
	index       *vector.Index
	taxo        *taxonomy.Service
	provider    *gmail.Client
	policies    *policy.Engine

	// publisher is nil when calendar publishing is not configured.
	publisher *calendar.Publisher
}

// NewPipelineService creates a new PipelineService. The publisher may be
// nil; everything else is required.
func NewPipelineService(
	cfg *config.Config,
	checkpoints *checkpoint.Store,
	messages *labeling.Store,
	ingestor *ingest.Ingestor,
	engine *labeling.Engine,
	worker *outbox.Worker,
	planner *outbox.Planner,
	extracts *extract.Store,
	extractor *extract.Runner,
	index *vector.Index,
	taxo *taxonomy.Service,
	provider *gmail.Client,
	policies *policy.Engine,
	publisher *calendar.Publisher,
) *PipelineService {
	if cfg == nil {
		panic("NewPipelineService: cfg must not be nil")
	}
	if checkpoints == nil {
		panic("NewPipelineService: checkpoints must not be nil")
	}
	if messages == nil {
		panic("NewPipelineService: messages must not be nil")
	}
	if ingestor == nil {
		panic("NewPipelineService: ingestor must not be nil")
	}
	if engine == nil {
		panic("NewPipelineService: engine must not be nil")
	}
	if worker == nil {
		panic("NewPipelineService: worker must not be nil")
	}
	if planner == nil {
		panic("NewPipelineService: planner must not be nil")
	}
	if extracts == nil {
		panic("NewPipelineService: extracts must not be nil")
	}
	if extractor == nil {
		panic("NewPipelineService: extractor must not be nil")
	}
	if index == nil {
		panic("NewPipelineService: index must not be nil")
	}
	if taxo == nil {
		panic("NewPipelineService: taxo must not be nil")
	}
	if provider == nil {
		panic("NewPipelineService: provider must not be nil")
	}
	if policies == nil {
		panic("NewPipelineService: policies must not be nil")
	}
	return &PipelineService{
		cfg:         cfg,
		checkpoints: checkpoints,
		messages:    messages,
		ingestor:    ingestor,
		engine:      engine,
		worker:      worker,
		planner:     planner,
		extracts:    extracts,
		extractor:   extractor,
		index:       index,
		taxo:        taxo,
		provider:    provider,
		policies:    policies,
		publisher:   publisher,
	}
}

// Publisher returns the calendar publisher, or nil when publishing is not
// configured.
func (p *PipelineService) Publisher() *calendar.Publisher {
	return p.publisher
}

// Extracts returns the extraction store for read paths (events, payments).
func (p *PipelineService) Extracts() *extract.Store {
	return p.extracts
}

// Messages returns the labeling store for read paths (status counters).
func (p *PipelineService) Messages() *labeling.Store {
	return p.messages
}

// Checkpoints returns the pipeline kv store.
func (p *PipelineService) Checkpoints() *checkpoint.Store {
	return p.checkpoints
}

// Planner returns the retention planner for read paths.
func (p *PipelineService) Planner() *outbox.Planner {
	return p.planner
}

// RunIngest runs metadata ingestion. A full run clears the checkpoint
// first so the whole mailbox is listed again; refresh picks up from the
// watermark. Either way, already-ingested messages are skipped, not
// rewritten.
func (p *PipelineService) RunIngest(ctx context.Context, t *jobs.Tracker, full bool) error {
	t.SetPhase(ingest.PhaseName)
	if full {
		if err := p.checkpoints.Delete(ctx, checkpoint.KeyWatermark); err != nil {
			return err
		}
		t.SetMessage("Checkpoint cleared for full re-ingestion")
	}
	if err := p.index.EnsureCollection(ctx); err != nil {
		return err
	}

	sum, err := p.ingestor.Run(ctx, ingest.Options{
		OnProgress: func(pr ingest.Progress) {
			t.Update(jobs.Counters{
				Processed:       pr.Processed + pr.Skipped + pr.Failed,
				Inserted:        pr.Processed,
				SkippedExisting: pr.Skipped,
				Failed:          pr.Failed,
			}, pr.Message)
		},
	})
	if err != nil {
		return err
	}
	t.Update(jobs.Counters{
		Processed:       sum.Processed + sum.Skipped + sum.Failed,
		Inserted:        sum.Processed,
		SkippedExisting: sum.Skipped,
		Failed:          sum.Failed,
	}, fmt.Sprintf("Ingested %d message(s), skipped %d, failed %d", sum.Processed, sum.Skipped, sum.Failed))
	return failedRows(sum.Failed, sum.Processed+sum.Skipped+sum.Failed)
}

// RunClusterLabel runs the bulk clustering/labeling pipeline over the
// whole unlabelled backlog.
func (p *PipelineService) RunClusterLabel(ctx context.Context, t *jobs.Tracker) error {
	t.SetPhase(labeling.BulkPhaseName)
	if err := p.index.EnsureCollection(ctx); err != nil {
		return err
	}
	total, err := p.messages.CountUnlabelled(ctx)
	if err != nil {
		return err
	}
	t.SetTotal(total)

	sum, err := p.engine.RunClusters(ctx, labeling.ClusterOptions{
		OnProgress: func(pr labeling.ClusterProgress) {
			t.Update(jobs.Counters{
				Processed: pr.EmailsLabeled,
				Inserted:  pr.EmailsLabeled,
			}, pr.Message)
		},
	})
	if err != nil {
		return err
	}
	t.Update(jobs.Counters{
		Processed: sum.EmailsLabeled,
		Inserted:  sum.EmailsLabeled,
	}, fmt.Sprintf("Labelled %d message(s) across %d cluster(s)", sum.EmailsLabeled, sum.ClustersDone))
	return nil
}

// RunIncrementalLabel labels unlabelled messages one at a time. A
// non-zero since bounds the run to the recent window.
func (p *PipelineService) RunIncrementalLabel(ctx context.Context, t *jobs.Tracker, since time.Time) error {
	t.SetPhase(labeling.IncrementalPhaseName)

	var (
		total int
		err   error
	)
	if since.IsZero() {
		total, err = p.messages.CountUnlabelled(ctx)
	} else {
		total, err = p.messages.CountUnlabelledSince(ctx, since)
	}
	if err != nil {
		return err
	}
	t.SetTotal(total)

	sum, err := p.engine.RunIncremental(ctx, labeling.IncrementalOptions{
		Since: since,
		OnProgress: func(pr labeling.IncrementalProgress) {
			t.Update(jobs.Counters{
				Processed: pr.Processed,
				Inserted:  pr.Labeled,
				Failed:    pr.Failed,
			}, pr.Message)
		},
	})
	if err != nil {
		return err
	}
	t.Update(jobs.Counters{
		Processed: sum.Processed,
		Inserted:  sum.Labeled,
		Failed:    sum.Failed,
	}, fmt.Sprintf("Labelled %d of %d message(s), failed %d", sum.Labeled, sum.Processed, sum.Failed))
	return failedRows(sum.Failed, sum.Processed)
}

// RunLabelPush syncs taxonomy labels to the provider, then drains the
// label-push outbox. The sync runs first so every queued push has a
// provider label id to target.
func (p *PipelineService) RunLabelPush(ctx context.Context, t *jobs.Tracker, retryFailed bool) error {
	t.SetPhase("label_sync")
	syncRes, err := p.taxo.SyncProviderLabels(ctx, p.provider)
	if err != nil {
		return err
	}
	if syncRes.Created > 0 || syncRes.Renamed > 0 || syncRes.Failed > 0 {
		t.SetMessage(fmt.Sprintf("Provider labels synced: %d created, %d renamed, %d failed",
			syncRes.Created, syncRes.Renamed, syncRes.Failed))
	}

	t.SetPhase("label_push")
	sum, err := p.worker.PushLabels(ctx, outbox.PushOptions{
		BatchSize:   labelPushBatch,
		RetryFailed: retryFailed,
		OnProgress:  pushProgress(t),
	})
	if err != nil {
		return err
	}
	t.Update(pushCounters(sum), fmt.Sprintf("Pushed %d label change(s), failed %d", sum.Succeeded, sum.Failed))
	return failedRows(sum.Failed+syncRes.Failed,
		sum.Processed+syncRes.Created+syncRes.Renamed+syncRes.Failed)
}

// RunArchivePush drains the archive outbox.
func (p *PipelineService) RunArchivePush(ctx context.Context, t *jobs.Tracker, retryFailed bool) error {
	t.SetPhase("archive_push")
	sum, err := p.worker.PushArchive(ctx, outbox.PushOptions{
		BatchSize:   archivePushBatch,
		RetryFailed: retryFailed,
		OnProgress:  pushProgress(t),
	})
	if err != nil {
		return err
	}
	t.Update(pushCounters(sum), fmt.Sprintf("Archived %d message(s), failed %d", sum.Succeeded, sum.Failed))
	return failedRows(sum.Failed, sum.Processed)
}

// RunInboxCleanup removes the INBOX label from messages older than the
// configured retention window. Taxonomy labels are untouched.
func (p *PipelineService) RunInboxCleanup(ctx context.Context, t *jobs.Tracker) error {
	t.SetPhase("inbox_cleanup")
	cutoff := time.Now().UTC().AddDate(0, 0, -p.cfg.Pipeline.InboxRetentionDays)
	sum, err := p.worker.CleanupInbox(ctx, cutoff, outbox.PushOptions{
		BatchSize:  inboxCleanBatch,
		OnProgress: pushProgress(t),
	})
	if err != nil {
		return err
	}
	t.Update(pushCounters(sum), fmt.Sprintf("Aged %d message(s) out of the inbox, failed %d", sum.Succeeded, sum.Failed))
	return failedRows(sum.Failed, sum.Processed)
}

// RunPolicyApply evaluates every enabled hygiene policy and trashes the
// matches, regardless of cadence. Cadence gating only applies inside the
// maintenance sequence.
func (p *PipelineService) RunPolicyApply(ctx context.Context, t *jobs.Tracker) error {
	return p.runPolicyApply(ctx, t, true)
}

func (p *PipelineService) runPolicyApply(ctx context.Context, t *jobs.Tracker, force bool) error {
	t.SetPhase(phasePolicyApply)
	sum, err := p.policies.Apply(ctx, policy.ApplyOptions{
		Force: force,
		OnProgress: func(pr policy.ApplyProgress) {
			t.Update(jobs.Counters{
				Processed: pr.Matched,
				Inserted:  pr.Trashed,
				Failed:    pr.Failed,
			}, pr.Message)
		},
	})
	if err != nil {
		return err
	}
	t.Update(jobs.Counters{
		Processed: sum.Matched,
		Inserted:  sum.Trashed,
		Failed:    sum.Failed,
	}, fmt.Sprintf("Applied %d policy(ies): trashed %d message(s), failed %d", sum.Policies, sum.Trashed, sum.Failed))
	return failedRows(sum.Failed, sum.Matched)
}

// RunTrashSync mirrors the provider Trash folder into lifecycle_state.
func (p *PipelineService) RunTrashSync(ctx context.Context, t *jobs.Tracker) error {
	t.SetPhase("trash_sync")
	sum, err := p.worker.SyncTrash(ctx)
	if err != nil {
		return err
	}
	t.Update(jobs.Counters{
		Processed: sum.Trashed + sum.Untrashed,
		Inserted:  sum.Trashed,
	}, fmt.Sprintf("Marked %d message(s) trashed, restored %d", sum.Trashed, sum.Untrashed))
	return nil
}

// RunExtractEvents extracts events from unprocessed ticketing messages
// received inside the configured lookback window.
func (p *PipelineService) RunExtractEvents(ctx context.Context, t *jobs.Tracker) error {
	since := time.Now().UTC().AddDate(0, 0, -p.cfg.Pipeline.EventLookbackDays)
	return p.runExtractEvents(ctx, t, since)
}

func (p *PipelineService) runExtractEvents(ctx context.Context, t *jobs.Tracker, since time.Time) error {
	t.SetPhase(phaseEventExtract)
	if p.cfg.Model.OllamaHost == "" {
		t.SetMessage("Skipping event extraction: model host not configured")
		return nil
	}
	sum, err := p.extractor.RunEvents(ctx, extractCategory, eventExtractSubcategory, since, extract.Options{
		OnProgress: extractProgress(t),
	})
	if err != nil {
		return err
	}
	t.Update(extractCounters(sum), fmt.Sprintf("Extracted %d event(s) from %d message(s)", sum.Extracted, sum.Processed))
	return failedRows(sum.Failed, sum.Processed)
}

// RunExtractPayments extracts payments from the union of unprocessed
// financial messages and the recent-window slice.
func (p *PipelineService) RunExtractPayments(ctx context.Context, t *jobs.Tracker) error {
	since := time.Now().UTC().AddDate(0, 0, -p.cfg.Pipeline.PaymentLookbackDays)
	return p.runExtractPayments(ctx, t, since)
}

func (p *PipelineService) runExtractPayments(ctx context.Context, t *jobs.Tracker, since time.Time) error {
	t.SetPhase(phasePaymentExtract)
	if p.cfg.Model.OllamaHost == "" {
		t.SetMessage("Skipping payment extraction: model host not configured")
		return nil
	}
	sum, err := p.extractor.RunPayments(ctx, extractCategory, since, extract.Options{
		OnProgress: extractProgress(t),
	})
	if err != nil {
		return err
	}
	t.Update(extractCounters(sum), fmt.Sprintf("Extracted %d payment(s) from %d message(s)", sum.Extracted, sum.Processed))
	return failedRows(sum.Failed, sum.Processed)
}

func pushProgress(t *jobs.Tracker) func(outbox.PushProgress) {
	return func(pr outbox.PushProgress) {
		if pr.Total > 0 {
			t.SetTotal(pr.Total)
		}
		t.Update(jobs.Counters{
			Processed: pr.Processed,
			Inserted:  pr.Succeeded,
			Failed:    pr.Failed,
		}, pr.Message)
	}
}

func pushCounters(sum outbox.PushSummary) jobs.Counters {
	return jobs.Counters{
		Processed: sum.Processed,
		Inserted:  sum.Succeeded,
		Failed:    sum.Failed,
	}
}

func extractProgress(t *jobs.Tracker) func(extract.Progress) {
	return func(pr extract.Progress) {
		if pr.Total > 0 {
			t.SetTotal(pr.Total)
		}
		t.Update(jobs.Counters{
			Processed:       pr.Processed,
			Inserted:        pr.Extracted,
			SkippedExisting: pr.Empty,
			Failed:          pr.Failed,
		}, pr.Message)
	}
}

func extractCounters(sum extract.Summary) jobs.Counters {
	return jobs.Counters{
		Processed:       sum.Processed,
		Inserted:        sum.Extracted,
		SkippedExisting: sum.Empty,
		Failed:          sum.Failed,
	}
}
