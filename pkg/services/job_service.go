package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mailscope/mailscope/pkg/config"
	"github.com/mailscope/mailscope/pkg/jobs"
)

// ErrUnknownKind is returned when a job kind is not recognized.
var ErrUnknownKind = fmt.Errorf("unknown job kind")

// JobService admits jobs into the registry. Each kind is validated
// against the configuration it needs before it is started, so a missing
// model host fails the request instead of the job.
type JobService struct {
	cfg      *config.Config
	registry *jobs.Registry
	pipeline *PipelineService
}

// NewJobService creates a new JobService.
func NewJobService(cfg *config.Config, registry *jobs.Registry, pipeline *PipelineService) *JobService {
	if cfg == nil {
		panic("NewJobService: cfg must not be nil")
	}
	if registry == nil {
		panic("NewJobService: registry must not be nil")
	}
	if pipeline == nil {
		panic("NewJobService: pipeline must not be nil")
	}
	return &JobService{
		cfg:      cfg,
		registry: registry,
		pipeline: pipeline,
	}
}

// Registry exposes the underlying registry for status and streaming reads.
func (s *JobService) Registry() *jobs.Registry {
	return s.registry
}

// Start validates and starts a job of the given kind. It returns the new
// job id, or the running job's id with jobs.ErrJobRunning when another
// job holds the single-flight slot.
func (s *JobService) Start(kind jobs.Kind) (string, error) {
	fn, err := s.runnerFor(kind)
	if err != nil {
		return "", err
	}
	return s.registry.Start(kind, fn)
}

// runnerFor maps a kind to its pipeline method and checks the
// configuration that kind depends on. Provider credentials gate
// everything that talks to Gmail; the model host additionally gates
// ingestion (embeddings), labeling and extraction.
func (s *JobService) runnerFor(kind jobs.Kind) (jobs.Fn, error) {
	if err := s.cfg.RequireProvider(); err != nil {
		return nil, err
	}

	switch kind {
	case jobs.KindIngestFull:
		return s.modelJob(func(ctx context.Context, t *jobs.Tracker) error {
			return s.pipeline.RunIngest(ctx, t, true)
		})
	case jobs.KindIngestRefresh:
		return s.modelJob(func(ctx context.Context, t *jobs.Tracker) error {
			return s.pipeline.RunIngest(ctx, t, false)
		})
	case jobs.KindClusterLabel:
		return s.modelJob(s.pipeline.RunClusterLabel)
	case jobs.KindLabelIncremental:
		return s.modelJob(func(ctx context.Context, t *jobs.Tracker) error {
			return s.pipeline.RunIncrementalLabel(ctx, t, time.Time{})
		})
	case jobs.KindMaintenance:
		return s.modelJob(s.pipeline.RunMaintenance)
	case jobs.KindLabelPush:
		return func(ctx context.Context, t *jobs.Tracker) error {
			return s.pipeline.RunLabelPush(ctx, t, true)
		}, nil
	case jobs.KindArchivePush:
		return func(ctx context.Context, t *jobs.Tracker) error {
			return s.pipeline.RunArchivePush(ctx, t, true)
		}, nil
	case jobs.KindInboxCleanup:
		return s.pipeline.RunInboxCleanup, nil
	case jobs.KindTrashSync:
		return s.pipeline.RunTrashSync, nil
	case jobs.KindPolicyApply:
		return s.pipeline.RunPolicyApply, nil
	case jobs.KindExtractEvents:
		return s.modelJob(s.pipeline.RunExtractEvents)
	case jobs.KindExtractPayments:
		return s.modelJob(s.pipeline.RunExtractPayments)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func (s *JobService) modelJob(fn jobs.Fn) (jobs.Fn, error) {
	if err := s.cfg.RequireModel(); err != nil {
		return nil, err
	}
	return fn, nil
}
