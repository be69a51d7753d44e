package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mailscope/mailscope/pkg/api"
	"github.com/mailscope/mailscope/pkg/calendar"
	"github.com/mailscope/mailscope/pkg/checkpoint"
	"github.com/mailscope/mailscope/pkg/config"
	"github.com/mailscope/mailscope/pkg/database"
	"github.com/mailscope/mailscope/pkg/extract"
	"github.com/mailscope/mailscope/pkg/gmail"
	"github.com/mailscope/mailscope/pkg/ingest"
	"github.com/mailscope/mailscope/pkg/jobs"
	"github.com/mailscope/mailscope/pkg/labeling"
	"github.com/mailscope/mailscope/pkg/llm"
	"github.com/mailscope/mailscope/pkg/outbox"
	"github.com/mailscope/mailscope/pkg/policy"
	"github.com/mailscope/mailscope/pkg/services"
	"github.com/mailscope/mailscope/pkg/taxonomy"
	"github.com/mailscope/mailscope/pkg/vector"
)

// app holds the wired application graph.
type app struct {
	cfg      *config.Config
	db       *database.Client
	index    *vector.Index
	taxo     *taxonomy.Service
	policies *policy.Store
	registry *jobs.Registry
	jobSvc   *services.JobService
	server   *api.Server
}

// buildApp wires every collaborator from configuration. The registry
// runs jobs on ctx, so cancelling it stops in-flight jobs.
func buildApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	db, err := database.NewClient(ctx, dbCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	slog.Info("Connected to PostgreSQL database")

	httpClient, err := gmail.NewHTTPClient(ctx, cfg.Provider.CredentialsPath, cfg.Provider.TokenPath)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to build gmail client: %w", err)
	}
	provider := gmail.NewClient(httpClient, cfg.Provider.UserID, gmail.WithPageSize(cfg.Provider.PageSize))

	llmClient := llm.NewClient(cfg.Model.OllamaHost, cfg.Model.RequestTimeout)

	index, err := vector.NewIndex(vector.Config{
		Host:       cfg.Vector.Host,
		Port:       cfg.Vector.Port,
		UseTLS:     cfg.Vector.UseTLS,
		Collection: cfg.Vector.Collection,
		Dim:        cfg.Model.EmbeddingDim,
		Version:    cfg.Pipeline.VectorVersion,
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to qdrant: %w", err)
	}

	checkpoints := checkpoint.NewStore(db.Client)
	taxo := taxonomy.NewService(db)
	messages := labeling.NewStore(db)

	labeler := labeling.NewLabeler(llmClient, cfg.Model.LabelModel)
	engine := labeling.NewEngine(messages, taxo, provider, labeler, llmClient, index,
		checkpoints.SetCurrentPhase,
		labeling.EngineConfig{
			SimilarityThreshold: cfg.Pipeline.SimilarityThreshold,
			LabelVersion:        cfg.Pipeline.LabelVersion,
			EmbeddingModel:      cfg.Model.EmbeddingModel,
			EmbeddingDim:        cfg.Model.EmbeddingDim,
		})

	ingestor := ingest.NewIngestor(db, provider, llmClient, index, checkpoints, ingest.Config{
		EmbeddingModel: cfg.Model.EmbeddingModel,
		EmbeddingDim:   cfg.Model.EmbeddingDim,
	})

	worker := outbox.NewWorker(db, provider, taxo, cfg.Pipeline.ArchiveLabelName)
	planner := outbox.NewPlanner(db)

	policyStore := policy.NewStore(db)
	policyEngine := policy.NewEngine(db, policyStore, provider)

	extracts := extract.NewStore(db)
	eventExtractor := extract.NewEventExtractor(llmClient, cfg.Model.ExtractModel)
	paymentExtractor := extract.NewPaymentExtractor(llmClient, cfg.Model.ExtractModel)
	extractor := extract.NewRunner(extracts, provider, eventExtractor, paymentExtractor)

	var publisher *calendar.Publisher
	if cfg.Calendar.Enabled() {
		calHTTP, err := gmail.NewHTTPClient(ctx, cfg.Calendar.CredentialsPath, cfg.Calendar.TokenPath, calendar.Scope)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to build calendar client: %w", err)
		}
		calClient := calendar.NewClient(calHTTP, cfg.Calendar.CalendarID)
		publisher = calendar.NewPublisher(extracts, calClient, cfg.Calendar.DefaultTimezone)
		slog.Info("Calendar publishing enabled", "calendar_id", cfg.Calendar.CalendarID)
	} else {
		slog.Info("Calendar publishing disabled (no credentials configured)")
	}

	pipeline := services.NewPipelineService(cfg, checkpoints, messages, ingestor, engine,
		worker, planner, extracts, extractor, index, taxo, provider, policyEngine, publisher)
	registry := jobs.NewRegistry(ctx)
	jobSvc := services.NewJobService(cfg, registry, pipeline)
	server := api.NewServer(db, pipeline, jobSvc, taxo, policyStore)

	return &app{
		cfg:      cfg,
		db:       db,
		index:    index,
		taxo:     taxo,
		policies: policyStore,
		registry: registry,
		jobSvc:   jobSvc,
		server:   server,
	}, nil
}

// Close releases external connections.
func (a *app) Close() {
	if err := a.index.Close(); err != nil {
		slog.Error("Error closing qdrant client", "error", err)
	}
	if err := a.db.Close(); err != nil {
		slog.Error("Error closing database client", "error", err)
	}
}
