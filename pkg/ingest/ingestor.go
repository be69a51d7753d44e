// Package ingest implements incremental metadata ingestion.
//
// Each run lists provider messages newer than the checkpoint and, per
// message: persists the metadata row, builds the embedding text, generates
// the embedding and upserts the vector point. The checkpoint only advances
// after the vector write, so a crash re-processes at most the in-flight
// message. Bodies are never fetched here.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mailscope/mailscope/ent/emailmessage"
	"github.com/mailscope/mailscope/pkg/checkpoint"
	"github.com/mailscope/mailscope/pkg/database"
	"github.com/mailscope/mailscope/pkg/gmail"
	"github.com/mailscope/mailscope/pkg/labeling"
	"github.com/mailscope/mailscope/pkg/llm"
	"github.com/mailscope/mailscope/pkg/vector"
)

// PhaseName is recorded in pipeline_kv while ingestion runs.
const PhaseName = "phase1_metadata_ingestion"

var errMaxReached = errors.New("max messages reached")

// Config holds the embedding settings for ingestion.
type Config struct {
	EmbeddingModel string
	EmbeddingDim   int
}

// Progress is reported to the optional progress callback.
type Progress struct {
	Processed int
	Skipped   int
	Failed    int
	Message   string
}

// Options tunes a single run.
type Options struct {
	// MaxMessages caps how many messages are ingested; 0 means unlimited.
	MaxMessages int
	OnProgress  func(Progress)
}

// Summary is the outcome of a run.
type Summary struct {
	Processed  int
	Skipped    int
	Failed     int
	Checkpoint *time.Time
}

// Ingestor runs incremental metadata ingestion.
type Ingestor struct {
	db          *database.Client
	provider    *gmail.Client
	llm         *llm.Client
	index       *vector.Index
	checkpoints *checkpoint.Store
	cfg         Config
}

// NewIngestor wires an ingestor from its collaborators.
func NewIngestor(db *database.Client, provider *gmail.Client, llmClient *llm.Client, index *vector.Index, checkpoints *checkpoint.Store, cfg Config) *Ingestor {
	return &Ingestor{
		db:          db,
		provider:    provider,
		llm:         llmClient,
		index:       index,
		checkpoints: checkpoints,
		cfg:         cfg,
	}
}

// Run ingests all messages newer than the checkpoint. Per-message failures
// are counted and logged but never abort the run.
func (i *Ingestor) Run(ctx context.Context, opts Options) (Summary, error) {
	if err := i.checkpoints.SetCurrentPhase(ctx, PhaseName); err != nil {
		return Summary{}, err
	}

	watermark, hasWatermark, err := i.checkpoints.Watermark(ctx)
	if err != nil {
		return Summary{}, err
	}

	// Gmail supports `after:<unix_seconds>`. Query one second early to
	// avoid boundary misses; anything at or below the watermark is
	// filtered explicitly below.
	query := ""
	if hasWatermark {
		query = fmt.Sprintf("after:%d", watermark.Add(-time.Second).Unix())
	}

	slog.Info("Metadata ingestion starting",
		"checkpoint", formatWatermark(watermark, hasWatermark),
		"query", query)

	var sum Summary
	if hasWatermark {
		t := watermark
		sum.Checkpoint = &t
	}
	report := func(msg string) {
		if opts.OnProgress != nil {
			opts.OnProgress(Progress{
				Processed: sum.Processed,
				Skipped:   sum.Skipped,
				Failed:    sum.Failed,
				Message:   msg,
			})
		}
	}
	report("Starting")

	err = i.provider.ListMessageIDs(ctx, query, func(id string) error {
		if opts.MaxMessages > 0 && sum.Processed >= opts.MaxMessages {
			return errMaxReached
		}
		if err := i.ingestOne(ctx, id, watermark, hasWatermark, &sum, report); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			sum.Failed++
			slog.Error("Failed to ingest message", "message_id", id, "error", err)
			report(fmt.Sprintf("Failed message %s", id))
		}
		return nil
	})
	if err != nil && !errors.Is(err, errMaxReached) {
		return sum, err
	}

	slog.Info("Metadata ingestion done",
		"processed", sum.Processed,
		"skipped", sum.Skipped,
		"failed", sum.Failed,
		"checkpoint", formatCheckpoint(sum.Checkpoint))
	return sum, nil
}

func (i *Ingestor) ingestOne(ctx context.Context, id string, watermark time.Time, hasWatermark bool, sum *Summary, report func(string)) error {
	meta, err := i.provider.GetMessageMetadata(ctx, id)
	if err != nil {
		return err
	}

	// The query used a safety window, so filter explicitly against the
	// watermark the run started with.
	if hasWatermark && !meta.InternalDate.After(watermark) {
		sum.Skipped++
		report("Skipping already-ingested message")
		return nil
	}

	normalized := labeling.NormalizeSubject(meta.Subject)
	domain := DomainOf(meta.FromAddress)

	create := i.db.EmailMessage.Create().
		SetID(meta.MessageID).
		SetIsUnread(meta.IsUnread).
		SetInternalDate(meta.InternalDate).
		SetToAddresses(meta.ToAddresses).
		SetCcAddresses(meta.CcAddresses).
		SetBccAddresses(meta.BccAddresses).
		SetLabelIds(meta.LabelIDs)
	if meta.ThreadID != "" {
		create.SetThreadID(meta.ThreadID)
	}
	if meta.Subject != "" {
		create.SetSubject(meta.Subject)
	}
	if normalized != "" {
		create.SetSubjectNormalized(normalized)
	}
	if meta.FromAddress != "" {
		create.SetFromAddress(meta.FromAddress)
	}
	if domain != "" {
		create.SetFromDomain(domain)
	}
	err = create.
		OnConflictColumns(emailmessage.FieldID).
		Ignore().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to persist message %s: %w", meta.MessageID, err)
	}

	text := vector.EmbeddingText(normalized, domain, meta.IsUnread)
	vec, err := i.llm.Embed(ctx, i.cfg.EmbeddingModel, text, i.cfg.EmbeddingDim)
	if err != nil {
		return fmt.Errorf("embedding failed for %s: %w", meta.MessageID, err)
	}
	err = i.index.Upsert(ctx, vector.Point{
		MessageID:         meta.MessageID,
		FromDomain:        domain,
		SubjectNormalized: normalized,
		IsUnread:          meta.IsUnread,
	}, vec)
	if err != nil {
		return err
	}

	sum.Processed++
	report(fmt.Sprintf("Ingested metadata for message %d", sum.Processed))

	// Advance the checkpoint only now that the row and the vector exist.
	if sum.Checkpoint == nil || meta.InternalDate.After(*sum.Checkpoint) {
		t := meta.InternalDate
		sum.Checkpoint = &t
		if err := i.checkpoints.SetWatermark(ctx, t); err != nil {
			return err
		}
	}

	if sum.Processed%250 == 0 {
		slog.Info("Metadata ingestion progress",
			"processed", sum.Processed,
			"skipped", sum.Skipped,
			"failed", sum.Failed,
			"checkpoint", formatCheckpoint(sum.Checkpoint))
	}
	return nil
}

// DomainOf extracts the lowercased domain from an email address. Addresses
// without an "@" are returned whole, lowercased.
func DomainOf(address string) string {
	addr := strings.ToLower(strings.TrimSpace(address))
	if i := strings.Index(addr, "@"); i >= 0 {
		return addr[i+1:]
	}
	return addr
}

func formatWatermark(t time.Time, ok bool) string {
	if !ok {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatCheckpoint(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
