// Package checkpoint persists pipeline state in the pipeline_kv table.
//
// The ingestion watermark is the core piece: it is only advanced after a
// message has been fully persisted (row, vector point), so a crash at any
// point re-processes at most the in-flight message.
package checkpoint

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/mailscope/mailscope/ent"
	"github.com/mailscope/mailscope/ent/pipelinekv"
)

const (
	// KeyWatermark stores the internal date of the newest fully ingested message.
	KeyWatermark = "last_ingested_internal_date"
	// KeyCurrentPhase stores a human-readable pipeline phase marker.
	KeyCurrentPhase = "current_phase"
	// KeyRetentionDefaultDays overrides the configured archive fallback.
	KeyRetentionDefaultDays = "retention_default_days"
)

// Store reads and writes pipeline key/value state.
type Store struct {
	client *ent.Client
}

// NewStore creates a checkpoint store over the given Ent client.
func NewStore(client *ent.Client) *Store {
	return &Store{client: client}
}

// Get returns the raw value for a key. The second return is false when the
// key does not exist.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	row, err := s.client.PipelineKV.Get(ctx, key)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read pipeline kv %q: %w", key, err)
	}
	return row.Value, true, nil
}

// Set upserts a key/value pair.
func (s *Store) Set(ctx context.Context, key, value string) error {
	err := s.client.PipelineKV.Create().
		SetID(key).
		SetValue(value).
		OnConflictColumns(pipelinekv.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to write pipeline kv %q: %w", key, err)
	}
	return nil
}

// Delete removes a key. Missing keys are not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.PipelineKV.Delete().
		Where(pipelinekv.ID(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete pipeline kv %q: %w", key, err)
	}
	return nil
}

// Watermark returns the ingestion checkpoint. The second return is false
// when no checkpoint exists yet (first run).
func (s *Store) Watermark(ctx context.Context) (time.Time, bool, error) {
	raw, ok, err := s.Get(ctx, KeyWatermark)
	if err != nil || !ok {
		return time.Time{}, false, err
	}
	t, err := ParseWatermark(raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid checkpoint value %q: %w", raw, err)
	}
	return t, true, nil
}

// SetWatermark advances the ingestion checkpoint. Callers are responsible
// for only moving it forward.
func (s *Store) SetWatermark(ctx context.Context, t time.Time) error {
	return s.Set(ctx, KeyWatermark, t.UTC().Format(time.RFC3339))
}

// SetCurrentPhase records the pipeline phase shown on the dashboard.
func (s *Store) SetCurrentPhase(ctx context.Context, phase string) error {
	return s.Set(ctx, KeyCurrentPhase, phase)
}

// CurrentPhase returns the recorded phase, or "" when never set.
func (s *Store) CurrentPhase(ctx context.Context) (string, error) {
	raw, _, err := s.Get(ctx, KeyCurrentPhase)
	return raw, err
}

// RetentionDefaultDays returns the stored retention default, falling back
// to the given value when the key is absent or malformed.
func (s *Store) RetentionDefaultDays(ctx context.Context, fallback int) (int, error) {
	raw, ok, err := s.Get(ctx, KeyRetentionDefaultDays)
	if err != nil {
		return 0, err
	}
	if !ok {
		return fallback, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		return fallback, nil
	}
	return days, nil
}

// ParseWatermark parses a stored checkpoint value. Accepts RFC 3339 with
// either a numeric offset or a trailing Z, and a bare local-less timestamp
// which is treated as UTC.
func ParseWatermark(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02T15:04:05", raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
