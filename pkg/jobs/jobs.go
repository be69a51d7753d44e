// Package jobs is the in-process job runner: single-flight background
// work with polling-friendly status snapshots and a bounded pub/sub for
// SSE streaming. Jobs are not persistent; checkpoints and outboxes are
// what make the pipeline itself durable across restarts.
package jobs

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind names a runnable job.
type Kind string

const (
	KindIngestFull       Kind = "ingest-full"
	KindIngestRefresh    Kind = "ingest-refresh"
	KindClusterLabel     Kind = "cluster-label"
	KindLabelIncremental Kind = "label-incremental"
	KindMaintenance      Kind = "maintenance"
	KindLabelPush        Kind = "label-push"
	KindArchivePush      Kind = "archive-push"
	KindInboxCleanup     Kind = "inbox-cleanup"
	KindTrashSync        Kind = "trash-sync"
	KindPolicyApply      Kind = "policy-apply"
	KindExtractEvents    Kind = "extract-events"
	KindExtractPayments  Kind = "extract-payments"
)

// State is a job lifecycle state.
type State string

const (
	StateQueued    State = "queued"
	StateRunning   State = "running"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// Terminal reports whether the state is final.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed
}

// Counters are the standard progress counters every job reports.
type Counters struct {
	Processed       int `json:"processed"`
	Inserted        int `json:"inserted"`
	SkippedExisting int `json:"skipped_existing"`
	Failed          int `json:"failed"`
}

// Status is an immutable snapshot of a job, safe to hand to HTTP
// handlers and SSE subscribers.
type Status struct {
	JobID     string    `json:"job_id"`
	Kind      Kind      `json:"kind"`
	State     State     `json:"state"`
	Phase     string    `json:"phase,omitempty"`
	StartedAt time.Time `json:"started_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// Total is the expected number of items, 0 when unknown.
	Total    int      `json:"total,omitempty"`
	Percent  *float64 `json:"percent,omitempty"`
	Counters Counters `json:"counters"`
	Message  string   `json:"message,omitempty"`
	ETAHint  string   `json:"eta_hint,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}

// NewJobID generates a sortable, human-scannable job id:
// job-<yyyymmdd-hhmmss>-<kind>-<hex6>.
func NewJobID(kind Kind) string {
	stamp := time.Now().UTC().Format("20060102-150405")
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("job-%s-%s-%s", stamp, kind, hex)
}

// ETAHint estimates the remaining duration from progress so far.
// Returns "" when the total is unknown or no progress has been made.
func ETAHint(total, processed int, elapsed time.Duration) string {
	if total <= 0 || processed <= 0 || processed >= total || elapsed <= 0 {
		return ""
	}
	rate := float64(processed) / elapsed.Seconds()
	if rate <= 0 {
		return ""
	}
	remaining := time.Duration(float64(total-processed)/rate) * time.Second
	return "~" + remaining.Round(time.Second).String()
}

func percentOf(total, processed int) *float64 {
	if total <= 0 {
		return nil
	}
	p := 100 * float64(processed) / float64(total)
	return &p
}
