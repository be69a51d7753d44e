package outbox

import (
	"context"
	"fmt"

	"github.com/mailscope/mailscope/ent/archiveoutbox"
	"github.com/mailscope/mailscope/pkg/database"
)

// ReasonRetentionEligible marks outbox rows enqueued by the planner.
const ReasonRetentionEligible = "retention_eligible"

// Planner computes retention eligibility and enqueues archive pushes.
type Planner struct {
	db *database.Client
}

// NewPlanner creates a retention planner.
func NewPlanner(db *database.Client) *Planner {
	return &Planner{db: db}
}

// planArchiveSQL enqueues messages older than their effective retention.
//
// Eligibility is based on when the message was received, not when it was
// labelled, so retention reflects message age even for late labeling.
// Effective retention is COALESCE(label, parent, default) days. The upsert
// is keyed by message_id; replanning resets previously processed or failed
// rows to pending, which is intentional (retention may have been
// shortened).
const planArchiveSQL = `
WITH eligible AS (
    SELECT
        em.message_id AS message_id,
        em.internal_date
            + (COALESCE(tl.retention_days, p.retention_days, $1)::text || ' days')::interval
            AS planned_for
    FROM email_messages em
    JOIN taxonomy_assignments ta ON ta.message_id = em.message_id
    JOIN taxonomy_labels tl ON tl.id = ta.label_id
    LEFT JOIN taxonomy_labels p ON p.id = tl.parent_id
    WHERE em.archived_at IS NULL
      AND em.lifecycle_state = 'active'
      AND em.internal_date <= (
        NOW() - (COALESCE(tl.retention_days, p.retention_days, $1)::text || ' days')::interval
      )
)
INSERT INTO archive_push_outbox (message_id, reason, planned_for, created_at)
SELECT e.message_id, $2, e.planned_for, NOW()
FROM eligible e
ON CONFLICT (message_id)
DO UPDATE SET
    created_at = NOW(),
    processed_at = NULL,
    error = NULL,
    planned_for = EXCLUDED.planned_for
RETURNING message_id
`

// PlanArchive enqueues every message past its effective retention into the
// archive outbox. Returns the number of rows inserted or reset.
func (p *Planner) PlanArchive(ctx context.Context, defaultDays int) (int, error) {
	rows, err := p.db.DB().QueryContext(ctx, planArchiveSQL, defaultDays, ReasonRetentionEligible)
	if err != nil {
		return 0, fmt.Errorf("failed to plan archive outbox: %w", err)
	}
	defer func() { _ = rows.Close() }()

	n := 0
	for rows.Next() {
		n++
	}
	if err := rows.Err(); err != nil {
		return n, fmt.Errorf("failed to read archive plan result: %w", err)
	}
	return n, nil
}

// CountPendingArchive returns how many archive pushes are queued.
func (p *Planner) CountPendingArchive(ctx context.Context) (int, error) {
	return p.db.ArchiveOutbox.Query().
		Where(archiveoutbox.ProcessedAtIsNil()).
		Count(ctx)
}
