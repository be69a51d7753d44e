package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates GIN indexes for PostgreSQL.
// label_ids is a JSONB array of provider label ids; the GIN index makes
// containment queries (messages carrying INBOX, UNREAD, TRASH) cheap.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_email_messages_label_ids_gin
		ON email_messages USING gin(label_ids jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create label_ids GIN index: %w", err)
	}

	// GIN index for subject full-text search on the dashboard
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_email_messages_subject_gin
		ON email_messages USING gin(to_tsvector('english', COALESCE(subject, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create subject GIN index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. These must match the constraints in
// 000001_init.up.sql.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one unprocessed label push per message; enqueue uses
	// INSERT ... WHERE NOT EXISTS and this index backs the race
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS labeloutbox_message_id_unprocessed
		ON label_push_outbox (message_id)
		WHERE processed_at IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create label outbox unprocessed index: %w", err)
	}

	return nil
}
