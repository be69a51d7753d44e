// Package taxonomy manages the two-level label taxonomy, message
// assignments and the provider label mapping.
//
// Tier-1 is a closed set seeded at startup. Tier-2 is preferred but
// evolvable: the labeler may propose new subcategories, which are persisted
// so future prompts include them. Each message has at most one assignment
// (Tier-2 when present, otherwise Tier-1).
package taxonomy

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/mailscope/mailscope/ent"
	"github.com/mailscope/mailscope/ent/emailmessage"
	"github.com/mailscope/mailscope/ent/taxonomyassignment"
	"github.com/mailscope/mailscope/ent/taxonomylabel"
	"github.com/mailscope/mailscope/pkg/database"
	"github.com/mailscope/mailscope/pkg/labeling"
)

// ErrNotFound is returned when a label or message does not exist.
var ErrNotFound = errors.New("not found")

type tier1Seed struct {
	slug        string
	name        string
	description string
}

// Tier-1 slugs are fixed historically and do not match Slugify output
// exactly ("commercial-marketing", not "commercial-and-marketing").
var tier1Seeds = []tier1Seed{
	{"financial", "Financial",
		"Records, requests, or confirmations of financial transactions or obligations."},
	{"commercial-marketing", "Commercial & Marketing",
		"Influences purchasing or engagement decisions (includes legitimate newsletters and promotions)."},
	{"work-professional", "Work & Professional",
		"Related to employment, collaboration, or professional identity."},
	{"personal-social", "Personal & Social",
		"Personal relationships, community, education, and non-billing healthcare communications."},
	{"account-identity", "Account & Identity",
		"Manages access, identity, or account state (login alerts, password resets, confirmations)."},
	{"system-automated", "System & Automated",
		"Machine-generated state/event/failure notifications (GitHub, monitoring, CI/CD, SaaS)."},
}

// Service provides taxonomy operations over the database.
type Service struct {
	db *database.Client
}

// NewService creates a taxonomy service.
func NewService(db *database.Client) *Service {
	return &Service{db: db}
}

// EnsureSeeded inserts the Tier-1 and Tier-2 seed taxonomy. Idempotent;
// existing rows (including renamed ones) are left untouched.
func (s *Service) EnsureSeeded(ctx context.Context) error {
	for _, seed := range tier1Seeds {
		err := s.db.TaxonomyLabel.Create().
			SetLevel(1).
			SetSlug(seed.slug).
			SetName(seed.name).
			SetDescription(seed.description).
			OnConflictColumns(taxonomylabel.FieldSlug).
			Ignore().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed tier-1 label %q: %w", seed.name, err)
		}
	}

	for _, seed := range tier1Seeds {
		parent, err := s.db.TaxonomyLabel.Query().
			Where(taxonomylabel.SlugEQ(seed.slug)).
			Only(ctx)
		if err != nil {
			return fmt.Errorf("failed to load tier-1 label %q: %w", seed.slug, err)
		}
		for _, entry := range labeling.Tier2Seed[seed.name] {
			slug := parent.Slug + "--" + labeling.Slugify(entry.Name)
			err := s.db.TaxonomyLabel.Create().
				SetLevel(2).
				SetSlug(slug).
				SetName(entry.Name).
				SetDescription(entry.Description).
				SetParentID(parent.ID).
				OnConflictColumns(taxonomylabel.FieldSlug).
				Ignore().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to seed tier-2 label %q: %w", entry.Name, err)
			}
		}
	}
	return nil
}

// EnsureTier2 persists a model-proposed subcategory under the given Tier-1
// category. Idempotent by slug.
func (s *Service) EnsureTier2(ctx context.Context, categoryName, subcategoryName string) error {
	parent, err := s.db.TaxonomyLabel.Query().
		Where(taxonomylabel.LevelEQ(1), taxonomylabel.NameEQ(categoryName)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("tier-1 category %q: %w", categoryName, ErrNotFound)
		}
		return fmt.Errorf("failed to load tier-1 category %q: %w", categoryName, err)
	}

	slug := parent.Slug + "--" + labeling.Slugify(subcategoryName)
	err = s.db.TaxonomyLabel.Create().
		SetLevel(2).
		SetSlug(slug).
		SetName(subcategoryName).
		SetParentID(parent.ID).
		OnConflictColumns(taxonomylabel.FieldSlug).
		Ignore().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to persist tier-2 label %q: %w", subcategoryName, err)
	}
	return nil
}

// ListTier2Options returns the current active Tier-2 names grouped by their
// Tier-1 category name, sorted for stable prompts.
func (s *Service) ListTier2Options(ctx context.Context) (map[string][]string, error) {
	rows, err := s.db.TaxonomyLabel.Query().
		Where(taxonomylabel.LevelEQ(2), taxonomylabel.IsActive(true)).
		WithParent().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tier-2 options: %w", err)
	}

	out := map[string][]string{}
	for _, row := range rows {
		if row.Edges.Parent == nil {
			continue
		}
		out[row.Edges.Parent.Name] = append(out[row.Edges.Parent.Name], row.Name)
	}
	for cat := range out {
		sort.Strings(out[cat])
	}
	return out, nil
}

// AssignMessageLabel sets a message's single taxonomy assignment (Tier-2
// when resolvable, otherwise Tier-1) and enqueues a label push unless one
// is already pending. Unknown messages are skipped silently; ingestion and
// labeling can race with deletion.
func (s *Service) AssignMessageLabel(ctx context.Context, messageID, category, subcategory string, confidence *float64) error {
	exists, err := s.db.EmailMessage.Query().
		Where(emailmessage.ID(messageID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check message %s: %w", messageID, err)
	}
	if !exists {
		return nil
	}

	labelID, err := s.resolveLabelID(ctx, category, subcategory)
	if err != nil {
		return err
	}
	if labelID == 0 {
		return nil
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin assignment tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// One assignment per message: replace whatever is there.
	if _, err := tx.TaxonomyAssignment.Delete().
		Where(taxonomyassignment.MessageID(messageID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear previous assignment for %s: %w", messageID, err)
	}

	create := tx.TaxonomyAssignment.Create().
		SetMessageID(messageID).
		SetLabelID(labelID)
	if confidence != nil {
		create = create.SetConfidence(*confidence)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to save assignment for %s: %w", messageID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit assignment for %s: %w", messageID, err)
	}

	return s.EnqueueLabelPush(ctx, messageID, "label_assigned")
}

// EnqueueLabelPush inserts a label outbox row unless an unprocessed one
// already exists for the message. Raw SQL because Ent cannot express
// INSERT ... SELECT ... WHERE NOT EXISTS.
func (s *Service) EnqueueLabelPush(ctx context.Context, messageID, reason string) error {
	_, err := s.db.DB().ExecContext(ctx,
		`INSERT INTO label_push_outbox (message_id, reason)
		SELECT $1, $2
		WHERE NOT EXISTS (
			SELECT 1 FROM label_push_outbox
			WHERE message_id = $1 AND processed_at IS NULL
		)`, messageID, reason)
	if err != nil {
		return fmt.Errorf("failed to enqueue label push for %s: %w", messageID, err)
	}
	return nil
}

// resolveLabelID prefers the Tier-2 label under the category; when the
// subcategory cannot be resolved (malformed or overlong model output) it
// falls back to the Tier-1 label. Returns 0 when nothing resolves.
func (s *Service) resolveLabelID(ctx context.Context, category, subcategory string) (int, error) {
	if subcategory != "" {
		row, err := s.db.TaxonomyLabel.Query().
			Where(
				taxonomylabel.LevelEQ(2),
				taxonomylabel.NameEQ(subcategory),
				taxonomylabel.HasParentWith(
					taxonomylabel.LevelEQ(1),
					taxonomylabel.NameEQ(category),
				),
			).
			First(ctx)
		if err == nil {
			return row.ID, nil
		}
		if !ent.IsNotFound(err) {
			return 0, fmt.Errorf("failed to resolve tier-2 label %q: %w", subcategory, err)
		}
	}

	row, err := s.db.TaxonomyLabel.Query().
		Where(taxonomylabel.LevelEQ(1), taxonomylabel.NameEQ(category)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to resolve tier-1 label %q: %w", category, err)
	}
	return row.ID, nil
}

// ListLabels returns all taxonomy labels ordered by level, parent, name.
func (s *Service) ListLabels(ctx context.Context, includeInactive bool) ([]*ent.TaxonomyLabel, error) {
	q := s.db.TaxonomyLabel.Query()
	if !includeInactive {
		q = q.Where(taxonomylabel.IsActive(true))
	}
	rows, err := q.
		Order(ent.Asc(taxonomylabel.FieldLevel), ent.Asc(taxonomylabel.FieldParentID), ent.Asc(taxonomylabel.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list taxonomy labels: %w", err)
	}
	return rows, nil
}

// GetLabel returns one label, or ErrNotFound.
func (s *Service) GetLabel(ctx context.Context, id int) (*ent.TaxonomyLabel, error) {
	row, err := s.db.TaxonomyLabel.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load taxonomy label %d: %w", id, err)
	}
	return row, nil
}

// LabelUpdate is a partial update; nil fields are left unchanged.
// ClearRetention distinguishes "clear retention_days" from "leave alone".
type LabelUpdate struct {
	Name           *string
	Description    *string
	RetentionDays  *int
	ClearRetention bool
	IsActive       *bool
}

// UpdateLabel applies a partial update and returns the updated row.
func (s *Service) UpdateLabel(ctx context.Context, id int, upd LabelUpdate) (*ent.TaxonomyLabel, error) {
	q := s.db.TaxonomyLabel.UpdateOneID(id)
	if upd.Name != nil {
		q = q.SetName(*upd.Name)
	}
	if upd.Description != nil {
		q = q.SetDescription(*upd.Description)
	}
	if upd.ClearRetention {
		q = q.ClearRetentionDays()
	} else if upd.RetentionDays != nil {
		q = q.SetRetentionDays(*upd.RetentionDays)
	}
	if upd.IsActive != nil {
		q = q.SetIsActive(*upd.IsActive)
	}

	row, err := q.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update taxonomy label %d: %w", id, err)
	}
	return row, nil
}

// MergeLabels moves all assignments from one label to another, enqueues
// label pushes for the moved messages, and deactivates the source label.
// The source's provider label is left for manual cleanup.
func (s *Service) MergeLabels(ctx context.Context, fromID, toID int) (int, error) {
	if fromID == toID {
		return 0, fmt.Errorf("cannot merge a label into itself")
	}
	if _, err := s.GetLabel(ctx, fromID); err != nil {
		return 0, err
	}
	if _, err := s.GetLabel(ctx, toID); err != nil {
		return 0, err
	}

	moved, err := s.db.TaxonomyAssignment.Query().
		Where(taxonomyassignment.LabelID(fromID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list assignments of label %d: %w", fromID, err)
	}

	n, err := s.db.TaxonomyAssignment.Update().
		Where(taxonomyassignment.LabelID(fromID)).
		SetLabelID(toID).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to move assignments from %d to %d: %w", fromID, toID, err)
	}

	if _, err := s.db.TaxonomyLabel.UpdateOneID(fromID).
		SetIsActive(false).
		Save(ctx); err != nil {
		return n, fmt.Errorf("failed to deactivate label %d: %w", fromID, err)
	}

	for _, a := range moved {
		if err := s.EnqueueLabelPush(ctx, a.MessageID, "label_merged"); err != nil {
			return n, err
		}
	}
	return n, nil
}

// AssignmentFor returns the message's current assignment with its label and
// parent loaded, or ErrNotFound.
func (s *Service) AssignmentFor(ctx context.Context, messageID string) (*ent.TaxonomyAssignment, error) {
	row, err := s.db.TaxonomyAssignment.Query().
		Where(taxonomyassignment.MessageID(messageID)).
		WithLabel(func(q *ent.TaxonomyLabelQuery) {
			q.WithParent()
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load assignment for %s: %w", messageID, err)
	}
	return row, nil
}

// ProviderLabelName derives the deterministic provider label name: Tier-1
// names stay shallow, Tier-2 becomes "<Tier-1>/<Tier-2>".
func ProviderLabelName(label *ent.TaxonomyLabel, parent *ent.TaxonomyLabel) string {
	if label.Level == 1 || label.ParentID == nil || parent == nil {
		return label.Name
	}
	return parent.Name + "/" + label.Name
}
