package policy

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mailscope/mailscope/ent"
	"github.com/mailscope/mailscope/ent/emailpolicy"
	"github.com/mailscope/mailscope/pkg/database"
)

// Store persists policies. The database is the source of truth; the
// definition document is validated on every write and parse.
type Store struct {
	db *database.Client
}

// NewStore creates a policy store.
func NewStore(db *database.Client) *Store {
	return &Store{db: db}
}

// CreateInput is the policy creation payload. Zero values fall back to
// enabled, scheduled, weekly.
type CreateInput struct {
	Name        string
	Disabled    bool
	TriggerType string
	Cadence     string
	Definition  Definition
}

// List returns all policies, oldest first.
func (s *Store) List(ctx context.Context) ([]*ent.EmailPolicy, error) {
	rows, err := s.db.EmailPolicy.Query().
		Order(ent.Asc(emailpolicy.FieldCreatedAt), ent.Asc(emailpolicy.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}
	return rows, nil
}

// Get returns one policy by id.
func (s *Store) Get(ctx context.Context, id string) (*ent.EmailPolicy, error) {
	return s.db.EmailPolicy.Get(ctx, id)
}

// Create validates and stores a new policy.
func (s *Store) Create(ctx context.Context, in CreateInput) (*ent.EmailPolicy, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("policy name must not be empty")
	}
	if err := in.Definition.Validate(); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(in.Definition)
	if err != nil {
		return nil, fmt.Errorf("failed to encode policy definition: %w", err)
	}

	create := s.db.EmailPolicy.Create().
		SetID(uuid.NewString()).
		SetName(in.Name).
		SetEnabled(!in.Disabled).
		SetDefinition(raw)
	if in.TriggerType != "" {
		create.SetTriggerType(emailpolicy.TriggerType(in.TriggerType))
	}
	if in.Cadence != "" {
		create.SetCadence(emailpolicy.Cadence(in.Cadence))
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create policy: %w", err)
	}
	return row, nil
}

// SetEnabled flips a policy on or off.
func (s *Store) SetEnabled(ctx context.Context, id string, enabled bool) (*ent.EmailPolicy, error) {
	return s.db.EmailPolicy.UpdateOneID(id).
		SetEnabled(enabled).
		Save(ctx)
}

// Delete removes a policy. Messages it trashed keep their audit fields.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.db.EmailPolicy.DeleteOneID(id).Exec(ctx)
}

// MarkApplied stamps a cadence-driven application.
func (s *Store) MarkApplied(ctx context.Context, id string, at time.Time) {
	if err := s.db.EmailPolicy.UpdateOneID(id).SetLastAppliedAt(at).Exec(ctx); err != nil {
		slog.Warn("Failed to stamp policy application", "policy_id", id, "error", err)
	}
}

// EnsureDefaults seeds one conservative starter policy when the table is
// empty: trash marketing mail older than 180 days, 30-day undo window.
func (s *Store) EnsureDefaults(ctx context.Context) error {
	n, err := s.db.EmailPolicy.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count policies: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = s.Create(ctx, CreateInput{
		Name: "Trash old marketing (180d)",
		Definition: Definition{
			Conditions: []Condition{
				{Type: CondCategoryEquals, Value: "Commercial & Marketing"},
				{Type: CondAgeDaysGt, Days: 180},
			},
			Action: TrashAction{Type: ActionMoveToTrash, RetentionDays: 30},
		},
	})
	if err != nil {
		return err
	}
	slog.Info("Seeded default hygiene policy")
	return nil
}
