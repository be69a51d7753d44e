// Package policy implements deterministic mailbox hygiene rules.
//
// A policy is a set of AND-ed conditions over stored message metadata
// plus a move-to-trash action. Conditions compile to ent predicates and
// are evaluated in bulk, on demand or from the maintenance sequence on
// the policy's cadence. Semantics are deliberately small: no OR, no
// UNLESS, no free-form expressions.
package policy

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mailscope/mailscope/ent/emailmessage"
	"github.com/mailscope/mailscope/ent/predicate"
)

// DefinitionVersion is the only definition document version understood.
const DefinitionVersion = "v1"

// Condition types.
const (
	CondCategoryEquals    = "category_equals"
	CondSubcategoryEquals = "subcategory_equals"
	CondFromDomainEquals  = "from_domain_equals"
	CondSubjectContains   = "subject_contains"
	CondAgeDaysGt         = "age_days_gt"
	CondIsUnreadEquals    = "is_unread_equals"
)

// ActionMoveToTrash is the only action type.
const ActionMoveToTrash = "move_to_trash"

const (
	defaultRetentionDays = 30
	maxRetentionDays     = 3650
)

// Condition is one deterministic predicate. Exactly one of Value, Days
// or Flag is meaningful, depending on Type.
type Condition struct {
	Type  string `json:"type"`
	Value string `json:"value,omitempty"`
	Days  int    `json:"days,omitempty"`
	Flag  bool   `json:"flag,omitempty"`
}

// TrashAction is the soft-delete action: matched messages move to the
// provider Trash and carry an expiry after which the undo window closes.
type TrashAction struct {
	Type          string `json:"type"`
	RetentionDays int    `json:"retention_days"`
}

// Definition is the stored policy document.
type Definition struct {
	Version    string      `json:"version"`
	Conditions []Condition `json:"conditions"`
	Action     TrashAction `json:"action"`
}

// ParseDefinition decodes and validates a stored definition document.
func ParseDefinition(raw json.RawMessage) (*Definition, error) {
	var def Definition
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("failed to decode policy definition: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks the document and fills defaults (version, retention).
// An empty condition list is rejected: it would match the whole mailbox.
func (d *Definition) Validate() error {
	if d.Version == "" {
		d.Version = DefinitionVersion
	}
	if d.Version != DefinitionVersion {
		return fmt.Errorf("unsupported policy definition version %q", d.Version)
	}
	if len(d.Conditions) == 0 {
		return errors.New("policy needs at least one condition")
	}
	for i, c := range d.Conditions {
		if err := c.validate(); err != nil {
			return fmt.Errorf("condition %d: %w", i+1, err)
		}
	}
	if d.Action.Type == "" {
		d.Action.Type = ActionMoveToTrash
	}
	if d.Action.Type != ActionMoveToTrash {
		return fmt.Errorf("unsupported policy action %q", d.Action.Type)
	}
	if d.Action.RetentionDays == 0 {
		d.Action.RetentionDays = defaultRetentionDays
	}
	if d.Action.RetentionDays < 1 || d.Action.RetentionDays > maxRetentionDays {
		return fmt.Errorf("retention_days must be between 1 and %d", maxRetentionDays)
	}
	return nil
}

func (c Condition) validate() error {
	switch c.Type {
	case CondCategoryEquals, CondSubcategoryEquals, CondFromDomainEquals, CondSubjectContains:
		if c.Value == "" {
			return fmt.Errorf("%s needs a value", c.Type)
		}
	case CondAgeDaysGt:
		if c.Days <= 0 {
			return fmt.Errorf("%s needs a positive day count", c.Type)
		}
	case CondIsUnreadEquals:
		// Flag defaults to false, which is a valid comparison.
	default:
		return fmt.Errorf("unsupported condition type %q", c.Type)
	}
	return nil
}

// Predicates compiles the conditions to ent predicates, always scoped to
// active messages. now anchors the age cutoff.
func (d *Definition) Predicates(now time.Time) ([]predicate.EmailMessage, error) {
	ps := []predicate.EmailMessage{
		emailmessage.LifecycleStateEQ(emailmessage.LifecycleStateActive),
	}
	for _, c := range d.Conditions {
		switch c.Type {
		case CondCategoryEquals:
			ps = append(ps, emailmessage.CategoryEQ(c.Value))
		case CondSubcategoryEquals:
			ps = append(ps, emailmessage.SubcategoryEQ(c.Value))
		case CondFromDomainEquals:
			ps = append(ps, emailmessage.FromDomainEQ(c.Value))
		case CondSubjectContains:
			ps = append(ps, emailmessage.SubjectContainsFold(c.Value))
		case CondAgeDaysGt:
			ps = append(ps, emailmessage.InternalDateLT(now.AddDate(0, 0, -c.Days)))
		case CondIsUnreadEquals:
			ps = append(ps, emailmessage.IsUnreadEQ(c.Flag))
		default:
			return nil, fmt.Errorf("unsupported condition type %q", c.Type)
		}
	}
	return ps, nil
}

// CadenceInterval maps a cadence name to the minimum gap between
// cadence-driven applications of a policy.
func CadenceInterval(cadence string) time.Duration {
	switch cadence {
	case "daily":
		return 24 * time.Hour
	case "monthly":
		return 30 * 24 * time.Hour
	default: // weekly
		return 7 * 24 * time.Hour
	}
}
