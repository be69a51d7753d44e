package policy

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefinition(t *testing.T) {
	raw := json.RawMessage(`{
		"version": "v1",
		"conditions": [
			{"type": "category_equals", "value": "Commercial & Marketing"},
			{"type": "age_days_gt", "days": 180}
		],
		"action": {"type": "move_to_trash", "retention_days": 30}
	}`)

	def, err := ParseDefinition(raw)
	require.NoError(t, err)
	assert.Equal(t, DefinitionVersion, def.Version)
	assert.Len(t, def.Conditions, 2)
	assert.Equal(t, 30, def.Action.RetentionDays)
}

func TestDefinitionValidateDefaults(t *testing.T) {
	def := Definition{
		Conditions: []Condition{{Type: CondIsUnreadEquals, Flag: true}},
	}
	require.NoError(t, def.Validate())
	assert.Equal(t, DefinitionVersion, def.Version)
	assert.Equal(t, ActionMoveToTrash, def.Action.Type)
	assert.Equal(t, defaultRetentionDays, def.Action.RetentionDays)
}

func TestDefinitionValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
		want string
	}{
		{
			name: "unknown version",
			def: Definition{
				Version:    "v2",
				Conditions: []Condition{{Type: CondAgeDaysGt, Days: 1}},
			},
			want: "unsupported policy definition version",
		},
		{
			name: "no conditions",
			def:  Definition{},
			want: "at least one condition",
		},
		{
			name: "unknown condition type",
			def: Definition{
				Conditions: []Condition{{Type: "thread_length_gt", Days: 3}},
			},
			want: "unsupported condition type",
		},
		{
			name: "equals without value",
			def: Definition{
				Conditions: []Condition{{Type: CondFromDomainEquals}},
			},
			want: "needs a value",
		},
		{
			name: "age without days",
			def: Definition{
				Conditions: []Condition{{Type: CondAgeDaysGt}},
			},
			want: "positive day count",
		},
		{
			name: "unknown action",
			def: Definition{
				Conditions: []Condition{{Type: CondAgeDaysGt, Days: 1}},
				Action:     TrashAction{Type: "hard_delete"},
			},
			want: "unsupported policy action",
		},
		{
			name: "retention out of range",
			def: Definition{
				Conditions: []Condition{{Type: CondAgeDaysGt, Days: 1}},
				Action:     TrashAction{Type: ActionMoveToTrash, RetentionDays: 9999},
			},
			want: "retention_days",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestPredicatesCoverEveryConditionType(t *testing.T) {
	def := Definition{
		Conditions: []Condition{
			{Type: CondCategoryEquals, Value: "Financial"},
			{Type: CondSubcategoryEquals, Value: "Receipts"},
			{Type: CondFromDomainEquals, Value: "example.com"},
			{Type: CondSubjectContains, Value: "unsubscribe"},
			{Type: CondAgeDaysGt, Days: 30},
			{Type: CondIsUnreadEquals, Flag: true},
		},
		Action: TrashAction{Type: ActionMoveToTrash, RetentionDays: 30},
	}
	require.NoError(t, def.Validate())

	preds, err := def.Predicates(time.Now().UTC())
	require.NoError(t, err)
	// One per condition plus the implicit ACTIVE scope.
	assert.Len(t, preds, len(def.Conditions)+1)
}

func TestCadenceInterval(t *testing.T) {
	assert.Equal(t, 24*time.Hour, CadenceInterval("daily"))
	assert.Equal(t, 7*24*time.Hour, CadenceInterval("weekly"))
	assert.Equal(t, 30*24*time.Hour, CadenceInterval("monthly"))
	// Unknown cadence falls back to weekly.
	assert.Equal(t, 7*24*time.Hour, CadenceInterval(""))
}
