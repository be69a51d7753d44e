// Code generated by ent, DO NOT EDIT.

package emailpolicy

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mailscope/mailscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldEQ(FieldName, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldEQ(FieldEnabled, v))
}

// LastAppliedAt applies equality check predicate on the "last_applied_at" field. It's identical to LastAppliedAtEQ.
func LastAppliedAt(v time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldEQ(FieldLastAppliedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldContainsFold(FieldName, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldNEQ(FieldEnabled, v))
}

// TriggerTypeEQ applies the EQ predicate on the "trigger_type" field.
func TriggerTypeEQ(v TriggerType) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldEQ(FieldTriggerType, v))
}

// TriggerTypeNEQ applies the NEQ predicate on the "trigger_type" field.
func TriggerTypeNEQ(v TriggerType) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldNEQ(FieldTriggerType, v))
}

// TriggerTypeIn applies the In predicate on the "trigger_type" field.
func TriggerTypeIn(vs ...TriggerType) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldIn(FieldTriggerType, vs...))
}

// TriggerTypeNotIn applies the NotIn predicate on the "trigger_type" field.
func TriggerTypeNotIn(vs ...TriggerType) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldNotIn(FieldTriggerType, vs...))
}

// CadenceEQ applies the EQ predicate on the "cadence" field.
func CadenceEQ(v Cadence) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldEQ(FieldCadence, v))
}

// CadenceNEQ applies the NEQ predicate on the "cadence" field.
func CadenceNEQ(v Cadence) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldNEQ(FieldCadence, v))
}

// CadenceIn applies the In predicate on the "cadence" field.
func CadenceIn(vs ...Cadence) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldIn(FieldCadence, vs...))
}

// CadenceNotIn applies the NotIn predicate on the "cadence" field.
func CadenceNotIn(vs ...Cadence) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldNotIn(FieldCadence, vs...))
}

// LastAppliedAtEQ applies the EQ predicate on the "last_applied_at" field.
func LastAppliedAtEQ(v time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldEQ(FieldLastAppliedAt, v))
}

// LastAppliedAtNEQ applies the NEQ predicate on the "last_applied_at" field.
func LastAppliedAtNEQ(v time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldNEQ(FieldLastAppliedAt, v))
}

// LastAppliedAtIn applies the In predicate on the "last_applied_at" field.
func LastAppliedAtIn(vs ...time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldIn(FieldLastAppliedAt, vs...))
}

// LastAppliedAtNotIn applies the NotIn predicate on the "last_applied_at" field.
func LastAppliedAtNotIn(vs ...time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldNotIn(FieldLastAppliedAt, vs...))
}

// LastAppliedAtGT applies the GT predicate on the "last_applied_at" field.
func LastAppliedAtGT(v time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldGT(FieldLastAppliedAt, v))
}

// LastAppliedAtGTE applies the GTE predicate on the "last_applied_at" field.
func LastAppliedAtGTE(v time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldGTE(FieldLastAppliedAt, v))
}

// LastAppliedAtLT applies the LT predicate on the "last_applied_at" field.
func LastAppliedAtLT(v time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldLT(FieldLastAppliedAt, v))
}

// LastAppliedAtLTE applies the LTE predicate on the "last_applied_at" field.
func LastAppliedAtLTE(v time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldLTE(FieldLastAppliedAt, v))
}

// LastAppliedAtIsNil applies the IsNil predicate on the "last_applied_at" field.
func LastAppliedAtIsNil() predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldIsNull(FieldLastAppliedAt))
}

// LastAppliedAtNotNil applies the NotNil predicate on the "last_applied_at" field.
func LastAppliedAtNotNil() predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldNotNull(FieldLastAppliedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EmailPolicy) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EmailPolicy) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EmailPolicy) predicate.EmailPolicy {
	return predicate.EmailPolicy(sql.NotPredicates(p))
}
