// Code generated by ent, DO NOT EDIT.

package archiveoutbox

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mailscope/mailscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldLTE(FieldID, id))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldEQ(FieldMessageID, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldEQ(FieldReason, v))
}

// PlannedFor applies equality check predicate on the "planned_for" field. It's identical to PlannedForEQ.
func PlannedFor(v time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldEQ(FieldPlannedFor, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldEQ(FieldCreatedAt, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldEQ(FieldProcessedAt, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldEQ(FieldError, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldContainsFold(FieldMessageID, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldContainsFold(FieldReason, v))
}

// PlannedForEQ applies the EQ predicate on the "planned_for" field.
func PlannedForEQ(v time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldEQ(FieldPlannedFor, v))
}

// PlannedForNEQ applies the NEQ predicate on the "planned_for" field.
func PlannedForNEQ(v time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldNEQ(FieldPlannedFor, v))
}

// PlannedForIn applies the In predicate on the "planned_for" field.
func PlannedForIn(vs ...time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldIn(FieldPlannedFor, vs...))
}

// PlannedForNotIn applies the NotIn predicate on the "planned_for" field.
func PlannedForNotIn(vs ...time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldNotIn(FieldPlannedFor, vs...))
}

// PlannedForGT applies the GT predicate on the "planned_for" field.
func PlannedForGT(v time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldGT(FieldPlannedFor, v))
}

// PlannedForGTE applies the GTE predicate on the "planned_for" field.
func PlannedForGTE(v time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldGTE(FieldPlannedFor, v))
}

// PlannedForLT applies the LT predicate on the "planned_for" field.
func PlannedForLT(v time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldLT(FieldPlannedFor, v))
}

// PlannedForLTE applies the LTE predicate on the "planned_for" field.
func PlannedForLTE(v time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldLTE(FieldPlannedFor, v))
}

// PlannedForIsNil applies the IsNil predicate on the "planned_for" field.
func PlannedForIsNil() predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldIsNull(FieldPlannedFor))
}

// PlannedForNotNil applies the NotNil predicate on the "planned_for" field.
func PlannedForNotNil() predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldNotNull(FieldPlannedFor))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldLTE(FieldCreatedAt, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldNotNull(FieldProcessedAt))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.FieldContainsFold(FieldError, v))
}

// HasMessage applies the HasEdge predicate on the "message" edge.
func HasMessage() predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, MessageTable, MessageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessageWith applies the HasEdge predicate on the "message" edge with a given conditions (other predicates).
func HasMessageWith(preds ...predicate.EmailMessage) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(func(s *sql.Selector) {
		step := newMessageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ArchiveOutbox) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ArchiveOutbox) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ArchiveOutbox) predicate.ArchiveOutbox {
	return predicate.ArchiveOutbox(sql.NotPredicates(p))
}
