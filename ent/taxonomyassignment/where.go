// Code generated by ent, DO NOT EDIT.

package taxonomyassignment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mailscope/mailscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldLTE(FieldID, id))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldEQ(FieldMessageID, v))
}

// LabelID applies equality check predicate on the "label_id" field. It's identical to LabelIDEQ.
func LabelID(v int) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldEQ(FieldLabelID, v))
}

// AssignedAt applies equality check predicate on the "assigned_at" field. It's identical to AssignedAtEQ.
func AssignedAt(v time.Time) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldEQ(FieldAssignedAt, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldEQ(FieldConfidence, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldContainsFold(FieldMessageID, v))
}

// LabelIDEQ applies the EQ predicate on the "label_id" field.
func LabelIDEQ(v int) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldEQ(FieldLabelID, v))
}

// LabelIDNEQ applies the NEQ predicate on the "label_id" field.
func LabelIDNEQ(v int) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldNEQ(FieldLabelID, v))
}

// LabelIDIn applies the In predicate on the "label_id" field.
func LabelIDIn(vs ...int) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldIn(FieldLabelID, vs...))
}

// LabelIDNotIn applies the NotIn predicate on the "label_id" field.
func LabelIDNotIn(vs ...int) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldNotIn(FieldLabelID, vs...))
}

// AssignedAtEQ applies the EQ predicate on the "assigned_at" field.
func AssignedAtEQ(v time.Time) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldEQ(FieldAssignedAt, v))
}

// AssignedAtNEQ applies the NEQ predicate on the "assigned_at" field.
func AssignedAtNEQ(v time.Time) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldNEQ(FieldAssignedAt, v))
}

// AssignedAtIn applies the In predicate on the "assigned_at" field.
func AssignedAtIn(vs ...time.Time) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldIn(FieldAssignedAt, vs...))
}

// AssignedAtNotIn applies the NotIn predicate on the "assigned_at" field.
func AssignedAtNotIn(vs ...time.Time) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldNotIn(FieldAssignedAt, vs...))
}

// AssignedAtGT applies the GT predicate on the "assigned_at" field.
func AssignedAtGT(v time.Time) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldGT(FieldAssignedAt, v))
}

// AssignedAtGTE applies the GTE predicate on the "assigned_at" field.
func AssignedAtGTE(v time.Time) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldGTE(FieldAssignedAt, v))
}

// AssignedAtLT applies the LT predicate on the "assigned_at" field.
func AssignedAtLT(v time.Time) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldLT(FieldAssignedAt, v))
}

// AssignedAtLTE applies the LTE predicate on the "assigned_at" field.
func AssignedAtLTE(v time.Time) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldLTE(FieldAssignedAt, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.FieldNotNull(FieldConfidence))
}

// HasMessage applies the HasEdge predicate on the "message" edge.
func HasMessage() predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, MessageTable, MessageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessageWith applies the HasEdge predicate on the "message" edge with a given conditions (other predicates).
func HasMessageWith(preds ...predicate.EmailMessage) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(func(s *sql.Selector) {
		step := newMessageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLabel applies the HasEdge predicate on the "label" edge.
func HasLabel() predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LabelTable, LabelColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLabelWith applies the HasEdge predicate on the "label" edge with a given conditions (other predicates).
func HasLabelWith(preds ...predicate.TaxonomyLabel) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(func(s *sql.Selector) {
		step := newLabelStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaxonomyAssignment) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaxonomyAssignment) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaxonomyAssignment) predicate.TaxonomyAssignment {
	return predicate.TaxonomyAssignment(sql.NotPredicates(p))
}
