// Code generated by ent, DO NOT EDIT.

package emailcluster

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mailscope/mailscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldContainsFold(FieldID, id))
}

// SeedMessageID applies equality check predicate on the "seed_message_id" field. It's identical to SeedMessageIDEQ.
func SeedMessageID(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEQ(FieldSeedMessageID, v))
}

// FromDomain applies equality check predicate on the "from_domain" field. It's identical to FromDomainEQ.
func FromDomain(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEQ(FieldFromDomain, v))
}

// SubjectNormalized applies equality check predicate on the "subject_normalized" field. It's identical to SubjectNormalizedEQ.
func SubjectNormalized(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEQ(FieldSubjectNormalized, v))
}

// SimilarityThreshold applies equality check predicate on the "similarity_threshold" field. It's identical to SimilarityThresholdEQ.
func SimilarityThreshold(v float64) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEQ(FieldSimilarityThreshold, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEQ(FieldDisplayName, v))
}

// FrequencyLabel applies equality check predicate on the "frequency_label" field. It's identical to FrequencyLabelEQ.
func FrequencyLabel(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEQ(FieldFrequencyLabel, v))
}

// UnreadLabel applies equality check predicate on the "unread_label" field. It's identical to UnreadLabelEQ.
func UnreadLabel(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEQ(FieldUnreadLabel, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEQ(FieldCategory, v))
}

// Subcategory applies equality check predicate on the "subcategory" field. It's identical to SubcategoryEQ.
func Subcategory(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEQ(FieldSubcategory, v))
}

// LabelVersion applies equality check predicate on the "label_version" field. It's identical to LabelVersionEQ.
func LabelVersion(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEQ(FieldLabelVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEQ(FieldCreatedAt, v))
}

// SeedMessageIDEQ applies the EQ predicate on the "seed_message_id" field.
func SeedMessageIDEQ(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEQ(FieldSeedMessageID, v))
}

// SeedMessageIDNEQ applies the NEQ predicate on the "seed_message_id" field.
func SeedMessageIDNEQ(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNEQ(FieldSeedMessageID, v))
}

// SeedMessageIDIn applies the In predicate on the "seed_message_id" field.
func SeedMessageIDIn(vs ...string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldIn(FieldSeedMessageID, vs...))
}

// SeedMessageIDNotIn applies the NotIn predicate on the "seed_message_id" field.
func SeedMessageIDNotIn(vs ...string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNotIn(FieldSeedMessageID, vs...))
}

// SeedMessageIDGT applies the GT predicate on the "seed_message_id" field.
func SeedMessageIDGT(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldGT(FieldSeedMessageID, v))
}

// SeedMessageIDGTE applies the GTE predicate on the "seed_message_id" field.
func SeedMessageIDGTE(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldGTE(FieldSeedMessageID, v))
}

// SeedMessageIDLT applies the LT predicate on the "seed_message_id" field.
func SeedMessageIDLT(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldLT(FieldSeedMessageID, v))
}

// SeedMessageIDLTE applies the LTE predicate on the "seed_message_id" field.
func SeedMessageIDLTE(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldLTE(FieldSeedMessageID, v))
}

// SeedMessageIDContains applies the Contains predicate on the "seed_message_id" field.
func SeedMessageIDContains(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldContains(FieldSeedMessageID, v))
}

// SeedMessageIDHasPrefix applies the HasPrefix predicate on the "seed_message_id" field.
func SeedMessageIDHasPrefix(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldHasPrefix(FieldSeedMessageID, v))
}

// SeedMessageIDHasSuffix applies the HasSuffix predicate on the "seed_message_id" field.
func SeedMessageIDHasSuffix(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldHasSuffix(FieldSeedMessageID, v))
}

// SeedMessageIDEqualFold applies the EqualFold predicate on the "seed_message_id" field.
func SeedMessageIDEqualFold(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEqualFold(FieldSeedMessageID, v))
}

// SeedMessageIDContainsFold applies the ContainsFold predicate on the "seed_message_id" field.
func SeedMessageIDContainsFold(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldContainsFold(FieldSeedMessageID, v))
}

// FromDomainEQ applies the EQ predicate on the "from_domain" field.
func FromDomainEQ(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEQ(FieldFromDomain, v))
}

// FromDomainNEQ applies the NEQ predicate on the "from_domain" field.
func FromDomainNEQ(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNEQ(FieldFromDomain, v))
}

// FromDomainIn applies the In predicate on the "from_domain" field.
func FromDomainIn(vs ...string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldIn(FieldFromDomain, vs...))
}

// FromDomainNotIn applies the NotIn predicate on the "from_domain" field.
func FromDomainNotIn(vs ...string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNotIn(FieldFromDomain, vs...))
}

// FromDomainGT applies the GT predicate on the "from_domain" field.
func FromDomainGT(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldGT(FieldFromDomain, v))
}

// FromDomainGTE applies the GTE predicate on the "from_domain" field.
func FromDomainGTE(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldGTE(FieldFromDomain, v))
}

// FromDomainLT applies the LT predicate on the "from_domain" field.
func FromDomainLT(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldLT(FieldFromDomain, v))
}

// FromDomainLTE applies the LTE predicate on the "from_domain" field.
func FromDomainLTE(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldLTE(FieldFromDomain, v))
}

// FromDomainContains applies the Contains predicate on the "from_domain" field.
func FromDomainContains(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldContains(FieldFromDomain, v))
}

// FromDomainHasPrefix applies the HasPrefix predicate on the "from_domain" field.
func FromDomainHasPrefix(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldHasPrefix(FieldFromDomain, v))
}

// FromDomainHasSuffix applies the HasSuffix predicate on the "from_domain" field.
func FromDomainHasSuffix(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldHasSuffix(FieldFromDomain, v))
}

// FromDomainIsNil applies the IsNil predicate on the "from_domain" field.
func FromDomainIsNil() predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldIsNull(FieldFromDomain))
}

// FromDomainNotNil applies the NotNil predicate on the "from_domain" field.
func FromDomainNotNil() predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNotNull(FieldFromDomain))
}

// FromDomainEqualFold applies the EqualFold predicate on the "from_domain" field.
func FromDomainEqualFold(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEqualFold(FieldFromDomain, v))
}

// FromDomainContainsFold applies the ContainsFold predicate on the "from_domain" field.
func FromDomainContainsFold(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldContainsFold(FieldFromDomain, v))
}

// SubjectNormalizedEQ applies the EQ predicate on the "subject_normalized" field.
func SubjectNormalizedEQ(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEQ(FieldSubjectNormalized, v))
}

// SubjectNormalizedNEQ applies the NEQ predicate on the "subject_normalized" field.
func SubjectNormalizedNEQ(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNEQ(FieldSubjectNormalized, v))
}

// SubjectNormalizedIn applies the In predicate on the "subject_normalized" field.
func SubjectNormalizedIn(vs ...string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldIn(FieldSubjectNormalized, vs...))
}

// SubjectNormalizedNotIn applies the NotIn predicate on the "subject_normalized" field.
func SubjectNormalizedNotIn(vs ...string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNotIn(FieldSubjectNormalized, vs...))
}

// SubjectNormalizedGT applies the GT predicate on the "subject_normalized" field.
func SubjectNormalizedGT(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldGT(FieldSubjectNormalized, v))
}

// SubjectNormalizedGTE applies the GTE predicate on the "subject_normalized" field.
func SubjectNormalizedGTE(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldGTE(FieldSubjectNormalized, v))
}

// SubjectNormalizedLT applies the LT predicate on the "subject_normalized" field.
func SubjectNormalizedLT(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldLT(FieldSubjectNormalized, v))
}

// SubjectNormalizedLTE applies the LTE predicate on the "subject_normalized" field.
func SubjectNormalizedLTE(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldLTE(FieldSubjectNormalized, v))
}

// SubjectNormalizedContains applies the Contains predicate on the "subject_normalized" field.
func SubjectNormalizedContains(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldContains(FieldSubjectNormalized, v))
}

// SubjectNormalizedHasPrefix applies the HasPrefix predicate on the "subject_normalized" field.
func SubjectNormalizedHasPrefix(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldHasPrefix(FieldSubjectNormalized, v))
}

// SubjectNormalizedHasSuffix applies the HasSuffix predicate on the "subject_normalized" field.
func SubjectNormalizedHasSuffix(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldHasSuffix(FieldSubjectNormalized, v))
}

// SubjectNormalizedIsNil applies the IsNil predicate on the "subject_normalized" field.
func SubjectNormalizedIsNil() predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldIsNull(FieldSubjectNormalized))
}

// SubjectNormalizedNotNil applies the NotNil predicate on the "subject_normalized" field.
func SubjectNormalizedNotNil() predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNotNull(FieldSubjectNormalized))
}

// SubjectNormalizedEqualFold applies the EqualFold predicate on the "subject_normalized" field.
func SubjectNormalizedEqualFold(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEqualFold(FieldSubjectNormalized, v))
}

// SubjectNormalizedContainsFold applies the ContainsFold predicate on the "subject_normalized" field.
func SubjectNormalizedContainsFold(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldContainsFold(FieldSubjectNormalized, v))
}

// SimilarityThresholdEQ applies the EQ predicate on the "similarity_threshold" field.
func SimilarityThresholdEQ(v float64) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEQ(FieldSimilarityThreshold, v))
}

// SimilarityThresholdNEQ applies the NEQ predicate on the "similarity_threshold" field.
func SimilarityThresholdNEQ(v float64) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNEQ(FieldSimilarityThreshold, v))
}

// SimilarityThresholdIn applies the In predicate on the "similarity_threshold" field.
func SimilarityThresholdIn(vs ...float64) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldIn(FieldSimilarityThreshold, vs...))
}

// SimilarityThresholdNotIn applies the NotIn predicate on the "similarity_threshold" field.
func SimilarityThresholdNotIn(vs ...float64) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNotIn(FieldSimilarityThreshold, vs...))
}

// SimilarityThresholdGT applies the GT predicate on the "similarity_threshold" field.
func SimilarityThresholdGT(v float64) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldGT(FieldSimilarityThreshold, v))
}

// SimilarityThresholdGTE applies the GTE predicate on the "similarity_threshold" field.
func SimilarityThresholdGTE(v float64) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldGTE(FieldSimilarityThreshold, v))
}

// SimilarityThresholdLT applies the LT predicate on the "similarity_threshold" field.
func SimilarityThresholdLT(v float64) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldLT(FieldSimilarityThreshold, v))
}

// SimilarityThresholdLTE applies the LTE predicate on the "similarity_threshold" field.
func SimilarityThresholdLTE(v float64) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldLTE(FieldSimilarityThreshold, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameIsNil applies the IsNil predicate on the "display_name" field.
func DisplayNameIsNil() predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldIsNull(FieldDisplayName))
}

// DisplayNameNotNil applies the NotNil predicate on the "display_name" field.
func DisplayNameNotNil() predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNotNull(FieldDisplayName))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldContainsFold(FieldDisplayName, v))
}

// FrequencyLabelEQ applies the EQ predicate on the "frequency_label" field.
func FrequencyLabelEQ(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEQ(FieldFrequencyLabel, v))
}

// FrequencyLabelNEQ applies the NEQ predicate on the "frequency_label" field.
func FrequencyLabelNEQ(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNEQ(FieldFrequencyLabel, v))
}

// FrequencyLabelIn applies the In predicate on the "frequency_label" field.
func FrequencyLabelIn(vs ...string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldIn(FieldFrequencyLabel, vs...))
}

// FrequencyLabelNotIn applies the NotIn predicate on the "frequency_label" field.
func FrequencyLabelNotIn(vs ...string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNotIn(FieldFrequencyLabel, vs...))
}

// FrequencyLabelGT applies the GT predicate on the "frequency_label" field.
func FrequencyLabelGT(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldGT(FieldFrequencyLabel, v))
}

// FrequencyLabelGTE applies the GTE predicate on the "frequency_label" field.
func FrequencyLabelGTE(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldGTE(FieldFrequencyLabel, v))
}

// FrequencyLabelLT applies the LT predicate on the "frequency_label" field.
func FrequencyLabelLT(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldLT(FieldFrequencyLabel, v))
}

// FrequencyLabelLTE applies the LTE predicate on the "frequency_label" field.
func FrequencyLabelLTE(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldLTE(FieldFrequencyLabel, v))
}

// FrequencyLabelContains applies the Contains predicate on the "frequency_label" field.
func FrequencyLabelContains(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldContains(FieldFrequencyLabel, v))
}

// FrequencyLabelHasPrefix applies the HasPrefix predicate on the "frequency_label" field.
func FrequencyLabelHasPrefix(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldHasPrefix(FieldFrequencyLabel, v))
}

// FrequencyLabelHasSuffix applies the HasSuffix predicate on the "frequency_label" field.
func FrequencyLabelHasSuffix(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldHasSuffix(FieldFrequencyLabel, v))
}

// FrequencyLabelIsNil applies the IsNil predicate on the "frequency_label" field.
func FrequencyLabelIsNil() predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldIsNull(FieldFrequencyLabel))
}

// FrequencyLabelNotNil applies the NotNil predicate on the "frequency_label" field.
func FrequencyLabelNotNil() predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNotNull(FieldFrequencyLabel))
}

// FrequencyLabelEqualFold applies the EqualFold predicate on the "frequency_label" field.
func FrequencyLabelEqualFold(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEqualFold(FieldFrequencyLabel, v))
}

// FrequencyLabelContainsFold applies the ContainsFold predicate on the "frequency_label" field.
func FrequencyLabelContainsFold(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldContainsFold(FieldFrequencyLabel, v))
}

// UnreadLabelEQ applies the EQ predicate on the "unread_label" field.
func UnreadLabelEQ(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEQ(FieldUnreadLabel, v))
}

// UnreadLabelNEQ applies the NEQ predicate on the "unread_label" field.
func UnreadLabelNEQ(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNEQ(FieldUnreadLabel, v))
}

// UnreadLabelIn applies the In predicate on the "unread_label" field.
func UnreadLabelIn(vs ...string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldIn(FieldUnreadLabel, vs...))
}

// UnreadLabelNotIn applies the NotIn predicate on the "unread_label" field.
func UnreadLabelNotIn(vs ...string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNotIn(FieldUnreadLabel, vs...))
}

// UnreadLabelGT applies the GT predicate on the "unread_label" field.
func UnreadLabelGT(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldGT(FieldUnreadLabel, v))
}

// UnreadLabelGTE applies the GTE predicate on the "unread_label" field.
func UnreadLabelGTE(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldGTE(FieldUnreadLabel, v))
}

// UnreadLabelLT applies the LT predicate on the "unread_label" field.
func UnreadLabelLT(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldLT(FieldUnreadLabel, v))
}

// UnreadLabelLTE applies the LTE predicate on the "unread_label" field.
func UnreadLabelLTE(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldLTE(FieldUnreadLabel, v))
}

// UnreadLabelContains applies the Contains predicate on the "unread_label" field.
func UnreadLabelContains(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldContains(FieldUnreadLabel, v))
}

// UnreadLabelHasPrefix applies the HasPrefix predicate on the "unread_label" field.
func UnreadLabelHasPrefix(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldHasPrefix(FieldUnreadLabel, v))
}

// UnreadLabelHasSuffix applies the HasSuffix predicate on the "unread_label" field.
func UnreadLabelHasSuffix(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldHasSuffix(FieldUnreadLabel, v))
}

// UnreadLabelIsNil applies the IsNil predicate on the "unread_label" field.
func UnreadLabelIsNil() predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldIsNull(FieldUnreadLabel))
}

// UnreadLabelNotNil applies the NotNil predicate on the "unread_label" field.
func UnreadLabelNotNil() predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNotNull(FieldUnreadLabel))
}

// UnreadLabelEqualFold applies the EqualFold predicate on the "unread_label" field.
func UnreadLabelEqualFold(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEqualFold(FieldUnreadLabel, v))
}

// UnreadLabelContainsFold applies the ContainsFold predicate on the "unread_label" field.
func UnreadLabelContainsFold(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldContainsFold(FieldUnreadLabel, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldContainsFold(FieldCategory, v))
}

// SubcategoryEQ applies the EQ predicate on the "subcategory" field.
func SubcategoryEQ(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEQ(FieldSubcategory, v))
}

// SubcategoryNEQ applies the NEQ predicate on the "subcategory" field.
func SubcategoryNEQ(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNEQ(FieldSubcategory, v))
}

// SubcategoryIn applies the In predicate on the "subcategory" field.
func SubcategoryIn(vs ...string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldIn(FieldSubcategory, vs...))
}

// SubcategoryNotIn applies the NotIn predicate on the "subcategory" field.
func SubcategoryNotIn(vs ...string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNotIn(FieldSubcategory, vs...))
}

// SubcategoryGT applies the GT predicate on the "subcategory" field.
func SubcategoryGT(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldGT(FieldSubcategory, v))
}

// SubcategoryGTE applies the GTE predicate on the "subcategory" field.
func SubcategoryGTE(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldGTE(FieldSubcategory, v))
}

// SubcategoryLT applies the LT predicate on the "subcategory" field.
func SubcategoryLT(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldLT(FieldSubcategory, v))
}

// SubcategoryLTE applies the LTE predicate on the "subcategory" field.
func SubcategoryLTE(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldLTE(FieldSubcategory, v))
}

// SubcategoryContains applies the Contains predicate on the "subcategory" field.
func SubcategoryContains(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldContains(FieldSubcategory, v))
}

// SubcategoryHasPrefix applies the HasPrefix predicate on the "subcategory" field.
func SubcategoryHasPrefix(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldHasPrefix(FieldSubcategory, v))
}

// SubcategoryHasSuffix applies the HasSuffix predicate on the "subcategory" field.
func SubcategoryHasSuffix(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldHasSuffix(FieldSubcategory, v))
}

// SubcategoryIsNil applies the IsNil predicate on the "subcategory" field.
func SubcategoryIsNil() predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldIsNull(FieldSubcategory))
}

// SubcategoryNotNil applies the NotNil predicate on the "subcategory" field.
func SubcategoryNotNil() predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNotNull(FieldSubcategory))
}

// SubcategoryEqualFold applies the EqualFold predicate on the "subcategory" field.
func SubcategoryEqualFold(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEqualFold(FieldSubcategory, v))
}

// SubcategoryContainsFold applies the ContainsFold predicate on the "subcategory" field.
func SubcategoryContainsFold(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldContainsFold(FieldSubcategory, v))
}

// LabelVersionEQ applies the EQ predicate on the "label_version" field.
func LabelVersionEQ(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEQ(FieldLabelVersion, v))
}

// LabelVersionNEQ applies the NEQ predicate on the "label_version" field.
func LabelVersionNEQ(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNEQ(FieldLabelVersion, v))
}

// LabelVersionIn applies the In predicate on the "label_version" field.
func LabelVersionIn(vs ...string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldIn(FieldLabelVersion, vs...))
}

// LabelVersionNotIn applies the NotIn predicate on the "label_version" field.
func LabelVersionNotIn(vs ...string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNotIn(FieldLabelVersion, vs...))
}

// LabelVersionGT applies the GT predicate on the "label_version" field.
func LabelVersionGT(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldGT(FieldLabelVersion, v))
}

// LabelVersionGTE applies the GTE predicate on the "label_version" field.
func LabelVersionGTE(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldGTE(FieldLabelVersion, v))
}

// LabelVersionLT applies the LT predicate on the "label_version" field.
func LabelVersionLT(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldLT(FieldLabelVersion, v))
}

// LabelVersionLTE applies the LTE predicate on the "label_version" field.
func LabelVersionLTE(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldLTE(FieldLabelVersion, v))
}

// LabelVersionContains applies the Contains predicate on the "label_version" field.
func LabelVersionContains(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldContains(FieldLabelVersion, v))
}

// LabelVersionHasPrefix applies the HasPrefix predicate on the "label_version" field.
func LabelVersionHasPrefix(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldHasPrefix(FieldLabelVersion, v))
}

// LabelVersionHasSuffix applies the HasSuffix predicate on the "label_version" field.
func LabelVersionHasSuffix(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldHasSuffix(FieldLabelVersion, v))
}

// LabelVersionIsNil applies the IsNil predicate on the "label_version" field.
func LabelVersionIsNil() predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldIsNull(FieldLabelVersion))
}

// LabelVersionNotNil applies the NotNil predicate on the "label_version" field.
func LabelVersionNotNil() predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNotNull(FieldLabelVersion))
}

// LabelVersionEqualFold applies the EqualFold predicate on the "label_version" field.
func LabelVersionEqualFold(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEqualFold(FieldLabelVersion, v))
}

// LabelVersionContainsFold applies the ContainsFold predicate on the "label_version" field.
func LabelVersionContainsFold(v string) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldContainsFold(FieldLabelVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EmailCluster {
	return predicate.EmailCluster(sql.FieldLTE(FieldCreatedAt, v))
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.EmailCluster {
	return predicate.EmailCluster(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.EmailMessage) predicate.EmailCluster {
	return predicate.EmailCluster(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EmailCluster) predicate.EmailCluster {
	return predicate.EmailCluster(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EmailCluster) predicate.EmailCluster {
	return predicate.EmailCluster(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EmailCluster) predicate.EmailCluster {
	return predicate.EmailCluster(sql.NotPredicates(p))
}
