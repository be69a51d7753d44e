// Code generated by ent, DO NOT EDIT.

package emailmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mailscope/mailscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContainsFold(FieldID, id))
}

// ThreadID applies equality check predicate on the "thread_id" field. It's identical to ThreadIDEQ.
func ThreadID(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldThreadID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldSubject, v))
}

// SubjectNormalized applies equality check predicate on the "subject_normalized" field. It's identical to SubjectNormalizedEQ.
func SubjectNormalized(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldSubjectNormalized, v))
}

// FromAddress applies equality check predicate on the "from_address" field. It's identical to FromAddressEQ.
func FromAddress(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldFromAddress, v))
}

// FromDomain applies equality check predicate on the "from_domain" field. It's identical to FromDomainEQ.
func FromDomain(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldFromDomain, v))
}

// IsUnread applies equality check predicate on the "is_unread" field. It's identical to IsUnreadEQ.
func IsUnread(v bool) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldIsUnread, v))
}

// InternalDate applies equality check predicate on the "internal_date" field. It's identical to InternalDateEQ.
func InternalDate(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldInternalDate, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldCategory, v))
}

// Subcategory applies equality check predicate on the "subcategory" field. It's identical to SubcategoryEQ.
func Subcategory(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldSubcategory, v))
}

// LabelVersion applies equality check predicate on the "label_version" field. It's identical to LabelVersionEQ.
func LabelVersion(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldLabelVersion, v))
}

// ClusterID applies equality check predicate on the "cluster_id" field. It's identical to ClusterIDEQ.
func ClusterID(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldClusterID, v))
}

// ArchivedAt applies equality check predicate on the "archived_at" field. It's identical to ArchivedAtEQ.
func ArchivedAt(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldArchivedAt, v))
}

// InboxRemovedAt applies equality check predicate on the "inbox_removed_at" field. It's identical to InboxRemovedAtEQ.
func InboxRemovedAt(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldInboxRemovedAt, v))
}

// TrashedAt applies equality check predicate on the "trashed_at" field. It's identical to TrashedAtEQ.
func TrashedAt(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldTrashedAt, v))
}

// ExpiryAt applies equality check predicate on the "expiry_at" field. It's identical to ExpiryAtEQ.
func ExpiryAt(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldExpiryAt, v))
}

// TrashedByPolicyID applies equality check predicate on the "trashed_by_policy_id" field. It's identical to TrashedByPolicyIDEQ.
func TrashedByPolicyID(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldTrashedByPolicyID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// ThreadIDEQ applies the EQ predicate on the "thread_id" field.
func ThreadIDEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldThreadID, v))
}

// ThreadIDNEQ applies the NEQ predicate on the "thread_id" field.
func ThreadIDNEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldThreadID, v))
}

// ThreadIDIn applies the In predicate on the "thread_id" field.
func ThreadIDIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldThreadID, vs...))
}

// ThreadIDNotIn applies the NotIn predicate on the "thread_id" field.
func ThreadIDNotIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldThreadID, vs...))
}

// ThreadIDGT applies the GT predicate on the "thread_id" field.
func ThreadIDGT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldThreadID, v))
}

// ThreadIDGTE applies the GTE predicate on the "thread_id" field.
func ThreadIDGTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldThreadID, v))
}

// ThreadIDLT applies the LT predicate on the "thread_id" field.
func ThreadIDLT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldThreadID, v))
}

// ThreadIDLTE applies the LTE predicate on the "thread_id" field.
func ThreadIDLTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldThreadID, v))
}

// ThreadIDContains applies the Contains predicate on the "thread_id" field.
func ThreadIDContains(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContains(FieldThreadID, v))
}

// ThreadIDHasPrefix applies the HasPrefix predicate on the "thread_id" field.
func ThreadIDHasPrefix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasPrefix(FieldThreadID, v))
}

// ThreadIDHasSuffix applies the HasSuffix predicate on the "thread_id" field.
func ThreadIDHasSuffix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasSuffix(FieldThreadID, v))
}

// ThreadIDIsNil applies the IsNil predicate on the "thread_id" field.
func ThreadIDIsNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIsNull(FieldThreadID))
}

// ThreadIDNotNil applies the NotNil predicate on the "thread_id" field.
func ThreadIDNotNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotNull(FieldThreadID))
}

// ThreadIDEqualFold applies the EqualFold predicate on the "thread_id" field.
func ThreadIDEqualFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEqualFold(FieldThreadID, v))
}

// ThreadIDContainsFold applies the ContainsFold predicate on the "thread_id" field.
func ThreadIDContainsFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContainsFold(FieldThreadID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectIsNil applies the IsNil predicate on the "subject" field.
func SubjectIsNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIsNull(FieldSubject))
}

// SubjectNotNil applies the NotNil predicate on the "subject" field.
func SubjectNotNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotNull(FieldSubject))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContainsFold(FieldSubject, v))
}

// SubjectNormalizedEQ applies the EQ predicate on the "subject_normalized" field.
func SubjectNormalizedEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldSubjectNormalized, v))
}

// SubjectNormalizedNEQ applies the NEQ predicate on the "subject_normalized" field.
func SubjectNormalizedNEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldSubjectNormalized, v))
}

// SubjectNormalizedIn applies the In predicate on the "subject_normalized" field.
func SubjectNormalizedIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldSubjectNormalized, vs...))
}

// SubjectNormalizedNotIn applies the NotIn predicate on the "subject_normalized" field.
func SubjectNormalizedNotIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldSubjectNormalized, vs...))
}

// SubjectNormalizedGT applies the GT predicate on the "subject_normalized" field.
func SubjectNormalizedGT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldSubjectNormalized, v))
}

// SubjectNormalizedGTE applies the GTE predicate on the "subject_normalized" field.
func SubjectNormalizedGTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldSubjectNormalized, v))
}

// SubjectNormalizedLT applies the LT predicate on the "subject_normalized" field.
func SubjectNormalizedLT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldSubjectNormalized, v))
}

// SubjectNormalizedLTE applies the LTE predicate on the "subject_normalized" field.
func SubjectNormalizedLTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldSubjectNormalized, v))
}

// SubjectNormalizedContains applies the Contains predicate on the "subject_normalized" field.
func SubjectNormalizedContains(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContains(FieldSubjectNormalized, v))
}

// SubjectNormalizedHasPrefix applies the HasPrefix predicate on the "subject_normalized" field.
func SubjectNormalizedHasPrefix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasPrefix(FieldSubjectNormalized, v))
}

// SubjectNormalizedHasSuffix applies the HasSuffix predicate on the "subject_normalized" field.
func SubjectNormalizedHasSuffix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasSuffix(FieldSubjectNormalized, v))
}

// SubjectNormalizedIsNil applies the IsNil predicate on the "subject_normalized" field.
func SubjectNormalizedIsNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIsNull(FieldSubjectNormalized))
}

// SubjectNormalizedNotNil applies the NotNil predicate on the "subject_normalized" field.
func SubjectNormalizedNotNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotNull(FieldSubjectNormalized))
}

// SubjectNormalizedEqualFold applies the EqualFold predicate on the "subject_normalized" field.
func SubjectNormalizedEqualFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEqualFold(FieldSubjectNormalized, v))
}

// SubjectNormalizedContainsFold applies the ContainsFold predicate on the "subject_normalized" field.
func SubjectNormalizedContainsFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContainsFold(FieldSubjectNormalized, v))
}

// FromAddressEQ applies the EQ predicate on the "from_address" field.
func FromAddressEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldFromAddress, v))
}

// FromAddressNEQ applies the NEQ predicate on the "from_address" field.
func FromAddressNEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldFromAddress, v))
}

// FromAddressIn applies the In predicate on the "from_address" field.
func FromAddressIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldFromAddress, vs...))
}

// FromAddressNotIn applies the NotIn predicate on the "from_address" field.
func FromAddressNotIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldFromAddress, vs...))
}

// FromAddressGT applies the GT predicate on the "from_address" field.
func FromAddressGT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldFromAddress, v))
}

// FromAddressGTE applies the GTE predicate on the "from_address" field.
func FromAddressGTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldFromAddress, v))
}

// FromAddressLT applies the LT predicate on the "from_address" field.
func FromAddressLT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldFromAddress, v))
}

// FromAddressLTE applies the LTE predicate on the "from_address" field.
func FromAddressLTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldFromAddress, v))
}

// FromAddressContains applies the Contains predicate on the "from_address" field.
func FromAddressContains(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContains(FieldFromAddress, v))
}

// FromAddressHasPrefix applies the HasPrefix predicate on the "from_address" field.
func FromAddressHasPrefix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasPrefix(FieldFromAddress, v))
}

// FromAddressHasSuffix applies the HasSuffix predicate on the "from_address" field.
func FromAddressHasSuffix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasSuffix(FieldFromAddress, v))
}

// FromAddressIsNil applies the IsNil predicate on the "from_address" field.
func FromAddressIsNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIsNull(FieldFromAddress))
}

// FromAddressNotNil applies the NotNil predicate on the "from_address" field.
func FromAddressNotNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotNull(FieldFromAddress))
}

// FromAddressEqualFold applies the EqualFold predicate on the "from_address" field.
func FromAddressEqualFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEqualFold(FieldFromAddress, v))
}

// FromAddressContainsFold applies the ContainsFold predicate on the "from_address" field.
func FromAddressContainsFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContainsFold(FieldFromAddress, v))
}

// FromDomainEQ applies the EQ predicate on the "from_domain" field.
func FromDomainEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldFromDomain, v))
}

// FromDomainNEQ applies the NEQ predicate on the "from_domain" field.
func FromDomainNEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldFromDomain, v))
}

// FromDomainIn applies the In predicate on the "from_domain" field.
func FromDomainIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldFromDomain, vs...))
}

// FromDomainNotIn applies the NotIn predicate on the "from_domain" field.
func FromDomainNotIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldFromDomain, vs...))
}

// FromDomainGT applies the GT predicate on the "from_domain" field.
func FromDomainGT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldFromDomain, v))
}

// FromDomainGTE applies the GTE predicate on the "from_domain" field.
func FromDomainGTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldFromDomain, v))
}

// FromDomainLT applies the LT predicate on the "from_domain" field.
func FromDomainLT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldFromDomain, v))
}

// FromDomainLTE applies the LTE predicate on the "from_domain" field.
func FromDomainLTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldFromDomain, v))
}

// FromDomainContains applies the Contains predicate on the "from_domain" field.
func FromDomainContains(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContains(FieldFromDomain, v))
}

// FromDomainHasPrefix applies the HasPrefix predicate on the "from_domain" field.
func FromDomainHasPrefix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasPrefix(FieldFromDomain, v))
}

// FromDomainHasSuffix applies the HasSuffix predicate on the "from_domain" field.
func FromDomainHasSuffix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasSuffix(FieldFromDomain, v))
}

// FromDomainIsNil applies the IsNil predicate on the "from_domain" field.
func FromDomainIsNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIsNull(FieldFromDomain))
}

// FromDomainNotNil applies the NotNil predicate on the "from_domain" field.
func FromDomainNotNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotNull(FieldFromDomain))
}

// FromDomainEqualFold applies the EqualFold predicate on the "from_domain" field.
func FromDomainEqualFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEqualFold(FieldFromDomain, v))
}

// FromDomainContainsFold applies the ContainsFold predicate on the "from_domain" field.
func FromDomainContainsFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContainsFold(FieldFromDomain, v))
}

// ToAddressesIsNil applies the IsNil predicate on the "to_addresses" field.
func ToAddressesIsNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIsNull(FieldToAddresses))
}

// ToAddressesNotNil applies the NotNil predicate on the "to_addresses" field.
func ToAddressesNotNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotNull(FieldToAddresses))
}

// CcAddressesIsNil applies the IsNil predicate on the "cc_addresses" field.
func CcAddressesIsNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIsNull(FieldCcAddresses))
}

// CcAddressesNotNil applies the NotNil predicate on the "cc_addresses" field.
func CcAddressesNotNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotNull(FieldCcAddresses))
}

// BccAddressesIsNil applies the IsNil predicate on the "bcc_addresses" field.
func BccAddressesIsNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIsNull(FieldBccAddresses))
}

// BccAddressesNotNil applies the NotNil predicate on the "bcc_addresses" field.
func BccAddressesNotNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotNull(FieldBccAddresses))
}

// IsUnreadEQ applies the EQ predicate on the "is_unread" field.
func IsUnreadEQ(v bool) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldIsUnread, v))
}

// IsUnreadNEQ applies the NEQ predicate on the "is_unread" field.
func IsUnreadNEQ(v bool) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldIsUnread, v))
}

// InternalDateEQ applies the EQ predicate on the "internal_date" field.
func InternalDateEQ(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldInternalDate, v))
}

// InternalDateNEQ applies the NEQ predicate on the "internal_date" field.
func InternalDateNEQ(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldInternalDate, v))
}

// InternalDateIn applies the In predicate on the "internal_date" field.
func InternalDateIn(vs ...time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldInternalDate, vs...))
}

// InternalDateNotIn applies the NotIn predicate on the "internal_date" field.
func InternalDateNotIn(vs ...time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldInternalDate, vs...))
}

// InternalDateGT applies the GT predicate on the "internal_date" field.
func InternalDateGT(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldInternalDate, v))
}

// InternalDateGTE applies the GTE predicate on the "internal_date" field.
func InternalDateGTE(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldInternalDate, v))
}

// InternalDateLT applies the LT predicate on the "internal_date" field.
func InternalDateLT(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldInternalDate, v))
}

// InternalDateLTE applies the LTE predicate on the "internal_date" field.
func InternalDateLTE(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldInternalDate, v))
}

// InternalDateIsNil applies the IsNil predicate on the "internal_date" field.
func InternalDateIsNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIsNull(FieldInternalDate))
}

// InternalDateNotNil applies the NotNil predicate on the "internal_date" field.
func InternalDateNotNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotNull(FieldInternalDate))
}

// LabelIdsIsNil applies the IsNil predicate on the "label_ids" field.
func LabelIdsIsNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIsNull(FieldLabelIds))
}

// LabelIdsNotNil applies the NotNil predicate on the "label_ids" field.
func LabelIdsNotNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotNull(FieldLabelIds))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContainsFold(FieldCategory, v))
}

// SubcategoryEQ applies the EQ predicate on the "subcategory" field.
func SubcategoryEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldSubcategory, v))
}

// SubcategoryNEQ applies the NEQ predicate on the "subcategory" field.
func SubcategoryNEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldSubcategory, v))
}

// SubcategoryIn applies the In predicate on the "subcategory" field.
func SubcategoryIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldSubcategory, vs...))
}

// SubcategoryNotIn applies the NotIn predicate on the "subcategory" field.
func SubcategoryNotIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldSubcategory, vs...))
}

// SubcategoryGT applies the GT predicate on the "subcategory" field.
func SubcategoryGT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldSubcategory, v))
}

// SubcategoryGTE applies the GTE predicate on the "subcategory" field.
func SubcategoryGTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldSubcategory, v))
}

// SubcategoryLT applies the LT predicate on the "subcategory" field.
func SubcategoryLT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldSubcategory, v))
}

// SubcategoryLTE applies the LTE predicate on the "subcategory" field.
func SubcategoryLTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldSubcategory, v))
}

// SubcategoryContains applies the Contains predicate on the "subcategory" field.
func SubcategoryContains(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContains(FieldSubcategory, v))
}

// SubcategoryHasPrefix applies the HasPrefix predicate on the "subcategory" field.
func SubcategoryHasPrefix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasPrefix(FieldSubcategory, v))
}

// SubcategoryHasSuffix applies the HasSuffix predicate on the "subcategory" field.
func SubcategoryHasSuffix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasSuffix(FieldSubcategory, v))
}

// SubcategoryIsNil applies the IsNil predicate on the "subcategory" field.
func SubcategoryIsNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIsNull(FieldSubcategory))
}

// SubcategoryNotNil applies the NotNil predicate on the "subcategory" field.
func SubcategoryNotNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotNull(FieldSubcategory))
}

// SubcategoryEqualFold applies the EqualFold predicate on the "subcategory" field.
func SubcategoryEqualFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEqualFold(FieldSubcategory, v))
}

// SubcategoryContainsFold applies the ContainsFold predicate on the "subcategory" field.
func SubcategoryContainsFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContainsFold(FieldSubcategory, v))
}

// LabelVersionEQ applies the EQ predicate on the "label_version" field.
func LabelVersionEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldLabelVersion, v))
}

// LabelVersionNEQ applies the NEQ predicate on the "label_version" field.
func LabelVersionNEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldLabelVersion, v))
}

// LabelVersionIn applies the In predicate on the "label_version" field.
func LabelVersionIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldLabelVersion, vs...))
}

// LabelVersionNotIn applies the NotIn predicate on the "label_version" field.
func LabelVersionNotIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldLabelVersion, vs...))
}

// LabelVersionGT applies the GT predicate on the "label_version" field.
func LabelVersionGT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldLabelVersion, v))
}

// LabelVersionGTE applies the GTE predicate on the "label_version" field.
func LabelVersionGTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldLabelVersion, v))
}

// LabelVersionLT applies the LT predicate on the "label_version" field.
func LabelVersionLT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldLabelVersion, v))
}

// LabelVersionLTE applies the LTE predicate on the "label_version" field.
func LabelVersionLTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldLabelVersion, v))
}

// LabelVersionContains applies the Contains predicate on the "label_version" field.
func LabelVersionContains(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContains(FieldLabelVersion, v))
}

// LabelVersionHasPrefix applies the HasPrefix predicate on the "label_version" field.
func LabelVersionHasPrefix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasPrefix(FieldLabelVersion, v))
}

// LabelVersionHasSuffix applies the HasSuffix predicate on the "label_version" field.
func LabelVersionHasSuffix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasSuffix(FieldLabelVersion, v))
}

// LabelVersionIsNil applies the IsNil predicate on the "label_version" field.
func LabelVersionIsNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIsNull(FieldLabelVersion))
}

// LabelVersionNotNil applies the NotNil predicate on the "label_version" field.
func LabelVersionNotNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotNull(FieldLabelVersion))
}

// LabelVersionEqualFold applies the EqualFold predicate on the "label_version" field.
func LabelVersionEqualFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEqualFold(FieldLabelVersion, v))
}

// LabelVersionContainsFold applies the ContainsFold predicate on the "label_version" field.
func LabelVersionContainsFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContainsFold(FieldLabelVersion, v))
}

// ClusterIDEQ applies the EQ predicate on the "cluster_id" field.
func ClusterIDEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldClusterID, v))
}

// ClusterIDNEQ applies the NEQ predicate on the "cluster_id" field.
func ClusterIDNEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldClusterID, v))
}

// ClusterIDIn applies the In predicate on the "cluster_id" field.
func ClusterIDIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldClusterID, vs...))
}

// ClusterIDNotIn applies the NotIn predicate on the "cluster_id" field.
func ClusterIDNotIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldClusterID, vs...))
}

// ClusterIDGT applies the GT predicate on the "cluster_id" field.
func ClusterIDGT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldClusterID, v))
}

// ClusterIDGTE applies the GTE predicate on the "cluster_id" field.
func ClusterIDGTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldClusterID, v))
}

// ClusterIDLT applies the LT predicate on the "cluster_id" field.
func ClusterIDLT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldClusterID, v))
}

// ClusterIDLTE applies the LTE predicate on the "cluster_id" field.
func ClusterIDLTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldClusterID, v))
}

// ClusterIDContains applies the Contains predicate on the "cluster_id" field.
func ClusterIDContains(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContains(FieldClusterID, v))
}

// ClusterIDHasPrefix applies the HasPrefix predicate on the "cluster_id" field.
func ClusterIDHasPrefix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasPrefix(FieldClusterID, v))
}

// ClusterIDHasSuffix applies the HasSuffix predicate on the "cluster_id" field.
func ClusterIDHasSuffix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasSuffix(FieldClusterID, v))
}

// ClusterIDIsNil applies the IsNil predicate on the "cluster_id" field.
func ClusterIDIsNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIsNull(FieldClusterID))
}

// ClusterIDNotNil applies the NotNil predicate on the "cluster_id" field.
func ClusterIDNotNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotNull(FieldClusterID))
}

// ClusterIDEqualFold applies the EqualFold predicate on the "cluster_id" field.
func ClusterIDEqualFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEqualFold(FieldClusterID, v))
}

// ClusterIDContainsFold applies the ContainsFold predicate on the "cluster_id" field.
func ClusterIDContainsFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContainsFold(FieldClusterID, v))
}

// ArchivedAtEQ applies the EQ predicate on the "archived_at" field.
func ArchivedAtEQ(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldArchivedAt, v))
}

// ArchivedAtNEQ applies the NEQ predicate on the "archived_at" field.
func ArchivedAtNEQ(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldArchivedAt, v))
}

// ArchivedAtIn applies the In predicate on the "archived_at" field.
func ArchivedAtIn(vs ...time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldArchivedAt, vs...))
}

// ArchivedAtNotIn applies the NotIn predicate on the "archived_at" field.
func ArchivedAtNotIn(vs ...time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldArchivedAt, vs...))
}

// ArchivedAtGT applies the GT predicate on the "archived_at" field.
func ArchivedAtGT(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldArchivedAt, v))
}

// ArchivedAtGTE applies the GTE predicate on the "archived_at" field.
func ArchivedAtGTE(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldArchivedAt, v))
}

// ArchivedAtLT applies the LT predicate on the "archived_at" field.
func ArchivedAtLT(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldArchivedAt, v))
}

// ArchivedAtLTE applies the LTE predicate on the "archived_at" field.
func ArchivedAtLTE(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldArchivedAt, v))
}

// ArchivedAtIsNil applies the IsNil predicate on the "archived_at" field.
func ArchivedAtIsNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIsNull(FieldArchivedAt))
}

// ArchivedAtNotNil applies the NotNil predicate on the "archived_at" field.
func ArchivedAtNotNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotNull(FieldArchivedAt))
}

// InboxRemovedAtEQ applies the EQ predicate on the "inbox_removed_at" field.
func InboxRemovedAtEQ(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldInboxRemovedAt, v))
}

// InboxRemovedAtNEQ applies the NEQ predicate on the "inbox_removed_at" field.
func InboxRemovedAtNEQ(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldInboxRemovedAt, v))
}

// InboxRemovedAtIn applies the In predicate on the "inbox_removed_at" field.
func InboxRemovedAtIn(vs ...time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldInboxRemovedAt, vs...))
}

// InboxRemovedAtNotIn applies the NotIn predicate on the "inbox_removed_at" field.
func InboxRemovedAtNotIn(vs ...time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldInboxRemovedAt, vs...))
}

// InboxRemovedAtGT applies the GT predicate on the "inbox_removed_at" field.
func InboxRemovedAtGT(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldInboxRemovedAt, v))
}

// InboxRemovedAtGTE applies the GTE predicate on the "inbox_removed_at" field.
func InboxRemovedAtGTE(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldInboxRemovedAt, v))
}

// InboxRemovedAtLT applies the LT predicate on the "inbox_removed_at" field.
func InboxRemovedAtLT(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldInboxRemovedAt, v))
}

// InboxRemovedAtLTE applies the LTE predicate on the "inbox_removed_at" field.
func InboxRemovedAtLTE(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldInboxRemovedAt, v))
}

// InboxRemovedAtIsNil applies the IsNil predicate on the "inbox_removed_at" field.
func InboxRemovedAtIsNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIsNull(FieldInboxRemovedAt))
}

// InboxRemovedAtNotNil applies the NotNil predicate on the "inbox_removed_at" field.
func InboxRemovedAtNotNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotNull(FieldInboxRemovedAt))
}

// LifecycleStateEQ applies the EQ predicate on the "lifecycle_state" field.
func LifecycleStateEQ(v LifecycleState) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldLifecycleState, v))
}

// LifecycleStateNEQ applies the NEQ predicate on the "lifecycle_state" field.
func LifecycleStateNEQ(v LifecycleState) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldLifecycleState, v))
}

// LifecycleStateIn applies the In predicate on the "lifecycle_state" field.
func LifecycleStateIn(vs ...LifecycleState) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldLifecycleState, vs...))
}

// LifecycleStateNotIn applies the NotIn predicate on the "lifecycle_state" field.
func LifecycleStateNotIn(vs ...LifecycleState) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldLifecycleState, vs...))
}

// TrashedAtEQ applies the EQ predicate on the "trashed_at" field.
func TrashedAtEQ(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldTrashedAt, v))
}

// TrashedAtNEQ applies the NEQ predicate on the "trashed_at" field.
func TrashedAtNEQ(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldTrashedAt, v))
}

// TrashedAtIn applies the In predicate on the "trashed_at" field.
func TrashedAtIn(vs ...time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldTrashedAt, vs...))
}

// TrashedAtNotIn applies the NotIn predicate on the "trashed_at" field.
func TrashedAtNotIn(vs ...time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldTrashedAt, vs...))
}

// TrashedAtGT applies the GT predicate on the "trashed_at" field.
func TrashedAtGT(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldTrashedAt, v))
}

// TrashedAtGTE applies the GTE predicate on the "trashed_at" field.
func TrashedAtGTE(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldTrashedAt, v))
}

// TrashedAtLT applies the LT predicate on the "trashed_at" field.
func TrashedAtLT(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldTrashedAt, v))
}

// TrashedAtLTE applies the LTE predicate on the "trashed_at" field.
func TrashedAtLTE(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldTrashedAt, v))
}

// TrashedAtIsNil applies the IsNil predicate on the "trashed_at" field.
func TrashedAtIsNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIsNull(FieldTrashedAt))
}

// TrashedAtNotNil applies the NotNil predicate on the "trashed_at" field.
func TrashedAtNotNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotNull(FieldTrashedAt))
}

// ExpiryAtEQ applies the EQ predicate on the "expiry_at" field.
func ExpiryAtEQ(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldExpiryAt, v))
}

// ExpiryAtNEQ applies the NEQ predicate on the "expiry_at" field.
func ExpiryAtNEQ(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldExpiryAt, v))
}

// ExpiryAtIn applies the In predicate on the "expiry_at" field.
func ExpiryAtIn(vs ...time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldExpiryAt, vs...))
}

// ExpiryAtNotIn applies the NotIn predicate on the "expiry_at" field.
func ExpiryAtNotIn(vs ...time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldExpiryAt, vs...))
}

// ExpiryAtGT applies the GT predicate on the "expiry_at" field.
func ExpiryAtGT(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldExpiryAt, v))
}

// ExpiryAtGTE applies the GTE predicate on the "expiry_at" field.
func ExpiryAtGTE(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldExpiryAt, v))
}

// ExpiryAtLT applies the LT predicate on the "expiry_at" field.
func ExpiryAtLT(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldExpiryAt, v))
}

// ExpiryAtLTE applies the LTE predicate on the "expiry_at" field.
func ExpiryAtLTE(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldExpiryAt, v))
}

// ExpiryAtIsNil applies the IsNil predicate on the "expiry_at" field.
func ExpiryAtIsNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIsNull(FieldExpiryAt))
}

// ExpiryAtNotNil applies the NotNil predicate on the "expiry_at" field.
func ExpiryAtNotNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotNull(FieldExpiryAt))
}

// TrashedByPolicyIDEQ applies the EQ predicate on the "trashed_by_policy_id" field.
func TrashedByPolicyIDEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldTrashedByPolicyID, v))
}

// TrashedByPolicyIDNEQ applies the NEQ predicate on the "trashed_by_policy_id" field.
func TrashedByPolicyIDNEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldTrashedByPolicyID, v))
}

// TrashedByPolicyIDIn applies the In predicate on the "trashed_by_policy_id" field.
func TrashedByPolicyIDIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldTrashedByPolicyID, vs...))
}

// TrashedByPolicyIDNotIn applies the NotIn predicate on the "trashed_by_policy_id" field.
func TrashedByPolicyIDNotIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldTrashedByPolicyID, vs...))
}

// TrashedByPolicyIDGT applies the GT predicate on the "trashed_by_policy_id" field.
func TrashedByPolicyIDGT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldTrashedByPolicyID, v))
}

// TrashedByPolicyIDGTE applies the GTE predicate on the "trashed_by_policy_id" field.
func TrashedByPolicyIDGTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldTrashedByPolicyID, v))
}

// TrashedByPolicyIDLT applies the LT predicate on the "trashed_by_policy_id" field.
func TrashedByPolicyIDLT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldTrashedByPolicyID, v))
}

// TrashedByPolicyIDLTE applies the LTE predicate on the "trashed_by_policy_id" field.
func TrashedByPolicyIDLTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldTrashedByPolicyID, v))
}

// TrashedByPolicyIDContains applies the Contains predicate on the "trashed_by_policy_id" field.
func TrashedByPolicyIDContains(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContains(FieldTrashedByPolicyID, v))
}

// TrashedByPolicyIDHasPrefix applies the HasPrefix predicate on the "trashed_by_policy_id" field.
func TrashedByPolicyIDHasPrefix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasPrefix(FieldTrashedByPolicyID, v))
}

// TrashedByPolicyIDHasSuffix applies the HasSuffix predicate on the "trashed_by_policy_id" field.
func TrashedByPolicyIDHasSuffix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasSuffix(FieldTrashedByPolicyID, v))
}

// TrashedByPolicyIDIsNil applies the IsNil predicate on the "trashed_by_policy_id" field.
func TrashedByPolicyIDIsNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIsNull(FieldTrashedByPolicyID))
}

// TrashedByPolicyIDNotNil applies the NotNil predicate on the "trashed_by_policy_id" field.
func TrashedByPolicyIDNotNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotNull(FieldTrashedByPolicyID))
}

// TrashedByPolicyIDEqualFold applies the EqualFold predicate on the "trashed_by_policy_id" field.
func TrashedByPolicyIDEqualFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEqualFold(FieldTrashedByPolicyID, v))
}

// TrashedByPolicyIDContainsFold applies the ContainsFold predicate on the "trashed_by_policy_id" field.
func TrashedByPolicyIDContainsFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContainsFold(FieldTrashedByPolicyID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCluster applies the HasEdge predicate on the "cluster" edge.
func HasCluster() predicate.EmailMessage {
	return predicate.EmailMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClusterTable, ClusterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClusterWith applies the HasEdge predicate on the "cluster" edge with a given conditions (other predicates).
func HasClusterWith(preds ...predicate.EmailCluster) predicate.EmailMessage {
	return predicate.EmailMessage(func(s *sql.Selector) {
		step := newClusterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAssignment applies the HasEdge predicate on the "assignment" edge.
func HasAssignment() predicate.EmailMessage {
	return predicate.EmailMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, AssignmentTable, AssignmentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssignmentWith applies the HasEdge predicate on the "assignment" edge with a given conditions (other predicates).
func HasAssignmentWith(preds ...predicate.TaxonomyAssignment) predicate.EmailMessage {
	return predicate.EmailMessage(func(s *sql.Selector) {
		step := newAssignmentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLabelPushes applies the HasEdge predicate on the "label_pushes" edge.
func HasLabelPushes() predicate.EmailMessage {
	return predicate.EmailMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LabelPushesTable, LabelPushesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLabelPushesWith applies the HasEdge predicate on the "label_pushes" edge with a given conditions (other predicates).
func HasLabelPushesWith(preds ...predicate.LabelOutbox) predicate.EmailMessage {
	return predicate.EmailMessage(func(s *sql.Selector) {
		step := newLabelPushesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasArchivePush applies the HasEdge predicate on the "archive_push" edge.
func HasArchivePush() predicate.EmailMessage {
	return predicate.EmailMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ArchivePushTable, ArchivePushColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArchivePushWith applies the HasEdge predicate on the "archive_push" edge with a given conditions (other predicates).
func HasArchivePushWith(preds ...predicate.ArchiveOutbox) predicate.EmailMessage {
	return predicate.EmailMessage(func(s *sql.Selector) {
		step := newArchivePushStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EmailMessage) predicate.EmailMessage {
	return predicate.EmailMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EmailMessage) predicate.EmailMessage {
	return predicate.EmailMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EmailMessage) predicate.EmailMessage {
	return predicate.EmailMessage(sql.NotPredicates(p))
}
