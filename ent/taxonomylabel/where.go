// Code generated by ent, DO NOT EDIT.

package taxonomylabel

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mailscope/mailscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldLTE(FieldID, id))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEQ(FieldLevel, v))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEQ(FieldSlug, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEQ(FieldDescription, v))
}

// ParentID applies equality check predicate on the "parent_id" field. It's identical to ParentIDEQ.
func ParentID(v int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEQ(FieldParentID, v))
}

// RetentionDays applies equality check predicate on the "retention_days" field. It's identical to RetentionDaysEQ.
func RetentionDays(v int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEQ(FieldRetentionDays, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEQ(FieldIsActive, v))
}

// GmailLabelID applies equality check predicate on the "gmail_label_id" field. It's identical to GmailLabelIDEQ.
func GmailLabelID(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEQ(FieldGmailLabelID, v))
}

// LastSyncAt applies equality check predicate on the "last_sync_at" field. It's identical to LastSyncAtEQ.
func LastSyncAt(v time.Time) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEQ(FieldLastSyncAt, v))
}

// LastSyncStatus applies equality check predicate on the "last_sync_status" field. It's identical to LastSyncStatusEQ.
func LastSyncStatus(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEQ(FieldLastSyncStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEQ(FieldCreatedAt, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldLTE(FieldLevel, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldContainsFold(FieldSlug, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldContainsFold(FieldDescription, v))
}

// ParentIDEQ applies the EQ predicate on the "parent_id" field.
func ParentIDEQ(v int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEQ(FieldParentID, v))
}

// ParentIDNEQ applies the NEQ predicate on the "parent_id" field.
func ParentIDNEQ(v int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNEQ(FieldParentID, v))
}

// ParentIDIn applies the In predicate on the "parent_id" field.
func ParentIDIn(vs ...int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldIn(FieldParentID, vs...))
}

// ParentIDNotIn applies the NotIn predicate on the "parent_id" field.
func ParentIDNotIn(vs ...int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNotIn(FieldParentID, vs...))
}

// ParentIDIsNil applies the IsNil predicate on the "parent_id" field.
func ParentIDIsNil() predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldIsNull(FieldParentID))
}

// ParentIDNotNil applies the NotNil predicate on the "parent_id" field.
func ParentIDNotNil() predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNotNull(FieldParentID))
}

// RetentionDaysEQ applies the EQ predicate on the "retention_days" field.
func RetentionDaysEQ(v int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEQ(FieldRetentionDays, v))
}

// RetentionDaysNEQ applies the NEQ predicate on the "retention_days" field.
func RetentionDaysNEQ(v int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNEQ(FieldRetentionDays, v))
}

// RetentionDaysIn applies the In predicate on the "retention_days" field.
func RetentionDaysIn(vs ...int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldIn(FieldRetentionDays, vs...))
}

// RetentionDaysNotIn applies the NotIn predicate on the "retention_days" field.
func RetentionDaysNotIn(vs ...int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNotIn(FieldRetentionDays, vs...))
}

// RetentionDaysGT applies the GT predicate on the "retention_days" field.
func RetentionDaysGT(v int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldGT(FieldRetentionDays, v))
}

// RetentionDaysGTE applies the GTE predicate on the "retention_days" field.
func RetentionDaysGTE(v int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldGTE(FieldRetentionDays, v))
}

// RetentionDaysLT applies the LT predicate on the "retention_days" field.
func RetentionDaysLT(v int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldLT(FieldRetentionDays, v))
}

// RetentionDaysLTE applies the LTE predicate on the "retention_days" field.
func RetentionDaysLTE(v int) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldLTE(FieldRetentionDays, v))
}

// RetentionDaysIsNil applies the IsNil predicate on the "retention_days" field.
func RetentionDaysIsNil() predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldIsNull(FieldRetentionDays))
}

// RetentionDaysNotNil applies the NotNil predicate on the "retention_days" field.
func RetentionDaysNotNil() predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNotNull(FieldRetentionDays))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNEQ(FieldIsActive, v))
}

// GmailLabelIDEQ applies the EQ predicate on the "gmail_label_id" field.
func GmailLabelIDEQ(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEQ(FieldGmailLabelID, v))
}

// GmailLabelIDNEQ applies the NEQ predicate on the "gmail_label_id" field.
func GmailLabelIDNEQ(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNEQ(FieldGmailLabelID, v))
}

// GmailLabelIDIn applies the In predicate on the "gmail_label_id" field.
func GmailLabelIDIn(vs ...string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldIn(FieldGmailLabelID, vs...))
}

// GmailLabelIDNotIn applies the NotIn predicate on the "gmail_label_id" field.
func GmailLabelIDNotIn(vs ...string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNotIn(FieldGmailLabelID, vs...))
}

// GmailLabelIDGT applies the GT predicate on the "gmail_label_id" field.
func GmailLabelIDGT(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldGT(FieldGmailLabelID, v))
}

// GmailLabelIDGTE applies the GTE predicate on the "gmail_label_id" field.
func GmailLabelIDGTE(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldGTE(FieldGmailLabelID, v))
}

// GmailLabelIDLT applies the LT predicate on the "gmail_label_id" field.
func GmailLabelIDLT(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldLT(FieldGmailLabelID, v))
}

// GmailLabelIDLTE applies the LTE predicate on the "gmail_label_id" field.
func GmailLabelIDLTE(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldLTE(FieldGmailLabelID, v))
}

// GmailLabelIDContains applies the Contains predicate on the "gmail_label_id" field.
func GmailLabelIDContains(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldContains(FieldGmailLabelID, v))
}

// GmailLabelIDHasPrefix applies the HasPrefix predicate on the "gmail_label_id" field.
func GmailLabelIDHasPrefix(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldHasPrefix(FieldGmailLabelID, v))
}

// GmailLabelIDHasSuffix applies the HasSuffix predicate on the "gmail_label_id" field.
func GmailLabelIDHasSuffix(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldHasSuffix(FieldGmailLabelID, v))
}

// GmailLabelIDIsNil applies the IsNil predicate on the "gmail_label_id" field.
func GmailLabelIDIsNil() predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldIsNull(FieldGmailLabelID))
}

// GmailLabelIDNotNil applies the NotNil predicate on the "gmail_label_id" field.
func GmailLabelIDNotNil() predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNotNull(FieldGmailLabelID))
}

// GmailLabelIDEqualFold applies the EqualFold predicate on the "gmail_label_id" field.
func GmailLabelIDEqualFold(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEqualFold(FieldGmailLabelID, v))
}

// GmailLabelIDContainsFold applies the ContainsFold predicate on the "gmail_label_id" field.
func GmailLabelIDContainsFold(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldContainsFold(FieldGmailLabelID, v))
}

// LastSyncAtEQ applies the EQ predicate on the "last_sync_at" field.
func LastSyncAtEQ(v time.Time) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEQ(FieldLastSyncAt, v))
}

// LastSyncAtNEQ applies the NEQ predicate on the "last_sync_at" field.
func LastSyncAtNEQ(v time.Time) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNEQ(FieldLastSyncAt, v))
}

// LastSyncAtIn applies the In predicate on the "last_sync_at" field.
func LastSyncAtIn(vs ...time.Time) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldIn(FieldLastSyncAt, vs...))
}

// LastSyncAtNotIn applies the NotIn predicate on the "last_sync_at" field.
func LastSyncAtNotIn(vs ...time.Time) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNotIn(FieldLastSyncAt, vs...))
}

// LastSyncAtGT applies the GT predicate on the "last_sync_at" field.
func LastSyncAtGT(v time.Time) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldGT(FieldLastSyncAt, v))
}

// LastSyncAtGTE applies the GTE predicate on the "last_sync_at" field.
func LastSyncAtGTE(v time.Time) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldGTE(FieldLastSyncAt, v))
}

// LastSyncAtLT applies the LT predicate on the "last_sync_at" field.
func LastSyncAtLT(v time.Time) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldLT(FieldLastSyncAt, v))
}

// LastSyncAtLTE applies the LTE predicate on the "last_sync_at" field.
func LastSyncAtLTE(v time.Time) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldLTE(FieldLastSyncAt, v))
}

// LastSyncAtIsNil applies the IsNil predicate on the "last_sync_at" field.
func LastSyncAtIsNil() predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldIsNull(FieldLastSyncAt))
}

// LastSyncAtNotNil applies the NotNil predicate on the "last_sync_at" field.
func LastSyncAtNotNil() predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNotNull(FieldLastSyncAt))
}

// LastSyncStatusEQ applies the EQ predicate on the "last_sync_status" field.
func LastSyncStatusEQ(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEQ(FieldLastSyncStatus, v))
}

// LastSyncStatusNEQ applies the NEQ predicate on the "last_sync_status" field.
func LastSyncStatusNEQ(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNEQ(FieldLastSyncStatus, v))
}

// LastSyncStatusIn applies the In predicate on the "last_sync_status" field.
func LastSyncStatusIn(vs ...string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldIn(FieldLastSyncStatus, vs...))
}

// LastSyncStatusNotIn applies the NotIn predicate on the "last_sync_status" field.
func LastSyncStatusNotIn(vs ...string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNotIn(FieldLastSyncStatus, vs...))
}

// LastSyncStatusGT applies the GT predicate on the "last_sync_status" field.
func LastSyncStatusGT(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldGT(FieldLastSyncStatus, v))
}

// LastSyncStatusGTE applies the GTE predicate on the "last_sync_status" field.
func LastSyncStatusGTE(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldGTE(FieldLastSyncStatus, v))
}

// LastSyncStatusLT applies the LT predicate on the "last_sync_status" field.
func LastSyncStatusLT(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldLT(FieldLastSyncStatus, v))
}

// LastSyncStatusLTE applies the LTE predicate on the "last_sync_status" field.
func LastSyncStatusLTE(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldLTE(FieldLastSyncStatus, v))
}

// LastSyncStatusContains applies the Contains predicate on the "last_sync_status" field.
func LastSyncStatusContains(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldContains(FieldLastSyncStatus, v))
}

// LastSyncStatusHasPrefix applies the HasPrefix predicate on the "last_sync_status" field.
func LastSyncStatusHasPrefix(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldHasPrefix(FieldLastSyncStatus, v))
}

// LastSyncStatusHasSuffix applies the HasSuffix predicate on the "last_sync_status" field.
func LastSyncStatusHasSuffix(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldHasSuffix(FieldLastSyncStatus, v))
}

// LastSyncStatusIsNil applies the IsNil predicate on the "last_sync_status" field.
func LastSyncStatusIsNil() predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldIsNull(FieldLastSyncStatus))
}

// LastSyncStatusNotNil applies the NotNil predicate on the "last_sync_status" field.
func LastSyncStatusNotNil() predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNotNull(FieldLastSyncStatus))
}

// LastSyncStatusEqualFold applies the EqualFold predicate on the "last_sync_status" field.
func LastSyncStatusEqualFold(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEqualFold(FieldLastSyncStatus, v))
}

// LastSyncStatusContainsFold applies the ContainsFold predicate on the "last_sync_status" field.
func LastSyncStatusContainsFold(v string) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldContainsFold(FieldLastSyncStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.FieldLTE(FieldCreatedAt, v))
}

// HasParent applies the HasEdge predicate on the "parent" edge.
func HasParent() predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParentWith applies the HasEdge predicate on the "parent" edge with a given conditions (other predicates).
func HasParentWith(preds ...predicate.TaxonomyLabel) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(func(s *sql.Selector) {
		step := newParentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChildren applies the HasEdge predicate on the "children" edge.
func HasChildren() predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChildrenTable, ChildrenColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChildrenWith applies the HasEdge predicate on the "children" edge with a given conditions (other predicates).
func HasChildrenWith(preds ...predicate.TaxonomyLabel) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(func(s *sql.Selector) {
		step := newChildrenStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAssignments applies the HasEdge predicate on the "assignments" edge.
func HasAssignments() predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AssignmentsTable, AssignmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssignmentsWith applies the HasEdge predicate on the "assignments" edge with a given conditions (other predicates).
func HasAssignmentsWith(preds ...predicate.TaxonomyAssignment) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(func(s *sql.Selector) {
		step := newAssignmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaxonomyLabel) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaxonomyLabel) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaxonomyLabel) predicate.TaxonomyLabel {
	return predicate.TaxonomyLabel(sql.NotPredicates(p))
}
