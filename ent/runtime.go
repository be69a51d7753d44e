// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mailscope/mailscope/ent/archiveoutbox"
	"github.com/mailscope/mailscope/ent/emailcluster"
	"github.com/mailscope/mailscope/ent/emailmessage"
	"github.com/mailscope/mailscope/ent/emailpolicy"
	"github.com/mailscope/mailscope/ent/eventrecord"
	"github.com/mailscope/mailscope/ent/labeloutbox"
	"github.com/mailscope/mailscope/ent/paymentrecord"
	"github.com/mailscope/mailscope/ent/pipelinekv"
	"github.com/mailscope/mailscope/ent/schema"
	"github.com/mailscope/mailscope/ent/taxonomyassignment"
	"github.com/mailscope/mailscope/ent/taxonomylabel"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	archiveoutboxFields := schema.ArchiveOutbox{}.Fields()
	_ = archiveoutboxFields
	// archiveoutboxDescCreatedAt is the schema descriptor for created_at field.
	archiveoutboxDescCreatedAt := archiveoutboxFields[3].Descriptor()
	// archiveoutbox.DefaultCreatedAt holds the default value on creation for the created_at field.
	archiveoutbox.DefaultCreatedAt = archiveoutboxDescCreatedAt.Default.(func() time.Time)
	emailclusterFields := schema.EmailCluster{}.Fields()
	_ = emailclusterFields
	// emailclusterDescCreatedAt is the schema descriptor for created_at field.
	emailclusterDescCreatedAt := emailclusterFields[11].Descriptor()
	// emailcluster.DefaultCreatedAt holds the default value on creation for the created_at field.
	emailcluster.DefaultCreatedAt = emailclusterDescCreatedAt.Default.(func() time.Time)
	emailmessageFields := schema.EmailMessage{}.Fields()
	_ = emailmessageFields
	// emailmessageDescIsUnread is the schema descriptor for is_unread field.
	emailmessageDescIsUnread := emailmessageFields[9].Descriptor()
	// emailmessage.DefaultIsUnread holds the default value on creation for the is_unread field.
	emailmessage.DefaultIsUnread = emailmessageDescIsUnread.Default.(bool)
	// emailmessageDescCreatedAt is the schema descriptor for created_at field.
	emailmessageDescCreatedAt := emailmessageFields[22].Descriptor()
	// emailmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	emailmessage.DefaultCreatedAt = emailmessageDescCreatedAt.Default.(func() time.Time)
	emailpolicyFields := schema.EmailPolicy{}.Fields()
	_ = emailpolicyFields
	// emailpolicyDescEnabled is the schema descriptor for enabled field.
	emailpolicyDescEnabled := emailpolicyFields[2].Descriptor()
	// emailpolicy.DefaultEnabled holds the default value on creation for the enabled field.
	emailpolicy.DefaultEnabled = emailpolicyDescEnabled.Default.(bool)
	// emailpolicyDescCreatedAt is the schema descriptor for created_at field.
	emailpolicyDescCreatedAt := emailpolicyFields[7].Descriptor()
	// emailpolicy.DefaultCreatedAt holds the default value on creation for the created_at field.
	emailpolicy.DefaultCreatedAt = emailpolicyDescCreatedAt.Default.(func() time.Time)
	// emailpolicyDescUpdatedAt is the schema descriptor for updated_at field.
	emailpolicyDescUpdatedAt := emailpolicyFields[8].Descriptor()
	// emailpolicy.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	emailpolicy.DefaultUpdatedAt = emailpolicyDescUpdatedAt.Default.(func() time.Time)
	// emailpolicy.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	emailpolicy.UpdateDefaultUpdatedAt = emailpolicyDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventrecordFields := schema.EventRecord{}.Fields()
	_ = eventrecordFields
	// eventrecordDescEndTimeInferred is the schema descriptor for end_time_inferred field.
	eventrecordDescEndTimeInferred := eventrecordFields[9].Descriptor()
	// eventrecord.DefaultEndTimeInferred holds the default value on creation for the end_time_inferred field.
	eventrecord.DefaultEndTimeInferred = eventrecordDescEndTimeInferred.Default.(bool)
	// eventrecordDescExtractedAt is the schema descriptor for extracted_at field.
	eventrecordDescExtractedAt := eventrecordFields[19].Descriptor()
	// eventrecord.DefaultExtractedAt holds the default value on creation for the extracted_at field.
	eventrecord.DefaultExtractedAt = eventrecordDescExtractedAt.Default.(func() time.Time)
	// eventrecordDescUpdatedAt is the schema descriptor for updated_at field.
	eventrecordDescUpdatedAt := eventrecordFields[20].Descriptor()
	// eventrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	eventrecord.DefaultUpdatedAt = eventrecordDescUpdatedAt.Default.(func() time.Time)
	// eventrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	eventrecord.UpdateDefaultUpdatedAt = eventrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	labeloutboxFields := schema.LabelOutbox{}.Fields()
	_ = labeloutboxFields
	// labeloutboxDescCreatedAt is the schema descriptor for created_at field.
	labeloutboxDescCreatedAt := labeloutboxFields[2].Descriptor()
	// labeloutbox.DefaultCreatedAt holds the default value on creation for the created_at field.
	labeloutbox.DefaultCreatedAt = labeloutboxDescCreatedAt.Default.(func() time.Time)
	paymentrecordFields := schema.PaymentRecord{}.Fields()
	_ = paymentrecordFields
	// paymentrecordDescExtractedAt is the schema descriptor for extracted_at field.
	paymentrecordDescExtractedAt := paymentrecordFields[16].Descriptor()
	// paymentrecord.DefaultExtractedAt holds the default value on creation for the extracted_at field.
	paymentrecord.DefaultExtractedAt = paymentrecordDescExtractedAt.Default.(func() time.Time)
	// paymentrecordDescUpdatedAt is the schema descriptor for updated_at field.
	paymentrecordDescUpdatedAt := paymentrecordFields[17].Descriptor()
	// paymentrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	paymentrecord.DefaultUpdatedAt = paymentrecordDescUpdatedAt.Default.(func() time.Time)
	// paymentrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	paymentrecord.UpdateDefaultUpdatedAt = paymentrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	pipelinekvFields := schema.PipelineKV{}.Fields()
	_ = pipelinekvFields
	// pipelinekvDescUpdatedAt is the schema descriptor for updated_at field.
	pipelinekvDescUpdatedAt := pipelinekvFields[2].Descriptor()
	// pipelinekv.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pipelinekv.DefaultUpdatedAt = pipelinekvDescUpdatedAt.Default.(func() time.Time)
	// pipelinekv.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pipelinekv.UpdateDefaultUpdatedAt = pipelinekvDescUpdatedAt.UpdateDefault.(func() time.Time)
	taxonomyassignmentFields := schema.TaxonomyAssignment{}.Fields()
	_ = taxonomyassignmentFields
	// taxonomyassignmentDescAssignedAt is the schema descriptor for assigned_at field.
	taxonomyassignmentDescAssignedAt := taxonomyassignmentFields[2].Descriptor()
	// taxonomyassignment.DefaultAssignedAt holds the default value on creation for the assigned_at field.
	taxonomyassignment.DefaultAssignedAt = taxonomyassignmentDescAssignedAt.Default.(func() time.Time)
	taxonomylabelFields := schema.TaxonomyLabel{}.Fields()
	_ = taxonomylabelFields
	// taxonomylabelDescIsActive is the schema descriptor for is_active field.
	taxonomylabelDescIsActive := taxonomylabelFields[6].Descriptor()
	// taxonomylabel.DefaultIsActive holds the default value on creation for the is_active field.
	taxonomylabel.DefaultIsActive = taxonomylabelDescIsActive.Default.(bool)
	// taxonomylabelDescCreatedAt is the schema descriptor for created_at field.
	taxonomylabelDescCreatedAt := taxonomylabelFields[10].Descriptor()
	// taxonomylabel.DefaultCreatedAt holds the default value on creation for the created_at field.
	taxonomylabel.DefaultCreatedAt = taxonomylabelDescCreatedAt.Default.(func() time.Time)
}
