// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArchivePushOutboxColumns holds the columns for the "archive_push_outbox" table.
	ArchivePushOutboxColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "reason", Type: field.TypeString},
		{Name: "planned_for", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "message_id", Type: field.TypeString, Unique: true},
	}
	// ArchivePushOutboxTable holds the schema information for the "archive_push_outbox" table.
	ArchivePushOutboxTable = &schema.Table{
		Name:       "archive_push_outbox",
		Columns:    ArchivePushOutboxColumns,
		PrimaryKey: []*schema.Column{ArchivePushOutboxColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "archive_push_outbox_email_messages_archive_push",
				Columns:    []*schema.Column{ArchivePushOutboxColumns[6]},
				RefColumns: []*schema.Column{EmailMessagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "archiveoutbox_created_at",
				Unique:  false,
				Columns: []*schema.Column{ArchivePushOutboxColumns[3]},
			},
			{
				Name:    "archiveoutbox_processed_at",
				Unique:  false,
				Columns: []*schema.Column{ArchivePushOutboxColumns[4]},
			},
		},
	}
	// EmailClustersColumns holds the columns for the "email_clusters" table.
	EmailClustersColumns = []*schema.Column{
		{Name: "cluster_id", Type: field.TypeString, Unique: true},
		{Name: "seed_message_id", Type: field.TypeString, Unique: true},
		{Name: "from_domain", Type: field.TypeString, Nullable: true},
		{Name: "subject_normalized", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "similarity_threshold", Type: field.TypeFloat64},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "frequency_label", Type: field.TypeString, Nullable: true},
		{Name: "unread_label", Type: field.TypeString, Nullable: true},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "subcategory", Type: field.TypeString, Nullable: true},
		{Name: "label_version", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EmailClustersTable holds the schema information for the "email_clusters" table.
	EmailClustersTable = &schema.Table{
		Name:       "email_clusters",
		Columns:    EmailClustersColumns,
		PrimaryKey: []*schema.Column{EmailClustersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "emailcluster_from_domain",
				Unique:  false,
				Columns: []*schema.Column{EmailClustersColumns[2]},
			},
			{
				Name:    "emailcluster_category",
				Unique:  false,
				Columns: []*schema.Column{EmailClustersColumns[8]},
			},
		},
	}
	// EmailMessagesColumns holds the columns for the "email_messages" table.
	EmailMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "thread_id", Type: field.TypeString, Nullable: true},
		{Name: "subject", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "subject_normalized", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "from_address", Type: field.TypeString, Nullable: true},
		{Name: "from_domain", Type: field.TypeString, Nullable: true},
		{Name: "to_addresses", Type: field.TypeJSON, Nullable: true},
		{Name: "cc_addresses", Type: field.TypeJSON, Nullable: true},
		{Name: "bcc_addresses", Type: field.TypeJSON, Nullable: true},
		{Name: "is_unread", Type: field.TypeBool, Default: false},
		{Name: "internal_date", Type: field.TypeTime, Nullable: true},
		{Name: "label_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "subcategory", Type: field.TypeString, Nullable: true},
		{Name: "label_version", Type: field.TypeString, Nullable: true},
		{Name: "archived_at", Type: field.TypeTime, Nullable: true},
		{Name: "inbox_removed_at", Type: field.TypeTime, Nullable: true},
		{Name: "lifecycle_state", Type: field.TypeEnum, Enums: []string{"active", "trashed"}, Default: "active"},
		{Name: "trashed_at", Type: field.TypeTime, Nullable: true},
		{Name: "expiry_at", Type: field.TypeTime, Nullable: true},
		{Name: "trashed_by_policy_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "cluster_id", Type: field.TypeString, Nullable: true},
	}
	// EmailMessagesTable holds the schema information for the "email_messages" table.
	EmailMessagesTable = &schema.Table{
		Name:       "email_messages",
		Columns:    EmailMessagesColumns,
		PrimaryKey: []*schema.Column{EmailMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "email_messages_email_clusters_messages",
				Columns:    []*schema.Column{EmailMessagesColumns[22]},
				RefColumns: []*schema.Column{EmailClustersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "emailmessage_from_domain",
				Unique:  false,
				Columns: []*schema.Column{EmailMessagesColumns[5]},
			},
			{
				Name:    "emailmessage_internal_date",
				Unique:  false,
				Columns: []*schema.Column{EmailMessagesColumns[10]},
			},
			{
				Name:    "emailmessage_category",
				Unique:  false,
				Columns: []*schema.Column{EmailMessagesColumns[12]},
			},
			{
				Name:    "emailmessage_cluster_id",
				Unique:  false,
				Columns: []*schema.Column{EmailMessagesColumns[22]},
			},
			{
				Name:    "emailmessage_lifecycle_state",
				Unique:  false,
				Columns: []*schema.Column{EmailMessagesColumns[17]},
			},
			{
				Name:    "emailmessage_unlabelled_internal_date",
				Unique:  false,
				Columns: []*schema.Column{EmailMessagesColumns[10]},
				Annotation: &entsql.IndexAnnotation{
					Where: "category IS NULL",
				},
			},
		},
	}
	// EmailPoliciesColumns holds the columns for the "email_policies" table.
	EmailPoliciesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "trigger_type", Type: field.TypeEnum, Enums: []string{"scheduled", "on_ingest"}, Default: "scheduled"},
		{Name: "cadence", Type: field.TypeEnum, Enums: []string{"daily", "weekly", "monthly"}, Default: "weekly"},
		{Name: "definition", Type: field.TypeJSON},
		{Name: "last_applied_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// EmailPoliciesTable holds the schema information for the "email_policies" table.
	EmailPoliciesTable = &schema.Table{
		Name:       "email_policies",
		Columns:    EmailPoliciesColumns,
		PrimaryKey: []*schema.Column{EmailPoliciesColumns[0]},
	}
	// MessageEventMetadataColumns holds the columns for the "message_event_metadata" table.
	MessageEventMetadataColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "succeeded", "no_event", "failed"}, Default: "queued"},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "event_name", Type: field.TypeString, Nullable: true},
		{Name: "event_type", Type: field.TypeString, Nullable: true},
		{Name: "event_date", Type: field.TypeTime, Nullable: true},
		{Name: "start_time", Type: field.TypeString, Nullable: true},
		{Name: "end_time", Type: field.TypeString, Nullable: true},
		{Name: "timezone", Type: field.TypeString, Nullable: true},
		{Name: "end_time_inferred", Type: field.TypeBool, Default: false},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "prompt_version", Type: field.TypeString, Nullable: true},
		{Name: "raw_json", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "calendar_event_id", Type: field.TypeString, Nullable: true},
		{Name: "calendar_ical_uid", Type: field.TypeString, Nullable: true},
		{Name: "calendar_checked_at", Type: field.TypeTime, Nullable: true},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "hidden_at", Type: field.TypeTime, Nullable: true},
		{Name: "extracted_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MessageEventMetadataTable holds the schema information for the "message_event_metadata" table.
	MessageEventMetadataTable = &schema.Table{
		Name:       "message_event_metadata",
		Columns:    MessageEventMetadataColumns,
		PrimaryKey: []*schema.Column{MessageEventMetadataColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "eventrecord_status",
				Unique:  false,
				Columns: []*schema.Column{MessageEventMetadataColumns[1]},
			},
			{
				Name:    "eventrecord_event_date",
				Unique:  false,
				Columns: []*schema.Column{MessageEventMetadataColumns[5]},
			},
		},
	}
	// LabelPushOutboxColumns holds the columns for the "label_push_outbox" table.
	LabelPushOutboxColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "reason", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "message_id", Type: field.TypeString},
	}
	// LabelPushOutboxTable holds the schema information for the "label_push_outbox" table.
	LabelPushOutboxTable = &schema.Table{
		Name:       "label_push_outbox",
		Columns:    LabelPushOutboxColumns,
		PrimaryKey: []*schema.Column{LabelPushOutboxColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "label_push_outbox_email_messages_label_pushes",
				Columns:    []*schema.Column{LabelPushOutboxColumns[5]},
				RefColumns: []*schema.Column{EmailMessagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "labeloutbox_created_at",
				Unique:  false,
				Columns: []*schema.Column{LabelPushOutboxColumns[2]},
			},
			{
				Name:    "labeloutbox_processed_at",
				Unique:  false,
				Columns: []*schema.Column{LabelPushOutboxColumns[3]},
			},
		},
	}
	// MessagePaymentMetadataColumns holds the columns for the "message_payment_metadata" table.
	MessagePaymentMetadataColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "succeeded", "no_payment", "failed"}, Default: "queued"},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "item_name", Type: field.TypeString, Nullable: true},
		{Name: "vendor_name", Type: field.TypeString, Nullable: true},
		{Name: "item_category", Type: field.TypeString, Nullable: true},
		{Name: "cost_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "cost_currency", Type: field.TypeString, Nullable: true},
		{Name: "is_recurring", Type: field.TypeBool, Nullable: true},
		{Name: "frequency", Type: field.TypeString, Nullable: true},
		{Name: "payment_date", Type: field.TypeTime, Nullable: true},
		{Name: "payment_fingerprint", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "prompt_version", Type: field.TypeString, Nullable: true},
		{Name: "raw_json", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "extracted_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MessagePaymentMetadataTable holds the schema information for the "message_payment_metadata" table.
	MessagePaymentMetadataTable = &schema.Table{
		Name:       "message_payment_metadata",
		Columns:    MessagePaymentMetadataColumns,
		PrimaryKey: []*schema.Column{MessagePaymentMetadataColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "paymentrecord_status",
				Unique:  false,
				Columns: []*schema.Column{MessagePaymentMetadataColumns[1]},
			},
			{
				Name:    "paymentrecord_payment_fingerprint",
				Unique:  false,
				Columns: []*schema.Column{MessagePaymentMetadataColumns[11]},
			},
			{
				Name:    "paymentrecord_payment_date",
				Unique:  false,
				Columns: []*schema.Column{MessagePaymentMetadataColumns[10]},
			},
		},
	}
	// PipelineKvColumns holds the columns for the "pipeline_kv" table.
	PipelineKvColumns = []*schema.Column{
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PipelineKvTable holds the schema information for the "pipeline_kv" table.
	PipelineKvTable = &schema.Table{
		Name:       "pipeline_kv",
		Columns:    PipelineKvColumns,
		PrimaryKey: []*schema.Column{PipelineKvColumns[0]},
	}
	// TaxonomyAssignmentsColumns holds the columns for the "taxonomy_assignments" table.
	TaxonomyAssignmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "assigned_at", Type: field.TypeTime},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "label_id", Type: field.TypeInt},
	}
	// TaxonomyAssignmentsTable holds the schema information for the "taxonomy_assignments" table.
	TaxonomyAssignmentsTable = &schema.Table{
		Name:       "taxonomy_assignments",
		Columns:    TaxonomyAssignmentsColumns,
		PrimaryKey: []*schema.Column{TaxonomyAssignmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "taxonomy_assignments_email_messages_assignment",
				Columns:    []*schema.Column{TaxonomyAssignmentsColumns[3]},
				RefColumns: []*schema.Column{EmailMessagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "taxonomy_assignments_taxonomy_labels_assignments",
				Columns:    []*schema.Column{TaxonomyAssignmentsColumns[4]},
				RefColumns: []*schema.Column{TaxonomyLabelsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taxonomyassignment_message_id",
				Unique:  true,
				Columns: []*schema.Column{TaxonomyAssignmentsColumns[3]},
			},
			{
				Name:    "taxonomyassignment_label_id",
				Unique:  false,
				Columns: []*schema.Column{TaxonomyAssignmentsColumns[4]},
			},
		},
	}
	// TaxonomyLabelsColumns holds the columns for the "taxonomy_labels" table.
	TaxonomyLabelsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "level", Type: field.TypeInt},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "retention_days", Type: field.TypeInt, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "gmail_label_id", Type: field.TypeString, Nullable: true},
		{Name: "last_sync_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_sync_status", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "parent_id", Type: field.TypeInt, Nullable: true},
	}
	// TaxonomyLabelsTable holds the schema information for the "taxonomy_labels" table.
	TaxonomyLabelsTable = &schema.Table{
		Name:       "taxonomy_labels",
		Columns:    TaxonomyLabelsColumns,
		PrimaryKey: []*schema.Column{TaxonomyLabelsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "taxonomy_labels_taxonomy_labels_children",
				Columns:    []*schema.Column{TaxonomyLabelsColumns[11]},
				RefColumns: []*schema.Column{TaxonomyLabelsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taxonomylabel_level",
				Unique:  false,
				Columns: []*schema.Column{TaxonomyLabelsColumns[1]},
			},
			{
				Name:    "taxonomylabel_parent_id",
				Unique:  false,
				Columns: []*schema.Column{TaxonomyLabelsColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArchivePushOutboxTable,
		EmailClustersTable,
		EmailMessagesTable,
		EmailPoliciesTable,
		MessageEventMetadataTable,
		LabelPushOutboxTable,
		MessagePaymentMetadataTable,
		PipelineKvTable,
		TaxonomyAssignmentsTable,
		TaxonomyLabelsTable,
	}
)

func init() {
	ArchivePushOutboxTable.ForeignKeys[0].RefTable = EmailMessagesTable
	ArchivePushOutboxTable.Annotation = &entsql.Annotation{
		Table: "archive_push_outbox",
	}
	EmailMessagesTable.ForeignKeys[0].RefTable = EmailClustersTable
	MessageEventMetadataTable.Annotation = &entsql.Annotation{
		Table: "message_event_metadata",
	}
	LabelPushOutboxTable.ForeignKeys[0].RefTable = EmailMessagesTable
	LabelPushOutboxTable.Annotation = &entsql.Annotation{
		Table: "label_push_outbox",
	}
	MessagePaymentMetadataTable.Annotation = &entsql.Annotation{
		Table: "message_payment_metadata",
	}
	PipelineKvTable.Annotation = &entsql.Annotation{
		Table: "pipeline_kv",
	}
	TaxonomyAssignmentsTable.ForeignKeys[0].RefTable = EmailMessagesTable
	TaxonomyAssignmentsTable.ForeignKeys[1].RefTable = TaxonomyLabelsTable
	TaxonomyLabelsTable.ForeignKeys[0].RefTable = TaxonomyLabelsTable
}
