// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ArchiveOutbox is the predicate function for archiveoutbox builders.
type ArchiveOutbox func(*sql.Selector)

// EmailCluster is the predicate function for emailcluster builders.
type EmailCluster func(*sql.Selector)

// EmailMessage is the predicate function for emailmessage builders.
type EmailMessage func(*sql.Selector)

// EmailPolicy is the predicate function for emailpolicy builders.
type EmailPolicy func(*sql.Selector)

// EventRecord is the predicate function for eventrecord builders.
type EventRecord func(*sql.Selector)

// LabelOutbox is the predicate function for labeloutbox builders.
type LabelOutbox func(*sql.Selector)

// PaymentRecord is the predicate function for paymentrecord builders.
type PaymentRecord func(*sql.Selector)

// PipelineKV is the predicate function for pipelinekv builders.
type PipelineKV func(*sql.Selector)

// TaxonomyAssignment is the predicate function for taxonomyassignment builders.
type TaxonomyAssignment func(*sql.Selector)

// TaxonomyLabel is the predicate function for taxonomylabel builders.
type TaxonomyLabel func(*sql.Selector)
