// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mailscope/mailscope/ent/archiveoutbox"
	"github.com/mailscope/mailscope/ent/emailcluster"
	"github.com/mailscope/mailscope/ent/emailmessage"
	"github.com/mailscope/mailscope/ent/emailpolicy"
	"github.com/mailscope/mailscope/ent/eventrecord"
	"github.com/mailscope/mailscope/ent/labeloutbox"
	"github.com/mailscope/mailscope/ent/paymentrecord"
	"github.com/mailscope/mailscope/ent/pipelinekv"
	"github.com/mailscope/mailscope/ent/predicate"
	"github.com/mailscope/mailscope/ent/taxonomyassignment"
	"github.com/mailscope/mailscope/ent/taxonomylabel"
	"github.com/shopspring/decimal"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeArchiveOutbox      = "ArchiveOutbox"
	TypeEmailCluster       = "EmailCluster"
	TypeEmailMessage       = "EmailMessage"
	TypeEmailPolicy        = "EmailPolicy"
	TypeEventRecord        = "EventRecord"
	TypeLabelOutbox        = "LabelOutbox"
	TypePaymentRecord      = "PaymentRecord"
	TypePipelineKV         = "PipelineKV"
	TypeTaxonomyAssignment = "TaxonomyAssignment"
	TypeTaxonomyLabel      = "TaxonomyLabel"
)

// ArchiveOutboxMutation represents an operation that mutates the ArchiveOutbox nodes in the graph.
type ArchiveOutboxMutation struct {
	config
	op             Op
	typ            string
	id             *int
	reason         *string
	planned_for    *time.Time
	created_at     *time.Time
	processed_at   *time.Time
	error          *string
	clearedFields  map[string]struct{}
	message        *string
	clearedmessage bool
	done           bool
	oldValue       func(context.Context) (*ArchiveOutbox, error)
	predicates     []predicate.ArchiveOutbox
}

var _ ent.Mutation = (*ArchiveOutboxMutation)(nil)

// archiveoutboxOption allows management of the mutation configuration using functional options.
type archiveoutboxOption func(*ArchiveOutboxMutation)

// newArchiveOutboxMutation creates new mutation for the ArchiveOutbox entity.
func newArchiveOutboxMutation(c config, op Op, opts ...archiveoutboxOption) *ArchiveOutboxMutation {
	m := &ArchiveOutboxMutation{
		config:        c,
		op:            op,
		typ:           TypeArchiveOutbox,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArchiveOutboxID sets the ID field of the mutation.
func withArchiveOutboxID(id int) archiveoutboxOption {
	return func(m *ArchiveOutboxMutation) {
		var (
			err   error
			once  sync.Once
			value *ArchiveOutbox
		)
		m.oldValue = func(ctx context.Context) (*ArchiveOutbox, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ArchiveOutbox.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArchiveOutbox sets the old ArchiveOutbox of the mutation.
func withArchiveOutbox(node *ArchiveOutbox) archiveoutboxOption {
	return func(m *ArchiveOutboxMutation) {
		m.oldValue = func(context.Context) (*ArchiveOutbox, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArchiveOutboxMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArchiveOutboxMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArchiveOutboxMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArchiveOutboxMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ArchiveOutbox.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMessageID sets the "message_id" field.
func (m *ArchiveOutboxMutation) SetMessageID(s string) {
	m.message = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *ArchiveOutboxMutation) MessageID() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the ArchiveOutbox entity.
// If the ArchiveOutbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchiveOutboxMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *ArchiveOutboxMutation) ResetMessageID() {
	m.message = nil
}

// SetReason sets the "reason" field.
func (m *ArchiveOutboxMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *ArchiveOutboxMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the ArchiveOutbox entity.
// If the ArchiveOutbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchiveOutboxMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *ArchiveOutboxMutation) ResetReason() {
	m.reason = nil
}

// SetPlannedFor sets the "planned_for" field.
func (m *ArchiveOutboxMutation) SetPlannedFor(t time.Time) {
	m.planned_for = &t
}

// PlannedFor returns the value of the "planned_for" field in the mutation.
func (m *ArchiveOutboxMutation) PlannedFor() (r time.Time, exists bool) {
	v := m.planned_for
	if v == nil {
		return
	}
	return *v, true
}

// OldPlannedFor returns the old "planned_for" field's value of the ArchiveOutbox entity.
// If the ArchiveOutbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchiveOutboxMutation) OldPlannedFor(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlannedFor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlannedFor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlannedFor: %w", err)
	}
	return oldValue.PlannedFor, nil
}

// ClearPlannedFor clears the value of the "planned_for" field.
func (m *ArchiveOutboxMutation) ClearPlannedFor() {
	m.planned_for = nil
	m.clearedFields[archiveoutbox.FieldPlannedFor] = struct{}{}
}

// PlannedForCleared returns if the "planned_for" field was cleared in this mutation.
func (m *ArchiveOutboxMutation) PlannedForCleared() bool {
	_, ok := m.clearedFields[archiveoutbox.FieldPlannedFor]
	return ok
}

// ResetPlannedFor resets all changes to the "planned_for" field.
func (m *ArchiveOutboxMutation) ResetPlannedFor() {
	m.planned_for = nil
	delete(m.clearedFields, archiveoutbox.FieldPlannedFor)
}

// SetCreatedAt sets the "created_at" field.
func (m *ArchiveOutboxMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ArchiveOutboxMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ArchiveOutbox entity.
// If the ArchiveOutbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchiveOutboxMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ArchiveOutboxMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *ArchiveOutboxMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *ArchiveOutboxMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the ArchiveOutbox entity.
// If the ArchiveOutbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchiveOutboxMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *ArchiveOutboxMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[archiveoutbox.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *ArchiveOutboxMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[archiveoutbox.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *ArchiveOutboxMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, archiveoutbox.FieldProcessedAt)
}

// SetError sets the "error" field.
func (m *ArchiveOutboxMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *ArchiveOutboxMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the ArchiveOutbox entity.
// If the ArchiveOutbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchiveOutboxMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *ArchiveOutboxMutation) ClearError() {
	m.error = nil
	m.clearedFields[archiveoutbox.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *ArchiveOutboxMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[archiveoutbox.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *ArchiveOutboxMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, archiveoutbox.FieldError)
}

// ClearMessage clears the "message" edge to the EmailMessage entity.
func (m *ArchiveOutboxMutation) ClearMessage() {
	m.clearedmessage = true
	m.clearedFields[archiveoutbox.FieldMessageID] = struct{}{}
}

// MessageCleared reports if the "message" edge to the EmailMessage entity was cleared.
func (m *ArchiveOutboxMutation) MessageCleared() bool {
	return m.clearedmessage
}

// MessageIDs returns the "message" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MessageID instead. It exists only for internal usage by the builders.
func (m *ArchiveOutboxMutation) MessageIDs() (ids []string) {
	if id := m.message; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMessage resets all changes to the "message" edge.
func (m *ArchiveOutboxMutation) ResetMessage() {
	m.message = nil
	m.clearedmessage = false
}

// Where appends a list predicates to the ArchiveOutboxMutation builder.
func (m *ArchiveOutboxMutation) Where(ps ...predicate.ArchiveOutbox) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArchiveOutboxMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArchiveOutboxMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ArchiveOutbox, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArchiveOutboxMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArchiveOutboxMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ArchiveOutbox).
func (m *ArchiveOutboxMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArchiveOutboxMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.message != nil {
		fields = append(fields, archiveoutbox.FieldMessageID)
	}
	if m.reason != nil {
		fields = append(fields, archiveoutbox.FieldReason)
	}
	if m.planned_for != nil {
		fields = append(fields, archiveoutbox.FieldPlannedFor)
	}
	if m.created_at != nil {
		fields = append(fields, archiveoutbox.FieldCreatedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, archiveoutbox.FieldProcessedAt)
	}
	if m.error != nil {
		fields = append(fields, archiveoutbox.FieldError)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArchiveOutboxMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case archiveoutbox.FieldMessageID:
		return m.MessageID()
	case archiveoutbox.FieldReason:
		return m.Reason()
	case archiveoutbox.FieldPlannedFor:
		return m.PlannedFor()
	case archiveoutbox.FieldCreatedAt:
		return m.CreatedAt()
	case archiveoutbox.FieldProcessedAt:
		return m.ProcessedAt()
	case archiveoutbox.FieldError:
		return m.Error()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArchiveOutboxMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case archiveoutbox.FieldMessageID:
		return m.OldMessageID(ctx)
	case archiveoutbox.FieldReason:
		return m.OldReason(ctx)
	case archiveoutbox.FieldPlannedFor:
		return m.OldPlannedFor(ctx)
	case archiveoutbox.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case archiveoutbox.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case archiveoutbox.FieldError:
		return m.OldError(ctx)
	}
	return nil, fmt.Errorf("unknown ArchiveOutbox field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArchiveOutboxMutation) SetField(name string, value ent.Value) error {
	switch name {
	case archiveoutbox.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case archiveoutbox.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case archiveoutbox.FieldPlannedFor:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlannedFor(v)
		return nil
	case archiveoutbox.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case archiveoutbox.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case archiveoutbox.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	}
	return fmt.Errorf("unknown ArchiveOutbox field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArchiveOutboxMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArchiveOutboxMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArchiveOutboxMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ArchiveOutbox numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArchiveOutboxMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(archiveoutbox.FieldPlannedFor) {
		fields = append(fields, archiveoutbox.FieldPlannedFor)
	}
	if m.FieldCleared(archiveoutbox.FieldProcessedAt) {
		fields = append(fields, archiveoutbox.FieldProcessedAt)
	}
	if m.FieldCleared(archiveoutbox.FieldError) {
		fields = append(fields, archiveoutbox.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArchiveOutboxMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArchiveOutboxMutation) ClearField(name string) error {
	switch name {
	case archiveoutbox.FieldPlannedFor:
		m.ClearPlannedFor()
		return nil
	case archiveoutbox.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	case archiveoutbox.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown ArchiveOutbox nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArchiveOutboxMutation) ResetField(name string) error {
	switch name {
	case archiveoutbox.FieldMessageID:
		m.ResetMessageID()
		return nil
	case archiveoutbox.FieldReason:
		m.ResetReason()
		return nil
	case archiveoutbox.FieldPlannedFor:
		m.ResetPlannedFor()
		return nil
	case archiveoutbox.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case archiveoutbox.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case archiveoutbox.FieldError:
		m.ResetError()
		return nil
	}
	return fmt.Errorf("unknown ArchiveOutbox field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArchiveOutboxMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.message != nil {
		edges = append(edges, archiveoutbox.EdgeMessage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArchiveOutboxMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case archiveoutbox.EdgeMessage:
		if id := m.message; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArchiveOutboxMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArchiveOutboxMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArchiveOutboxMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmessage {
		edges = append(edges, archiveoutbox.EdgeMessage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArchiveOutboxMutation) EdgeCleared(name string) bool {
	switch name {
	case archiveoutbox.EdgeMessage:
		return m.clearedmessage
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArchiveOutboxMutation) ClearEdge(name string) error {
	switch name {
	case archiveoutbox.EdgeMessage:
		m.ClearMessage()
		return nil
	}
	return fmt.Errorf("unknown ArchiveOutbox unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArchiveOutboxMutation) ResetEdge(name string) error {
	switch name {
	case archiveoutbox.EdgeMessage:
		m.ResetMessage()
		return nil
	}
	return fmt.Errorf("unknown ArchiveOutbox edge %s", name)
}

// EmailClusterMutation represents an operation that mutates the EmailCluster nodes in the graph.
type EmailClusterMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	seed_message_id         *string
	from_domain             *string
	subject_normalized      *string
	similarity_threshold    *float64
	addsimilarity_threshold *float64
	display_name            *string
	frequency_label         *string
	unread_label            *string
	category                *string
	subcategory             *string
	label_version           *string
	created_at              *time.Time
	clearedFields           map[string]struct{}
	messages                map[string]struct{}
	removedmessages         map[string]struct{}
	clearedmessages         bool
	done                    bool
	oldValue                func(context.Context) (*EmailCluster, error)
	predicates              []predicate.EmailCluster
}

var _ ent.Mutation = (*EmailClusterMutation)(nil)

// emailclusterOption allows management of the mutation configuration using functional options.
type emailclusterOption func(*EmailClusterMutation)

// newEmailClusterMutation creates new mutation for the EmailCluster entity.
func newEmailClusterMutation(c config, op Op, opts ...emailclusterOption) *EmailClusterMutation {
	m := &EmailClusterMutation{
		config:        c,
		op:            op,
		typ:           TypeEmailCluster,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEmailClusterID sets the ID field of the mutation.
func withEmailClusterID(id string) emailclusterOption {
	return func(m *EmailClusterMutation) {
		var (
			err   error
			once  sync.Once
			value *EmailCluster
		)
		m.oldValue = func(ctx context.Context) (*EmailCluster, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EmailCluster.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEmailCluster sets the old EmailCluster of the mutation.
func withEmailCluster(node *EmailCluster) emailclusterOption {
	return func(m *EmailClusterMutation) {
		m.oldValue = func(context.Context) (*EmailCluster, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EmailClusterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EmailClusterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EmailCluster entities.
func (m *EmailClusterMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EmailClusterMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EmailClusterMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EmailCluster.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSeedMessageID sets the "seed_message_id" field.
func (m *EmailClusterMutation) SetSeedMessageID(s string) {
	m.seed_message_id = &s
}

// SeedMessageID returns the value of the "seed_message_id" field in the mutation.
func (m *EmailClusterMutation) SeedMessageID() (r string, exists bool) {
	v := m.seed_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSeedMessageID returns the old "seed_message_id" field's value of the EmailCluster entity.
// If the EmailCluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailClusterMutation) OldSeedMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeedMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeedMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeedMessageID: %w", err)
	}
	return oldValue.SeedMessageID, nil
}

// ResetSeedMessageID resets all changes to the "seed_message_id" field.
func (m *EmailClusterMutation) ResetSeedMessageID() {
	m.seed_message_id = nil
}

// SetFromDomain sets the "from_domain" field.
func (m *EmailClusterMutation) SetFromDomain(s string) {
	m.from_domain = &s
}

// FromDomain returns the value of the "from_domain" field in the mutation.
func (m *EmailClusterMutation) FromDomain() (r string, exists bool) {
	v := m.from_domain
	if v == nil {
		return
	}
	return *v, true
}

// OldFromDomain returns the old "from_domain" field's value of the EmailCluster entity.
// If the EmailCluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailClusterMutation) OldFromDomain(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromDomain: %w", err)
	}
	return oldValue.FromDomain, nil
}

// ClearFromDomain clears the value of the "from_domain" field.
func (m *EmailClusterMutation) ClearFromDomain() {
	m.from_domain = nil
	m.clearedFields[emailcluster.FieldFromDomain] = struct{}{}
}

// FromDomainCleared returns if the "from_domain" field was cleared in this mutation.
func (m *EmailClusterMutation) FromDomainCleared() bool {
	_, ok := m.clearedFields[emailcluster.FieldFromDomain]
	return ok
}

// ResetFromDomain resets all changes to the "from_domain" field.
func (m *EmailClusterMutation) ResetFromDomain() {
	m.from_domain = nil
	delete(m.clearedFields, emailcluster.FieldFromDomain)
}

// SetSubjectNormalized sets the "subject_normalized" field.
func (m *EmailClusterMutation) SetSubjectNormalized(s string) {
	m.subject_normalized = &s
}

// SubjectNormalized returns the value of the "subject_normalized" field in the mutation.
func (m *EmailClusterMutation) SubjectNormalized() (r string, exists bool) {
	v := m.subject_normalized
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectNormalized returns the old "subject_normalized" field's value of the EmailCluster entity.
// If the EmailCluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailClusterMutation) OldSubjectNormalized(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectNormalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectNormalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectNormalized: %w", err)
	}
	return oldValue.SubjectNormalized, nil
}

// ClearSubjectNormalized clears the value of the "subject_normalized" field.
func (m *EmailClusterMutation) ClearSubjectNormalized() {
	m.subject_normalized = nil
	m.clearedFields[emailcluster.FieldSubjectNormalized] = struct{}{}
}

// SubjectNormalizedCleared returns if the "subject_normalized" field was cleared in this mutation.
func (m *EmailClusterMutation) SubjectNormalizedCleared() bool {
	_, ok := m.clearedFields[emailcluster.FieldSubjectNormalized]
	return ok
}

// ResetSubjectNormalized resets all changes to the "subject_normalized" field.
func (m *EmailClusterMutation) ResetSubjectNormalized() {
	m.subject_normalized = nil
	delete(m.clearedFields, emailcluster.FieldSubjectNormalized)
}

// SetSimilarityThreshold sets the "similarity_threshold" field.
func (m *EmailClusterMutation) SetSimilarityThreshold(f float64) {
	m.similarity_threshold = &f
	m.addsimilarity_threshold = nil
}

// SimilarityThreshold returns the value of the "similarity_threshold" field in the mutation.
func (m *EmailClusterMutation) SimilarityThreshold() (r float64, exists bool) {
	v := m.similarity_threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldSimilarityThreshold returns the old "similarity_threshold" field's value of the EmailCluster entity.
// If the EmailCluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailClusterMutation) OldSimilarityThreshold(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSimilarityThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSimilarityThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSimilarityThreshold: %w", err)
	}
	return oldValue.SimilarityThreshold, nil
}

// AddSimilarityThreshold adds f to the "similarity_threshold" field.
func (m *EmailClusterMutation) AddSimilarityThreshold(f float64) {
	if m.addsimilarity_threshold != nil {
		*m.addsimilarity_threshold += f
	} else {
		m.addsimilarity_threshold = &f
	}
}

// AddedSimilarityThreshold returns the value that was added to the "similarity_threshold" field in this mutation.
func (m *EmailClusterMutation) AddedSimilarityThreshold() (r float64, exists bool) {
	v := m.addsimilarity_threshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetSimilarityThreshold resets all changes to the "similarity_threshold" field.
func (m *EmailClusterMutation) ResetSimilarityThreshold() {
	m.similarity_threshold = nil
	m.addsimilarity_threshold = nil
}

// SetDisplayName sets the "display_name" field.
func (m *EmailClusterMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *EmailClusterMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the EmailCluster entity.
// If the EmailCluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailClusterMutation) OldDisplayName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *EmailClusterMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[emailcluster.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *EmailClusterMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[emailcluster.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *EmailClusterMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, emailcluster.FieldDisplayName)
}

// SetFrequencyLabel sets the "frequency_label" field.
func (m *EmailClusterMutation) SetFrequencyLabel(s string) {
	m.frequency_label = &s
}

// FrequencyLabel returns the value of the "frequency_label" field in the mutation.
func (m *EmailClusterMutation) FrequencyLabel() (r string, exists bool) {
	v := m.frequency_label
	if v == nil {
		return
	}
	return *v, true
}

// OldFrequencyLabel returns the old "frequency_label" field's value of the EmailCluster entity.
// If the EmailCluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailClusterMutation) OldFrequencyLabel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFrequencyLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFrequencyLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFrequencyLabel: %w", err)
	}
	return oldValue.FrequencyLabel, nil
}

// ClearFrequencyLabel clears the value of the "frequency_label" field.
func (m *EmailClusterMutation) ClearFrequencyLabel() {
	m.frequency_label = nil
	m.clearedFields[emailcluster.FieldFrequencyLabel] = struct{}{}
}

// FrequencyLabelCleared returns if the "frequency_label" field was cleared in this mutation.
func (m *EmailClusterMutation) FrequencyLabelCleared() bool {
	_, ok := m.clearedFields[emailcluster.FieldFrequencyLabel]
	return ok
}

// ResetFrequencyLabel resets all changes to the "frequency_label" field.
func (m *EmailClusterMutation) ResetFrequencyLabel() {
	m.frequency_label = nil
	delete(m.clearedFields, emailcluster.FieldFrequencyLabel)
}

// SetUnreadLabel sets the "unread_label" field.
func (m *EmailClusterMutation) SetUnreadLabel(s string) {
	m.unread_label = &s
}

// UnreadLabel returns the value of the "unread_label" field in the mutation.
func (m *EmailClusterMutation) UnreadLabel() (r string, exists bool) {
	v := m.unread_label
	if v == nil {
		return
	}
	return *v, true
}

// OldUnreadLabel returns the old "unread_label" field's value of the EmailCluster entity.
// If the EmailCluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailClusterMutation) OldUnreadLabel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnreadLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnreadLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnreadLabel: %w", err)
	}
	return oldValue.UnreadLabel, nil
}

// ClearUnreadLabel clears the value of the "unread_label" field.
func (m *EmailClusterMutation) ClearUnreadLabel() {
	m.unread_label = nil
	m.clearedFields[emailcluster.FieldUnreadLabel] = struct{}{}
}

// UnreadLabelCleared returns if the "unread_label" field was cleared in this mutation.
func (m *EmailClusterMutation) UnreadLabelCleared() bool {
	_, ok := m.clearedFields[emailcluster.FieldUnreadLabel]
	return ok
}

// ResetUnreadLabel resets all changes to the "unread_label" field.
func (m *EmailClusterMutation) ResetUnreadLabel() {
	m.unread_label = nil
	delete(m.clearedFields, emailcluster.FieldUnreadLabel)
}

// SetCategory sets the "category" field.
func (m *EmailClusterMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *EmailClusterMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the EmailCluster entity.
// If the EmailCluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailClusterMutation) OldCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *EmailClusterMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[emailcluster.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *EmailClusterMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[emailcluster.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *EmailClusterMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, emailcluster.FieldCategory)
}

// SetSubcategory sets the "subcategory" field.
func (m *EmailClusterMutation) SetSubcategory(s string) {
	m.subcategory = &s
}

// Subcategory returns the value of the "subcategory" field in the mutation.
func (m *EmailClusterMutation) Subcategory() (r string, exists bool) {
	v := m.subcategory
	if v == nil {
		return
	}
	return *v, true
}

// OldSubcategory returns the old "subcategory" field's value of the EmailCluster entity.
// If the EmailCluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailClusterMutation) OldSubcategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubcategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubcategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubcategory: %w", err)
	}
	return oldValue.Subcategory, nil
}

// ClearSubcategory clears the value of the "subcategory" field.
func (m *EmailClusterMutation) ClearSubcategory() {
	m.subcategory = nil
	m.clearedFields[emailcluster.FieldSubcategory] = struct{}{}
}

// SubcategoryCleared returns if the "subcategory" field was cleared in this mutation.
func (m *EmailClusterMutation) SubcategoryCleared() bool {
	_, ok := m.clearedFields[emailcluster.FieldSubcategory]
	return ok
}

// ResetSubcategory resets all changes to the "subcategory" field.
func (m *EmailClusterMutation) ResetSubcategory() {
	m.subcategory = nil
	delete(m.clearedFields, emailcluster.FieldSubcategory)
}

// SetLabelVersion sets the "label_version" field.
func (m *EmailClusterMutation) SetLabelVersion(s string) {
	m.label_version = &s
}

// LabelVersion returns the value of the "label_version" field in the mutation.
func (m *EmailClusterMutation) LabelVersion() (r string, exists bool) {
	v := m.label_version
	if v == nil {
		return
	}
	return *v, true
}

// OldLabelVersion returns the old "label_version" field's value of the EmailCluster entity.
// If the EmailCluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailClusterMutation) OldLabelVersion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabelVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabelVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabelVersion: %w", err)
	}
	return oldValue.LabelVersion, nil
}

// ClearLabelVersion clears the value of the "label_version" field.
func (m *EmailClusterMutation) ClearLabelVersion() {
	m.label_version = nil
	m.clearedFields[emailcluster.FieldLabelVersion] = struct{}{}
}

// LabelVersionCleared returns if the "label_version" field was cleared in this mutation.
func (m *EmailClusterMutation) LabelVersionCleared() bool {
	_, ok := m.clearedFields[emailcluster.FieldLabelVersion]
	return ok
}

// ResetLabelVersion resets all changes to the "label_version" field.
func (m *EmailClusterMutation) ResetLabelVersion() {
	m.label_version = nil
	delete(m.clearedFields, emailcluster.FieldLabelVersion)
}

// SetCreatedAt sets the "created_at" field.
func (m *EmailClusterMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EmailClusterMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EmailCluster entity.
// If the EmailCluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailClusterMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EmailClusterMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddMessageIDs adds the "messages" edge to the EmailMessage entity by ids.
func (m *EmailClusterMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the EmailMessage entity.
func (m *EmailClusterMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the EmailMessage entity was cleared.
func (m *EmailClusterMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the EmailMessage entity by IDs.
func (m *EmailClusterMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the EmailMessage entity.
func (m *EmailClusterMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *EmailClusterMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *EmailClusterMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// Where appends a list predicates to the EmailClusterMutation builder.
func (m *EmailClusterMutation) Where(ps ...predicate.EmailCluster) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EmailClusterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EmailClusterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EmailCluster, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EmailClusterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EmailClusterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EmailCluster).
func (m *EmailClusterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EmailClusterMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.seed_message_id != nil {
		fields = append(fields, emailcluster.FieldSeedMessageID)
	}
	if m.from_domain != nil {
		fields = append(fields, emailcluster.FieldFromDomain)
	}
	if m.subject_normalized != nil {
		fields = append(fields, emailcluster.FieldSubjectNormalized)
	}
	if m.similarity_threshold != nil {
		fields = append(fields, emailcluster.FieldSimilarityThreshold)
	}
	if m.display_name != nil {
		fields = append(fields, emailcluster.FieldDisplayName)
	}
	if m.frequency_label != nil {
		fields = append(fields, emailcluster.FieldFrequencyLabel)
	}
	if m.unread_label != nil {
		fields = append(fields, emailcluster.FieldUnreadLabel)
	}
	if m.category != nil {
		fields = append(fields, emailcluster.FieldCategory)
	}
	if m.subcategory != nil {
		fields = append(fields, emailcluster.FieldSubcategory)
	}
	if m.label_version != nil {
		fields = append(fields, emailcluster.FieldLabelVersion)
	}
	if m.created_at != nil {
		fields = append(fields, emailcluster.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EmailClusterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case emailcluster.FieldSeedMessageID:
		return m.SeedMessageID()
	case emailcluster.FieldFromDomain:
		return m.FromDomain()
	case emailcluster.FieldSubjectNormalized:
		return m.SubjectNormalized()
	case emailcluster.FieldSimilarityThreshold:
		return m.SimilarityThreshold()
	case emailcluster.FieldDisplayName:
		return m.DisplayName()
	case emailcluster.FieldFrequencyLabel:
		return m.FrequencyLabel()
	case emailcluster.FieldUnreadLabel:
		return m.UnreadLabel()
	case emailcluster.FieldCategory:
		return m.Category()
	case emailcluster.FieldSubcategory:
		return m.Subcategory()
	case emailcluster.FieldLabelVersion:
		return m.LabelVersion()
	case emailcluster.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EmailClusterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case emailcluster.FieldSeedMessageID:
		return m.OldSeedMessageID(ctx)
	case emailcluster.FieldFromDomain:
		return m.OldFromDomain(ctx)
	case emailcluster.FieldSubjectNormalized:
		return m.OldSubjectNormalized(ctx)
	case emailcluster.FieldSimilarityThreshold:
		return m.OldSimilarityThreshold(ctx)
	case emailcluster.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case emailcluster.FieldFrequencyLabel:
		return m.OldFrequencyLabel(ctx)
	case emailcluster.FieldUnreadLabel:
		return m.OldUnreadLabel(ctx)
	case emailcluster.FieldCategory:
		return m.OldCategory(ctx)
	case emailcluster.FieldSubcategory:
		return m.OldSubcategory(ctx)
	case emailcluster.FieldLabelVersion:
		return m.OldLabelVersion(ctx)
	case emailcluster.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EmailCluster field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmailClusterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case emailcluster.FieldSeedMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeedMessageID(v)
		return nil
	case emailcluster.FieldFromDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromDomain(v)
		return nil
	case emailcluster.FieldSubjectNormalized:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectNormalized(v)
		return nil
	case emailcluster.FieldSimilarityThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSimilarityThreshold(v)
		return nil
	case emailcluster.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case emailcluster.FieldFrequencyLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFrequencyLabel(v)
		return nil
	case emailcluster.FieldUnreadLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnreadLabel(v)
		return nil
	case emailcluster.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case emailcluster.FieldSubcategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubcategory(v)
		return nil
	case emailcluster.FieldLabelVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabelVersion(v)
		return nil
	case emailcluster.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EmailCluster field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EmailClusterMutation) AddedFields() []string {
	var fields []string
	if m.addsimilarity_threshold != nil {
		fields = append(fields, emailcluster.FieldSimilarityThreshold)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EmailClusterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case emailcluster.FieldSimilarityThreshold:
		return m.AddedSimilarityThreshold()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmailClusterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case emailcluster.FieldSimilarityThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSimilarityThreshold(v)
		return nil
	}
	return fmt.Errorf("unknown EmailCluster numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EmailClusterMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(emailcluster.FieldFromDomain) {
		fields = append(fields, emailcluster.FieldFromDomain)
	}
	if m.FieldCleared(emailcluster.FieldSubjectNormalized) {
		fields = append(fields, emailcluster.FieldSubjectNormalized)
	}
	if m.FieldCleared(emailcluster.FieldDisplayName) {
		fields = append(fields, emailcluster.FieldDisplayName)
	}
	if m.FieldCleared(emailcluster.FieldFrequencyLabel) {
		fields = append(fields, emailcluster.FieldFrequencyLabel)
	}
	if m.FieldCleared(emailcluster.FieldUnreadLabel) {
		fields = append(fields, emailcluster.FieldUnreadLabel)
	}
	if m.FieldCleared(emailcluster.FieldCategory) {
		fields = append(fields, emailcluster.FieldCategory)
	}
	if m.FieldCleared(emailcluster.FieldSubcategory) {
		fields = append(fields, emailcluster.FieldSubcategory)
	}
	if m.FieldCleared(emailcluster.FieldLabelVersion) {
		fields = append(fields, emailcluster.FieldLabelVersion)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EmailClusterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EmailClusterMutation) ClearField(name string) error {
	switch name {
	case emailcluster.FieldFromDomain:
		m.ClearFromDomain()
		return nil
	case emailcluster.FieldSubjectNormalized:
		m.ClearSubjectNormalized()
		return nil
	case emailcluster.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	case emailcluster.FieldFrequencyLabel:
		m.ClearFrequencyLabel()
		return nil
	case emailcluster.FieldUnreadLabel:
		m.ClearUnreadLabel()
		return nil
	case emailcluster.FieldCategory:
		m.ClearCategory()
		return nil
	case emailcluster.FieldSubcategory:
		m.ClearSubcategory()
		return nil
	case emailcluster.FieldLabelVersion:
		m.ClearLabelVersion()
		return nil
	}
	return fmt.Errorf("unknown EmailCluster nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EmailClusterMutation) ResetField(name string) error {
	switch name {
	case emailcluster.FieldSeedMessageID:
		m.ResetSeedMessageID()
		return nil
	case emailcluster.FieldFromDomain:
		m.ResetFromDomain()
		return nil
	case emailcluster.FieldSubjectNormalized:
		m.ResetSubjectNormalized()
		return nil
	case emailcluster.FieldSimilarityThreshold:
		m.ResetSimilarityThreshold()
		return nil
	case emailcluster.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case emailcluster.FieldFrequencyLabel:
		m.ResetFrequencyLabel()
		return nil
	case emailcluster.FieldUnreadLabel:
		m.ResetUnreadLabel()
		return nil
	case emailcluster.FieldCategory:
		m.ResetCategory()
		return nil
	case emailcluster.FieldSubcategory:
		m.ResetSubcategory()
		return nil
	case emailcluster.FieldLabelVersion:
		m.ResetLabelVersion()
		return nil
	case emailcluster.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EmailCluster field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EmailClusterMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.messages != nil {
		edges = append(edges, emailcluster.EdgeMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EmailClusterMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case emailcluster.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EmailClusterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedmessages != nil {
		edges = append(edges, emailcluster.EdgeMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EmailClusterMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case emailcluster.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EmailClusterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmessages {
		edges = append(edges, emailcluster.EdgeMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EmailClusterMutation) EdgeCleared(name string) bool {
	switch name {
	case emailcluster.EdgeMessages:
		return m.clearedmessages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EmailClusterMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown EmailCluster unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EmailClusterMutation) ResetEdge(name string) error {
	switch name {
	case emailcluster.EdgeMessages:
		m.ResetMessages()
		return nil
	}
	return fmt.Errorf("unknown EmailCluster edge %s", name)
}

// EmailMessageMutation represents an operation that mutates the EmailMessage nodes in the graph.
type EmailMessageMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	thread_id            *string
	subject              *string
	subject_normalized   *string
	from_address         *string
	from_domain          *string
	to_addresses         *[]string
	appendto_addresses   []string
	cc_addresses         *[]string
	appendcc_addresses   []string
	bcc_addresses        *[]string
	appendbcc_addresses  []string
	is_unread            *bool
	internal_date        *time.Time
	label_ids            *[]string
	appendlabel_ids      []string
	category             *string
	subcategory          *string
	label_version        *string
	archived_at          *time.Time
	inbox_removed_at     *time.Time
	lifecycle_state      *emailmessage.LifecycleState
	trashed_at           *time.Time
	expiry_at            *time.Time
	trashed_by_policy_id *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	cluster              *string
	clearedcluster       bool
	assignment           *int
	clearedassignment    bool
	label_pushes         map[int]struct{}
	removedlabel_pushes  map[int]struct{}
	clearedlabel_pushes  bool
	archive_push         *int
	clearedarchive_push  bool
	done                 bool
	oldValue             func(context.Context) (*EmailMessage, error)
	predicates           []predicate.EmailMessage
}

var _ ent.Mutation = (*EmailMessageMutation)(nil)

// emailmessageOption allows management of the mutation configuration using functional options.
type emailmessageOption func(*EmailMessageMutation)

// newEmailMessageMutation creates new mutation for the EmailMessage entity.
func newEmailMessageMutation(c config, op Op, opts ...emailmessageOption) *EmailMessageMutation {
	m := &EmailMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeEmailMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEmailMessageID sets the ID field of the mutation.
func withEmailMessageID(id string) emailmessageOption {
	return func(m *EmailMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *EmailMessage
		)
		m.oldValue = func(ctx context.Context) (*EmailMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EmailMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEmailMessage sets the old EmailMessage of the mutation.
func withEmailMessage(node *EmailMessage) emailmessageOption {
	return func(m *EmailMessageMutation) {
		m.oldValue = func(context.Context) (*EmailMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EmailMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EmailMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EmailMessage entities.
func (m *EmailMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EmailMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EmailMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EmailMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetThreadID sets the "thread_id" field.
func (m *EmailMessageMutation) SetThreadID(s string) {
	m.thread_id = &s
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *EmailMessageMutation) ThreadID() (r string, exists bool) {
	v := m.thread_id
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldThreadID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ClearThreadID clears the value of the "thread_id" field.
func (m *EmailMessageMutation) ClearThreadID() {
	m.thread_id = nil
	m.clearedFields[emailmessage.FieldThreadID] = struct{}{}
}

// ThreadIDCleared returns if the "thread_id" field was cleared in this mutation.
func (m *EmailMessageMutation) ThreadIDCleared() bool {
	_, ok := m.clearedFields[emailmessage.FieldThreadID]
	return ok
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *EmailMessageMutation) ResetThreadID() {
	m.thread_id = nil
	delete(m.clearedFields, emailmessage.FieldThreadID)
}

// SetSubject sets the "subject" field.
func (m *EmailMessageMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *EmailMessageMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldSubject(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *EmailMessageMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[emailmessage.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *EmailMessageMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[emailmessage.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *EmailMessageMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, emailmessage.FieldSubject)
}

// SetSubjectNormalized sets the "subject_normalized" field.
func (m *EmailMessageMutation) SetSubjectNormalized(s string) {
	m.subject_normalized = &s
}

// SubjectNormalized returns the value of the "subject_normalized" field in the mutation.
func (m *EmailMessageMutation) SubjectNormalized() (r string, exists bool) {
	v := m.subject_normalized
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectNormalized returns the old "subject_normalized" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldSubjectNormalized(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectNormalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectNormalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectNormalized: %w", err)
	}
	return oldValue.SubjectNormalized, nil
}

// ClearSubjectNormalized clears the value of the "subject_normalized" field.
func (m *EmailMessageMutation) ClearSubjectNormalized() {
	m.subject_normalized = nil
	m.clearedFields[emailmessage.FieldSubjectNormalized] = struct{}{}
}

// SubjectNormalizedCleared returns if the "subject_normalized" field was cleared in this mutation.
func (m *EmailMessageMutation) SubjectNormalizedCleared() bool {
	_, ok := m.clearedFields[emailmessage.FieldSubjectNormalized]
	return ok
}

// ResetSubjectNormalized resets all changes to the "subject_normalized" field.
func (m *EmailMessageMutation) ResetSubjectNormalized() {
	m.subject_normalized = nil
	delete(m.clearedFields, emailmessage.FieldSubjectNormalized)
}

// SetFromAddress sets the "from_address" field.
func (m *EmailMessageMutation) SetFromAddress(s string) {
	m.from_address = &s
}

// FromAddress returns the value of the "from_address" field in the mutation.
func (m *EmailMessageMutation) FromAddress() (r string, exists bool) {
	v := m.from_address
	if v == nil {
		return
	}
	return *v, true
}

// OldFromAddress returns the old "from_address" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldFromAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromAddress: %w", err)
	}
	return oldValue.FromAddress, nil
}

// ClearFromAddress clears the value of the "from_address" field.
func (m *EmailMessageMutation) ClearFromAddress() {
	m.from_address = nil
	m.clearedFields[emailmessage.FieldFromAddress] = struct{}{}
}

// FromAddressCleared returns if the "from_address" field was cleared in this mutation.
func (m *EmailMessageMutation) FromAddressCleared() bool {
	_, ok := m.clearedFields[emailmessage.FieldFromAddress]
	return ok
}

// ResetFromAddress resets all changes to the "from_address" field.
func (m *EmailMessageMutation) ResetFromAddress() {
	m.from_address = nil
	delete(m.clearedFields, emailmessage.FieldFromAddress)
}

// SetFromDomain sets the "from_domain" field.
func (m *EmailMessageMutation) SetFromDomain(s string) {
	m.from_domain = &s
}

// FromDomain returns the value of the "from_domain" field in the mutation.
func (m *EmailMessageMutation) FromDomain() (r string, exists bool) {
	v := m.from_domain
	if v == nil {
		return
	}
	return *v, true
}

// OldFromDomain returns the old "from_domain" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldFromDomain(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromDomain: %w", err)
	}
	return oldValue.FromDomain, nil
}

// ClearFromDomain clears the value of the "from_domain" field.
func (m *EmailMessageMutation) ClearFromDomain() {
	m.from_domain = nil
	m.clearedFields[emailmessage.FieldFromDomain] = struct{}{}
}

// FromDomainCleared returns if the "from_domain" field was cleared in this mutation.
func (m *EmailMessageMutation) FromDomainCleared() bool {
	_, ok := m.clearedFields[emailmessage.FieldFromDomain]
	return ok
}

// ResetFromDomain resets all changes to the "from_domain" field.
func (m *EmailMessageMutation) ResetFromDomain() {
	m.from_domain = nil
	delete(m.clearedFields, emailmessage.FieldFromDomain)
}

// SetToAddresses sets the "to_addresses" field.
func (m *EmailMessageMutation) SetToAddresses(s []string) {
	m.to_addresses = &s
	m.appendto_addresses = nil
}

// ToAddresses returns the value of the "to_addresses" field in the mutation.
func (m *EmailMessageMutation) ToAddresses() (r []string, exists bool) {
	v := m.to_addresses
	if v == nil {
		return
	}
	return *v, true
}

// OldToAddresses returns the old "to_addresses" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldToAddresses(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToAddresses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToAddresses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToAddresses: %w", err)
	}
	return oldValue.ToAddresses, nil
}

// AppendToAddresses adds s to the "to_addresses" field.
func (m *EmailMessageMutation) AppendToAddresses(s []string) {
	m.appendto_addresses = append(m.appendto_addresses, s...)
}

// AppendedToAddresses returns the list of values that were appended to the "to_addresses" field in this mutation.
func (m *EmailMessageMutation) AppendedToAddresses() ([]string, bool) {
	if len(m.appendto_addresses) == 0 {
		return nil, false
	}
	return m.appendto_addresses, true
}

// ClearToAddresses clears the value of the "to_addresses" field.
func (m *EmailMessageMutation) ClearToAddresses() {
	m.to_addresses = nil
	m.appendto_addresses = nil
	m.clearedFields[emailmessage.FieldToAddresses] = struct{}{}
}

// ToAddressesCleared returns if the "to_addresses" field was cleared in this mutation.
func (m *EmailMessageMutation) ToAddressesCleared() bool {
	_, ok := m.clearedFields[emailmessage.FieldToAddresses]
	return ok
}

// ResetToAddresses resets all changes to the "to_addresses" field.
func (m *EmailMessageMutation) ResetToAddresses() {
	m.to_addresses = nil
	m.appendto_addresses = nil
	delete(m.clearedFields, emailmessage.FieldToAddresses)
}

// SetCcAddresses sets the "cc_addresses" field.
func (m *EmailMessageMutation) SetCcAddresses(s []string) {
	m.cc_addresses = &s
	m.appendcc_addresses = nil
}

// CcAddresses returns the value of the "cc_addresses" field in the mutation.
func (m *EmailMessageMutation) CcAddresses() (r []string, exists bool) {
	v := m.cc_addresses
	if v == nil {
		return
	}
	return *v, true
}

// OldCcAddresses returns the old "cc_addresses" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldCcAddresses(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCcAddresses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCcAddresses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCcAddresses: %w", err)
	}
	return oldValue.CcAddresses, nil
}

// AppendCcAddresses adds s to the "cc_addresses" field.
func (m *EmailMessageMutation) AppendCcAddresses(s []string) {
	m.appendcc_addresses = append(m.appendcc_addresses, s...)
}

// AppendedCcAddresses returns the list of values that were appended to the "cc_addresses" field in this mutation.
func (m *EmailMessageMutation) AppendedCcAddresses() ([]string, bool) {
	if len(m.appendcc_addresses) == 0 {
		return nil, false
	}
	return m.appendcc_addresses, true
}

// ClearCcAddresses clears the value of the "cc_addresses" field.
func (m *EmailMessageMutation) ClearCcAddresses() {
	m.cc_addresses = nil
	m.appendcc_addresses = nil
	m.clearedFields[emailmessage.FieldCcAddresses] = struct{}{}
}

// CcAddressesCleared returns if the "cc_addresses" field was cleared in this mutation.
func (m *EmailMessageMutation) CcAddressesCleared() bool {
	_, ok := m.clearedFields[emailmessage.FieldCcAddresses]
	return ok
}

// ResetCcAddresses resets all changes to the "cc_addresses" field.
func (m *EmailMessageMutation) ResetCcAddresses() {
	m.cc_addresses = nil
	m.appendcc_addresses = nil
	delete(m.clearedFields, emailmessage.FieldCcAddresses)
}

// SetBccAddresses sets the "bcc_addresses" field.
func (m *EmailMessageMutation) SetBccAddresses(s []string) {
	m.bcc_addresses = &s
	m.appendbcc_addresses = nil
}

// BccAddresses returns the value of the "bcc_addresses" field in the mutation.
func (m *EmailMessageMutation) BccAddresses() (r []string, exists bool) {
	v := m.bcc_addresses
	if v == nil {
		return
	}
	return *v, true
}

// OldBccAddresses returns the old "bcc_addresses" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldBccAddresses(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBccAddresses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBccAddresses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBccAddresses: %w", err)
	}
	return oldValue.BccAddresses, nil
}

// AppendBccAddresses adds s to the "bcc_addresses" field.
func (m *EmailMessageMutation) AppendBccAddresses(s []string) {
	m.appendbcc_addresses = append(m.appendbcc_addresses, s...)
}

// AppendedBccAddresses returns the list of values that were appended to the "bcc_addresses" field in this mutation.
func (m *EmailMessageMutation) AppendedBccAddresses() ([]string, bool) {
	if len(m.appendbcc_addresses) == 0 {
		return nil, false
	}
	return m.appendbcc_addresses, true
}

// ClearBccAddresses clears the value of the "bcc_addresses" field.
func (m *EmailMessageMutation) ClearBccAddresses() {
	m.bcc_addresses = nil
	m.appendbcc_addresses = nil
	m.clearedFields[emailmessage.FieldBccAddresses] = struct{}{}
}

// BccAddressesCleared returns if the "bcc_addresses" field was cleared in this mutation.
func (m *EmailMessageMutation) BccAddressesCleared() bool {
	_, ok := m.clearedFields[emailmessage.FieldBccAddresses]
	return ok
}

// ResetBccAddresses resets all changes to the "bcc_addresses" field.
func (m *EmailMessageMutation) ResetBccAddresses() {
	m.bcc_addresses = nil
	m.appendbcc_addresses = nil
	delete(m.clearedFields, emailmessage.FieldBccAddresses)
}

// SetIsUnread sets the "is_unread" field.
func (m *EmailMessageMutation) SetIsUnread(b bool) {
	m.is_unread = &b
}

// IsUnread returns the value of the "is_unread" field in the mutation.
func (m *EmailMessageMutation) IsUnread() (r bool, exists bool) {
	v := m.is_unread
	if v == nil {
		return
	}
	return *v, true
}

// OldIsUnread returns the old "is_unread" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldIsUnread(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsUnread is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsUnread requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsUnread: %w", err)
	}
	return oldValue.IsUnread, nil
}

// ResetIsUnread resets all changes to the "is_unread" field.
func (m *EmailMessageMutation) ResetIsUnread() {
	m.is_unread = nil
}

// SetInternalDate sets the "internal_date" field.
func (m *EmailMessageMutation) SetInternalDate(t time.Time) {
	m.internal_date = &t
}

// InternalDate returns the value of the "internal_date" field in the mutation.
func (m *EmailMessageMutation) InternalDate() (r time.Time, exists bool) {
	v := m.internal_date
	if v == nil {
		return
	}
	return *v, true
}

// OldInternalDate returns the old "internal_date" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldInternalDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInternalDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInternalDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInternalDate: %w", err)
	}
	return oldValue.InternalDate, nil
}

// ClearInternalDate clears the value of the "internal_date" field.
func (m *EmailMessageMutation) ClearInternalDate() {
	m.internal_date = nil
	m.clearedFields[emailmessage.FieldInternalDate] = struct{}{}
}

// InternalDateCleared returns if the "internal_date" field was cleared in this mutation.
func (m *EmailMessageMutation) InternalDateCleared() bool {
	_, ok := m.clearedFields[emailmessage.FieldInternalDate]
	return ok
}

// ResetInternalDate resets all changes to the "internal_date" field.
func (m *EmailMessageMutation) ResetInternalDate() {
	m.internal_date = nil
	delete(m.clearedFields, emailmessage.FieldInternalDate)
}

// SetLabelIds sets the "label_ids" field.
func (m *EmailMessageMutation) SetLabelIds(s []string) {
	m.label_ids = &s
	m.appendlabel_ids = nil
}

// LabelIds returns the value of the "label_ids" field in the mutation.
func (m *EmailMessageMutation) LabelIds() (r []string, exists bool) {
	v := m.label_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldLabelIds returns the old "label_ids" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldLabelIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabelIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabelIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabelIds: %w", err)
	}
	return oldValue.LabelIds, nil
}

// AppendLabelIds adds s to the "label_ids" field.
func (m *EmailMessageMutation) AppendLabelIds(s []string) {
	m.appendlabel_ids = append(m.appendlabel_ids, s...)
}

// AppendedLabelIds returns the list of values that were appended to the "label_ids" field in this mutation.
func (m *EmailMessageMutation) AppendedLabelIds() ([]string, bool) {
	if len(m.appendlabel_ids) == 0 {
		return nil, false
	}
	return m.appendlabel_ids, true
}

// ClearLabelIds clears the value of the "label_ids" field.
func (m *EmailMessageMutation) ClearLabelIds() {
	m.label_ids = nil
	m.appendlabel_ids = nil
	m.clearedFields[emailmessage.FieldLabelIds] = struct{}{}
}

// LabelIdsCleared returns if the "label_ids" field was cleared in this mutation.
func (m *EmailMessageMutation) LabelIdsCleared() bool {
	_, ok := m.clearedFields[emailmessage.FieldLabelIds]
	return ok
}

// ResetLabelIds resets all changes to the "label_ids" field.
func (m *EmailMessageMutation) ResetLabelIds() {
	m.label_ids = nil
	m.appendlabel_ids = nil
	delete(m.clearedFields, emailmessage.FieldLabelIds)
}

// SetCategory sets the "category" field.
func (m *EmailMessageMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *EmailMessageMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *EmailMessageMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[emailmessage.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *EmailMessageMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[emailmessage.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *EmailMessageMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, emailmessage.FieldCategory)
}

// SetSubcategory sets the "subcategory" field.
func (m *EmailMessageMutation) SetSubcategory(s string) {
	m.subcategory = &s
}

// Subcategory returns the value of the "subcategory" field in the mutation.
func (m *EmailMessageMutation) Subcategory() (r string, exists bool) {
	v := m.subcategory
	if v == nil {
		return
	}
	return *v, true
}

// OldSubcategory returns the old "subcategory" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldSubcategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubcategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubcategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubcategory: %w", err)
	}
	return oldValue.Subcategory, nil
}

// ClearSubcategory clears the value of the "subcategory" field.
func (m *EmailMessageMutation) ClearSubcategory() {
	m.subcategory = nil
	m.clearedFields[emailmessage.FieldSubcategory] = struct{}{}
}

// SubcategoryCleared returns if the "subcategory" field was cleared in this mutation.
func (m *EmailMessageMutation) SubcategoryCleared() bool {
	_, ok := m.clearedFields[emailmessage.FieldSubcategory]
	return ok
}

// ResetSubcategory resets all changes to the "subcategory" field.
func (m *EmailMessageMutation) ResetSubcategory() {
	m.subcategory = nil
	delete(m.clearedFields, emailmessage.FieldSubcategory)
}

// SetLabelVersion sets the "label_version" field.
func (m *EmailMessageMutation) SetLabelVersion(s string) {
	m.label_version = &s
}

// LabelVersion returns the value of the "label_version" field in the mutation.
func (m *EmailMessageMutation) LabelVersion() (r string, exists bool) {
	v := m.label_version
	if v == nil {
		return
	}
	return *v, true
}

// OldLabelVersion returns the old "label_version" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldLabelVersion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabelVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabelVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabelVersion: %w", err)
	}
	return oldValue.LabelVersion, nil
}

// ClearLabelVersion clears the value of the "label_version" field.
func (m *EmailMessageMutation) ClearLabelVersion() {
	m.label_version = nil
	m.clearedFields[emailmessage.FieldLabelVersion] = struct{}{}
}

// LabelVersionCleared returns if the "label_version" field was cleared in this mutation.
func (m *EmailMessageMutation) LabelVersionCleared() bool {
	_, ok := m.clearedFields[emailmessage.FieldLabelVersion]
	return ok
}

// ResetLabelVersion resets all changes to the "label_version" field.
func (m *EmailMessageMutation) ResetLabelVersion() {
	m.label_version = nil
	delete(m.clearedFields, emailmessage.FieldLabelVersion)
}

// SetClusterID sets the "cluster_id" field.
func (m *EmailMessageMutation) SetClusterID(s string) {
	m.cluster = &s
}

// ClusterID returns the value of the "cluster_id" field in the mutation.
func (m *EmailMessageMutation) ClusterID() (r string, exists bool) {
	v := m.cluster
	if v == nil {
		return
	}
	return *v, true
}

// OldClusterID returns the old "cluster_id" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldClusterID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClusterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClusterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClusterID: %w", err)
	}
	return oldValue.ClusterID, nil
}

// ClearClusterID clears the value of the "cluster_id" field.
func (m *EmailMessageMutation) ClearClusterID() {
	m.cluster = nil
	m.clearedFields[emailmessage.FieldClusterID] = struct{}{}
}

// ClusterIDCleared returns if the "cluster_id" field was cleared in this mutation.
func (m *EmailMessageMutation) ClusterIDCleared() bool {
	_, ok := m.clearedFields[emailmessage.FieldClusterID]
	return ok
}

// ResetClusterID resets all changes to the "cluster_id" field.
func (m *EmailMessageMutation) ResetClusterID() {
	m.cluster = nil
	delete(m.clearedFields, emailmessage.FieldClusterID)
}

// SetArchivedAt sets the "archived_at" field.
func (m *EmailMessageMutation) SetArchivedAt(t time.Time) {
	m.archived_at = &t
}

// ArchivedAt returns the value of the "archived_at" field in the mutation.
func (m *EmailMessageMutation) ArchivedAt() (r time.Time, exists bool) {
	v := m.archived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedAt returns the old "archived_at" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldArchivedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedAt: %w", err)
	}
	return oldValue.ArchivedAt, nil
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (m *EmailMessageMutation) ClearArchivedAt() {
	m.archived_at = nil
	m.clearedFields[emailmessage.FieldArchivedAt] = struct{}{}
}

// ArchivedAtCleared returns if the "archived_at" field was cleared in this mutation.
func (m *EmailMessageMutation) ArchivedAtCleared() bool {
	_, ok := m.clearedFields[emailmessage.FieldArchivedAt]
	return ok
}

// ResetArchivedAt resets all changes to the "archived_at" field.
func (m *EmailMessageMutation) ResetArchivedAt() {
	m.archived_at = nil
	delete(m.clearedFields, emailmessage.FieldArchivedAt)
}

// SetInboxRemovedAt sets the "inbox_removed_at" field.
func (m *EmailMessageMutation) SetInboxRemovedAt(t time.Time) {
	m.inbox_removed_at = &t
}

// InboxRemovedAt returns the value of the "inbox_removed_at" field in the mutation.
func (m *EmailMessageMutation) InboxRemovedAt() (r time.Time, exists bool) {
	v := m.inbox_removed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldInboxRemovedAt returns the old "inbox_removed_at" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldInboxRemovedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInboxRemovedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInboxRemovedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInboxRemovedAt: %w", err)
	}
	return oldValue.InboxRemovedAt, nil
}

// ClearInboxRemovedAt clears the value of the "inbox_removed_at" field.
func (m *EmailMessageMutation) ClearInboxRemovedAt() {
	m.inbox_removed_at = nil
	m.clearedFields[emailmessage.FieldInboxRemovedAt] = struct{}{}
}

// InboxRemovedAtCleared returns if the "inbox_removed_at" field was cleared in this mutation.
func (m *EmailMessageMutation) InboxRemovedAtCleared() bool {
	_, ok := m.clearedFields[emailmessage.FieldInboxRemovedAt]
	return ok
}

// ResetInboxRemovedAt resets all changes to the "inbox_removed_at" field.
func (m *EmailMessageMutation) ResetInboxRemovedAt() {
	m.inbox_removed_at = nil
	delete(m.clearedFields, emailmessage.FieldInboxRemovedAt)
}

// SetLifecycleState sets the "lifecycle_state" field.
func (m *EmailMessageMutation) SetLifecycleState(es emailmessage.LifecycleState) {
	m.lifecycle_state = &es
}

// LifecycleState returns the value of the "lifecycle_state" field in the mutation.
func (m *EmailMessageMutation) LifecycleState() (r emailmessage.LifecycleState, exists bool) {
	v := m.lifecycle_state
	if v == nil {
		return
	}
	return *v, true
}

// OldLifecycleState returns the old "lifecycle_state" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldLifecycleState(ctx context.Context) (v emailmessage.LifecycleState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLifecycleState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLifecycleState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLifecycleState: %w", err)
	}
	return oldValue.LifecycleState, nil
}

// ResetLifecycleState resets all changes to the "lifecycle_state" field.
func (m *EmailMessageMutation) ResetLifecycleState() {
	m.lifecycle_state = nil
}

// SetTrashedAt sets the "trashed_at" field.
func (m *EmailMessageMutation) SetTrashedAt(t time.Time) {
	m.trashed_at = &t
}

// TrashedAt returns the value of the "trashed_at" field in the mutation.
func (m *EmailMessageMutation) TrashedAt() (r time.Time, exists bool) {
	v := m.trashed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTrashedAt returns the old "trashed_at" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldTrashedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrashedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrashedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrashedAt: %w", err)
	}
	return oldValue.TrashedAt, nil
}

// ClearTrashedAt clears the value of the "trashed_at" field.
func (m *EmailMessageMutation) ClearTrashedAt() {
	m.trashed_at = nil
	m.clearedFields[emailmessage.FieldTrashedAt] = struct{}{}
}

// TrashedAtCleared returns if the "trashed_at" field was cleared in this mutation.
func (m *EmailMessageMutation) TrashedAtCleared() bool {
	_, ok := m.clearedFields[emailmessage.FieldTrashedAt]
	return ok
}

// ResetTrashedAt resets all changes to the "trashed_at" field.
func (m *EmailMessageMutation) ResetTrashedAt() {
	m.trashed_at = nil
	delete(m.clearedFields, emailmessage.FieldTrashedAt)
}

// SetExpiryAt sets the "expiry_at" field.
func (m *EmailMessageMutation) SetExpiryAt(t time.Time) {
	m.expiry_at = &t
}

// ExpiryAt returns the value of the "expiry_at" field in the mutation.
func (m *EmailMessageMutation) ExpiryAt() (r time.Time, exists bool) {
	v := m.expiry_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiryAt returns the old "expiry_at" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldExpiryAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiryAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiryAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiryAt: %w", err)
	}
	return oldValue.ExpiryAt, nil
}

// ClearExpiryAt clears the value of the "expiry_at" field.
func (m *EmailMessageMutation) ClearExpiryAt() {
	m.expiry_at = nil
	m.clearedFields[emailmessage.FieldExpiryAt] = struct{}{}
}

// ExpiryAtCleared returns if the "expiry_at" field was cleared in this mutation.
func (m *EmailMessageMutation) ExpiryAtCleared() bool {
	_, ok := m.clearedFields[emailmessage.FieldExpiryAt]
	return ok
}

// ResetExpiryAt resets all changes to the "expiry_at" field.
func (m *EmailMessageMutation) ResetExpiryAt() {
	m.expiry_at = nil
	delete(m.clearedFields, emailmessage.FieldExpiryAt)
}

// SetTrashedByPolicyID sets the "trashed_by_policy_id" field.
func (m *EmailMessageMutation) SetTrashedByPolicyID(s string) {
	m.trashed_by_policy_id = &s
}

// TrashedByPolicyID returns the value of the "trashed_by_policy_id" field in the mutation.
func (m *EmailMessageMutation) TrashedByPolicyID() (r string, exists bool) {
	v := m.trashed_by_policy_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTrashedByPolicyID returns the old "trashed_by_policy_id" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldTrashedByPolicyID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrashedByPolicyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrashedByPolicyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrashedByPolicyID: %w", err)
	}
	return oldValue.TrashedByPolicyID, nil
}

// ClearTrashedByPolicyID clears the value of the "trashed_by_policy_id" field.
func (m *EmailMessageMutation) ClearTrashedByPolicyID() {
	m.trashed_by_policy_id = nil
	m.clearedFields[emailmessage.FieldTrashedByPolicyID] = struct{}{}
}

// TrashedByPolicyIDCleared returns if the "trashed_by_policy_id" field was cleared in this mutation.
func (m *EmailMessageMutation) TrashedByPolicyIDCleared() bool {
	_, ok := m.clearedFields[emailmessage.FieldTrashedByPolicyID]
	return ok
}

// ResetTrashedByPolicyID resets all changes to the "trashed_by_policy_id" field.
func (m *EmailMessageMutation) ResetTrashedByPolicyID() {
	m.trashed_by_policy_id = nil
	delete(m.clearedFields, emailmessage.FieldTrashedByPolicyID)
}

// SetCreatedAt sets the "created_at" field.
func (m *EmailMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EmailMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EmailMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCluster clears the "cluster" edge to the EmailCluster entity.
func (m *EmailMessageMutation) ClearCluster() {
	m.clearedcluster = true
	m.clearedFields[emailmessage.FieldClusterID] = struct{}{}
}

// ClusterCleared reports if the "cluster" edge to the EmailCluster entity was cleared.
func (m *EmailMessageMutation) ClusterCleared() bool {
	return m.ClusterIDCleared() || m.clearedcluster
}

// ClusterIDs returns the "cluster" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClusterID instead. It exists only for internal usage by the builders.
func (m *EmailMessageMutation) ClusterIDs() (ids []string) {
	if id := m.cluster; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCluster resets all changes to the "cluster" edge.
func (m *EmailMessageMutation) ResetCluster() {
	m.cluster = nil
	m.clearedcluster = false
}

// SetAssignmentID sets the "assignment" edge to the TaxonomyAssignment entity by id.
func (m *EmailMessageMutation) SetAssignmentID(id int) {
	m.assignment = &id
}

// ClearAssignment clears the "assignment" edge to the TaxonomyAssignment entity.
func (m *EmailMessageMutation) ClearAssignment() {
	m.clearedassignment = true
}

// AssignmentCleared reports if the "assignment" edge to the TaxonomyAssignment entity was cleared.
func (m *EmailMessageMutation) AssignmentCleared() bool {
	return m.clearedassignment
}

// AssignmentID returns the "assignment" edge ID in the mutation.
func (m *EmailMessageMutation) AssignmentID() (id int, exists bool) {
	if m.assignment != nil {
		return *m.assignment, true
	}
	return
}

// AssignmentIDs returns the "assignment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssignmentID instead. It exists only for internal usage by the builders.
func (m *EmailMessageMutation) AssignmentIDs() (ids []int) {
	if id := m.assignment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAssignment resets all changes to the "assignment" edge.
func (m *EmailMessageMutation) ResetAssignment() {
	m.assignment = nil
	m.clearedassignment = false
}

// AddLabelPushIDs adds the "label_pushes" edge to the LabelOutbox entity by ids.
func (m *EmailMessageMutation) AddLabelPushIDs(ids ...int) {
	if m.label_pushes == nil {
		m.label_pushes = make(map[int]struct{})
	}
	for i := range ids {
		m.label_pushes[ids[i]] = struct{}{}
	}
}

// ClearLabelPushes clears the "label_pushes" edge to the LabelOutbox entity.
func (m *EmailMessageMutation) ClearLabelPushes() {
	m.clearedlabel_pushes = true
}

// LabelPushesCleared reports if the "label_pushes" edge to the LabelOutbox entity was cleared.
func (m *EmailMessageMutation) LabelPushesCleared() bool {
	return m.clearedlabel_pushes
}

// RemoveLabelPushIDs removes the "label_pushes" edge to the LabelOutbox entity by IDs.
func (m *EmailMessageMutation) RemoveLabelPushIDs(ids ...int) {
	if m.removedlabel_pushes == nil {
		m.removedlabel_pushes = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.label_pushes, ids[i])
		m.removedlabel_pushes[ids[i]] = struct{}{}
	}
}

// RemovedLabelPushes returns the removed IDs of the "label_pushes" edge to the LabelOutbox entity.
func (m *EmailMessageMutation) RemovedLabelPushesIDs() (ids []int) {
	for id := range m.removedlabel_pushes {
		ids = append(ids, id)
	}
	return
}

// LabelPushesIDs returns the "label_pushes" edge IDs in the mutation.
func (m *EmailMessageMutation) LabelPushesIDs() (ids []int) {
	for id := range m.label_pushes {
		ids = append(ids, id)
	}
	return
}

// ResetLabelPushes resets all changes to the "label_pushes" edge.
func (m *EmailMessageMutation) ResetLabelPushes() {
	m.label_pushes = nil
	m.clearedlabel_pushes = false
	m.removedlabel_pushes = nil
}

// SetArchivePushID sets the "archive_push" edge to the ArchiveOutbox entity by id.
func (m *EmailMessageMutation) SetArchivePushID(id int) {
	m.archive_push = &id
}

// ClearArchivePush clears the "archive_push" edge to the ArchiveOutbox entity.
func (m *EmailMessageMutation) ClearArchivePush() {
	m.clearedarchive_push = true
}

// ArchivePushCleared reports if the "archive_push" edge to the ArchiveOutbox entity was cleared.
func (m *EmailMessageMutation) ArchivePushCleared() bool {
	return m.clearedarchive_push
}

// ArchivePushID returns the "archive_push" edge ID in the mutation.
func (m *EmailMessageMutation) ArchivePushID() (id int, exists bool) {
	if m.archive_push != nil {
		return *m.archive_push, true
	}
	return
}

// ArchivePushIDs returns the "archive_push" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ArchivePushID instead. It exists only for internal usage by the builders.
func (m *EmailMessageMutation) ArchivePushIDs() (ids []int) {
	if id := m.archive_push; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetArchivePush resets all changes to the "archive_push" edge.
func (m *EmailMessageMutation) ResetArchivePush() {
	m.archive_push = nil
	m.clearedarchive_push = false
}

// Where appends a list predicates to the EmailMessageMutation builder.
func (m *EmailMessageMutation) Where(ps ...predicate.EmailMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EmailMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EmailMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EmailMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EmailMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EmailMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EmailMessage).
func (m *EmailMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EmailMessageMutation) Fields() []string {
	fields := make([]string, 0, 22)
	if m.thread_id != nil {
		fields = append(fields, emailmessage.FieldThreadID)
	}
	if m.subject != nil {
		fields = append(fields, emailmessage.FieldSubject)
	}
	if m.subject_normalized != nil {
		fields = append(fields, emailmessage.FieldSubjectNormalized)
	}
	if m.from_address != nil {
		fields = append(fields, emailmessage.FieldFromAddress)
	}
	if m.from_domain != nil {
		fields = append(fields, emailmessage.FieldFromDomain)
	}
	if m.to_addresses != nil {
		fields = append(fields, emailmessage.FieldToAddresses)
	}
	if m.cc_addresses != nil {
		fields = append(fields, emailmessage.FieldCcAddresses)
	}
	if m.bcc_addresses != nil {
		fields = append(fields, emailmessage.FieldBccAddresses)
	}
	if m.is_unread != nil {
		fields = append(fields, emailmessage.FieldIsUnread)
	}
	if m.internal_date != nil {
		fields = append(fields, emailmessage.FieldInternalDate)
	}
	if m.label_ids != nil {
		fields = append(fields, emailmessage.FieldLabelIds)
	}
	if m.category != nil {
		fields = append(fields, emailmessage.FieldCategory)
	}
	if m.subcategory != nil {
		fields = append(fields, emailmessage.FieldSubcategory)
	}
	if m.label_version != nil {
		fields = append(fields, emailmessage.FieldLabelVersion)
	}
	if m.cluster != nil {
		fields = append(fields, emailmessage.FieldClusterID)
	}
	if m.archived_at != nil {
		fields = append(fields, emailmessage.FieldArchivedAt)
	}
	if m.inbox_removed_at != nil {
		fields = append(fields, emailmessage.FieldInboxRemovedAt)
	}
	if m.lifecycle_state != nil {
		fields = append(fields, emailmessage.FieldLifecycleState)
	}
	if m.trashed_at != nil {
		fields = append(fields, emailmessage.FieldTrashedAt)
	}
	if m.expiry_at != nil {
		fields = append(fields, emailmessage.FieldExpiryAt)
	}
	if m.trashed_by_policy_id != nil {
		fields = append(fields, emailmessage.FieldTrashedByPolicyID)
	}
	if m.created_at != nil {
		fields = append(fields, emailmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EmailMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case emailmessage.FieldThreadID:
		return m.ThreadID()
	case emailmessage.FieldSubject:
		return m.Subject()
	case emailmessage.FieldSubjectNormalized:
		return m.SubjectNormalized()
	case emailmessage.FieldFromAddress:
		return m.FromAddress()
	case emailmessage.FieldFromDomain:
		return m.FromDomain()
	case emailmessage.FieldToAddresses:
		return m.ToAddresses()
	case emailmessage.FieldCcAddresses:
		return m.CcAddresses()
	case emailmessage.FieldBccAddresses:
		return m.BccAddresses()
	case emailmessage.FieldIsUnread:
		return m.IsUnread()
	case emailmessage.FieldInternalDate:
		return m.InternalDate()
	case emailmessage.FieldLabelIds:
		return m.LabelIds()
	case emailmessage.FieldCategory:
		return m.Category()
	case emailmessage.FieldSubcategory:
		return m.Subcategory()
	case emailmessage.FieldLabelVersion:
		return m.LabelVersion()
	case emailmessage.FieldClusterID:
		return m.ClusterID()
	case emailmessage.FieldArchivedAt:
		return m.ArchivedAt()
	case emailmessage.FieldInboxRemovedAt:
		return m.InboxRemovedAt()
	case emailmessage.FieldLifecycleState:
		return m.LifecycleState()
	case emailmessage.FieldTrashedAt:
		return m.TrashedAt()
	case emailmessage.FieldExpiryAt:
		return m.ExpiryAt()
	case emailmessage.FieldTrashedByPolicyID:
		return m.TrashedByPolicyID()
	case emailmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EmailMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case emailmessage.FieldThreadID:
		return m.OldThreadID(ctx)
	case emailmessage.FieldSubject:
		return m.OldSubject(ctx)
	case emailmessage.FieldSubjectNormalized:
		return m.OldSubjectNormalized(ctx)
	case emailmessage.FieldFromAddress:
		return m.OldFromAddress(ctx)
	case emailmessage.FieldFromDomain:
		return m.OldFromDomain(ctx)
	case emailmessage.FieldToAddresses:
		return m.OldToAddresses(ctx)
	case emailmessage.FieldCcAddresses:
		return m.OldCcAddresses(ctx)
	case emailmessage.FieldBccAddresses:
		return m.OldBccAddresses(ctx)
	case emailmessage.FieldIsUnread:
		return m.OldIsUnread(ctx)
	case emailmessage.FieldInternalDate:
		return m.OldInternalDate(ctx)
	case emailmessage.FieldLabelIds:
		return m.OldLabelIds(ctx)
	case emailmessage.FieldCategory:
		return m.OldCategory(ctx)
	case emailmessage.FieldSubcategory:
		return m.OldSubcategory(ctx)
	case emailmessage.FieldLabelVersion:
		return m.OldLabelVersion(ctx)
	case emailmessage.FieldClusterID:
		return m.OldClusterID(ctx)
	case emailmessage.FieldArchivedAt:
		return m.OldArchivedAt(ctx)
	case emailmessage.FieldInboxRemovedAt:
		return m.OldInboxRemovedAt(ctx)
	case emailmessage.FieldLifecycleState:
		return m.OldLifecycleState(ctx)
	case emailmessage.FieldTrashedAt:
		return m.OldTrashedAt(ctx)
	case emailmessage.FieldExpiryAt:
		return m.OldExpiryAt(ctx)
	case emailmessage.FieldTrashedByPolicyID:
		return m.OldTrashedByPolicyID(ctx)
	case emailmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EmailMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmailMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case emailmessage.FieldThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case emailmessage.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case emailmessage.FieldSubjectNormalized:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectNormalized(v)
		return nil
	case emailmessage.FieldFromAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromAddress(v)
		return nil
	case emailmessage.FieldFromDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromDomain(v)
		return nil
	case emailmessage.FieldToAddresses:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToAddresses(v)
		return nil
	case emailmessage.FieldCcAddresses:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCcAddresses(v)
		return nil
	case emailmessage.FieldBccAddresses:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBccAddresses(v)
		return nil
	case emailmessage.FieldIsUnread:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsUnread(v)
		return nil
	case emailmessage.FieldInternalDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInternalDate(v)
		return nil
	case emailmessage.FieldLabelIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabelIds(v)
		return nil
	case emailmessage.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case emailmessage.FieldSubcategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubcategory(v)
		return nil
	case emailmessage.FieldLabelVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabelVersion(v)
		return nil
	case emailmessage.FieldClusterID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClusterID(v)
		return nil
	case emailmessage.FieldArchivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedAt(v)
		return nil
	case emailmessage.FieldInboxRemovedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInboxRemovedAt(v)
		return nil
	case emailmessage.FieldLifecycleState:
		v, ok := value.(emailmessage.LifecycleState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLifecycleState(v)
		return nil
	case emailmessage.FieldTrashedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrashedAt(v)
		return nil
	case emailmessage.FieldExpiryAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiryAt(v)
		return nil
	case emailmessage.FieldTrashedByPolicyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrashedByPolicyID(v)
		return nil
	case emailmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EmailMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EmailMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EmailMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmailMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EmailMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EmailMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(emailmessage.FieldThreadID) {
		fields = append(fields, emailmessage.FieldThreadID)
	}
	if m.FieldCleared(emailmessage.FieldSubject) {
		fields = append(fields, emailmessage.FieldSubject)
	}
	if m.FieldCleared(emailmessage.FieldSubjectNormalized) {
		fields = append(fields, emailmessage.FieldSubjectNormalized)
	}
	if m.FieldCleared(emailmessage.FieldFromAddress) {
		fields = append(fields, emailmessage.FieldFromAddress)
	}
	if m.FieldCleared(emailmessage.FieldFromDomain) {
		fields = append(fields, emailmessage.FieldFromDomain)
	}
	if m.FieldCleared(emailmessage.FieldToAddresses) {
		fields = append(fields, emailmessage.FieldToAddresses)
	}
	if m.FieldCleared(emailmessage.FieldCcAddresses) {
		fields = append(fields, emailmessage.FieldCcAddresses)
	}
	if m.FieldCleared(emailmessage.FieldBccAddresses) {
		fields = append(fields, emailmessage.FieldBccAddresses)
	}
	if m.FieldCleared(emailmessage.FieldInternalDate) {
		fields = append(fields, emailmessage.FieldInternalDate)
	}
	if m.FieldCleared(emailmessage.FieldLabelIds) {
		fields = append(fields, emailmessage.FieldLabelIds)
	}
	if m.FieldCleared(emailmessage.FieldCategory) {
		fields = append(fields, emailmessage.FieldCategory)
	}
	if m.FieldCleared(emailmessage.FieldSubcategory) {
		fields = append(fields, emailmessage.FieldSubcategory)
	}
	if m.FieldCleared(emailmessage.FieldLabelVersion) {
		fields = append(fields, emailmessage.FieldLabelVersion)
	}
	if m.FieldCleared(emailmessage.FieldClusterID) {
		fields = append(fields, emailmessage.FieldClusterID)
	}
	if m.FieldCleared(emailmessage.FieldArchivedAt) {
		fields = append(fields, emailmessage.FieldArchivedAt)
	}
	if m.FieldCleared(emailmessage.FieldInboxRemovedAt) {
		fields = append(fields, emailmessage.FieldInboxRemovedAt)
	}
	if m.FieldCleared(emailmessage.FieldTrashedAt) {
		fields = append(fields, emailmessage.FieldTrashedAt)
	}
	if m.FieldCleared(emailmessage.FieldExpiryAt) {
		fields = append(fields, emailmessage.FieldExpiryAt)
	}
	if m.FieldCleared(emailmessage.FieldTrashedByPolicyID) {
		fields = append(fields, emailmessage.FieldTrashedByPolicyID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EmailMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EmailMessageMutation) ClearField(name string) error {
	switch name {
	case emailmessage.FieldThreadID:
		m.ClearThreadID()
		return nil
	case emailmessage.FieldSubject:
		m.ClearSubject()
		return nil
	case emailmessage.FieldSubjectNormalized:
		m.ClearSubjectNormalized()
		return nil
	case emailmessage.FieldFromAddress:
		m.ClearFromAddress()
		return nil
	case emailmessage.FieldFromDomain:
		m.ClearFromDomain()
		return nil
	case emailmessage.FieldToAddresses:
		m.ClearToAddresses()
		return nil
	case emailmessage.FieldCcAddresses:
		m.ClearCcAddresses()
		return nil
	case emailmessage.FieldBccAddresses:
		m.ClearBccAddresses()
		return nil
	case emailmessage.FieldInternalDate:
		m.ClearInternalDate()
		return nil
	case emailmessage.FieldLabelIds:
		m.ClearLabelIds()
		return nil
	case emailmessage.FieldCategory:
		m.ClearCategory()
		return nil
	case emailmessage.FieldSubcategory:
		m.ClearSubcategory()
		return nil
	case emailmessage.FieldLabelVersion:
		m.ClearLabelVersion()
		return nil
	case emailmessage.FieldClusterID:
		m.ClearClusterID()
		return nil
	case emailmessage.FieldArchivedAt:
		m.ClearArchivedAt()
		return nil
	case emailmessage.FieldInboxRemovedAt:
		m.ClearInboxRemovedAt()
		return nil
	case emailmessage.FieldTrashedAt:
		m.ClearTrashedAt()
		return nil
	case emailmessage.FieldExpiryAt:
		m.ClearExpiryAt()
		return nil
	case emailmessage.FieldTrashedByPolicyID:
		m.ClearTrashedByPolicyID()
		return nil
	}
	return fmt.Errorf("unknown EmailMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EmailMessageMutation) ResetField(name string) error {
	switch name {
	case emailmessage.FieldThreadID:
		m.ResetThreadID()
		return nil
	case emailmessage.FieldSubject:
		m.ResetSubject()
		return nil
	case emailmessage.FieldSubjectNormalized:
		m.ResetSubjectNormalized()
		return nil
	case emailmessage.FieldFromAddress:
		m.ResetFromAddress()
		return nil
	case emailmessage.FieldFromDomain:
		m.ResetFromDomain()
		return nil
	case emailmessage.FieldToAddresses:
		m.ResetToAddresses()
		return nil
	case emailmessage.FieldCcAddresses:
		m.ResetCcAddresses()
		return nil
	case emailmessage.FieldBccAddresses:
		m.ResetBccAddresses()
		return nil
	case emailmessage.FieldIsUnread:
		m.ResetIsUnread()
		return nil
	case emailmessage.FieldInternalDate:
		m.ResetInternalDate()
		return nil
	case emailmessage.FieldLabelIds:
		m.ResetLabelIds()
		return nil
	case emailmessage.FieldCategory:
		m.ResetCategory()
		return nil
	case emailmessage.FieldSubcategory:
		m.ResetSubcategory()
		return nil
	case emailmessage.FieldLabelVersion:
		m.ResetLabelVersion()
		return nil
	case emailmessage.FieldClusterID:
		m.ResetClusterID()
		return nil
	case emailmessage.FieldArchivedAt:
		m.ResetArchivedAt()
		return nil
	case emailmessage.FieldInboxRemovedAt:
		m.ResetInboxRemovedAt()
		return nil
	case emailmessage.FieldLifecycleState:
		m.ResetLifecycleState()
		return nil
	case emailmessage.FieldTrashedAt:
		m.ResetTrashedAt()
		return nil
	case emailmessage.FieldExpiryAt:
		m.ResetExpiryAt()
		return nil
	case emailmessage.FieldTrashedByPolicyID:
		m.ResetTrashedByPolicyID()
		return nil
	case emailmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EmailMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EmailMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.cluster != nil {
		edges = append(edges, emailmessage.EdgeCluster)
	}
	if m.assignment != nil {
		edges = append(edges, emailmessage.EdgeAssignment)
	}
	if m.label_pushes != nil {
		edges = append(edges, emailmessage.EdgeLabelPushes)
	}
	if m.archive_push != nil {
		edges = append(edges, emailmessage.EdgeArchivePush)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EmailMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case emailmessage.EdgeCluster:
		if id := m.cluster; id != nil {
			return []ent.Value{*id}
		}
	case emailmessage.EdgeAssignment:
		if id := m.assignment; id != nil {
			return []ent.Value{*id}
		}
	case emailmessage.EdgeLabelPushes:
		ids := make([]ent.Value, 0, len(m.label_pushes))
		for id := range m.label_pushes {
			ids = append(ids, id)
		}
		return ids
	case emailmessage.EdgeArchivePush:
		if id := m.archive_push; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EmailMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedlabel_pushes != nil {
		edges = append(edges, emailmessage.EdgeLabelPushes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EmailMessageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case emailmessage.EdgeLabelPushes:
		ids := make([]ent.Value, 0, len(m.removedlabel_pushes))
		for id := range m.removedlabel_pushes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EmailMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedcluster {
		edges = append(edges, emailmessage.EdgeCluster)
	}
	if m.clearedassignment {
		edges = append(edges, emailmessage.EdgeAssignment)
	}
	if m.clearedlabel_pushes {
		edges = append(edges, emailmessage.EdgeLabelPushes)
	}
	if m.clearedarchive_push {
		edges = append(edges, emailmessage.EdgeArchivePush)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EmailMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case emailmessage.EdgeCluster:
		return m.clearedcluster
	case emailmessage.EdgeAssignment:
		return m.clearedassignment
	case emailmessage.EdgeLabelPushes:
		return m.clearedlabel_pushes
	case emailmessage.EdgeArchivePush:
		return m.clearedarchive_push
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EmailMessageMutation) ClearEdge(name string) error {
	switch name {
	case emailmessage.EdgeCluster:
		m.ClearCluster()
		return nil
	case emailmessage.EdgeAssignment:
		m.ClearAssignment()
		return nil
	case emailmessage.EdgeArchivePush:
		m.ClearArchivePush()
		return nil
	}
	return fmt.Errorf("unknown EmailMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EmailMessageMutation) ResetEdge(name string) error {
	switch name {
	case emailmessage.EdgeCluster:
		m.ResetCluster()
		return nil
	case emailmessage.EdgeAssignment:
		m.ResetAssignment()
		return nil
	case emailmessage.EdgeLabelPushes:
		m.ResetLabelPushes()
		return nil
	case emailmessage.EdgeArchivePush:
		m.ResetArchivePush()
		return nil
	}
	return fmt.Errorf("unknown EmailMessage edge %s", name)
}

// EmailPolicyMutation represents an operation that mutates the EmailPolicy nodes in the graph.
type EmailPolicyMutation struct {
	config
	op               Op
	typ              string
	id               *string
	name             *string
	enabled          *bool
	trigger_type     *emailpolicy.TriggerType
	cadence          *emailpolicy.Cadence
	definition       *json.RawMessage
	appenddefinition json.RawMessage
	last_applied_at  *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*EmailPolicy, error)
	predicates       []predicate.EmailPolicy
}

var _ ent.Mutation = (*EmailPolicyMutation)(nil)

// emailpolicyOption allows management of the mutation configuration using functional options.
type emailpolicyOption func(*EmailPolicyMutation)

// newEmailPolicyMutation creates new mutation for the EmailPolicy entity.
func newEmailPolicyMutation(c config, op Op, opts ...emailpolicyOption) *EmailPolicyMutation {
	m := &EmailPolicyMutation{
		config:        c,
		op:            op,
		typ:           TypeEmailPolicy,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEmailPolicyID sets the ID field of the mutation.
func withEmailPolicyID(id string) emailpolicyOption {
	return func(m *EmailPolicyMutation) {
		var (
			err   error
			once  sync.Once
			value *EmailPolicy
		)
		m.oldValue = func(ctx context.Context) (*EmailPolicy, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EmailPolicy.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEmailPolicy sets the old EmailPolicy of the mutation.
func withEmailPolicy(node *EmailPolicy) emailpolicyOption {
	return func(m *EmailPolicyMutation) {
		m.oldValue = func(context.Context) (*EmailPolicy, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EmailPolicyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EmailPolicyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EmailPolicy entities.
func (m *EmailPolicyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EmailPolicyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EmailPolicyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EmailPolicy.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *EmailPolicyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *EmailPolicyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the EmailPolicy entity.
// If the EmailPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailPolicyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *EmailPolicyMutation) ResetName() {
	m.name = nil
}

// SetEnabled sets the "enabled" field.
func (m *EmailPolicyMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *EmailPolicyMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the EmailPolicy entity.
// If the EmailPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailPolicyMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *EmailPolicyMutation) ResetEnabled() {
	m.enabled = nil
}

// SetTriggerType sets the "trigger_type" field.
func (m *EmailPolicyMutation) SetTriggerType(et emailpolicy.TriggerType) {
	m.trigger_type = &et
}

// TriggerType returns the value of the "trigger_type" field in the mutation.
func (m *EmailPolicyMutation) TriggerType() (r emailpolicy.TriggerType, exists bool) {
	v := m.trigger_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerType returns the old "trigger_type" field's value of the EmailPolicy entity.
// If the EmailPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailPolicyMutation) OldTriggerType(ctx context.Context) (v emailpolicy.TriggerType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerType: %w", err)
	}
	return oldValue.TriggerType, nil
}

// ResetTriggerType resets all changes to the "trigger_type" field.
func (m *EmailPolicyMutation) ResetTriggerType() {
	m.trigger_type = nil
}

// SetCadence sets the "cadence" field.
func (m *EmailPolicyMutation) SetCadence(e emailpolicy.Cadence) {
	m.cadence = &e
}

// Cadence returns the value of the "cadence" field in the mutation.
func (m *EmailPolicyMutation) Cadence() (r emailpolicy.Cadence, exists bool) {
	v := m.cadence
	if v == nil {
		return
	}
	return *v, true
}

// OldCadence returns the old "cadence" field's value of the EmailPolicy entity.
// If the EmailPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailPolicyMutation) OldCadence(ctx context.Context) (v emailpolicy.Cadence, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCadence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCadence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCadence: %w", err)
	}
	return oldValue.Cadence, nil
}

// ResetCadence resets all changes to the "cadence" field.
func (m *EmailPolicyMutation) ResetCadence() {
	m.cadence = nil
}

// SetDefinition sets the "definition" field.
func (m *EmailPolicyMutation) SetDefinition(jm json.RawMessage) {
	m.definition = &jm
	m.appenddefinition = nil
}

// Definition returns the value of the "definition" field in the mutation.
func (m *EmailPolicyMutation) Definition() (r json.RawMessage, exists bool) {
	v := m.definition
	if v == nil {
		return
	}
	return *v, true
}

// OldDefinition returns the old "definition" field's value of the EmailPolicy entity.
// If the EmailPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailPolicyMutation) OldDefinition(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefinition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefinition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefinition: %w", err)
	}
	return oldValue.Definition, nil
}

// AppendDefinition adds jm to the "definition" field.
func (m *EmailPolicyMutation) AppendDefinition(jm json.RawMessage) {
	m.appenddefinition = append(m.appenddefinition, jm...)
}

// AppendedDefinition returns the list of values that were appended to the "definition" field in this mutation.
func (m *EmailPolicyMutation) AppendedDefinition() (json.RawMessage, bool) {
	if len(m.appenddefinition) == 0 {
		return nil, false
	}
	return m.appenddefinition, true
}

// ResetDefinition resets all changes to the "definition" field.
func (m *EmailPolicyMutation) ResetDefinition() {
	m.definition = nil
	m.appenddefinition = nil
}

// SetLastAppliedAt sets the "last_applied_at" field.
func (m *EmailPolicyMutation) SetLastAppliedAt(t time.Time) {
	m.last_applied_at = &t
}

// LastAppliedAt returns the value of the "last_applied_at" field in the mutation.
func (m *EmailPolicyMutation) LastAppliedAt() (r time.Time, exists bool) {
	v := m.last_applied_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAppliedAt returns the old "last_applied_at" field's value of the EmailPolicy entity.
// If the EmailPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailPolicyMutation) OldLastAppliedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAppliedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAppliedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAppliedAt: %w", err)
	}
	return oldValue.LastAppliedAt, nil
}

// ClearLastAppliedAt clears the value of the "last_applied_at" field.
func (m *EmailPolicyMutation) ClearLastAppliedAt() {
	m.last_applied_at = nil
	m.clearedFields[emailpolicy.FieldLastAppliedAt] = struct{}{}
}

// LastAppliedAtCleared returns if the "last_applied_at" field was cleared in this mutation.
func (m *EmailPolicyMutation) LastAppliedAtCleared() bool {
	_, ok := m.clearedFields[emailpolicy.FieldLastAppliedAt]
	return ok
}

// ResetLastAppliedAt resets all changes to the "last_applied_at" field.
func (m *EmailPolicyMutation) ResetLastAppliedAt() {
	m.last_applied_at = nil
	delete(m.clearedFields, emailpolicy.FieldLastAppliedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *EmailPolicyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EmailPolicyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EmailPolicy entity.
// If the EmailPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailPolicyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EmailPolicyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EmailPolicyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EmailPolicyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EmailPolicy entity.
// If the EmailPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailPolicyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EmailPolicyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the EmailPolicyMutation builder.
func (m *EmailPolicyMutation) Where(ps ...predicate.EmailPolicy) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EmailPolicyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EmailPolicyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EmailPolicy, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EmailPolicyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EmailPolicyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EmailPolicy).
func (m *EmailPolicyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EmailPolicyMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, emailpolicy.FieldName)
	}
	if m.enabled != nil {
		fields = append(fields, emailpolicy.FieldEnabled)
	}
	if m.trigger_type != nil {
		fields = append(fields, emailpolicy.FieldTriggerType)
	}
	if m.cadence != nil {
		fields = append(fields, emailpolicy.FieldCadence)
	}
	if m.definition != nil {
		fields = append(fields, emailpolicy.FieldDefinition)
	}
	if m.last_applied_at != nil {
		fields = append(fields, emailpolicy.FieldLastAppliedAt)
	}
	if m.created_at != nil {
		fields = append(fields, emailpolicy.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, emailpolicy.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EmailPolicyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case emailpolicy.FieldName:
		return m.Name()
	case emailpolicy.FieldEnabled:
		return m.Enabled()
	case emailpolicy.FieldTriggerType:
		return m.TriggerType()
	case emailpolicy.FieldCadence:
		return m.Cadence()
	case emailpolicy.FieldDefinition:
		return m.Definition()
	case emailpolicy.FieldLastAppliedAt:
		return m.LastAppliedAt()
	case emailpolicy.FieldCreatedAt:
		return m.CreatedAt()
	case emailpolicy.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EmailPolicyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case emailpolicy.FieldName:
		return m.OldName(ctx)
	case emailpolicy.FieldEnabled:
		return m.OldEnabled(ctx)
	case emailpolicy.FieldTriggerType:
		return m.OldTriggerType(ctx)
	case emailpolicy.FieldCadence:
		return m.OldCadence(ctx)
	case emailpolicy.FieldDefinition:
		return m.OldDefinition(ctx)
	case emailpolicy.FieldLastAppliedAt:
		return m.OldLastAppliedAt(ctx)
	case emailpolicy.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case emailpolicy.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EmailPolicy field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmailPolicyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case emailpolicy.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case emailpolicy.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case emailpolicy.FieldTriggerType:
		v, ok := value.(emailpolicy.TriggerType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerType(v)
		return nil
	case emailpolicy.FieldCadence:
		v, ok := value.(emailpolicy.Cadence)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCadence(v)
		return nil
	case emailpolicy.FieldDefinition:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefinition(v)
		return nil
	case emailpolicy.FieldLastAppliedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAppliedAt(v)
		return nil
	case emailpolicy.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case emailpolicy.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EmailPolicy field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EmailPolicyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EmailPolicyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmailPolicyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EmailPolicy numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EmailPolicyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(emailpolicy.FieldLastAppliedAt) {
		fields = append(fields, emailpolicy.FieldLastAppliedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EmailPolicyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EmailPolicyMutation) ClearField(name string) error {
	switch name {
	case emailpolicy.FieldLastAppliedAt:
		m.ClearLastAppliedAt()
		return nil
	}
	return fmt.Errorf("unknown EmailPolicy nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EmailPolicyMutation) ResetField(name string) error {
	switch name {
	case emailpolicy.FieldName:
		m.ResetName()
		return nil
	case emailpolicy.FieldEnabled:
		m.ResetEnabled()
		return nil
	case emailpolicy.FieldTriggerType:
		m.ResetTriggerType()
		return nil
	case emailpolicy.FieldCadence:
		m.ResetCadence()
		return nil
	case emailpolicy.FieldDefinition:
		m.ResetDefinition()
		return nil
	case emailpolicy.FieldLastAppliedAt:
		m.ResetLastAppliedAt()
		return nil
	case emailpolicy.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case emailpolicy.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown EmailPolicy field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EmailPolicyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EmailPolicyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EmailPolicyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EmailPolicyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EmailPolicyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EmailPolicyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EmailPolicyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EmailPolicy unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EmailPolicyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EmailPolicy edge %s", name)
}

// EventRecordMutation represents an operation that mutates the EventRecord nodes in the graph.
type EventRecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	status              *eventrecord.Status
	error               *string
	event_name          *string
	event_type          *string
	event_date          *time.Time
	start_time          *string
	end_time            *string
	timezone            *string
	end_time_inferred   *bool
	confidence          *float64
	addconfidence       *float64
	model               *string
	prompt_version      *string
	raw_json            *string
	calendar_event_id   *string
	calendar_ical_uid   *string
	calendar_checked_at *time.Time
	published_at        *time.Time
	hidden_at           *time.Time
	extracted_at        *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*EventRecord, error)
	predicates          []predicate.EventRecord
}

var _ ent.Mutation = (*EventRecordMutation)(nil)

// eventrecordOption allows management of the mutation configuration using functional options.
type eventrecordOption func(*EventRecordMutation)

// newEventRecordMutation creates new mutation for the EventRecord entity.
func newEventRecordMutation(c config, op Op, opts ...eventrecordOption) *EventRecordMutation {
	m := &EventRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeEventRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventRecordID sets the ID field of the mutation.
func withEventRecordID(id string) eventrecordOption {
	return func(m *EventRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *EventRecord
		)
		m.oldValue = func(ctx context.Context) (*EventRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EventRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEventRecord sets the old EventRecord of the mutation.
func withEventRecord(node *EventRecord) eventrecordOption {
	return func(m *EventRecordMutation) {
		m.oldValue = func(context.Context) (*EventRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EventRecord entities.
func (m *EventRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EventRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStatus sets the "status" field.
func (m *EventRecordMutation) SetStatus(e eventrecord.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EventRecordMutation) Status() (r eventrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldStatus(ctx context.Context) (v eventrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EventRecordMutation) ResetStatus() {
	m.status = nil
}

// SetError sets the "error" field.
func (m *EventRecordMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *EventRecordMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *EventRecordMutation) ClearError() {
	m.error = nil
	m.clearedFields[eventrecord.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *EventRecordMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[eventrecord.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *EventRecordMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, eventrecord.FieldError)
}

// SetEventName sets the "event_name" field.
func (m *EventRecordMutation) SetEventName(s string) {
	m.event_name = &s
}

// EventName returns the value of the "event_name" field in the mutation.
func (m *EventRecordMutation) EventName() (r string, exists bool) {
	v := m.event_name
	if v == nil {
		return
	}
	return *v, true
}

// OldEventName returns the old "event_name" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldEventName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventName: %w", err)
	}
	return oldValue.EventName, nil
}

// ClearEventName clears the value of the "event_name" field.
func (m *EventRecordMutation) ClearEventName() {
	m.event_name = nil
	m.clearedFields[eventrecord.FieldEventName] = struct{}{}
}

// EventNameCleared returns if the "event_name" field was cleared in this mutation.
func (m *EventRecordMutation) EventNameCleared() bool {
	_, ok := m.clearedFields[eventrecord.FieldEventName]
	return ok
}

// ResetEventName resets all changes to the "event_name" field.
func (m *EventRecordMutation) ResetEventName() {
	m.event_name = nil
	delete(m.clearedFields, eventrecord.FieldEventName)
}

// SetEventType sets the "event_type" field.
func (m *EventRecordMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventRecordMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldEventType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ClearEventType clears the value of the "event_type" field.
func (m *EventRecordMutation) ClearEventType() {
	m.event_type = nil
	m.clearedFields[eventrecord.FieldEventType] = struct{}{}
}

// EventTypeCleared returns if the "event_type" field was cleared in this mutation.
func (m *EventRecordMutation) EventTypeCleared() bool {
	_, ok := m.clearedFields[eventrecord.FieldEventType]
	return ok
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventRecordMutation) ResetEventType() {
	m.event_type = nil
	delete(m.clearedFields, eventrecord.FieldEventType)
}

// SetEventDate sets the "event_date" field.
func (m *EventRecordMutation) SetEventDate(t time.Time) {
	m.event_date = &t
}

// EventDate returns the value of the "event_date" field in the mutation.
func (m *EventRecordMutation) EventDate() (r time.Time, exists bool) {
	v := m.event_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEventDate returns the old "event_date" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldEventDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventDate: %w", err)
	}
	return oldValue.EventDate, nil
}

// ClearEventDate clears the value of the "event_date" field.
func (m *EventRecordMutation) ClearEventDate() {
	m.event_date = nil
	m.clearedFields[eventrecord.FieldEventDate] = struct{}{}
}

// EventDateCleared returns if the "event_date" field was cleared in this mutation.
func (m *EventRecordMutation) EventDateCleared() bool {
	_, ok := m.clearedFields[eventrecord.FieldEventDate]
	return ok
}

// ResetEventDate resets all changes to the "event_date" field.
func (m *EventRecordMutation) ResetEventDate() {
	m.event_date = nil
	delete(m.clearedFields, eventrecord.FieldEventDate)
}

// SetStartTime sets the "start_time" field.
func (m *EventRecordMutation) SetStartTime(s string) {
	m.start_time = &s
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *EventRecordMutation) StartTime() (r string, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldStartTime(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ClearStartTime clears the value of the "start_time" field.
func (m *EventRecordMutation) ClearStartTime() {
	m.start_time = nil
	m.clearedFields[eventrecord.FieldStartTime] = struct{}{}
}

// StartTimeCleared returns if the "start_time" field was cleared in this mutation.
func (m *EventRecordMutation) StartTimeCleared() bool {
	_, ok := m.clearedFields[eventrecord.FieldStartTime]
	return ok
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *EventRecordMutation) ResetStartTime() {
	m.start_time = nil
	delete(m.clearedFields, eventrecord.FieldStartTime)
}

// SetEndTime sets the "end_time" field.
func (m *EventRecordMutation) SetEndTime(s string) {
	m.end_time = &s
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *EventRecordMutation) EndTime() (r string, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldEndTime(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ClearEndTime clears the value of the "end_time" field.
func (m *EventRecordMutation) ClearEndTime() {
	m.end_time = nil
	m.clearedFields[eventrecord.FieldEndTime] = struct{}{}
}

// EndTimeCleared returns if the "end_time" field was cleared in this mutation.
func (m *EventRecordMutation) EndTimeCleared() bool {
	_, ok := m.clearedFields[eventrecord.FieldEndTime]
	return ok
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *EventRecordMutation) ResetEndTime() {
	m.end_time = nil
	delete(m.clearedFields, eventrecord.FieldEndTime)
}

// SetTimezone sets the "timezone" field.
func (m *EventRecordMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *EventRecordMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldTimezone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ClearTimezone clears the value of the "timezone" field.
func (m *EventRecordMutation) ClearTimezone() {
	m.timezone = nil
	m.clearedFields[eventrecord.FieldTimezone] = struct{}{}
}

// TimezoneCleared returns if the "timezone" field was cleared in this mutation.
func (m *EventRecordMutation) TimezoneCleared() bool {
	_, ok := m.clearedFields[eventrecord.FieldTimezone]
	return ok
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *EventRecordMutation) ResetTimezone() {
	m.timezone = nil
	delete(m.clearedFields, eventrecord.FieldTimezone)
}

// SetEndTimeInferred sets the "end_time_inferred" field.
func (m *EventRecordMutation) SetEndTimeInferred(b bool) {
	m.end_time_inferred = &b
}

// EndTimeInferred returns the value of the "end_time_inferred" field in the mutation.
func (m *EventRecordMutation) EndTimeInferred() (r bool, exists bool) {
	v := m.end_time_inferred
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTimeInferred returns the old "end_time_inferred" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldEndTimeInferred(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTimeInferred is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTimeInferred requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTimeInferred: %w", err)
	}
	return oldValue.EndTimeInferred, nil
}

// ResetEndTimeInferred resets all changes to the "end_time_inferred" field.
func (m *EventRecordMutation) ResetEndTimeInferred() {
	m.end_time_inferred = nil
}

// SetConfidence sets the "confidence" field.
func (m *EventRecordMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *EventRecordMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *EventRecordMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *EventRecordMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *EventRecordMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[eventrecord.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *EventRecordMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[eventrecord.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *EventRecordMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, eventrecord.FieldConfidence)
}

// SetModel sets the "model" field.
func (m *EventRecordMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *EventRecordMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldModel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *EventRecordMutation) ClearModel() {
	m.model = nil
	m.clearedFields[eventrecord.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *EventRecordMutation) ModelCleared() bool {
	_, ok := m.clearedFields[eventrecord.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *EventRecordMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, eventrecord.FieldModel)
}

// SetPromptVersion sets the "prompt_version" field.
func (m *EventRecordMutation) SetPromptVersion(s string) {
	m.prompt_version = &s
}

// PromptVersion returns the value of the "prompt_version" field in the mutation.
func (m *EventRecordMutation) PromptVersion() (r string, exists bool) {
	v := m.prompt_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptVersion returns the old "prompt_version" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldPromptVersion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptVersion: %w", err)
	}
	return oldValue.PromptVersion, nil
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (m *EventRecordMutation) ClearPromptVersion() {
	m.prompt_version = nil
	m.clearedFields[eventrecord.FieldPromptVersion] = struct{}{}
}

// PromptVersionCleared returns if the "prompt_version" field was cleared in this mutation.
func (m *EventRecordMutation) PromptVersionCleared() bool {
	_, ok := m.clearedFields[eventrecord.FieldPromptVersion]
	return ok
}

// ResetPromptVersion resets all changes to the "prompt_version" field.
func (m *EventRecordMutation) ResetPromptVersion() {
	m.prompt_version = nil
	delete(m.clearedFields, eventrecord.FieldPromptVersion)
}

// SetRawJSON sets the "raw_json" field.
func (m *EventRecordMutation) SetRawJSON(s string) {
	m.raw_json = &s
}

// RawJSON returns the value of the "raw_json" field in the mutation.
func (m *EventRecordMutation) RawJSON() (r string, exists bool) {
	v := m.raw_json
	if v == nil {
		return
	}
	return *v, true
}

// OldRawJSON returns the old "raw_json" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldRawJSON(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawJSON: %w", err)
	}
	return oldValue.RawJSON, nil
}

// ClearRawJSON clears the value of the "raw_json" field.
func (m *EventRecordMutation) ClearRawJSON() {
	m.raw_json = nil
	m.clearedFields[eventrecord.FieldRawJSON] = struct{}{}
}

// RawJSONCleared returns if the "raw_json" field was cleared in this mutation.
func (m *EventRecordMutation) RawJSONCleared() bool {
	_, ok := m.clearedFields[eventrecord.FieldRawJSON]
	return ok
}

// ResetRawJSON resets all changes to the "raw_json" field.
func (m *EventRecordMutation) ResetRawJSON() {
	m.raw_json = nil
	delete(m.clearedFields, eventrecord.FieldRawJSON)
}

// SetCalendarEventID sets the "calendar_event_id" field.
func (m *EventRecordMutation) SetCalendarEventID(s string) {
	m.calendar_event_id = &s
}

// CalendarEventID returns the value of the "calendar_event_id" field in the mutation.
func (m *EventRecordMutation) CalendarEventID() (r string, exists bool) {
	v := m.calendar_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCalendarEventID returns the old "calendar_event_id" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldCalendarEventID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCalendarEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCalendarEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCalendarEventID: %w", err)
	}
	return oldValue.CalendarEventID, nil
}

// ClearCalendarEventID clears the value of the "calendar_event_id" field.
func (m *EventRecordMutation) ClearCalendarEventID() {
	m.calendar_event_id = nil
	m.clearedFields[eventrecord.FieldCalendarEventID] = struct{}{}
}

// CalendarEventIDCleared returns if the "calendar_event_id" field was cleared in this mutation.
func (m *EventRecordMutation) CalendarEventIDCleared() bool {
	_, ok := m.clearedFields[eventrecord.FieldCalendarEventID]
	return ok
}

// ResetCalendarEventID resets all changes to the "calendar_event_id" field.
func (m *EventRecordMutation) ResetCalendarEventID() {
	m.calendar_event_id = nil
	delete(m.clearedFields, eventrecord.FieldCalendarEventID)
}

// SetCalendarIcalUID sets the "calendar_ical_uid" field.
func (m *EventRecordMutation) SetCalendarIcalUID(s string) {
	m.calendar_ical_uid = &s
}

// CalendarIcalUID returns the value of the "calendar_ical_uid" field in the mutation.
func (m *EventRecordMutation) CalendarIcalUID() (r string, exists bool) {
	v := m.calendar_ical_uid
	if v == nil {
		return
	}
	return *v, true
}

// OldCalendarIcalUID returns the old "calendar_ical_uid" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldCalendarIcalUID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCalendarIcalUID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCalendarIcalUID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCalendarIcalUID: %w", err)
	}
	return oldValue.CalendarIcalUID, nil
}

// ClearCalendarIcalUID clears the value of the "calendar_ical_uid" field.
func (m *EventRecordMutation) ClearCalendarIcalUID() {
	m.calendar_ical_uid = nil
	m.clearedFields[eventrecord.FieldCalendarIcalUID] = struct{}{}
}

// CalendarIcalUIDCleared returns if the "calendar_ical_uid" field was cleared in this mutation.
func (m *EventRecordMutation) CalendarIcalUIDCleared() bool {
	_, ok := m.clearedFields[eventrecord.FieldCalendarIcalUID]
	return ok
}

// ResetCalendarIcalUID resets all changes to the "calendar_ical_uid" field.
func (m *EventRecordMutation) ResetCalendarIcalUID() {
	m.calendar_ical_uid = nil
	delete(m.clearedFields, eventrecord.FieldCalendarIcalUID)
}

// SetCalendarCheckedAt sets the "calendar_checked_at" field.
func (m *EventRecordMutation) SetCalendarCheckedAt(t time.Time) {
	m.calendar_checked_at = &t
}

// CalendarCheckedAt returns the value of the "calendar_checked_at" field in the mutation.
func (m *EventRecordMutation) CalendarCheckedAt() (r time.Time, exists bool) {
	v := m.calendar_checked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCalendarCheckedAt returns the old "calendar_checked_at" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldCalendarCheckedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCalendarCheckedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCalendarCheckedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCalendarCheckedAt: %w", err)
	}
	return oldValue.CalendarCheckedAt, nil
}

// ClearCalendarCheckedAt clears the value of the "calendar_checked_at" field.
func (m *EventRecordMutation) ClearCalendarCheckedAt() {
	m.calendar_checked_at = nil
	m.clearedFields[eventrecord.FieldCalendarCheckedAt] = struct{}{}
}

// CalendarCheckedAtCleared returns if the "calendar_checked_at" field was cleared in this mutation.
func (m *EventRecordMutation) CalendarCheckedAtCleared() bool {
	_, ok := m.clearedFields[eventrecord.FieldCalendarCheckedAt]
	return ok
}

// ResetCalendarCheckedAt resets all changes to the "calendar_checked_at" field.
func (m *EventRecordMutation) ResetCalendarCheckedAt() {
	m.calendar_checked_at = nil
	delete(m.clearedFields, eventrecord.FieldCalendarCheckedAt)
}

// SetPublishedAt sets the "published_at" field.
func (m *EventRecordMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *EventRecordMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldPublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ClearPublishedAt clears the value of the "published_at" field.
func (m *EventRecordMutation) ClearPublishedAt() {
	m.published_at = nil
	m.clearedFields[eventrecord.FieldPublishedAt] = struct{}{}
}

// PublishedAtCleared returns if the "published_at" field was cleared in this mutation.
func (m *EventRecordMutation) PublishedAtCleared() bool {
	_, ok := m.clearedFields[eventrecord.FieldPublishedAt]
	return ok
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *EventRecordMutation) ResetPublishedAt() {
	m.published_at = nil
	delete(m.clearedFields, eventrecord.FieldPublishedAt)
}

// SetHiddenAt sets the "hidden_at" field.
func (m *EventRecordMutation) SetHiddenAt(t time.Time) {
	m.hidden_at = &t
}

// HiddenAt returns the value of the "hidden_at" field in the mutation.
func (m *EventRecordMutation) HiddenAt() (r time.Time, exists bool) {
	v := m.hidden_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHiddenAt returns the old "hidden_at" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldHiddenAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHiddenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHiddenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHiddenAt: %w", err)
	}
	return oldValue.HiddenAt, nil
}

// ClearHiddenAt clears the value of the "hidden_at" field.
func (m *EventRecordMutation) ClearHiddenAt() {
	m.hidden_at = nil
	m.clearedFields[eventrecord.FieldHiddenAt] = struct{}{}
}

// HiddenAtCleared returns if the "hidden_at" field was cleared in this mutation.
func (m *EventRecordMutation) HiddenAtCleared() bool {
	_, ok := m.clearedFields[eventrecord.FieldHiddenAt]
	return ok
}

// ResetHiddenAt resets all changes to the "hidden_at" field.
func (m *EventRecordMutation) ResetHiddenAt() {
	m.hidden_at = nil
	delete(m.clearedFields, eventrecord.FieldHiddenAt)
}

// SetExtractedAt sets the "extracted_at" field.
func (m *EventRecordMutation) SetExtractedAt(t time.Time) {
	m.extracted_at = &t
}

// ExtractedAt returns the value of the "extracted_at" field in the mutation.
func (m *EventRecordMutation) ExtractedAt() (r time.Time, exists bool) {
	v := m.extracted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedAt returns the old "extracted_at" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldExtractedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedAt: %w", err)
	}
	return oldValue.ExtractedAt, nil
}

// ResetExtractedAt resets all changes to the "extracted_at" field.
func (m *EventRecordMutation) ResetExtractedAt() {
	m.extracted_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EventRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EventRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EventRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the EventRecordMutation builder.
func (m *EventRecordMutation) Where(ps ...predicate.EventRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EventRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EventRecord).
func (m *EventRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventRecordMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.status != nil {
		fields = append(fields, eventrecord.FieldStatus)
	}
	if m.error != nil {
		fields = append(fields, eventrecord.FieldError)
	}
	if m.event_name != nil {
		fields = append(fields, eventrecord.FieldEventName)
	}
	if m.event_type != nil {
		fields = append(fields, eventrecord.FieldEventType)
	}
	if m.event_date != nil {
		fields = append(fields, eventrecord.FieldEventDate)
	}
	if m.start_time != nil {
		fields = append(fields, eventrecord.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, eventrecord.FieldEndTime)
	}
	if m.timezone != nil {
		fields = append(fields, eventrecord.FieldTimezone)
	}
	if m.end_time_inferred != nil {
		fields = append(fields, eventrecord.FieldEndTimeInferred)
	}
	if m.confidence != nil {
		fields = append(fields, eventrecord.FieldConfidence)
	}
	if m.model != nil {
		fields = append(fields, eventrecord.FieldModel)
	}
	if m.prompt_version != nil {
		fields = append(fields, eventrecord.FieldPromptVersion)
	}
	if m.raw_json != nil {
		fields = append(fields, eventrecord.FieldRawJSON)
	}
	if m.calendar_event_id != nil {
		fields = append(fields, eventrecord.FieldCalendarEventID)
	}
	if m.calendar_ical_uid != nil {
		fields = append(fields, eventrecord.FieldCalendarIcalUID)
	}
	if m.calendar_checked_at != nil {
		fields = append(fields, eventrecord.FieldCalendarCheckedAt)
	}
	if m.published_at != nil {
		fields = append(fields, eventrecord.FieldPublishedAt)
	}
	if m.hidden_at != nil {
		fields = append(fields, eventrecord.FieldHiddenAt)
	}
	if m.extracted_at != nil {
		fields = append(fields, eventrecord.FieldExtractedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, eventrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case eventrecord.FieldStatus:
		return m.Status()
	case eventrecord.FieldError:
		return m.Error()
	case eventrecord.FieldEventName:
		return m.EventName()
	case eventrecord.FieldEventType:
		return m.EventType()
	case eventrecord.FieldEventDate:
		return m.EventDate()
	case eventrecord.FieldStartTime:
		return m.StartTime()
	case eventrecord.FieldEndTime:
		return m.EndTime()
	case eventrecord.FieldTimezone:
		return m.Timezone()
	case eventrecord.FieldEndTimeInferred:
		return m.EndTimeInferred()
	case eventrecord.FieldConfidence:
		return m.Confidence()
	case eventrecord.FieldModel:
		return m.Model()
	case eventrecord.FieldPromptVersion:
		return m.PromptVersion()
	case eventrecord.FieldRawJSON:
		return m.RawJSON()
	case eventrecord.FieldCalendarEventID:
		return m.CalendarEventID()
	case eventrecord.FieldCalendarIcalUID:
		return m.CalendarIcalUID()
	case eventrecord.FieldCalendarCheckedAt:
		return m.CalendarCheckedAt()
	case eventrecord.FieldPublishedAt:
		return m.PublishedAt()
	case eventrecord.FieldHiddenAt:
		return m.HiddenAt()
	case eventrecord.FieldExtractedAt:
		return m.ExtractedAt()
	case eventrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case eventrecord.FieldStatus:
		return m.OldStatus(ctx)
	case eventrecord.FieldError:
		return m.OldError(ctx)
	case eventrecord.FieldEventName:
		return m.OldEventName(ctx)
	case eventrecord.FieldEventType:
		return m.OldEventType(ctx)
	case eventrecord.FieldEventDate:
		return m.OldEventDate(ctx)
	case eventrecord.FieldStartTime:
		return m.OldStartTime(ctx)
	case eventrecord.FieldEndTime:
		return m.OldEndTime(ctx)
	case eventrecord.FieldTimezone:
		return m.OldTimezone(ctx)
	case eventrecord.FieldEndTimeInferred:
		return m.OldEndTimeInferred(ctx)
	case eventrecord.FieldConfidence:
		return m.OldConfidence(ctx)
	case eventrecord.FieldModel:
		return m.OldModel(ctx)
	case eventrecord.FieldPromptVersion:
		return m.OldPromptVersion(ctx)
	case eventrecord.FieldRawJSON:
		return m.OldRawJSON(ctx)
	case eventrecord.FieldCalendarEventID:
		return m.OldCalendarEventID(ctx)
	case eventrecord.FieldCalendarIcalUID:
		return m.OldCalendarIcalUID(ctx)
	case eventrecord.FieldCalendarCheckedAt:
		return m.OldCalendarCheckedAt(ctx)
	case eventrecord.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case eventrecord.FieldHiddenAt:
		return m.OldHiddenAt(ctx)
	case eventrecord.FieldExtractedAt:
		return m.OldExtractedAt(ctx)
	case eventrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EventRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case eventrecord.FieldStatus:
		v, ok := value.(eventrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case eventrecord.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case eventrecord.FieldEventName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventName(v)
		return nil
	case eventrecord.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case eventrecord.FieldEventDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventDate(v)
		return nil
	case eventrecord.FieldStartTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case eventrecord.FieldEndTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case eventrecord.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case eventrecord.FieldEndTimeInferred:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTimeInferred(v)
		return nil
	case eventrecord.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case eventrecord.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case eventrecord.FieldPromptVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptVersion(v)
		return nil
	case eventrecord.FieldRawJSON:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawJSON(v)
		return nil
	case eventrecord.FieldCalendarEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCalendarEventID(v)
		return nil
	case eventrecord.FieldCalendarIcalUID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCalendarIcalUID(v)
		return nil
	case eventrecord.FieldCalendarCheckedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCalendarCheckedAt(v)
		return nil
	case eventrecord.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case eventrecord.FieldHiddenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHiddenAt(v)
		return nil
	case eventrecord.FieldExtractedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedAt(v)
		return nil
	case eventrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EventRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventRecordMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, eventrecord.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case eventrecord.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case eventrecord.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown EventRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(eventrecord.FieldError) {
		fields = append(fields, eventrecord.FieldError)
	}
	if m.FieldCleared(eventrecord.FieldEventName) {
		fields = append(fields, eventrecord.FieldEventName)
	}
	if m.FieldCleared(eventrecord.FieldEventType) {
		fields = append(fields, eventrecord.FieldEventType)
	}
	if m.FieldCleared(eventrecord.FieldEventDate) {
		fields = append(fields, eventrecord.FieldEventDate)
	}
	if m.FieldCleared(eventrecord.FieldStartTime) {
		fields = append(fields, eventrecord.FieldStartTime)
	}
	if m.FieldCleared(eventrecord.FieldEndTime) {
		fields = append(fields, eventrecord.FieldEndTime)
	}
	if m.FieldCleared(eventrecord.FieldTimezone) {
		fields = append(fields, eventrecord.FieldTimezone)
	}
	if m.FieldCleared(eventrecord.FieldConfidence) {
		fields = append(fields, eventrecord.FieldConfidence)
	}
	if m.FieldCleared(eventrecord.FieldModel) {
		fields = append(fields, eventrecord.FieldModel)
	}
	if m.FieldCleared(eventrecord.FieldPromptVersion) {
		fields = append(fields, eventrecord.FieldPromptVersion)
	}
	if m.FieldCleared(eventrecord.FieldRawJSON) {
		fields = append(fields, eventrecord.FieldRawJSON)
	}
	if m.FieldCleared(eventrecord.FieldCalendarEventID) {
		fields = append(fields, eventrecord.FieldCalendarEventID)
	}
	if m.FieldCleared(eventrecord.FieldCalendarIcalUID) {
		fields = append(fields, eventrecord.FieldCalendarIcalUID)
	}
	if m.FieldCleared(eventrecord.FieldCalendarCheckedAt) {
		fields = append(fields, eventrecord.FieldCalendarCheckedAt)
	}
	if m.FieldCleared(eventrecord.FieldPublishedAt) {
		fields = append(fields, eventrecord.FieldPublishedAt)
	}
	if m.FieldCleared(eventrecord.FieldHiddenAt) {
		fields = append(fields, eventrecord.FieldHiddenAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventRecordMutation) ClearField(name string) error {
	switch name {
	case eventrecord.FieldError:
		m.ClearError()
		return nil
	case eventrecord.FieldEventName:
		m.ClearEventName()
		return nil
	case eventrecord.FieldEventType:
		m.ClearEventType()
		return nil
	case eventrecord.FieldEventDate:
		m.ClearEventDate()
		return nil
	case eventrecord.FieldStartTime:
		m.ClearStartTime()
		return nil
	case eventrecord.FieldEndTime:
		m.ClearEndTime()
		return nil
	case eventrecord.FieldTimezone:
		m.ClearTimezone()
		return nil
	case eventrecord.FieldConfidence:
		m.ClearConfidence()
		return nil
	case eventrecord.FieldModel:
		m.ClearModel()
		return nil
	case eventrecord.FieldPromptVersion:
		m.ClearPromptVersion()
		return nil
	case eventrecord.FieldRawJSON:
		m.ClearRawJSON()
		return nil
	case eventrecord.FieldCalendarEventID:
		m.ClearCalendarEventID()
		return nil
	case eventrecord.FieldCalendarIcalUID:
		m.ClearCalendarIcalUID()
		return nil
	case eventrecord.FieldCalendarCheckedAt:
		m.ClearCalendarCheckedAt()
		return nil
	case eventrecord.FieldPublishedAt:
		m.ClearPublishedAt()
		return nil
	case eventrecord.FieldHiddenAt:
		m.ClearHiddenAt()
		return nil
	}
	return fmt.Errorf("unknown EventRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventRecordMutation) ResetField(name string) error {
	switch name {
	case eventrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case eventrecord.FieldError:
		m.ResetError()
		return nil
	case eventrecord.FieldEventName:
		m.ResetEventName()
		return nil
	case eventrecord.FieldEventType:
		m.ResetEventType()
		return nil
	case eventrecord.FieldEventDate:
		m.ResetEventDate()
		return nil
	case eventrecord.FieldStartTime:
		m.ResetStartTime()
		return nil
	case eventrecord.FieldEndTime:
		m.ResetEndTime()
		return nil
	case eventrecord.FieldTimezone:
		m.ResetTimezone()
		return nil
	case eventrecord.FieldEndTimeInferred:
		m.ResetEndTimeInferred()
		return nil
	case eventrecord.FieldConfidence:
		m.ResetConfidence()
		return nil
	case eventrecord.FieldModel:
		m.ResetModel()
		return nil
	case eventrecord.FieldPromptVersion:
		m.ResetPromptVersion()
		return nil
	case eventrecord.FieldRawJSON:
		m.ResetRawJSON()
		return nil
	case eventrecord.FieldCalendarEventID:
		m.ResetCalendarEventID()
		return nil
	case eventrecord.FieldCalendarIcalUID:
		m.ResetCalendarIcalUID()
		return nil
	case eventrecord.FieldCalendarCheckedAt:
		m.ResetCalendarCheckedAt()
		return nil
	case eventrecord.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case eventrecord.FieldHiddenAt:
		m.ResetHiddenAt()
		return nil
	case eventrecord.FieldExtractedAt:
		m.ResetExtractedAt()
		return nil
	case eventrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown EventRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EventRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EventRecord edge %s", name)
}

// LabelOutboxMutation represents an operation that mutates the LabelOutbox nodes in the graph.
type LabelOutboxMutation struct {
	config
	op             Op
	typ            string
	id             *int
	reason         *string
	created_at     *time.Time
	processed_at   *time.Time
	error          *string
	clearedFields  map[string]struct{}
	message        *string
	clearedmessage bool
	done           bool
	oldValue       func(context.Context) (*LabelOutbox, error)
	predicates     []predicate.LabelOutbox
}

var _ ent.Mutation = (*LabelOutboxMutation)(nil)

// labeloutboxOption allows management of the mutation configuration using functional options.
type labeloutboxOption func(*LabelOutboxMutation)

// newLabelOutboxMutation creates new mutation for the LabelOutbox entity.
func newLabelOutboxMutation(c config, op Op, opts ...labeloutboxOption) *LabelOutboxMutation {
	m := &LabelOutboxMutation{
		config:        c,
		op:            op,
		typ:           TypeLabelOutbox,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLabelOutboxID sets the ID field of the mutation.
func withLabelOutboxID(id int) labeloutboxOption {
	return func(m *LabelOutboxMutation) {
		var (
			err   error
			once  sync.Once
			value *LabelOutbox
		)
		m.oldValue = func(ctx context.Context) (*LabelOutbox, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LabelOutbox.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLabelOutbox sets the old LabelOutbox of the mutation.
func withLabelOutbox(node *LabelOutbox) labeloutboxOption {
	return func(m *LabelOutboxMutation) {
		m.oldValue = func(context.Context) (*LabelOutbox, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LabelOutboxMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LabelOutboxMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LabelOutboxMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LabelOutboxMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LabelOutbox.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMessageID sets the "message_id" field.
func (m *LabelOutboxMutation) SetMessageID(s string) {
	m.message = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *LabelOutboxMutation) MessageID() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the LabelOutbox entity.
// If the LabelOutbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelOutboxMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *LabelOutboxMutation) ResetMessageID() {
	m.message = nil
}

// SetReason sets the "reason" field.
func (m *LabelOutboxMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *LabelOutboxMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the LabelOutbox entity.
// If the LabelOutbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelOutboxMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *LabelOutboxMutation) ResetReason() {
	m.reason = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LabelOutboxMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LabelOutboxMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LabelOutbox entity.
// If the LabelOutbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelOutboxMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LabelOutboxMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *LabelOutboxMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *LabelOutboxMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the LabelOutbox entity.
// If the LabelOutbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelOutboxMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *LabelOutboxMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[labeloutbox.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *LabelOutboxMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[labeloutbox.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *LabelOutboxMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, labeloutbox.FieldProcessedAt)
}

// SetError sets the "error" field.
func (m *LabelOutboxMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *LabelOutboxMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the LabelOutbox entity.
// If the LabelOutbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelOutboxMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *LabelOutboxMutation) ClearError() {
	m.error = nil
	m.clearedFields[labeloutbox.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *LabelOutboxMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[labeloutbox.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *LabelOutboxMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, labeloutbox.FieldError)
}

// ClearMessage clears the "message" edge to the EmailMessage entity.
func (m *LabelOutboxMutation) ClearMessage() {
	m.clearedmessage = true
	m.clearedFields[labeloutbox.FieldMessageID] = struct{}{}
}

// MessageCleared reports if the "message" edge to the EmailMessage entity was cleared.
func (m *LabelOutboxMutation) MessageCleared() bool {
	return m.clearedmessage
}

// MessageIDs returns the "message" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MessageID instead. It exists only for internal usage by the builders.
func (m *LabelOutboxMutation) MessageIDs() (ids []string) {
	if id := m.message; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMessage resets all changes to the "message" edge.
func (m *LabelOutboxMutation) ResetMessage() {
	m.message = nil
	m.clearedmessage = false
}

// Where appends a list predicates to the LabelOutboxMutation builder.
func (m *LabelOutboxMutation) Where(ps ...predicate.LabelOutbox) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LabelOutboxMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LabelOutboxMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LabelOutbox, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LabelOutboxMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LabelOutboxMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LabelOutbox).
func (m *LabelOutboxMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LabelOutboxMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.message != nil {
		fields = append(fields, labeloutbox.FieldMessageID)
	}
	if m.reason != nil {
		fields = append(fields, labeloutbox.FieldReason)
	}
	if m.created_at != nil {
		fields = append(fields, labeloutbox.FieldCreatedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, labeloutbox.FieldProcessedAt)
	}
	if m.error != nil {
		fields = append(fields, labeloutbox.FieldError)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LabelOutboxMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case labeloutbox.FieldMessageID:
		return m.MessageID()
	case labeloutbox.FieldReason:
		return m.Reason()
	case labeloutbox.FieldCreatedAt:
		return m.CreatedAt()
	case labeloutbox.FieldProcessedAt:
		return m.ProcessedAt()
	case labeloutbox.FieldError:
		return m.Error()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LabelOutboxMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case labeloutbox.FieldMessageID:
		return m.OldMessageID(ctx)
	case labeloutbox.FieldReason:
		return m.OldReason(ctx)
	case labeloutbox.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case labeloutbox.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case labeloutbox.FieldError:
		return m.OldError(ctx)
	}
	return nil, fmt.Errorf("unknown LabelOutbox field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabelOutboxMutation) SetField(name string, value ent.Value) error {
	switch name {
	case labeloutbox.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case labeloutbox.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case labeloutbox.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case labeloutbox.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case labeloutbox.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	}
	return fmt.Errorf("unknown LabelOutbox field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LabelOutboxMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LabelOutboxMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabelOutboxMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LabelOutbox numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LabelOutboxMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(labeloutbox.FieldProcessedAt) {
		fields = append(fields, labeloutbox.FieldProcessedAt)
	}
	if m.FieldCleared(labeloutbox.FieldError) {
		fields = append(fields, labeloutbox.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LabelOutboxMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LabelOutboxMutation) ClearField(name string) error {
	switch name {
	case labeloutbox.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	case labeloutbox.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown LabelOutbox nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LabelOutboxMutation) ResetField(name string) error {
	switch name {
	case labeloutbox.FieldMessageID:
		m.ResetMessageID()
		return nil
	case labeloutbox.FieldReason:
		m.ResetReason()
		return nil
	case labeloutbox.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case labeloutbox.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case labeloutbox.FieldError:
		m.ResetError()
		return nil
	}
	return fmt.Errorf("unknown LabelOutbox field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LabelOutboxMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.message != nil {
		edges = append(edges, labeloutbox.EdgeMessage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LabelOutboxMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case labeloutbox.EdgeMessage:
		if id := m.message; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LabelOutboxMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LabelOutboxMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LabelOutboxMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmessage {
		edges = append(edges, labeloutbox.EdgeMessage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LabelOutboxMutation) EdgeCleared(name string) bool {
	switch name {
	case labeloutbox.EdgeMessage:
		return m.clearedmessage
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LabelOutboxMutation) ClearEdge(name string) error {
	switch name {
	case labeloutbox.EdgeMessage:
		m.ClearMessage()
		return nil
	}
	return fmt.Errorf("unknown LabelOutbox unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LabelOutboxMutation) ResetEdge(name string) error {
	switch name {
	case labeloutbox.EdgeMessage:
		m.ResetMessage()
		return nil
	}
	return fmt.Errorf("unknown LabelOutbox edge %s", name)
}

// PaymentRecordMutation represents an operation that mutates the PaymentRecord nodes in the graph.
type PaymentRecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	status              *paymentrecord.Status
	error               *string
	item_name           *string
	vendor_name         *string
	item_category       *string
	cost_amount         *decimal.Decimal
	addcost_amount      *decimal.Decimal
	cost_currency       *string
	is_recurring        *bool
	frequency           *string
	payment_date        *time.Time
	payment_fingerprint *string
	confidence          *float64
	addconfidence       *float64
	model               *string
	prompt_version      *string
	raw_json            *string
	extracted_at        *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*PaymentRecord, error)
	predicates          []predicate.PaymentRecord
}

var _ ent.Mutation = (*PaymentRecordMutation)(nil)

// paymentrecordOption allows management of the mutation configuration using functional options.
type paymentrecordOption func(*PaymentRecordMutation)

// newPaymentRecordMutation creates new mutation for the PaymentRecord entity.
func newPaymentRecordMutation(c config, op Op, opts ...paymentrecordOption) *PaymentRecordMutation {
	m := &PaymentRecordMutation{
		config:        c,
		op:            op,
		typ:           TypePaymentRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPaymentRecordID sets the ID field of the mutation.
func withPaymentRecordID(id string) paymentrecordOption {
	return func(m *PaymentRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *PaymentRecord
		)
		m.oldValue = func(ctx context.Context) (*PaymentRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PaymentRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPaymentRecord sets the old PaymentRecord of the mutation.
func withPaymentRecord(node *PaymentRecord) paymentrecordOption {
	return func(m *PaymentRecordMutation) {
		m.oldValue = func(context.Context) (*PaymentRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PaymentRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PaymentRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PaymentRecord entities.
func (m *PaymentRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PaymentRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PaymentRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PaymentRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStatus sets the "status" field.
func (m *PaymentRecordMutation) SetStatus(pa paymentrecord.Status) {
	m.status = &pa
}

// Status returns the value of the "status" field in the mutation.
func (m *PaymentRecordMutation) Status() (r paymentrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldStatus(ctx context.Context) (v paymentrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PaymentRecordMutation) ResetStatus() {
	m.status = nil
}

// SetError sets the "error" field.
func (m *PaymentRecordMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *PaymentRecordMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *PaymentRecordMutation) ClearError() {
	m.error = nil
	m.clearedFields[paymentrecord.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *PaymentRecordMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[paymentrecord.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *PaymentRecordMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, paymentrecord.FieldError)
}

// SetItemName sets the "item_name" field.
func (m *PaymentRecordMutation) SetItemName(s string) {
	m.item_name = &s
}

// ItemName returns the value of the "item_name" field in the mutation.
func (m *PaymentRecordMutation) ItemName() (r string, exists bool) {
	v := m.item_name
	if v == nil {
		return
	}
	return *v, true
}

// OldItemName returns the old "item_name" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldItemName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemName: %w", err)
	}
	return oldValue.ItemName, nil
}

// ClearItemName clears the value of the "item_name" field.
func (m *PaymentRecordMutation) ClearItemName() {
	m.item_name = nil
	m.clearedFields[paymentrecord.FieldItemName] = struct{}{}
}

// ItemNameCleared returns if the "item_name" field was cleared in this mutation.
func (m *PaymentRecordMutation) ItemNameCleared() bool {
	_, ok := m.clearedFields[paymentrecord.FieldItemName]
	return ok
}

// ResetItemName resets all changes to the "item_name" field.
func (m *PaymentRecordMutation) ResetItemName() {
	m.item_name = nil
	delete(m.clearedFields, paymentrecord.FieldItemName)
}

// SetVendorName sets the "vendor_name" field.
func (m *PaymentRecordMutation) SetVendorName(s string) {
	m.vendor_name = &s
}

// VendorName returns the value of the "vendor_name" field in the mutation.
func (m *PaymentRecordMutation) VendorName() (r string, exists bool) {
	v := m.vendor_name
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorName returns the old "vendor_name" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldVendorName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorName: %w", err)
	}
	return oldValue.VendorName, nil
}

// ClearVendorName clears the value of the "vendor_name" field.
func (m *PaymentRecordMutation) ClearVendorName() {
	m.vendor_name = nil
	m.clearedFields[paymentrecord.FieldVendorName] = struct{}{}
}

// VendorNameCleared returns if the "vendor_name" field was cleared in this mutation.
func (m *PaymentRecordMutation) VendorNameCleared() bool {
	_, ok := m.clearedFields[paymentrecord.FieldVendorName]
	return ok
}

// ResetVendorName resets all changes to the "vendor_name" field.
func (m *PaymentRecordMutation) ResetVendorName() {
	m.vendor_name = nil
	delete(m.clearedFields, paymentrecord.FieldVendorName)
}

// SetItemCategory sets the "item_category" field.
func (m *PaymentRecordMutation) SetItemCategory(s string) {
	m.item_category = &s
}

// ItemCategory returns the value of the "item_category" field in the mutation.
func (m *PaymentRecordMutation) ItemCategory() (r string, exists bool) {
	v := m.item_category
	if v == nil {
		return
	}
	return *v, true
}

// OldItemCategory returns the old "item_category" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldItemCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemCategory: %w", err)
	}
	return oldValue.ItemCategory, nil
}

// ClearItemCategory clears the value of the "item_category" field.
func (m *PaymentRecordMutation) ClearItemCategory() {
	m.item_category = nil
	m.clearedFields[paymentrecord.FieldItemCategory] = struct{}{}
}

// ItemCategoryCleared returns if the "item_category" field was cleared in this mutation.
func (m *PaymentRecordMutation) ItemCategoryCleared() bool {
	_, ok := m.clearedFields[paymentrecord.FieldItemCategory]
	return ok
}

// ResetItemCategory resets all changes to the "item_category" field.
func (m *PaymentRecordMutation) ResetItemCategory() {
	m.item_category = nil
	delete(m.clearedFields, paymentrecord.FieldItemCategory)
}

// SetCostAmount sets the "cost_amount" field.
func (m *PaymentRecordMutation) SetCostAmount(d decimal.Decimal) {
	m.cost_amount = &d
	m.addcost_amount = nil
}

// CostAmount returns the value of the "cost_amount" field in the mutation.
func (m *PaymentRecordMutation) CostAmount() (r decimal.Decimal, exists bool) {
	v := m.cost_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldCostAmount returns the old "cost_amount" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldCostAmount(ctx context.Context) (v *decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostAmount: %w", err)
	}
	return oldValue.CostAmount, nil
}

// AddCostAmount adds d to the "cost_amount" field.
func (m *PaymentRecordMutation) AddCostAmount(d decimal.Decimal) {
	if m.addcost_amount != nil {
		*m.addcost_amount = m.addcost_amount.Add(d)
	} else {
		m.addcost_amount = &d
	}
}

// AddedCostAmount returns the value that was added to the "cost_amount" field in this mutation.
func (m *PaymentRecordMutation) AddedCostAmount() (r decimal.Decimal, exists bool) {
	v := m.addcost_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearCostAmount clears the value of the "cost_amount" field.
func (m *PaymentRecordMutation) ClearCostAmount() {
	m.cost_amount = nil
	m.addcost_amount = nil
	m.clearedFields[paymentrecord.FieldCostAmount] = struct{}{}
}

// CostAmountCleared returns if the "cost_amount" field was cleared in this mutation.
func (m *PaymentRecordMutation) CostAmountCleared() bool {
	_, ok := m.clearedFields[paymentrecord.FieldCostAmount]
	return ok
}

// ResetCostAmount resets all changes to the "cost_amount" field.
func (m *PaymentRecordMutation) ResetCostAmount() {
	m.cost_amount = nil
	m.addcost_amount = nil
	delete(m.clearedFields, paymentrecord.FieldCostAmount)
}

// SetCostCurrency sets the "cost_currency" field.
func (m *PaymentRecordMutation) SetCostCurrency(s string) {
	m.cost_currency = &s
}

// CostCurrency returns the value of the "cost_currency" field in the mutation.
func (m *PaymentRecordMutation) CostCurrency() (r string, exists bool) {
	v := m.cost_currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCostCurrency returns the old "cost_currency" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldCostCurrency(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostCurrency: %w", err)
	}
	return oldValue.CostCurrency, nil
}

// ClearCostCurrency clears the value of the "cost_currency" field.
func (m *PaymentRecordMutation) ClearCostCurrency() {
	m.cost_currency = nil
	m.clearedFields[paymentrecord.FieldCostCurrency] = struct{}{}
}

// CostCurrencyCleared returns if the "cost_currency" field was cleared in this mutation.
func (m *PaymentRecordMutation) CostCurrencyCleared() bool {
	_, ok := m.clearedFields[paymentrecord.FieldCostCurrency]
	return ok
}

// ResetCostCurrency resets all changes to the "cost_currency" field.
func (m *PaymentRecordMutation) ResetCostCurrency() {
	m.cost_currency = nil
	delete(m.clearedFields, paymentrecord.FieldCostCurrency)
}

// SetIsRecurring sets the "is_recurring" field.
func (m *PaymentRecordMutation) SetIsRecurring(b bool) {
	m.is_recurring = &b
}

// IsRecurring returns the value of the "is_recurring" field in the mutation.
func (m *PaymentRecordMutation) IsRecurring() (r bool, exists bool) {
	v := m.is_recurring
	if v == nil {
		return
	}
	return *v, true
}

// OldIsRecurring returns the old "is_recurring" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldIsRecurring(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsRecurring is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsRecurring requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsRecurring: %w", err)
	}
	return oldValue.IsRecurring, nil
}

// ClearIsRecurring clears the value of the "is_recurring" field.
func (m *PaymentRecordMutation) ClearIsRecurring() {
	m.is_recurring = nil
	m.clearedFields[paymentrecord.FieldIsRecurring] = struct{}{}
}

// IsRecurringCleared returns if the "is_recurring" field was cleared in this mutation.
func (m *PaymentRecordMutation) IsRecurringCleared() bool {
	_, ok := m.clearedFields[paymentrecord.FieldIsRecurring]
	return ok
}

// ResetIsRecurring resets all changes to the "is_recurring" field.
func (m *PaymentRecordMutation) ResetIsRecurring() {
	m.is_recurring = nil
	delete(m.clearedFields, paymentrecord.FieldIsRecurring)
}

// SetFrequency sets the "frequency" field.
func (m *PaymentRecordMutation) SetFrequency(s string) {
	m.frequency = &s
}

// Frequency returns the value of the "frequency" field in the mutation.
func (m *PaymentRecordMutation) Frequency() (r string, exists bool) {
	v := m.frequency
	if v == nil {
		return
	}
	return *v, true
}

// OldFrequency returns the old "frequency" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldFrequency(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFrequency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFrequency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFrequency: %w", err)
	}
	return oldValue.Frequency, nil
}

// ClearFrequency clears the value of the "frequency" field.
func (m *PaymentRecordMutation) ClearFrequency() {
	m.frequency = nil
	m.clearedFields[paymentrecord.FieldFrequency] = struct{}{}
}

// FrequencyCleared returns if the "frequency" field was cleared in this mutation.
func (m *PaymentRecordMutation) FrequencyCleared() bool {
	_, ok := m.clearedFields[paymentrecord.FieldFrequency]
	return ok
}

// ResetFrequency resets all changes to the "frequency" field.
func (m *PaymentRecordMutation) ResetFrequency() {
	m.frequency = nil
	delete(m.clearedFields, paymentrecord.FieldFrequency)
}

// SetPaymentDate sets the "payment_date" field.
func (m *PaymentRecordMutation) SetPaymentDate(t time.Time) {
	m.payment_date = &t
}

// PaymentDate returns the value of the "payment_date" field in the mutation.
func (m *PaymentRecordMutation) PaymentDate() (r time.Time, exists bool) {
	v := m.payment_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentDate returns the old "payment_date" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldPaymentDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentDate: %w", err)
	}
	return oldValue.PaymentDate, nil
}

// ClearPaymentDate clears the value of the "payment_date" field.
func (m *PaymentRecordMutation) ClearPaymentDate() {
	m.payment_date = nil
	m.clearedFields[paymentrecord.FieldPaymentDate] = struct{}{}
}

// PaymentDateCleared returns if the "payment_date" field was cleared in this mutation.
func (m *PaymentRecordMutation) PaymentDateCleared() bool {
	_, ok := m.clearedFields[paymentrecord.FieldPaymentDate]
	return ok
}

// ResetPaymentDate resets all changes to the "payment_date" field.
func (m *PaymentRecordMutation) ResetPaymentDate() {
	m.payment_date = nil
	delete(m.clearedFields, paymentrecord.FieldPaymentDate)
}

// SetPaymentFingerprint sets the "payment_fingerprint" field.
func (m *PaymentRecordMutation) SetPaymentFingerprint(s string) {
	m.payment_fingerprint = &s
}

// PaymentFingerprint returns the value of the "payment_fingerprint" field in the mutation.
func (m *PaymentRecordMutation) PaymentFingerprint() (r string, exists bool) {
	v := m.payment_fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentFingerprint returns the old "payment_fingerprint" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldPaymentFingerprint(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentFingerprint: %w", err)
	}
	return oldValue.PaymentFingerprint, nil
}

// ClearPaymentFingerprint clears the value of the "payment_fingerprint" field.
func (m *PaymentRecordMutation) ClearPaymentFingerprint() {
	m.payment_fingerprint = nil
	m.clearedFields[paymentrecord.FieldPaymentFingerprint] = struct{}{}
}

// PaymentFingerprintCleared returns if the "payment_fingerprint" field was cleared in this mutation.
func (m *PaymentRecordMutation) PaymentFingerprintCleared() bool {
	_, ok := m.clearedFields[paymentrecord.FieldPaymentFingerprint]
	return ok
}

// ResetPaymentFingerprint resets all changes to the "payment_fingerprint" field.
func (m *PaymentRecordMutation) ResetPaymentFingerprint() {
	m.payment_fingerprint = nil
	delete(m.clearedFields, paymentrecord.FieldPaymentFingerprint)
}

// SetConfidence sets the "confidence" field.
func (m *PaymentRecordMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *PaymentRecordMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *PaymentRecordMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *PaymentRecordMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *PaymentRecordMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[paymentrecord.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *PaymentRecordMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[paymentrecord.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *PaymentRecordMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, paymentrecord.FieldConfidence)
}

// SetModel sets the "model" field.
func (m *PaymentRecordMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *PaymentRecordMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldModel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *PaymentRecordMutation) ClearModel() {
	m.model = nil
	m.clearedFields[paymentrecord.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *PaymentRecordMutation) ModelCleared() bool {
	_, ok := m.clearedFields[paymentrecord.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *PaymentRecordMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, paymentrecord.FieldModel)
}

// SetPromptVersion sets the "prompt_version" field.
func (m *PaymentRecordMutation) SetPromptVersion(s string) {
	m.prompt_version = &s
}

// PromptVersion returns the value of the "prompt_version" field in the mutation.
func (m *PaymentRecordMutation) PromptVersion() (r string, exists bool) {
	v := m.prompt_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptVersion returns the old "prompt_version" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldPromptVersion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptVersion: %w", err)
	}
	return oldValue.PromptVersion, nil
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (m *PaymentRecordMutation) ClearPromptVersion() {
	m.prompt_version = nil
	m.clearedFields[paymentrecord.FieldPromptVersion] = struct{}{}
}

// PromptVersionCleared returns if the "prompt_version" field was cleared in this mutation.
func (m *PaymentRecordMutation) PromptVersionCleared() bool {
	_, ok := m.clearedFields[paymentrecord.FieldPromptVersion]
	return ok
}

// ResetPromptVersion resets all changes to the "prompt_version" field.
func (m *PaymentRecordMutation) ResetPromptVersion() {
	m.prompt_version = nil
	delete(m.clearedFields, paymentrecord.FieldPromptVersion)
}

// SetRawJSON sets the "raw_json" field.
func (m *PaymentRecordMutation) SetRawJSON(s string) {
	m.raw_json = &s
}

// RawJSON returns the value of the "raw_json" field in the mutation.
func (m *PaymentRecordMutation) RawJSON() (r string, exists bool) {
	v := m.raw_json
	if v == nil {
		return
	}
	return *v, true
}

// OldRawJSON returns the old "raw_json" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldRawJSON(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawJSON: %w", err)
	}
	return oldValue.RawJSON, nil
}

// ClearRawJSON clears the value of the "raw_json" field.
func (m *PaymentRecordMutation) ClearRawJSON() {
	m.raw_json = nil
	m.clearedFields[paymentrecord.FieldRawJSON] = struct{}{}
}

// RawJSONCleared returns if the "raw_json" field was cleared in this mutation.
func (m *PaymentRecordMutation) RawJSONCleared() bool {
	_, ok := m.clearedFields[paymentrecord.FieldRawJSON]
	return ok
}

// ResetRawJSON resets all changes to the "raw_json" field.
func (m *PaymentRecordMutation) ResetRawJSON() {
	m.raw_json = nil
	delete(m.clearedFields, paymentrecord.FieldRawJSON)
}

// SetExtractedAt sets the "extracted_at" field.
func (m *PaymentRecordMutation) SetExtractedAt(t time.Time) {
	m.extracted_at = &t
}

// ExtractedAt returns the value of the "extracted_at" field in the mutation.
func (m *PaymentRecordMutation) ExtractedAt() (r time.Time, exists bool) {
	v := m.extracted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedAt returns the old "extracted_at" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldExtractedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedAt: %w", err)
	}
	return oldValue.ExtractedAt, nil
}

// ResetExtractedAt resets all changes to the "extracted_at" field.
func (m *PaymentRecordMutation) ResetExtractedAt() {
	m.extracted_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PaymentRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PaymentRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PaymentRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PaymentRecordMutation builder.
func (m *PaymentRecordMutation) Where(ps ...predicate.PaymentRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PaymentRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PaymentRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PaymentRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PaymentRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PaymentRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PaymentRecord).
func (m *PaymentRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PaymentRecordMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.status != nil {
		fields = append(fields, paymentrecord.FieldStatus)
	}
	if m.error != nil {
		fields = append(fields, paymentrecord.FieldError)
	}
	if m.item_name != nil {
		fields = append(fields, paymentrecord.FieldItemName)
	}
	if m.vendor_name != nil {
		fields = append(fields, paymentrecord.FieldVendorName)
	}
	if m.item_category != nil {
		fields = append(fields, paymentrecord.FieldItemCategory)
	}
	if m.cost_amount != nil {
		fields = append(fields, paymentrecord.FieldCostAmount)
	}
	if m.cost_currency != nil {
		fields = append(fields, paymentrecord.FieldCostCurrency)
	}
	if m.is_recurring != nil {
		fields = append(fields, paymentrecord.FieldIsRecurring)
	}
	if m.frequency != nil {
		fields = append(fields, paymentrecord.FieldFrequency)
	}
	if m.payment_date != nil {
		fields = append(fields, paymentrecord.FieldPaymentDate)
	}
	if m.payment_fingerprint != nil {
		fields = append(fields, paymentrecord.FieldPaymentFingerprint)
	}
	if m.confidence != nil {
		fields = append(fields, paymentrecord.FieldConfidence)
	}
	if m.model != nil {
		fields = append(fields, paymentrecord.FieldModel)
	}
	if m.prompt_version != nil {
		fields = append(fields, paymentrecord.FieldPromptVersion)
	}
	if m.raw_json != nil {
		fields = append(fields, paymentrecord.FieldRawJSON)
	}
	if m.extracted_at != nil {
		fields = append(fields, paymentrecord.FieldExtractedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, paymentrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PaymentRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case paymentrecord.FieldStatus:
		return m.Status()
	case paymentrecord.FieldError:
		return m.Error()
	case paymentrecord.FieldItemName:
		return m.ItemName()
	case paymentrecord.FieldVendorName:
		return m.VendorName()
	case paymentrecord.FieldItemCategory:
		return m.ItemCategory()
	case paymentrecord.FieldCostAmount:
		return m.CostAmount()
	case paymentrecord.FieldCostCurrency:
		return m.CostCurrency()
	case paymentrecord.FieldIsRecurring:
		return m.IsRecurring()
	case paymentrecord.FieldFrequency:
		return m.Frequency()
	case paymentrecord.FieldPaymentDate:
		return m.PaymentDate()
	case paymentrecord.FieldPaymentFingerprint:
		return m.PaymentFingerprint()
	case paymentrecord.FieldConfidence:
		return m.Confidence()
	case paymentrecord.FieldModel:
		return m.Model()
	case paymentrecord.FieldPromptVersion:
		return m.PromptVersion()
	case paymentrecord.FieldRawJSON:
		return m.RawJSON()
	case paymentrecord.FieldExtractedAt:
		return m.ExtractedAt()
	case paymentrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PaymentRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case paymentrecord.FieldStatus:
		return m.OldStatus(ctx)
	case paymentrecord.FieldError:
		return m.OldError(ctx)
	case paymentrecord.FieldItemName:
		return m.OldItemName(ctx)
	case paymentrecord.FieldVendorName:
		return m.OldVendorName(ctx)
	case paymentrecord.FieldItemCategory:
		return m.OldItemCategory(ctx)
	case paymentrecord.FieldCostAmount:
		return m.OldCostAmount(ctx)
	case paymentrecord.FieldCostCurrency:
		return m.OldCostCurrency(ctx)
	case paymentrecord.FieldIsRecurring:
		return m.OldIsRecurring(ctx)
	case paymentrecord.FieldFrequency:
		return m.OldFrequency(ctx)
	case paymentrecord.FieldPaymentDate:
		return m.OldPaymentDate(ctx)
	case paymentrecord.FieldPaymentFingerprint:
		return m.OldPaymentFingerprint(ctx)
	case paymentrecord.FieldConfidence:
		return m.OldConfidence(ctx)
	case paymentrecord.FieldModel:
		return m.OldModel(ctx)
	case paymentrecord.FieldPromptVersion:
		return m.OldPromptVersion(ctx)
	case paymentrecord.FieldRawJSON:
		return m.OldRawJSON(ctx)
	case paymentrecord.FieldExtractedAt:
		return m.OldExtractedAt(ctx)
	case paymentrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PaymentRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaymentRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case paymentrecord.FieldStatus:
		v, ok := value.(paymentrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case paymentrecord.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case paymentrecord.FieldItemName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemName(v)
		return nil
	case paymentrecord.FieldVendorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorName(v)
		return nil
	case paymentrecord.FieldItemCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemCategory(v)
		return nil
	case paymentrecord.FieldCostAmount:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostAmount(v)
		return nil
	case paymentrecord.FieldCostCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostCurrency(v)
		return nil
	case paymentrecord.FieldIsRecurring:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsRecurring(v)
		return nil
	case paymentrecord.FieldFrequency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFrequency(v)
		return nil
	case paymentrecord.FieldPaymentDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentDate(v)
		return nil
	case paymentrecord.FieldPaymentFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentFingerprint(v)
		return nil
	case paymentrecord.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case paymentrecord.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case paymentrecord.FieldPromptVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptVersion(v)
		return nil
	case paymentrecord.FieldRawJSON:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawJSON(v)
		return nil
	case paymentrecord.FieldExtractedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedAt(v)
		return nil
	case paymentrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PaymentRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PaymentRecordMutation) AddedFields() []string {
	var fields []string
	if m.addcost_amount != nil {
		fields = append(fields, paymentrecord.FieldCostAmount)
	}
	if m.addconfidence != nil {
		fields = append(fields, paymentrecord.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PaymentRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case paymentrecord.FieldCostAmount:
		return m.AddedCostAmount()
	case paymentrecord.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaymentRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case paymentrecord.FieldCostAmount:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostAmount(v)
		return nil
	case paymentrecord.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown PaymentRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PaymentRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(paymentrecord.FieldError) {
		fields = append(fields, paymentrecord.FieldError)
	}
	if m.FieldCleared(paymentrecord.FieldItemName) {
		fields = append(fields, paymentrecord.FieldItemName)
	}
	if m.FieldCleared(paymentrecord.FieldVendorName) {
		fields = append(fields, paymentrecord.FieldVendorName)
	}
	if m.FieldCleared(paymentrecord.FieldItemCategory) {
		fields = append(fields, paymentrecord.FieldItemCategory)
	}
	if m.FieldCleared(paymentrecord.FieldCostAmount) {
		fields = append(fields, paymentrecord.FieldCostAmount)
	}
	if m.FieldCleared(paymentrecord.FieldCostCurrency) {
		fields = append(fields, paymentrecord.FieldCostCurrency)
	}
	if m.FieldCleared(paymentrecord.FieldIsRecurring) {
		fields = append(fields, paymentrecord.FieldIsRecurring)
	}
	if m.FieldCleared(paymentrecord.FieldFrequency) {
		fields = append(fields, paymentrecord.FieldFrequency)
	}
	if m.FieldCleared(paymentrecord.FieldPaymentDate) {
		fields = append(fields, paymentrecord.FieldPaymentDate)
	}
	if m.FieldCleared(paymentrecord.FieldPaymentFingerprint) {
		fields = append(fields, paymentrecord.FieldPaymentFingerprint)
	}
	if m.FieldCleared(paymentrecord.FieldConfidence) {
		fields = append(fields, paymentrecord.FieldConfidence)
	}
	if m.FieldCleared(paymentrecord.FieldModel) {
		fields = append(fields, paymentrecord.FieldModel)
	}
	if m.FieldCleared(paymentrecord.FieldPromptVersion) {
		fields = append(fields, paymentrecord.FieldPromptVersion)
	}
	if m.FieldCleared(paymentrecord.FieldRawJSON) {
		fields = append(fields, paymentrecord.FieldRawJSON)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PaymentRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PaymentRecordMutation) ClearField(name string) error {
	switch name {
	case paymentrecord.FieldError:
		m.ClearError()
		return nil
	case paymentrecord.FieldItemName:
		m.ClearItemName()
		return nil
	case paymentrecord.FieldVendorName:
		m.ClearVendorName()
		return nil
	case paymentrecord.FieldItemCategory:
		m.ClearItemCategory()
		return nil
	case paymentrecord.FieldCostAmount:
		m.ClearCostAmount()
		return nil
	case paymentrecord.FieldCostCurrency:
		m.ClearCostCurrency()
		return nil
	case paymentrecord.FieldIsRecurring:
		m.ClearIsRecurring()
		return nil
	case paymentrecord.FieldFrequency:
		m.ClearFrequency()
		return nil
	case paymentrecord.FieldPaymentDate:
		m.ClearPaymentDate()
		return nil
	case paymentrecord.FieldPaymentFingerprint:
		m.ClearPaymentFingerprint()
		return nil
	case paymentrecord.FieldConfidence:
		m.ClearConfidence()
		return nil
	case paymentrecord.FieldModel:
		m.ClearModel()
		return nil
	case paymentrecord.FieldPromptVersion:
		m.ClearPromptVersion()
		return nil
	case paymentrecord.FieldRawJSON:
		m.ClearRawJSON()
		return nil
	}
	return fmt.Errorf("unknown PaymentRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PaymentRecordMutation) ResetField(name string) error {
	switch name {
	case paymentrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case paymentrecord.FieldError:
		m.ResetError()
		return nil
	case paymentrecord.FieldItemName:
		m.ResetItemName()
		return nil
	case paymentrecord.FieldVendorName:
		m.ResetVendorName()
		return nil
	case paymentrecord.FieldItemCategory:
		m.ResetItemCategory()
		return nil
	case paymentrecord.FieldCostAmount:
		m.ResetCostAmount()
		return nil
	case paymentrecord.FieldCostCurrency:
		m.ResetCostCurrency()
		return nil
	case paymentrecord.FieldIsRecurring:
		m.ResetIsRecurring()
		return nil
	case paymentrecord.FieldFrequency:
		m.ResetFrequency()
		return nil
	case paymentrecord.FieldPaymentDate:
		m.ResetPaymentDate()
		return nil
	case paymentrecord.FieldPaymentFingerprint:
		m.ResetPaymentFingerprint()
		return nil
	case paymentrecord.FieldConfidence:
		m.ResetConfidence()
		return nil
	case paymentrecord.FieldModel:
		m.ResetModel()
		return nil
	case paymentrecord.FieldPromptVersion:
		m.ResetPromptVersion()
		return nil
	case paymentrecord.FieldRawJSON:
		m.ResetRawJSON()
		return nil
	case paymentrecord.FieldExtractedAt:
		m.ResetExtractedAt()
		return nil
	case paymentrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PaymentRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PaymentRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PaymentRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PaymentRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PaymentRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PaymentRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PaymentRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PaymentRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PaymentRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PaymentRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PaymentRecord edge %s", name)
}

// PipelineKVMutation represents an operation that mutates the PipelineKV nodes in the graph.
type PipelineKVMutation struct {
	config
	op            Op
	typ           string
	id            *string
	value         *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*PipelineKV, error)
	predicates    []predicate.PipelineKV
}

var _ ent.Mutation = (*PipelineKVMutation)(nil)

// pipelinekvOption allows management of the mutation configuration using functional options.
type pipelinekvOption func(*PipelineKVMutation)

// newPipelineKVMutation creates new mutation for the PipelineKV entity.
func newPipelineKVMutation(c config, op Op, opts ...pipelinekvOption) *PipelineKVMutation {
	m := &PipelineKVMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineKV,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineKVID sets the ID field of the mutation.
func withPipelineKVID(id string) pipelinekvOption {
	return func(m *PipelineKVMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineKV
		)
		m.oldValue = func(ctx context.Context) (*PipelineKV, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineKV.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineKV sets the old PipelineKV of the mutation.
func withPipelineKV(node *PipelineKV) pipelinekvOption {
	return func(m *PipelineKVMutation) {
		m.oldValue = func(context.Context) (*PipelineKV, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineKVMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineKVMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineKV entities.
func (m *PipelineKVMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineKVMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineKVMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineKV.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetValue sets the "value" field.
func (m *PipelineKVMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *PipelineKVMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the PipelineKV entity.
// If the PipelineKV object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineKVMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *PipelineKVMutation) ResetValue() {
	m.value = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PipelineKVMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PipelineKVMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PipelineKV entity.
// If the PipelineKV object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineKVMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PipelineKVMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PipelineKVMutation builder.
func (m *PipelineKVMutation) Where(ps ...predicate.PipelineKV) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineKVMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineKVMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineKV, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineKVMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineKVMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineKV).
func (m *PipelineKVMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineKVMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.value != nil {
		fields = append(fields, pipelinekv.FieldValue)
	}
	if m.updated_at != nil {
		fields = append(fields, pipelinekv.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineKVMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinekv.FieldValue:
		return m.Value()
	case pipelinekv.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineKVMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinekv.FieldValue:
		return m.OldValue(ctx)
	case pipelinekv.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineKV field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineKVMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinekv.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case pipelinekv.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineKV field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineKVMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineKVMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineKVMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PipelineKV numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineKVMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineKVMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineKVMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PipelineKV nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineKVMutation) ResetField(name string) error {
	switch name {
	case pipelinekv.FieldValue:
		m.ResetValue()
		return nil
	case pipelinekv.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineKV field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineKVMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineKVMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineKVMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineKVMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineKVMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineKVMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineKVMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PipelineKV unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineKVMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PipelineKV edge %s", name)
}

// TaxonomyAssignmentMutation represents an operation that mutates the TaxonomyAssignment nodes in the graph.
type TaxonomyAssignmentMutation struct {
	config
	op             Op
	typ            string
	id             *int
	assigned_at    *time.Time
	confidence     *float64
	addconfidence  *float64
	clearedFields  map[string]struct{}
	message        *string
	clearedmessage bool
	label          *int
	clearedlabel   bool
	done           bool
	oldValue       func(context.Context) (*TaxonomyAssignment, error)
	predicates     []predicate.TaxonomyAssignment
}

var _ ent.Mutation = (*TaxonomyAssignmentMutation)(nil)

// taxonomyassignmentOption allows management of the mutation configuration using functional options.
type taxonomyassignmentOption func(*TaxonomyAssignmentMutation)

// newTaxonomyAssignmentMutation creates new mutation for the TaxonomyAssignment entity.
func newTaxonomyAssignmentMutation(c config, op Op, opts ...taxonomyassignmentOption) *TaxonomyAssignmentMutation {
	m := &TaxonomyAssignmentMutation{
		config:        c,
		op:            op,
		typ:           TypeTaxonomyAssignment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaxonomyAssignmentID sets the ID field of the mutation.
func withTaxonomyAssignmentID(id int) taxonomyassignmentOption {
	return func(m *TaxonomyAssignmentMutation) {
		var (
			err   error
			once  sync.Once
			value *TaxonomyAssignment
		)
		m.oldValue = func(ctx context.Context) (*TaxonomyAssignment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaxonomyAssignment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaxonomyAssignment sets the old TaxonomyAssignment of the mutation.
func withTaxonomyAssignment(node *TaxonomyAssignment) taxonomyassignmentOption {
	return func(m *TaxonomyAssignmentMutation) {
		m.oldValue = func(context.Context) (*TaxonomyAssignment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaxonomyAssignmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaxonomyAssignmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaxonomyAssignmentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaxonomyAssignmentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaxonomyAssignment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMessageID sets the "message_id" field.
func (m *TaxonomyAssignmentMutation) SetMessageID(s string) {
	m.message = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *TaxonomyAssignmentMutation) MessageID() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the TaxonomyAssignment entity.
// If the TaxonomyAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaxonomyAssignmentMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *TaxonomyAssignmentMutation) ResetMessageID() {
	m.message = nil
}

// SetLabelID sets the "label_id" field.
func (m *TaxonomyAssignmentMutation) SetLabelID(i int) {
	m.label = &i
}

// LabelID returns the value of the "label_id" field in the mutation.
func (m *TaxonomyAssignmentMutation) LabelID() (r int, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabelID returns the old "label_id" field's value of the TaxonomyAssignment entity.
// If the TaxonomyAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaxonomyAssignmentMutation) OldLabelID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabelID: %w", err)
	}
	return oldValue.LabelID, nil
}

// ResetLabelID resets all changes to the "label_id" field.
func (m *TaxonomyAssignmentMutation) ResetLabelID() {
	m.label = nil
}

// SetAssignedAt sets the "assigned_at" field.
func (m *TaxonomyAssignmentMutation) SetAssignedAt(t time.Time) {
	m.assigned_at = &t
}

// AssignedAt returns the value of the "assigned_at" field in the mutation.
func (m *TaxonomyAssignmentMutation) AssignedAt() (r time.Time, exists bool) {
	v := m.assigned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedAt returns the old "assigned_at" field's value of the TaxonomyAssignment entity.
// If the TaxonomyAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaxonomyAssignmentMutation) OldAssignedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedAt: %w", err)
	}
	return oldValue.AssignedAt, nil
}

// ResetAssignedAt resets all changes to the "assigned_at" field.
func (m *TaxonomyAssignmentMutation) ResetAssignedAt() {
	m.assigned_at = nil
}

// SetConfidence sets the "confidence" field.
func (m *TaxonomyAssignmentMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *TaxonomyAssignmentMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the TaxonomyAssignment entity.
// If the TaxonomyAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaxonomyAssignmentMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *TaxonomyAssignmentMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *TaxonomyAssignmentMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *TaxonomyAssignmentMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[taxonomyassignment.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *TaxonomyAssignmentMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[taxonomyassignment.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *TaxonomyAssignmentMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, taxonomyassignment.FieldConfidence)
}

// ClearMessage clears the "message" edge to the EmailMessage entity.
func (m *TaxonomyAssignmentMutation) ClearMessage() {
	m.clearedmessage = true
	m.clearedFields[taxonomyassignment.FieldMessageID] = struct{}{}
}

// MessageCleared reports if the "message" edge to the EmailMessage entity was cleared.
func (m *TaxonomyAssignmentMutation) MessageCleared() bool {
	return m.clearedmessage
}

// MessageIDs returns the "message" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MessageID instead. It exists only for internal usage by the builders.
func (m *TaxonomyAssignmentMutation) MessageIDs() (ids []string) {
	if id := m.message; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMessage resets all changes to the "message" edge.
func (m *TaxonomyAssignmentMutation) ResetMessage() {
	m.message = nil
	m.clearedmessage = false
}

// ClearLabel clears the "label" edge to the TaxonomyLabel entity.
func (m *TaxonomyAssignmentMutation) ClearLabel() {
	m.clearedlabel = true
	m.clearedFields[taxonomyassignment.FieldLabelID] = struct{}{}
}

// LabelCleared reports if the "label" edge to the TaxonomyLabel entity was cleared.
func (m *TaxonomyAssignmentMutation) LabelCleared() bool {
	return m.clearedlabel
}

// LabelIDs returns the "label" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LabelID instead. It exists only for internal usage by the builders.
func (m *TaxonomyAssignmentMutation) LabelIDs() (ids []int) {
	if id := m.label; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLabel resets all changes to the "label" edge.
func (m *TaxonomyAssignmentMutation) ResetLabel() {
	m.label = nil
	m.clearedlabel = false
}

// Where appends a list predicates to the TaxonomyAssignmentMutation builder.
func (m *TaxonomyAssignmentMutation) Where(ps ...predicate.TaxonomyAssignment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaxonomyAssignmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaxonomyAssignmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaxonomyAssignment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaxonomyAssignmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaxonomyAssignmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaxonomyAssignment).
func (m *TaxonomyAssignmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaxonomyAssignmentMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.message != nil {
		fields = append(fields, taxonomyassignment.FieldMessageID)
	}
	if m.label != nil {
		fields = append(fields, taxonomyassignment.FieldLabelID)
	}
	if m.assigned_at != nil {
		fields = append(fields, taxonomyassignment.FieldAssignedAt)
	}
	if m.confidence != nil {
		fields = append(fields, taxonomyassignment.FieldConfidence)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaxonomyAssignmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taxonomyassignment.FieldMessageID:
		return m.MessageID()
	case taxonomyassignment.FieldLabelID:
		return m.LabelID()
	case taxonomyassignment.FieldAssignedAt:
		return m.AssignedAt()
	case taxonomyassignment.FieldConfidence:
		return m.Confidence()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaxonomyAssignmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taxonomyassignment.FieldMessageID:
		return m.OldMessageID(ctx)
	case taxonomyassignment.FieldLabelID:
		return m.OldLabelID(ctx)
	case taxonomyassignment.FieldAssignedAt:
		return m.OldAssignedAt(ctx)
	case taxonomyassignment.FieldConfidence:
		return m.OldConfidence(ctx)
	}
	return nil, fmt.Errorf("unknown TaxonomyAssignment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaxonomyAssignmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taxonomyassignment.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case taxonomyassignment.FieldLabelID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabelID(v)
		return nil
	case taxonomyassignment.FieldAssignedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedAt(v)
		return nil
	case taxonomyassignment.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown TaxonomyAssignment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaxonomyAssignmentMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, taxonomyassignment.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaxonomyAssignmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taxonomyassignment.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaxonomyAssignmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taxonomyassignment.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown TaxonomyAssignment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaxonomyAssignmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taxonomyassignment.FieldConfidence) {
		fields = append(fields, taxonomyassignment.FieldConfidence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaxonomyAssignmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaxonomyAssignmentMutation) ClearField(name string) error {
	switch name {
	case taxonomyassignment.FieldConfidence:
		m.ClearConfidence()
		return nil
	}
	return fmt.Errorf("unknown TaxonomyAssignment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaxonomyAssignmentMutation) ResetField(name string) error {
	switch name {
	case taxonomyassignment.FieldMessageID:
		m.ResetMessageID()
		return nil
	case taxonomyassignment.FieldLabelID:
		m.ResetLabelID()
		return nil
	case taxonomyassignment.FieldAssignedAt:
		m.ResetAssignedAt()
		return nil
	case taxonomyassignment.FieldConfidence:
		m.ResetConfidence()
		return nil
	}
	return fmt.Errorf("unknown TaxonomyAssignment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaxonomyAssignmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.message != nil {
		edges = append(edges, taxonomyassignment.EdgeMessage)
	}
	if m.label != nil {
		edges = append(edges, taxonomyassignment.EdgeLabel)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaxonomyAssignmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case taxonomyassignment.EdgeMessage:
		if id := m.message; id != nil {
			return []ent.Value{*id}
		}
	case taxonomyassignment.EdgeLabel:
		if id := m.label; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaxonomyAssignmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaxonomyAssignmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaxonomyAssignmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmessage {
		edges = append(edges, taxonomyassignment.EdgeMessage)
	}
	if m.clearedlabel {
		edges = append(edges, taxonomyassignment.EdgeLabel)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaxonomyAssignmentMutation) EdgeCleared(name string) bool {
	switch name {
	case taxonomyassignment.EdgeMessage:
		return m.clearedmessage
	case taxonomyassignment.EdgeLabel:
		return m.clearedlabel
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaxonomyAssignmentMutation) ClearEdge(name string) error {
	switch name {
	case taxonomyassignment.EdgeMessage:
		m.ClearMessage()
		return nil
	case taxonomyassignment.EdgeLabel:
		m.ClearLabel()
		return nil
	}
	return fmt.Errorf("unknown TaxonomyAssignment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaxonomyAssignmentMutation) ResetEdge(name string) error {
	switch name {
	case taxonomyassignment.EdgeMessage:
		m.ResetMessage()
		return nil
	case taxonomyassignment.EdgeLabel:
		m.ResetLabel()
		return nil
	}
	return fmt.Errorf("unknown TaxonomyAssignment edge %s", name)
}

// TaxonomyLabelMutation represents an operation that mutates the TaxonomyLabel nodes in the graph.
type TaxonomyLabelMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	level              *int
	addlevel           *int
	slug               *string
	name               *string
	description        *string
	retention_days     *int
	addretention_days  *int
	is_active          *bool
	gmail_label_id     *string
	last_sync_at       *time.Time
	last_sync_status   *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	parent             *int
	clearedparent      bool
	children           map[int]struct{}
	removedchildren    map[int]struct{}
	clearedchildren    bool
	assignments        map[int]struct{}
	removedassignments map[int]struct{}
	clearedassignments bool
	done               bool
	oldValue           func(context.Context) (*TaxonomyLabel, error)
	predicates         []predicate.TaxonomyLabel
}

var _ ent.Mutation = (*TaxonomyLabelMutation)(nil)

// taxonomylabelOption allows management of the mutation configuration using functional options.
type taxonomylabelOption func(*TaxonomyLabelMutation)

// newTaxonomyLabelMutation creates new mutation for the TaxonomyLabel entity.
func newTaxonomyLabelMutation(c config, op Op, opts ...taxonomylabelOption) *TaxonomyLabelMutation {
	m := &TaxonomyLabelMutation{
		config:        c,
		op:            op,
		typ:           TypeTaxonomyLabel,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaxonomyLabelID sets the ID field of the mutation.
func withTaxonomyLabelID(id int) taxonomylabelOption {
	return func(m *TaxonomyLabelMutation) {
		var (
			err   error
			once  sync.Once
			value *TaxonomyLabel
		)
		m.oldValue = func(ctx context.Context) (*TaxonomyLabel, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaxonomyLabel.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaxonomyLabel sets the old TaxonomyLabel of the mutation.
func withTaxonomyLabel(node *TaxonomyLabel) taxonomylabelOption {
	return func(m *TaxonomyLabelMutation) {
		m.oldValue = func(context.Context) (*TaxonomyLabel, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaxonomyLabelMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaxonomyLabelMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaxonomyLabelMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaxonomyLabelMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaxonomyLabel.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLevel sets the "level" field.
func (m *TaxonomyLabelMutation) SetLevel(i int) {
	m.level = &i
	m.addlevel = nil
}

// Level returns the value of the "level" field in the mutation.
func (m *TaxonomyLabelMutation) Level() (r int, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the TaxonomyLabel entity.
// If the TaxonomyLabel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaxonomyLabelMutation) OldLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// AddLevel adds i to the "level" field.
func (m *TaxonomyLabelMutation) AddLevel(i int) {
	if m.addlevel != nil {
		*m.addlevel += i
	} else {
		m.addlevel = &i
	}
}

// AddedLevel returns the value that was added to the "level" field in this mutation.
func (m *TaxonomyLabelMutation) AddedLevel() (r int, exists bool) {
	v := m.addlevel
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevel resets all changes to the "level" field.
func (m *TaxonomyLabelMutation) ResetLevel() {
	m.level = nil
	m.addlevel = nil
}

// SetSlug sets the "slug" field.
func (m *TaxonomyLabelMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *TaxonomyLabelMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the TaxonomyLabel entity.
// If the TaxonomyLabel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaxonomyLabelMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *TaxonomyLabelMutation) ResetSlug() {
	m.slug = nil
}

// SetName sets the "name" field.
func (m *TaxonomyLabelMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TaxonomyLabelMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the TaxonomyLabel entity.
// If the TaxonomyLabel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaxonomyLabelMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TaxonomyLabelMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *TaxonomyLabelMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaxonomyLabelMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the TaxonomyLabel entity.
// If the TaxonomyLabel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaxonomyLabelMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TaxonomyLabelMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[taxonomylabel.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TaxonomyLabelMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[taxonomylabel.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TaxonomyLabelMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, taxonomylabel.FieldDescription)
}

// SetParentID sets the "parent_id" field.
func (m *TaxonomyLabelMutation) SetParentID(i int) {
	m.parent = &i
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *TaxonomyLabelMutation) ParentID() (r int, exists bool) {
	v := m.parent
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the TaxonomyLabel entity.
// If the TaxonomyLabel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaxonomyLabelMutation) OldParentID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *TaxonomyLabelMutation) ClearParentID() {
	m.parent = nil
	m.clearedFields[taxonomylabel.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *TaxonomyLabelMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[taxonomylabel.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *TaxonomyLabelMutation) ResetParentID() {
	m.parent = nil
	delete(m.clearedFields, taxonomylabel.FieldParentID)
}

// SetRetentionDays sets the "retention_days" field.
func (m *TaxonomyLabelMutation) SetRetentionDays(i int) {
	m.retention_days = &i
	m.addretention_days = nil
}

// RetentionDays returns the value of the "retention_days" field in the mutation.
func (m *TaxonomyLabelMutation) RetentionDays() (r int, exists bool) {
	v := m.retention_days
	if v == nil {
		return
	}
	return *v, true
}

// OldRetentionDays returns the old "retention_days" field's value of the TaxonomyLabel entity.
// If the TaxonomyLabel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaxonomyLabelMutation) OldRetentionDays(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetentionDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetentionDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetentionDays: %w", err)
	}
	return oldValue.RetentionDays, nil
}

// AddRetentionDays adds i to the "retention_days" field.
func (m *TaxonomyLabelMutation) AddRetentionDays(i int) {
	if m.addretention_days != nil {
		*m.addretention_days += i
	} else {
		m.addretention_days = &i
	}
}

// AddedRetentionDays returns the value that was added to the "retention_days" field in this mutation.
func (m *TaxonomyLabelMutation) AddedRetentionDays() (r int, exists bool) {
	v := m.addretention_days
	if v == nil {
		return
	}
	return *v, true
}

// ClearRetentionDays clears the value of the "retention_days" field.
func (m *TaxonomyLabelMutation) ClearRetentionDays() {
	m.retention_days = nil
	m.addretention_days = nil
	m.clearedFields[taxonomylabel.FieldRetentionDays] = struct{}{}
}

// RetentionDaysCleared returns if the "retention_days" field was cleared in this mutation.
func (m *TaxonomyLabelMutation) RetentionDaysCleared() bool {
	_, ok := m.clearedFields[taxonomylabel.FieldRetentionDays]
	return ok
}

// ResetRetentionDays resets all changes to the "retention_days" field.
func (m *TaxonomyLabelMutation) ResetRetentionDays() {
	m.retention_days = nil
	m.addretention_days = nil
	delete(m.clearedFields, taxonomylabel.FieldRetentionDays)
}

// SetIsActive sets the "is_active" field.
func (m *TaxonomyLabelMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *TaxonomyLabelMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the TaxonomyLabel entity.
// If the TaxonomyLabel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaxonomyLabelMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *TaxonomyLabelMutation) ResetIsActive() {
	m.is_active = nil
}

// SetGmailLabelID sets the "gmail_label_id" field.
func (m *TaxonomyLabelMutation) SetGmailLabelID(s string) {
	m.gmail_label_id = &s
}

// GmailLabelID returns the value of the "gmail_label_id" field in the mutation.
func (m *TaxonomyLabelMutation) GmailLabelID() (r string, exists bool) {
	v := m.gmail_label_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGmailLabelID returns the old "gmail_label_id" field's value of the TaxonomyLabel entity.
// If the TaxonomyLabel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaxonomyLabelMutation) OldGmailLabelID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGmailLabelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGmailLabelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGmailLabelID: %w", err)
	}
	return oldValue.GmailLabelID, nil
}

// ClearGmailLabelID clears the value of the "gmail_label_id" field.
func (m *TaxonomyLabelMutation) ClearGmailLabelID() {
	m.gmail_label_id = nil
	m.clearedFields[taxonomylabel.FieldGmailLabelID] = struct{}{}
}

// GmailLabelIDCleared returns if the "gmail_label_id" field was cleared in this mutation.
func (m *TaxonomyLabelMutation) GmailLabelIDCleared() bool {
	_, ok := m.clearedFields[taxonomylabel.FieldGmailLabelID]
	return ok
}

// ResetGmailLabelID resets all changes to the "gmail_label_id" field.
func (m *TaxonomyLabelMutation) ResetGmailLabelID() {
	m.gmail_label_id = nil
	delete(m.clearedFields, taxonomylabel.FieldGmailLabelID)
}

// SetLastSyncAt sets the "last_sync_at" field.
func (m *TaxonomyLabelMutation) SetLastSyncAt(t time.Time) {
	m.last_sync_at = &t
}

// LastSyncAt returns the value of the "last_sync_at" field in the mutation.
func (m *TaxonomyLabelMutation) LastSyncAt() (r time.Time, exists bool) {
	v := m.last_sync_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSyncAt returns the old "last_sync_at" field's value of the TaxonomyLabel entity.
// If the TaxonomyLabel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaxonomyLabelMutation) OldLastSyncAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSyncAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSyncAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSyncAt: %w", err)
	}
	return oldValue.LastSyncAt, nil
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (m *TaxonomyLabelMutation) ClearLastSyncAt() {
	m.last_sync_at = nil
	m.clearedFields[taxonomylabel.FieldLastSyncAt] = struct{}{}
}

// LastSyncAtCleared returns if the "last_sync_at" field was cleared in this mutation.
func (m *TaxonomyLabelMutation) LastSyncAtCleared() bool {
	_, ok := m.clearedFields[taxonomylabel.FieldLastSyncAt]
	return ok
}

// ResetLastSyncAt resets all changes to the "last_sync_at" field.
func (m *TaxonomyLabelMutation) ResetLastSyncAt() {
	m.last_sync_at = nil
	delete(m.clearedFields, taxonomylabel.FieldLastSyncAt)
}

// SetLastSyncStatus sets the "last_sync_status" field.
func (m *TaxonomyLabelMutation) SetLastSyncStatus(s string) {
	m.last_sync_status = &s
}

// LastSyncStatus returns the value of the "last_sync_status" field in the mutation.
func (m *TaxonomyLabelMutation) LastSyncStatus() (r string, exists bool) {
	v := m.last_sync_status
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSyncStatus returns the old "last_sync_status" field's value of the TaxonomyLabel entity.
// If the TaxonomyLabel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaxonomyLabelMutation) OldLastSyncStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSyncStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSyncStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSyncStatus: %w", err)
	}
	return oldValue.LastSyncStatus, nil
}

// ClearLastSyncStatus clears the value of the "last_sync_status" field.
func (m *TaxonomyLabelMutation) ClearLastSyncStatus() {
	m.last_sync_status = nil
	m.clearedFields[taxonomylabel.FieldLastSyncStatus] = struct{}{}
}

// LastSyncStatusCleared returns if the "last_sync_status" field was cleared in this mutation.
func (m *TaxonomyLabelMutation) LastSyncStatusCleared() bool {
	_, ok := m.clearedFields[taxonomylabel.FieldLastSyncStatus]
	return ok
}

// ResetLastSyncStatus resets all changes to the "last_sync_status" field.
func (m *TaxonomyLabelMutation) ResetLastSyncStatus() {
	m.last_sync_status = nil
	delete(m.clearedFields, taxonomylabel.FieldLastSyncStatus)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaxonomyLabelMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaxonomyLabelMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TaxonomyLabel entity.
// If the TaxonomyLabel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaxonomyLabelMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaxonomyLabelMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearParent clears the "parent" edge to the TaxonomyLabel entity.
func (m *TaxonomyLabelMutation) ClearParent() {
	m.clearedparent = true
	m.clearedFields[taxonomylabel.FieldParentID] = struct{}{}
}

// ParentCleared reports if the "parent" edge to the TaxonomyLabel entity was cleared.
func (m *TaxonomyLabelMutation) ParentCleared() bool {
	return m.ParentIDCleared() || m.clearedparent
}

// ParentIDs returns the "parent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParentID instead. It exists only for internal usage by the builders.
func (m *TaxonomyLabelMutation) ParentIDs() (ids []int) {
	if id := m.parent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParent resets all changes to the "parent" edge.
func (m *TaxonomyLabelMutation) ResetParent() {
	m.parent = nil
	m.clearedparent = false
}

// AddChildIDs adds the "children" edge to the TaxonomyLabel entity by ids.
func (m *TaxonomyLabelMutation) AddChildIDs(ids ...int) {
	if m.children == nil {
		m.children = make(map[int]struct{})
	}
	for i := range ids {
		m.children[ids[i]] = struct{}{}
	}
}

// ClearChildren clears the "children" edge to the TaxonomyLabel entity.
func (m *TaxonomyLabelMutation) ClearChildren() {
	m.clearedchildren = true
}

// ChildrenCleared reports if the "children" edge to the TaxonomyLabel entity was cleared.
func (m *TaxonomyLabelMutation) ChildrenCleared() bool {
	return m.clearedchildren
}

// RemoveChildIDs removes the "children" edge to the TaxonomyLabel entity by IDs.
func (m *TaxonomyLabelMutation) RemoveChildIDs(ids ...int) {
	if m.removedchildren == nil {
		m.removedchildren = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.children, ids[i])
		m.removedchildren[ids[i]] = struct{}{}
	}
}

// RemovedChildren returns the removed IDs of the "children" edge to the TaxonomyLabel entity.
func (m *TaxonomyLabelMutation) RemovedChildrenIDs() (ids []int) {
	for id := range m.removedchildren {
		ids = append(ids, id)
	}
	return
}

// ChildrenIDs returns the "children" edge IDs in the mutation.
func (m *TaxonomyLabelMutation) ChildrenIDs() (ids []int) {
	for id := range m.children {
		ids = append(ids, id)
	}
	return
}

// ResetChildren resets all changes to the "children" edge.
func (m *TaxonomyLabelMutation) ResetChildren() {
	m.children = nil
	m.clearedchildren = false
	m.removedchildren = nil
}

// AddAssignmentIDs adds the "assignments" edge to the TaxonomyAssignment entity by ids.
func (m *TaxonomyLabelMutation) AddAssignmentIDs(ids ...int) {
	if m.assignments == nil {
		m.assignments = make(map[int]struct{})
	}
	for i := range ids {
		m.assignments[ids[i]] = struct{}{}
	}
}

// ClearAssignments clears the "assignments" edge to the TaxonomyAssignment entity.
func (m *TaxonomyLabelMutation) ClearAssignments() {
	m.clearedassignments = true
}

// AssignmentsCleared reports if the "assignments" edge to the TaxonomyAssignment entity was cleared.
func (m *TaxonomyLabelMutation) AssignmentsCleared() bool {
	return m.clearedassignments
}

// RemoveAssignmentIDs removes the "assignments" edge to the TaxonomyAssignment entity by IDs.
func (m *TaxonomyLabelMutation) RemoveAssignmentIDs(ids ...int) {
	if m.removedassignments == nil {
		m.removedassignments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.assignments, ids[i])
		m.removedassignments[ids[i]] = struct{}{}
	}
}

// RemovedAssignments returns the removed IDs of the "assignments" edge to the TaxonomyAssignment entity.
func (m *TaxonomyLabelMutation) RemovedAssignmentsIDs() (ids []int) {
	for id := range m.removedassignments {
		ids = append(ids, id)
	}
	return
}

// AssignmentsIDs returns the "assignments" edge IDs in the mutation.
func (m *TaxonomyLabelMutation) AssignmentsIDs() (ids []int) {
	for id := range m.assignments {
		ids = append(ids, id)
	}
	return
}

// ResetAssignments resets all changes to the "assignments" edge.
func (m *TaxonomyLabelMutation) ResetAssignments() {
	m.assignments = nil
	m.clearedassignments = false
	m.removedassignments = nil
}

// Where appends a list predicates to the TaxonomyLabelMutation builder.
func (m *TaxonomyLabelMutation) Where(ps ...predicate.TaxonomyLabel) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaxonomyLabelMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaxonomyLabelMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaxonomyLabel, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaxonomyLabelMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaxonomyLabelMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaxonomyLabel).
func (m *TaxonomyLabelMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaxonomyLabelMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.level != nil {
		fields = append(fields, taxonomylabel.FieldLevel)
	}
	if m.slug != nil {
		fields = append(fields, taxonomylabel.FieldSlug)
	}
	if m.name != nil {
		fields = append(fields, taxonomylabel.FieldName)
	}
	if m.description != nil {
		fields = append(fields, taxonomylabel.FieldDescription)
	}
	if m.parent != nil {
		fields = append(fields, taxonomylabel.FieldParentID)
	}
	if m.retention_days != nil {
		fields = append(fields, taxonomylabel.FieldRetentionDays)
	}
	if m.is_active != nil {
		fields = append(fields, taxonomylabel.FieldIsActive)
	}
	if m.gmail_label_id != nil {
		fields = append(fields, taxonomylabel.FieldGmailLabelID)
	}
	if m.last_sync_at != nil {
		fields = append(fields, taxonomylabel.FieldLastSyncAt)
	}
	if m.last_sync_status != nil {
		fields = append(fields, taxonomylabel.FieldLastSyncStatus)
	}
	if m.created_at != nil {
		fields = append(fields, taxonomylabel.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaxonomyLabelMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taxonomylabel.FieldLevel:
		return m.Level()
	case taxonomylabel.FieldSlug:
		return m.Slug()
	case taxonomylabel.FieldName:
		return m.Name()
	case taxonomylabel.FieldDescription:
		return m.Description()
	case taxonomylabel.FieldParentID:
		return m.ParentID()
	case taxonomylabel.FieldRetentionDays:
		return m.RetentionDays()
	case taxonomylabel.FieldIsActive:
		return m.IsActive()
	case taxonomylabel.FieldGmailLabelID:
		return m.GmailLabelID()
	case taxonomylabel.FieldLastSyncAt:
		return m.LastSyncAt()
	case taxonomylabel.FieldLastSyncStatus:
		return m.LastSyncStatus()
	case taxonomylabel.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaxonomyLabelMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taxonomylabel.FieldLevel:
		return m.OldLevel(ctx)
	case taxonomylabel.FieldSlug:
		return m.OldSlug(ctx)
	case taxonomylabel.FieldName:
		return m.OldName(ctx)
	case taxonomylabel.FieldDescription:
		return m.OldDescription(ctx)
	case taxonomylabel.FieldParentID:
		return m.OldParentID(ctx)
	case taxonomylabel.FieldRetentionDays:
		return m.OldRetentionDays(ctx)
	case taxonomylabel.FieldIsActive:
		return m.OldIsActive(ctx)
	case taxonomylabel.FieldGmailLabelID:
		return m.OldGmailLabelID(ctx)
	case taxonomylabel.FieldLastSyncAt:
		return m.OldLastSyncAt(ctx)
	case taxonomylabel.FieldLastSyncStatus:
		return m.OldLastSyncStatus(ctx)
	case taxonomylabel.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaxonomyLabel field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaxonomyLabelMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taxonomylabel.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case taxonomylabel.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case taxonomylabel.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case taxonomylabel.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case taxonomylabel.FieldParentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case taxonomylabel.FieldRetentionDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetentionDays(v)
		return nil
	case taxonomylabel.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case taxonomylabel.FieldGmailLabelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGmailLabelID(v)
		return nil
	case taxonomylabel.FieldLastSyncAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSyncAt(v)
		return nil
	case taxonomylabel.FieldLastSyncStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSyncStatus(v)
		return nil
	case taxonomylabel.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaxonomyLabel field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaxonomyLabelMutation) AddedFields() []string {
	var fields []string
	if m.addlevel != nil {
		fields = append(fields, taxonomylabel.FieldLevel)
	}
	if m.addretention_days != nil {
		fields = append(fields, taxonomylabel.FieldRetentionDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaxonomyLabelMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taxonomylabel.FieldLevel:
		return m.AddedLevel()
	case taxonomylabel.FieldRetentionDays:
		return m.AddedRetentionDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaxonomyLabelMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taxonomylabel.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevel(v)
		return nil
	case taxonomylabel.FieldRetentionDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetentionDays(v)
		return nil
	}
	return fmt.Errorf("unknown TaxonomyLabel numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaxonomyLabelMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taxonomylabel.FieldDescription) {
		fields = append(fields, taxonomylabel.FieldDescription)
	}
	if m.FieldCleared(taxonomylabel.FieldParentID) {
		fields = append(fields, taxonomylabel.FieldParentID)
	}
	if m.FieldCleared(taxonomylabel.FieldRetentionDays) {
		fields = append(fields, taxonomylabel.FieldRetentionDays)
	}
	if m.FieldCleared(taxonomylabel.FieldGmailLabelID) {
		fields = append(fields, taxonomylabel.FieldGmailLabelID)
	}
	if m.FieldCleared(taxonomylabel.FieldLastSyncAt) {
		fields = append(fields, taxonomylabel.FieldLastSyncAt)
	}
	if m.FieldCleared(taxonomylabel.FieldLastSyncStatus) {
		fields = append(fields, taxonomylabel.FieldLastSyncStatus)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaxonomyLabelMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaxonomyLabelMutation) ClearField(name string) error {
	switch name {
	case taxonomylabel.FieldDescription:
		m.ClearDescription()
		return nil
	case taxonomylabel.FieldParentID:
		m.ClearParentID()
		return nil
	case taxonomylabel.FieldRetentionDays:
		m.ClearRetentionDays()
		return nil
	case taxonomylabel.FieldGmailLabelID:
		m.ClearGmailLabelID()
		return nil
	case taxonomylabel.FieldLastSyncAt:
		m.ClearLastSyncAt()
		return nil
	case taxonomylabel.FieldLastSyncStatus:
		m.ClearLastSyncStatus()
		return nil
	}
	return fmt.Errorf("unknown TaxonomyLabel nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaxonomyLabelMutation) ResetField(name string) error {
	switch name {
	case taxonomylabel.FieldLevel:
		m.ResetLevel()
		return nil
	case taxonomylabel.FieldSlug:
		m.ResetSlug()
		return nil
	case taxonomylabel.FieldName:
		m.ResetName()
		return nil
	case taxonomylabel.FieldDescription:
		m.ResetDescription()
		return nil
	case taxonomylabel.FieldParentID:
		m.ResetParentID()
		return nil
	case taxonomylabel.FieldRetentionDays:
		m.ResetRetentionDays()
		return nil
	case taxonomylabel.FieldIsActive:
		m.ResetIsActive()
		return nil
	case taxonomylabel.FieldGmailLabelID:
		m.ResetGmailLabelID()
		return nil
	case taxonomylabel.FieldLastSyncAt:
		m.ResetLastSyncAt()
		return nil
	case taxonomylabel.FieldLastSyncStatus:
		m.ResetLastSyncStatus()
		return nil
	case taxonomylabel.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TaxonomyLabel field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaxonomyLabelMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.parent != nil {
		edges = append(edges, taxonomylabel.EdgeParent)
	}
	if m.children != nil {
		edges = append(edges, taxonomylabel.EdgeChildren)
	}
	if m.assignments != nil {
		edges = append(edges, taxonomylabel.EdgeAssignments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaxonomyLabelMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case taxonomylabel.EdgeParent:
		if id := m.parent; id != nil {
			return []ent.Value{*id}
		}
	case taxonomylabel.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.children))
		for id := range m.children {
			ids = append(ids, id)
		}
		return ids
	case taxonomylabel.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.assignments))
		for id := range m.assignments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaxonomyLabelMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedchildren != nil {
		edges = append(edges, taxonomylabel.EdgeChildren)
	}
	if m.removedassignments != nil {
		edges = append(edges, taxonomylabel.EdgeAssignments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaxonomyLabelMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case taxonomylabel.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.removedchildren))
		for id := range m.removedchildren {
			ids = append(ids, id)
		}
		return ids
	case taxonomylabel.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.removedassignments))
		for id := range m.removedassignments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaxonomyLabelMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedparent {
		edges = append(edges, taxonomylabel.EdgeParent)
	}
	if m.clearedchildren {
		edges = append(edges, taxonomylabel.EdgeChildren)
	}
	if m.clearedassignments {
		edges = append(edges, taxonomylabel.EdgeAssignments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaxonomyLabelMutation) EdgeCleared(name string) bool {
	switch name {
	case taxonomylabel.EdgeParent:
		return m.clearedparent
	case taxonomylabel.EdgeChildren:
		return m.clearedchildren
	case taxonomylabel.EdgeAssignments:
		return m.clearedassignments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaxonomyLabelMutation) ClearEdge(name string) error {
	switch name {
	case taxonomylabel.EdgeParent:
		m.ClearParent()
		return nil
	}
	return fmt.Errorf("unknown TaxonomyLabel unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaxonomyLabelMutation) ResetEdge(name string) error {
	switch name {
	case taxonomylabel.EdgeParent:
		m.ResetParent()
		return nil
	case taxonomylabel.EdgeChildren:
		m.ResetChildren()
		return nil
	case taxonomylabel.EdgeAssignments:
		m.ResetAssignments()
		return nil
	}
	return fmt.Errorf("unknown TaxonomyLabel edge %s", name)
}
