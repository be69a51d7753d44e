// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mailscope/mailscope/ent/emailcluster"
	"github.com/mailscope/mailscope/ent/emailmessage"
	"github.com/mailscope/mailscope/ent/predicate"
)

// EmailClusterUpdate is the builder for updating EmailCluster entities.
type EmailClusterUpdate struct {
	config
	hooks    []Hook
	mutation *EmailClusterMutation
}

// Where appends a list predicates to the EmailClusterUpdate builder.
func (_u *EmailClusterUpdate) Where(ps ...predicate.EmailCluster) *EmailClusterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFromDomain sets the "from_domain" field.
func (_u *EmailClusterUpdate) SetFromDomain(v string) *EmailClusterUpdate {
	_u.mutation.SetFromDomain(v)
	return _u
}

// SetNillableFromDomain sets the "from_domain" field if the given value is not nil.
func (_u *EmailClusterUpdate) SetNillableFromDomain(v *string) *EmailClusterUpdate {
	if v != nil {
		_u.SetFromDomain(*v)
	}
	return _u
}

// ClearFromDomain clears the value of the "from_domain" field.
func (_u *EmailClusterUpdate) ClearFromDomain() *EmailClusterUpdate {
	_u.mutation.ClearFromDomain()
	return _u
}

// SetSubjectNormalized sets the "subject_normalized" field.
func (_u *EmailClusterUpdate) SetSubjectNormalized(v string) *EmailClusterUpdate {
	_u.mutation.SetSubjectNormalized(v)
	return _u
}

// SetNillableSubjectNormalized sets the "subject_normalized" field if the given value is not nil.
func (_u *EmailClusterUpdate) SetNillableSubjectNormalized(v *string) *EmailClusterUpdate {
	if v != nil {
		_u.SetSubjectNormalized(*v)
	}
	return _u
}

// ClearSubjectNormalized clears the value of the "subject_normalized" field.
func (_u *EmailClusterUpdate) ClearSubjectNormalized() *EmailClusterUpdate {
	_u.mutation.ClearSubjectNormalized()
	return _u
}

// SetSimilarityThreshold sets the "similarity_threshold" field.
func (_u *EmailClusterUpdate) SetSimilarityThreshold(v float64) *EmailClusterUpdate {
	_u.mutation.ResetSimilarityThreshold()
	_u.mutation.SetSimilarityThreshold(v)
	return _u
}

// SetNillableSimilarityThreshold sets the "similarity_threshold" field if the given value is not nil.
func (_u *EmailClusterUpdate) SetNillableSimilarityThreshold(v *float64) *EmailClusterUpdate {
	if v != nil {
		_u.SetSimilarityThreshold(*v)
	}
	return _u
}

// AddSimilarityThreshold adds value to the "similarity_threshold" field.
func (_u *EmailClusterUpdate) AddSimilarityThreshold(v float64) *EmailClusterUpdate {
	_u.mutation.AddSimilarityThreshold(v)
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *EmailClusterUpdate) SetDisplayName(v string) *EmailClusterUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *EmailClusterUpdate) SetNillableDisplayName(v *string) *EmailClusterUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *EmailClusterUpdate) ClearDisplayName() *EmailClusterUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetFrequencyLabel sets the "frequency_label" field.
func (_u *EmailClusterUpdate) SetFrequencyLabel(v string) *EmailClusterUpdate {
	_u.mutation.SetFrequencyLabel(v)
	return _u
}

// SetNillableFrequencyLabel sets the "frequency_label" field if the given value is not nil.
func (_u *EmailClusterUpdate) SetNillableFrequencyLabel(v *string) *EmailClusterUpdate {
	if v != nil {
		_u.SetFrequencyLabel(*v)
	}
	return _u
}

// ClearFrequencyLabel clears the value of the "frequency_label" field.
func (_u *EmailClusterUpdate) ClearFrequencyLabel() *EmailClusterUpdate {
	_u.mutation.ClearFrequencyLabel()
	return _u
}

// SetUnreadLabel sets the "unread_label" field.
func (_u *EmailClusterUpdate) SetUnreadLabel(v string) *EmailClusterUpdate {
	_u.mutation.SetUnreadLabel(v)
	return _u
}

// SetNillableUnreadLabel sets the "unread_label" field if the given value is not nil.
func (_u *EmailClusterUpdate) SetNillableUnreadLabel(v *string) *EmailClusterUpdate {
	if v != nil {
		_u.SetUnreadLabel(*v)
	}
	return _u
}

// ClearUnreadLabel clears the value of the "unread_label" field.
func (_u *EmailClusterUpdate) ClearUnreadLabel() *EmailClusterUpdate {
	_u.mutation.ClearUnreadLabel()
	return _u
}

// SetCategory sets the "category" field.
func (_u *EmailClusterUpdate) SetCategory(v string) *EmailClusterUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *EmailClusterUpdate) SetNillableCategory(v *string) *EmailClusterUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *EmailClusterUpdate) ClearCategory() *EmailClusterUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetSubcategory sets the "subcategory" field.
func (_u *EmailClusterUpdate) SetSubcategory(v string) *EmailClusterUpdate {
	_u.mutation.SetSubcategory(v)
	return _u
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_u *EmailClusterUpdate) SetNillableSubcategory(v *string) *EmailClusterUpdate {
	if v != nil {
		_u.SetSubcategory(*v)
	}
	return _u
}

// ClearSubcategory clears the value of the "subcategory" field.
func (_u *EmailClusterUpdate) ClearSubcategory() *EmailClusterUpdate {
	_u.mutation.ClearSubcategory()
	return _u
}

// SetLabelVersion sets the "label_version" field.
func (_u *EmailClusterUpdate) SetLabelVersion(v string) *EmailClusterUpdate {
	_u.mutation.SetLabelVersion(v)
	return _u
}

// SetNillableLabelVersion sets the "label_version" field if the given value is not nil.
func (_u *EmailClusterUpdate) SetNillableLabelVersion(v *string) *EmailClusterUpdate {
	if v != nil {
		_u.SetLabelVersion(*v)
	}
	return _u
}

// ClearLabelVersion clears the value of the "label_version" field.
func (_u *EmailClusterUpdate) ClearLabelVersion() *EmailClusterUpdate {
	_u.mutation.ClearLabelVersion()
	return _u
}

// AddMessageIDs adds the "messages" edge to the EmailMessage entity by IDs.
func (_u *EmailClusterUpdate) AddMessageIDs(ids ...string) *EmailClusterUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the EmailMessage entity.
func (_u *EmailClusterUpdate) AddMessages(v ...*EmailMessage) *EmailClusterUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the EmailClusterMutation object of the builder.
func (_u *EmailClusterUpdate) Mutation() *EmailClusterMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the EmailMessage entity.
func (_u *EmailClusterUpdate) ClearMessages() *EmailClusterUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to EmailMessage entities by IDs.
func (_u *EmailClusterUpdate) RemoveMessageIDs(ids ...string) *EmailClusterUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to EmailMessage entities.
func (_u *EmailClusterUpdate) RemoveMessages(v ...*EmailMessage) *EmailClusterUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmailClusterUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailClusterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmailClusterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailClusterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EmailClusterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(emailcluster.Table, emailcluster.Columns, sqlgraph.NewFieldSpec(emailcluster.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FromDomain(); ok {
		_spec.SetField(emailcluster.FieldFromDomain, field.TypeString, value)
	}
	if _u.mutation.FromDomainCleared() {
		_spec.ClearField(emailcluster.FieldFromDomain, field.TypeString)
	}
	if value, ok := _u.mutation.SubjectNormalized(); ok {
		_spec.SetField(emailcluster.FieldSubjectNormalized, field.TypeString, value)
	}
	if _u.mutation.SubjectNormalizedCleared() {
		_spec.ClearField(emailcluster.FieldSubjectNormalized, field.TypeString)
	}
	if value, ok := _u.mutation.SimilarityThreshold(); ok {
		_spec.SetField(emailcluster.FieldSimilarityThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSimilarityThreshold(); ok {
		_spec.AddField(emailcluster.FieldSimilarityThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(emailcluster.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(emailcluster.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.FrequencyLabel(); ok {
		_spec.SetField(emailcluster.FieldFrequencyLabel, field.TypeString, value)
	}
	if _u.mutation.FrequencyLabelCleared() {
		_spec.ClearField(emailcluster.FieldFrequencyLabel, field.TypeString)
	}
	if value, ok := _u.mutation.UnreadLabel(); ok {
		_spec.SetField(emailcluster.FieldUnreadLabel, field.TypeString, value)
	}
	if _u.mutation.UnreadLabelCleared() {
		_spec.ClearField(emailcluster.FieldUnreadLabel, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(emailcluster.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(emailcluster.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Subcategory(); ok {
		_spec.SetField(emailcluster.FieldSubcategory, field.TypeString, value)
	}
	if _u.mutation.SubcategoryCleared() {
		_spec.ClearField(emailcluster.FieldSubcategory, field.TypeString)
	}
	if value, ok := _u.mutation.LabelVersion(); ok {
		_spec.SetField(emailcluster.FieldLabelVersion, field.TypeString, value)
	}
	if _u.mutation.LabelVersionCleared() {
		_spec.ClearField(emailcluster.FieldLabelVersion, field.TypeString)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   emailcluster.MessagesTable,
			Columns: []string{emailcluster.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   emailcluster.MessagesTable,
			Columns: []string{emailcluster.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   emailcluster.MessagesTable,
			Columns: []string{emailcluster.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emailcluster.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmailClusterUpdateOne is the builder for updating a single EmailCluster entity.
type EmailClusterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmailClusterMutation
}

// SetFromDomain sets the "from_domain" field.
func (_u *EmailClusterUpdateOne) SetFromDomain(v string) *EmailClusterUpdateOne {
	_u.mutation.SetFromDomain(v)
	return _u
}

// SetNillableFromDomain sets the "from_domain" field if the given value is not nil.
func (_u *EmailClusterUpdateOne) SetNillableFromDomain(v *string) *EmailClusterUpdateOne {
	if v != nil {
		_u.SetFromDomain(*v)
	}
	return _u
}

// ClearFromDomain clears the value of the "from_domain" field.
func (_u *EmailClusterUpdateOne) ClearFromDomain() *EmailClusterUpdateOne {
	_u.mutation.ClearFromDomain()
	return _u
}

// SetSubjectNormalized sets the "subject_normalized" field.
func (_u *EmailClusterUpdateOne) SetSubjectNormalized(v string) *EmailClusterUpdateOne {
	_u.mutation.SetSubjectNormalized(v)
	return _u
}

// SetNillableSubjectNormalized sets the "subject_normalized" field if the given value is not nil.
func (_u *EmailClusterUpdateOne) SetNillableSubjectNormalized(v *string) *EmailClusterUpdateOne {
	if v != nil {
		_u.SetSubjectNormalized(*v)
	}
	return _u
}

// ClearSubjectNormalized clears the value of the "subject_normalized" field.
func (_u *EmailClusterUpdateOne) ClearSubjectNormalized() *EmailClusterUpdateOne {
	_u.mutation.ClearSubjectNormalized()
	return _u
}

// SetSimilarityThreshold sets the "similarity_threshold" field.
func (_u *EmailClusterUpdateOne) SetSimilarityThreshold(v float64) *EmailClusterUpdateOne {
	_u.mutation.ResetSimilarityThreshold()
	_u.mutation.SetSimilarityThreshold(v)
	return _u
}

// SetNillableSimilarityThreshold sets the "similarity_threshold" field if the given value is not nil.
func (_u *EmailClusterUpdateOne) SetNillableSimilarityThreshold(v *float64) *EmailClusterUpdateOne {
	if v != nil {
		_u.SetSimilarityThreshold(*v)
	}
	return _u
}

// AddSimilarityThreshold adds value to the "similarity_threshold" field.
func (_u *EmailClusterUpdateOne) AddSimilarityThreshold(v float64) *EmailClusterUpdateOne {
	_u.mutation.AddSimilarityThreshold(v)
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *EmailClusterUpdateOne) SetDisplayName(v string) *EmailClusterUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *EmailClusterUpdateOne) SetNillableDisplayName(v *string) *EmailClusterUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *EmailClusterUpdateOne) ClearDisplayName() *EmailClusterUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetFrequencyLabel sets the "frequency_label" field.
func (_u *EmailClusterUpdateOne) SetFrequencyLabel(v string) *EmailClusterUpdateOne {
	_u.mutation.SetFrequencyLabel(v)
	return _u
}

// SetNillableFrequencyLabel sets the "frequency_label" field if the given value is not nil.
func (_u *EmailClusterUpdateOne) SetNillableFrequencyLabel(v *string) *EmailClusterUpdateOne {
	if v != nil {
		_u.SetFrequencyLabel(*v)
	}
	return _u
}

// ClearFrequencyLabel clears the value of the "frequency_label" field.
func (_u *EmailClusterUpdateOne) ClearFrequencyLabel() *EmailClusterUpdateOne {
	_u.mutation.ClearFrequencyLabel()
	return _u
}

// SetUnreadLabel sets the "unread_label" field.
func (_u *EmailClusterUpdateOne) SetUnreadLabel(v string) *EmailClusterUpdateOne {
	_u.mutation.SetUnreadLabel(v)
	return _u
}

// SetNillableUnreadLabel sets the "unread_label" field if the given value is not nil.
func (_u *EmailClusterUpdateOne) SetNillableUnreadLabel(v *string) *EmailClusterUpdateOne {
	if v != nil {
		_u.SetUnreadLabel(*v)
	}
	return _u
}

// ClearUnreadLabel clears the value of the "unread_label" field.
func (_u *EmailClusterUpdateOne) ClearUnreadLabel() *EmailClusterUpdateOne {
	_u.mutation.ClearUnreadLabel()
	return _u
}

// SetCategory sets the "category" field.
func (_u *EmailClusterUpdateOne) SetCategory(v string) *EmailClusterUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *EmailClusterUpdateOne) SetNillableCategory(v *string) *EmailClusterUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *EmailClusterUpdateOne) ClearCategory() *EmailClusterUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetSubcategory sets the "subcategory" field.
func (_u *EmailClusterUpdateOne) SetSubcategory(v string) *EmailClusterUpdateOne {
	_u.mutation.SetSubcategory(v)
	return _u
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_u *EmailClusterUpdateOne) SetNillableSubcategory(v *string) *EmailClusterUpdateOne {
	if v != nil {
		_u.SetSubcategory(*v)
	}
	return _u
}

// ClearSubcategory clears the value of the "subcategory" field.
func (_u *EmailClusterUpdateOne) ClearSubcategory() *EmailClusterUpdateOne {
	_u.mutation.ClearSubcategory()
	return _u
}

// SetLabelVersion sets the "label_version" field.
func (_u *EmailClusterUpdateOne) SetLabelVersion(v string) *EmailClusterUpdateOne {
	_u.mutation.SetLabelVersion(v)
	return _u
}

// SetNillableLabelVersion sets the "label_version" field if the given value is not nil.
func (_u *EmailClusterUpdateOne) SetNillableLabelVersion(v *string) *EmailClusterUpdateOne {
	if v != nil {
		_u.SetLabelVersion(*v)
	}
	return _u
}

// ClearLabelVersion clears the value of the "label_version" field.
func (_u *EmailClusterUpdateOne) ClearLabelVersion() *EmailClusterUpdateOne {
	_u.mutation.ClearLabelVersion()
	return _u
}

// AddMessageIDs adds the "messages" edge to the EmailMessage entity by IDs.
func (_u *EmailClusterUpdateOne) AddMessageIDs(ids ...string) *EmailClusterUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the EmailMessage entity.
func (_u *EmailClusterUpdateOne) AddMessages(v ...*EmailMessage) *EmailClusterUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the EmailClusterMutation object of the builder.
func (_u *EmailClusterUpdateOne) Mutation() *EmailClusterMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the EmailMessage entity.
func (_u *EmailClusterUpdateOne) ClearMessages() *EmailClusterUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to EmailMessage entities by IDs.
func (_u *EmailClusterUpdateOne) RemoveMessageIDs(ids ...string) *EmailClusterUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to EmailMessage entities.
func (_u *EmailClusterUpdateOne) RemoveMessages(v ...*EmailMessage) *EmailClusterUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Where appends a list predicates to the EmailClusterUpdate builder.
func (_u *EmailClusterUpdateOne) Where(ps ...predicate.EmailCluster) *EmailClusterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmailClusterUpdateOne) Select(field string, fields ...string) *EmailClusterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EmailCluster entity.
func (_u *EmailClusterUpdateOne) Save(ctx context.Context) (*EmailCluster, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailClusterUpdateOne) SaveX(ctx context.Context) *EmailCluster {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmailClusterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailClusterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EmailClusterUpdateOne) sqlSave(ctx context.Context) (_node *EmailCluster, err error) {
	_spec := sqlgraph.NewUpdateSpec(emailcluster.Table, emailcluster.Columns, sqlgraph.NewFieldSpec(emailcluster.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EmailCluster.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, emailcluster.FieldID)
		for _, f := range fields {
			if !emailcluster.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != emailcluster.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FromDomain(); ok {
		_spec.SetField(emailcluster.FieldFromDomain, field.TypeString, value)
	}
	if _u.mutation.FromDomainCleared() {
		_spec.ClearField(emailcluster.FieldFromDomain, field.TypeString)
	}
	if value, ok := _u.mutation.SubjectNormalized(); ok {
		_spec.SetField(emailcluster.FieldSubjectNormalized, field.TypeString, value)
	}
	if _u.mutation.SubjectNormalizedCleared() {
		_spec.ClearField(emailcluster.FieldSubjectNormalized, field.TypeString)
	}
	if value, ok := _u.mutation.SimilarityThreshold(); ok {
		_spec.SetField(emailcluster.FieldSimilarityThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSimilarityThreshold(); ok {
		_spec.AddField(emailcluster.FieldSimilarityThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(emailcluster.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(emailcluster.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.FrequencyLabel(); ok {
		_spec.SetField(emailcluster.FieldFrequencyLabel, field.TypeString, value)
	}
	if _u.mutation.FrequencyLabelCleared() {
		_spec.ClearField(emailcluster.FieldFrequencyLabel, field.TypeString)
	}
	if value, ok := _u.mutation.UnreadLabel(); ok {
		_spec.SetField(emailcluster.FieldUnreadLabel, field.TypeString, value)
	}
	if _u.mutation.UnreadLabelCleared() {
		_spec.ClearField(emailcluster.FieldUnreadLabel, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(emailcluster.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(emailcluster.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Subcategory(); ok {
		_spec.SetField(emailcluster.FieldSubcategory, field.TypeString, value)
	}
	if _u.mutation.SubcategoryCleared() {
		_spec.ClearField(emailcluster.FieldSubcategory, field.TypeString)
	}
	if value, ok := _u.mutation.LabelVersion(); ok {
		_spec.SetField(emailcluster.FieldLabelVersion, field.TypeString, value)
	}
	if _u.mutation.LabelVersionCleared() {
		_spec.ClearField(emailcluster.FieldLabelVersion, field.TypeString)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   emailcluster.MessagesTable,
			Columns: []string{emailcluster.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   emailcluster.MessagesTable,
			Columns: []string{emailcluster.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   emailcluster.MessagesTable,
			Columns: []string{emailcluster.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EmailCluster{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emailcluster.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
