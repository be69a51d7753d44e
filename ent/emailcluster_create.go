// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mailscope/mailscope/ent/emailcluster"
	"github.com/mailscope/mailscope/ent/emailmessage"
)

// EmailClusterCreate is the builder for creating a EmailCluster entity.
type EmailClusterCreate struct {
	config
	mutation *EmailClusterMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSeedMessageID sets the "seed_message_id" field.
func (_c *EmailClusterCreate) SetSeedMessageID(v string) *EmailClusterCreate {
	_c.mutation.SetSeedMessageID(v)
	return _c
}

// SetFromDomain sets the "from_domain" field.
func (_c *EmailClusterCreate) SetFromDomain(v string) *EmailClusterCreate {
	_c.mutation.SetFromDomain(v)
	return _c
}

// SetNillableFromDomain sets the "from_domain" field if the given value is not nil.
func (_c *EmailClusterCreate) SetNillableFromDomain(v *string) *EmailClusterCreate {
	if v != nil {
		_c.SetFromDomain(*v)
	}
	return _c
}

// SetSubjectNormalized sets the "subject_normalized" field.
func (_c *EmailClusterCreate) SetSubjectNormalized(v string) *EmailClusterCreate {
	_c.mutation.SetSubjectNormalized(v)
	return _c
}

// SetNillableSubjectNormalized sets the "subject_normalized" field if the given value is not nil.
func (_c *EmailClusterCreate) SetNillableSubjectNormalized(v *string) *EmailClusterCreate {
	if v != nil {
		_c.SetSubjectNormalized(*v)
	}
	return _c
}

// SetSimilarityThreshold sets the "similarity_threshold" field.
func (_c *EmailClusterCreate) SetSimilarityThreshold(v float64) *EmailClusterCreate {
	_c.mutation.SetSimilarityThreshold(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *EmailClusterCreate) SetDisplayName(v string) *EmailClusterCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_c *EmailClusterCreate) SetNillableDisplayName(v *string) *EmailClusterCreate {
	if v != nil {
		_c.SetDisplayName(*v)
	}
	return _c
}

// SetFrequencyLabel sets the "frequency_label" field.
func (_c *EmailClusterCreate) SetFrequencyLabel(v string) *EmailClusterCreate {
	_c.mutation.SetFrequencyLabel(v)
	return _c
}

// SetNillableFrequencyLabel sets the "frequency_label" field if the given value is not nil.
func (_c *EmailClusterCreate) SetNillableFrequencyLabel(v *string) *EmailClusterCreate {
	if v != nil {
		_c.SetFrequencyLabel(*v)
	}
	return _c
}

// SetUnreadLabel sets the "unread_label" field.
func (_c *EmailClusterCreate) SetUnreadLabel(v string) *EmailClusterCreate {
	_c.mutation.SetUnreadLabel(v)
	return _c
}

// SetNillableUnreadLabel sets the "unread_label" field if the given value is not nil.
func (_c *EmailClusterCreate) SetNillableUnreadLabel(v *string) *EmailClusterCreate {
	if v != nil {
		_c.SetUnreadLabel(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *EmailClusterCreate) SetCategory(v string) *EmailClusterCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *EmailClusterCreate) SetNillableCategory(v *string) *EmailClusterCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetSubcategory sets the "subcategory" field.
func (_c *EmailClusterCreate) SetSubcategory(v string) *EmailClusterCreate {
	_c.mutation.SetSubcategory(v)
	return _c
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_c *EmailClusterCreate) SetNillableSubcategory(v *string) *EmailClusterCreate {
	if v != nil {
		_c.SetSubcategory(*v)
	}
	return _c
}

// SetLabelVersion sets the "label_version" field.
func (_c *EmailClusterCreate) SetLabelVersion(v string) *EmailClusterCreate {
	_c.mutation.SetLabelVersion(v)
	return _c
}

// SetNillableLabelVersion sets the "label_version" field if the given value is not nil.
func (_c *EmailClusterCreate) SetNillableLabelVersion(v *string) *EmailClusterCreate {
	if v != nil {
		_c.SetLabelVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EmailClusterCreate) SetCreatedAt(v time.Time) *EmailClusterCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EmailClusterCreate) SetNillableCreatedAt(v *time.Time) *EmailClusterCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EmailClusterCreate) SetID(v string) *EmailClusterCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMessageIDs adds the "messages" edge to the EmailMessage entity by IDs.
func (_c *EmailClusterCreate) AddMessageIDs(ids ...string) *EmailClusterCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the EmailMessage entity.
func (_c *EmailClusterCreate) AddMessages(v ...*EmailMessage) *EmailClusterCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// Mutation returns the EmailClusterMutation object of the builder.
func (_c *EmailClusterCreate) Mutation() *EmailClusterMutation {
	return _c.mutation
}

// Save creates the EmailCluster in the database.
func (_c *EmailClusterCreate) Save(ctx context.Context) (*EmailCluster, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmailClusterCreate) SaveX(ctx context.Context) *EmailCluster {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailClusterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailClusterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EmailClusterCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := emailcluster.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmailClusterCreate) check() error {
	if _, ok := _c.mutation.SeedMessageID(); !ok {
		return &ValidationError{Name: "seed_message_id", err: errors.New(`ent: missing required field "EmailCluster.seed_message_id"`)}
	}
	if _, ok := _c.mutation.SimilarityThreshold(); !ok {
		return &ValidationError{Name: "similarity_threshold", err: errors.New(`ent: missing required field "EmailCluster.similarity_threshold"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EmailCluster.created_at"`)}
	}
	return nil
}

func (_c *EmailClusterCreate) sqlSave(ctx context.Context) (*EmailCluster, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected EmailCluster.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EmailClusterCreate) createSpec() (*EmailCluster, *sqlgraph.CreateSpec) {
	var (
		_node = &EmailCluster{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(emailcluster.Table, sqlgraph.NewFieldSpec(emailcluster.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SeedMessageID(); ok {
		_spec.SetField(emailcluster.FieldSeedMessageID, field.TypeString, value)
		_node.SeedMessageID = value
	}
	if value, ok := _c.mutation.FromDomain(); ok {
		_spec.SetField(emailcluster.FieldFromDomain, field.TypeString, value)
		_node.FromDomain = &value
	}
	if value, ok := _c.mutation.SubjectNormalized(); ok {
		_spec.SetField(emailcluster.FieldSubjectNormalized, field.TypeString, value)
		_node.SubjectNormalized = &value
	}
	if value, ok := _c.mutation.SimilarityThreshold(); ok {
		_spec.SetField(emailcluster.FieldSimilarityThreshold, field.TypeFloat64, value)
		_node.SimilarityThreshold = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(emailcluster.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = &value
	}
	if value, ok := _c.mutation.FrequencyLabel(); ok {
		_spec.SetField(emailcluster.FieldFrequencyLabel, field.TypeString, value)
		_node.FrequencyLabel = &value
	}
	if value, ok := _c.mutation.UnreadLabel(); ok {
		_spec.SetField(emailcluster.FieldUnreadLabel, field.TypeString, value)
		_node.UnreadLabel = &value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(emailcluster.FieldCategory, field.TypeString, value)
		_node.Category = &value
	}
	if value, ok := _c.mutation.Subcategory(); ok {
		_spec.SetField(emailcluster.FieldSubcategory, field.TypeString, value)
		_node.Subcategory = &value
	}
	if value, ok := _c.mutation.LabelVersion(); ok {
		_spec.SetField(emailcluster.FieldLabelVersion, field.TypeString, value)
		_node.LabelVersion = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(emailcluster.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EmailCluster.Create().
//		SetSeedMessageID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EmailClusterUpsert) {
//			SetSeedMessageID(v+v).
//		}).
//		Exec(ctx)
func (_c *EmailClusterCreate) OnConflict(opts ...sql.ConflictOption) *EmailClusterUpsertOne {
	_c.conflict = opts
	return &EmailClusterUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EmailCluster.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EmailClusterCreate) OnConflictColumns(columns ...string) *EmailClusterUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EmailClusterUpsertOne{
		create: _c,
	}
}

type (
	// EmailClusterUpsertOne is the builder for "upsert"-ing
	//  one EmailCluster node.
	EmailClusterUpsertOne struct {
		create *EmailClusterCreate
	}

	// EmailClusterUpsert is the "OnConflict" setter.
	EmailClusterUpsert struct {
		*sql.UpdateSet
	}
)

// SetFromDomain sets the "from_domain" field.
func (u *EmailClusterUpsert) SetFromDomain(v string) *EmailClusterUpsert {
	u.Set(emailcluster.FieldFromDomain, v)
	return u
}

// UpdateFromDomain sets the "from_domain" field to the value that was provided on create.
func (u *EmailClusterUpsert) UpdateFromDomain() *EmailClusterUpsert {
	u.SetExcluded(emailcluster.FieldFromDomain)
	return u
}

// ClearFromDomain clears the value of the "from_domain" field.
func (u *EmailClusterUpsert) ClearFromDomain() *EmailClusterUpsert {
	u.SetNull(emailcluster.FieldFromDomain)
	return u
}

// SetSubjectNormalized sets the "subject_normalized" field.
func (u *EmailClusterUpsert) SetSubjectNormalized(v string) *EmailClusterUpsert {
	u.Set(emailcluster.FieldSubjectNormalized, v)
	return u
}

// UpdateSubjectNormalized sets the "subject_normalized" field to the value that was provided on create.
func (u *EmailClusterUpsert) UpdateSubjectNormalized() *EmailClusterUpsert {
	u.SetExcluded(emailcluster.FieldSubjectNormalized)
	return u
}

// ClearSubjectNormalized clears the value of the "subject_normalized" field.
func (u *EmailClusterUpsert) ClearSubjectNormalized() *EmailClusterUpsert {
	u.SetNull(emailcluster.FieldSubjectNormalized)
	return u
}

// SetSimilarityThreshold sets the "similarity_threshold" field.
func (u *EmailClusterUpsert) SetSimilarityThreshold(v float64) *EmailClusterUpsert {
	u.Set(emailcluster.FieldSimilarityThreshold, v)
	return u
}

// UpdateSimilarityThreshold sets the "similarity_threshold" field to the value that was provided on create.
func (u *EmailClusterUpsert) UpdateSimilarityThreshold() *EmailClusterUpsert {
	u.SetExcluded(emailcluster.FieldSimilarityThreshold)
	return u
}

// AddSimilarityThreshold adds v to the "similarity_threshold" field.
func (u *EmailClusterUpsert) AddSimilarityThreshold(v float64) *EmailClusterUpsert {
	u.Add(emailcluster.FieldSimilarityThreshold, v)
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *EmailClusterUpsert) SetDisplayName(v string) *EmailClusterUpsert {
	u.Set(emailcluster.FieldDisplayName, v)
	return u
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *EmailClusterUpsert) UpdateDisplayName() *EmailClusterUpsert {
	u.SetExcluded(emailcluster.FieldDisplayName)
	return u
}

// ClearDisplayName clears the value of the "display_name" field.
func (u *EmailClusterUpsert) ClearDisplayName() *EmailClusterUpsert {
	u.SetNull(emailcluster.FieldDisplayName)
	return u
}

// SetFrequencyLabel sets the "frequency_label" field.
func (u *EmailClusterUpsert) SetFrequencyLabel(v string) *EmailClusterUpsert {
	u.Set(emailcluster.FieldFrequencyLabel, v)
	return u
}

// UpdateFrequencyLabel sets the "frequency_label" field to the value that was provided on create.
func (u *EmailClusterUpsert) UpdateFrequencyLabel() *EmailClusterUpsert {
	u.SetExcluded(emailcluster.FieldFrequencyLabel)
	return u
}

// ClearFrequencyLabel clears the value of the "frequency_label" field.
func (u *EmailClusterUpsert) ClearFrequencyLabel() *EmailClusterUpsert {
	u.SetNull(emailcluster.FieldFrequencyLabel)
	return u
}

// SetUnreadLabel sets the "unread_label" field.
func (u *EmailClusterUpsert) SetUnreadLabel(v string) *EmailClusterUpsert {
	u.Set(emailcluster.FieldUnreadLabel, v)
	return u
}

// UpdateUnreadLabel sets the "unread_label" field to the value that was provided on create.
func (u *EmailClusterUpsert) UpdateUnreadLabel() *EmailClusterUpsert {
	u.SetExcluded(emailcluster.FieldUnreadLabel)
	return u
}

// ClearUnreadLabel clears the value of the "unread_label" field.
func (u *EmailClusterUpsert) ClearUnreadLabel() *EmailClusterUpsert {
	u.SetNull(emailcluster.FieldUnreadLabel)
	return u
}

// SetCategory sets the "category" field.
func (u *EmailClusterUpsert) SetCategory(v string) *EmailClusterUpsert {
	u.Set(emailcluster.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *EmailClusterUpsert) UpdateCategory() *EmailClusterUpsert {
	u.SetExcluded(emailcluster.FieldCategory)
	return u
}

// ClearCategory clears the value of the "category" field.
func (u *EmailClusterUpsert) ClearCategory() *EmailClusterUpsert {
	u.SetNull(emailcluster.FieldCategory)
	return u
}

// SetSubcategory sets the "subcategory" field.
func (u *EmailClusterUpsert) SetSubcategory(v string) *EmailClusterUpsert {
	u.Set(emailcluster.FieldSubcategory, v)
	return u
}

// UpdateSubcategory sets the "subcategory" field to the value that was provided on create.
func (u *EmailClusterUpsert) UpdateSubcategory() *EmailClusterUpsert {
	u.SetExcluded(emailcluster.FieldSubcategory)
	return u
}

// ClearSubcategory clears the value of the "subcategory" field.
func (u *EmailClusterUpsert) ClearSubcategory() *EmailClusterUpsert {
	u.SetNull(emailcluster.FieldSubcategory)
	return u
}

// SetLabelVersion sets the "label_version" field.
func (u *EmailClusterUpsert) SetLabelVersion(v string) *EmailClusterUpsert {
	u.Set(emailcluster.FieldLabelVersion, v)
	return u
}

// UpdateLabelVersion sets the "label_version" field to the value that was provided on create.
func (u *EmailClusterUpsert) UpdateLabelVersion() *EmailClusterUpsert {
	u.SetExcluded(emailcluster.FieldLabelVersion)
	return u
}

// ClearLabelVersion clears the value of the "label_version" field.
func (u *EmailClusterUpsert) ClearLabelVersion() *EmailClusterUpsert {
	u.SetNull(emailcluster.FieldLabelVersion)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EmailCluster.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(emailcluster.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EmailClusterUpsertOne) UpdateNewValues() *EmailClusterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(emailcluster.FieldID)
		}
		if _, exists := u.create.mutation.SeedMessageID(); exists {
			s.SetIgnore(emailcluster.FieldSeedMessageID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(emailcluster.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EmailCluster.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EmailClusterUpsertOne) Ignore() *EmailClusterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EmailClusterUpsertOne) DoNothing() *EmailClusterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EmailClusterCreate.OnConflict
// documentation for more info.
func (u *EmailClusterUpsertOne) Update(set func(*EmailClusterUpsert)) *EmailClusterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EmailClusterUpsert{UpdateSet: update})
	}))
	return u
}

// SetFromDomain sets the "from_domain" field.
func (u *EmailClusterUpsertOne) SetFromDomain(v string) *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.SetFromDomain(v)
	})
}

// UpdateFromDomain sets the "from_domain" field to the value that was provided on create.
func (u *EmailClusterUpsertOne) UpdateFromDomain() *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.UpdateFromDomain()
	})
}

// ClearFromDomain clears the value of the "from_domain" field.
func (u *EmailClusterUpsertOne) ClearFromDomain() *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.ClearFromDomain()
	})
}

// SetSubjectNormalized sets the "subject_normalized" field.
func (u *EmailClusterUpsertOne) SetSubjectNormalized(v string) *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.SetSubjectNormalized(v)
	})
}

// UpdateSubjectNormalized sets the "subject_normalized" field to the value that was provided on create.
func (u *EmailClusterUpsertOne) UpdateSubjectNormalized() *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.UpdateSubjectNormalized()
	})
}

// ClearSubjectNormalized clears the value of the "subject_normalized" field.
func (u *EmailClusterUpsertOne) ClearSubjectNormalized() *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.ClearSubjectNormalized()
	})
}

// SetSimilarityThreshold sets the "similarity_threshold" field.
func (u *EmailClusterUpsertOne) SetSimilarityThreshold(v float64) *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.SetSimilarityThreshold(v)
	})
}

// AddSimilarityThreshold adds v to the "similarity_threshold" field.
func (u *EmailClusterUpsertOne) AddSimilarityThreshold(v float64) *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.AddSimilarityThreshold(v)
	})
}

// UpdateSimilarityThreshold sets the "similarity_threshold" field to the value that was provided on create.
func (u *EmailClusterUpsertOne) UpdateSimilarityThreshold() *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.UpdateSimilarityThreshold()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *EmailClusterUpsertOne) SetDisplayName(v string) *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *EmailClusterUpsertOne) UpdateDisplayName() *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.UpdateDisplayName()
	})
}

// ClearDisplayName clears the value of the "display_name" field.
func (u *EmailClusterUpsertOne) ClearDisplayName() *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.ClearDisplayName()
	})
}

// SetFrequencyLabel sets the "frequency_label" field.
func (u *EmailClusterUpsertOne) SetFrequencyLabel(v string) *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.SetFrequencyLabel(v)
	})
}

// UpdateFrequencyLabel sets the "frequency_label" field to the value that was provided on create.
func (u *EmailClusterUpsertOne) UpdateFrequencyLabel() *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.UpdateFrequencyLabel()
	})
}

// ClearFrequencyLabel clears the value of the "frequency_label" field.
func (u *EmailClusterUpsertOne) ClearFrequencyLabel() *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.ClearFrequencyLabel()
	})
}

// SetUnreadLabel sets the "unread_label" field.
func (u *EmailClusterUpsertOne) SetUnreadLabel(v string) *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.SetUnreadLabel(v)
	})
}

// UpdateUnreadLabel sets the "unread_label" field to the value that was provided on create.
func (u *EmailClusterUpsertOne) UpdateUnreadLabel() *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.UpdateUnreadLabel()
	})
}

// ClearUnreadLabel clears the value of the "unread_label" field.
func (u *EmailClusterUpsertOne) ClearUnreadLabel() *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.ClearUnreadLabel()
	})
}

// SetCategory sets the "category" field.
func (u *EmailClusterUpsertOne) SetCategory(v string) *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *EmailClusterUpsertOne) UpdateCategory() *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *EmailClusterUpsertOne) ClearCategory() *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.ClearCategory()
	})
}

// SetSubcategory sets the "subcategory" field.
func (u *EmailClusterUpsertOne) SetSubcategory(v string) *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.SetSubcategory(v)
	})
}

// UpdateSubcategory sets the "subcategory" field to the value that was provided on create.
func (u *EmailClusterUpsertOne) UpdateSubcategory() *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.UpdateSubcategory()
	})
}

// ClearSubcategory clears the value of the "subcategory" field.
func (u *EmailClusterUpsertOne) ClearSubcategory() *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.ClearSubcategory()
	})
}

// SetLabelVersion sets the "label_version" field.
func (u *EmailClusterUpsertOne) SetLabelVersion(v string) *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.SetLabelVersion(v)
	})
}

// UpdateLabelVersion sets the "label_version" field to the value that was provided on create.
func (u *EmailClusterUpsertOne) UpdateLabelVersion() *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.UpdateLabelVersion()
	})
}

// ClearLabelVersion clears the value of the "label_version" field.
func (u *EmailClusterUpsertOne) ClearLabelVersion() *EmailClusterUpsertOne {
	return u.Update(func(s *EmailClusterUpsert) {
		s.ClearLabelVersion()
	})
}

// Exec executes the query.
func (u *EmailClusterUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EmailClusterCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EmailClusterUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EmailClusterUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EmailClusterUpsertOne.ID is not supported by MySQL driver. Use EmailClusterUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EmailClusterUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EmailClusterCreateBulk is the builder for creating many EmailCluster entities in bulk.
type EmailClusterCreateBulk struct {
	config
	err      error
	builders []*EmailClusterCreate
	conflict []sql.ConflictOption
}

// Save creates the EmailCluster entities in the database.
func (_c *EmailClusterCreateBulk) Save(ctx context.Context) ([]*EmailCluster, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EmailCluster, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmailClusterMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EmailClusterCreateBulk) SaveX(ctx context.Context) []*EmailCluster {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailClusterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailClusterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EmailCluster.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EmailClusterUpsert) {
//			SetSeedMessageID(v+v).
//		}).
//		Exec(ctx)
func (_c *EmailClusterCreateBulk) OnConflict(opts ...sql.ConflictOption) *EmailClusterUpsertBulk {
	_c.conflict = opts
	return &EmailClusterUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EmailCluster.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EmailClusterCreateBulk) OnConflictColumns(columns ...string) *EmailClusterUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EmailClusterUpsertBulk{
		create: _c,
	}
}

// EmailClusterUpsertBulk is the builder for "upsert"-ing
// a bulk of EmailCluster nodes.
type EmailClusterUpsertBulk struct {
	create *EmailClusterCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EmailCluster.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(emailcluster.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EmailClusterUpsertBulk) UpdateNewValues() *EmailClusterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(emailcluster.FieldID)
			}
			if _, exists := b.mutation.SeedMessageID(); exists {
				s.SetIgnore(emailcluster.FieldSeedMessageID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(emailcluster.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EmailCluster.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EmailClusterUpsertBulk) Ignore() *EmailClusterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EmailClusterUpsertBulk) DoNothing() *EmailClusterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EmailClusterCreateBulk.OnConflict
// documentation for more info.
func (u *EmailClusterUpsertBulk) Update(set func(*EmailClusterUpsert)) *EmailClusterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EmailClusterUpsert{UpdateSet: update})
	}))
	return u
}

// SetFromDomain sets the "from_domain" field.
func (u *EmailClusterUpsertBulk) SetFromDomain(v string) *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.SetFromDomain(v)
	})
}

// UpdateFromDomain sets the "from_domain" field to the value that was provided on create.
func (u *EmailClusterUpsertBulk) UpdateFromDomain() *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.UpdateFromDomain()
	})
}

// ClearFromDomain clears the value of the "from_domain" field.
func (u *EmailClusterUpsertBulk) ClearFromDomain() *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.ClearFromDomain()
	})
}

// SetSubjectNormalized sets the "subject_normalized" field.
func (u *EmailClusterUpsertBulk) SetSubjectNormalized(v string) *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.SetSubjectNormalized(v)
	})
}

// UpdateSubjectNormalized sets the "subject_normalized" field to the value that was provided on create.
func (u *EmailClusterUpsertBulk) UpdateSubjectNormalized() *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.UpdateSubjectNormalized()
	})
}

// ClearSubjectNormalized clears the value of the "subject_normalized" field.
func (u *EmailClusterUpsertBulk) ClearSubjectNormalized() *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.ClearSubjectNormalized()
	})
}

// SetSimilarityThreshold sets the "similarity_threshold" field.
func (u *EmailClusterUpsertBulk) SetSimilarityThreshold(v float64) *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.SetSimilarityThreshold(v)
	})
}

// AddSimilarityThreshold adds v to the "similarity_threshold" field.
func (u *EmailClusterUpsertBulk) AddSimilarityThreshold(v float64) *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.AddSimilarityThreshold(v)
	})
}

// UpdateSimilarityThreshold sets the "similarity_threshold" field to the value that was provided on create.
func (u *EmailClusterUpsertBulk) UpdateSimilarityThreshold() *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.UpdateSimilarityThreshold()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *EmailClusterUpsertBulk) SetDisplayName(v string) *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *EmailClusterUpsertBulk) UpdateDisplayName() *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.UpdateDisplayName()
	})
}

// ClearDisplayName clears the value of the "display_name" field.
func (u *EmailClusterUpsertBulk) ClearDisplayName() *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.ClearDisplayName()
	})
}

// SetFrequencyLabel sets the "frequency_label" field.
func (u *EmailClusterUpsertBulk) SetFrequencyLabel(v string) *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.SetFrequencyLabel(v)
	})
}

// UpdateFrequencyLabel sets the "frequency_label" field to the value that was provided on create.
func (u *EmailClusterUpsertBulk) UpdateFrequencyLabel() *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.UpdateFrequencyLabel()
	})
}

// ClearFrequencyLabel clears the value of the "frequency_label" field.
func (u *EmailClusterUpsertBulk) ClearFrequencyLabel() *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.ClearFrequencyLabel()
	})
}

// SetUnreadLabel sets the "unread_label" field.
func (u *EmailClusterUpsertBulk) SetUnreadLabel(v string) *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.SetUnreadLabel(v)
	})
}

// UpdateUnreadLabel sets the "unread_label" field to the value that was provided on create.
func (u *EmailClusterUpsertBulk) UpdateUnreadLabel() *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.UpdateUnreadLabel()
	})
}

// ClearUnreadLabel clears the value of the "unread_label" field.
func (u *EmailClusterUpsertBulk) ClearUnreadLabel() *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.ClearUnreadLabel()
	})
}

// SetCategory sets the "category" field.
func (u *EmailClusterUpsertBulk) SetCategory(v string) *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *EmailClusterUpsertBulk) UpdateCategory() *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *EmailClusterUpsertBulk) ClearCategory() *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.ClearCategory()
	})
}

// SetSubcategory sets the "subcategory" field.
func (u *EmailClusterUpsertBulk) SetSubcategory(v string) *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.SetSubcategory(v)
	})
}

// UpdateSubcategory sets the "subcategory" field to the value that was provided on create.
func (u *EmailClusterUpsertBulk) UpdateSubcategory() *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.UpdateSubcategory()
	})
}

// ClearSubcategory clears the value of the "subcategory" field.
func (u *EmailClusterUpsertBulk) ClearSubcategory() *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.ClearSubcategory()
	})
}

// SetLabelVersion sets the "label_version" field.
func (u *EmailClusterUpsertBulk) SetLabelVersion(v string) *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.SetLabelVersion(v)
	})
}

// UpdateLabelVersion sets the "label_version" field to the value that was provided on create.
func (u *EmailClusterUpsertBulk) UpdateLabelVersion() *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.UpdateLabelVersion()
	})
}

// ClearLabelVersion clears the value of the "label_version" field.
func (u *EmailClusterUpsertBulk) ClearLabelVersion() *EmailClusterUpsertBulk {
	return u.Update(func(s *EmailClusterUpsert) {
		s.ClearLabelVersion()
	})
}

// Exec executes the query.
func (u *EmailClusterUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EmailClusterCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EmailClusterCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EmailClusterUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
