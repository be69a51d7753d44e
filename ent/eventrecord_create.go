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
	"github.com/mailscope/mailscope/ent/eventrecord"
)

// EventRecordCreate is the builder for creating a EventRecord entity.
type EventRecordCreate struct {
	config
	mutation *EventRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStatus sets the "status" field.
func (_c *EventRecordCreate) SetStatus(v eventrecord.Status) *EventRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableStatus(v *eventrecord.Status) *EventRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *EventRecordCreate) SetError(v string) *EventRecordCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableError(v *string) *EventRecordCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetEventName sets the "event_name" field.
func (_c *EventRecordCreate) SetEventName(v string) *EventRecordCreate {
	_c.mutation.SetEventName(v)
	return _c
}

// SetNillableEventName sets the "event_name" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableEventName(v *string) *EventRecordCreate {
	if v != nil {
		_c.SetEventName(*v)
	}
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *EventRecordCreate) SetEventType(v string) *EventRecordCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableEventType(v *string) *EventRecordCreate {
	if v != nil {
		_c.SetEventType(*v)
	}
	return _c
}

// SetEventDate sets the "event_date" field.
func (_c *EventRecordCreate) SetEventDate(v time.Time) *EventRecordCreate {
	_c.mutation.SetEventDate(v)
	return _c
}

// SetNillableEventDate sets the "event_date" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableEventDate(v *time.Time) *EventRecordCreate {
	if v != nil {
		_c.SetEventDate(*v)
	}
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *EventRecordCreate) SetStartTime(v string) *EventRecordCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableStartTime(v *string) *EventRecordCreate {
	if v != nil {
		_c.SetStartTime(*v)
	}
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *EventRecordCreate) SetEndTime(v string) *EventRecordCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableEndTime(v *string) *EventRecordCreate {
	if v != nil {
		_c.SetEndTime(*v)
	}
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *EventRecordCreate) SetTimezone(v string) *EventRecordCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableTimezone(v *string) *EventRecordCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetEndTimeInferred sets the "end_time_inferred" field.
func (_c *EventRecordCreate) SetEndTimeInferred(v bool) *EventRecordCreate {
	_c.mutation.SetEndTimeInferred(v)
	return _c
}

// SetNillableEndTimeInferred sets the "end_time_inferred" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableEndTimeInferred(v *bool) *EventRecordCreate {
	if v != nil {
		_c.SetEndTimeInferred(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *EventRecordCreate) SetConfidence(v float64) *EventRecordCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableConfidence(v *float64) *EventRecordCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *EventRecordCreate) SetModel(v string) *EventRecordCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableModel(v *string) *EventRecordCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetPromptVersion sets the "prompt_version" field.
func (_c *EventRecordCreate) SetPromptVersion(v string) *EventRecordCreate {
	_c.mutation.SetPromptVersion(v)
	return _c
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillablePromptVersion(v *string) *EventRecordCreate {
	if v != nil {
		_c.SetPromptVersion(*v)
	}
	return _c
}

// SetRawJSON sets the "raw_json" field.
func (_c *EventRecordCreate) SetRawJSON(v string) *EventRecordCreate {
	_c.mutation.SetRawJSON(v)
	return _c
}

// SetNillableRawJSON sets the "raw_json" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableRawJSON(v *string) *EventRecordCreate {
	if v != nil {
		_c.SetRawJSON(*v)
	}
	return _c
}

// SetCalendarEventID sets the "calendar_event_id" field.
func (_c *EventRecordCreate) SetCalendarEventID(v string) *EventRecordCreate {
	_c.mutation.SetCalendarEventID(v)
	return _c
}

// SetNillableCalendarEventID sets the "calendar_event_id" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableCalendarEventID(v *string) *EventRecordCreate {
	if v != nil {
		_c.SetCalendarEventID(*v)
	}
	return _c
}

// SetCalendarIcalUID sets the "calendar_ical_uid" field.
func (_c *EventRecordCreate) SetCalendarIcalUID(v string) *EventRecordCreate {
	_c.mutation.SetCalendarIcalUID(v)
	return _c
}

// SetNillableCalendarIcalUID sets the "calendar_ical_uid" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableCalendarIcalUID(v *string) *EventRecordCreate {
	if v != nil {
		_c.SetCalendarIcalUID(*v)
	}
	return _c
}

// SetCalendarCheckedAt sets the "calendar_checked_at" field.
func (_c *EventRecordCreate) SetCalendarCheckedAt(v time.Time) *EventRecordCreate {
	_c.mutation.SetCalendarCheckedAt(v)
	return _c
}

// SetNillableCalendarCheckedAt sets the "calendar_checked_at" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableCalendarCheckedAt(v *time.Time) *EventRecordCreate {
	if v != nil {
		_c.SetCalendarCheckedAt(*v)
	}
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *EventRecordCreate) SetPublishedAt(v time.Time) *EventRecordCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillablePublishedAt(v *time.Time) *EventRecordCreate {
	if v != nil {
		_c.SetPublishedAt(*v)
	}
	return _c
}

// SetHiddenAt sets the "hidden_at" field.
func (_c *EventRecordCreate) SetHiddenAt(v time.Time) *EventRecordCreate {
	_c.mutation.SetHiddenAt(v)
	return _c
}

// SetNillableHiddenAt sets the "hidden_at" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableHiddenAt(v *time.Time) *EventRecordCreate {
	if v != nil {
		_c.SetHiddenAt(*v)
	}
	return _c
}

// SetExtractedAt sets the "extracted_at" field.
func (_c *EventRecordCreate) SetExtractedAt(v time.Time) *EventRecordCreate {
	_c.mutation.SetExtractedAt(v)
	return _c
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableExtractedAt(v *time.Time) *EventRecordCreate {
	if v != nil {
		_c.SetExtractedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EventRecordCreate) SetUpdatedAt(v time.Time) *EventRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableUpdatedAt(v *time.Time) *EventRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EventRecordCreate) SetID(v string) *EventRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EventRecordMutation object of the builder.
func (_c *EventRecordCreate) Mutation() *EventRecordMutation {
	return _c.mutation
}

// Save creates the EventRecord in the database.
func (_c *EventRecordCreate) Save(ctx context.Context) (*EventRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventRecordCreate) SaveX(ctx context.Context) *EventRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := eventrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.EndTimeInferred(); !ok {
		v := eventrecord.DefaultEndTimeInferred
		_c.mutation.SetEndTimeInferred(v)
	}
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		v := eventrecord.DefaultExtractedAt()
		_c.mutation.SetExtractedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := eventrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventRecordCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "EventRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := eventrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EventRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EndTimeInferred(); !ok {
		return &ValidationError{Name: "end_time_inferred", err: errors.New(`ent: missing required field "EventRecord.end_time_inferred"`)}
	}
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		return &ValidationError{Name: "extracted_at", err: errors.New(`ent: missing required field "EventRecord.extracted_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EventRecord.updated_at"`)}
	}
	return nil
}

func (_c *EventRecordCreate) sqlSave(ctx context.Context) (*EventRecord, error) {
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
			return nil, fmt.Errorf("unexpected EventRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EventRecordCreate) createSpec() (*EventRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &EventRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(eventrecord.Table, sqlgraph.NewFieldSpec(eventrecord.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(eventrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(eventrecord.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.EventName(); ok {
		_spec.SetField(eventrecord.FieldEventName, field.TypeString, value)
		_node.EventName = &value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(eventrecord.FieldEventType, field.TypeString, value)
		_node.EventType = &value
	}
	if value, ok := _c.mutation.EventDate(); ok {
		_spec.SetField(eventrecord.FieldEventDate, field.TypeTime, value)
		_node.EventDate = &value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(eventrecord.FieldStartTime, field.TypeString, value)
		_node.StartTime = &value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(eventrecord.FieldEndTime, field.TypeString, value)
		_node.EndTime = &value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(eventrecord.FieldTimezone, field.TypeString, value)
		_node.Timezone = &value
	}
	if value, ok := _c.mutation.EndTimeInferred(); ok {
		_spec.SetField(eventrecord.FieldEndTimeInferred, field.TypeBool, value)
		_node.EndTimeInferred = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(eventrecord.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(eventrecord.FieldModel, field.TypeString, value)
		_node.Model = &value
	}
	if value, ok := _c.mutation.PromptVersion(); ok {
		_spec.SetField(eventrecord.FieldPromptVersion, field.TypeString, value)
		_node.PromptVersion = &value
	}
	if value, ok := _c.mutation.RawJSON(); ok {
		_spec.SetField(eventrecord.FieldRawJSON, field.TypeString, value)
		_node.RawJSON = &value
	}
	if value, ok := _c.mutation.CalendarEventID(); ok {
		_spec.SetField(eventrecord.FieldCalendarEventID, field.TypeString, value)
		_node.CalendarEventID = &value
	}
	if value, ok := _c.mutation.CalendarIcalUID(); ok {
		_spec.SetField(eventrecord.FieldCalendarIcalUID, field.TypeString, value)
		_node.CalendarIcalUID = &value
	}
	if value, ok := _c.mutation.CalendarCheckedAt(); ok {
		_spec.SetField(eventrecord.FieldCalendarCheckedAt, field.TypeTime, value)
		_node.CalendarCheckedAt = &value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(eventrecord.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = &value
	}
	if value, ok := _c.mutation.HiddenAt(); ok {
		_spec.SetField(eventrecord.FieldHiddenAt, field.TypeTime, value)
		_node.HiddenAt = &value
	}
	if value, ok := _c.mutation.ExtractedAt(); ok {
		_spec.SetField(eventrecord.FieldExtractedAt, field.TypeTime, value)
		_node.ExtractedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(eventrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EventRecord.Create().
//		SetStatus(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventRecordUpsert) {
//			SetStatus(v+v).
//		}).
//		Exec(ctx)
func (_c *EventRecordCreate) OnConflict(opts ...sql.ConflictOption) *EventRecordUpsertOne {
	_c.conflict = opts
	return &EventRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EventRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventRecordCreate) OnConflictColumns(columns ...string) *EventRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventRecordUpsertOne{
		create: _c,
	}
}

type (
	// EventRecordUpsertOne is the builder for "upsert"-ing
	//  one EventRecord node.
	EventRecordUpsertOne struct {
		create *EventRecordCreate
	}

	// EventRecordUpsert is the "OnConflict" setter.
	EventRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *EventRecordUpsert) SetStatus(v eventrecord.Status) *EventRecordUpsert {
	u.Set(eventrecord.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EventRecordUpsert) UpdateStatus() *EventRecordUpsert {
	u.SetExcluded(eventrecord.FieldStatus)
	return u
}

// SetError sets the "error" field.
func (u *EventRecordUpsert) SetError(v string) *EventRecordUpsert {
	u.Set(eventrecord.FieldError, v)
	return u
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *EventRecordUpsert) UpdateError() *EventRecordUpsert {
	u.SetExcluded(eventrecord.FieldError)
	return u
}

// ClearError clears the value of the "error" field.
func (u *EventRecordUpsert) ClearError() *EventRecordUpsert {
	u.SetNull(eventrecord.FieldError)
	return u
}

// SetEventName sets the "event_name" field.
func (u *EventRecordUpsert) SetEventName(v string) *EventRecordUpsert {
	u.Set(eventrecord.FieldEventName, v)
	return u
}

// UpdateEventName sets the "event_name" field to the value that was provided on create.
func (u *EventRecordUpsert) UpdateEventName() *EventRecordUpsert {
	u.SetExcluded(eventrecord.FieldEventName)
	return u
}

// ClearEventName clears the value of the "event_name" field.
func (u *EventRecordUpsert) ClearEventName() *EventRecordUpsert {
	u.SetNull(eventrecord.FieldEventName)
	return u
}

// SetEventType sets the "event_type" field.
func (u *EventRecordUpsert) SetEventType(v string) *EventRecordUpsert {
	u.Set(eventrecord.FieldEventType, v)
	return u
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *EventRecordUpsert) UpdateEventType() *EventRecordUpsert {
	u.SetExcluded(eventrecord.FieldEventType)
	return u
}

// ClearEventType clears the value of the "event_type" field.
func (u *EventRecordUpsert) ClearEventType() *EventRecordUpsert {
	u.SetNull(eventrecord.FieldEventType)
	return u
}

// SetEventDate sets the "event_date" field.
func (u *EventRecordUpsert) SetEventDate(v time.Time) *EventRecordUpsert {
	u.Set(eventrecord.FieldEventDate, v)
	return u
}

// UpdateEventDate sets the "event_date" field to the value that was provided on create.
func (u *EventRecordUpsert) UpdateEventDate() *EventRecordUpsert {
	u.SetExcluded(eventrecord.FieldEventDate)
	return u
}

// ClearEventDate clears the value of the "event_date" field.
func (u *EventRecordUpsert) ClearEventDate() *EventRecordUpsert {
	u.SetNull(eventrecord.FieldEventDate)
	return u
}

// SetStartTime sets the "start_time" field.
func (u *EventRecordUpsert) SetStartTime(v string) *EventRecordUpsert {
	u.Set(eventrecord.FieldStartTime, v)
	return u
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *EventRecordUpsert) UpdateStartTime() *EventRecordUpsert {
	u.SetExcluded(eventrecord.FieldStartTime)
	return u
}

// ClearStartTime clears the value of the "start_time" field.
func (u *EventRecordUpsert) ClearStartTime() *EventRecordUpsert {
	u.SetNull(eventrecord.FieldStartTime)
	return u
}

// SetEndTime sets the "end_time" field.
func (u *EventRecordUpsert) SetEndTime(v string) *EventRecordUpsert {
	u.Set(eventrecord.FieldEndTime, v)
	return u
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *EventRecordUpsert) UpdateEndTime() *EventRecordUpsert {
	u.SetExcluded(eventrecord.FieldEndTime)
	return u
}

// ClearEndTime clears the value of the "end_time" field.
func (u *EventRecordUpsert) ClearEndTime() *EventRecordUpsert {
	u.SetNull(eventrecord.FieldEndTime)
	return u
}

// SetTimezone sets the "timezone" field.
func (u *EventRecordUpsert) SetTimezone(v string) *EventRecordUpsert {
	u.Set(eventrecord.FieldTimezone, v)
	return u
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *EventRecordUpsert) UpdateTimezone() *EventRecordUpsert {
	u.SetExcluded(eventrecord.FieldTimezone)
	return u
}

// ClearTimezone clears the value of the "timezone" field.
func (u *EventRecordUpsert) ClearTimezone() *EventRecordUpsert {
	u.SetNull(eventrecord.FieldTimezone)
	return u
}

// SetEndTimeInferred sets the "end_time_inferred" field.
func (u *EventRecordUpsert) SetEndTimeInferred(v bool) *EventRecordUpsert {
	u.Set(eventrecord.FieldEndTimeInferred, v)
	return u
}

// UpdateEndTimeInferred sets the "end_time_inferred" field to the value that was provided on create.
func (u *EventRecordUpsert) UpdateEndTimeInferred() *EventRecordUpsert {
	u.SetExcluded(eventrecord.FieldEndTimeInferred)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *EventRecordUpsert) SetConfidence(v float64) *EventRecordUpsert {
	u.Set(eventrecord.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *EventRecordUpsert) UpdateConfidence() *EventRecordUpsert {
	u.SetExcluded(eventrecord.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *EventRecordUpsert) AddConfidence(v float64) *EventRecordUpsert {
	u.Add(eventrecord.FieldConfidence, v)
	return u
}

// ClearConfidence clears the value of the "confidence" field.
func (u *EventRecordUpsert) ClearConfidence() *EventRecordUpsert {
	u.SetNull(eventrecord.FieldConfidence)
	return u
}

// SetModel sets the "model" field.
func (u *EventRecordUpsert) SetModel(v string) *EventRecordUpsert {
	u.Set(eventrecord.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *EventRecordUpsert) UpdateModel() *EventRecordUpsert {
	u.SetExcluded(eventrecord.FieldModel)
	return u
}

// ClearModel clears the value of the "model" field.
func (u *EventRecordUpsert) ClearModel() *EventRecordUpsert {
	u.SetNull(eventrecord.FieldModel)
	return u
}

// SetPromptVersion sets the "prompt_version" field.
func (u *EventRecordUpsert) SetPromptVersion(v string) *EventRecordUpsert {
	u.Set(eventrecord.FieldPromptVersion, v)
	return u
}

// UpdatePromptVersion sets the "prompt_version" field to the value that was provided on create.
func (u *EventRecordUpsert) UpdatePromptVersion() *EventRecordUpsert {
	u.SetExcluded(eventrecord.FieldPromptVersion)
	return u
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (u *EventRecordUpsert) ClearPromptVersion() *EventRecordUpsert {
	u.SetNull(eventrecord.FieldPromptVersion)
	return u
}

// SetRawJSON sets the "raw_json" field.
func (u *EventRecordUpsert) SetRawJSON(v string) *EventRecordUpsert {
	u.Set(eventrecord.FieldRawJSON, v)
	return u
}

// UpdateRawJSON sets the "raw_json" field to the value that was provided on create.
func (u *EventRecordUpsert) UpdateRawJSON() *EventRecordUpsert {
	u.SetExcluded(eventrecord.FieldRawJSON)
	return u
}

// ClearRawJSON clears the value of the "raw_json" field.
func (u *EventRecordUpsert) ClearRawJSON() *EventRecordUpsert {
	u.SetNull(eventrecord.FieldRawJSON)
	return u
}

// SetCalendarEventID sets the "calendar_event_id" field.
func (u *EventRecordUpsert) SetCalendarEventID(v string) *EventRecordUpsert {
	u.Set(eventrecord.FieldCalendarEventID, v)
	return u
}

// UpdateCalendarEventID sets the "calendar_event_id" field to the value that was provided on create.
func (u *EventRecordUpsert) UpdateCalendarEventID() *EventRecordUpsert {
	u.SetExcluded(eventrecord.FieldCalendarEventID)
	return u
}

// ClearCalendarEventID clears the value of the "calendar_event_id" field.
func (u *EventRecordUpsert) ClearCalendarEventID() *EventRecordUpsert {
	u.SetNull(eventrecord.FieldCalendarEventID)
	return u
}

// SetCalendarIcalUID sets the "calendar_ical_uid" field.
func (u *EventRecordUpsert) SetCalendarIcalUID(v string) *EventRecordUpsert {
	u.Set(eventrecord.FieldCalendarIcalUID, v)
	return u
}

// UpdateCalendarIcalUID sets the "calendar_ical_uid" field to the value that was provided on create.
func (u *EventRecordUpsert) UpdateCalendarIcalUID() *EventRecordUpsert {
	u.SetExcluded(eventrecord.FieldCalendarIcalUID)
	return u
}

// ClearCalendarIcalUID clears the value of the "calendar_ical_uid" field.
func (u *EventRecordUpsert) ClearCalendarIcalUID() *EventRecordUpsert {
	u.SetNull(eventrecord.FieldCalendarIcalUID)
	return u
}

// SetCalendarCheckedAt sets the "calendar_checked_at" field.
func (u *EventRecordUpsert) SetCalendarCheckedAt(v time.Time) *EventRecordUpsert {
	u.Set(eventrecord.FieldCalendarCheckedAt, v)
	return u
}

// UpdateCalendarCheckedAt sets the "calendar_checked_at" field to the value that was provided on create.
func (u *EventRecordUpsert) UpdateCalendarCheckedAt() *EventRecordUpsert {
	u.SetExcluded(eventrecord.FieldCalendarCheckedAt)
	return u
}

// ClearCalendarCheckedAt clears the value of the "calendar_checked_at" field.
func (u *EventRecordUpsert) ClearCalendarCheckedAt() *EventRecordUpsert {
	u.SetNull(eventrecord.FieldCalendarCheckedAt)
	return u
}

// SetPublishedAt sets the "published_at" field.
func (u *EventRecordUpsert) SetPublishedAt(v time.Time) *EventRecordUpsert {
	u.Set(eventrecord.FieldPublishedAt, v)
	return u
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *EventRecordUpsert) UpdatePublishedAt() *EventRecordUpsert {
	u.SetExcluded(eventrecord.FieldPublishedAt)
	return u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *EventRecordUpsert) ClearPublishedAt() *EventRecordUpsert {
	u.SetNull(eventrecord.FieldPublishedAt)
	return u
}

// SetHiddenAt sets the "hidden_at" field.
func (u *EventRecordUpsert) SetHiddenAt(v time.Time) *EventRecordUpsert {
	u.Set(eventrecord.FieldHiddenAt, v)
	return u
}

// UpdateHiddenAt sets the "hidden_at" field to the value that was provided on create.
func (u *EventRecordUpsert) UpdateHiddenAt() *EventRecordUpsert {
	u.SetExcluded(eventrecord.FieldHiddenAt)
	return u
}

// ClearHiddenAt clears the value of the "hidden_at" field.
func (u *EventRecordUpsert) ClearHiddenAt() *EventRecordUpsert {
	u.SetNull(eventrecord.FieldHiddenAt)
	return u
}

// SetExtractedAt sets the "extracted_at" field.
func (u *EventRecordUpsert) SetExtractedAt(v time.Time) *EventRecordUpsert {
	u.Set(eventrecord.FieldExtractedAt, v)
	return u
}

// UpdateExtractedAt sets the "extracted_at" field to the value that was provided on create.
func (u *EventRecordUpsert) UpdateExtractedAt() *EventRecordUpsert {
	u.SetExcluded(eventrecord.FieldExtractedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EventRecordUpsert) SetUpdatedAt(v time.Time) *EventRecordUpsert {
	u.Set(eventrecord.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventRecordUpsert) UpdateUpdatedAt() *EventRecordUpsert {
	u.SetExcluded(eventrecord.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EventRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(eventrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventRecordUpsertOne) UpdateNewValues() *EventRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(eventrecord.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EventRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EventRecordUpsertOne) Ignore() *EventRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventRecordUpsertOne) DoNothing() *EventRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventRecordCreate.OnConflict
// documentation for more info.
func (u *EventRecordUpsertOne) Update(set func(*EventRecordUpsert)) *EventRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *EventRecordUpsertOne) SetStatus(v eventrecord.Status) *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EventRecordUpsertOne) UpdateStatus() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetError sets the "error" field.
func (u *EventRecordUpsertOne) SetError(v string) *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *EventRecordUpsertOne) UpdateError() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *EventRecordUpsertOne) ClearError() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearError()
	})
}

// SetEventName sets the "event_name" field.
func (u *EventRecordUpsertOne) SetEventName(v string) *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetEventName(v)
	})
}

// UpdateEventName sets the "event_name" field to the value that was provided on create.
func (u *EventRecordUpsertOne) UpdateEventName() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateEventName()
	})
}

// ClearEventName clears the value of the "event_name" field.
func (u *EventRecordUpsertOne) ClearEventName() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearEventName()
	})
}

// SetEventType sets the "event_type" field.
func (u *EventRecordUpsertOne) SetEventType(v string) *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *EventRecordUpsertOne) UpdateEventType() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateEventType()
	})
}

// ClearEventType clears the value of the "event_type" field.
func (u *EventRecordUpsertOne) ClearEventType() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearEventType()
	})
}

// SetEventDate sets the "event_date" field.
func (u *EventRecordUpsertOne) SetEventDate(v time.Time) *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetEventDate(v)
	})
}

// UpdateEventDate sets the "event_date" field to the value that was provided on create.
func (u *EventRecordUpsertOne) UpdateEventDate() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateEventDate()
	})
}

// ClearEventDate clears the value of the "event_date" field.
func (u *EventRecordUpsertOne) ClearEventDate() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearEventDate()
	})
}

// SetStartTime sets the "start_time" field.
func (u *EventRecordUpsertOne) SetStartTime(v string) *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *EventRecordUpsertOne) UpdateStartTime() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateStartTime()
	})
}

// ClearStartTime clears the value of the "start_time" field.
func (u *EventRecordUpsertOne) ClearStartTime() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *EventRecordUpsertOne) SetEndTime(v string) *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *EventRecordUpsertOne) UpdateEndTime() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateEndTime()
	})
}

// ClearEndTime clears the value of the "end_time" field.
func (u *EventRecordUpsertOne) ClearEndTime() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearEndTime()
	})
}

// SetTimezone sets the "timezone" field.
func (u *EventRecordUpsertOne) SetTimezone(v string) *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *EventRecordUpsertOne) UpdateTimezone() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateTimezone()
	})
}

// ClearTimezone clears the value of the "timezone" field.
func (u *EventRecordUpsertOne) ClearTimezone() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearTimezone()
	})
}

// SetEndTimeInferred sets the "end_time_inferred" field.
func (u *EventRecordUpsertOne) SetEndTimeInferred(v bool) *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetEndTimeInferred(v)
	})
}

// UpdateEndTimeInferred sets the "end_time_inferred" field to the value that was provided on create.
func (u *EventRecordUpsertOne) UpdateEndTimeInferred() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateEndTimeInferred()
	})
}

// SetConfidence sets the "confidence" field.
func (u *EventRecordUpsertOne) SetConfidence(v float64) *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *EventRecordUpsertOne) AddConfidence(v float64) *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *EventRecordUpsertOne) UpdateConfidence() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateConfidence()
	})
}

// ClearConfidence clears the value of the "confidence" field.
func (u *EventRecordUpsertOne) ClearConfidence() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearConfidence()
	})
}

// SetModel sets the "model" field.
func (u *EventRecordUpsertOne) SetModel(v string) *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *EventRecordUpsertOne) UpdateModel() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *EventRecordUpsertOne) ClearModel() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearModel()
	})
}

// SetPromptVersion sets the "prompt_version" field.
func (u *EventRecordUpsertOne) SetPromptVersion(v string) *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetPromptVersion(v)
	})
}

// UpdatePromptVersion sets the "prompt_version" field to the value that was provided on create.
func (u *EventRecordUpsertOne) UpdatePromptVersion() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdatePromptVersion()
	})
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (u *EventRecordUpsertOne) ClearPromptVersion() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearPromptVersion()
	})
}

// SetRawJSON sets the "raw_json" field.
func (u *EventRecordUpsertOne) SetRawJSON(v string) *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetRawJSON(v)
	})
}

// UpdateRawJSON sets the "raw_json" field to the value that was provided on create.
func (u *EventRecordUpsertOne) UpdateRawJSON() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateRawJSON()
	})
}

// ClearRawJSON clears the value of the "raw_json" field.
func (u *EventRecordUpsertOne) ClearRawJSON() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearRawJSON()
	})
}

// SetCalendarEventID sets the "calendar_event_id" field.
func (u *EventRecordUpsertOne) SetCalendarEventID(v string) *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetCalendarEventID(v)
	})
}

// UpdateCalendarEventID sets the "calendar_event_id" field to the value that was provided on create.
func (u *EventRecordUpsertOne) UpdateCalendarEventID() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateCalendarEventID()
	})
}

// ClearCalendarEventID clears the value of the "calendar_event_id" field.
func (u *EventRecordUpsertOne) ClearCalendarEventID() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearCalendarEventID()
	})
}

// SetCalendarIcalUID sets the "calendar_ical_uid" field.
func (u *EventRecordUpsertOne) SetCalendarIcalUID(v string) *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetCalendarIcalUID(v)
	})
}

// UpdateCalendarIcalUID sets the "calendar_ical_uid" field to the value that was provided on create.
func (u *EventRecordUpsertOne) UpdateCalendarIcalUID() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateCalendarIcalUID()
	})
}

// ClearCalendarIcalUID clears the value of the "calendar_ical_uid" field.
func (u *EventRecordUpsertOne) ClearCalendarIcalUID() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearCalendarIcalUID()
	})
}

// SetCalendarCheckedAt sets the "calendar_checked_at" field.
func (u *EventRecordUpsertOne) SetCalendarCheckedAt(v time.Time) *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetCalendarCheckedAt(v)
	})
}

// UpdateCalendarCheckedAt sets the "calendar_checked_at" field to the value that was provided on create.
func (u *EventRecordUpsertOne) UpdateCalendarCheckedAt() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateCalendarCheckedAt()
	})
}

// ClearCalendarCheckedAt clears the value of the "calendar_checked_at" field.
func (u *EventRecordUpsertOne) ClearCalendarCheckedAt() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearCalendarCheckedAt()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *EventRecordUpsertOne) SetPublishedAt(v time.Time) *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *EventRecordUpsertOne) UpdatePublishedAt() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *EventRecordUpsertOne) ClearPublishedAt() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearPublishedAt()
	})
}

// SetHiddenAt sets the "hidden_at" field.
func (u *EventRecordUpsertOne) SetHiddenAt(v time.Time) *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetHiddenAt(v)
	})
}

// UpdateHiddenAt sets the "hidden_at" field to the value that was provided on create.
func (u *EventRecordUpsertOne) UpdateHiddenAt() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateHiddenAt()
	})
}

// ClearHiddenAt clears the value of the "hidden_at" field.
func (u *EventRecordUpsertOne) ClearHiddenAt() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearHiddenAt()
	})
}

// SetExtractedAt sets the "extracted_at" field.
func (u *EventRecordUpsertOne) SetExtractedAt(v time.Time) *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetExtractedAt(v)
	})
}

// UpdateExtractedAt sets the "extracted_at" field to the value that was provided on create.
func (u *EventRecordUpsertOne) UpdateExtractedAt() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateExtractedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EventRecordUpsertOne) SetUpdatedAt(v time.Time) *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventRecordUpsertOne) UpdateUpdatedAt() *EventRecordUpsertOne {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EventRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EventRecordUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EventRecordUpsertOne.ID is not supported by MySQL driver. Use EventRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EventRecordUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EventRecordCreateBulk is the builder for creating many EventRecord entities in bulk.
type EventRecordCreateBulk struct {
	config
	err      error
	builders []*EventRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the EventRecord entities in the database.
func (_c *EventRecordCreateBulk) Save(ctx context.Context) ([]*EventRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EventRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventRecordMutation)
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
func (_c *EventRecordCreateBulk) SaveX(ctx context.Context) []*EventRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EventRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventRecordUpsert) {
//			SetStatus(v+v).
//		}).
//		Exec(ctx)
func (_c *EventRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *EventRecordUpsertBulk {
	_c.conflict = opts
	return &EventRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EventRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventRecordCreateBulk) OnConflictColumns(columns ...string) *EventRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventRecordUpsertBulk{
		create: _c,
	}
}

// EventRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of EventRecord nodes.
type EventRecordUpsertBulk struct {
	create *EventRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EventRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(eventrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventRecordUpsertBulk) UpdateNewValues() *EventRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(eventrecord.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EventRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EventRecordUpsertBulk) Ignore() *EventRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventRecordUpsertBulk) DoNothing() *EventRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventRecordCreateBulk.OnConflict
// documentation for more info.
func (u *EventRecordUpsertBulk) Update(set func(*EventRecordUpsert)) *EventRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *EventRecordUpsertBulk) SetStatus(v eventrecord.Status) *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EventRecordUpsertBulk) UpdateStatus() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetError sets the "error" field.
func (u *EventRecordUpsertBulk) SetError(v string) *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *EventRecordUpsertBulk) UpdateError() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *EventRecordUpsertBulk) ClearError() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearError()
	})
}

// SetEventName sets the "event_name" field.
func (u *EventRecordUpsertBulk) SetEventName(v string) *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetEventName(v)
	})
}

// UpdateEventName sets the "event_name" field to the value that was provided on create.
func (u *EventRecordUpsertBulk) UpdateEventName() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateEventName()
	})
}

// ClearEventName clears the value of the "event_name" field.
func (u *EventRecordUpsertBulk) ClearEventName() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearEventName()
	})
}

// SetEventType sets the "event_type" field.
func (u *EventRecordUpsertBulk) SetEventType(v string) *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *EventRecordUpsertBulk) UpdateEventType() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateEventType()
	})
}

// ClearEventType clears the value of the "event_type" field.
func (u *EventRecordUpsertBulk) ClearEventType() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearEventType()
	})
}

// SetEventDate sets the "event_date" field.
func (u *EventRecordUpsertBulk) SetEventDate(v time.Time) *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetEventDate(v)
	})
}

// UpdateEventDate sets the "event_date" field to the value that was provided on create.
func (u *EventRecordUpsertBulk) UpdateEventDate() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateEventDate()
	})
}

// ClearEventDate clears the value of the "event_date" field.
func (u *EventRecordUpsertBulk) ClearEventDate() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearEventDate()
	})
}

// SetStartTime sets the "start_time" field.
func (u *EventRecordUpsertBulk) SetStartTime(v string) *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *EventRecordUpsertBulk) UpdateStartTime() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateStartTime()
	})
}

// ClearStartTime clears the value of the "start_time" field.
func (u *EventRecordUpsertBulk) ClearStartTime() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *EventRecordUpsertBulk) SetEndTime(v string) *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *EventRecordUpsertBulk) UpdateEndTime() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateEndTime()
	})
}

// ClearEndTime clears the value of the "end_time" field.
func (u *EventRecordUpsertBulk) ClearEndTime() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearEndTime()
	})
}

// SetTimezone sets the "timezone" field.
func (u *EventRecordUpsertBulk) SetTimezone(v string) *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *EventRecordUpsertBulk) UpdateTimezone() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateTimezone()
	})
}

// ClearTimezone clears the value of the "timezone" field.
func (u *EventRecordUpsertBulk) ClearTimezone() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearTimezone()
	})
}

// SetEndTimeInferred sets the "end_time_inferred" field.
func (u *EventRecordUpsertBulk) SetEndTimeInferred(v bool) *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetEndTimeInferred(v)
	})
}

// UpdateEndTimeInferred sets the "end_time_inferred" field to the value that was provided on create.
func (u *EventRecordUpsertBulk) UpdateEndTimeInferred() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateEndTimeInferred()
	})
}

// SetConfidence sets the "confidence" field.
func (u *EventRecordUpsertBulk) SetConfidence(v float64) *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *EventRecordUpsertBulk) AddConfidence(v float64) *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *EventRecordUpsertBulk) UpdateConfidence() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateConfidence()
	})
}

// ClearConfidence clears the value of the "confidence" field.
func (u *EventRecordUpsertBulk) ClearConfidence() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearConfidence()
	})
}

// SetModel sets the "model" field.
func (u *EventRecordUpsertBulk) SetModel(v string) *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *EventRecordUpsertBulk) UpdateModel() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *EventRecordUpsertBulk) ClearModel() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearModel()
	})
}

// SetPromptVersion sets the "prompt_version" field.
func (u *EventRecordUpsertBulk) SetPromptVersion(v string) *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetPromptVersion(v)
	})
}

// UpdatePromptVersion sets the "prompt_version" field to the value that was provided on create.
func (u *EventRecordUpsertBulk) UpdatePromptVersion() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdatePromptVersion()
	})
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (u *EventRecordUpsertBulk) ClearPromptVersion() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearPromptVersion()
	})
}

// SetRawJSON sets the "raw_json" field.
func (u *EventRecordUpsertBulk) SetRawJSON(v string) *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetRawJSON(v)
	})
}

// UpdateRawJSON sets the "raw_json" field to the value that was provided on create.
func (u *EventRecordUpsertBulk) UpdateRawJSON() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateRawJSON()
	})
}

// ClearRawJSON clears the value of the "raw_json" field.
func (u *EventRecordUpsertBulk) ClearRawJSON() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearRawJSON()
	})
}

// SetCalendarEventID sets the "calendar_event_id" field.
func (u *EventRecordUpsertBulk) SetCalendarEventID(v string) *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetCalendarEventID(v)
	})
}

// UpdateCalendarEventID sets the "calendar_event_id" field to the value that was provided on create.
func (u *EventRecordUpsertBulk) UpdateCalendarEventID() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateCalendarEventID()
	})
}

// ClearCalendarEventID clears the value of the "calendar_event_id" field.
func (u *EventRecordUpsertBulk) ClearCalendarEventID() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearCalendarEventID()
	})
}

// SetCalendarIcalUID sets the "calendar_ical_uid" field.
func (u *EventRecordUpsertBulk) SetCalendarIcalUID(v string) *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetCalendarIcalUID(v)
	})
}

// UpdateCalendarIcalUID sets the "calendar_ical_uid" field to the value that was provided on create.
func (u *EventRecordUpsertBulk) UpdateCalendarIcalUID() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateCalendarIcalUID()
	})
}

// ClearCalendarIcalUID clears the value of the "calendar_ical_uid" field.
func (u *EventRecordUpsertBulk) ClearCalendarIcalUID() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearCalendarIcalUID()
	})
}

// SetCalendarCheckedAt sets the "calendar_checked_at" field.
func (u *EventRecordUpsertBulk) SetCalendarCheckedAt(v time.Time) *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetCalendarCheckedAt(v)
	})
}

// UpdateCalendarCheckedAt sets the "calendar_checked_at" field to the value that was provided on create.
func (u *EventRecordUpsertBulk) UpdateCalendarCheckedAt() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateCalendarCheckedAt()
	})
}

// ClearCalendarCheckedAt clears the value of the "calendar_checked_at" field.
func (u *EventRecordUpsertBulk) ClearCalendarCheckedAt() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearCalendarCheckedAt()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *EventRecordUpsertBulk) SetPublishedAt(v time.Time) *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *EventRecordUpsertBulk) UpdatePublishedAt() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *EventRecordUpsertBulk) ClearPublishedAt() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearPublishedAt()
	})
}

// SetHiddenAt sets the "hidden_at" field.
func (u *EventRecordUpsertBulk) SetHiddenAt(v time.Time) *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetHiddenAt(v)
	})
}

// UpdateHiddenAt sets the "hidden_at" field to the value that was provided on create.
func (u *EventRecordUpsertBulk) UpdateHiddenAt() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateHiddenAt()
	})
}

// ClearHiddenAt clears the value of the "hidden_at" field.
func (u *EventRecordUpsertBulk) ClearHiddenAt() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.ClearHiddenAt()
	})
}

// SetExtractedAt sets the "extracted_at" field.
func (u *EventRecordUpsertBulk) SetExtractedAt(v time.Time) *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetExtractedAt(v)
	})
}

// UpdateExtractedAt sets the "extracted_at" field to the value that was provided on create.
func (u *EventRecordUpsertBulk) UpdateExtractedAt() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateExtractedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EventRecordUpsertBulk) SetUpdatedAt(v time.Time) *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventRecordUpsertBulk) UpdateUpdatedAt() *EventRecordUpsertBulk {
	return u.Update(func(s *EventRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EventRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EventRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
