// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mailscope/mailscope/ent/eventrecord"
	"github.com/mailscope/mailscope/ent/predicate"
)

// EventRecordUpdate is the builder for updating EventRecord entities.
type EventRecordUpdate struct {
	config
	hooks    []Hook
	mutation *EventRecordMutation
}

// Where appends a list predicates to the EventRecordUpdate builder.
func (_u *EventRecordUpdate) Where(ps ...predicate.EventRecord) *EventRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *EventRecordUpdate) SetStatus(v eventrecord.Status) *EventRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableStatus(v *eventrecord.Status) *EventRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *EventRecordUpdate) SetError(v string) *EventRecordUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableError(v *string) *EventRecordUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *EventRecordUpdate) ClearError() *EventRecordUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetEventName sets the "event_name" field.
func (_u *EventRecordUpdate) SetEventName(v string) *EventRecordUpdate {
	_u.mutation.SetEventName(v)
	return _u
}

// SetNillableEventName sets the "event_name" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableEventName(v *string) *EventRecordUpdate {
	if v != nil {
		_u.SetEventName(*v)
	}
	return _u
}

// ClearEventName clears the value of the "event_name" field.
func (_u *EventRecordUpdate) ClearEventName() *EventRecordUpdate {
	_u.mutation.ClearEventName()
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *EventRecordUpdate) SetEventType(v string) *EventRecordUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableEventType(v *string) *EventRecordUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// ClearEventType clears the value of the "event_type" field.
func (_u *EventRecordUpdate) ClearEventType() *EventRecordUpdate {
	_u.mutation.ClearEventType()
	return _u
}

// SetEventDate sets the "event_date" field.
func (_u *EventRecordUpdate) SetEventDate(v time.Time) *EventRecordUpdate {
	_u.mutation.SetEventDate(v)
	return _u
}

// SetNillableEventDate sets the "event_date" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableEventDate(v *time.Time) *EventRecordUpdate {
	if v != nil {
		_u.SetEventDate(*v)
	}
	return _u
}

// ClearEventDate clears the value of the "event_date" field.
func (_u *EventRecordUpdate) ClearEventDate() *EventRecordUpdate {
	_u.mutation.ClearEventDate()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *EventRecordUpdate) SetStartTime(v string) *EventRecordUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableStartTime(v *string) *EventRecordUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// ClearStartTime clears the value of the "start_time" field.
func (_u *EventRecordUpdate) ClearStartTime() *EventRecordUpdate {
	_u.mutation.ClearStartTime()
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *EventRecordUpdate) SetEndTime(v string) *EventRecordUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableEndTime(v *string) *EventRecordUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *EventRecordUpdate) ClearEndTime() *EventRecordUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *EventRecordUpdate) SetTimezone(v string) *EventRecordUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableTimezone(v *string) *EventRecordUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// ClearTimezone clears the value of the "timezone" field.
func (_u *EventRecordUpdate) ClearTimezone() *EventRecordUpdate {
	_u.mutation.ClearTimezone()
	return _u
}

// SetEndTimeInferred sets the "end_time_inferred" field.
func (_u *EventRecordUpdate) SetEndTimeInferred(v bool) *EventRecordUpdate {
	_u.mutation.SetEndTimeInferred(v)
	return _u
}

// SetNillableEndTimeInferred sets the "end_time_inferred" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableEndTimeInferred(v *bool) *EventRecordUpdate {
	if v != nil {
		_u.SetEndTimeInferred(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EventRecordUpdate) SetConfidence(v float64) *EventRecordUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableConfidence(v *float64) *EventRecordUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EventRecordUpdate) AddConfidence(v float64) *EventRecordUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *EventRecordUpdate) ClearConfidence() *EventRecordUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetModel sets the "model" field.
func (_u *EventRecordUpdate) SetModel(v string) *EventRecordUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableModel(v *string) *EventRecordUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *EventRecordUpdate) ClearModel() *EventRecordUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetPromptVersion sets the "prompt_version" field.
func (_u *EventRecordUpdate) SetPromptVersion(v string) *EventRecordUpdate {
	_u.mutation.SetPromptVersion(v)
	return _u
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillablePromptVersion(v *string) *EventRecordUpdate {
	if v != nil {
		_u.SetPromptVersion(*v)
	}
	return _u
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (_u *EventRecordUpdate) ClearPromptVersion() *EventRecordUpdate {
	_u.mutation.ClearPromptVersion()
	return _u
}

// SetRawJSON sets the "raw_json" field.
func (_u *EventRecordUpdate) SetRawJSON(v string) *EventRecordUpdate {
	_u.mutation.SetRawJSON(v)
	return _u
}

// SetNillableRawJSON sets the "raw_json" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableRawJSON(v *string) *EventRecordUpdate {
	if v != nil {
		_u.SetRawJSON(*v)
	}
	return _u
}

// ClearRawJSON clears the value of the "raw_json" field.
func (_u *EventRecordUpdate) ClearRawJSON() *EventRecordUpdate {
	_u.mutation.ClearRawJSON()
	return _u
}

// SetCalendarEventID sets the "calendar_event_id" field.
func (_u *EventRecordUpdate) SetCalendarEventID(v string) *EventRecordUpdate {
	_u.mutation.SetCalendarEventID(v)
	return _u
}

// SetNillableCalendarEventID sets the "calendar_event_id" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableCalendarEventID(v *string) *EventRecordUpdate {
	if v != nil {
		_u.SetCalendarEventID(*v)
	}
	return _u
}

// ClearCalendarEventID clears the value of the "calendar_event_id" field.
func (_u *EventRecordUpdate) ClearCalendarEventID() *EventRecordUpdate {
	_u.mutation.ClearCalendarEventID()
	return _u
}

// SetCalendarIcalUID sets the "calendar_ical_uid" field.
func (_u *EventRecordUpdate) SetCalendarIcalUID(v string) *EventRecordUpdate {
	_u.mutation.SetCalendarIcalUID(v)
	return _u
}

// SetNillableCalendarIcalUID sets the "calendar_ical_uid" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableCalendarIcalUID(v *string) *EventRecordUpdate {
	if v != nil {
		_u.SetCalendarIcalUID(*v)
	}
	return _u
}

// ClearCalendarIcalUID clears the value of the "calendar_ical_uid" field.
func (_u *EventRecordUpdate) ClearCalendarIcalUID() *EventRecordUpdate {
	_u.mutation.ClearCalendarIcalUID()
	return _u
}

// SetCalendarCheckedAt sets the "calendar_checked_at" field.
func (_u *EventRecordUpdate) SetCalendarCheckedAt(v time.Time) *EventRecordUpdate {
	_u.mutation.SetCalendarCheckedAt(v)
	return _u
}

// SetNillableCalendarCheckedAt sets the "calendar_checked_at" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableCalendarCheckedAt(v *time.Time) *EventRecordUpdate {
	if v != nil {
		_u.SetCalendarCheckedAt(*v)
	}
	return _u
}

// ClearCalendarCheckedAt clears the value of the "calendar_checked_at" field.
func (_u *EventRecordUpdate) ClearCalendarCheckedAt() *EventRecordUpdate {
	_u.mutation.ClearCalendarCheckedAt()
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *EventRecordUpdate) SetPublishedAt(v time.Time) *EventRecordUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillablePublishedAt(v *time.Time) *EventRecordUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *EventRecordUpdate) ClearPublishedAt() *EventRecordUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetHiddenAt sets the "hidden_at" field.
func (_u *EventRecordUpdate) SetHiddenAt(v time.Time) *EventRecordUpdate {
	_u.mutation.SetHiddenAt(v)
	return _u
}

// SetNillableHiddenAt sets the "hidden_at" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableHiddenAt(v *time.Time) *EventRecordUpdate {
	if v != nil {
		_u.SetHiddenAt(*v)
	}
	return _u
}

// ClearHiddenAt clears the value of the "hidden_at" field.
func (_u *EventRecordUpdate) ClearHiddenAt() *EventRecordUpdate {
	_u.mutation.ClearHiddenAt()
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *EventRecordUpdate) SetExtractedAt(v time.Time) *EventRecordUpdate {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableExtractedAt(v *time.Time) *EventRecordUpdate {
	if v != nil {
		_u.SetExtractedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventRecordUpdate) SetUpdatedAt(v time.Time) *EventRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EventRecordMutation object of the builder.
func (_u *EventRecordUpdate) Mutation() *EventRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := eventrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventRecordUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := eventrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EventRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EventRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(eventrecord.Table, eventrecord.Columns, sqlgraph.NewFieldSpec(eventrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(eventrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(eventrecord.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(eventrecord.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.EventName(); ok {
		_spec.SetField(eventrecord.FieldEventName, field.TypeString, value)
	}
	if _u.mutation.EventNameCleared() {
		_spec.ClearField(eventrecord.FieldEventName, field.TypeString)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(eventrecord.FieldEventType, field.TypeString, value)
	}
	if _u.mutation.EventTypeCleared() {
		_spec.ClearField(eventrecord.FieldEventType, field.TypeString)
	}
	if value, ok := _u.mutation.EventDate(); ok {
		_spec.SetField(eventrecord.FieldEventDate, field.TypeTime, value)
	}
	if _u.mutation.EventDateCleared() {
		_spec.ClearField(eventrecord.FieldEventDate, field.TypeTime)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(eventrecord.FieldStartTime, field.TypeString, value)
	}
	if _u.mutation.StartTimeCleared() {
		_spec.ClearField(eventrecord.FieldStartTime, field.TypeString)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(eventrecord.FieldEndTime, field.TypeString, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(eventrecord.FieldEndTime, field.TypeString)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(eventrecord.FieldTimezone, field.TypeString, value)
	}
	if _u.mutation.TimezoneCleared() {
		_spec.ClearField(eventrecord.FieldTimezone, field.TypeString)
	}
	if value, ok := _u.mutation.EndTimeInferred(); ok {
		_spec.SetField(eventrecord.FieldEndTimeInferred, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(eventrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(eventrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(eventrecord.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(eventrecord.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(eventrecord.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.PromptVersion(); ok {
		_spec.SetField(eventrecord.FieldPromptVersion, field.TypeString, value)
	}
	if _u.mutation.PromptVersionCleared() {
		_spec.ClearField(eventrecord.FieldPromptVersion, field.TypeString)
	}
	if value, ok := _u.mutation.RawJSON(); ok {
		_spec.SetField(eventrecord.FieldRawJSON, field.TypeString, value)
	}
	if _u.mutation.RawJSONCleared() {
		_spec.ClearField(eventrecord.FieldRawJSON, field.TypeString)
	}
	if value, ok := _u.mutation.CalendarEventID(); ok {
		_spec.SetField(eventrecord.FieldCalendarEventID, field.TypeString, value)
	}
	if _u.mutation.CalendarEventIDCleared() {
		_spec.ClearField(eventrecord.FieldCalendarEventID, field.TypeString)
	}
	if value, ok := _u.mutation.CalendarIcalUID(); ok {
		_spec.SetField(eventrecord.FieldCalendarIcalUID, field.TypeString, value)
	}
	if _u.mutation.CalendarIcalUIDCleared() {
		_spec.ClearField(eventrecord.FieldCalendarIcalUID, field.TypeString)
	}
	if value, ok := _u.mutation.CalendarCheckedAt(); ok {
		_spec.SetField(eventrecord.FieldCalendarCheckedAt, field.TypeTime, value)
	}
	if _u.mutation.CalendarCheckedAtCleared() {
		_spec.ClearField(eventrecord.FieldCalendarCheckedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(eventrecord.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(eventrecord.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.HiddenAt(); ok {
		_spec.SetField(eventrecord.FieldHiddenAt, field.TypeTime, value)
	}
	if _u.mutation.HiddenAtCleared() {
		_spec.ClearField(eventrecord.FieldHiddenAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(eventrecord.FieldExtractedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(eventrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventRecordUpdateOne is the builder for updating a single EventRecord entity.
type EventRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventRecordMutation
}

// SetStatus sets the "status" field.
func (_u *EventRecordUpdateOne) SetStatus(v eventrecord.Status) *EventRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableStatus(v *eventrecord.Status) *EventRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *EventRecordUpdateOne) SetError(v string) *EventRecordUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableError(v *string) *EventRecordUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *EventRecordUpdateOne) ClearError() *EventRecordUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetEventName sets the "event_name" field.
func (_u *EventRecordUpdateOne) SetEventName(v string) *EventRecordUpdateOne {
	_u.mutation.SetEventName(v)
	return _u
}

// SetNillableEventName sets the "event_name" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableEventName(v *string) *EventRecordUpdateOne {
	if v != nil {
		_u.SetEventName(*v)
	}
	return _u
}

// ClearEventName clears the value of the "event_name" field.
func (_u *EventRecordUpdateOne) ClearEventName() *EventRecordUpdateOne {
	_u.mutation.ClearEventName()
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *EventRecordUpdateOne) SetEventType(v string) *EventRecordUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableEventType(v *string) *EventRecordUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// ClearEventType clears the value of the "event_type" field.
func (_u *EventRecordUpdateOne) ClearEventType() *EventRecordUpdateOne {
	_u.mutation.ClearEventType()
	return _u
}

// SetEventDate sets the "event_date" field.
func (_u *EventRecordUpdateOne) SetEventDate(v time.Time) *EventRecordUpdateOne {
	_u.mutation.SetEventDate(v)
	return _u
}

// SetNillableEventDate sets the "event_date" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableEventDate(v *time.Time) *EventRecordUpdateOne {
	if v != nil {
		_u.SetEventDate(*v)
	}
	return _u
}

// ClearEventDate clears the value of the "event_date" field.
func (_u *EventRecordUpdateOne) ClearEventDate() *EventRecordUpdateOne {
	_u.mutation.ClearEventDate()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *EventRecordUpdateOne) SetStartTime(v string) *EventRecordUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableStartTime(v *string) *EventRecordUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// ClearStartTime clears the value of the "start_time" field.
func (_u *EventRecordUpdateOne) ClearStartTime() *EventRecordUpdateOne {
	_u.mutation.ClearStartTime()
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *EventRecordUpdateOne) SetEndTime(v string) *EventRecordUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableEndTime(v *string) *EventRecordUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *EventRecordUpdateOne) ClearEndTime() *EventRecordUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *EventRecordUpdateOne) SetTimezone(v string) *EventRecordUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableTimezone(v *string) *EventRecordUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// ClearTimezone clears the value of the "timezone" field.
func (_u *EventRecordUpdateOne) ClearTimezone() *EventRecordUpdateOne {
	_u.mutation.ClearTimezone()
	return _u
}

// SetEndTimeInferred sets the "end_time_inferred" field.
func (_u *EventRecordUpdateOne) SetEndTimeInferred(v bool) *EventRecordUpdateOne {
	_u.mutation.SetEndTimeInferred(v)
	return _u
}

// SetNillableEndTimeInferred sets the "end_time_inferred" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableEndTimeInferred(v *bool) *EventRecordUpdateOne {
	if v != nil {
		_u.SetEndTimeInferred(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EventRecordUpdateOne) SetConfidence(v float64) *EventRecordUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableConfidence(v *float64) *EventRecordUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EventRecordUpdateOne) AddConfidence(v float64) *EventRecordUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *EventRecordUpdateOne) ClearConfidence() *EventRecordUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetModel sets the "model" field.
func (_u *EventRecordUpdateOne) SetModel(v string) *EventRecordUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableModel(v *string) *EventRecordUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *EventRecordUpdateOne) ClearModel() *EventRecordUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetPromptVersion sets the "prompt_version" field.
func (_u *EventRecordUpdateOne) SetPromptVersion(v string) *EventRecordUpdateOne {
	_u.mutation.SetPromptVersion(v)
	return _u
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillablePromptVersion(v *string) *EventRecordUpdateOne {
	if v != nil {
		_u.SetPromptVersion(*v)
	}
	return _u
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (_u *EventRecordUpdateOne) ClearPromptVersion() *EventRecordUpdateOne {
	_u.mutation.ClearPromptVersion()
	return _u
}

// SetRawJSON sets the "raw_json" field.
func (_u *EventRecordUpdateOne) SetRawJSON(v string) *EventRecordUpdateOne {
	_u.mutation.SetRawJSON(v)
	return _u
}

// SetNillableRawJSON sets the "raw_json" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableRawJSON(v *string) *EventRecordUpdateOne {
	if v != nil {
		_u.SetRawJSON(*v)
	}
	return _u
}

// ClearRawJSON clears the value of the "raw_json" field.
func (_u *EventRecordUpdateOne) ClearRawJSON() *EventRecordUpdateOne {
	_u.mutation.ClearRawJSON()
	return _u
}

// SetCalendarEventID sets the "calendar_event_id" field.
func (_u *EventRecordUpdateOne) SetCalendarEventID(v string) *EventRecordUpdateOne {
	_u.mutation.SetCalendarEventID(v)
	return _u
}

// SetNillableCalendarEventID sets the "calendar_event_id" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableCalendarEventID(v *string) *EventRecordUpdateOne {
	if v != nil {
		_u.SetCalendarEventID(*v)
	}
	return _u
}

// ClearCalendarEventID clears the value of the "calendar_event_id" field.
func (_u *EventRecordUpdateOne) ClearCalendarEventID() *EventRecordUpdateOne {
	_u.mutation.ClearCalendarEventID()
	return _u
}

// SetCalendarIcalUID sets the "calendar_ical_uid" field.
func (_u *EventRecordUpdateOne) SetCalendarIcalUID(v string) *EventRecordUpdateOne {
	_u.mutation.SetCalendarIcalUID(v)
	return _u
}

// SetNillableCalendarIcalUID sets the "calendar_ical_uid" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableCalendarIcalUID(v *string) *EventRecordUpdateOne {
	if v != nil {
		_u.SetCalendarIcalUID(*v)
	}
	return _u
}

// ClearCalendarIcalUID clears the value of the "calendar_ical_uid" field.
func (_u *EventRecordUpdateOne) ClearCalendarIcalUID() *EventRecordUpdateOne {
	_u.mutation.ClearCalendarIcalUID()
	return _u
}

// SetCalendarCheckedAt sets the "calendar_checked_at" field.
func (_u *EventRecordUpdateOne) SetCalendarCheckedAt(v time.Time) *EventRecordUpdateOne {
	_u.mutation.SetCalendarCheckedAt(v)
	return _u
}

// SetNillableCalendarCheckedAt sets the "calendar_checked_at" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableCalendarCheckedAt(v *time.Time) *EventRecordUpdateOne {
	if v != nil {
		_u.SetCalendarCheckedAt(*v)
	}
	return _u
}

// ClearCalendarCheckedAt clears the value of the "calendar_checked_at" field.
func (_u *EventRecordUpdateOne) ClearCalendarCheckedAt() *EventRecordUpdateOne {
	_u.mutation.ClearCalendarCheckedAt()
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *EventRecordUpdateOne) SetPublishedAt(v time.Time) *EventRecordUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillablePublishedAt(v *time.Time) *EventRecordUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *EventRecordUpdateOne) ClearPublishedAt() *EventRecordUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetHiddenAt sets the "hidden_at" field.
func (_u *EventRecordUpdateOne) SetHiddenAt(v time.Time) *EventRecordUpdateOne {
	_u.mutation.SetHiddenAt(v)
	return _u
}

// SetNillableHiddenAt sets the "hidden_at" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableHiddenAt(v *time.Time) *EventRecordUpdateOne {
	if v != nil {
		_u.SetHiddenAt(*v)
	}
	return _u
}

// ClearHiddenAt clears the value of the "hidden_at" field.
func (_u *EventRecordUpdateOne) ClearHiddenAt() *EventRecordUpdateOne {
	_u.mutation.ClearHiddenAt()
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *EventRecordUpdateOne) SetExtractedAt(v time.Time) *EventRecordUpdateOne {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableExtractedAt(v *time.Time) *EventRecordUpdateOne {
	if v != nil {
		_u.SetExtractedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventRecordUpdateOne) SetUpdatedAt(v time.Time) *EventRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EventRecordMutation object of the builder.
func (_u *EventRecordUpdateOne) Mutation() *EventRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the EventRecordUpdate builder.
func (_u *EventRecordUpdateOne) Where(ps ...predicate.EventRecord) *EventRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventRecordUpdateOne) Select(field string, fields ...string) *EventRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EventRecord entity.
func (_u *EventRecordUpdateOne) Save(ctx context.Context) (*EventRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventRecordUpdateOne) SaveX(ctx context.Context) *EventRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := eventrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := eventrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EventRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EventRecordUpdateOne) sqlSave(ctx context.Context) (_node *EventRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(eventrecord.Table, eventrecord.Columns, sqlgraph.NewFieldSpec(eventrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EventRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, eventrecord.FieldID)
		for _, f := range fields {
			if !eventrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != eventrecord.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(eventrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(eventrecord.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(eventrecord.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.EventName(); ok {
		_spec.SetField(eventrecord.FieldEventName, field.TypeString, value)
	}
	if _u.mutation.EventNameCleared() {
		_spec.ClearField(eventrecord.FieldEventName, field.TypeString)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(eventrecord.FieldEventType, field.TypeString, value)
	}
	if _u.mutation.EventTypeCleared() {
		_spec.ClearField(eventrecord.FieldEventType, field.TypeString)
	}
	if value, ok := _u.mutation.EventDate(); ok {
		_spec.SetField(eventrecord.FieldEventDate, field.TypeTime, value)
	}
	if _u.mutation.EventDateCleared() {
		_spec.ClearField(eventrecord.FieldEventDate, field.TypeTime)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(eventrecord.FieldStartTime, field.TypeString, value)
	}
	if _u.mutation.StartTimeCleared() {
		_spec.ClearField(eventrecord.FieldStartTime, field.TypeString)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(eventrecord.FieldEndTime, field.TypeString, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(eventrecord.FieldEndTime, field.TypeString)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(eventrecord.FieldTimezone, field.TypeString, value)
	}
	if _u.mutation.TimezoneCleared() {
		_spec.ClearField(eventrecord.FieldTimezone, field.TypeString)
	}
	if value, ok := _u.mutation.EndTimeInferred(); ok {
		_spec.SetField(eventrecord.FieldEndTimeInferred, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(eventrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(eventrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(eventrecord.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(eventrecord.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(eventrecord.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.PromptVersion(); ok {
		_spec.SetField(eventrecord.FieldPromptVersion, field.TypeString, value)
	}
	if _u.mutation.PromptVersionCleared() {
		_spec.ClearField(eventrecord.FieldPromptVersion, field.TypeString)
	}
	if value, ok := _u.mutation.RawJSON(); ok {
		_spec.SetField(eventrecord.FieldRawJSON, field.TypeString, value)
	}
	if _u.mutation.RawJSONCleared() {
		_spec.ClearField(eventrecord.FieldRawJSON, field.TypeString)
	}
	if value, ok := _u.mutation.CalendarEventID(); ok {
		_spec.SetField(eventrecord.FieldCalendarEventID, field.TypeString, value)
	}
	if _u.mutation.CalendarEventIDCleared() {
		_spec.ClearField(eventrecord.FieldCalendarEventID, field.TypeString)
	}
	if value, ok := _u.mutation.CalendarIcalUID(); ok {
		_spec.SetField(eventrecord.FieldCalendarIcalUID, field.TypeString, value)
	}
	if _u.mutation.CalendarIcalUIDCleared() {
		_spec.ClearField(eventrecord.FieldCalendarIcalUID, field.TypeString)
	}
	if value, ok := _u.mutation.CalendarCheckedAt(); ok {
		_spec.SetField(eventrecord.FieldCalendarCheckedAt, field.TypeTime, value)
	}
	if _u.mutation.CalendarCheckedAtCleared() {
		_spec.ClearField(eventrecord.FieldCalendarCheckedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(eventrecord.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(eventrecord.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.HiddenAt(); ok {
		_spec.SetField(eventrecord.FieldHiddenAt, field.TypeTime, value)
	}
	if _u.mutation.HiddenAtCleared() {
		_spec.ClearField(eventrecord.FieldHiddenAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(eventrecord.FieldExtractedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(eventrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &EventRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
