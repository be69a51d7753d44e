// Code generated by ent, DO NOT EDIT.

package eventrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mailscope/mailscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContainsFold(FieldID, id))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldError, v))
}

// EventName applies equality check predicate on the "event_name" field. It's identical to EventNameEQ.
func EventName(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldEventName, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldEventType, v))
}

// EventDate applies equality check predicate on the "event_date" field. It's identical to EventDateEQ.
func EventDate(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldEventDate, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldEndTime, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldTimezone, v))
}

// EndTimeInferred applies equality check predicate on the "end_time_inferred" field. It's identical to EndTimeInferredEQ.
func EndTimeInferred(v bool) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldEndTimeInferred, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldConfidence, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldModel, v))
}

// PromptVersion applies equality check predicate on the "prompt_version" field. It's identical to PromptVersionEQ.
func PromptVersion(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldPromptVersion, v))
}

// RawJSON applies equality check predicate on the "raw_json" field. It's identical to RawJSONEQ.
func RawJSON(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldRawJSON, v))
}

// CalendarEventID applies equality check predicate on the "calendar_event_id" field. It's identical to CalendarEventIDEQ.
func CalendarEventID(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldCalendarEventID, v))
}

// CalendarIcalUID applies equality check predicate on the "calendar_ical_uid" field. It's identical to CalendarIcalUIDEQ.
func CalendarIcalUID(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldCalendarIcalUID, v))
}

// CalendarCheckedAt applies equality check predicate on the "calendar_checked_at" field. It's identical to CalendarCheckedAtEQ.
func CalendarCheckedAt(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldCalendarCheckedAt, v))
}

// PublishedAt applies equality check predicate on the "published_at" field. It's identical to PublishedAtEQ.
func PublishedAt(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldPublishedAt, v))
}

// HiddenAt applies equality check predicate on the "hidden_at" field. It's identical to HiddenAtEQ.
func HiddenAt(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldHiddenAt, v))
}

// ExtractedAt applies equality check predicate on the "extracted_at" field. It's identical to ExtractedAtEQ.
func ExtractedAt(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldExtractedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContainsFold(FieldError, v))
}

// EventNameEQ applies the EQ predicate on the "event_name" field.
func EventNameEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldEventName, v))
}

// EventNameNEQ applies the NEQ predicate on the "event_name" field.
func EventNameNEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldEventName, v))
}

// EventNameIn applies the In predicate on the "event_name" field.
func EventNameIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldEventName, vs...))
}

// EventNameNotIn applies the NotIn predicate on the "event_name" field.
func EventNameNotIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldEventName, vs...))
}

// EventNameGT applies the GT predicate on the "event_name" field.
func EventNameGT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldEventName, v))
}

// EventNameGTE applies the GTE predicate on the "event_name" field.
func EventNameGTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldEventName, v))
}

// EventNameLT applies the LT predicate on the "event_name" field.
func EventNameLT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldEventName, v))
}

// EventNameLTE applies the LTE predicate on the "event_name" field.
func EventNameLTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldEventName, v))
}

// EventNameContains applies the Contains predicate on the "event_name" field.
func EventNameContains(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContains(FieldEventName, v))
}

// EventNameHasPrefix applies the HasPrefix predicate on the "event_name" field.
func EventNameHasPrefix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasPrefix(FieldEventName, v))
}

// EventNameHasSuffix applies the HasSuffix predicate on the "event_name" field.
func EventNameHasSuffix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasSuffix(FieldEventName, v))
}

// EventNameIsNil applies the IsNil predicate on the "event_name" field.
func EventNameIsNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIsNull(FieldEventName))
}

// EventNameNotNil applies the NotNil predicate on the "event_name" field.
func EventNameNotNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotNull(FieldEventName))
}

// EventNameEqualFold applies the EqualFold predicate on the "event_name" field.
func EventNameEqualFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEqualFold(FieldEventName, v))
}

// EventNameContainsFold applies the ContainsFold predicate on the "event_name" field.
func EventNameContainsFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContainsFold(FieldEventName, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeIsNil applies the IsNil predicate on the "event_type" field.
func EventTypeIsNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIsNull(FieldEventType))
}

// EventTypeNotNil applies the NotNil predicate on the "event_type" field.
func EventTypeNotNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotNull(FieldEventType))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContainsFold(FieldEventType, v))
}

// EventDateEQ applies the EQ predicate on the "event_date" field.
func EventDateEQ(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldEventDate, v))
}

// EventDateNEQ applies the NEQ predicate on the "event_date" field.
func EventDateNEQ(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldEventDate, v))
}

// EventDateIn applies the In predicate on the "event_date" field.
func EventDateIn(vs ...time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldEventDate, vs...))
}

// EventDateNotIn applies the NotIn predicate on the "event_date" field.
func EventDateNotIn(vs ...time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldEventDate, vs...))
}

// EventDateGT applies the GT predicate on the "event_date" field.
func EventDateGT(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldEventDate, v))
}

// EventDateGTE applies the GTE predicate on the "event_date" field.
func EventDateGTE(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldEventDate, v))
}

// EventDateLT applies the LT predicate on the "event_date" field.
func EventDateLT(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldEventDate, v))
}

// EventDateLTE applies the LTE predicate on the "event_date" field.
func EventDateLTE(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldEventDate, v))
}

// EventDateIsNil applies the IsNil predicate on the "event_date" field.
func EventDateIsNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIsNull(FieldEventDate))
}

// EventDateNotNil applies the NotNil predicate on the "event_date" field.
func EventDateNotNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotNull(FieldEventDate))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldStartTime, v))
}

// StartTimeContains applies the Contains predicate on the "start_time" field.
func StartTimeContains(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContains(FieldStartTime, v))
}

// StartTimeHasPrefix applies the HasPrefix predicate on the "start_time" field.
func StartTimeHasPrefix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasPrefix(FieldStartTime, v))
}

// StartTimeHasSuffix applies the HasSuffix predicate on the "start_time" field.
func StartTimeHasSuffix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasSuffix(FieldStartTime, v))
}

// StartTimeIsNil applies the IsNil predicate on the "start_time" field.
func StartTimeIsNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIsNull(FieldStartTime))
}

// StartTimeNotNil applies the NotNil predicate on the "start_time" field.
func StartTimeNotNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotNull(FieldStartTime))
}

// StartTimeEqualFold applies the EqualFold predicate on the "start_time" field.
func StartTimeEqualFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEqualFold(FieldStartTime, v))
}

// StartTimeContainsFold applies the ContainsFold predicate on the "start_time" field.
func StartTimeContainsFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContainsFold(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldEndTime, v))
}

// EndTimeContains applies the Contains predicate on the "end_time" field.
func EndTimeContains(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContains(FieldEndTime, v))
}

// EndTimeHasPrefix applies the HasPrefix predicate on the "end_time" field.
func EndTimeHasPrefix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasPrefix(FieldEndTime, v))
}

// EndTimeHasSuffix applies the HasSuffix predicate on the "end_time" field.
func EndTimeHasSuffix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasSuffix(FieldEndTime, v))
}

// EndTimeIsNil applies the IsNil predicate on the "end_time" field.
func EndTimeIsNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIsNull(FieldEndTime))
}

// EndTimeNotNil applies the NotNil predicate on the "end_time" field.
func EndTimeNotNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotNull(FieldEndTime))
}

// EndTimeEqualFold applies the EqualFold predicate on the "end_time" field.
func EndTimeEqualFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEqualFold(FieldEndTime, v))
}

// EndTimeContainsFold applies the ContainsFold predicate on the "end_time" field.
func EndTimeContainsFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContainsFold(FieldEndTime, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneIsNil applies the IsNil predicate on the "timezone" field.
func TimezoneIsNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIsNull(FieldTimezone))
}

// TimezoneNotNil applies the NotNil predicate on the "timezone" field.
func TimezoneNotNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotNull(FieldTimezone))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContainsFold(FieldTimezone, v))
}

// EndTimeInferredEQ applies the EQ predicate on the "end_time_inferred" field.
func EndTimeInferredEQ(v bool) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldEndTimeInferred, v))
}

// EndTimeInferredNEQ applies the NEQ predicate on the "end_time_inferred" field.
func EndTimeInferredNEQ(v bool) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldEndTimeInferred, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotNull(FieldConfidence))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContainsFold(FieldModel, v))
}

// PromptVersionEQ applies the EQ predicate on the "prompt_version" field.
func PromptVersionEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldPromptVersion, v))
}

// PromptVersionNEQ applies the NEQ predicate on the "prompt_version" field.
func PromptVersionNEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldPromptVersion, v))
}

// PromptVersionIn applies the In predicate on the "prompt_version" field.
func PromptVersionIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldPromptVersion, vs...))
}

// PromptVersionNotIn applies the NotIn predicate on the "prompt_version" field.
func PromptVersionNotIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldPromptVersion, vs...))
}

// PromptVersionGT applies the GT predicate on the "prompt_version" field.
func PromptVersionGT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldPromptVersion, v))
}

// PromptVersionGTE applies the GTE predicate on the "prompt_version" field.
func PromptVersionGTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldPromptVersion, v))
}

// PromptVersionLT applies the LT predicate on the "prompt_version" field.
func PromptVersionLT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldPromptVersion, v))
}

// PromptVersionLTE applies the LTE predicate on the "prompt_version" field.
func PromptVersionLTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldPromptVersion, v))
}

// PromptVersionContains applies the Contains predicate on the "prompt_version" field.
func PromptVersionContains(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContains(FieldPromptVersion, v))
}

// PromptVersionHasPrefix applies the HasPrefix predicate on the "prompt_version" field.
func PromptVersionHasPrefix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasPrefix(FieldPromptVersion, v))
}

// PromptVersionHasSuffix applies the HasSuffix predicate on the "prompt_version" field.
func PromptVersionHasSuffix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasSuffix(FieldPromptVersion, v))
}

// PromptVersionIsNil applies the IsNil predicate on the "prompt_version" field.
func PromptVersionIsNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIsNull(FieldPromptVersion))
}

// PromptVersionNotNil applies the NotNil predicate on the "prompt_version" field.
func PromptVersionNotNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotNull(FieldPromptVersion))
}

// PromptVersionEqualFold applies the EqualFold predicate on the "prompt_version" field.
func PromptVersionEqualFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEqualFold(FieldPromptVersion, v))
}

// PromptVersionContainsFold applies the ContainsFold predicate on the "prompt_version" field.
func PromptVersionContainsFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContainsFold(FieldPromptVersion, v))
}

// RawJSONEQ applies the EQ predicate on the "raw_json" field.
func RawJSONEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldRawJSON, v))
}

// RawJSONNEQ applies the NEQ predicate on the "raw_json" field.
func RawJSONNEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldRawJSON, v))
}

// RawJSONIn applies the In predicate on the "raw_json" field.
func RawJSONIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldRawJSON, vs...))
}

// RawJSONNotIn applies the NotIn predicate on the "raw_json" field.
func RawJSONNotIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldRawJSON, vs...))
}

// RawJSONGT applies the GT predicate on the "raw_json" field.
func RawJSONGT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldRawJSON, v))
}

// RawJSONGTE applies the GTE predicate on the "raw_json" field.
func RawJSONGTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldRawJSON, v))
}

// RawJSONLT applies the LT predicate on the "raw_json" field.
func RawJSONLT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldRawJSON, v))
}

// RawJSONLTE applies the LTE predicate on the "raw_json" field.
func RawJSONLTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldRawJSON, v))
}

// RawJSONContains applies the Contains predicate on the "raw_json" field.
func RawJSONContains(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContains(FieldRawJSON, v))
}

// RawJSONHasPrefix applies the HasPrefix predicate on the "raw_json" field.
func RawJSONHasPrefix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasPrefix(FieldRawJSON, v))
}

// RawJSONHasSuffix applies the HasSuffix predicate on the "raw_json" field.
func RawJSONHasSuffix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasSuffix(FieldRawJSON, v))
}

// RawJSONIsNil applies the IsNil predicate on the "raw_json" field.
func RawJSONIsNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIsNull(FieldRawJSON))
}

// RawJSONNotNil applies the NotNil predicate on the "raw_json" field.
func RawJSONNotNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotNull(FieldRawJSON))
}

// RawJSONEqualFold applies the EqualFold predicate on the "raw_json" field.
func RawJSONEqualFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEqualFold(FieldRawJSON, v))
}

// RawJSONContainsFold applies the ContainsFold predicate on the "raw_json" field.
func RawJSONContainsFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContainsFold(FieldRawJSON, v))
}

// CalendarEventIDEQ applies the EQ predicate on the "calendar_event_id" field.
func CalendarEventIDEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldCalendarEventID, v))
}

// CalendarEventIDNEQ applies the NEQ predicate on the "calendar_event_id" field.
func CalendarEventIDNEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldCalendarEventID, v))
}

// CalendarEventIDIn applies the In predicate on the "calendar_event_id" field.
func CalendarEventIDIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldCalendarEventID, vs...))
}

// CalendarEventIDNotIn applies the NotIn predicate on the "calendar_event_id" field.
func CalendarEventIDNotIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldCalendarEventID, vs...))
}

// CalendarEventIDGT applies the GT predicate on the "calendar_event_id" field.
func CalendarEventIDGT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldCalendarEventID, v))
}

// CalendarEventIDGTE applies the GTE predicate on the "calendar_event_id" field.
func CalendarEventIDGTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldCalendarEventID, v))
}

// CalendarEventIDLT applies the LT predicate on the "calendar_event_id" field.
func CalendarEventIDLT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldCalendarEventID, v))
}

// CalendarEventIDLTE applies the LTE predicate on the "calendar_event_id" field.
func CalendarEventIDLTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldCalendarEventID, v))
}

// CalendarEventIDContains applies the Contains predicate on the "calendar_event_id" field.
func CalendarEventIDContains(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContains(FieldCalendarEventID, v))
}

// CalendarEventIDHasPrefix applies the HasPrefix predicate on the "calendar_event_id" field.
func CalendarEventIDHasPrefix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasPrefix(FieldCalendarEventID, v))
}

// CalendarEventIDHasSuffix applies the HasSuffix predicate on the "calendar_event_id" field.
func CalendarEventIDHasSuffix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasSuffix(FieldCalendarEventID, v))
}

// CalendarEventIDIsNil applies the IsNil predicate on the "calendar_event_id" field.
func CalendarEventIDIsNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIsNull(FieldCalendarEventID))
}

// CalendarEventIDNotNil applies the NotNil predicate on the "calendar_event_id" field.
func CalendarEventIDNotNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotNull(FieldCalendarEventID))
}

// CalendarEventIDEqualFold applies the EqualFold predicate on the "calendar_event_id" field.
func CalendarEventIDEqualFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEqualFold(FieldCalendarEventID, v))
}

// CalendarEventIDContainsFold applies the ContainsFold predicate on the "calendar_event_id" field.
func CalendarEventIDContainsFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContainsFold(FieldCalendarEventID, v))
}

// CalendarIcalUIDEQ applies the EQ predicate on the "calendar_ical_uid" field.
func CalendarIcalUIDEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldCalendarIcalUID, v))
}

// CalendarIcalUIDNEQ applies the NEQ predicate on the "calendar_ical_uid" field.
func CalendarIcalUIDNEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldCalendarIcalUID, v))
}

// CalendarIcalUIDIn applies the In predicate on the "calendar_ical_uid" field.
func CalendarIcalUIDIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldCalendarIcalUID, vs...))
}

// CalendarIcalUIDNotIn applies the NotIn predicate on the "calendar_ical_uid" field.
func CalendarIcalUIDNotIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldCalendarIcalUID, vs...))
}

// CalendarIcalUIDGT applies the GT predicate on the "calendar_ical_uid" field.
func CalendarIcalUIDGT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldCalendarIcalUID, v))
}

// CalendarIcalUIDGTE applies the GTE predicate on the "calendar_ical_uid" field.
func CalendarIcalUIDGTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldCalendarIcalUID, v))
}

// CalendarIcalUIDLT applies the LT predicate on the "calendar_ical_uid" field.
func CalendarIcalUIDLT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldCalendarIcalUID, v))
}

// CalendarIcalUIDLTE applies the LTE predicate on the "calendar_ical_uid" field.
func CalendarIcalUIDLTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldCalendarIcalUID, v))
}

// CalendarIcalUIDContains applies the Contains predicate on the "calendar_ical_uid" field.
func CalendarIcalUIDContains(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContains(FieldCalendarIcalUID, v))
}

// CalendarIcalUIDHasPrefix applies the HasPrefix predicate on the "calendar_ical_uid" field.
func CalendarIcalUIDHasPrefix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasPrefix(FieldCalendarIcalUID, v))
}

// CalendarIcalUIDHasSuffix applies the HasSuffix predicate on the "calendar_ical_uid" field.
func CalendarIcalUIDHasSuffix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasSuffix(FieldCalendarIcalUID, v))
}

// CalendarIcalUIDIsNil applies the IsNil predicate on the "calendar_ical_uid" field.
func CalendarIcalUIDIsNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIsNull(FieldCalendarIcalUID))
}

// CalendarIcalUIDNotNil applies the NotNil predicate on the "calendar_ical_uid" field.
func CalendarIcalUIDNotNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotNull(FieldCalendarIcalUID))
}

// CalendarIcalUIDEqualFold applies the EqualFold predicate on the "calendar_ical_uid" field.
func CalendarIcalUIDEqualFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEqualFold(FieldCalendarIcalUID, v))
}

// CalendarIcalUIDContainsFold applies the ContainsFold predicate on the "calendar_ical_uid" field.
func CalendarIcalUIDContainsFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContainsFold(FieldCalendarIcalUID, v))
}

// CalendarCheckedAtEQ applies the EQ predicate on the "calendar_checked_at" field.
func CalendarCheckedAtEQ(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldCalendarCheckedAt, v))
}

// CalendarCheckedAtNEQ applies the NEQ predicate on the "calendar_checked_at" field.
func CalendarCheckedAtNEQ(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldCalendarCheckedAt, v))
}

// CalendarCheckedAtIn applies the In predicate on the "calendar_checked_at" field.
func CalendarCheckedAtIn(vs ...time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldCalendarCheckedAt, vs...))
}

// CalendarCheckedAtNotIn applies the NotIn predicate on the "calendar_checked_at" field.
func CalendarCheckedAtNotIn(vs ...time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldCalendarCheckedAt, vs...))
}

// CalendarCheckedAtGT applies the GT predicate on the "calendar_checked_at" field.
func CalendarCheckedAtGT(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldCalendarCheckedAt, v))
}

// CalendarCheckedAtGTE applies the GTE predicate on the "calendar_checked_at" field.
func CalendarCheckedAtGTE(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldCalendarCheckedAt, v))
}

// CalendarCheckedAtLT applies the LT predicate on the "calendar_checked_at" field.
func CalendarCheckedAtLT(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldCalendarCheckedAt, v))
}

// CalendarCheckedAtLTE applies the LTE predicate on the "calendar_checked_at" field.
func CalendarCheckedAtLTE(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldCalendarCheckedAt, v))
}

// CalendarCheckedAtIsNil applies the IsNil predicate on the "calendar_checked_at" field.
func CalendarCheckedAtIsNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIsNull(FieldCalendarCheckedAt))
}

// CalendarCheckedAtNotNil applies the NotNil predicate on the "calendar_checked_at" field.
func CalendarCheckedAtNotNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotNull(FieldCalendarCheckedAt))
}

// PublishedAtEQ applies the EQ predicate on the "published_at" field.
func PublishedAtEQ(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldPublishedAt, v))
}

// PublishedAtNEQ applies the NEQ predicate on the "published_at" field.
func PublishedAtNEQ(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldPublishedAt, v))
}

// PublishedAtIn applies the In predicate on the "published_at" field.
func PublishedAtIn(vs ...time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldPublishedAt, vs...))
}

// PublishedAtNotIn applies the NotIn predicate on the "published_at" field.
func PublishedAtNotIn(vs ...time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldPublishedAt, vs...))
}

// PublishedAtGT applies the GT predicate on the "published_at" field.
func PublishedAtGT(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldPublishedAt, v))
}

// PublishedAtGTE applies the GTE predicate on the "published_at" field.
func PublishedAtGTE(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldPublishedAt, v))
}

// PublishedAtLT applies the LT predicate on the "published_at" field.
func PublishedAtLT(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldPublishedAt, v))
}

// PublishedAtLTE applies the LTE predicate on the "published_at" field.
func PublishedAtLTE(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldPublishedAt, v))
}

// PublishedAtIsNil applies the IsNil predicate on the "published_at" field.
func PublishedAtIsNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIsNull(FieldPublishedAt))
}

// PublishedAtNotNil applies the NotNil predicate on the "published_at" field.
func PublishedAtNotNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotNull(FieldPublishedAt))
}

// HiddenAtEQ applies the EQ predicate on the "hidden_at" field.
func HiddenAtEQ(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldHiddenAt, v))
}

// HiddenAtNEQ applies the NEQ predicate on the "hidden_at" field.
func HiddenAtNEQ(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldHiddenAt, v))
}

// HiddenAtIn applies the In predicate on the "hidden_at" field.
func HiddenAtIn(vs ...time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldHiddenAt, vs...))
}

// HiddenAtNotIn applies the NotIn predicate on the "hidden_at" field.
func HiddenAtNotIn(vs ...time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldHiddenAt, vs...))
}

// HiddenAtGT applies the GT predicate on the "hidden_at" field.
func HiddenAtGT(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldHiddenAt, v))
}

// HiddenAtGTE applies the GTE predicate on the "hidden_at" field.
func HiddenAtGTE(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldHiddenAt, v))
}

// HiddenAtLT applies the LT predicate on the "hidden_at" field.
func HiddenAtLT(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldHiddenAt, v))
}

// HiddenAtLTE applies the LTE predicate on the "hidden_at" field.
func HiddenAtLTE(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldHiddenAt, v))
}

// HiddenAtIsNil applies the IsNil predicate on the "hidden_at" field.
func HiddenAtIsNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIsNull(FieldHiddenAt))
}

// HiddenAtNotNil applies the NotNil predicate on the "hidden_at" field.
func HiddenAtNotNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotNull(FieldHiddenAt))
}

// ExtractedAtEQ applies the EQ predicate on the "extracted_at" field.
func ExtractedAtEQ(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldExtractedAt, v))
}

// ExtractedAtNEQ applies the NEQ predicate on the "extracted_at" field.
func ExtractedAtNEQ(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldExtractedAt, v))
}

// ExtractedAtIn applies the In predicate on the "extracted_at" field.
func ExtractedAtIn(vs ...time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldExtractedAt, vs...))
}

// ExtractedAtNotIn applies the NotIn predicate on the "extracted_at" field.
func ExtractedAtNotIn(vs ...time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldExtractedAt, vs...))
}

// ExtractedAtGT applies the GT predicate on the "extracted_at" field.
func ExtractedAtGT(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldExtractedAt, v))
}

// ExtractedAtGTE applies the GTE predicate on the "extracted_at" field.
func ExtractedAtGTE(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldExtractedAt, v))
}

// ExtractedAtLT applies the LT predicate on the "extracted_at" field.
func ExtractedAtLT(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldExtractedAt, v))
}

// ExtractedAtLTE applies the LTE predicate on the "extracted_at" field.
func ExtractedAtLTE(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldExtractedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EventRecord) predicate.EventRecord {
	return predicate.EventRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EventRecord) predicate.EventRecord {
	return predicate.EventRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EventRecord) predicate.EventRecord {
	return predicate.EventRecord(sql.NotPredicates(p))
}
