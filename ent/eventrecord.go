// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mailscope/mailscope/ent/eventrecord"
)

// EventRecord is the model entity for the EventRecord schema.
type EventRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Status holds the value of the "status" field.
	Status eventrecord.Status `json:"status,omitempty"`
	// Error holds the value of the "error" field.
	Error *string `json:"error,omitempty"`
	// EventName holds the value of the "event_name" field.
	EventName *string `json:"event_name,omitempty"`
	// Theatre/Comedy/Opera/Ballet/Cinema/Social/Other
	EventType *string `json:"event_type,omitempty"`
	// Date only, midnight UTC
	EventDate *time.Time `json:"event_date,omitempty"`
	// HH:MM or HH:MM:SS, local to timezone
	StartTime *string `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime *string `json:"end_time,omitempty"`
	// Timezone holds the value of the "timezone" field.
	Timezone *string `json:"timezone,omitempty"`
	// EndTimeInferred holds the value of the "end_time_inferred" field.
	EndTimeInferred bool `json:"end_time_inferred,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float64 `json:"confidence,omitempty"`
	// Model holds the value of the "model" field.
	Model *string `json:"model,omitempty"`
	// PromptVersion holds the value of the "prompt_version" field.
	PromptVersion *string `json:"prompt_version,omitempty"`
	// Model output as returned, for audit
	RawJSON *string `json:"raw_json,omitempty"`
	// CalendarEventID holds the value of the "calendar_event_id" field.
	CalendarEventID *string `json:"calendar_event_id,omitempty"`
	// CalendarIcalUID holds the value of the "calendar_ical_uid" field.
	CalendarIcalUID *string `json:"calendar_ical_uid,omitempty"`
	// CalendarCheckedAt holds the value of the "calendar_checked_at" field.
	CalendarCheckedAt *time.Time `json:"calendar_checked_at,omitempty"`
	// PublishedAt holds the value of the "published_at" field.
	PublishedAt *time.Time `json:"published_at,omitempty"`
	// HiddenAt holds the value of the "hidden_at" field.
	HiddenAt *time.Time `json:"hidden_at,omitempty"`
	// ExtractedAt holds the value of the "extracted_at" field.
	ExtractedAt time.Time `json:"extracted_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EventRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case eventrecord.FieldEndTimeInferred:
			values[i] = new(sql.NullBool)
		case eventrecord.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case eventrecord.FieldID, eventrecord.FieldStatus, eventrecord.FieldError, eventrecord.FieldEventName, eventrecord.FieldEventType, eventrecord.FieldStartTime, eventrecord.FieldEndTime, eventrecord.FieldTimezone, eventrecord.FieldModel, eventrecord.FieldPromptVersion, eventrecord.FieldRawJSON, eventrecord.FieldCalendarEventID, eventrecord.FieldCalendarIcalUID:
			values[i] = new(sql.NullString)
		case eventrecord.FieldEventDate, eventrecord.FieldCalendarCheckedAt, eventrecord.FieldPublishedAt, eventrecord.FieldHiddenAt, eventrecord.FieldExtractedAt, eventrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EventRecord fields.
func (_m *EventRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case eventrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case eventrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = eventrecord.Status(value.String)
			}
		case eventrecord.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = new(string)
				*_m.Error = value.String
			}
		case eventrecord.FieldEventName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_name", values[i])
			} else if value.Valid {
				_m.EventName = new(string)
				*_m.EventName = value.String
			}
		case eventrecord.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = new(string)
				*_m.EventType = value.String
			}
		case eventrecord.FieldEventDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field event_date", values[i])
			} else if value.Valid {
				_m.EventDate = new(time.Time)
				*_m.EventDate = value.Time
			}
		case eventrecord.FieldStartTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = new(string)
				*_m.StartTime = value.String
			}
		case eventrecord.FieldEndTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = new(string)
				*_m.EndTime = value.String
			}
		case eventrecord.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = new(string)
				*_m.Timezone = value.String
			}
		case eventrecord.FieldEndTimeInferred:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field end_time_inferred", values[i])
			} else if value.Valid {
				_m.EndTimeInferred = value.Bool
			}
		case eventrecord.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float64)
				*_m.Confidence = value.Float64
			}
		case eventrecord.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = new(string)
				*_m.Model = value.String
			}
		case eventrecord.FieldPromptVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_version", values[i])
			} else if value.Valid {
				_m.PromptVersion = new(string)
				*_m.PromptVersion = value.String
			}
		case eventrecord.FieldRawJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_json", values[i])
			} else if value.Valid {
				_m.RawJSON = new(string)
				*_m.RawJSON = value.String
			}
		case eventrecord.FieldCalendarEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field calendar_event_id", values[i])
			} else if value.Valid {
				_m.CalendarEventID = new(string)
				*_m.CalendarEventID = value.String
			}
		case eventrecord.FieldCalendarIcalUID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field calendar_ical_uid", values[i])
			} else if value.Valid {
				_m.CalendarIcalUID = new(string)
				*_m.CalendarIcalUID = value.String
			}
		case eventrecord.FieldCalendarCheckedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field calendar_checked_at", values[i])
			} else if value.Valid {
				_m.CalendarCheckedAt = new(time.Time)
				*_m.CalendarCheckedAt = value.Time
			}
		case eventrecord.FieldPublishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field published_at", values[i])
			} else if value.Valid {
				_m.PublishedAt = new(time.Time)
				*_m.PublishedAt = value.Time
			}
		case eventrecord.FieldHiddenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field hidden_at", values[i])
			} else if value.Valid {
				_m.HiddenAt = new(time.Time)
				*_m.HiddenAt = value.Time
			}
		case eventrecord.FieldExtractedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_at", values[i])
			} else if value.Valid {
				_m.ExtractedAt = value.Time
			}
		case eventrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EventRecord.
// This includes values selected through modifiers, order, etc.
func (_m *EventRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EventRecord.
// Note that you need to call EventRecord.Unwrap() before calling this method if this EventRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EventRecord) Update() *EventRecordUpdateOne {
	return NewEventRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EventRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EventRecord) Unwrap() *EventRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EventRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EventRecord) String() string {
	var builder strings.Builder
	builder.WriteString("EventRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.Error; v != nil {
		builder.WriteString("error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EventName; v != nil {
		builder.WriteString("event_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EventType; v != nil {
		builder.WriteString("event_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EventDate; v != nil {
		builder.WriteString("event_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.StartTime; v != nil {
		builder.WriteString("start_time=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EndTime; v != nil {
		builder.WriteString("end_time=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Timezone; v != nil {
		builder.WriteString("timezone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("end_time_inferred=")
	builder.WriteString(fmt.Sprintf("%v", _m.EndTimeInferred))
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Model; v != nil {
		builder.WriteString("model=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PromptVersion; v != nil {
		builder.WriteString("prompt_version=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RawJSON; v != nil {
		builder.WriteString("raw_json=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CalendarEventID; v != nil {
		builder.WriteString("calendar_event_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CalendarIcalUID; v != nil {
		builder.WriteString("calendar_ical_uid=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CalendarCheckedAt; v != nil {
		builder.WriteString("calendar_checked_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PublishedAt; v != nil {
		builder.WriteString("published_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.HiddenAt; v != nil {
		builder.WriteString("hidden_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("extracted_at=")
	builder.WriteString(_m.ExtractedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EventRecords is a parsable slice of EventRecord.
type EventRecords []*EventRecord
