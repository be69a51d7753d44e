// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mailscope/mailscope/ent/paymentrecord"
	"github.com/shopspring/decimal"
)

// PaymentRecord is the model entity for the PaymentRecord schema.
type PaymentRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Status holds the value of the "status" field.
	Status paymentrecord.Status `json:"status,omitempty"`
	// Error holds the value of the "error" field.
	Error *string `json:"error,omitempty"`
	// ItemName holds the value of the "item_name" field.
	ItemName *string `json:"item_name,omitempty"`
	// VendorName holds the value of the "vendor_name" field.
	VendorName *string `json:"vendor_name,omitempty"`
	// Food/Entertainment/Technology/Lifestyle/Domestic Bills/Other
	ItemCategory *string `json:"item_category,omitempty"`
	// CostAmount holds the value of the "cost_amount" field.
	CostAmount *decimal.Decimal `json:"cost_amount,omitempty"`
	// ISO 4217 code, e.g. GBP
	CostCurrency *string `json:"cost_currency,omitempty"`
	// IsRecurring holds the value of the "is_recurring" field.
	IsRecurring *bool `json:"is_recurring,omitempty"`
	// daily/weekly/biweekly/monthly/quarterly/yearly
	Frequency *string `json:"frequency,omitempty"`
	// PaymentDate holds the value of the "payment_date" field.
	PaymentDate *time.Time `json:"payment_date,omitempty"`
	// vendor|amount|currency|date, for cross-message dedup
	PaymentFingerprint *string `json:"payment_fingerprint,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float64 `json:"confidence,omitempty"`
	// Model holds the value of the "model" field.
	Model *string `json:"model,omitempty"`
	// PromptVersion holds the value of the "prompt_version" field.
	PromptVersion *string `json:"prompt_version,omitempty"`
	// RawJSON holds the value of the "raw_json" field.
	RawJSON *string `json:"raw_json,omitempty"`
	// ExtractedAt holds the value of the "extracted_at" field.
	ExtractedAt time.Time `json:"extracted_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PaymentRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case paymentrecord.FieldCostAmount:
			values[i] = &sql.NullScanner{S: new(decimal.Decimal)}
		case paymentrecord.FieldIsRecurring:
			values[i] = new(sql.NullBool)
		case paymentrecord.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case paymentrecord.FieldID, paymentrecord.FieldStatus, paymentrecord.FieldError, paymentrecord.FieldItemName, paymentrecord.FieldVendorName, paymentrecord.FieldItemCategory, paymentrecord.FieldCostCurrency, paymentrecord.FieldFrequency, paymentrecord.FieldPaymentFingerprint, paymentrecord.FieldModel, paymentrecord.FieldPromptVersion, paymentrecord.FieldRawJSON:
			values[i] = new(sql.NullString)
		case paymentrecord.FieldPaymentDate, paymentrecord.FieldExtractedAt, paymentrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PaymentRecord fields.
func (_m *PaymentRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case paymentrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case paymentrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = paymentrecord.Status(value.String)
			}
		case paymentrecord.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = new(string)
				*_m.Error = value.String
			}
		case paymentrecord.FieldItemName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_name", values[i])
			} else if value.Valid {
				_m.ItemName = new(string)
				*_m.ItemName = value.String
			}
		case paymentrecord.FieldVendorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_name", values[i])
			} else if value.Valid {
				_m.VendorName = new(string)
				*_m.VendorName = value.String
			}
		case paymentrecord.FieldItemCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_category", values[i])
			} else if value.Valid {
				_m.ItemCategory = new(string)
				*_m.ItemCategory = value.String
			}
		case paymentrecord.FieldCostAmount:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field cost_amount", values[i])
			} else if value.Valid {
				_m.CostAmount = new(decimal.Decimal)
				*_m.CostAmount = *value.S.(*decimal.Decimal)
			}
		case paymentrecord.FieldCostCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cost_currency", values[i])
			} else if value.Valid {
				_m.CostCurrency = new(string)
				*_m.CostCurrency = value.String
			}
		case paymentrecord.FieldIsRecurring:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_recurring", values[i])
			} else if value.Valid {
				_m.IsRecurring = new(bool)
				*_m.IsRecurring = value.Bool
			}
		case paymentrecord.FieldFrequency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field frequency", values[i])
			} else if value.Valid {
				_m.Frequency = new(string)
				*_m.Frequency = value.String
			}
		case paymentrecord.FieldPaymentDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field payment_date", values[i])
			} else if value.Valid {
				_m.PaymentDate = new(time.Time)
				*_m.PaymentDate = value.Time
			}
		case paymentrecord.FieldPaymentFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_fingerprint", values[i])
			} else if value.Valid {
				_m.PaymentFingerprint = new(string)
				*_m.PaymentFingerprint = value.String
			}
		case paymentrecord.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float64)
				*_m.Confidence = value.Float64
			}
		case paymentrecord.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = new(string)
				*_m.Model = value.String
			}
		case paymentrecord.FieldPromptVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_version", values[i])
			} else if value.Valid {
				_m.PromptVersion = new(string)
				*_m.PromptVersion = value.String
			}
		case paymentrecord.FieldRawJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_json", values[i])
			} else if value.Valid {
				_m.RawJSON = new(string)
				*_m.RawJSON = value.String
			}
		case paymentrecord.FieldExtractedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_at", values[i])
			} else if value.Valid {
				_m.ExtractedAt = value.Time
			}
		case paymentrecord.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PaymentRecord.
// This includes values selected through modifiers, order, etc.
func (_m *PaymentRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PaymentRecord.
// Note that you need to call PaymentRecord.Unwrap() before calling this method if this PaymentRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PaymentRecord) Update() *PaymentRecordUpdateOne {
	return NewPaymentRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PaymentRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PaymentRecord) Unwrap() *PaymentRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PaymentRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PaymentRecord) String() string {
	var builder strings.Builder
	builder.WriteString("PaymentRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.Error; v != nil {
		builder.WriteString("error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ItemName; v != nil {
		builder.WriteString("item_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.VendorName; v != nil {
		builder.WriteString("vendor_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ItemCategory; v != nil {
		builder.WriteString("item_category=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CostAmount; v != nil {
		builder.WriteString("cost_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CostCurrency; v != nil {
		builder.WriteString("cost_currency=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.IsRecurring; v != nil {
		builder.WriteString("is_recurring=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Frequency; v != nil {
		builder.WriteString("frequency=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PaymentDate; v != nil {
		builder.WriteString("payment_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PaymentFingerprint; v != nil {
		builder.WriteString("payment_fingerprint=")
		builder.WriteString(*v)
	}
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
	builder.WriteString("extracted_at=")
	builder.WriteString(_m.ExtractedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PaymentRecords is a parsable slice of PaymentRecord.
type PaymentRecords []*PaymentRecord
