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
	"github.com/mailscope/mailscope/ent/paymentrecord"
	"github.com/shopspring/decimal"
)

// PaymentRecordCreate is the builder for creating a PaymentRecord entity.
type PaymentRecordCreate struct {
	config
	mutation *PaymentRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStatus sets the "status" field.
func (_c *PaymentRecordCreate) SetStatus(v paymentrecord.Status) *PaymentRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableStatus(v *paymentrecord.Status) *PaymentRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *PaymentRecordCreate) SetError(v string) *PaymentRecordCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableError(v *string) *PaymentRecordCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetItemName sets the "item_name" field.
func (_c *PaymentRecordCreate) SetItemName(v string) *PaymentRecordCreate {
	_c.mutation.SetItemName(v)
	return _c
}

// SetNillableItemName sets the "item_name" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableItemName(v *string) *PaymentRecordCreate {
	if v != nil {
		_c.SetItemName(*v)
	}
	return _c
}

// SetVendorName sets the "vendor_name" field.
func (_c *PaymentRecordCreate) SetVendorName(v string) *PaymentRecordCreate {
	_c.mutation.SetVendorName(v)
	return _c
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableVendorName(v *string) *PaymentRecordCreate {
	if v != nil {
		_c.SetVendorName(*v)
	}
	return _c
}

// SetItemCategory sets the "item_category" field.
func (_c *PaymentRecordCreate) SetItemCategory(v string) *PaymentRecordCreate {
	_c.mutation.SetItemCategory(v)
	return _c
}

// SetNillableItemCategory sets the "item_category" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableItemCategory(v *string) *PaymentRecordCreate {
	if v != nil {
		_c.SetItemCategory(*v)
	}
	return _c
}

// SetCostAmount sets the "cost_amount" field.
func (_c *PaymentRecordCreate) SetCostAmount(v decimal.Decimal) *PaymentRecordCreate {
	_c.mutation.SetCostAmount(v)
	return _c
}

// SetNillableCostAmount sets the "cost_amount" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableCostAmount(v *decimal.Decimal) *PaymentRecordCreate {
	if v != nil {
		_c.SetCostAmount(*v)
	}
	return _c
}

// SetCostCurrency sets the "cost_currency" field.
func (_c *PaymentRecordCreate) SetCostCurrency(v string) *PaymentRecordCreate {
	_c.mutation.SetCostCurrency(v)
	return _c
}

// SetNillableCostCurrency sets the "cost_currency" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableCostCurrency(v *string) *PaymentRecordCreate {
	if v != nil {
		_c.SetCostCurrency(*v)
	}
	return _c
}

// SetIsRecurring sets the "is_recurring" field.
func (_c *PaymentRecordCreate) SetIsRecurring(v bool) *PaymentRecordCreate {
	_c.mutation.SetIsRecurring(v)
	return _c
}

// SetNillableIsRecurring sets the "is_recurring" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableIsRecurring(v *bool) *PaymentRecordCreate {
	if v != nil {
		_c.SetIsRecurring(*v)
	}
	return _c
}

// SetFrequency sets the "frequency" field.
func (_c *PaymentRecordCreate) SetFrequency(v string) *PaymentRecordCreate {
	_c.mutation.SetFrequency(v)
	return _c
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableFrequency(v *string) *PaymentRecordCreate {
	if v != nil {
		_c.SetFrequency(*v)
	}
	return _c
}

// SetPaymentDate sets the "payment_date" field.
func (_c *PaymentRecordCreate) SetPaymentDate(v time.Time) *PaymentRecordCreate {
	_c.mutation.SetPaymentDate(v)
	return _c
}

// SetNillablePaymentDate sets the "payment_date" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillablePaymentDate(v *time.Time) *PaymentRecordCreate {
	if v != nil {
		_c.SetPaymentDate(*v)
	}
	return _c
}

// SetPaymentFingerprint sets the "payment_fingerprint" field.
func (_c *PaymentRecordCreate) SetPaymentFingerprint(v string) *PaymentRecordCreate {
	_c.mutation.SetPaymentFingerprint(v)
	return _c
}

// SetNillablePaymentFingerprint sets the "payment_fingerprint" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillablePaymentFingerprint(v *string) *PaymentRecordCreate {
	if v != nil {
		_c.SetPaymentFingerprint(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *PaymentRecordCreate) SetConfidence(v float64) *PaymentRecordCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableConfidence(v *float64) *PaymentRecordCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *PaymentRecordCreate) SetModel(v string) *PaymentRecordCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableModel(v *string) *PaymentRecordCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetPromptVersion sets the "prompt_version" field.
func (_c *PaymentRecordCreate) SetPromptVersion(v string) *PaymentRecordCreate {
	_c.mutation.SetPromptVersion(v)
	return _c
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillablePromptVersion(v *string) *PaymentRecordCreate {
	if v != nil {
		_c.SetPromptVersion(*v)
	}
	return _c
}

// SetRawJSON sets the "raw_json" field.
func (_c *PaymentRecordCreate) SetRawJSON(v string) *PaymentRecordCreate {
	_c.mutation.SetRawJSON(v)
	return _c
}

// SetNillableRawJSON sets the "raw_json" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableRawJSON(v *string) *PaymentRecordCreate {
	if v != nil {
		_c.SetRawJSON(*v)
	}
	return _c
}

// SetExtractedAt sets the "extracted_at" field.
func (_c *PaymentRecordCreate) SetExtractedAt(v time.Time) *PaymentRecordCreate {
	_c.mutation.SetExtractedAt(v)
	return _c
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableExtractedAt(v *time.Time) *PaymentRecordCreate {
	if v != nil {
		_c.SetExtractedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PaymentRecordCreate) SetUpdatedAt(v time.Time) *PaymentRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableUpdatedAt(v *time.Time) *PaymentRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PaymentRecordCreate) SetID(v string) *PaymentRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PaymentRecordMutation object of the builder.
func (_c *PaymentRecordCreate) Mutation() *PaymentRecordMutation {
	return _c.mutation
}

// Save creates the PaymentRecord in the database.
func (_c *PaymentRecordCreate) Save(ctx context.Context) (*PaymentRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PaymentRecordCreate) SaveX(ctx context.Context) *PaymentRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaymentRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaymentRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PaymentRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := paymentrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		v := paymentrecord.DefaultExtractedAt()
		_c.mutation.SetExtractedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := paymentrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PaymentRecordCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PaymentRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := paymentrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PaymentRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		return &ValidationError{Name: "extracted_at", err: errors.New(`ent: missing required field "PaymentRecord.extracted_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PaymentRecord.updated_at"`)}
	}
	return nil
}

func (_c *PaymentRecordCreate) sqlSave(ctx context.Context) (*PaymentRecord, error) {
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
			return nil, fmt.Errorf("unexpected PaymentRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PaymentRecordCreate) createSpec() (*PaymentRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &PaymentRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(paymentrecord.Table, sqlgraph.NewFieldSpec(paymentrecord.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(paymentrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(paymentrecord.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.ItemName(); ok {
		_spec.SetField(paymentrecord.FieldItemName, field.TypeString, value)
		_node.ItemName = &value
	}
	if value, ok := _c.mutation.VendorName(); ok {
		_spec.SetField(paymentrecord.FieldVendorName, field.TypeString, value)
		_node.VendorName = &value
	}
	if value, ok := _c.mutation.ItemCategory(); ok {
		_spec.SetField(paymentrecord.FieldItemCategory, field.TypeString, value)
		_node.ItemCategory = &value
	}
	if value, ok := _c.mutation.CostAmount(); ok {
		_spec.SetField(paymentrecord.FieldCostAmount, field.TypeFloat64, value)
		_node.CostAmount = &value
	}
	if value, ok := _c.mutation.CostCurrency(); ok {
		_spec.SetField(paymentrecord.FieldCostCurrency, field.TypeString, value)
		_node.CostCurrency = &value
	}
	if value, ok := _c.mutation.IsRecurring(); ok {
		_spec.SetField(paymentrecord.FieldIsRecurring, field.TypeBool, value)
		_node.IsRecurring = &value
	}
	if value, ok := _c.mutation.Frequency(); ok {
		_spec.SetField(paymentrecord.FieldFrequency, field.TypeString, value)
		_node.Frequency = &value
	}
	if value, ok := _c.mutation.PaymentDate(); ok {
		_spec.SetField(paymentrecord.FieldPaymentDate, field.TypeTime, value)
		_node.PaymentDate = &value
	}
	if value, ok := _c.mutation.PaymentFingerprint(); ok {
		_spec.SetField(paymentrecord.FieldPaymentFingerprint, field.TypeString, value)
		_node.PaymentFingerprint = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(paymentrecord.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(paymentrecord.FieldModel, field.TypeString, value)
		_node.Model = &value
	}
	if value, ok := _c.mutation.PromptVersion(); ok {
		_spec.SetField(paymentrecord.FieldPromptVersion, field.TypeString, value)
		_node.PromptVersion = &value
	}
	if value, ok := _c.mutation.RawJSON(); ok {
		_spec.SetField(paymentrecord.FieldRawJSON, field.TypeString, value)
		_node.RawJSON = &value
	}
	if value, ok := _c.mutation.ExtractedAt(); ok {
		_spec.SetField(paymentrecord.FieldExtractedAt, field.TypeTime, value)
		_node.ExtractedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(paymentrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PaymentRecord.Create().
//		SetStatus(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaymentRecordUpsert) {
//			SetStatus(v+v).
//		}).
//		Exec(ctx)
func (_c *PaymentRecordCreate) OnConflict(opts ...sql.ConflictOption) *PaymentRecordUpsertOne {
	_c.conflict = opts
	return &PaymentRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PaymentRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PaymentRecordCreate) OnConflictColumns(columns ...string) *PaymentRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PaymentRecordUpsertOne{
		create: _c,
	}
}

type (
	// PaymentRecordUpsertOne is the builder for "upsert"-ing
	//  one PaymentRecord node.
	PaymentRecordUpsertOne struct {
		create *PaymentRecordCreate
	}

	// PaymentRecordUpsert is the "OnConflict" setter.
	PaymentRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *PaymentRecordUpsert) SetStatus(v paymentrecord.Status) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateStatus() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldStatus)
	return u
}

// SetError sets the "error" field.
func (u *PaymentRecordUpsert) SetError(v string) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldError, v)
	return u
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateError() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldError)
	return u
}

// ClearError clears the value of the "error" field.
func (u *PaymentRecordUpsert) ClearError() *PaymentRecordUpsert {
	u.SetNull(paymentrecord.FieldError)
	return u
}

// SetItemName sets the "item_name" field.
func (u *PaymentRecordUpsert) SetItemName(v string) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldItemName, v)
	return u
}

// UpdateItemName sets the "item_name" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateItemName() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldItemName)
	return u
}

// ClearItemName clears the value of the "item_name" field.
func (u *PaymentRecordUpsert) ClearItemName() *PaymentRecordUpsert {
	u.SetNull(paymentrecord.FieldItemName)
	return u
}

// SetVendorName sets the "vendor_name" field.
func (u *PaymentRecordUpsert) SetVendorName(v string) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldVendorName, v)
	return u
}

// UpdateVendorName sets the "vendor_name" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateVendorName() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldVendorName)
	return u
}

// ClearVendorName clears the value of the "vendor_name" field.
func (u *PaymentRecordUpsert) ClearVendorName() *PaymentRecordUpsert {
	u.SetNull(paymentrecord.FieldVendorName)
	return u
}

// SetItemCategory sets the "item_category" field.
func (u *PaymentRecordUpsert) SetItemCategory(v string) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldItemCategory, v)
	return u
}

// UpdateItemCategory sets the "item_category" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateItemCategory() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldItemCategory)
	return u
}

// ClearItemCategory clears the value of the "item_category" field.
func (u *PaymentRecordUpsert) ClearItemCategory() *PaymentRecordUpsert {
	u.SetNull(paymentrecord.FieldItemCategory)
	return u
}

// SetCostAmount sets the "cost_amount" field.
func (u *PaymentRecordUpsert) SetCostAmount(v decimal.Decimal) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldCostAmount, v)
	return u
}

// UpdateCostAmount sets the "cost_amount" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateCostAmount() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldCostAmount)
	return u
}

// AddCostAmount adds v to the "cost_amount" field.
func (u *PaymentRecordUpsert) AddCostAmount(v decimal.Decimal) *PaymentRecordUpsert {
	u.Add(paymentrecord.FieldCostAmount, v)
	return u
}

// ClearCostAmount clears the value of the "cost_amount" field.
func (u *PaymentRecordUpsert) ClearCostAmount() *PaymentRecordUpsert {
	u.SetNull(paymentrecord.FieldCostAmount)
	return u
}

// SetCostCurrency sets the "cost_currency" field.
func (u *PaymentRecordUpsert) SetCostCurrency(v string) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldCostCurrency, v)
	return u
}

// UpdateCostCurrency sets the "cost_currency" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateCostCurrency() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldCostCurrency)
	return u
}

// ClearCostCurrency clears the value of the "cost_currency" field.
func (u *PaymentRecordUpsert) ClearCostCurrency() *PaymentRecordUpsert {
	u.SetNull(paymentrecord.FieldCostCurrency)
	return u
}

// SetIsRecurring sets the "is_recurring" field.
func (u *PaymentRecordUpsert) SetIsRecurring(v bool) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldIsRecurring, v)
	return u
}

// UpdateIsRecurring sets the "is_recurring" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateIsRecurring() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldIsRecurring)
	return u
}

// ClearIsRecurring clears the value of the "is_recurring" field.
func (u *PaymentRecordUpsert) ClearIsRecurring() *PaymentRecordUpsert {
	u.SetNull(paymentrecord.FieldIsRecurring)
	return u
}

// SetFrequency sets the "frequency" field.
func (u *PaymentRecordUpsert) SetFrequency(v string) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldFrequency, v)
	return u
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateFrequency() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldFrequency)
	return u
}

// ClearFrequency clears the value of the "frequency" field.
func (u *PaymentRecordUpsert) ClearFrequency() *PaymentRecordUpsert {
	u.SetNull(paymentrecord.FieldFrequency)
	return u
}

// SetPaymentDate sets the "payment_date" field.
func (u *PaymentRecordUpsert) SetPaymentDate(v time.Time) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldPaymentDate, v)
	return u
}

// UpdatePaymentDate sets the "payment_date" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdatePaymentDate() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldPaymentDate)
	return u
}

// ClearPaymentDate clears the value of the "payment_date" field.
func (u *PaymentRecordUpsert) ClearPaymentDate() *PaymentRecordUpsert {
	u.SetNull(paymentrecord.FieldPaymentDate)
	return u
}

// SetPaymentFingerprint sets the "payment_fingerprint" field.
func (u *PaymentRecordUpsert) SetPaymentFingerprint(v string) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldPaymentFingerprint, v)
	return u
}

// UpdatePaymentFingerprint sets the "payment_fingerprint" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdatePaymentFingerprint() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldPaymentFingerprint)
	return u
}

// ClearPaymentFingerprint clears the value of the "payment_fingerprint" field.
func (u *PaymentRecordUpsert) ClearPaymentFingerprint() *PaymentRecordUpsert {
	u.SetNull(paymentrecord.FieldPaymentFingerprint)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *PaymentRecordUpsert) SetConfidence(v float64) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateConfidence() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *PaymentRecordUpsert) AddConfidence(v float64) *PaymentRecordUpsert {
	u.Add(paymentrecord.FieldConfidence, v)
	return u
}

// ClearConfidence clears the value of the "confidence" field.
func (u *PaymentRecordUpsert) ClearConfidence() *PaymentRecordUpsert {
	u.SetNull(paymentrecord.FieldConfidence)
	return u
}

// SetModel sets the "model" field.
func (u *PaymentRecordUpsert) SetModel(v string) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateModel() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldModel)
	return u
}

// ClearModel clears the value of the "model" field.
func (u *PaymentRecordUpsert) ClearModel() *PaymentRecordUpsert {
	u.SetNull(paymentrecord.FieldModel)
	return u
}

// SetPromptVersion sets the "prompt_version" field.
func (u *PaymentRecordUpsert) SetPromptVersion(v string) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldPromptVersion, v)
	return u
}

// UpdatePromptVersion sets the "prompt_version" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdatePromptVersion() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldPromptVersion)
	return u
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (u *PaymentRecordUpsert) ClearPromptVersion() *PaymentRecordUpsert {
	u.SetNull(paymentrecord.FieldPromptVersion)
	return u
}

// SetRawJSON sets the "raw_json" field.
func (u *PaymentRecordUpsert) SetRawJSON(v string) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldRawJSON, v)
	return u
}

// UpdateRawJSON sets the "raw_json" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateRawJSON() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldRawJSON)
	return u
}

// ClearRawJSON clears the value of the "raw_json" field.
func (u *PaymentRecordUpsert) ClearRawJSON() *PaymentRecordUpsert {
	u.SetNull(paymentrecord.FieldRawJSON)
	return u
}

// SetExtractedAt sets the "extracted_at" field.
func (u *PaymentRecordUpsert) SetExtractedAt(v time.Time) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldExtractedAt, v)
	return u
}

// UpdateExtractedAt sets the "extracted_at" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateExtractedAt() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldExtractedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PaymentRecordUpsert) SetUpdatedAt(v time.Time) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateUpdatedAt() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PaymentRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(paymentrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaymentRecordUpsertOne) UpdateNewValues() *PaymentRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(paymentrecord.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PaymentRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PaymentRecordUpsertOne) Ignore() *PaymentRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaymentRecordUpsertOne) DoNothing() *PaymentRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaymentRecordCreate.OnConflict
// documentation for more info.
func (u *PaymentRecordUpsertOne) Update(set func(*PaymentRecordUpsert)) *PaymentRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaymentRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *PaymentRecordUpsertOne) SetStatus(v paymentrecord.Status) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateStatus() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetError sets the "error" field.
func (u *PaymentRecordUpsertOne) SetError(v string) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateError() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *PaymentRecordUpsertOne) ClearError() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearError()
	})
}

// SetItemName sets the "item_name" field.
func (u *PaymentRecordUpsertOne) SetItemName(v string) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetItemName(v)
	})
}

// UpdateItemName sets the "item_name" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateItemName() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateItemName()
	})
}

// ClearItemName clears the value of the "item_name" field.
func (u *PaymentRecordUpsertOne) ClearItemName() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearItemName()
	})
}

// SetVendorName sets the "vendor_name" field.
func (u *PaymentRecordUpsertOne) SetVendorName(v string) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetVendorName(v)
	})
}

// UpdateVendorName sets the "vendor_name" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateVendorName() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateVendorName()
	})
}

// ClearVendorName clears the value of the "vendor_name" field.
func (u *PaymentRecordUpsertOne) ClearVendorName() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearVendorName()
	})
}

// SetItemCategory sets the "item_category" field.
func (u *PaymentRecordUpsertOne) SetItemCategory(v string) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetItemCategory(v)
	})
}

// UpdateItemCategory sets the "item_category" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateItemCategory() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateItemCategory()
	})
}

// ClearItemCategory clears the value of the "item_category" field.
func (u *PaymentRecordUpsertOne) ClearItemCategory() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearItemCategory()
	})
}

// SetCostAmount sets the "cost_amount" field.
func (u *PaymentRecordUpsertOne) SetCostAmount(v decimal.Decimal) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetCostAmount(v)
	})
}

// AddCostAmount adds v to the "cost_amount" field.
func (u *PaymentRecordUpsertOne) AddCostAmount(v decimal.Decimal) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.AddCostAmount(v)
	})
}

// UpdateCostAmount sets the "cost_amount" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateCostAmount() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateCostAmount()
	})
}

// ClearCostAmount clears the value of the "cost_amount" field.
func (u *PaymentRecordUpsertOne) ClearCostAmount() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearCostAmount()
	})
}

// SetCostCurrency sets the "cost_currency" field.
func (u *PaymentRecordUpsertOne) SetCostCurrency(v string) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetCostCurrency(v)
	})
}

// UpdateCostCurrency sets the "cost_currency" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateCostCurrency() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateCostCurrency()
	})
}

// ClearCostCurrency clears the value of the "cost_currency" field.
func (u *PaymentRecordUpsertOne) ClearCostCurrency() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearCostCurrency()
	})
}

// SetIsRecurring sets the "is_recurring" field.
func (u *PaymentRecordUpsertOne) SetIsRecurring(v bool) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetIsRecurring(v)
	})
}

// UpdateIsRecurring sets the "is_recurring" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateIsRecurring() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateIsRecurring()
	})
}

// ClearIsRecurring clears the value of the "is_recurring" field.
func (u *PaymentRecordUpsertOne) ClearIsRecurring() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearIsRecurring()
	})
}

// SetFrequency sets the "frequency" field.
func (u *PaymentRecordUpsertOne) SetFrequency(v string) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetFrequency(v)
	})
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateFrequency() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateFrequency()
	})
}

// ClearFrequency clears the value of the "frequency" field.
func (u *PaymentRecordUpsertOne) ClearFrequency() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearFrequency()
	})
}

// SetPaymentDate sets the "payment_date" field.
func (u *PaymentRecordUpsertOne) SetPaymentDate(v time.Time) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetPaymentDate(v)
	})
}

// UpdatePaymentDate sets the "payment_date" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdatePaymentDate() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdatePaymentDate()
	})
}

// ClearPaymentDate clears the value of the "payment_date" field.
func (u *PaymentRecordUpsertOne) ClearPaymentDate() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearPaymentDate()
	})
}

// SetPaymentFingerprint sets the "payment_fingerprint" field.
func (u *PaymentRecordUpsertOne) SetPaymentFingerprint(v string) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetPaymentFingerprint(v)
	})
}

// UpdatePaymentFingerprint sets the "payment_fingerprint" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdatePaymentFingerprint() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdatePaymentFingerprint()
	})
}

// ClearPaymentFingerprint clears the value of the "payment_fingerprint" field.
func (u *PaymentRecordUpsertOne) ClearPaymentFingerprint() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearPaymentFingerprint()
	})
}

// SetConfidence sets the "confidence" field.
func (u *PaymentRecordUpsertOne) SetConfidence(v float64) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *PaymentRecordUpsertOne) AddConfidence(v float64) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateConfidence() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateConfidence()
	})
}

// ClearConfidence clears the value of the "confidence" field.
func (u *PaymentRecordUpsertOne) ClearConfidence() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearConfidence()
	})
}

// SetModel sets the "model" field.
func (u *PaymentRecordUpsertOne) SetModel(v string) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateModel() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *PaymentRecordUpsertOne) ClearModel() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearModel()
	})
}

// SetPromptVersion sets the "prompt_version" field.
func (u *PaymentRecordUpsertOne) SetPromptVersion(v string) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetPromptVersion(v)
	})
}

// UpdatePromptVersion sets the "prompt_version" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdatePromptVersion() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdatePromptVersion()
	})
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (u *PaymentRecordUpsertOne) ClearPromptVersion() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearPromptVersion()
	})
}

// SetRawJSON sets the "raw_json" field.
func (u *PaymentRecordUpsertOne) SetRawJSON(v string) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetRawJSON(v)
	})
}

// UpdateRawJSON sets the "raw_json" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateRawJSON() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateRawJSON()
	})
}

// ClearRawJSON clears the value of the "raw_json" field.
func (u *PaymentRecordUpsertOne) ClearRawJSON() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearRawJSON()
	})
}

// SetExtractedAt sets the "extracted_at" field.
func (u *PaymentRecordUpsertOne) SetExtractedAt(v time.Time) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetExtractedAt(v)
	})
}

// UpdateExtractedAt sets the "extracted_at" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateExtractedAt() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateExtractedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PaymentRecordUpsertOne) SetUpdatedAt(v time.Time) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateUpdatedAt() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PaymentRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PaymentRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaymentRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PaymentRecordUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PaymentRecordUpsertOne.ID is not supported by MySQL driver. Use PaymentRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PaymentRecordUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PaymentRecordCreateBulk is the builder for creating many PaymentRecord entities in bulk.
type PaymentRecordCreateBulk struct {
	config
	err      error
	builders []*PaymentRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the PaymentRecord entities in the database.
func (_c *PaymentRecordCreateBulk) Save(ctx context.Context) ([]*PaymentRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PaymentRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaymentRecordMutation)
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
func (_c *PaymentRecordCreateBulk) SaveX(ctx context.Context) []*PaymentRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaymentRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaymentRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PaymentRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaymentRecordUpsert) {
//			SetStatus(v+v).
//		}).
//		Exec(ctx)
func (_c *PaymentRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *PaymentRecordUpsertBulk {
	_c.conflict = opts
	return &PaymentRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PaymentRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PaymentRecordCreateBulk) OnConflictColumns(columns ...string) *PaymentRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PaymentRecordUpsertBulk{
		create: _c,
	}
}

// PaymentRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of PaymentRecord nodes.
type PaymentRecordUpsertBulk struct {
	create *PaymentRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PaymentRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(paymentrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaymentRecordUpsertBulk) UpdateNewValues() *PaymentRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(paymentrecord.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PaymentRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PaymentRecordUpsertBulk) Ignore() *PaymentRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaymentRecordUpsertBulk) DoNothing() *PaymentRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaymentRecordCreateBulk.OnConflict
// documentation for more info.
func (u *PaymentRecordUpsertBulk) Update(set func(*PaymentRecordUpsert)) *PaymentRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaymentRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *PaymentRecordUpsertBulk) SetStatus(v paymentrecord.Status) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateStatus() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetError sets the "error" field.
func (u *PaymentRecordUpsertBulk) SetError(v string) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateError() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *PaymentRecordUpsertBulk) ClearError() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearError()
	})
}

// SetItemName sets the "item_name" field.
func (u *PaymentRecordUpsertBulk) SetItemName(v string) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetItemName(v)
	})
}

// UpdateItemName sets the "item_name" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateItemName() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateItemName()
	})
}

// ClearItemName clears the value of the "item_name" field.
func (u *PaymentRecordUpsertBulk) ClearItemName() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearItemName()
	})
}

// SetVendorName sets the "vendor_name" field.
func (u *PaymentRecordUpsertBulk) SetVendorName(v string) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetVendorName(v)
	})
}

// UpdateVendorName sets the "vendor_name" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateVendorName() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateVendorName()
	})
}

// ClearVendorName clears the value of the "vendor_name" field.
func (u *PaymentRecordUpsertBulk) ClearVendorName() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearVendorName()
	})
}

// SetItemCategory sets the "item_category" field.
func (u *PaymentRecordUpsertBulk) SetItemCategory(v string) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetItemCategory(v)
	})
}

// UpdateItemCategory sets the "item_category" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateItemCategory() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateItemCategory()
	})
}

// ClearItemCategory clears the value of the "item_category" field.
func (u *PaymentRecordUpsertBulk) ClearItemCategory() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearItemCategory()
	})
}

// SetCostAmount sets the "cost_amount" field.
func (u *PaymentRecordUpsertBulk) SetCostAmount(v decimal.Decimal) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetCostAmount(v)
	})
}

// AddCostAmount adds v to the "cost_amount" field.
func (u *PaymentRecordUpsertBulk) AddCostAmount(v decimal.Decimal) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.AddCostAmount(v)
	})
}

// UpdateCostAmount sets the "cost_amount" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateCostAmount() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateCostAmount()
	})
}

// ClearCostAmount clears the value of the "cost_amount" field.
func (u *PaymentRecordUpsertBulk) ClearCostAmount() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearCostAmount()
	})
}

// SetCostCurrency sets the "cost_currency" field.
func (u *PaymentRecordUpsertBulk) SetCostCurrency(v string) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetCostCurrency(v)
	})
}

// UpdateCostCurrency sets the "cost_currency" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateCostCurrency() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateCostCurrency()
	})
}

// ClearCostCurrency clears the value of the "cost_currency" field.
func (u *PaymentRecordUpsertBulk) ClearCostCurrency() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearCostCurrency()
	})
}

// SetIsRecurring sets the "is_recurring" field.
func (u *PaymentRecordUpsertBulk) SetIsRecurring(v bool) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetIsRecurring(v)
	})
}

// UpdateIsRecurring sets the "is_recurring" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateIsRecurring() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateIsRecurring()
	})
}

// ClearIsRecurring clears the value of the "is_recurring" field.
func (u *PaymentRecordUpsertBulk) ClearIsRecurring() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearIsRecurring()
	})
}

// SetFrequency sets the "frequency" field.
func (u *PaymentRecordUpsertBulk) SetFrequency(v string) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetFrequency(v)
	})
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateFrequency() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateFrequency()
	})
}

// ClearFrequency clears the value of the "frequency" field.
func (u *PaymentRecordUpsertBulk) ClearFrequency() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearFrequency()
	})
}

// SetPaymentDate sets the "payment_date" field.
func (u *PaymentRecordUpsertBulk) SetPaymentDate(v time.Time) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetPaymentDate(v)
	})
}

// UpdatePaymentDate sets the "payment_date" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdatePaymentDate() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdatePaymentDate()
	})
}

// ClearPaymentDate clears the value of the "payment_date" field.
func (u *PaymentRecordUpsertBulk) ClearPaymentDate() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearPaymentDate()
	})
}

// SetPaymentFingerprint sets the "payment_fingerprint" field.
func (u *PaymentRecordUpsertBulk) SetPaymentFingerprint(v string) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetPaymentFingerprint(v)
	})
}

// UpdatePaymentFingerprint sets the "payment_fingerprint" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdatePaymentFingerprint() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdatePaymentFingerprint()
	})
}

// ClearPaymentFingerprint clears the value of the "payment_fingerprint" field.
func (u *PaymentRecordUpsertBulk) ClearPaymentFingerprint() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearPaymentFingerprint()
	})
}

// SetConfidence sets the "confidence" field.
func (u *PaymentRecordUpsertBulk) SetConfidence(v float64) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *PaymentRecordUpsertBulk) AddConfidence(v float64) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateConfidence() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateConfidence()
	})
}

// ClearConfidence clears the value of the "confidence" field.
func (u *PaymentRecordUpsertBulk) ClearConfidence() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearConfidence()
	})
}

// SetModel sets the "model" field.
func (u *PaymentRecordUpsertBulk) SetModel(v string) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateModel() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *PaymentRecordUpsertBulk) ClearModel() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearModel()
	})
}

// SetPromptVersion sets the "prompt_version" field.
func (u *PaymentRecordUpsertBulk) SetPromptVersion(v string) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetPromptVersion(v)
	})
}

// UpdatePromptVersion sets the "prompt_version" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdatePromptVersion() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdatePromptVersion()
	})
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (u *PaymentRecordUpsertBulk) ClearPromptVersion() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearPromptVersion()
	})
}

// SetRawJSON sets the "raw_json" field.
func (u *PaymentRecordUpsertBulk) SetRawJSON(v string) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetRawJSON(v)
	})
}

// UpdateRawJSON sets the "raw_json" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateRawJSON() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateRawJSON()
	})
}

// ClearRawJSON clears the value of the "raw_json" field.
func (u *PaymentRecordUpsertBulk) ClearRawJSON() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearRawJSON()
	})
}

// SetExtractedAt sets the "extracted_at" field.
func (u *PaymentRecordUpsertBulk) SetExtractedAt(v time.Time) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetExtractedAt(v)
	})
}

// UpdateExtractedAt sets the "extracted_at" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateExtractedAt() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateExtractedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PaymentRecordUpsertBulk) SetUpdatedAt(v time.Time) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateUpdatedAt() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PaymentRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PaymentRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PaymentRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaymentRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
