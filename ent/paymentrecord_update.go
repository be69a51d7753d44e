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
	"github.com/mailscope/mailscope/ent/paymentrecord"
	"github.com/mailscope/mailscope/ent/predicate"
	"github.com/shopspring/decimal"
)

// PaymentRecordUpdate is the builder for updating PaymentRecord entities.
type PaymentRecordUpdate struct {
	config
	hooks    []Hook
	mutation *PaymentRecordMutation
}

// Where appends a list predicates to the PaymentRecordUpdate builder.
func (_u *PaymentRecordUpdate) Where(ps ...predicate.PaymentRecord) *PaymentRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PaymentRecordUpdate) SetStatus(v paymentrecord.Status) *PaymentRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableStatus(v *paymentrecord.Status) *PaymentRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *PaymentRecordUpdate) SetError(v string) *PaymentRecordUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableError(v *string) *PaymentRecordUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *PaymentRecordUpdate) ClearError() *PaymentRecordUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetItemName sets the "item_name" field.
func (_u *PaymentRecordUpdate) SetItemName(v string) *PaymentRecordUpdate {
	_u.mutation.SetItemName(v)
	return _u
}

// SetNillableItemName sets the "item_name" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableItemName(v *string) *PaymentRecordUpdate {
	if v != nil {
		_u.SetItemName(*v)
	}
	return _u
}

// ClearItemName clears the value of the "item_name" field.
func (_u *PaymentRecordUpdate) ClearItemName() *PaymentRecordUpdate {
	_u.mutation.ClearItemName()
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *PaymentRecordUpdate) SetVendorName(v string) *PaymentRecordUpdate {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableVendorName(v *string) *PaymentRecordUpdate {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// ClearVendorName clears the value of the "vendor_name" field.
func (_u *PaymentRecordUpdate) ClearVendorName() *PaymentRecordUpdate {
	_u.mutation.ClearVendorName()
	return _u
}

// SetItemCategory sets the "item_category" field.
func (_u *PaymentRecordUpdate) SetItemCategory(v string) *PaymentRecordUpdate {
	_u.mutation.SetItemCategory(v)
	return _u
}

// SetNillableItemCategory sets the "item_category" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableItemCategory(v *string) *PaymentRecordUpdate {
	if v != nil {
		_u.SetItemCategory(*v)
	}
	return _u
}

// ClearItemCategory clears the value of the "item_category" field.
func (_u *PaymentRecordUpdate) ClearItemCategory() *PaymentRecordUpdate {
	_u.mutation.ClearItemCategory()
	return _u
}

// SetCostAmount sets the "cost_amount" field.
func (_u *PaymentRecordUpdate) SetCostAmount(v decimal.Decimal) *PaymentRecordUpdate {
	_u.mutation.ResetCostAmount()
	_u.mutation.SetCostAmount(v)
	return _u
}

// SetNillableCostAmount sets the "cost_amount" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableCostAmount(v *decimal.Decimal) *PaymentRecordUpdate {
	if v != nil {
		_u.SetCostAmount(*v)
	}
	return _u
}

// AddCostAmount adds value to the "cost_amount" field.
func (_u *PaymentRecordUpdate) AddCostAmount(v decimal.Decimal) *PaymentRecordUpdate {
	_u.mutation.AddCostAmount(v)
	return _u
}

// ClearCostAmount clears the value of the "cost_amount" field.
func (_u *PaymentRecordUpdate) ClearCostAmount() *PaymentRecordUpdate {
	_u.mutation.ClearCostAmount()
	return _u
}

// SetCostCurrency sets the "cost_currency" field.
func (_u *PaymentRecordUpdate) SetCostCurrency(v string) *PaymentRecordUpdate {
	_u.mutation.SetCostCurrency(v)
	return _u
}

// SetNillableCostCurrency sets the "cost_currency" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableCostCurrency(v *string) *PaymentRecordUpdate {
	if v != nil {
		_u.SetCostCurrency(*v)
	}
	return _u
}

// ClearCostCurrency clears the value of the "cost_currency" field.
func (_u *PaymentRecordUpdate) ClearCostCurrency() *PaymentRecordUpdate {
	_u.mutation.ClearCostCurrency()
	return _u
}

// SetIsRecurring sets the "is_recurring" field.
func (_u *PaymentRecordUpdate) SetIsRecurring(v bool) *PaymentRecordUpdate {
	_u.mutation.SetIsRecurring(v)
	return _u
}

// SetNillableIsRecurring sets the "is_recurring" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableIsRecurring(v *bool) *PaymentRecordUpdate {
	if v != nil {
		_u.SetIsRecurring(*v)
	}
	return _u
}

// ClearIsRecurring clears the value of the "is_recurring" field.
func (_u *PaymentRecordUpdate) ClearIsRecurring() *PaymentRecordUpdate {
	_u.mutation.ClearIsRecurring()
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *PaymentRecordUpdate) SetFrequency(v string) *PaymentRecordUpdate {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableFrequency(v *string) *PaymentRecordUpdate {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// ClearFrequency clears the value of the "frequency" field.
func (_u *PaymentRecordUpdate) ClearFrequency() *PaymentRecordUpdate {
	_u.mutation.ClearFrequency()
	return _u
}

// SetPaymentDate sets the "payment_date" field.
func (_u *PaymentRecordUpdate) SetPaymentDate(v time.Time) *PaymentRecordUpdate {
	_u.mutation.SetPaymentDate(v)
	return _u
}

// SetNillablePaymentDate sets the "payment_date" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillablePaymentDate(v *time.Time) *PaymentRecordUpdate {
	if v != nil {
		_u.SetPaymentDate(*v)
	}
	return _u
}

// ClearPaymentDate clears the value of the "payment_date" field.
func (_u *PaymentRecordUpdate) ClearPaymentDate() *PaymentRecordUpdate {
	_u.mutation.ClearPaymentDate()
	return _u
}

// SetPaymentFingerprint sets the "payment_fingerprint" field.
func (_u *PaymentRecordUpdate) SetPaymentFingerprint(v string) *PaymentRecordUpdate {
	_u.mutation.SetPaymentFingerprint(v)
	return _u
}

// SetNillablePaymentFingerprint sets the "payment_fingerprint" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillablePaymentFingerprint(v *string) *PaymentRecordUpdate {
	if v != nil {
		_u.SetPaymentFingerprint(*v)
	}
	return _u
}

// ClearPaymentFingerprint clears the value of the "payment_fingerprint" field.
func (_u *PaymentRecordUpdate) ClearPaymentFingerprint() *PaymentRecordUpdate {
	_u.mutation.ClearPaymentFingerprint()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PaymentRecordUpdate) SetConfidence(v float64) *PaymentRecordUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableConfidence(v *float64) *PaymentRecordUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PaymentRecordUpdate) AddConfidence(v float64) *PaymentRecordUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *PaymentRecordUpdate) ClearConfidence() *PaymentRecordUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetModel sets the "model" field.
func (_u *PaymentRecordUpdate) SetModel(v string) *PaymentRecordUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableModel(v *string) *PaymentRecordUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *PaymentRecordUpdate) ClearModel() *PaymentRecordUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetPromptVersion sets the "prompt_version" field.
func (_u *PaymentRecordUpdate) SetPromptVersion(v string) *PaymentRecordUpdate {
	_u.mutation.SetPromptVersion(v)
	return _u
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillablePromptVersion(v *string) *PaymentRecordUpdate {
	if v != nil {
		_u.SetPromptVersion(*v)
	}
	return _u
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (_u *PaymentRecordUpdate) ClearPromptVersion() *PaymentRecordUpdate {
	_u.mutation.ClearPromptVersion()
	return _u
}

// SetRawJSON sets the "raw_json" field.
func (_u *PaymentRecordUpdate) SetRawJSON(v string) *PaymentRecordUpdate {
	_u.mutation.SetRawJSON(v)
	return _u
}

// SetNillableRawJSON sets the "raw_json" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableRawJSON(v *string) *PaymentRecordUpdate {
	if v != nil {
		_u.SetRawJSON(*v)
	}
	return _u
}

// ClearRawJSON clears the value of the "raw_json" field.
func (_u *PaymentRecordUpdate) ClearRawJSON() *PaymentRecordUpdate {
	_u.mutation.ClearRawJSON()
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *PaymentRecordUpdate) SetExtractedAt(v time.Time) *PaymentRecordUpdate {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableExtractedAt(v *time.Time) *PaymentRecordUpdate {
	if v != nil {
		_u.SetExtractedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PaymentRecordUpdate) SetUpdatedAt(v time.Time) *PaymentRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PaymentRecordMutation object of the builder.
func (_u *PaymentRecordUpdate) Mutation() *PaymentRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PaymentRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PaymentRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PaymentRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := paymentrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentRecordUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := paymentrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PaymentRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PaymentRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paymentrecord.Table, paymentrecord.Columns, sqlgraph.NewFieldSpec(paymentrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(paymentrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(paymentrecord.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(paymentrecord.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.ItemName(); ok {
		_spec.SetField(paymentrecord.FieldItemName, field.TypeString, value)
	}
	if _u.mutation.ItemNameCleared() {
		_spec.ClearField(paymentrecord.FieldItemName, field.TypeString)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(paymentrecord.FieldVendorName, field.TypeString, value)
	}
	if _u.mutation.VendorNameCleared() {
		_spec.ClearField(paymentrecord.FieldVendorName, field.TypeString)
	}
	if value, ok := _u.mutation.ItemCategory(); ok {
		_spec.SetField(paymentrecord.FieldItemCategory, field.TypeString, value)
	}
	if _u.mutation.ItemCategoryCleared() {
		_spec.ClearField(paymentrecord.FieldItemCategory, field.TypeString)
	}
	if value, ok := _u.mutation.CostAmount(); ok {
		_spec.SetField(paymentrecord.FieldCostAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostAmount(); ok {
		_spec.AddField(paymentrecord.FieldCostAmount, field.TypeFloat64, value)
	}
	if _u.mutation.CostAmountCleared() {
		_spec.ClearField(paymentrecord.FieldCostAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CostCurrency(); ok {
		_spec.SetField(paymentrecord.FieldCostCurrency, field.TypeString, value)
	}
	if _u.mutation.CostCurrencyCleared() {
		_spec.ClearField(paymentrecord.FieldCostCurrency, field.TypeString)
	}
	if value, ok := _u.mutation.IsRecurring(); ok {
		_spec.SetField(paymentrecord.FieldIsRecurring, field.TypeBool, value)
	}
	if _u.mutation.IsRecurringCleared() {
		_spec.ClearField(paymentrecord.FieldIsRecurring, field.TypeBool)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(paymentrecord.FieldFrequency, field.TypeString, value)
	}
	if _u.mutation.FrequencyCleared() {
		_spec.ClearField(paymentrecord.FieldFrequency, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentDate(); ok {
		_spec.SetField(paymentrecord.FieldPaymentDate, field.TypeTime, value)
	}
	if _u.mutation.PaymentDateCleared() {
		_spec.ClearField(paymentrecord.FieldPaymentDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PaymentFingerprint(); ok {
		_spec.SetField(paymentrecord.FieldPaymentFingerprint, field.TypeString, value)
	}
	if _u.mutation.PaymentFingerprintCleared() {
		_spec.ClearField(paymentrecord.FieldPaymentFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(paymentrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(paymentrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(paymentrecord.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(paymentrecord.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(paymentrecord.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.PromptVersion(); ok {
		_spec.SetField(paymentrecord.FieldPromptVersion, field.TypeString, value)
	}
	if _u.mutation.PromptVersionCleared() {
		_spec.ClearField(paymentrecord.FieldPromptVersion, field.TypeString)
	}
	if value, ok := _u.mutation.RawJSON(); ok {
		_spec.SetField(paymentrecord.FieldRawJSON, field.TypeString, value)
	}
	if _u.mutation.RawJSONCleared() {
		_spec.ClearField(paymentrecord.FieldRawJSON, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(paymentrecord.FieldExtractedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(paymentrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paymentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PaymentRecordUpdateOne is the builder for updating a single PaymentRecord entity.
type PaymentRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaymentRecordMutation
}

// SetStatus sets the "status" field.
func (_u *PaymentRecordUpdateOne) SetStatus(v paymentrecord.Status) *PaymentRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableStatus(v *paymentrecord.Status) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *PaymentRecordUpdateOne) SetError(v string) *PaymentRecordUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableError(v *string) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *PaymentRecordUpdateOne) ClearError() *PaymentRecordUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetItemName sets the "item_name" field.
func (_u *PaymentRecordUpdateOne) SetItemName(v string) *PaymentRecordUpdateOne {
	_u.mutation.SetItemName(v)
	return _u
}

// SetNillableItemName sets the "item_name" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableItemName(v *string) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetItemName(*v)
	}
	return _u
}

// ClearItemName clears the value of the "item_name" field.
func (_u *PaymentRecordUpdateOne) ClearItemName() *PaymentRecordUpdateOne {
	_u.mutation.ClearItemName()
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *PaymentRecordUpdateOne) SetVendorName(v string) *PaymentRecordUpdateOne {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableVendorName(v *string) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// ClearVendorName clears the value of the "vendor_name" field.
func (_u *PaymentRecordUpdateOne) ClearVendorName() *PaymentRecordUpdateOne {
	_u.mutation.ClearVendorName()
	return _u
}

// SetItemCategory sets the "item_category" field.
func (_u *PaymentRecordUpdateOne) SetItemCategory(v string) *PaymentRecordUpdateOne {
	_u.mutation.SetItemCategory(v)
	return _u
}

// SetNillableItemCategory sets the "item_category" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableItemCategory(v *string) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetItemCategory(*v)
	}
	return _u
}

// ClearItemCategory clears the value of the "item_category" field.
func (_u *PaymentRecordUpdateOne) ClearItemCategory() *PaymentRecordUpdateOne {
	_u.mutation.ClearItemCategory()
	return _u
}

// SetCostAmount sets the "cost_amount" field.
func (_u *PaymentRecordUpdateOne) SetCostAmount(v decimal.Decimal) *PaymentRecordUpdateOne {
	_u.mutation.ResetCostAmount()
	_u.mutation.SetCostAmount(v)
	return _u
}

// SetNillableCostAmount sets the "cost_amount" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableCostAmount(v *decimal.Decimal) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetCostAmount(*v)
	}
	return _u
}

// AddCostAmount adds value to the "cost_amount" field.
func (_u *PaymentRecordUpdateOne) AddCostAmount(v decimal.Decimal) *PaymentRecordUpdateOne {
	_u.mutation.AddCostAmount(v)
	return _u
}

// ClearCostAmount clears the value of the "cost_amount" field.
func (_u *PaymentRecordUpdateOne) ClearCostAmount() *PaymentRecordUpdateOne {
	_u.mutation.ClearCostAmount()
	return _u
}

// SetCostCurrency sets the "cost_currency" field.
func (_u *PaymentRecordUpdateOne) SetCostCurrency(v string) *PaymentRecordUpdateOne {
	_u.mutation.SetCostCurrency(v)
	return _u
}

// SetNillableCostCurrency sets the "cost_currency" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableCostCurrency(v *string) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetCostCurrency(*v)
	}
	return _u
}

// ClearCostCurrency clears the value of the "cost_currency" field.
func (_u *PaymentRecordUpdateOne) ClearCostCurrency() *PaymentRecordUpdateOne {
	_u.mutation.ClearCostCurrency()
	return _u
}

// SetIsRecurring sets the "is_recurring" field.
func (_u *PaymentRecordUpdateOne) SetIsRecurring(v bool) *PaymentRecordUpdateOne {
	_u.mutation.SetIsRecurring(v)
	return _u
}

// SetNillableIsRecurring sets the "is_recurring" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableIsRecurring(v *bool) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetIsRecurring(*v)
	}
	return _u
}

// ClearIsRecurring clears the value of the "is_recurring" field.
func (_u *PaymentRecordUpdateOne) ClearIsRecurring() *PaymentRecordUpdateOne {
	_u.mutation.ClearIsRecurring()
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *PaymentRecordUpdateOne) SetFrequency(v string) *PaymentRecordUpdateOne {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableFrequency(v *string) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// ClearFrequency clears the value of the "frequency" field.
func (_u *PaymentRecordUpdateOne) ClearFrequency() *PaymentRecordUpdateOne {
	_u.mutation.ClearFrequency()
	return _u
}

// SetPaymentDate sets the "payment_date" field.
func (_u *PaymentRecordUpdateOne) SetPaymentDate(v time.Time) *PaymentRecordUpdateOne {
	_u.mutation.SetPaymentDate(v)
	return _u
}

// SetNillablePaymentDate sets the "payment_date" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillablePaymentDate(v *time.Time) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetPaymentDate(*v)
	}
	return _u
}

// ClearPaymentDate clears the value of the "payment_date" field.
func (_u *PaymentRecordUpdateOne) ClearPaymentDate() *PaymentRecordUpdateOne {
	_u.mutation.ClearPaymentDate()
	return _u
}

// SetPaymentFingerprint sets the "payment_fingerprint" field.
func (_u *PaymentRecordUpdateOne) SetPaymentFingerprint(v string) *PaymentRecordUpdateOne {
	_u.mutation.SetPaymentFingerprint(v)
	return _u
}

// SetNillablePaymentFingerprint sets the "payment_fingerprint" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillablePaymentFingerprint(v *string) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetPaymentFingerprint(*v)
	}
	return _u
}

// ClearPaymentFingerprint clears the value of the "payment_fingerprint" field.
func (_u *PaymentRecordUpdateOne) ClearPaymentFingerprint() *PaymentRecordUpdateOne {
	_u.mutation.ClearPaymentFingerprint()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PaymentRecordUpdateOne) SetConfidence(v float64) *PaymentRecordUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableConfidence(v *float64) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PaymentRecordUpdateOne) AddConfidence(v float64) *PaymentRecordUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *PaymentRecordUpdateOne) ClearConfidence() *PaymentRecordUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetModel sets the "model" field.
func (_u *PaymentRecordUpdateOne) SetModel(v string) *PaymentRecordUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableModel(v *string) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *PaymentRecordUpdateOne) ClearModel() *PaymentRecordUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetPromptVersion sets the "prompt_version" field.
func (_u *PaymentRecordUpdateOne) SetPromptVersion(v string) *PaymentRecordUpdateOne {
	_u.mutation.SetPromptVersion(v)
	return _u
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillablePromptVersion(v *string) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetPromptVersion(*v)
	}
	return _u
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (_u *PaymentRecordUpdateOne) ClearPromptVersion() *PaymentRecordUpdateOne {
	_u.mutation.ClearPromptVersion()
	return _u
}

// SetRawJSON sets the "raw_json" field.
func (_u *PaymentRecordUpdateOne) SetRawJSON(v string) *PaymentRecordUpdateOne {
	_u.mutation.SetRawJSON(v)
	return _u
}

// SetNillableRawJSON sets the "raw_json" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableRawJSON(v *string) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetRawJSON(*v)
	}
	return _u
}

// ClearRawJSON clears the value of the "raw_json" field.
func (_u *PaymentRecordUpdateOne) ClearRawJSON() *PaymentRecordUpdateOne {
	_u.mutation.ClearRawJSON()
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *PaymentRecordUpdateOne) SetExtractedAt(v time.Time) *PaymentRecordUpdateOne {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableExtractedAt(v *time.Time) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetExtractedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PaymentRecordUpdateOne) SetUpdatedAt(v time.Time) *PaymentRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PaymentRecordMutation object of the builder.
func (_u *PaymentRecordUpdateOne) Mutation() *PaymentRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the PaymentRecordUpdate builder.
func (_u *PaymentRecordUpdateOne) Where(ps ...predicate.PaymentRecord) *PaymentRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PaymentRecordUpdateOne) Select(field string, fields ...string) *PaymentRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PaymentRecord entity.
func (_u *PaymentRecordUpdateOne) Save(ctx context.Context) (*PaymentRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentRecordUpdateOne) SaveX(ctx context.Context) *PaymentRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PaymentRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PaymentRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := paymentrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := paymentrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PaymentRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PaymentRecordUpdateOne) sqlSave(ctx context.Context) (_node *PaymentRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paymentrecord.Table, paymentrecord.Columns, sqlgraph.NewFieldSpec(paymentrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PaymentRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paymentrecord.FieldID)
		for _, f := range fields {
			if !paymentrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != paymentrecord.FieldID {
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
		_spec.SetField(paymentrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(paymentrecord.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(paymentrecord.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.ItemName(); ok {
		_spec.SetField(paymentrecord.FieldItemName, field.TypeString, value)
	}
	if _u.mutation.ItemNameCleared() {
		_spec.ClearField(paymentrecord.FieldItemName, field.TypeString)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(paymentrecord.FieldVendorName, field.TypeString, value)
	}
	if _u.mutation.VendorNameCleared() {
		_spec.ClearField(paymentrecord.FieldVendorName, field.TypeString)
	}
	if value, ok := _u.mutation.ItemCategory(); ok {
		_spec.SetField(paymentrecord.FieldItemCategory, field.TypeString, value)
	}
	if _u.mutation.ItemCategoryCleared() {
		_spec.ClearField(paymentrecord.FieldItemCategory, field.TypeString)
	}
	if value, ok := _u.mutation.CostAmount(); ok {
		_spec.SetField(paymentrecord.FieldCostAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostAmount(); ok {
		_spec.AddField(paymentrecord.FieldCostAmount, field.TypeFloat64, value)
	}
	if _u.mutation.CostAmountCleared() {
		_spec.ClearField(paymentrecord.FieldCostAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CostCurrency(); ok {
		_spec.SetField(paymentrecord.FieldCostCurrency, field.TypeString, value)
	}
	if _u.mutation.CostCurrencyCleared() {
		_spec.ClearField(paymentrecord.FieldCostCurrency, field.TypeString)
	}
	if value, ok := _u.mutation.IsRecurring(); ok {
		_spec.SetField(paymentrecord.FieldIsRecurring, field.TypeBool, value)
	}
	if _u.mutation.IsRecurringCleared() {
		_spec.ClearField(paymentrecord.FieldIsRecurring, field.TypeBool)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(paymentrecord.FieldFrequency, field.TypeString, value)
	}
	if _u.mutation.FrequencyCleared() {
		_spec.ClearField(paymentrecord.FieldFrequency, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentDate(); ok {
		_spec.SetField(paymentrecord.FieldPaymentDate, field.TypeTime, value)
	}
	if _u.mutation.PaymentDateCleared() {
		_spec.ClearField(paymentrecord.FieldPaymentDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PaymentFingerprint(); ok {
		_spec.SetField(paymentrecord.FieldPaymentFingerprint, field.TypeString, value)
	}
	if _u.mutation.PaymentFingerprintCleared() {
		_spec.ClearField(paymentrecord.FieldPaymentFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(paymentrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(paymentrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(paymentrecord.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(paymentrecord.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(paymentrecord.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.PromptVersion(); ok {
		_spec.SetField(paymentrecord.FieldPromptVersion, field.TypeString, value)
	}
	if _u.mutation.PromptVersionCleared() {
		_spec.ClearField(paymentrecord.FieldPromptVersion, field.TypeString)
	}
	if value, ok := _u.mutation.RawJSON(); ok {
		_spec.SetField(paymentrecord.FieldRawJSON, field.TypeString, value)
	}
	if _u.mutation.RawJSONCleared() {
		_spec.ClearField(paymentrecord.FieldRawJSON, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(paymentrecord.FieldExtractedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(paymentrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PaymentRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paymentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
