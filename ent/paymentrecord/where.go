// Code generated by ent, DO NOT EDIT.

package paymentrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mailscope/mailscope/ent/predicate"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContainsFold(FieldID, id))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldError, v))
}

// ItemName applies equality check predicate on the "item_name" field. It's identical to ItemNameEQ.
func ItemName(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldItemName, v))
}

// VendorName applies equality check predicate on the "vendor_name" field. It's identical to VendorNameEQ.
func VendorName(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldVendorName, v))
}

// ItemCategory applies equality check predicate on the "item_category" field. It's identical to ItemCategoryEQ.
func ItemCategory(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldItemCategory, v))
}

// CostAmount applies equality check predicate on the "cost_amount" field. It's identical to CostAmountEQ.
func CostAmount(v decimal.Decimal) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldCostAmount, v))
}

// CostCurrency applies equality check predicate on the "cost_currency" field. It's identical to CostCurrencyEQ.
func CostCurrency(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldCostCurrency, v))
}

// IsRecurring applies equality check predicate on the "is_recurring" field. It's identical to IsRecurringEQ.
func IsRecurring(v bool) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldIsRecurring, v))
}

// Frequency applies equality check predicate on the "frequency" field. It's identical to FrequencyEQ.
func Frequency(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldFrequency, v))
}

// PaymentDate applies equality check predicate on the "payment_date" field. It's identical to PaymentDateEQ.
func PaymentDate(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldPaymentDate, v))
}

// PaymentFingerprint applies equality check predicate on the "payment_fingerprint" field. It's identical to PaymentFingerprintEQ.
func PaymentFingerprint(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldPaymentFingerprint, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldConfidence, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldModel, v))
}

// PromptVersion applies equality check predicate on the "prompt_version" field. It's identical to PromptVersionEQ.
func PromptVersion(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldPromptVersion, v))
}

// RawJSON applies equality check predicate on the "raw_json" field. It's identical to RawJSONEQ.
func RawJSON(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldRawJSON, v))
}

// ExtractedAt applies equality check predicate on the "extracted_at" field. It's identical to ExtractedAtEQ.
func ExtractedAt(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldExtractedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContainsFold(FieldError, v))
}

// ItemNameEQ applies the EQ predicate on the "item_name" field.
func ItemNameEQ(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldItemName, v))
}

// ItemNameNEQ applies the NEQ predicate on the "item_name" field.
func ItemNameNEQ(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldItemName, v))
}

// ItemNameIn applies the In predicate on the "item_name" field.
func ItemNameIn(vs ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldItemName, vs...))
}

// ItemNameNotIn applies the NotIn predicate on the "item_name" field.
func ItemNameNotIn(vs ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldItemName, vs...))
}

// ItemNameGT applies the GT predicate on the "item_name" field.
func ItemNameGT(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldItemName, v))
}

// ItemNameGTE applies the GTE predicate on the "item_name" field.
func ItemNameGTE(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldItemName, v))
}

// ItemNameLT applies the LT predicate on the "item_name" field.
func ItemNameLT(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldItemName, v))
}

// ItemNameLTE applies the LTE predicate on the "item_name" field.
func ItemNameLTE(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldItemName, v))
}

// ItemNameContains applies the Contains predicate on the "item_name" field.
func ItemNameContains(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContains(FieldItemName, v))
}

// ItemNameHasPrefix applies the HasPrefix predicate on the "item_name" field.
func ItemNameHasPrefix(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldHasPrefix(FieldItemName, v))
}

// ItemNameHasSuffix applies the HasSuffix predicate on the "item_name" field.
func ItemNameHasSuffix(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldHasSuffix(FieldItemName, v))
}

// ItemNameIsNil applies the IsNil predicate on the "item_name" field.
func ItemNameIsNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIsNull(FieldItemName))
}

// ItemNameNotNil applies the NotNil predicate on the "item_name" field.
func ItemNameNotNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotNull(FieldItemName))
}

// ItemNameEqualFold applies the EqualFold predicate on the "item_name" field.
func ItemNameEqualFold(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEqualFold(FieldItemName, v))
}

// ItemNameContainsFold applies the ContainsFold predicate on the "item_name" field.
func ItemNameContainsFold(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContainsFold(FieldItemName, v))
}

// VendorNameEQ applies the EQ predicate on the "vendor_name" field.
func VendorNameEQ(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldVendorName, v))
}

// VendorNameNEQ applies the NEQ predicate on the "vendor_name" field.
func VendorNameNEQ(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldVendorName, v))
}

// VendorNameIn applies the In predicate on the "vendor_name" field.
func VendorNameIn(vs ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldVendorName, vs...))
}

// VendorNameNotIn applies the NotIn predicate on the "vendor_name" field.
func VendorNameNotIn(vs ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldVendorName, vs...))
}

// VendorNameGT applies the GT predicate on the "vendor_name" field.
func VendorNameGT(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldVendorName, v))
}

// VendorNameGTE applies the GTE predicate on the "vendor_name" field.
func VendorNameGTE(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldVendorName, v))
}

// VendorNameLT applies the LT predicate on the "vendor_name" field.
func VendorNameLT(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldVendorName, v))
}

// VendorNameLTE applies the LTE predicate on the "vendor_name" field.
func VendorNameLTE(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldVendorName, v))
}

// VendorNameContains applies the Contains predicate on the "vendor_name" field.
func VendorNameContains(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContains(FieldVendorName, v))
}

// VendorNameHasPrefix applies the HasPrefix predicate on the "vendor_name" field.
func VendorNameHasPrefix(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldHasPrefix(FieldVendorName, v))
}

// VendorNameHasSuffix applies the HasSuffix predicate on the "vendor_name" field.
func VendorNameHasSuffix(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldHasSuffix(FieldVendorName, v))
}

// VendorNameIsNil applies the IsNil predicate on the "vendor_name" field.
func VendorNameIsNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIsNull(FieldVendorName))
}

// VendorNameNotNil applies the NotNil predicate on the "vendor_name" field.
func VendorNameNotNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotNull(FieldVendorName))
}

// VendorNameEqualFold applies the EqualFold predicate on the "vendor_name" field.
func VendorNameEqualFold(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEqualFold(FieldVendorName, v))
}

// VendorNameContainsFold applies the ContainsFold predicate on the "vendor_name" field.
func VendorNameContainsFold(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContainsFold(FieldVendorName, v))
}

// ItemCategoryEQ applies the EQ predicate on the "item_category" field.
func ItemCategoryEQ(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldItemCategory, v))
}

// ItemCategoryNEQ applies the NEQ predicate on the "item_category" field.
func ItemCategoryNEQ(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldItemCategory, v))
}

// ItemCategoryIn applies the In predicate on the "item_category" field.
func ItemCategoryIn(vs ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldItemCategory, vs...))
}

// ItemCategoryNotIn applies the NotIn predicate on the "item_category" field.
func ItemCategoryNotIn(vs ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldItemCategory, vs...))
}

// ItemCategoryGT applies the GT predicate on the "item_category" field.
func ItemCategoryGT(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldItemCategory, v))
}

// ItemCategoryGTE applies the GTE predicate on the "item_category" field.
func ItemCategoryGTE(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldItemCategory, v))
}

// ItemCategoryLT applies the LT predicate on the "item_category" field.
func ItemCategoryLT(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldItemCategory, v))
}

// ItemCategoryLTE applies the LTE predicate on the "item_category" field.
func ItemCategoryLTE(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldItemCategory, v))
}

// ItemCategoryContains applies the Contains predicate on the "item_category" field.
func ItemCategoryContains(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContains(FieldItemCategory, v))
}

// ItemCategoryHasPrefix applies the HasPrefix predicate on the "item_category" field.
func ItemCategoryHasPrefix(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldHasPrefix(FieldItemCategory, v))
}

// ItemCategoryHasSuffix applies the HasSuffix predicate on the "item_category" field.
func ItemCategoryHasSuffix(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldHasSuffix(FieldItemCategory, v))
}

// ItemCategoryIsNil applies the IsNil predicate on the "item_category" field.
func ItemCategoryIsNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIsNull(FieldItemCategory))
}

// ItemCategoryNotNil applies the NotNil predicate on the "item_category" field.
func ItemCategoryNotNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotNull(FieldItemCategory))
}

// ItemCategoryEqualFold applies the EqualFold predicate on the "item_category" field.
func ItemCategoryEqualFold(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEqualFold(FieldItemCategory, v))
}

// ItemCategoryContainsFold applies the ContainsFold predicate on the "item_category" field.
func ItemCategoryContainsFold(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContainsFold(FieldItemCategory, v))
}

// CostAmountEQ applies the EQ predicate on the "cost_amount" field.
func CostAmountEQ(v decimal.Decimal) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldCostAmount, v))
}

// CostAmountNEQ applies the NEQ predicate on the "cost_amount" field.
func CostAmountNEQ(v decimal.Decimal) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldCostAmount, v))
}

// CostAmountIn applies the In predicate on the "cost_amount" field.
func CostAmountIn(vs ...decimal.Decimal) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldCostAmount, vs...))
}

// CostAmountNotIn applies the NotIn predicate on the "cost_amount" field.
func CostAmountNotIn(vs ...decimal.Decimal) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldCostAmount, vs...))
}

// CostAmountGT applies the GT predicate on the "cost_amount" field.
func CostAmountGT(v decimal.Decimal) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldCostAmount, v))
}

// CostAmountGTE applies the GTE predicate on the "cost_amount" field.
func CostAmountGTE(v decimal.Decimal) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldCostAmount, v))
}

// CostAmountLT applies the LT predicate on the "cost_amount" field.
func CostAmountLT(v decimal.Decimal) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldCostAmount, v))
}

// CostAmountLTE applies the LTE predicate on the "cost_amount" field.
func CostAmountLTE(v decimal.Decimal) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldCostAmount, v))
}

// CostAmountIsNil applies the IsNil predicate on the "cost_amount" field.
func CostAmountIsNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIsNull(FieldCostAmount))
}

// CostAmountNotNil applies the NotNil predicate on the "cost_amount" field.
func CostAmountNotNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotNull(FieldCostAmount))
}

// CostCurrencyEQ applies the EQ predicate on the "cost_currency" field.
func CostCurrencyEQ(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldCostCurrency, v))
}

// CostCurrencyNEQ applies the NEQ predicate on the "cost_currency" field.
func CostCurrencyNEQ(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldCostCurrency, v))
}

// CostCurrencyIn applies the In predicate on the "cost_currency" field.
func CostCurrencyIn(vs ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldCostCurrency, vs...))
}

// CostCurrencyNotIn applies the NotIn predicate on the "cost_currency" field.
func CostCurrencyNotIn(vs ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldCostCurrency, vs...))
}

// CostCurrencyGT applies the GT predicate on the "cost_currency" field.
func CostCurrencyGT(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldCostCurrency, v))
}

// CostCurrencyGTE applies the GTE predicate on the "cost_currency" field.
func CostCurrencyGTE(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldCostCurrency, v))
}

// CostCurrencyLT applies the LT predicate on the "cost_currency" field.
func CostCurrencyLT(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldCostCurrency, v))
}

// CostCurrencyLTE applies the LTE predicate on the "cost_currency" field.
func CostCurrencyLTE(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldCostCurrency, v))
}

// CostCurrencyContains applies the Contains predicate on the "cost_currency" field.
func CostCurrencyContains(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContains(FieldCostCurrency, v))
}

// CostCurrencyHasPrefix applies the HasPrefix predicate on the "cost_currency" field.
func CostCurrencyHasPrefix(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldHasPrefix(FieldCostCurrency, v))
}

// CostCurrencyHasSuffix applies the HasSuffix predicate on the "cost_currency" field.
func CostCurrencyHasSuffix(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldHasSuffix(FieldCostCurrency, v))
}

// CostCurrencyIsNil applies the IsNil predicate on the "cost_currency" field.
func CostCurrencyIsNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIsNull(FieldCostCurrency))
}

// CostCurrencyNotNil applies the NotNil predicate on the "cost_currency" field.
func CostCurrencyNotNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotNull(FieldCostCurrency))
}

// CostCurrencyEqualFold applies the EqualFold predicate on the "cost_currency" field.
func CostCurrencyEqualFold(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEqualFold(FieldCostCurrency, v))
}

// CostCurrencyContainsFold applies the ContainsFold predicate on the "cost_currency" field.
func CostCurrencyContainsFold(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContainsFold(FieldCostCurrency, v))
}

// IsRecurringEQ applies the EQ predicate on the "is_recurring" field.
func IsRecurringEQ(v bool) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldIsRecurring, v))
}

// IsRecurringNEQ applies the NEQ predicate on the "is_recurring" field.
func IsRecurringNEQ(v bool) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldIsRecurring, v))
}

// IsRecurringIsNil applies the IsNil predicate on the "is_recurring" field.
func IsRecurringIsNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIsNull(FieldIsRecurring))
}

// IsRecurringNotNil applies the NotNil predicate on the "is_recurring" field.
func IsRecurringNotNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotNull(FieldIsRecurring))
}

// FrequencyEQ applies the EQ predicate on the "frequency" field.
func FrequencyEQ(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldFrequency, v))
}

// FrequencyNEQ applies the NEQ predicate on the "frequency" field.
func FrequencyNEQ(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldFrequency, v))
}

// FrequencyIn applies the In predicate on the "frequency" field.
func FrequencyIn(vs ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldFrequency, vs...))
}

// FrequencyNotIn applies the NotIn predicate on the "frequency" field.
func FrequencyNotIn(vs ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldFrequency, vs...))
}

// FrequencyGT applies the GT predicate on the "frequency" field.
func FrequencyGT(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldFrequency, v))
}

// FrequencyGTE applies the GTE predicate on the "frequency" field.
func FrequencyGTE(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldFrequency, v))
}

// FrequencyLT applies the LT predicate on the "frequency" field.
func FrequencyLT(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldFrequency, v))
}

// FrequencyLTE applies the LTE predicate on the "frequency" field.
func FrequencyLTE(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldFrequency, v))
}

// FrequencyContains applies the Contains predicate on the "frequency" field.
func FrequencyContains(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContains(FieldFrequency, v))
}

// FrequencyHasPrefix applies the HasPrefix predicate on the "frequency" field.
func FrequencyHasPrefix(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldHasPrefix(FieldFrequency, v))
}

// FrequencyHasSuffix applies the HasSuffix predicate on the "frequency" field.
func FrequencyHasSuffix(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldHasSuffix(FieldFrequency, v))
}

// FrequencyIsNil applies the IsNil predicate on the "frequency" field.
func FrequencyIsNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIsNull(FieldFrequency))
}

// FrequencyNotNil applies the NotNil predicate on the "frequency" field.
func FrequencyNotNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotNull(FieldFrequency))
}

// FrequencyEqualFold applies the EqualFold predicate on the "frequency" field.
func FrequencyEqualFold(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEqualFold(FieldFrequency, v))
}

// FrequencyContainsFold applies the ContainsFold predicate on the "frequency" field.
func FrequencyContainsFold(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContainsFold(FieldFrequency, v))
}

// PaymentDateEQ applies the EQ predicate on the "payment_date" field.
func PaymentDateEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldPaymentDate, v))
}

// PaymentDateNEQ applies the NEQ predicate on the "payment_date" field.
func PaymentDateNEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldPaymentDate, v))
}

// PaymentDateIn applies the In predicate on the "payment_date" field.
func PaymentDateIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldPaymentDate, vs...))
}

// PaymentDateNotIn applies the NotIn predicate on the "payment_date" field.
func PaymentDateNotIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldPaymentDate, vs...))
}

// PaymentDateGT applies the GT predicate on the "payment_date" field.
func PaymentDateGT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldPaymentDate, v))
}

// PaymentDateGTE applies the GTE predicate on the "payment_date" field.
func PaymentDateGTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldPaymentDate, v))
}

// PaymentDateLT applies the LT predicate on the "payment_date" field.
func PaymentDateLT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldPaymentDate, v))
}

// PaymentDateLTE applies the LTE predicate on the "payment_date" field.
func PaymentDateLTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldPaymentDate, v))
}

// PaymentDateIsNil applies the IsNil predicate on the "payment_date" field.
func PaymentDateIsNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIsNull(FieldPaymentDate))
}

// PaymentDateNotNil applies the NotNil predicate on the "payment_date" field.
func PaymentDateNotNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotNull(FieldPaymentDate))
}

// PaymentFingerprintEQ applies the EQ predicate on the "payment_fingerprint" field.
func PaymentFingerprintEQ(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldPaymentFingerprint, v))
}

// PaymentFingerprintNEQ applies the NEQ predicate on the "payment_fingerprint" field.
func PaymentFingerprintNEQ(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldPaymentFingerprint, v))
}

// PaymentFingerprintIn applies the In predicate on the "payment_fingerprint" field.
func PaymentFingerprintIn(vs ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldPaymentFingerprint, vs...))
}

// PaymentFingerprintNotIn applies the NotIn predicate on the "payment_fingerprint" field.
func PaymentFingerprintNotIn(vs ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldPaymentFingerprint, vs...))
}

// PaymentFingerprintGT applies the GT predicate on the "payment_fingerprint" field.
func PaymentFingerprintGT(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldPaymentFingerprint, v))
}

// PaymentFingerprintGTE applies the GTE predicate on the "payment_fingerprint" field.
func PaymentFingerprintGTE(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldPaymentFingerprint, v))
}

// PaymentFingerprintLT applies the LT predicate on the "payment_fingerprint" field.
func PaymentFingerprintLT(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldPaymentFingerprint, v))
}

// PaymentFingerprintLTE applies the LTE predicate on the "payment_fingerprint" field.
func PaymentFingerprintLTE(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldPaymentFingerprint, v))
}

// PaymentFingerprintContains applies the Contains predicate on the "payment_fingerprint" field.
func PaymentFingerprintContains(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContains(FieldPaymentFingerprint, v))
}

// PaymentFingerprintHasPrefix applies the HasPrefix predicate on the "payment_fingerprint" field.
func PaymentFingerprintHasPrefix(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldHasPrefix(FieldPaymentFingerprint, v))
}

// PaymentFingerprintHasSuffix applies the HasSuffix predicate on the "payment_fingerprint" field.
func PaymentFingerprintHasSuffix(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldHasSuffix(FieldPaymentFingerprint, v))
}

// PaymentFingerprintIsNil applies the IsNil predicate on the "payment_fingerprint" field.
func PaymentFingerprintIsNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIsNull(FieldPaymentFingerprint))
}

// PaymentFingerprintNotNil applies the NotNil predicate on the "payment_fingerprint" field.
func PaymentFingerprintNotNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotNull(FieldPaymentFingerprint))
}

// PaymentFingerprintEqualFold applies the EqualFold predicate on the "payment_fingerprint" field.
func PaymentFingerprintEqualFold(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEqualFold(FieldPaymentFingerprint, v))
}

// PaymentFingerprintContainsFold applies the ContainsFold predicate on the "payment_fingerprint" field.
func PaymentFingerprintContainsFold(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContainsFold(FieldPaymentFingerprint, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotNull(FieldConfidence))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContainsFold(FieldModel, v))
}

// PromptVersionEQ applies the EQ predicate on the "prompt_version" field.
func PromptVersionEQ(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldPromptVersion, v))
}

// PromptVersionNEQ applies the NEQ predicate on the "prompt_version" field.
func PromptVersionNEQ(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldPromptVersion, v))
}

// PromptVersionIn applies the In predicate on the "prompt_version" field.
func PromptVersionIn(vs ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldPromptVersion, vs...))
}

// PromptVersionNotIn applies the NotIn predicate on the "prompt_version" field.
func PromptVersionNotIn(vs ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldPromptVersion, vs...))
}

// PromptVersionGT applies the GT predicate on the "prompt_version" field.
func PromptVersionGT(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldPromptVersion, v))
}

// PromptVersionGTE applies the GTE predicate on the "prompt_version" field.
func PromptVersionGTE(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldPromptVersion, v))
}

// PromptVersionLT applies the LT predicate on the "prompt_version" field.
func PromptVersionLT(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldPromptVersion, v))
}

// PromptVersionLTE applies the LTE predicate on the "prompt_version" field.
func PromptVersionLTE(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldPromptVersion, v))
}

// PromptVersionContains applies the Contains predicate on the "prompt_version" field.
func PromptVersionContains(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContains(FieldPromptVersion, v))
}

// PromptVersionHasPrefix applies the HasPrefix predicate on the "prompt_version" field.
func PromptVersionHasPrefix(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldHasPrefix(FieldPromptVersion, v))
}

// PromptVersionHasSuffix applies the HasSuffix predicate on the "prompt_version" field.
func PromptVersionHasSuffix(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldHasSuffix(FieldPromptVersion, v))
}

// PromptVersionIsNil applies the IsNil predicate on the "prompt_version" field.
func PromptVersionIsNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIsNull(FieldPromptVersion))
}

// PromptVersionNotNil applies the NotNil predicate on the "prompt_version" field.
func PromptVersionNotNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotNull(FieldPromptVersion))
}

// PromptVersionEqualFold applies the EqualFold predicate on the "prompt_version" field.
func PromptVersionEqualFold(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEqualFold(FieldPromptVersion, v))
}

// PromptVersionContainsFold applies the ContainsFold predicate on the "prompt_version" field.
func PromptVersionContainsFold(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContainsFold(FieldPromptVersion, v))
}

// RawJSONEQ applies the EQ predicate on the "raw_json" field.
func RawJSONEQ(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldRawJSON, v))
}

// RawJSONNEQ applies the NEQ predicate on the "raw_json" field.
func RawJSONNEQ(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldRawJSON, v))
}

// RawJSONIn applies the In predicate on the "raw_json" field.
func RawJSONIn(vs ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldRawJSON, vs...))
}

// RawJSONNotIn applies the NotIn predicate on the "raw_json" field.
func RawJSONNotIn(vs ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldRawJSON, vs...))
}

// RawJSONGT applies the GT predicate on the "raw_json" field.
func RawJSONGT(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldRawJSON, v))
}

// RawJSONGTE applies the GTE predicate on the "raw_json" field.
func RawJSONGTE(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldRawJSON, v))
}

// RawJSONLT applies the LT predicate on the "raw_json" field.
func RawJSONLT(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldRawJSON, v))
}

// RawJSONLTE applies the LTE predicate on the "raw_json" field.
func RawJSONLTE(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldRawJSON, v))
}

// RawJSONContains applies the Contains predicate on the "raw_json" field.
func RawJSONContains(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContains(FieldRawJSON, v))
}

// RawJSONHasPrefix applies the HasPrefix predicate on the "raw_json" field.
func RawJSONHasPrefix(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldHasPrefix(FieldRawJSON, v))
}

// RawJSONHasSuffix applies the HasSuffix predicate on the "raw_json" field.
func RawJSONHasSuffix(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldHasSuffix(FieldRawJSON, v))
}

// RawJSONIsNil applies the IsNil predicate on the "raw_json" field.
func RawJSONIsNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIsNull(FieldRawJSON))
}

// RawJSONNotNil applies the NotNil predicate on the "raw_json" field.
func RawJSONNotNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotNull(FieldRawJSON))
}

// RawJSONEqualFold applies the EqualFold predicate on the "raw_json" field.
func RawJSONEqualFold(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEqualFold(FieldRawJSON, v))
}

// RawJSONContainsFold applies the ContainsFold predicate on the "raw_json" field.
func RawJSONContainsFold(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContainsFold(FieldRawJSON, v))
}

// ExtractedAtEQ applies the EQ predicate on the "extracted_at" field.
func ExtractedAtEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldExtractedAt, v))
}

// ExtractedAtNEQ applies the NEQ predicate on the "extracted_at" field.
func ExtractedAtNEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldExtractedAt, v))
}

// ExtractedAtIn applies the In predicate on the "extracted_at" field.
func ExtractedAtIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldExtractedAt, vs...))
}

// ExtractedAtNotIn applies the NotIn predicate on the "extracted_at" field.
func ExtractedAtNotIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldExtractedAt, vs...))
}

// ExtractedAtGT applies the GT predicate on the "extracted_at" field.
func ExtractedAtGT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldExtractedAt, v))
}

// ExtractedAtGTE applies the GTE predicate on the "extracted_at" field.
func ExtractedAtGTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldExtractedAt, v))
}

// ExtractedAtLT applies the LT predicate on the "extracted_at" field.
func ExtractedAtLT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldExtractedAt, v))
}

// ExtractedAtLTE applies the LTE predicate on the "extracted_at" field.
func ExtractedAtLTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldExtractedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PaymentRecord) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PaymentRecord) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PaymentRecord) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.NotPredicates(p))
}
