package extract

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string // "" means nil
	}{
		{"json number", 9.99, "9.99"},
		{"plain string", "12.99", "12.99"},
		{"pound symbol", "£12.99", "12.99"},
		{"euro symbol", "€5", "5"},
		{"decimal comma", "12,50", "12.5"},
		{"grouping comma", "1,299.50", "1299.5"},
		{"symbol and grouping", "£1,299.50", "1299.5"},
		{"nil", nil, ""},
		{"no digits", "free", ""},
		{"empty string", "   ", ""},
		{"unsupported type", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.input)
			if tt.expected == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestCurrencyFromText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"£12.99", "GBP"},
		{"€20", "EUR"},
		{"$5", "USD"},
		{"total 30 eur", "EUR"},
		{"USD 14.00", "USD"},
		{"12.99", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CurrencyFromText(tt.input))
		})
	}
}

func TestNormalizeFrequency(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"monthly", "monthly"},
		{"Monthly", "monthly"},
		{"fortnightly", "biweekly"},
		{"bi-weekly", "biweekly"},
		{"annually", "yearly"},
		{"annual", "yearly"},
		{"every day", "daily"},
		{"every week", "weekly"},
		{"once", ""},
		{"every now and then", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeFrequency(tt.input))
		})
	}
}

func TestNormalizePaymentCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Food", "Food"},
		{"tech", "Technology"},
		{"Utilities", "Domestic Bills"},
		{"domestic", "Domestic Bills"},
		{"Groceries", "Other"},
		{"", ""},
		{"  ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePaymentCategory(tt.input))
		})
	}
}

func TestFingerprint(t *testing.T) {
	amount := decimal.NewFromFloat(12.3)
	date := time.Date(2025, 3, 2, 15, 0, 0, 0, time.UTC)

	fp, ok := Fingerprint("Acme Ltd.", &amount, "GBP", &date)
	require.True(t, ok)
	assert.Equal(t, "acmeltd|12.30|GBP|2025-03-02", fp)

	// Quantization collides 12.3 with 12.30.
	other := decimal.RequireFromString("12.30")
	fp2, ok := Fingerprint("acme ltd", &other, "GBP", &date)
	require.True(t, ok)
	assert.Equal(t, fp, fp2)

	_, ok = Fingerprint("", &amount, "GBP", &date)
	assert.False(t, ok)
	_, ok = Fingerprint("Acme", nil, "GBP", &date)
	assert.False(t, ok)
	_, ok = Fingerprint("Acme", &amount, "", &date)
	assert.False(t, ok)
	_, ok = Fingerprint("Acme", &amount, "GBP", nil)
	assert.False(t, ok)

	// Vendor made only of symbols reduces to an empty key.
	_, ok = Fingerprint("!!!", &amount, "GBP", &date)
	assert.False(t, ok)
}

func TestPaymentResultHasPayment(t *testing.T) {
	amount := decimal.NewFromInt(10)
	vendor := "Acme"

	assert.False(t, PaymentResult{}.HasPayment())
	assert.True(t, PaymentResult{CostAmount: &amount}.HasPayment())
	assert.True(t, PaymentResult{VendorName: &vendor}.HasPayment())
}
