package labeling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parserOptions() map[string][]string {
	return map[string][]string{
		"Financial":              {"Receipts", "Subscriptions", "Tickets & Bookings"},
		"Commercial & Marketing": {"Newsletters", "Promotions & Offers"},
	}
}

func TestParseLabelResponseStrict(t *testing.T) {
	got, err := ParseLabelResponse("Financial\nSubscriptions", parserOptions())
	require.NoError(t, err)
	assert.Equal(t, ParsedLabel{Category: "Financial", Subcategory: "Subscriptions"}, got)
}

func TestParseLabelResponseNoneVariants(t *testing.T) {
	for _, none := range []string{"None", "null", "(none)", "NONE"} {
		t.Run(none, func(t *testing.T) {
			got, err := ParseLabelResponse("Financial\n"+none, parserOptions())
			require.NoError(t, err)
			assert.Equal(t, "Financial", got.Category)
			assert.Empty(t, got.Subcategory)
		})
	}
}

func TestParseLabelResponsePrefixesAndBullets(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"category prefixes", "Category: Financial\nSubcategory: Subscriptions"},
		{"tier prefixes", "Tier 1 Category: Financial\nTier 2 Subcategory: Subscriptions"},
		{"bullets", "- Financial\n- Subscriptions"},
		{"numbered", "1. Financial\n2. Subscriptions"},
		{"blank lines", "\n\nFinancial\n\nSubscriptions\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLabelResponse(tt.raw, parserOptions())
			require.NoError(t, err)
			assert.Equal(t, ParsedLabel{Category: "Financial", Subcategory: "Subscriptions"}, got)
		})
	}
}

func TestParseLabelResponseSubstringCategory(t *testing.T) {
	got, err := ParseLabelResponse(
		"The best fit is Commercial & Marketing for this cluster\nNewsletters",
		parserOptions())
	require.NoError(t, err)
	assert.Equal(t, "Commercial & Marketing", got.Category)
	assert.Equal(t, "Newsletters", got.Subcategory)
}

func TestParseLabelResponseTier2Only(t *testing.T) {
	// The model answered with just a Tier-2 name; its parent is inferred.
	got, err := ParseLabelResponse("Subscriptions", parserOptions())
	require.NoError(t, err)
	assert.Equal(t, ParsedLabel{Category: "Financial", Subcategory: "Subscriptions"}, got)

	// Inference also works from the static seed when the stored taxonomy
	// does not list the option.
	got, err = ParseLabelResponse("Security Alerts", parserOptions())
	require.NoError(t, err)
	assert.Equal(t, "Account & Identity", got.Category)
	assert.Equal(t, "Security Alerts", got.Subcategory)
}

func TestParseLabelResponseReversedOrder(t *testing.T) {
	got, err := ParseLabelResponse("Subscriptions\nFinancial", parserOptions())
	require.NoError(t, err)
	assert.Equal(t, ParsedLabel{Category: "Financial", Subcategory: "Subscriptions"}, got)
}

func TestParseLabelResponseCanonicalSpelling(t *testing.T) {
	got, err := ParseLabelResponse("Financial\nsubscriptions", parserOptions())
	require.NoError(t, err)
	assert.Equal(t, "Subscriptions", got.Subcategory)
}

func TestParseLabelResponseNovelSubcategory(t *testing.T) {
	// Unknown Tier-2 names are kept; Tier-2 is preferred, not enforced.
	got, err := ParseLabelResponse("Financial\nCrypto Exchanges", parserOptions())
	require.NoError(t, err)
	assert.Equal(t, "Crypto Exchanges", got.Subcategory)
}

func TestParseLabelResponseErrors(t *testing.T) {
	_, err := ParseLabelResponse("", parserOptions())
	assert.Error(t, err)

	_, err = ParseLabelResponse("\n \n", parserOptions())
	assert.Error(t, err)

	_, err = ParseLabelResponse("Unrelated Nonsense", parserOptions())
	assert.Error(t, err)
}

func TestSanitizeSubcategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		reason   string
	}{
		{"clean", "Subscriptions", "Subscriptions", ""},
		{"prefix stripped", "Subcategory: Subscriptions", "Subscriptions", ""},
		{"empty", "  ", "", "empty"},
		{"meta note", "Note: this cluster is ambiguous", "", "meta_note_prefix"},
		{"multiline", "Subscriptions\nReceipts", "", "multiline"},
		{
			"too long",
			"A very long subcategory name that goes on and on well past any sensible label length limit",
			"", "too_long",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := SanitizeSubcategory(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestValidateTier1(t *testing.T) {
	for _, c := range Tier1Categories {
		got, err := ValidateTier1(c)
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ValidateTier1("financial") // case matters here
	assert.Error(t, err)
	_, err = ValidateTier1("Unknown")
	assert.Error(t, err)
}
