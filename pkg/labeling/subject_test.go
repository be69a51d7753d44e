package labeling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSubject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Hello World", "hello world"},
		{"reply prefix", "Re: Hello", "hello"},
		{"forward prefix", "FWD: Hello", "hello"},
		{"stacked prefixes", "Re: Fwd: Hello", "hello"},
		{"fw variant", "Fw: Invoice", "invoice"},
		{"prefix mid-string survives", "About re: things", "about re: things"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSubject(tt.input))
		})
	}
}

func TestTokenizeSubject(t *testing.T) {
	tokens := TokenizeSubject("Your order from ACME is on its way")

	// Stopwords and short tokens are dropped.
	assert.Contains(t, tokens, "order")
	assert.Contains(t, tokens, "acme")
	assert.Contains(t, tokens, "way")
	assert.NotContains(t, tokens, "your")
	assert.NotContains(t, tokens, "from")
	assert.NotContains(t, tokens, "is")
	assert.NotContains(t, tokens, "on")

	assert.Empty(t, TokenizeSubject(""))
	assert.Empty(t, TokenizeSubject("a an to"))
}

func TestJaccard(t *testing.T) {
	set := func(words ...string) map[string]struct{} {
		m := map[string]struct{}{}
		for _, w := range words {
			m[w] = struct{}{}
		}
		return m
	}

	assert.Equal(t, 0.0, Jaccard(nil, set("order")))
	assert.Equal(t, 0.0, Jaccard(set("order"), nil))
	assert.Equal(t, 0.0, Jaccard(set("order"), set("invoice")))
	assert.Equal(t, 1.0, Jaccard(set("order", "acme"), set("order", "acme")))
	assert.InDelta(t, 1.0/3.0, Jaccard(set("order", "acme"), set("order", "invoice")), 0.001)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Tickets & Bookings", "tickets-and-bookings"},
		{"Commercial & Marketing", "commercial-and-marketing"},
		{"  Newsletters  ", "newsletters"},
		{"Bills / Utilities!!", "bills-utilities"},
		{"---", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
