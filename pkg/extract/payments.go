package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mailscope/mailscope/pkg/llm"
)

// PaymentPromptVersion is stamped on every extracted payment row.
const PaymentPromptVersion = "payment-extract-v1"

var currencySymbols = []struct {
	symbol string
	code   string
}{
	{"£", "GBP"},
	{"€", "EUR"},
	{"$", "USD"},
}

var (
	amountRe       = regexp.MustCompile(`\d+(?:\.\d+)?`)
	currencyCodeRe = regexp.MustCompile(`\b[A-Za-z]{3}\b`)
	vendorKeyRe    = regexp.MustCompile(`[^a-z0-9]+`)
)

// ParseAmount extracts a decimal amount from a model-provided value,
// which may be a JSON number or a string like "£1.299,50". Decimal
// commas are handled only when no dot is present; remaining commas are
// treated as grouping.
func ParseAmount(value any) *decimal.Decimal {
	switch v := value.(type) {
	case nil:
		return nil
	case float64:
		d := decimal.NewFromFloat(v)
		return &d
	case string:
		raw := strings.TrimSpace(v)
		if raw == "" {
			return nil
		}
		for _, c := range currencySymbols {
			raw = strings.ReplaceAll(raw, c.symbol, "")
		}
		if strings.Contains(raw, ",") && !strings.Contains(raw, ".") {
			raw = strings.ReplaceAll(raw, ",", ".")
		}
		raw = strings.ReplaceAll(raw, ",", "")
		m := amountRe.FindString(raw)
		if m == "" {
			return nil
		}
		d, err := decimal.NewFromString(m)
		if err != nil {
			return nil
		}
		return &d
	default:
		return nil
	}
}

// CurrencyFromText recovers a currency from free text: a known symbol
// first, then any standalone 3-letter code.
func CurrencyFromText(s string) string {
	for _, c := range currencySymbols {
		if strings.Contains(s, c.symbol) {
			return c.code
		}
	}
	return strings.ToUpper(currencyCodeRe.FindString(s))
}

var frequencyAliases = map[string]string{
	"daily":       "daily",
	"every day":   "daily",
	"weekly":      "weekly",
	"biweekly":    "biweekly",
	"bi-weekly":   "biweekly",
	"fortnightly": "biweekly",
	"monthly":     "monthly",
	"quarterly":   "quarterly",
	"yearly":      "yearly",
	"annual":      "yearly",
	"annually":    "yearly",
}

// NormalizeFrequency maps a model-provided cadence onto the closed set
// daily/weekly/biweekly/monthly/quarterly/yearly. Unlike event types,
// an unmappable frequency is dropped rather than bucketed.
func NormalizeFrequency(value string) string {
	key := strings.ToLower(strings.TrimSpace(value))
	if key == "" {
		return ""
	}
	if mapped, ok := frequencyAliases[key]; ok {
		return mapped
	}
	if rest, ok := strings.CutPrefix(key, "every "); ok {
		if mapped, ok := frequencyAliases[strings.TrimSpace(rest)]; ok {
			return mapped
		}
	}
	return ""
}

var canonicalPaymentCategories = map[string]struct{}{
	"Food": {}, "Entertainment": {}, "Technology": {},
	"Lifestyle": {}, "Domestic Bills": {}, "Other": {},
}

var paymentCategoryAliases = map[string]string{
	"food":           "Food",
	"entertainment":  "Entertainment",
	"technology":     "Technology",
	"tech":           "Technology",
	"lifestyle":      "Lifestyle",
	"domestic bills": "Domestic Bills",
	"domestic":       "Domestic Bills",
	"utilities":      "Domestic Bills",
	"other":          "Other",
}

// NormalizePaymentCategory maps a model-provided category onto the
// canonical set, falling back to "Other". Blank input returns "".
func NormalizePaymentCategory(value string) string {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return ""
	}
	if _, ok := canonicalPaymentCategories[raw]; ok {
		return raw
	}
	if mapped, ok := paymentCategoryAliases[strings.ToLower(raw)]; ok {
		return mapped
	}
	return "Other"
}

func vendorKey(vendor string) string {
	return vendorKeyRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(vendor)), "")
}

// Fingerprint builds the cross-message dedup key
// vendor|amount|currency|date. All four components are required; the
// amount is quantized to two decimal places so "12.3" and "12.30"
// collide.
func Fingerprint(vendor string, amount *decimal.Decimal, currency string, date *time.Time) (string, bool) {
	if vendor == "" || amount == nil || currency == "" || date == nil {
		return "", false
	}
	key := vendorKey(vendor)
	if key == "" {
		return "", false
	}
	return fmt.Sprintf("%s|%s|%s|%s", key, amount.StringFixed(2), currency, date.Format("2006-01-02")), true
}

// PaymentInput is the per-message context handed to the extractor.
type PaymentInput struct {
	Subject      string
	FromDomain   string
	InternalDate *time.Time
	Body         string
}

// PaymentResult is a normalized extraction ready for persistence.
type PaymentResult struct {
	ItemName      *string
	VendorName    *string
	ItemCategory  *string
	CostAmount    *decimal.Decimal
	CostCurrency  *string
	IsRecurring   *bool
	Frequency     *string
	PaymentDate   *time.Time
	Fingerprint   *string
	Confidence    *float64
	Notes         *string
	RawJSON       string
	Model         string
	PromptVersion string
}

// HasPayment reports whether the extraction found anything worth keeping.
func (r PaymentResult) HasPayment() bool {
	return r.CostAmount != nil || r.VendorName != nil || r.ItemName != nil
}

// PaymentExtractor turns email bodies into payment metadata via a single
// model call per message.
type PaymentExtractor struct {
	llm   *llm.Client
	Model string
}

// NewPaymentExtractor wires a payment extractor for the given model.
func NewPaymentExtractor(client *llm.Client, model string) *PaymentExtractor {
	return &PaymentExtractor{llm: client, Model: model}
}

func buildPaymentPrompt(in PaymentInput) string {
	body := strings.TrimSpace(in.Body)
	if len(body) > promptBodyMax {
		body = body[:promptBodyMax]
	}
	receivedAt := ""
	if in.InternalDate != nil {
		receivedAt = in.InternalDate.UTC().Format(time.RFC3339)
	}

	var b strings.Builder
	b.WriteString("You are an assistant that extracts payment details from emails.\n")
	b.WriteString("Your job is to identify whether this email contains a payment or charge (receipts, invoices, renewals).\n\n")
	b.WriteString("Return ONLY valid JSON. No markdown. No code fences. No commentary.\n")
	b.WriteString("If the email does not describe a payment, return JSON with item_name/vendor_name/cost_amount/cost_currency/payment_date all null and confidence <= 0.2.\n\n")
	b.WriteString("Extract these fields:\n")
	b.WriteString("- item_name: string|null (concise name of the purchased item or service)\n")
	b.WriteString("- vendor_name: string|null (merchant or supplier)\n")
	b.WriteString("- item_category: string|null chosen from {Food, Entertainment, Technology, Lifestyle, Domestic Bills, Other}\n")
	b.WriteString("- cost_amount: number|string|null (numeric amount, no currency symbols preferred)\n")
	b.WriteString("- cost_currency: string|null (ISO-4217 like GBP, USD, EUR)\n")
	b.WriteString("- is_recurring: boolean|null (true if recurring, false if one-off)\n")
	b.WriteString("- frequency: string|null chosen from {daily, weekly, biweekly, monthly, quarterly, yearly}\n")
	b.WriteString("- payment_date: string|null in ISO date format YYYY-MM-DD\n")
	b.WriteString("- confidence: number 0..1\n")
	b.WriteString("- notes: string|null (brief, only if ambiguous)\n\n")
	b.WriteString("Rules:\n")
	b.WriteString("- Use only information supported by the email content.\n")
	b.WriteString("- If you choose a category, it MUST be exactly one of the allowed values (case-sensitive).\n")
	b.WriteString("- If recurring, set is_recurring=true and include frequency.\n")
	b.WriteString("- If one-off, set is_recurring=false and frequency=null.\n")
	b.WriteString("- If you choose a frequency, it MUST be exactly one of the allowed values (lowercase).\n")
	b.WriteString("- If multiple payments are present, pick the most prominent one and mention that in notes.\n\n")
	fmt.Fprintf(&b, "Context hints (may be missing): subject=%q, from_domain=%q, received_at=%q.\n\n",
		strings.TrimSpace(in.Subject), strings.TrimSpace(in.FromDomain), receivedAt)
	b.WriteString("Email body:\n---\n")
	b.WriteString(body)
	b.WriteString("\n---\n")
	return b.String()
}

// Extract runs one model call and normalizes the response. The currency
// is taken from the explicit field when given, otherwise recovered from
// symbols or codes inside the amount text.
func (x *PaymentExtractor) Extract(ctx context.Context, in PaymentInput) (PaymentResult, error) {
	raw, err := x.llm.Generate(ctx, x.Model, buildPaymentPrompt(in))
	if err != nil {
		return PaymentResult{}, fmt.Errorf("payment extraction model call failed: %w", err)
	}
	obj, err := firstJSONObject(raw)
	if err != nil {
		return PaymentResult{}, err
	}
	rawJSON, err := json.Marshal(obj)
	if err != nil {
		return PaymentResult{}, fmt.Errorf("failed to re-encode model output: %w", err)
	}

	res := PaymentResult{
		RawJSON:       string(rawJSON),
		Model:         x.Model,
		PromptVersion: PaymentPromptVersion,
	}
	res.ItemName = stringField(obj, "item_name")
	res.VendorName = stringField(obj, "vendor_name")
	if c := stringField(obj, "item_category"); c != nil {
		if n := NormalizePaymentCategory(*c); n != "" {
			res.ItemCategory = &n
		}
	}

	currency := ""
	if hint := stringField(obj, "cost_currency"); hint != nil {
		currency = strings.ToUpper(*hint)
	}
	if currency == "" {
		if s, ok := obj["cost_amount"].(string); ok {
			currency = CurrencyFromText(s)
		}
	}
	if currency != "" {
		res.CostCurrency = &currency
	}
	res.CostAmount = ParseAmount(obj["cost_amount"])

	if d := stringField(obj, "payment_date"); d != nil {
		if ts, err := time.ParseInLocation("2006-01-02", *d, time.UTC); err == nil {
			res.PaymentDate = &ts
		}
	}

	if f := stringField(obj, "frequency"); f != nil {
		if n := NormalizeFrequency(*f); n != "" {
			res.Frequency = &n
		}
	}
	res.IsRecurring = boolField(obj, "is_recurring")
	if res.IsRecurring == nil && res.Frequency != nil {
		recurring := true
		res.IsRecurring = &recurring
	}
	if res.IsRecurring != nil && !*res.IsRecurring {
		res.Frequency = nil
	}

	vendor := ""
	if res.VendorName != nil {
		vendor = *res.VendorName
	}
	if fp, ok := Fingerprint(vendor, res.CostAmount, currency, res.PaymentDate); ok {
		res.Fingerprint = &fp
	}

	res.Confidence = floatField(obj, "confidence")
	res.Notes = stringField(obj, "notes")
	return res, nil
}
