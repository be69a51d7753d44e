package labeling

import "fmt"

// Tier1Categories is the enforced Tier-1 taxonomy. There is intentionally
// no "Unknown" category.
var Tier1Categories = []string{
	"Financial",
	"Commercial & Marketing",
	"Work & Professional",
	"Personal & Social",
	"Account & Identity",
	"System & Automated",
}

// Tier2Entry is a seeded subcategory with its description.
type Tier2Entry struct {
	Name        string
	Description string
}

// Tier2Seed is the initial Tier-2 taxonomy per Tier-1 category. Tier-2 is
// preferred, not enforced: the model may extend it and extensions are
// persisted so future prompts include them.
var Tier2Seed = map[string][]Tier2Entry{
	"Financial": {
		{"Receipts", "One-off purchase confirmations"},
		{"Orders & Purchases", "Order confirmations, purchase details (non-recurring)"},
		{"Payments & Reminders", "Payment due notices, payment reminders, outstanding balance"},
		{"Tickets & Bookings", "Ticketing, bookings, reservations with a financial component"},
		{"Invoices & Bills", "Requests for payment (utilities, services)"},
		{"Statements", "Periodic summaries (bank, credit card, investment)"},
		{"Subscriptions", "Recurring charges (software, media, memberships)"},
		{"Taxes & Legal", "Tax documents, filings, official notices"},
		{"Refunds & Adjustments", "Chargebacks, refunds, corrections"},
	},
	"Commercial & Marketing": {
		{"Newsletters", "Regular informational/promotional mailings"},
		{"Promotions & Offers", "Discounts, sales, limited offers"},
		{"Product Updates", "New features, launches, announcements"},
		{"Events & Webinars", "Invitations, registrations, reminders"},
		{"Surveys & Feedback", "Requests for reviews, ratings, opinions"},
	},
	"Work & Professional": {
		{"Internal Communication", "Colleagues, team updates, internal notices"},
		{"Project & Client Updates", "Deliverables, status reports, coordination"},
		{"Recruitment", "Job applications, recruiters, interviews"},
		{"Professional Networks", "LinkedIn, industry groups, associations"},
		{"Training & Education", "Courses, certifications, learning platforms"},
	},
	"Personal & Social": {
		{"Friends & Family", "Direct personal correspondence"},
		{"Health & Care", "Appointments, results, providers (non-billing)"},
		{"Education", "Schools, universities, learning (non-work)"},
		{"Clubs & Communities", "Hobbies, societies, local groups"},
		{"Travel & Leisure", "Bookings, itineraries, leisure activities (non-financial content)"},
	},
	"Account & Identity": {
		{"Security Alerts", "Login warnings, suspicious activity"},
		{"Authentication", "Password resets, 2FA codes"},
		{"Account Changes", "Email changes, profile updates"},
		{"Policy & Terms", "Terms of service, privacy updates"},
		{"Account Notifications", "General account status messages"},
	},
	"System & Automated": {
		{"Code & DevOps", "GitHub, CI/CD, build systems"},
		{"Monitoring & Alerts", "System health, uptime, errors"},
		{"Forum & Platform Notifications", "Replies, mentions, moderation"},
		{"Scheduled Reports", "Automated digests, summaries"},
		{"Integration Events", "Webhooks, API-driven notifications"},
	},
}

// ValidateTier1 returns the category unchanged when it is a known Tier-1
// category, or an error otherwise.
func ValidateTier1(category string) (string, error) {
	for _, c := range Tier1Categories {
		if category == c {
			return category, nil
		}
	}
	return "", fmt.Errorf("invalid category %q", category)
}
