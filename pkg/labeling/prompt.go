package labeling

import (
	"fmt"
	"strings"
)

// PromptInput carries everything the labeling prompt needs about a cluster
// (or a single message, which is a cluster of size one).
type PromptInput struct {
	SenderDomain    string
	SubjectExamples []string
	ClusterSize     int
	FrequencyLabel  string
	UnreadLabel     string
	Bodies          []string
	// Tier2Options maps Tier-1 category name to current Tier-2 names.
	Tier2Options map[string][]string
}

// strictRetrySuffix is appended when the first response violated the
// two-line contract.
const strictRetrySuffix = "\n\nIMPORTANT: Output EXACTLY TWO non-empty lines. " +
	"Do NOT include any notes, explanations, or prefixes like 'Tier-2 Subcategory:' or 'Note:'. " +
	"Line 2 must be either a short subcategory name or 'None'.\n"

func renderTaxonomy(tier2 map[string][]string) string {
	if len(tier2) == 0 {
		var b strings.Builder
		for _, c := range Tier1Categories {
			fmt.Fprintf(&b, "- %s\n", c)
		}
		return strings.TrimRight(b.String(), "\n")
	}

	var b strings.Builder
	for _, cat := range Tier1Categories {
		subs := tier2[cat]
		if len(subs) > 0 {
			fmt.Fprintf(&b, "- %s:\n", cat)
			for _, s := range subs {
				fmt.Fprintf(&b, "  - %s\n", s)
			}
		} else {
			fmt.Fprintf(&b, "- %s\n", cat)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// BuildLabelPrompt builds the strict Tier-1 labeling prompt. The model
// must choose exactly one Tier-1 category and respond as plain text with
// exactly two non-empty lines.
func BuildLabelPrompt(in PromptInput) string {
	var subjects strings.Builder
	for _, s := range in.SubjectExamples {
		if s != "" {
			fmt.Fprintf(&subjects, "- %s\n", s)
		}
	}
	subjectsBlock := strings.TrimRight(subjects.String(), "\n")
	if subjectsBlock == "" {
		subjectsBlock = "- (none)"
	}

	var bodyParts []string
	for i, b := range in.Bodies {
		b = strings.TrimSpace(b)
		if b != "" {
			bodyParts = append(bodyParts, fmt.Sprintf("Body sample %d:\n%s", i+1, b))
		}
	}
	bodiesBlock := strings.Join(bodyParts, "\n\n---\n\n")
	if bodiesBlock == "" {
		bodiesBlock = "(no bodies provided)"
	}

	return "You are an email categorisation assistant.\n\n" +
		"You are labelling a CLUSTER of emails based on representative samples and metadata.\n" +
		"You must choose exactly ONE category from the fixed Tier-1 taxonomy below.\n" +
		fmt.Sprintf("IMPORTANT: Line 1 MUST be exactly one of: %s\n", strings.Join(Tier1Categories, ", ")) +
		"Do NOT put a Tier-2 label on line 1.\n" +
		"There is NO 'Unknown' bucket. If none are perfect, choose the least wrong category.\n" +
		"Choose a Tier-2 subcategory from the list under your chosen category whenever possible.\n" +
		"If none fit, you MAY propose a new subcategory name (short) in the 'subcategory' field.\n" +
		"Avoid inventing new subcategories unless necessary.\n\n" +
		fmt.Sprintf("Cluster size: %d\n", in.ClusterSize) +
		fmt.Sprintf("Frequency label: %s\n", in.FrequencyLabel) +
		fmt.Sprintf("Unread label: %s\n", in.UnreadLabel) +
		fmt.Sprintf("Sender domain: %s\n\n", in.SenderDomain) +
		"Normalized subject examples:\n" +
		subjectsBlock + "\n\n" +
		"Representative email bodies:\n" +
		bodiesBlock + "\n\n" +
		"Tier-1 (and Tier-2) taxonomy:\n" +
		renderTaxonomy(in.Tier2Options) + "\n\n" +
		"Respond ONLY as plain multiline text with EXACTLY TWO non-empty lines:\n" +
		"Line 1: the chosen Tier-1 category (exactly as written in the taxonomy)\n" +
		"Line 2: the Tier-2 subcategory (from the list under that category), or the word 'None'\n"
}
