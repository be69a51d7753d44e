package labeling

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	linePrefixRe = regexp.MustCompile(`(?i)^\s*(?:category|subcategory|tier\s*[-\s]*1(?:\s*category)?|tier\s*[-\s]*2(?:\s*subcategory)?)\s*:\s*`)
	bulletRe     = regexp.MustCompile(`^\s*(?:[-*]+|\d+\.|\d+\))\s*`)
)

// Subcategory may extend the taxonomy, but meta/explanatory text must not
// be accepted as a label name.
var forbiddenSubcategoryPrefixes = []string{
	"note:",
	"notes:",
	"reason:",
	"because:",
	"explanation:",
	"rationale:",
}

func normalizeResponseLine(line string) string {
	s := strings.TrimSpace(linePrefixRe.ReplaceAllString(line, ""))
	return strings.TrimSpace(bulletRe.ReplaceAllString(s, ""))
}

// SanitizeSubcategory normalizes and validates a Tier-2 name. It returns
// the cleaned name and an empty reason on success; on rejection the name
// is "" and the reason is a short token the caller can use to decide on a
// retry.
func SanitizeSubcategory(candidate string) (string, string) {
	s := strings.TrimSpace(candidate)
	if s == "" {
		return "", "empty"
	}

	s = normalizeResponseLine(s)

	folded := strings.ToLower(s)
	for _, p := range forbiddenSubcategoryPrefixes {
		if strings.HasPrefix(folded, p) {
			return "", "meta_note_prefix"
		}
	}
	if strings.Contains(folded, "chosen categories") && strings.Contains(folded, "match") {
		return "", "meta_explanation"
	}
	if strings.ContainsAny(s, "\n\r") {
		return "", "multiline"
	}
	if len(s) > 80 {
		return "", "too_long"
	}
	return s, ""
}

// ParsedLabel is the outcome of parsing a label response.
type ParsedLabel struct {
	Category    string
	Subcategory string // "" means none
}

// ParseLabelResponse parses the two-line label response tolerantly.
//
// The strict contract is Tier-1 on line 1 and Tier-2 (or "None") on line 2,
// but real model output drifts, so the parser also accepts:
//   - "Category:"/"Subcategory:" style prefixes and bullets
//   - extra leading/trailing lines (first Tier-1 match wins)
//   - a Tier-1 name buried inside a longer line
//   - a Tier-2 name alone (its parent Tier-1 is inferred)
//   - reversed order (Tier-2 above Tier-1)
//
// Known Tier-2 names are folded to their canonical spelling.
func ParseLabelResponse(raw string, tier2Options map[string][]string) (ParsedLabel, error) {
	var lines []string
	for _, l := range strings.Split(raw, "\n") {
		if n := normalizeResponseLine(l); n != "" {
			lines = append(lines, n)
		}
	}
	if len(lines) == 0 {
		return ParsedLabel{}, fmt.Errorf("empty label response")
	}

	// Static seed fallback map so inference still works when the DB-provided
	// options are missing or incomplete.
	seedTier2ToTier1 := map[string]string{}
	for cat, subs := range Tier2Seed {
		for _, e := range subs {
			seedTier2ToTier1[strings.ToLower(e.Name)] = cat
		}
	}

	tier2MatchForCategory := func(category, candidate string) string {
		cand := strings.TrimSpace(candidate)
		if cand == "" {
			return ""
		}
		// Prefer canonical spelling from the stored taxonomy.
		for _, s := range tier2Options[category] {
			if strings.EqualFold(cand, s) {
				return s
			}
		}
		if seedTier2ToTier1[strings.ToLower(cand)] == category {
			return cand
		}
		return ""
	}

	tier2ToTier1 := func(candidate string) (string, string, bool) {
		cand := strings.TrimSpace(candidate)
		if cand == "" {
			return "", "", false
		}
		for cat, subs := range tier2Options {
			for _, s := range subs {
				if strings.EqualFold(cand, s) {
					return cat, s, true
				}
			}
		}
		if cat, ok := seedTier2ToTier1[strings.ToLower(cand)]; ok {
			return cat, cand, true
		}
		return "", "", false
	}

	category := ""
	categoryIdx := -1

	// Exact Tier-1 match anywhere.
	for i, line := range lines {
		for _, c := range Tier1Categories {
			if strings.EqualFold(line, c) {
				category = c
				categoryIdx = i
				break
			}
		}
		if category != "" {
			break
		}
	}

	// Tier-1 as a substring, tolerant of extra words.
	if category == "" {
		for i, line := range lines {
			folded := strings.ToLower(line)
			for _, c := range Tier1Categories {
				if strings.Contains(folded, strings.ToLower(c)) {
					category = c
					categoryIdx = i
					break
				}
			}
			if category != "" {
				break
			}
		}
	}

	if category == "" {
		// Common failure mode: the model answered with a Tier-2 label only.
		for _, line := range lines {
			if cat, sub, ok := tier2ToTier1(line); ok {
				return ParsedLabel{Category: cat, Subcategory: sub}, nil
			}
		}
		cat, err := ValidateTier1(lines[0])
		if err != nil {
			return ParsedLabel{}, err
		}
		category = cat
		categoryIdx = 0
	}

	subcategory := ""
	for j := categoryIdx + 1; j < len(lines); j++ {
		cand := strings.TrimSpace(lines[j])
		if cand == "" {
			continue
		}
		switch strings.ToLower(cand) {
		case "none", "null", "(none)":
			subcategory = ""
		default:
			subcategory = cand
		}
		break
	}

	// Reversed order: Tier-2 above Tier-1.
	if subcategory == "" && categoryIdx > 0 {
		if matched := tier2MatchForCategory(category, lines[categoryIdx-1]); matched != "" {
			subcategory = matched
		}
	}

	// Prefer the canonical spelling for known Tier-2 options.
	if subcategory != "" {
		if matched := tier2MatchForCategory(category, subcategory); matched != "" {
			subcategory = matched
		}
	}

	return ParsedLabel{Category: category, Subcategory: subcategory}, nil
}
