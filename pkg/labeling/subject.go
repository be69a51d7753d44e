package labeling

import (
	"regexp"
	"strings"
)

var (
	replyPrefixRe = regexp.MustCompile(`^(?i:(re:|fwd:|fw:))\s*`)
	wordRe        = regexp.MustCompile(`[a-zA-Z0-9]+`)
)

var subjectStopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "for": {}, "from": {}, "has": {}, "have": {}, "in": {},
	"is": {}, "it": {}, "of": {}, "on": {}, "or": {}, "re": {},
	"the": {}, "to": {}, "your": {},
}

// NormalizeSubject lowercases, trims and strips reply/forward prefixes.
// Prefixes are stripped repeatedly so "Re: Fwd: Hello" and "hello"
// normalize identically. Returns "" for empty input.
func NormalizeSubject(subject string) string {
	s := strings.ToLower(strings.TrimSpace(subject))
	for {
		stripped := replyPrefixRe.ReplaceAllString(s, "")
		if stripped == s {
			return s
		}
		s = stripped
	}
}

// TokenizeSubject splits a subject into lowercase alphanumeric tokens,
// dropping stopwords and tokens shorter than three characters.
func TokenizeSubject(s string) map[string]struct{} {
	tokens := map[string]struct{}{}
	for _, t := range wordRe.FindAllString(s, -1) {
		t = strings.ToLower(t)
		if len(t) < 3 {
			continue
		}
		if _, stop := subjectStopwords[t]; stop {
			continue
		}
		tokens[t] = struct{}{}
	}
	return tokens
}

// Jaccard computes the Jaccard similarity of two token sets. Empty sets
// score zero.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	if inter == 0 {
		return 0
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

var (
	nonSlugRe   = regexp.MustCompile(`[^a-z0-9]+`)
	multiDashRe = regexp.MustCompile(`-+`)
)

// Slugify converts a label name into a stable slug used as the taxonomy
// unique key: lowercase, "&" becomes "and", everything else collapses to
// hyphens.
func Slugify(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	v = strings.ReplaceAll(v, "&", "and")
	v = nonSlugRe.ReplaceAllString(v, "-")
	v = multiDashRe.ReplaceAllString(v, "-")
	return strings.Trim(v, "-")
}
