package intent

import (
	"regexp"
	"strings"
)

type category struct {
	name    string
	pattern *regexp.Regexp
}

// Scan order is fixed and significant: the first category with a keyword hit
// wins, so broader buckets such as "service" sit above narrower ones they
// could shadow.
var categories = []category{
	{"employment", keywordPattern([]string{"employment", "employee", "employer", "job offer", "appointment letter", "salary", "hiring"})},
	{"service", keywordPattern([]string{"service agreement", "services", "consulting", "consultant", "freelance"})},
	{"sale", keywordPattern([]string{"sale", "purchase", "sell", "goods"})},
	{"lease", keywordPattern([]string{"lease", "rental", "tenant", "landlord", "premises"})},
	{"nda", keywordPattern([]string{"nda", "non-disclosure", "nondisclosure", "confidential"})},
	{"partnership", keywordPattern([]string{"partnership", "partner", "joint venture"})},
	{"licensing", keywordPattern([]string{"licensing", "license", "royalty", "trademark", "intellectual property"})},
	{"loan", keywordPattern([]string{"loan", "borrow", "lend", "repayment"})},
	{"vendor", keywordPattern([]string{"vendor", "supplier", "procurement", "supply"})},
	{"merger", keywordPattern([]string{"merger", "acquisition", "amalgamation", "takeover"})},
}

// DetectType tags a question with a contract category on a best-effort,
// first-match-wins basis. The second return is false when no category
// keyword is present.
func DetectType(question string) (string, bool) {
	q := strings.ToLower(question)
	for _, c := range categories {
		if c.pattern.MatchString(q) {
			return c.name, true
		}
	}
	return "", false
}

// Categories returns the supported contract categories in scan order.
func Categories() []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.name
	}
	return names
}
