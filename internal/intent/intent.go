// Package intent decides how an incoming question is routed: whether it is a
// contract-law question at all, and if so whether it asks for a brand new
// document. Classification is pure keyword and pattern matching; no model
// call is involved, so an off-topic question is refused without spending a
// generation request.
package intent

import (
	"regexp"
	"strings"
)

// Classification is the routing decision for a single question.
type Classification struct {
	InDomain         bool
	WantsNewDocument bool
}

var domainKeywords = keywordPattern([]string{
	"contract", "agreement", "legal", "clause", "nda", "non-disclosure",
	"confidential", "lease", "tenant", "landlord", "employment", "employee",
	"employer", "partnership", "licensing", "license", "loan", "vendor",
	"supplier", "merger", "acquisition", "arbitration", "indemnity",
	"liability", "breach", "jurisdiction", "stamp duty", "deed",
	"memorandum of understanding", "governing law", "terms and conditions",
})

var domainPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:indian\s+)?contract\s+act\b`),
	regexp.MustCompile(`\blegally\s+binding\b`),
	regexp.MustCompile(`\bsection\s+\d+\s+of\b`),
}

var creationVerbs = keywordPattern([]string{
	"draft", "create", "make", "write", "prepare", "generate", "compose",
})

var documentNouns = keywordPattern([]string{
	"contract", "agreement", "nda", "lease", "deed", "mou",
})

var creationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bneed\s+(?:a|an)\s+(?:new\s+)?(?:contract|agreement|nda|lease)\b`),
	regexp.MustCompile(`\bdraw(?:ing)?\s+up\s+(?:a|an)\b`),
}

// Classify routes a question. It is deterministic and case-insensitive:
// InDomain holds iff any domain keyword or pattern matches the lowercased
// question, and WantsNewDocument (only meaningful when InDomain) holds iff a
// creation verb co-occurs with a document noun or a creation pattern matches.
func Classify(question string) Classification {
	q := strings.ToLower(question)
	var cls Classification
	cls.InDomain = domainKeywords.MatchString(q)
	if !cls.InDomain {
		for _, re := range domainPatterns {
			if re.MatchString(q) {
				cls.InDomain = true
				break
			}
		}
	}
	if !cls.InDomain {
		return cls
	}
	if creationVerbs.MatchString(q) && documentNouns.MatchString(q) {
		cls.WantsNewDocument = true
		return cls
	}
	for _, re := range creationPatterns {
		if re.MatchString(q) {
			cls.WantsNewDocument = true
			break
		}
	}
	return cls
}

// keywordPattern compiles a keyword set into a single alternation anchored at
// a word start, so "lease" matches "leases" but not "please".
func keywordPattern(words []string) *regexp.Regexp {
	escaped := make([]string, len(words))
	for i, w := range words {
		escaped[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(escaped, "|") + `)`)
}
