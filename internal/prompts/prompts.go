// Package prompts renders the fixed prompt templates sent to the generation
// backend and extracts the document/explanation sections out of its free-text
// replies. The section markers are a convention the backend is instructed to
// follow; parsing is best-effort substring search with a documented fallback.
package prompts

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RefusalMessage is the fixed sentence returned for out-of-domain questions.
// The guidance template also instructs the backend to emit it verbatim, as a
// second line of defense behind the intent classifier.
const RefusalMessage = "I am a contract maker specialized in Indian legal system. " +
	"I don't have knowledge outside legal and contract matters. " +
	"Please ask questions about contracts, agreements, or Indian legal framework."

const (
	draftMarker       = "CONTRACT DRAFT:"
	updatedMarker     = "UPDATED CONTRACT DRAFT:"
	changesMarker     = "CHANGES MADE:"
	explanationMarker = "EXPLANATION:"
)

// Keeps edit prompts bounded when the stored body has grown very large.
const maxBodyPromptChars = 20000

const preamble = `You are an expert Indian contract attorney specialized in the Indian legal
system, with deep knowledge of the Indian Contract Act 1872, Indian legal
framework and regulations, court procedures, and legal terminology.

FORMATTING REQUIREMENTS:
- Write ONLY in plain text. Never use markdown, backticks, asterisks or hash
  symbols.
- Use ALL CAPS for main section titles and numbered clauses in the form
  "1. CLAUSE TITLE:".
- Indent sub-clauses with three spaces in the form "   a) content".
- Single blank line between paragraphs, double blank line between major
  sections.`

const guidanceTemplate = preamble + `

If the question below is NOT related to contracts, agreements, or Indian
legal matters, respond EXACTLY with:
"%s"

Otherwise answer the question in detail based on the Indian legal framework,
citing the relevant provisions of the Indian Contract Act 1872 where they
apply.

Question: %s`

const draftTemplate = preamble + `

Draft a COMPLETE, COMPREHENSIVE contract for the request below. Include full
party details, at least ten substantive clauses covering payment terms,
termination, dispute resolution, governing law and jurisdiction, force
majeure, indemnity and liability, plus witness and signature sections and any
relevant schedules.

Structure your response EXACTLY as follows:

CONTRACT DRAFT:
(the full contract text)

EXPLANATION:
(commentary on the key clauses and why they were included)

Request: %s`

const editTemplate = preamble + `

Below is an existing contract followed by a revision request. Apply the
requested changes and return the COMPLETE revised contract, not a diff or a
summary of the changes.

Structure your response EXACTLY as follows:

UPDATED CONTRACT DRAFT:
(the full revised contract text)

CHANGES MADE:
(a list of the changes you applied)

EXPLANATION:
(commentary on the legal effect of the changes)

CURRENT CONTRACT:
%s

Revision request: %s`

// BuildGuidancePrompt renders the general-guidance template.
func BuildGuidancePrompt(question string) string {
	return fmt.Sprintf(guidanceTemplate, RefusalMessage, question)
}

// BuildDraftPrompt renders the new-document template.
func BuildDraftPrompt(question string) string {
	return fmt.Sprintf(draftTemplate, question)
}

// BuildEditPrompt renders the edit template over the current document body.
// The body bound counts characters so the cut never lands inside a rune.
func BuildEditPrompt(body, question string) string {
	if utf8.RuneCountInString(body) > maxBodyPromptChars {
		body = string([]rune(body)[:maxBodyPromptChars])
	}
	return fmt.Sprintf(editTemplate, body, question)
}

// ExtractDocument pulls the contract body out of a backend reply. The longer
// edit marker is checked first because the draft marker is a substring of it.
// A reply with no markers is returned unchanged; the backend ignored the
// template and the raw text is the best available output.
func ExtractDocument(reply string) string {
	if body, ok := section(reply, updatedMarker, changesMarker); ok {
		return body
	}
	if body, ok := section(reply, draftMarker, explanationMarker); ok {
		return body
	}
	return reply
}

// ExtractExplanation pulls the commentary out of a backend reply: everything
// after the last EXPLANATION: marker, or after CHANGES MADE: when no
// explanation section is present. Empty when the reply carries neither.
func ExtractExplanation(reply string) string {
	if i := strings.LastIndex(reply, explanationMarker); i >= 0 {
		return strings.TrimSpace(reply[i+len(explanationMarker):])
	}
	if i := strings.Index(reply, changesMarker); i >= 0 {
		return strings.TrimSpace(reply[i+len(changesMarker):])
	}
	return ""
}

func section(reply, start, stop string) (string, bool) {
	i := strings.Index(reply, start)
	if i < 0 {
		return "", false
	}
	rest := reply[i+len(start):]
	if j := strings.Index(rest, stop); j >= 0 {
		rest = rest[:j]
	}
	return strings.TrimSpace(rest), true
}
