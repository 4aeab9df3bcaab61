package prompts

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExtractDocumentFromDraftReply(t *testing.T) {
	reply := "CONTRACT DRAFT:\nX\nEXPLANATION:\nY"
	if got := ExtractDocument(reply); got != "X" {
		t.Fatalf("ExtractDocument = %q, want %q", got, "X")
	}
	if got := ExtractExplanation(reply); got != "Y" {
		t.Fatalf("ExtractExplanation = %q, want %q", got, "Y")
	}
}

func TestExtractDocumentFromEditReply(t *testing.T) {
	reply := "UPDATED CONTRACT DRAFT:\nrevised text\nCHANGES MADE:\n- added clause\nEXPLANATION:\nwhy"
	if got := ExtractDocument(reply); got != "revised text" {
		t.Fatalf("ExtractDocument = %q, want %q", got, "revised text")
	}
	if got := ExtractExplanation(reply); got != "why" {
		t.Fatalf("ExtractExplanation = %q, want %q", got, "why")
	}
}

func TestExtractDocumentDraftWithoutExplanation(t *testing.T) {
	reply := "CONTRACT DRAFT:\n  full text  "
	if got := ExtractDocument(reply); got != "full text" {
		t.Fatalf("ExtractDocument = %q, want trimmed body", got)
	}
	if got := ExtractExplanation(reply); got != "" {
		t.Fatalf("ExtractExplanation = %q, want empty", got)
	}
}

func TestExtractEditReplyWithoutExplanation(t *testing.T) {
	reply := "UPDATED CONTRACT DRAFT:\nbody\nCHANGES MADE:\n- tightened terms"
	if got := ExtractDocument(reply); got != "body" {
		t.Fatalf("ExtractDocument = %q, want %q", got, "body")
	}
	if got := ExtractExplanation(reply); got != "- tightened terms" {
		t.Fatalf("ExtractExplanation = %q, want changes list", got)
	}
}

func TestExtractFallbackWithoutMarkers(t *testing.T) {
	reply := "the backend ignored the template entirely"
	if got := ExtractDocument(reply); got != reply {
		t.Fatalf("ExtractDocument = %q, want reply unchanged", got)
	}
	if got := ExtractExplanation(reply); got != "" {
		t.Fatalf("ExtractExplanation = %q, want empty", got)
	}
}

func TestExtractExplanationUsesLastMarker(t *testing.T) {
	reply := "EXPLANATION:\nfirst\nEXPLANATION:\nsecond"
	if got := ExtractExplanation(reply); got != "second" {
		t.Fatalf("ExtractExplanation = %q, want %q", got, "second")
	}
}

func TestBuildGuidancePrompt(t *testing.T) {
	p := BuildGuidancePrompt("Is a verbal agreement binding?")
	if !strings.Contains(p, "Is a verbal agreement binding?") {
		t.Fatal("guidance prompt missing the question")
	}
	if !strings.Contains(p, RefusalMessage) {
		t.Fatal("guidance prompt missing the refusal sentence")
	}
}

func TestBuildDraftPrompt(t *testing.T) {
	p := BuildDraftPrompt("Draft an NDA")
	for _, want := range []string{"Draft an NDA", "CONTRACT DRAFT:", "EXPLANATION:"} {
		if !strings.Contains(p, want) {
			t.Fatalf("draft prompt missing %q", want)
		}
	}
}

func TestBuildEditPrompt(t *testing.T) {
	p := BuildEditPrompt("existing body", "add a clause")
	for _, want := range []string{"existing body", "add a clause", "UPDATED CONTRACT DRAFT:", "CHANGES MADE:", "EXPLANATION:"} {
		if !strings.Contains(p, want) {
			t.Fatalf("edit prompt missing %q", want)
		}
	}
}

func TestBuildEditPromptTruncatesLargeBody(t *testing.T) {
	body := strings.Repeat("a", maxBodyPromptChars+500)
	p := BuildEditPrompt(body, "shorten it")
	if strings.Contains(p, body) {
		t.Fatal("edit prompt should not embed the full oversized body")
	}
	if !strings.Contains(p, body[:maxBodyPromptChars]) {
		t.Fatal("edit prompt missing the truncated body")
	}
}

func TestBuildEditPromptTruncatesOnRuneBoundary(t *testing.T) {
	body := strings.Repeat("क", maxBodyPromptChars+500)
	p := BuildEditPrompt(body, "shorten it")
	if !utf8.ValidString(p) {
		t.Fatal("edit prompt contains invalid utf-8 after truncation")
	}
	if !strings.Contains(p, strings.Repeat("क", maxBodyPromptChars)) {
		t.Fatal("edit prompt should keep the first 20000 characters")
	}
	if strings.Contains(p, strings.Repeat("क", maxBodyPromptChars+1)) {
		t.Fatal("edit prompt embeds more than the bounded body")
	}
}
