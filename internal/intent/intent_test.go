package intent

import "testing"

func TestClassifyOutOfDomain(t *testing.T) {
	questions := []string{
		"What is the capital of France?",
		"How do I bake a chocolate cake?",
		"Tell me a joke about programmers",
		"Who won the cricket world cup in 2011?",
	}
	for _, q := range questions {
		cls := Classify(q)
		if cls.InDomain {
			t.Errorf("Classify(%q).InDomain = true, want false", q)
		}
		if cls.WantsNewDocument {
			t.Errorf("Classify(%q).WantsNewDocument = true, want false", q)
		}
	}
}

func TestClassifyInDomain(t *testing.T) {
	questions := []string{
		"What does the Indian Contract Act say about minors?",
		"Is a verbal agreement legally binding?",
		"Explain the indemnity clause in my lease",
		"What happens on breach of an employment agreement?",
	}
	for _, q := range questions {
		if !Classify(q).InDomain {
			t.Errorf("Classify(%q).InDomain = false, want true", q)
		}
	}
}

func TestClassifyCreationIntent(t *testing.T) {
	cases := []struct {
		question string
		want     bool
	}{
		{"Draft an NDA between Acme and Beta", true},
		{"Create an employment contract for a designer", true},
		{"Prepare a lease agreement for my shop", true},
		{"I need a new contract for my vendor", true},
		{"What is consideration under contract law?", false},
		{"Explain the termination clause of this agreement", false},
	}
	for _, tc := range cases {
		cls := Classify(tc.question)
		if !cls.InDomain {
			t.Fatalf("Classify(%q).InDomain = false, want true", tc.question)
		}
		if cls.WantsNewDocument != tc.want {
			t.Errorf("Classify(%q).WantsNewDocument = %v, want %v", tc.question, cls.WantsNewDocument, tc.want)
		}
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if !Classify("DRAFT AN NDA FOR MY STARTUP").WantsNewDocument {
		t.Fatal("expected creation intent for upper-cased question")
	}
}

// "please" must not hit the "lease" keyword.
func TestClassifyWordBoundaries(t *testing.T) {
	if Classify("Could you please recommend a good restaurant?").InDomain {
		t.Fatal("expected out-of-domain for question containing 'please'")
	}
	if Classify("What is the current weather?").InDomain {
		t.Fatal("expected out-of-domain for question containing 'current'")
	}
}

func TestDetectType(t *testing.T) {
	cases := []struct {
		question string
		want     string
	}{
		{"Draft an NDA between Acme and Beta", "nda"},
		{"Create an employment agreement for an engineer", "employment"},
		{"Prepare a rental agreement for my flat", "lease"},
		{"Draft a loan agreement with a two year repayment plan", "loan"},
		{"Write a trademark licensing deal", "licensing"},
	}
	for _, tc := range cases {
		got, ok := DetectType(tc.question)
		if !ok || got != tc.want {
			t.Errorf("DetectType(%q) = %q, %v, want %q", tc.question, got, ok, tc.want)
		}
	}
}

func TestDetectTypeAbsent(t *testing.T) {
	if got, ok := DetectType("Draft a contract for me"); ok {
		t.Errorf("DetectType = %q, want absent", got)
	}
}

func TestDetectTypeFirstMatchWins(t *testing.T) {
	// Mentions both employment and nda keywords; employment is scanned first.
	got, ok := DetectType("Draft an employment agreement with a confidentiality clause")
	if !ok || got != "employment" {
		t.Fatalf("DetectType = %q, %v, want employment", got, ok)
	}
}

func TestDetectTypeDeterministic(t *testing.T) {
	q := "Draft a partnership deed for two founders"
	first, _ := DetectType(q)
	for i := 0; i < 50; i++ {
		got, _ := DetectType(q)
		if got != first {
			t.Fatalf("DetectType not deterministic: %q vs %q", got, first)
		}
	}
}

func TestCategoriesOrder(t *testing.T) {
	want := []string{"employment", "service", "sale", "lease", "nda", "partnership", "licensing", "loan", "vendor", "merger"}
	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("Categories() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
