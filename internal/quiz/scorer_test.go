package quiz

import "testing"

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"trims and lowercases", "  Buch ", "buch"},
		{"strips diacritics", "über", "uber"},
		{"keeps non-mark letters", "groß", "groß"},
		{"collapses internal whitespace", "ich  lese   ein Buch", "ich lese ein buch"},
		{"mixed", "  CAFÉ  au   lait ", "cafe au lait"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.input)
			if got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"  Bücher ", "señor", "kucing", "  das   große Haus  "}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestEvaluate(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		accepted []string
		want     Verdict
	}{
		{"exact match", "cat", []string{"cat"}, VerdictCorrect},
		{"alternate translation", "me", []string{"I", "me"}, VerdictCorrect},
		{"case insensitive", "BÜCHER", []string{"bücher"}, VerdictCorrect},
		{"diacritic insensitive", "uber", []string{"über"}, VerdictCorrect},
		{"one edit off long answer", "hause", []string{"house"}, VerdictClose},
		{"one edit off short answer", "cot", []string{"cat"}, VerdictIncorrect},
		{"two edits off", "hose", []string{"horses"}, VerdictIncorrect},
		{"wrong answer", "dog", []string{"cat"}, VerdictIncorrect},
		{"whitespace ignored", "  cat  ", []string{"cat"}, VerdictCorrect},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(tc.input, tc.accepted)
			if got != tc.want {
				t.Errorf("Evaluate(%q, %v) = %v, want %v", tc.input, tc.accepted, got, tc.want)
			}
		})
	}
}

// Evaluating a pre-normalized input must give the same verdict as the
// raw input.
func TestEvaluateNormalizationInvariant(t *testing.T) {
	accepted := []string{"Bücher", "books"}
	inputs := []string{"  BÜCHER ", "bucher", "book", "bok"}
	for _, in := range inputs {
		raw := Evaluate(in, accepted)
		normalized := Evaluate(Normalize(in), accepted)
		if raw != normalized {
			t.Errorf("Evaluate(%q) = %v, but Evaluate(Normalize(%q)) = %v", in, raw, in, normalized)
		}
	}
}
