package quiz

import (
	"strings"
	"unicode"

	"github.com/agext/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Verdict classifies a free-text answer against the accepted set.
type Verdict int

const (
	VerdictIncorrect Verdict = iota
	// VerdictClose is a near-miss: within one edit of an accepted
	// answer of at least closeMinLength characters.
	VerdictClose
	VerdictCorrect
)

// closeMinLength is the minimum accepted-answer length for which a
// one-edit miss still counts as close. Shorter answers give the edit
// distance too much slack.
const closeMinLength = 4

// stripDiacritics decomposes the string and drops the combining marks.
// Chained transformers carry state, so each call builds its own.
func stripDiacritics() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Normalize prepares a string for comparison: trim, lowercase, strip
// diacritics and collapse internal whitespace. It is idempotent.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if out, _, err := transform.String(stripDiacritics(), s); err == nil {
		s = out
	}
	return strings.Join(strings.Fields(s), " ")
}

// Evaluate scores a free-text answer against the accepted answers.
// Exact normalized match is correct; a one-edit miss against a long
// enough answer is close; anything else is incorrect. Choice-mode
// answers are never evaluated here, only by option index.
func Evaluate(input string, accepted []string) Verdict {
	in := Normalize(input)
	for _, a := range accepted {
		if in == Normalize(a) {
			return VerdictCorrect
		}
	}
	for _, a := range accepted {
		want := Normalize(a)
		if len([]rune(want)) < closeMinLength {
			continue
		}
		if levenshtein.Distance(in, want, nil) <= 1 {
			return VerdictClose
		}
	}
	return VerdictIncorrect
}
