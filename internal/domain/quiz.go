package domain

import "fmt"

// Outcome is the per-question result tag.
type Outcome string

const (
	OutcomeCorrect    Outcome = "correct"
	OutcomeIncorrect  Outcome = "incorrect"
	OutcomeSkipped    Outcome = "skipped"
	OutcomeUnfamiliar Outcome = "unfamiliar"
)

// Mode selects how answers are given during a quiz.
type Mode string

const (
	// ModeSpelling asks the user to type the answer.
	ModeSpelling Mode = "spelling"
	// ModeChoice presents numbered options to pick from.
	ModeChoice Mode = "choice"
)

// ParseMode converts a CLI string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeSpelling, ModeChoice:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w: %q (expected %q or %q)", ErrUnknownMode, s, ModeSpelling, ModeChoice)
}

// Direction says which card field is prompted and which is answered.
type Direction string

const (
	// WordToTranslation prompts the target-language word, expects a translation.
	WordToTranslation Direction = "word-to-translation"
	// TranslationToWord prompts the primary translation, expects the word.
	TranslationToWord Direction = "translation-to-word"
	// InfoToWord prompts an example sentence's translation, expects the word.
	InfoToWord Direction = "info-to-word"
	// WordToInfo prompts the word, expects its grammatical gender.
	WordToInfo Direction = "word-to-info"
)

// ParseDirection converts a CLI string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case WordToTranslation, TranslationToWord, InfoToWord, WordToInfo:
		return Direction(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}
