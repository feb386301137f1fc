package domain

import (
	"fmt"
	"time"
)

// Difficulty bounds for a card. Review results clamp into this range.
const (
	MinDifficulty = 1.0
	MaxDifficulty = 5.0
)

// Example is a sample sentence in the target language with its translation.
type Example struct {
	Sentence    string `yaml:"sentence"`
	Translation string `yaml:"translation"`
}

// WordDetails holds optional grammatical metadata for a card.
type WordDetails struct {
	Gender       string `yaml:"gender,omitempty"`
	Plural       string `yaml:"plural,omitempty"`
	PartOfSpeech string `yaml:"part_of_speech,omitempty"`
	Notes        string `yaml:"notes,omitempty"`
}

// CardEntry is one vocabulary item. Word and Language together are the
// identity key; Translations must be non-empty, with the primary
// translation first.
type CardEntry struct {
	Word         string      `yaml:"word" validate:"required"`
	Language     string      `yaml:"language" validate:"required"`
	Translations []string    `yaml:"translations" validate:"required,min=1,dive,required"`
	Examples     []Example   `yaml:"examples,omitempty"`
	Details      WordDetails `yaml:"details,omitempty"`
	Tags         []string    `yaml:"tags,omitempty"`
	Difficulty   float64     `yaml:"difficulty" validate:"gte=1,lte=5"`
	ReviewCount  int         `yaml:"review_count,omitempty"`
	CreatedAt    time.Time   `yaml:"created_at,omitempty"`
	LastReviewed *time.Time  `yaml:"last_reviewed,omitempty"`
}

// Key returns the identity key of the card within a library.
func (c *CardEntry) Key() string {
	return fmt.Sprintf("%s/%s", c.Language, c.Word)
}

// Primary returns the primary translation.
func (c *CardEntry) Primary() string {
	return c.Translations[0]
}

// ClampDifficulty forces Difficulty back into [MinDifficulty, MaxDifficulty].
func (c *CardEntry) ClampDifficulty() {
	if c.Difficulty < MinDifficulty {
		c.Difficulty = MinDifficulty
	}
	if c.Difficulty > MaxDifficulty {
		c.Difficulty = MaxDifficulty
	}
}
