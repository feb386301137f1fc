package quiz

import (
	"fmt"
	"math/rand"

	"github.com/qavit/ekiti/internal/domain"
)

// Question is derived from a card for one quiz turn. It is never
// persisted.
type Question struct {
	Card     *domain.CardEntry
	Prompt   string
	Accepted []string
	// Options is populated in choice mode: the correct answer plus
	// distractors, in randomized order.
	Options      []string
	CorrectIndex int
}

// Generator builds questions from cards for a given direction and mode.
type Generator struct {
	optionCount int
	rng         *rand.Rand
}

// NewGenerator returns a generator producing up to optionCount options
// in choice mode.
func NewGenerator(optionCount int, rng *rand.Rand) *Generator {
	if optionCount < 2 {
		optionCount = 2
	}
	return &Generator{optionCount: optionCount, rng: rng}
}

// Build produces the question for one card. In choice mode the pool
// supplies distractors; pool entries whose answer collides with the
// correct answer are excluded, and a smaller option count is used when
// too few distinct distractors exist.
func (g *Generator) Build(card *domain.CardEntry, pool []*domain.CardEntry, dir domain.Direction, mode domain.Mode) (*Question, error) {
	prompt, err := promptFor(card, dir)
	if err != nil {
		return nil, err
	}
	accepted, err := acceptedFor(card, dir)
	if err != nil {
		return nil, err
	}

	q := &Question{Card: card, Prompt: prompt, Accepted: accepted}
	if mode == domain.ModeChoice {
		g.addOptions(q, pool, dir)
	}
	return q, nil
}

func promptFor(card *domain.CardEntry, dir domain.Direction) (string, error) {
	switch dir {
	case domain.WordToTranslation:
		return fmt.Sprintf("What does %q mean?", card.Word), nil
	case domain.TranslationToWord:
		return fmt.Sprintf("How do you say %q in %s?", card.Primary(), card.Language), nil
	case domain.InfoToWord:
		if len(card.Examples) == 0 {
			return "", fmt.Errorf("card %s has no examples: %w", card.Key(), domain.ErrEmptyPool)
		}
		return fmt.Sprintf("Which word fits: %q?", card.Examples[0].Translation), nil
	case domain.WordToInfo:
		if card.Details.Gender == "" {
			return "", fmt.Errorf("card %s has no gender: %w", card.Key(), domain.ErrEmptyPool)
		}
		return fmt.Sprintf("What is the gender of %q?", card.Word), nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownDirection, dir)
}

// acceptedFor returns the accepted answers for a card in a direction.
func acceptedFor(card *domain.CardEntry, dir domain.Direction) ([]string, error) {
	switch dir {
	case domain.WordToTranslation:
		return card.Translations, nil
	case domain.TranslationToWord, domain.InfoToWord:
		return []string{card.Word}, nil
	case domain.WordToInfo:
		return []string{card.Details.Gender}, nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDirection, dir)
}

// decoyFor is the value another pool card contributes as a distractor.
func decoyFor(card *domain.CardEntry, dir domain.Direction) string {
	switch dir {
	case domain.WordToTranslation:
		return card.Primary()
	case domain.WordToInfo:
		return card.Details.Gender
	}
	return card.Word
}

func (g *Generator) addOptions(q *Question, pool []*domain.CardEntry, dir domain.Direction) {
	correct := q.Accepted[0]

	seen := map[string]bool{Normalize(correct): true}
	for _, a := range q.Accepted {
		seen[Normalize(a)] = true
	}

	var decoys []string
	perm := g.rng.Perm(len(pool))
	for _, i := range perm {
		c := pool[i]
		if c == q.Card {
			continue
		}
		d := decoyFor(c, dir)
		if d == "" || seen[Normalize(d)] {
			continue
		}
		seen[Normalize(d)] = true
		decoys = append(decoys, d)
		if len(decoys) == g.optionCount-1 {
			break
		}
	}

	options := append([]string{correct}, decoys...)
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	for i, o := range options {
		if o == correct {
			q.CorrectIndex = i
			break
		}
	}
	q.Options = options
}
