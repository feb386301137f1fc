// Package store holds the in-memory vocabulary for one quiz run and
// applies difficulty updates as questions are answered.
package store

import (
	"math/rand"
	"time"

	"github.com/qavit/ekiti/internal/domain"
)

// Tuning holds the difficulty adjustment parameters. The step sizes are
// deliberately configurable; there is no fixed pacing contract.
type Tuning struct {
	// StepDown is subtracted on a correct first-try answer.
	StepDown float64
	// StepUp is added on an incorrect answer or an unfamiliar mark.
	StepUp float64
}

// DefaultTuning provides a sensible starting point.
func DefaultTuning() Tuning {
	return Tuning{
		StepDown: 0.3,
		StepUp:   0.5,
	}
}

// Result describes how a single question went.
type Result struct {
	Outcome domain.Outcome
	// FirstTry is true when a correct answer was given without hints.
	FirstTry bool
	// Close marks a near-miss: tallied as incorrect by the session, but
	// the card's difficulty is left untouched.
	Close bool
}

// Store is the in-memory card collection for a session. It is mutated
// only from the single session goroutine, so it carries no locking.
type Store struct {
	cards  []*domain.CardEntry
	tuning Tuning
	rng    *rand.Rand
}

// New builds a store over the given cards.
func New(cards []*domain.CardEntry, tuning Tuning, rng *rand.Rand) *Store {
	return &Store{cards: cards, tuning: tuning, rng: rng}
}

// All returns every card in the store.
func (s *Store) All() []*domain.CardEntry {
	return s.cards
}

// Len reports the number of cards.
func (s *Store) Len() int {
	return len(s.cards)
}

// Eligible returns the cards that can be asked in the given direction.
// Info directions need the corresponding field to be present.
func (s *Store) Eligible(dir domain.Direction) []*domain.CardEntry {
	var pool []*domain.CardEntry
	for _, c := range s.cards {
		if eligible(c, dir) {
			pool = append(pool, c)
		}
	}
	return pool
}

func eligible(c *domain.CardEntry, dir domain.Direction) bool {
	switch dir {
	case domain.InfoToWord:
		return len(c.Examples) > 0
	case domain.WordToInfo:
		return c.Details.Gender != ""
	}
	return len(c.Translations) > 0
}

// Sample draws up to n cards eligible for the direction, weighted by
// difficulty so harder cards surface more often. Sampling is without
// replacement: a card appears at most once per working set.
func (s *Store) Sample(n int, dir domain.Direction) ([]*domain.CardEntry, error) {
	pool := s.Eligible(dir)
	if len(pool) == 0 {
		return nil, domain.ErrEmptyPool
	}
	if n > len(pool) {
		n = len(pool)
	}

	remaining := make([]*domain.CardEntry, len(pool))
	copy(remaining, pool)

	picked := make([]*domain.CardEntry, 0, n)
	for len(picked) < n {
		i := s.weightedIndex(remaining)
		picked = append(picked, remaining[i])
		remaining[i] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
	}
	return picked, nil
}

func (s *Store) weightedIndex(cards []*domain.CardEntry) int {
	var total float64
	for _, c := range cards {
		total += weight(c)
	}
	r := s.rng.Float64() * total
	for i, c := range cards {
		r -= weight(c)
		if r <= 0 {
			return i
		}
	}
	return len(cards) - 1
}

func weight(c *domain.CardEntry) float64 {
	w := c.Difficulty
	if w < domain.MinDifficulty {
		w = domain.MinDifficulty
	}
	return w
}

// RecordResult applies the difficulty policy for one answered question
// and stamps the card's review bookkeeping. Skipped questions leave the
// card untouched. No card is ever removed by quiz activity.
func (s *Store) RecordResult(card *domain.CardEntry, res Result) {
	switch res.Outcome {
	case domain.OutcomeSkipped:
		return
	case domain.OutcomeCorrect:
		if res.FirstTry {
			card.Difficulty -= s.tuning.StepDown
		}
	case domain.OutcomeIncorrect:
		if !res.Close {
			card.Difficulty += s.tuning.StepUp
		}
	case domain.OutcomeUnfamiliar:
		card.Difficulty += s.tuning.StepUp
	}
	card.ClampDifficulty()
	card.ReviewCount++
	t := time.Now().UTC()
	card.LastReviewed = &t
}
