// Package vocab persists vocabulary collections, one YAML file per
// language, and imports new entries from CSV.
package vocab

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/qavit/ekiti/internal/domain"
)

// Library reads and writes per-language vocabulary files under a data
// directory.
type Library struct {
	dir               string
	validate          *validator.Validate
	defaultDifficulty float64
}

// Open ensures the data directory exists and returns a Library.
func Open(dir string, defaultDifficulty float64) (*Library, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory %s: %w", dir, err)
	}
	return &Library{
		dir:               dir,
		validate:          validator.New(),
		defaultDifficulty: defaultDifficulty,
	}, nil
}

// Path returns the vocabulary file for a language.
func (l *Library) Path(language string) string {
	return filepath.Join(l.dir, language+".yaml")
}

// Dir returns the library's data directory.
func (l *Library) Dir() string {
	return l.dir
}

// Load reads all cards for a language. Malformed or invalid records are
// skipped and logged, never silently coerced; the count of skipped
// records is returned alongside the good ones. A missing file is an
// empty collection, not an error.
func (l *Library) Load(language string) ([]*domain.CardEntry, int, error) {
	raw, err := os.ReadFile(l.Path(language))
	if errors.Is(err, os.ErrNotExist) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("reading vocabulary for %s: %w", language, err)
	}

	var nodes []yaml.Node
	if err := yaml.Unmarshal(raw, &nodes); err != nil {
		return nil, 0, fmt.Errorf("parsing vocabulary for %s: %w", language, err)
	}

	var cards []*domain.CardEntry
	skipped := 0
	for i, node := range nodes {
		card := &domain.CardEntry{}
		if err := node.Decode(card); err != nil {
			slog.Warn("skipping malformed record", "language", language, "record", i, "error", err)
			skipped++
			continue
		}
		l.applyDefaults(card, language)
		if err := l.validate.Struct(card); err != nil {
			slog.Warn("skipping invalid record", "language", language, "record", i, "error", err)
			skipped++
			continue
		}
		cards = append(cards, card)
	}
	return cards, skipped, nil
}

// applyDefaults fills the fields older records may lack.
func (l *Library) applyDefaults(card *domain.CardEntry, language string) {
	if card.Language == "" {
		card.Language = language
	}
	if card.Difficulty == 0 {
		card.Difficulty = l.defaultDifficulty
	}
	if card.CreatedAt.IsZero() {
		card.CreatedAt = time.Now().UTC()
	}
}

// Save writes the full collection for a language atomically.
func (l *Library) Save(language string, cards []*domain.CardEntry) error {
	out, err := yaml.Marshal(cards)
	if err != nil {
		return fmt.Errorf("encoding vocabulary for %s: %w", language, err)
	}

	tmp := l.Path(language) + ".tmp"
	if err := os.WriteFile(tmp, out, 0o644); err != nil {
		return fmt.Errorf("writing vocabulary for %s: %w", language, err)
	}
	if err := os.Rename(tmp, l.Path(language)); err != nil {
		return fmt.Errorf("replacing vocabulary for %s: %w", language, err)
	}
	return nil
}

// Add validates a new card and appends it to the language's collection.
// An existing card with the same word has its translations replaced.
func (l *Library) Add(card *domain.CardEntry) error {
	l.applyDefaults(card, card.Language)
	if err := l.validate.Struct(card); err != nil {
		return fmt.Errorf("invalid card %s: %w", card.Key(), err)
	}

	cards, _, err := l.Load(card.Language)
	if err != nil {
		return err
	}
	replaced := false
	for i, existing := range cards {
		if existing.Word == card.Word {
			cards[i] = card
			replaced = true
			break
		}
	}
	if !replaced {
		cards = append(cards, card)
	}
	return l.Save(card.Language, cards)
}
