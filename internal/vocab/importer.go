package vocab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/qavit/ekiti/internal/domain"
)

// ImportResult summarizes one CSV import run.
type ImportResult struct {
	Imported int
	Updated  int
	Skipped  int
}

// ImportCSV loads two-column rows (word, semicolon-separated
// translations) into a language's collection. There is no header row.
// Malformed rows are skipped and counted; a duplicate word updates the
// existing entry instead of adding a second one.
func (l *Library) ImportCSV(path, language string) (*ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening CSV %s: %w", path, err)
	}
	defer f.Close()

	cards, _, err := l.Load(language)
	if err != nil {
		return nil, err
	}
	byWord := make(map[string]*domain.CardEntry, len(cards))
	for _, c := range cards {
		byWord[c.Word] = c
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	res := &ImportResult{}
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Warn("skipping malformed CSV row", "path", path, "error", err)
			res.Skipped++
			continue
		}

		word, translations := parseRow(row)
		if word == "" || len(translations) == 0 {
			res.Skipped++
			continue
		}

		if existing, ok := byWord[word]; ok {
			existing.Translations = translations
			res.Updated++
			continue
		}

		card := &domain.CardEntry{
			Word:         word,
			Language:     language,
			Translations: translations,
			Difficulty:   l.defaultDifficulty,
			CreatedAt:    time.Now().UTC(),
		}
		cards = append(cards, card)
		byWord[word] = card
		res.Imported++
	}

	if err := l.Save(language, cards); err != nil {
		return nil, err
	}
	return res, nil
}

// parseRow splits one CSV row into a word and its translations.
// Alternate translations are separated by semicolons in the second
// column.
func parseRow(row []string) (string, []string) {
	if len(row) < 2 {
		return "", nil
	}
	word := strings.TrimSpace(row[0])

	var translations []string
	for _, t := range strings.Split(row[1], ";") {
		if t = strings.TrimSpace(t); t != "" {
			translations = append(translations, t)
		}
	}
	return word, translations
}
