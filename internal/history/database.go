// Package history records quiz activity in a local SQLite database.
// History is best-effort: callers log and carry on when it fails.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/qavit/ekiti/internal/domain"
	_ "modernc.org/sqlite" // Registers the sqlite driver
)

// DB wraps the SQL database connection.
type DB struct {
	conn *sql.DB
}

// Open creates the database connection and ensures the schema exists.
func Open(dsn string) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &DB{conn: db}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// RecordReview stores one resolved question. Implements quiz.Recorder.
func (db *DB) RecordReview(card *domain.CardEntry, outcome domain.Outcome, at time.Time) error {
	_, err := db.conn.Exec(`
		INSERT INTO review_log (word, language, outcome, asked_at)
		VALUES (?, ?, ?, ?)
	`,
		card.Word,
		card.Language,
		string(outcome),
		at,
	)
	if err != nil {
		return fmt.Errorf("failed to record review for %s: %w", card.Key(), err)
	}
	return nil
}

// Session is the persisted form of one session summary.
type Session struct {
	Language   string
	Mode       string
	Direction  string
	Correct    int
	Incorrect  int
	Skipped    int
	Unfamiliar int
	StartedAt  time.Time
	FinishedAt time.Time
}

// RecordSession stores a completed session.
func (db *DB) RecordSession(s Session) error {
	_, err := db.conn.Exec(`
		INSERT INTO sessions (language, mode, direction, correct, incorrect, skipped, unfamiliar, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		s.Language,
		s.Mode,
		s.Direction,
		s.Correct,
		s.Incorrect,
		s.Skipped,
		s.Unfamiliar,
		s.StartedAt,
		s.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}
	return nil
}

// Stats aggregates quiz history for one language.
type Stats struct {
	Sessions    int
	Correct     int
	Incorrect   int
	Skipped     int
	Unfamiliar  int
	LastSession sql.NullTime
}

// Answered returns the total number of answered questions.
func (s *Stats) Answered() int {
	return s.Correct + s.Incorrect
}

// Accuracy is the correct share of answered questions, in percent.
func (s *Stats) Accuracy() float64 {
	if s.Answered() == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answered()) * 100
}

// StatsForLanguage aggregates all recorded sessions for a language.
func (db *DB) StatsForLanguage(language string) (*Stats, error) {
	var st Stats
	row := db.conn.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(correct), 0),
		       COALESCE(SUM(incorrect), 0),
		       COALESCE(SUM(skipped), 0),
		       COALESCE(SUM(unfamiliar), 0),
		       MAX(finished_at)
		FROM sessions WHERE language = ?
	`, language)

	err := row.Scan(
		&st.Sessions,
		&st.Correct,
		&st.Incorrect,
		&st.Skipped,
		&st.Unfamiliar,
		&st.LastSession,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stats for %s: %w", language, err)
	}
	return &st, nil
}
