package cli

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/qavit/ekiti/internal/domain"
	"github.com/qavit/ekiti/internal/history"
	"github.com/qavit/ekiti/internal/quiz"
	"github.com/qavit/ekiti/internal/store"
	"github.com/qavit/ekiti/internal/vocab"
)

func newQuizCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Start an interactive vocabulary quiz",
		RunE:  runQuiz,
	}
	cmd.Flags().String("mode", string(domain.ModeSpelling), `quiz mode: "spelling" or "choice"`)
	cmd.Flags().String("direction", string(domain.WordToTranslation), "quiz direction: word-to-translation, translation-to-word, info-to-word or word-to-info")
	cmd.Flags().Int("count", 10, "number of questions per session")
	cmd.Flags().Int("options", 4, "options per choice question")
	return cmd
}

func runQuiz(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	modeStr, _ := cmd.Flags().GetString("mode")
	mode, err := domain.ParseMode(modeStr)
	if err != nil {
		return err
	}
	dirStr, _ := cmd.Flags().GetString("direction")
	direction, err := domain.ParseDirection(dirStr)
	if err != nil {
		return err
	}

	lib, err := vocab.Open(cfg.DataDir, cfg.Tuning.InitialDifficulty)
	if err != nil {
		return err
	}
	cards, skipped, err := lib.Load(cfg.Language)
	if err != nil {
		return err
	}
	if skipped > 0 {
		slog.Warn("some records could not be loaded", "language", cfg.Language, "skipped", skipped)
	}
	if len(cards) == 0 {
		return fmt.Errorf("no vocabulary for %s: %w", cfg.Language, domain.ErrEmptyPool)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	st := store.New(cards, store.Tuning{
		StepDown: cfg.Tuning.StepDown,
		StepUp:   cfg.Tuning.StepUp,
	}, rng)
	gen := quiz.NewGenerator(cfg.Quiz.Options, rng)
	presenter := NewTerminalPresenter(cmd.InOrStdin(), cmd.OutOrStdout())

	var recorder quiz.Recorder
	histDB, err := history.Open(filepath.Join(cfg.DataDir, "history.db"))
	if err != nil {
		slog.Warn("quiz history disabled", "error", err)
	} else {
		defer histDB.Close()
		recorder = histDB
	}

	engine, err := quiz.NewEngine(st, gen, presenter, recorder, cfg.Language, mode, direction, cfg.Quiz.Questions)
	if err != nil {
		return fmt.Errorf("cannot start session: %w", err)
	}
	sum := engine.Run()

	if histDB != nil {
		err := histDB.RecordSession(history.Session{
			Language:   sum.Language,
			Mode:       string(sum.Mode),
			Direction:  string(sum.Direction),
			Correct:    sum.Correct,
			Incorrect:  sum.Incorrect,
			Skipped:    sum.Skipped,
			Unfamiliar: sum.Unfamiliar,
			StartedAt:  sum.StartedAt,
			FinishedAt: sum.FinishedAt,
		})
		if err != nil {
			slog.Warn("failed to record session", "error", err)
		}
	}

	// Vocabulary is persisted once, after the session.
	if err := lib.Save(cfg.Language, st.All()); err != nil {
		return err
	}

	if err := appendUnfamiliar(cfg.DataDir, sum.UnfamiliarWords); err != nil {
		slog.Warn("failed to save review list", "error", err)
	}
	return nil
}

// appendUnfamiliar keeps a plain-text review list of words marked
// unfamiliar across sessions.
func appendUnfamiliar(dataDir string, cards []*domain.CardEntry) error {
	if len(cards) == 0 {
		return nil
	}
	path := filepath.Join(dataDir, "unfamiliar_words.txt")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, card := range cards {
		if _, err := fmt.Fprintf(f, "%s - %s\n", card.Word, card.Primary()); err != nil {
			return err
		}
	}
	return nil
}
