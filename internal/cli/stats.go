package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/qavit/ekiti/internal/history"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show quiz history for a language",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			db, err := history.Open(filepath.Join(cfg.DataDir, "history.db"))
			if err != nil {
				return err
			}
			defer db.Close()

			st, err := db.StatsForLanguage(cfg.Language)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if st.Sessions == 0 {
				fmt.Fprintf(out, "No quiz history for %s yet.\n", cfg.Language)
				return nil
			}
			fmt.Fprintf(out, "Sessions: %d\n", st.Sessions)
			fmt.Fprintf(out, "Correct: %d  Incorrect: %d  Skipped: %d  Unfamiliar: %d\n",
				st.Correct, st.Incorrect, st.Skipped, st.Unfamiliar)
			if st.Answered() > 0 {
				fmt.Fprintf(out, "Accuracy: %.1f%%\n", st.Accuracy())
			}
			if st.LastSession.Valid {
				fmt.Fprintf(out, "Last session: %s\n", st.LastSession.Time.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}
