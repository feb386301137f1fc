package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/qavit/ekiti/internal/vocab"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the words stored for a language",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			lib, err := vocab.Open(cfg.DataDir, cfg.Tuning.InitialDifficulty)
			if err != nil {
				return err
			}
			cards, _, err := lib.Load(cfg.Language)
			if err != nil {
				return err
			}
			if len(cards) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No words stored for %s.\n", cfg.Language)
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "WORD\tTRANSLATIONS\tDIFFICULTY\tREVIEWS\tLAST REVIEWED")
			for _, card := range cards {
				last := "never"
				if card.LastReviewed != nil {
					last = card.LastReviewed.Format("2006-01-02")
				}
				fmt.Fprintf(w, "%s\t%s\t%.1f\t%d\t%s\n",
					card.Word,
					strings.Join(card.Translations, "; "),
					card.Difficulty,
					card.ReviewCount,
					last,
				)
			}
			return w.Flush()
		},
	}
}
