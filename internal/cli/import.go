package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qavit/ekiti/internal/vocab"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <csv-file>",
		Short: "Import words from a two-column CSV file",
		Long:  "Rows are (word, translations); alternate translations are separated by semicolons. No header row.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			lib, err := vocab.Open(cfg.DataDir, cfg.Tuning.InitialDifficulty)
			if err != nil {
				return err
			}
			res, err := lib.ImportCSV(args[0], cfg.Language)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d, updated %d, skipped %d\n",
				res.Imported, res.Updated, res.Skipped)
			return nil
		},
	}
}
