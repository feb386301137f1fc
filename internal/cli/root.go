// Package cli wires the ekiti commands together.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/qavit/ekiti/internal/config"
)

// NewRootCmd builds the ekiti command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ekiti",
		Short:         "A flashcard tool for language learning",
		Long:          "ekiti stores vocabulary per target language and quizzes you on it from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "path to the config file")
	root.PersistentFlags().String("data-dir", config.Default().DataDir, "directory holding vocabulary files")
	root.PersistentFlags().String("lang", "", "target language code (e.g. de, id)")

	root.AddCommand(
		newQuizCmd(),
		newImportCmd(),
		newAddCmd(),
		newListCmd(),
		newStatsCmd(),
	)
	return root
}

// loadConfig resolves the effective config for a command and checks
// that a target language was chosen.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return cfg, err
	}
	if cfg.Language == "" {
		return cfg, errors.New("a target language is required (--lang, EKITI_LANGUAGE or the config file)")
	}
	return cfg, nil
}
