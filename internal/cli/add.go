package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/qavit/ekiti/internal/domain"
	"github.com/qavit/ekiti/internal/vocab"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <word> <translations>",
		Short: "Add a single word to the dictionary",
		Long:  "Translations are separated by semicolons, the first one is primary.",
		Args:  cobra.ExactArgs(2),
		RunE:  runAdd,
	}
	cmd.Flags().String("gender", "", "grammatical gender (e.g. m, f, n)")
	cmd.Flags().String("plural", "", "plural form")
	cmd.Flags().String("notes", "", "free-form notes")
	cmd.Flags().StringSlice("tags", nil, "comma-separated tags")
	cmd.Flags().String("example", "", "example sentence")
	cmd.Flags().String("example-translation", "", "translation of the example sentence")
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var translations []string
	for _, t := range strings.Split(args[1], ";") {
		if t = strings.TrimSpace(t); t != "" {
			translations = append(translations, t)
		}
	}

	gender, _ := cmd.Flags().GetString("gender")
	plural, _ := cmd.Flags().GetString("plural")
	notes, _ := cmd.Flags().GetString("notes")
	tags, _ := cmd.Flags().GetStringSlice("tags")

	card := &domain.CardEntry{
		Word:         strings.TrimSpace(args[0]),
		Language:     cfg.Language,
		Translations: translations,
		Details: domain.WordDetails{
			Gender: gender,
			Plural: plural,
			Notes:  notes,
		},
		Tags:       tags,
		Difficulty: cfg.Tuning.InitialDifficulty,
		CreatedAt:  time.Now().UTC(),
	}

	sentence, _ := cmd.Flags().GetString("example")
	sentenceTr, _ := cmd.Flags().GetString("example-translation")
	if sentence != "" {
		card.Examples = append(card.Examples, domain.Example{
			Sentence:    sentence,
			Translation: sentenceTr,
		})
	}

	lib, err := vocab.Open(cfg.DataDir, cfg.Tuning.InitialDifficulty)
	if err != nil {
		return err
	}
	if err := lib.Add(card); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", card.Word, strings.Join(card.Translations, "; "))
	return nil
}
