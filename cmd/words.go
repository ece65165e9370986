package cmd

import (
	"fmt"

	"github.com/abhisek/wordiz/internal/catalog"
	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words [category]",
	Short: "List the word catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.New()

		category := ""
		if len(args) == 1 {
			category = args[0]
		}

		words := cat.Words(category)
		if len(words) == 0 {
			return fmt.Errorf("no words in category %q (have: %v)", category, cat.Categories())
		}

		for _, w := range words {
			fmt.Printf("%-14s %-12s %-16s L%d  %s\n",
				w.English, w.Russian, w.Phonetic, w.Level, w.Category)
		}
		return nil
	},
}
