package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/ideaspark/internal/words"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Draw random words from the word pool",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetInt64("seed")
		all, _ := cmd.Flags().GetBool("all")

		if all {
			writeWords(cmd.OutOrStdout(), words.All())
			return nil
		}
		if count < 1 || count > words.Size {
			return fmt.Errorf("--count must be between 1 and %d", words.Size)
		}

		r := newRand(seed, wordStream)
		out := make([]string, count)
		for i := range out {
			out[i] = words.Random(r)
		}
		writeWords(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	wordsCmd.Flags().IntP("count", "n", 2, "number of words to draw")
	wordsCmd.Flags().Int64("seed", 0, "seed for the draw (0 = random)")
	wordsCmd.Flags().Bool("all", false, "list the whole pool in order")

	rootCmd.AddCommand(wordsCmd)
}
