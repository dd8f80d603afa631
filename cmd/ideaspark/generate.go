package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ideaspark/internal/spark"
	"github.com/pdiddy/ideaspark/internal/words"
	"github.com/pdiddy/ideaspark/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate ideas from two words and a category",
	Long: `Generate asks the remote model for 5-7 ideas combining two words in the
given creative direction. When the model is unreachable or returns nothing
usable, five ideas are built from local templates instead.

Categories: business, writing, products, solutions, art, stories.`,
	Example: `  ideaspark generate --word1 ocean --word2 robot --category products
  ideaspark generate --random --category stories --format json`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("word1", "", "first word")
	generateCmd.Flags().String("word2", "", "second word")
	generateCmd.Flags().StringP("category", "c", "", "creative direction (see categories)")
	generateCmd.Flags().StringP("format", "f", formatText, "output format: text, json, or yaml")
	generateCmd.Flags().Bool("local", false, "skip the remote model and use local templates")
	generateCmd.Flags().Bool("random", false, "draw missing words from the word pool")
	generateCmd.Flags().Int64("seed", 0, "seed for word draws and template order (0 = random)")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	word1, _ := cmd.Flags().GetString("word1")
	word2, _ := cmd.Flags().GetString("word2")
	catFlag, _ := cmd.Flags().GetString("category")
	format, _ := cmd.Flags().GetString("format")
	local, _ := cmd.Flags().GetBool("local")
	random, _ := cmd.Flags().GetBool("random")
	seed, _ := cmd.Flags().GetInt64("seed")

	if err := checkFormat(format); err != nil {
		return err
	}
	if catFlag == "" {
		return fmt.Errorf("--category is required: use one of %s", strings.Join(types.CategoryIDs(), ", "))
	}
	cat, err := types.ParseCategory(catFlag)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	r := newRand(seed, wordStream)
	if random {
		if strings.TrimSpace(word1) == "" {
			word1 = words.Random(r)
		}
		if strings.TrimSpace(word2) == "" {
			word2 = words.Random(r)
		}
	}

	producer := newProducer(cfg.Remote, local, r)
	res, err := producer.Produce(cmd.Context(), spark.Request{Word1: word1, Word2: word2, Category: cat})
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), format, res)
}
