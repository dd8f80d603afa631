package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/ideaspark/pkg/types"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the creative directions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if err := checkFormat(format); err != nil {
			return err
		}
		return writeCategories(cmd.OutOrStdout(), format, types.Categories())
	},
}

func init() {
	categoriesCmd.Flags().StringP("format", "f", formatText, "output format: text, json, or yaml")

	rootCmd.AddCommand(categoriesCmd)
}
