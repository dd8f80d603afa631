package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/ideaspark/internal/ideas"
	"github.com/pdiddy/ideaspark/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Split numbered ideas text into titles and descriptions",
	Long: `Parse reads ideas text (a file, or standard input when the argument is
"-" or missing), keeps the lines that start with a number and a period, and
splits each into a title and a description.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringP("format", "f", formatText, "output format: text, json, or yaml")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening %s: %w", args[0], err)
		}
		defer f.Close()
		in = f
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading ideas text: %w", err)
	}

	entries := ideas.Parse(string(raw))
	if entries == nil {
		entries = []types.IdeaEntry{}
	}
	if format != formatText {
		return writeStructured(cmd.OutOrStdout(), format, entries)
	}
	writeEntries(cmd.OutOrStdout(), entries)
	return nil
}
