package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ideaspark/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive terminal page",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		local, _ := cmd.Flags().GetBool("local")
		seed, _ := cmd.Flags().GetInt64("seed")

		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}
		// The producer runs off the event loop, so it gets its own source.
		producer := newProducer(cfg.Remote, local, newRand(seed, templateStream))
		return tui.Run(cmd.Context(), producer, newRand(seed, wordStream))
	},
}

func init() {
	tuiCmd.Flags().Bool("local", false, "skip the remote model and use local templates")
	tuiCmd.Flags().Int64("seed", 0, "seed for word draws and template order (0 = random)")

	rootCmd.AddCommand(tuiCmd)
}
