package main

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ideaspark/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web page and JSON API",
	Long: `Serve hosts the IdeaSpark page at / and the JSON API under /api/. The
server stops gracefully on interrupt.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from serve.addr, :8080)")
	serveCmd.Flags().Bool("local", false, "skip the remote model and use local templates")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	local, _ := cmd.Flags().GetBool("local")

	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Serve.Addr
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Serving on http://%s\n", ln.Addr())

	// Handlers run concurrently, so both draw from the global source.
	srv := web.NewServer(newProducer(cfg.Remote, local, nil), nil, logger)
	return web.Serve(cmd.Context(), ln, srv.Handler(), logger)
}
