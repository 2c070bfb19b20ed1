package commands

import (
	"fmt"

	"page-explorer/internal/di"

	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":3000", "Address to listen on.")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve [--addr :3000]",
	Short: "Serves POST /api/scrape, running one exploration per request.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := loadConfig(cmd)
		if cmd.Flags().Changed("addr") {
			cfg.HTTP.Addr = serveAddr
		}

		container, err := di.NewContainer(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		defer container.Close()

		return container.HTTPServer().ListenAndServe(cmd.Context())
	},
}
