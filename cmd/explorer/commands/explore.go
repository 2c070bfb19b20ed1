package commands

import (
	"fmt"

	"page-explorer/internal/di"

	"github.com/spf13/cobra"
)

func runExplore(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := loadConfig(cmd)

	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	defer container.Close()

	container.Logger.Info("Exploration started", "url", cfg.URL, "out", cfg.OutputDir)

	report, err := container.Explorer.Explore(ctx, cfg.URL)
	if err != nil {
		container.Logger.Error("Exploration failed", "error", err)
		return err
	}

	if container.Progress != nil {
		container.Progress.ShowSummary(ctx, report, cfg.OutputDir)
	}
	container.Logger.Info("Exploration completed",
		"discovered", report.Discovered,
		"captured", report.Captured,
		"failed", report.Failed())
	return nil
}
