package commands

import (
	"fmt"

	"page-explorer/internal/di"
	"page-explorer/internal/infrastructure/logger"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.json|file.html> <question>",
	Short: "Asks a language model a question about one saved artifact.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)

		log, err := logger.NewLoggerAdapter(cfg.Log)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Close()

		answer, err := di.NewAnalyzer(cfg, log).Analyze(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "\n--- ANALYSIS RESULT ---")
		fmt.Fprintln(cmd.OutOrStdout(), answer)
		return nil
	},
}
