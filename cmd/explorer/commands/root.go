package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"page-explorer/internal/di"
	"page-explorer/internal/infrastructure/env"

	"github.com/spf13/cobra"
)

var flags struct {
	url           string
	outputDir     string
	screenshots   bool
	stream        bool
	headed        bool
	noSandbox     bool
	initialSettle time.Duration
	clickSettle   time.Duration
	navTimeout    time.Duration
	logLevel      string
}

var rootCmd = &cobra.Command{
	Use:   "explorer [--url <page>] [--out <dir>]",
	Short: "explorer clicks every visible tab, button and nav link on a page and saves what each click reveals.",
	Args:  cobra.NoArgs,
	RunE:  runExplore,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.outputDir, "out", di.DefaultOutputDir, "Directory to write snapshots and the element manifest to.")
	pf.BoolVar(&flags.screenshots, "screenshots", false, "Save a JPEG screenshot next to every snapshot.")
	pf.BoolVar(&flags.stream, "stream", false, "Also emit every artifact as a JSON line on stdout.")
	pf.BoolVar(&flags.headed, "headed", false, "Show the browser window.")
	pf.BoolVar(&flags.noSandbox, "no-sandbox", false, "Disable the Chromium sandbox (containers).")
	pf.DurationVar(&flags.initialSettle, "initial-settle", 3*time.Second, "Fixed wait after navigation before the first snapshot.")
	pf.DurationVar(&flags.clickSettle, "click-settle", 2*time.Second, "Fixed wait after each click before capturing.")
	pf.DurationVar(&flags.navTimeout, "nav-timeout", 60*time.Second, "Upper bound for navigation and network quiescence.")
	pf.StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn, error.")

	rootCmd.Flags().StringVar(&flags.url, "url", di.DefaultURL, "Page to explore.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig: значения по умолчанию, затем окружение (.env), затем явно заданные флаги.
func loadConfig(cmd *cobra.Command) di.Config {
	cfg := di.ConfigFromEnv(env.NewEnvService())

	changed := func(name string) bool { return cmd.Flags().Changed(name) }

	if changed("url") {
		cfg.URL = flags.url
	}
	if changed("out") {
		cfg.OutputDir = flags.outputDir
	}
	if changed("screenshots") {
		cfg.Explorer.Screenshots = flags.screenshots
	}
	if changed("stream") {
		cfg.Stream = flags.stream
	}
	if changed("headed") {
		cfg.Browser.Headless = !flags.headed
	}
	if changed("no-sandbox") {
		cfg.Browser.NoSandbox = flags.noSandbox
	}
	if changed("initial-settle") {
		cfg.Explorer.InitialSettle = flags.initialSettle
	}
	if changed("click-settle") {
		cfg.Explorer.ClickSettle = flags.clickSettle
	}
	if changed("nav-timeout") {
		cfg.Browser.NavigationTimeout = flags.navTimeout
	}
	if changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	return cfg
}
