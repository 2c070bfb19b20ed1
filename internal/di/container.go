package di

import (
	"context"
	"fmt"
	"io"
	"os"

	"page-explorer/internal/application/port/input"
	"page-explorer/internal/application/port/output"
	"page-explorer/internal/infrastructure/browser/rod"
	"page-explorer/internal/infrastructure/httpapi"
	"page-explorer/internal/infrastructure/llm/openrouter"
	"page-explorer/internal/infrastructure/llm/stub"
	"page-explorer/internal/infrastructure/logger"
	"page-explorer/internal/infrastructure/progress"
	"page-explorer/internal/infrastructure/sink"
	"page-explorer/internal/usecase/analysis"
	"page-explorer/internal/usecase/explorer"
)

type Container struct {
	Config   Config
	Browser  output.BrowserSession
	Sink     output.SnapshotSink
	Logger   output.LoggerPort
	Progress output.ProgressPort
	Explorer input.Explorer
}

func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	log, err := logger.NewLoggerAdapter(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	snapshotSink, err := newSink(cfg, log, os.Stdout)
	if err != nil {
		log.Close()
		return nil, err
	}

	browser, err := rod.NewBrowserAdapter(ctx, cfg.Browser)
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to create browser: %w", err)
	}

	var reporter output.ProgressPort
	if cfg.Progress {
		// stdout занят JSON-потоком, прогресс уходит в stderr.
		var w io.Writer = os.Stdout
		if cfg.Stream {
			w = os.Stderr
		}
		reporter = progress.NewConsole(w)
	}

	return &Container{
		Config:   cfg,
		Browser:  browser,
		Sink:     snapshotSink,
		Logger:   log,
		Progress: reporter,
		Explorer: explorer.New(browser, snapshotSink, log, reporter, cfg.Explorer),
	}, nil
}

func (c *Container) HTTPServer() *httpapi.Server {
	httpCfg := c.Config.HTTP
	httpCfg.OutputDir = c.Config.OutputDir
	return httpapi.NewServer(httpCfg, c.Explorer, c.Logger)
}

func (c *Container) Close() {
	if c.Sink != nil {
		if err := c.Sink.Close(); err != nil && c.Logger != nil {
			c.Logger.Warn("Failed to close sink", "error", err)
		}
	}
	if c.Browser != nil {
		c.Browser.Close()
	}
	if c.Logger != nil {
		c.Logger.Close()
	}
}

func newSink(cfg Config, log output.LoggerPort, stdout io.Writer) (output.SnapshotSink, error) {
	fs, err := sink.NewFilesystem(cfg.OutputDir, log)
	if err != nil {
		return nil, err
	}
	if !cfg.Stream {
		return fs, nil
	}
	return sink.NewRouter(log, fs, sink.NewStream(stdout)), nil
}

// NewAnalyzer не требует браузера. Без ключа OpenRouter используется заглушка.
func NewAnalyzer(cfg Config, log output.LoggerPort) input.Analyzer {
	var llm output.LLMPort
	if cfg.OpenRouterAPIKey == "" {
		log.Warn("OPENROUTER_API_KEY is not set, using stub LLM")
		llm = stub.New()
	} else {
		llmCfg := openrouter.DefaultConfig(cfg.OpenRouterAPIKey, cfg.OpenRouterModel)
		llmCfg.Logger = log
		llm = openrouter.NewOpenRouterAdapter(llmCfg)
	}
	return analysis.New(llm, log, cfg.Analysis)
}
