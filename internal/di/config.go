package di

import (
	"page-explorer/internal/application/port/output"
	"page-explorer/internal/infrastructure/browser/rod"
	"page-explorer/internal/infrastructure/httpapi"
	"page-explorer/internal/infrastructure/logger"
	"page-explorer/internal/usecase/analysis"
	"page-explorer/internal/usecase/explorer"
)

const (
	DefaultURL       = "https://www.bseindia.com/markets.html"
	DefaultOutputDir = "scraped_pages"
)

type Config struct {
	URL       string
	OutputDir string

	// Stream дублирует артефакты JSON-строками в stdout.
	Stream   bool
	Progress bool

	Log      logger.Config
	Browser  rod.BrowserConfig
	Explorer explorer.Config
	Analysis analysis.Config
	HTTP     httpapi.Config

	OpenRouterAPIKey string
	OpenRouterModel  string
}

func DefaultConfig() Config {
	return Config{
		URL:       DefaultURL,
		OutputDir: DefaultOutputDir,
		Progress:  true,
		Log:       logger.DefaultConfig(),
		Browser:   rod.DefaultConfig(),
		Explorer:  explorer.DefaultConfig(),
		Analysis:  analysis.DefaultConfig(),
		HTTP:      httpapi.DefaultConfig(),
	}
}

// ConfigFromEnv накладывает переменные окружения на DefaultConfig.
func ConfigFromEnv(env output.ConfigPort) Config {
	cfg := DefaultConfig()

	cfg.URL = env.GetWithDefault("EXPLORER_URL", cfg.URL)
	cfg.OutputDir = env.GetWithDefault("EXPLORER_OUTPUT_DIR", cfg.OutputDir)
	cfg.Stream = env.GetBool("EXPLORER_STREAM", cfg.Stream)
	cfg.Progress = env.GetBool("EXPLORER_PROGRESS", cfg.Progress)

	cfg.Log.Level = env.GetWithDefault("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = env.GetWithDefault("LOG_FORMAT", cfg.Log.Format)
	cfg.Log.File = env.GetWithDefault("LOG_FILE", cfg.Log.File)

	cfg.Browser.Bin = env.GetWithDefault("EXPLORER_CHROME_BIN", cfg.Browser.Bin)
	cfg.Browser.Headless = env.GetBool("EXPLORER_HEADLESS", cfg.Browser.Headless)
	cfg.Browser.NoSandbox = env.GetBool("EXPLORER_NO_SANDBOX", cfg.Browser.NoSandbox)
	cfg.Browser.UserAgent = env.GetWithDefault("EXPLORER_USER_AGENT", cfg.Browser.UserAgent)
	cfg.Browser.NavigationTimeout = env.GetDuration("EXPLORER_NAVIGATION_TIMEOUT", cfg.Browser.NavigationTimeout)

	cfg.Explorer.InitialSettle = env.GetDuration("EXPLORER_INITIAL_SETTLE", cfg.Explorer.InitialSettle)
	cfg.Explorer.ClickSettle = env.GetDuration("EXPLORER_CLICK_SETTLE", cfg.Explorer.ClickSettle)
	cfg.Explorer.Screenshots = env.GetBool("EXPLORER_SCREENSHOTS", cfg.Explorer.Screenshots)

	cfg.Analysis.ExcerptLimit = env.GetInt("ANALYSIS_EXCERPT_LIMIT", cfg.Analysis.ExcerptLimit)

	cfg.HTTP.Addr = env.GetWithDefault("EXPLORER_HTTP_ADDR", cfg.HTTP.Addr)
	cfg.HTTP.JSONLogs = cfg.Log.Format == "json"

	cfg.OpenRouterAPIKey = env.Get("OPENROUTER_API_KEY")
	cfg.OpenRouterModel = env.GetWithDefault("OPENROUTER_MODEL_NAME", "openai/gpt-4o-mini")

	return cfg
}
