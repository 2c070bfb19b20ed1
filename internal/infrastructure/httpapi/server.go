package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"page-explorer/internal/application/port/input"
	"page-explorer/internal/application/port/output"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
)

const (
	defaultAddr            = ":3000"
	defaultShutdownTimeout = 10 * time.Second
	maxBodyBytes           = 1 << 20
)

type Config struct {
	Addr            string
	OutputDir       string
	JSONLogs        bool
	ShutdownTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Addr:            defaultAddr,
		ShutdownTimeout: defaultShutdownTimeout,
	}
}

// Server принимает запросы на обход страницы. Браузерная сессия одна,
// поэтому прогоны выполняются строго по очереди.
type Server struct {
	cfg      Config
	explorer input.Explorer
	logger   output.LoggerPort

	mu sync.Mutex
}

func NewServer(cfg Config, explorer input.Explorer, logger output.LoggerPort) *Server {
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	return &Server{cfg: cfg, explorer: explorer, logger: logger}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(httplog.RequestLogger(httplog.NewLogger("page-explorer", httplog.Options{
		JSON:    s.cfg.JSONLogs,
		Concise: true,
	})))

	r.Get("/healthz", s.handleHealth)
	r.Post("/api/scrape", s.handleScrape)

	return r
}

// ListenAndServe блокируется до отмены ctx или ошибки слушателя.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.logger.Info("Shutting down HTTP server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
