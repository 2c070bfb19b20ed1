package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"page-explorer/internal/domain/entity"
)

const (
	msgURLRequired  = "URL is required in the JSON payload"
	msgScrapeFailed = "An error occurred while scraping the website"
)

type scrapeRequest struct {
	URL string `json:"url"`
}

type scrapeResponse struct {
	Success bool              `json:"success"`
	URL     string            `json:"url"`
	Content string            `json:"content"`
	Report  *entity.RunReport `json:"report"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: msgURLRequired, Error: err.Error()})
		return
	}
	url := strings.TrimSpace(req.URL)
	if url == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: msgURLRequired})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.WithField("url", url)
	log.Info("Processing scrape request")

	report, err := s.explorer.Explore(r.Context(), url)
	if err != nil {
		log.Error("Scrape failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: msgScrapeFailed, Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, scrapeResponse{
		Success: true,
		URL:     url,
		Content: summarize(report, s.cfg.OutputDir),
		Report:  report,
	})
}

func summarize(report *entity.RunReport, outputDir string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Scraped content from %s\n\n", report.URL)
	fmt.Fprintf(&sb, "Timestamp: %s\n", report.Timestamp)
	fmt.Fprintf(&sb, "Clickable elements: %d\n", report.Discovered)
	fmt.Fprintf(&sb, "Snapshots captured: %d\n", report.Captured)
	fmt.Fprintf(&sb, "Failed interactions: %d\n", report.Failed())
	if outputDir != "" {
		fmt.Fprintf(&sb, "\nCheck %s for the output files.\n", outputDir)
	}
	return sb.String()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
