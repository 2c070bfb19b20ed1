package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"page-explorer/internal/application/port/input"
	"page-explorer/internal/application/port/output"
	"page-explorer/internal/domain/entity"
	"page-explorer/internal/infrastructure/markup"
	"page-explorer/internal/infrastructure/prompts"
)

var _ input.Analyzer = (*UseCase)(nil)

var (
	ErrEmptyQuery        = errors.New("query is empty")
	ErrUnsupportedFormat = errors.New("unsupported data format")
	ErrInvalidData       = errors.New("invalid data file")
)

const (
	defaultExcerptLimit = 1000
	defaultTemperature  = 0.2

	truncatedSuffix = "... (truncated for brevity)"
)

type Config struct {
	ExcerptLimit int
	Temperature  float32
}

func DefaultConfig() Config {
	return Config{
		ExcerptLimit: defaultExcerptLimit,
		Temperature:  defaultTemperature,
	}
}

// UseCase отвечает на вопрос пользователя по одному файлу, сохранённому
// прогоном: JSON-манифесту или HTML-снапшоту.
type UseCase struct {
	llm    output.LLMPort
	logger output.LoggerPort
	cfg    Config

	readFile func(string) ([]byte, error)
}

func New(llm output.LLMPort, logger output.LoggerPort, cfg Config) *UseCase {
	if cfg.ExcerptLimit <= 0 {
		cfg.ExcerptLimit = defaultExcerptLimit
	}
	return &UseCase{
		llm:      llm,
		logger:   logger,
		cfg:      cfg,
		readFile: os.ReadFile,
	}
}

func (uc *UseCase) Analyze(ctx context.Context, dataPath, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ErrEmptyQuery
	}

	prompt, err := uc.BuildPrompt(dataPath, query)
	if err != nil {
		return "", err
	}

	uc.logger.Info("Sending analysis prompt", "path", dataPath, "promptChars", len(prompt))
	resp, err := uc.llm.Chat(ctx, output.ChatRequest{
		Messages: []entity.Message{
			{Role: entity.RoleSystem, Content: prompts.DefaultSystemPrompt},
			{Role: entity.RoleUser, Content: prompt},
		},
		Temperature: uc.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("analysis request failed: %w", err)
	}

	return resp.Message.Content, nil
}

// BuildPrompt загружает файл и рендерит промпт анализа, не обращаясь к LLM.
func (uc *UseCase) BuildPrompt(dataPath, query string) (string, error) {
	raw, err := uc.readFile(dataPath)
	if err != nil {
		return "", fmt.Errorf("load data: %w", err)
	}

	data := prompts.AnalysisPromptData{
		Source: filepath.Base(dataPath),
		Query:  query,
	}

	var body string
	switch ext := strings.ToLower(filepath.Ext(dataPath)); ext {
	case ".json":
		data.Kind = "json"
		body, data.Stats, err = describeJSON(raw)
	case ".html", ".htm":
		data.Kind = "html"
		body, data.Stats, err = describeHTML(raw)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return "", err
	}
	data.Excerpt = excerpt(body, uc.cfg.ExcerptLimit)

	return prompts.GenerateAnalysisPrompt(prompts.AnalysisPrompt, data)
}

func describeJSON(raw []byte) (string, []string, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	var stats []string
	switch t := v.(type) {
	case []any:
		stats = append(stats, fmt.Sprintf("%d items analyzed", len(t)))
	case map[string]any:
		if files, ok := t["files"].([]any); ok {
			functions := 0
			for _, f := range files {
				if obj, ok := f.(map[string]any); ok {
					if fns, ok := obj["functions"].([]any); ok {
						functions += len(fns)
					}
				}
			}
			stats = append(stats,
				fmt.Sprintf("%d files analyzed", len(files)),
				fmt.Sprintf("Approximately %d functions/methods identified", functions))
		} else {
			stats = append(stats, fmt.Sprintf("%d top-level keys", len(t)))
		}
	}
	return string(pretty), stats, nil
}

func describeHTML(raw []byte) (string, []string, error) {
	tables, err := markup.Tables(string(raw))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	cleaned, err := markup.Clean(string(raw), nil)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	return cleaned, []string{fmt.Sprintf("%d tables found", len(tables))}, nil
}

func excerpt(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + truncatedSuffix
}
