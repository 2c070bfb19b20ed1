// Package stub provides an LLMPort that never leaves the process. It is used
// when no API key is configured.
package stub

import (
	"context"

	"page-explorer/internal/application/port/output"
	"page-explorer/internal/domain/entity"
)

const Notice = "Please connect with LLM to get actual analysis results."

var _ output.LLMPort = (*LLM)(nil)

type LLM struct {
	Reply string
}

func New() *LLM {
	return &LLM{Reply: Notice}
}

func (l *LLM) Chat(ctx context.Context, _ output.ChatRequest) (*output.ChatResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &output.ChatResponse{
		Message: entity.Message{Role: entity.RoleAssistant, Content: l.Reply},
	}, nil
}
