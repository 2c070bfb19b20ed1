package stub

import (
	"context"
	"testing"

	"page-explorer/internal/application/port/output"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLLM_Chat(t *testing.T) {
	resp, err := New().Chat(context.Background(), output.ChatRequest{})
	require.NoError(t, err)
	assert.Equal(t, Notice, resp.Message.Content)
}

func TestLLM_Chat_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Chat(ctx, output.ChatRequest{})
	assert.ErrorIs(t, err, context.Canceled)
}
