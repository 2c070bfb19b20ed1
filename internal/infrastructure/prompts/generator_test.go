package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAnalysisPrompt(t *testing.T) {
	prompt, err := GenerateAnalysisPrompt(AnalysisPrompt, AnalysisPromptData{
		Source:  "clickable_elements_20250101_120000.json",
		Kind:    "json",
		Stats:   []string{"12 items analyzed", "3 tables found"},
		Query:   "Which tabs exist?",
		Excerpt: `[{"text": "Overview"}]`,
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "- Source: clickable_elements_20250101_120000.json (json)")
	assert.Contains(t, prompt, "- 12 items analyzed\n- 3 tables found\n")
	assert.Contains(t, prompt, "The user wants to know: Which tabs exist?")
	assert.Contains(t, prompt, "```\n[{\"text\": \"Overview\"}]\n```")
}

func TestGenerateAnalysisPrompt_NoStats(t *testing.T) {
	prompt, err := GenerateAnalysisPrompt(AnalysisPrompt, AnalysisPromptData{
		Source: "page.html",
		Kind:   "html",
		Query:  "q",
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "- Source: page.html (html)\n\nThe user wants to know: q")
}

func TestGenerateAnalysisPrompt_InvalidTemplate(t *testing.T) {
	_, err := GenerateAnalysisPrompt("{{.Unknown", AnalysisPromptData{})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse analysis template"))
}

func TestGenerateAnalysisPrompt_UnknownField(t *testing.T) {
	_, err := GenerateAnalysisPrompt("{{.Missing}}", AnalysisPromptData{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render analysis template")
}

func TestEmbeddedPrompts(t *testing.T) {
	assert.NotEmpty(t, DefaultSystemPrompt)
	assert.Contains(t, AnalysisPrompt, "{{.Query}}")
}
