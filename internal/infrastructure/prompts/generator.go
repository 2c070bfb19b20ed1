package prompts

import (
	"bytes"
	"fmt"
	"text/template"
)

type AnalysisPromptData struct {
	Source  string
	Kind    string
	Stats   []string
	Query   string
	Excerpt string
}

func GenerateAnalysisPrompt(baseTemplate string, data AnalysisPromptData) (string, error) {
	tmpl, err := template.New("analysis").Option("missingkey=error").Parse(baseTemplate)
	if err != nil {
		return "", fmt.Errorf("parse analysis template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render analysis template: %w", err)
	}

	return buf.String(), nil
}
