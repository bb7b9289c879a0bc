package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/doc-flow/internal/config"
	"github.com/nguyentantai21042004/doc-flow/internal/logger"
)

const summaryPrompt = `You are an expert document analyst. Write a concise summary of the text below.

Requirements:
- Cover the main points in the order they appear
- Keep the summary between %d and %d words
- Plain prose only, no headings or bullet points
- Do not add information that is not in the text

Text:
---
%s
---`

type geminiGenerator struct {
	client   *genai.Client
	model    string
	minWords int
	maxWords int
	logger   logger.Logger
}

// newGeminiGenerator builds the model client once. Callers treat a failure
// here as fatal.
func newGeminiGenerator(ctx context.Context, cfg *config.Config, log logger.Logger) (*geminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	return &geminiGenerator{
		client:   client,
		model:    cfg.Gemini.Model,
		minWords: cfg.Summary.MinLength,
		maxWords: cfg.Summary.MaxLength,
		logger:   log,
	}, nil
}

func (g *geminiGenerator) generate(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, g.minWords, g.maxWords, text)

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			sb.WriteString(part.Text)
		}
	}

	return strings.TrimSpace(sb.String()), nil
}
