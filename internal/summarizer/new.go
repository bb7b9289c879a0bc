package summarizer

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/doc-flow/internal/config"
	"github.com/nguyentantai21042004/doc-flow/internal/logger"
)

// generator is the abstractive model behind the summarizer.
type generator interface {
	generate(ctx context.Context, text string) (string, error)
}

type implSummarizer struct {
	cfg    *config.Config
	logger logger.Logger
	gen    generator
}

// New creates a Summarizer backed by the configured Gemini model. The model
// client is built once here; a failure is fatal and returns ErrModelInit.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (Summarizer, error) {
	gen, err := newGeminiGenerator(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelInit, err)
	}

	return &implSummarizer{
		cfg:    cfg,
		logger: log,
		gen:    gen,
	}, nil
}
