package summarizer

import (
	"context"
	"fmt"
	"strings"
)

// Summarize preprocesses text and dispatches to the selected strategy.
// The input must contain at least one word; ErrEmptyInput guards the
// compression-ratio division.
func (s *implSummarizer) Summarize(ctx context.Context, text string, method Method) (*Result, error) {
	originalWords := len(strings.Fields(text))
	if originalWords == 0 {
		return nil, ErrEmptyInput
	}

	preprocessed := preprocess(text)

	var summary string
	var err error

	switch method {
	case MethodExtractive:
		summary = s.extractive(preprocessed, s.cfg.Summary.SentenceCount)
	case MethodAbstractive:
		summary, err = s.abstractive(ctx, preprocessed)
	case MethodHybrid:
		// Extractive pass with a larger sentence budget trims length and
		// noise before the model call.
		intermediate := s.extractive(preprocessed, s.cfg.Summary.HybridSentenceCount)
		summary, err = s.abstractive(ctx, intermediate)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}
	if err != nil {
		s.logger.Error(ctx, "Summarization failed (%s): %v", method, err)
		return nil, err
	}

	summaryWords := len(strings.Fields(summary))

	return &Result{
		Summary:           summary,
		Method:            method,
		OriginalWordCount: originalWords,
		SummaryWordCount:  summaryWords,
		CompressionRatio:  float64(summaryWords) / float64(originalWords),
	}, nil
}

// abstractive chunks the text to respect the model input span, runs every
// chunk through the generation model and joins the chunk summaries.
func (s *implSummarizer) abstractive(ctx context.Context, text string) (string, error) {
	chunks := splitIntoChunks(text, s.cfg.Summary.MaxChunkChars)
	if len(chunks) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		s.logger.Debug(ctx, "Generating summary for chunk %d/%d (%d chars)", i+1, len(chunks), len(chunk))

		out, err := s.gen.generate(ctx, chunk)
		if err != nil {
			return "", fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
		}
		if out != "" {
			parts = append(parts, out)
		}
	}

	return strings.Join(parts, " "), nil
}
