package summarizer

import "context"

// Summarizer generates condensed summaries of document text
type Summarizer interface {
	Summarize(ctx context.Context, text string, method Method) (*Result, error)
}
