package extractor

import "context"

// Extractor defines the interface for document text extraction
type Extractor interface {
	Extract(ctx context.Context, path string) (*Document, error)
}
