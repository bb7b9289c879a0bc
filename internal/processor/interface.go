package processor

import "context"

// Processor defines the interface for document processing operations
type Processor interface {
	Process(ctx context.Context, docPath string) error
}
