package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// moveToProcessing moves a document from input to the processing folder
func (p *implProcessor) moveToProcessing(ctx context.Context, docPath string) (string, error) {
	filename := filepath.Base(docPath)
	destPath := filepath.Join(p.cfg.Paths.Processing, filename)

	p.logger.Debug(ctx, "Moving to processing folder: %s -> %s", docPath, destPath)

	if err := os.MkdirAll(p.cfg.Paths.Processing, 0755); err != nil {
		return "", fmt.Errorf("create processing dir: %w", err)
	}
	if err := os.Rename(docPath, destPath); err != nil {
		return "", fmt.Errorf("move to processing: %w", err)
	}

	return destPath, nil
}

// moveToArchived moves a processed document to the archived folder
func (p *implProcessor) moveToArchived(ctx context.Context, docPath string) error {
	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(docPath))

	p.logger.Debug(ctx, "Archiving: %s -> %s", docPath, destPath)

	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}
	if err := os.Rename(docPath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}

	return nil
}
