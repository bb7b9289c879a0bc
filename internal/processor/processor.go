package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/doc-flow/internal/summarizer"
)

// Process orchestrates the document pipeline: extract text, summarize with
// the configured method, write the summary outputs, archive the source.
// Failed documents stay in the processing folder for inspection.
func (p *implProcessor) Process(ctx context.Context, docPath string) error {
	startTime := time.Now()
	filename := filepath.Base(docPath)

	p.logger.Info(ctx, "Starting document processing: %s", docPath)

	method, err := summarizer.ParseMethod(p.cfg.Summary.Method)
	if err != nil {
		return fmt.Errorf("configured method: %w", err)
	}

	// Step 1: Move out of the watched folder
	workPath, err := p.moveToProcessing(ctx, docPath)
	if err != nil {
		return fmt.Errorf("move to processing: %w", err)
	}

	// Step 2: Extract text and metadata
	doc, err := p.extractor.Extract(ctx, workPath)
	if err != nil {
		p.logger.Warn(ctx, "Leaving %s in processing folder for inspection", filename)
		return fmt.Errorf("extract: %w", err)
	}
	p.logger.Info(ctx, "Extracted %d words (%d chars) from %s", doc.WordCount, doc.CharCount, filename)

	// Step 3: Summarize
	result, err := p.summarizer.Summarize(ctx, doc.Text, method)
	if err != nil {
		p.logger.Warn(ctx, "Leaving %s in processing folder for inspection", filename)
		return fmt.Errorf("summarize: %w", err)
	}

	// Step 4: Write summary outputs
	base := strings.TrimSuffix(filename, filepath.Ext(filename))

	mdPath := filepath.Join(p.cfg.Paths.Output, base+".md")
	if err := os.WriteFile(mdPath, []byte(renderReport(doc, result)), 0644); err != nil {
		p.logger.Warn(ctx, "Leaving %s in processing folder for inspection", filename)
		return fmt.Errorf("write report: %w", err)
	}

	docxPath := filepath.Join(p.cfg.Paths.Output, base+"_summary.docx")
	if err := writeSummaryDocx(doc.Metadata.Title, result, p.cfg.Output, docxPath); err != nil {
		p.logger.Warn(ctx, "Failed to write docx summary for %s: %v", filename, err)
	}

	// Step 5: Archive the source document
	if err := p.moveToArchived(ctx, workPath); err != nil {
		p.logger.Warn(ctx, "Failed to archive %s: %v", workPath, err)
	}

	p.logger.Info(ctx, "Processing completed: %s (method=%s, compression=%.2f, took %s)",
		filename, result.Method, result.CompressionRatio, time.Since(startTime))

	return nil
}
