package processor

import (
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/doc-flow/internal/extractor"
	"github.com/nguyentantai21042004/doc-flow/internal/summarizer"
)

// renderReport assembles the markdown summary report for a document.
func renderReport(doc *extractor.Document, result *summarizer.Result) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n_%s_\n\n", doc.Metadata.Title, time.Now().Format("2006-01-02 15:04"))
	sb.WriteString(strings.TrimSpace(result.Summary))
	sb.WriteString("\n\n---\n\n")

	fmt.Fprintf(&sb, "- Source: %s\n", doc.Path)
	fmt.Fprintf(&sb, "- Author: %s\n", doc.Metadata.Author)
	if doc.Metadata.Subject != "" {
		fmt.Fprintf(&sb, "- Subject: %s\n", doc.Metadata.Subject)
	}
	fmt.Fprintf(&sb, "- Pages: %d\n", doc.Metadata.PageCount)
	fmt.Fprintf(&sb, "- Method: %s\n", result.Method)
	fmt.Fprintf(&sb, "- Original words: %d\n", result.OriginalWordCount)
	fmt.Fprintf(&sb, "- Summary words: %d\n", result.SummaryWordCount)
	fmt.Fprintf(&sb, "- Compression ratio: %.2f\n", result.CompressionRatio)

	return sb.String()
}
