package extractor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Extract reads a PDF or DOCX file and returns its text plus metadata.
// Word and character counts are computed from the final extracted text.
func (e *implExtractor) Extract(ctx context.Context, path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	var text string
	var meta Metadata

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		text, meta, err = e.extractPDF(ctx, path)
	case ".docx":
		text, meta, err = e.extractDocx(ctx, path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		e.logger.Error(ctx, "Extraction failed for %s: %v", path, err)
		return nil, err
	}

	text = strings.TrimSpace(text)
	meta.FileSize = info.Size()

	return &Document{
		Path:      path,
		Text:      text,
		Metadata:  meta,
		WordCount: len(strings.Fields(text)),
		CharCount: utf8.RuneCountInString(text),
	}, nil
}
