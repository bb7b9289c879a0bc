package processor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/doc-flow/internal/config"
	"github.com/nguyentantai21042004/doc-flow/internal/extractor"
	"github.com/nguyentantai21042004/doc-flow/internal/logger"
	"github.com/nguyentantai21042004/doc-flow/internal/summarizer"
)

type fakeExtractor struct {
	doc *extractor.Document
	err error
}

func (f *fakeExtractor) Extract(ctx context.Context, path string) (*extractor.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	doc := *f.doc
	doc.Path = path
	return &doc, nil
}

type fakeSummarizer struct {
	res *summarizer.Result
	err error
}

func (f *fakeSummarizer) Summarize(ctx context.Context, text string, method summarizer.Method) (*summarizer.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()

	cfg := &config.Config{
		Gemini: config.GeminiConfig{APIKey: "test-key"},
		Paths: config.PathsConfig{
			Input:      filepath.Join(root, "input"),
			Processing: filepath.Join(root, "processing"),
			Output:     filepath.Join(root, "output"),
			Archived:   filepath.Join(root, "archived"),
		},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Processing, cfg.Paths.Output, cfg.Paths.Archived} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}
	return cfg
}

func TestProcess(t *testing.T) {
	cfg := testConfig(t)

	docPath := filepath.Join(cfg.Paths.Input, "report.docx")
	if err := os.WriteFile(docPath, []byte("placeholder"), 0644); err != nil {
		t.Fatal(err)
	}

	ext := &fakeExtractor{doc: &extractor.Document{
		Text:      "Quarterly revenue grew by twelve percent.",
		Metadata:  extractor.Metadata{Title: "Q3 Report", Author: "Jane Roe", PageCount: 4},
		WordCount: 6,
		CharCount: 41,
	}}
	sum := &fakeSummarizer{res: &summarizer.Result{
		Summary:           "Revenue grew twelve percent.",
		Method:            summarizer.MethodHybrid,
		OriginalWordCount: 6,
		SummaryWordCount:  4,
		CompressionRatio:  4.0 / 6.0,
	}}

	p := New(cfg, ext, sum, logger.New("error"))
	if err := p.Process(context.Background(), docPath); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	// Source archived
	if _, err := os.Stat(filepath.Join(cfg.Paths.Archived, "report.docx")); err != nil {
		t.Errorf("archived document missing: %v", err)
	}

	// Markdown report written
	data, err := os.ReadFile(filepath.Join(cfg.Paths.Output, "report.md"))
	if err != nil {
		t.Fatalf("report missing: %v", err)
	}
	report := string(data)
	for _, want := range []string{"Q3 Report", "Revenue grew twelve percent.", "Jane Roe", "Method: hybrid", "Compression ratio: 0.67"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}

	// Docx summary written
	info, err := os.Stat(filepath.Join(cfg.Paths.Output, "report_summary.docx"))
	if err != nil {
		t.Fatalf("docx summary missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("docx summary is empty")
	}
}

func TestProcessSummarizeFailureLeavesFileInProcessing(t *testing.T) {
	cfg := testConfig(t)

	docPath := filepath.Join(cfg.Paths.Input, "report.pdf")
	if err := os.WriteFile(docPath, []byte("placeholder"), 0644); err != nil {
		t.Fatal(err)
	}

	ext := &fakeExtractor{doc: &extractor.Document{
		Text:     "some text",
		Metadata: extractor.Metadata{Title: "Unknown", Author: "Unknown"},
	}}
	sumErr := errors.New("model unavailable")
	p := New(cfg, ext, &fakeSummarizer{err: sumErr}, logger.New("error"))

	err := p.Process(context.Background(), docPath)
	if !errors.Is(err, sumErr) {
		t.Fatalf("Process() error = %v, want wrapped %v", err, sumErr)
	}

	if _, err := os.Stat(filepath.Join(cfg.Paths.Processing, "report.pdf")); err != nil {
		t.Errorf("document should remain in processing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.Archived, "report.pdf")); err == nil {
		t.Error("failed document must not be archived")
	}
}

func TestProcessReportWriteFailureLeavesFileInProcessing(t *testing.T) {
	cfg := testConfig(t)

	// Output path is a file, so writing the report under it fails.
	if err := os.Remove(cfg.Paths.Output); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cfg.Paths.Output, []byte("not a dir"), 0644); err != nil {
		t.Fatal(err)
	}

	docPath := filepath.Join(cfg.Paths.Input, "report.docx")
	if err := os.WriteFile(docPath, []byte("placeholder"), 0644); err != nil {
		t.Fatal(err)
	}

	ext := &fakeExtractor{doc: &extractor.Document{
		Text:     "some text",
		Metadata: extractor.Metadata{Title: "Unknown", Author: "Unknown"},
	}}
	sum := &fakeSummarizer{res: &summarizer.Result{
		Summary: "summary",
		Method:  summarizer.MethodHybrid,
	}}
	p := New(cfg, ext, sum, logger.New("error"))

	if err := p.Process(context.Background(), docPath); err == nil {
		t.Fatal("Process() should fail when the report cannot be written")
	}

	if _, err := os.Stat(filepath.Join(cfg.Paths.Processing, "report.docx")); err != nil {
		t.Errorf("document should remain in processing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.Archived, "report.docx")); err == nil {
		t.Error("failed document must not be archived")
	}
}

func TestProcessInvalidConfiguredMethod(t *testing.T) {
	cfg := testConfig(t)
	cfg.Summary.Method = "lsa"

	p := New(cfg, &fakeExtractor{}, &fakeSummarizer{}, logger.New("error"))

	err := p.Process(context.Background(), filepath.Join(cfg.Paths.Input, "report.pdf"))
	if !errors.Is(err, summarizer.ErrInvalidMethod) {
		t.Errorf("Process() error = %v, want ErrInvalidMethod", err)
	}
}

func TestRenderReport(t *testing.T) {
	doc := &extractor.Document{
		Path: "data/processing/report.pdf",
		Metadata: extractor.Metadata{
			Title:     "Annual Review",
			Author:    "Jane Roe",
			Subject:   "Finance",
			PageCount: 12,
		},
	}
	result := &summarizer.Result{
		Summary:           "The year went well.",
		Method:            summarizer.MethodExtractive,
		OriginalWordCount: 100,
		SummaryWordCount:  4,
		CompressionRatio:  0.04,
	}

	report := renderReport(doc, result)
	for _, want := range []string{
		"# Annual Review",
		"The year went well.",
		"- Subject: Finance",
		"- Pages: 12",
		"- Original words: 100",
		"- Summary words: 4",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}
}
