package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/doc-flow/internal/config"
	"github.com/nguyentantai21042004/doc-flow/internal/extractor"
	"github.com/nguyentantai21042004/doc-flow/internal/logger"
	"github.com/nguyentantai21042004/doc-flow/internal/summarizer"
)

// One-shot mode: summarize a single document and print the result.
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	methodFlag := flag.String("method", "", "summarization method: extractive, abstractive or hybrid (overrides config)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-config config.yaml] [-method hybrid] <document.pdf|document.docx>\n", os.Args[0])
		os.Exit(1)
	}
	docPath := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *methodFlag != "" {
		cfg.Summary.Method = *methodFlag
	}

	method, err := summarizer.ParseMethod(cfg.Summary.Method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid method %q: %v\n", cfg.Summary.Method, err)
		os.Exit(1)
	}

	ctx := context.Background()
	log := logger.New(cfg.Logging.Level)

	ext := extractor.New(log)
	doc, err := ext.Extract(ctx, docPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Extraction failed: %v\n", err)
		os.Exit(1)
	}

	sum, err := summarizer.New(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize summarizer: %v\n", err)
		os.Exit(1)
	}

	result, err := sum.Summarize(ctx, doc.Text, method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Summarization failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Title:  %s\n", doc.Metadata.Title)
	fmt.Printf("Author: %s\n", doc.Metadata.Author)
	fmt.Printf("Pages:  %d\n\n", doc.Metadata.PageCount)
	fmt.Println(result.Summary)
	fmt.Printf("\n[%s] %d -> %d words (ratio %.2f)\n",
		result.Method, result.OriginalWordCount, result.SummaryWordCount, result.CompressionRatio)
}
