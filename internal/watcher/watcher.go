package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/doc-flow/internal/logger"
)

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	wg            sync.WaitGroup
}

// Start begins monitoring the input directory for new documents.
// Processes up to maxConcurrent files at once.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)
	w.logger.Info(ctx, "Supported formats: .pdf, .docx")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// Only process CREATE events
			if event.Op&fsnotify.Create == fsnotify.Create {
				if w.isDocumentFile(event.Name) {
					w.logger.Info(ctx, "New document detected: %s", event.Name)

					// Small delay to ensure file is fully written
					time.Sleep(500 * time.Millisecond)

					// Acquire semaphore slot (blocks if max concurrent reached)
					select {
					case w.semaphore <- struct{}{}:
						w.wg.Add(1)
						go func(filePath string) {
							defer w.wg.Done()
							defer func() { <-w.semaphore }()

							if err := w.handler(ctx, filePath); err != nil {
								w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
							}
						}(event.Name)
					case <-ctx.Done():
						return ctx.Err()
					}
				} else {
					w.logger.Debug(ctx, "Ignoring non-document file: %s", event.Name)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isDocumentFile checks if the file has a supported document extension
func (w *implWatcher) isDocumentFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))

	for _, format := range []string{".pdf", ".docx"} {
		if ext == format {
			return true
		}
	}

	return false
}
