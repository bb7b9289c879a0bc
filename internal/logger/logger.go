package logger

import (
	"context"
	"log"
	"os"
	"strings"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

type implLogger struct {
	logger *log.Logger
	level  level
}

// New creates a new Logger instance. Unrecognized levels default to info.
func New(levelName string) Logger {
	return &implLogger{
		logger: log.New(os.Stdout, "", log.LstdFlags),
		level:  parseLevel(levelName),
	}
}

func parseLevel(name string) level {
	switch strings.ToLower(name) {
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.level <= levelDebug {
		l.logger.Printf("[DEBUG] "+msg, args...)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.level <= levelInfo {
		l.logger.Printf("[INFO] "+msg, args...)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.level <= levelWarn {
		l.logger.Printf("[WARN] "+msg, args...)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.level <= levelError {
		l.logger.Printf("[ERROR] "+msg, args...)
	}
}
