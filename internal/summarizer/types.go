package summarizer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidMethod means the summarization method name is not recognized.
	ErrInvalidMethod = errors.New("unknown summarization method")
	// ErrEmptyInput means the input text contains no words.
	ErrEmptyInput = errors.New("empty input text")
	// ErrModelInit means the generation model client failed to initialize.
	ErrModelInit = errors.New("model initialization failed")
)

// Method selects a summarization strategy.
type Method string

const (
	MethodExtractive  Method = "extractive"
	MethodAbstractive Method = "abstractive"
	MethodHybrid      Method = "hybrid"
)

// ParseMethod validates a method name, typically from configuration.
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(s))); m {
	case MethodExtractive, MethodAbstractive, MethodHybrid:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMethod, s)
	}
}

// Result packages a summary with compression statistics. Word counts are
// whitespace-token counts of the raw input and the summary.
type Result struct {
	Summary           string
	Method            Method
	OriginalWordCount int
	SummaryWordCount  int
	CompressionRatio  float64
}
