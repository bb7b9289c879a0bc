package summarizer

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	charsetRe    = regexp.MustCompile(`[^\p{L}\p{N}_\s.,;:!?]`)
)

// preprocess normalizes raw document text before summarization: whitespace
// runs collapse to single spaces, characters outside the word and punctuation
// set are stripped, and lines of three or fewer tokens are dropped as
// extraction artifacts. Applying it twice yields the same text.
func preprocess(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = charsetRe.ReplaceAllString(text, "")

	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if len(strings.Fields(line)) > 3 {
			kept = append(kept, line)
		}
	}

	return strings.TrimSpace(strings.Join(kept, "\n"))
}
