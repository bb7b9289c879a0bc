package summarizer

import (
	"strings"
	"testing"
)

func TestSplitIntoChunks(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxChars int
	}{
		{"short text single chunk", "alpha beta gamma", 100},
		{"splits on boundary", "alpha beta gamma delta epsilon zeta", 12},
		{"one word per chunk", "alpha beta gamma", 5},
		{"exact fit", "ab cd", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := splitIntoChunks(tt.text, tt.maxChars)

			// Joining the chunks reproduces the whitespace-normalized input.
			joined := strings.Join(chunks, " ")
			normalized := strings.Join(strings.Fields(tt.text), " ")
			if joined != normalized {
				t.Errorf("joined chunks = %q, want %q", joined, normalized)
			}

			for i, c := range chunks {
				if len(c) > tt.maxChars && len(strings.Fields(c)) > 1 {
					t.Errorf("chunk %d exceeds max length %d: %q", i, tt.maxChars, c)
				}
			}
		})
	}
}

func TestSplitIntoChunksOversizedWord(t *testing.T) {
	chunks := splitIntoChunks("tiny incomprehensibilities tiny", 10)

	want := []string{"tiny", "incomprehensibilities", "tiny"}
	if len(chunks) != len(want) {
		t.Fatalf("got %d chunks %v, want %d", len(chunks), chunks, len(want))
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Errorf("chunk %d = %q, want %q", i, chunks[i], want[i])
		}
	}
}

func TestSplitIntoChunksEmpty(t *testing.T) {
	if chunks := splitIntoChunks("", 100); chunks != nil {
		t.Errorf("splitIntoChunks(\"\") = %v, want nil", chunks)
	}
	if chunks := splitIntoChunks("   \n\t ", 100); chunks != nil {
		t.Errorf("splitIntoChunks(whitespace) = %v, want nil", chunks)
	}
}
