package summarizer

import "strings"

// splitIntoChunks greedily packs whitespace-delimited words into chunks of at
// most maxChars characters, counting single-space joins. Words are never
// split; a word longer than maxChars becomes a chunk of its own.
func splitIntoChunks(text string, maxChars int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	current := []string{words[0]}
	length := len(words[0])

	for _, w := range words[1:] {
		if length+1+len(w) > maxChars {
			chunks = append(chunks, strings.Join(current, " "))
			current = []string{w}
			length = len(w)
			continue
		}
		current = append(current, w)
		length += 1 + len(w)
	}

	return append(chunks, strings.Join(current, " "))
}
