package summarizer

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/clipperhouse/uax29/v2/sentences"
)

const (
	textRankDamping       = 0.85
	textRankMaxIterations = 100
	textRankTolerance     = 1e-4
)

// extractive ranks sentences with TextRank and returns the sentenceCount
// highest-scoring ones, re-ordered by original document position and joined
// by single spaces.
func (s *implSummarizer) extractive(text string, sentenceCount int) string {
	sents := splitSentences(text)
	if len(sents) == 0 {
		return ""
	}
	if len(sents) <= sentenceCount {
		return strings.Join(sents, " ")
	}

	tokens := make([][]string, len(sents))
	for i, sent := range sents {
		tokens[i] = tokenize(sent)
	}

	adjacency := buildSimilarityGraph(tokens)
	scores := weightedPageRank(adjacency)

	ranked := make([]int, len(sents))
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return scores[ranked[a]] > scores[ranked[b]]
	})

	selected := ranked[:sentenceCount]
	sort.Ints(selected)

	picked := make([]string, len(selected))
	for i, idx := range selected {
		picked[i] = sents[idx]
	}
	return strings.Join(picked, " ")
}

func splitSentences(text string) []string {
	var out []string
	toks := sentences.FromString(text)
	for toks.Next() {
		if s := strings.TrimSpace(toks.Value()); s != "" {
			out = append(out, s)
		}
	}
	return out
}

var tokenRe = regexp.MustCompile(`[^\p{L}\p{N}]+`)

func tokenize(sentence string) []string {
	var tokens []string
	for _, t := range tokenRe.Split(strings.ToLower(sentence), -1) {
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// buildSimilarityGraph connects sentences by token jaccard similarity.
func buildSimilarityGraph(tokens [][]string) [][]float64 {
	n := len(tokens)
	adjacency := make([][]float64, n)
	for i := range adjacency {
		adjacency[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sim := jaccardSimilarity(tokens[i], tokens[j])
			if sim > 0 {
				adjacency[i][j] = sim
				adjacency[j][i] = sim
			}
		}
	}

	return adjacency
}

func jaccardSimilarity(a, b []string) float64 {
	setA := make(map[string]bool, len(a))
	for _, v := range a {
		setA[v] = true
	}
	setB := make(map[string]bool, len(b))
	for _, v := range b {
		setB[v] = true
	}

	intersection := 0
	for v := range setB {
		if setA[v] {
			intersection++
		}
	}

	// union = |A| + |B| - intersection
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// weightedPageRank iterates graph-centrality scores until the total change
// drops below tolerance or the iteration cap is hit.
func weightedPageRank(adjacency [][]float64) []float64 {
	n := len(adjacency)
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / float64(n)
	}

	outWeights := make([]float64, n)
	for i, row := range adjacency {
		for _, w := range row {
			outWeights[i] += w
		}
	}

	next := make([]float64, n)
	for iter := 0; iter < textRankMaxIterations; iter++ {
		for i := 0; i < n; i++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				if adjacency[j][i] > 0 && outWeights[j] > 0 {
					sum += adjacency[j][i] / outWeights[j] * scores[j]
				}
			}
			next[i] = (1-textRankDamping)/float64(n) + textRankDamping*sum
		}

		delta := 0.0
		for i := range scores {
			delta += math.Abs(next[i] - scores[i])
		}
		copy(scores, next)

		if delta < textRankTolerance {
			break
		}
	}

	return scores
}
