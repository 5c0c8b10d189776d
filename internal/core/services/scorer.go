package services

import (
	"strings"

	"github.com/permaweb-tools/permadocs-cli/internal/core/domain"
)

const (
	// wordPoints is awarded per query word found in a chunk.
	wordPoints = 2.0

	// keywordPoints is awarded per source keyword found in a chunk.
	// Tier weights apply only to domain detection, not here.
	keywordPoints = 1.0
)

// Score computes the relevance of a chunk for a query against a source.
// It is a pure function of its inputs: literal query-word occurrence plus
// keyword occurrence across all three tiers, unbounded above.
func Score(query, chunk string, src domain.Source) float64 {
	chunkLower := strings.ToLower(chunk)
	queryLower := strings.ToLower(query)

	score := 0.0
	for _, word := range strings.Fields(queryLower) {
		if strings.Contains(chunkLower, word) {
			score += wordPoints
		}
	}

	for _, kw := range src.Keywords.All() {
		if strings.Contains(chunkLower, strings.ToLower(kw)) {
			score += keywordPoints
		}
	}

	return score
}
