package services

import (
	"math"

	"github.com/permaweb-tools/permadocs-cli/internal/core/domain"
)

// tokensPerChar is the deterministic chars-to-tokens heuristic.
const tokensPerChar = 0.25

// EstimateTokens estimates the LLM token count of a text.
func EstimateTokens(text string) int {
	return int(math.Ceil(float64(len(text)) * tokensPerChar))
}

// EstimateResponseTokens sums the token estimates of all fragments.
func EstimateResponseTokens(fragments []domain.Fragment) int {
	total := 0
	for i := range fragments {
		total += EstimateTokens(fragments[i].Content)
	}
	return total
}
