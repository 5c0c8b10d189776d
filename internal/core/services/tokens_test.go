package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/permaweb-tools/permadocs-cli/internal/core/domain"
)

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 1, EstimateTokens("abc"), "ceil(3*0.25)")
	assert.Equal(t, 1, EstimateTokens("abcd"))
	assert.Equal(t, 2, EstimateTokens("abcde"))
	assert.Equal(t, 25, EstimateTokens(string(make([]byte, 100))))
}

func TestEstimateResponseTokens(t *testing.T) {
	fragments := []domain.Fragment{
		{Content: "abcd"},     // 1
		{Content: "abcdefgh"}, // 2
	}

	assert.Equal(t, 3, EstimateResponseTokens(fragments))
	assert.Equal(t, 0, EstimateResponseTokens(nil))
}
