package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/permaweb-tools/permadocs-cli/internal/core/domain"
)

func scoringSource() domain.Source {
	return domain.Source{
		Domain: "ao",
		Keywords: domain.KeywordSet{
			Primary:   []string{"ao", "process"},
			Secondary: []string{"spawn"},
			Technical: []string{"mu"},
		},
	}
}

func TestScore_QueryWordsWorthTwo(t *testing.T) {
	src := domain.Source{Domain: "ao"}

	score := Score("transfer tokens", "how to transfer tokens safely", src)

	assert.Equal(t, 4.0, score)
}

func TestScore_KeywordsWorthOneUnweighted(t *testing.T) {
	// Tier weights apply to detection only: primary and technical
	// keywords both contribute 1 here.
	// "process" (+1) and "mu" (+1); "ao" does not appear.
	score := Score("zzz", "the process sends to mu", scoringSource())

	assert.Equal(t, 2.0, score)
}

func TestScore_CaseInsensitive(t *testing.T) {
	src := domain.Source{Domain: "ao"}

	score := Score("Transfer TOKENS", "TRANSFER tokens", src)

	assert.Equal(t, 4.0, score)
}

func TestScore_ZeroForNoOverlap(t *testing.T) {
	score := Score("qqq www", "completely unrelated text", domain.Source{Domain: "x"})

	assert.Equal(t, 0.0, score)
}

func TestScore_Deterministic(t *testing.T) {
	src := scoringSource()

	first := Score("spawn a process", "spawn the process on ao", src)
	second := Score("spawn a process", "spawn the process on ao", src)

	assert.Equal(t, first, second)
}

func TestScore_SubstringContainment(t *testing.T) {
	src := domain.Source{Domain: "ao"}

	// "token" is contained in "tokens": substring matching, not word
	// equality.
	score := Score("token", "tokens everywhere", src)

	assert.Equal(t, 2.0, score)
}
