package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/permaweb-tools/permadocs-cli/internal/core/domain"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	return NewDefaultRegistry()
}

func TestDetector_NeverEmpty(t *testing.T) {
	detector := NewDetector(testRegistry(t))

	domains := detector.Detect("xyzzy completely unrelated gibberish")

	require.NotEmpty(t, domains, "base score keeps every domain in play")
}

func TestDetector_HighConfidenceNarrowsToThree(t *testing.T) {
	detector := NewDetector(testRegistry(t))

	// Multiple primary keyword hits push the top score past the
	// confidence threshold.
	domains := detector.Detect("ao process message handler")

	assert.Len(t, domains, 3)
	assert.Equal(t, "ao", domains[0])
}

func TestDetector_LowConfidenceReturnsFullList(t *testing.T) {
	registry := testRegistry(t)
	detector := NewDetector(registry)

	domains := detector.Detect("qqqq zzzz")

	assert.Len(t, domains, len(registry.Domains()), "low confidence prefers recall")
}

func TestDetector_PrimaryOutweighsSecondary(t *testing.T) {
	detector := NewDetector(testRegistry(t))

	// "wallet" is primary for arweave, "gateway" secondary for ario and
	// primary there too; a pure primary hit must rank its domain first.
	domains := detector.Detect("wallet")

	require.NotEmpty(t, domains)
	assert.Equal(t, "arweave", domains[0])
}

func TestDetector_FuzzyPrefixBonus(t *testing.T) {
	registry := testRegistry(t)

	src, err := registry.Get("hyperbeam")
	require.NoError(t, err)

	// "hyper" is no keyword, but shares the first three characters of
	// "hyperbeam" so the fuzzy bonus applies.
	score := scoreSource(src, "hyp", []string{"hyp"})
	assert.Greater(t, score, 0.0)
}

func TestDetector_DefinitionQueryAppendsGlossary(t *testing.T) {
	detector := NewDetector(testRegistry(t))

	domains := detector.Detect("what is an ao process message handler")

	assert.Contains(t, domains, domain.GlossaryDomain)
}

func TestDetector_GlossaryNotDuplicated(t *testing.T) {
	detector := NewDetector(testRegistry(t))

	domains := detector.Detect("glossary definition meaning term")

	count := 0
	for _, dom := range domains {
		if dom == domain.GlossaryDomain {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestDetector_Deterministic(t *testing.T) {
	detector := NewDetector(testRegistry(t))

	first := detector.Detect("spawn a process on ao")
	second := detector.Detect("spawn a process on ao")

	assert.Equal(t, first, second)
}

func TestScoreTier_ContainmentBothDirections(t *testing.T) {
	// Query contains the keyword.
	score := scoreTier([]string{"ao"}, primaryWeight, "deploy on ao", []string{"deploy", "on", "ao"})
	assert.Equal(t, primaryWeight, score)

	// A query word is a substring of the keyword.
	score = scoreTier([]string{"hyperbeam"}, primaryWeight, "beam", []string{"beam"})
	assert.Equal(t, primaryWeight, score)
}

func TestScoreTier_FuzzyIsFractional(t *testing.T) {
	// "sched" shares the first three chars of "scheduler" without being
	// a substring match in either direction... it is a substring of the
	// keyword, so pick a word that is not: "schxyz".
	score := scoreTier([]string{"scheduler"}, tierWeight, "schxyz", []string{"schxyz"})

	assert.InDelta(t, tierWeight*fuzzyFactor, score, 1e-9)
}
