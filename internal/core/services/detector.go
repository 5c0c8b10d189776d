package services

import (
	"regexp"
	"sort"
	"strings"

	"github.com/permaweb-tools/permadocs-cli/internal/core/domain"
	"github.com/permaweb-tools/permadocs-cli/internal/logger"
)

const (
	// primaryWeight is the detection weight of primary keywords.
	primaryWeight = 3.0

	// tierWeight is the detection weight of secondary and technical keywords.
	tierWeight = 2.0

	// fuzzyFactor scales a keyword's weight for a shared-prefix match.
	fuzzyFactor = 0.3

	// baseScore keeps every domain above zero so none is fully excluded.
	baseScore = 0.1

	// confidenceThreshold separates narrow (top 3) from broad detection.
	confidenceThreshold = 3.0

	// narrowLimit is how many domains a high-confidence detection returns.
	narrowLimit = 3
)

// definitionPattern recognises definition/glossary style queries.
var definitionPattern = regexp.MustCompile(`(?i)what is|define|definition|glossary|meaning|explain`)

// Detector ranks documentation domains against free-text queries.
type Detector struct {
	registry *Registry
}

// NewDetector creates a detector over the given registry.
func NewDetector(registry *Registry) *Detector {
	return &Detector{registry: registry}
}

// domainScore pairs a domain with its detection score.
type domainScore struct {
	domain string
	score  float64
}

// Detect returns an ordered, non-empty domain list for a query.
//
// When the best score reaches the confidence threshold the list narrows to
// the top 3 domains; otherwise the full ranked list is returned, trading
// precision for recall. Definition-style queries always include the
// glossary domain.
func (d *Detector) Detect(query string) []string {
	queryLower := strings.ToLower(query)
	queryWords := strings.Fields(queryLower)

	scores := make([]domainScore, 0, len(d.registry.order))
	for _, dom := range d.registry.order {
		src := d.registry.sources[dom]
		scores = append(scores, domainScore{
			domain: dom,
			score:  baseScore + scoreSource(src, queryLower, queryWords),
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	maxScore := 0.0
	if len(scores) > 0 {
		maxScore = scores[0].score
	}

	ranked := make([]string, 0, len(scores))
	for _, s := range scores {
		ranked = append(ranked, s.domain)
	}
	if maxScore >= confidenceThreshold && len(ranked) > narrowLimit {
		ranked = ranked[:narrowLimit]
	}

	if definitionPattern.MatchString(query) && !contains(ranked, domain.GlossaryDomain) {
		ranked = append(ranked, domain.GlossaryDomain)
	}

	logger.Debug("Domain detection: query=%q max=%.2f domains=%v", query, maxScore, ranked)
	return ranked
}

// scoreSource walks the three keyword tiers with their weights.
// A keyword contributes its full weight when the query contains it or any
// query word is a substring of it, and a fuzzy bonus when a query word of
// length >=3 shares its first three characters.
func scoreSource(src domain.Source, queryLower string, queryWords []string) float64 {
	score := scoreTier(src.Keywords.Primary, primaryWeight, queryLower, queryWords)
	score += scoreTier(src.Keywords.Secondary, tierWeight, queryLower, queryWords)
	score += scoreTier(src.Keywords.Technical, tierWeight, queryLower, queryWords)
	return score
}

func scoreTier(keywords []string, weight float64, queryLower string, queryWords []string) float64 {
	score := 0.0
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if strings.Contains(queryLower, kw) || anyWordInKeyword(queryWords, kw) {
			score += weight
			continue
		}
		if sharesPrefix(queryWords, kw) {
			score += weight * fuzzyFactor
		}
	}
	return score
}

func anyWordInKeyword(words []string, kw string) bool {
	for _, w := range words {
		if strings.Contains(kw, w) {
			return true
		}
	}
	return false
}

func sharesPrefix(words []string, kw string) bool {
	if len(kw) < 3 {
		return false
	}
	for _, w := range words {
		if len(w) >= 3 && strings.HasPrefix(kw, w[:3]) {
			return true
		}
	}
	return false
}

func contains(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}
