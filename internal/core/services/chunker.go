package services

import (
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/permaweb-tools/permadocs-cli/internal/core/domain"
)

// DefaultChunkSize is the default maximum fragment size in characters.
const DefaultChunkSize = 2000

var (
	// hrSeparator matches horizontal-rule document separators: lines
	// consisting solely of three or more dashes.
	hrSeparator = regexp.MustCompile(`(?m)^[ \t]*-{3,}[ \t]*$`)

	// entrySeparator matches glossary entry boundaries: runs of two or
	// more blank lines (three-plus newlines, interior whitespace allowed).
	entrySeparator = regexp.MustCompile(`(?:\n[ \t]*){3,}`)
)

// boundaries are the re-split points for oversize chunks, in priority
// order: paragraph break, then sentence end, then word boundary.
var boundaries = []string{"\n\n", ". ", " "}

// Chunker splits raw documentation into semantically bounded,
// size-capped fragments. Splitting is deterministic for identical input.
// The size cap can be changed at runtime; each Split snapshots it once.
type Chunker struct {
	mu        sync.RWMutex
	chunkSize int
}

// ChunkerOption configures the chunker.
type ChunkerOption func(*Chunker)

// WithChunkSize sets the maximum fragment size in characters.
func WithChunkSize(size int) ChunkerOption {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// NewChunker creates a chunker with the given options.
func NewChunker(opts ...ChunkerOption) *Chunker {
	c := &Chunker{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ChunkSize returns the configured maximum fragment size.
func (c *Chunker) ChunkSize() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.chunkSize
}

// SetChunkSize updates the maximum fragment size at runtime.
// Non-positive sizes are ignored. Safe for concurrent use.
func (c *Chunker) SetChunkSize(size int) {
	if size <= 0 {
		return
	}
	c.mu.Lock()
	c.chunkSize = size
	c.mu.Unlock()
}

// Split divides content into fragments for a domain.
// Non-empty input always produces at least one fragment.
//
// Phase one applies the domain's structural separator: glossary documents
// split on blank-line entry boundaries, everything else on horizontal
// rules. Phase two re-splits any structural chunk larger than the size cap
// on the highest-priority boundary found within the window, hard-cutting
// only when no boundary exists at all.
func (c *Chunker) Split(dom, content string) []string {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	size := c.ChunkSize()

	var structural []string
	if dom == domain.GlossaryDomain {
		structural = entrySeparator.Split(content, -1)
	} else {
		structural = hrSeparator.Split(content, -1)
	}

	var chunks []string
	for _, part := range structural {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		chunks = append(chunks, splitBySize(part, size)...)
	}

	if len(chunks) == 0 {
		// Separator-only content still yields the trimmed original.
		chunks = splitBySize(strings.TrimSpace(content), size)
	}

	return chunks
}

// Fragments chunks content and wraps each piece as a domain.Fragment.
func (c *Chunker) Fragments(src domain.Source, content string) []domain.Fragment {
	parts := c.Split(src.Domain, content)
	fragments := make([]domain.Fragment, 0, len(parts))
	for i, part := range parts {
		fragments = append(fragments, domain.Fragment{
			ID:             uuid.New().String(),
			Domain:         src.Domain,
			Content:        part,
			Position:       i,
			IsFullDocument: len(parts) == 1,
			URL:            src.URL,
		})
	}
	return fragments
}

// splitBySize re-splits a chunk that exceeds the size cap, preserving
// semantic boundaries where possible.
func splitBySize(chunk string, size int) []string {
	if len(chunk) <= size {
		return []string{chunk}
	}

	var parts []string
	remainder := chunk
	for len(remainder) > size {
		cut := findCut(remainder, size)
		parts = append(parts, strings.TrimSpace(remainder[:cut]))
		remainder = strings.TrimSpace(remainder[cut:])
	}
	if remainder != "" {
		parts = append(parts, remainder)
	}
	return parts
}

// findCut returns the split offset for an oversize chunk: the last
// occurrence of the highest-priority boundary within the first size
// characters, or a hard cut near size when no boundary exists. Hard cuts
// back off to a rune start so multi-byte text is never split mid-rune.
func findCut(chunk string, size int) int {
	window := chunk[:size]
	for _, boundary := range boundaries {
		if idx := strings.LastIndex(window, boundary); idx > 0 {
			return idx + len(boundary)
		}
	}

	cut := size
	for cut > 0 && !utf8.RuneStart(chunk[cut]) {
		cut--
	}
	if cut == 0 {
		return size
	}
	return cut
}
