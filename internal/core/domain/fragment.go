package domain

// Fragment is a bounded-size piece of a domain's documentation.
// Fragments are produced fresh on every query from the cached content;
// they are never persisted.
type Fragment struct {
	// ID is the unique identifier for the fragment.
	ID string

	// Domain is the source domain the fragment was cut from.
	Domain string

	// Content is the fragment text.
	Content string

	// Position is the ordinal position within the source document.
	Position int

	// IsFullDocument is true when the fragment covers the entire
	// cached document (no splitting was required).
	IsFullDocument bool

	// Score is the relevance score against the query that produced it.
	Score float64

	// URL is the fetch location of the source document.
	URL string
}

// QueryOptions configures a documentation query.
type QueryOptions struct {
	// Domains restricts the search to specific domains.
	// Empty means let domain detection choose.
	Domains []string

	// MaxResults caps the number of returned fragments (default 20).
	MaxResults int
}

// DefaultMaxResults is the fragment cap applied when the caller
// does not supply one.
const DefaultMaxResults = 20
