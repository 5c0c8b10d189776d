// Package domain defines the core business entities for Permadocs.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Source: A documentation domain with its fetch URL and keyword tiers
//   - CachedDoc: A fetched document held in the in-memory cache
//   - Fragment: A bounded piece of a document returned to callers
//   - QueryOptions: Caller-supplied query configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
