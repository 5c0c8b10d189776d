package domain

// Source describes a documentation domain: where its content lives and
// which keywords identify it during domain detection.
type Source struct {
	// Domain is the stable identifier for the source (e.g. "ao").
	Domain string

	// Name is the human-readable name for display in CLI/TUI output.
	Name string

	// URL is the fetch location of the documentation mirror.
	URL string

	// Keywords holds the three weighted keyword tiers used for
	// domain detection and relevance scoring.
	Keywords KeywordSet
}

// KeywordSet groups a source's keywords by detection weight.
type KeywordSet struct {
	// Primary keywords identify the domain strongly (weight 3).
	Primary []string

	// Secondary keywords are common but less distinctive (weight 2).
	Secondary []string

	// Technical keywords are implementation-level terms (weight 2).
	Technical []string
}

// All returns every keyword across the three tiers.
func (k KeywordSet) All() []string {
	all := make([]string, 0, len(k.Primary)+len(k.Secondary)+len(k.Technical))
	all = append(all, k.Primary...)
	all = append(all, k.Secondary...)
	all = append(all, k.Technical...)
	return all
}

// GlossaryDomain is the domain holding permaweb term definitions.
// It gets special treatment: definition-style queries always include it,
// and its documents split on blank-line entry boundaries rather than
// horizontal rules.
const GlossaryDomain = "permaweb-glossary"

// DefaultSources returns the built-in source registry.
// The set is fixed at startup; URL overrides from configuration may
// replace a fetch location but never add or remove a domain.
func DefaultSources() []Source {
	return []Source{
		{
			Domain: "ao",
			Name:   "AO Cookbook",
			URL:    "https://cookbook_ao.arweave.net/llms-full.txt",
			Keywords: KeywordSet{
				Primary:   []string{"ao", "process", "aos", "lua", "message"},
				Secondary: []string{"spawn", "handler", "scheduler", "dryrun", "actor", "compute"},
				Technical: []string{"ans-104", "mu", "su", "cu", "wasm", "cron"},
			},
		},
		{
			Domain: "arweave",
			Name:   "Arweave Cookbook",
			URL:    "https://cookbook.arweave.net/llms-full.txt",
			Keywords: KeywordSet{
				Primary:   []string{"arweave", "wallet", "transaction", "permaweb", "upload"},
				Secondary: []string{"bundle", "gateway", "tag", "winston", "graphql", "deploy"},
				Technical: []string{"arjs", "arconnect", "turbo", "vouch", "gql"},
			},
		},
		{
			Domain: "ario",
			Name:   "AR.IO Network Docs",
			URL:    "https://docs.ar.io/llms-full.txt",
			Keywords: KeywordSet{
				Primary:   []string{"ario", "arns", "gateway", "name"},
				Secondary: []string{"undername", "observer", "staking", "resolver", "lease"},
				Technical: []string{"ant", "io-token", "wayfinder", "gar"},
			},
		},
		{
			Domain: "hyperbeam",
			Name:   "HyperBEAM Docs",
			URL:    "https://hyperbeam.arweave.net/llms.txt",
			Keywords: KeywordSet{
				Primary:   []string{"hyperbeam", "device", "node", "erlang"},
				Secondary: []string{"pathing", "hashpath", "payment", "operator"},
				Technical: []string{"wasm64", "codec", "httpsig", "dev_meta"},
			},
		},
		{
			Domain: GlossaryDomain,
			Name:   "Permaweb Glossary",
			URL:    "https://glossary.permaweb.tools/llms.txt",
			Keywords: KeywordSet{
				Primary:   []string{"glossary", "definition", "term", "meaning"},
				Secondary: []string{"concept", "explain", "what is"},
				Technical: []string{},
			},
		},
	}
}
