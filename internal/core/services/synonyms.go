package services

import "strings"

// synonyms maps recognised query words to related-term expansions used by
// the expanded query strategy. Values are appended to the query verbatim.
var synonyms = map[string]string{
	"wallet":   "wallet arweave key management",
	"token":    "token transfer balance mint",
	"transfer": "transfer send token balance",
	"process":  "process spawn message handler ao",
	"contract": "contract process handler lua",
	"deploy":   "deploy spawn publish upload",
	"message":  "message send handler tag",
	"mint":     "mint supply token balance",
	"test":     "test aos dryrun eval",
	"name":     "name arns undername resolver",
	"gateway":  "gateway node ar.io bundler",
	"upload":   "upload bundle turbo data",
	"fetch":    "fetch dryrun read result",
	"schedule": "schedule cron scheduler tick",
	"docs":     "docs documentation guide cookbook",
	"error":    "error handler trace debug",
}

// expandQuery appends the synonym expansion of every recognised query
// word. Unrecognised words pass through untouched; the original text is
// always preserved at the front.
func expandQuery(query string) string {
	var sb strings.Builder
	sb.WriteString(query)

	for _, word := range strings.Fields(strings.ToLower(query)) {
		if expansion, ok := synonyms[word]; ok {
			sb.WriteString(" ")
			sb.WriteString(expansion)
		}
	}

	return sb.String()
}
