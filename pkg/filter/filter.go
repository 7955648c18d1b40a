// Package filter narrows the extracted diagnostic list before merging.
// Filtering carries the only policy logic in the pipeline: prefix and range
// restriction, forced include/exclude lists, and a keyword heuristic that
// separates semantic diagnostics from purely syntactic ones.
package filter

import (
	"strconv"
	"strings"

	"github.com/bsharp-lang/diagsync/pkg/diagnostics"
	"github.com/bsharp-lang/diagsync/pkg/logging"
)

// Config holds the filter configuration. Zero values disable the
// corresponding rule.
type Config struct {
	// Prefix keeps only codes starting with it, case-insensitive.
	Prefix string

	// Range keeps only codes whose numeric suffix falls within an inclusive
	// span, e.g. "CS0100-CS0199". Malformed ranges disable the rule.
	Range string

	// SemanticOnly keeps only entries in the include set or classified as
	// semantic by the keyword heuristic.
	SemanticOnly bool

	// Include forces entries through the semantic gate.
	Include diagnostics.CodeSet

	// Exclude rejects entries unconditionally, overriding Include.
	Exclude diagnostics.CodeSet
}

// Apply returns the entries passing every configured rule, preserving
// input order.
func (c Config) Apply(entries []diagnostics.Entry) []diagnostics.Entry {
	low, high, ranged := parseRange(c.Range)
	if c.Range != "" && !ranged {
		logging.Warn().Str("range", c.Range).Msg("Ignoring malformed range filter")
	}

	var kept []diagnostics.Entry
	for _, entry := range entries {
		if c.Prefix != "" && !strings.HasPrefix(strings.ToUpper(entry.Code), strings.ToUpper(c.Prefix)) {
			continue
		}
		if ranged {
			n, err := codeNumber(entry.Code)
			if err != nil || n < low || n > high {
				continue
			}
		}
		if c.Exclude.Contains(entry.Code) {
			continue
		}
		if c.SemanticOnly && !c.Include.Contains(entry.Code) && !IsSemantic(entry.Meaning) {
			continue
		}
		kept = append(kept, entry)
	}
	return kept
}

// parseRange parses an inclusive "CSlow-CShigh" span. Anything that does
// not carry the CS prefix on both endpoints, or fails to parse numerically,
// reports ok=false and the range rule is skipped.
func parseRange(s string) (low, high int, ok bool) {
	if s == "" {
		return 0, 0, false
	}
	parts := strings.SplitN(strings.ToUpper(strings.TrimSpace(s)), "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	low, err := codeNumber(parts[0])
	if err != nil {
		return 0, 0, false
	}
	high, err = codeNumber(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return low, high, true
}

// codeNumber returns the numeric suffix of a prefixed diagnostic code.
func codeNumber(code string) (int, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !strings.HasPrefix(code, diagnostics.CodePrefix) {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(code[len(diagnostics.CodePrefix):])
}
