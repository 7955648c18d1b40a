package diagnostics

import (
	"os"
	"strings"

	"github.com/bsharp-lang/diagsync/pkg/errors"
	"github.com/bsharp-lang/diagsync/pkg/logging"
)

// CodeSet is a set of diagnostic codes used for forced include or exclude
// decisions during filtering.
type CodeSet map[string]struct{}

// NewCodeSet builds a CodeSet from the given codes, upper-casing each.
func NewCodeSet(codes ...string) CodeSet {
	set := make(CodeSet, len(codes))
	for _, code := range codes {
		set[strings.ToUpper(code)] = struct{}{}
	}
	return set
}

// Contains reports set membership. A nil set contains nothing.
func (s CodeSet) Contains(code string) bool {
	_, ok := s[strings.ToUpper(code)]
	return ok
}

// Add inserts a code into the set.
func (s CodeSet) Add(code string) {
	s[strings.ToUpper(code)] = struct{}{}
}

// LoadCodeSet reads a plain-text code list: one code per line, blank lines
// and lines starting with '#' ignored. Codes are upper-cased; entries that
// do not start with the CS prefix or are shorter than 4 characters are
// skipped with a warning.
func LoadCodeSet(path string) (CodeSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return ParseCodeSet(string(data)), nil
}

// ParseCodeSet parses code list content. See LoadCodeSet.
func ParseCodeSet(content string) CodeSet {
	set := make(CodeSet)
	for _, line := range strings.Split(content, "\n") {
		code := strings.TrimSpace(line)
		if code == "" || strings.HasPrefix(code, "#") {
			continue
		}
		code = strings.ToUpper(code)
		if !strings.HasPrefix(code, CodePrefix) || len(code) < 4 {
			logging.Warn().Str("code", code).Msg("Skipping malformed code list entry")
			continue
		}
		set[code] = struct{}{}
	}
	return set
}
