package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsharp-lang/diagsync/pkg/diagnostics"
)

func entry(code, meaning string) diagnostics.Entry {
	return diagnostics.Entry{Code: code, Meaning: meaning}
}

func codes(entries []diagnostics.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Code)
	}
	return out
}

func TestApplyNoFilters(t *testing.T) {
	entries := []diagnostics.Entry{entry("CS0100", "a"), entry("CS0200", "b")}
	kept := Config{}.Apply(entries)
	assert.Equal(t, entries, kept)
}

func TestPrefixFilter(t *testing.T) {
	entries := []diagnostics.Entry{entry("CS0100", "a"), entry("CS1100", "b")}

	kept := Config{Prefix: "cs01"}.Apply(entries)
	require.Len(t, kept, 1)
	assert.Equal(t, "CS0100", kept[0].Code)
}

func TestRangeFilter(t *testing.T) {
	entries := []diagnostics.Entry{
		entry("CS0099", "below"),
		entry("CS0100", "low edge"),
		entry("CS0150", "inside"),
		entry("CS0199", "high edge"),
		entry("CS0200", "above"),
	}

	kept := Config{Range: "CS0100-CS0199"}.Apply(entries)
	assert.Equal(t, []string{"CS0100", "CS0150", "CS0199"}, codes(kept))
}

func TestMalformedRangeIsPermissive(t *testing.T) {
	entries := []diagnostics.Entry{entry("CS0100", "a"), entry("CS9999", "b")}

	tests := []string{"CS0100", "0100-0199", "CS0100-", "XX0100-XX0199", "garbage"}
	for _, badRange := range tests {
		t.Run(badRange, func(t *testing.T) {
			kept := Config{Range: badRange}.Apply(entries)
			assert.Len(t, kept, 2, "malformed range must not filter anything")
		})
	}
}

func TestExcludeOverridesInclude(t *testing.T) {
	entries := []diagnostics.Entry{entry("CS0100", "ambiguous reference")}

	cfg := Config{
		SemanticOnly: true,
		Include:      diagnostics.NewCodeSet("CS0100"),
		Exclude:      diagnostics.NewCodeSet("CS0100"),
	}
	assert.Empty(t, cfg.Apply(entries))
}

func TestSemanticOnly(t *testing.T) {
	entries := []diagnostics.Entry{
		entry("CS0104", "'{0}' is an ambiguous reference between '{1}' and '{2}'"),
		entry("CS1001", "Identifier expected"),
		entry("CS9000", "Unclassifiable message"),
		entry("CS9001", "Another unclassifiable message"),
	}

	cfg := Config{
		SemanticOnly: true,
		Include:      diagnostics.NewCodeSet("CS9000"),
	}
	kept := cfg.Apply(entries)
	assert.Equal(t, []string{"CS0104", "CS9000"}, codes(kept))
}

func TestFiltersCompose(t *testing.T) {
	entries := []diagnostics.Entry{
		entry("CS0104", "ambiguous reference"),
		entry("CS0150", "a constant value is expected"),
		entry("CS0900", "ambiguous reference"),
	}

	cfg := Config{
		Range:        "CS0100-CS0199",
		SemanticOnly: true,
	}
	kept := cfg.Apply(entries)
	assert.Equal(t, []string{"CS0104"}, codes(kept))
}

func TestIsSemantic(t *testing.T) {
	tests := []struct {
		name    string
		meaning string
		want    bool
	}{
		{"ambiguous is semantic", "The call is ambiguous between two methods", true},
		{"semantic plus syntax keyword is rejected", "Ambiguous reference; '(' expected", false},
		{"pure syntax", "} expected", false},
		{"conversion", "Cannot implicitly convert type 'int' to 'string'", true},
		{"accessibility", "The member is inaccessible due to its protection level", true},
		{"no keywords at all", "Something entirely different", false},
		{"case folding", "AMBIGUOUS REFERENCE", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSemantic(tt.meaning))
		})
	}
}
