package diagnostics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLinkedAndBareRows(t *testing.T) {
	content := strings.Join([]string{
		"# Compiler messages",
		"",
		"| Error | Message |",
		"|-------|---------|",
		"| [CS0100](cs0100.md) | The parameter name '{0}' is a duplicate. |",
		"| CS0101 | The namespace '{1}' already contains a definition for '{0}'. |",
		"| not-a-code | ignored |",
		"plain text line",
	}, "\n")

	entries := Extract(content)
	require.Len(t, entries, 2)

	assert.Equal(t, "CS0100", entries[0].Code)
	assert.Equal(t, "The parameter name '{0}' is a duplicate.", entries[0].Meaning)
	assert.Equal(t, "The parameter name value is a duplicate", entries[0].Title)

	assert.Equal(t, "CS0101", entries[1].Code)
	assert.Equal(t, "The namespace value already contains a definition for value", entries[1].Title)
}

func TestExtractIgnoresShortAndLongCodes(t *testing.T) {
	content := strings.Join([]string{
		"| CS123 | too short |",
		"| [CS0001](x.md) | fine. |",
	}, "\n")

	entries := Extract(content)
	require.Len(t, entries, 1)
	assert.Equal(t, "CS0001", entries[0].Code)
}

func TestExtractPreservesDocumentOrder(t *testing.T) {
	content := "| CS0300 | c. |\n| CS0100 | a. |\n| CS0200 | b. |\n"
	entries := Extract(content)

	require.Len(t, entries, 3)
	codes := []string{entries[0].Code, entries[1].Code, entries[2].Code}
	assert.Equal(t, []string{"CS0300", "CS0100", "CS0200"}, codes)
}

func TestExtractEmptyDocument(t *testing.T) {
	assert.Empty(t, Extract(""))
	assert.Empty(t, Extract("no table at all\n"))
}

func TestTitleFromMeaning(t *testing.T) {
	tests := []struct {
		name    string
		meaning string
		want    string
	}{
		{
			name:    "clipped at first period",
			meaning: "The name does not exist. More detail follows.",
			want:    "The name does not exist",
		},
		{
			name:    "clipped at double hyphen",
			meaning: "Ambiguous reference -- see the language reference",
			want:    "Ambiguous reference",
		},
		{
			name:    "earliest terminator wins",
			meaning: "Short -- but a period. comes later",
			want:    "Short",
		},
		{
			name:    "no terminator keeps whole text",
			meaning: "No terminator here",
			want:    "No terminator here",
		},
		{
			name:    "quoted placeholder becomes value",
			meaning: "The type '{0}' is not accessible",
			want:    "The type value is not accessible",
		},
		{
			name:    "bare placeholder becomes ellipsis",
			meaning: "Expected {0} arguments but got {1}",
			want:    "Expected ... arguments but got ...",
		},
		{
			name:    "long meaning truncated to 80",
			meaning: strings.Repeat("x", 120),
			want:    strings.Repeat("x", 80),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleFromMeaning(tt.meaning))
		})
	}
}

func TestTitleTruncationTrimsTrailingSpace(t *testing.T) {
	meaning := strings.Repeat("word ", 20) // 100 chars, boundary inside a space
	title := TitleFromMeaning(meaning)

	assert.LessOrEqual(t, len(title), 80)
	assert.False(t, strings.HasSuffix(title, " "))
}
