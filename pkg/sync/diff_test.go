package sync

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffIdenticalDocuments(t *testing.T) {
	diff, err := Diff("same\n", "same\n", "file.md")
	require.NoError(t, err)
	assert.Empty(t, diff)
}

func TestDiffShowsChanges(t *testing.T) {
	diff, err := Diff("old line\n", "new line\n", "catalogue.md")
	require.NoError(t, err)

	assert.Contains(t, diff, "--- catalogue.md")
	assert.Contains(t, diff, "+++ catalogue.md (updated)")
	assert.Contains(t, diff, "-old line")
	assert.Contains(t, diff, "+new line")
}

func TestWriteDiffPlain(t *testing.T) {
	diff := "--- a\n+++ b\n-removed\n+added\n context\n"

	var buf bytes.Buffer
	WriteDiff(&buf, diff, false)
	assert.Equal(t, diff, buf.String())
}

func TestWriteDiffColorizedKeepsContent(t *testing.T) {
	diff := "-removed\n+added\n context\n"

	var buf bytes.Buffer
	WriteDiff(&buf, diff, true)

	// Color codes may or may not be emitted depending on the environment;
	// the line content must survive either way.
	out := buf.String()
	for _, want := range []string{"removed", "added", "context"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in colorized output, got: %s", want, out)
		}
	}
}
