package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsharp-lang/diagsync/pkg/catalog"
	"github.com/bsharp-lang/diagsync/pkg/diagnostics"
)

func TestMergeFillsOnlyBlankCells(t *testing.T) {
	rows := []catalog.Row{
		{SourceCode: "CS0100", Title: "", Meaning: "Curated meaning", TargetCode: "BS0100"},
	}
	entries := []diagnostics.Entry{
		{Code: "CS0100", Title: "Derived title", Meaning: "Reference meaning"},
	}

	merged, changes := Merge(rows, entries, false)

	require.Len(t, merged, 1)
	assert.Equal(t, "Derived title", merged[0].Title, "blank title is backfilled")
	assert.Equal(t, "Curated meaning", merged[0].Meaning, "populated meaning is never overwritten")
	assert.Equal(t, "BS0100", merged[0].TargetCode)
	assert.Equal(t, []string{"CS0100"}, changes.Filled)
	assert.True(t, changes.HasChanges())
}

func TestMergeNoChangeWhenCellsPopulated(t *testing.T) {
	rows := []catalog.Row{
		{SourceCode: "CS0100", Title: "t", Meaning: "m"},
	}
	entries := []diagnostics.Entry{
		{Code: "CS0100", Title: "other", Meaning: "other"},
	}

	merged, changes := Merge(rows, entries, false)

	assert.Equal(t, rows, merged)
	assert.False(t, changes.HasChanges())
}

func TestMergeAppendsNewRow(t *testing.T) {
	rows := []catalog.Row{{SourceCode: "CS0100"}}
	entries := []diagnostics.Entry{
		{Code: "CS0200", Title: "New title", Meaning: "New meaning"},
	}

	merged, changes := Merge(rows, entries, false)

	require.Len(t, merged, 2)
	appended := merged[1]
	assert.Equal(t, "CS0200", appended.SourceCode)
	assert.Equal(t, "New title", appended.Title)
	assert.Equal(t, "New meaning", appended.Meaning)
	assert.Empty(t, appended.TargetCode, "target-side cells stay empty")
	assert.Empty(t, appended.TargetName)
	assert.Empty(t, appended.Status)
	assert.Equal(t, []string{"CS0200"}, changes.Appended)
}

func TestMergeFillOnlyDropsUnmatched(t *testing.T) {
	rows := []catalog.Row{{SourceCode: "CS0100"}}
	entries := []diagnostics.Entry{
		{Code: "CS0200", Title: "New title", Meaning: "New meaning"},
	}

	merged, changes := Merge(rows, entries, true)

	assert.Len(t, merged, 1)
	assert.Empty(t, changes.Appended)
	assert.Equal(t, []string{"CS0200"}, changes.Skipped)
	assert.False(t, changes.HasChanges())
}

func TestMergeDuplicateEntriesTargetSameRow(t *testing.T) {
	rows := []catalog.Row{}
	entries := []diagnostics.Entry{
		{Code: "CS0300", Title: "first", Meaning: "first meaning"},
		{Code: "CS0300", Title: "second", Meaning: "second meaning"},
	}

	merged, changes := Merge(rows, entries, false)

	require.Len(t, merged, 1, "second entry must hit the freshly appended row")
	assert.Equal(t, "first", merged[0].Title)
	assert.Equal(t, []string{"CS0300"}, changes.Appended)
	assert.Empty(t, changes.Filled, "already populated cells are not refilled")
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	rows := []catalog.Row{{SourceCode: "CS0100", Title: ""}}
	entries := []diagnostics.Entry{{Code: "CS0100", Title: "filled"}}

	_, _ = Merge(rows, entries, false)

	assert.Equal(t, "", rows[0].Title, "caller's slice must stay untouched")
}
