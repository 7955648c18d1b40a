// Package sync merges filtered reference diagnostics into the parsed
// catalogue and reports the resulting changes.
package sync

import (
	"github.com/bsharp-lang/diagsync/pkg/catalog"
	"github.com/bsharp-lang/diagsync/pkg/diagnostics"
)

// Changeset records what a merge did, in entry order.
type Changeset struct {
	// Filled lists codes whose existing rows had blank cells backfilled.
	Filled []string

	// Appended lists codes added as new rows.
	Appended []string

	// Skipped lists unmatched codes dropped in fill-only mode.
	Skipped []string
}

// HasChanges reports whether the merge touched any row.
func (c *Changeset) HasChanges() bool {
	return len(c.Filled) > 0 || len(c.Appended) > 0
}

// Merge folds the entries into the rows. Existing rows (matched on
// SourceCode) only gain Title and Meaning where those cells are blank;
// populated cells are never overwritten. Unmatched entries become new rows
// with the target-side cells empty, unless fillOnly is set, in which case
// they are dropped.
func Merge(rows []catalog.Row, entries []diagnostics.Entry, fillOnly bool) ([]catalog.Row, *Changeset) {
	merged := make([]catalog.Row, len(rows))
	copy(merged, rows)

	index := make(map[string]int, len(merged))
	for i, row := range merged {
		if row.SourceCode != "" {
			index[row.SourceCode] = i
		}
	}

	changes := &Changeset{}
	for _, entry := range entries {
		i, matched := index[entry.Code]
		if matched {
			row := &merged[i]
			filled := false
			if row.Title == "" && entry.Title != "" {
				row.Title = entry.Title
				filled = true
			}
			if row.Meaning == "" && entry.Meaning != "" {
				row.Meaning = entry.Meaning
				filled = true
			}
			if filled {
				changes.Filled = append(changes.Filled, entry.Code)
			}
			continue
		}

		if fillOnly {
			changes.Skipped = append(changes.Skipped, entry.Code)
			continue
		}

		merged = append(merged, catalog.Row{
			SourceCode: entry.Code,
			Title:      entry.Title,
			Meaning:    entry.Meaning,
		})
		index[entry.Code] = len(merged) - 1
		changes.Appended = append(changes.Appended, entry.Code)
	}

	return merged, changes
}
