// Package report generates markdown coverage summaries of the compliance
// catalogue.
package report

import (
	"fmt"
	"io"
	"sort"

	md "github.com/nao1215/markdown"

	"github.com/bsharp-lang/diagsync/pkg/catalog"
)

// Generate writes a coverage report for the catalogue rows: totals, a
// per-status breakdown, and the codes still lacking a B# mapping or a
// title.
func Generate(w io.Writer, doc *catalog.Document) error {
	total := len(doc.Rows)
	mapped := 0
	statuses := make(map[string]int)
	var unmapped, untitled []string

	for _, row := range doc.Rows {
		if row.TargetCode != "" {
			mapped++
		} else {
			unmapped = append(unmapped, row.SourceCode)
		}
		if row.Title == "" {
			untitled = append(untitled, row.SourceCode)
		}
		status := row.Status
		if status == "" {
			status = "unclassified"
		}
		statuses[status]++
	}

	statusRows := make([][]string, 0, len(statuses))
	for status, count := range statuses {
		statusRows = append(statusRows, []string{status, fmt.Sprintf("%d", count)})
	}
	sort.Slice(statusRows, func(i, j int) bool { return statusRows[i][0] < statusRows[j][0] })

	builder := md.NewMarkdown(w).
		H1("Compliance Coverage").
		PlainTextf("%d diagnostics catalogued, %d mapped to B# rules.", total, mapped).
		LF().
		H2("By status").
		Table(md.TableSet{
			Header: []string{"Status", "Count"},
			Rows:   statusRows,
		})

	if len(unmapped) > 0 {
		builder.H2("Unmapped codes").BulletList(unmapped...)
	}
	if len(untitled) > 0 {
		builder.H2("Codes missing a title").BulletList(untitled...)
	}

	return builder.Build()
}
