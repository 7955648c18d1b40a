package output

import "github.com/bsharp-lang/diagsync/pkg/diagnostics"

// EntriesToTableData converts diagnostic entries to table format.
func EntriesToTableData(entries []diagnostics.Entry) Data {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{entry.Code, entry.Title, entry.Meaning})
	}
	return Data{
		Headers: []string{"Code", "Title", "Meaning"},
		Rows:    rows,
	}
}
