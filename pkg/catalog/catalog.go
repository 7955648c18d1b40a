// Package catalog parses and reconstructs the B# compliance catalogue, a
// markdown document carrying a table that maps Roslyn CS diagnostic codes to
// B# rule codes. All text surrounding the table is preserved byte-for-byte.
package catalog

import "strings"

// HeaderLine is the exact header of the catalogue table. Only the first
// table introduced by this line is parsed; anything else is prefix text.
const HeaderLine = "| CS Code | Title | Meaning | B# Code | B# Name | Status |"

// DividerLine is the canonical divider emitted when the catalogue lacks one
// immediately after the header.
const DividerLine = "|---------|-------|---------|---------|---------|--------|"

// ColumnCount is the fixed cell count of every catalogue row.
const ColumnCount = 6

// Row is a single catalogue table row. Unused cells are empty strings.
type Row struct {
	SourceCode string // CS diagnostic code, the row key
	Title      string
	Meaning    string
	TargetCode string // B# rule code
	TargetName string
	Status     string
}

// Cells returns the row as an ordered cell slice.
func (r Row) Cells() []string {
	return []string{r.SourceCode, r.Title, r.Meaning, r.TargetCode, r.TargetName, r.Status}
}

// Format renders the row as a markdown table line.
func (r Row) Format() string {
	return "| " + strings.Join(r.Cells(), " | ") + " |"
}

// RowFromCells builds a Row from parsed cells, padding or truncating to
// exactly ColumnCount.
func RowFromCells(cells []string) Row {
	fixed := make([]string, ColumnCount)
	copy(fixed, cells)
	return Row{
		SourceCode: fixed[0],
		Title:      fixed[1],
		Meaning:    fixed[2],
		TargetCode: fixed[3],
		TargetName: fixed[4],
		Status:     fixed[5],
	}
}

// Document is a parsed catalogue: the table rows plus every other line of
// the file, order-preserved. Prefix holds the lines before and including the
// header, any divider lines, and everything after the table.
type Document struct {
	Prefix []string
	Rows   []Row

	// headerIndex is the position of HeaderLine within Prefix, -1 when the
	// document has no recognized table.
	headerIndex int
}

// HasTable reports whether the document contains the catalogue header.
func (d *Document) HasTable() bool {
	return d.headerIndex >= 0
}

type parseState int

const (
	beforeTable parseState = iota
	inTable
	afterTable
)

// Parse scans document text for the catalogue table. Lines outside the
// table are collected verbatim into Prefix. A header with zero data rows is
// valid and yields an empty row list.
func Parse(content string) *Document {
	doc := &Document{headerIndex: -1}

	state := beforeTable
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		switch state {
		case beforeTable:
			doc.Prefix = append(doc.Prefix, line)
			if trimmed == HeaderLine {
				doc.headerIndex = len(doc.Prefix) - 1
				state = inTable
			}
		case inTable:
			if isDivider(trimmed) {
				doc.Prefix = append(doc.Prefix, line)
				continue
			}
			if !strings.HasPrefix(trimmed, "|") || isPipesOnly(trimmed) {
				doc.Prefix = append(doc.Prefix, line)
				state = afterTable
				continue
			}
			doc.Rows = append(doc.Rows, parseRow(trimmed))
		case afterTable:
			// Only one table per document; later header-like lines are text.
			doc.Prefix = append(doc.Prefix, line)
		}
	}

	return doc
}

// Reconstruct serializes the document: prefix verbatim, with the merged rows
// emitted right after the header's divider. When the prefix does not already
// carry a divider at that position, the canonical one is inserted. The
// result ends with exactly one newline.
func (d *Document) Reconstruct() string {
	var b strings.Builder

	for i := 0; i < len(d.Prefix); i++ {
		b.WriteString(d.Prefix[i])
		b.WriteString("\n")

		if i != d.headerIndex {
			continue
		}
		if i+1 < len(d.Prefix) && isDivider(strings.TrimSpace(d.Prefix[i+1])) {
			i++
			b.WriteString(d.Prefix[i])
			b.WriteString("\n")
		} else {
			b.WriteString(DividerLine)
			b.WriteString("\n")
		}
		for _, row := range d.Rows {
			b.WriteString(row.Format())
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), " \t\n") + "\n"
}

// Index maps SourceCode to row position. Rows with a blank SourceCode are
// not indexed.
func (d *Document) Index() map[string]int {
	index := make(map[string]int, len(d.Rows))
	for i, row := range d.Rows {
		if row.SourceCode != "" {
			index[row.SourceCode] = i
		}
	}
	return index
}

// parseRow splits a table line on the pipe delimiter, trims the cells, and
// repairs the cell count by padding or truncation.
func parseRow(line string) Row {
	cells := strings.Split(line, "|")

	// Drop the empty fragments produced by the bounding pipes.
	if len(cells) > 0 && strings.TrimSpace(cells[0]) == "" {
		cells = cells[1:]
	}
	if len(cells) > 0 && strings.TrimSpace(cells[len(cells)-1]) == "" && strings.HasSuffix(line, "|") {
		cells = cells[:len(cells)-1]
	}

	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return RowFromCells(cells)
}

// isDivider reports whether a trimmed line is a table divider row, e.g.
// "|---|---|" or "| :-- | --: |".
func isDivider(trimmed string) bool {
	if !strings.HasPrefix(trimmed, "|") {
		return false
	}
	dashes := 0
	for _, r := range trimmed {
		switch r {
		case '|', ':', ' ', '\t':
		case '-':
			dashes++
		default:
			return false
		}
	}
	return dashes > 0
}

// isPipesOnly reports whether a trimmed line consists solely of pipe
// characters, which terminates the table.
func isPipesOnly(trimmed string) bool {
	if trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		if r != '|' {
			return false
		}
	}
	return true
}
