// Package diagnostics extracts Roslyn compiler diagnostics from the
// reference markdown document scraped from vendor documentation.
package diagnostics

import (
	"regexp"
	"strings"
)

// CodePrefix is the fixed alphabetic prefix of every diagnostic code.
const CodePrefix = "CS"

// maxTitleLength caps titles derived from diagnostic messages.
const maxTitleLength = 80

// Entry is a single diagnostic extracted from the reference document.
type Entry struct {
	Code    string `json:"code" yaml:"code"`
	Title   string `json:"title" yaml:"title"`
	Meaning string `json:"meaning" yaml:"meaning"`
}

// Reference rows come in two shapes: the code wrapped in a markdown link
// reference, or a bare code cell. Everything after the code cell is free
// text; the trailing column is the diagnostic message.
var (
	linkedPattern = regexp.MustCompile(`^\|\s*\[(` + CodePrefix + `[0-9]{4})\]\([^)]*\)\s*\|(.+)$`)
	barePattern   = regexp.MustCompile(`^\|\s*(` + CodePrefix + `[0-9]{4})\s*\|(.+)$`)

	quotedPlaceholder = regexp.MustCompile(`'\{[0-9]+\}'`)
	barePlaceholder   = regexp.MustCompile(`\{[0-9]+\}`)
)

// Extract returns one Entry per recognized reference line, in document
// order. Lines matching neither pattern contribute nothing.
func Extract(content string) []Entry {
	var entries []Entry

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		match := linkedPattern.FindStringSubmatch(trimmed)
		if match == nil {
			match = barePattern.FindStringSubmatch(trimmed)
		}
		if match == nil {
			continue
		}

		code := strings.ToUpper(match[1])
		meaning := trailingColumn(match[2])
		entries = append(entries, Entry{
			Code:    code,
			Title:   TitleFromMeaning(meaning),
			Meaning: meaning,
		})
	}

	return entries
}

// TitleFromMeaning derives a short title from a diagnostic message: the text
// up to the first period or double hyphen, truncated to 80 characters, with
// message placeholders normalized.
func TitleFromMeaning(meaning string) string {
	cut := len(meaning)
	if i := strings.Index(meaning, "."); i >= 0 && i < cut {
		cut = i
	}
	if i := strings.Index(meaning, "--"); i >= 0 && i < cut {
		cut = i
	}

	title := strings.TrimSpace(meaning[:cut])
	if len(title) > maxTitleLength {
		title = strings.TrimSpace(title[:maxTitleLength])
	}

	title = quotedPlaceholder.ReplaceAllString(title, "value")
	title = barePlaceholder.ReplaceAllString(title, "...")
	return title
}

// trailingColumn returns the last non-empty cell of the remainder of a
// reference table line.
func trailingColumn(rest string) string {
	cells := strings.Split(rest, "|")
	for i := len(cells) - 1; i >= 0; i-- {
		if cell := strings.TrimSpace(cells[i]); cell != "" {
			return cell
		}
	}
	return ""
}
