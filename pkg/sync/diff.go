package sync

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
)

// Diff renders a unified diff between the original and reconstructed
// catalogue text. Returns the empty string when the documents are equal.
func Diff(original, updated, path string) (string, error) {
	if original == updated {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(updated),
		FromFile: path,
		ToFile:   path + " (updated)",
		Context:  3,
	})
}

// WriteDiff prints a unified diff, colorizing added and removed lines when
// enabled.
func WriteDiff(w io.Writer, diff string, colorize bool) {
	if !colorize {
		io.WriteString(w, diff)
		return
	}

	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)
	header := color.New(color.FgCyan)

	for _, line := range strings.SplitAfter(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---") || strings.HasPrefix(line, "@@"):
			header.Fprint(w, line)
		case strings.HasPrefix(line, "+"):
			added.Fprint(w, line)
		case strings.HasPrefix(line, "-"):
			removed.Fprint(w, line)
		default:
			io.WriteString(w, line)
		}
	}
}
