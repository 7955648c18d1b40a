package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsharp-lang/diagsync/pkg/diagnostics"
)

var testEntries = []diagnostics.Entry{
	{Code: "CS0103", Title: "Name does not exist", Meaning: "The name '{0}' does not exist in the current context"},
	{Code: "CS0246", Title: "Type not found", Meaning: "The type or namespace name '{0}' could not be found"},
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewFormatter(FormatJSON)
	require.NoError(t, formatter.Format(&buf, testEntries))

	out := buf.String()
	assert.Contains(t, out, `"code": "CS0103"`)
	assert.Contains(t, out, `"title": "Type not found"`)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewFormatter(FormatYAML)
	require.NoError(t, formatter.Format(&buf, testEntries))

	out := buf.String()
	assert.Contains(t, out, "code: CS0103")
	assert.Contains(t, out, "title: Type not found")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewFormatter(FormatTable)
	require.NoError(t, formatter.Format(&buf, EntriesToTableData(testEntries)))

	out := buf.String()
	assert.Contains(t, out, "CS0103")
	assert.Contains(t, out, "CS0246")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewFormatter(FormatTable)
	require.NoError(t, formatter.Format(&buf, map[string]int{"filled": 2}))

	assert.Contains(t, buf.String(), `"filled": 2`)
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"table", "JSON", "yaml", ""} {
		_, err := ParseFormat(valid)
		assert.NoError(t, err, valid)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "invalid format"))
}

func TestEntriesToTableData(t *testing.T) {
	data := EntriesToTableData(testEntries)
	assert.Equal(t, []string{"Code", "Title", "Meaning"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "CS0103", data.Rows[0][0])
}
