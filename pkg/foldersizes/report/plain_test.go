package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainFormatter_Format_BasicOutput(t *testing.T) {
	formatter := &PlainFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, tableReport())
	require.NoError(t, err)

	output := buf.String()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Contains(t, lines[0], "SIZE")
	assert.Contains(t, lines[0], "PATH")
	assert.Contains(t, lines[1], "3.0 KiB")
	assert.Contains(t, lines[1], "/")
	assert.Contains(t, lines[2], "docs")
	assert.Contains(t, lines[3], "empty")
}

func TestPlainFormatter_Format_EmptyReport(t *testing.T) {
	formatter := &PlainFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, &Report{Root: "/data"})
	require.NoError(t, err)

	assert.Equal(t, "SIZE PATH\n", buf.String())
}

func TestPlainFormatter_Format_NoColors(t *testing.T) {
	formatter := &PlainFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, tableReport())
	require.NoError(t, err)

	// Plain output must carry no ANSI escape codes.
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestPlainFormatter_Format_AlignedColumns(t *testing.T) {
	formatter := &PlainFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, tableReport())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	// tabwriter pads the size column, so every path starts at the same
	// column.
	col := strings.Index(lines[0], "PATH")
	require.Greater(t, col, 0)
	assert.Equal(t, col, strings.Index(lines[1], "/"))
	assert.Equal(t, col, strings.Index(lines[2], "docs"))
	assert.Equal(t, col, strings.Index(lines[3], "empty"))
}

func TestPlainFormatter_Registration(t *testing.T) {
	formatter, err := Get("plain")
	require.NoError(t, err)
	assert.IsType(t, &PlainFormatter{}, formatter)
}
