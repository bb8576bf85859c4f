package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyFormatter_Format_ContainsMetadata(t *testing.T) {
	formatter := &PrettyFormatter{}
	var buf bytes.Buffer

	rep := Build(sampleResult(), Options{})
	err := formatter.Format(&buf, rep)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Root:")
	assert.Contains(t, output, "/data")
	assert.Contains(t, output, "Scanned:")
	assert.Contains(t, output, "2 files, 3 dirs")
	assert.Contains(t, output, "Folders:")
	assert.Contains(t, output, "Total:")
}

func TestPrettyFormatter_Format_ContainsRows(t *testing.T) {
	formatter := &PrettyFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, tableReport())
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "SIZE")
	assert.Contains(t, output, "PATH")
	assert.Contains(t, output, "3.0 KiB")
	assert.Contains(t, output, "docs")
	assert.Contains(t, output, "empty")
}

func TestPrettyFormatter_Format_EmptyReport(t *testing.T) {
	formatter := &PrettyFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, &Report{Root: "/data"})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "No directories to report")
}

func TestPrettyFormatter_Format_InterruptedBanner(t *testing.T) {
	formatter := &PrettyFormatter{}

	rep := Build(sampleResult(), Options{})
	var buf bytes.Buffer
	require.NoError(t, formatter.Format(&buf, rep))
	assert.NotContains(t, buf.String(), "Scan interrupted")

	rep.Interrupted = true
	buf.Reset()
	require.NoError(t, formatter.Format(&buf, rep))
	assert.Contains(t, buf.String(), "Scan interrupted, results are partial")
}

func TestPrettyFormatter_Format_Warnings(t *testing.T) {
	formatter := &PrettyFormatter{}
	var buf bytes.Buffer

	rep := Build(sampleResult(), Options{})
	rep.Warnings = []string{"/data/locked: permission denied"}

	err := formatter.Format(&buf, rep)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Warnings:")
	assert.Contains(t, output, "/data/locked: permission denied")
}

func TestPrettyFormatter_Registration(t *testing.T) {
	formatter, err := Get("pretty")
	require.NoError(t, err)
	assert.IsType(t, &PrettyFormatter{}, formatter)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{"zero", 0, "0ms"},
		{"milliseconds", 500 * time.Millisecond, "500ms"},
		{"seconds", 2500 * time.Millisecond, "2.5s"},
		{"minutes", 90 * time.Second, "1m 30s"},
		{"hours", 65 * time.Minute, "1h 5m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.duration))
		})
	}
}

func TestPadLeft(t *testing.T) {
	assert.Equal(t, "   abc", padLeft("abc", 6))
	assert.Equal(t, "abc", padLeft("abc", 3))
	assert.Equal(t, "abc", padLeft("abc", 2))
}
