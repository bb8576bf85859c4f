package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/types"
)

// CSVFormatter formats a report as comma-separated values with proper
// quoting. It uses encoding/csv for RFC 4180 compliant output.
//
// This is the default report format: a "Folder Path,Size" header
// followed by one row per directory with a human-readable size.
type CSVFormatter struct{}

// Format writes the formatted report to the buffer.
func (f *CSVFormatter) Format(w *bytes.Buffer, r *Report) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Folder Path", "Size"}); err != nil {
		return err
	}

	for _, row := range r.Rows {
		if err := writer.Write([]string{row.Path, types.FormatSize(row.Size)}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func init() {
	Register("csv", func() Formatter {
		return &CSVFormatter{}
	})
}

// Ensure CSVFormatter implements Formatter.
var _ Formatter = (*CSVFormatter)(nil)

// TSVFormatter formats a report as tab-separated values.
// It produces a simple table with a header row followed by data rows.
type TSVFormatter struct{}

// Format writes the formatted report to the buffer.
func (f *TSVFormatter) Format(w *bytes.Buffer, r *Report) error {
	w.WriteString("SIZE\tPATH\n")

	for _, row := range r.Rows {
		fmt.Fprintf(w, "%s\t%s\n", types.FormatSize(row.Size), row.Path)
	}

	return nil
}

func init() {
	Register("tsv", func() Formatter {
		return &TSVFormatter{}
	})
}

// Ensure TSVFormatter implements Formatter.
var _ Formatter = (*TSVFormatter)(nil)

// MarkdownFormatter formats a report as a GitHub-flavored Markdown table.
// It produces a table with header, separator, and data rows using | delimiters.
type MarkdownFormatter struct{}

// Format writes the formatted report to the buffer.
func (f *MarkdownFormatter) Format(w *bytes.Buffer, r *Report) error {
	w.WriteString("| SIZE | PATH |\n")
	w.WriteString("|------|------|\n")

	for _, row := range r.Rows {
		// Escape pipes in the path
		escapedPath := escapeMarkdownPipe(row.Path)
		fmt.Fprintf(w, "| %s | %s |\n", types.FormatSize(row.Size), escapedPath)
	}

	return nil
}

// escapeMarkdownPipe escapes pipe characters in a string for Markdown tables.
func escapeMarkdownPipe(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func init() {
	Register("markdown", func() Formatter {
		return &MarkdownFormatter{}
	})
}

// Ensure MarkdownFormatter implements Formatter.
var _ Formatter = (*MarkdownFormatter)(nil)
