package report

import (
	"bytes"
	"text/tabwriter"

	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/types"
)

// PlainFormatter formats a report as a simple aligned table.
// It produces plain text output suitable for scripting and piping.
// No colors or styling are applied.
type PlainFormatter struct{}

// Format writes the formatted report to the buffer.
func (f *PlainFormatter) Format(w *bytes.Buffer, r *Report) error {
	// Use tabwriter for aligned columns
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)

	_, err := tw.Write([]byte("SIZE\tPATH\n"))
	if err != nil {
		return err
	}

	for _, row := range r.Rows {
		_, err := tw.Write([]byte(types.FormatSize(row.Size) + "\t" + row.Path + "\n"))
		if err != nil {
			return err
		}
	}

	// Flush tabwriter to buffer
	return tw.Flush()
}

func init() {
	Register("plain", func() Formatter {
		return &PlainFormatter{}
	})
}

// Ensure PlainFormatter implements Formatter.
var _ Formatter = (*PlainFormatter)(nil)
