package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/types"
)

// PrettyFormatter formats a report with colors and styling using lipgloss.
// It produces a visually appealing output suitable for terminal display.
type PrettyFormatter struct{}

// Format writes the formatted report to the buffer.
func (f *PrettyFormatter) Format(w *bytes.Buffer, r *Report) error {
	header := f.formatHeader(r)
	w.WriteString(header)
	w.WriteString("\n")

	table := f.formatTable(r)
	w.WriteString(table)

	footer := f.formatFooter(r)
	w.WriteString(footer)

	if len(r.Warnings) > 0 {
		warnings := f.formatWarnings(r.Warnings)
		w.WriteString("\n")
		w.WriteString(warnings)
	}

	return nil
}

// formatHeader builds the header box with scan metadata.
func (f *PrettyFormatter) formatHeader(r *Report) string {
	var lines []string

	rootLabel := LabelStyle.Render("Root:")
	rootValue := ValueStyle.Render(r.Root)
	lines = append(lines, fmt.Sprintf("%s %s", rootLabel, rootValue))

	scannedLabel := LabelStyle.Render("Scanned:")
	scannedValue := ValueStyle.Render(fmt.Sprintf("%s files, %s dirs in %s",
		humanize.Comma(r.Stats.TotalFiles),
		humanize.Comma(r.Stats.TotalDirs),
		formatDuration(r.Stats.Duration())))
	lines = append(lines, fmt.Sprintf("%s %s", scannedLabel, scannedValue))

	if r.Interrupted {
		interruptedStyle := WarningStyle.Bold(true)
		lines = append(lines, interruptedStyle.Render("Scan interrupted, results are partial"))
	}

	content := strings.Join(lines, "\n")
	return HeaderBox.Render(content)
}

// formatTable builds the directory table with SIZE and PATH columns.
func (f *PrettyFormatter) formatTable(r *Report) string {
	if len(r.Rows) == 0 {
		return MutedStyle.Render("  No directories to report\n")
	}

	var sb strings.Builder

	sizeHeader := TableHeaderStyle.Render("SIZE")
	pathHeader := TableHeaderStyle.Render("PATH")
	sb.WriteString(fmt.Sprintf("  %s  %s\n", sizeHeader, pathHeader))

	// Calculate max size width for alignment
	maxSizeWidth := 0
	for _, row := range r.Rows {
		if n := len(types.FormatSize(row.Size)); n > maxSizeWidth {
			maxSizeWidth = n
		}
	}
	if maxSizeWidth < 8 {
		maxSizeWidth = 8 // Minimum width
	}

	for _, row := range r.Rows {
		sizeStr := SizeStyle.Render(padLeft(types.FormatSize(row.Size), maxSizeWidth))
		pathStr := PathStyle.Render(row.Path)
		sb.WriteString(fmt.Sprintf("  %s  %s\n", sizeStr, pathStr))
	}

	return sb.String()
}

// formatFooter builds the footer box with summary information.
func (f *PrettyFormatter) formatFooter(r *Report) string {
	var parts []string

	folderCountLabel := LabelStyle.Render("Folders:")
	folderCountValue := ValueStyle.Render(fmt.Sprintf("%d", len(r.Rows)))
	parts = append(parts, fmt.Sprintf("%s %s", folderCountLabel, folderCountValue))

	totalSizeLabel := LabelStyle.Render("Total:")
	totalSizeValue := SizeStyle.Render(types.FormatSize(r.Stats.TotalSize))
	parts = append(parts, fmt.Sprintf("%s %s", totalSizeLabel, totalSizeValue))

	hint := MutedStyle.Render("Use -f plain for unformatted output")
	parts = append(parts, hint)

	content := strings.Join(parts, "  ")
	return FooterBox.Render(content)
}

// formatWarnings builds a warning block.
func (f *PrettyFormatter) formatWarnings(warnings []string) string {
	var sb strings.Builder

	titleStyle := WarningStyle.Bold(true)
	sb.WriteString(titleStyle.Render("Warnings:"))
	sb.WriteString("\n")

	for _, warning := range warnings {
		sb.WriteString(WarningStyle.Render("  " + warning))
		sb.WriteString("\n")
	}

	return sb.String()
}

// padLeft pads a string with spaces on the left to achieve the desired width.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// formatDuration formats a time.Duration as a human-friendly string.
func formatDuration(d time.Duration) string {
	sec := d.Seconds()
	if sec < 1 {
		return fmt.Sprintf("%.0fms", sec*1000)
	}
	if sec < 60 {
		return fmt.Sprintf("%.1fs", sec)
	}
	minutes := int(sec) / 60
	seconds := int(sec) % 60
	if minutes < 60 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	hours := minutes / 60
	minutes = minutes % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

func init() {
	factory := func() Formatter {
		return &PrettyFormatter{}
	}
	Register("pretty", factory)
	// The styled output is also the "table" format.
	Register("table", factory)
}

// Ensure PrettyFormatter implements Formatter.
var _ Formatter = (*PrettyFormatter)(nil)
