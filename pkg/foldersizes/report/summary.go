package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/types"
)

// Summary renders the end-of-scan console summary: totals, elapsed
// time, and scan rate, with a warning banner for cancelled scans.
func Summary(r *Report) string {
	lines := []string{
		TitleStyle.Render("Scan Summary:"),
		summaryLine("Total Files:", humanize.Comma(r.Stats.TotalFiles)),
		summaryLine("Total Directories:", humanize.Comma(r.Stats.TotalDirs)),
		fmt.Sprintf("%s %s", LabelStyle.Render("Total Size:"), SizeStyle.Render(types.FormatSize(r.Stats.TotalSize))),
		summaryLine("Scan Time:", fmt.Sprintf("%.2f seconds", r.Stats.Duration().Seconds())),
		summaryLine("Scan Rate:", fmt.Sprintf("%.2f entries/sec", r.Stats.ScanRate())),
	}

	if n := len(r.Warnings); n > 0 {
		lines = append(lines, summaryLine("Errors:", fmt.Sprintf("%d (see log)", n)))
	}

	if r.Interrupted {
		lines = append(lines, WarningStyle.Bold(true).Render("Scan interrupted, results are partial"))
	}

	return FooterBox.Render(strings.Join(lines, "\n"))
}

// summaryLine renders one "Label: value" summary line.
func summaryLine(label, value string) string {
	return fmt.Sprintf("%s %s", LabelStyle.Render(label), ValueStyle.Render(value))
}
