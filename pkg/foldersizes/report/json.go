package report

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/types"
)

// jsonOutput represents the full JSON output structure.
type jsonOutput struct {
	Folders []jsonFolder `json:"folders"`
	Stats   jsonStats    `json:"stats"`
	Meta    jsonMeta     `json:"meta"`
}

// jsonFolder represents a directory in JSON output.
type jsonFolder struct {
	Path      string `json:"path"`
	Size      int64  `json:"size"`
	SizeHuman string `json:"size_human"`
}

// jsonStats represents scan statistics in JSON output.
type jsonStats struct {
	TotalFiles int64   `json:"total_files"`
	TotalDirs  int64   `json:"total_dirs"`
	TotalSize  int64   `json:"total_size"`
	Duration   string  `json:"duration"`
	ScanRate   float64 `json:"scan_rate"`
}

// jsonMeta represents metadata in JSON output.
type jsonMeta struct {
	Root         string   `json:"root"`
	TotalFolders int      `json:"total_folders"`
	Warnings     []string `json:"warnings,omitempty"`
	Interrupted  bool     `json:"interrupted"`
}

// JSONFormatter formats a report as a single indented JSON object.
// It produces a complete JSON document with folders, stats, and meta
// sections.
type JSONFormatter struct{}

// Format writes the formatted report to the buffer.
func (f *JSONFormatter) Format(w *bytes.Buffer, r *Report) error {
	output := f.buildOutput(r)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildOutput converts a Report to the JSON output structure.
func (f *JSONFormatter) buildOutput(r *Report) jsonOutput {
	folders := make([]jsonFolder, len(r.Rows))
	for i, row := range r.Rows {
		folders[i] = jsonFolder{
			Path:      row.Path,
			Size:      row.Size,
			SizeHuman: types.FormatSize(row.Size),
		}
	}

	stats := jsonStats{
		TotalFiles: r.Stats.TotalFiles,
		TotalDirs:  r.Stats.TotalDirs,
		TotalSize:  r.Stats.TotalSize,
		Duration:   formatDurationString(r.Stats.Duration()),
		ScanRate:   r.Stats.ScanRate(),
	}

	meta := jsonMeta{
		Root:         r.Root,
		TotalFolders: len(r.Rows),
		Warnings:     r.Warnings,
		Interrupted:  r.Interrupted,
	}

	return jsonOutput{
		Folders: folders,
		Stats:   stats,
		Meta:    meta,
	}
}

// formatDurationString formats a duration as a string for JSON output.
func formatDurationString(d time.Duration) string {
	if d == 0 {
		return ""
	}
	return d.String()
}

func init() {
	Register("json", func() Formatter {
		return &JSONFormatter{}
	})
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)

// JSONLFormatter formats a report as newline-delimited JSON (one object
// per line). Each directory is written as a compact JSON object on its
// own line. This format is suitable for streaming processing with tools
// like jq.
type JSONLFormatter struct{}

// Format writes the formatted report to the buffer.
func (f *JSONLFormatter) Format(w *bytes.Buffer, r *Report) error {
	for _, row := range r.Rows {
		jf := jsonFolder{
			Path:      row.Path,
			Size:      row.Size,
			SizeHuman: types.FormatSize(row.Size),
		}

		data, err := json.Marshal(jf)
		if err != nil {
			return err
		}
		w.Write(data)
		w.WriteByte('\n')
	}
	return nil
}

func init() {
	Register("jsonl", func() Formatter {
		return &JSONLFormatter{}
	})
}

// Ensure JSONLFormatter implements Formatter.
var _ Formatter = (*JSONLFormatter)(nil)
