package report

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/types"
)

// yamlOutput represents the full YAML output structure.
type yamlOutput struct {
	Folders []yamlFolder `yaml:"folders"`
	Stats   yamlStats    `yaml:"stats"`
	Meta    yamlMeta     `yaml:"meta"`
}

// yamlFolder represents a directory in YAML output.
type yamlFolder struct {
	Path      string `yaml:"path"`
	Size      int64  `yaml:"size"`
	SizeHuman string `yaml:"size_human"`
}

// yamlStats represents scan statistics in YAML output.
type yamlStats struct {
	TotalFiles int64   `yaml:"total_files"`
	TotalDirs  int64   `yaml:"total_dirs"`
	TotalSize  int64   `yaml:"total_size"`
	Duration   string  `yaml:"duration"`
	ScanRate   float64 `yaml:"scan_rate"`
}

// yamlMeta represents metadata in YAML output.
type yamlMeta struct {
	Root         string   `yaml:"root"`
	TotalFolders int      `yaml:"total_folders"`
	Warnings     []string `yaml:"warnings,omitempty"`
	Interrupted  bool     `yaml:"interrupted"`
}

// YAMLFormatter formats a report as YAML.
// It produces the same structure as JSONFormatter but in YAML format.
type YAMLFormatter struct{}

// Format writes the formatted report to the buffer.
func (f *YAMLFormatter) Format(w *bytes.Buffer, r *Report) error {
	output := f.buildOutput(r)

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(output); err != nil {
		return err
	}
	return encoder.Close()
}

// buildOutput converts a Report to the YAML output structure.
func (f *YAMLFormatter) buildOutput(r *Report) yamlOutput {
	folders := make([]yamlFolder, len(r.Rows))
	for i, row := range r.Rows {
		folders[i] = yamlFolder{
			Path:      row.Path,
			Size:      row.Size,
			SizeHuman: types.FormatSize(row.Size),
		}
	}

	stats := yamlStats{
		TotalFiles: r.Stats.TotalFiles,
		TotalDirs:  r.Stats.TotalDirs,
		TotalSize:  r.Stats.TotalSize,
		Duration:   formatDurationString(r.Stats.Duration()),
		ScanRate:   r.Stats.ScanRate(),
	}

	meta := yamlMeta{
		Root:         r.Root,
		TotalFolders: len(r.Rows),
		Warnings:     r.Warnings,
		Interrupted:  r.Interrupted,
	}

	return yamlOutput{
		Folders: folders,
		Stats:   stats,
		Meta:    meta,
	}
}

func init() {
	Register("yaml", func() Formatter {
		return &YAMLFormatter{}
	})
}

// Ensure YAMLFormatter implements Formatter.
var _ Formatter = (*YAMLFormatter)(nil)
