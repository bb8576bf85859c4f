// Package types provides core data types for the folder-sizes scanner.
// It includes structures for scan statistics, results, and errors, along
// with utility functions for parsing and formatting byte sizes.
package types

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Size constants for binary (IEC) units.
const (
	KiB int64 = 1024
	MiB int64 = 1024 * KiB
	GiB int64 = 1024 * MiB
	TiB int64 = 1024 * GiB
)

// RootKey is the key under which the scan root's own cumulative size is
// reported. Every other entry is keyed by its path relative to the root.
const RootKey = "/"

// ScanStats holds the running totals of a scan.
// All counters are logical: file sizes are byte lengths, not disk blocks.
type ScanStats struct {
	// TotalFiles is the number of regular files counted.
	TotalFiles int64 `json:"total_files"`

	// TotalDirs is the number of subdirectories discovered beneath the root.
	// The root itself is not counted.
	TotalDirs int64 `json:"total_dirs"`

	// TotalSize is the sum of all counted file sizes in bytes.
	TotalSize int64 `json:"total_size"`

	// StartTime is when the scan began.
	StartTime time.Time `json:"start_time"`

	// EndTime is when the scan finished draining. Zero while running.
	EndTime time.Time `json:"end_time"`
}

// Duration returns the elapsed scan time. It returns zero if the scan
// has not finished.
func (s *ScanStats) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}

// ScanRate returns the number of entries (files plus directories)
// processed per second, or zero if the duration is not positive.
func (s *ScanStats) ScanRate() float64 {
	d := s.Duration()
	if d <= 0 {
		return 0
	}
	return float64(s.TotalFiles+s.TotalDirs) / d.Seconds()
}

// Result contains the final output of a scan operation.
type Result struct {
	// Root is the absolute path of the scanned directory.
	Root string `json:"root"`

	// Sizes maps root-relative directory paths to cumulative sizes in
	// bytes. The root itself appears under RootKey. A directory's
	// cumulative size includes every file beneath it, transitively.
	Sizes map[string]int64 `json:"sizes"`

	// Stats holds the scan totals and timing.
	Stats ScanStats `json:"stats"`

	// Interrupted reports whether the scan was cancelled before the
	// tree was fully traversed. Sizes and Stats still reflect all work
	// completed before the interruption.
	Interrupted bool `json:"interrupted,omitempty"`

	// Errors contains any errors encountered during scanning.
	Errors []ScanError `json:"errors,omitempty"`
}

// ScanError represents an error encountered during scanning.
// It pairs a path with the error message for debugging and reporting.
type ScanError struct {
	// Path is the file or directory path where the error occurred.
	Path string `json:"path"`

	// Error is the error message describing what went wrong.
	Error string `json:"error"`
}

// Progress reports a point-in-time snapshot of a running scan.
// Successive snapshots are monotonically non-decreasing.
type Progress struct {
	// Files is the number of regular files counted so far.
	Files int64 `json:"files"`

	// Dirs is the number of subdirectories discovered so far.
	Dirs int64 `json:"dirs"`

	// Bytes is the total bytes of all files counted so far.
	Bytes int64 `json:"bytes"`
}

// sizePattern matches size strings like "100M", "2G", "500K", "1.5GB", etc.
var sizePattern = regexp.MustCompile(`(?i)^\s*([0-9]+(?:\.[0-9]+)?)\s*([KMGT]?(?:i?B)?)\s*$`)

// ErrInvalidSize indicates that the size string could not be parsed.
var ErrInvalidSize = errors.New("invalid size format")

// ErrNegativeSize indicates that a negative size value was provided.
var ErrNegativeSize = errors.New("size cannot be negative")

// ParseSize parses a human-readable size string and returns the size in bytes.
// It supports the following formats:
//   - Plain bytes: "1024", "0"
//   - With byte suffix: "512B", "512b"
//   - Kilobytes: "100K", "100k", "100KB", "100KiB"
//   - Megabytes: "50M", "50m", "50MB", "50MiB"
//   - Gigabytes: "2G", "2g", "2GB", "2GiB"
//   - Terabytes: "1T", "1t", "1TB", "1TiB"
//
// Decimal values are supported and truncated to the nearest byte.
// Leading and trailing whitespace is ignored.
//
// Returns ErrInvalidSize if the format is not recognized.
// Returns ErrNegativeSize if the value is negative.
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidSize)
	}

	if strings.HasPrefix(s, "-") {
		return 0, ErrNegativeSize
	}

	matches := sizePattern.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}

	value, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}

	// Strip 'B' or 'iB' to get just the unit letter.
	suffix := strings.ToUpper(matches[2])
	suffix = strings.TrimSuffix(suffix, "IB")
	suffix = strings.TrimSuffix(suffix, "B")

	var multiplier int64
	switch suffix {
	case "":
		multiplier = 1
	case "K":
		multiplier = KiB
	case "M":
		multiplier = MiB
	case "G":
		multiplier = GiB
	case "T":
		multiplier = TiB
	default:
		return 0, fmt.Errorf("%w: unknown suffix %q", ErrInvalidSize, suffix)
	}

	return int64(value * float64(multiplier)), nil
}

// FormatSize converts a size in bytes to a human-readable string.
// It uses binary (IEC) units (KiB, MiB, GiB, TiB) for consistency
// with common filesystem tools.
//
// Examples:
//   - FormatSize(0) returns "0 B"
//   - FormatSize(1024) returns "1.0 KiB"
//   - FormatSize(1536*1024) returns "1.5 MiB"
func FormatSize(bytes int64) string {
	return humanize.IBytes(uint64(bytes))
}
