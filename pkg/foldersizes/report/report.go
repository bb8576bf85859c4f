// Package report turns scan results into folder-size reports in various
// output formats (csv, plain, json, yaml, etc.) and renders the console
// scan summary.
//
// The package uses a registry pattern to allow registration of multiple
// formatter implementations that can be selected at runtime.
//
// Basic usage:
//
//	rep := report.Build(result, report.Options{})
//	formatter, err := report.Get("csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	var buf bytes.Buffer
//	if err := formatter.Format(&buf, rep); err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("folder_sizes.csv", buf.Bytes(), 0o644)
package report

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/logging"
	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/types"
)

// Row is one directory entry in a report. Path is relative to the scan
// root, with types.RootKey standing in for the root itself, and Size is
// the directory's cumulative size in bytes.
type Row struct {
	Path string
	Size int64
}

// Report contains the presentation form of a scan result: filtered,
// ordered rows plus the scan totals and metadata formatters render.
type Report struct {
	// Root is the absolute path that was scanned.
	Root string

	// Rows holds one entry per reported directory, the root first and
	// the rest in ascending path order.
	Rows []Row

	// Stats contains the scan totals and timing.
	Stats types.ScanStats

	// Interrupted indicates the scan was cancelled before completion.
	Interrupted bool

	// Warnings contains human-readable messages for paths the scan
	// could not read.
	Warnings []string
}

// Options controls which rows of a result make it into the report.
type Options struct {
	// TopLevel keeps only the root and its direct children.
	TopLevel bool

	// MinSize drops rows whose cumulative size is below this many bytes.
	MinSize int64
}

// Build converts a scan result into a report, applying the row filters
// and the canonical ordering: the root first, then paths ascending.
func Build(result *types.Result, opts Options) *Report {
	rows := make([]Row, 0, len(result.Sizes))
	for path, size := range result.Sizes {
		if opts.TopLevel && !isTopLevel(path) {
			continue
		}
		if size < opts.MinSize {
			continue
		}
		rows = append(rows, Row{Path: path, Size: size})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Path == types.RootKey {
			return rows[j].Path != types.RootKey
		}
		if rows[j].Path == types.RootKey {
			return false
		}
		return rows[i].Path < rows[j].Path
	})

	warnings := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		warnings = append(warnings, fmt.Sprintf("%s: %s", e.Path, e.Error))
	}

	logging.Get("report").Debug("report built",
		"rows", len(rows),
		"filtered", len(result.Sizes)-len(rows),
		"warnings", len(warnings))

	return &Report{
		Root:        result.Root,
		Rows:        rows,
		Stats:       result.Stats,
		Interrupted: result.Interrupted,
		Warnings:    warnings,
	}
}

// isTopLevel reports whether path is the root or one of its direct
// children.
func isTopLevel(path string) bool {
	return path == types.RootKey || !strings.ContainsRune(path, filepath.Separator)
}

// Formatter is the interface that all report formatters must implement.
type Formatter interface {
	// Format writes the formatted report to the buffer.
	// It returns an error if formatting fails.
	Format(w *bytes.Buffer, r *Report) error
}

// FormatterFactory is a function that creates a new Formatter instance.
type FormatterFactory func() Formatter

// Registry manages formatter registration and lookup.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]FormatterFactory
}

// NewRegistry creates a new formatter registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]FormatterFactory),
	}
}

// Register adds a formatter factory to the registry.
// It will replace any existing formatter with the same name.
func (r *Registry) Register(name string, factory FormatterFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get returns a new formatter instance by name.
// It returns an error if the formatter is not found.
func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown formatter: %s", name)
	}
	return factory(), nil
}

// Available returns a sorted list of all registered formatter names.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter factory to the default registry.
func Register(name string, factory FormatterFactory) {
	DefaultRegistry.Register(name, factory)
}

// Get returns a new formatter instance from the default registry.
func Get(name string) (Formatter, error) {
	return DefaultRegistry.Get(name)
}

// Available returns all formatter names from the default registry.
func Available() []string {
	return DefaultRegistry.Available()
}
