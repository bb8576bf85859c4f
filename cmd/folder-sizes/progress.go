package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/types"
)

// progressPrinter rewrites a single console line with the running file
// count while a scan is in flight.
type progressPrinter struct {
	w         io.Writer
	lastFiles int64
	printed   bool
}

func newProgressPrinter(w io.Writer) *progressPrinter {
	return &progressPrinter{w: w, lastFiles: -1}
}

// update is the scanner's progress callback. The line is only redrawn
// when the file count has changed.
func (p *progressPrinter) update(prog types.Progress) {
	if prog.Files == p.lastFiles {
		return
	}
	p.lastFiles = prog.Files
	p.printed = true
	fmt.Fprintf(p.w, "\rProcessed %s files...", humanize.Comma(prog.Files))
}

// finish terminates the progress line so later output starts cleanly.
func (p *progressPrinter) finish() {
	if p.printed {
		fmt.Fprintln(p.w)
	}
}
