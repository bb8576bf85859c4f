package scanner

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/types"
)

// rollUp converts direct sizes into cumulative subtree sizes in place.
// Paths are processed deepest first, ordered by separator count, so a
// directory's own total is complete before it is added to its parent.
// Runs single-threaded after all workers have exited.
//
// The parent-presence check keeps the accumulation inside the scanned
// tree: the root's parent is never in the map, and an interrupted scan
// can leave a directory whose parent's batch was never flushed.
func rollUp(sizes map[string]int64) {
	paths := make([]string, 0, len(sizes))
	for path := range sizes {
		paths = append(paths, path)
	}

	sep := string(filepath.Separator)
	sort.Slice(paths, func(i, j int) bool {
		di, dj := strings.Count(paths[i], sep), strings.Count(paths[j], sep)
		if di != dj {
			return di > dj
		}
		return paths[i] < paths[j]
	})

	for _, path := range paths {
		parent := filepath.Dir(path)
		if parent == path {
			// Filesystem root is its own parent.
			continue
		}
		if _, ok := sizes[parent]; ok {
			sizes[parent] += sizes[path]
		}
	}
}

// relativeSizes re-keys the rolled-up sizes relative to the scan root.
// The root's own total appears under types.RootKey.
func (s *Scanner) relativeSizes() map[string]int64 {
	out := make(map[string]int64, len(s.sizes))
	for path, size := range s.sizes {
		out[s.relKey(path)] = size
	}
	return out
}

func (s *Scanner) relKey(path string) string {
	if path == s.root {
		return types.RootKey
	}
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return path
	}
	return rel
}
