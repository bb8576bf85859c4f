//go:build !linux && !darwin && !freebsd

package disk

import "errors"

// Stat returns capacity information for the filesystem holding path.
// On unsupported platforms it reports an error and callers omit the
// capacity line.
func Stat(path string) (Usage, error) {
	return Usage{}, errors.New("filesystem capacity not supported on this platform")
}
