// Package disk reports capacity of the filesystem holding a path.
package disk

// Usage describes filesystem capacity in bytes.
type Usage struct {
	// Total is the size of the filesystem.
	Total int64

	// Free is the space available to unprivileged users.
	Free int64

	// Used is the space consumed, including reserved blocks.
	Used int64
}

// UsedPercent returns the used fraction of the filesystem as a
// percentage, or zero for an empty or unknown filesystem.
func (u Usage) UsedPercent() float64 {
	if u.Total <= 0 {
		return 0
	}
	return float64(u.Used) / float64(u.Total) * 100
}
