package scanner

import "testing"

// TestRollUp verifies direct sizes become cumulative subtree sizes.
func TestRollUp(t *testing.T) {
	tests := []struct {
		name  string
		sizes map[string]int64
		want  map[string]int64
	}{
		{
			name: "single child",
			sizes: map[string]int64{
				"/scan":     100,
				"/scan/sub": 50,
			},
			want: map[string]int64{
				"/scan":     150,
				"/scan/sub": 50,
			},
		},
		{
			name: "deep chain",
			sizes: map[string]int64{
				"/r":     1,
				"/r/a":   2,
				"/r/a/b": 4,
			},
			want: map[string]int64{
				"/r":     7,
				"/r/a":   6,
				"/r/a/b": 4,
			},
		},
		{
			name: "siblings",
			sizes: map[string]int64{
				"/r":   0,
				"/r/a": 5,
				"/r/b": 7,
			},
			want: map[string]int64{
				"/r":   12,
				"/r/a": 5,
				"/r/b": 7,
			},
		},
		{
			name: "empty directories",
			sizes: map[string]int64{
				"/r":        0,
				"/r/empty":  0,
				"/r/nested": 0,
			},
			want: map[string]int64{
				"/r":        0,
				"/r/empty":  0,
				"/r/nested": 0,
			},
		},
		{
			name: "missing parent stops propagation",
			sizes: map[string]int64{
				"/r":     1,
				"/r/a/b": 10,
			},
			want: map[string]int64{
				"/r":     1,
				"/r/a/b": 10,
			},
		},
		{
			name: "scan rooted at filesystem root",
			sizes: map[string]int64{
				"/":     5,
				"/home": 3,
			},
			want: map[string]int64{
				"/":     8,
				"/home": 3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rollUp(tt.sizes)
			if len(tt.sizes) != len(tt.want) {
				t.Fatalf("entry count changed: got %d, want %d", len(tt.sizes), len(tt.want))
			}
			for path, want := range tt.want {
				if got := tt.sizes[path]; got != want {
					t.Errorf("sizes[%q] = %d, want %d", path, got, want)
				}
			}
		})
	}
}

// TestRollUpDeterministic verifies repeated roll-ups of equal inputs
// produce equal outputs regardless of map iteration order.
func TestRollUpDeterministic(t *testing.T) {
	build := func() map[string]int64 {
		return map[string]int64{
			"/r":         10,
			"/r/a":       1,
			"/r/a/x":     2,
			"/r/b":       3,
			"/r/b/y":     4,
			"/r/b/y/z":   5,
			"/r/c":       0,
			"/r/deep":    6,
			"/r/deep/p1": 7,
		}
	}

	first := build()
	rollUp(first)

	for i := 0; i < 10; i++ {
		next := build()
		rollUp(next)
		for path, want := range first {
			if got := next[path]; got != want {
				t.Fatalf("run %d: sizes[%q] = %d, want %d", i, path, got, want)
			}
		}
	}
}
