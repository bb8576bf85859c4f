package disk

import (
	"runtime"
	"testing"
)

func TestStat(t *testing.T) {
	switch runtime.GOOS {
	case "linux", "darwin", "freebsd":
	default:
		t.Skipf("no statfs on %s", runtime.GOOS)
	}

	usage, err := Stat(t.TempDir())
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}

	if usage.Total <= 0 {
		t.Errorf("Total = %d, want > 0", usage.Total)
	}
	if usage.Free < 0 {
		t.Errorf("Free = %d, want >= 0", usage.Free)
	}
	if usage.Used < 0 {
		t.Errorf("Used = %d, want >= 0", usage.Used)
	}
	if usage.Free > usage.Total {
		t.Errorf("Free (%d) > Total (%d)", usage.Free, usage.Total)
	}
}

func TestStatMissingPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no statfs on windows")
	}

	_, err := Stat("/does/not/exist")
	if err == nil {
		t.Error("expected error for missing path")
	}
}

func TestUsedPercent(t *testing.T) {
	tests := []struct {
		name  string
		usage Usage
		want  float64
	}{
		{"empty", Usage{}, 0},
		{"half", Usage{Total: 1000, Used: 500}, 50},
		{"full", Usage{Total: 1000, Used: 1000}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.usage.UsedPercent(); got != tt.want {
				t.Errorf("UsedPercent() = %v, want %v", got, tt.want)
			}
		})
	}
}
