package collector

import "testing"

func TestUsagePercent(t *testing.T) {
	tests := []struct {
		used, total uint64
		want        int
	}{
		{850, 1000, 85},
		{0, 1000, 0},
		{1000, 1000, 100},
		{1, 3, 33},
		{2, 3, 67},
	}
	for _, tt := range tests {
		if got := usagePercent(tt.used, tt.total); got != tt.want {
			t.Errorf("usagePercent(%d, %d) = %d, want %d", tt.used, tt.total, got, tt.want)
		}
	}
}

func TestUsagePercentNoSwapConfigured(t *testing.T) {
	// total == 0 means the resource does not exist; must be 0, not a panic.
	if got := usagePercent(0, 0); got != 0 {
		t.Errorf("usagePercent(0, 0) = %d, want 0", got)
	}
	if got := usagePercent(500, 0); got != 0 {
		t.Errorf("usagePercent(500, 0) = %d, want 0", got)
	}
}
