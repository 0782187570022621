// RAM and swap usage collector.
// Uses gopsutil for cross-platform memory accounting.
package collector

import (
	"context"
	"math"

	"github.com/shirou/gopsutil/v3/mem"
)

// MemoryResult holds the collected memory usage percentages.
type MemoryResult struct {
	RAMPct  int
	SwapPct int
}

// usagePercent computes round(100 × used / total). A zero total means the
// resource does not exist (e.g. no swap configured) and yields 0.
func usagePercent(used, total uint64) int {
	if total == 0 {
		return 0
	}
	return clampPct(int(math.Round(100 * float64(used) / float64(total))))
}

// MemoryCollector collects RAM and swap usage.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Name returns the collector identifier.
func (c *MemoryCollector) Name() string { return "memory" }

// Collect gathers RAM and swap usage percentages. A failing swap read
// degrades to 0 rather than failing the whole collection.
func (c *MemoryCollector) Collect(ctx context.Context) (interface{}, error) {
	v, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, err
	}

	result := MemoryResult{RAMPct: usagePercent(v.Used, v.Total)}

	if s, err := mem.SwapMemoryWithContext(ctx); err == nil {
		result.SwapPct = usagePercent(s.Used, s.Total)
	}

	return result, nil
}

// IsAvailable returns true — memory metrics are available on all platforms.
func (c *MemoryCollector) IsAvailable() bool { return true }
