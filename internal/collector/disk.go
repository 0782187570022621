// Disk usage collector — percent-full for the root filesystem.
package collector

import (
	"context"
	"math"

	"github.com/shirou/gopsutil/v3/disk"
)

// DiskCollector collects usage for a single mount point.
type DiskCollector struct {
	mount string
}

// NewDiskCollector creates a disk collector for the root filesystem.
func NewDiskCollector() *DiskCollector {
	return &DiskCollector{mount: "/"}
}

// Name returns the collector identifier.
func (c *DiskCollector) Name() string { return "disk" }

// Collect returns the percent-full figure for the mount point as an int.
func (c *DiskCollector) Collect(ctx context.Context) (interface{}, error) {
	usage, err := disk.UsageWithContext(ctx, c.mount)
	if err != nil {
		return nil, err
	}
	return clampPct(int(math.Round(usage.UsedPercent))), nil
}

// IsAvailable returns true — disk metrics are available on all platforms.
func (c *DiskCollector) IsAvailable() bool { return true }
