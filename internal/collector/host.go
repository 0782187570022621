// Host info collector — hostname and uptime for the report header.
package collector

import (
	"context"

	"github.com/shirou/gopsutil/v3/host"
)

// HostResult holds the collected host identification data.
type HostResult struct {
	Hostname      string
	UptimeSeconds int
}

// HostCollector collects hostname and uptime.
type HostCollector struct{}

// NewHostCollector creates a new host info collector.
func NewHostCollector() *HostCollector {
	return &HostCollector{}
}

// Name returns the collector identifier.
func (c *HostCollector) Name() string { return "host" }

// Collect gathers hostname and uptime in seconds since boot.
func (c *HostCollector) Collect(ctx context.Context) (interface{}, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, err
	}
	return HostResult{
		Hostname:      info.Hostname,
		UptimeSeconds: int(info.Uptime),
	}, nil
}

// IsAvailable returns true — host info is available on all platforms.
func (c *HostCollector) IsAvailable() bool { return true }
