// Network traffic collector — cumulative RX/TX byte counters for the
// aggregate interface. Reported as informational counts, not alerted on.
package collector

import (
	"context"

	"github.com/shirou/gopsutil/v3/net"
)

// NetworkResult holds the collected network counters.
type NetworkResult struct {
	Rx uint64
	Tx uint64
}

// NetworkCollector collects cumulative network I/O counters.
type NetworkCollector struct{}

// NewNetworkCollector creates a new network collector.
func NewNetworkCollector() *NetworkCollector {
	return &NetworkCollector{}
}

// Name returns the collector identifier.
func (c *NetworkCollector) Name() string { return "network" }

// Collect gathers the aggregate RX/TX byte counters since boot.
func (c *NetworkCollector) Collect(ctx context.Context) (interface{}, error) {
	counters, err := net.IOCountersWithContext(ctx, false)
	if err != nil {
		return nil, err
	}
	if len(counters) == 0 {
		return NetworkResult{}, nil
	}
	return NetworkResult{
		Rx: counters[0].BytesRecv,
		Tx: counters[0].BytesSent,
	}, nil
}

// IsAvailable returns true — network counters are available on all platforms.
func (c *NetworkCollector) IsAvailable() bool { return true }
