// Network reachability collector — one unprivileged ping to a public
// resolver, surfaced as a round-trip time in milliseconds.
package collector

import (
	"context"
	"errors"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

// LatencyCollector probes a single target once per cycle.
type LatencyCollector struct {
	target string
}

// NewLatencyCollector creates a latency collector for the given target host.
func NewLatencyCollector(target string) *LatencyCollector {
	return &LatencyCollector{target: target}
}

// Name returns the collector identifier.
func (c *LatencyCollector) Name() string { return "latency" }

// Collect sends one unprivileged probe and returns the round-trip time in
// milliseconds as a float64. No reply within the timeout is an error,
// which the sampler degrades to the unknown value.
func (c *LatencyCollector) Collect(ctx context.Context) (interface{}, error) {
	pinger, err := probing.NewPinger(c.target)
	if err != nil {
		return nil, err
	}
	pinger.Count = 1
	pinger.Timeout = 2 * time.Second
	pinger.SetPrivileged(false)

	if err := pinger.RunWithContext(ctx); err != nil {
		return nil, err
	}

	stats := pinger.Statistics()
	if stats.PacketsRecv == 0 {
		return nil, errors.New("no reply from " + c.target)
	}
	return float64(stats.AvgRtt) / float64(time.Millisecond), nil
}

// IsAvailable returns true when a target is configured.
func (c *LatencyCollector) IsAvailable() bool { return c.target != "" }
