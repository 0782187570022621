// CPU usage collector — derives utilization from a delta of cumulative
// counters across a fixed sampling window. An instantaneous reading would
// only reflect scheduler noise, so two reads of the system-wide aggregate
// line are taken one window apart.
package collector

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
)

// defaultCPUWindow separates the two counter reads. This is the one
// deliberate suspension point inside a sampling cycle.
const defaultCPUWindow = time.Second

// cpuCounters holds one read of the cumulative system-wide CPU counters,
// in seconds of CPU time.
type cpuCounters struct {
	User, Nice, System, Idle, Iowait, Irq, Softirq, Steal float64
}

func (c cpuCounters) total() float64 {
	return c.User + c.Nice + c.System + c.Idle + c.Iowait + c.Irq + c.Softirq + c.Steal
}

func (c cpuCounters) idleTotal() float64 {
	return c.Idle + c.Iowait
}

// usageFromDelta computes utilization percent from two counter reads:
// 100 − round(100 × Δidle_total / Δtotal), clamped to [0,100].
// A non-positive total delta yields 0.
func usageFromDelta(prev, cur cpuCounters) int {
	total := cur.total() - prev.total()
	if total <= 0 {
		return 0
	}
	idle := cur.idleTotal() - prev.idleTotal()
	return clampPct(100 - int(math.Round(100*idle/total)))
}

// CPUCollector collects overall CPU utilization.
type CPUCollector struct {
	window time.Duration
}

// NewCPUCollector creates a new CPU collector using the default window.
func NewCPUCollector() *CPUCollector {
	return &CPUCollector{window: defaultCPUWindow}
}

// Name returns the collector identifier.
func (c *CPUCollector) Name() string { return "cpu" }

// Collect reads the aggregate counters twice, one window apart, and returns
// the utilization percent as an int. It blocks for the window duration.
func (c *CPUCollector) Collect(ctx context.Context) (interface{}, error) {
	first, err := readCPUCounters(ctx)
	if err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(c.window):
	}

	second, err := readCPUCounters(ctx)
	if err != nil {
		return nil, err
	}

	return usageFromDelta(first, second), nil
}

// IsAvailable returns true — CPU counters are available on all platforms.
func (c *CPUCollector) IsAvailable() bool { return true }

func readCPUCounters(ctx context.Context) (cpuCounters, error) {
	times, err := cpu.TimesWithContext(ctx, false)
	if err != nil {
		return cpuCounters{}, err
	}
	if len(times) == 0 {
		return cpuCounters{}, errors.New("no aggregate cpu counters")
	}
	t := times[0]
	return cpuCounters{
		User:    t.User,
		Nice:    t.Nice,
		System:  t.System,
		Idle:    t.Idle,
		Iowait:  t.Iowait,
		Irq:     t.Irq,
		Softirq: t.Softirq,
		Steal:   t.Steal,
	}, nil
}
