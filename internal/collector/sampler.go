package collector

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hostsentry/hostsentry/internal/models"
)

// Sampler runs all registered collectors in order and assembles a Snapshot.
// Collection is sequential: a cycle is a single logical thread of control
// and the CPU delta window dominates its wall-clock cost anyway.
//
// A failing collector degrades its metric to the unknown value; the cycle
// always completes and nothing is retried within the same cycle.
type Sampler struct {
	collectors []Collector
	logger     *zap.Logger
}

// NewSampler creates an empty Sampler with the given logger.
func NewSampler(logger *zap.Logger) *Sampler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sampler{logger: logger}
}

// Register adds a collector if it's available on the current platform.
// Unavailable collectors are logged and skipped.
func (s *Sampler) Register(c Collector) {
	if !c.IsAvailable() {
		s.logger.Warn("Collector not available, skipping", zap.String("name", c.Name()))
		return
	}
	s.collectors = append(s.collectors, c)
	s.logger.Debug("Registered collector", zap.String("name", c.Name()))
}

// Sample runs every collector once and assembles the results. Failed
// collectors are logged; their metrics keep the unknown value.
func (s *Sampler) Sample(ctx context.Context) models.Snapshot {
	results := make(map[string]interface{}, len(s.collectors))
	for _, c := range s.collectors {
		data, err := c.Collect(ctx)
		if err != nil {
			s.logger.Debug("Collection failed",
				zap.String("collector", c.Name()),
				zap.Error(err))
			continue
		}
		results[c.Name()] = data
	}
	return s.assembleSnapshot(results)
}

// assembleSnapshot maps collector results into a Snapshot. Metrics without
// a result keep their unknown value: 0 for percentages and counts, the
// sentinel for temperature and latency.
func (s *Sampler) assembleSnapshot(results map[string]interface{}) models.Snapshot {
	snap := models.Snapshot{
		Timestamp: time.Now(),
		TempC:     models.TempUnknown,
		LatencyMs: models.LatencyUnknown,
	}

	if data, ok := results["cpu"]; ok {
		if pct, ok := data.(int); ok {
			snap.CPUPct = pct
		}
	}

	if data, ok := results["memory"]; ok {
		if m, ok := data.(MemoryResult); ok {
			snap.RAMPct = m.RAMPct
			snap.SwapPct = m.SwapPct
		}
	}

	if data, ok := results["disk"]; ok {
		if pct, ok := data.(int); ok {
			snap.DiskPct = pct
		}
	}

	if data, ok := results["temperature"]; ok {
		if t, ok := data.(int); ok {
			snap.TempC = t
		}
	}

	if data, ok := results["network"]; ok {
		if n, ok := data.(NetworkResult); ok {
			snap.NetRxBytes = n.Rx
			snap.NetTxBytes = n.Tx
		}
	}

	if data, ok := results["syslog"]; ok {
		if count, ok := data.(int); ok {
			snap.SyslogErrors = count
		}
	}

	if data, ok := results["host"]; ok {
		if h, ok := data.(HostResult); ok {
			snap.Hostname = h.Hostname
			snap.UptimeSeconds = h.UptimeSeconds
		}
	}

	if data, ok := results["latency"]; ok {
		if ms, ok := data.(float64); ok {
			snap.LatencyMs = ms
		}
	}

	return snap
}
