package collector

import (
	"context"
	"errors"
	"testing"

	"github.com/hostsentry/hostsentry/internal/models"
)

// stubCollector returns canned data or an error.
type stubCollector struct {
	name      string
	data      interface{}
	err       error
	available bool
}

func (s stubCollector) Name() string { return s.name }
func (s stubCollector) Collect(ctx context.Context) (interface{}, error) {
	return s.data, s.err
}
func (s stubCollector) IsAvailable() bool { return s.available }

func TestSampleAssemblesResults(t *testing.T) {
	s := NewSampler(nil)
	s.Register(stubCollector{name: "cpu", data: 42, available: true})
	s.Register(stubCollector{name: "memory", data: MemoryResult{RAMPct: 60, SwapPct: 10}, available: true})
	s.Register(stubCollector{name: "disk", data: 55, available: true})
	s.Register(stubCollector{name: "temperature", data: 48, available: true})
	s.Register(stubCollector{name: "host", data: HostResult{Hostname: "box", UptimeSeconds: 120}, available: true})

	snap := s.Sample(context.Background())

	if snap.CPUPct != 42 || snap.RAMPct != 60 || snap.SwapPct != 10 || snap.DiskPct != 55 {
		t.Errorf("unexpected percentages: %+v", snap)
	}
	if snap.TempC != 48 {
		t.Errorf("TempC = %d, want 48", snap.TempC)
	}
	if snap.Hostname != "box" || snap.UptimeSeconds != 120 {
		t.Errorf("host info not assembled: %+v", snap)
	}
	if snap.Timestamp.IsZero() {
		t.Error("snapshot missing timestamp")
	}
}

func TestSampleAbsorbsCollectorFailure(t *testing.T) {
	s := NewSampler(nil)
	s.Register(stubCollector{name: "cpu", err: errors.New("unreadable"), available: true})
	s.Register(stubCollector{name: "disk", data: 70, available: true})

	snap := s.Sample(context.Background())

	// The failed metric degrades to its unknown value; the cycle completes.
	if snap.CPUPct != 0 {
		t.Errorf("CPUPct = %d, want unknown value 0", snap.CPUPct)
	}
	if snap.DiskPct != 70 {
		t.Errorf("DiskPct = %d, want 70 despite the earlier failure", snap.DiskPct)
	}
}

func TestSampleUnknownValues(t *testing.T) {
	snap := NewSampler(nil).Sample(context.Background())

	if snap.TempC != models.TempUnknown {
		t.Errorf("TempC = %d, want the unknown sentinel", snap.TempC)
	}
	if snap.LatencyMs != models.LatencyUnknown {
		t.Errorf("LatencyMs = %v, want the unknown sentinel", snap.LatencyMs)
	}
	if snap.CPUPct != 0 || snap.RAMPct != 0 || snap.SwapPct != 0 || snap.DiskPct != 0 {
		t.Errorf("unsampled percentages must be 0: %+v", snap)
	}
}

func TestRegisterSkipsUnavailable(t *testing.T) {
	s := NewSampler(nil)
	s.Register(stubCollector{name: "cpu", data: 99, available: false})

	snap := s.Sample(context.Background())
	if snap.CPUPct != 0 {
		t.Errorf("unavailable collector still ran: CPUPct = %d", snap.CPUPct)
	}
}
