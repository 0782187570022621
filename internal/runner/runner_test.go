package runner

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/hostsentry/hostsentry/internal/config"
	"github.com/hostsentry/hostsentry/internal/models"
	"github.com/hostsentry/hostsentry/internal/monitor"
	"github.com/hostsentry/hostsentry/internal/ranker"
	"github.com/hostsentry/hostsentry/internal/report"
)

// fakeSampler returns a fixed snapshot and counts cycles.
type fakeSampler struct {
	snap    models.Snapshot
	samples int
}

func (f *fakeSampler) Sample(ctx context.Context) models.Snapshot {
	f.samples++
	f.snap.Timestamp = time.Now()
	return f.snap
}

type countingSink struct {
	alerts []models.Alert
}

func (c *countingSink) Name() string { return "counting" }
func (c *countingSink) Notify(a models.Alert) error {
	c.alerts = append(c.alerts, a)
	return nil
}

func newTestRunner(snap models.Snapshot) (*Runner, *fakeSampler, *countingSink, *bytes.Buffer) {
	cfg := config.DefaultConfig()
	sampler := &fakeSampler{snap: snap}
	sink := &countingSink{}
	dispatcher := monitor.NewDispatcher(nil)
	dispatcher.AddSink(sink)

	var buf bytes.Buffer
	r := New(cfg, sampler, dispatcher, report.New(&buf, cfg), nil)
	r.rank = func(ctx context.Context, key ranker.SortKey, n int) ([]models.ProcessEntry, error) {
		return nil, nil
	}
	return r, sampler, sink, &buf
}

func TestSnapshotModeRendersOnce(t *testing.T) {
	r, sampler, _, buf := newTestRunner(models.Snapshot{CPUPct: 10, TempC: models.TempUnknown, LatencyMs: models.LatencyUnknown})

	if err := r.Run(context.Background(), ModeSnapshot, 0); err != nil {
		t.Fatal(err)
	}
	if sampler.samples != 1 {
		t.Errorf("snapshot mode ran %d cycles, want 1", sampler.samples)
	}
	if buf.Len() == 0 {
		t.Error("snapshot mode produced no report")
	}
}

func TestLogOnlyModeDispatchesWithoutReport(t *testing.T) {
	r, sampler, sink, buf := newTestRunner(models.Snapshot{CPUPct: 99, TempC: models.TempUnknown, LatencyMs: models.LatencyUnknown})

	if err := r.Run(context.Background(), ModeLogOnly, 0); err != nil {
		t.Fatal(err)
	}
	if sampler.samples != 1 {
		t.Errorf("log-only mode ran %d cycles, want 1", sampler.samples)
	}
	if len(sink.alerts) != 1 {
		t.Errorf("log-only mode dispatched %d alerts, want 1", len(sink.alerts))
	}
	if buf.Len() != 0 {
		t.Errorf("log-only mode rendered a report: %q", buf.String())
	}
}

func TestContinuousModeStopsOnCancel(t *testing.T) {
	r, sampler, _, buf := newTestRunner(models.Snapshot{TempC: models.TempUnknown, LatencyMs: models.LatencyUnknown})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- r.Run(ctx, ModeContinuous, 10*time.Millisecond)
	}()

	time.Sleep(35 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(time.Second):
		t.Fatal("continuous mode did not stop promptly after cancellation")
	}

	if sampler.samples < 2 {
		t.Errorf("continuous mode ran %d cycles, want at least 2", sampler.samples)
	}
	if !strings.Contains(buf.String(), "Monitoring stopped.") {
		t.Error("continuous mode did not print a termination notice")
	}
}

func TestCycleQuietSnapshotDispatchesNothing(t *testing.T) {
	r, _, sink, _ := newTestRunner(models.Snapshot{CPUPct: 10, RAMPct: 10, DiskPct: 10, TempC: models.TempUnknown, LatencyMs: models.LatencyUnknown})

	if err := r.Run(context.Background(), ModeLogOnly, 0); err != nil {
		t.Fatal(err)
	}
	if len(sink.alerts) != 0 {
		t.Errorf("quiet snapshot dispatched %d alerts, want 0", len(sink.alerts))
	}
}
