// Package runner drives the sampling cycle in one of three modes: one-shot
// snapshot, log-only and continuous. A cycle is sample → evaluate →
// dispatch → render; continuous mode repeats it at a fixed interval and
// observes cancellation only at the inter-cycle sleep, never mid-sample.
package runner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hostsentry/hostsentry/internal/config"
	"github.com/hostsentry/hostsentry/internal/models"
	"github.com/hostsentry/hostsentry/internal/monitor"
	"github.com/hostsentry/hostsentry/internal/ranker"
	"github.com/hostsentry/hostsentry/internal/report"
)

// Mode selects how the runner drives sampling.
type Mode int

const (
	// ModeSnapshot samples once and renders the full report.
	ModeSnapshot Mode = iota
	// ModeLogOnly samples once and dispatches alerts without a report.
	ModeLogOnly
	// ModeContinuous repeats snapshot mode at a fixed interval until cancelled.
	ModeContinuous
)

// Sampler abstracts the collector registry so tests can drive cycles
// without touching the OS.
type Sampler interface {
	Sample(ctx context.Context) models.Snapshot
}

// rankFunc matches ranker.Top; replaceable in tests.
type rankFunc func(ctx context.Context, key ranker.SortKey, n int) ([]models.ProcessEntry, error)

// Runner owns one invocation's control flow.
type Runner struct {
	cfg        *config.Config
	sampler    Sampler
	dispatcher *monitor.Dispatcher
	renderer   *report.Renderer
	logger     *zap.Logger
	rank       rankFunc
}

// New creates a Runner wired to the real process ranker.
func New(cfg *config.Config, sampler Sampler, dispatcher *monitor.Dispatcher, renderer *report.Renderer, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		cfg:        cfg,
		sampler:    sampler,
		dispatcher: dispatcher,
		renderer:   renderer,
		logger:     logger,
		rank:       ranker.Top,
	}
}

// Run executes the chosen mode. Continuous mode blocks until ctx is
// cancelled and then returns nil after printing a termination notice;
// the single-shot modes return after one cycle.
func (r *Runner) Run(ctx context.Context, mode Mode, interval time.Duration) error {
	switch mode {
	case ModeLogOnly:
		r.cycle(ctx, false)
		return nil
	case ModeContinuous:
		return r.loop(ctx, interval)
	default:
		r.cycle(ctx, true)
		return nil
	}
}

func (r *Runner) loop(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.renderer.ClearScreen()
	r.cycle(ctx, true)

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.renderer.Out(), "Monitoring stopped.")
			return nil
		case <-ticker.C:
			r.renderer.ClearScreen()
			r.cycle(ctx, true)
		}
	}
}

// cycle runs one sample → evaluate → dispatch pass, rendering the report
// when asked. Each cycle's snapshot is self-contained; nothing carries
// over to the next iteration.
func (r *Runner) cycle(ctx context.Context, render bool) {
	snap := r.sampler.Sample(ctx)
	alerts := monitor.Evaluate(snap, r.cfg.Thresholds)
	r.dispatcher.Dispatch(alerts)

	r.logger.Debug("Cycle complete",
		zap.Time("timestamp", snap.Timestamp),
		zap.Int("alerts", len(alerts)))

	if !render {
		return
	}

	byCPU, err := r.rank(ctx, ranker.ByCPU, r.cfg.Monitor.TopProcesses)
	if err != nil {
		r.logger.Debug("CPU ranking failed", zap.Error(err))
	}
	byMem, err := r.rank(ctx, ranker.ByMem, r.cfg.Monitor.TopProcesses)
	if err != nil {
		r.logger.Debug("Memory ranking failed", zap.Error(err))
	}

	r.renderer.Render(snap, byCPU, byMem, monitor.SwapWarning(snap, r.cfg.Thresholds))
}
