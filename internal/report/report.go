// Package report renders a snapshot, its process rankings and the auxiliary
// counts to the console. Exact terminal styling is deliberately plain; the
// only terminal-aware behaviors are screen clearing and row coloring.
package report

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/hostsentry/hostsentry/internal/config"
	"github.com/hostsentry/hostsentry/internal/models"
)

const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
)

// Renderer writes monitor reports to a single output stream.
type Renderer struct {
	out   io.Writer
	cfg   *config.Config
	isTTY bool
}

// New creates a Renderer. Color and screen clearing activate only when out
// is the process stdout and stdout is a terminal.
func New(out io.Writer, cfg *config.Config) *Renderer {
	isTTY := out == os.Stdout && term.IsTerminal(int(os.Stdout.Fd()))
	return &Renderer{out: out, cfg: cfg, isTTY: isTTY}
}

// Out exposes the underlying stream for one-off notices.
func (r *Renderer) Out() io.Writer { return r.out }

// ClearScreen erases prior output between continuous-mode iterations.
// A non-terminal target is left untouched.
func (r *Renderer) ClearScreen() {
	if r.isTTY {
		fmt.Fprint(r.out, "\033[H\033[2J")
	}
}

// FormatTemperature renders a temperature value, using the N/A form for
// the unknown sentinel.
func FormatTemperature(t int) string {
	if t == models.TempUnknown {
		return "N/A°C"
	}
	return fmt.Sprintf("%d°C", t)
}

// Render writes the full report: header, gauges, the optional swap note,
// both process rankings and the auxiliary counts.
func (r *Renderer) Render(snap models.Snapshot, byCPU, byMem []models.ProcessEntry, swapNote *models.Alert) {
	fmt.Fprintf(r.out, "%s — %s (up %s)\n\n",
		snap.Hostname,
		snap.Timestamp.Format("2006-01-02 15:04:05"),
		formatUptime(snap.UptimeSeconds))

	r.gauge("CPU", snap.CPUPct, r.cfg.Thresholds.CPULimit)
	r.gauge("RAM", snap.RAMPct, r.cfg.Thresholds.RAMLimit)
	r.gauge("Swap", snap.SwapPct, r.cfg.Thresholds.SwapWarnLimit)
	r.gauge("Disk /", snap.DiskPct, r.cfg.Thresholds.DiskLimit)
	fmt.Fprintf(r.out, "%-8s %s\n", "Temp", FormatTemperature(snap.TempC))

	if swapNote != nil {
		fmt.Fprintf(r.out, "\nnote: %s\n", swapNote.Message)
	}

	r.ranking("Top processes by CPU", byCPU)
	r.ranking("Top processes by memory", byMem)

	fmt.Fprintf(r.out, "\nNetwork: %s received, %s sent\n",
		formatBytes(snap.NetRxBytes), formatBytes(snap.NetTxBytes))
	fmt.Fprintf(r.out, "System log: %d recent problem lines\n", snap.SyslogErrors)
	if snap.LatencyMs != models.LatencyUnknown {
		fmt.Fprintf(r.out, "Reachability: %.1f ms to %s\n", snap.LatencyMs, r.cfg.Monitor.PingTarget)
	}
}

func (r *Renderer) gauge(label string, value, limit int) {
	line := fmt.Sprintf("%-8s %3d%%  (limit %d%%)", label, value, limit)
	if r.isTTY && value > limit {
		line = ansiRed + line + ansiReset
	}
	fmt.Fprintln(r.out, line)
}

func (r *Renderer) ranking(title string, entries []models.ProcessEntry) {
	fmt.Fprintf(r.out, "\n%s\n", title)
	fmt.Fprintf(r.out, "%-12s %7s %6s %6s %8s %8s  %s\n",
		"USER", "PID", "%CPU", "%MEM", "VSZ(MB)", "RSS(MB)", "COMMAND")
	for _, e := range entries {
		row := fmt.Sprintf("%-12s %7d %6.1f %6.1f %8d %8d  %s",
			e.User, e.PID, e.CPUPct, e.MemPct, e.VSZMB, e.RSSMB, e.Command)
		if r.isTTY {
			switch e.Class {
			case models.LoadCritical:
				row = ansiRed + row + ansiReset
			case models.LoadElevated:
				row = ansiYellow + row + ansiReset
			}
		}
		fmt.Fprintln(r.out, row)
	}
	if len(entries) == 0 {
		fmt.Fprintln(r.out, "(no processes)")
	}
}

func formatUptime(seconds int) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
