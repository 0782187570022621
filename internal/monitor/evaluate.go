// Package monitor compares snapshots against configured thresholds and
// dispatches the resulting alerts to every configured sink.
package monitor

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/hostsentry/hostsentry/internal/config"
	"github.com/hostsentry/hostsentry/internal/models"
)

// Evaluate compares a snapshot against the thresholds and returns alerts in
// a fixed order: CPU, RAM, disk. All three metrics are checked
// unconditionally with strict greater-than; a value equal to its limit
// never alerts. CPU and disk breaches are critical, RAM breaches warning.
//
// Swap stays an informational report-time note (see SwapWarning) and does
// not flow through the dispatcher.
func Evaluate(snap models.Snapshot, t config.ThresholdConfig) []models.Alert {
	var alerts []models.Alert

	if snap.CPUPct > t.CPULimit {
		alerts = append(alerts, newAlert(models.MetricCPU, models.SeverityCritical, snap.CPUPct,
			"High CPU usage",
			fmt.Sprintf("CPU usage is %d%% (limit %d%%)", snap.CPUPct, t.CPULimit)))
	}
	if snap.RAMPct > t.RAMLimit {
		alerts = append(alerts, newAlert(models.MetricRAM, models.SeverityWarning, snap.RAMPct,
			"High memory usage",
			fmt.Sprintf("RAM usage is %d%% (limit %d%%)", snap.RAMPct, t.RAMLimit)))
	}
	if snap.DiskPct > t.DiskLimit {
		alerts = append(alerts, newAlert(models.MetricDisk, models.SeverityCritical, snap.DiskPct,
			"Low disk space",
			fmt.Sprintf("Root filesystem is %d%% full (limit %d%%)", snap.DiskPct, t.DiskLimit)))
	}

	return alerts
}

// SwapWarning returns the informational swap note for the report, or nil
// when swap usage is at or below the warn limit. Swap never escalates to
// critical regardless of magnitude.
func SwapWarning(snap models.Snapshot, t config.ThresholdConfig) *models.Alert {
	if snap.SwapPct <= t.SwapWarnLimit {
		return nil
	}
	a := newAlert(models.MetricSwap, models.SeverityWarning, snap.SwapPct,
		"High swap usage",
		fmt.Sprintf("Swap usage is %d%% (warn at %d%%)", snap.SwapPct, t.SwapWarnLimit))
	return &a
}

func newAlert(metric models.Metric, severity models.Severity, observed int, title, message string) models.Alert {
	return models.Alert{
		ID:       uuid.NewString(),
		Metric:   metric,
		Severity: severity,
		Observed: observed,
		Title:    title,
		Message:  message,
	}
}
