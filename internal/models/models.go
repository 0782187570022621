// Package models defines the data structures shared across the monitor:
// snapshots, alerts and process ranking rows.
package models

import "time"

// TempUnknown is the sentinel temperature used when no thermal source could
// be read. Rendered as "N/A°C".
const TempUnknown = -1

// LatencyUnknown is the sentinel used when the reachability probe did not
// complete.
const LatencyUnknown = -1

// Snapshot is one consistent set of resource-utilization measurements taken
// at a point in time. It is constructed fresh each sampling cycle and never
// mutated afterwards. Percentage fields are clamped to [0,100]; an
// unreadable source yields the metric's unknown value instead of an error.
type Snapshot struct {
	Timestamp time.Time

	CPUPct  int
	RAMPct  int
	SwapPct int
	DiskPct int
	TempC   int

	Hostname      string
	UptimeSeconds int

	NetRxBytes uint64
	NetTxBytes uint64

	SyslogErrors int
	LatencyMs    float64
}

// Severity classifies how urgent an alert is.
type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Metric identifies which resource an alert refers to.
type Metric string

const (
	MetricCPU  Metric = "cpu"
	MetricRAM  Metric = "ram"
	MetricDisk Metric = "disk"
	MetricSwap Metric = "swap"
)

// Alert is a discrete threshold-breach event. Alerts are created by the
// evaluator, handed to the dispatcher and not retained afterwards.
type Alert struct {
	ID       string
	Metric   Metric
	Severity Severity
	Observed int
	Title    string
	Message  string
}

// IsCritical returns true if this alert is at critical level.
func (a Alert) IsCritical() bool { return a.Severity == SeverityCritical }

// LoadClass is presentation metadata for a ranked process row. It colours
// the report only and never feeds back into threshold alerting.
type LoadClass string

const (
	LoadNormal   LoadClass = "normal"
	LoadElevated LoadClass = "elevated"
	LoadCritical LoadClass = "critical"
)

// ProcessEntry is one row in a process ranking, read fresh from the OS
// process table each invocation.
type ProcessEntry struct {
	User    string
	PID     int32
	CPUPct  float64
	MemPct  float64
	VSZMB   uint64
	RSSMB   uint64
	Command string
	Class   LoadClass
}
