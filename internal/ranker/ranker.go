// Package ranker produces the top-N process rows for the report, sorted
// descending by CPU or memory usage. Entries are read fresh from the OS
// process table on every call and never cached across cycles.
package ranker

import (
	"context"
	"sort"
	"strings"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/hostsentry/hostsentry/internal/models"
)

// SortKey selects the ranking metric.
type SortKey string

const (
	ByCPU SortKey = "cpu"
	ByMem SortKey = "mem"
	// ByRSS is reserved for a resident-set ranking; no default view uses it.
	ByRSS SortKey = "rss"
)

const (
	// maxCommandWidth bounds the visible command string.
	maxCommandWidth = 50
	// truncatedWidth is the visible portion kept when truncating.
	truncatedWidth = 47

	placeholderCommand = "[unknown]"
)

// TruncateCommand bounds a command string to the display width. Inputs over
// 50 characters are cut to 47 plus an ellipsis marker; an empty command
// becomes the placeholder token.
func TruncateCommand(cmd string) string {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return placeholderCommand
	}
	if len(cmd) <= maxCommandWidth {
		return cmd
	}
	return cmd[:truncatedWidth] + "..."
}

// KBToMB converts kilobytes to whole megabytes, flooring.
func KBToMB(kb uint64) uint64 { return kb / 1024 }

// Classify assigns the display class for a ranked row. CPU-sorted rows over
// 50% are critical and over 20% elevated; memory-sorted rows over 20% are
// elevated. This is presentation metadata only — threshold alerting never
// reads it.
func Classify(key SortKey, e models.ProcessEntry) models.LoadClass {
	if key == ByMem {
		if e.MemPct > 20 {
			return models.LoadElevated
		}
		return models.LoadNormal
	}
	if e.CPUPct > 50 {
		return models.LoadCritical
	}
	if e.CPUPct > 20 {
		return models.LoadElevated
	}
	return models.LoadNormal
}

// rankEntries sorts descending by the chosen key, keeps at most n rows and
// classifies each survivor. Fewer than n entries is fine, never an error.
func rankEntries(entries []models.ProcessEntry, key SortKey, n int) []models.ProcessEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		switch key {
		case ByMem:
			return entries[i].MemPct > entries[j].MemPct
		case ByRSS:
			return entries[i].RSSMB > entries[j].RSSMB
		default:
			return entries[i].CPUPct > entries[j].CPUPct
		}
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	for i := range entries {
		entries[i].Class = Classify(key, entries[i])
	}
	return entries
}

// Top returns the top-n processes by the given key. Individual process read
// errors are silently skipped so a single inaccessible process never fails
// the whole ranking.
func Top(ctx context.Context, key SortKey, n int) ([]models.ProcessEntry, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]models.ProcessEntry, 0, len(procs))
	for _, p := range procs {
		user, _ := p.UsernameWithContext(ctx)
		cpuPct, _ := p.CPUPercentWithContext(ctx)
		memPct, _ := p.MemoryPercentWithContext(ctx)
		cmdline, _ := p.CmdlineWithContext(ctx)

		var vszKB, rssKB uint64
		if mi, err := p.MemoryInfoWithContext(ctx); err == nil && mi != nil {
			vszKB = mi.VMS / 1024
			rssKB = mi.RSS / 1024
		}

		entries = append(entries, models.ProcessEntry{
			User:    user,
			PID:     p.Pid,
			CPUPct:  cpuPct,
			MemPct:  float64(memPct),
			VSZMB:   KBToMB(vszKB),
			RSSMB:   KBToMB(rssKB),
			Command: TruncateCommand(cmdline),
		})
	}

	return rankEntries(entries, key, n), nil
}
