// System error-log collector — counts recent problem lines in the system
// log. Tries journalctl first, then well-known log files. Only the count
// surfaces; log content never leaves this collector.
package collector

import (
	"context"
	"regexp"
	"runtime"
	"strings"
)

// errorKeywords matches the fixed case-insensitive problem vocabulary.
var errorKeywords = regexp.MustCompile(`(?i)error|critical|fail|warn`)

// tailLines bounds how far back in the log the count looks.
const tailLines = 50

// SyslogCollector counts recent error-ish lines in the system log.
type SyslogCollector struct {
	paths []string
}

// NewSyslogCollector creates a syslog collector with the default log paths.
func NewSyslogCollector() *SyslogCollector {
	return &SyslogCollector{
		paths: []string{"/var/log/syslog", "/var/log/messages"},
	}
}

// Name returns the collector identifier.
func (c *SyslogCollector) Name() string { return "syslog" }

// Collect returns the number of matching lines in the recent log tail.
// No readable source yields 0, not an error.
func (c *SyslogCollector) Collect(ctx context.Context) (interface{}, error) {
	if out, err := runCmdWithErr("journalctl", "-b", "-n", "50", "--no-pager", "-o", "cat"); err == nil && len(out) > 0 {
		return countErrorLines(out), nil
	}
	for _, path := range c.paths {
		if tail := readLastLines(path, tailLines); tail != "" {
			return countErrorLines(tail), nil
		}
	}
	return 0, nil
}

// IsAvailable returns true on Linux only — the log locations are Linux paths.
func (c *SyslogCollector) IsAvailable() bool { return runtime.GOOS == "linux" }

// countErrorLines counts lines containing any of the problem keywords.
func countErrorLines(tail string) int {
	count := 0
	for _, line := range strings.Split(tail, "\n") {
		if errorKeywords.MatchString(line) {
			count++
		}
	}
	return count
}
