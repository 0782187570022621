package collector

import (
	"fmt"
	"os"
	"runtime"
)

// Preflight verifies that the kernel interfaces the sampler depends on are
// present. It runs once, before any sampling; a failure is fatal to the
// invocation.
func Preflight() error {
	if runtime.GOOS != "linux" {
		return nil
	}
	if _, err := os.Stat("/proc/stat"); err != nil {
		return fmt.Errorf("required source /proc/stat unavailable: %w", err)
	}
	return nil
}
