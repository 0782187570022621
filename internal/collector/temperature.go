// CPU temperature collector — resolves a reading through an ordered
// fallback chain: the kernel thermal-zone file, then the lm-sensors
// utility, then the unknown sentinel. The first source that yields a
// reading wins and the chain never raises an error.
package collector

import (
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/hostsentry/hostsentry/internal/models"
)

// temperatureSource is one entry in the fallback chain.
type temperatureSource interface {
	// Read returns a whole-degree Celsius reading and whether it was obtained.
	Read() (int, bool)
}

// thermalZoneFile reads a sysfs thermal zone, which reports millidegrees.
type thermalZoneFile struct {
	path string
	read func(string) ([]byte, error)
}

func (z thermalZoneFile) Read() (int, bool) {
	data, err := z.read(z.path)
	if err != nil {
		return 0, false
	}
	raw := strings.TrimSpace(string(data))
	milli, err := strconv.Atoi(raw)
	if err != nil || milli <= 0 {
		return 0, false
	}
	return milli / 1000, true
}

// sensorsCommand shells out to the lm-sensors utility and scans its output.
type sensorsCommand struct{}

func (sensorsCommand) Read() (int, bool) {
	out, err := exec.Command("sensors").Output()
	if err != nil {
		return 0, false
	}
	return parseSensorsOutput(string(out))
}

// sensorLabels are the line labels accepted from sensors output.
var sensorLabels = []string{"Core", "CPU Temp", "Package"}

// parseSensorsOutput scans for a labelled line and extracts the first
// positive numeric reading, discarding decoration such as "+", "°C" and
// parentheses.
func parseSensorsOutput(out string) (int, bool) {
	for _, line := range strings.Split(out, "\n") {
		labelled := false
		for _, label := range sensorLabels {
			if strings.Contains(line, label) {
				labelled = true
				break
			}
		}
		if !labelled {
			continue
		}
		if temp, ok := extractReading(line); ok {
			return temp, true
		}
	}
	return 0, false
}

func extractReading(line string) (int, bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return 0, false
	}
	for _, tok := range strings.Fields(line[idx+1:]) {
		tok = strings.Trim(tok, "+°C()")
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || v <= 0 {
			continue
		}
		return int(v), true
	}
	return 0, false
}

// TemperatureCollector resolves CPU temperature through the fallback chain.
type TemperatureCollector struct {
	sources []temperatureSource
}

// NewTemperatureCollector creates a collector with the default chain.
func NewTemperatureCollector() *TemperatureCollector {
	return &TemperatureCollector{
		sources: []temperatureSource{
			thermalZoneFile{path: "/sys/class/thermal/thermal_zone0/temp", read: readFile},
			sensorsCommand{},
		},
	}
}

// Name returns the collector identifier.
func (c *TemperatureCollector) Name() string { return "temperature" }

// Collect walks the chain and returns the first reading, or the unknown
// sentinel when every source is absent. It never returns an error.
func (c *TemperatureCollector) Collect(ctx context.Context) (interface{}, error) {
	for _, src := range c.sources {
		if temp, ok := src.Read(); ok {
			return temp, nil
		}
	}
	return models.TempUnknown, nil
}

// IsAvailable returns true — the chain degrades to the sentinel on its own.
func (c *TemperatureCollector) IsAvailable() bool { return true }
