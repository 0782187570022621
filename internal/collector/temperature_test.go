package collector

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hostsentry/hostsentry/internal/models"
)

func writeThermalFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "temp")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestThermalZoneFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
		ok      bool
	}{
		{"millidegrees", "54000\n", 54, true},
		{"rounds down", "54999", 54, true},
		{"non-numeric", "hot\n", 0, false},
		{"empty", "", 0, false},
		{"negative", "-1000", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := thermalZoneFile{path: writeThermalFile(t, tt.content), read: readFile}
			got, ok := src.Read()
			if ok != tt.ok || got != tt.want {
				t.Errorf("Read() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestThermalZoneFileMissing(t *testing.T) {
	src := thermalZoneFile{path: filepath.Join(t.TempDir(), "nope"), read: readFile}
	if _, ok := src.Read(); ok {
		t.Error("missing thermal file should not yield a reading")
	}
}

func TestParseSensorsOutput(t *testing.T) {
	out := `coretemp-isa-0000
Adapter: ISA adapter
Package id 0:  +61.0°C  (high = +100.0°C, crit = +100.0°C)
Core 0:        +58.0°C  (high = +100.0°C, crit = +100.0°C)
`
	got, ok := parseSensorsOutput(out)
	if !ok || got != 61 {
		t.Errorf("parseSensorsOutput() = (%d, %v), want (61, true)", got, ok)
	}
}

func TestParseSensorsOutputLabels(t *testing.T) {
	out := "CPU Temp:      +47.5°C\n"
	got, ok := parseSensorsOutput(out)
	if !ok || got != 47 {
		t.Errorf("parseSensorsOutput() = (%d, %v), want (47, true)", got, ok)
	}
}

func TestParseSensorsOutputNoMatch(t *testing.T) {
	out := "fan1: 1200 RPM\nVoltage: 1.2 V\n"
	if _, ok := parseSensorsOutput(out); ok {
		t.Error("unlabelled output should not yield a reading")
	}
}

// fakeSource drives the chain order test.
type fakeSource struct {
	temp int
	ok   bool
}

func (f fakeSource) Read() (int, bool) { return f.temp, f.ok }

func TestTemperatureChainFirstMatchWins(t *testing.T) {
	c := &TemperatureCollector{sources: []temperatureSource{
		fakeSource{ok: false},
		fakeSource{temp: 48, ok: true},
		fakeSource{temp: 99, ok: true},
	}}
	data, err := c.Collect(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got := data.(int); got != 48 {
		t.Errorf("Collect() = %d, want 48", got)
	}
}

func TestTemperatureChainExhaustedYieldsSentinel(t *testing.T) {
	c := &TemperatureCollector{sources: []temperatureSource{
		fakeSource{ok: false},
		fakeSource{ok: false},
	}}
	data, err := c.Collect(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got := data.(int); got != models.TempUnknown {
		t.Errorf("Collect() = %d, want the unknown sentinel", got)
	}
}

func TestThermalZoneFileReadError(t *testing.T) {
	src := thermalZoneFile{path: "x", read: func(string) ([]byte, error) {
		return nil, errors.New("boom")
	}}
	if _, ok := src.Read(); ok {
		t.Error("read error should not yield a reading")
	}
}
