package monitor

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/hostsentry/hostsentry/internal/models"
)

// NotificationSink is a delivery channel for alerts. Sinks are independent:
// a failing sink never blocks delivery to the others.
type NotificationSink interface {
	Name() string
	Notify(alert models.Alert) error
}

// Dispatcher fans every alert out to all configured sinks. Sink failures
// are absorbed and logged at debug level only.
type Dispatcher struct {
	sinks  []NotificationSink
	logger *zap.Logger
}

// NewDispatcher creates a Dispatcher with no sinks.
func NewDispatcher(logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{logger: logger}
}

// AddSink registers a delivery channel.
func (d *Dispatcher) AddSink(s NotificationSink) {
	d.sinks = append(d.sinks, s)
	d.logger.Debug("Registered alert sink", zap.String("sink", s.Name()))
}

// Dispatch delivers each alert to every sink in registration order.
func (d *Dispatcher) Dispatch(alerts []models.Alert) {
	for _, a := range alerts {
		for _, s := range d.sinks {
			if err := s.Notify(a); err != nil {
				d.logger.Debug("Sink delivery failed",
					zap.String("sink", s.Name()),
					zap.String("alert", a.Title),
					zap.Error(err))
			}
		}
	}
}

// ConsoleSink writes alerts to a console stream with a severity tag.
type ConsoleSink struct {
	out io.Writer
}

// NewConsoleSink creates a console sink writing to out.
func NewConsoleSink(out io.Writer) *ConsoleSink {
	return &ConsoleSink{out: out}
}

// Name returns the sink identifier.
func (s *ConsoleSink) Name() string { return "console" }

// Notify writes one severity-tagged line.
func (s *ConsoleSink) Notify(a models.Alert) error {
	_, err := fmt.Fprintf(s.out, "[%s] %s: %s\n",
		strings.ToUpper(string(a.Severity)), a.Title, a.Message)
	return err
}

// LogSink appends alerts to a plain-text log file. The containing directory
// gets a single creation attempt; after that, write failures are returned
// to the dispatcher, which swallows them. External writers to the same file
// are tolerated through append-mode semantics.
type LogSink struct {
	path    string
	dirOnce sync.Once
	now     func() time.Time
}

// NewLogSink creates a log sink appending to path.
func NewLogSink(path string) *LogSink {
	return &LogSink{path: path, now: time.Now}
}

// Name returns the sink identifier.
func (s *LogSink) Name() string { return "log" }

// Notify appends one timestamped alert line.
func (s *LogSink) Notify(a models.Alert) error {
	return s.append(fmt.Sprintf("[%s] %s: %s",
		strings.ToUpper(string(a.Severity)), a.Title, a.Message))
}

// Info appends one unstructured informational line.
func (s *LogSink) Info(msg string) error {
	return s.append(msg)
}

func (s *LogSink) append(line string) error {
	s.dirOnce.Do(func() {
		_ = os.MkdirAll(filepath.Dir(s.path), 0o755)
	})
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, "%s - %s\n", s.now().Format("2006-01-02 15:04:05"), line)
	return err
}

// Writable reports whether the sink's directory accepts writes. Used only
// as a startup diagnostic; an unwritable path is not fatal.
func (s *LogSink) Writable() bool {
	dir := filepath.Dir(s.path)
	return unix.Access(dir, unix.W_OK) == nil
}

// DesktopSink delivers alerts through the desktop notification service.
// It should only be registered when DesktopAvailable reports true.
type DesktopSink struct{}

// NewDesktopSink creates a desktop notification sink.
func NewDesktopSink() *DesktopSink {
	return &DesktopSink{}
}

// DesktopAvailable reports whether a desktop session and the notify-send
// utility are both present.
func DesktopAvailable() bool {
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return false
	}
	_, err := exec.LookPath("notify-send")
	return err == nil
}

// Name returns the sink identifier.
func (s *DesktopSink) Name() string { return "desktop" }

// Notify raises a desktop notification. Critical alerts use the critical
// urgency with the longest expiry; warnings use the normal variant.
func (s *DesktopSink) Notify(a models.Alert) error {
	urgency, expireMs := "normal", "10000"
	if a.IsCritical() {
		urgency, expireMs = "critical", "30000"
	}
	return exec.Command("notify-send", "-u", urgency, "-t", expireMs, a.Title, a.Message).Run()
}
