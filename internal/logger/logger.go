package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log. It is created once per invocation and handed to
// the operations that report progress.
type Logger struct {
	*log.Logger
}

// Options configures a Logger.
type Options struct {
	Level      log.Level
	Timestamps bool
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: opts.Timestamps,
		TimeFormat:      time.DateTime,
		Level:           opts.Level,
	})
	return &Logger{Logger: l}
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard, Options{Level: log.InfoLevel})
}

// ParseLevel maps a level name such as "debug" or "warn" to a log level.
func ParseLevel(s string) (log.Level, error) {
	return log.ParseLevel(s)
}

// FileLoaded logs a successfully parsed input file
func (l *Logger) FileLoaded(path, format string, features int) {
	l.Info("file loaded",
		"file", path,
		"format", format,
		"features", features)
}

// FileCreated logs an output file written to disk
func (l *Logger) FileCreated(path string) {
	l.Info("file created",
		"file", path)
}

// NodesFound logs how many nodes of a tag an operation works on
func (l *Logger) NodesFound(tag string, count int) {
	l.Info("nodes found",
		"tag", tag,
		"count", count)
}

// StyleResolved logs the color resolved for a placemark by fix
func (l *Logger) StyleResolved(placemark, color, name string) {
	if name == "" {
		l.Warn("color not in palette",
			"placemark", placemark,
			"color", color)
		return
	}
	l.Info("style resolved",
		"placemark", placemark,
		"color", color,
		"palette", name)
}

// OperationFailed logs a terminal error for a file
func (l *Logger) OperationFailed(operation, file string, err error) {
	l.Error("operation failed",
		"operation", operation,
		"file", file,
		"error", err)
}
