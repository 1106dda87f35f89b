package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	usecasecontract "github.com/mikiasgoitom/Piiquante/internal/usecase/contract"
)

// SlogLogger adapts a *slog.Logger to the printf-style IAppLogger.
type SlogLogger struct {
	base *slog.Logger
}

var _ usecasecontract.IAppLogger = (*SlogLogger)(nil)

// NewSlogLogger writes to stdout. format is "json" or "text"; level is one of
// debug, info, warn, error.
func NewSlogLogger(level, format string) *SlogLogger {
	return NewSlogLoggerTo(os.Stdout, level, format)
}

func NewSlogLoggerTo(w io.Writer, level, format string) *SlogLogger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	var h slog.Handler
	if strings.EqualFold(format, "text") {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	return &SlogLogger{base: slog.New(h)}
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Slog exposes the structured logger for middleware that logs fields.
func (l *SlogLogger) Slog() *slog.Logger { return l.base }

func (l *SlogLogger) Debugf(format string, args ...interface{}) {
	l.base.Debug(fmt.Sprintf(format, args...))
}

func (l *SlogLogger) Infof(format string, args ...interface{}) {
	l.base.Info(fmt.Sprintf(format, args...))
}

func (l *SlogLogger) Warnf(format string, args ...interface{}) {
	l.base.Warn(fmt.Sprintf(format, args...))
}

func (l *SlogLogger) Errorf(format string, args ...interface{}) {
	l.base.Error(fmt.Sprintf(format, args...))
}

// Fatalf logs at error level and exits.
func (l *SlogLogger) Fatalf(format string, args ...interface{}) {
	l.base.Error(fmt.Sprintf(format, args...), slog.Bool("fatal", true))
	os.Exit(1)
}

// Nop discards everything. Handy in tests.
type Nop struct{}

var _ usecasecontract.IAppLogger = Nop{}

func (Nop) Debugf(string, ...interface{}) {}
func (Nop) Infof(string, ...interface{}) {}
func (Nop) Warnf(string, ...interface{}) {}
func (Nop) Errorf(string, ...interface{}) {}
func (Nop) Fatalf(string, ...interface{}) {}
