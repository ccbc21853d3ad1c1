// Package util provides low-level helpers shared by all other packages.
package util

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// LogLevel controls output verbosity.
type LogLevel int

const (
	LogQuiet   LogLevel = 0
	LogNormal  LogLevel = 1
	LogVerbose LogLevel = 2
	LogDebug   LogLevel = 3
)

// verboseLevel sits between charm's debug and info levels.
const verboseLevel = log.Level(-2)

// Logger writes levelled diagnostics to stderr with optional timestamps
// and level prefixes.  Module output never goes through it.
type Logger struct {
	level LogLevel
	l     *log.Logger
}

// NewLogger returns a Logger that prints messages at or below the given
// verbosity (0 = quiet, 1 = normal, 2 = verbose, 3 = debug).
func NewLogger(verbosity int) *Logger {
	lvl := LogLevel(verbosity)
	switch {
	case lvl < LogQuiet:
		lvl = LogQuiet
	case lvl > LogDebug:
		lvl = LogDebug
	}

	l := log.NewWithOptions(os.Stderr, log.Options{
		Level:           charmLevel(lvl),
		ReportTimestamp: lvl >= LogDebug, // auto-enable timestamps in debug mode
		TimeFormat:      "15:04:05.000",
	})
	l.SetStyles(levelStyles())

	return &Logger{level: lvl, l: l}
}

// SetTimestamps enables or disables timestamp prefixes.
func (l *Logger) SetTimestamps(on bool) { l.l.SetReportTimestamp(on) }

// SetOutput overrides the output writer (default: os.Stderr).
func (l *Logger) SetOutput(w io.Writer) { l.l.SetOutput(w) }

// Level returns the current log level.
func (l *Logger) Level() LogLevel { return l.level }

// Info prints when verbosity ≥ 1.
func (l *Logger) Info(format string, args ...interface{}) {
	l.l.Infof(format, args...)
}

// Warn prints when verbosity ≥ 1.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.l.Warnf(format, args...)
}

// Verbose prints when verbosity ≥ 2.
func (l *Logger) Verbose(format string, args ...interface{}) {
	l.l.Logf(verboseLevel, format, args...)
}

// Debug prints when verbosity ≥ 3.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.l.Debugf(format, args...)
}

// Error always prints regardless of verbosity.
func (l *Logger) Error(format string, args ...interface{}) {
	l.l.Errorf(format, args...)
}

func charmLevel(lvl LogLevel) log.Level {
	switch lvl {
	case LogQuiet:
		return log.ErrorLevel
	case LogNormal:
		return log.InfoLevel
	case LogVerbose:
		return verboseLevel
	default:
		return log.DebugLevel
	}
}

// levelStyles keeps the three-letter [XXX] prefixes the CLI has always
// print, and registers a prefix for the verbose level.
func levelStyles() *log.Styles {
	st := log.DefaultStyles()
	prefix := func(s string) lipgloss.Style {
		return lipgloss.NewStyle().SetString("[" + s + "]").Bold(true)
	}
	st.Levels = map[log.Level]lipgloss.Style{
		log.DebugLevel: prefix("DBG").Foreground(lipgloss.Color("63")),
		verboseLevel:   prefix("VRB").Foreground(lipgloss.Color("39")),
		log.InfoLevel:  prefix("INF").Foreground(lipgloss.Color("86")),
		log.WarnLevel:  prefix("WRN").Foreground(lipgloss.Color("192")),
		log.ErrorLevel: prefix("ERR").Foreground(lipgloss.Color("204")),
		log.FatalLevel: prefix("FTL").Foreground(lipgloss.Color("134")),
	}
	return st
}
