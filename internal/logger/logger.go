package logger

import (
	"strings"

	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Verbosity level names accepted by the --verbosity flag.
// They mirror the classic logging levels; messages below the selected
// level are suppressed.
const (
	LevelDebug    = "DEBUG"
	LevelInfo     = "INFO"
	LevelWarning  = "WARNING"
	LevelError    = "ERROR"
	LevelCritical = "CRITICAL"
)

// levelRank orders the levels from most to least verbose.
var levelRank = map[string]int{
	LevelDebug:    0,
	LevelInfo:     1,
	LevelWarning:  2,
	LevelError:    3,
	LevelCritical: 4,
}

// Define colorized printing functions for different log levels using fatih/color.
// These are package-level variables holding functions that behave like fmt.Printf,
// but with text colored appropriately for the log level.

// Debug logs debug messages in cyan color. No-op until Init enables it.
var Debug = func(format string, a ...any) {}

// Info logs informational messages in green color.
// Green is typically used for success or normal info to catch user attention pleasantly.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta color.
// Magenta is bright and stands out, signaling caution without being too alarming.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red color.
// Red is commonly associated with errors or critical problems to draw immediate attention.
var Error = color.New(color.FgRed).PrintfFunc()

// ValidLevel reports whether name (case-insensitive) is one of the accepted
// verbosity levels.
func ValidLevel(name string) bool {
	_, ok := levelRank[strings.ToUpper(name)]
	return ok
}

// Init initializes the logger package for the given verbosity level.
// Each level function at or above the threshold prints in its color;
// the rest are assigned no-op functions that silently ignore their messages.
// An unrecognized level falls back to INFO.
func Init(level string) {
	rank, ok := levelRank[strings.ToUpper(level)]
	if !ok {
		rank = levelRank[LevelInfo]
	}

	noop := func(format string, a ...any) {}
	Debug, Info, Warn, Error = noop, noop, noop, noop

	if rank <= levelRank[LevelDebug] {
		Debug = color.New(color.FgCyan).PrintfFunc()
	}
	if rank <= levelRank[LevelInfo] {
		Info = color.New(color.FgGreen).PrintfFunc()
	}
	if rank <= levelRank[LevelWarning] {
		Warn = color.New(color.FgHiMagenta).PrintfFunc()
	}
	if rank <= levelRank[LevelError] {
		Error = color.New(color.FgRed).PrintfFunc()
	}
}
