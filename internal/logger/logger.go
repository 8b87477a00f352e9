package logger

import (
	"github.com/fatih/color"
)

// Leveled print functions backed by fatih/color. Each behaves like
// fmt.Printf with the level's color applied.
//
// Info goes to stdout; Warn and Error write to stderr so that scripts
// capturing stdout see only normal progress output.

// Info logs informational messages in green.
var Info = color.New(color.FgGreen).PrintfFunc()

var warnf = color.New(color.FgHiMagenta).FprintfFunc()

// Warn logs warnings in bright magenta on stderr.
func Warn(format string, a ...any) {
	warnf(color.Error, format, a...)
}

var errorf = color.New(color.FgRed).FprintfFunc()

// Error logs errors in red on stderr.
func Error(format string, a ...any) {
	errorf(color.Error, format, a...)
}

// Debug logs debug messages in cyan. It is a no-op until Init enables it.
var Debug = func(format string, a ...any) {}

// Init enables or disables debug logging.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
