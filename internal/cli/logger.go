package cli

import (
	"fmt"
	"io"
	"os"
)

type logLevel int

const (
	levelVerbose logLevel = iota
	levelInfo
	levelWarn
	levelError
)

var levelPrefixes = map[logLevel]string{
	levelVerbose: "[VERBOSE] ",
	levelWarn:    "Warning: ",
}

// Logger prints command output. Warnings and errors go to errOut,
// verbose lines only when enabled.
type Logger struct {
	out     io.Writer
	errOut  io.Writer
	verbose bool
}

// NewLogger returns a Logger on the process streams.
func NewLogger(verbose bool) *Logger {
	return NewLoggerTo(os.Stdout, os.Stderr, verbose)
}

// NewLoggerTo returns a Logger on the given streams.
func NewLoggerTo(out, errOut io.Writer, verbose bool) *Logger {
	return &Logger{out: out, errOut: errOut, verbose: verbose}
}

func (l *Logger) Info(format string, args ...any)    { l.write(levelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)    { l.write(levelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any)   { l.write(levelError, format, args...) }
func (l *Logger) Verbose(format string, args ...any) { l.write(levelVerbose, format, args...) }

func (l *Logger) write(level logLevel, format string, args ...any) {
	if level == levelVerbose && !l.verbose {
		return
	}

	w := l.out
	if level >= levelWarn {
		w = l.errOut
	}
	fmt.Fprintf(w, "%s%s\n", levelPrefixes[level], fmt.Sprintf(format, args...))
}
