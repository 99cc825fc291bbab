// Package colors provides color output utilities.
package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Color constants
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Blue   = "\033[0;34m"
	Cyan   = "\033[0;36m"
	Reset  = "\033[0m"
)

const checkmark = "✓"

// Logger defines the interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	mu           sync.RWMutex
	debugEnabled bool
	logger       Logger
	stdout       io.Writer = os.Stdout
	stderr       io.Writer = os.Stderr
)

func init() {
	if val := os.Getenv("PAGEVIEW_DEBUG"); val == "true" || val == "1" {
		debugEnabled = true
	}
}

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugEnabled = enabled
}

// SetLogger sets the structured logger to mirror console output.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetOutput redirects console output. Nil writers discard. The pager sets
// both to nil while it owns the terminal.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	stdout, stderr = orDiscard(out), orDiscard(errOut)
}

// ResetOutput restores stdout and stderr.
func ResetOutput() {
	SetOutput(os.Stdout, os.Stderr)
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

type level int

const (
	levelDebug level = iota
	levelInfo
	levelSuccess
	levelWarning
	levelError
)

func emit(lvl level, msgs []string) {
	mu.RLock()
	l, out, errOut, debug := logger, stdout, stderr, debugEnabled
	mu.RUnlock()

	if lvl == levelDebug && !debug {
		return
	}

	msg := strings.Join(msgs, " ")
	var (
		w    io.Writer
		line string
	)
	switch lvl {
	case levelDebug:
		w, line = errOut, fmt.Sprintf("%sDebug:%s %s", Cyan, Reset, msg)
	case levelInfo:
		w, line = out, fmt.Sprintf("%s%s%s", Blue, msg, Reset)
	case levelSuccess:
		w, line = out, fmt.Sprintf("%s%s%s %s", Green, checkmark, Reset, msg)
	case levelWarning:
		w, line = errOut, fmt.Sprintf("%sWarning:%s %s", Yellow, Reset, msg)
	default:
		w, line = errOut, fmt.Sprintf("%sError:%s %s", Red, Reset, msg)
	}

	if l != nil {
		switch lvl {
		case levelDebug:
			l.Debug(msg)
		case levelInfo:
			l.Info(msg)
		case levelSuccess:
			l.Info(msg, "type", "success")
		case levelWarning:
			l.Warn(msg)
		default:
			l.Error(msg)
		}
	}

	if _, err := fmt.Fprintln(w, line); err != nil {
		// Last resort; never recurse into emit.
		fmt.Fprintf(os.Stderr, "failed to print message: %v: %s\n", err, msg)
	}
}

// Error outputs an error message to stderr.
func Error(msgs ...string) { emit(levelError, msgs) }

// Warning outputs a warning message to stderr.
func Warning(msgs ...string) { emit(levelWarning, msgs) }

// Success outputs a success message to stdout.
func Success(msgs ...string) { emit(levelSuccess, msgs) }

// Info outputs an informational message to stdout.
func Info(msgs ...string) { emit(levelInfo, msgs) }

// Debug outputs a debug message to stderr if debug is enabled.
func Debug(msgs ...string) { emit(levelDebug, msgs) }
