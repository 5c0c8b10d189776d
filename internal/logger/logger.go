// Package logger provides verbose logging for the Permadocs CLI.
// When debug mode is enabled via the --verbose flag or the debug config
// key, diagnostic messages are printed to stderr so users can follow the
// retrieval pipeline: domain detection, cache hits, loads and fallbacks.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu     sync.RWMutex
	debug  bool
	output io.Writer = os.Stderr
)

// SetDebug enables or disables debug logging.
func SetDebug(v bool) {
	mu.Lock()
	defer mu.Unlock()
	debug = v
}

// IsDebug returns true if debug mode is enabled.
func IsDebug() bool {
	mu.RLock()
	defer mu.RUnlock()
	return debug
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if debug mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if debug {
		fmt.Fprintf(output, "[DEBUG] "+format+"\n", args...)
	}
}

// Section prints a section header if debug mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if debug {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if debug mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if debug {
		fmt.Fprintf(output, "[INFO] "+format+"\n", args...)
	}
}

// Warn prints a warning message if debug mode is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if debug {
		fmt.Fprintf(output, "[WARN] "+format+"\n", args...)
	}
}

// Error prints an error message regardless of debug mode.
// Reserved for failures the user must see even in quiet runs.
func Error(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	fmt.Fprintf(output, "[ERROR] "+format+"\n", args...)
}
