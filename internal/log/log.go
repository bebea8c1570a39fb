// Package log is the process-wide logger used by the exercise packages that
// narrate what they do (games, worker pool) and by the drills command.
package log

import (
	"io"
	"log"
	"sync/atomic"
)

var verbose atomic.Bool

// EnableVerbose enables the printing of verbose logs.
func EnableVerbose() {
	verbose.Store(true)
}

// DisableVerbose turns verbose logging back off.
func DisableVerbose() {
	verbose.Store(false)
}

// Verbose reports whether verbose logging is enabled.
func Verbose() bool {
	return verbose.Load()
}

// SetOutput redirects the standard logger provided by the log package.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// Printf prints to the standard logger provided by the log package regardless
// of whether verbose logging is enabled.
func Printf(fmt string, v ...any) {
	log.Printf(fmt, v...)
}

// Verbosef prints to the standard logger provided by the log package if verbose
// logging is enabled. Otherwise, it does nothing.
func Verbosef(fmt string, v ...any) {
	if verbose.Load() {
		log.Printf(fmt, v...)
	}
}
