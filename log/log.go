// Package log is the shared logger for lacquer's command-line and server
// components. The resolution packages never log.
package log

import (
	"io"
	"os"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

var (
	mu     sync.RWMutex
	logger = newLogger(os.Stderr, false)
)

func newLogger(w io.Writer, verbose bool) *charmlog.Logger {
	l := charmlog.NewWithOptions(w, charmlog.Options{
		Prefix:          "lacquer",
		ReportTimestamp: verbose,
	})
	if verbose {
		l.SetLevel(charmlog.DebugLevel)
	} else {
		l.SetLevel(charmlog.WarnLevel)
	}
	return l
}

// Initialize replaces the shared logger. verbose enables debug output and
// timestamps.
func Initialize(w io.Writer, verbose bool) {
	if w == nil {
		w = os.Stderr
	}
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w, verbose)
}

// Logger returns the shared logger.
func Logger() *charmlog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// For returns a child logger tagged with a component name.
func For(component string) *charmlog.Logger {
	return Logger().With("component", component)
}
