package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/number-master/internal/logging"
	"github.com/vovakirdan/number-master/internal/prefs"
	"github.com/vovakirdan/number-master/internal/storage"
)

// newLogger builds the logger for this run. The full-screen UI owns the
// terminal, so it logs to the log file; everything else logs to stderr.
// The returned func closes the log file.
func newLogger(toFile bool) (*log.Logger, func()) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	if toFile {
		f, err := logging.OpenFile(flagLogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (logging disabled)\n", err)
			w = io.Discard
		} else {
			w = f
			closeFn = func() { f.Close() }
		}
	}

	logger, err := logging.New(w, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using info)\n", err)
		logger, _ = logging.New(w, "info")
	}
	return logger, closeFn
}

// openPreferences opens the preferences database. When it cannot be opened
// the game still runs on an in-memory store that is lost on exit.
func openPreferences(logger *log.Logger) (prefs.KV, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open preferences database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open preferences database: %v\n", err)
		// Continue without persistence - game still works
		return storage.NewMemory(), func() {}
	}
	return store, func() { store.Close() }
}
