// Package logging sets up the debug logger. The terminal is owned by the UI,
// so log output only ever goes to a file.
package logging

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

const prefix = "newsview"

// Setup opens path for appending and returns a logger writing to it along
// with its closer. An empty path yields a discarding logger.
func Setup(path string, verbosity int) (logr.Logger, io.Closer, error) {
	if path == "" {
		return logr.Discard(), io.NopCloser(nil), nil
	}

	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return logr.Discard(), nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	stdr.SetVerbosity(verbosity)
	return New(log.Default()), f, nil
}

// New wraps a standard logger.
func New(l *log.Logger) logr.Logger {
	return stdr.New(l).WithName(prefix)
}
