// Package logger provides Logger adapters. Tracking is meant to be
// unobtrusive, so the agent logs to a file by default and keeps stderr
// for foreground runs.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileLogger appends timestamped lines to agent.log in the data
// directory. Logging failures are ignored: the log must never take the
// agent down.
type FileLogger struct {
	path  string
	debug bool
}

func NewFileLogger(dataDir string, debug bool) *FileLogger {
	return &FileLogger{
		path:  filepath.Join(dataDir, "agent.log"),
		debug: debug,
	}
}

func (l *FileLogger) Debug(message string) {
	if l.debug {
		l.write("DEBUG", message)
	}
}

func (l *FileLogger) Error(message string) {
	l.write("ERROR", message)
}

func (l *FileLogger) write(level, message string) {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	fmt.Fprintf(f, "%s [%s] %s\n", time.Now().UTC().Format(time.RFC3339), level, message)
}

// StderrLogger writes to stderr, used when running in the foreground.
type StderrLogger struct {
	DebugEnabled bool
}

func (l StderrLogger) Debug(message string) {
	if l.DebugEnabled {
		fmt.Fprintf(os.Stderr, "DEBUG %s\n", message)
	}
}

func (l StderrLogger) Error(message string) {
	fmt.Fprintf(os.Stderr, "ERROR %s\n", message)
}
