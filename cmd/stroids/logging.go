package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger builds a logger writing to w at the given level name.
func newLogger(w io.Writer, prefix, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// stderrLogger is used by the headless commands.
func stderrLogger(prefix string) (*log.Logger, error) {
	return newLogger(os.Stderr, prefix, currentSettings().LogLevel)
}

// fileLogger is used while a TUI owns the terminal. The caller closes the
// returned writer.
func fileLogger(prefix string) (*log.Logger, io.Closer, error) {
	w := &lumberjack.Logger{
		Filename:   stroidsPath("stroids.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	logger, err := newLogger(w, prefix, currentSettings().LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return logger, w, nil
}

// stroidsPath joins name onto ~/.stroids, or the working directory when the
// home directory is unknown.
func stroidsPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".stroids", name)
}
