// Copyright Meridiano Data SL, 2026. All rights reserved.

// Package logging binds a run-scoped slog logger to a dated log file in the
// output directory and prunes old log files beyond a retention cap.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Manager owns the log file for one conversion run.
type Manager struct {
	logger *slog.Logger
	file   *os.File
	dir    string
}

// Setup opens (appending) <dir>/<base>_<YYYY-MM-DD>.log, builds a text slog
// handler on it, and prunes older .log files in dir beyond maxFiles, newest
// kept. The directory is created if needed.
func Setup(dir, base string, maxFiles int) (*Manager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory %s: %w", dir, err)
	}

	name := fmt.Sprintf("%s_%s.log", base, time.Now().Format("2006-01-02"))
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	m := &Manager{
		logger: slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelInfo})),
		file:   f,
		dir:    dir,
	}
	m.prune(maxFiles)
	return m, nil
}

// Logger returns the run logger.
func (m *Manager) Logger() *slog.Logger {
	return m.logger
}

// Close releases the underlying log file.
func (m *Manager) Close() error {
	return m.file.Close()
}

// prune removes .log files in the managed directory beyond the retention cap,
// oldest first by modification time. Removal failures are warnings only.
func (m *Manager) prune(maxFiles int) {
	if maxFiles <= 0 {
		return
	}

	entries, err := os.ReadDir(m.dir)
	if err != nil {
		m.logger.Warn("failed to scan log directory", "dir", m.dir, "error", err)
		return
	}

	type logFile struct {
		path string
		mod  time.Time
	}
	var logs []logFile
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".log" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		logs = append(logs, logFile{path: filepath.Join(m.dir, e.Name()), mod: info.ModTime()})
	}

	sort.Slice(logs, func(i, j int) bool { return logs[i].mod.After(logs[j].mod) })

	for _, lf := range logs[min(maxFiles, len(logs)):] {
		if err := os.Remove(lf.path); err != nil {
			m.logger.Warn("failed to remove old log file", "file", lf.path, "error", err)
			continue
		}
		m.logger.Info("cleaned up old log file", "file", lf.path)
	}
}
