// Copyright Meridiano Data SL, 2026. All rights reserved.

package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"
)

func TestSetupCreatesDatedLogFile(t *testing.T) {
	dir := t.TempDir()

	m, err := Setup(dir, "modelo", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer m.Close()

	m.Logger().Info("starting document conversion", "input", "modelo.docx")

	name := fmt.Sprintf("modelo_%s.log", time.Now().Format("2006-01-02"))
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "starting document conversion") {
		t.Errorf("log file missing entry:\n%s", data)
	}
}

func TestSetupCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")

	m, err := Setup(dir, "doc", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer m.Close()

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("directory not created: %v", err)
	}
}

func TestSetupAppendsAcrossRuns(t *testing.T) {
	dir := t.TempDir()

	m1, err := Setup(dir, "doc", 10)
	if err != nil {
		t.Fatal(err)
	}
	m1.Logger().Info("first run")
	m1.Close()

	m2, err := Setup(dir, "doc", 10)
	if err != nil {
		t.Fatal(err)
	}
	m2.Logger().Info("second run")
	m2.Close()

	name := fmt.Sprintf("doc_%s.log", time.Now().Format("2006-01-02"))
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "first run") || !strings.Contains(string(data), "second run") {
		t.Errorf("log should keep both runs:\n%s", data)
	}
}

func TestPruneKeepsNewestLogs(t *testing.T) {
	dir := t.TempDir()

	// Older runs, oldest first.
	base := time.Now().Add(-24 * time.Hour)
	for i := 0; i < 4; i++ {
		path := filepath.Join(dir, fmt.Sprintf("doc_2026-01-0%d.log", i+1))
		if err := os.WriteFile(path, []byte("old\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		mod := base.Add(time.Duration(i) * time.Hour)
		if err := os.Chtimes(path, mod, mod); err != nil {
			t.Fatal(err)
		}
	}
	// Unrelated files are never pruned.
	keep := filepath.Join(dir, "modelo.md")
	if err := os.WriteFile(keep, []byte("# doc\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Setup(dir, "doc", 2)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var logs []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".log" {
			logs = append(logs, e.Name())
		}
	}
	sort.Strings(logs)

	// The fresh file plus the newest old one survive the cap of 2.
	want := []string{
		"doc_2026-01-04.log",
		fmt.Sprintf("doc_%s.log", time.Now().Format("2006-01-02")),
	}
	sort.Strings(want)
	if strings.Join(logs, ",") != strings.Join(want, ",") {
		t.Errorf("surviving logs = %v, want %v", logs, want)
	}

	if _, err := os.Stat(keep); err != nil {
		t.Errorf("non-log file removed: %v", err)
	}
}
