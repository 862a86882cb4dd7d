// Copyright Meridiano Data SL, 2026. All rights reserved.

package adjust

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/meridianodata/docs2md/pkg/types"
)

func TestRunnerAppliesInOrderAndSkipsUnknown(t *testing.T) {
	path := writeTarget(t, "Tabla . 1 - Foo\n| A | | B |\nKeep\n")

	var buf bytes.Buffer
	r := NewRunner(slog.New(slog.NewTextHandler(&buf, nil)))

	records := r.Apply(path, []string{
		"remove_index_texts",
		"does_not_exist",
		"remove_exact_empty_cells_in_tables",
	})

	if got := readTarget(t, path); got != "| A | B |\nKeep\n" {
		t.Errorf("pipeline result wrong: %q", got)
	}

	wantStatus := []types.AdjustmentStatus{
		types.AdjustmentApplied,
		types.AdjustmentUnknown,
		types.AdjustmentApplied,
	}
	if len(records) != len(wantStatus) {
		t.Fatalf("got %d records, want %d", len(records), len(wantStatus))
	}
	for i, rec := range records {
		if rec.Position != i {
			t.Errorf("record %d: position = %d", i, rec.Position)
		}
		if rec.Status != wantStatus[i] {
			t.Errorf("record %d (%s): status = %q, want %q", i, rec.Name, rec.Status, wantStatus[i])
		}
	}

	if n := strings.Count(buf.String(), "adjustment function not found"); n != 1 {
		t.Errorf("got %d unknown-name warnings, want 1; log:\n%s", n, buf.String())
	}
}

func TestRunnerContinuesAfterFailure(t *testing.T) {
	// A missing target makes every transform fail, but the runner must
	// still attempt all of them.
	missing := filepath.Join(t.TempDir(), "gone.md")

	r := NewRunner(discardLogger())
	records := r.Apply(missing, []string{"remove_index_texts", "convert_usage_notes"})

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	for _, rec := range records {
		if rec.Status != types.AdjustmentFailed {
			t.Errorf("%s: status = %q, want failed", rec.Name, rec.Status)
		}
		if rec.Error == "" {
			t.Errorf("%s: expected an error message", rec.Name)
		}
	}
}

func TestRunnerRepeatedNamesRunRepeatedly(t *testing.T) {
	path := writeTarget(t, "| A | | | B |\n")

	r := NewRunner(discardLogger())
	records := r.Apply(path, []string{
		"remove_exact_empty_cells_in_tables",
		"remove_exact_empty_cells_in_tables",
	})

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	for _, rec := range records {
		if rec.Status != types.AdjustmentApplied {
			t.Errorf("%s: status = %q, want applied", rec.Name, rec.Status)
		}
	}
	if got := readTarget(t, path); got != "| A | B |\n" {
		t.Errorf("got %q, want %q", got, "| A | B |\n")
	}
}

func TestRunnerEmptyPipeline(t *testing.T) {
	path := writeTarget(t, "Contenido\n")
	records := NewRunner(nil).Apply(path, nil)
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
	if got := readTarget(t, path); got != "Contenido\n" {
		t.Errorf("file modified by empty pipeline: %q", got)
	}
}
