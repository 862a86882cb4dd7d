// Copyright Meridiano Data SL, 2026. All rights reserved.

package adjust

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// discardLogger silences transform logging in tests.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeTarget creates a Markdown file with the given content in a temp dir.
func writeTarget(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc_adjusted.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// readTarget reads the file back as a string.
func readTarget(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestLookup(t *testing.T) {
	a, ok := Lookup("remove_index_texts")
	if !ok {
		t.Fatal("remove_index_texts should be registered")
	}
	if a.Name != "remove_index_texts" {
		t.Errorf("got name %q, want remove_index_texts", a.Name)
	}
	if a.Category != CategoryContent {
		t.Errorf("got category %q, want %q", a.Category, CategoryContent)
	}
	if a.Fn == nil {
		t.Error("registered adjustment has nil function")
	}

	if _, ok := Lookup("does_not_exist"); ok {
		t.Error("unknown name should not resolve")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 10 {
		t.Fatalf("got %d names, want 10: %v", len(names), names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}

func TestByCategory(t *testing.T) {
	categories := ByCategory()
	if len(categories) != 2 {
		t.Fatalf("got %d categories, want 2: %v", len(categories), categories)
	}

	tables := categories[CategoryTables]
	content := categories[CategoryContent]
	if len(tables) != 5 {
		t.Errorf("got %d table adjustments, want 5: %v", len(tables), tables)
	}
	if len(content) != 5 {
		t.Errorf("got %d content adjustments, want 5: %v", len(content), content)
	}
	if len(tables)+len(content) != len(Names()) {
		t.Error("categories do not cover the registry")
	}
}

func TestTransformsFailOnMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.md")
	for _, name := range Names() {
		a, _ := Lookup(name)
		if err := a.Fn(missing, discardLogger()); err == nil {
			t.Errorf("%s: expected error for missing file", name)
		}
	}
}

// Every transform must leave a non-matching file byte-for-byte unchanged.
func TestTransformsKeepNonMatchingInput(t *testing.T) {
	const doc = "# Título\n\nUn párrafo normal.\n\n| Metadato | Valor |\n| --- | --- |\n| Nombre | Actividad |\n"
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			path := writeTarget(t, doc)
			a, _ := Lookup(name)
			if err := a.Fn(path, discardLogger()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := readTarget(t, path); got != doc {
				t.Errorf("file modified:\ngot:  %q\nwant: %q", got, doc)
			}
		})
	}
}
