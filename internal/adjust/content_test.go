// Copyright Meridiano Data SL, 2026. All rights reserved.

package adjust

import (
	"testing"
)

func TestRemoveIndexTexts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "drops table index line",
			in:   "Tabla . 1 - Foo\nKeep this\n",
			want: "Keep this\n",
		},
		{
			name: "drops index without spaces",
			in:   "Tabla.2 - Otra descripción\nKeep this\n",
			want: "Keep this\n",
		},
		{
			name: "drops every matching line",
			in:   "Tabla . 1 - Uno\nMiddle\nTabla . 2 - Dos\n",
			want: "Middle\n",
		},
		{
			name: "keeps mentions without a dot",
			in:   "La Tabla 3 describe la entidad\n",
			want: "La Tabla 3 describe la entidad\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTarget(t, tt.in)
			if err := removeIndexTexts(path, discardLogger()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := readTarget(t, path); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConvertUsageNotes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "converts note row to callout block",
			in:   "| **Notas de uso** | Hello world |\n",
			want: "\n!!! note \"Nota de uso\"\n\n    Hello world\n",
		},
		{
			name: "surrounding lines untouched",
			in:   "Antes\n| **Notas de uso** | Usar con cuidado |\nDespués\n",
			want: "Antes\n\n!!! note \"Nota de uso\"\n\n    Usar con cuidado\nDespués\n",
		},
		{
			name: "other bold cells untouched",
			in:   "| **Descripción** | Hello world |\n",
			want: "| **Descripción** | Hello world |\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTarget(t, tt.in)
			if err := convertUsageNotes(path, discardLogger()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := readTarget(t, path); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAdjustMarkdownHeadersIsPlaceholder(t *testing.T) {
	const doc = "# Título\n\nContenido\n"
	path := writeTarget(t, doc)
	if err := adjustMarkdownHeaders(path, discardLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := readTarget(t, path); got != doc {
		t.Errorf("placeholder modified the file: %q", got)
	}
}

func TestRemoveEmptyLinesExcess(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "collapses three newlines",
			in:   "Uno\n\n\nDos\n",
			want: "Uno\n\nDos\n",
		},
		{
			name: "collapses long runs across the file",
			in:   "Uno\n\n\n\n\nDos\n\n\n\nTres\n",
			want: "Uno\n\nDos\n\nTres\n",
		},
		{
			name: "double newlines kept",
			in:   "Uno\n\nDos\n",
			want: "Uno\n\nDos\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTarget(t, tt.in)
			if err := removeEmptyLinesExcess(path, discardLogger()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := readTarget(t, path); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "strips trailing spaces and tabs",
			in:   "Uno  \nDos\t\nTres\n",
			want: "Uno\nDos\nTres\n",
		},
		{
			name: "whitespace-only lines become bare newlines",
			in:   "Uno\n   \t\nDos\n",
			want: "Uno\n\nDos\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTarget(t, tt.in)
			if err := normalizeWhitespace(path, discardLogger()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := readTarget(t, path); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
