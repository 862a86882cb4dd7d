// Copyright Meridiano Data SL, 2026. All rights reserved.

// Package adjust implements the Markdown adjustment registry and pipeline.
//
// An adjustment is a named text transform applied in place to a Markdown
// file. Each transform re-reads the file, matches a fixed pattern, and
// writes the result back, so adjustments are independent of one another and
// may be configured in any order. The transforms are tuned to the table and
// index conventions of Spanish-language data-model specifications.
package adjust

import (
	"log/slog"
	"sort"
)

// Categories group related adjustments for listing purposes.
const (
	CategoryTables  = "table_adjustments"
	CategoryContent = "content_adjustments"
)

// Func applies one adjustment to the Markdown file at path. Warnings and
// progress go to log; a returned error means the file was left as the
// transform found it (or partially written, if the write itself failed).
type Func func(path string, log *slog.Logger) error

// Adjustment is one registry entry: a unique name, its category, and the
// transform function.
type Adjustment struct {
	Name     string
	Category string
	Fn       Func
}

// registry is the static adjustment table. Entries are registered here at
// compile time; there is no runtime mutation API.
var registry = map[string]Adjustment{
	"adjust_markdown_tables":              {Name: "adjust_markdown_tables", Category: CategoryTables, Fn: adjustMarkdownTables},
	"remove_bug_double_header_tables":     {Name: "remove_bug_double_header_tables", Category: CategoryTables, Fn: removeBugDoubleHeaderTables},
	"adjust_double_header_tables":         {Name: "adjust_double_header_tables", Category: CategoryTables, Fn: adjustDoubleHeaderTables},
	"remove_exact_empty_cells_in_tables":  {Name: "remove_exact_empty_cells_in_tables", Category: CategoryTables, Fn: removeExactEmptyCellsInTables},
	"adjust_complex_double_header_tables": {Name: "adjust_complex_double_header_tables", Category: CategoryTables, Fn: adjustComplexDoubleHeaderTables},

	"adjust_markdown_headers":   {Name: "adjust_markdown_headers", Category: CategoryContent, Fn: adjustMarkdownHeaders},
	"remove_index_texts":        {Name: "remove_index_texts", Category: CategoryContent, Fn: removeIndexTexts},
	"convert_usage_notes":       {Name: "convert_usage_notes", Category: CategoryContent, Fn: convertUsageNotes},
	"remove_empty_lines_excess": {Name: "remove_empty_lines_excess", Category: CategoryContent, Fn: removeEmptyLinesExcess},
	"normalize_whitespace":      {Name: "normalize_whitespace", Category: CategoryContent, Fn: normalizeWhitespace},
}

// Lookup returns the adjustment registered under name. The boolean reports
// whether the name is known; callers must check it.
func Lookup(name string) (Adjustment, bool) {
	a, ok := registry[name]
	return a, ok
}

// Names returns all registered adjustment names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByCategory returns registered adjustment names grouped by category, each
// group sorted.
func ByCategory() map[string][]string {
	out := make(map[string][]string)
	for name, a := range registry {
		out[a.Category] = append(out[a.Category], name)
	}
	for _, names := range out {
		sort.Strings(names)
	}
	return out
}
