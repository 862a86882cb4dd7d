// Copyright Meridiano Data SL, 2026. All rights reserved.

package adjust

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode"
)

var (
	indexTextPattern = regexp.MustCompile(`Tabla\s*\.\s*.*`)
	usageNotePattern = regexp.MustCompile(`\|\s*\*\*Notas de uso\*\*\s*\|\s*(.*?)\s*\|`)
	excessBlankLines = regexp.MustCompile(`\n{3,}`)
)

// removeIndexTexts deletes stray table-index references ("Tabla . 1 - ...")
// that the converter carries over from the source document.
func removeIndexTexts(path string, log *slog.Logger) error {
	err := applyPattern(path, indexTextPattern, func(groups, lines []string, i int) (string, bool) {
		return "", false
	})
	if err != nil {
		return err
	}
	log.Info("removed index texts", "file", path)
	return nil
}

// convertUsageNotes rewrites "| **Notas de uso** | ... |" table rows into
// admonition-style note blocks.
func convertUsageNotes(path string, log *slog.Logger) error {
	err := applyPattern(path, usageNotePattern, func(groups, lines []string, i int) (string, bool) {
		return "\n!!! note \"Nota de uso\"\n\n    " + groups[1] + "\n", true
	})
	if err != nil {
		return err
	}
	log.Info("converted usage notes to note blocks", "file", path)
	return nil
}

// adjustMarkdownHeaders is a placeholder for header-level restructuring.
// TODO: derive heading levels from the numbered section titles the converter
// flattens into plain paragraphs.
func adjustMarkdownHeaders(path string, log *slog.Logger) error {
	if err := validatePath(path); err != nil {
		return err
	}
	log.Info("header adjustment not implemented", "file", path)
	return nil
}

// removeEmptyLinesExcess collapses runs of three or more newlines down to two,
// operating on the whole file so the pattern can cross line boundaries.
func removeEmptyLinesExcess(path string, log *slog.Logger) error {
	err := applyWholeFile(path, func(content string) string {
		return excessBlankLines.ReplaceAllString(content, "\n\n")
	})
	if err != nil {
		return err
	}
	log.Info("removed excessive empty lines", "file", path)
	return nil
}

// normalizeWhitespace strips trailing whitespace from every line and reduces
// whitespace-only lines to a bare newline.
func normalizeWhitespace(path string, log *slog.Logger) error {
	err := applyLines(path, func(line string) string {
		if strings.TrimSpace(line) == "" {
			return "\n"
		}
		return strings.TrimRightFunc(line, unicode.IsSpace) + "\n"
	})
	if err != nil {
		return err
	}
	log.Info("normalized whitespace", "file", path)
	return nil
}
