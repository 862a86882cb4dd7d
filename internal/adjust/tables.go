// Copyright Meridiano Data SL, 2026. All rights reserved.

package adjust

import (
	"log/slog"
	"regexp"
	"strings"
)

var (
	applicabilityPattern = regexp.MustCompile(`\|\s*\*\*Aplicabilidad\*\*\s*\|\s*\*\*(.*?)\*\*\s*\|`)
	bugDoubleHeaderRow   = regexp.MustCompile(`^\| Obligatorias \| Recomendadas \| Opcionales \|\s*$`)
	doubleHeaderRow      = regexp.MustCompile(`\| Clase \| URI de la clase \| Propiedades \| \| \|`)
	tableRowPattern      = regexp.MustCompile(`^\|.*\|\s*$`)
)

// metadataHeaderRow is the fixed header the converter emits for property
// tables; complex double-header blocks are recognized by it.
const metadataHeaderRow = "| Metadato | Descripción | propiedad | T | C | RANGO |"

// adjustMarkdownTables splits combined Aplicabilidad cells into separate
// Aplicabilidad and Cardinalidad rows. A cell that does not split on ". "
// into exactly two parts is left unchanged.
func adjustMarkdownTables(path string, log *slog.Logger) error {
	err := applyPattern(path, applicabilityPattern, func(groups, lines []string, i int) (string, bool) {
		parts := strings.Split(groups[1], ". ")
		if len(parts) == 2 {
			return "| **Aplicabilidad** | **" + parts[0] + "** |\n| **Cardinalidad** | **" + parts[1] + "** |\n", true
		}
		return lines[i], true
	})
	if err != nil {
		return err
	}
	log.Info("adjusted markdown tables", "file", path)
	return nil
}

// removeBugDoubleHeaderTables deletes the redundant second header row that
// shows up in some converted tables.
func removeBugDoubleHeaderTables(path string, log *slog.Logger) error {
	err := applyPattern(path, bugDoubleHeaderRow, func(groups, lines []string, i int) (string, bool) {
		return "", false
	})
	if err != nil {
		return err
	}
	log.Info("removed duplicate header rows", "file", path)
	return nil
}

// adjustDoubleHeaderTables rewrites the malformed class-table header, whose
// trailing columns the converter leaves empty, into a proper five-column
// header with its separator row.
func adjustDoubleHeaderTables(path string, log *slog.Logger) error {
	err := applyPattern(path, doubleHeaderRow, func(groups, lines []string, i int) (string, bool) {
		return "| Clase | URI de la clase | Obligatorias | Recomendadas | Opcionales |\n| --- | --- | --- | --- | --- |\n", true
	})
	if err != nil {
		return err
	}
	log.Info("adjusted double header tables", "file", path)
	return nil
}

// removeExactEmptyCellsInTables collapses "| |" to "|" on lines that start
// with a pipe, repeating until no occurrence remains. The collapse is by
// substring, not by cell, so a legitimately empty cell in a wider table is
// collapsed too; downstream configs rely on that behavior.
func removeExactEmptyCellsInTables(path string, log *slog.Logger) error {
	err := applyLines(path, func(line string) string {
		if strings.HasPrefix(line, "|") {
			for strings.Contains(line, "| |") {
				line = strings.ReplaceAll(line, "| |", "|")
			}
		}
		return line
	})
	if err != nil {
		return err
	}
	log.Info("removed empty cells from tables", "file", path)
	return nil
}

// adjustComplexDoubleHeaderTables restructures blocks where a section title
// was converted into a table row sitting above a metadata property table.
// The title row becomes a level-2 heading; the fixed metadata header gets a
// separator sized to its column count and the body rows are carried along.
// Body rows with a different column count are kept, with a warning.
func adjustComplexDoubleHeaderTables(path string, log *slog.Logger) error {
	err := applyPattern(path, tableRowPattern, func(groups, lines []string, i int) (string, bool) {
		var next string
		if i+1 < len(lines) {
			next = strings.TrimSpace(lines[i+1])
		}
		if !strings.HasPrefix(next, "| ---") {
			return groups[0], true
		}

		var third string
		if i+2 < len(lines) {
			third = strings.TrimSpace(lines[i+2])
		}
		if !strings.HasPrefix(third, metadataHeaderRow) {
			return groups[0], true
		}

		header := strings.TrimSpace(lines[i])
		var cells []string
		for _, part := range strings.Split(header, "|") {
			if part = strings.TrimSpace(part); part != "" {
				cells = append(cells, part)
			}
		}
		heading := "## " + strings.Join(cells, " - ")

		// Leading and trailing pipes produce two empty split fields.
		numColumns := len(strings.Split(third, "|")) - 2
		dashes := make([]string, numColumns)
		for c := range dashes {
			dashes[c] = "---"
		}
		separator := "| " + strings.Join(dashes, " | ") + " |"

		var body []string
		for _, line := range lines[i+3:] {
			if !strings.HasPrefix(line, "|") {
				break
			}
			body = append(body, line)
		}
		for _, row := range body {
			if len(strings.Split(row, "|"))-2 != numColumns {
				log.Warn("row with different number of columns found", "row", strings.TrimSpace(row))
			}
		}

		return heading + "\n\n" + third + "\n" + separator + "\n" + strings.Join(body, ""), true
	})
	if err != nil {
		return err
	}
	log.Info("adjusted complex double header tables", "file", path)
	return nil
}
