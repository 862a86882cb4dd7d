// Copyright Meridiano Data SL, 2026. All rights reserved.

package adjust

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// lineReplacer produces the replacement text for a matched line. groups holds
// the regex submatches (groups[0] is the matched text), lines is the full file
// as read, and i is the index of the current line. The replacement may span
// multiple lines. Returning keep=false drops the line entirely.
type lineReplacer func(groups []string, lines []string, i int) (replacement string, keep bool)

// validatePath checks that the target file exists before a transform touches it.
func validatePath(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %s: %w", path, err)
	}
	return nil
}

// readLines reads the file as an ordered sequence of lines with terminators
// preserved, matching the write side which concatenates without separators.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	lines := strings.SplitAfter(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, nil
}

// writeLines overwrites the file with the concatenated line sequence.
func writeLines(path string, lines []string) error {
	if err := os.WriteFile(path, []byte(strings.Join(lines, "")), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// applyPattern runs re against every line of the file. Matching lines are
// replaced (or dropped) via repl; non-matching lines pass through unchanged.
// The file is rewritten in place.
func applyPattern(path string, re *regexp.Regexp, repl lineReplacer) error {
	if err := validatePath(path); err != nil {
		return err
	}
	lines, err := readLines(path)
	if err != nil {
		return err
	}

	adjusted := make([]string, 0, len(lines))
	for i, line := range lines {
		groups := re.FindStringSubmatch(line)
		if groups == nil {
			adjusted = append(adjusted, line)
			continue
		}
		if replacement, keep := repl(groups, lines, i); keep {
			adjusted = append(adjusted, replacement)
		}
	}

	return writeLines(path, adjusted)
}

// applyLines rewrites the file line by line through repl. Lines keep their
// terminators on both sides of the call.
func applyLines(path string, repl func(line string) string) error {
	if err := validatePath(path); err != nil {
		return err
	}
	lines, err := readLines(path)
	if err != nil {
		return err
	}

	adjusted := make([]string, len(lines))
	for i, line := range lines {
		adjusted[i] = repl(line)
	}

	return writeLines(path, adjusted)
}

// applyWholeFile rewrites the entire file content through repl, for patterns
// that span line boundaries.
func applyWholeFile(path string, repl func(content string) string) error {
	if err := validatePath(path); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(repl(string(data))), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
