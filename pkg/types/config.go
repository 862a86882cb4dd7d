// Copyright Meridiano Data SL, 2026. All rights reserved.

// Package types holds the shared configuration and run-record types used by
// the docs2md CLI and its internal packages.
package types

import (
	"fmt"
	"os"
)

// Backend identifies the document-to-Markdown conversion tool.
type Backend string

const (
	// BackendMarkitdown pipes the input through the markitdown container image.
	BackendMarkitdown Backend = "markitdown"

	// BackendPdftotext runs the pdftotext binary on the input.
	BackendPdftotext Backend = "pdftotext"

	// BackendFitz converts PDFs in-process via MuPDF page rendering.
	BackendFitz Backend = "fitz"
)

// DefaultMaxLogFiles is the number of dated log files kept per output directory.
const DefaultMaxLogFiles = 10

// Config holds a full conversion run: the input document, where output lands,
// and the ordered adjustment pipeline applied to the adjusted copy.
type Config struct {
	// InputFile is the source document (office or PDF format).
	InputFile string `mapstructure:"input_file" json:"input_file" yaml:"input_file"`

	// OutputDir receives <stem>.md, <stem>_adjusted.md, logs, and the run database.
	OutputDir string `mapstructure:"output_dir" json:"output_dir" yaml:"output_dir"`

	// AdjustFunctions is the ordered list of adjustment names applied to the
	// adjusted copy. Names may repeat; unknown names are skipped with a warning.
	AdjustFunctions []string `mapstructure:"adjust_functions" json:"adjust_functions" yaml:"adjust_functions"`

	// Backend selects the conversion tool: markitdown, pdftotext, or fitz.
	// Empty selects markitdown.
	Backend Backend `mapstructure:"backend" json:"backend" yaml:"backend"`

	// MaxLogFiles caps the dated log files kept in OutputDir. Zero or negative
	// uses DefaultMaxLogFiles.
	MaxLogFiles int `mapstructure:"max_log_files" json:"max_log_files" yaml:"max_log_files"`
}

// Validate checks required fields and normalizes defaults. Missing input_file
// or output_dir, or a nonexistent input file, is a configuration error.
func (c *Config) Validate() error {
	if c.InputFile == "" {
		return fmt.Errorf("required configuration field missing: input_file")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("required configuration field missing: output_dir")
	}
	if _, err := os.Stat(c.InputFile); err != nil {
		return fmt.Errorf("input file not found: %s: %w", c.InputFile, err)
	}
	if c.Backend == "" {
		c.Backend = BackendMarkitdown
	}
	switch c.Backend {
	case BackendMarkitdown, BackendPdftotext, BackendFitz:
	default:
		return fmt.Errorf("unknown conversion backend: %q", c.Backend)
	}
	if c.MaxLogFiles <= 0 {
		c.MaxLogFiles = DefaultMaxLogFiles
	}
	return nil
}
