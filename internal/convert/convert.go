// Copyright Meridiano Data SL, 2026. All rights reserved.

// Package convert turns source documents into Markdown and drives the
// adjustment pipeline over the converted output.
//
// A run produces two files in the output directory: <stem>.md holds the raw
// converter output and <stem>_adjusted.md starts as a byte-identical copy
// that the configured adjustments then rewrite in place.
package convert

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/meridianodata/docs2md/internal/adjust"
	"github.com/meridianodata/docs2md/internal/container"
	"github.com/meridianodata/docs2md/pkg/types"
)

// Converter transforms a source document into Markdown text. Backends
// (markitdown, pdftotext, fitz) implement this interface.
type Converter interface {
	// Convert reads the document at path and returns its Markdown content.
	Convert(path string) (string, error)
}

// Result holds the output paths and per-adjustment outcomes of one run.
type Result struct {
	RawPath      string
	AdjustedPath string
	Adjustments  []types.AdjustmentRecord
}

// New builds the Converter selected by cfg.Backend.
func New(cfg types.Config) (Converter, error) {
	switch cfg.Backend {
	case types.BackendMarkitdown:
		engine, err := container.Detect()
		if err != nil {
			return nil, err
		}
		return NewMarkitdownConverter(engine)
	case types.BackendPdftotext:
		return NewPdftotextConverter()
	case types.BackendFitz:
		return &FitzConverter{}, nil
	default:
		return nil, fmt.Errorf("unknown conversion backend: %q", cfg.Backend)
	}
}

// Run converts cfg.InputFile once, writes the raw Markdown and its adjusted
// copy under cfg.OutputDir, and applies the configured adjustment pipeline to
// the copy. Conversion failures (including empty converter output) abort the
// run; adjustment failures do not.
func Run(cfg types.Config, c Converter, log *slog.Logger) (*Result, error) {
	if log == nil {
		log = slog.Default()
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", cfg.OutputDir, err)
	}

	stem := strings.TrimSuffix(filepath.Base(cfg.InputFile), filepath.Ext(cfg.InputFile))
	rawPath := filepath.Join(cfg.OutputDir, stem+".md")
	adjustedPath := filepath.Join(cfg.OutputDir, stem+"_adjusted.md")

	log.Info("starting document conversion", "input", cfg.InputFile, "output_dir", cfg.OutputDir)

	text, err := c.Convert(cfg.InputFile)
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", cfg.InputFile, err)
	}
	if text == "" {
		return nil, fmt.Errorf("conversion produced no content for %s", cfg.InputFile)
	}

	if err := os.WriteFile(rawPath, []byte(text), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", rawPath, err)
	}
	log.Info("wrote raw conversion output", "file", rawPath)

	if err := os.WriteFile(adjustedPath, []byte(text), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", adjustedPath, err)
	}
	log.Info("created adjusted output file", "file", adjustedPath)

	records := adjust.NewRunner(log).Apply(adjustedPath, cfg.AdjustFunctions)
	log.Info("document conversion and adjustment completed")

	return &Result{
		RawPath:      rawPath,
		AdjustedPath: adjustedPath,
		Adjustments:  records,
	}, nil
}
