package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meridianodata/docs2md/internal/convert"
	"github.com/meridianodata/docs2md/internal/logging"
	"github.com/meridianodata/docs2md/internal/runlog"
	"github.com/meridianodata/docs2md/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [config.yaml]",
	Short: "Convert a document to Markdown and apply the adjustment pipeline",
	Long: `Convert runs one full conversion: the input document is converted to
Markdown, written to <output_dir>/<stem>.md, copied to <stem>_adjusted.md,
and the configured adjustments are applied to the copy in order.

The configuration file may be given as a positional argument, via --config,
or discovered in the default locations.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("backend", "", "conversion backend: markitdown, pdftotext, or fitz (overrides config)")
	viper.BindPFlag("backend", convertCmd.Flags().Lookup("backend"))

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(cfg.InputFile), filepath.Ext(cfg.InputFile))
	logm, err := logging.Setup(cfg.OutputDir, stem, cfg.MaxLogFiles)
	if err != nil {
		return err
	}
	defer logm.Close()
	log := logm.Logger()

	store, err := runlog.Open(cfg.OutputDir)
	if err != nil {
		return err
	}
	defer store.Close()

	rec := runlog.NewRecord(cfg)

	converter, err := convert.New(cfg)
	if err != nil {
		log.Error("failed to initialize conversion backend", "backend", cfg.Backend, "error", err)
		rec.FinishedAt = time.Now().UTC()
		rec.Status = types.RunFailed
		rec.Error = err.Error()
		if recErr := store.Record(cmd.Context(), rec); recErr != nil {
			log.Error("failed to record run", "error", recErr)
		}
		return fmt.Errorf("conversion error: %w", err)
	}

	result, runErr := convert.Run(cfg, converter, log)
	rec.FinishedAt = time.Now().UTC()

	if runErr != nil {
		log.Error("conversion failed", "error", runErr)
		rec.Status = types.RunFailed
		rec.Error = runErr.Error()
		if err := store.Record(cmd.Context(), rec); err != nil {
			log.Error("failed to record run", "error", err)
		}
		return fmt.Errorf("conversion error: %w", runErr)
	}

	rec.Status = types.RunDone
	rec.RawPath = result.RawPath
	rec.AdjustedPath = result.AdjustedPath
	rec.Adjustments = result.Adjustments
	if err := store.Record(cmd.Context(), rec); err != nil {
		log.Error("failed to record run", "error", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Document conversion completed successfully!")
	fmt.Fprintf(out, "Raw output:      %s\n", result.RawPath)
	fmt.Fprintf(out, "Adjusted output: %s\n", result.AdjustedPath)
	if len(result.Adjustments) > 0 {
		fmt.Fprintln(out, "Adjustments:")
		for _, a := range result.Adjustments {
			fmt.Fprintf(out, "  %-8s %s\n", a.Status, a.Name)
		}
	}
	return nil
}
