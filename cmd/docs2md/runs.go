package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/meridianodata/docs2md/internal/runlog"
)

var runsCmd = &cobra.Command{
	Use:   "runs [config.yaml]",
	Short: "Show recent conversion runs from the run history",
	Long: `Runs lists past conversion runs recorded in the output directory's run
database, newest first, including the outcome of every pipeline step.

The output directory is taken from the configuration file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().Int("limit", 10, "maximum number of runs to show (0 for all)")
	runsCmd.Flags().String("format", "text", "output format: text, yaml, or json")
	runsCmd.Flags().String("export", "", "write the full history to <output_dir>/runs.yaml or runs.json")

	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	if cfg.OutputDir == "" {
		return fmt.Errorf("configuration error: required configuration field missing: output_dir")
	}

	store, err := runlog.Open(cfg.OutputDir)
	if err != nil {
		return err
	}
	defer store.Close()

	if export, _ := cmd.Flags().GetString("export"); export != "" {
		switch export {
		case "yaml":
			return store.ExportYAML(cmd.Context())
		case "json":
			return store.ExportJSON(cmd.Context())
		default:
			return fmt.Errorf("unknown export format: %q (expected yaml or json)", export)
		}
	}

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	out := cmd.OutOrStdout()

	switch format {
	case "text":
		if len(runs) == 0 {
			fmt.Fprintln(out, "No runs recorded.")
			return nil
		}
		for _, r := range runs {
			fmt.Fprintf(out, "%s  %-6s  %-10s  %s\n",
				r.StartedAt.Format(time.RFC3339), r.Status, r.Backend, r.InputFile)
			if r.Error != "" {
				fmt.Fprintf(out, "    error: %s\n", r.Error)
			}
			for _, a := range r.Adjustments {
				fmt.Fprintf(out, "    %-8s %s\n", a.Status, a.Name)
			}
		}
	case "yaml":
		data, err := yaml.Marshal(runs)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		fmt.Fprint(out, string(data))
	case "json":
		data, err := json.MarshalIndent(runs, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	default:
		return fmt.Errorf("unknown format: %q (expected text, yaml, or json)", format)
	}
	return nil
}
