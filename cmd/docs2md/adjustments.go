package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/meridianodata/docs2md/internal/adjust"
)

var adjustmentsCmd = &cobra.Command{
	Use:   "adjustments",
	Short: "List the available adjustment functions by category",
	Long: `Adjustments prints the registry of named Markdown adjustments that can
appear in the adjust_functions list of the configuration file.`,
	Args: cobra.NoArgs,
	RunE: runAdjustments,
}

func init() {
	adjustmentsCmd.Flags().String("format", "text", "output format: text, yaml, or json")

	rootCmd.AddCommand(adjustmentsCmd)
}

func runAdjustments(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	categories := adjust.ByCategory()
	out := cmd.OutOrStdout()

	switch format {
	case "text":
		names := make([]string, 0, len(categories))
		for category := range categories {
			names = append(names, category)
		}
		sort.Strings(names)

		fmt.Fprintln(out, "Available Markdown adjustments:")
		for _, category := range names {
			fmt.Fprintf(out, "\n%s:\n", category)
			for _, name := range categories[category] {
				fmt.Fprintf(out, "  - %s\n", name)
			}
		}
		fmt.Fprintf(out, "\nTotal: %d\n", len(adjust.Names()))
	case "yaml":
		data, err := yaml.Marshal(categories)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		fmt.Fprint(out, string(data))
	case "json":
		data, err := json.MarshalIndent(categories, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	default:
		return fmt.Errorf("unknown format: %q (expected text, yaml, or json)", format)
	}
	return nil
}
