// Copyright Meridiano Data SL, 2026. All rights reserved.

package runlog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

const exportLimit = 100000

// ExportYAML writes the run history to <output_dir>/runs.yaml, newest first.
func (s *Store) ExportYAML(ctx context.Context) error {
	runs, err := s.List(ctx, exportLimit)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}

	data, err := yaml.Marshal(runs)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(filepath.Join(s.dir, "runs.yaml"), data, 0o644)
}

// ExportJSON writes the run history to <output_dir>/runs.json, newest first.
func (s *Store) ExportJSON(ctx context.Context) error {
	runs, err := s.List(ctx, exportLimit)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}

	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(filepath.Join(s.dir, "runs.json"), data, 0o644)
}
