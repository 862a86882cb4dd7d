// Copyright Meridiano Data SL, 2026. All rights reserved.

package adjust

import (
	"log/slog"

	"github.com/meridianodata/docs2md/pkg/types"
)

// Runner applies a configured adjustment pipeline to a target file, strictly
// in sequence. Failures never abort the remaining steps: unknown names are
// skipped with a warning and transform errors are logged and skipped.
type Runner struct {
	log *slog.Logger
}

// NewRunner creates a Runner that reports progress to log. A nil logger
// falls back to slog.Default.
func NewRunner(log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{log: log}
}

// Apply resolves each name against the registry and runs the transform on
// path, in the given order. Repeated names run repeatedly. The returned
// records mirror the input order, one per configured name.
func (r *Runner) Apply(path string, names []string) []types.AdjustmentRecord {
	records := make([]types.AdjustmentRecord, 0, len(names))

	for pos, name := range names {
		rec := types.AdjustmentRecord{Position: pos, Name: name}

		a, ok := Lookup(name)
		if !ok {
			r.log.Warn("adjustment function not found", "name", name)
			rec.Status = types.AdjustmentUnknown
			records = append(records, rec)
			continue
		}

		if err := a.Fn(path, r.log); err != nil {
			r.log.Error("failed to apply adjustment", "name", name, "error", err)
			rec.Status = types.AdjustmentFailed
			rec.Error = err.Error()
			records = append(records, rec)
			continue
		}

		r.log.Info("applied adjustment", "name", name)
		rec.Status = types.AdjustmentApplied
		records = append(records, rec)
	}

	return records
}
