// Copyright Meridiano Data SL, 2026. All rights reserved.

package types

import "time"

// RunStatus indicates the final state of a conversion run.
type RunStatus string

const (
	RunDone   RunStatus = "done"
	RunFailed RunStatus = "failed"
)

// AdjustmentStatus indicates the outcome of one adjustment within a run.
type AdjustmentStatus string

const (
	// AdjustmentApplied means the transform ran and wrote the file back.
	AdjustmentApplied AdjustmentStatus = "applied"

	// AdjustmentFailed means the transform returned an error and was skipped.
	AdjustmentFailed AdjustmentStatus = "failed"

	// AdjustmentUnknown means the name was not found in the registry.
	AdjustmentUnknown AdjustmentStatus = "unknown"
)

// AdjustmentRecord is the outcome of a single pipeline step.
type AdjustmentRecord struct {
	// Position is the zero-based index of the step in the configured pipeline.
	Position int `json:"position" yaml:"position"`

	// Name is the configured adjustment name (possibly unknown to the registry).
	Name string `json:"name" yaml:"name"`

	// Status is applied, failed, or unknown.
	Status AdjustmentStatus `json:"status" yaml:"status"`

	// Error holds the failure message when Status is failed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// RunRecord describes one conversion run: input, outputs, backend, and the
// outcome of every configured adjustment in pipeline order.
type RunRecord struct {
	// ID is a UUID assigned when the run starts.
	ID string `json:"id" yaml:"id"`

	// InputFile is the source document path.
	InputFile string `json:"input_file" yaml:"input_file"`

	// RawPath is the unadjusted conversion output (<stem>.md).
	RawPath string `json:"raw_path" yaml:"raw_path"`

	// AdjustedPath is the pipeline target (<stem>_adjusted.md).
	AdjustedPath string `json:"adjusted_path" yaml:"adjusted_path"`

	// Backend names the conversion tool used.
	Backend Backend `json:"backend" yaml:"backend"`

	// StartedAt and FinishedAt bound the run in UTC.
	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at"`

	// Status is done or failed.
	Status RunStatus `json:"status" yaml:"status"`

	// Error holds the fatal failure message when Status is failed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// Adjustments lists per-step outcomes in pipeline order.
	Adjustments []AdjustmentRecord `json:"adjustments" yaml:"adjustments"`
}

// FailedAdjustments counts steps that did not apply cleanly.
func (r RunRecord) FailedAdjustments() int {
	var n int
	for _, a := range r.Adjustments {
		if a.Status != AdjustmentApplied {
			n++
		}
	}
	return n
}
