package model

import "time"

// feasibilityEps absorbs floating point noise when deciding whether a
// penalty counts as a hard violation.
const feasibilityEps = 1e-9

// ViolationReport breaks a layout's constraint violations into the four
// independently weighted penalty terms. All terms are non-negative and
// deterministic for a given layout.
type ViolationReport struct {
	Overlap   float64 `json:"overlap"`
	Boundary  float64 `json:"boundary"`
	Clearance float64 `json:"clearance"`
	Walkway   float64 `json:"walkway"`
}

// Feasible reports whether every penalty term is zero.
func (v ViolationReport) Feasible() bool {
	return v.Overlap <= feasibilityEps &&
		v.Boundary <= feasibilityEps &&
		v.Clearance <= feasibilityEps &&
		v.Walkway <= feasibilityEps
}

// Weighted returns the combined penalty under the given weights.
func (v ViolationReport) Weighted(w Weights) float64 {
	return w.Overlap*v.Overlap +
		w.Boundary*v.Boundary +
		w.Clearance*v.Clearance +
		w.Walkway*v.Walkway
}

// StopReason records which termination condition ended a run.
type StopReason string

const (
	StopGenerationLimit StopReason = "generation_limit"
	StopTimeBudget      StopReason = "time_budget"
	StopConverged       StopReason = "converged"
)

// Diagnostics describes how an optimization run went.
type Diagnostics struct {
	RunID          string        `json:"run_id"`
	Generations    int           `json:"generations"`
	Elapsed        time.Duration `json:"-"`
	ElapsedMillis  float64       `json:"elapsed_ms"`
	StopReason     StopReason    `json:"stop_reason"`
	Seed           int64         `json:"seed"`
	FitnessHistory []float64     `json:"fitness_history,omitempty"`
}

// OptimizeRequest is the full input contract for one optimization run.
// Settings may be partially specified; missing fields fall back to
// DefaultSettings. EntryPoints are optional; without them the walkway
// check is skipped.
type OptimizeRequest struct {
	Boundary    Boundary  `json:"boundary"`
	Items       []Item    `json:"items"`
	EntryPoints []Point2D `json:"entry_points,omitempty"`
	Settings    *Settings `json:"settings,omitempty"`
}

// OptimizeResult is the outcome of one run. An infeasible layout is not
// an error: Feasible is false and Report carries the remaining
// violations so the caller can decide what to do.
type OptimizeResult struct {
	Layout          Layout          `json:"layout"`
	Feasible        bool            `json:"feasible"`
	Fitness         float64         `json:"fitness"`
	ScorePercentage float64         `json:"score_percentage"`
	Report          ViolationReport `json:"report"`
	Diagnostics     Diagnostics     `json:"diagnostics"`
}
