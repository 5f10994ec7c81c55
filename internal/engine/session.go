package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/vastuhome/layoutengine/internal/geometry"
	"github.com/vastuhome/layoutengine/internal/model"
)

// minBoundaryArea rejects degenerate (zero or near-zero area) polygons.
const minBoundaryArea = 1e-6

// Session owns one optimization run end to end: input validation,
// population seeding, the generation loop, and result packaging. Sessions
// share no state; concurrent runs need no coordination.
type Session struct {
	settings model.Settings
}

// NewSession creates a session with the given settings. Zero-valued
// settings fields fall back to documented defaults.
func NewSession(settings model.Settings) *Session {
	return &Session{settings: settings.Normalize()}
}

// Run validates the request and executes the optimizer to completion.
//
// Invalid input fails fast with a classified *InputError before any
// search work starts. Everything else returns a result: an infeasible
// best-found layout is reported through the Feasible flag and the
// violation report, never through an error.
func (s *Session) Run(req model.OptimizeRequest) (model.OptimizeResult, error) {
	settings := s.settings
	if req.Settings != nil {
		settings = req.Settings.Normalize()
	}

	if err := validate(req, settings); err != nil {
		return model.OptimizeResult{}, err
	}

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	eval := NewEvaluator(req.Boundary, req.Items, settings.Clearance, req.EntryPoints)
	scorer := NewScorer(eval, settings.Weights)
	ga := newGeneticOptimizer(settings, req.Items, req.Boundary, scorer, seed)

	outcome := ga.optimize()

	return model.OptimizeResult{
		Layout:          outcome.best.layout,
		Feasible:        outcome.best.report.Feasible(),
		Fitness:         outcome.best.fitness,
		ScorePercentage: ScorePercentage(outcome.best.fitness),
		Report:          outcome.best.report,
		Diagnostics: model.Diagnostics{
			RunID:          uuid.New().String(),
			Generations:    outcome.generations,
			Elapsed:        outcome.elapsed,
			ElapsedMillis:  float64(outcome.elapsed.Microseconds()) / 1000.0,
			StopReason:     outcome.stopReason,
			Seed:           seed,
			FitnessHistory: outcome.history,
		},
	}, nil
}

// validate enforces the input contract: a simple polygon with positive
// area, positive item dimensions, unique item IDs, and a bounded item
// count.
func validate(req model.OptimizeRequest, settings model.Settings) error {
	if len(req.Boundary) < 3 {
		return inputErrorf(CodeInvalidBoundary, "boundary needs at least 3 points, got %d", len(req.Boundary))
	}
	if area := geometry.PolygonArea(req.Boundary); area < minBoundaryArea {
		return inputErrorf(CodeInvalidBoundary, "boundary polygon has zero area")
	}
	if len(req.Items) == 0 {
		return inputErrorf(CodeInvalidItem, "at least one item is required")
	}
	if len(req.Items) > settings.MaxItems {
		return inputErrorf(CodeCapacityExceeded, "item count %d exceeds capacity %d", len(req.Items), settings.MaxItems)
	}
	seen := make(map[string]bool, len(req.Items))
	for _, it := range req.Items {
		if it.ID == "" {
			return inputErrorf(CodeInvalidItem, "item has empty id")
		}
		if seen[it.ID] {
			return inputErrorf(CodeDuplicateItem, "duplicate item id %q", it.ID)
		}
		seen[it.ID] = true
		if it.Width <= 0 || it.Depth <= 0 {
			return inputErrorf(CodeInvalidItem, "item %q has non-positive dimensions %gx%g", it.ID, it.Width, it.Depth)
		}
	}
	return nil
}
