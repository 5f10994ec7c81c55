package engine

import (
	"time"

	"github.com/vastuhome/layoutengine/internal/model"
)

// ComparisonScenario defines a named settings variant to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.Settings
}

// ComparisonResult holds the run outcome and headline statistics for a
// single scenario.
type ComparisonResult struct {
	Scenario ComparisonScenario
	Result   model.OptimizeResult
	Err      error
}

// CompareScenarios runs the same request under each scenario's settings
// and returns the results in scenario order. This enables side-by-side
// comparison of optimization parameters (population size, clearance
// strictness, search budget).
func CompareScenarios(scenarios []ComparisonScenario, req model.OptimizeRequest) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))
	for _, scenario := range scenarios {
		r := req
		r.Settings = nil
		result, err := NewSession(scenario.Settings).Run(r)
		results = append(results, ComparisonResult{
			Scenario: scenario,
			Result:   result,
			Err:      err,
		})
	}
	return results
}

// BuildDefaultScenarios generates what-if variants of the base settings:
// a deeper search, a bigger population, and a relaxed clearance table.
func BuildDefaultScenarios(base model.Settings) []ComparisonScenario {
	base = base.Normalize()
	scenarios := []ComparisonScenario{
		{Name: "Current Settings", Settings: base},
	}

	deep := base
	deep.Generations = base.Generations * 2
	deep.TimeBudget = base.TimeBudget * 2
	scenarios = append(scenarios, ComparisonScenario{
		Name:     "Deeper Search",
		Settings: deep,
	})

	wide := base
	wide.PopulationSize = base.PopulationSize * 2
	scenarios = append(scenarios, ComparisonScenario{
		Name:     "Larger Population",
		Settings: wide,
	})

	relaxed := base
	relaxed.Clearance.Categories = make(map[string]model.ClearanceRule, len(base.Clearance.Categories))
	for cat, rule := range base.Clearance.Categories {
		rule.ItemGap *= 0.5
		rule.WallGap *= 0.5
		relaxed.Clearance.Categories[cat] = rule
	}
	scenarios = append(scenarios, ComparisonScenario{
		Name:     "Relaxed Clearances",
		Settings: relaxed,
	})

	return scenarios
}

// TotalElapsed sums the elapsed time of all comparison results.
func TotalElapsed(results []ComparisonResult) time.Duration {
	var total time.Duration
	for _, r := range results {
		total += r.Result.Diagnostics.Elapsed
	}
	return total
}
