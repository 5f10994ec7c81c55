package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastuhome/layoutengine/internal/model"
)

func twoItemScorer(t *testing.T) (*Scorer, model.Layout, model.Layout) {
	t.Helper()
	boundary := rectangleBoundary(6, 5)
	items := []model.Item{
		{ID: "a", Width: 1, Depth: 1},
		{ID: "b", Width: 1, Depth: 1},
	}
	eval := NewEvaluator(boundary, items, model.DefaultClearanceConfig(), nil)
	scorer := NewScorer(eval, model.DefaultWeights())

	feasible := model.Layout{placement("a", 1, 1), placement("b", 4, 3)}
	overlapping := model.Layout{placement("a", 3, 3), placement("b", 3.2, 3)}
	return scorer, feasible, overlapping
}

func TestScore_FeasibleBeatsInfeasible(t *testing.T) {
	scorer, feasible, overlapping := twoItemScorer(t)

	feasFit, feasReport := scorer.Score(feasible)
	infFit, infReport := scorer.Score(overlapping)

	require.True(t, feasReport.Feasible())
	require.False(t, infReport.Feasible())
	assert.Greater(t, feasFit, infFit,
		"any feasible layout must outrank any infeasible one")
	assert.GreaterOrEqual(t, feasFit, 0.0)
	assert.Less(t, infFit, 0.0)
}

func TestScore_MonotonicInPenalty(t *testing.T) {
	scorer, _, _ := twoItemScorer(t)

	// Push the second item progressively deeper into the first.
	slight := model.Layout{placement("a", 3, 3), placement("b", 3.9, 3)}
	deep := model.Layout{placement("a", 3, 3), placement("b", 3.3, 3)}

	slightFit, _ := scorer.Score(slight)
	deepFit, _ := scorer.Score(deep)
	assert.Greater(t, slightFit, deepFit,
		"increasing the overlap penalty must strictly decrease fitness")
}

func TestScore_Idempotent(t *testing.T) {
	scorer, feasible, overlapping := twoItemScorer(t)

	for _, layout := range []model.Layout{feasible, overlapping} {
		fit1, rep1 := scorer.Score(layout)
		fit2, rep2 := scorer.Score(layout)
		assert.Equal(t, fit1, fit2)
		assert.Equal(t, rep1, rep2)
	}
}

func TestScore_QualityRewardsWallAlignment(t *testing.T) {
	boundary := rectangleBoundary(6, 5)
	items := []model.Item{{ID: "a", Width: 1, Depth: 1}}
	eval := NewEvaluator(boundary, items, model.DefaultClearanceConfig(), nil)
	scorer := NewScorer(eval, model.DefaultWeights())

	floating, _ := scorer.Score(model.Layout{placement("a", 3, 2.5)})
	aligned, _ := scorer.Score(model.Layout{placement("a", 0.55, 2.5)})

	assert.Greater(t, aligned, floating,
		"furniture close to a wall should earn the alignment bonus")
}

func TestScorePercentage(t *testing.T) {
	assert.InDelta(t, 50.0, ScorePercentage(0), 1e-9)
	assert.Greater(t, ScorePercentage(1.0), 50.0)
	assert.Less(t, ScorePercentage(-100), 1.0)
	assert.Greater(t, ScorePercentage(100), 99.0)

	// Monotonic across the range.
	prev := ScorePercentage(-1000)
	for _, f := range []float64{-500, -10, -1, 0, 0.5, 1, 2, 10, 1000} {
		cur := ScorePercentage(f)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}

	// Saturates at both ends.
	assert.GreaterOrEqual(t, ScorePercentage(-1e9), 0.0)
	assert.LessOrEqual(t, ScorePercentage(1e9), 100.0)
}
