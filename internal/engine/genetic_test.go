package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastuhome/layoutengine/internal/model"
)

func fastSettings() model.Settings {
	s := model.DefaultSettings()
	s.PopulationSize = 40
	s.Generations = 60
	s.TimeBudget = 10 * time.Second
	s.StagnationWindow = 60
	s.Seed = 42
	return s
}

func newTestOptimizer(settings model.Settings, boundary model.Boundary, items []model.Item) *geneticOptimizer {
	eval := NewEvaluator(boundary, items, settings.Clearance, nil)
	scorer := NewScorer(eval, settings.Weights)
	return newGeneticOptimizer(settings, items, boundary, scorer, settings.Seed)
}

func TestOptimize_EveryLayoutCoversEveryItem(t *testing.T) {
	boundary := rectangleBoundary(5, 4)
	items := []model.Item{
		{ID: "bed", Category: "bed", Width: 2, Depth: 1.6, Rotatable: true},
		{ID: "desk", Category: "desk", Width: 1.2, Depth: 0.6, Rotatable: true},
		{ID: "chair", Category: "chair", Width: 0.5, Depth: 0.5, Rotatable: true},
	}
	ga := newTestOptimizer(fastSettings(), boundary, items)

	outcome := ga.optimize()

	require.Len(t, outcome.best.layout, len(items))
	seen := make(map[string]int)
	for _, p := range outcome.best.layout {
		seen[p.ItemID]++
	}
	for _, it := range items {
		assert.Equal(t, 1, seen[it.ID], "item %s must appear exactly once", it.ID)
	}
}

func TestOptimize_RespectsGenerationLimit(t *testing.T) {
	boundary := rectangleBoundary(5, 4)
	items := []model.Item{{ID: "a", Width: 1, Depth: 1, Rotatable: true}}

	settings := fastSettings()
	settings.Generations = 10
	settings.StagnationWindow = 100
	ga := newTestOptimizer(settings, boundary, items)

	outcome := ga.optimize()
	assert.LessOrEqual(t, outcome.generations, 10)
	assert.Len(t, outcome.history, outcome.generations+1,
		"history records the initial population plus one entry per generation")
}

func TestOptimize_TimeBudgetStopsRun(t *testing.T) {
	boundary := rectangleBoundary(5, 4)
	items := []model.Item{{ID: "a", Width: 1, Depth: 1, Rotatable: true}}

	settings := fastSettings()
	settings.Generations = 1_000_000
	settings.StagnationWindow = 1_000_000
	settings.TimeBudget = 50 * time.Millisecond
	ga := newTestOptimizer(settings, boundary, items)

	start := time.Now()
	outcome := ga.optimize()
	assert.Equal(t, model.StopTimeBudget, outcome.stopReason)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestOptimize_ConvergenceStopsRun(t *testing.T) {
	boundary := rectangleBoundary(5, 4)
	items := []model.Item{{ID: "a", Width: 1, Depth: 1, Rotatable: true}}

	settings := fastSettings()
	settings.Generations = 10_000
	settings.StagnationWindow = 5
	ga := newTestOptimizer(settings, boundary, items)

	outcome := ga.optimize()
	assert.Equal(t, model.StopConverged, outcome.stopReason)
	assert.Less(t, outcome.generations, 10_000)
}

func TestOptimize_BestFitnessNeverRegresses(t *testing.T) {
	boundary := rectangleBoundary(5, 4)
	items := []model.Item{
		{ID: "a", Width: 1.5, Depth: 1, Rotatable: true},
		{ID: "b", Width: 1, Depth: 1, Rotatable: true},
	}
	ga := newTestOptimizer(fastSettings(), boundary, items)

	outcome := ga.optimize()
	for i := 1; i < len(outcome.history); i++ {
		assert.GreaterOrEqual(t, outcome.history[i], outcome.history[i-1],
			"session-level elitism means best-seen fitness is non-decreasing")
	}
}

func TestOptimize_SameSeedSameResult(t *testing.T) {
	boundary := rectangleBoundary(5, 4)
	items := []model.Item{
		{ID: "a", Category: "table", Width: 1.5, Depth: 1, Rotatable: true},
		{ID: "b", Category: "chair", Width: 0.5, Depth: 0.5, Rotatable: true},
	}

	first := newTestOptimizer(fastSettings(), boundary, items).optimize()
	second := newTestOptimizer(fastSettings(), boundary, items).optimize()

	assert.Equal(t, first.best.layout, second.best.layout)
	assert.Equal(t, first.best.fitness, second.best.fitness)
	assert.Equal(t, first.history, second.history)
}

func TestCrossover_ChildCoversEveryItem(t *testing.T) {
	boundary := rectangleBoundary(5, 4)
	items := []model.Item{
		{ID: "a", Width: 1, Depth: 1, Rotatable: true},
		{ID: "b", Width: 1, Depth: 1, Rotatable: true},
		{ID: "c", Width: 1, Depth: 1, Rotatable: true},
	}
	ga := newTestOptimizer(fastSettings(), boundary, items)

	p1 := candidate{layout: ga.randomLayout()}
	p2 := candidate{layout: ga.randomLayout()}
	child := ga.crossover(p1, p2)

	require.Len(t, child.layout, 3)
	for i, it := range items {
		assert.Equal(t, it.ID, child.layout[i].ItemID)
		// Each gene comes from one of the parents unchanged.
		assert.True(t, child.layout[i] == p1.layout[i] || child.layout[i] == p2.layout[i])
	}
}

func TestMutate_KeepsPlacementsInBounds(t *testing.T) {
	boundary := rectangleBoundary(5, 4)
	items := []model.Item{{ID: "a", Width: 1, Depth: 1, Rotatable: true}}

	settings := fastSettings()
	settings.MutationRate = 1.0
	ga := newTestOptimizer(settings, boundary, items)

	c := candidate{layout: ga.randomLayout()}
	for i := 0; i < 200; i++ {
		ga.mutate(&c)
		p := c.layout[0]
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.X, 5.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.LessOrEqual(t, p.Y, 4.0)
		assert.True(t, p.Rotation.Valid())
	}
}

func TestMutate_NonRotatableStaysAtZero(t *testing.T) {
	boundary := rectangleBoundary(5, 4)
	items := []model.Item{{ID: "a", Width: 2, Depth: 1, Rotatable: false}}

	settings := fastSettings()
	settings.MutationRate = 1.0
	ga := newTestOptimizer(settings, boundary, items)

	c := candidate{layout: ga.randomLayout()}
	require.Equal(t, model.Rot0, c.layout[0].Rotation)
	for i := 0; i < 100; i++ {
		ga.mutate(&c)
		assert.Equal(t, model.Rot0, c.layout[0].Rotation)
	}
}
