package engine

import (
	"math/rand"
	"sort"
	"time"

	"github.com/vastuhome/layoutengine/internal/geometry"
	"github.com/vastuhome/layoutengine/internal/model"
)

// improvementEps is the minimum best-fitness gain that counts as progress
// for convergence detection.
const improvementEps = 1e-9

// candidate is one member of the population: a complete layout with its
// cached score.
type candidate struct {
	layout  model.Layout
	fitness float64
	report  model.ViolationReport
}

// runOutcome is what the optimizer hands back to the session controller.
type runOutcome struct {
	best        candidate
	generations int
	elapsed     time.Duration
	stopReason  model.StopReason
	history     []float64
}

// geneticOptimizer runs the population search for a single session. Each
// run owns its population and random stream; nothing is shared between
// runs.
type geneticOptimizer struct {
	settings model.Settings
	items    []model.Item
	scorer   *Scorer
	bounds   model.Rect
	rng      *rand.Rand
}

func newGeneticOptimizer(settings model.Settings, items []model.Item, boundary model.Boundary, scorer *Scorer, seed int64) *geneticOptimizer {
	return &geneticOptimizer{
		settings: settings,
		items:    items,
		scorer:   scorer,
		bounds:   geometry.PolygonBounds(boundary),
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// optimize runs the generational loop until one of the three termination
// conditions fires: generation limit, wall-clock budget, or stagnation.
// The best candidate ever seen is retained across the whole run, not just
// the final generation.
func (g *geneticOptimizer) optimize() runOutcome {
	start := time.Now()

	population := g.initPopulation()
	for i := range population {
		g.score(&population[i])
	}

	best := g.copyCandidate(bestOf(population))
	history := []float64{best.fitness}
	stagnant := 0
	generations := 0
	stopReason := model.StopGenerationLimit

	for generations < g.settings.Generations {
		if time.Since(start) >= g.settings.TimeBudget {
			stopReason = model.StopTimeBudget
			break
		}

		population = g.nextGeneration(population)
		generations++

		genBest := bestOf(population)
		if genBest.fitness > best.fitness+improvementEps {
			best = g.copyCandidate(genBest)
			stagnant = 0
		} else {
			stagnant++
		}
		history = append(history, best.fitness)

		if stagnant >= g.settings.StagnationWindow {
			stopReason = model.StopConverged
			break
		}
	}

	return runOutcome{
		best:        best,
		generations: generations,
		elapsed:     time.Since(start),
		stopReason:  stopReason,
		history:     history,
	}
}

// nextGeneration breeds a full replacement population: the top EliteCount
// candidates carry over unchanged, the rest are children of tournament
// winners.
func (g *geneticOptimizer) nextGeneration(population []candidate) []candidate {
	sort.Slice(population, func(i, j int) bool {
		return population[i].fitness > population[j].fitness
	})

	next := make([]candidate, 0, g.settings.PopulationSize)
	for i := 0; i < g.settings.EliteCount && i < len(population); i++ {
		next = append(next, g.copyCandidate(population[i]))
	}

	for len(next) < g.settings.PopulationSize {
		parent1 := g.tournamentSelect(population)
		parent2 := g.tournamentSelect(population)
		child := g.crossover(parent1, parent2)
		g.mutate(&child)
		g.score(&child)
		next = append(next, child)
	}
	return next
}

// initPopulation seeds random layouts: every item gets a uniformly
// sampled position inside the boundary's bounding box and a uniformly
// sampled allowed rotation. No feasibility is guaranteed at this stage.
func (g *geneticOptimizer) initPopulation() []candidate {
	population := make([]candidate, g.settings.PopulationSize)
	for i := range population {
		population[i] = candidate{layout: g.randomLayout()}
	}
	return population
}

func (g *geneticOptimizer) randomLayout() model.Layout {
	layout := make(model.Layout, len(g.items))
	for i, it := range g.items {
		layout[i] = model.Placement{
			ItemID:   it.ID,
			X:        g.bounds.MinX + g.rng.Float64()*g.bounds.Width(),
			Y:        g.bounds.MinY + g.rng.Float64()*g.bounds.Height(),
			Rotation: g.randomRotation(it),
		}
	}
	return layout
}

func (g *geneticOptimizer) randomRotation(it model.Item) model.Rotation {
	if !it.Rotatable {
		return model.Rot0
	}
	return model.AllowedRotations[g.rng.Intn(len(model.AllowedRotations))]
}

// tournamentSelect picks the best of TournamentSize random candidates.
// Weak candidates keep a nonzero chance of parenthood, which preserves
// diversity.
func (g *geneticOptimizer) tournamentSelect(population []candidate) candidate {
	best := population[g.rng.Intn(len(population))]
	for i := 1; i < g.settings.TournamentSize; i++ {
		challenger := population[g.rng.Intn(len(population))]
		if challenger.fitness > best.fitness {
			best = challenger
		}
	}
	return best
}

// crossover breeds a child by item-wise uniform inheritance: each item's
// placement comes from one parent or the other, so the child always
// covers every item exactly once.
func (g *geneticOptimizer) crossover(parent1, parent2 candidate) candidate {
	layout := make(model.Layout, len(g.items))
	for i := range layout {
		if g.rng.Float64() < 0.5 {
			layout[i] = parent1.layout[i]
		} else {
			layout[i] = parent2.layout[i]
		}
	}
	return candidate{layout: layout}
}

// mutate perturbs each placement with probability MutationRate: the
// position jitters within a local neighborhood and the rotation may be
// resampled for rotatable items.
func (g *geneticOptimizer) mutate(c *candidate) {
	for i := range c.layout {
		if g.rng.Float64() >= g.settings.MutationRate {
			continue
		}
		p := &c.layout[i]
		jitter := g.settings.MutationJitter
		p.X = clamp(p.X+(g.rng.Float64()*2-1)*jitter, g.bounds.MinX, g.bounds.MaxX)
		p.Y = clamp(p.Y+(g.rng.Float64()*2-1)*jitter, g.bounds.MinY, g.bounds.MaxY)
		if g.rng.Float64() < 0.5 {
			p.Rotation = g.randomRotation(g.items[i])
		}
	}
}

func (g *geneticOptimizer) score(c *candidate) {
	c.fitness, c.report = g.scorer.Score(c.layout)
}

func (g *geneticOptimizer) copyCandidate(c candidate) candidate {
	layout := make(model.Layout, len(c.layout))
	copy(layout, c.layout)
	return candidate{layout: layout, fitness: c.fitness, report: c.report}
}

func bestOf(population []candidate) candidate {
	best := population[0]
	for _, c := range population[1:] {
		if c.fitness > best.fitness {
			best = c
		}
	}
	return best
}
