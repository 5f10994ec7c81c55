package engine

import (
	"math"

	"github.com/vastuhome/layoutengine/internal/geometry"
	"github.com/vastuhome/layoutengine/internal/model"
)

// marginCap bounds the clearance-margin bonus: gaps beyond required+cap
// earn nothing extra, so the quality term cannot reward spreading items
// into corners indefinitely.
const marginCap = 0.5

// wallAlignDistance is the wall proximity under which an item counts as
// wall-aligned for the quality bonus.
const wallAlignDistance = 0.1

// Scorer combines the constraint evaluator with the quality terms into a
// single scalar fitness used to rank candidates.
type Scorer struct {
	eval    *Evaluator
	weights model.Weights
}

// NewScorer builds a scorer over an evaluator with the given weights.
func NewScorer(eval *Evaluator, weights model.Weights) *Scorer {
	return &Scorer{eval: eval, weights: weights}
}

// Score returns the fitness of a layout together with its violation
// report. Feasible layouts score quality in [0, ~2]; any layout with a
// hard violation is pushed below every feasible one by the infeasible
// floor, so correctness always dominates the quality bonus.
func (s *Scorer) Score(layout model.Layout) (float64, model.ViolationReport) {
	rects := s.eval.Rects(layout)
	report := s.eval.evaluateRects(rects)

	fitness := s.quality(rects) - s.weights.Lambda*report.Weighted(s.weights)
	if !report.Feasible() {
		fitness -= s.weights.InfeasibleFloor
	}
	return fitness, report
}

// quality rewards free floor space, generous clearance margins, and
// wall-aligned furniture. Each term is normalized and capped so the sum
// stays below the infeasible floor.
func (s *Scorer) quality(rects []model.Rect) float64 {
	q := s.weights.FreeSpace * s.eval.FreeSpaceRatio()

	if len(rects) > 0 {
		q += s.weights.ClearanceMargin * s.clearanceMargin(rects)
		q += s.weights.WallAlignment * s.wallAlignment(rects)
	}
	return q
}

// clearanceMargin averages, over clearance-constrained pairs, how far the
// actual gap exceeds the requirement, normalized by marginCap. Returns 1
// when there are no constrained pairs.
func (s *Scorer) clearanceMargin(rects []model.Rect) float64 {
	total, pairs := 0.0, 0
	for i := 0; i < len(rects); i++ {
		ruleI := s.eval.clearance.Rule(s.eval.items[i].Category)
		for j := i + 1; j < len(rects); j++ {
			ruleJ := s.eval.clearance.Rule(s.eval.items[j].Category)
			required := math.Max(ruleI.ItemGap, ruleJ.ItemGap)
			if required <= 0 {
				continue
			}
			margin := geometry.MinDistance(rects[i], rects[j]) - required
			total += clamp(margin/marginCap, 0, 1)
			pairs++
		}
	}
	if pairs == 0 {
		return 1
	}
	return total / float64(pairs)
}

// wallAlignment returns the fraction of items sitting close to a wall.
func (s *Scorer) wallAlignment(rects []model.Rect) float64 {
	aligned := 0
	for _, r := range rects {
		if geometry.DistanceToBoundary(r, s.eval.boundary) < wallAlignDistance {
			aligned++
		}
	}
	return float64(aligned) / float64(len(rects))
}

// ScorePercentage maps a raw fitness to a bounded 0-100 display value.
// The transform is monotonic and saturates at both ends; feasible layouts
// (fitness >= 0) land at 50 or above.
func ScorePercentage(fitness float64) float64 {
	return 50 * (1 + math.Tanh(fitness/4))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
