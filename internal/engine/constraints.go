// Package engine implements the spatial layout optimization core: the
// constraint evaluator, the fitness function, the genetic placement
// optimizer, and the session controller that orchestrates a run.
package engine

import (
	"math"

	"github.com/vastuhome/layoutengine/internal/geometry"
	"github.com/vastuhome/layoutengine/internal/model"
)

// Evaluator scores candidate layouts against the hard constraints of one
// session. It is built once per run from the boundary, item set, and
// clearance configuration, and is safe for concurrent use: Evaluate does
// not mutate any shared state.
type Evaluator struct {
	boundary  model.Boundary
	items     []model.Item
	clearance model.ClearanceConfig

	bounds    model.Rect
	roomArea  float64
	itemsArea float64
	grid      *walkwayGrid // nil when no entry points were declared
}

// NewEvaluator builds an evaluator for the given session inputs. Entry
// points are optional; without them the walkway penalty is always zero.
func NewEvaluator(boundary model.Boundary, items []model.Item, clearance model.ClearanceConfig, entries []model.Point2D) *Evaluator {
	e := &Evaluator{
		boundary:  boundary,
		items:     items,
		clearance: clearance,
		bounds:    geometry.PolygonBounds(boundary),
		roomArea:  geometry.PolygonArea(boundary),
	}
	for _, it := range items {
		e.itemsArea += it.Area()
	}
	if len(entries) > 0 {
		e.grid = newWalkwayGrid(boundary, entries, clearance)
	}
	return e
}

// Rects returns the rotated bounding rect for every placement in layout,
// in item order.
func (e *Evaluator) Rects(layout model.Layout) []model.Rect {
	rects := make([]model.Rect, len(layout))
	for i, p := range layout {
		rects[i] = geometry.RotatedBounds(e.items[i], p.X, p.Y, p.Rotation)
	}
	return rects
}

// Evaluate computes the violation report for a layout. The report is
// deterministic: re-evaluating the same layout yields identical values.
func (e *Evaluator) Evaluate(layout model.Layout) model.ViolationReport {
	return e.evaluateRects(e.Rects(layout))
}

func (e *Evaluator) evaluateRects(rects []model.Rect) model.ViolationReport {
	var report model.ViolationReport

	// Out-of-bounds: the deepest escaping corner per item, summed.
	for _, r := range rects {
		report.Boundary += geometry.OutOfBoundsSpan(r, e.boundary)
	}

	// Pairwise overlap area.
	for i := 0; i < len(rects); i++ {
		for j := i + 1; j < len(rects); j++ {
			report.Overlap += geometry.OverlapArea(rects[i], rects[j])
		}
	}

	// Clearance shortfalls, item-to-item and item-to-wall.
	for i := 0; i < len(rects); i++ {
		ruleI := e.clearance.Rule(e.items[i].Category)
		for j := i + 1; j < len(rects); j++ {
			ruleJ := e.clearance.Rule(e.items[j].Category)
			required := math.Max(ruleI.ItemGap, ruleJ.ItemGap)
			if required <= 0 {
				continue
			}
			actual := geometry.MinDistance(rects[i], rects[j])
			if actual < required {
				report.Clearance += required - actual
			}
		}
		if ruleI.WallGap > 0 {
			actual := geometry.DistanceToBoundary(rects[i], e.boundary)
			if actual < ruleI.WallGap {
				report.Clearance += ruleI.WallGap - actual
			}
		}
	}

	if e.grid != nil {
		coverage := e.grid.coverage(rects)
		required := e.clearance.WalkwayCoverage
		if coverage < required {
			report.Walkway = (required - coverage) / required
		}
	}

	return report
}

// FreeSpaceRatio returns unused floor area over total floor area,
// clamped to [0, 1].
func (e *Evaluator) FreeSpaceRatio() float64 {
	if e.roomArea <= 0 {
		return 0
	}
	ratio := 1 - e.itemsArea/e.roomArea
	if ratio < 0 {
		return 0
	}
	return ratio
}

// WalkwayCoverage returns the reachable open-floor fraction for a layout,
// or 1 when no entry points were declared.
func (e *Evaluator) WalkwayCoverage(rects []model.Rect) float64 {
	if e.grid == nil {
		return 1
	}
	return e.grid.coverage(rects)
}

// walkwayGrid is the sampled interior grid used to approximate walkway
// reachability. Geometry that does not depend on the layout (which cells
// are inside the room, where the entries map to) is computed once.
type walkwayGrid struct {
	res        float64
	cols, rows int
	originX    float64
	originY    float64
	interior   []bool
	entries    []model.Point2D
	erode      int // corridor half-width in cells
}

func newWalkwayGrid(boundary model.Boundary, entries []model.Point2D, cfg model.ClearanceConfig) *walkwayGrid {
	bounds := geometry.PolygonBounds(boundary)
	res := cfg.WalkwayResolution
	cols := int(math.Ceil(bounds.Width()/res)) + 1
	rows := int(math.Ceil(bounds.Height()/res)) + 1

	g := &walkwayGrid{
		res:      res,
		cols:     cols,
		rows:     rows,
		originX:  bounds.MinX,
		originY:  bounds.MinY,
		interior: make([]bool, cols*rows),
		entries:  entries,
		erode:    int(cfg.WalkwayWidth / (2 * res)),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			g.interior[row*cols+col] = geometry.PointInPolygon(g.center(col, row), boundary)
		}
	}
	return g
}

func (g *walkwayGrid) center(col, row int) model.Point2D {
	return model.Point2D{
		X: g.originX + (float64(col)+0.5)*g.res,
		Y: g.originY + (float64(row)+0.5)*g.res,
	}
}

// coverage returns the fraction of open cells served by a minimum-width
// corridor reachable from the entry points. Open cells are interior
// cells not covered by any item; walkable cells are open cells whose
// neighborhood within the corridor half-width is fully open.
func (g *walkwayGrid) coverage(rects []model.Rect) float64 {
	n := g.cols * g.rows
	open := make([]bool, n)
	openCount := 0
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			idx := row*g.cols + col
			if !g.interior[idx] {
				continue
			}
			c := g.center(col, row)
			covered := false
			for _, r := range rects {
				if c.X > r.MinX && c.X < r.MaxX && c.Y > r.MinY && c.Y < r.MaxY {
					covered = true
					break
				}
			}
			if !covered {
				open[idx] = true
				openCount++
			}
		}
	}
	if openCount == 0 {
		return 0
	}

	walkable := make([]bool, n)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			idx := row*g.cols + col
			if !open[idx] {
				continue
			}
			walkable[idx] = g.neighborhoodOpen(open, col, row)
		}
	}

	// BFS over walkable cells from each entry's nearest walkable cell.
	reached := make([]bool, n)
	queue := make([]int, 0, openCount)
	for _, entry := range g.entries {
		if idx, ok := g.nearestWalkable(walkable, entry); ok && !reached[idx] {
			reached[idx] = true
			queue = append(queue, idx)
		}
	}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		col, row := idx%g.cols, idx/g.cols
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nc, nr := col+d[0], row+d[1]
			if nc < 0 || nc >= g.cols || nr < 0 || nr >= g.rows {
				continue
			}
			nidx := nr*g.cols + nc
			if walkable[nidx] && !reached[nidx] {
				reached[nidx] = true
				queue = append(queue, nidx)
			}
		}
	}

	// Open cells within the corridor half-width of a reached cell count
	// as served: the walkway passes close enough to use them.
	served := 0
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			idx := row*g.cols + col
			if open[idx] && g.nearReached(reached, col, row) {
				served++
			}
		}
	}
	return float64(served) / float64(openCount)
}

// neighborhoodOpen reports whether every interior cell within the
// corridor half-width of (col, row) is open. Cells outside the polygon
// block the corridor.
func (g *walkwayGrid) neighborhoodOpen(open []bool, col, row int) bool {
	r := g.erode
	for dr := -r; dr <= r; dr++ {
		for dc := -r; dc <= r; dc++ {
			nc, nr := col+dc, row+dr
			if nc < 0 || nc >= g.cols || nr < 0 || nr >= g.rows {
				return false
			}
			if !open[nr*g.cols+nc] {
				return false
			}
		}
	}
	return true
}

// nearReached reports whether any reached cell lies within the corridor
// half-width plus one cell of (col, row).
func (g *walkwayGrid) nearReached(reached []bool, col, row int) bool {
	r := g.erode + 1
	for dr := -r; dr <= r; dr++ {
		for dc := -r; dc <= r; dc++ {
			nc, nr := col+dc, row+dr
			if nc < 0 || nc >= g.cols || nr < 0 || nr >= g.rows {
				continue
			}
			if reached[nr*g.cols+nc] {
				return true
			}
		}
	}
	return false
}

// nearestWalkable maps an entry point to the closest walkable cell within
// a door-sized search radius. Entries with no walkable cell nearby are
// blocked and contribute no reachability.
func (g *walkwayGrid) nearestWalkable(walkable []bool, p model.Point2D) (int, bool) {
	maxDist := 2*g.res*float64(g.erode+1) + g.res*2
	bestIdx, bestDist := -1, math.Inf(1)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			idx := row*g.cols + col
			if !walkable[idx] {
				continue
			}
			c := g.center(col, row)
			d := math.Hypot(c.X-p.X, c.Y-p.Y)
			if d < bestDist {
				bestDist = d
				bestIdx = idx
			}
		}
	}
	if bestIdx < 0 || bestDist > maxDist {
		return 0, false
	}
	return bestIdx, true
}
