// Package geometry provides the pure 2D primitives the layout engine is
// built on: rotated bounding rects, overlap and containment tests, and
// distance computations. All functions are side-effect free and assume
// well-formed inputs; degenerate polygons are rejected upstream.
package geometry

import (
	"math"

	"github.com/vastuhome/layoutengine/internal/model"
)

// eps is the tolerance used for touch-vs-overlap decisions. Rects that
// share an edge within eps do not count as overlapping, which avoids
// false positives at exact grid boundaries.
const eps = 1e-9

// RotatedBounds returns the axis-aligned bounds of an item placed with
// its center at (x, y) under the given rotation. 90 and 270 degree
// rotations swap width and depth; 0 and 180 keep them.
func RotatedBounds(item model.Item, x, y float64, rot model.Rotation) model.Rect {
	w, d := item.Width, item.Depth
	if rot.Swapped() {
		w, d = d, w
	}
	return model.Rect{
		MinX: x - w/2,
		MinY: y - d/2,
		MaxX: x + w/2,
		MaxY: y + d/2,
	}
}

// PlacementBounds returns the bounds for a placement of the given item.
func PlacementBounds(item model.Item, p model.Placement) model.Rect {
	return RotatedBounds(item, p.X, p.Y, p.Rotation)
}

// Overlaps reports whether two rects share interior area. Touching edges
// do not overlap.
func Overlaps(a, b model.Rect) bool {
	return a.MinX < b.MaxX-eps && a.MaxX > b.MinX+eps &&
		a.MinY < b.MaxY-eps && a.MaxY > b.MinY+eps
}

// OverlapArea returns the shared interior area of two rects, zero when
// they do not overlap.
func OverlapArea(a, b model.Rect) float64 {
	w := math.Min(a.MaxX, b.MaxX) - math.Max(a.MinX, b.MinX)
	h := math.Min(a.MaxY, b.MaxY) - math.Max(a.MinY, b.MinY)
	if w <= eps || h <= eps {
		return 0
	}
	return w * h
}

// MinDistance returns the nearest-edge distance between two axis-aligned
// rects, zero when they touch or overlap.
func MinDistance(a, b model.Rect) float64 {
	dx := math.Max(math.Max(b.MinX-a.MaxX, a.MinX-b.MaxX), 0)
	dy := math.Max(math.Max(b.MinY-a.MaxY, a.MinY-b.MaxY), 0)
	return math.Hypot(dx, dy)
}

// PointInPolygon reports whether p lies inside or on the polygon, using
// ray casting with an on-edge tolerance.
func PointInPolygon(p model.Point2D, poly model.Boundary) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		if pointOnSegment(p, poly[i], poly[(i+1)%n]) {
			return true
		}
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		pi, pj := poly[i], poly[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xCross := (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if p.X < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// WithinBoundary reports whether all four corners of r lie inside or on
// the polygon. For the convex and mildly concave rooms this engine
// serves, corner containment is an adequate proxy for full containment.
func WithinBoundary(r model.Rect, poly model.Boundary) bool {
	for _, c := range r.Corners() {
		if !PointInPolygon(c, poly) {
			return false
		}
	}
	return true
}

// OutOfBoundsSpan returns a monotonic measure of how far r escapes the
// polygon: the largest corner-to-boundary distance among corners that
// are outside, zero when fully contained. Deeper excursions always score
// strictly worse than shallow ones.
func OutOfBoundsSpan(r model.Rect, poly model.Boundary) float64 {
	span := 0.0
	for _, c := range r.Corners() {
		if PointInPolygon(c, poly) {
			continue
		}
		d := distanceToPolygon(c, poly)
		if d > span {
			span = d
		}
		// A corner exactly on the test's far side of an edge can report
		// distance zero; still count the excursion.
		if span == 0 {
			span = eps * 10
		}
	}
	return span
}

// DistanceToBoundary returns the minimum distance from the rect to the
// polygon outline, zero if any corner lies outside or on the outline.
func DistanceToBoundary(r model.Rect, poly model.Boundary) float64 {
	best := math.Inf(1)
	for _, c := range r.Corners() {
		if !PointInPolygon(c, poly) {
			return 0
		}
		if d := distanceToPolygon(c, poly); d < best {
			best = d
		}
	}
	// Corners can all be far from walls while an edge midpoint is close;
	// sample edge midpoints as well.
	corners := r.Corners()
	for i := 0; i < 4; i++ {
		next := corners[(i+1)%4]
		mid := model.Point2D{X: (corners[i].X + next.X) / 2, Y: (corners[i].Y + next.Y) / 2}
		if d := distanceToPolygon(mid, poly); d < best {
			best = d
		}
	}
	return best
}

// PolygonArea returns the absolute area of the polygon (shoelace).
func PolygonArea(poly model.Boundary) float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return math.Abs(sum) / 2
}

// PolygonBounds returns the axis-aligned bounding rect of the polygon.
func PolygonBounds(poly model.Boundary) model.Rect {
	if len(poly) == 0 {
		return model.Rect{}
	}
	r := model.Rect{MinX: poly[0].X, MinY: poly[0].Y, MaxX: poly[0].X, MaxY: poly[0].Y}
	for _, p := range poly[1:] {
		r.MinX = math.Min(r.MinX, p.X)
		r.MinY = math.Min(r.MinY, p.Y)
		r.MaxX = math.Max(r.MaxX, p.X)
		r.MaxY = math.Max(r.MaxY, p.Y)
	}
	return r
}

// distanceToPolygon returns the minimum distance from p to any polygon
// segment.
func distanceToPolygon(p model.Point2D, poly model.Boundary) float64 {
	n := len(poly)
	best := math.Inf(1)
	for i := 0; i < n; i++ {
		d := pointSegmentDistance(p, poly[i], poly[(i+1)%n])
		if d < best {
			best = d
		}
	}
	return best
}

// pointSegmentDistance returns the distance from p to segment ab.
func pointSegmentDistance(p, a, b model.Point2D) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	apx, apy := p.X-a.X, p.Y-a.Y
	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return math.Hypot(apx, apy)
	}
	t := (apx*abx + apy*aby) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(p.X-(a.X+t*abx), p.Y-(a.Y+t*aby))
}

// pointOnSegment reports whether p lies on segment ab within tolerance.
func pointOnSegment(p, a, b model.Point2D) bool {
	return pointSegmentDistance(p, a, b) <= eps
}
