package model

import "github.com/google/uuid"

// Rotation is a placement rotation in degrees. Only the four axis-aligned
// rotations are supported; arbitrary angles would explode the search space
// without matching how furniture is actually placed.
type Rotation int

const (
	Rot0   Rotation = 0
	Rot90  Rotation = 90
	Rot180 Rotation = 180
	Rot270 Rotation = 270
)

// AllowedRotations lists every valid placement rotation in order.
var AllowedRotations = [4]Rotation{Rot0, Rot90, Rot180, Rot270}

// Swapped reports whether the rotation swaps an item's width and depth.
func (r Rotation) Swapped() bool {
	return r == Rot90 || r == Rot270
}

// Valid reports whether r is one of the four allowed rotations.
func (r Rotation) Valid() bool {
	switch r {
	case Rot0, Rot90, Rot180, Rot270:
		return true
	}
	return false
}

// Point2D represents a 2D coordinate in meters.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Boundary is the room outline as a closed polygon: the last point
// connects back to the first. Winding order does not matter.
type Boundary []Point2D

// Rect is an axis-aligned rectangle given by its min and max corners.
type Rect struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Width returns the rect extent along X.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the rect extent along Y.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Area returns the rect area.
func (r Rect) Area() float64 { return r.Width() * r.Height() }

// Center returns the rect center point.
func (r Rect) Center() Point2D {
	return Point2D{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Corners returns the four corner points of the rect.
func (r Rect) Corners() [4]Point2D {
	return [4]Point2D{
		{X: r.MinX, Y: r.MinY},
		{X: r.MaxX, Y: r.MinY},
		{X: r.MaxX, Y: r.MaxY},
		{X: r.MinX, Y: r.MaxY},
	}
}

// Item represents a placeable rectangular object. Height is carried
// through for the caller but plays no role in 2D placement scoring.
type Item struct {
	ID        string  `json:"id"`
	Category  string  `json:"category,omitempty"`
	Width     float64 `json:"width"`  // meters
	Depth     float64 `json:"depth"`  // meters
	Height    float64 `json:"height,omitempty"`
	Rotatable bool    `json:"rotatable"`
}

// NewItem creates an item with a generated ID.
func NewItem(category string, width, depth float64) Item {
	return Item{
		ID:        uuid.New().String()[:8],
		Category:  category,
		Width:     width,
		Depth:     depth,
		Rotatable: true,
	}
}

// Area returns the footprint area of the item.
func (it Item) Area() float64 { return it.Width * it.Depth }

// Placement positions one item: X, Y is the footprint center.
type Placement struct {
	ItemID   string   `json:"id"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Rotation Rotation `json:"rotation"`
}

// Layout is a complete assignment: one placement per item, in the same
// order as the session's item list.
type Layout []Placement

// ByItemID returns the placement for the given item ID.
func (l Layout) ByItemID(id string) (Placement, bool) {
	for _, p := range l {
		if p.ItemID == id {
			return p, true
		}
	}
	return Placement{}, false
}
