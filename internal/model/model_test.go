package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotation(t *testing.T) {
	assert.False(t, Rot0.Swapped())
	assert.True(t, Rot90.Swapped())
	assert.False(t, Rot180.Swapped())
	assert.True(t, Rot270.Swapped())

	assert.True(t, Rot90.Valid())
	assert.False(t, Rotation(45).Valid())
	assert.False(t, Rotation(-90).Valid())
}

func TestRect(t *testing.T) {
	r := Rect{MinX: 1, MinY: 2, MaxX: 4, MaxY: 4}
	assert.Equal(t, 3.0, r.Width())
	assert.Equal(t, 2.0, r.Height())
	assert.Equal(t, 6.0, r.Area())
	assert.Equal(t, Point2D{X: 2.5, Y: 3}, r.Center())
}

func TestNewItem(t *testing.T) {
	it := NewItem("sofa", 2.0, 0.9)
	assert.Len(t, it.ID, 8)
	assert.Equal(t, "sofa", it.Category)
	assert.True(t, it.Rotatable)
	assert.Equal(t, 1.8, it.Area())
}

func TestLayout_ByItemID(t *testing.T) {
	l := Layout{
		{ItemID: "a", X: 1, Y: 1},
		{ItemID: "b", X: 2, Y: 2, Rotation: Rot90},
	}

	p, ok := l.ByItemID("b")
	require.True(t, ok)
	assert.Equal(t, Rot90, p.Rotation)

	_, ok = l.ByItemID("missing")
	assert.False(t, ok)
}

func TestPlacement_WireFormat(t *testing.T) {
	data, err := json.Marshal(Placement{ItemID: "bed-1", X: 1.5, Y: 2, Rotation: Rot90})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"bed-1","x":1.5,"y":2,"rotation":90}`, string(data))
}

func TestViolationReport_Feasible(t *testing.T) {
	assert.True(t, ViolationReport{}.Feasible())
	assert.True(t, ViolationReport{Overlap: 1e-12}.Feasible(), "float noise is not a violation")
	assert.False(t, ViolationReport{Overlap: 0.01}.Feasible())
	assert.False(t, ViolationReport{Walkway: 0.3}.Feasible())
}

func TestViolationReport_Weighted(t *testing.T) {
	v := ViolationReport{Overlap: 2, Boundary: 1, Clearance: 0.5, Walkway: 0.2}
	w := Weights{Overlap: 10, Boundary: 100, Clearance: 4, Walkway: 5}
	assert.InDelta(t, 20+100+2+1, v.Weighted(w), 1e-12)
}
