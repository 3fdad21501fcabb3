package octree

import (
	"github.com/golang/geo/r3"
	"github.com/segmentio/encoding/json"

	"github.com/aukilabs/dualgrid/geom"
)

// LeafCellsInRegion returns the leaf cells whose region overlaps the given
// axis-aligned box with nonzero volume. Leaves at different levels can be
// returned together when the tree is unevenly subdivided.
func (t *Tree[C, V]) LeafCellsInRegion(min, max r3.Vector) []*Cell[C] {
	region := geom.NewBox(min, max)

	var leaves []*Cell[C]
	t.collectLeaves(t.Root(), region, &leaves)
	return leaves
}

func (t *Tree[C, V]) collectLeaves(c *Cell[C], region geom.Box, out *[]*Cell[C]) {
	if !c.bounds.Intersects(region) {
		return
	}
	if !c.HasChildren() {
		*out = append(*out, c)
		return
	}
	for _, id := range c.children {
		t.collectLeaves(t.cells[id], region, out)
	}
}

// DebugInfo is a snapshot of a tree's occupancy.
type DebugInfo struct {
	TreeUUID      string    `json:"tree_uuid"`
	CellCount     uint32    `json:"cell_count"`
	VertexCount   uint32    `json:"vertex_count"`
	LeafCount     uint32    `json:"leaf_count"`
	MaxDepth      uint32    `json:"max_depth"`
	CellsPerLevel []uint32  `json:"cells_per_level"`
	MinPoint      r3.Vector `json:"min_point"`
	MaxPoint      r3.Vector `json:"max_point"`
}

func (i DebugInfo) String() string {
	b, err := json.Marshal(i)
	if err != nil {
		return ""
	}
	return string(b)
}

// DebugInfo returns a snapshot of the tree's occupancy.
func (t *Tree[C, V]) DebugInfo() DebugInfo {
	info := DebugInfo{
		TreeUUID:    t.UUID,
		CellCount:   uint32(len(t.cells)),
		VertexCount: uint32(len(t.vertices)),
		MinPoint:    t.bounds.Min,
		MaxPoint:    t.bounds.Max,
	}

	for _, c := range t.cells {
		if uint32(c.Level) > info.MaxDepth {
			info.MaxDepth = uint32(c.Level)
		}
		for len(info.CellsPerLevel) <= c.Level {
			info.CellsPerLevel = append(info.CellsPerLevel, 0)
		}
		info.CellsPerLevel[c.Level]++
		if !c.HasChildren() {
			info.LeafCount++
		}
	}
	return info
}
