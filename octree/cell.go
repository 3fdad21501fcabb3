package octree

import (
	"math"

	"github.com/aukilabs/dualgrid/geom"
)

// CellID references a cell in the tree that owns it. Ids are assigned in
// creation order and never reused.
type CellID uint32

// NoCell marks an absent cell reference.
const NoCell = CellID(math.MaxUint32)

// Cell is an axis-aligned cubic region at a given subdivision level. It
// references its 8 corner vertices in octant order and, once subdivided,
// exactly 8 children. Cells are owned by their tree; all references are
// ids into the tree's collections.
type Cell[C any] struct {
	ID    CellID
	Level int

	// Octant is the child slot the cell occupies in its parent. It is
	// meaningless for the root.
	Octant Octant

	Data C

	parent   CellID
	corners  [octantCount]VertexID
	children *[octantCount]CellID
	bounds   geom.Box
}

// IsRoot reports whether the cell has no parent.
func (c *Cell[C]) IsRoot() bool {
	return c.parent == NoCell
}

// HasChildren reports whether the cell has been subdivided.
func (c *Cell[C]) HasChildren() bool {
	return c.children != nil
}

// Corner returns the vertex occupying the given corner of the cell.
func (c *Cell[C]) Corner(o Octant) VertexID {
	return c.corners[o]
}

// Corners returns the cell's 8 corner vertices in octant order.
func (c *Cell[C]) Corners() [octantCount]VertexID {
	return c.corners
}

// Bounds returns the region the cell spans.
func (c *Cell[C]) Bounds() geom.Box {
	return c.bounds
}
