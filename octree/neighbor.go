package octree

// AdjacentCell returns the cell adjacent to c in the given direction, or
// nil when no neighbor exists there.
//
// The neighbor of a non-root cell is resolved from its octant coordinate:
// when stepping in the direction stays within the parent, the neighbor is a
// sibling. Otherwise the parent's neighbor is resolved recursively; if that
// neighbor is not subdivided it is returned as-is, so the result can be a
// cell at a coarser level than c and callers must handle that. If it is
// subdivided, the overflowed coordinate wraps around and the matching child
// is returned. Recursion depth is bounded by c.Level; the root has no
// neighbors in any direction.
func (t *Tree[C, V]) AdjacentCell(c *Cell[C], d Direction) *Cell[C] {
	if c.IsRoot() {
		return nil
	}

	x, y, z := c.Octant.Coords()
	dx, dy, dz := d.Offset()
	x, y, z = x+dx, y+dy, z+dz

	parent := t.cells[c.parent]
	if x >= 0 && x < 2 && y >= 0 && y < 2 && z >= 0 && z < 2 {
		return t.cells[parent.children[OctantFromCoords(x, y, z)]]
	}

	across := t.AdjacentCell(parent, d)
	if across == nil {
		return nil
	}
	if !across.HasChildren() {
		return across
	}
	return t.cells[across.children[OctantFromCoords((x+2)%2, (y+2)%2, (z+2)%2)]]
}
