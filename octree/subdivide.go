package octree

// Subdivide ensures the given cell is subdivided down to targetLevel,
// creating child cells level by level. Cells already at or below
// targetLevel are left untouched, so repeating a call is a no-op.
//
// Splitting a cell builds the 3x3x3 vertex lattice of its children. Every
// lattice point that an adjacent equal-level cell already owns is reused
// through the neighbor resolver, so vertices on shared faces and edges are
// the same instance across sibling and cross-parent boundaries by
// construction.
func (t *Tree[C, V]) Subdivide(c *Cell[C], targetLevel int) error {
	if c.Level >= targetLevel {
		return nil
	}

	if !c.HasChildren() {
		if err := t.split(c); err != nil {
			return err
		}
	}

	for _, id := range c.children {
		if err := t.Subdivide(t.cells[id], targetLevel); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree[C, V]) split(c *Cell[C]) error {
	level := c.Level + 1

	// The cell corners fill the even lattice corners. Every other point is
	// reused when a neighbor already owns it, otherwise minted. The lattice
	// center is the midpoint of the two diagonally opposite cell corners
	// and is never shared.
	var lattice [3][3][3]VertexID
	for o := Octant(0); o < octantCount; o++ {
		x, y, z := o.Coords()
		lattice[x*2][y*2][z*2] = c.corners[o]
	}
	for i := 0; i <= 2; i++ {
		for j := 0; j <= 2; j++ {
			for k := 0; k <= 2; k++ {
				if i%2 == 0 && j%2 == 0 && k%2 == 0 {
					continue
				}
				if id := t.sharedLatticeVertex(c, i, j, k, level); id != NoVertex {
					lattice[i][j][k] = id
					continue
				}
				position := c.bounds.Point(float64(i)/2, float64(j)/2, float64(k)/2)
				lattice[i][j][k] = t.newVertex(position, level).ID
			}
		}
	}

	children := new([octantCount]CellID)
	for o := Octant(0); o < octantCount; o++ {
		x, y, z := o.Coords()
		child := t.newCell(level, o, c.ID, c.bounds.Octant(x, y, z))
		for co := Octant(0); co < octantCount; co++ {
			cx, cy, cz := co.Coords()
			child.corners[co] = lattice[x+cx][y+cy][z+cz]
		}
		children[o] = child.ID
	}
	c.children = children

	// Record the lattice adjacency at the children's level. Slots pointing
	// outside the lattice stay absent; when the cell on the other side of
	// the boundary subdivides, its own pass fills them through the merge
	// path.
	for i := 0; i <= 2; i++ {
		for j := 0; j <= 2; j++ {
			for k := 0; k <= 2; k++ {
				record := emptyAdjacencyRecord()
				for d := Direction(0); d < directionCount; d++ {
					dx, dy, dz := d.Offset()
					ni, nj, nk := i+dx, j+dy, k+dz
					if ni >= 0 && ni <= 2 && nj >= 0 && nj <= 2 && nk >= 0 && nk <= 2 {
						record[d] = lattice[ni][nj][nk]
					}
				}
				if err := t.vertices[lattice[i][j][k]].mergeAdjacencyLevel(record, level); err != nil {
					return err
				}
			}
		}
	}

	instrumentSubdivision(t.UUID)
	return nil
}

// sharedLatticeVertex looks up the vertex at lattice point (i, j, k) of a
// cell about to split, among neighbors that already own it. It returns
// NoVertex when no neighbor does. Lattice points strictly inside the cell
// are never shared.
func (t *Tree[C, V]) sharedLatticeVertex(c *Cell[C], i, j, k, level int) VertexID {
	if id := t.recordedLatticeVertex(c, i, j, k, level); id != NoVertex {
		return id
	}

	var dirs []Direction
	if i == 0 {
		dirs = append(dirs, Nx)
	} else if i == 2 {
		dirs = append(dirs, Px)
	}
	if j == 0 {
		dirs = append(dirs, Ny)
	} else if j == 2 {
		dirs = append(dirs, Py)
	}
	if k == 0 {
		dirs = append(dirs, Nz)
	} else if k == 2 {
		dirs = append(dirs, Pz)
	}

	for _, path := range neighborPaths(dirs) {
		n := c
		for _, d := range path {
			n = t.AdjacentCell(n, d)
			if n == nil || n.Level != c.Level {
				n = nil
				break
			}
		}
		if n == nil || !n.HasChildren() {
			continue
		}

		ni, nj, nk := i, j, k
		for _, d := range path {
			switch d {
			case Nx, Px:
				ni = 2 - ni
			case Ny, Py:
				nj = 2 - nj
			case Nz, Pz:
				nk = 2 - nk
			}
		}
		return t.latticeVertex(n, ni, nj, nk)
	}
	return NoVertex
}

// recordedLatticeVertex probes the leveled adjacency of the cell's own
// corner vertices for edge midpoints, which sit one lattice step away from
// two corners. A cell that owns the midpoint has already merged that slot
// into the shared corner vertex, so the probe finds vertices whose owner is
// not reachable through equal-level neighbor walks.
func (t *Tree[C, V]) recordedLatticeVertex(c *Cell[C], i, j, k, level int) VertexID {
	odd := 0
	axis := -1
	for a, coord := range [3]int{i, j, k} {
		if coord == 1 {
			odd++
			axis = a
		}
	}
	if odd != 1 {
		return NoVertex
	}

	coords := [3]int{i, j, k}
	for _, end := range [2]int{0, 2} {
		endCoords := coords
		endCoords[axis] = end

		corner := c.corners[OctantFromCoords(endCoords[0]/2, endCoords[1]/2, endCoords[2]/2)]
		toward := Direction(axis + 3) // positive axis direction
		if end == 2 {
			toward = Direction(axis) // negative axis direction
		}

		if record, ok := t.vertices[corner].AdjacentVertices(level); ok && record[toward] != NoVertex {
			return record[toward]
		}
	}
	return NoVertex
}

// latticeVertex reads the vertex at lattice point (i, j, k) of a subdivided
// cell from the corner of the matching child.
func (t *Tree[C, V]) latticeVertex(c *Cell[C], i, j, k int) VertexID {
	ox, cx := splitLatticeCoord(i)
	oy, cy := splitLatticeCoord(j)
	oz, cz := splitLatticeCoord(k)

	child := t.cells[c.children[OctantFromCoords(ox, oy, oz)]]
	return child.corners[OctantFromCoords(cx, cy, cz)]
}

func splitLatticeCoord(i int) (octant, corner int) {
	if i == 2 {
		return 1, 1
	}
	return 0, i
}

// neighborPaths enumerates the resolver walks that can reach a cell sharing
// the lattice point with the given boundary directions: each face neighbor,
// then the edge-diagonal neighbor through both step orders.
func neighborPaths(dirs []Direction) [][]Direction {
	switch len(dirs) {
	case 1:
		return [][]Direction{{dirs[0]}}
	case 2:
		return [][]Direction{
			{dirs[0]},
			{dirs[1]},
			{dirs[0], dirs[1]},
			{dirs[1], dirs[0]},
		}
	default:
		return nil
	}
}
