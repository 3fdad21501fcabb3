package octree

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/golang/geo/r3"
	"github.com/google/uuid"

	"github.com/aukilabs/dualgrid/geom"
)

// Tree owns every vertex and cell of a dual-grid octree and is the entry
// point for building the root region, subdividing cells and resolving
// neighbors. Cells and vertices live for the lifetime of the tree; there is
// no deletion or merge operation.
//
// A tree is not safe for concurrent use. A concurrent embedding must
// serialize subdivision calls, since neighbor-aware subdivision reads
// sibling state.
type Tree[C, V any] struct {
	// UUID identifies the tree instance in logs and metrics.
	UUID string

	bounds   geom.Box
	cells    []*Cell[C]
	vertices []*Vertex[V]

	newCellData   func() C
	newVertexData func() V
}

// New creates a tree with a single root cell spanning minCorner to
// maxCorner, then subdivides it uniformly to initialDepth. minCorner must
// be strictly less than maxCorner on every axis and initialDepth must not
// be negative; degenerate input is rejected before any entity is created.
//
// newCellData and newVertexData are invoked to allocate the payload of
// every new cell and vertex. A nil factory yields the zero value.
func New[C, V any](minCorner, maxCorner r3.Vector, initialDepth int, newCellData func() C, newVertexData func() V) (*Tree[C, V], error) {
	bounds := geom.NewBox(minCorner, maxCorner)
	if !bounds.Valid() {
		return nil, errors.New("tree bounds are degenerate").
			WithType(ErrTypeInvalidBounds).
			WithTag("min_corner", minCorner).
			WithTag("max_corner", maxCorner)
	}
	if initialDepth < 0 {
		return nil, errors.New("initial depth is negative").
			WithType(ErrTypeInvalidBounds).
			WithTag("initial_depth", initialDepth)
	}

	t := &Tree[C, V]{
		UUID:          uuid.New().String(),
		bounds:        bounds,
		newCellData:   newCellData,
		newVertexData: newVertexData,
	}

	root := t.newCell(0, NxNyNz, NoCell, bounds)
	for o := Octant(0); o < octantCount; o++ {
		x, y, z := o.Coords()
		root.corners[o] = t.newVertex(bounds.Corner(x, y, z), 0).ID
	}
	if err := t.wireRootCorners(root); err != nil {
		return nil, err
	}

	if err := t.Subdivide(root, initialDepth); err != nil {
		return nil, err
	}

	logs.WithTag("tree", t.UUID).
		WithTag("cells", len(t.cells)).
		WithTag("vertices", len(t.vertices)).
		WithTag("initial_depth", initialDepth).
		Debug("tree created")
	return t, nil
}

// Root returns the root cell.
func (t *Tree[C, V]) Root() *Cell[C] {
	return t.cells[0]
}

// Cell returns the cell with the given id, or nil if no such cell exists.
func (t *Tree[C, V]) Cell(id CellID) *Cell[C] {
	if id == NoCell || int(id) >= len(t.cells) {
		return nil
	}
	return t.cells[id]
}

// Vertex returns the vertex with the given id, or nil if no such vertex
// exists.
func (t *Tree[C, V]) Vertex(id VertexID) *Vertex[V] {
	if id == NoVertex || int(id) >= len(t.vertices) {
		return nil
	}
	return t.vertices[id]
}

// CellCount returns the number of cells owned by the tree.
func (t *Tree[C, V]) CellCount() int {
	return len(t.cells)
}

// VertexCount returns the number of vertices owned by the tree.
func (t *Tree[C, V]) VertexCount() int {
	return len(t.vertices)
}

// Bounds returns the region spanned by the root cell.
func (t *Tree[C, V]) Bounds() geom.Box {
	return t.bounds
}

// Parent returns the parent of the given cell, or nil for the root.
func (t *Tree[C, V]) Parent(c *Cell[C]) *Cell[C] {
	if c.parent == NoCell {
		return nil
	}
	return t.cells[c.parent]
}

// Child returns the child cell occupying the given octant, or nil when the
// cell has not been subdivided.
func (t *Tree[C, V]) Child(c *Cell[C], o Octant) *Cell[C] {
	if c.children == nil {
		return nil
	}
	return t.cells[c.children[o]]
}

// AdjacentVertices returns the neighbors of the given vertex at the given
// lattice level. It is a pure lookup; adjacency is recorded at construction
// and subdivision time.
func (t *Tree[C, V]) AdjacentVertices(v *Vertex[V], level int) ([directionCount]VertexID, bool) {
	return v.AdjacentVertices(level)
}

// Locate returns the deepest cell containing the given point, or nil when
// the point lies outside the root bounds.
func (t *Tree[C, V]) Locate(p r3.Vector) *Cell[C] {
	if !t.bounds.Contains(p) {
		return nil
	}

	c := t.Root()
	for c.HasChildren() {
		center := c.bounds.Center()
		var x, y, z int
		if p.X >= center.X {
			x = 1
		}
		if p.Y >= center.Y {
			y = 1
		}
		if p.Z >= center.Z {
			z = 1
		}
		c = t.cells[c.children[OctantFromCoords(x, y, z)]]
	}
	return c
}

func (t *Tree[C, V]) newCell(level int, octant Octant, parent CellID, bounds geom.Box) *Cell[C] {
	var data C
	if t.newCellData != nil {
		data = t.newCellData()
	}

	c := &Cell[C]{
		ID:     CellID(len(t.cells)),
		Level:  level,
		Octant: octant,
		Data:   data,
		parent: parent,
		bounds: bounds,
	}
	t.cells = append(t.cells, c)
	instrumentCellCreated(t.UUID, len(t.cells))
	return c
}

func (t *Tree[C, V]) newVertex(position r3.Vector, baseLevel int) *Vertex[V] {
	var data V
	if t.newVertexData != nil {
		data = t.newVertexData()
	}

	v := &Vertex[V]{
		ID:        VertexID(len(t.vertices)),
		Position:  position,
		BaseLevel: baseLevel,
		Data:      data,
	}
	t.vertices = append(t.vertices, v)
	instrumentVertexCreated(t.UUID, len(t.vertices))
	return v
}

// wireRootCorners records the level 0 adjacency of the 8 root corners from
// the fixed cube topology: for each corner, the 3 directions pointing into
// the cube reference the corner one coordinate flip away and the 3 outward
// directions stay absent. This yields the 24 directed edges of a cube.
func (t *Tree[C, V]) wireRootCorners(root *Cell[C]) error {
	for o := Octant(0); o < octantCount; o++ {
		x, y, z := o.Coords()

		record := emptyAdjacencyRecord()
		if x == 0 {
			record[Px] = root.corners[OctantFromCoords(1, y, z)]
		} else {
			record[Nx] = root.corners[OctantFromCoords(0, y, z)]
		}
		if y == 0 {
			record[Py] = root.corners[OctantFromCoords(x, 1, z)]
		} else {
			record[Ny] = root.corners[OctantFromCoords(x, 0, z)]
		}
		if z == 0 {
			record[Pz] = root.corners[OctantFromCoords(x, y, 1)]
		} else {
			record[Nz] = root.corners[OctantFromCoords(x, y, 0)]
		}

		if err := t.vertices[root.corners[o]].AddAdjacencyLevel(record[:], 0); err != nil {
			return err
		}
	}
	return nil
}
