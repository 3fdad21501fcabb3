// Package octree implements a dual-grid octree: a hierarchical spatial
// subdivision whose cells share corner vertices with their geometric
// neighbors instead of holding eight disjoint corner points per cell.
// Cells can be refined individually to arbitrary depth and queried for
// same-level and cross-level neighbors across cell boundaries.
package octree

// Direction is one of the 6 axis-aligned face directions of a cube. The
// declaration order is fixed and used as an array index everywhere.
type Direction uint8

const (
	Nx = Direction(iota)
	Ny
	Nz
	Px
	Py
	Pz

	directionCount = 6
)

var directionNames = [directionCount]string{"Nx", "Ny", "Nz", "Px", "Py", "Pz"}

func (d Direction) String() string {
	if int(d) >= directionCount {
		return "invalid"
	}
	return directionNames[d]
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 3) % directionCount
}

var directionOffsets = [directionCount][3]int{
	{-1, 0, 0},
	{0, -1, 0},
	{0, 0, -1},
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// Offset returns the unit integer offset vector of the direction.
func (d Direction) Offset() (dx, dy, dz int) {
	o := directionOffsets[d]
	return o[0], o[1], o[2]
}

// Octant identifies one of the 8 corners of a cube, or equivalently one of
// the 8 child slots of a subdivided cell. The index relates to the 3-bit
// corner coordinate as index = x*4 + y*2 + z.
type Octant uint8

const (
	NxNyNz = Octant(iota)
	NxNyPz
	NxPyNz
	NxPyPz
	PxNyNz
	PxNyPz
	PxPyNz
	PxPyPz

	octantCount = 8
)

// Coords returns the 3-bit coordinate of the octant, each component in {0,1}.
func (o Octant) Coords() (x, y, z int) {
	return int(o>>2) & 1, int(o>>1) & 1, int(o) & 1
}

// OctantFromCoords is the inverse of Coords. Components must be in {0,1}.
func OctantFromCoords(x, y, z int) Octant {
	return Octant(x*4 + y*2 + z)
}

var octantNames = [octantCount]string{
	"NxNyNz", "NxNyPz", "NxPyNz", "NxPyPz",
	"PxNyNz", "PxNyPz", "PxPyNz", "PxPyPz",
}

func (o Octant) String() string {
	if int(o) >= octantCount {
		return "invalid"
	}
	return octantNames[o]
}
