package octree

import (
	"math"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/golang/geo/r3"
)

// VertexID references a vertex in the tree that owns it. Ids are assigned in
// creation order and never reused.
type VertexID uint32

// NoVertex marks an absent vertex reference, such as an adjacency slot that
// has no neighbor at the grid boundary.
const NoVertex = VertexID(math.MaxUint32)

type adjacencyRecord [directionCount]VertexID

func emptyAdjacencyRecord() adjacencyRecord {
	return adjacencyRecord{NoVertex, NoVertex, NoVertex, NoVertex, NoVertex, NoVertex}
}

// Vertex is a point of the dual grid, shared by up to 8 cells. It records
// one adjacency record per lattice level it participates in, each holding
// up to 6 direction-indexed neighbor vertices at that level's spacing.
type Vertex[V any] struct {
	ID       VertexID
	Position r3.Vector

	// BaseLevel is the first lattice level the vertex participates in:
	// 0 for the root corners, L+1 for vertices minted while subdividing a
	// level L cell.
	BaseLevel int

	Data V

	adjacency []adjacencyRecord
}

// AddAdjacencyLevel appends the adjacency record for the given level.
// The record must hold exactly 6 direction-ordered vertex references
// (NoVertex for absent neighbors), and levels must be added contiguously
// starting at BaseLevel. Violations are rejected without touching the
// levels already recorded.
func (v *Vertex[V]) AddAdjacencyLevel(neighbors []VertexID, level int) error {
	if len(neighbors) != directionCount {
		return errors.New("adjacency record does not hold one reference per direction").
			WithType(ErrTypeInvalidAdjacency).
			WithTag("vertex_id", v.ID).
			WithTag("length", len(neighbors))
	}

	next := v.BaseLevel + len(v.adjacency)
	if level < next {
		return errors.New("adjacency level is already recorded").
			WithType(ErrTypeInvalidAdjacency).
			WithTag("vertex_id", v.ID).
			WithTag("level", level)
	}
	if level > next {
		return errors.New("adjacency level skips ahead of the next expected level").
			WithType(ErrTypeInvalidAdjacency).
			WithTag("vertex_id", v.ID).
			WithTag("level", level).
			WithTag("expected_level", next)
	}

	var record adjacencyRecord
	copy(record[:], neighbors)
	v.adjacency = append(v.adjacency, record)
	return nil
}

// AdjacentVertices returns the 6 direction-indexed neighbor references at
// the given lattice level. The second return value is false when the vertex
// has no record for that level, which callers must treat as "not subdivided
// to that level" rather than an error.
func (v *Vertex[V]) AdjacentVertices(level int) ([directionCount]VertexID, bool) {
	i := level - v.BaseLevel
	if i < 0 || i >= len(v.adjacency) {
		return emptyAdjacencyRecord(), false
	}
	return v.adjacency[i], true
}

// AdjacencyLevels returns how many lattice levels the vertex has records
// for, starting at BaseLevel.
func (v *Vertex[V]) AdjacencyLevels() int {
	return len(v.adjacency)
}

// mergeAdjacencyLevel records neighbor references for a level while
// tolerating a record already written by an earlier subdivision of an
// adjacent cell. Slots only go from absent to present; a present slot can
// be re-asserted with the same reference but never changed.
func (v *Vertex[V]) mergeAdjacencyLevel(neighbors adjacencyRecord, level int) error {
	i := level - v.BaseLevel
	if i < 0 || i > len(v.adjacency) {
		return errors.New("adjacency level is out of the recordable range").
			WithType(ErrTypeInvalidAdjacency).
			WithTag("vertex_id", v.ID).
			WithTag("level", level).
			WithTag("base_level", v.BaseLevel)
	}

	if i == len(v.adjacency) {
		v.adjacency = append(v.adjacency, emptyAdjacencyRecord())
	}

	record := &v.adjacency[i]
	for d := 0; d < directionCount; d++ {
		switch {
		case neighbors[d] == NoVertex:
		case record[d] == NoVertex:
			record[d] = neighbors[d]
		case record[d] != neighbors[d]:
			return errors.New("adjacency slot already references another vertex").
				WithType(ErrTypeInvalidAdjacency).
				WithTag("vertex_id", v.ID).
				WithTag("level", level).
				WithTag("direction", Direction(d))
		}
	}
	return nil
}
