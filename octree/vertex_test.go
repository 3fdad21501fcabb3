package octree

import (
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/require"
)

func newTestVertex(baseLevel int) *Vertex[int] {
	return &Vertex[int]{
		ID:        42,
		Position:  r3.Vector{X: 1, Y: 2, Z: 3},
		BaseLevel: baseLevel,
	}
}

func TestAddAdjacencyLevel(t *testing.T) {
	t.Run("records contiguous levels", func(t *testing.T) {
		v := newTestVertex(0)

		require.NoError(t, v.AddAdjacencyLevel([]VertexID{NoVertex, NoVertex, NoVertex, 1, 2, 3}, 0))
		require.NoError(t, v.AddAdjacencyLevel([]VertexID{4, 5, 6, 7, 8, 9}, 1))
		require.Equal(t, 2, v.AdjacencyLevels())

		record, ok := v.AdjacentVertices(0)
		require.True(t, ok)
		require.Equal(t, NoVertex, record[Nx])
		require.Equal(t, VertexID(1), record[Px])
		require.Equal(t, VertexID(3), record[Pz])

		record, ok = v.AdjacentVertices(1)
		require.True(t, ok)
		require.Equal(t, VertexID(4), record[Nx])
	})

	t.Run("rejects a record of the wrong length", func(t *testing.T) {
		v := newTestVertex(0)

		err := v.AddAdjacencyLevel([]VertexID{1, 2, 3}, 0)
		require.Error(t, err)
		require.True(t, errors.IsType(err, ErrTypeInvalidAdjacency))
		require.Equal(t, 0, v.AdjacencyLevels())
	})

	t.Run("rejects a duplicate level", func(t *testing.T) {
		v := newTestVertex(0)
		require.NoError(t, v.AddAdjacencyLevel([]VertexID{1, 2, 3, 4, 5, 6}, 0))

		err := v.AddAdjacencyLevel([]VertexID{7, 8, 9, 10, 11, 12}, 0)
		require.Error(t, err)
		require.True(t, errors.IsType(err, ErrTypeInvalidAdjacency))

		// the recorded level is untouched:
		record, ok := v.AdjacentVertices(0)
		require.True(t, ok)
		require.Equal(t, VertexID(1), record[Nx])
		require.Equal(t, 1, v.AdjacencyLevels())
	})

	t.Run("rejects a level that skips ahead", func(t *testing.T) {
		v := newTestVertex(0)

		err := v.AddAdjacencyLevel([]VertexID{1, 2, 3, 4, 5, 6}, 1)
		require.Error(t, err)
		require.True(t, errors.IsType(err, ErrTypeInvalidAdjacency))
		require.Equal(t, 0, v.AdjacencyLevels())
	})

	t.Run("levels are relative to the base level", func(t *testing.T) {
		v := newTestVertex(3)

		require.Error(t, v.AddAdjacencyLevel([]VertexID{1, 2, 3, 4, 5, 6}, 0))
		require.NoError(t, v.AddAdjacencyLevel([]VertexID{1, 2, 3, 4, 5, 6}, 3))
		require.NoError(t, v.AddAdjacencyLevel([]VertexID{7, 8, 9, 10, 11, 12}, 4))
	})
}

func TestAdjacentVerticesUnrecordedLevel(t *testing.T) {
	v := newTestVertex(2)
	require.NoError(t, v.AddAdjacencyLevel([]VertexID{1, 2, 3, 4, 5, 6}, 2))

	_, ok := v.AdjacentVertices(1)
	require.False(t, ok)

	_, ok = v.AdjacentVertices(3)
	require.False(t, ok)

	_, ok = v.AdjacentVertices(2)
	require.True(t, ok)
}

func TestMergeAdjacencyLevel(t *testing.T) {
	t.Run("appends the next level", func(t *testing.T) {
		v := newTestVertex(0)

		record := emptyAdjacencyRecord()
		record[Px] = 7
		require.NoError(t, v.mergeAdjacencyLevel(record, 0))
		require.Equal(t, 1, v.AdjacencyLevels())

		got, ok := v.AdjacentVertices(0)
		require.True(t, ok)
		require.Equal(t, VertexID(7), got[Px])
		require.Equal(t, NoVertex, got[Nx])
	})

	t.Run("fills absent slots of an existing level", func(t *testing.T) {
		v := newTestVertex(0)

		first := emptyAdjacencyRecord()
		first[Px] = 7
		require.NoError(t, v.mergeAdjacencyLevel(first, 0))

		second := emptyAdjacencyRecord()
		second[Nx] = 9
		second[Px] = 7 // re-asserting the same reference is allowed
		require.NoError(t, v.mergeAdjacencyLevel(second, 0))

		got, ok := v.AdjacentVertices(0)
		require.True(t, ok)
		require.Equal(t, VertexID(7), got[Px])
		require.Equal(t, VertexID(9), got[Nx])
		require.Equal(t, 1, v.AdjacencyLevels())
	})

	t.Run("rejects a conflicting slot", func(t *testing.T) {
		v := newTestVertex(0)

		first := emptyAdjacencyRecord()
		first[Px] = 7
		require.NoError(t, v.mergeAdjacencyLevel(first, 0))

		conflicting := emptyAdjacencyRecord()
		conflicting[Px] = 8
		err := v.mergeAdjacencyLevel(conflicting, 0)
		require.Error(t, err)
		require.True(t, errors.IsType(err, ErrTypeInvalidAdjacency))
	})

	t.Run("rejects a level out of the recordable range", func(t *testing.T) {
		v := newTestVertex(2)

		err := v.mergeAdjacencyLevel(emptyAdjacencyRecord(), 1)
		require.Error(t, err)
		require.True(t, errors.IsType(err, ErrTypeInvalidAdjacency))

		err = v.mergeAdjacencyLevel(emptyAdjacencyRecord(), 3)
		require.Error(t, err)
		require.True(t, errors.IsType(err, ErrTypeInvalidAdjacency))
	})
}
