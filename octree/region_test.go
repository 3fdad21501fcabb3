package octree

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/require"
)

func TestLeafCellsInRegion(t *testing.T) {
	tree := newTestTree(t, 1)

	t.Run("the whole cube", func(t *testing.T) {
		leaves := tree.LeafCellsInRegion(r3.Vector{X: -1, Y: -1, Z: -1}, r3.Vector{X: 2, Y: 2, Z: 2})
		require.Len(t, leaves, 8)
	})

	t.Run("the lower x half", func(t *testing.T) {
		leaves := tree.LeafCellsInRegion(r3.Vector{X: 0, Y: 0, Z: 0}, r3.Vector{X: 0.4, Y: 1, Z: 1})
		require.Len(t, leaves, 4)
		for _, c := range leaves {
			require.Equal(t, 0.0, c.Bounds().Min.X)
		}
	})

	t.Run("outside the cube", func(t *testing.T) {
		leaves := tree.LeafCellsInRegion(r3.Vector{X: 2, Y: 2, Z: 2}, r3.Vector{X: 3, Y: 3, Z: 3})
		require.Empty(t, leaves)
	})

	t.Run("face contact only", func(t *testing.T) {
		leaves := tree.LeafCellsInRegion(r3.Vector{X: 1, Y: 0, Z: 0}, r3.Vector{X: 2, Y: 1, Z: 1})
		require.Empty(t, leaves)
	})
}

func TestLeafCellsInRegionMixedDepth(t *testing.T) {
	tree := newTestTree(t, 1)
	root := tree.Root()
	require.NoError(t, tree.Subdivide(tree.Child(root, NxNyNz), 2))

	// 7 level 1 leaves plus 8 level 2 leaves:
	leaves := tree.LeafCellsInRegion(r3.Vector{X: -1, Y: -1, Z: -1}, r3.Vector{X: 2, Y: 2, Z: 2})
	require.Len(t, leaves, 15)

	// a region inside the subdivided child returns its level 2 leaves:
	leaves = tree.LeafCellsInRegion(r3.Vector{X: 0.1, Y: 0.1, Z: 0.1}, r3.Vector{X: 0.2, Y: 0.2, Z: 0.2})
	require.Len(t, leaves, 1)
	require.Equal(t, 2, leaves[0].Level)
}

func TestDebugInfo(t *testing.T) {
	tree := newTestTree(t, 1)
	require.NoError(t, tree.Subdivide(tree.Child(tree.Root(), PxPyPz), 2))

	info := tree.DebugInfo()
	require.Equal(t, tree.UUID, info.TreeUUID)
	require.Equal(t, uint32(tree.CellCount()), info.CellCount)
	require.Equal(t, uint32(tree.VertexCount()), info.VertexCount)
	require.Equal(t, uint32(15), info.LeafCount)
	require.Equal(t, uint32(2), info.MaxDepth)
	require.Equal(t, []uint32{1, 8, 8}, info.CellsPerLevel)
	require.Equal(t, r3.Vector{}, info.MinPoint)
	require.Equal(t, r3.Vector{X: 1, Y: 1, Z: 1}, info.MaxPoint)
}

func TestDebugInfoString(t *testing.T) {
	tree := newTestTree(t, 1)
	info := tree.DebugInfo()

	var decoded DebugInfo
	require.NoError(t, json.Unmarshal([]byte(info.String()), &decoded))
	require.Equal(t, info, decoded)
}
