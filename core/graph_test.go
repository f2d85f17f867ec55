package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routeplanner/core"
)

// buildSquare constructs the undirected weighted square
//
//	A—B (1), B—D (2), D—C (3), C—A (4).
func buildSquare(t *testing.T) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	require.NoError(t, b.AddEdge("A", "B", 1))
	require.NoError(t, b.AddEdge("B", "D", 2))
	require.NoError(t, b.AddEdge("D", "C", 3))
	require.NoError(t, b.AddEdge("C", "A", 4))

	return b.Build()
}

func TestBuilder_Validation(t *testing.T) {
	b := core.NewBuilder()

	assert.ErrorIs(t, b.AddVertex(""), core.ErrEmptyVertexID)
	assert.ErrorIs(t, b.AddEdge("", "B", 1), core.ErrEmptyVertexID)
	assert.ErrorIs(t, b.AddEdge("A", "", 1), core.ErrEmptyVertexID)
	assert.ErrorIs(t, b.AddEdge("A", "A", 1), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, b.AddEdge("A", "B", -1), core.ErrNegativeWeight)

	// Nothing above may have left partial state behind.
	assert.Zero(t, b.Build().VertexCount())
}

func TestBuilder_DuplicateEdges(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.AddEdge("A", "B", 5))

	// Same pair, same weight, either orientation: idempotent.
	require.NoError(t, b.AddEdge("A", "B", 5))
	require.NoError(t, b.AddEdge("B", "A", 5))

	// Same pair, different weight: rejected.
	assert.ErrorIs(t, b.AddEdge("B", "A", 7), core.ErrConflictingEdge)

	g := b.Build()
	assert.Equal(t, 1, g.EdgeCount())
	w, ok := g.Weight("A", "B")
	assert.True(t, ok)
	assert.Equal(t, int64(5), w)
}

func TestBuilder_BuildIsSnapshot(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.AddEdge("A", "B", 1))
	g := b.Build()

	require.NoError(t, b.AddEdge("B", "C", 2))

	assert.Equal(t, []string{"A", "B"}, g.Vertices())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 3, b.Build().VertexCount())
}

func TestGraph_NeighborsSymmetric(t *testing.T) {
	g := buildSquare(t)

	for _, u := range g.Vertices() {
		for v, w := range g.Neighbors(u) {
			back, ok := g.Neighbors(v)[u]
			assert.True(t, ok, "missing reverse adjacency %s→%s", v, u)
			assert.Equal(t, w, back, "asymmetric weight on %s—%s", u, v)
		}
	}
	assert.Equal(t, map[string]int64{"B": 1, "C": 4}, g.Neighbors("A"))
}

func TestGraph_NeighborsUnknownVertex(t *testing.T) {
	g := buildSquare(t)

	nbrs := g.Neighbors("Z")
	require.NotNil(t, nbrs)
	assert.Empty(t, nbrs)
	assert.Empty(t, g.Neighbors(""))
}

func TestGraph_NeighborsIsCopy(t *testing.T) {
	g := buildSquare(t)

	nbrs := g.Neighbors("A")
	nbrs["B"] = 100
	delete(nbrs, "C")

	assert.Equal(t, map[string]int64{"B": 1, "C": 4}, g.Neighbors("A"))
}

func TestGraph_VerticesAndEdges(t *testing.T) {
	g := buildSquare(t)

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "C", Weight: 4},
		{From: "B", To: "D", Weight: 2},
		{From: "C", To: "D", Weight: 3},
	}, g.Edges())

	assert.True(t, g.HasVertex("D"))
	assert.False(t, g.HasVertex("E"))

	_, ok := g.Weight("A", "D")
	assert.False(t, ok)
}

func TestGraph_IsolatedVertexWithoutEdges(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.AddVertex("X"))
	require.NoError(t, b.AddEdge("A", "B", 1))
	g := b.Build()

	assert.Equal(t, []string{"A", "B", "X"}, g.Vertices())
	assert.Empty(t, g.Neighbors("X"))
}

func TestGraph_Isolate(t *testing.T) {
	g := buildSquare(t)

	h := g.Isolate("A")

	assert.True(t, h.HasVertex("A"))
	assert.Empty(t, h.Neighbors("A"))
	assert.NotContains(t, h.Neighbors("B"), "A")
	assert.NotContains(t, h.Neighbors("C"), "A")
	assert.Equal(t, 2, h.EdgeCount())
	assert.Len(t, h.Edges(), 2)

	// Source graph untouched.
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, map[string]int64{"B": 1, "C": 4}, g.Neighbors("A"))

	// Unknown vertex: equal copy.
	assert.Equal(t, g.Edges(), g.Isolate("Z").Edges())
}

func TestGraph_ConcurrentReads(t *testing.T) {
	g := buildSquare(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, v := range g.Vertices() {
				_ = g.Neighbors(v)
			}
			_ = g.Edges()
		}()
	}
	wg.Wait()
}
