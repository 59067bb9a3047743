package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineup/core"
)

func TestGraph_Options(t *testing.T) {
	g := core.NewGraph()
	assert.False(t, g.Directed(), "default must be undirected")
	assert.False(t, g.Weighted(), "default must be unweighted")

	wg := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	assert.True(t, wg.Directed())
	assert.True(t, wg.Weighted())
}

func TestAddVertex_RegistrationOrder(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"Tango", "Aria", "Mambo"} {
		require.NoError(t, g.AddVertex(id))
	}
	// Re-adding keeps the original position.
	require.NoError(t, g.AddVertex("Tango"))

	assert.Equal(t, []string{"Tango", "Aria", "Mambo"}, g.Vertices())
	assert.Equal(t, 3, g.VertexCount())

	idx, err := g.VertexIndex("Mambo")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	_, err = g.VertexIndex("Waltz")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 3)
	assert.ErrorIs(t, err, core.ErrBadWeight)

	wg := core.NewGraph(core.WithWeighted())
	_, err = wg.AddEdge("A", "A", 1)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = wg.AddEdge("", "B", 1)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = wg.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = wg.AddEdge("B", "A", 2)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "undirected mirror counts as the same pair")
}

func TestEdges_InsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	// Twelve edges so that textual IDs "e10".."e12" would sort before "e2".
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge(fmt.Sprintf("S%d", i), fmt.Sprintf("S%d", i+1), int64(i+1))
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 12)
	for i, e := range edges {
		assert.Equal(t, uint64(i+1), e.Seq)
		assert.Equal(t, fmt.Sprintf("e%d", i+1), e.ID)
	}
	assert.Equal(t, int64(78), g.TotalWeight())
}

func TestNeighbors_UndirectedMirror(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for _, id := range []string{"C", "A", "B"} {
		require.NoError(t, g.AddVertex(id))
	}
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "A", 2)

	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B"}, ids, "registration order, not lexicographic")

	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, nbs, 2)
	assert.Equal(t, "B", nbs[0].Other("A"))
	assert.Equal(t, "C", nbs[1].Other("A"))

	assert.True(t, g.HasEdge("B", "A"))
	e, err := g.EdgeBetween("A", "C")
	require.NoError(t, err)
	assert.Equal(t, int64(2), e.Weight)

	deg, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	_, err = g.Neighbors("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestNeighbors_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("src", "p", 2)
	_, _ = g.AddEdge("p", "s", 1)

	out, err := g.Neighbors("p")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "s", out[0].To)
	assert.False(t, g.HasEdge("p", "src"))
}

func TestClone(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex("Z"))
	_, _ = g.AddEdge("A", "B", 4)

	empty := g.CloneEmpty()
	assert.Equal(t, []string{"Z", "A", "B"}, empty.Vertices())
	assert.Equal(t, 0, empty.EdgeCount())
	assert.True(t, empty.Weighted())

	eid, err := empty.AddEdge("Z", "A", 1)
	require.NoError(t, err)
	assert.Equal(t, "e2", eid, "clone continues the edge sequence")

	full := g.Clone()
	assert.True(t, full.HasEdge("B", "A"))
	_, _ = full.AddEdge("Z", "B", 9)
	assert.False(t, g.HasEdge("Z", "B"), "clone must not alias the source")
}

func TestConcurrentReads(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < 50; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("V%d", i), fmt.Sprintf("V%d", i+1), 1)
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_, _ = g.NeighborIDs(fmt.Sprintf("V%d", i))
				_ = g.Edges()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, g.EdgeCount())
}
