package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineup/core"
	"github.com/katalvlaran/lineup/dfs"
)

// buildForest registers vertices out of alphabetical order so that
// registration order, not lexical order, decides the traversal.
//
//	Opening — Tango — Waltz     Finale (isolated)     Jazz — Hiphop
//	      \
//	       Ballet
func buildForest(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, id := range []string{"Opening", "Waltz", "Finale", "Jazz", "Tango", "Ballet", "Hiphop"} {
		require.NoError(t, g.AddVertex(id))
	}
	_, err := g.AddEdge("Opening", "Tango", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("Tango", "Waltz", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("Ballet", "Opening", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("Hiphop", "Jazz", 4)
	require.NoError(t, err)

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_MissingStart(t *testing.T) {
	g := buildForest(t)
	_, err := dfs.DFS(g, "Nope")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	_, err = dfs.DFS(g, "", dfs.WithFullTraversal())
	assert.NoError(t, err, "forest mode accepts an empty start")
}

func TestDFS_SingleSourcePreorder(t *testing.T) {
	res, err := dfs.DFS(buildForest(t), "Opening")
	require.NoError(t, err)

	// Waltz is registered before Tango but only reachable through it;
	// Tango (index 4) precedes Ballet (index 5) among Opening's children.
	assert.Equal(t, []string{"Opening", "Tango", "Waltz", "Ballet"}, res.Preorder)
	assert.Equal(t, []string{"Waltz", "Tango", "Ballet", "Opening"}, res.Order)
	assert.Equal(t, []string{"Opening"}, res.Roots)
	assert.Equal(t, 2, res.Depth["Waltz"])
	assert.Equal(t, "Tango", res.Parent["Waltz"])
	assert.False(t, res.Visited["Jazz"])
}

func TestDFS_FullTraversalVisitsEveryVertexOnce(t *testing.T) {
	g := buildForest(t)
	res, err := dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"Opening", "Tango", "Waltz", "Ballet", "Finale", "Jazz", "Hiphop"},
		res.Preorder)
	assert.Equal(t, []string{"Opening", "Finale", "Jazz"}, res.Roots)
	assert.Len(t, res.Visited, g.VertexCount())

	seen := make(map[string]int)
	for _, id := range res.Preorder {
		seen[id]++
	}
	for _, id := range g.Vertices() {
		assert.Equal(t, 1, seen[id], id)
	}
}

func TestDFS_FullTraversalWithStart(t *testing.T) {
	res, err := dfs.DFS(buildForest(t), "Hiphop", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"Hiphop", "Opening", "Finale"}, res.Roots)
	assert.Equal(t, "Hiphop", res.Preorder[0])
	assert.Equal(t, "Jazz", res.Preorder[1])
}

func TestDFS_Deterministic(t *testing.T) {
	first, err := dfs.DFS(buildForest(t), "", dfs.WithFullTraversal())
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := dfs.DFS(buildForest(t), "", dfs.WithFullTraversal())
		require.NoError(t, err)
		assert.Equal(t, first.Preorder, again.Preorder)
	}
}

func TestDFS_MaxDepthAndFilter(t *testing.T) {
	g := buildForest(t)

	res, err := dfs.DFS(g, "Opening", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"Opening", "Tango", "Ballet"}, res.Preorder)

	res, err = dfs.DFS(g, "Opening", dfs.WithFilterNeighbor(func(id string) bool {
		return id != "Tango"
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"Opening", "Ballet"}, res.Preorder)
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_HookErrorsAbort(t *testing.T) {
	boom := errors.New("boom")
	g := buildForest(t)

	res, err := dfs.DFS(g, "Opening", dfs.WithOnVisit(func(id string) error {
		if id == "Waltz" {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `OnVisit hook for "Waltz"`)
	assert.Equal(t, []string{"Opening", "Tango", "Waltz"}, res.Preorder)

	var exits []string
	_, err = dfs.DFS(g, "Opening", dfs.WithOnExit(func(id string) error {
		exits = append(exits, id)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"Waltz", "Tango", "Ballet", "Opening"}, exits)
}

func TestDFS_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(buildForest(t), "Opening", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
