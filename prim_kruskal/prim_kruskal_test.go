package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineup/core"
	"github.com/katalvlaran/lineup/prim_kruskal"
)

// buildTriangle constructs the weighted triangle A—B (3), B—C (2), A—C (1).
// The minimum spanning tree keeps A—C and B—C (total 3); A—B closes the cycle.
func buildTriangle() *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 3)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 1)

	return g
}

// buildRandomGraph creates n vertices and up to m random edges with a fixed seed.
// The graph is usually disconnected for small m.
func buildRandomGraph(n, m int, seed int64) *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < n; i++ {
		_ = g.AddVertex(fmt.Sprintf("V%d", i))
	}
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < m; i++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		// duplicates are rejected by core; ignore them
		_, _ = g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), int64(1+r.Intn(5)))
	}

	return g
}

// bruteForceMSF returns the minimal forest weight by trying every edge subset.
// Only usable for tiny graphs.
func bruteForceMSF(g *core.Graph) int64 {
	edges := g.Edges()
	vertices := g.Vertices()
	index := make(map[string]int, len(vertices))
	for i, v := range vertices {
		index[v] = i
	}
	components := func(mask int) (int, bool) {
		parent := make([]int, len(vertices))
		for i := range parent {
			parent[i] = i
		}
		var find func(int) int
		find = func(x int) int {
			if parent[x] != x {
				parent[x] = find(parent[x])
			}
			return parent[x]
		}
		count := len(vertices)
		for i, e := range edges {
			if mask&(1<<i) == 0 {
				continue
			}
			a, b := find(index[e.From]), find(index[e.To])
			if a == b {
				return 0, false
			}
			parent[a] = b
			count--
		}
		return count, true
	}
	// components of the whole graph
	parent := make([]int, len(vertices))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	full := len(vertices)
	for _, e := range edges {
		a, b := find(index[e.From]), find(index[e.To])
		if a != b {
			parent[a] = b
			full--
		}
	}

	best := int64(-1)
	for mask := 0; mask < 1<<len(edges); mask++ {
		c, ok := components(mask)
		if !ok || c != full {
			continue
		}
		var w int64
		for i, e := range edges {
			if mask&(1<<i) != 0 {
				w += e.Weight
			}
		}
		if best < 0 || w < best {
			best = w
		}
	}

	return best
}

func TestValidation_InvalidGraph(t *testing.T) {
	_, _, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	_, _, err = prim_kruskal.Kruskal(core.NewGraph())
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph, "unweighted")

	directed := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _, err = prim_kruskal.Prim(directed, "")
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

func TestPrim_MissingRoot(t *testing.T) {
	_, _, err := prim_kruskal.Prim(buildTriangle(), "X")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestEmptyAndSingleVertex(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	edges, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)

	require.NoError(t, g.AddVertex("Solo"))
	edges, total, err = prim_kruskal.Prim(g, "")
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)
}

func TestTriangle_DropsHeaviestEdge(t *testing.T) {
	for _, method := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		t.Run(method, func(t *testing.T) {
			edges, total, err := prim_kruskal.Compute(buildTriangle(), prim_kruskal.MSTOptions{Method: method})
			require.NoError(t, err)
			assert.Equal(t, int64(3), total)
			require.Len(t, edges, 2)
			for _, e := range edges {
				assert.NotEqual(t, int64(3), e.Weight, "weight-3 edge closes the cycle")
			}
		})
	}
}

func TestKruskal_TieBreakBySeq(t *testing.T) {
	// Square with all weights equal: the first three inserted edges win.
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("C", "D", 1)
	_, _ = g.AddEdge("D", "A", 1)

	edges, _, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"e1", "e2", "e3"}, ids)
}

func TestDisconnected_SpansEveryComponent(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("C", "D", 5)
	_, _ = g.AddEdge("D", "E", 1)
	_, _ = g.AddEdge("C", "E", 4)
	_ = g.AddVertex("Isolated")

	for _, method := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		edges, total, err := prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: method})
		require.NoError(t, err, method)
		assert.Len(t, edges, 3, method)
		assert.Equal(t, int64(7), total, method)
	}
}

func TestForestWeightIsMinimal(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := buildRandomGraph(6, 9, seed)
		if g.EdgeCount() > 14 {
			continue
		}
		want := bruteForceMSF(g)

		_, kTotal, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		_, pTotal, err := prim_kruskal.Prim(g, "")
		require.NoError(t, err)

		assert.Equal(t, want, kTotal, "kruskal seed %d", seed)
		assert.Equal(t, want, pTotal, "prim seed %d", seed)
	}
}

func TestCompute_UnknownMethod(t *testing.T) {
	_, _, err := prim_kruskal.Compute(buildTriangle(), prim_kruskal.MSTOptions{Method: "boruvka"})
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
	assert.False(t, prim_kruskal.ValidMethod("boruvka"))
	assert.True(t, prim_kruskal.ValidMethod(prim_kruskal.DefaultOptions().Method))
}
