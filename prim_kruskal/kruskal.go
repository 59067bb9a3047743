package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/lineup/core"
)

// Kruskal computes the minimum spanning forest of an undirected, weighted graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Steps:
//  1. Validate: graph != nil, graph.Weighted(), !graph.Directed().
//  2. Index vertices by registration order; |V| <= 1 → empty forest.
//  3. Collect edges via graph.Edges() (insertion order) and stable-sort by Weight.
//  4. Loop over sorted edges: if find(u) != find(v), union and keep the edge.
//  5. Stop early once |V|-1 edges are kept (the graph was connected).
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	if err := validate(graph); err != nil {
		return nil, 0, err
	}

	vertices := graph.Vertices()
	if len(vertices) <= 1 {
		return []core.Edge{}, 0, nil
	}
	index := make(map[string]int, len(vertices))
	for i, id := range vertices {
		index[id] = i
	}

	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	dsu := newDisjointSet(len(vertices))
	forest := make([]core.Edge, 0, len(vertices)-1)
	var totalWeight int64
	for _, e := range edges {
		if !dsu.union(index[e.From], index[e.To]) {
			// endpoints already connected: e would close a cycle
			continue
		}
		forest = append(forest, *e)
		totalWeight += e.Weight
		if len(forest) == len(vertices)-1 {
			break
		}
	}

	return forest, totalWeight, nil
}

// disjointSet is a union-find over dense vertex indices.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	d := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// find walks to the root with path halving.
func (d *disjointSet) find(u int) int {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (d *disjointSet) union(u, v int) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	switch {
	case d.rank[ru] < d.rank[rv]:
		d.parent[ru] = rv
	case d.rank[ru] > d.rank[rv]:
		d.parent[rv] = ru
	default:
		d.parent[rv] = ru
		d.rank[ru]++
	}

	return true
}
