package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/lineup/core"
)

// Prim computes the minimum spanning forest of an undirected, weighted graph
// by growing one tree per component with a min-heap.
//
// Steps:
//  1. Validate: graph != nil, graph.Weighted(), !graph.Directed().
//  2. If root != "", it must exist (core.ErrVertexNotFound) and is grown first.
//  3. For each start vertex (root, then registration order) not yet visited:
//     a. Mark it visited and push its incident edges.
//     b. Pop the smallest (Weight, Seq) edge; skip it if its far end is visited.
//     c. Otherwise keep it, mark the far end and push its frontier edges.
//  4. Return the kept edges in discovery order and their total weight.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) ([]core.Edge, int64, error) {
	if err := validate(graph); err != nil {
		return nil, 0, err
	}
	if root != "" && !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}

	vertices := graph.Vertices()
	if len(vertices) <= 1 {
		return []core.Edge{}, 0, nil
	}

	starts := vertices
	if root != "" {
		starts = append([]string{root}, vertices...)
	}

	visited := make(map[string]bool, len(vertices))
	forest := make([]core.Edge, 0, len(vertices)-1)
	var totalWeight int64

	for _, start := range starts {
		if visited[start] {
			continue
		}
		pq := &edgePQ{}
		if err := visit(graph, start, visited, pq); err != nil {
			return nil, 0, err
		}
		for pq.Len() > 0 {
			item := heap.Pop(pq).(frontier)
			if visited[item.to] {
				continue
			}
			forest = append(forest, *item.edge)
			totalWeight += item.edge.Weight
			if err := visit(graph, item.to, visited, pq); err != nil {
				return nil, 0, err
			}
		}
	}

	return forest, totalWeight, nil
}

// visit marks id as part of the tree and pushes its edges to unvisited vertices.
func visit(graph *core.Graph, id string, visited map[string]bool, pq *edgePQ) error {
	visited[id] = true
	neighbors, err := graph.Neighbors(id)
	if err != nil {
		return err
	}
	for _, e := range neighbors {
		to := e.Other(id)
		if !visited[to] {
			heap.Push(pq, frontier{edge: e, to: to})
		}
	}

	return nil
}

// frontier is a candidate edge together with the endpoint it would add.
type frontier struct {
	edge *core.Edge
	to   string
}

// edgePQ implements heap.Interface ordered by (Weight, Seq).
type edgePQ []frontier

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}

	return pq[i].edge.Seq < pq[j].edge.Seq
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(frontier)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
