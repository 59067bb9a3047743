package flow

import (
	"context"

	"github.com/katalvlaran/lineup/core"
)

// residualNet holds residual capacities keyed by vertex pair plus, per vertex,
// the arcs in first-seen order (forward arcs first, reverse arcs appended).
type residualNet struct {
	order []string
	cap   map[string]map[string]int64
	arcs  map[string][]string
}

func (n *residualNet) link(u, v string) {
	if _, ok := n.cap[u][v]; ok {
		return
	}
	n.cap[u][v] = 0
	n.arcs[u] = append(n.arcs[u], v)
}

// buildResidual constructs the residual network of g.
//
// Steps:
//  1. Allocate one capacity row per vertex in registration order.
//  2. For each vertex u and each outgoing edge (insertion order):
//     a. Reject negative weights with EdgeError.
//     b. Register arc u→v and the reverse arc v→u (capacity 0).
//     c. Add the weight to cap[u][v].
//
// Complexity: O(V + E log d).
func buildResidual(ctx context.Context, g *core.Graph) (*residualNet, error) {
	vertices := g.Vertices()
	net := &residualNet{
		order: vertices,
		cap:   make(map[string]map[string]int64, len(vertices)),
		arcs:  make(map[string][]string, len(vertices)),
	}
	for _, u := range vertices {
		net.cap[u] = make(map[string]int64)
	}

	for _, u := range vertices {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, e := range neighbors {
			v := e.Other(u)
			if e.Weight < 0 {
				return nil, EdgeError{From: u, To: v, Cap: e.Weight}
			}
			net.link(u, v)
			net.link(v, u)
			net.cap[u][v] += e.Weight
		}
	}

	return net, nil
}

// toGraph materializes the positive residual capacities as a new directed,
// weighted graph with the same vertices as g.
func (n *residualNet) toGraph(g *core.Graph) (*core.Graph, error) {
	residual := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, u := range g.Vertices() {
		if err := residual.AddVertex(u); err != nil {
			return nil, err
		}
	}
	for _, u := range n.order {
		for _, v := range n.arcs[u] {
			if c := n.cap[u][v]; c > 0 {
				if _, err := residual.AddEdge(u, v, c); err != nil {
					return nil, err
				}
			}
		}
	}

	return residual, nil
}
