package flow

import (
	"context"
	"math"

	"github.com/katalvlaran/lineup/core"
)

// Dinic computes the maximum flow from source to sink in g using Dinic's
// algorithm (level graph + blocking flows).
//
// An undirected edge of weight w gives capacity w in each direction.
//
// It returns:
//   - maxFlow       : total flow value
//   - residualGraph : a directed *core.Graph of remaining capacities
//   - err           : ErrSourceNotFound, ErrSinkNotFound, EdgeError or ctx error
//
// Steps:
//  1. Normalize options, validate source and sink.
//  2. Build the residual network.
//  3. Repeat until the sink is unreachable:
//     a. BFS levels from source (registration order of arcs).
//     b. Push blocking flow by DFS with per-vertex arc iterators.
//  4. Materialize the residual graph.
func Dinic(
	g *core.Graph,
	source, sink string,
	opts FlowOptions,
) (maxFlow int64, residualGraph *core.Graph, err error) {
	opts.normalize()
	ctx := opts.Ctx

	if !g.HasVertex(source) {
		return 0, nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, nil, ErrSinkNotFound
	}

	net, err := buildResidual(ctx, g)
	if err != nil {
		return 0, nil, err
	}
	if source == sink {
		residualGraph, err = net.toGraph(g)
		return 0, residualGraph, err
	}

	augmentCount := 0
	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		level := net.levels(source)
		if _, ok := level[sink]; !ok {
			break
		}

		iter := make(map[string]int, len(net.order))
		for {
			if err = ctx.Err(); err != nil {
				return maxFlow, nil, err
			}
			pushed := net.push(ctx, level, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	residualGraph, err = net.toGraph(g)
	if err != nil {
		return maxFlow, nil, err
	}

	return maxFlow, residualGraph, nil
}

// levels returns the BFS distance from source over arcs with positive capacity.
func (n *residualNet) levels(source string) map[string]int {
	level := map[string]int{source: 0}
	queue := []string{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, v := range n.arcs[u] {
			if _, seen := level[v]; seen || n.cap[u][v] <= 0 {
				continue
			}
			level[v] = level[u] + 1
			queue = append(queue, v)
		}
	}

	return level
}

// push sends up to available units along one level-increasing path and
// returns the amount actually sent.
func (n *residualNet) push(
	ctx context.Context,
	level map[string]int,
	iter map[string]int,
	u, sink string,
	available int64,
) int64 {
	if ctx.Err() != nil {
		return 0
	}
	if u == sink {
		return available
	}
	for ; iter[u] < len(n.arcs[u]); iter[u]++ {
		v := n.arcs[u][iter[u]]
		capUV := n.cap[u][v]
		lv, ok := level[v]
		if capUV <= 0 || !ok || lv != level[u]+1 {
			continue
		}
		send := available
		if capUV < send {
			send = capUV
		}
		if pushed := n.push(ctx, level, iter, v, sink, send); pushed > 0 {
			n.cap[u][v] -= pushed
			n.cap[v][u] += pushed

			return pushed
		}
	}

	return 0
}
