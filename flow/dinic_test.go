package flow_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lineup/core"
	"github.com/katalvlaran/lineup/flow"
)

// DinicSuite exercises the Dinic implementation under various scenarios.
type DinicSuite struct {
	suite.Suite
}

func directed() *core.Graph {
	return core.NewGraph(core.WithDirected(true), core.WithWeighted())
}

// TestSingleEdge verifies that a single edge yields max flow equal to its capacity.
func (s *DinicSuite) TestSingleEdge() {
	g := directed()
	_, _ = g.AddEdge("A", "B", 7)

	mf, res, err := flow.Dinic(g, "A", "B", flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(7), mf)
	require.False(s.T(), res.HasEdge("A", "B"), "forward edge should be saturated")
	require.True(s.T(), res.HasEdge("B", "A"), "reverse edge should carry the flow")
}

// TestMultiPath verifies max flow on two disjoint paths.
func (s *DinicSuite) TestMultiPath() {
	g := directed()
	_, _ = g.AddEdge("A", "B", 5)
	_, _ = g.AddEdge("A", "C", 4)
	_, _ = g.AddEdge("C", "B", 3)

	mf, _, err := flow.Dinic(g, "A", "B", flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(8), mf) // 5 + 3
}

// TestZeroCapacity ensures that zero-capacity edges yield zero flow.
func (s *DinicSuite) TestZeroCapacity() {
	g := directed()
	_, _ = g.AddEdge("X", "Y", 0)

	mf, _, err := flow.Dinic(g, "X", "Y", flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Zero(s.T(), mf)
}

// TestNegativeCapacity reports the offending edge.
func (s *DinicSuite) TestNegativeCapacity() {
	g := directed()
	_, _ = g.AddEdge("X", "Y", -2)

	_, _, err := flow.Dinic(g, "X", "Y", flow.DefaultOptions())
	var edgeErr flow.EdgeError
	require.ErrorAs(s.T(), err, &edgeErr)
	require.Equal(s.T(), int64(-2), edgeErr.Cap)
}

// TestBipartiteMatching is the shape used for capacity ceilings:
// source → performers → segments → sink.
func (s *DinicSuite) TestBipartiteMatching() {
	g := directed()
	_, _ = g.AddEdge("src", "p1", 2)
	_, _ = g.AddEdge("src", "p2", 2)
	_, _ = g.AddEdge("p1", "s1", 1)
	_, _ = g.AddEdge("p1", "s2", 1)
	_, _ = g.AddEdge("p2", "s1", 1)
	_, _ = g.AddEdge("s1", "sink", 1)
	_, _ = g.AddEdge("s2", "sink", 3)

	mf, _, err := flow.Dinic(g, "src", "sink", flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), mf)
}

// TestUndirectedEdgesCarryBothWays treats each undirected edge as two arcs.
func (s *DinicSuite) TestUndirectedEdgesCarryBothWays() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("B", "A", 4)
	_, _ = g.AddEdge("C", "B", 3)

	mf, _, err := flow.Dinic(g, "A", "C", flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(3), mf)
}

// TestLevelRebuildInterval ensures that rebuilding the level graph more often
// does not change the result.
func (s *DinicSuite) TestLevelRebuildInterval() {
	g := directed()
	_, _ = g.AddEdge("S", "A", 2)
	_, _ = g.AddEdge("S", "B", 1)
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("C", "T", 2)

	opts1 := flow.DefaultOptions()
	opts1.LevelRebuildInterval = 1
	mf1, _, err1 := flow.Dinic(g, "S", "T", opts1)
	require.NoError(s.T(), err1)

	mf2, _, err2 := flow.Dinic(g, "S", "T", flow.DefaultOptions())
	require.NoError(s.T(), err2)

	require.Equal(s.T(), mf1, mf2)
	require.Equal(s.T(), int64(2), mf1)
}

// TestContextCancellation ensures an expired context aborts the computation.
func (s *DinicSuite) TestContextCancellation() {
	g := directed()
	for i := 1; i <= 200; i++ {
		ai := fmt.Sprintf("A%d", i)
		_, _ = g.AddEdge("S", ai, 1)
		_, _ = g.AddEdge(ai, "T", 1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	opts := flow.DefaultOptions()
	opts.Ctx = ctx

	_, _, err := flow.Dinic(g, "S", "T", opts)
	require.ErrorIs(s.T(), err, context.DeadlineExceeded)
}

// TestResidualIntegrity checks that original capacity equals the residual
// forward capacity plus the flow recorded on the reverse arc.
func (s *DinicSuite) TestResidualIntegrity() {
	g := directed()
	_, _ = g.AddEdge("A", "B", 8)
	_, _ = g.AddEdge("B", "C", 4)
	_, _ = g.AddEdge("C", "D", 2)
	_, _ = g.AddEdge("A", "D", 1)

	mf, res, err := flow.Dinic(g, "A", "D", flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(3), mf) // 1 direct + 2 via A→B→C→D

	weight := func(from, to string) int64 {
		e, err := res.EdgeBetween(from, to)
		if err != nil {
			return 0
		}
		return e.Weight
	}
	for _, e := range g.Edges() {
		require.Equal(s.T(), e.Weight, weight(e.From, e.To)+weight(e.To, e.From), "%s→%s", e.From, e.To)
	}
}

// TestSourceSinkNotFound covers missing source or sink error cases.
func (s *DinicSuite) TestSourceSinkNotFound() {
	g := directed()
	_ = g.AddVertex("A")

	opts := flow.DefaultOptions()
	_, _, err1 := flow.Dinic(g, "X", "A", opts)
	require.True(s.T(), errors.Is(err1, flow.ErrSourceNotFound))

	_, _, err2 := flow.Dinic(g, "A", "Z", opts)
	require.True(s.T(), errors.Is(err2, flow.ErrSinkNotFound))
}

// Entry point for running the suite.
func TestDinicSuite(t *testing.T) {
	suite.Run(t, new(DinicSuite))
}
