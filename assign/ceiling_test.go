package assign_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineup/assign"
	"github.com/katalvlaran/lineup/roster"
	"github.com/katalvlaran/lineup/sample"
)

func TestCapacityCeiling(t *testing.T) {
	r := build(t,
		[]roster.PerformerRecord{
			{Name: "A", Capacity: "2"},
			{Name: "B", Capacity: "2", No: []string{"Y"}},
			{Name: "C", Capacity: "3"},
		},
		[]roster.SegmentRecord{
			{Name: "X", Capacity: "2", Ratings: map[int][]string{5: {"A", "B", "C"}}},
			{Name: "Y", Capacity: "3", Ratings: map[int][]string{3: {"A", "B"}, 1: {"C"}}},
		},
	)

	// A: X,Y  B: X only (refuses Y)  C: X,Y ; X holds 2, Y holds 3.
	ceiling, err := assign.CapacityCeiling(context.Background(), r, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(4), ceiling)

	ceiling, err = assign.CapacityCeiling(context.Background(), r, []int{2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), ceiling)
}

func TestCapacityCeilingBoundsTheEngine(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		performers, segments := sample.Generate(sample.DefaultConfig(), rand.New(rand.NewSource(seed)))
		r, _ := roster.Build(performers, segments)
		res := assign.New(r, nil).Run()

		ceiling, err := assign.CapacityCeiling(context.Background(), r, res.Excluded)
		require.NoError(t, err)
		assert.LessOrEqual(t, int64(res.Assignment.Len()), ceiling, "seed %d", seed)
	}
}

func TestCapacityCeilingCanceled(t *testing.T) {
	r := build(t, []roster.PerformerRecord{{Name: "A"}}, []roster.SegmentRecord{{Name: "X"}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := assign.CapacityCeiling(ctx, r, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
