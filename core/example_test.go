package core_test

import (
	"fmt"

	"github.com/katalvlaran/lineup/core"
)

// ExampleGraph_NeighborIDs shows that neighbors follow registration order.
func ExampleGraph_NeighborIDs() {
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddVertex("Finale")
	_ = g.AddVertex("Opening")
	_ = g.AddVertex("Interlude")
	_, _ = g.AddEdge("Opening", "Interlude", 2)
	_, _ = g.AddEdge("Opening", "Finale", 1)

	ids, _ := g.NeighborIDs("Opening")
	fmt.Println(ids)
	// Output: [Finale Interlude]
}
