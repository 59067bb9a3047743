package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/lineup/core"
	"github.com/katalvlaran/lineup/dfs"
)

// ExampleDFS linearizes a small forest: each component starts at its first
// registered vertex and isolated vertices appear on their own.
func ExampleDFS() {
	g := core.NewGraph(core.WithWeighted())
	for _, id := range []string{"Intro", "Solo", "Duet", "Finale"} {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddEdge("Intro", "Duet", 2)
	_, _ = g.AddEdge("Duet", "Finale", 1)

	res, err := dfs.DFS(g, "", dfs.WithFullTraversal())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Preorder)
	// Output: [Intro Duet Finale Solo]
}
