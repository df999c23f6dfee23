package coloring_test

import (
	"fmt"

	"github.com/katalvlaran/arrayset/builder"
	"github.com/katalvlaran/arrayset/coloring"
)

// ExampleGreedy colors an odd cycle, which needs three colors.
func ExampleGreedy() {
	adj, _ := builder.BuildAdjacency(nil, builder.Cycle(5))
	res, err := coloring.Greedy(adj)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.NumColors, res.Colors)
	fmt.Println(coloring.Validate(adj, res.Colors))

	// Output:
	// 3 [0 1 0 1 2]
	// <nil>
}
