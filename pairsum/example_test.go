package pairsum_test

import (
	"fmt"

	"github.com/katalvlaran/seqlab/pairsum"
)

// ExampleFindPairs uses the default two-pointer strategy.
func ExampleFindPairs() {
	fmt.Println(pairsum.FindPairs([]int{1, 2, 3, 4}, 5))
	// Output: [(1, 4) (2, 3)]
}

// ExampleFindPairs_hashSet trades memory for skipping the sort.
func ExampleFindPairs_hashSet() {
	pairs := pairsum.FindPairs([]int{4, 3, 2, 1}, 5, pairsum.WithStrategy(pairsum.HashSet))
	fmt.Println(len(pairs), pairs)
	// Output: 2 [(2, 3) (1, 4)]
}
