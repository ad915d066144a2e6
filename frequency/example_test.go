package frequency_test

import (
	"fmt"

	"github.com/katalvlaran/seqlab/frequency"
)

// ExampleMostFrequent finds the value that appears most often.
func ExampleMostFrequent() {
	v, ok := frequency.MostFrequent([]int{1, 3, 2, 3, 4, 1, 3})
	fmt.Println(v, ok)

	// An empty input reports the absent value.
	v, ok = frequency.MostFrequent([]int{})
	fmt.Println(v, ok)
	// Output:
	// 3 true
	// 0 false
}
