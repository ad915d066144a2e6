package growth_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/seqlab/growth"
)

// ExampleSimulate prints the resize trace for six appends.
func ExampleSimulate() {
	items, err := growth.Simulate(6, growth.WithSink(growth.NewWriterSink(os.Stdout)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(items)
	// Output:
	// Resizing: capacity 2 -> 4, copying 2 items
	// Resizing: capacity 4 -> 8, copying 4 items
	// Final: 6 items in list with capacity 8
	// [0 1 2 3 4 5]
}

// ExampleAnalyze reports the cost of 1000 appends without running them.
func ExampleAnalyze() {
	st, err := growth.Analyze(1000, growth.DefaultInitialCapacity)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("resizes=%d copies=%d capacity=%d amortized=%.3f\n",
		st.Resizes, st.Copies, st.FinalCapacity, st.AmortizedCost())
	// Output: resizes=9 copies=1022 capacity=1024 amortized=2.022
}
