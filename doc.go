// Package seqlab is a small workbench of integer-sequence algorithms, each
// shipped with its complexity discussion, tests, examples and benchmarks.
//
// 🚀 What is inside?
//
//	frequency/ — most frequent element (two-scan and one-pass finders)
//	dedup/     — order-preserving duplicate removal
//	pairsum/   — all pairs summing to a target (two-pointer or hash-set)
//	growth/    — doubling dynamic-array simulator with an observable resize trace
//	prefix/    — running totals (inclusive prefix sums)
//	selftest/  — scenario catalogue (built-in or YAML) and runner
//	cmd/seqlab — CLI: `seqlab selftest`, `seqlab simulate N`
//
// ✨ Guarantees
//
//   - Inputs are never mutated; results are fresh slices, never nil.
//   - Empty input degrades to empty output. The only "no answer" is
//     frequency.MostFrequent on an empty slice, reported as ok == false.
//   - Everything is sequential and allocation-bounded by the stated complexity.
//
// Quick tour:
//
//	v, _ := frequency.MostFrequent([]int{1, 3, 2, 3, 4, 1, 3}) // 3
//	dedup.RemoveDuplicates([]int{4, 5, 4, 6, 5, 7})           // [4 5 6 7]
//	pairsum.FindPairs([]int{1, 2, 3, 4}, 5)                   // [(1, 4) (2, 3)]
//	prefix.RunningTotal([]int{1, -2, 3, -1})                  // [1 -1 2 1]
//	growth.Simulate(6, growth.WithSink(growth.NewWriterSink(os.Stdout)))
//
//	go install github.com/katalvlaran/seqlab/cmd/seqlab@latest
package seqlab
