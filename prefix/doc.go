// Package prefix computes running totals (inclusive prefix sums).
//
// out[i] = s[0] + s[1] + ... + s[i]
//
// One pass with a single accumulator: each element is added once, so no
// partial sum is ever recomputed.
//
// Complexity:
//
//   - Time:   O(n)
//   - Memory: O(n) for the output, O(1) working state
package prefix
