// Package dedup removes repeated values from a sequence while keeping the
// order in which each value first appeared.
//
// A membership set gives O(1) amortized duplicate checks, so the whole pass is
// linear. Order preservation is why the set alone is not enough: the output
// slice is appended in input order, the set only answers "seen before?".
//
// Complexity:
//
//   - Time:   O(n)
//   - Memory: O(n) worst case (all values distinct)
package dedup
