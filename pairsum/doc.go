// Package pairsum finds all pairs of values in a sequence that add up to a
// target.
//
// What:
//
//	Given distinct integers and a target t, report every unordered pair
//	(a, b), a != b, with a + b == t. Each pair is reported once, as Pair{A, B}
//	with A <= B.
//
// Strategies:
//
//   - TwoPointer (default): sort a copy, then walk two indices inward.
//     sum < t → advance the low index; sum > t → retreat the high index;
//     sum == t → record, advance both.
//     Time O(n log n) (the sort), extra memory O(1) beyond the sorted copy.
//     Pairs come out in ascending order of A.
//   - HashSet: one pass, checking whether t - x was already seen.
//     Time O(n), extra memory O(n). Pairs come out in the order their second
//     member is reached.
//
// Both strategies return the same set of pairs. TwoPointer trades the hash
// set's memory for the cost of the sort.
//
// Input contract:
//
//	The input is expected to be duplicate-free and is never modified.
//	When duplicates slip through, each value pair is still reported at most
//	once. Empty or single-element input yields an empty result.
//
// Overflow:
//
//	Sums are computed in int; inputs near math.MinInt/math.MaxInt may wrap.
package pairsum
