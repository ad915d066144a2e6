// Package frequency finds the most frequent element of a sequence.
//
// What:
//
//   - MostFrequent: builds a value→count mapping in one pass, then scans the
//     distinct values (in first-occurrence order) for the largest count.
//   - MostFrequentOnePass: keeps the current leader while counting, so the
//     second scan disappears. Same result contract.
//   - Count: exposes the value→count mapping itself.
//
// Ties:
//
//	Any value with the maximal count is a correct answer. MostFrequent
//	returns the tied value that appears first in the input; MostFrequentOnePass
//	returns the tied value that reached the maximal count first.
//	For [1, 2, 2, 1] these are 1 and 2 respectively.
//
// Complexity:
//
//   - Time:   O(n), every element must be inspected at least once.
//   - Memory: O(k), k = number of distinct values.
//
// Absent value:
//
//	An empty (or nil) input has no most frequent element. Both finders report
//	this with ok == false and the zero value of T, never with an error.
package frequency
