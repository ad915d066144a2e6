package frequency

// Count returns a mapping from each distinct value of s to the number of
// times it occurs. The result is never nil.
// Time Complexity: O(n).
func Count[T comparable](s []T) map[T]int {
	counts := make(map[T]int, len(s))
	for _, v := range s {
		counts[v]++
	}

	return counts
}

// MostFrequent returns a value of s with the highest occurrence count.
// ok is false when s is empty; value is then the zero value of T.
// Among tied values the one that occurs first in s wins.
//
// Example:
//
//	v, ok := MostFrequent([]int{1, 3, 2, 3, 4, 1, 3}) // 3, true
func MostFrequent[T comparable](s []T) (value T, ok bool) {
	if len(s) == 0 {
		return value, false
	}

	counts := make(map[T]int, len(s))
	order := make([]T, 0, len(s)) // distinct values, first-occurrence order
	for _, v := range s {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	best := -1
	for _, v := range order {
		if c := counts[v]; c > best { // strict: earlier value keeps the tie
			best, value = c, v
		}
	}

	return value, true
}

// MostFrequentOnePass is MostFrequent without the second scan: the leader is
// updated while counting. Among tied values the one that reached the maximal
// count first wins.
func MostFrequentOnePass[T comparable](s []T) (value T, ok bool) {
	if len(s) == 0 {
		return value, false
	}

	counts := make(map[T]int, len(s))
	best := 0
	for _, v := range s {
		counts[v]++
		if counts[v] > best {
			best, value = counts[v], v
		}
	}

	return value, true
}
