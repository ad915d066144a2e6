package pairsum

import "sort"

// FindPairs returns every pair of values in nums that sums to target.
// nums is not modified. The result is never nil.
//
// Example:
//
//	FindPairs([]int{1, 2, 3, 4}, 5) // [(1, 4) (2, 3)]
//	FindPairs([]int{1, 2, 3, 4}, 5, WithStrategy(HashSet))
func FindPairs(nums []int, target int, opts ...Option) []Pair {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(nums) < 2 {
		return []Pair{}
	}

	if o.Strategy == HashSet {
		return hashSet(nums, target)
	}

	return twoPointer(nums, target)
}

// twoPointer sorts a copy and scans inward from both ends.
func twoPointer(nums []int, target int) []Pair {
	arr := make([]int, len(nums))
	copy(arr, nums) // never sort the caller's slice
	sort.Ints(arr)

	pairs := []Pair{}
	left, right := 0, len(arr)-1
	for left < right {
		sum := arr[left] + arr[right]
		switch {
		case sum < target:
			left++
		case sum > target:
			right--
		default:
			pairs = append(pairs, Pair{A: arr[left], B: arr[right]})
			a, b := arr[left], arr[right]
			// step past equal neighbours so a value pair is reported once
			for left < right && arr[left] == a {
				left++
			}
			for left < right && arr[right] == b {
				right--
			}
		}
	}

	return pairs
}

// hashSet reports a pair when the complement of the current value was seen
// earlier in the input.
func hashSet(nums []int, target int) []Pair {
	seen := make(map[int]struct{}, len(nums))
	reported := make(map[Pair]struct{})
	pairs := []Pair{}
	for _, x := range nums {
		y := target - x
		if _, ok := seen[y]; ok {
			p := Pair{A: min(x, y), B: max(x, y)}
			if _, dup := reported[p]; !dup {
				reported[p] = struct{}{}
				pairs = append(pairs, p)
			}
		}
		seen[x] = struct{}{}
	}

	return pairs
}
