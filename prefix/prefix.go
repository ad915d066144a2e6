package prefix

// Number is any built-in integer or floating-point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// RunningTotal returns a slice of the same length as s where each element is
// the sum of s up to and including that index. s is not modified and the
// result is never nil. Integer sums wrap on overflow like ordinary Go arithmetic.
//
// Example:
//
//	RunningTotal([]int{1, 2, 3, 4}) // [1 3 6 10]
func RunningTotal[T Number](s []T) []T {
	out := make([]T, len(s))
	var total T
	for i, v := range s {
		total += v
		out[i] = total
	}

	return out
}
