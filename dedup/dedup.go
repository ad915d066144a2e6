package dedup

// RemoveDuplicates returns a new slice holding every distinct value of s
// exactly once, in order of first occurrence. s is left untouched.
// The result is never nil.
func RemoveDuplicates[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, dup := seen[v]; dup {
			continue // already emitted
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
