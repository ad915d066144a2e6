package growth

import "math"

// Simulate appends 0..n-1 into a doubling container and returns the items.
// The trace goes to the Sink configured with WithSink.
//
// Steps:
//  1. Validate n and the initial capacity.
//  2. For each i: if size == capacity, double it, copy into a new backing array, report.
//  3. Append i.
//  4. Report the Summary.
//
// The returned slice has length n and is never nil on success.
func Simulate(n int, opts ...Option) ([]int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if o.InitialCapacity < 1 {
		return nil, ErrBadCapacity
	}
	sink := o.Sink
	if sink == nil {
		sink = nopSink{}
	}

	capacity := o.InitialCapacity
	items := make([]int, 0, min(capacity, n)) // backing never exceeds what n items need
	for i := 0; i < n; i++ {
		if len(items) == capacity { // full: grow before accepting i
			if capacity > math.MaxInt/2 {
				return nil, ErrCapacityOverflow
			}
			grown := make([]int, len(items), min(capacity*2, n))
			copied := copy(grown, items)
			sink.OnResize(ResizeEvent{OldCapacity: capacity, NewCapacity: capacity * 2, Copied: copied})
			capacity *= 2
			items = grown
		}
		items = append(items, i)
	}
	sink.OnFinal(Summary{Items: len(items), Capacity: capacity})

	return items, nil
}

// Analyze computes the Stats Simulate would produce for n appends starting
// at initialCapacity, without allocating the items. When the next doubling
// would not fit in an int, it returns ErrCapacityOverflow.
// Time Complexity: O(log n).
func Analyze(n, initialCapacity int) (Stats, error) {
	if n < 0 {
		return Stats{}, ErrNegativeCount
	}
	if initialCapacity < 1 {
		return Stats{}, ErrBadCapacity
	}

	st := Stats{Appends: n}
	capacity := initialCapacity
	for capacity < n { // a resize happens when item #capacity+1 arrives
		if capacity > math.MaxInt/2 {
			return Stats{}, ErrCapacityOverflow
		}
		st.Resizes++
		st.Copies += capacity
		capacity *= 2
	}
	st.FinalCapacity = capacity

	return st, nil
}
