// Package growth makes the cost model of a doubling dynamic array observable.
//
// 🚀 What:
//
//	Simulate appends 0..n-1 one at a time to a container that starts with a
//	fixed capacity (2 by default). When the container is full and another
//	element arrives, a new backing array of twice the capacity is allocated,
//	the existing items are copied over, and a ResizeEvent is reported to the
//	configured Sink. A closing Summary is always reported, even for n == 0.
//
//	With the default initial capacity, resizes are triggered when the item
//	count reaches 2, 4, 8, 16, ... and another append is pending:
//
//	  Simulate(6):
//	    Resizing: capacity 2 -> 4, copying 2 items
//	    Resizing: capacity 4 -> 8, copying 4 items
//	    Final: 6 items in list with capacity 8
//
//	This is a probe, not a production container: use a plain slice for that.
//
// ⚙️ Sinks:
//
//   - Recorder    keeps every event in memory (tests, callers that want data)
//   - WriterSink  prints the lines above to an io.Writer
//   - LoggerSink  emits structured zap entries
//   - default     discards everything
//
// Amortized cost:
//
//   - A single append costs O(n) when it triggers a resize (n-1 items copied
//     at worst) and O(1) otherwise.
//   - A resize at size k copies k items and buys k cheap appends, so the
//     copies over n appends sum to less than 2n. Total work is O(n), i.e.
//     O(1) amortized per append. Analyze reports these numbers without
//     running the simulation.
//
// Errors:
//
//   - ErrNegativeCount     n < 0
//   - ErrBadCapacity       initial capacity < 1
//   - ErrCapacityOverflow  the next doubling would exceed math.MaxInt
package growth
