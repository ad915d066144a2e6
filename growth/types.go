package growth

import "errors"

// DefaultInitialCapacity is the capacity of the container before any resize.
const DefaultInitialCapacity = 2

// Sentinel errors returned by Simulate and Analyze.
var (
	// ErrNegativeCount indicates that a negative item count was requested.
	ErrNegativeCount = errors.New("growth: item count must be non-negative")

	// ErrBadCapacity indicates an initial capacity below 1, which could never grow by doubling.
	ErrBadCapacity = errors.New("growth: initial capacity must be at least 1")

	// ErrCapacityOverflow indicates that doubling the capacity would exceed math.MaxInt.
	ErrCapacityOverflow = errors.New("growth: capacity doubling overflows int")
)

// ResizeEvent describes one capacity transition.
type ResizeEvent struct {
	OldCapacity int // capacity before the resize
	NewCapacity int // capacity after the resize (2 × OldCapacity)
	Copied      int // items moved to the new backing array; equals the size before the resize
}

// Summary is reported once, after the last append.
type Summary struct {
	Items    int // number of items appended
	Capacity int // capacity at the end of the run
}

// Sink receives the trace of a simulation.
// OnResize is called once per resize, in order; OnFinal is called exactly once at the end.
type Sink interface {
	OnResize(e ResizeEvent)
	OnFinal(s Summary)
}

// Options configures Simulate.
type Options struct {
	// InitialCapacity is the starting capacity. Default DefaultInitialCapacity.
	InitialCapacity int

	// Sink receives the trace. nil discards it.
	Sink Sink
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with DefaultInitialCapacity and no sink.
func DefaultOptions() Options {
	return Options{
		InitialCapacity: DefaultInitialCapacity,
		Sink:            nil,
	}
}

// WithSink returns an Option that routes the trace to s.
func WithSink(s Sink) Option {
	return func(o *Options) {
		o.Sink = s
	}
}

// WithInitialCapacity returns an Option that sets the starting capacity.
// Values below 1 make Simulate fail with ErrBadCapacity.
func WithInitialCapacity(c int) Option {
	return func(o *Options) {
		o.InitialCapacity = c
	}
}

// Stats is the closed-form cost of appending Appends items.
type Stats struct {
	Appends       int // items appended
	Resizes       int // number of capacity doublings
	Copies        int // total items copied across all resizes
	FinalCapacity int // capacity after the last append
}

// AmortizedCost returns the average number of element writes per append,
// counting each append as one write plus the copies it triggered.
// With doubling this stays below 3. Zero appends cost zero.
func (s Stats) AmortizedCost() float64 {
	if s.Appends == 0 {
		return 0
	}

	return (float64(s.Appends) + float64(s.Copies)) / float64(s.Appends)
}
