package pairsum

import "fmt"

// Pair is an unordered pair of values reported as A <= B.
type Pair struct {
	A int
	B int
}

// String renders the pair as "(A, B)".
func (p Pair) String() string {
	return fmt.Sprintf("(%d, %d)", p.A, p.B)
}

// Strategy selects the search algorithm used by FindPairs.
type Strategy int

const (
	// TwoPointer sorts a copy of the input and scans it from both ends.
	TwoPointer Strategy = iota

	// HashSet looks up complements in a set of values seen so far.
	HashSet
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case TwoPointer:
		return "two-pointer"
	case HashSet:
		return "hash-set"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Options configures FindPairs.
type Options struct {
	// Strategy picks the algorithm. Default is TwoPointer.
	Strategy Strategy
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with the TwoPointer strategy.
func DefaultOptions() Options {
	return Options{Strategy: TwoPointer}
}

// WithStrategy returns an Option that selects s.
// Unknown strategies fall back to TwoPointer.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}
