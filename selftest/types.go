package selftest

import "errors"

// Kind names the algorithm a Case exercises.
type Kind string

const (
	// KindMostFrequent runs frequency.MostFrequent on Input and compares with WantValue.
	KindMostFrequent Kind = "most_frequent"

	// KindRemoveDuplicates runs dedup.RemoveDuplicates on Input and compares with WantSeq.
	KindRemoveDuplicates Kind = "remove_duplicates"

	// KindFindPairs runs pairsum.FindPairs on Input and Target and compares with WantPairs as a set.
	KindFindPairs Kind = "find_pairs"

	// KindAddNItems runs growth.Simulate for N items and compares with WantSeq and WantResizes.
	KindAddNItems Kind = "add_n_items"

	// KindRunningTotal runs prefix.RunningTotal on Input and compares with WantSeq.
	KindRunningTotal Kind = "running_total"
)

// Kinds lists every supported Kind.
var Kinds = []Kind{KindMostFrequent, KindRemoveDuplicates, KindFindPairs, KindAddNItems, KindRunningTotal}

// Sentinel errors.
var (
	// ErrEmptySuite indicates a suite with no cases.
	ErrEmptySuite = errors.New("selftest: suite has no cases")

	// ErrUnknownKind indicates a case whose Kind is not one of Kinds.
	ErrUnknownKind = errors.New("selftest: unknown case kind")

	// ErrDuplicateName indicates two cases with the same Name.
	ErrDuplicateName = errors.New("selftest: duplicate case name")

	// ErrSelfTestFailed is returned by callers when a Report has failures.
	ErrSelfTestFailed = errors.New("selftest: one or more cases failed")

	// ErrTraceWrite indicates that the resize trace of a case could not be written.
	ErrTraceWrite = errors.New("selftest: failed to write resize trace")
)

// Case is one scenario. Only the fields relevant to Kind are read.
type Case struct {
	Name string `yaml:"name"`
	Kind Kind   `yaml:"kind"`

	Input  []int `yaml:"input,omitempty"`  // most_frequent, remove_duplicates, find_pairs, running_total
	Target int   `yaml:"target,omitempty"` // find_pairs
	N      int   `yaml:"n,omitempty"`      // add_n_items

	// WantValue is the expected most_frequent result; nil expects the absent value.
	WantValue   *int     `yaml:"want_value,omitempty"`
	WantSeq     []int    `yaml:"want_seq"`               // remove_duplicates, add_n_items, running_total
	WantPairs   [][2]int `yaml:"want_pairs"`             // find_pairs, compared as a set
	WantResizes []int    `yaml:"want_resizes,omitempty"` // add_n_items; nil skips the check
}

// Suite is an ordered list of cases.
type Suite struct {
	Cases []Case `yaml:"cases"`
}

// Result is the outcome of one Case.
type Result struct {
	Name   string
	Kind   Kind
	Passed bool
	Got    string
	Want   string
	Err    error // set when the algorithm itself returned an error
}

// Report collects the results of a run, in suite order.
type Report struct {
	Results []Result
}

// Failed returns the number of failing cases.
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed {
			n++
		}
	}

	return n
}

// Passed returns the number of passing cases.
func (r Report) Passed() int {
	return len(r.Results) - r.Failed()
}
