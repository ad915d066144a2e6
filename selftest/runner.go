package selftest

import (
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/seqlab/dedup"
	"github.com/katalvlaran/seqlab/frequency"
	"github.com/katalvlaran/seqlab/growth"
	"github.com/katalvlaran/seqlab/pairsum"
	"github.com/katalvlaran/seqlab/prefix"
)

// Runner executes suites.
type Runner struct {
	logger *zap.Logger
	trace  io.Writer
}

// NewRunner returns a Runner that logs to logger and, when trace is non-nil,
// prints the resize trace of add_n_items cases to it. A nil logger discards logs.
func NewRunner(logger *zap.Logger, trace io.Writer) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{logger: logger, trace: trace}
}

// Run executes every case of s and returns the report. It does not validate s.
func (r *Runner) Run(s Suite) Report {
	rep := Report{Results: make([]Result, 0, len(s.Cases))}
	for _, c := range s.Cases {
		res := r.runCase(c)
		if res.Passed {
			r.logger.Debug("case passed", zap.String("case", c.Name), zap.String("kind", string(c.Kind)))
		} else {
			r.logger.Warn("case failed",
				zap.String("case", c.Name),
				zap.String("kind", string(c.Kind)),
				zap.String("got", res.Got),
				zap.String("want", res.Want),
				zap.Error(res.Err))
		}
		rep.Results = append(rep.Results, res)
	}
	r.logger.Info("suite finished", zap.Int("passed", rep.Passed()), zap.Int("failed", rep.Failed()))

	return rep
}

func (r *Runner) runCase(c Case) Result {
	res := Result{Name: c.Name, Kind: c.Kind}
	switch c.Kind {
	case KindMostFrequent:
		v, ok := frequency.MostFrequent(c.Input)
		res.Got, res.Want = optional(v, ok), optional(derefOr(c.WantValue), c.WantValue != nil)
		res.Passed = ok == (c.WantValue != nil) && (!ok || v == *c.WantValue)

	case KindRemoveDuplicates:
		got := dedup.RemoveDuplicates(c.Input)
		res.Got, res.Want = fmt.Sprint(got), fmt.Sprint(orEmpty(c.WantSeq))
		res.Passed = equalInts(got, c.WantSeq)

	case KindFindPairs:
		got := pairsFrom(pairsum.FindPairs(c.Input, c.Target))
		want := sortedPairs(c.WantPairs)
		res.Got, res.Want = fmt.Sprint(got), fmt.Sprint(want)
		res.Passed = equalPairs(got, want)

	case KindAddNItems:
		rec := &growth.Recorder{}
		sink := growth.Sink(rec)
		var traceOut *growth.WriterSink
		if r.trace != nil {
			traceOut = growth.NewWriterSink(r.trace)
			sink = growth.Tee(rec, traceOut)
		}
		got, err := growth.Simulate(c.N, growth.WithSink(sink))
		if err == nil && traceOut != nil && traceOut.Err() != nil {
			err = fmt.Errorf("%w: %w", ErrTraceWrite, traceOut.Err())
		}
		if err != nil {
			res.Err = err
			res.Got, res.Want = "error: "+err.Error(), fmt.Sprint(orEmpty(c.WantSeq))
			return res
		}
		res.Got = fmt.Sprintf("%v resizes=%v", got, rec.ResizePoints())
		res.Want = fmt.Sprint(orEmpty(c.WantSeq))
		res.Passed = equalInts(got, c.WantSeq)
		if c.WantResizes != nil {
			res.Want += fmt.Sprintf(" resizes=%v", c.WantResizes)
			res.Passed = res.Passed && equalInts(rec.ResizePoints(), c.WantResizes)
		}

	case KindRunningTotal:
		got := prefix.RunningTotal(c.Input)
		res.Got, res.Want = fmt.Sprint(got), fmt.Sprint(orEmpty(c.WantSeq))
		res.Passed = equalInts(got, c.WantSeq)

	default:
		res.Err = fmt.Errorf("%w: %q", ErrUnknownKind, c.Kind)
		res.Got = "error: " + res.Err.Error()
	}

	return res
}

// Write prints one line per result followed by a verdict line.
func (r Report) Write(w io.Writer) error {
	for _, res := range r.Results {
		status := "PASS"
		if !res.Passed {
			status = "FAIL"
		}
		line := fmt.Sprintf("%s %s: %s\n", status, res.Name, res.Got)
		if !res.Passed {
			line = fmt.Sprintf("%s %s: got %s, want %s\n", status, res.Name, res.Got, res.Want)
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}

	verdict := "ALL TESTS PASSED!\n"
	if f := r.Failed(); f > 0 {
		verdict = fmt.Sprintf("%d of %d FAILED\n", f, len(r.Results))
	}
	_, err := io.WriteString(w, verdict)

	return err
}

func optional(v int, ok bool) string {
	if !ok {
		return "<none>"
	}

	return fmt.Sprint(v)
}

func derefOr(p *int) int {
	if p == nil {
		return 0
	}

	return *p
}

func orEmpty(s []int) []int {
	if s == nil {
		return []int{}
	}

	return s
}

// equalInts treats nil and empty as equal.
func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func pairsFrom(ps []pairsum.Pair) [][2]int {
	out := make([][2]int, len(ps))
	for i, p := range ps {
		out[i] = [2]int{p.A, p.B}
	}

	return sortedPairs(out)
}

// sortedPairs normalizes each pair to (low, high) and sorts the list.
func sortedPairs(ps [][2]int) [][2]int {
	out := make([][2]int, len(ps))
	for i, p := range ps {
		out[i] = [2]int{min(p[0], p[1]), max(p[0], p[1])}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})

	return out
}

func equalPairs(a, b [][2]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
