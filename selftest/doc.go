// Package selftest runs every seqlab algorithm against a catalogue of fixed
// scenarios and reports which ones pass.
//
// A Suite is a list of Cases. Each Case names one algorithm (its Kind), the
// input, and the expected output. DefaultSuite holds the built-in scenarios;
// Parse and LoadFile read a Suite from YAML:
//
//	cases:
//	  - name: most frequent example
//	    kind: most_frequent
//	    input: [1, 3, 2, 3, 4, 1, 3]
//	    want_value: 3
//	  - name: resize trace
//	    kind: add_n_items
//	    n: 6
//	    want_seq: [0, 1, 2, 3, 4, 5]
//	    want_resizes: [2, 4]
//
// Parse rejects unknown keys. Runner executes a Suite and returns a Report;
// it never stops at the first failure.
//
// Errors:
//
//   - ErrEmptySuite       no cases to run
//   - ErrUnknownKind      a case names an algorithm that does not exist
//   - ErrDuplicateName    two cases share a name
//   - ErrSelfTestFailed   returned by callers when Report.Failed() > 0
//   - ErrTraceWrite       the resize trace writer failed (recorded on the Result)
package selftest
