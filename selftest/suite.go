package selftest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

func intPtr(v int) *int { return &v }

// DefaultSuite returns the built-in scenarios.
func DefaultSuite() Suite {
	return Suite{Cases: []Case{
		{Name: "1.1 most frequent example", Kind: KindMostFrequent, Input: []int{1, 3, 2, 3, 4, 1, 3}, WantValue: intPtr(3)},
		{Name: "1.2 most frequent single", Kind: KindMostFrequent, Input: []int{5}, WantValue: intPtr(5)},
		{Name: "1.3 most frequent empty", Kind: KindMostFrequent, Input: []int{}},
		{Name: "2.1 dedup example", Kind: KindRemoveDuplicates, Input: []int{4, 5, 4, 6, 5, 7}, WantSeq: []int{4, 5, 6, 7}},
		{Name: "2.2 dedup distinct", Kind: KindRemoveDuplicates, Input: []int{1, 2, 3}, WantSeq: []int{1, 2, 3}},
		{Name: "3.1 pairs example", Kind: KindFindPairs, Input: []int{1, 2, 3, 4}, Target: 5, WantPairs: [][2]int{{1, 4}, {2, 3}}},
		{Name: "3.2 pairs none", Kind: KindFindPairs, Input: []int{1, 2, 3}, Target: 10, WantPairs: [][2]int{}},
		{Name: "3.3 pairs empty", Kind: KindFindPairs, Input: []int{}, Target: 7, WantPairs: [][2]int{}},
		{Name: "4.1 add 6 items", Kind: KindAddNItems, N: 6, WantSeq: []int{0, 1, 2, 3, 4, 5}, WantResizes: []int{2, 4}},
		{Name: "4.2 add 0 items", Kind: KindAddNItems, N: 0, WantSeq: []int{}, WantResizes: []int{}},
		{Name: "5.1 running total example", Kind: KindRunningTotal, Input: []int{1, 2, 3, 4}, WantSeq: []int{1, 3, 6, 10}},
		{Name: "5.2 running total negatives", Kind: KindRunningTotal, Input: []int{1, -2, 3, -1}, WantSeq: []int{1, -1, 2, 1}},
		{Name: "5.3 running total empty", Kind: KindRunningTotal, Input: []int{}, WantSeq: []int{}},
	}}
}

// Validate checks that the suite is non-empty, that every kind is known and
// that names are unique.
func (s Suite) Validate() error {
	if len(s.Cases) == 0 {
		return ErrEmptySuite
	}
	names := make(map[string]struct{}, len(s.Cases))
	for i, c := range s.Cases {
		if !knownKind(c.Kind) {
			return fmt.Errorf("case %d (%q): %w: %q", i, c.Name, ErrUnknownKind, c.Kind)
		}
		if _, dup := names[c.Name]; dup {
			return fmt.Errorf("case %d: %w: %q", i, ErrDuplicateName, c.Name)
		}
		names[c.Name] = struct{}{}
	}

	return nil
}

func knownKind(k Kind) bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}

	return false
}

// Parse decodes and validates a YAML suite. Unknown keys are rejected so a
// misspelled expectation cannot silently turn into a skipped check.
func Parse(data []byte) (Suite, error) {
	var s Suite
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) { // EOF: empty document
		return Suite{}, fmt.Errorf("failed to parse suite: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Suite{}, err
	}

	return s, nil
}

// LoadFile reads a YAML suite from path.
func LoadFile(path string) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, fmt.Errorf("failed to read suite: %w", err)
	}

	return Parse(data)
}
