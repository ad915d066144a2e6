package frequency_test

import (
	"testing"

	"github.com/katalvlaran/seqlab/frequency"
)

// benchInput returns n values drawn from 100 distinct keys.
func benchInput(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = (i * 7919) % 100
	}

	return s
}

// BenchmarkMostFrequent_10000 measures the two-scan finder on 10,000 elements.
func BenchmarkMostFrequent_10000(b *testing.B) {
	s := benchInput(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = frequency.MostFrequent(s)
	}
}

// BenchmarkMostFrequentOnePass_10000 measures the single-scan finder on the same input.
func BenchmarkMostFrequentOnePass_10000(b *testing.B) {
	s := benchInput(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = frequency.MostFrequentOnePass(s)
	}
}
