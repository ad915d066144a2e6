package growth_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/seqlab/growth"
)

// TestSimulate_Six verifies the items and the resize trace for six appends.
func TestSimulate_Six(t *testing.T) {
	rec := &growth.Recorder{}
	items, err := growth.Simulate(6, growth.WithSink(rec))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, items)

	want := []growth.ResizeEvent{
		{OldCapacity: 2, NewCapacity: 4, Copied: 2},
		{OldCapacity: 4, NewCapacity: 8, Copied: 4},
	}
	if diff := cmp.Diff(want, rec.Resizes); diff != "" {
		t.Errorf("resize trace mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, rec.Done)
	assert.Equal(t, growth.Summary{Items: 6, Capacity: 8}, rec.Final)
}

// TestSimulate_Zero verifies that zero appends report only the summary.
func TestSimulate_Zero(t *testing.T) {
	rec := &growth.Recorder{}
	items, err := growth.Simulate(0, growth.WithSink(rec))
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Empty(t, rec.Resizes, "no resize for n=0")
	assert.True(t, rec.Done, "summary is still reported")
	assert.Equal(t, growth.Summary{Items: 0, Capacity: 2}, rec.Final)
}

// TestSimulate_CapacityReachedNotExceeded checks that filling the initial
// capacity exactly does not trigger a resize.
func TestSimulate_CapacityReachedNotExceeded(t *testing.T) {
	rec := &growth.Recorder{}
	_, err := growth.Simulate(2, growth.WithSink(rec))
	require.NoError(t, err)
	assert.Empty(t, rec.Resizes)

	rec = &growth.Recorder{}
	_, err = growth.Simulate(3, growth.WithSink(rec))
	require.NoError(t, err)
	assert.Equal(t, []int{2}, rec.ResizePoints())
}

// TestSimulate_PowersOfTwo verifies that resizes happen at 2, 4, 8, ... and always double.
func TestSimulate_PowersOfTwo(t *testing.T) {
	rec := &growth.Recorder{}
	items, err := growth.Simulate(100, growth.WithSink(rec))
	require.NoError(t, err)
	require.Len(t, items, 100)
	for i, v := range items {
		assert.Equal(t, i, v)
	}
	assert.Equal(t, []int{2, 4, 8, 16, 32, 64}, rec.ResizePoints())
	assert.Equal(t, 128, rec.Final.Capacity)
	for _, e := range rec.Resizes {
		assert.Equal(t, 2*e.OldCapacity, e.NewCapacity)
		assert.Equal(t, e.OldCapacity, e.Copied)
	}
}

// TestSimulate_InitialCapacity verifies resize points for a non-default start capacity.
func TestSimulate_InitialCapacity(t *testing.T) {
	rec := &growth.Recorder{}
	_, err := growth.Simulate(10, growth.WithInitialCapacity(3), growth.WithSink(rec))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 6}, rec.ResizePoints())
	assert.Equal(t, 12, rec.Final.Capacity)
}

// TestSimulate_Errors verifies ErrNegativeCount and ErrBadCapacity.
func TestSimulate_Errors(t *testing.T) {
	items, err := growth.Simulate(-1)
	assert.Nil(t, items)
	assert.ErrorIs(t, err, growth.ErrNegativeCount)

	items, err = growth.Simulate(4, growth.WithInitialCapacity(0))
	assert.Nil(t, items)
	assert.ErrorIs(t, err, growth.ErrBadCapacity)
}

// TestSimulate_NoSink verifies that a run without a sink still returns the items.
func TestSimulate_NoSink(t *testing.T) {
	items, err := growth.Simulate(5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, items)
}

// TestWriterSink verifies the human-readable trace lines.
func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	sink := growth.NewWriterSink(&buf)
	_, err := growth.Simulate(6, growth.WithSink(sink))
	require.NoError(t, err)
	require.NoError(t, sink.Err())

	want := "Resizing: capacity 2 -> 4, copying 2 items\n" +
		"Resizing: capacity 4 -> 8, copying 4 items\n" +
		"Final: 6 items in list with capacity 8\n"
	assert.Equal(t, want, buf.String())
}

// failingWriter rejects every write.
type failingWriter struct{ calls int }

func (w *failingWriter) Write([]byte) (int, error) {
	w.calls++
	return 0, errors.New("disk full")
}

// TestWriterSink_StopsAfterError verifies that the first write error is kept and later writes are skipped.
func TestWriterSink_StopsAfterError(t *testing.T) {
	w := &failingWriter{}
	sink := growth.NewWriterSink(w)
	_, err := growth.Simulate(10, growth.WithSink(sink))
	require.NoError(t, err, "sink failures do not fail the simulation")
	assert.EqualError(t, sink.Err(), "disk full")
	assert.Equal(t, 1, w.calls)
}

// TestLoggerSink verifies the structured entries and their levels.
func TestLoggerSink(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := growth.Simulate(6, growth.WithSink(growth.NewLoggerSink(zap.New(core))))
	require.NoError(t, err)

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	assert.Equal(t, "resizing", entries[0].Message)
	assert.Equal(t, int64(2), entries[0].ContextMap()["old_capacity"])
	assert.Equal(t, int64(4), entries[1].ContextMap()["copied"])
	assert.Equal(t, "simulation finished", entries[2].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[2].Level)
	assert.Equal(t, int64(8), entries[2].ContextMap()["capacity"])
}

// TestLoggerSink_NilLogger verifies that a nil logger discards events.
func TestLoggerSink_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		_, _ = growth.Simulate(4, growth.WithSink(growth.NewLoggerSink(nil)))
	})
}

// TestAnalyze_MatchesSimulate checks the closed form against a recorded run.
func TestAnalyze_MatchesSimulate(t *testing.T) {
	for _, initial := range []int{1, 2, 3, 5} {
		for n := 0; n <= 70; n++ {
			rec := &growth.Recorder{}
			_, err := growth.Simulate(n, growth.WithInitialCapacity(initial), growth.WithSink(rec))
			require.NoError(t, err)

			st, err := growth.Analyze(n, initial)
			require.NoError(t, err)

			copies := 0
			for _, e := range rec.Resizes {
				copies += e.Copied
			}
			assert.Equal(t, n, st.Appends)
			assert.Equal(t, len(rec.Resizes), st.Resizes, "n=%d initial=%d", n, initial)
			assert.Equal(t, copies, st.Copies, "n=%d initial=%d", n, initial)
			assert.Equal(t, rec.Final.Capacity, st.FinalCapacity, "n=%d initial=%d", n, initial)
		}
	}
}

// TestAnalyze_AmortizedBound verifies that the amortized cost stays in [1, 3).
func TestAnalyze_AmortizedBound(t *testing.T) {
	for _, n := range []int{1, 2, 3, 17, 1000, 1 << 20} {
		st, err := growth.Analyze(n, growth.DefaultInitialCapacity)
		require.NoError(t, err)
		assert.Less(t, st.AmortizedCost(), 3.0, "n=%d", n)
		assert.GreaterOrEqual(t, st.AmortizedCost(), 1.0, "n=%d", n)
	}

	st, err := growth.Analyze(0, growth.DefaultInitialCapacity)
	require.NoError(t, err)
	assert.Zero(t, st.AmortizedCost())
}

// TestAnalyze_Errors verifies input validation of Analyze.
func TestAnalyze_Errors(t *testing.T) {
	_, err := growth.Analyze(-5, 2)
	assert.ErrorIs(t, err, growth.ErrNegativeCount)
	_, err = growth.Analyze(5, 0)
	assert.ErrorIs(t, err, growth.ErrBadCapacity)
}

// TestTee verifies that every non-nil sink receives the same events.
func TestTee(t *testing.T) {
	a, b := &growth.Recorder{}, &growth.Recorder{}
	_, err := growth.Simulate(5, growth.WithSink(growth.Tee(a, nil, b)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, []int{2, 4}, a.ResizePoints())
	assert.Equal(t, growth.Summary{Items: 5, Capacity: 8}, b.Final)
}

// TestAnalyze_CapacityOverflow verifies that counts whose final capacity would
// not fit in an int fail with ErrCapacityOverflow instead of looping forever.
func TestAnalyze_CapacityOverflow(t *testing.T) {
	for _, n := range []int{math.MaxInt, 1<<62 + 1} {
		_, err := growth.Analyze(n, growth.DefaultInitialCapacity)
		assert.ErrorIs(t, err, growth.ErrCapacityOverflow, "n=%d", n)
	}

	_, err := growth.Analyze(2, math.MaxInt/2+1)
	assert.NoError(t, err, "no doubling needed when the start capacity already fits n")

	_, err = growth.Analyze(math.MaxInt, math.MaxInt/2+1)
	assert.ErrorIs(t, err, growth.ErrCapacityOverflow)

	st, err := growth.Analyze(1<<62, growth.DefaultInitialCapacity)
	require.NoError(t, err, "largest power of two still reachable by doubling")
	assert.Equal(t, 1<<62, st.FinalCapacity)
	assert.Equal(t, 1<<62-2, st.Copies)
	assert.Less(t, st.AmortizedCost(), 3.0)
}

// TestSimulate_HugeInitialCapacity verifies that the backing array is sized by
// the item count, not by a huge configured capacity.
func TestSimulate_HugeInitialCapacity(t *testing.T) {
	rec := &growth.Recorder{}
	items, err := growth.Simulate(3, growth.WithInitialCapacity(math.MaxInt), growth.WithSink(rec))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, items)
	assert.Empty(t, rec.Resizes)
	assert.Equal(t, growth.Summary{Items: 3, Capacity: math.MaxInt}, rec.Final)
}

// TestSimulate_BackingSizedByCount verifies that resizes never allocate past n.
func TestSimulate_BackingSizedByCount(t *testing.T) {
	items, err := growth.Simulate(5)
	require.NoError(t, err)
	assert.Equal(t, 5, cap(items))
}
