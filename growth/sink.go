package growth

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// nopSink discards the trace.
type nopSink struct{}

func (nopSink) OnResize(ResizeEvent) {}
func (nopSink) OnFinal(Summary)      {}

// Recorder collects the trace in memory.
type Recorder struct {
	Resizes []ResizeEvent
	Final   Summary
	Done    bool // set once OnFinal has been called
}

// OnResize appends e to Resizes.
func (r *Recorder) OnResize(e ResizeEvent) {
	r.Resizes = append(r.Resizes, e)
}

// OnFinal stores s and marks the run as done.
func (r *Recorder) OnFinal(s Summary) {
	r.Final = s
	r.Done = true
}

// ResizePoints returns the item counts at which resizes happened.
func (r *Recorder) ResizePoints() []int {
	points := make([]int, len(r.Resizes))
	for i, e := range r.Resizes {
		points[i] = e.Copied
	}

	return points
}

// WriterSink prints one human-readable line per event.
type WriterSink struct {
	w   io.Writer
	err error
}

// NewWriterSink returns a WriterSink that writes to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// OnResize prints "Resizing: capacity OLD -> NEW, copying K items".
func (s *WriterSink) OnResize(e ResizeEvent) {
	s.printf("Resizing: capacity %d -> %d, copying %d items\n", e.OldCapacity, e.NewCapacity, e.Copied)
}

// OnFinal prints "Final: N items in list with capacity C".
func (s *WriterSink) OnFinal(sum Summary) {
	s.printf("Final: %d items in list with capacity %d\n", sum.Items, sum.Capacity)
}

// Err returns the first write error, if any. Later writes are skipped after a failure.
func (s *WriterSink) Err() error {
	return s.err
}

func (s *WriterSink) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

// LoggerSink reports events as structured log entries.
type LoggerSink struct {
	logger *zap.Logger
}

// NewLoggerSink returns a LoggerSink writing to logger. A nil logger discards everything.
func NewLoggerSink(logger *zap.Logger) *LoggerSink {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &LoggerSink{logger: logger}
}

// OnResize logs the transition at debug level.
func (s *LoggerSink) OnResize(e ResizeEvent) {
	s.logger.Debug("resizing",
		zap.Int("old_capacity", e.OldCapacity),
		zap.Int("new_capacity", e.NewCapacity),
		zap.Int("copied", e.Copied))
}

// OnFinal logs the summary at info level.
func (s *LoggerSink) OnFinal(sum Summary) {
	s.logger.Info("simulation finished",
		zap.Int("items", sum.Items),
		zap.Int("capacity", sum.Capacity))
}

// teeSink fans every event out to several sinks.
type teeSink []Sink

// Tee returns a Sink that forwards each event to every non-nil sink, in order.
func Tee(sinks ...Sink) Sink {
	t := make(teeSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			t = append(t, s)
		}
	}

	return t
}

func (t teeSink) OnResize(e ResizeEvent) {
	for _, s := range t {
		s.OnResize(e)
	}
}

func (t teeSink) OnFinal(sum Summary) {
	for _, s := range t {
		s.OnFinal(sum)
	}
}
