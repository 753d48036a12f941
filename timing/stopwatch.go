// Package timing measures wall-clock time for named code regions.
//
// A Stopwatch reads elapsed seconds from Go's monotonic clock. A Profiler keeps
// the samples of many named stopwatches and prints aggregate summaries.
package timing

import "time"

// Control selects what a call to Stopwatch.Do does.
type Control int

const (
	Read Control = iota
	Reset
)

// Stopwatch is an elapsed-time meter. Copies are independent.
type Stopwatch struct {
	start time.Time
}

func NewStopwatch() Stopwatch {
	return Stopwatch{start: time.Now()}
}

// Read returns seconds since construction or the last reset.
func (s *Stopwatch) Read() float64 {
	return time.Since(s.start).Seconds()
}

// ResetAndRead restarts the stopwatch and returns the length of the interval
// it just closed.
func (s *Stopwatch) ResetAndRead() float64 {
	now := time.Now()
	elapsed := now.Sub(s.start)
	s.start = now
	return elapsed.Seconds()
}

func (s *Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}

func (s *Stopwatch) Do(ctl Control) float64 {
	if ctl == Reset {
		return s.ResetAndRead()
	}
	return s.Read()
}

var global = NewStopwatch()

// GlobalStopwatch reads or resets the process-wide stopwatch, which starts
// when the package is initialised.
func GlobalStopwatch(ctl Control) float64 {
	return global.Do(ctl)
}
