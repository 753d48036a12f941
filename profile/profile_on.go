//go:build benchprofile

package profile

import (
	"io"
	"sync"

	"github.com/colorfulnotion/arcutil/timing"
)

// Enabled reports whether the binary was built with the benchprofile tag.
const Enabled = true

var ambient = sync.OnceValue(timing.NewProfiler)

// Reinitialize clears all stored data and preallocates space for later recordings.
func Reinitialize(numNames, numEvents int) { ambient().Initialize(numNames, numEvents) }

// Reset clears the data for a single name.
func Reset(name string) { ambient().Reset(name) }

// Start starts, or restarts, the named stopwatch.
func Start(name string) { ambient().Start(name) }

// Record stores the reading of the named stopwatch without stopping it.
func Record(name string) float64 { return ambient().Record(name) }

func AddData(name string, datum float64) { ambient().AddData(name, datum) }

func Data(name string) []float64 { return ambient().Data(name) }

func PrintSingleSummary(name string) { ambient().PrintSingleSummary(name) }

func PrintGroupSummary(names []string) { ambient().PrintGroupSummary(names) }

func SetOutput(w io.Writer) { ambient().SetOutput(w) }
